package config

// RawWindowSelector mirrors WindowSelector with optional fields.
type RawWindowSelector struct {
	Title *string `yaml:"title"`
	Class *string `yaml:"class"`
}

// RawConfig is the file-level shape. Nil fields keep their defaults.
type RawConfig struct {
	Display          *string            `yaml:"display"`
	StateFile        *string            `yaml:"state_file"`
	Window           *RawWindowSelector `yaml:"window"`
	WaitTimeout      *string            `yaml:"wait_timeout"`
	PollInterval     *string            `yaml:"poll_interval"`
	FullscreenSettle *string            `yaml:"fullscreen_settle"`
	LogLevel         *string            `yaml:"log_level"`
}
