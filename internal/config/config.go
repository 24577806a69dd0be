package config

import (
	"fmt"
	"log/slog"
	"strings"
	"time"
)

const (
	DefaultWaitTimeout      = 30 * time.Second
	DefaultPollInterval     = 250 * time.Millisecond
	DefaultFullscreenSettle = 500 * time.Millisecond
	DefaultLogLevel         = "info"
)

// WindowSelector picks the window remonitor places.
type WindowSelector struct {
	// Title matches a substring of _NET_WM_NAME (falls back to WM_NAME).
	Title string `yaml:"title"`
	// Class matches the WM_CLASS class exactly.
	Class string `yaml:"class"`
}

// IsZero reports whether no criteria are set.
func (w WindowSelector) IsZero() bool {
	return strings.TrimSpace(w.Title) == "" && strings.TrimSpace(w.Class) == ""
}

// Config is the effective remonitor configuration.
type Config struct {
	// Display is the X display to connect to (default: $DISPLAY).
	Display string `yaml:"display"`
	// StateFile overrides where the placement record is kept
	// (default: <config dir>/remonitor.json).
	StateFile string         `yaml:"state_file"`
	Window    WindowSelector `yaml:"window"`
	// WaitTimeout bounds how long `run` waits for the target window to appear.
	WaitTimeout  time.Duration `yaml:"wait_timeout"`
	PollInterval time.Duration `yaml:"poll_interval"`
	// FullscreenSettle bounds how long a fullscreen toggle waits for the
	// window manager to apply it.
	FullscreenSettle time.Duration `yaml:"fullscreen_settle"`
	LogLevel         string        `yaml:"log_level"`
}

func DefaultConfig() *Config {
	return &Config{
		WaitTimeout:      DefaultWaitTimeout,
		PollInterval:     DefaultPollInterval,
		FullscreenSettle: DefaultFullscreenSettle,
		LogLevel:         DefaultLogLevel,
	}
}

func (c *Config) Validate() error {
	if c == nil {
		return fmt.Errorf("config is nil")
	}
	if c.WaitTimeout <= 0 {
		return &ValidationError{Path: "wait_timeout", Err: fmt.Errorf("wait_timeout must be > 0")}
	}
	if c.PollInterval <= 0 {
		return &ValidationError{Path: "poll_interval", Err: fmt.Errorf("poll_interval must be > 0")}
	}
	if c.PollInterval > c.WaitTimeout {
		return &ValidationError{Path: "poll_interval", Err: fmt.Errorf("poll_interval must not exceed wait_timeout")}
	}
	if c.FullscreenSettle <= 0 {
		return &ValidationError{Path: "fullscreen_settle", Err: fmt.Errorf("fullscreen_settle must be > 0")}
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "warning", "error":
	default:
		return &ValidationError{Path: "log_level", Err: fmt.Errorf("log_level must be one of: debug, info, warning, error")}
	}
	return nil
}

// SlogLevel converts LogLevel to a slog level. Unknown values map to info.
func (c *Config) SlogLevel() slog.Level {
	return ParseLogLevel(c.LogLevel)
}

// ParseLogLevel converts a string to a slog level.
func ParseLogLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
