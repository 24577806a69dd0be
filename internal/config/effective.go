package config

import (
	"fmt"
	"strings"
	"time"
)

type ValidationError struct {
	Path   string
	Source Source
	Err    error
}

func (e *ValidationError) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Source.Kind == SourceFile && e.Source.File != "" && e.Source.Line > 0 {
		return fmt.Sprintf("%s:%d:%d: %s: %v", e.Source.File, e.Source.Line, e.Source.Column, e.Path, e.Err)
	}
	if e.Path != "" {
		return fmt.Sprintf("%s: %v", e.Path, e.Err)
	}
	return e.Err.Error()
}

func (e *ValidationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// BuildEffectiveConfig applies raw over the defaults. baseFile is the file
// raw was read from; a relative state_file resolves against its directory.
func BuildEffectiveConfig(raw RawConfig, baseFile string) (*Config, error) {
	cfg := DefaultConfig()

	if raw.Display != nil {
		cfg.Display = strings.TrimSpace(*raw.Display)
	}
	if raw.StateFile != nil && strings.TrimSpace(*raw.StateFile) != "" {
		path, err := resolvePathRelativeToFile(baseFile, strings.TrimSpace(*raw.StateFile))
		if err != nil {
			return nil, &ValidationError{Path: "state_file", Err: err}
		}
		cfg.StateFile = path
	}
	if raw.Window != nil {
		if raw.Window.Title != nil {
			cfg.Window.Title = *raw.Window.Title
		}
		if raw.Window.Class != nil {
			cfg.Window.Class = strings.TrimSpace(*raw.Window.Class)
		}
	}

	durations := []struct {
		path string
		raw  *string
		dst  *time.Duration
	}{
		{path: "wait_timeout", raw: raw.WaitTimeout, dst: &cfg.WaitTimeout},
		{path: "poll_interval", raw: raw.PollInterval, dst: &cfg.PollInterval},
		{path: "fullscreen_settle", raw: raw.FullscreenSettle, dst: &cfg.FullscreenSettle},
	}
	for _, d := range durations {
		if d.raw == nil {
			continue
		}
		parsed, err := time.ParseDuration(strings.TrimSpace(*d.raw))
		if err != nil {
			return nil, &ValidationError{Path: d.path, Err: fmt.Errorf("invalid duration %q", *d.raw)}
		}
		*d.dst = parsed
	}

	if raw.LogLevel != nil {
		cfg.LogLevel = strings.ToLower(strings.TrimSpace(*raw.LogLevel))
	}

	return cfg, nil
}
