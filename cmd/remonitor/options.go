package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/1broseidon/remonitor/internal/config"
	"github.com/1broseidon/remonitor/internal/paths"
	"github.com/1broseidon/remonitor/internal/placement"
	"github.com/1broseidon/remonitor/internal/platform"
)

// commonOptions are the flags shared by every command that touches the
// settings file or the placement record.
type commonOptions struct {
	configPath string
	statePath  string
	display    string
	window     string
	title      string
	class      string
	verbose    bool
}

func (o *commonOptions) register(fs *flag.FlagSet, withWindow bool) {
	fs.StringVar(&o.configPath, "config", "", "Config file path (default: ~/.config/remonitor/config.yaml)")
	fs.StringVar(&o.statePath, "state", "", "Placement file path (default: ~/.config/remonitor/remonitor.json)")
	fs.BoolVar(&o.verbose, "verbose", false, "Log debug output to stderr")
	if !withWindow {
		return
	}
	fs.StringVar(&o.display, "display", "", "X display (default: $DISPLAY)")
	fs.StringVar(&o.window, "window", "", "Window ID, decimal or 0x-prefixed hex")
	fs.StringVar(&o.title, "title", "", "Select the first window whose title contains this text")
	fs.StringVar(&o.class, "class", "", "Select the first window with this WM_CLASS class")
}

// load reads the settings file and applies flag overrides on top.
func (o *commonOptions) load() (*config.Config, error) {
	res, err := loadConfigFile(o.configPath)
	if err != nil {
		return nil, err
	}
	cfg := res.Config

	if o.statePath != "" {
		cfg.StateFile = o.statePath
	}
	if o.display != "" {
		cfg.Display = o.display
	}
	if o.title != "" || o.class != "" {
		cfg.Window = config.WindowSelector{Title: o.title, Class: o.class}
	}
	if o.verbose {
		cfg.LogLevel = "debug"
	}
	return cfg, nil
}

func newLogger(cfg *config.Config) *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: cfg.SlogLevel(),
	}))
}

func newStore(cfg *config.Config, logger *slog.Logger) (*placement.Store, error) {
	path := cfg.StateFile
	if path == "" {
		p, err := paths.PlacementPath()
		if err != nil {
			return nil, err
		}
		path = p
	}
	return placement.NewStore(path, logger), nil
}

func parseWindowID(s string) (platform.WindowID, error) {
	s = strings.TrimSpace(s)
	id, err := strconv.ParseUint(s, 0, 32)
	if err != nil || id == 0 {
		return 0, fmt.Errorf("invalid window id %q", s)
	}
	return platform.WindowID(id), nil
}
