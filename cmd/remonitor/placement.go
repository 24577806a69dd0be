package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/1broseidon/remonitor/internal/config"
	"github.com/1broseidon/remonitor/internal/lifecycle"
	"github.com/1broseidon/remonitor/internal/placement"
	"github.com/1broseidon/remonitor/internal/platform"
)

// session is one connection to the display server bound to a target window.
type session struct {
	cfg    *config.Config
	logger *slog.Logger
	host   platform.Host
	client *placement.Client
	hooks  lifecycle.Hooks
}

// openSession connects to the display, finds the target window and wires a
// placement client into the lifecycle hooks. With wait set, a window chosen
// by title or class is polled for until it appears.
func openSession(ctx context.Context, opts *commonOptions, wait bool) (*session, error) {
	cfg, err := opts.load()
	if err != nil {
		return nil, err
	}
	logger := newLogger(cfg)

	store, err := newStore(cfg, logger)
	if err != nil {
		return nil, err
	}

	host, err := platform.NewHost(cfg.Display, cfg.FullscreenSettle)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to display: %w", err)
	}

	window, err := resolveWindow(ctx, host, cfg, opts.window, wait)
	if err != nil {
		host.Disconnect()
		return nil, err
	}
	logger.Debug("target window", "window", fmt.Sprintf("0x%x", uint32(window)))

	s := &session{
		cfg:    cfg,
		logger: logger,
		host:   host,
		client: placement.NewClient(store, placement.NewPlacer(host, window, logger), logger),
	}
	s.client.Register(&s.hooks)
	return s, nil
}

func (s *session) Close() {
	s.host.Disconnect()
}

// openFailed returns the exit code for a session that could not be opened. A
// stop signal that arrives while waiting for the window is a clean exit.
func openFailed(ctx context.Context, err error) int {
	if ctx.Err() != nil {
		return 0
	}
	fmt.Fprintln(os.Stderr, err)
	return 1
}

func resolveWindow(ctx context.Context, host platform.Host, cfg *config.Config, explicit string, wait bool) (platform.WindowID, error) {
	if explicit != "" {
		return parseWindowID(explicit)
	}

	if !cfg.Window.IsZero() {
		match := platform.WindowMatch{Title: cfg.Window.Title, Class: cfg.Window.Class}
		if wait {
			return platform.WaitForWindow(ctx, host, match, cfg.WaitTimeout, cfg.PollInterval)
		}
		id, err := host.FindWindow(match)
		if err != nil {
			return 0, err
		}
		if id == 0 {
			return 0, fmt.Errorf("no window matching %s", match)
		}
		return id, nil
	}

	id, err := host.ActiveWindow()
	if err != nil {
		return 0, fmt.Errorf("failed to get active window: %w", err)
	}
	if id == 0 {
		return 0, fmt.Errorf("no active window")
	}
	return id, nil
}

func runRun(args []string) int {
	fs := flag.NewFlagSet("run", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	var opts commonOptions
	opts.register(fs, true)
	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: remonitor run [--window ID | --title TEXT | --class CLASS] [options]")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Wait for the window, restore its saved placement, and save the placement")
		fmt.Fprintln(os.Stderr, "again on SIGINT/SIGTERM or when the window closes.")
		fmt.Fprintln(os.Stderr, "")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return 0
		}
		return 2
	}
	if fs.NArg() != 0 {
		fmt.Fprintln(os.Stderr, "run takes no arguments")
		fs.Usage()
		return 2
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	s, err := openSession(ctx, &opts, true)
	if err != nil {
		return openFailed(ctx, err)
	}
	defer s.Close()

	if err := s.hooks.Start(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	ticker := time.NewTicker(s.cfg.PollInterval)
	defer ticker.Stop()

watch:
	for {
		select {
		case <-ctx.Done():
			s.logger.Debug("stop signal received")
			break watch
		case <-ticker.C:
			if !s.client.Track() {
				s.logger.Debug("target window closed")
				break watch
			}
		}
	}

	if err := s.hooks.Stop(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return 0
}

func runRestore(args []string) int {
	fs := flag.NewFlagSet("restore", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	var opts commonOptions
	opts.register(fs, true)
	noWait := fs.Bool("no-wait", false, "Fail immediately when no window matches --title/--class")
	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: remonitor restore [--window ID | --title TEXT | --class CLASS] [options]")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Move the window to its saved monitor. Defaults to the active window.")
		fmt.Fprintln(os.Stderr, "")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return 0
		}
		return 2
	}
	if fs.NArg() != 0 {
		fmt.Fprintln(os.Stderr, "restore takes no arguments")
		fs.Usage()
		return 2
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	s, err := openSession(ctx, &opts, !*noWait)
	if err != nil {
		return openFailed(ctx, err)
	}
	defer s.Close()

	if err := s.hooks.Start(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return 0
}

func runCapture(args []string) int {
	fs := flag.NewFlagSet("capture", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	var opts commonOptions
	opts.register(fs, true)
	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: remonitor capture [--window ID | --title TEXT | --class CLASS] [options]")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Save the window's current monitor and fullscreen state. Defaults to the active window.")
		fmt.Fprintln(os.Stderr, "")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return 0
		}
		return 2
	}
	if fs.NArg() != 0 {
		fmt.Fprintln(os.Stderr, "capture takes no arguments")
		fs.Usage()
		return 2
	}

	s, err := openSession(context.Background(), &opts, false)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	defer s.Close()

	if err := s.hooks.Stop(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return 0
}
