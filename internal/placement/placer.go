package placement

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/1broseidon/remonitor/internal/platform"
)

// ErrNoMonitors is returned when the platform reports no monitors at all.
var ErrNoMonitors = errors.New("no monitors connected")

// Placer moves one window according to a PlacementConfig and reads its
// current placement back.
type Placer struct {
	backend platform.Backend
	window  platform.WindowID
	logger  *slog.Logger
}

// NewPlacer returns a placer for window. A nil logger discards log output.
func NewPlacer(backend platform.Backend, window platform.WindowID, logger *slog.Logger) *Placer {
	return &Placer{backend: backend, window: window, logger: orDiscard(logger)}
}

// ResolveMonitor picks the monitor for a saved index: the monitor at index if
// it exists, else primary, else the first monitor.
func ResolveMonitor(monitors []platform.MonitorID, index int, primary platform.MonitorID) (platform.MonitorID, error) {
	if len(monitors) == 0 {
		return 0, ErrNoMonitors
	}
	if index >= 0 && index < len(monitors) && monitors[index] != 0 {
		return monitors[index], nil
	}
	if primary != 0 {
		return primary, nil
	}
	return monitors[0], nil
}

// IndexOf returns the position of id in monitors, or NoMonitor.
func IndexOf(monitors []platform.MonitorID, id platform.MonitorID) int {
	if id == 0 {
		return NoMonitor
	}
	for i, m := range monitors {
		if m == id {
			return i
		}
	}
	return NoMonitor
}

// CenterOn returns the top-left corner that centers a window of size on a
// monitor at origin. A window larger than the monitor is pinned to the
// monitor's edge on that axis.
func CenterOn(origin platform.Point, mode platform.VideoMode, size platform.Size) platform.Point {
	return platform.Point{
		X: origin.X + max(0, (mode.Width-size.Width)/2),
		Y: origin.Y + max(0, (mode.Height-size.Height)/2),
	}
}

// Restore moves the window onto the monitor cfg names, centered, and
// re-enters fullscreen when cfg asks for it. The returned error describes the
// first step that could not complete.
func (p *Placer) Restore(cfg PlacementConfig) error {
	monitors, err := p.backend.Monitors()
	if err != nil {
		return fmt.Errorf("failed to enumerate monitors: %w", err)
	}

	primary, err := p.backend.PrimaryMonitor()
	if err != nil {
		p.logger.Debug("no primary monitor reported", "error", err)
		primary = 0
	}

	target, err := ResolveMonitor(monitors, cfg.MonitorIndex, primary)
	if err != nil {
		return err
	}
	p.logger.Debug("resolved monitor", "index", cfg.MonitorIndex, "monitor", target, "count", len(monitors))

	// A fullscreen window cannot be moved across monitors.
	if fullscreen, err := p.backend.IsFullscreen(p.window); err != nil {
		p.logger.Debug("failed to read fullscreen state", "error", err)
	} else if fullscreen {
		if err := p.backend.SetFullscreen(p.window, false); err != nil {
			return fmt.Errorf("failed to leave fullscreen: %w", err)
		}
	}

	moveErr := p.centerOn(target)
	if moveErr != nil {
		p.logger.Debug("skipped window move", "error", moveErr)
	}

	if cfg.Fullscreen {
		fullscreen, err := p.backend.IsFullscreen(p.window)
		if err != nil || !fullscreen {
			if err := p.backend.SetFullscreen(p.window, true); err != nil {
				return errors.Join(moveErr, fmt.Errorf("failed to enter fullscreen: %w", err))
			}
		}
	}
	return moveErr
}

func (p *Placer) centerOn(monitor platform.MonitorID) error {
	origin, err := p.backend.MonitorPosition(monitor)
	if err != nil {
		return fmt.Errorf("monitor position: %w", err)
	}
	mode, err := p.backend.MonitorVideoMode(monitor)
	if err != nil {
		return fmt.Errorf("monitor video mode: %w", err)
	}
	size, err := p.backend.WindowSize(p.window)
	if err != nil {
		return fmt.Errorf("window size: %w", err)
	}

	pos := CenterOn(origin, mode, size)
	if err := p.backend.SetWindowPosition(p.window, pos); err != nil {
		return fmt.Errorf("move window: %w", err)
	}
	p.logger.Debug("moved window", "x", pos.X, "y", pos.Y, "monitor", monitor)
	return nil
}

// WindowExists reports whether the window can still be queried.
func (p *Placer) WindowExists() bool {
	_, err := p.backend.WindowSize(p.window)
	return err == nil
}

// Capture returns the window's current placement. It only reads state.
func (p *Placer) Capture() PlacementConfig {
	cfg := DefaultPlacement()

	fullscreen, err := p.backend.IsFullscreen(p.window)
	if err != nil {
		p.logger.Debug("failed to read fullscreen state", "error", err)
	}
	cfg.Fullscreen = fullscreen

	current, err := p.backend.WindowMonitor(p.window)
	if err != nil {
		p.logger.Debug("window monitor unknown", "error", err)
		return cfg
	}
	monitors, err := p.backend.Monitors()
	if err != nil {
		p.logger.Debug("failed to enumerate monitors", "error", err)
		return cfg
	}
	cfg.MonitorIndex = IndexOf(monitors, current)
	return cfg
}

func orDiscard(logger *slog.Logger) *slog.Logger {
	if logger != nil {
		return logger
	}
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
