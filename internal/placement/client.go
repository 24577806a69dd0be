package placement

import (
	"context"
	"log/slog"

	"github.com/1broseidon/remonitor/internal/lifecycle"
)

// Client restores the saved placement when the application starts and saves
// the current one when it stops. Failures are logged and never returned.
type Client struct {
	store  *Store
	placer *Placer
	logger *slog.Logger

	last *PlacementConfig
}

// NewClient binds a store to a placer.
func NewClient(store *Store, placer *Placer, logger *slog.Logger) *Client {
	return &Client{store: store, placer: placer, logger: orDiscard(logger)}
}

// Register attaches the client to the application lifecycle.
func (c *Client) Register(h *lifecycle.Hooks) {
	h.OnStarted(func(context.Context) { c.HandleStarted() })
	h.OnStopping(func(context.Context) { c.HandleStopping() })
}

// HandleStarted loads the saved placement and applies it, then takes a first
// snapshot for Track. It reports whether a saved placement existed.
func (c *Client) HandleStarted() bool {
	saved := c.restore()
	c.Track()
	return saved
}

func (c *Client) restore() bool {
	cfg, ok := c.store.Load()
	if !ok {
		c.logger.Debug("no saved placement", "path", c.store.Path())
		return false
	}

	if err := c.placer.Restore(cfg); err != nil {
		c.logger.Debug("placement restore incomplete", "monitor_index", cfg.MonitorIndex, "fullscreen", cfg.Fullscreen, "error", err)
		return true
	}
	c.logger.Info("restored placement", "monitor_index", cfg.MonitorIndex, "fullscreen", cfg.Fullscreen)
	return true
}

// Track records the current placement while the window is alive. It
// reports false once the window is gone.
func (c *Client) Track() bool {
	if !c.placer.WindowExists() {
		return false
	}
	cfg := c.placer.Capture()
	c.last = &cfg
	return true
}

// HandleStopping captures the current placement and saves it. When the
// window has already gone away, the last tracked placement is saved instead.
func (c *Client) HandleStopping() PlacementConfig {
	var cfg PlacementConfig
	switch {
	case c.last == nil || c.placer.WindowExists():
		cfg = c.placer.Capture()
	default:
		cfg = *c.last
		c.logger.Debug("window gone, saving last tracked placement")
	}

	if err := c.store.Save(cfg); err != nil {
		c.logger.Debug("placement not saved", "error", err)
		return cfg
	}
	c.logger.Info("saved placement", "monitor_index", cfg.MonitorIndex, "fullscreen", cfg.Fullscreen, "path", c.store.Path())
	return cfg
}
