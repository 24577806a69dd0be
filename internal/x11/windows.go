package x11

import (
	"fmt"
	"strings"
	"time"

	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil/ewmh"
	"github.com/BurntSushi/xgbutil/icccm"
	"github.com/BurntSushi/xgbutil/xwindow"
)

const stateFullscreen = "_NET_WM_STATE_FULLSCREEN"

// _NET_WM_STATE client message actions.
const (
	stateRemove = 0
	stateAdd    = 1
)

// GetWindowRect returns the window geometry translated to root coordinates.
func (c *Connection) GetWindowRect(windowID xproto.Window) (x, y, width, height int, err error) {
	geom, err := xproto.GetGeometry(c.XUtil.Conn(), xproto.Drawable(windowID)).Reply()
	if err != nil {
		return 0, 0, 0, 0, fmt.Errorf("failed to get window geometry: %w", err)
	}

	translate, err := xproto.TranslateCoordinates(
		c.XUtil.Conn(),
		windowID,
		c.Root,
		0, 0,
	).Reply()
	if err != nil {
		return 0, 0, 0, 0, fmt.Errorf("failed to translate window coordinates: %w", err)
	}

	return int(translate.DstX), int(translate.DstY), int(geom.Width), int(geom.Height), nil
}

// GetWindowSize returns the client area size of a window.
func (c *Connection) GetWindowSize(windowID xproto.Window) (width, height int, err error) {
	geom, err := xproto.GetGeometry(c.XUtil.Conn(), xproto.Drawable(windowID)).Reply()
	if err != nil {
		return 0, 0, fmt.Errorf("failed to get window geometry: %w", err)
	}
	return int(geom.Width), int(geom.Height), nil
}

// IsFullscreen reports whether the window carries _NET_WM_STATE_FULLSCREEN.
func (c *Connection) IsFullscreen(windowID xproto.Window) (bool, error) {
	states, err := ewmh.WmStateGet(c.XUtil, windowID)
	return fullscreenState(states, err, func() error {
		_, _, geomErr := c.GetWindowSize(windowID)
		return geomErr
	})
}

// fullscreenState interprets a _NET_WM_STATE read. A failed read on a live
// window means the property was never set; alive tells the two apart.
func fullscreenState(states []string, readErr error, alive func() error) (bool, error) {
	if readErr != nil {
		if err := alive(); err != nil {
			return false, err
		}
		return false, nil
	}
	for _, state := range states {
		if state == stateFullscreen {
			return true, nil
		}
	}
	return false, nil
}

// SetFullscreen asks the window manager to add or remove the fullscreen
// state, then waits up to settle for the change to show up on the window. A
// change still pending after settle is not an error.
func (c *Connection) SetFullscreen(windowID xproto.Window, fullscreen bool, settle time.Duration) error {
	action := stateRemove
	if fullscreen {
		action = stateAdd
	}
	if err := ewmh.WmStateReq(c.XUtil, windowID, action, stateFullscreen); err != nil {
		return fmt.Errorf("failed to request fullscreen=%v: %w", fullscreen, err)
	}

	waitForState(func() (bool, error) { return c.IsFullscreen(windowID) }, fullscreen, settle, settleStep)
	return nil
}

const settleStep = 20 * time.Millisecond

// waitForState polls read until it reports want or settle has passed. It
// reports whether want was observed. Read errors count as not yet applied.
func waitForState(read func() (bool, error), want bool, settle, step time.Duration) bool {
	deadline := time.Now().Add(settle)
	for {
		current, err := read()
		if err == nil && current == want {
			return true
		}
		if !time.Now().Before(deadline) {
			return false
		}
		time.Sleep(step)
	}
}

// MoveWindow moves a window to x, y keeping its current size.
func (c *Connection) MoveWindow(windowID xproto.Window, x, y int) error {
	width, height, err := c.GetWindowSize(windowID)
	if err != nil {
		return err
	}

	// Use EWMH MoveResize for better WM compatibility
	if err := ewmh.MoveresizeWindow(c.XUtil, windowID, x, y, width, height); err != nil {
		// Fallback to direct window manipulation
		xwindow.New(c.XUtil, windowID).Move(x, y)
	}
	return nil
}

// IsNormalWindow checks if a window is a normal application window
func (c *Connection) IsNormalWindow(windowID xproto.Window) bool {
	types, err := ewmh.WmWindowTypeGet(c.XUtil, windowID)
	if err != nil {
		// If we can't determine type, assume it's normal
		return true
	}

	for _, t := range types {
		if t == "_NET_WM_WINDOW_TYPE_NORMAL" {
			return true
		}
		// Reject desktop, dock, splash, etc.
		if t == "_NET_WM_WINDOW_TYPE_DESKTOP" ||
			t == "_NET_WM_WINDOW_TYPE_DOCK" ||
			t == "_NET_WM_WINDOW_TYPE_SPLASH" ||
			t == "_NET_WM_WINDOW_TYPE_NOTIFICATION" {
			return false
		}
	}

	// If no specific type is set, assume it's normal
	return len(types) == 0
}

func (c *Connection) GetActiveWindow() (xproto.Window, error) {
	return ewmh.ActiveWindowGet(c.XUtil)
}

// FindWindow searches the EWMH client list for the first normal window whose
// title contains title and whose WM_CLASS class equals class. Empty criteria
// match anything, but at least one must be set. It returns 0 without an error
// when nothing matches.
func (c *Connection) FindWindow(title, class string) (xproto.Window, error) {
	if title == "" && class == "" {
		return 0, fmt.Errorf("window title or class is required")
	}

	clients, err := ewmh.ClientListGet(c.XUtil)
	if err != nil {
		return 0, fmt.Errorf("failed to get client list: %w", err)
	}
	for _, win := range clients {
		if !c.IsNormalWindow(win) {
			continue
		}
		if title != "" && !strings.Contains(c.windowTitle(win), title) {
			continue
		}
		if class != "" && c.windowClass(win) != class {
			continue
		}
		return win, nil
	}
	return 0, nil
}

func (c *Connection) windowTitle(windowID xproto.Window) string {
	title, err := ewmh.WmNameGet(c.XUtil, windowID)
	if err == nil {
		title = strings.TrimSpace(title)
		if title != "" {
			return title
		}
	}

	title, err = icccm.WmNameGet(c.XUtil, windowID)
	if err == nil {
		return strings.TrimSpace(title)
	}
	return ""
}

func (c *Connection) windowClass(windowID xproto.Window) string {
	wmClass, err := icccm.WmClassGet(c.XUtil, windowID)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(wmClass.Class)
}
