//go:build linux

package platform

import (
	"fmt"
	"time"

	"github.com/1broseidon/remonitor/internal/x11"
	"github.com/BurntSushi/xgb/randr"
	"github.com/BurntSushi/xgb/xproto"
)

// DefaultFullscreenSettle bounds how long a fullscreen change waits for the
// window manager.
const DefaultFullscreenSettle = 500 * time.Millisecond

// LinuxBackend wraps an X11 connection behind the platform Backend interface.
// Monitor handles are RandR CRTC ids.
type LinuxBackend struct {
	conn   *x11.Connection
	settle time.Duration
}

var _ Host = (*LinuxBackend)(nil)

// NewLinuxBackend creates a Linux platform backend from an existing X11 connection.
func NewLinuxBackend(conn *x11.Connection) *LinuxBackend {
	return &LinuxBackend{conn: conn, settle: DefaultFullscreenSettle}
}

// NewHost opens a fresh X11 connection to display ("" means $DISPLAY).
func NewHost(display string, settle time.Duration) (Host, error) {
	conn, err := x11.NewConnection(display)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to X11: %w", err)
	}
	b := NewLinuxBackend(conn)
	if settle > 0 {
		b.settle = settle
	}
	return b, nil
}

// Disconnect closes the underlying X11 connection.
func (b *LinuxBackend) Disconnect() {
	if b != nil && b.conn != nil {
		b.conn.Close()
	}
}

// Monitors returns the active monitors in enumeration order.
func (b *LinuxBackend) Monitors() ([]MonitorID, error) {
	conn, err := b.connection()
	if err != nil {
		return nil, err
	}

	monitors, err := conn.GetMonitors()
	if err != nil {
		return nil, err
	}

	ids := make([]MonitorID, 0, len(monitors))
	for _, m := range monitors {
		ids = append(ids, MonitorID(m.CRTC))
	}
	return ids, nil
}

// PrimaryMonitor returns the monitor driving the RandR primary output.
func (b *LinuxBackend) PrimaryMonitor() (MonitorID, error) {
	conn, err := b.connection()
	if err != nil {
		return 0, err
	}

	monitors, err := conn.GetMonitors()
	if err != nil {
		return 0, err
	}
	for _, m := range monitors {
		if m.Primary {
			return MonitorID(m.CRTC), nil
		}
	}
	return 0, ErrNoMonitor
}

// MonitorPosition returns the top-left corner of a monitor.
func (b *LinuxBackend) MonitorPosition(id MonitorID) (Point, error) {
	mon, err := b.monitor(id)
	if err != nil {
		return Point{}, err
	}
	return Point{X: mon.X, Y: mon.Y}, nil
}

// MonitorVideoMode returns the resolution of the mode active on a monitor.
func (b *LinuxBackend) MonitorVideoMode(id MonitorID) (VideoMode, error) {
	mon, err := b.monitor(id)
	if err != nil {
		return VideoMode{}, err
	}
	if mon.ModeWidth == 0 || mon.ModeHeight == 0 {
		return VideoMode{}, ErrNoVideoMode
	}
	return VideoMode{Width: mon.ModeWidth, Height: mon.ModeHeight}, nil
}

// WindowSize returns the size of a window.
func (b *LinuxBackend) WindowSize(windowID WindowID) (Size, error) {
	conn, err := b.connection()
	if err != nil {
		return Size{}, err
	}
	w, h, err := conn.GetWindowSize(xproto.Window(windowID))
	if err != nil {
		return Size{}, err
	}
	return Size{Width: w, Height: h}, nil
}

// WindowMonitor returns the monitor the window overlaps most, or
// ErrNoMonitor when it is not on any monitor.
func (b *LinuxBackend) WindowMonitor(windowID WindowID) (MonitorID, error) {
	conn, err := b.connection()
	if err != nil {
		return 0, err
	}

	x, y, w, h, err := conn.GetWindowRect(xproto.Window(windowID))
	if err != nil {
		return 0, err
	}
	monitors, err := conn.GetMonitors()
	if err != nil {
		return 0, err
	}
	mon := x11.MonitorForRect(monitors, x, y, w, h)
	if mon == nil {
		return 0, ErrNoMonitor
	}
	return MonitorID(mon.CRTC), nil
}

// IsFullscreen reports the EWMH fullscreen state of a window.
func (b *LinuxBackend) IsFullscreen(windowID WindowID) (bool, error) {
	conn, err := b.connection()
	if err != nil {
		return false, err
	}
	return conn.IsFullscreen(xproto.Window(windowID))
}

// SetFullscreen adds or removes the EWMH fullscreen state and waits for the
// window manager to apply it.
func (b *LinuxBackend) SetFullscreen(windowID WindowID, fullscreen bool) error {
	conn, err := b.connection()
	if err != nil {
		return err
	}
	return conn.SetFullscreen(xproto.Window(windowID), fullscreen, b.settle)
}

// SetWindowPosition moves a window without resizing it.
func (b *LinuxBackend) SetWindowPosition(windowID WindowID, pos Point) error {
	conn, err := b.connection()
	if err != nil {
		return err
	}
	return conn.MoveWindow(xproto.Window(windowID), pos.X, pos.Y)
}

// Displays returns the current monitors with their names and bounds.
func (b *LinuxBackend) Displays() ([]Display, error) {
	conn, err := b.connection()
	if err != nil {
		return nil, err
	}

	monitors, err := conn.GetMonitors()
	if err != nil {
		return nil, err
	}

	displays := make([]Display, 0, len(monitors))
	for i, m := range monitors {
		displays = append(displays, displayFromMonitor(i, m))
	}
	return displays, nil
}

// ActiveWindow returns the currently active/focused window ID.
func (b *LinuxBackend) ActiveWindow() (WindowID, error) {
	conn, err := b.connection()
	if err != nil {
		return 0, err
	}

	wid, err := conn.GetActiveWindow()
	if err != nil {
		return 0, err
	}
	return WindowID(wid), nil
}

// FindWindow returns the first normal window matching match, or 0 when
// none does.
func (b *LinuxBackend) FindWindow(match WindowMatch) (WindowID, error) {
	conn, err := b.connection()
	if err != nil {
		return 0, err
	}

	wid, err := conn.FindWindow(match.Title, match.Class)
	if err != nil {
		return 0, err
	}
	return WindowID(wid), nil
}

func (b *LinuxBackend) monitor(id MonitorID) (*x11.Monitor, error) {
	conn, err := b.connection()
	if err != nil {
		return nil, err
	}
	if id == 0 {
		return nil, ErrNoMonitor
	}

	mon, err := conn.FindMonitor(randr.Crtc(id))
	if err != nil {
		return nil, err
	}
	if mon == nil {
		return nil, fmt.Errorf("monitor %d: %w", id, ErrNoMonitor)
	}
	return mon, nil
}

func (b *LinuxBackend) connection() (*x11.Connection, error) {
	if b == nil || b.conn == nil {
		return nil, fmt.Errorf("x11 backend connection is nil")
	}
	return b.conn, nil
}

func displayFromMonitor(index int, m x11.Monitor) Display {
	return Display{
		Index: index,
		ID:    MonitorID(m.CRTC),
		Name:  m.Name,
		Bounds: Rect{
			X:      m.X,
			Y:      m.Y,
			Width:  m.Width,
			Height: m.Height,
		},
		Primary: m.Primary,
	}
}
