package platform

import "errors"

var (
	// ErrNoMonitor is returned when a query has no monitor to report.
	ErrNoMonitor = errors.New("no monitor")
	// ErrNoVideoMode is returned when a monitor has no active video mode.
	ErrNoVideoMode = errors.New("no video mode")
	// ErrUnsupported is returned when no windowing backend exists for this platform.
	ErrUnsupported = errors.New("windowing backend not supported on this platform")
)

// WindowID is a platform-neutral window identifier.
type WindowID uint32

// MonitorID is an opaque monitor handle. It is only compared for equality and
// handed back to the backend. The zero value means no monitor.
type MonitorID uint32

// Point is a position in virtual-desktop coordinates.
type Point struct {
	X int
	Y int
}

// Size is a width/height pair in screen coordinates.
type Size struct {
	Width  int
	Height int
}

// VideoMode is the active resolution of a monitor.
type VideoMode struct {
	Width  int
	Height int
}

// Rect describes a rectangular region in screen coordinates.
type Rect struct {
	X      int
	Y      int
	Width  int
	Height int
}

// Display describes a physical display for listing purposes.
type Display struct {
	Index   int
	ID      MonitorID
	Name    string
	Bounds  Rect
	Primary bool
}

// WindowMatch selects a top-level window by title substring and/or WM class.
type WindowMatch struct {
	Title string
	Class string
}

// Backend abstracts the window-system queries and commands used to place a window.
type Backend interface {
	Monitors() ([]MonitorID, error)
	PrimaryMonitor() (MonitorID, error)
	MonitorPosition(id MonitorID) (Point, error)
	MonitorVideoMode(id MonitorID) (VideoMode, error)
	WindowSize(windowID WindowID) (Size, error)
	WindowMonitor(windowID WindowID) (MonitorID, error)
	IsFullscreen(windowID WindowID) (bool, error)
	SetFullscreen(windowID WindowID, fullscreen bool) error
	SetWindowPosition(windowID WindowID, pos Point) error
}

// Host extends Backend with the lookups the command line needs to pick a
// target window and describe the current displays.
type Host interface {
	Backend
	Displays() ([]Display, error)
	ActiveWindow() (WindowID, error)
	FindWindow(match WindowMatch) (WindowID, error)
	Disconnect()
}
