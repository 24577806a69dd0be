package placement

import (
	"errors"

	"github.com/1broseidon/remonitor/internal/platform"
)

const testWindow platform.WindowID = 0x3a00007

type windowState struct {
	Fullscreen bool
	Pos        platform.Point
}

// fakeBackend is an in-memory window system with one window. It records the
// window state after every command.
type fakeBackend struct {
	monitors    []platform.MonitorID
	monitorsErr error
	primary     platform.MonitorID
	positions   map[platform.MonitorID]platform.Point
	modes       map[platform.MonitorID]platform.VideoMode

	size       platform.Size
	pos        platform.Point
	fullscreen bool

	gone             bool
	setFullscreenErr error
	moveErr          error

	states []windowState
	calls  []string
}

func (f *fakeBackend) record() {
	f.states = append(f.states, windowState{Fullscreen: f.fullscreen, Pos: f.pos})
}

func (f *fakeBackend) Monitors() ([]platform.MonitorID, error) {
	if f.monitorsErr != nil {
		return nil, f.monitorsErr
	}
	return append([]platform.MonitorID(nil), f.monitors...), nil
}

func (f *fakeBackend) PrimaryMonitor() (platform.MonitorID, error) {
	if f.primary == 0 {
		return 0, platform.ErrNoMonitor
	}
	return f.primary, nil
}

func (f *fakeBackend) MonitorPosition(id platform.MonitorID) (platform.Point, error) {
	p, ok := f.positions[id]
	if !ok {
		return platform.Point{}, platform.ErrNoMonitor
	}
	return p, nil
}

func (f *fakeBackend) MonitorVideoMode(id platform.MonitorID) (platform.VideoMode, error) {
	m, ok := f.modes[id]
	if !ok {
		return platform.VideoMode{}, platform.ErrNoVideoMode
	}
	return m, nil
}

func (f *fakeBackend) WindowSize(platform.WindowID) (platform.Size, error) {
	if f.gone {
		return platform.Size{}, errors.New("fake: bad window")
	}
	return f.size, nil
}

// WindowMonitor reports the monitor whose bounds contain the window's
// top-left corner.
func (f *fakeBackend) WindowMonitor(platform.WindowID) (platform.MonitorID, error) {
	if f.gone {
		return 0, errors.New("fake: bad window")
	}
	for _, id := range f.monitors {
		origin, ok := f.positions[id]
		mode, hasMode := f.modes[id]
		if !ok || !hasMode {
			continue
		}
		if f.pos.X >= origin.X && f.pos.X < origin.X+mode.Width &&
			f.pos.Y >= origin.Y && f.pos.Y < origin.Y+mode.Height {
			return id, nil
		}
	}
	return 0, platform.ErrNoMonitor
}

func (f *fakeBackend) IsFullscreen(platform.WindowID) (bool, error) {
	return f.fullscreen, nil
}

func (f *fakeBackend) SetFullscreen(_ platform.WindowID, fullscreen bool) error {
	if f.setFullscreenErr != nil {
		return f.setFullscreenErr
	}
	if fullscreen {
		f.calls = append(f.calls, "fullscreen")
	} else {
		f.calls = append(f.calls, "windowed")
	}
	f.fullscreen = fullscreen
	f.record()
	return nil
}

func (f *fakeBackend) SetWindowPosition(_ platform.WindowID, pos platform.Point) error {
	if f.moveErr != nil {
		return f.moveErr
	}
	if f.fullscreen {
		return errors.New("fake: cannot move a fullscreen window")
	}
	f.calls = append(f.calls, "move")
	f.pos = pos
	f.record()
	return nil
}

// threeMonitors returns a backend with three 1920x1080 monitors side by side
// and a 1280x720 window on the first one.
func threeMonitors() *fakeBackend {
	f := &fakeBackend{
		monitors: []platform.MonitorID{101, 102, 103},
		positions: map[platform.MonitorID]platform.Point{
			101: {X: 0, Y: 0},
			102: {X: 1920, Y: 0},
			103: {X: 3840, Y: 0},
		},
		modes: map[platform.MonitorID]platform.VideoMode{
			101: {Width: 1920, Height: 1080},
			102: {Width: 1920, Height: 1080},
			103: {Width: 1920, Height: 1080},
		},
		size: platform.Size{Width: 1280, Height: 720},
		pos:  platform.Point{X: 100, Y: 100},
	}
	f.record()
	return f
}
