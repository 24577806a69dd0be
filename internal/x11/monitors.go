package x11

import (
	"fmt"

	"github.com/BurntSushi/xgb/randr"
)

// Monitor represents a physical display driven by one RandR CRTC.
type Monitor struct {
	CRTC       randr.Crtc
	Name       string
	X          int
	Y          int
	Width      int
	Height     int
	ModeWidth  int // 0 when the CRTC mode is not listed in the screen resources
	ModeHeight int
	Primary    bool
}

// GetMonitors retrieves all active monitors using XRandR, in screen resource
// CRTC order.
func (c *Connection) GetMonitors() ([]Monitor, error) {
	conn := c.XUtil.Conn()

	resources, err := randr.GetScreenResources(conn, c.Root).Reply()
	if err != nil {
		return nil, fmt.Errorf("failed to get screen resources: %w", err)
	}

	// A server without a primary output reports 0 here.
	var primary randr.Output
	if reply, err := randr.GetOutputPrimary(conn, c.Root).Reply(); err == nil {
		primary = reply.Output
	}

	modes := make(map[uint32]randr.ModeInfo, len(resources.Modes))
	for _, mode := range resources.Modes {
		modes[mode.Id] = mode
	}

	var monitors []Monitor

	for i, crtc := range resources.Crtcs {
		crtcInfo, err := randr.GetCrtcInfo(conn, crtc, resources.ConfigTimestamp).Reply()
		if err != nil {
			continue
		}

		// Skip disabled CRTCs
		if crtcInfo.Width == 0 || crtcInfo.Height == 0 || len(crtcInfo.Outputs) == 0 {
			continue
		}

		outputName := fmt.Sprintf("Monitor%d", i)
		outputInfo, err := randr.GetOutputInfo(conn, crtcInfo.Outputs[0], resources.ConfigTimestamp).Reply()
		if err == nil {
			outputName = string(outputInfo.Name)
		}

		mon := Monitor{
			CRTC:   crtc,
			Name:   outputName,
			X:      int(crtcInfo.X),
			Y:      int(crtcInfo.Y),
			Width:  int(crtcInfo.Width),
			Height: int(crtcInfo.Height),
		}
		if mode, ok := modes[uint32(crtcInfo.Mode)]; ok {
			mon.ModeWidth = int(mode.Width)
			mon.ModeHeight = int(mode.Height)
		}
		for _, out := range crtcInfo.Outputs {
			if primary != 0 && out == primary {
				mon.Primary = true
				break
			}
		}

		monitors = append(monitors, mon)
	}

	return monitors, nil
}

// FindMonitor returns the active monitor driven by crtc.
func (c *Connection) FindMonitor(crtc randr.Crtc) (*Monitor, error) {
	monitors, err := c.GetMonitors()
	if err != nil {
		return nil, err
	}
	for i := range monitors {
		if monitors[i].CRTC == crtc {
			return &monitors[i], nil
		}
	}
	return nil, nil
}

// MonitorForRect returns the monitor with the largest overlap with the given
// rectangle, or nil when the rectangle lies outside every monitor.
func MonitorForRect(monitors []Monitor, x, y, width, height int) *Monitor {
	var (
		best     *Monitor
		bestArea int
	)
	for i := range monitors {
		mon := &monitors[i]
		isect := intersectionSize(
			mon.X, mon.Y, mon.X+mon.Width, mon.Y+mon.Height,
			x, y, x+width, y+height,
		)
		area := isect.w * isect.h
		if area > bestArea {
			best = mon
			bestArea = area
		}
	}
	return best
}

type intersection struct {
	w int
	h int
}

func intersectionSize(ax1, ay1, ax2, ay2, bx1, by1, bx2, by2 int) intersection {
	x1 := max(ax1, bx1)
	y1 := max(ay1, by1)
	x2 := min(ax2, bx2)
	y2 := min(ay2, by2)

	if x2 <= x1 || y2 <= y1 {
		return intersection{}
	}
	return intersection{w: x2 - x1, h: y2 - y1}
}
