package x11

import (
	"github.com/BurntSushi/xgb/randr"
	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil"
)

// Connection manages the X11 connection and core X resources
type Connection struct {
	XUtil *xgbutil.XUtil
	Root  xproto.Window
}

// NewConnection connects to the X server named by display, or $DISPLAY when
// display is empty, and initializes the RandR extension.
func NewConnection(display string) (*Connection, error) {
	var (
		xu  *xgbutil.XUtil
		err error
	)
	if display != "" {
		xu, err = xgbutil.NewConnDisplay(display)
	} else {
		xu, err = xgbutil.NewConn()
	}
	if err != nil {
		return nil, err
	}

	if err := randr.Init(xu.Conn()); err != nil {
		xu.Conn().Close()
		return nil, err
	}

	return &Connection{
		XUtil: xu,
		Root:  xu.RootWin(),
	}, nil
}

// Close cleanly disconnects from the X11 server
func (c *Connection) Close() {
	c.XUtil.Conn().Close()
}
