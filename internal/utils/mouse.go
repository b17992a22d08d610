package utils

import (
	"github.com/jezek/xgb"
	"github.com/jezek/xgb/xproto"
)

var (
	XConn *xgb.Conn
	XRoot xproto.Window
)

func InitX11() error {
	var err error
	XConn, err = xgb.NewConn()
	if err != nil {
		return err
	}

	setup := xproto.Setup(XConn)
	XRoot = setup.DefaultScreen(XConn).Root
	return nil
}

func CloseX11() {
	if XConn != nil {
		XConn.Close()
		XConn = nil
	}
}

func GetGlobalMousePosition() (int, int, error) {
	if XConn == nil {
		if err := InitX11(); err != nil {
			return 0, 0, err
		}
	}

	reply, err := xproto.QueryPointer(XConn, XRoot).Reply()
	if err != nil {
		return 0, 0, err
	}

	return int(reply.RootX), int(reply.RootY), nil
}

// GetRootSize reports the default screen dimensions, used to normalize the
// global pointer when the window does not receive motion events.
func GetRootSize() (int, int, error) {
	if XConn == nil {
		if err := InitX11(); err != nil {
			return 0, 0, err
		}
	}
	screen := xproto.Setup(XConn).DefaultScreen(XConn)
	return int(screen.WidthInPixels), int(screen.HeightInPixels), nil
}

// GlobalPointer polls the X11 root pointer. The last error is kept so callers
// can stop polling after the first failure instead of spamming the log.
type GlobalPointer struct {
	Err error
}

// Position returns the pointer position in root-window pixels and the root size.
func (g *GlobalPointer) Position() (x, y, w, h int, ok bool) {
	if g.Err != nil {
		return 0, 0, 0, 0, false
	}
	x, y, err := GetGlobalMousePosition()
	if err != nil {
		g.Err = err
		Warn("X11 pointer unavailable: %v", err)
		return 0, 0, 0, 0, false
	}
	w, h, err = GetRootSize()
	if err != nil {
		g.Err = err
		return 0, 0, 0, 0, false
	}
	return x, y, w, h, true
}
