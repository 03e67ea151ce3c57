package xsct

import (
	"fmt"

	"github.com/BurntSushi/xgb"
	"github.com/BurntSushi/xgb/randr"
	"github.com/BurntSushi/xgb/xproto"
)

// X11 is a Display backed by an X server using the RandR extension.
type X11 struct {
	conn  *xgb.Conn
	roots []xproto.Window
}

// OpenX11 opens a connection to the specified X display (empty for the
// default) and initializes RandR on it.
func OpenX11(display string) (*X11, error) {
	conn, err := xgb.NewConnDisplay(display)
	if err != nil {
		return nil, err
	}
	if err := randr.Init(conn); err != nil {
		conn.Close()
		return nil, err
	}
	setup := xproto.Setup(conn)
	roots := make([]xproto.Window, len(setup.Roots))
	for i, screen := range setup.Roots {
		roots[i] = screen.Root
	}
	return &X11{conn: conn, roots: roots}, nil
}

func (d *X11) ScreenCount() int {
	return len(d.roots)
}

func (d *X11) Controllers(screen int) ([]ControllerID, error) {
	if screen < 0 || screen >= len(d.roots) {
		return nil, fmt.Errorf("no screen %d", screen)
	}
	resources, err := randr.GetScreenResourcesCurrent(d.conn, d.roots[screen]).Reply()
	if err != nil {
		return nil, fmt.Errorf("get screen resources: %w", err)
	}
	crtcs := make([]ControllerID, len(resources.Crtcs))
	for i, crtc := range resources.Crtcs {
		crtcs[i] = ControllerID(crtc)
	}
	return crtcs, nil
}

func (d *X11) RampSize(crtc ControllerID) (int, error) {
	gamma, err := randr.GetCrtcGammaSize(d.conn, randr.Crtc(crtc)).Reply()
	if err != nil {
		return 0, fmt.Errorf("get crtc gamma size: %w", err)
	}
	return int(gamma.Size), nil
}

func (d *X11) Ramp(crtc ControllerID) (*Ramp, error) {
	gamma, err := randr.GetCrtcGamma(d.conn, randr.Crtc(crtc)).Reply()
	if err != nil {
		return nil, fmt.Errorf("get crtc gamma: %w", err)
	}
	return &Ramp{Red: gamma.Red, Green: gamma.Green, Blue: gamma.Blue}, nil
}

func (d *X11) SetRamp(crtc ControllerID, ramp *Ramp) error {
	if err := randr.SetCrtcGammaChecked(d.conn, randr.Crtc(crtc), uint16(ramp.Size()), ramp.Red, ramp.Green, ramp.Blue).Check(); err != nil {
		return fmt.Errorf("set crtc gamma: %w", err)
	}
	return nil
}

func (d *X11) Close() {
	d.conn.Close()
}
