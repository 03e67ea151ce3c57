package xsct

import (
	"fmt"
	"io"
	"log/slog"
)

// Display is a connection to a display server exposing the gamma ramps of
// its outputs. Implementations need not be safe for concurrent use; this
// package drives them strictly sequentially.
type Display interface {
	// ScreenCount returns the number of screens on the connection.
	ScreenCount() int

	// Controllers returns the CRTCs belonging to a screen, in server order.
	Controllers(screen int) ([]ControllerID, error)

	// RampSize returns the native gamma ramp size of a CRTC. Sizes may
	// differ between CRTCs on the same screen.
	RampSize(crtc ControllerID) (int, error)

	// Ramp reads back the gamma ramp currently installed on a CRTC.
	Ramp(crtc ControllerID) (*Ramp, error)

	// SetRamp installs a gamma ramp on a CRTC. The ramp must have the CRTC's
	// native size.
	SetRamp(crtc ControllerID, ramp *Ramp) error

	// Close closes the connection to the display server.
	Close()
}

// ControllerID identifies a CRTC on a Display. Values are opaque to this
// package.
type ControllerID uint32

// Adjuster reads and writes color state across the CRTCs of a Display.
type Adjuster struct {
	display Display
	logger  *slog.Logger
}

// NewAdjuster creates an Adjuster for the display. If logger is not nil, it
// is used for debug logs from this package.
func NewAdjuster(display Display, logger *slog.Logger) *Adjuster {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Adjuster{display: display, logger: logger}
}

// selected applies the CRTC selection rule shared by reads and writes: an
// explicit in-bounds index selects exactly that CRTC, anything else selects
// all of them.
func selected(crtcs []ControllerID, crtc int) []ControllerID {
	if crtc >= 0 && crtc < len(crtcs) {
		return crtcs[crtc : crtc+1]
	}
	return crtcs
}

// ReadState estimates the temperature and brightness of a screen from the
// gamma ramps installed on its CRTCs, summing the per-channel peaks across
// the selection before inverting the curve model. crtc selects a single CRTC
// by zero-based index; a negative or out-of-range index combines all of
// them.
func (a *Adjuster) ReadState(screen, crtc int) (State, error) {
	crtcs, err := a.display.Controllers(screen)
	if err != nil {
		return State{}, fmt.Errorf("get screen %d crtcs: %w", screen, err)
	}
	crtcs = selected(crtcs, crtc)

	var peaks Gamma
	for _, id := range crtcs {
		ramp, err := a.display.Ramp(id)
		if err != nil {
			return State{}, fmt.Errorf("get crtc %d gamma: %w", id, err)
		}
		p := ramp.Peaks()
		peaks.R += p.R
		peaks.G += p.G
		peaks.B += p.B
	}

	var ratios Gamma
	if b := max(peaks.R, peaks.G, peaks.B); b > 0 {
		ratios = Gamma{R: peaks.R / b, G: peaks.G / b, B: peaks.B / b}
	}
	st := Estimate(peaks, len(crtcs))
	a.logger.Debug("estimated state", "screen", screen, "temperature", int(st.Temperature), "brightness", st.Brightness, "r", ratios.R, "g", ratios.G, "b", ratios.B)
	return st, nil
}

// WriteState applies a color state to a screen. The white point and
// brightness are shared by every selected CRTC, but the ramp is recomputed
// at each CRTC's native size. A CRTC which fails to update is skipped with a
// warning so one bad output does not block the rest.
func (a *Adjuster) WriteState(screen, crtc int, st State) error {
	white := Whitepoint(st.Temperature)
	brightness := clamp(st.Brightness, 0, 1)
	a.logger.Debug("gamma", "r", white.R, "g", white.G, "b", white.B, "brightness", brightness)

	crtcs, err := a.display.Controllers(screen)
	if err != nil {
		return fmt.Errorf("get screen %d crtcs: %w", screen, err)
	}
	for _, id := range selected(crtcs, crtc) {
		size, err := a.display.RampSize(id)
		if err != nil {
			a.logger.Warn("failed to get crtc gamma size", "crtc", uint32(id), "error", err)
			continue
		}
		ramp := NewRamp(size)
		ramp.Fill(white, brightness)
		if err := a.display.SetRamp(id, ramp); err != nil {
			a.logger.Warn("failed to set crtc gamma", "crtc", uint32(id), "error", err)
		}
	}
	return nil
}

// Toggle switches every screen between the day and night presets, keeping
// the estimated brightness. It honors the CRTC selection but ignores any
// screen selection: toggling is a whole-desktop operation.
func (a *Adjuster) Toggle(p *Policy, crtc int) error {
	for screen := 0; screen < a.display.ScreenCount(); screen++ {
		st, err := a.ReadState(screen, crtc)
		if err != nil {
			return err
		}
		st.Temperature = p.ToggleTarget(st.Temperature)
		if err := a.WriteState(screen, crtc, st); err != nil {
			return err
		}
	}
	return nil
}
