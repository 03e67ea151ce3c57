// Package xsct adjusts the color temperature and brightness of display
// outputs by rewriting per-CRTC gamma ramps, and estimates the currently
// applied temperature and brightness from the ramps already installed.
package xsct

import "math"

// Temperature is a color temperature in Kelvin.
type Temperature int

// Displayable temperature range.
const (
	// MinTemperature is the lowest temperature which can be displayed.
	MinTemperature Temperature = 700
	// NormTemperature is the neutral reference temperature at which all
	// channels are at full intensity.
	NormTemperature Temperature = 6500
)

// State is a display color state: a temperature plus a brightness scale in
// [0, 1]. It is either a desired setting or an estimate read back from a
// display.
type State struct {
	Temperature Temperature
	Brightness  float64
}

// Gamma is a set of per-channel multipliers. A value of 1 is neutral.
type Gamma struct {
	R, G, B float64
}

// gammaMult scales a unit ramp value to the 16-bit range used by display
// hardware.
const gammaMult = 65535.0

// brightnessDiv converts a per-CRTC ramp peak back to a unit brightness. It
// is slightly under 65535 to absorb the rounding headroom of the encode step
// (a 1024-entry ramp peaks at 65535*1023/1024 = 65470.99), so a brightness
// of 1.0 written out reads back as 1.0 after clamping.
const brightnessDiv = 65470.988

// Approximation of the redshift gamma table without limits, as
// GAMMA = K0 + K1*ln(T - T0). Calibration data, not derivable; any change
// alters visible color output.
const (
	// red range (T0 = MinTemperature)
	gammaK0GR = -1.47751309139817 // green
	gammaK1GR = 0.28590164772055
	gammaK0BR = -4.38321650114872 // blue
	gammaK1BR = 0.6212158769447
	// blue range (T0 = NormTemperature - MinTemperature)
	gammaK0RB = 1.75390204039018 // red
	gammaK1RB = -0.1150805671482
	gammaK0GB = 1.49221604915144 // green
	gammaK1GB = -0.07513509588921
)

// Whitepoint computes the channel multipliers for a color temperature. Below
// NormTemperature the output is red-biased with R fixed at 1, and at or
// above it blue-biased with B fixed at 1; the two separately calibrated fits
// meet at (1, 1, 1) for NormTemperature. Temperatures at or below
// MinTemperature yield pure red.
func Whitepoint(temp Temperature) Gamma {
	var white Gamma
	if temp < NormTemperature {
		white.R = 1
		if temp > MinTemperature {
			g := math.Log(float64(temp - MinTemperature))
			white.G = clamp(gammaK0GR+gammaK1GR*g, 0, 1)
			white.B = clamp(gammaK0BR+gammaK1BR*g, 0, 1)
		}
	} else {
		g := math.Log(float64(temp - (NormTemperature - MinTemperature)))
		white.R = clamp(gammaK0RB+gammaK1RB*g, 0, 1)
		white.G = clamp(gammaK0GB+gammaK1GB*g, 0, 1)
		white.B = 1
	}
	return white
}

// Estimate recovers a State from per-channel ramp peaks summed across n
// CRTCs, inverting [Whitepoint]. The peaks are as returned by [Ramp.Peaks],
// added together when combining CRTCs. A zero peak or n <= 0 yields a
// temperature of 0, meaning no usable signal.
//
// The warm/cool branch is inferred from the blue-red difference of the
// normalized channels rather than from a temperature threshold, keeping the
// inverse continuous with the forward model at the range boundary.
func Estimate(peaks Gamma, n int) State {
	var st State
	b := max(peaks.R, peaks.G, peaks.B)
	if b <= 0 || n <= 0 {
		return st
	}
	peaks.R /= b
	peaks.G /= b
	peaks.B /= b
	st.Brightness = clamp(b/float64(n)/brightnessDiv, 0, 1)

	var t float64
	delta := peaks.B - peaks.R
	switch {
	case delta < 0 && peaks.B > 0:
		t = math.Exp((peaks.G+1+delta-(gammaK0GR+gammaK0BR))/(gammaK1GR+gammaK1BR)) + float64(MinTemperature)
	case delta < 0 && peaks.G > 0:
		t = math.Exp((peaks.G-gammaK0GR)/gammaK1GR) + float64(MinTemperature)
	case delta < 0:
		t = float64(MinTemperature)
	default:
		t = math.Exp((peaks.G+1-delta-(gammaK0GB+gammaK0RB))/(gammaK1GB+gammaK1RB)) + float64(NormTemperature-MinTemperature)
	}
	st.Temperature = Temperature(t + 0.5)
	return st
}

func clamp(x, lo, hi float64) float64 {
	return min(max(x, lo), hi)
}
