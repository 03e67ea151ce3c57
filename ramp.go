package xsct

// Ramp is a discretized per-channel gamma table in the form accepted by the
// display server. All three channels have the same number of points.
type Ramp struct {
	Red, Green, Blue []uint16
}

// NewRamp allocates a ramp with the specified number of points per channel.
func NewRamp(size int) *Ramp {
	return &Ramp{
		Red:   make([]uint16, size),
		Green: make([]uint16, size),
		Blue:  make([]uint16, size),
	}
}

// Size returns the number of points per channel.
func (r *Ramp) Size() int {
	return len(r.Red)
}

// Fill populates the ramp with a linear curve scaled by the white point and
// brightness. Brightness must already be in [0, 1]; with the white point
// also in [0, 1], every value fits in 16 bits without an overflow check.
func (r *Ramp) Fill(white Gamma, brightness float64) {
	size := float64(len(r.Red))
	for i := range r.Red {
		v := gammaMult * brightness * float64(i) / size
		r.Red[i] = uint16(v*white.R + 0.5)
		r.Green[i] = uint16(v*white.G + 0.5)
		r.Blue[i] = uint16(v*white.B + 0.5)
	}
}

// Peaks returns the last point of each channel. The ramp is assumed to be
// monotonically increasing, so the endpoint carries the channel's peak
// intensity.
func (r *Ramp) Peaks() Gamma {
	i := len(r.Red) - 1
	if i < 0 {
		return Gamma{}
	}
	return Gamma{
		R: float64(r.Red[i]),
		G: float64(r.Green[i]),
		B: float64(r.Blue[i]),
	}
}
