package xsct

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWhitepoint(t *testing.T) {
	t.Run("WarmRangeRedIsFull", func(t *testing.T) {
		for _, temp := range []Temperature{701, 1000, 2700, 4500, 6499} {
			wp := Whitepoint(temp)
			assert.Equal(t, 1.0, wp.R, "temp %d", temp)
			assert.GreaterOrEqual(t, wp.G, 0.0, "temp %d", temp)
			assert.LessOrEqual(t, wp.G, 1.0, "temp %d", temp)
			assert.GreaterOrEqual(t, wp.B, 0.0, "temp %d", temp)
			assert.LessOrEqual(t, wp.B, 1.0, "temp %d", temp)
		}
	})

	t.Run("CoolRangeBlueIsFull", func(t *testing.T) {
		for _, temp := range []Temperature{6500, 9000, 15000, 30000} {
			wp := Whitepoint(temp)
			assert.Equal(t, 1.0, wp.B, "temp %d", temp)
			assert.GreaterOrEqual(t, wp.R, 0.0, "temp %d", temp)
			assert.LessOrEqual(t, wp.R, 1.0, "temp %d", temp)
		}
	})

	t.Run("NeutralAtRangeBoundary", func(t *testing.T) {
		wp := Whitepoint(NormTemperature)
		assert.InDelta(t, 1.0, wp.R, 1e-6)
		assert.InDelta(t, 1.0, wp.G, 1e-6)
		assert.InDelta(t, 1.0, wp.B, 1e-6)
	})

	t.Run("PureRedAtOrBelowMinimum", func(t *testing.T) {
		for _, temp := range []Temperature{MinTemperature, 100, 1} {
			assert.Equal(t, Gamma{R: 1}, Whitepoint(temp), "temp %d", temp)
		}
	})

	t.Run("WarmerMeansLessBlue", func(t *testing.T) {
		assert.Less(t, Whitepoint(2700).B, Whitepoint(4500).B)
		assert.Less(t, Whitepoint(2700).G, Whitepoint(4500).G)
	})
}

func TestEstimateRoundTrip(t *testing.T) {
	for _, temp := range []Temperature{1000, 2700, 4500, 6500, 9000, 15000} {
		ramp := NewRamp(256)
		ramp.Fill(Whitepoint(temp), 1.0)
		st := Estimate(ramp.Peaks(), 1)
		assert.InDelta(t, float64(temp), float64(st.Temperature), 50, "temp %d", temp)
		assert.InDelta(t, 1.0, st.Brightness, 0.01, "temp %d", temp)
	}
}

func TestEstimateMultipleControllers(t *testing.T) {
	// Two CRTCs with different native ramp sizes at the same state should
	// combine into the same estimate as either one alone.
	const temp Temperature = 3500
	const brightness = 0.5

	var peaks Gamma
	for _, size := range []int{256, 1024} {
		ramp := NewRamp(size)
		ramp.Fill(Whitepoint(temp), brightness)
		p := ramp.Peaks()
		peaks.R += p.R
		peaks.G += p.G
		peaks.B += p.B
	}

	st := Estimate(peaks, 2)
	assert.InDelta(t, float64(temp), float64(st.Temperature), 50)
	assert.InDelta(t, brightness, st.Brightness, 0.01)
}

func TestEstimateNoSignal(t *testing.T) {
	require.Equal(t, State{}, Estimate(Gamma{}, 1))
	require.Equal(t, State{}, Estimate(Gamma{R: 65535, G: 65535, B: 65535}, 0))
}
