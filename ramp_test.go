package xsct

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRampFill(t *testing.T) {
	for _, tc := range []struct {
		name       string
		white      Gamma
		brightness float64
		last       [3]uint16
	}{
		{"Neutral", Gamma{1, 1, 1}, 1.0, [3]uint16{65279, 65279, 65279}},
		{"Scaled", Gamma{1, 0.5, 0}, 1.0, [3]uint16{65279, 32640, 0}},
		{"Dimmed", Gamma{1, 1, 1}, 0.5, [3]uint16{32640, 32640, 32640}},
	} {
		t.Run(tc.name, func(t *testing.T) {
			ramp := NewRamp(256)
			ramp.Fill(tc.white, tc.brightness)

			assert.Equal(t, uint16(0), ramp.Red[0])
			assert.Equal(t, uint16(0), ramp.Green[0])
			assert.Equal(t, uint16(0), ramp.Blue[0])
			assert.Equal(t, tc.last[0], ramp.Red[255])
			assert.Equal(t, tc.last[1], ramp.Green[255])
			assert.Equal(t, tc.last[2], ramp.Blue[255])

			for _, channel := range [][]uint16{ramp.Red, ramp.Green, ramp.Blue} {
				for i := 1; i < len(channel); i++ {
					require.GreaterOrEqual(t, channel[i], channel[i-1], "channel not monotonic at %d", i)
				}
			}
		})
	}
}

func TestRampSize(t *testing.T) {
	ramp := NewRamp(1024)
	require.Equal(t, 1024, ramp.Size())
	require.Len(t, ramp.Red, 1024)
	require.Len(t, ramp.Green, 1024)
	require.Len(t, ramp.Blue, 1024)
}

func TestRampPeaks(t *testing.T) {
	ramp := &Ramp{
		Red:   []uint16{0, 100, 65535},
		Green: []uint16{0, 50, 32000},
		Blue:  []uint16{0, 0, 0},
	}
	assert.Equal(t, Gamma{R: 65535, G: 32000, B: 0}, ramp.Peaks())
	assert.Equal(t, Gamma{}, (&Ramp{}).Peaks())
}
