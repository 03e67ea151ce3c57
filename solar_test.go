package xsct

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSolar(t *testing.T) {
	// Berlin
	const lat, lng = 52.52, 13.405
	const night, day Temperature = 4500, 6500

	t.Run("Noon", func(t *testing.T) {
		now := time.Date(2026, time.June, 21, 12, 0, 0, 0, time.UTC)
		assert.Equal(t, day, Solar(now, lat, lng, SolarElevationNight, SolarElevationDay, night, day))
	})

	t.Run("Midnight", func(t *testing.T) {
		now := time.Date(2026, time.January, 15, 0, 0, 0, 0, time.UTC)
		assert.Equal(t, night, Solar(now, lat, lng, SolarElevationNight, SolarElevationDay, night, day))
	})

	t.Run("Dawn", func(t *testing.T) {
		// around sunrise, the result interpolates strictly between the presets
		now := time.Date(2026, time.June, 21, 2, 45, 0, 0, time.UTC)
		temp := Solar(now, lat, lng, SolarElevationNight, SolarElevationDay, night, day)
		assert.Greater(t, temp, night)
		assert.Less(t, temp, day)
	})
}
