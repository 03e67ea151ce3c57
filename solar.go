package xsct

import (
	"time"

	"github.com/nathan-osman/go-sunrise"
)

// Default solar elevation thresholds in degrees, roughly civil twilight up
// to full daylight.
const (
	SolarElevationNight = -6.0
	SolarElevationDay   = 3.0
)

// Solar interpolates a color temperature from the sun's elevation at the
// given coordinates, moving linearly from night to day as the elevation
// rises from elevationNight to elevationDay.
func Solar(now time.Time, lat, lng float64, elevationNight, elevationDay float64, night, day Temperature) Temperature {
	var progress float64
	switch elevation := sunrise.Elevation(lat, lng, now); {
	case elevation < elevationNight:
		progress = 0
	case elevation >= elevationDay:
		progress = 1
	default:
		progress = (elevationNight - elevation) / (elevationNight - elevationDay)
	}
	return Temperature((1-progress)*float64(night) + progress*float64(day))
}
