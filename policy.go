package xsct

import (
	"io"
	"log/slog"
	"os"
	"strconv"
)

// Environment variables overriding the built-in day and night presets.
const (
	EnvTemperatureDay   = "XSCT_TEMPERATURE_DAY"
	EnvTemperatureNight = "XSCT_TEMPERATURE_NIGHT"
)

// Built-in day and night presets, used when the environment provides none.
const (
	DefaultDay   = NormTemperature
	DefaultNight = Temperature(4500)
)

// toggleDelta is the hysteresis band below the day preset within which the
// display still counts as day for toggling purposes.
const toggleDelta = 200

// Policy bounds user- and environment-supplied temperatures and brightness
// values and decides day/night toggling. The zero value uses the built-in
// presets and logs nowhere; NewPolicy applies the environment overrides.
type Policy struct {
	Day    Temperature
	Night  Temperature
	logger *slog.Logger
}

// NewPolicy creates a Policy with the day and night presets taken from the
// environment, falling back to the built-in defaults on missing, malformed,
// or out-of-range values. If logger is not nil, it is used for warnings
// about corrected values.
func NewPolicy(logger *slog.Logger) *Policy {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	p := &Policy{Day: DefaultDay, Night: DefaultNight, logger: logger}
	p.Day = p.envTemperature(EnvTemperatureDay, p.Day)
	p.Night = p.envTemperature(EnvTemperatureNight, p.Night)
	return p
}

func (p *Policy) log() *slog.Logger {
	if p.logger == nil {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return p.logger
}

func (p *Policy) envTemperature(name string, dfl Temperature) Temperature {
	v, ok := os.LookupEnv(name)
	if !ok {
		return dfl
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		p.log().Warn("invalid value for environment variable, expected an integer", "name", name, "value", v)
		n = int(dfl)
	}
	return p.BoundTemperature(Temperature(n), dfl, name)
}

// BoundTemperature checks that a temperature can be displayed and corrects
// it if not, logging a warning. A negative fallback means none was provided,
// in which case the neutral or minimum temperature is substituted. what
// names the source of the value for the warning.
func (p *Policy) BoundTemperature(t, fallback Temperature, what string) Temperature {
	switch {
	case t <= 0:
		p.log().Warn("temperatures of 0 and below cannot be displayed", "from", what)
		if fallback < 0 {
			return NormTemperature
		}
		return fallback
	case t < MinTemperature:
		p.log().Warn("temperatures below the minimum cannot be displayed", "min", int(MinTemperature), "from", what)
		if fallback < 0 {
			return MinTemperature
		}
		return fallback
	}
	return t
}

// BoundBrightness clamps a brightness to [0, 1], logging a warning when it
// was out of range.
func (p *Policy) BoundBrightness(b float64) float64 {
	if b < 0 {
		p.log().Warn("brightness values below 0.0 cannot be displayed")
		return 0
	}
	if b > 1 {
		p.log().Warn("brightness values above 1.0 cannot be displayed")
		return 1
	}
	return b
}

// BoundState bounds both members of a state. what names the source of the
// values for warnings.
func (p *Policy) BoundState(st State, what string) State {
	st.Temperature = p.BoundTemperature(st.Temperature, -1, what)
	st.Brightness = p.BoundBrightness(st.Brightness)
	return st
}

// ToggleTarget returns the preset to switch to given the current estimated
// temperature: night if the display currently counts as day (anywhere above
// the hysteresis band below the day preset), day otherwise.
func (p *Policy) ToggleTarget(current Temperature) Temperature {
	if current > p.Day-toggleDelta {
		return p.Night
	}
	return p.Day
}
