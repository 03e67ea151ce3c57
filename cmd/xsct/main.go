// Command xsct sets the color temperature and brightness of X11 screens by
// rewriting CRTC gamma ramps, or estimates the current values from the ramps
// already installed.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/pgaskin/xsct"
	"github.com/spf13/pflag"
)

const version = "2.4"

const usageText = `Xsct (` + version + `)
Usage: xsct [options] [temperature] [brightness]
	If the temperature is 0, xsct resets the display to the day temperature
	If no arguments are passed, xsct estimates the current display temperature and brightness
Options:
	-h, --help            display this usage information
	-v, --verbose         display debugging information
	-d, --delta           treat temperature and brightness as relative shifts
	-t, --toggle          toggle between day and night mode
	-s, --screen N        only select the screen specified by the given zero-based index
	-c, --crtc N          only select the CRTC specified by the given zero-based index
	-l, --location LAT:LON  derive the temperature from the sun's elevation
`

func main() {
	os.Exit(run(os.Args[1:], os.Stdout))
}

func run(args []string, stdout io.Writer) int {
	flags := pflag.NewFlagSet("xsct", pflag.ContinueOnError)
	flags.SetOutput(io.Discard)
	var (
		help     = flags.BoolP("help", "h", false, "")
		verbose  = flags.BoolP("verbose", "v", false, "")
		delta    = flags.BoolP("delta", "d", false, "")
		toggle   = flags.BoolP("toggle", "t", false, "")
		screen   = flags.IntP("screen", "s", -1, "")
		crtc     = flags.IntP("crtc", "c", -1, "")
		location = flags.StringP("location", "l", "", "")
	)

	flagArgs, posArgs := splitArgs(args)
	err := flags.Parse(flagArgs)
	posArgs = append(posArgs, flags.Args()...)

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	if err != nil {
		logger.Error(err.Error())
		fmt.Fprint(stdout, usageText)
		return 1
	}
	if *help {
		fmt.Fprint(stdout, usageText)
		return 0
	}

	var (
		temp       *xsct.Temperature
		brightness *float64
	)
	for _, arg := range posArgs {
		switch {
		case temp == nil:
			n, err := strconv.Atoi(arg)
			if err != nil {
				logger.Error("invalid temperature argument", "arg", arg)
				fmt.Fprint(stdout, usageText)
				return 1
			}
			t := xsct.Temperature(n)
			temp = &t
		case brightness == nil:
			b, err := strconv.ParseFloat(arg, 64)
			if err != nil {
				logger.Error("invalid brightness argument", "arg", arg)
				fmt.Fprint(stdout, usageText)
				return 1
			}
			brightness = &b
		default:
			logger.Error("unrecognized argument", "arg", arg)
			fmt.Fprint(stdout, usageText)
			return 1
		}
	}

	// partial deltas are a usage error, checked before touching the display
	// so nothing gets written first
	if *delta && (temp == nil || brightness == nil) {
		logger.Error("temperature and brightness delta must both be specified")
		fmt.Fprint(stdout, usageText)
		return 1
	}

	display, err := xsct.OpenX11("")
	if err != nil {
		logger.Error("could not open a connection to the X server", "error", err)
		logger.Info("ensure the DISPLAY environment variable is set correctly")
		return 1
	}
	defer display.Close()

	policy := xsct.NewPolicy(logger)
	adjuster := xsct.NewAdjuster(display, logger)

	nscreen := display.ScreenCount()
	if *screen >= nscreen {
		logger.Error("invalid screen index", "index", *screen, "expected", fmt.Sprintf("0..%d", nscreen-1))
		return 1
	}

	// Toggling is a whole-desktop operation: it covers every screen even
	// when --screen narrows the rest of the invocation.
	if *toggle {
		if err := adjuster.Toggle(policy, *crtc); err != nil {
			logger.Error("failed to toggle day/night mode", "error", err)
			return 1
		}
	}

	if brightness == nil && !*delta {
		b := 1.0
		brightness = &b
	}
	if temp == nil && !*delta && *location != "" {
		lat, lng, err := parseLocation(*location)
		if err != nil {
			logger.Error("invalid location", "value", *location, "error", err)
			fmt.Fprint(stdout, usageText)
			return 1
		}
		t := xsct.Solar(time.Now(), lat, lng, xsct.SolarElevationNight, xsct.SolarElevationDay, policy.Night, policy.Day)
		logger.Debug("solar temperature", "temperature", int(t))
		temp = &t
	}

	first, last := 0, nscreen-1
	if *screen >= 0 {
		first, last = *screen, *screen
	}

	switch {
	case temp == nil && !*delta: // estimate and print
		for i := first; i <= last; i++ {
			st, err := adjuster.ReadState(i, *crtc)
			if err != nil {
				logger.Error("failed to estimate screen state", "screen", i, "error", err)
				return 1
			}
			fmt.Fprintf(stdout, "Screen[%d]: temperature ~ %d %g\n", i, st.Temperature, st.Brightness)
		}
	case !*delta: // absolute
		st := xsct.State{Temperature: *temp, Brightness: *brightness}
		if st.Temperature == 0 {
			st.Temperature = policy.Day
		} else {
			st = policy.BoundState(st, "specified by user")
		}
		for i := first; i <= last; i++ {
			if err := adjuster.WriteState(i, *crtc, st); err != nil {
				logger.Error("failed to set screen state", "screen", i, "error", err)
				return 1
			}
		}
	default: // delta
		for i := first; i <= last; i++ {
			st, err := adjuster.ReadState(i, *crtc)
			if err != nil {
				logger.Error("failed to estimate screen state", "screen", i, "error", err)
				return 1
			}
			st.Temperature += *temp
			st.Brightness += *brightness
			st = policy.BoundState(st, "specified by user")
			if err := adjuster.WriteState(i, *crtc, st); err != nil {
				logger.Error("failed to set screen state", "screen", i, "error", err)
				return 1
			}
		}
	}
	return 0
}

// flags which consume the following argument as their value
var flagValues = map[string]bool{
	"-s": true, "--screen": true,
	"-c": true, "--crtc": true,
	"-l": true, "--location": true,
}

// splitArgs routes arguments to the flag parser or the positional list,
// keeping negative numbers (temperature and brightness deltas) out of the
// flag parser's hands.
func splitArgs(args []string) (flagArgs, posArgs []string) {
	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch {
		case flagValues[arg]:
			flagArgs = append(flagArgs, arg)
			if i+1 < len(args) {
				i++
				flagArgs = append(flagArgs, args[i])
			}
		case strings.HasPrefix(arg, "-") && !isNumber(arg):
			flagArgs = append(flagArgs, arg)
		default:
			posArgs = append(posArgs, arg)
		}
	}
	return flagArgs, posArgs
}

func isNumber(arg string) bool {
	return len(arg) > 1 && (arg[1] == '.' || ('0' <= arg[1] && arg[1] <= '9'))
}

func parseLocation(s string) (lat, lng float64, err error) {
	latstr, lngstr, ok := strings.Cut(s, ":")
	if !ok {
		return 0, 0, fmt.Errorf("expected LAT:LON")
	}
	if lat, err = strconv.ParseFloat(latstr, 64); err != nil {
		return 0, 0, fmt.Errorf("latitude: %w", err)
	}
	if lng, err = strconv.ParseFloat(lngstr, 64); err != nil {
		return 0, 0, fmt.Errorf("longitude: %w", err)
	}
	return lat, lng, nil
}
