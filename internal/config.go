package internal

import (
	"log/slog"
	"strconv"
	"sync/atomic"
)

// Boolean mode seeded from a linker flag and switchable at runtime.
type modeFlag struct {
	atomic.Bool
}

// Creates a mode from its raw linker value. Unparsable values mean false.
func newModeFlag(raw string) *modeFlag {
	m := &modeFlag{}
	if v, err := strconv.ParseBool(raw); err == nil {
		m.Store(v)
	}
	return m
}

var (
	quietMode   = newModeFlag(rawQuiet)   // Suppresses informational logs.
	debugMode   = newModeFlag(rawDebug)   // Enables debug logs.
	verboseMode = newModeFlag(rawVerbose) // Adds timestamps and callers to logs.
)

// Turns on the modes requested on the command line.
//
// Modes enabled at build time stay enabled; flags can only add to them.
func ApplyFlags(quiet, debug, verbose bool) {
	quietMode.Store(quiet || quietMode.Load())
	debugMode.Store(debug || debugMode.Load())
	verboseMode.Store(verbose || verboseMode.Load())
}

// Returns true if quiet mode is enabled.
func IsQuiet() bool {
	return quietMode.Load()
}

// Returns true if debug mode is enabled.
func IsDebug() bool {
	return debugMode.Load()
}

// Returns true if verbose logging is enabled.
func IsVerbose() bool {
	return verboseMode.Load()
}

// Returns the log level implied by the current modes.
//
// Debug takes precedence over quiet.
func LogLevel() slog.Level {
	if IsDebug() {
		return slog.LevelDebug
	}
	if IsQuiet() {
		return slog.LevelWarn
	}
	return slog.LevelInfo
}
