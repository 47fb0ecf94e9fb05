package main

import (
	"log/slog"
	"os"

	"github.com/charmbracelet/log"

	"github.com/sdkran/sdkran/internal"
	"github.com/sdkran/sdkran/internal/cli"
)

// The entry point for the sdkran version report.
//
// Initializes logging, records build information, and runs the CLI. The exit
// code is 0 when the report was printed and 1 otherwise.
func main() {
	slog.SetDefault(logger())

	slog.Debug("build", "version", internal.VersionString())

	slog.Debug("sdkran is running",
		"pid", os.Getpid(),
		"cwd", cwd(),
		"args", os.Args,
	)

	os.Exit(cli.Run(os.Args[1:], os.Stdout, os.Stderr))
}

// Creates a logger seeded from build-time linker flags.
//
// The logger is reconfigured after flag parsing via cli.Run.
func logger() *slog.Logger {
	handler := log.NewWithOptions(os.Stderr, log.Options{
		Prefix: internal.Name,
		Level:  log.Level(internal.LogLevel()),
	})
	return slog.New(handler)
}

// Returns the current working directory or "(unknown)".
func cwd() string {
	cwd, err := os.Getwd()
	if err != nil {
		return "(unknown)"
	}
	return cwd
}
