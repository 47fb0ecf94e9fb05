package report

import (
	"fmt"
	"log/slog"

	"github.com/sdkran/sdkran/internal"
	"github.com/sdkran/sdkran/internal/console"
	"github.com/sdkran/sdkran/internal/files"
	"github.com/sdkran/sdkran/internal/paths"
)

// Header printed above the report.
const Banner = "SDKRAN!"

// Version information for one invocation.
type Report struct {
	Script string // Script-side version read from the version marker.
	Native string // Version compiled into this binary.
	OS     string // Operating system the binary was built for.
	Arch   string // Architecture the binary was built for.
}

// Renders the report as two lines.
//
//	script: 5.9.0
//	native: 0.3.1 (linux amd64)
func (r Report) String() string {
	return fmt.Sprintf("script: %s\nnative: %s (%s %s)\n", r.Script, r.Native, r.OS, r.Arch)
}

// Holds reporter configuration.
type Config struct {
	Dir     string                                // Base directory override. Empty uses the default under home.
	Resolve func(override string) (string, error) // Base directory resolver. Nil uses [paths.BaseDir].
}

// Collects the report.
//
// Errors wrap [ErrResolve] or [ErrRead] with their cause, except a missing
// or irregular version marker, which yields [ErrNotFound] alone so the path
// stays out of the message.
func Collect(cfg Config) (Report, error) {
	resolve := cfg.Resolve
	if resolve == nil {
		resolve = paths.BaseDir
	}

	base, err := resolve(cfg.Dir)
	if err != nil {
		return Report{}, fmt.Errorf("%w: %w", ErrResolve, err)
	}

	marker := paths.VersionMarker(base)
	slog.Debug("reading version marker", "path", marker)

	if _, err := files.CheckFile(marker); err != nil {
		slog.Debug("version marker unavailable", "error", err)
		return Report{}, ErrNotFound
	}

	script, err := files.ReadTrimmed(marker)
	if err != nil {
		return Report{}, fmt.Errorf("%w: %w", ErrRead, err)
	}

	return Report{
		Script: script,
		Native: internal.Version(),
		OS:     internal.OS(),
		Arch:   internal.Arch(),
	}, nil
}

// Prints the banner followed by the report and a blank line.
func Write(con *console.Console, r Report) error {
	if err := con.Header(Banner); err != nil {
		return err
	}
	return con.Print(r.String() + "\n")
}

// Collects and prints the report. Nothing is printed on failure.
func Run(con *console.Console, cfg Config) error {
	r, err := Collect(cfg)
	if err != nil {
		return err
	}
	return Write(con, r)
}
