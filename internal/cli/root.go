package cli

import (
	"io"
	"log/slog"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"

	"github.com/sdkran/sdkran/internal"
	"github.com/sdkran/sdkran/internal/console"
	"github.com/sdkran/sdkran/internal/paths"
)

// Flags shared by every command.
type Globals struct {
	Quiet   bool   `short:"q" help:"Suppress informational output."`
	Verbose bool   `short:"v" help:"Enable verbose output."`
	Debug   bool   `short:"d" help:"Enable debug output."`
	Color   string `enum:"auto,always,never" default:"auto" help:"When to color output (${enum})."`
	Dir     string `name:"sdkman-dir" env:"SDKMAN_DIR" hidden:"" placeholder:"PATH" help:"Override the SDKMAN directory."`
}

// Represents the root command.
type RootCmd struct {
	Globals
	Version VersionCmd `cmd:"" default:"1" help:"Show version information."`
}

// Exit code requested by kong, for example after printing help.
type exitCode int

// Parses args, configures logging, and runs the selected command.
//
// Returns the process exit code: 0 on success, 1 on any failure. Failures
// are reported on stderr as "Error: <message>". Flags that end the program
// early, like --help, return the code kong asks for instead of exiting.
func Run(args []string, stdout, stderr io.Writer) (code int) {
	var root RootCmd

	con := console.New(stdout, stderr, console.ModeAuto)

	defer func() {
		if r := recover(); r != nil {
			c, ok := r.(exitCode)
			if !ok {
				panic(r)
			}
			code = int(c)
		}
	}()

	parser, err := kong.New(&root,
		kong.Name(internal.Name),
		kong.Description("Show the SDKMAN script version and the native version.\n\nThe SDKMAN directory is read from "+paths.EnvVar+", or defaults to ~/"+paths.DefaultDirName+"."),
		kong.UsageOnError(),
		kong.Writers(stdout, stderr),
		kong.Exit(func(code int) { panic(exitCode(code)) }),
	)
	if err != nil {
		con.Error(message(err))
		return 1
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		con.Error(message(err))
		return 1
	}

	configure(&root.Globals, stderr)
	con = console.New(stdout, stderr, console.Mode(root.Color))

	if err := kongCtx.Run(con, &root.Globals); err != nil {
		slog.Debug("version report failed", "error", err)
		con.Error(message(err))
		return 1
	}

	return 0
}

// Applies flags to the process-wide modes and the global logger.
func configure(g *Globals, stderr io.Writer) {
	internal.ApplyFlags(g.Quiet, g.Debug, g.Verbose)

	handler, ok := slog.Default().Handler().(*log.Logger)
	if !ok {
		return // Not a charm logger, nothing to configure
	}

	verbose := internal.IsVerbose()

	handler.SetLevel(log.Level(internal.LogLevel()))
	handler.SetReportTimestamp(verbose)
	handler.SetReportCaller(verbose)
	handler.SetOutput(stderr)
}
