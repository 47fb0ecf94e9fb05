package console

import (
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

// Controls when color escape sequences are written.
type Mode string

const (
	ModeAuto   Mode = "auto"   // Color only terminals, unless NO_COLOR is set.
	ModeAlways Mode = "always" // Always color.
	ModeNever  Mode = "never"  // Never color.
)

// Environment variable that disables color in [ModeAuto].
const noColorEnv = "NO_COLOR"

// Styled writer over an output and an error stream.
type Console struct {
	out     io.Writer    // Stream for regular output.
	err     io.Writer    // Stream for errors.
	header  *color.Color // Style for headers on out.
	failure *color.Color // Style for errors on err.
}

// Creates a console writing to out and err.
//
// Color is decided per stream, so redirecting one of them does not affect
// the other.
func New(out, err io.Writer, mode Mode) *Console {
	header := color.New(color.FgYellow, color.Bold)
	failure := color.New(color.FgRed)

	setColor(header, useColor(out, mode))
	setColor(failure, useColor(err, mode))

	return &Console{
		out:     out,
		err:     err,
		header:  header,
		failure: failure,
	}
}

// Writes msg as a header line.
func (c *Console) Header(msg string) error {
	_, err := c.header.Fprintln(c.out, msg)
	return err
}

// Writes s unstyled.
func (c *Console) Print(s string) error {
	_, err := io.WriteString(c.out, s)
	return err
}

// Writes "Error: <msg>" to the error stream.
func (c *Console) Error(msg string) error {
	_, err := c.failure.Fprintln(c.err, "Error: "+msg)
	return err
}

func setColor(c *color.Color, enabled bool) {
	if enabled {
		c.EnableColor()
	} else {
		c.DisableColor()
	}
}

// Whether output written to w should carry color.
func useColor(w io.Writer, mode Mode) bool {
	switch mode {
	case ModeAlways:
		return true
	case ModeNever:
		return false
	}

	if _, ok := os.LookupEnv(noColorEnv); ok {
		return false
	}

	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
