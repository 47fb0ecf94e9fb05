// Writes styled text to the terminal.
//
// A [Console] pairs an output and an error stream. Headers are written in
// bold yellow to the output stream, errors in red to the error stream as
// "Error: <message>". Whether escape sequences are emitted depends on the
// [Mode]: always, never, or auto (only for terminals, and only when NO_COLOR
// is unset).
//
// Example usage:
//
//	con := console.New(os.Stdout, os.Stderr, console.ModeAuto)
//	con.Header("SDKRAN!")
//	con.Print("script: 5.9.0\n")
//	con.Error("CLI version file not found.")
package console
