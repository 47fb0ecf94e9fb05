// Builds and prints the version report.
//
// The report pairs the script-side version recorded in
// <base>/var/version with the native version compiled into this binary
// and the platform it was built for. Collection happens before anything is
// written, so a failure never leaves a partial report on the terminal.
//
// Example usage:
//
//	con := console.New(os.Stdout, os.Stderr, console.ModeAuto)
//	if err := report.Run(con, report.Config{Dir: os.Getenv(paths.EnvVar)}); err != nil {
//	    con.Error(err.Error())
//	    os.Exit(1)
//	}
package report
