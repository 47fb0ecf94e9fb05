// Parses flags and runs the sdkran version report.
//
// The program accepts the following flags:
//
//	-q, --quiet          Suppress informational output.
//	-v, --verbose        Enable verbose output.
//	-d, --debug          Enable debug output.
//	    --color=MODE     When to color output (auto, always, never).
//
// The only command is 'version', which is also the default. The base
// directory override is read from SDKMAN_DIR. Flags override build-time
// defaults set via linker flags.
package cli
