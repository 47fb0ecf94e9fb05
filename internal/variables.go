package internal

import (
	"fmt"
	"runtime"
	"runtime/debug"
	"strings"
)

const (

	// Name of the program, used for the CLI and the log prefix.
	Name = "sdkran"

	// String to indicate an undefined variable
	defaultUndefined = "(undefined)"

	// String to indicate a local (non-pipeline) build
	defaultLocalBuild = "(local)"

	// Version reported by the toolchain for builds outside a module.
	develVersion = "(devel)"
)

var (
	version   = "" // Native version number (e.g., "0.3.1")
	gitCommit = "" // Git commit hash (e.g., "a1b2c3d4")

	rawQuiet   = "false" // Whether to enable quiet mode
	rawDebug   = "false" // Whether to enable debug mode
	rawVerbose = "false" // Whether to enable verbose logging
)

// Returns the native version compiled into this binary.
//
// The linker-injected value wins. Without it, the main module version from
// the embedded build info is used; if that is also missing, returns
// "(undefined)". A "v" or "V" prefix is stripped.
func Version() string {
	v := strings.TrimSpace(version)
	if v == "" {
		v = buildInfoVersion()
	}
	if v == "" {
		return defaultUndefined
	}

	v = strings.ToLower(v)
	v = strings.TrimPrefix(v, "v")

	return v
}

// Main module version recorded by the Go toolchain, or "".
func buildInfoVersion() string {
	info, ok := debug.ReadBuildInfo()
	if !ok || info.Main.Version == develVersion {
		return ""
	}
	return info.Main.Version
}

// Returns the git commit hash.
//
// If the commit hash is not set, returns "(undefined)".
func GitCommit() string {
	c := strings.TrimSpace(gitCommit)
	if c == "" {
		return defaultUndefined
	}
	return c
}

// Returns the operating system the binary was built for.
func OS() string {
	return runtime.GOOS
}

// Returns the build architecture.
func Arch() string {
	return runtime.GOARCH
}

// Returns true if this is a local (non-pipeline) build.
//
// Pipeline builds set both the version and the git commit via linker flags.
func IsLocal() bool {
	return strings.TrimSpace(version) == "" ||
		strings.TrimSpace(gitCommit) == ""
}

// Returns a detailed version string.
//
// If this is a local build, returns "(local)". Otherwise, returns a string
// formatted as "<version> <git-commit> [<arch>]".
func VersionString() string {
	if IsLocal() {
		return defaultLocalBuild
	}
	return fmt.Sprintf("%s %s [%s]", Version(), GitCommit(), Arch())
}
