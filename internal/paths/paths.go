package paths

import (
	"errors"
	"os"
	"os/user"
	"path/filepath"
	"runtime"

	"github.com/adrg/xdg"
)

const (

	// Environment variable that overrides the base directory.
	EnvVar = "SDKMAN_DIR"

	// Directory name under the home directory used when no override is set.
	DefaultDirName = ".sdkman"

	// Subdirectory holding variable data.
	VarDir = "var"

	// Name of the file recording the script-side version.
	VersionFile = "version"
)

var ErrHomeDir = errors.New("home directory could not be determined")

// Looks up the account running the process.
var currentUser = user.Current

// Returns the base directory.
//
// A non-empty override is returned verbatim without touching the filesystem.
// Otherwise the result is <home>/.sdkman.
//
//	override "/opt/sdkman"  ->  /opt/sdkman
//	override ""             ->  $HOME/.sdkman
func BaseDir(override string) (string, error) {
	if override != "" {
		return override, nil
	}
	return BaseDirFrom("", homeDir())
}

// Returns the base directory for an explicit home directory.
//
// Same rules as [BaseDir]; an empty home fails with [ErrHomeDir] unless an
// override is given.
func BaseDirFrom(override, home string) (string, error) {
	if override != "" {
		return override, nil
	}
	if home == "" {
		return "", ErrHomeDir
	}
	return filepath.Join(home, DefaultDirName), nil
}

// Returns the user's home directory, or "" if none can be found.
//
// XDG falls back to "/" on Unix when HOME is unset, so in that case the
// account database is asked instead.
func homeDir() string {
	if runtime.GOOS == "windows" || os.Getenv("HOME") != "" {
		return xdg.Home
	}

	u, err := currentUser()
	if err != nil {
		return ""
	}
	return u.HomeDir
}

// Path to the variable data directory.
//
//	<base>/var
func Var(base string) string {
	return filepath.Join(base, VarDir)
}

// Path to the version marker file.
//
//	<base>/var/version
func VersionMarker(base string) string {
	return filepath.Join(Var(base), VersionFile)
}
