package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/adrg/xdg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sdkran/sdkran/internal"
	"github.com/sdkran/sdkran/internal/paths"
)

// Creates an SDKMAN directory with an optional version marker and points
// SDKMAN_DIR at it.
func sdkmanDir(t *testing.T, content *string) string {
	t.Helper()

	dir := t.TempDir()
	if content != nil {
		writeMarker(t, dir, *content)
	}

	t.Setenv(paths.EnvVar, dir)
	return dir
}

func writeMarker(t *testing.T, dir, content string) {
	t.Helper()

	require.NoError(t, os.MkdirAll(filepath.Join(dir, "var"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "var", "version"), []byte(content), 0o644))
}

func run(t *testing.T, args ...string) (int, string, string) {
	t.Helper()

	var stdout, stderr bytes.Buffer
	code := Run(args, &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func marker(s string) *string {
	return &s
}

func TestRunReportsVersions(t *testing.T) {
	sdkmanDir(t, marker("5.9.0"))

	code, stdout, stderr := run(t)
	require.Equal(t, 0, code)
	assert.Empty(t, stderr)

	want := "SDKRAN!\n" +
		"script: 5.9.0\n" +
		"native: " + internal.Version() + " (" + internal.OS() + " " + internal.Arch() + ")\n" +
		"\n"
	assert.Equal(t, want, stdout)
}

func TestRunExplicitCommand(t *testing.T) {
	sdkmanDir(t, marker("  5.9.0\n"))

	code, stdout, _ := run(t, "version")
	require.Equal(t, 0, code)
	assert.Contains(t, stdout, "script: 5.9.0\n")
}

func TestRunMissingMarker(t *testing.T) {
	dir := sdkmanDir(t, nil)

	code, stdout, stderr := run(t)
	require.Equal(t, 1, code)
	assert.Empty(t, stdout)
	assert.Equal(t, "Error: CLI version file not found.\n", stderr)
	assert.NotContains(t, stderr, dir)
}

func TestRunEmptyMarker(t *testing.T) {
	sdkmanDir(t, marker(""))

	code, stdout, stderr := run(t)
	require.Equal(t, 1, code)
	assert.Empty(t, stdout)
	assert.Equal(t, "Error: Failed to read file content: File is empty\n", stderr)
}

func TestRunFlagOverridesEnv(t *testing.T) {
	sdkmanDir(t, nil)

	other := t.TempDir()
	writeMarker(t, other, "5.18.2")

	code, stdout, _ := run(t, "--sdkman-dir", other)
	require.Equal(t, 0, code)
	assert.Contains(t, stdout, "script: 5.18.2\n")
}

func TestRunHomeFallback(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("home is read from USERPROFILE on windows")
	}

	home := t.TempDir()
	writeMarker(t, filepath.Join(home, ".sdkman"), "5.9.0")

	t.Setenv("HOME", home)
	t.Setenv(paths.EnvVar, "")
	xdg.Reload()
	t.Cleanup(xdg.Reload)

	code, stdout, stderr := run(t, "--color=never")
	require.Equal(t, 0, code)
	assert.Empty(t, stderr)
	assert.Contains(t, stdout, "script: 5.9.0\n")
}

func TestRunColorAlways(t *testing.T) {
	sdkmanDir(t, nil)

	code, _, stderr := run(t, "--color=always")
	require.Equal(t, 1, code)
	assert.Contains(t, stderr, "\x1b[")
	assert.Contains(t, stderr, "Error: CLI version file not found.")
}

func TestRunInvalidFlag(t *testing.T) {
	sdkmanDir(t, marker("5.9.0"))

	code, stdout, stderr := run(t, "--color=sometimes")
	require.Equal(t, 1, code)
	assert.Empty(t, stdout)
	assert.Contains(t, stderr, "Error: ")
}

func TestRunHomeUndiscoverable(t *testing.T) {
	t.Setenv(paths.EnvVar, "")

	old := resolveBaseDir
	resolveBaseDir = func(override string) (string, error) {
		return paths.BaseDirFrom(override, "")
	}
	t.Cleanup(func() { resolveBaseDir = old })

	code, stdout, stderr := run(t)
	require.Equal(t, 1, code)
	assert.Empty(t, stdout)
	assert.Equal(t, "Error: Failed to infer SDKMAN directory: home directory could not be determined\n", stderr)
}

func TestRunHelpReturnsExitCode(t *testing.T) {
	sdkmanDir(t, marker("5.9.0"))

	code, stdout, stderr := run(t, "--help")
	require.Equal(t, 0, code)
	assert.Contains(t, stdout, "Usage: sdkran")
	assert.NotContains(t, stdout, "script:")
	assert.Empty(t, stderr)
}
