package files

import (
	"fmt"
	"os"
	"strings"
	"unicode/utf8"
)

// Returns path unchanged if it exists and is a regular file.
//
// Missing paths, directories, dangling symlinks, sockets and the like all
// fail with [ErrNotFound]. Symlinks are followed.
func CheckFile(path string) (string, error) {
	info, err := os.Stat(path)
	if err != nil || !info.Mode().IsRegular() {
		return "", fmt.Errorf("%w: %s", ErrNotFound, path)
	}
	return path, nil
}

// Returns the file content with surrounding whitespace removed.
//
// Read failures are returned as is. Content that is not UTF-8 fails with
// [ErrEncoding], and content that is blank after trimming fails with
// [ErrEmpty]. The text itself is not otherwise validated.
func ReadTrimmed(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}

	if !utf8.Valid(data) {
		return "", fmt.Errorf("%w: %s", ErrEncoding, path)
	}

	content := strings.TrimSpace(string(data))
	if content == "" {
		return "", ErrEmpty
	}

	return content, nil
}
