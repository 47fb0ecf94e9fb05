package report

import "errors"

var (
	ErrResolve  = errors.New("failed to infer SDKMAN directory")
	ErrNotFound = errors.New("CLI version file not found")
	ErrRead     = errors.New("failed to read file content")
)
