package files

import "errors"

var (
	ErrNotFound = errors.New("not a valid file path")
	ErrEmpty    = errors.New("file is empty")
	ErrEncoding = errors.New("file is not valid UTF-8 text")
)
