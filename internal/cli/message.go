package cli

import (
	"errors"
	"unicode"
	"unicode/utf8"

	"github.com/sdkran/sdkran/internal/files"
	"github.com/sdkran/sdkran/internal/report"
)

// Returns the text shown after "Error: " for err.
//
//	report.ErrNotFound         ->  CLI version file not found.
//	report.ErrRead, empty file ->  Failed to read file content: File is empty
//	report.ErrRead             ->  Failed to read file content: <cause>
//	report.ErrResolve          ->  Failed to infer SDKMAN directory: <cause>
//
// Causes other than an empty file are shown as is.
func message(err error) string {
	switch {
	case errors.Is(err, report.ErrNotFound):
		return capitalize(report.ErrNotFound.Error()) + "."
	case errors.Is(err, files.ErrEmpty):
		return capitalize(report.ErrRead.Error()) + ": " + capitalize(files.ErrEmpty.Error())
	}
	return capitalize(err.Error())
}

// Upper-cases the first letter of s.
func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
