package errors

import (
	"strings"
	"unicode"
)

// MaxLightCount bounds the row size accepted from users. Both sorts are
// quadratic in the row length, so a row of 2*MaxLightCount disks is the
// largest the CLI and the HTTP API will sort.
const MaxLightCount = 4096

// maxRowLength bounds the raw length of a row string before it is parsed.
const maxRowLength = 4 * MaxLightCount

// ValidateLightCount validates the number of light disks requested for a row.
//
// The validation rules are:
//   - At least one light disk (a row has 2*n disks, n >= 1)
//   - No more than MaxLightCount light disks
func ValidateLightCount(n int) error {
	if n < 1 {
		return New(ErrCodeInvalidLightCount, "light count must be at least 1, got %d", n)
	}
	if n > MaxLightCount {
		return New(ErrCodeInvalidLightCount, "light count too large (max %d), got %d", MaxLightCount, n)
	}
	return nil
}

// ValidateAlgorithm checks that name is one of the known algorithm names.
// The set is passed in by the caller so this package stays free of domain imports.
func ValidateAlgorithm(name string, known []string) error {
	if name == "" {
		return New(ErrCodeInvalidAlgorithm, "algorithm cannot be empty")
	}
	for _, k := range known {
		if k == name {
			return nil
		}
	}
	return New(ErrCodeInvalidAlgorithm, "unknown algorithm %q (valid: %s)", name, strings.Join(known, ", "))
}

// ValidateFormat checks that format is one of the known output formats.
func ValidateFormat(format string, known []string) error {
	if format == "" {
		return New(ErrCodeInvalidFormat, "format cannot be empty")
	}
	for _, k := range known {
		if k == format {
			return nil
		}
	}
	return New(ErrCodeInvalidFormat, "unknown format %q (valid: %s)", format, strings.Join(known, ", "))
}

// ValidateRowString performs cheap, syntax-free checks on a raw row string
// before it is handed to the parser: not empty, bounded in length, and free
// of control characters other than whitespace.
func ValidateRowString(s string) error {
	if strings.TrimSpace(s) == "" {
		return New(ErrCodeInvalidRow, "row cannot be empty")
	}
	if len(s) > maxRowLength {
		return New(ErrCodeInvalidRow, "row too long (max %d characters)", maxRowLength)
	}
	for _, r := range s {
		if unicode.IsControl(r) && !unicode.IsSpace(r) {
			return New(ErrCodeInvalidRow, "row contains invalid control characters")
		}
	}
	return nil
}
