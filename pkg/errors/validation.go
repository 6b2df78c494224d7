package errors

import (
	"slices"
	"strings"
)

// ColorModes are the accepted spellings of the color setting.
var ColorModes = []string{"auto", "always", "never", "true", "false"}

// Formats are the data formats the CLI can decode.
var Formats = []string{"json", "yaml", "toml"}

// ValidateIndent validates an indent width. Zero is allowed and produces
// nested output without indentation.
func ValidateIndent(indent int) error {
	if indent < 0 {
		return New(ErrCodeInvalidIndent, "indent must not be negative, got %d", indent)
	}
	const maxIndent = 64
	if indent > maxIndent {
		return New(ErrCodeInvalidIndent, "indent too large (max %d), got %d", maxIndent, indent)
	}
	return nil
}

// ValidateWidth validates a line width. Widths must be positive; callers that
// want unbounded output say so explicitly instead of passing zero.
func ValidateWidth(width int) error {
	if width <= 0 {
		return New(ErrCodeInvalidWidth, "width must be positive, got %d", width)
	}
	return nil
}

// ValidateColorMode validates a color setting as accepted on the command line
// and in configuration files.
func ValidateColorMode(mode string) error {
	if !slices.Contains(ColorModes, strings.ToLower(mode)) {
		return NewChoiceError(ErrCodeInvalidColor, "color mode", mode, ColorModes)
	}
	return nil
}

// ValidateFormat validates an input data format name.
func ValidateFormat(format string) error {
	if !slices.Contains(Formats, strings.ToLower(format)) {
		return NewChoiceError(ErrCodeInvalidFormat, "format", format, Formats)
	}
	return nil
}

// ValidatePrefix rejects prefixes containing control characters other than
// newlines and escape sequences, which would corrupt width measurement.
func ValidatePrefix(prefix string) error {
	for _, r := range prefix {
		if r == '\n' || r == '\x1b' || r == '\t' {
			continue
		}
		if r < 0x20 || r == 0x7f {
			return New(ErrCodeInvalidInput, "prefix contains control character %q", r)
		}
	}
	return nil
}
