// Package errors provides structured error types for dbg.
//
// Every failure dbg reports to a user is a configuration problem of some
// kind: an unknown highlight style, a negative indent, a width that leaves no
// room to print, an unreadable data file. Codes let the CLI and the library
// react to those without matching on message text.
//
// # Error Codes
//
//   - INVALID_*: configuration or input validation failures
//   - *_NOT_FOUND: missing files
//   - INTERNAL_ERROR: a dependency failed on valid input
//
// # Usage
//
//	err := errors.New(errors.ErrCodeInvalidIndent, "indent must not be negative, got %d", n)
//	if errors.Is(err, errors.ErrCodeInvalidIndent) {
//	    // fall back to the default indent
//	}
//
//	err := errors.Wrap(errors.ErrCodeInvalidInput, origErr, "decode %s", path)
package errors

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Code is a machine-readable error code.
type Code string

const (
	ErrCodeInvalidInput  Code = "INVALID_INPUT"
	ErrCodeInvalidStyle  Code = "INVALID_STYLE"
	ErrCodeInvalidWidth  Code = "INVALID_WIDTH"
	ErrCodeInvalidIndent Code = "INVALID_INDENT"
	ErrCodeInvalidColor  Code = "INVALID_COLOR"
	ErrCodeInvalidFormat Code = "INVALID_FORMAT"
	ErrCodeInvalidConfig Code = "INVALID_CONFIG"

	ErrCodeFileNotFound Code = "FILE_NOT_FOUND"

	// ErrCodeInternal marks failures in a dependency that valid input
	// should never trigger, such as chroma rejecting a registered style.
	ErrCodeInternal Code = "INTERNAL_ERROR"
)

// coded is implemented by every error type in this package.
type coded interface {
	error
	ErrorCode() Code
}

// Error pairs a Code with a message and an optional cause.
type Error struct {
	Code    Code
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause == nil {
		return string(e.Code) + ": " + e.Message
	}
	return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
}

func (e *Error) Unwrap() error { return e.Cause }

// ErrorCode returns e.Code.
func (e *Error) ErrorCode() Code { return e.Code }

// New returns an Error with a formatted message.
func New(code Code, format string, args ...any) *Error {
	return Wrap(code, nil, format, args...)
}

// Wrap returns an Error with a formatted message around cause.
func Wrap(code Code, cause error, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...), Cause: cause}
}

// Is reports whether the outermost coded error in err's chain has code.
func Is(err error, code Code) bool {
	return err != nil && GetCode(err) == code
}

// GetCode returns the code of the outermost coded error in err's chain, or
// "" when there is none.
func GetCode(err error) Code {
	var c coded
	if errors.As(err, &c) {
		return c.ErrorCode()
	}
	return ""
}

// UserMessage returns the message of an *Error without its code and cause,
// and err.Error() for anything else. Config warnings use it to stay short.
func UserMessage(err error) string {
	if e, ok := err.(*Error); ok {
		return e.Message
	}
	return err.Error()
}

// ChoiceError reports a value outside a fixed set of choices, such as an
// unknown highlight style. Its message lists every accepted value.
type ChoiceError struct {
	Kind    string
	Value   string
	Choices []string
	code    Code
}

// NewChoiceError returns a ChoiceError with code. An empty code reads as
// ErrCodeInvalidInput.
func NewChoiceError(code Code, kind, value string, choices []string) *ChoiceError {
	return &ChoiceError{Kind: kind, Value: value, Choices: choices, code: code}
}

func (e *ChoiceError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "unknown %s %q, choose one of [", e.Kind, e.Value)
	for i, c := range e.Choices {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(strconv.Quote(c))
	}
	b.WriteByte(']')
	return b.String()
}

// ErrorCode returns the code given to NewChoiceError.
func (e *ChoiceError) ErrorCode() Code {
	if e.code == "" {
		return ErrCodeInvalidInput
	}
	return e.code
}
