// Package errors provides the coded error kinds surfaced at startup and by
// persistence.
package errors

import (
	"fmt"
	"strings"
)

// Code is a machine-readable error kind.
type Code string

const (
	CodeInvalidArguments   Code = "INVALID_ARGUMENTS"
	CodeConfigParse        Code = "CONFIG_PARSE"
	CodeDataParse          Code = "DATA_PARSE"
	CodeDimensionsMismatch Code = "DIMENSIONS_MISMATCH"
	CodeIO                 Code = "IO"
	CodeBackendInit        Code = "BACKEND_INIT"
	CodeResourceLoad       Code = "RESOURCE_LOAD"
)

// Sentinels for errors.Is comparisons. Matching is by code only.
var (
	ErrInvalidArguments   = &Error{Code: CodeInvalidArguments}
	ErrConfigParse        = &Error{Code: CodeConfigParse}
	ErrDataParse          = &Error{Code: CodeDataParse}
	ErrDimensionsMismatch = &Error{Code: CodeDimensionsMismatch}
	ErrIO                 = &Error{Code: CodeIO}
	ErrBackendInit        = &Error{Code: CodeBackendInit}
	ErrResourceLoad       = &Error{Code: CodeResourceLoad}
)

// Error is the domain error type. Line and Col are 1-based and zero when the
// error has no source position.
type Error struct {
	Code    Code
	Message string
	Path    string
	Line    int
	Col     int
	Cause   error
}

// Error implements the error interface.
func (e *Error) Error() string {
	var b strings.Builder
	if e.Path != "" {
		b.WriteString(e.Path)
		b.WriteString(":")
	}
	if e.Line > 0 {
		fmt.Fprintf(&b, "%d:", e.Line)
		if e.Col > 0 {
			fmt.Fprintf(&b, "%d:", e.Col)
		}
	}
	if b.Len() > 0 {
		b.WriteString(" ")
	}
	msg := e.Message
	if msg == "" {
		msg = strings.ToLower(strings.ReplaceAll(string(e.Code), "_", " "))
	}
	b.WriteString(msg)
	if e.Cause != nil {
		b.WriteString(": ")
		b.WriteString(e.Cause.Error())
	}
	return b.String()
}

// Unwrap returns the underlying cause for error chain traversal.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error by code.
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Code == t.Code
	}
	return false
}

// New creates an error with a code and message.
func New(code Code, message string) *Error {
	return &Error{Code: code, Message: message}
}

// Newf is New with a format string.
func Newf(code Code, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Wrap creates an error that wraps an underlying cause.
func Wrap(code Code, message string, cause error) *Error {
	return &Error{Code: code, Message: message, Cause: cause}
}

// At creates a positioned parse error.
func At(code Code, path string, line, col int, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Path:    path,
		Line:    line,
		Col:     col,
	}
}

// CodeOf extracts the code from err, or "" when err carries none.
func CodeOf(err error) Code {
	for err != nil {
		if e, ok := err.(*Error); ok {
			return e.Code
		}
		u, ok := err.(interface{ Unwrap() error })
		if !ok {
			return ""
		}
		err = u.Unwrap()
	}
	return ""
}
