// Package errors is the coded error type shared by the pipeline and the API
package errors

// import as perr

import (
	stderrs "errors"
	"fmt"
	"net/http"
)

// ErrorCode classifies failures for callers and the HTTP envelope
// values are part of the wire, append only
type ErrorCode uint16

const (
	// ErrorCodeUnknown is anything not built here
	ErrorCodeUnknown ErrorCode = iota

	// ErrorCodePanic marks a recovered handler panic
	ErrorCodePanic

	// ErrorCodeUnavailable is for missing files, unwired backends and transient failures
	ErrorCodeUnavailable

	// ErrorCodeInvalidArgument is for arguments that are well formed but unusable
	ErrorCodeInvalidArgument

	// ErrorCodeValidation is for malformed input: bad CSV cells, flags, query params
	ErrorCodeValidation

	// ErrorCodeJSON is for encoding failures
	ErrorCodeJSON

	// ErrorCodeNotFound is for absent plays and files
	ErrorCodeNotFound

	// ErrorCodeDB is for database errors
	ErrorCodeDB
)

// HTTPStatusCode is the response status for c
func HTTPStatusCode(c ErrorCode) int {
	switch c {
	case ErrorCodeNotFound:
		return http.StatusNotFound
	case ErrorCodeInvalidArgument:
		return http.StatusUnprocessableEntity
	case ErrorCodeValidation, ErrorCodeJSON:
		return http.StatusBadRequest
	case ErrorCodeUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// ErrNotFound is a sentinel not found error
var ErrNotFound = New(ErrorCodeNotFound, "not found")

// Error carries a machine code next to the developer message
// field names the offending input, op tags the failing step, orig is the cause
type Error struct {
	orig  error
	msg   string
	code  ErrorCode
	field string
	op    string
}

// Wire is the JSON form of an error
type Wire struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	Field   string    `json:"field,omitempty"`
}

// Error renders "op: msg: orig" leaving out empty parts
func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	s := e.msg
	if e.op != "" {
		s = e.op + ": " + s
	}
	if e.orig != nil {
		s += ": " + e.orig.Error()
	}
	return s
}

// Unwrap returns the cause
func (e *Error) Unwrap() error { return e.orig }

// Code is the machine code
func (e *Error) Code() ErrorCode { return e.code }

// Field returns the offending input name, if any
func (e *Error) Field() string { return e.field }

// Op returns the operation tag, if any
func (e *Error) Op() string { return e.op }

// ToWire returns the JSON form, the cause is never exposed
func (e *Error) ToWire() Wire { return Wire{Code: e.code, Message: e.msg, Field: e.field} }

// WireFrom converts any error into a Wire, nil gives the zero Wire
func WireFrom(err error) Wire {
	if err == nil {
		return Wire{}
	}
	if e, ok := As(err); ok {
		return e.ToWire()
	}
	return Wire{Code: ErrorCodeUnknown, Message: err.Error()}
}

// Root unwraps err to its innermost cause
func Root(err error) error {
	for err != nil {
		u := stderrs.Unwrap(err)
		if u == nil {
			return err
		}
		err = u
	}
	return nil
}

// CodeOf is the code of the first *Error in the chain, Unknown without one
func CodeOf(err error) ErrorCode {
	if e, ok := As(err); ok {
		return e.code
	}
	return ErrorCodeUnknown
}

// IsCode compares CodeOf(err) with code
func IsCode(err error, code ErrorCode) bool { return CodeOf(err) == code }

// HTTPStatus is HTTPStatusCode(CodeOf(err))
func HTTPStatus(err error) int { return HTTPStatusCode(CodeOf(err)) }

// As finds the first *Error in the chain
func As(err error) (*Error, bool) {
	var e *Error
	if stderrs.As(err, &e) {
		return e, true
	}
	return nil, false
}

// WithField returns a copy of err naming field, foreign errors pass through
func WithField(err error, field string) error {
	if e, ok := As(err); ok {
		c := *e
		c.field = field
		return &c
	}
	return err
}

// WithOp returns a copy of err tagged with op, foreign errors pass through
func WithOp(err error, op string) error {
	if e, ok := As(err); ok {
		c := *e
		c.op = op
		return &c
	}
	return err
}

// New is an *Error without a cause
func New(code ErrorCode, msg string) error { return &Error{code: code, msg: msg} }

// Newf is New with a format
func Newf(code ErrorCode, format string, a ...any) error {
	return &Error{code: code, msg: fmt.Sprintf(format, a...)}
}

// Wrap attaches code and msg to orig, which stays reachable through Unwrap
func Wrap(orig error, code ErrorCode, msg string) error {
	return &Error{code: code, msg: msg, orig: orig}
}

// Wrapf is Wrap with a format
func Wrapf(orig error, code ErrorCode, format string, a ...any) error {
	return &Error{code: code, msg: fmt.Sprintf(format, a...), orig: orig}
}

// NotFoundf is Newf(ErrorCodeNotFound)
func NotFoundf(format string, a ...any) error { return Newf(ErrorCodeNotFound, format, a...) }

// InvalidArgf is Newf(ErrorCodeInvalidArgument)
func InvalidArgf(format string, a ...any) error { return Newf(ErrorCodeInvalidArgument, format, a...) }

// PanicErrf is Newf(ErrorCodePanic)
func PanicErrf(format string, a ...any) error { return Newf(ErrorCodePanic, format, a...) }

// Unavailablef is Newf(ErrorCodeUnavailable)
func Unavailablef(format string, a ...any) error { return Newf(ErrorCodeUnavailable, format, a...) }
