package code

import (
	"errors"
	"fmt"
)

// Error is a failure carrying one of the codes above. Services return it so
// controllers can answer with a kind-specific status and message.
type Error struct {
	Code    int
	Message string
	Err     error
}

// New builds an Error. An empty message falls back to the code's default.
func New(code int, message string) *Error {
	if message == "" {
		message = GetMessage(code)
	}
	return &Error{Code: code, Message: message}
}

// Newf builds an Error with a formatted message.
func Newf(code int, format string, args ...interface{}) *Error {
	return New(code, fmt.Sprintf(format, args...))
}

// Wrap attaches a code to an underlying error.
func Wrap(code int, err error) *Error {
	if err == nil {
		return nil
	}
	return &Error{Code: code, Message: GetMessage(code), Err: err}
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

// Status returns the HTTP status for the error's code.
func (e *Error) Status() int { return GetStatus(e.Code) }

// Of extracts the code from err, or ErrUnknown when err carries none.
func Of(err error) int {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ErrUnknown
}

// Is reports whether err carries the given code.
func Is(err error, code int) bool {
	var e *Error
	return errors.As(err, &e) && e.Code == code
}

// IsNotFound reports whether err is any of the not-found codes.
func IsNotFound(err error) bool {
	return GetStatus(Of(err)) == StatusNotFound
}
