package javanav

import (
	"errors"
	"fmt"
)

// Error codes used across the application.
const (
	ECACHEMISS  = "cache_miss"   // no cache record exists; a fresh scan is expected
	ECORRUPT    = "cache_corrupt" // a cache record exists but cannot be decoded
	ENOSNAPSHOT = "no_snapshot"  // no packaged snapshot exists for a remote key
	EINVALID    = "invalid"      // validation failed
	ENOTFOUND   = "not_found"    // entity does not exist
	EINTERNAL   = "internal"     // internal error (I/O and other platform failures)
)

// Error represents an application error with a machine-readable code and a
// human-readable message.
type Error struct {
	Code    string
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("javanav error: code=%s message=%s", e.Code, e.Message)
}

// ErrorCode unwraps an application error and returns its code.
// Non-application errors return EINTERNAL; nil returns the empty string.
func ErrorCode(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Code
	}
	return EINTERNAL
}

// ErrorMessage unwraps an application error and returns its message.
// Non-application errors return a generic message; nil returns the empty string.
func ErrorMessage(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Message
	}
	return "Internal error."
}

// Errorf is a helper function to return an Error with a given code and
// formatted message.
func Errorf(code string, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}
