package askskill

import (
	"errors"
	"fmt"
)

// Application error codes.
//
// These are meant to be a small, stable vocabulary that maps cleanly onto
// user-facing behavior: EINVALID re-prompts, ENOTFOUND ends the current step,
// EUNAVAILABLE retries navigation, ETIMEOUT degrades to a partial result,
// EINTERNAL is reported generically and never shown raw.
const (
	EINVALID     = "invalid"     // malformed or out-of-range input
	ENOTFOUND    = "not_found"   // entity or affordance does not exist
	EUNAVAILABLE = "unavailable" // site unreachable or collaborator down
	ETIMEOUT     = "timeout"     // deadline expired before completion
	EINTERNAL    = "internal"    // unexpected internal fault
)

// Error represents an application error with a machine-readable code and a
// human-readable message.
type Error struct {
	// Code is one of the application error code constants.
	Code string

	// Message is a human-readable description safe to surface to users.
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("askskill error: code=%s message=%s", e.Code, e.Message)
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

// Errorf constructs a new Error with the given code and formatted message.
func Errorf(code string, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}
