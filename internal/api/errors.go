package api

import (
	"errors"
	"fmt"
)

var (
	// ErrUnauthorized indicates the stored session token was rejected.
	ErrUnauthorized = errors.New("session expired or unauthorized")

	// ErrUnreachable indicates the timesheet service could not be reached.
	ErrUnreachable = errors.New("timesheet service unreachable")
)

// ServerError carries the HTTP status and the server-supplied message, when
// one was present in the response body.
type ServerError struct {
	StatusCode int
	Message    string
}

func (e *ServerError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("server error (%d): %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("server error (%d)", e.StatusCode)
}
