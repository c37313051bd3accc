package backend

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when a backend reports 404 for an entity.
	ErrNotFound = errors.New("entity not found")

	// ErrUnauthorized is returned when a backend rejects the bearer token.
	ErrUnauthorized = errors.New("unauthorized")
)

// StatusError carries a structured error body returned by a backend
// service together with its HTTP status. The backends respond with
// either {"error": "..."} or {"message": "..."}; Message holds
// whichever was present, or a generic fallback.
type StatusError struct {
	StatusCode int
	Message    string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("backend: %s (status %d)", e.Message, e.StatusCode)
}

// Rejected reports whether err is a structured 4xx rejection from a
// backend, meaning the caller's input was refused and may be corrected
// and resubmitted.
func Rejected(err error) (*StatusError, bool) {
	var se *StatusError
	if errors.As(err, &se) && se.StatusCode >= 400 && se.StatusCode < 500 {
		return se, true
	}
	return nil, false
}
