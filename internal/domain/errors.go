package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for catalog operations
var (
	// ErrServerOffline indicates the catalog endpoint is unreachable
	ErrServerOffline = errors.New("catalog server is unreachable")

	// ErrMovieNotFound indicates the requested movie does not exist
	ErrMovieNotFound = errors.New("movie not found")
)

// RemoteError is returned when the server responded but signaled failure
// through a non-2xx status. Status carries the numeric code.
type RemoteError struct {
	Op     string
	Status int
}

func (e *RemoteError) Error() string {
	return fmt.Sprintf("%s: server returned status %d", e.Op, e.Status)
}

// ValidationError reports a required field missing or malformed in a draft.
// It is raised before any request is sent.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s %s", e.Field, e.Reason)
}
