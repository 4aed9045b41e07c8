package hal

import (
	"errors"
	"fmt"
)

var (
	// ErrRelationNotFound is returned when a resource has no link with the
	// requested relation name.
	ErrRelationNotFound = errors.New("relation not found")

	// ErrDecode is returned when a response body is not a usable HAL
	// document.
	ErrDecode = errors.New("invalid hal document")
)

// FetchError describes a failure to follow a relation: a transport error, a
// non-2xx status, a missing relation, or an undecodable body.
type FetchError struct {
	Rel        string
	URL        string
	StatusCode int
	Err        error
}

func (e *FetchError) Error() string {
	if e.Rel == "" {
		return fmt.Sprintf("error fetching '%s': %v", e.URL, e.Err)
	}
	return fmt.Sprintf("error following '%s' from '%s': %v", e.Rel, e.URL, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }
