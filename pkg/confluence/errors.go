package confluence

import (
	"errors"
	"fmt"
)

// NotFoundError reports that a resolution or action target does not exist
// on the remote server.
type NotFoundError struct {
	Resource string // "space", "page", "attachment"
	Name     string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Resource, e.Name)
}

// AmbiguousResultError reports that a name resolution matched more than one
// remote entity. The caller must address the entity more precisely.
type AmbiguousResultError struct {
	Resource string
	Name     string
	Matches  int
}

func (e *AmbiguousResultError) Error() string {
	return fmt.Sprintf("%s %q matched %d entities", e.Resource, e.Name, e.Matches)
}

// ConflictError reports that the server rejected a create or update because
// of a concurrency or state conflict (duplicate title, stale version). The
// client never retries; callers re-resolve and re-attempt themselves.
type ConflictError struct {
	Resource string
	Name     string
	Reason   string
}

func (e *ConflictError) Error() string {
	if e.Reason == "" {
		return fmt.Sprintf("conflict on %s %q", e.Resource, e.Name)
	}
	return fmt.Sprintf("conflict on %s %q: %s", e.Resource, e.Name, e.Reason)
}

// TransportError surfaces a network failure or an uninterpreted non-2xx
// response.
type TransportError struct {
	Op         string
	StatusCode int
	Body       string
	Err        error
}

func (e *TransportError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("%s: unexpected status %d: %s", e.Op, e.StatusCode, e.Body)
}

func (e *TransportError) Unwrap() error { return e.Err }

// IsNotFound reports whether err is a NotFoundError.
func IsNotFound(err error) bool {
	var target *NotFoundError
	return errors.As(err, &target)
}

// IsAmbiguous reports whether err is an AmbiguousResultError.
func IsAmbiguous(err error) bool {
	var target *AmbiguousResultError
	return errors.As(err, &target)
}

// IsConflict reports whether err is a ConflictError.
func IsConflict(err error) bool {
	var target *ConflictError
	return errors.As(err, &target)
}

// IsTransport reports whether err is a TransportError.
func IsTransport(err error) bool {
	var target *TransportError
	return errors.As(err, &target)
}
