package confluence

import (
	"errors"
	"fmt"
	"testing"
)

func TestErrorMessages(t *testing.T) {
	cases := []struct {
		err      error
		expected string
	}{
		{&NotFoundError{Resource: "page", Name: "My Page"}, `page "My Page" not found`},
		{&AmbiguousResultError{Resource: "space", Name: "Docs", Matches: 3}, `space "Docs" matched 3 entities`},
		{&ConflictError{Resource: "page", Name: "My Page"}, `conflict on page "My Page"`},
		{&ConflictError{Resource: "page", Name: "My Page", Reason: "stale version"}, `conflict on page "My Page": stale version`},
		{&TransportError{Op: "find page", StatusCode: 500, Body: "boom"}, "find page: unexpected status 500: boom"},
	}

	for _, tc := range cases {
		if got := tc.err.Error(); got != tc.expected {
			t.Errorf("Expected %q, got %q", tc.expected, got)
		}
	}
}

func TestPredicatesMatchWrappedErrors(t *testing.T) {
	notFound := fmt.Errorf("resolving: %w", &NotFoundError{Resource: "page", Name: "X"})
	if !IsNotFound(notFound) {
		t.Error("Expected IsNotFound to see through wrapping")
	}
	if IsConflict(notFound) || IsAmbiguous(notFound) || IsTransport(notFound) {
		t.Error("Expected other predicates to reject a NotFoundError")
	}

	conflict := fmt.Errorf("updating: %w", &ConflictError{Resource: "page", Name: "X"})
	if !IsConflict(conflict) {
		t.Error("Expected IsConflict to see through wrapping")
	}

	ambiguous := fmt.Errorf("resolving: %w", &AmbiguousResultError{Resource: "space", Name: "X", Matches: 2})
	if !IsAmbiguous(ambiguous) {
		t.Error("Expected IsAmbiguous to see through wrapping")
	}
}

func TestTransportErrorUnwrap(t *testing.T) {
	cause := errors.New("connection refused")
	err := &TransportError{Op: "GET /rest/api/content", Err: cause}

	if !errors.Is(err, cause) {
		t.Error("Expected TransportError to unwrap to its cause")
	}
	if err.Error() != "GET /rest/api/content: connection refused" {
		t.Errorf("Unexpected message: %s", err.Error())
	}
}
