package markup

import (
	"errors"
	"fmt"
	"strings"
)

// InvalidArgumentError reports a builder argument that failed local
// validation (unsupported heading level, warning kind, chart kind).
type InvalidArgumentError struct {
	Arg     string
	Value   string
	Allowed []string
}

func (e *InvalidArgumentError) Error() string {
	if len(e.Allowed) == 0 {
		return fmt.Sprintf("invalid %s: %q", e.Arg, e.Value)
	}
	return fmt.Sprintf("invalid %s: %q (allowed: %s)", e.Arg, e.Value, strings.Join(e.Allowed, ", "))
}

// IsInvalidArgument reports whether err is an InvalidArgumentError.
func IsInvalidArgument(err error) bool {
	var target *InvalidArgumentError
	return errors.As(err, &target)
}
