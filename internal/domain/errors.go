package domain

import (
	"errors"
	"fmt"
	"strings"
)

// ValidationError reports a payload field that failed validation. The
// message names the offending value and, for enumerated fields, the allowed
// set.
type ValidationError struct {
	Field   string
	Value   string
	Allowed []string
}

func (e *ValidationError) Error() string {
	if len(e.Allowed) > 0 {
		return fmt.Sprintf("invalid %s %q: valid values are %s", e.Field, e.Value, strings.Join(e.Allowed, ", "))
	}
	return fmt.Sprintf("%s must be greater than zero", e.Field)
}

// NotFoundError reports an id absent from the store for the given record
// kind ("timber" or "sale").
type NotFoundError struct {
	Kind string
	ID   uint64
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s with id=%d not found", e.Kind, e.ID)
}

// IsNotFound reports whether err is (or wraps) a NotFoundError.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}
