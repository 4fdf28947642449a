package common

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrNotFound is wrapped by lookups that found no row.
var ErrNotFound = errors.New("not found")

// NotFound reports a missing resource, e.g. NotFound("car ad") reads
// "car ad not found" and matches ErrNotFound.
func NotFound(resource string) error {
	return fmt.Errorf("%s %w", resource, ErrNotFound)
}

// ValidationError carries a client-facing message and maps to 400.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NewValidationError creates a validation error with a formatted message
func NewValidationError(format string, args ...interface{}) *ValidationError {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// IsValidationError reports whether err wraps a ValidationError and returns it.
func IsValidationError(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}

// ParseID parses a path identifier. Only base-10 integers are accepted,
// so "1.5" and "abc" are both rejected. A well-formed number outside the
// int64 range cannot name a row and matches ErrNotFound instead.
func ParseID(raw, fieldName string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if errors.Is(err, strconv.ErrRange) {
		return 0, fmt.Errorf("%s out of range: %w", fieldName, ErrNotFound)
	}
	if err != nil {
		return 0, NewValidationError("%s must be a number", fieldName)
	}
	return id, nil
}

// RequiredStrings trims every value and reports whether all of them are
// non-empty afterwards.
func RequiredStrings(values ...*string) bool {
	ok := true
	for _, v := range values {
		*v = strings.TrimSpace(*v)
		if *v == "" {
			ok = false
		}
	}
	return ok
}
