package listing

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when no document matches an id.
	ErrNotFound = errors.New("listing not found")
	// ErrInvalidID is returned when a path id matches no string id and is not
	// a valid ObjectID either.
	ErrInvalidID = errors.New("invalid listing id")
)

// ValidationError reports a request that violates an input requirement,
// either a body missing required keys or a malformed query parameter.
type ValidationError struct {
	// Param names the offending query parameter, empty for body errors.
	Param   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Param != "" {
		return fmt.Sprintf("invalid %s: %s", e.Param, e.Message)
	}
	return e.Message
}

// MissingFieldsError is the validation failure for create/update bodies.
func MissingFieldsError() *ValidationError {
	return &ValidationError{
		Message: "This endpoint only accepts a JSON object with the key-value pairs: 'name', 'description', 'listing_url'",
	}
}
