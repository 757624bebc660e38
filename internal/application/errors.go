package application

import (
	"errors"
	"fmt"
)

// Sentinel errors for common conditions
var (
	ErrNotFound      = errors.New("not found")
	ErrInvalidImport = errors.New("invalid import")
)

// ValidationError represents a validation failure with details
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ImportError represents a rejected import document. The existing state is
// left untouched and the reason is surfaced to the user.
type ImportError struct {
	Reason string
}

func (e *ImportError) Error() string {
	return fmt.Sprintf("cannot import: %s", e.Reason)
}

func (e *ImportError) Is(target error) bool {
	return target == ErrInvalidImport
}
