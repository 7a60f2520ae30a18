package application

import (
	"errors"
	"fmt"
)

// Sentinel errors for common conditions
var (
	ErrNoData      = errors.New("no data")
	ErrInvalidDate = errors.New("invalid date")
)

// ValidationError represents a validation failure with details
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}
