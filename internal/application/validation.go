package application

import (
	"fmt"
	"strings"

	"github.com/astradev123/obsidian-focus-time/internal/domain"
)

// ValidateRequired checks if a string field is non-empty (after trimming whitespace).
// Returns a ValidationError if the field is empty.
func ValidateRequired(fieldName, value string) error {
	if strings.TrimSpace(value) == "" {
		return &ValidationError{
			Field:   fieldName,
			Message: fmt.Sprintf("%s is required", fieldName),
		}
	}
	return nil
}

// ValidateDateKey checks if a value parses as a YYYY-MM-DD date key.
// Failures match ErrInvalidDate for errors.Is callers.
func ValidateDateKey(fieldName, value string) error {
	if _, err := domain.ParseDateKey(value); err != nil {
		return fmt.Errorf("%s: %w: %s (expected YYYY-MM-DD)", fieldName, ErrInvalidDate, value)
	}
	return nil
}

// ValidateMonth checks a 1-12 month number.
func ValidateMonth(fieldName string, month int) error {
	if month < 1 || month > 12 {
		return &ValidationError{
			Field:   fieldName,
			Message: fmt.Sprintf("invalid month: %d", month),
		}
	}
	return nil
}
