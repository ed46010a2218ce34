package core

import (
	"errors"
	"fmt"
	"strings"
)

// Domain errors - centralized error definitions
var (
	// Schema errors
	ErrColumnNotFound = errors.New("required column not found")

	// Value errors
	ErrInvalidDate = errors.New("invalid date")
)

// NewMissingColumnsError reports every logical field whose configured header
// is absent. Missing columns are fatal for the whole run.
func NewMissingColumnsError(fields []string) error {
	return fmt.Errorf("%w: %s", ErrColumnNotFound, strings.Join(fields, ", "))
}

// IsSchemaError checks whether an error is the fatal column-resolution error.
func IsSchemaError(err error) bool {
	return errors.Is(err, ErrColumnNotFound)
}

// IsDateError checks whether an error came from date parsing.
func IsDateError(err error) bool {
	return errors.Is(err, ErrInvalidDate)
}
