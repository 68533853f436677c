package application

import (
	"errors"
	"fmt"
)

// Sentinel errors for common conditions
var (
	ErrSourceMissing = errors.New("source directory does not exist")
	ErrInvalidMode   = errors.New("invalid mode")
)

// ValidationError represents a validation failure with details
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// MoveError represents a per-entry move failure. Moves after a failed
// one still run; the error is carried on the entry's plan line.
type MoveError struct {
	Name string
	Dest string
	Err  error
}

func (e *MoveError) Error() string {
	return fmt.Sprintf("cannot move %s to %s: %v", e.Name, e.Dest, e.Err)
}

func (e *MoveError) Unwrap() error {
	return e.Err
}
