// Package apperror defines the domain error kinds the application distinguishes.
// Layers wrap these sentinels so callers can branch with errors.Is without
// knowing which layer produced the error.
package apperror

import (
	"errors"
	"fmt"
)

var (
	ErrValidation  = errors.New("validation error")
	ErrNoSelection = errors.New("no selection")
)

// AppError carries a human-readable message alongside the sentinel it wraps.
type AppError struct {
	Err     error  // sentinel kind, for errors.Is
	Message string // human-readable error message, shown to the user
	Field   string // optional: field causing the error
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// ValidationFailed reports that a field failed a business rule.
func ValidationFailed(field, message string) *AppError {
	return &AppError{
		Err:     ErrValidation,
		Message: message,
		Field:   field,
	}
}

// NoSelection reports that an action requiring a selected list entry was
// invoked without one. The UI maps this to a modal error dialog.
func NoSelection(action string) *AppError {
	return &AppError{
		Err:     ErrNoSelection,
		Message: fmt.Sprintf("Please select a snippet to %s.", action),
	}
}
