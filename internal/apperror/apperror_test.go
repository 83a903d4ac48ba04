package apperror

import (
	"errors"
	"testing"
)

func TestErrorsIs(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		target    error
		wantMatch bool
	}{
		{
			name:      "ValidationFailed wraps ErrValidation",
			err:       ValidationFailed("title", "title is required"),
			target:    ErrValidation,
			wantMatch: true,
		},
		{
			name:      "NoSelection wraps ErrNoSelection",
			err:       NoSelection("delete"),
			target:    ErrNoSelection,
			wantMatch: true,
		},
		{
			name:      "ValidationFailed does NOT match ErrNoSelection",
			err:       ValidationFailed("code", "code is required"),
			target:    ErrNoSelection,
			wantMatch: false,
		},
		{
			name:      "NoSelection does NOT match ErrValidation",
			err:       NoSelection("delete"),
			target:    ErrValidation,
			wantMatch: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := errors.Is(tt.err, tt.target)
			if got != tt.wantMatch {
				t.Errorf("errors.Is(%v, %v) = %v, want %v", tt.err, tt.target, got, tt.wantMatch)
			}
		})
	}
}

func TestErrorMessages(t *testing.T) {
	tests := []struct {
		name        string
		err         *AppError
		wantMessage string
	}{
		{
			name:        "ValidationFailed uses custom message",
			err:         ValidationFailed("title", "title is required"),
			wantMessage: "title is required",
		},
		{
			name:        "NoSelection names the action",
			err:         NoSelection("delete"),
			wantMessage: "Please select a snippet to delete.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.wantMessage {
				t.Errorf("Error() = %q, want %q", got, tt.wantMessage)
			}
		})
	}
}

func TestUnwrap(t *testing.T) {
	err := ValidationFailed("title", "title is required")
	if unwrapped := err.Unwrap(); unwrapped != ErrValidation {
		t.Errorf("Unwrap() = %v, want %v", unwrapped, ErrValidation)
	}
}

func TestValidationFailedField(t *testing.T) {
	err := ValidationFailed("code", "code is required")
	if err.Field != "code" {
		t.Errorf("Field = %q, want %q", err.Field, "code")
	}
}
