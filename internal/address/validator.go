package address

import (
	"context"

	"github.com/dukerupert/addressbook/internal/domain"
)

// Validator defines the interface for address validation.
// BasicValidator applies the local shape and segment rules; other
// implementations may add deliverability checks.
type Validator interface {
	// Validate parses raw into an Address and reports any problems.
	// A rejected address is a result with IsValid false, not an error;
	// the error return is reserved for failures to run the validation.
	Validate(ctx context.Context, raw string, isPrivate bool) (*ValidationResult, error)
}

// ValidationResult contains the outcome of address validation.
type ValidationResult struct {
	IsValid bool

	// Address is set whenever the input had a usable shape, even if a
	// stricter rule then rejected it.
	Address Address

	Errors   []ValidationError
	Warnings []string
}

// ValidationError represents a specific validation error.
type ValidationError struct {
	Field   string
	Message string
}

// Err converts an invalid result into a *domain.ValidationError keyed by field.
// It returns nil for a valid result.
func (r *ValidationResult) Err() error {
	if r == nil || r.IsValid {
		return nil
	}
	if len(r.Errors) == 0 {
		return domain.NewValidationError(opValidate, fieldAddress, MessageConstraints)
	}

	var err error
	for _, ve := range r.Errors {
		err = domain.AddFieldError(err, ve.Field, ve.Message)
	}
	if v, ok := err.(*domain.ValidationError); ok {
		v.Op = opValidate
	}
	return err
}

func (r *ValidationResult) addError(field, message string) {
	r.IsValid = false
	r.Errors = append(r.Errors, ValidationError{Field: field, Message: message})
}
