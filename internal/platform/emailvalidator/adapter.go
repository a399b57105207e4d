package emailvalidator

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Adapter checks email syntax with go-playground/validator.
type Adapter struct {
	validate *validator.Validate
}

// New creates an Adapter with its own validator instance.
func New() *Adapter {
	return &Adapter{validate: validator.New()}
}

// IsValid reports whether email is a syntactically valid address.
// An error means the check itself could not run, not that the address is bad.
func (a *Adapter) IsValid(email string) (bool, error) {
	err := a.validate.Var(email, "email")
	if err == nil {
		return true, nil
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		return false, nil
	}
	return false, fmt.Errorf("failed to validate email: %w", err)
}
