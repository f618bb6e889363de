// Package validator adapts go-playground/validator to echo's Validator interface.
package validator

import (
	domainerrors "tienda/internal/domain/errors"

	"github.com/go-playground/validator/v10"
)

// Validator wraps a validator instance so echo can run struct validation on bound input.
type Validator struct {
	validate *validator.Validate
}

// New creates a Validator with struct tag validation enabled.
func New() *Validator {
	return &Validator{validate: validator.New(validator.WithRequiredStructEnabled())}
}

// Validate implements echo.Validator.
func (v *Validator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	return nil
}
