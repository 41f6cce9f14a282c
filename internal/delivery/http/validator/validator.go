// Package validator adapts go-playground/validator to Echo's Validator
// interface so request DTOs can declare their rules as struct tags.
package validator

import (
	playground "github.com/go-playground/validator/v10"
)

type requestValidator struct {
	validate *playground.Validate
}

// New builds the validator Echo consults on c.Validate calls.
func New() *requestValidator {
	return &requestValidator{
		validate: playground.New(playground.WithRequiredStructEnabled()),
	}
}

// Validate implements echo.Validator.
func (v *requestValidator) Validate(i any) error {
	return v.validate.Struct(i)
}
