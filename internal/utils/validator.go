package utils

import (
	"github.com/go-playground/validator/v10"
)

// Validator wraps a shared validator.Validate instance.
type Validator struct {
	validate *validator.Validate
}

// NewValidator builds a Validator with the cuba_phone rule registered.
func NewValidator() *Validator {
	v := validator.New()
	v.RegisterValidation("cuba_phone", validateCubaPhone)

	return &Validator{validate: v}
}

// Struct validates the tagged fields of s.
func (v *Validator) Struct(s interface{}) error {
	return v.validate.Struct(s)
}

func validateCubaPhone(fl validator.FieldLevel) bool {
	return ValidPhone(CleanPhone(fl.Field().String()))
}
