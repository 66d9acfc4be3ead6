package validator

import "github.com/go-playground/validator/v10"

// RequestValidator adapts go-playground/validator to echo's Validator
// interface so request structs are checked against their validate tags.
type RequestValidator struct {
	validate *validator.Validate
}

// New returns a RequestValidator ready to be set on the echo instance.
func New() *RequestValidator {
	return &RequestValidator{validate: validator.New()}
}

// Validate checks the bound request struct against its validate tags.
func (v *RequestValidator) Validate(i interface{}) error {
	return v.validate.Struct(i)
}
