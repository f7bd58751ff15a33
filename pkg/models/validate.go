package models

import "github.com/go-playground/validator/v10"

var validate = validator.New()

// Validate checks an options struct before any gam command is built from it.
func Validate(opts interface{}) error {
	return validate.Struct(opts)
}

// ValidEmail reports whether addr looks like an email address.
func ValidEmail(addr string) bool {
	return validate.Var(addr, "required,email") == nil
}
