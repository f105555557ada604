package validator

import (
	"regexp"

	"community-api/core/errors"

	"github.com/go-playground/validator/v10"
)

// Validator adapts go-playground/validator to echo's Validator interface.
// Structural request validation only; form-level business validation lives
// in each module's dto package.
type Validator struct {
	validate *validator.Validate
}

func New() *Validator {
	return &Validator{validate: validator.New()}
}

func (v *Validator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return errors.NewAppError(errors.ErrInvalidRequestData, err.Error(), err)
	}
	return nil
}

// emailPattern matches local@domain.tld: no whitespace on either side of
// the @ and at least one dot in the domain. Deliberately looser than full
// RFC 5322; it mirrors what the forms have always accepted.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

func IsValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}
