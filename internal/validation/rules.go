// Package validation provides jellydator/validation rules shared by DTOs and CLI input checks.
package validation

import (
	"strings"

	validation "github.com/jellydator/validation"

	cpfDomain "github.com/allisson/validacpf/internal/cpf/domain"
	apperrors "github.com/allisson/validacpf/internal/errors"
)

// WrapValidationError wraps validation errors as domain ErrInvalidInput.
func WrapValidationError(err error) error {
	if err == nil {
		return nil
	}
	return apperrors.Wrap(apperrors.ErrInvalidInput, err.Error())
}

// NotBlank validates that a string is not empty after trimming whitespace.
var NotBlank = validation.NewStringRuleWithError(
	func(s string) bool {
		return strings.TrimSpace(s) != ""
	},
	validation.NewError("validation_not_blank", "must not be blank"),
)

// CPF validates that a string is a CPF with matching check digits.
// Empty strings pass so that Required decides whether the field is mandatory.
var CPF = validation.By(func(value interface{}) error {
	s, ok := value.(string)
	if !ok {
		return validation.NewError("validation_cpf_type", "must be a string")
	}
	if s == "" {
		return nil
	}
	if reason := cpfDomain.Check(s).Reason; !reason.Valid() {
		return validation.NewError("validation_cpf", "must be a valid CPF").
			SetParams(map[string]interface{}{"reason": reason.String()})
	}
	return nil
})
