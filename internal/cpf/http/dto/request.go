// Package dto provides the request and response bodies of the CPF endpoints.
package dto

import (
	validation "github.com/jellydator/validation"

	cpfDomain "github.com/allisson/validacpf/internal/cpf/domain"
	apperrors "github.com/allisson/validacpf/internal/errors"
)

// ValidateRequest is the body of POST /v1/cpf/validate. Field matching is
// case-insensitive, so both "Cpf" and "cpf" are accepted.
type ValidateRequest struct {
	Cpf *string `json:"Cpf"`
}

// Validate only checks presence: malformed identifiers are a regular
// validation outcome, not a request error. A missing field is reported as
// cpfDomain.ErrMissingCPF.
func (r *ValidateRequest) Validate() error {
	err := validation.ValidateStruct(r,
		validation.Field(&r.Cpf, validation.NotNil),
	)
	if err != nil {
		return apperrors.Wrap(cpfDomain.ErrMissingCPF, err.Error())
	}
	return nil
}
