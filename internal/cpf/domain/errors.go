package domain

import (
	"github.com/allisson/validacpf/internal/errors"
)

var (
	// ErrInvalidCPF indicates the identifier failed normalization or check digit validation.
	ErrInvalidCPF = errors.Wrap(errors.ErrInvalidInput, "invalid cpf")

	// ErrMissingCPF indicates the identifier was not provided at all.
	ErrMissingCPF = errors.Wrap(errors.ErrInvalidInput, "cpf is required")
)
