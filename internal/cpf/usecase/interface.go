// Package usecase orchestrates CPF validation: the pure domain check, log-safe
// presentation, and the optional debt registry lookup.
package usecase

import (
	"context"

	cpfDomain "github.com/allisson/validacpf/internal/cpf/domain"
)

// DebtRepository reports whether a normalized CPF has outstanding debts.
type DebtRepository interface {
	HasDebts(ctx context.Context, cpf string) (bool, error)
}

// ValidationUseCase validates raw CPF input.
type ValidationUseCase interface {
	// Validate never returns an error for malformed input; the rejection
	// reason is carried by the returned Validation. Errors come only from
	// the debt lookup.
	Validate(ctx context.Context, raw string) (*cpfDomain.Validation, error)
}
