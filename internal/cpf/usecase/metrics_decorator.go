package usecase

import (
	"context"
	"time"

	cpfDomain "github.com/allisson/validacpf/internal/cpf/domain"
	"github.com/allisson/validacpf/internal/metrics"
)

// outcomeError labels validations that failed because of an infrastructure error.
const outcomeError = "ERROR"

type validationUseCaseWithMetrics struct {
	next    ValidationUseCase
	metrics metrics.ValidationMetrics
}

// NewValidationUseCaseWithMetrics wraps a ValidationUseCase with outcome metrics.
func NewValidationUseCaseWithMetrics(useCase ValidationUseCase, m metrics.ValidationMetrics) ValidationUseCase {
	return &validationUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

func (v *validationUseCaseWithMetrics) Validate(ctx context.Context, raw string) (*cpfDomain.Validation, error) {
	start := time.Now()
	validation, err := v.next.Validate(ctx, raw)

	outcome := outcomeError
	if err == nil {
		outcome = validation.Reason.String()
	}
	v.metrics.RecordValidation(ctx, outcome, time.Since(start))

	return validation, err
}

type debtRepositoryWithMetrics struct {
	next    DebtRepository
	metrics metrics.ValidationMetrics
}

// NewDebtRepositoryWithMetrics wraps a DebtRepository with lookup metrics.
func NewDebtRepositoryWithMetrics(repo DebtRepository, m metrics.ValidationMetrics) DebtRepository {
	return &debtRepositoryWithMetrics{
		next:    repo,
		metrics: m,
	}
}

func (d *debtRepositoryWithMetrics) HasDebts(ctx context.Context, cpf string) (bool, error) {
	start := time.Now()
	hasDebts, err := d.next.HasDebts(ctx, cpf)

	status := "not_found"
	switch {
	case err != nil:
		status = "error"
	case hasDebts:
		status = "found"
	}
	d.metrics.RecordDebtLookup(ctx, status, time.Since(start))

	return hasDebts, err
}
