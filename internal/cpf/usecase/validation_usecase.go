package usecase

import (
	"context"
	"log/slog"

	cpfDomain "github.com/allisson/validacpf/internal/cpf/domain"
	cpfService "github.com/allisson/validacpf/internal/cpf/service"
	apperrors "github.com/allisson/validacpf/internal/errors"
)

type validationUseCase struct {
	formatter cpfService.Formatter
	debtRepo  DebtRepository
	logger    *slog.Logger
}

// NewValidationUseCase creates a ValidationUseCase. A nil debtRepo disables
// the debt lookup.
func NewValidationUseCase(
	formatter cpfService.Formatter,
	debtRepo DebtRepository,
	logger *slog.Logger,
) ValidationUseCase {
	return &validationUseCase{
		formatter: formatter,
		debtRepo:  debtRepo,
		logger:    logger,
	}
}

func (v *validationUseCase) Validate(ctx context.Context, raw string) (*cpfDomain.Validation, error) {
	result := cpfDomain.Check(raw)

	validation := &cpfDomain.Validation{
		MaskedCPF: v.formatter.Mask(raw),
		Reason:    result.Reason,
	}

	if result.Valid() && v.debtRepo != nil {
		hasDebts, err := v.debtRepo.HasDebts(ctx, result.Normalized)
		if err != nil {
			return nil, apperrors.Wrap(err, "failed to check debt registry")
		}
		validation.DebtChecked = true
		validation.HasDebts = hasDebts
	}

	attrs := []any{slog.String("cpf", validation.MaskedCPF)}
	if fingerprint := v.formatter.Fingerprint(raw); fingerprint != "" {
		attrs = append(attrs, slog.String("cpf_fingerprint", fingerprint))
	}
	attrs = append(attrs,
		slog.String("reason", validation.Reason.String()),
		slog.Bool("debt_checked", validation.DebtChecked),
		slog.Bool("has_debts", validation.HasDebts),
	)
	v.logger.Debug("cpf validated", attrs...)

	return validation, nil
}
