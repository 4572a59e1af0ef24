package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	cpfDomain "github.com/allisson/validacpf/internal/cpf/domain"
	"github.com/allisson/validacpf/internal/cpf/http/dto"
	cpfUseCase "github.com/allisson/validacpf/internal/cpf/usecase"
	apperrors "github.com/allisson/validacpf/internal/errors"
)

// RunValidate validates cpf and prints the outcome. An invalid CPF is printed
// and then reported as an error wrapping cpfDomain.ErrInvalidCPF, so the
// process exits non-zero.
func RunValidate(
	ctx context.Context,
	useCase cpfUseCase.ValidationUseCase,
	logger *slog.Logger,
	writer io.Writer,
	cpf string,
	format string,
) error {
	if err := validateFormat(format); err != nil {
		return err
	}

	validation, err := useCase.Validate(ctx, cpf)
	if err != nil {
		return fmt.Errorf("failed to validate cpf: %w", err)
	}

	output := dto.ValidateResponse{
		CPF:     validation.MaskedCPF,
		Reason:  validation.Reason.String(),
		Message: dto.MessageInvalid,
	}
	if validation.Valid() {
		output = dto.MapValidationToResponse(validation)
	}

	if format == "json" {
		if err := writeJSON(writer, output); err != nil {
			return err
		}
	} else {
		if _, err := fmt.Fprintf(writer, "%s %s (%s)\n", output.CPF, output.Message, output.Reason); err != nil {
			return err
		}
	}

	logger.Debug("validate command completed", slog.String("reason", output.Reason))

	if !validation.Valid() {
		return apperrors.Wrapf(cpfDomain.ErrInvalidCPF, "reason %s", output.Reason)
	}
	return nil
}
