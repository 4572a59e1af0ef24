package commands

import (
	"fmt"
	"io"

	validation "github.com/jellydator/validation"

	cpfService "github.com/allisson/validacpf/internal/cpf/service"
	customValidation "github.com/allisson/validacpf/internal/validation"
)

// RunFormat prints cpf as 000.000.000-00, or in its log-safe masked form
// when masked is set. The input must be a valid CPF.
func RunFormat(formatter cpfService.Formatter, writer io.Writer, cpf string, masked bool) error {
	err := validation.Validate(cpf,
		validation.Required,
		customValidation.NotBlank,
		customValidation.CPF,
	)
	if err != nil {
		return customValidation.WrapValidationError(err)
	}

	out := formatter.Mask(cpf)
	if !masked {
		out, err = formatter.Format(cpf)
		if err != nil {
			return fmt.Errorf("failed to format cpf: %w", err)
		}
	}

	_, err = fmt.Fprintln(writer, out)
	return err
}
