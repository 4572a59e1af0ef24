package commands

import (
	"fmt"
	"io"

	cpfService "github.com/allisson/validacpf/internal/cpf/service"
)

// maxGenerateCount bounds a single generate invocation.
const maxGenerateCount = 1000

// RunGenerate prints count random valid CPFs, one per line. When formatted is
// set they are rendered as 000.000.000-00.
func RunGenerate(
	generator cpfService.Generator,
	formatter cpfService.Formatter,
	writer io.Writer,
	count int,
	formatted bool,
) error {
	if count < 1 || count > maxGenerateCount {
		return fmt.Errorf("count must be between 1 and %d, got: %d", maxGenerateCount, count)
	}

	for i := 0; i < count; i++ {
		cpf, err := generator.Generate()
		if err != nil {
			return fmt.Errorf("failed to generate cpf: %w", err)
		}

		if formatted {
			cpf, err = formatter.Format(cpf)
			if err != nil {
				return fmt.Errorf("failed to format generated cpf: %w", err)
			}
		}

		if _, err := fmt.Fprintln(writer, cpf); err != nil {
			return err
		}
	}

	return nil
}
