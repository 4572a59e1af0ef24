package dto

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cpfDomain "github.com/allisson/validacpf/internal/cpf/domain"
)

func TestMapValidationToResponse(t *testing.T) {
	t.Run("lookup disabled", func(t *testing.T) {
		response := MapValidationToResponse(&cpfDomain.Validation{
			MaskedCPF: "***.***.247-25",
			Reason:    cpfDomain.ReasonValid,
		})

		assert.True(t, response.Valid)
		assert.Equal(t, MessageValid, response.Message)
		assert.Nil(t, response.HasDebts)

		body, err := json.Marshal(response)
		require.NoError(t, err)
		assert.NotContains(t, string(body), "has_debts")
	})

	t.Run("no debts", func(t *testing.T) {
		response := MapValidationToResponse(&cpfDomain.Validation{
			MaskedCPF:   "***.***.247-25",
			Reason:      cpfDomain.ReasonValid,
			DebtChecked: true,
		})

		assert.Equal(t, MessageValidNoDebts, response.Message)
		require.NotNil(t, response.HasDebts)
		assert.False(t, *response.HasDebts)
	})

	t.Run("has debts", func(t *testing.T) {
		response := MapValidationToResponse(&cpfDomain.Validation{
			MaskedCPF:   "***.***.247-25",
			Reason:      cpfDomain.ReasonValid,
			DebtChecked: true,
			HasDebts:    true,
		})

		assert.Equal(t, MessageValidHasDebts, response.Message)
		require.NotNil(t, response.HasDebts)
		assert.True(t, *response.HasDebts)
	})
}
