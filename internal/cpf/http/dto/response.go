package dto

import (
	cpfDomain "github.com/allisson/validacpf/internal/cpf/domain"
)

// User-facing messages.
const (
	MessageMissing       = "Por favor, informe um CPF válido."
	MessageInvalid       = "CPF inválido."
	MessageValid         = "CPF válido."
	MessageValidNoDebts  = "CPF válido e não consta na base de débitos."
	MessageValidHasDebts = "CPF válido, porém consta na base de débitos."
)

// ValidateResponse is the body returned for an accepted CPF.
type ValidateResponse struct {
	Valid       bool   `json:"valid"`
	CPF         string `json:"cpf"`
	Reason      string `json:"reason"`
	Message     string `json:"message"`
	DebtChecked bool   `json:"debt_checked"`
	HasDebts    *bool  `json:"has_debts,omitempty"`
}

// MapValidationToResponse builds the response for a valid CPF. HasDebts is
// omitted when the debt registry was not consulted.
func MapValidationToResponse(v *cpfDomain.Validation) ValidateResponse {
	response := ValidateResponse{
		Valid:       v.Valid(),
		CPF:         v.MaskedCPF,
		Reason:      v.Reason.String(),
		Message:     MessageValid,
		DebtChecked: v.DebtChecked,
	}

	if v.DebtChecked {
		hasDebts := v.HasDebts
		response.HasDebts = &hasDebts
		response.Message = MessageValidNoDebts
		if hasDebts {
			response.Message = MessageValidHasDebts
		}
	}

	return response
}
