package domain

// Validation is the outcome of validating a CPF through the use case,
// including the optional debt registry check.
type Validation struct {
	// MaskedCPF never exposes more than the last five digits.
	MaskedCPF string
	Reason    Reason

	// DebtChecked is false when the debt lookup is disabled or the CPF is invalid.
	DebtChecked bool
	HasDebts    bool
}

// Valid reports whether the CPF passed validation.
func (v *Validation) Valid() bool {
	return v.Reason.Valid()
}
