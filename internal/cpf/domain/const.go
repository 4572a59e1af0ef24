// Package domain defines the CPF validation rules: normalization, check digit
// calculation and the reasons a candidate identifier is rejected.
package domain

// Reason describes the outcome of a CPF validation.
type Reason string

const (
	ReasonEmpty            Reason = "EMPTY"
	ReasonWrongLength      Reason = "WRONG_LENGTH"
	ReasonAllSameDigit     Reason = "ALL_SAME_DIGIT"
	ReasonChecksumMismatch Reason = "CHECKSUM_MISMATCH"
	ReasonValid            Reason = "VALID"
)

// CPF layout constants.
const (
	// Length is the number of digits in a normalized CPF.
	Length = 11

	// BaseLength is the number of digits preceding the two check digits.
	BaseLength = 9
)

// String returns the string representation of the reason.
func (r Reason) String() string {
	return string(r)
}

// Valid reports whether the reason represents an accepted CPF.
func (r Reason) Valid() bool {
	return r == ReasonValid
}
