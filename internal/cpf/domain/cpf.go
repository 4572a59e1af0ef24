package domain

// Result holds the normalized digits and the validation outcome for a raw input.
type Result struct {
	Normalized string
	Reason     Reason
}

// Valid reports whether the result is an accepted CPF.
func (r Result) Valid() bool {
	return r.Reason.Valid()
}

// Validate reports whether raw is a valid CPF. Punctuation and any other
// non-digit characters are ignored.
func Validate(raw string) bool {
	return Check(raw).Valid()
}

// CheckPtr is like Check but treats a nil pointer as empty input.
func CheckPtr(raw *string) Result {
	if raw == nil {
		return Result{Reason: ReasonEmpty}
	}
	return Check(*raw)
}

// Check validates raw and reports why it was rejected, if it was.
func Check(raw string) Result {
	if raw == "" {
		return Result{Reason: ReasonEmpty}
	}

	digits := Normalize(raw)
	result := Result{Normalized: digits}

	if len(digits) != Length {
		result.Reason = ReasonWrongLength
		return result
	}

	if allSameDigit(digits) {
		result.Reason = ReasonAllSameDigit
		return result
	}

	first, second := CheckDigits(digits[:BaseLength])
	if int(digits[9]-'0') != first || int(digits[10]-'0') != second {
		result.Reason = ReasonChecksumMismatch
		return result
	}

	result.Reason = ReasonValid
	return result
}

// Normalize drops every character that is not an ASCII decimal digit,
// preserving the order of the remaining digits.
func Normalize(raw string) string {
	out := make([]byte, 0, len(raw))
	for i := 0; i < len(raw); i++ {
		if c := raw[i]; c >= '0' && c <= '9' {
			out = append(out, c)
		}
	}
	return string(out)
}

// CheckDigits computes both check digits for a 9-digit base.
// The base must contain only ASCII digits and be exactly BaseLength long.
func CheckDigits(base string) (first, second int) {
	digits := make([]int, BaseLength+1)
	for i := 0; i < BaseLength; i++ {
		digits[i] = int(base[i] - '0')
	}

	first = checkDigit(digits[:BaseLength])
	digits[BaseLength] = first
	second = checkDigit(digits)

	return first, second
}

// checkDigit applies weights descending from len(digits)+1 down to 2 and
// reduces the weighted sum modulo 11.
func checkDigit(digits []int) int {
	sum := 0
	weight := len(digits) + 1
	for _, d := range digits {
		sum += d * weight
		weight--
	}

	remainder := sum % 11
	if remainder < 2 {
		return 0
	}
	return 11 - remainder
}

func allSameDigit(digits string) bool {
	for i := 1; i < len(digits); i++ {
		if digits[i] != digits[0] {
			return false
		}
	}
	return true
}
