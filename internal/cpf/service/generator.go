package service

import (
	"crypto/rand"
	"fmt"
	"math/big"

	cpfDomain "github.com/allisson/validacpf/internal/cpf/domain"
)

type cpfGenerator struct{}

// NewGenerator creates a generator backed by crypto/rand.
func NewGenerator() Generator {
	return &cpfGenerator{}
}

// Generate draws nine random digits and appends both check digits. Bases made
// of a single repeated digit are redrawn since they never validate.
func (g *cpfGenerator) Generate() (string, error) {
	base := make([]byte, cpfDomain.BaseLength)

	for {
		for i := range base {
			n, err := rand.Int(rand.Reader, big.NewInt(10))
			if err != nil {
				return "", fmt.Errorf("failed to generate random digit: %w", err)
			}
			base[i] = byte('0' + n.Int64())
		}
		if !repeated(base) {
			break
		}
	}

	first, second := cpfDomain.CheckDigits(string(base))

	cpf := make([]byte, 0, cpfDomain.Length)
	cpf = append(cpf, base...)
	cpf = append(cpf, byte('0'+first), byte('0'+second))

	return string(cpf), nil
}

func repeated(digits []byte) bool {
	for _, d := range digits[1:] {
		if d != digits[0] {
			return false
		}
	}
	return true
}
