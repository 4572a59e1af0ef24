package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cpfDomain "github.com/allisson/validacpf/internal/cpf/domain"
)

func TestGenerator_Generate(t *testing.T) {
	gen := NewGenerator()

	seen := make(map[string]struct{})
	for i := 0; i < 200; i++ {
		cpf, err := gen.Generate()
		require.NoError(t, err)

		assert.Len(t, cpf, cpfDomain.Length)
		assert.Equal(t, cpf, cpfDomain.Normalize(cpf))
		assert.Equal(t, cpfDomain.ReasonValid, cpfDomain.Check(cpf).Reason, cpf)

		seen[cpf] = struct{}{}
	}

	// 10^9 possible bases; collisions in 200 draws would point at a broken source.
	assert.Greater(t, len(seen), 190)
}

func TestRepeated(t *testing.T) {
	assert.True(t, repeated([]byte("777777777")))
	assert.False(t, repeated([]byte("777777770")))
}
