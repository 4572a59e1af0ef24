// Package mocks provides testify mocks for the cpf use case interfaces.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	cpfDomain "github.com/allisson/validacpf/internal/cpf/domain"
)

// MockValidationUseCase is a mock implementation of usecase.ValidationUseCase.
type MockValidationUseCase struct {
	mock.Mock
}

// Validate mocks the Validate method.
func (m *MockValidationUseCase) Validate(ctx context.Context, raw string) (*cpfDomain.Validation, error) {
	args := m.Called(ctx, raw)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*cpfDomain.Validation), args.Error(1)
}

// MockDebtRepository is a mock implementation of usecase.DebtRepository.
type MockDebtRepository struct {
	mock.Mock
}

// HasDebts mocks the HasDebts method.
func (m *MockDebtRepository) HasDebts(ctx context.Context, cpf string) (bool, error) {
	args := m.Called(ctx, cpf)
	return args.Bool(0), args.Error(1)
}
