package usecase

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	cpfDomain "github.com/allisson/validacpf/internal/cpf/domain"
	cpfService "github.com/allisson/validacpf/internal/cpf/service"
	"github.com/allisson/validacpf/internal/cpf/usecase/mocks"
	apperrors "github.com/allisson/validacpf/internal/errors"
)

func newTestLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewJSONHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func TestValidationUseCase_Validate_WithoutDebtLookup(t *testing.T) {
	tests := []struct {
		name           string
		input          string
		expectedReason cpfDomain.Reason
		expectedMasked string
	}{
		{
			name:           "Valid",
			input:          "529.982.247-25",
			expectedReason: cpfDomain.ReasonValid,
			expectedMasked: "***.***.247-25",
		},
		{
			name:           "Empty",
			input:          "",
			expectedReason: cpfDomain.ReasonEmpty,
			expectedMasked: "***.***.***-**",
		},
		{
			name:           "WrongLength",
			input:          "529.982",
			expectedReason: cpfDomain.ReasonWrongLength,
			expectedMasked: "***.***.***-**",
		},
		{
			name:           "AllSameDigit",
			input:          "111.111.111-11",
			expectedReason: cpfDomain.ReasonAllSameDigit,
			expectedMasked: "***.***.111-11",
		},
		{
			name:           "ChecksumMismatch",
			input:          "123.456.789-00",
			expectedReason: cpfDomain.ReasonChecksumMismatch,
			expectedMasked: "***.***.789-00",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var logs bytes.Buffer
			uc := NewValidationUseCase(cpfService.NewFormatter(nil), nil, newTestLogger(&logs))

			validation, err := uc.Validate(context.Background(), tt.input)

			require.NoError(t, err)
			assert.Equal(t, tt.expectedReason, validation.Reason)
			assert.Equal(t, tt.expectedMasked, validation.MaskedCPF)
			assert.Equal(t, tt.expectedReason == cpfDomain.ReasonValid, validation.Valid())
			assert.False(t, validation.DebtChecked)
			assert.False(t, validation.HasDebts)
		})
	}
}

func TestValidationUseCase_Validate_DebtLookup(t *testing.T) {
	t.Run("Success_NoDebts", func(t *testing.T) {
		repo := &mocks.MockDebtRepository{}
		repo.On("HasDebts", mock.Anything, "52998224725").Return(false, nil).Once()

		uc := NewValidationUseCase(cpfService.NewFormatter(nil), repo, slog.Default())
		validation, err := uc.Validate(context.Background(), "529.982.247-25")

		require.NoError(t, err)
		assert.True(t, validation.Valid())
		assert.True(t, validation.DebtChecked)
		assert.False(t, validation.HasDebts)
		repo.AssertExpectations(t)
	})

	t.Run("Success_HasDebts", func(t *testing.T) {
		repo := &mocks.MockDebtRepository{}
		repo.On("HasDebts", mock.Anything, "52998224725").Return(true, nil).Once()

		uc := NewValidationUseCase(cpfService.NewFormatter(nil), repo, slog.Default())
		validation, err := uc.Validate(context.Background(), "52998224725")

		require.NoError(t, err)
		assert.True(t, validation.DebtChecked)
		assert.True(t, validation.HasDebts)
		repo.AssertExpectations(t)
	})

	t.Run("Skipped_InvalidCPF", func(t *testing.T) {
		repo := &mocks.MockDebtRepository{}

		uc := NewValidationUseCase(cpfService.NewFormatter(nil), repo, slog.Default())
		validation, err := uc.Validate(context.Background(), "123.456.789-00")

		require.NoError(t, err)
		assert.False(t, validation.Valid())
		assert.False(t, validation.DebtChecked)
		repo.AssertNotCalled(t, "HasDebts", mock.Anything, mock.Anything)
	})

	t.Run("Error_LookupFailure", func(t *testing.T) {
		repo := &mocks.MockDebtRepository{}
		repo.On("HasDebts", mock.Anything, "52998224725").
			Return(false, apperrors.Wrap(apperrors.ErrUnavailable, "connection refused")).
			Once()

		uc := NewValidationUseCase(cpfService.NewFormatter(nil), repo, slog.Default())
		validation, err := uc.Validate(context.Background(), "529.982.247-25")

		require.Error(t, err)
		assert.Nil(t, validation)
		assert.True(t, errors.Is(err, apperrors.ErrUnavailable))
		repo.AssertExpectations(t)
	})
}

func TestValidationUseCase_Validate_NeverLogsFullCPF(t *testing.T) {
	t.Run("WithFingerprintKey", func(t *testing.T) {
		var logs bytes.Buffer
		formatter := cpfService.NewFormatter([]byte("log-fingerprint-key"))
		uc := NewValidationUseCase(formatter, nil, newTestLogger(&logs))

		_, err := uc.Validate(context.Background(), "529.982.247-25")
		require.NoError(t, err)

		output := logs.String()
		assert.Contains(t, output, "cpf validated")
		assert.Contains(t, output, "***.***.247-25")
		assert.Contains(t, output, `"cpf_fingerprint":"`+formatter.Fingerprint("52998224725")+`"`)
		assert.NotContains(t, output, "52998224725")
		assert.NotContains(t, output, "529.982.247-25")
	})

	t.Run("WithoutFingerprintKey", func(t *testing.T) {
		var logs bytes.Buffer
		uc := NewValidationUseCase(cpfService.NewFormatter(nil), nil, newTestLogger(&logs))

		_, err := uc.Validate(context.Background(), "529.982.247-25")
		require.NoError(t, err)

		output := logs.String()
		assert.Contains(t, output, "***.***.247-25")
		assert.NotContains(t, output, "cpf_fingerprint")
		assert.NotContains(t, output, "52998224725")
	})
}
