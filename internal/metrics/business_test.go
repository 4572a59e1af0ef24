package metrics

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// assertMetricLine checks the exposition output for a sample with the given
// name, a partial label match, and value. Extra OTel scope labels are tolerated.
func assertMetricLine(t *testing.T, output, name, labels, value string) {
	t.Helper()
	pattern := name + `\{[^}]*` + labels + `[^}]*\} ` + value
	assert.Regexp(t, pattern, output)
}

func TestValidationMetrics_RecordValidation(t *testing.T) {
	provider, err := NewProvider("test_app")
	require.NoError(t, err)
	defer func() {
		assert.NoError(t, provider.Shutdown(context.Background()))
	}()

	vm, err := NewValidationMetrics(provider.MeterProvider(), "test_app")
	require.NoError(t, err)

	ctx := context.Background()
	vm.RecordValidation(ctx, "VALID", 2*time.Millisecond)
	vm.RecordValidation(ctx, "VALID", time.Millisecond)
	vm.RecordValidation(ctx, "CHECKSUM_MISMATCH", time.Millisecond)

	output := scrape(t, provider)
	assertMetricLine(t, output, "test_app_validations_total", `outcome="VALID"`, "2")
	assertMetricLine(t, output, "test_app_validations_total", `outcome="CHECKSUM_MISMATCH"`, "1")
	assert.Contains(t, output, "test_app_validation_duration_seconds")
}

func TestValidationMetrics_RecordDebtLookup(t *testing.T) {
	provider, err := NewProvider("test_app")
	require.NoError(t, err)
	defer func() {
		assert.NoError(t, provider.Shutdown(context.Background()))
	}()

	vm, err := NewValidationMetrics(provider.MeterProvider(), "test_app")
	require.NoError(t, err)

	vm.RecordDebtLookup(context.Background(), "found", time.Millisecond)
	vm.RecordDebtLookup(context.Background(), "error", time.Millisecond)

	output := scrape(t, provider)
	assertMetricLine(t, output, "test_app_debt_lookups_total", `status="found"`, "1")
	assertMetricLine(t, output, "test_app_debt_lookups_total", `status="error"`, "1")
}

func TestNoOpValidationMetrics(t *testing.T) {
	vm := NewNoOpValidationMetrics()

	assert.NotPanics(t, func() {
		vm.RecordValidation(context.Background(), "VALID", time.Second)
		vm.RecordDebtLookup(context.Background(), "found", time.Second)
	})
}
