package metrics

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// ValidationMetrics records CPF validation outcomes and debt lookups.
type ValidationMetrics interface {
	// RecordValidation counts one validation labelled by outcome
	// (a domain reason such as "VALID" or "CHECKSUM_MISMATCH", or "ERROR").
	RecordValidation(ctx context.Context, outcome string, duration time.Duration)

	// RecordDebtLookup counts one debt registry query labelled by status
	// ("found", "not_found", "error").
	RecordDebtLookup(ctx context.Context, status string, duration time.Duration)
}

type validationMetrics struct {
	validationCounter metric.Int64Counter
	validationHisto   metric.Float64Histogram
	lookupCounter     metric.Int64Counter
	lookupHisto       metric.Float64Histogram
}

// NewValidationMetrics registers the validation instruments on meterProvider.
func NewValidationMetrics(meterProvider metric.MeterProvider, namespace string) (ValidationMetrics, error) {
	meter := meterProvider.Meter(namespace)

	validationCounter, err := meter.Int64Counter(
		fmt.Sprintf("%s_validations_total", namespace),
		metric.WithDescription("Total number of CPF validations by outcome"),
		metric.WithUnit("{validation}"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create validation counter: %w", err)
	}

	validationHisto, err := meter.Float64Histogram(
		fmt.Sprintf("%s_validation_duration_seconds", namespace),
		metric.WithDescription("Duration of CPF validations in seconds, debt lookup included"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create validation histogram: %w", err)
	}

	lookupCounter, err := meter.Int64Counter(
		fmt.Sprintf("%s_debt_lookups_total", namespace),
		metric.WithDescription("Total number of debt registry lookups by status"),
		metric.WithUnit("{lookup}"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create debt lookup counter: %w", err)
	}

	lookupHisto, err := meter.Float64Histogram(
		fmt.Sprintf("%s_debt_lookup_duration_seconds", namespace),
		metric.WithDescription("Duration of debt registry lookups in seconds"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create debt lookup histogram: %w", err)
	}

	return &validationMetrics{
		validationCounter: validationCounter,
		validationHisto:   validationHisto,
		lookupCounter:     lookupCounter,
		lookupHisto:       lookupHisto,
	}, nil
}

func (v *validationMetrics) RecordValidation(ctx context.Context, outcome string, duration time.Duration) {
	attrs := metric.WithAttributes(attribute.String("outcome", outcome))
	v.validationCounter.Add(ctx, 1, attrs)
	v.validationHisto.Record(ctx, duration.Seconds(), attrs)
}

func (v *validationMetrics) RecordDebtLookup(ctx context.Context, status string, duration time.Duration) {
	attrs := metric.WithAttributes(attribute.String("status", status))
	v.lookupCounter.Add(ctx, 1, attrs)
	v.lookupHisto.Record(ctx, duration.Seconds(), attrs)
}

// NoOpValidationMetrics discards everything; used when METRICS_ENABLED=false.
type NoOpValidationMetrics struct{}

// NewNoOpValidationMetrics creates a no-op ValidationMetrics.
func NewNoOpValidationMetrics() ValidationMetrics {
	return &NoOpValidationMetrics{}
}

func (n *NoOpValidationMetrics) RecordValidation(ctx context.Context, outcome string, duration time.Duration) {
}

func (n *NoOpValidationMetrics) RecordDebtLookup(ctx context.Context, status string, duration time.Duration) {
}
