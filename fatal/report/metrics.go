package report

import (
	"context"
	"sync"

	constant "github.com/LerianStudio/lib-fatal/fatal/constants"
	"github.com/LerianStudio/lib-fatal/fatal/telemetry"
)

// FailureMetrics provides failure-related metrics using OpenTelemetry.
type FailureMetrics struct {
	factory *telemetry.MetricsFactory
}

var (
	failureMetricsInstance *FailureMetrics
	failureMetricsMu       sync.RWMutex
)

// InitFailureMetrics initializes failure metrics with the provided
// MetricsFactory. This should be called once during application startup
// after telemetry is initialized. It is safe to call multiple times;
// subsequent calls are no-ops.
func InitFailureMetrics(factory *telemetry.MetricsFactory) {
	failureMetricsMu.Lock()
	defer failureMetricsMu.Unlock()

	if factory == nil {
		return
	}

	if failureMetricsInstance != nil {
		return
	}

	failureMetricsInstance = &FailureMetrics{factory: factory}
}

// GetFailureMetrics returns the singleton FailureMetrics instance.
// Returns nil if InitFailureMetrics has not been called.
func GetFailureMetrics() *FailureMetrics {
	failureMetricsMu.RLock()
	defer failureMetricsMu.RUnlock()

	return failureMetricsInstance
}

// ResetFailureMetrics clears the failure metrics singleton (useful for tests).
func ResetFailureMetrics() {
	failureMetricsMu.Lock()
	defer failureMetricsMu.Unlock()

	failureMetricsInstance = nil
}

// RecordFailureRaised increments the fatal_failure_total counter with
// labels. If metrics are not initialized, this is a no-op.
func (fm *FailureMetrics) RecordFailureRaised(ctx context.Context, file, policy string) {
	if fm == nil || fm.factory == nil {
		return
	}

	counter, err := fm.factory.Counter(telemetry.MetricFailuresRaised)
	if err != nil {
		return
	}

	_ = counter.
		WithLabels(map[string]string{
			"file":   constant.SanitizeMetricLabel(file),
			"policy": constant.SanitizeMetricLabel(policy),
		}).
		AddOne(ctx)
}
