package constant

// TelemetrySDKName identifies this library in OTEL telemetry resource attributes.
const TelemetrySDKName = "lib-fatal/telemetry"

// MaxMetricLabelLength is the maximum length for metric labels to prevent
// cardinality explosion. Used by the report package for label sanitization.
const MaxMetricLabelLength = 64

// AttrPrefixFailure is the prefix for failure event attributes.
const AttrPrefixFailure = "failure."

// Telemetry metric names.
const (
	// MetricFailureTotal is the counter metric for raised fatal failures.
	MetricFailureTotal = "fatal_failure_total"
)

// Telemetry event names.
const (
	// EventFailureRaised is the span event name for fatal failures.
	EventFailureRaised = "failure.raised"
)

// Failure policy labels recorded on MetricFailureTotal.
const (
	// PolicyTerminate labels failures handled by the terminating hook.
	PolicyTerminate = "terminate"
	// PolicyUnwind labels failures handled by the unwinding hook.
	PolicyUnwind = "unwind"
	// PolicyRecover labels failures observed at a goroutine recovery point.
	PolicyRecover = "recover"
)

// SanitizeMetricLabel truncates a label value to MaxMetricLabelLength
// to prevent metric cardinality explosion in OTEL backends.
func SanitizeMetricLabel(value string) string {
	if len(value) > MaxMetricLabelLength {
		return value[:MaxMetricLabelLength]
	}

	return value
}
