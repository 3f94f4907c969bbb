package report

import (
	"context"
	"strconv"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	constant "github.com/LerianStudio/lib-fatal/fatal/constants"
)

// Recover is the goroutine-top counterpart of the Unwind hook. Use it as a
// deferred call at the boundary of goroutines that run failure-capable
// code:
//
//	go func() {
//	    defer report.Recover(ctx, "ingest-worker")
//	    process(batch)
//	}()
//
// When the goroutine unwinds with a *FailureError, Recover records the
// failure on the active span, increments the failure counter, and forwards
// it to the configured Reporter; the goroutine then terminates. Any other
// panic value is re-raised untouched — this is not a general recovery
// mechanism, only the observing end of the unwind policy.
func Recover(ctx context.Context, component string) {
	r := recover()
	if r == nil {
		return
	}

	entry, ok := r.(*FailureError)
	if !ok {
		panic(r)
	}

	if ctx == nil {
		ctx = context.Background()
	}

	recordFailureToSpan(ctx, entry, component)
	recordFailureMetric(ctx, entry, constant.PolicyRecover)
	captureFailure(ctx, entry, component)
}

func captureFailure(ctx context.Context, entry *FailureError, component string) {
	reporter := GetReporter()
	if reporter == nil {
		return
	}

	tags := map[string]string{
		"component":  component,
		"failure_id": entry.EventID,
		"file":       entry.File,
		"line":       strconv.FormatUint(uint64(entry.Line), 10),
	}

	reporter.CaptureFailure(ctx, entry, tags)
}

func recordFailureToSpan(ctx context.Context, entry *FailureError, component string) {
	span := trace.SpanFromContext(ctx)
	if !span.IsRecording() {
		return
	}

	attrs := []attribute.KeyValue{
		attribute.String(constant.AttrPrefixFailure+"id", entry.EventID),
		attribute.String(constant.AttrPrefixFailure+"message", entry.Message),
		attribute.String(constant.AttrPrefixFailure+"file", entry.File),
		attribute.Int64(constant.AttrPrefixFailure+"line", int64(entry.Line)),
	}

	if component != "" {
		attrs = append(attrs, attribute.String(constant.AttrPrefixFailure+"component", component))
	}

	span.AddEvent(constant.EventFailureRaised, trace.WithAttributes(attrs...))
	span.RecordError(entry)
	span.SetStatus(codes.Error, failureStatusMessage(component))
}

func failureStatusMessage(component string) string {
	if component == "" {
		return "fatal failure"
	}

	return "fatal failure in " + component
}
