// Package report supplies reference dispatch hooks and the recovery side of
// the unwind policy.
//
// The fatal core only declares failure; this package defines what failure
// does. Terminate logs the diagnostic and halts the process. Unwind logs
// and panics with a *FailureError so a goroutine-top Recover can observe
// the failure, record telemetry, and let the goroutine die. Both hooks
// honor the dispatch contract: they never return normally.
package report

import (
	"context"
	"errors"
	"fmt"
	"runtime/debug"

	"github.com/google/uuid"
	"go.uber.org/zap"

	constant "github.com/LerianStudio/lib-fatal/fatal/constants"
	"github.com/LerianStudio/lib-fatal/fatal/dispatch"
	"github.com/LerianStudio/lib-fatal/fatal/halt"
	"github.com/LerianStudio/lib-fatal/fatal/location"
	"github.com/LerianStudio/lib-fatal/fatal/msgfmt"
)

// ErrFatalFailure is the sentinel error for raised fatal failures.
var ErrFatalFailure = errors.New("fatal failure")

// FailureError is the owned record of a raised failure. The unwinding hook
// panics with a *FailureError; recovery points and reporters receive it.
type FailureError struct {
	EventID string
	Message string
	File    string
	Line    uint
}

// Error returns the formatted failure message.
func (e *FailureError) Error() string {
	if e == nil {
		return ErrFatalFailure.Error()
	}

	if e.File == "" {
		return "fatal failure: " + e.Message
	}

	return fmt.Sprintf("fatal failure at %s:%d: %s", e.File, e.Line, e.Message)
}

// Unwrap returns the sentinel failure error for errors.Is.
func (e *FailureError) Unwrap() error {
	return ErrFatalFailure
}

// Location returns the source position the failure was raised from.
func (e *FailureError) Location() location.Location {
	if e == nil {
		return location.Location{}
	}

	return location.At(e.File, e.Line)
}

// newFailure copies the callback-scoped message into an owned record and
// assigns a correlation id.
func newFailure(m msgfmt.Message, loc location.Location) *FailureError {
	return &FailureError{
		EventID: uuid.NewString(),
		Message: m.Clone(),
		File:    loc.File,
		Line:    loc.Line,
	}
}

// Terminate returns a dispatch hook that logs the failure diagnostic,
// records the failure counter, and halts the process. It never returns.
func Terminate(logger *zap.Logger, cfg Config) dispatch.Hook {
	logger = ensureLogger(logger)

	return func(m msgfmt.Message, loc location.Location) {
		entry := newFailure(m, loc)

		logFailure(logger, cfg, entry, constant.PolicyTerminate)
		recordFailureMetric(context.Background(), entry, constant.PolicyTerminate)

		_ = logger.Sync()

		halt.Process()
	}
}

// Unwind returns a dispatch hook that logs the failure diagnostic, records
// the failure counter, and panics with a *FailureError so the goroutine
// unwinds to its recovery point. It never returns normally.
func Unwind(logger *zap.Logger, cfg Config) dispatch.Hook {
	logger = ensureLogger(logger)

	return func(m msgfmt.Message, loc location.Location) {
		entry := newFailure(m, loc)

		logFailure(logger, cfg, entry, constant.PolicyUnwind)
		recordFailureMetric(context.Background(), entry, constant.PolicyUnwind)

		panic(entry)
	}
}

func ensureLogger(logger *zap.Logger) *zap.Logger {
	if logger == nil {
		return zap.NewNop()
	}

	return logger
}

func logFailure(logger *zap.Logger, cfg Config, entry *FailureError, policy string) {
	fields := []zap.Field{
		zap.String("failure_id", entry.EventID),
		zap.String("file", entry.File),
		zap.Uint("line", entry.Line),
		zap.String("policy", policy),
	}

	if cfg.includeStack() {
		fields = append(fields, zap.ByteString("stack", debug.Stack()))
	}

	logger.Error("FATAL: "+entry.Message, fields...)
}

func recordFailureMetric(ctx context.Context, entry *FailureError, policy string) {
	fm := GetFailureMetrics()
	if fm != nil {
		fm.RecordFailureRaised(ctx, entry.File, policy)
	}
}
