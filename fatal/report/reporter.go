package report

import (
	"context"
	"sync"
)

// Reporter defines an interface for external error tracking services.
// This abstraction allows forwarding fatal failures to an alerting or
// tracking system without a hard dependency on any specific SDK.
//
// Implementations should:
//   - Handle nil contexts gracefully
//   - Be safe for concurrent use
//   - Not panic themselves
type Reporter interface {
	// CaptureFailure reports a fatal failure to the tracking service.
	// The tags map includes metadata like "component", "file", "line".
	CaptureFailure(ctx context.Context, err error, tags map[string]string)
}

var (
	reporterInstance Reporter
	reporterMu       sync.RWMutex
)

// SetReporter configures the global failure reporter consulted by Recover.
// Pass nil to disable reporting. This should be called once during
// application startup if an external tracking service is desired.
func SetReporter(reporter Reporter) {
	reporterMu.Lock()
	defer reporterMu.Unlock()

	reporterInstance = reporter
}

// GetReporter returns the currently configured failure reporter.
// Returns nil if no reporter has been configured.
func GetReporter() Reporter {
	reporterMu.RLock()
	defer reporterMu.RUnlock()

	return reporterInstance
}
