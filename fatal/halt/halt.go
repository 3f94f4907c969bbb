// Package halt is the last-resort abort fallback of the failure boundary.
//
// It is reached only when the dispatch hook violates its never-return
// contract. The process-exit capability is injectable so embedders on
// targets without os.Exit semantics can substitute their own halt, and so
// tests can observe the abort without killing the test process.
package halt

import (
	"os"
	goruntime "runtime"
	"sync"
)

// ExitCode is the status the process aborts with: 128+SIGABRT, the
// conventional abort status.
const ExitCode = 134

// ExitFunc is the process-exit capability. The default is os.Exit.
type ExitFunc func(code int)

var (
	exitMu sync.RWMutex
	exitFn ExitFunc = os.Exit
)

// SetExitFunc replaces the process-exit capability. Passing nil restores
// os.Exit. Intended for embedders and test doubles; production services
// should leave the default in place.
func SetExitFunc(fn ExitFunc) {
	exitMu.Lock()
	defer exitMu.Unlock()

	if fn == nil {
		fn = os.Exit
	}

	exitFn = fn
}

func currentExit() ExitFunc {
	exitMu.RLock()
	defer exitMu.RUnlock()

	return exitFn
}

// Process aborts the process with ExitCode. It never returns.
//
// When the exit capability is a test double that returns, the calling
// goroutine is terminated via runtime.Goexit so that no instruction after
// the abort ever executes.
func Process() {
	currentExit()(ExitCode)

	// Reached only when the exit capability returned, which os.Exit
	// cannot. Terminate the goroutine so the non-return guarantee holds.
	goruntime.Goexit()
}
