// Package dispatch binds the process-wide fatal-failure hook.
//
// The hook owns the unwinding/termination policy; this package only
// resolves and invokes it. Exactly one hook exists per process, installed
// once at startup and fixed for the process lifetime. Two resolution
// strategies exist for toolchain bootstrap compatibility, selected by the
// fatal_stage0 build tag; only one is compiled into a given build.
package dispatch

import (
	"fmt"
	"os"
	"sync"

	"github.com/LerianStudio/lib-fatal/fatal/location"
	"github.com/LerianStudio/lib-fatal/fatal/msgfmt"
)

// Hook receives a formatted failure message and its source location.
//
// Contract: a Hook never returns normally. It must terminate the process or
// transfer control elsewhere (for example by panicking to unwind the
// goroutine). The message view is only valid for the duration of the call;
// a hook that retains the text must Clone it first.
type Hook func(msg msgfmt.Message, loc location.Location)

var (
	hookMu       sync.RWMutex
	hookInstance Hook
)

// Set installs the process-wide hook. The first call wins; subsequent calls
// are no-ops, preserving the one-hook-per-process invariant. This should be
// called once during application startup, before any code that can fail.
func Set(h Hook) {
	hookMu.Lock()
	defer hookMu.Unlock()

	if h == nil {
		return
	}

	if hookInstance != nil {
		return
	}

	hookInstance = h
}

// Installed reports whether a hook has been installed via Set.
func Installed() bool {
	hookMu.RLock()
	defer hookMu.RUnlock()

	return hookInstance != nil
}

// Reset clears the installed hook and the named registry (useful for tests).
func Reset() {
	hookMu.Lock()
	defer hookMu.Unlock()

	hookInstance = nil

	registryMu.Lock()
	defer registryMu.Unlock()

	registry = map[string]Hook{}
}

func installed() Hook {
	hookMu.RLock()
	defer hookMu.RUnlock()

	return hookInstance
}

// StageZeroHookName is the fixed registration name the legacy (stage-zero)
// resolution strategy looks up. It mirrors the fixed link symbol the older
// bootstrap stage binds against.
const StageZeroHookName = "lib_fatal_begin_dispatch"

var (
	registryMu sync.RWMutex
	registry   = map[string]Hook{}
)

// Register records a hook under a fixed name for the legacy resolution
// strategy. Like Set, the first registration under a given name wins.
func Register(name string, h Hook) {
	registryMu.Lock()
	defer registryMu.Unlock()

	if name == "" || h == nil {
		return
	}

	if _, ok := registry[name]; ok {
		return
	}

	registry[name] = h
}

func registered(name string) Hook {
	registryMu.RLock()
	defer registryMu.RUnlock()

	return registry[name]
}

// Invoke resolves the hook and transfers the failure to it.
//
// Invoke returning at all is a contract violation: either no hook was wired
// into the process (the runtime analog of an unresolved link symbol), or
// the hook itself returned. Callers must treat a return from Invoke as
// fatal and fall through to the abort primitive.
func Invoke(msg msgfmt.Message, loc location.Location) {
	h := resolve()
	if h == nil {
		fmt.Fprintf(os.Stderr, "fatal: no dispatch hook installed: %s at %s\n", msg.String(), loc.String())
		return
	}

	h(msg, loc)
}
