package fatal

import (
	"github.com/LerianStudio/lib-fatal/fatal/dispatch"
	"github.com/LerianStudio/lib-fatal/fatal/halt"
	"github.com/LerianStudio/lib-fatal/fatal/location"
	"github.com/LerianStudio/lib-fatal/fatal/msgfmt"
)

// Dispatch hands an already rendered failure to the process-wide hook. All
// failures funnel through this one function. It never returns: if the hook
// violates its contract and returns, the abort fallback halts the process
// before any further instruction executes.
//
//go:noinline
func Dispatch(msg msgfmt.Message, loc location.Location) {
	dispatch.Invoke(msg, loc)
	halt.Process()
}
