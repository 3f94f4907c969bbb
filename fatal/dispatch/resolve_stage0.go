//go:build fatal_stage0

package dispatch

// resolve returns the hook registered under StageZeroHookName. This is the
// legacy resolution strategy used by the older bootstrap stage, which binds
// the handler by fixed name rather than through Set.
func resolve() Hook {
	return registered(StageZeroHookName)
}
