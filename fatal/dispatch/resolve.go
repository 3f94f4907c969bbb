//go:build !fatal_stage0

package dispatch

// resolve returns the hook installed via Set. This is the current
// resolution strategy.
func resolve() Hook {
	return installed()
}
