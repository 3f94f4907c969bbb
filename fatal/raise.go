//go:build !fatal_stage0

package fatal

import (
	"github.com/LerianStudio/lib-fatal/fatal/halt"
	"github.com/LerianStudio/lib-fatal/fatal/location"
	"github.com/LerianStudio/lib-fatal/fatal/msgfmt"
)

// Raise declares an unrecoverable failure with a literal message. No
// template substitution is applied. It never returns.
//
// This is the slow path, always: it is kept out of line so that call sites
// stay small and the failure code stays off the hot instruction stream.
//
//go:noinline
func Raise(message string, loc location.Location) {
	msgfmt.Literal(message, func(m msgfmt.Message) {
		Dispatch(m, loc)
	})

	// Unreachable unless the renderer failed to emit.
	halt.Process()
}

// RaiseBounds declares an out-of-bounds indexed access. It renders the
// fixed template "index out of bounds: the len is {len} but the index is
// {index}" and never returns. Compiler-inserted bounds checks call this as
// their single failure target.
//
//go:noinline
func RaiseBounds(loc location.Location, index, length uint) {
	msgfmt.Bounds(index, length, func(m msgfmt.Message) {
		Dispatch(m, loc)
	})

	// Unreachable unless the renderer failed to emit.
	halt.Process()
}
