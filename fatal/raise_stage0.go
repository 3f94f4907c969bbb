//go:build fatal_stage0

package fatal

import (
	"github.com/LerianStudio/lib-fatal/fatal/halt"
	"github.com/LerianStudio/lib-fatal/fatal/internal/cstr"
	"github.com/LerianStudio/lib-fatal/fatal/location"
	"github.com/LerianStudio/lib-fatal/fatal/msgfmt"
)

// Raise declares an unrecoverable failure in the legacy stage-zero call
// shape: message and file are NUL-terminated bytes in program-lifetime
// storage. Both are converted to zero-copy views before any further
// processing. It never returns.
//
// This is the slow path, always.
//
//go:noinline
func Raise(message, file *byte, line uint) {
	loc := location.FromNullTerminated(file, line)

	msgfmt.Literal(cstr.String(message), func(m msgfmt.Message) {
		Dispatch(m, loc)
	})

	// Unreachable unless the renderer failed to emit.
	halt.Process()
}

// RaiseBounds declares an out-of-bounds indexed access in the legacy
// stage-zero call shape. It renders the fixed template "index out of
// bounds: the len is {len} but the index is {index}" and never returns.
//
//go:noinline
func RaiseBounds(file *byte, line uint, index, length uint) {
	loc := location.FromNullTerminated(file, line)

	msgfmt.Bounds(index, length, func(m msgfmt.Message) {
		Dispatch(m, loc)
	})

	// Unreachable unless the renderer failed to emit.
	halt.Process()
}
