// Package location captures the source position attached to a fatal failure.
//
// A Location is an immutable file/line pair. Two wire forms exist: the
// native Go string form, and a legacy NUL-terminated form used by an older
// bootstrap stage of the toolchain, which is normalized to the native form
// at the boundary by FromNullTerminated.
package location

import (
	"strconv"

	"github.com/LerianStudio/lib-fatal/fatal/internal/cstr"
)

// Location identifies the source position a failure was raised from.
// Once constructed it is treated as an opaque immutable value for the
// remainder of the failure path.
type Location struct {
	File string
	Line uint
}

// At builds a Location from a native (length-prefixed) file string.
func At(file string, line uint) Location {
	return Location{File: file, Line: line}
}

// FromNullTerminated builds a Location over a legacy NUL-terminated file
// identifier. The scan stops at the first zero byte and the resulting File
// is a zero-copy view over the same memory.
//
// Precondition: file references program-lifetime storage (statically
// embedded location strings), never stack or heap data. The scan has no
// length bound; an unterminated input violates the caller's contract and is
// undefined behavior at this layer.
func FromNullTerminated(file *byte, line uint) Location {
	return Location{File: cstr.String(file), Line: line}
}

// String renders the conventional "file:line" form.
func (l Location) String() string {
	if l.File == "" {
		return "<unknown>"
	}

	return l.File + ":" + strconv.FormatUint(uint64(l.Line), 10)
}

// IsValid reports whether the location carries usable file and line data.
func (l Location) IsValid() bool {
	return l.File != "" && l.Line > 0
}
