// Package cstr provides zero-copy views over NUL-terminated byte sequences.
//
// It exists for the legacy failure call shapes, whose inputs are
// NUL-terminated bytes embedded in program-lifetime storage.
package cstr

import "unsafe"

// String returns a string view over the bytes at ptr up to, and excluding,
// the first NUL byte. The view aliases the input memory; no copy is made.
//
// Precondition: ptr references NUL-terminated, program-lifetime storage.
// The scan is unbounded, so an unterminated input is undefined behavior;
// callers on this path only ever pass statically embedded strings.
func String(ptr *byte) string {
	if ptr == nil {
		return ""
	}

	n := 0
	for *(*byte)(unsafe.Add(unsafe.Pointer(ptr), n)) != 0 {
		n++
	}

	if n == 0 {
		return ""
	}

	return unsafe.String(ptr, n)
}
