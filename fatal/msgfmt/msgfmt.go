// Package msgfmt renders failure diagnostics without allocating.
//
// Rendered text is handed to the caller as a Message inside a callback
// scope: the backing storage may live on the renderer's stack, so the view
// is only valid for the duration of the callback. Hooks that need to retain
// the text must Clone it.
package msgfmt

import (
	"strconv"
	"strings"
	"unsafe"
)

// Message is a borrowed view of rendered diagnostic text.
//
// The zero Message is an empty message. A Message received inside a
// rendering callback must not be retained past the callback; use Clone to
// obtain an owned copy.
type Message struct {
	text string
}

// String returns the rendered text. The returned string aliases the
// renderer's backing storage and shares its lifetime.
func (m Message) String() string {
	return m.text
}

// Len returns the length of the rendered text in bytes.
func (m Message) Len() int {
	return len(m.text)
}

// Clone returns an owned copy of the rendered text, safe to retain past the
// rendering callback.
func (m Message) Clone() string {
	return strings.Clone(m.text)
}

// Literal emits text verbatim, with no template substitution. emit is
// called exactly once.
func Literal(text string, emit func(Message)) {
	emit(Message{text: text})
}

const (
	boundsPrefix = "index out of bounds: the len is "
	boundsInfix  = " but the index is "

	// Prefix, infix, and two decimal uint renderings (20 digits each).
	boundsBufferSize = len(boundsPrefix) + len(boundsInfix) + 2*20
)

// Bounds renders the fixed out-of-bounds template
//
//	index out of bounds: the len is {len} but the index is {index}
//
// with decimal substitution of the two arguments. The rendering uses a
// fixed-size buffer and performs no allocation; the emitted Message is only
// valid inside the callback. emit is called exactly once.
func Bounds(index, length uint, emit func(Message)) {
	var buf [boundsBufferSize]byte

	b := append(buf[:0], boundsPrefix...)
	b = strconv.AppendUint(b, uint64(length), 10)
	b = append(b, boundsInfix...)
	b = strconv.AppendUint(b, uint64(index), 10)

	emit(Message{text: unsafe.String(unsafe.SliceData(b), len(b))})
}
