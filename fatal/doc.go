// Package fatal is the failure-declaration boundary for allocation-free
// runtime code.
//
// Code at this layer is allowed to fail, but not to define what failure
// does: the unwinding or termination policy is owned by a process-wide
// dispatch hook wired in by the embedding application (see the dispatch
// subpackage). The entry points here capture a message and source location,
// render the diagnostic without allocating, and transfer control to the
// hook. They never return to their caller; if the hook breaks that
// contract, the abort fallback halts the process (see the halt subpackage).
//
// Typical wiring at application startup:
//
//	logger := report.NewLogger(report.LoadConfig())
//	dispatch.Set(report.Terminate(logger))
//
// After which library code raises failures directly:
//
//	fatal.Raise("assertion failed", location.At("lib.rs", 10))
//	fatal.RaiseBounds(location.At("vec.rs", 42), index, length)
//
// The entry points exist in two call shapes selected by the fatal_stage0
// build tag: the native shape taking Go strings, and a legacy shape taking
// NUL-terminated byte pointers for the older bootstrap stage of the
// toolchain. Only one shape is compiled into a given build.
package fatal
