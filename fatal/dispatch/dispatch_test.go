//go:build !fatal_stage0

package dispatch

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/LerianStudio/lib-fatal/fatal/location"
	"github.com/LerianStudio/lib-fatal/fatal/msgfmt"
)

func TestSet_FirstWins(t *testing.T) {
	Reset()
	defer Reset()

	first := 0
	second := 0

	Set(func(_ msgfmt.Message, _ location.Location) { first++ })
	Set(func(_ msgfmt.Message, _ location.Location) { second++ })

	require.True(t, Installed())

	msgfmt.Literal("boom", func(m msgfmt.Message) {
		Invoke(m, location.At("lib.rs", 10))
	})

	require.Equal(t, 1, first)
	require.Equal(t, 0, second)
}

func TestSet_NilIgnored(t *testing.T) {
	Reset()
	defer Reset()

	Set(nil)
	require.False(t, Installed())
}

func TestInvoke_CarriesMessageAndLocation(t *testing.T) {
	Reset()
	defer Reset()

	var (
		gotMsg string
		gotLoc location.Location
		calls  int
	)

	Set(func(m msgfmt.Message, loc location.Location) {
		calls++
		gotMsg = m.Clone()
		gotLoc = loc
	})

	msgfmt.Literal("assertion failed", func(m msgfmt.Message) {
		Invoke(m, location.At("lib.rs", 10))
	})

	require.Equal(t, 1, calls)
	require.Equal(t, "assertion failed", gotMsg)
	require.Equal(t, location.At("lib.rs", 10), gotLoc)
}

func TestInvoke_NoHook_Returns(t *testing.T) {
	Reset()
	defer Reset()

	// With no hook wired, Invoke must return so the caller's abort
	// fallback can fire.
	msgfmt.Literal("boom", func(m msgfmt.Message) {
		Invoke(m, location.At("lib.rs", 1))
	})
}

func TestRegister_FirstWins(t *testing.T) {
	Reset()
	defer Reset()

	first := 0
	second := 0

	Register(StageZeroHookName, func(_ msgfmt.Message, _ location.Location) { first++ })
	Register(StageZeroHookName, func(_ msgfmt.Message, _ location.Location) { second++ })

	h := registered(StageZeroHookName)
	require.NotNil(t, h)

	h(msgfmt.Message{}, location.Location{})
	require.Equal(t, 1, first)
	require.Equal(t, 0, second)
}

func TestRegister_EmptyNameOrNilIgnored(t *testing.T) {
	Reset()
	defer Reset()

	Register("", func(_ msgfmt.Message, _ location.Location) {})
	Register(StageZeroHookName, nil)

	require.Nil(t, registered(""))
	require.Nil(t, registered(StageZeroHookName))
}
