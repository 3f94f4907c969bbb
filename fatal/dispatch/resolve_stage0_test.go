//go:build fatal_stage0

package dispatch

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/LerianStudio/lib-fatal/fatal/location"
	"github.com/LerianStudio/lib-fatal/fatal/msgfmt"
)

func TestResolve_UsesNamedRegistry(t *testing.T) {
	Reset()
	defer Reset()

	calls := 0

	Register(StageZeroHookName, func(_ msgfmt.Message, _ location.Location) { calls++ })

	// In the stage-zero configuration, Set is not consulted.
	Set(func(_ msgfmt.Message, _ location.Location) {
		t.Fatal("current-strategy hook must not resolve in stage0 builds")
	})

	msgfmt.Literal("boom", func(m msgfmt.Message) {
		Invoke(m, location.At("main.rs", 1))
	})

	require.Equal(t, 1, calls)
}
