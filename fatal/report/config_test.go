package report

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("FATAL_REPORT_FORMAT", "")
	t.Setenv("FATAL_REPORT_STACK", "")
	t.Setenv("ENV", "")
	t.Setenv("GO_ENV", "")

	cfg := LoadConfig()
	require.Equal(t, FormatConsole, cfg.Format)
	require.True(t, cfg.IncludeStack)
	require.False(t, cfg.Production)
}

func TestLoadConfig_FromEnv(t *testing.T) {
	t.Setenv("FATAL_REPORT_FORMAT", "json")
	t.Setenv("FATAL_REPORT_STACK", "false")

	cfg := LoadConfig()
	require.Equal(t, FormatJSON, cfg.Format)
	require.False(t, cfg.IncludeStack)
}

func TestLoadConfig_UnknownFormatFallsBack(t *testing.T) {
	t.Setenv("FATAL_REPORT_FORMAT", "xml")

	cfg := LoadConfig()
	require.Equal(t, FormatConsole, cfg.Format)
}

func TestLoadConfig_ProductionEnv(t *testing.T) {
	t.Setenv("ENV", "production")

	cfg := LoadConfig()
	require.True(t, cfg.Production)
}

func TestLoadConfig_ProductionGoEnv(t *testing.T) {
	t.Setenv("ENV", "")
	t.Setenv("GO_ENV", "Production")

	cfg := LoadConfig()
	require.True(t, cfg.Production)
}

func TestConfig_IncludeStack(t *testing.T) {
	t.Parallel()

	require.True(t, Config{IncludeStack: true}.includeStack())
	require.False(t, Config{IncludeStack: true, Production: true}.includeStack())
	require.False(t, Config{}.includeStack())
}

func TestNewLogger(t *testing.T) {
	t.Parallel()

	require.NotNil(t, NewLogger(Config{Format: FormatConsole}))
	require.NotNil(t, NewLogger(Config{Format: FormatJSON}))
	require.NotNil(t, NewLogger(Config{Production: true}))
}
