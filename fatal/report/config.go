package report

import (
	"os"
	"strings"

	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// Log output formats for the reference hooks.
const (
	FormatConsole = "console"
	FormatJSON    = "json"
)

// Config controls the diagnostic output of the reference hooks.
type Config struct {
	// Format selects the log encoding: "console" or "json".
	Format string
	// IncludeStack attaches a stack trace to the failure diagnostic.
	IncludeStack bool
	// Production redacts stack traces regardless of IncludeStack and
	// forces JSON output.
	Production bool
}

// includeStack reports whether the diagnostic should carry a stack trace.
// Production mode always wins, mirroring the redaction rules applied to
// panic reporting elsewhere in the stack.
func (c Config) includeStack() bool {
	return c.IncludeStack && !c.Production
}

// LoadConfig reads hook configuration from FATAL_REPORT_* environment
// variables:
//
//	FATAL_REPORT_FORMAT  "console" (default) or "json"
//	FATAL_REPORT_STACK   include stack traces (default true)
//
// Production mode is derived from the conventional ENV / GO_ENV variables.
func LoadConfig() Config {
	v := viper.New()
	v.SetEnvPrefix("FATAL_REPORT")
	v.AutomaticEnv()

	v.SetDefault("format", FormatConsole)
	v.SetDefault("stack", true)

	cfg := Config{
		Format:       strings.ToLower(v.GetString("format")),
		IncludeStack: v.GetBool("stack"),
		Production:   isProductionEnv(),
	}

	if cfg.Format != FormatJSON {
		cfg.Format = FormatConsole
	}

	return cfg
}

func isProductionEnv() bool {
	env := strings.TrimSpace(os.Getenv("ENV"))
	goEnv := strings.TrimSpace(os.Getenv("GO_ENV"))

	return strings.EqualFold(env, "production") || strings.EqualFold(goEnv, "production")
}

// NewLogger builds the zap logger the reference hooks log through:
// production-encoded JSON in production or when requested, a development
// console logger otherwise. Falls back to a no-op logger if building fails.
func NewLogger(cfg Config) *zap.Logger {
	var zcfg zap.Config

	if cfg.Production || cfg.Format == FormatJSON {
		zcfg = zap.NewProductionConfig()
	} else {
		zcfg = zap.NewDevelopmentConfig()
	}

	logger, err := zcfg.Build()
	if err != nil {
		return zap.NewNop()
	}

	return logger
}
