package logging

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
)

// EnvLevel overrides the configured level when set, e.g. CALC_LOG_LEVEL=debug.
const EnvLevel = "CALC_LOG_LEVEL"

// New builds a leveled logger writing to w. Unknown levels fall back to info.
func New(w io.Writer, level string, prefix string) *log.Logger {
	if env := os.Getenv(EnvLevel); env != "" {
		level = env
	}
	lv, err := log.ParseLevel(level)
	if err != nil {
		lv = log.InfoLevel
	}
	return log.NewWithOptions(w, log.Options{
		Level:           lv,
		Prefix:          prefix,
		ReportTimestamp: true,
	})
}

// Discard returns a logger that drops everything, for tests.
func Discard() *log.Logger {
	return log.New(io.Discard)
}
