package logger

import (
	"io"
	"os"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"
)

var (
	base        atomic.Pointer[zerolog.Logger]
	defaultOnce sync.Once
)

// Init configures the global JSON logger.
//
// Environment variables (optional):
//   - LOG_LEVEL: debug|info|warn|error (default: info)
//   - LOG_PRETTY: true|false (default: false)
func Init() {
	pretty := strings.EqualFold(getenv("LOG_PRETTY", "false"), "true")

	var w io.Writer = os.Stdout
	if pretty {
		w = zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}
	}
	InitWithWriter(w)
}

// InitWithWriter configures the global logger to write to w, honoring LOG_LEVEL.
// Tests use it to capture output.
func InitWithWriter(w io.Writer) {
	level := parseLevel(getenv("LOG_LEVEL", "info"))

	zerolog.TimeFieldFormat = time.RFC3339Nano
	lg := zerolog.New(w).With().Timestamp().Str("service", "dexpulse").Logger().Level(level)
	base.Store(&lg)
}

// L returns the global logger. Call Init() once on startup; before that the
// first caller installs the default stdout logger.
func L() *zerolog.Logger {
	if lg := base.Load(); lg != nil {
		return lg
	}
	defaultOnce.Do(func() {
		if base.Load() == nil {
			Init()
		}
	})
	return base.Load()
}

// With returns a child of the global logger tagged with the given component name.
func With(component string) zerolog.Logger {
	return L().With().Str("component", component).Logger()
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func parseLevel(s string) zerolog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return zerolog.DebugLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error", "err":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}
