package logger

import (
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

type Options struct {
	Service string
	Env     string
	Level   string

	// Output defaults to stderr.
	Output io.Writer
}

// New returns a JSON logger tagged with service and env. In the dev
// environment output is human readable.
func New(opts Options) zerolog.Logger {
	out := opts.Output
	if out == nil {
		out = os.Stderr
	}

	if opts.Env == "dev" {
		out = zerolog.ConsoleWriter{Out: out, NoColor: true}
	}

	return zerolog.New(out).
		Level(parseLevel(opts.Level)).
		With().
		Timestamp().
		Str("service", opts.Service).
		Str("env", opts.Env).
		Logger()
}

func parseLevel(lvl string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(lvl)) {
	case "debug":
		return zerolog.DebugLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}
