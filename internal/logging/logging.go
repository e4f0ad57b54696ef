// Package logging builds the zerolog logger used by the lightbnb command and
// adapts it to sqlq.Logger so executed statements can be traced.
package logging

import (
	"context"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/emanuelbalogun/LightBnB/sqlq"
)

// Config holds logging configuration.
type Config struct {
	// Level is the minimum level: trace, debug, info, warn, error or disabled.
	// Empty means info.
	Level string

	// Format is json or console. Empty means json.
	Format string

	// Output defaults to os.Stderr.
	Output io.Writer
}

// New returns a logger configured by cfg.
func New(cfg Config) zerolog.Logger {
	out := cfg.Output
	if out == nil {
		out = os.Stderr
	}
	if strings.EqualFold(cfg.Format, "console") {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: "15:04:05"}
	}
	return zerolog.New(out).Level(parseLevel(cfg.Level)).With().Timestamp().Logger()
}

func parseLevel(level string) zerolog.Level {
	switch strings.ToLower(level) {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	case "disabled":
		return zerolog.Disabled
	default:
		return zerolog.InfoLevel
	}
}

// QueryLogger writes every sqlq statement to a zerolog logger. Successful
// statements are logged at debug level, failed ones at error level.
type QueryLogger struct {
	log zerolog.Logger
}

// NewQueryLogger returns a QueryLogger writing to l.
func NewQueryLogger(l zerolog.Logger) *QueryLogger {
	return &QueryLogger{log: l}
}

// Log implements sqlq.Logger. A logger on ctx takes precedence so that
// statements carry the caller's correlation fields.
func (q *QueryLogger) Log(ctx context.Context, e sqlq.LogEntry) {
	l := &q.log
	if c := zerolog.Ctx(ctx); c.GetLevel() != zerolog.Disabled {
		l = c
	}

	ev := l.Debug()
	if e.Err != nil {
		ev = l.Error().Err(e.Err)
	}
	ev.Str("query", e.Query).
		Interface("args", e.Args).
		Dur("elapsed", e.Elapsed.Round(time.Microsecond)).
		Msg("sql")
}

var _ sqlq.Logger = (*QueryLogger)(nil)
