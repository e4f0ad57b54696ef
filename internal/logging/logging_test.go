package logging_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"github.com/emanuelbalogun/LightBnB/internal/logging"
	"github.com/emanuelbalogun/LightBnB/sqlq"
)

func TestNewLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		level string
		want  zerolog.Level
	}{
		{"", zerolog.InfoLevel},
		{"debug", zerolog.DebugLevel},
		{"WARN", zerolog.WarnLevel},
		{"warning", zerolog.WarnLevel},
		{"error", zerolog.ErrorLevel},
		{"trace", zerolog.TraceLevel},
		{"disabled", zerolog.Disabled},
		{"bogus", zerolog.InfoLevel},
	}
	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			t.Parallel()
			l := logging.New(logging.Config{Level: tt.level, Output: &bytes.Buffer{}})
			if got := l.GetLevel(); got != tt.want {
				t.Errorf("level = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestNewJSON(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	l := logging.New(logging.Config{Output: &buf})
	l.Info().Str("k", "v").Msg("hello")

	var line map[string]any
	if err := json.Unmarshal(buf.Bytes(), &line); err != nil {
		t.Fatalf("output is not json: %v: %q", err, buf.String())
	}
	if line["message"] != "hello" || line["k"] != "v" || line["level"] != "info" {
		t.Errorf("line = %v", line)
	}
}

func TestNewConsole(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	l := logging.New(logging.Config{Format: "console", Output: &buf})
	l.Info().Msg("hello")

	if out := buf.String(); strings.HasPrefix(out, "{") || !strings.Contains(out, "hello") {
		t.Errorf("console output = %q", out)
	}
}

func TestQueryLogger(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	ql := logging.NewQueryLogger(zerolog.New(&buf).Level(zerolog.DebugLevel))

	ql.Log(t.Context(), sqlq.LogEntry{Query: "SELECT 1", Args: []any{1}, Elapsed: time.Millisecond})

	var line map[string]any
	if err := json.Unmarshal(buf.Bytes(), &line); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if line["level"] != "debug" || line["query"] != "SELECT 1" || line["message"] != "sql" {
		t.Errorf("line = %v", line)
	}
}

func TestQueryLoggerError(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	ql := logging.NewQueryLogger(zerolog.New(&buf).Level(zerolog.ErrorLevel))

	ql.Log(t.Context(), sqlq.LogEntry{Query: "SELECT 1"})
	if buf.Len() != 0 {
		t.Fatalf("debug entry written at error level: %q", buf.String())
	}

	ql.Log(t.Context(), sqlq.LogEntry{Query: "SELECT nope", Err: errors.New("no such column")})
	if out := buf.String(); !strings.Contains(out, `"level":"error"`) || !strings.Contains(out, "no such column") {
		t.Errorf("output = %q", out)
	}
}

func TestQueryLoggerPrefersContext(t *testing.T) {
	t.Parallel()

	var base, scoped bytes.Buffer
	ql := logging.NewQueryLogger(zerolog.New(&base).Level(zerolog.DebugLevel))
	ctx := zerolog.New(&scoped).With().Str("request_id", "abc").Logger().WithContext(t.Context())

	ql.Log(ctx, sqlq.LogEntry{Query: "SELECT 1"})

	if base.Len() != 0 {
		t.Errorf("base logger written: %q", base.String())
	}
	if !strings.Contains(scoped.String(), `"request_id":"abc"`) {
		t.Errorf("scoped output = %q", scoped.String())
	}
}
