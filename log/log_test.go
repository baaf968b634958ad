package log

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
)

func TestZeroLoggerIsNoOp(t *testing.T) {
	var l Logger

	// Must not panic.
	l.Debug("debug")
	l.Info("info", slog.String("k", "v"))
	l.Warn("warn")
	l.Error("error")

	if l.Level() != DefaultLevel {
		t.Errorf("zero logger level = %v, want %v", l.Level(), DefaultLevel)
	}

	if l.Format() != DefaultFormat {
		t.Errorf("zero logger format = %v, want %v", l.Format(), DefaultFormat)
	}
}

func TestMake_JSONOutput(t *testing.T) {
	var buf bytes.Buffer

	l := Make(&buf)

	l.Info("hello", slog.String("name", "값"))

	var rec map[string]any

	err := json.Unmarshal(buf.Bytes(), &rec)
	if err != nil {
		t.Fatalf("output is not JSON: %v (%q)", err, buf.String())
	}

	if rec["msg"] != "hello" {
		t.Errorf("msg = %v, want hello", rec["msg"])
	}

	if rec["name"] != "값" {
		t.Errorf("name = %v, want 값", rec["name"])
	}
}

func TestMake_TextOutput(t *testing.T) {
	var buf bytes.Buffer

	l := Make(&buf, WithFormat(FormatText))

	l.Warn("careful", slog.Int("n", 3))

	got := buf.String()
	if !strings.Contains(got, "careful") || !strings.Contains(got, "n=3") {
		t.Errorf("unexpected text output: %q", got)
	}
}

func TestMake_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer

	l := Make(&buf, WithLevel(LevelWarn))

	l.Debug("hidden")
	l.Info("hidden")

	if buf.Len() != 0 {
		t.Errorf("expected below-level messages discarded, got %q",
			buf.String())
	}

	l.Error("shown")

	if !strings.Contains(buf.String(), "shown") {
		t.Errorf("expected error message emitted, got %q", buf.String())
	}
}

func TestWrap_OverridesConfig(t *testing.T) {
	var buf bytes.Buffer

	l := Make(&buf, WithLevel(LevelError))

	wrapped := l.Wrap(WithLevel(LevelDebug))

	wrapped.Debug("visible")

	if !strings.Contains(buf.String(), "visible") {
		t.Errorf("expected wrapped logger to emit debug, got %q",
			buf.String())
	}

	if l.Level() != LevelError {
		t.Errorf("original logger level changed to %v", l.Level())
	}
}

func TestWith_AttachesAttrs(t *testing.T) {
	var buf bytes.Buffer

	l := Make(&buf).With(slog.String("component", "lexer"))

	l.Info("scan complete")

	if !strings.Contains(buf.String(), "lexer") {
		t.Errorf("expected attached attr in output, got %q", buf.String())
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  Level
	}{
		{input: "debug", want: LevelDebug},
		{input: "INFO", want: LevelInfo},
		{input: "warn", want: LevelWarn},
		{input: "error", want: LevelError},
		{input: "bogus", want: DefaultLevel},
		{input: "", want: DefaultLevel},
	}

	for _, tt := range tests {
		if got := ParseLevel(tt.input); got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input string
		want  Format
	}{
		{input: "text", want: FormatText},
		{input: "TEXT", want: FormatText},
		{input: "json", want: FormatJSON},
		{input: "bogus", want: DefaultFormat},
	}

	for _, tt := range tests {
		if got := ParseFormat(tt.input); got != tt.want {
			t.Errorf("ParseFormat(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}
