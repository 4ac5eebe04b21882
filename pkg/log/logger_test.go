package log

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func newBufferedLogger(level Level, formatter Formatter) (Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	l := NewLogger(
		WithLevel(level),
		WithFormatter(formatter),
		WithOutput(NewWriterOutput(&buf)),
	)
	return l, &buf
}

func TestParseLevel(t *testing.T) {
	for in, want := range map[string]Level{"debug": DebugLevel, "info": InfoLevel, "": InfoLevel, "warn": WarnLevel, "error": ErrorLevel} {
		got, err := ParseLevel(in)
		if err != nil || got != want {
			t.Fatalf("ParseLevel(%q) = %v, %v", in, got, err)
		}
	}
	if _, err := ParseLevel("verbose"); err == nil {
		t.Fatalf("expected error for unknown level")
	}
}

func TestLevelFiltering(t *testing.T) {
	l, buf := newBufferedLogger(WarnLevel, &TextFormatter{})
	l.Debug("hidden")
	l.Info("hidden too")
	l.Warn("visible")
	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("low-level entries leaked: %q", out)
	}
	if !strings.Contains(out, "visible") {
		t.Fatalf("warn entry missing: %q", out)
	}
}

func TestJSONFormatterFields(t *testing.T) {
	l, buf := newBufferedLogger(InfoLevel, &JSONFormatter{})
	l = l.With(Component("runtime"))
	l.Info("replayed", Int("records", 42), Str("name", "tqueue"))

	var obj map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &obj); err != nil {
		t.Fatalf("unmarshal: %v (%q)", err, buf.String())
	}
	if obj["msg"] != "replayed" || obj["component"] != "runtime" || obj["records"] != float64(42) {
		t.Fatalf("unexpected entry: %v", obj)
	}
}

func TestTextFormatterSortsFields(t *testing.T) {
	l, buf := newBufferedLogger(InfoLevel, &TextFormatter{})
	l.Info("m", Str("zebra", "z"), Str("alpha", "a"))
	out := buf.String()
	if strings.Index(out, "alpha=") > strings.Index(out, "zebra=") {
		t.Fatalf("fields not sorted: %q", out)
	}
}
