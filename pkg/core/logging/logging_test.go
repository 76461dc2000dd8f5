package logging

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	jerror "github.com/msto63/jtime/foundation/core/error"
	jlog "github.com/msto63/jtime/foundation/core/log"
)

func TestDefaultLoggerConfig(t *testing.T) {
	cfg := DefaultLoggerConfig("jtime")

	if cfg.Name != "jtime" {
		t.Errorf("Name = %v, want jtime", cfg.Name)
	}
	if cfg.Level != "warn" {
		t.Errorf("Level = %v, want warn", cfg.Level)
	}
	if cfg.Format != "text" {
		t.Errorf("Format = %v, want text", cfg.Format)
	}
}

func TestNewLogger(t *testing.T) {
	tests := []struct {
		name      string
		cfg       LoggerConfig
		wantLevel jlog.Level
		wantErr   bool
	}{
		{"defaults", LoggerConfig{Name: "jtime"}, jlog.LevelWarn, false},
		{"debug", LoggerConfig{Level: "debug", Format: "json"}, jlog.LevelDebug, false},
		{"verbose lowers level", LoggerConfig{Level: "error", Verbose: true}, jlog.LevelDebug, false},
		{"verbose keeps trace", LoggerConfig{Level: "trace", Verbose: true}, jlog.LevelTrace, false},
		{"bad level", LoggerConfig{Level: "loud"}, jlog.LevelWarn, true},
		{"bad format", LoggerConfig{Level: "info", Format: "xml"}, jlog.LevelInfo, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			tt.cfg.Output = &buf

			logger, err := NewLogger(tt.cfg)
			if logger == nil {
				t.Fatal("NewLogger() returned nil")
			}
			if (err != nil) != tt.wantErr {
				t.Fatalf("NewLogger() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !jerror.HasCode(err, jerror.CodeInvalidConfig) {
				t.Errorf("error code = %v, want INVALID_CONFIG", jerror.GetCode(err))
			}
			if got := logger.GetLevel(); got != tt.wantLevel {
				t.Errorf("level = %v, want %v", got, tt.wantLevel)
			}
		})
	}
}

func TestNewLoggerRequestID(t *testing.T) {
	var buf bytes.Buffer
	logger, err := NewLogger(LoggerConfig{
		Name:      "jtime",
		Level:     "info",
		Format:    "json",
		RequestID: "req-1",
		Output:    &buf,
	})
	if err != nil {
		t.Fatal(err)
	}

	logger.Info("hello")

	var entry map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("invalid JSON %q: %v", buf.String(), err)
	}
	if entry["request_id"] != "req-1" {
		t.Errorf("request_id = %v", entry["request_id"])
	}
	if entry["logger"] != "jtime" {
		t.Errorf("logger = %v", entry["logger"])
	}
}

func TestToFields(t *testing.T) {
	// Empty input
	fields, err := toFields()
	if fields != nil || err != nil {
		t.Error("toFields() with no args should return nil")
	}

	// Valid key-value pairs
	fields, err = toFields("key1", "value1", "key2", 42)
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if fields["key1"] != "value1" {
		t.Errorf("fields[key1] = %v, want value1", fields["key1"])
	}
	if fields["key2"] != 42 {
		t.Errorf("fields[key2] = %v, want 42", fields["key2"])
	}

	// Non-string key and dangling key
	fields, _ = toFields(123, "value", "alone")
	if fields["123"] != "value" {
		t.Errorf("fields[123] = %v", fields["123"])
	}
	if fields["alone"] != "(missing)" {
		t.Errorf("fields[alone] = %v", fields["alone"])
	}
}

func TestToFieldsError(t *testing.T) {
	cause := errors.New("boom")

	tests := []struct {
		name string
		args []interface{}
		keys []string
	}{
		{"trailing error", []interface{}{"input", "x", cause}, []string{"input"}},
		{"error as value", []interface{}{"input", "x", "error", cause, "unit", "ms"}, []string{"input", "unit"}},
		{"leading error", []interface{}{cause, "unit", "ms"}, []string{"unit"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fields, err := toFields(tt.args...)
			if err != cause {
				t.Errorf("err = %v, want %v", err, cause)
			}
			if got := strings.Join(fields.Keys(), ","); got != strings.Join(tt.keys, ",") {
				t.Errorf("keys = %s, want %s", got, strings.Join(tt.keys, ","))
			}
		})
	}
}

func TestKVLogger(t *testing.T) {
	var buf bytes.Buffer
	base, _ := NewLogger(LoggerConfig{Level: "debug", Format: "json", Output: &buf})
	log := Wrap(base).With("cmd", "convert")

	log.Debug("parsed", "from", "unix")
	log.Error("convert failed", "input", "abc", errors.New("bad digits"))
	log.Warn("fallback", "unit", "ns")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3: %q", len(lines), buf.String())
	}

	var entry map[string]interface{}
	if err := json.Unmarshal([]byte(lines[1]), &entry); err != nil {
		t.Fatal(err)
	}
	if entry["level"] != "error" {
		t.Errorf("level = %v, want error", entry["level"])
	}
	if entry["error"] != "bad digits" {
		t.Errorf("error = %v", entry["error"])
	}
	if entry["cmd"] != "convert" || entry["input"] != "abc" {
		t.Errorf("entry = %v", entry)
	}
}

func TestKVLoggerTrace(t *testing.T) {
	var buf bytes.Buffer
	base, _ := NewLogger(LoggerConfig{Level: "trace", Format: "logfmt", Output: &buf})
	log := Wrap(base)

	log.Trace("parsing input", "value", "-1.25")
	out := buf.String()
	if !strings.Contains(out, "level=trace") || !strings.Contains(out, `value="-1.25"`) {
		t.Errorf("trace entry = %q", out)
	}

	buf.Reset()
	base, _ = NewLogger(LoggerConfig{Level: "debug", Output: &buf})
	Wrap(base).Trace("hidden")
	if buf.Len() != 0 {
		t.Errorf("trace should be filtered at debug level, got %q", buf.String())
	}
}

func TestKVLoggerFiltersLevel(t *testing.T) {
	var buf bytes.Buffer
	base, _ := NewLogger(LoggerConfig{Level: "warn", Output: &buf})
	log := Wrap(base)

	log.Debug("hidden")
	log.Info("hidden")
	if buf.Len() != 0 {
		t.Errorf("expected no output, got %q", buf.String())
	}
	log.Warn("shown")
	if !strings.Contains(buf.String(), "shown") {
		t.Errorf("warn entry missing: %q", buf.String())
	}
}

func BenchmarkLogger_Info(b *testing.B) {
	log := Wrap(jlog.Nop())

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		log.Info("benchmark message", "key", "value", "n", i)
	}
}
