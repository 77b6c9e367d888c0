package logger

import (
	"bytes"
	"encoding/json"
	"log"
	"strings"
	"testing"
	"time"
)

func TestLevelString(t *testing.T) {
	tests := []struct {
		level    Level
		expected string
	}{
		{DebugLevel, "DEBUG"},
		{InfoLevel, "INFO"},
		{WarnLevel, "WARN"},
		{ErrorLevel, "ERROR"},
		{Level(999), "UNKNOWN"},
	}

	for _, test := range tests {
		if result := test.level.String(); result != test.expected {
			t.Errorf("Level.String() = %v, expected %v", result, test.expected)
		}
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected Level
	}{
		{"debug", DebugLevel},
		{"info", InfoLevel},
		{"warn", WarnLevel},
		{"error", ErrorLevel},
		{"WARN", WarnLevel},
		{"bogus", InfoLevel},
		{"", InfoLevel},
	}

	for _, test := range tests {
		if result := ParseLevel(test.input); result != test.expected {
			t.Errorf("ParseLevel(%q) = %v, expected %v", test.input, result, test.expected)
		}
	}
}

func TestLoggerInitialization(t *testing.T) {
	Initialize(Config{
		Level:     InfoLevel,
		Component: "test",
	})

	if defaultLogger == nil {
		t.Fatal("Initialize() did not set defaultLogger")
	}
	if defaultLogger.config.Component != "test" {
		t.Errorf("Initialize() did not set config correctly, got component: %s", defaultLogger.config.Component)
	}
}

func TestLoggerPrettyFormatting(t *testing.T) {
	var buf bytes.Buffer
	l := &Logger{
		config: Config{Level: InfoLevel, Component: "test"},
		logger: log.New(&buf, "", 0),
	}

	entry := Entry{
		Time:      time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC),
		Level:     "INFO",
		Message:   "test message",
		Component: "test",
		Fields:    map[string]interface{}{"key": "value"},
	}

	out := l.formatPretty(entry)
	if !strings.Contains(out, "2025-01-01 12:00:00") {
		t.Errorf("formatPretty() missing timestamp: %s", out)
	}
	if !strings.Contains(out, "[INFO]") {
		t.Errorf("formatPretty() missing level: %s", out)
	}
	if !strings.Contains(out, "test:") {
		t.Errorf("formatPretty() missing component: %s", out)
	}
	if !strings.Contains(out, "test message") {
		t.Errorf("formatPretty() missing message: %s", out)
	}
	if !strings.Contains(out, "key=value") {
		t.Errorf("formatPretty() missing field: %s", out)
	}
}

func TestLoggerJSONOutput(t *testing.T) {
	var buf bytes.Buffer
	l := &Logger{
		config: Config{Level: InfoLevel, JSON: true, Component: "test"},
		logger: log.New(&buf, "", 0),
	}

	l.Log(InfoLevel, "json message", String("path", "docs/latest"))

	var entry Entry
	if err := json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry); err != nil {
		t.Fatalf("output is not valid JSON: %v (output: %s)", err, buf.String())
	}
	if entry.Message != "json message" {
		t.Errorf("entry.Message = %q, expected %q", entry.Message, "json message")
	}
	if entry.Fields["path"] != "docs/latest" {
		t.Errorf("entry.Fields[path] = %v, expected docs/latest", entry.Fields["path"])
	}
}

func TestLoggerLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	l := &Logger{
		config: Config{Level: WarnLevel},
		logger: log.New(&buf, "", 0),
	}

	l.Log(DebugLevel, "should not appear")
	l.Log(InfoLevel, "should not appear either")
	if buf.Len() != 0 {
		t.Errorf("messages below level were logged: %s", buf.String())
	}

	l.Log(WarnLevel, "should appear")
	if !strings.Contains(buf.String(), "should appear") {
		t.Errorf("WARN message was filtered out: %s", buf.String())
	}
}

func TestFieldConstructors(t *testing.T) {
	if f := String("k", "v"); f.Key != "k" || f.Value != "v" {
		t.Errorf("String() = %+v", f)
	}
	if f := Int("n", 7); f.Key != "n" || f.Value != 7 {
		t.Errorf("Int() = %+v", f)
	}
	if f := Bool("b", true); f.Key != "b" || f.Value != true {
		t.Errorf("Bool() = %+v", f)
	}
}
