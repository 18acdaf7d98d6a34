package logging

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestTraceWritesJSONLinesWhenEnabled(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "trace.log")
	Configure(path)
	t.Cleanup(func() {
		SetTraceEnabled(false)
		Configure("")
	})

	Trace("ignored", nil)
	if _, err := os.Stat(path); err == nil {
		t.Fatalf("expected no log file while tracing is disabled")
	}

	SetTraceEnabled(true)
	Trace("filter.append", map[string]interface{}{"filter": "fi"})

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("expected trace file, got %v", err)
	}
	var entry struct {
		Event   string                 `json:"event"`
		Payload map[string]interface{} `json:"payload"`
	}
	if err := json.Unmarshal(data, &entry); err != nil {
		t.Fatalf("expected JSON line, got %q: %v", data, err)
	}
	if entry.Event != "filter.append" {
		t.Fatalf("expected event filter.append, got %q", entry.Event)
	}
	if entry.Payload["filter"] != "fi" {
		t.Fatalf("expected payload filter fi, got %v", entry.Payload["filter"])
	}
}

func TestErrorAppendsToLog(t *testing.T) {
	path := filepath.Join(t.TempDir(), "errors.log")
	Configure(path)
	t.Cleanup(func() { Configure("") })

	Error(nil)
	Error(errors.New("first"))
	Error(errors.New("second"))

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("expected log file, got %v", err)
	}
	text := string(data)
	if !strings.Contains(text, "first") || !strings.Contains(text, "second") {
		t.Fatalf("expected both errors logged, got %q", text)
	}
	if got := strings.Count(text, "\n"); got != 2 {
		t.Fatalf("expected 2 lines, got %d", got)
	}
}

func TestConfigureEmptyFallsBackToDefault(t *testing.T) {
	Configure("")
	if Path() != DefaultPath() {
		t.Fatalf("expected default path %q, got %q", DefaultPath(), Path())
	}
}
