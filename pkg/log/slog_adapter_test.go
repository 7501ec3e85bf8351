package log

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"
)

func TestSlogAdapterLogsRecord(t *testing.T) {
	var buf bytes.Buffer
	handler := slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})
	adapter := NewSlogAdapter(slog.New(handler))

	adapter.Log(Record{
		Level:      LevelDebug,
		Target:     "SomeTarget",
		Format:     "Some %s",
		Args:       []any{"args"},
		File:       "file.rs",
		Line:       123,
		ModulePath: "module_path",
	})

	output := buf.String()
	if output == "" {
		t.Fatal("no output produced")
	}

	var logEntry map[string]any
	if err := json.Unmarshal([]byte(output), &logEntry); err != nil {
		t.Fatalf("failed to parse log output: %v", err)
	}

	if logEntry["msg"] != "Some args" {
		t.Errorf("msg: got %v, want %q", logEntry["msg"], "Some args")
	}
	if logEntry["level"] != "DEBUG" {
		t.Errorf("level: got %v, want %q", logEntry["level"], "DEBUG")
	}
	if logEntry["target"] != "SomeTarget" {
		t.Errorf("target: got %v, want %q", logEntry["target"], "SomeTarget")
	}
	if logEntry["file"] != "file.rs" {
		t.Errorf("file: got %v, want %q", logEntry["file"], "file.rs")
	}
	if logEntry["line"] != float64(123) {
		t.Errorf("line: got %v, want %v", logEntry["line"], 123)
	}
	if logEntry["module_path"] != "module_path" {
		t.Errorf("module_path: got %v, want %q", logEntry["module_path"], "module_path")
	}
}

func TestSlogAdapterOmitsMissingLocation(t *testing.T) {
	var buf bytes.Buffer
	adapter := NewSlogAdapter(slog.New(slog.NewJSONHandler(&buf, nil)))

	adapter.Log(Record{Level: LevelInfo, Format: "plain"})

	var logEntry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &logEntry); err != nil {
		t.Fatalf("failed to parse log output: %v", err)
	}
	for _, key := range []string{"target", "file", "line", "module_path"} {
		if _, ok := logEntry[key]; ok {
			t.Errorf("unexpected key %q in %v", key, logEntry)
		}
	}
}

func TestSlogAdapterEnabledFollowsHandler(t *testing.T) {
	adapter := NewSlogAdapter(slog.New(slog.NewJSONHandler(&bytes.Buffer{}, &slog.HandlerOptions{Level: slog.LevelInfo})))

	if !adapter.Enabled(Metadata{Level: LevelWarn}) {
		t.Error("WARN should be enabled at INFO")
	}
	if adapter.Enabled(Metadata{Level: LevelDebug}) {
		t.Error("DEBUG should be disabled at INFO")
	}
}

func TestSlogAdapterInterfaceSatisfaction(t *testing.T) {
	var _ Logger = (*SlogAdapter)(nil)
}
