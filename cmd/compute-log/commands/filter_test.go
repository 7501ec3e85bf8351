package commands

import (
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/compute-logger/compute-logger-go/pkg/log"
)

// createTestLogFileWithEntries writes entries with their own timestamps.
func createTestLogFileWithEntries(t *testing.T, entries []log.Entry) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.clog")

	var data []byte
	for _, e := range entries {
		b, err := log.EncodeEntry(e)
		if err != nil {
			t.Fatalf("failed to encode entry: %v", err)
		}
		data = append(data, b...)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatalf("failed to write log file: %v", err)
	}

	return path
}

func readAllEntries(t *testing.T, path string) []log.Entry {
	t.Helper()
	reader, err := log.NewReader(path)
	if err != nil {
		t.Fatalf("failed to open output: %v", err)
	}
	defer reader.Close()

	var entries []log.Entry
	for {
		entry, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatalf("failed to read entry: %v", err)
		}
		entries = append(entries, entry)
	}
	return entries
}

func TestFilterByLevel(t *testing.T) {
	ts := time.Date(2026, 1, 28, 10, 15, 32, 0, time.UTC)
	entries := []log.Entry{
		{Timestamp: ts, Level: log.LevelError, Target: "api", Message: "failed"},
		{Timestamp: ts, Level: log.LevelDebug, Target: "api", Message: "details"},
		{Timestamp: ts, Level: log.LevelWarn, Target: "api", Message: "slow"},
	}

	path := createTestLogFileWithEntries(t, entries)
	outPath := filepath.Join(t.TempDir(), "filtered.clog")

	err := RunFilter(path, FilterOptions{
		Output: outPath,
		Level:  "warn",
	})
	if err != nil {
		t.Fatalf("RunFilter failed: %v", err)
	}

	got := readAllEntries(t, outPath)
	if len(got) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(got))
	}
	for _, e := range got {
		if e.Level == log.LevelDebug {
			t.Errorf("unexpected debug entry: %s", e.Message)
		}
	}
}

func TestFilterByTargetPrefix(t *testing.T) {
	ts := time.Date(2026, 1, 28, 10, 15, 32, 0, time.UTC)
	entries := []log.Entry{
		{Timestamp: ts, Level: log.LevelInfo, Target: "db::pool", Message: "a"},
		{Timestamp: ts, Level: log.LevelInfo, Target: "http", Message: "b"},
		{Timestamp: ts, Level: log.LevelInfo, Target: "db", Message: "c"},
	}

	path := createTestLogFileWithEntries(t, entries)
	outPath := filepath.Join(t.TempDir(), "filtered.clog")

	err := RunFilter(path, FilterOptions{
		Output: outPath,
		Target: "db",
	})
	if err != nil {
		t.Fatalf("RunFilter failed: %v", err)
	}

	got := readAllEntries(t, outPath)
	if len(got) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(got))
	}
	if got[0].Message != "a" || got[1].Message != "c" {
		t.Errorf("expected messages a, c in order, got %s, %s", got[0].Message, got[1].Message)
	}
}

func TestFilterByTimeRange(t *testing.T) {
	base := time.Date(2026, 1, 28, 10, 0, 0, 0, time.UTC)
	entries := []log.Entry{
		{Timestamp: base, Level: log.LevelInfo, Message: "early"},
		{Timestamp: base.Add(time.Hour), Level: log.LevelInfo, Message: "middle"},
		{Timestamp: base.Add(2 * time.Hour), Level: log.LevelInfo, Message: "late"},
	}

	path := createTestLogFileWithEntries(t, entries)
	outPath := filepath.Join(t.TempDir(), "filtered.clog")

	err := RunFilter(path, FilterOptions{
		Output:    outPath,
		TimeStart: base.Add(30 * time.Minute).Format(time.RFC3339),
		TimeEnd:   base.Add(90 * time.Minute).Format(time.RFC3339),
	})
	if err != nil {
		t.Fatalf("RunFilter failed: %v", err)
	}

	// Only the 11:00 entry is in range, with its timestamp intact.
	got := readAllEntries(t, outPath)
	if len(got) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(got))
	}
	if got[0].Message != "middle" {
		t.Errorf("expected middle, got %s", got[0].Message)
	}
	if !got[0].Timestamp.Equal(base.Add(time.Hour)) {
		t.Errorf("expected timestamp %v, got %v", base.Add(time.Hour), got[0].Timestamp)
	}
}

func TestFilterWritesCBOR(t *testing.T) {
	ts := time.Date(2026, 1, 28, 10, 0, 0, 0, time.UTC)
	entries := []log.Entry{
		{
			Timestamp:  ts,
			Level:      log.LevelWarn,
			Target:     "api",
			Message:    "kept",
			File:       "main.go",
			Line:       12,
			ModulePath: "example.com/api",
		},
	}

	path := createTestLogFileWithEntries(t, entries)
	outPath := filepath.Join(t.TempDir(), "filtered.clog")

	if err := RunFilter(path, FilterOptions{Output: outPath}); err != nil {
		t.Fatalf("RunFilter failed: %v", err)
	}

	got := readAllEntries(t, outPath)
	if len(got) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(got))
	}
	e := got[0]
	if e.Target != "api" || e.File != "main.go" || e.Line != 12 || e.ModulePath != "example.com/api" {
		t.Errorf("entry fields not preserved: %+v", e)
	}
}

func TestFilterInvalidTime(t *testing.T) {
	path := createTestLogFile(t, []log.Record{{Level: log.LevelInfo, Format: "x"}})
	outPath := filepath.Join(t.TempDir(), "filtered.clog")

	err := RunFilter(path, FilterOptions{
		Output:    outPath,
		TimeStart: "yesterday",
	})
	if err == nil {
		t.Error("expected error for invalid time-start")
	}
}

func TestFilterInvalidLevel(t *testing.T) {
	path := createTestLogFile(t, []log.Record{{Level: log.LevelInfo, Format: "x"}})
	outPath := filepath.Join(t.TempDir(), "filtered.clog")

	if err := RunFilter(path, FilterOptions{Output: outPath, Level: "loud"}); err == nil {
		t.Error("expected error for invalid level")
	}
}

func TestFilterRequiresOutput(t *testing.T) {
	path := createTestLogFile(t, []log.Record{{Level: log.LevelInfo, Format: "x"}})

	if err := RunFilter(path, FilterOptions{}); err == nil {
		t.Error("expected error for missing output")
	}
}
