package log

import (
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func createTestLogFile(t *testing.T, entries []Entry) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "test.clog")

	logger, err := NewFileLogger(path)
	if err != nil {
		t.Fatalf("failed to create test log: %v", err)
	}

	for _, e := range entries {
		ts := e.Timestamp
		logger.now = func() time.Time { return ts }
		logger.Log(e.Record())
	}
	logger.Close()

	return path
}

func readAll(t *testing.T, r *Reader) []Entry {
	t.Helper()
	var read []Entry
	for {
		entry, err := r.Next()
		if err == io.EOF {
			return read
		}
		if err != nil {
			t.Fatalf("Next failed: %v", err)
		}
		read = append(read, entry)
	}
}

func TestReaderIteratesEntries(t *testing.T) {
	now := time.Now()
	entries := []Entry{
		{Timestamp: now, Level: LevelInfo, Target: "api", Message: "one"},
		{Timestamp: now, Level: LevelDebug, Target: "api", Message: "two"},
		{Timestamp: now, Level: LevelError, Target: "db", Message: "three"},
	}

	path := createTestLogFile(t, entries)

	reader, err := NewReader(path)
	if err != nil {
		t.Fatalf("NewReader failed: %v", err)
	}
	defer reader.Close()

	read := readAll(t, reader)
	if len(read) != 3 {
		t.Fatalf("got %d entries, want 3", len(read))
	}

	// Verify order
	if read[0].Message != "one" {
		t.Errorf("first entry Message = %q, want %q", read[0].Message, "one")
	}
	if read[2].Message != "three" {
		t.Errorf("last entry Message = %q, want %q", read[2].Message, "three")
	}
}

func TestReaderHandlesEmptyFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "empty.clog")

	logger, _ := NewFileLogger(path)
	logger.Close()

	reader, err := NewReader(path)
	if err != nil {
		t.Fatalf("NewReader failed: %v", err)
	}
	defer reader.Close()

	if _, err := reader.Next(); err != io.EOF {
		t.Errorf("Next on empty file = %v, want io.EOF", err)
	}
}

func TestReaderMissingFile(t *testing.T) {
	_, err := NewReader(filepath.Join(t.TempDir(), "missing.clog"))
	if !os.IsNotExist(err) {
		t.Errorf("NewReader error = %v, want not-exist", err)
	}
}

func TestReaderFilterByLevel(t *testing.T) {
	now := time.Now()
	path := createTestLogFile(t, []Entry{
		{Timestamp: now, Level: LevelError, Message: "e"},
		{Timestamp: now, Level: LevelInfo, Message: "i"},
		{Timestamp: now, Level: LevelTrace, Message: "t"},
	})

	reader, err := NewFilteredReader(path, Filter{MaxLevel: LevelInfo})
	if err != nil {
		t.Fatalf("NewFilteredReader failed: %v", err)
	}
	defer reader.Close()

	read := readAll(t, reader)
	if len(read) != 2 {
		t.Fatalf("got %d entries, want 2", len(read))
	}
	if read[1].Message != "i" {
		t.Errorf("second entry Message = %q, want %q", read[1].Message, "i")
	}
}

func TestReaderFilterByTargetPrefix(t *testing.T) {
	now := time.Now()
	path := createTestLogFile(t, []Entry{
		{Timestamp: now, Level: LevelInfo, Target: "http::server", Message: "a"},
		{Timestamp: now, Level: LevelInfo, Target: "db", Message: "b"},
		{Timestamp: now, Level: LevelInfo, Target: "http::client", Message: "c"},
	})

	reader, err := NewFilteredReader(path, Filter{TargetPrefix: "http"})
	if err != nil {
		t.Fatalf("NewFilteredReader failed: %v", err)
	}
	defer reader.Close()

	read := readAll(t, reader)
	if len(read) != 2 {
		t.Fatalf("got %d entries, want 2", len(read))
	}
	for _, e := range read {
		if e.Target == "db" {
			t.Errorf("db entry not filtered: %+v", e)
		}
	}
}

func TestReaderFilterByTimeWindow(t *testing.T) {
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	path := createTestLogFile(t, []Entry{
		{Timestamp: base, Level: LevelInfo, Message: "before"},
		{Timestamp: base.Add(time.Minute), Level: LevelInfo, Message: "inside"},
		{Timestamp: base.Add(2 * time.Minute), Level: LevelInfo, Message: "at-end"},
	})

	start := base.Add(30 * time.Second)
	end := base.Add(2 * time.Minute)
	reader, err := NewFilteredReader(path, Filter{TimeStart: &start, TimeEnd: &end})
	if err != nil {
		t.Fatalf("NewFilteredReader failed: %v", err)
	}
	defer reader.Close()

	read := readAll(t, reader)
	if len(read) != 1 || read[0].Message != "inside" {
		t.Errorf("got %+v, want only the inside entry", read)
	}
}
