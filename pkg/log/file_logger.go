package log

import (
	"os"
	"sync"
	"time"
)

// FileLogger writes records to a file as CBOR-encoded entries.
// It is safe for concurrent use from multiple goroutines.
type FileLogger struct {
	file   *os.File
	now    func() time.Time
	mu     sync.Mutex
	closed bool
}

// NewFileLogger creates a new FileLogger that writes to the specified path.
// If the file exists, new entries are appended. The file is created with
// permissions 0644 if it doesn't exist.
func NewFileLogger(path string) (*FileLogger, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nil, err
	}
	return &FileLogger{
		file: f,
		now:  time.Now,
	}, nil
}

// Enabled reports whether the logger is still open. Level filtering is
// left to LevelFilter.
func (l *FileLogger) Enabled(Metadata) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return !l.closed
}

// Log appends the record to the log file.
// This method is safe for concurrent use.
func (l *FileLogger) Log(record Record) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.closed {
		return
	}

	// Ignore errors - logging should not disrupt the application.
	// Entries are written whole so a failed encode leaves no partial bytes.
	data, err := EncodeEntry(NewEntry(l.now(), record))
	if err != nil {
		return
	}
	_, _ = l.file.Write(data)
}

// Flush commits written entries to stable storage.
func (l *FileLogger) Flush() {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.closed {
		return
	}
	_ = l.file.Sync()
}

// Close closes the log file.
// It is safe to call Close multiple times.
// After Close is called, subsequent Log calls are silently ignored.
func (l *FileLogger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.closed {
		return nil
	}

	l.closed = true
	return l.file.Close()
}

// Compile-time interface satisfaction check.
var _ Logger = (*FileLogger)(nil)
