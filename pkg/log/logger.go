package log

// Logger is the sink capability. Implementations must be safe for
// concurrent use by multiple goroutines.
type Logger interface {
	// Enabled reports whether a record with the given metadata would be logged.
	Enabled(metadata Metadata) bool

	// Log records a record. Callers usually check Enabled first, but
	// implementations must not assume they did.
	Log(record Record)

	// Flush writes out any buffered records.
	Flush()
}

// NoopLogger discards all records. Use when logging is disabled.
// NoopLogger is safe for concurrent use and usable as a zero value.
type NoopLogger struct{}

// Enabled always returns false.
func (NoopLogger) Enabled(Metadata) bool { return false }

// Log discards the record.
func (NoopLogger) Log(Record) {}

// Flush does nothing.
func (NoopLogger) Flush() {}

// Compile-time interface satisfaction check.
var _ Logger = NoopLogger{}
