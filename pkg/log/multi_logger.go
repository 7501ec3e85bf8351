package log

// MultiLogger sends records to multiple loggers.
// Useful when you want both console output (via SlogAdapter)
// and file output (via FileLogger) simultaneously.
type MultiLogger struct {
	loggers []Logger
}

// NewMultiLogger creates a MultiLogger that sends records to all provided loggers.
func NewMultiLogger(loggers ...Logger) *MultiLogger {
	return &MultiLogger{loggers: loggers}
}

// Enabled reports whether any configured logger accepts the metadata.
func (m *MultiLogger) Enabled(metadata Metadata) bool {
	for _, l := range m.loggers {
		if l.Enabled(metadata) {
			return true
		}
	}
	return false
}

// Log sends the record to every configured logger that accepts it.
func (m *MultiLogger) Log(record Record) {
	metadata := record.Metadata()
	for _, l := range m.loggers {
		if l.Enabled(metadata) {
			l.Log(record)
		}
	}
}

// Flush flushes all configured loggers.
func (m *MultiLogger) Flush() {
	for _, l := range m.loggers {
		l.Flush()
	}
}

// Compile-time interface satisfaction check.
var _ Logger = (*MultiLogger)(nil)

// LevelFilter drops records more verbose than a maximum level and defers
// everything else to the wrapped logger.
type LevelFilter struct {
	max  Level
	next Logger
}

// NewLevelFilter wraps next so that only records at or below max reach it.
func NewLevelFilter(max Level, next Logger) *LevelFilter {
	return &LevelFilter{max: max, next: next}
}

// Enabled reports whether the level passes the filter and next accepts it.
func (f *LevelFilter) Enabled(metadata Metadata) bool {
	return metadata.Level.Enabled(f.max) && f.next.Enabled(metadata)
}

// Log forwards the record if it is enabled.
func (f *LevelFilter) Log(record Record) {
	if f.Enabled(record.Metadata()) {
		f.next.Log(record)
	}
}

// Flush flushes the wrapped logger.
func (f *LevelFilter) Flush() {
	f.next.Flush()
}

var _ Logger = (*LevelFilter)(nil)
