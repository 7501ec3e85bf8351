package log

import "fmt"

// Metadata is the level and target pair used to decide whether a sink
// accepts a record without building the record first.
type Metadata struct {
	Level  Level
	Target string
}

// Record is one log event. Sinks treat records as read-only; a sink that
// needs a different record builds a new one.
type Record struct {
	// Level is the record severity.
	Level Level

	// Target names the component or category that produced the record.
	Target string

	// Format and Args make up the lazily formatted message.
	// With no Args, Format is the message verbatim.
	Format string
	Args   []any

	// File is the source file name (empty if unknown).
	File string

	// Line is the source line (0 if unknown).
	Line uint32

	// ModulePath is the package or module path (empty if unknown).
	ModulePath string
}

// Metadata returns the record's level and target.
func (r Record) Metadata() Metadata {
	return Metadata{Level: r.Level, Target: r.Target}
}

// Message renders the formatted message payload.
func (r Record) Message() string {
	if len(r.Args) == 0 {
		return r.Format
	}
	return fmt.Sprintf(r.Format, r.Args...)
}
