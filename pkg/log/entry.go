package log

import "time"

// Entry is a record as persisted by FileLogger: the record fields with
// the message rendered, plus the time it was written.
// CBOR encoding uses integer keys for compactness.
type Entry struct {
	// Timestamp when the entry was written (nanosecond precision).
	Timestamp time.Time `cbor:"1,keyasint" json:"timestamp"`

	// Level is the record severity.
	Level Level `cbor:"2,keyasint" json:"level"`

	// Target is the record target.
	Target string `cbor:"3,keyasint,omitempty" json:"target,omitempty"`

	// Message is the rendered message.
	Message string `cbor:"4,keyasint" json:"message"`

	// Source location, each optional.
	File       string `cbor:"5,keyasint,omitempty" json:"file,omitempty"`
	Line       uint32 `cbor:"6,keyasint,omitempty" json:"line,omitempty"`
	ModulePath string `cbor:"7,keyasint,omitempty" json:"module_path,omitempty"`
}

// NewEntry renders record into an Entry stamped with ts.
func NewEntry(ts time.Time, record Record) Entry {
	return Entry{
		Timestamp:  ts,
		Level:      record.Level,
		Target:     record.Target,
		Message:    record.Message(),
		File:       record.File,
		Line:       record.Line,
		ModulePath: record.ModulePath,
	}
}

// Record rebuilds a Record from the entry. The message becomes the
// record's verbatim Format.
func (e Entry) Record() Record {
	return Record{
		Level:      e.Level,
		Target:     e.Target,
		Format:     e.Message,
		File:       e.File,
		Line:       e.Line,
		ModulePath: e.ModulePath,
	}
}
