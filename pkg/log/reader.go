package log

import (
	"errors"
	"io"
	"os"
	"strings"
	"time"

	"github.com/fxamacker/cbor/v2"
)

// Filter specifies criteria for filtering log entries.
// Zero/nil fields match all entries for that criterion.
type Filter struct {
	// MaxLevel drops entries more verbose than this level.
	MaxLevel Level

	// TargetPrefix keeps entries whose target starts with this prefix.
	TargetPrefix string

	// TimeStart filters entries at or after this time.
	TimeStart *time.Time

	// TimeEnd filters entries before this time.
	TimeEnd *time.Time
}

// matches returns true if the entry matches all filter criteria.
func (f *Filter) matches(entry Entry) bool {
	if f.MaxLevel != 0 && !entry.Level.Enabled(f.MaxLevel) {
		return false
	}
	if f.TargetPrefix != "" && !strings.HasPrefix(entry.Target, f.TargetPrefix) {
		return false
	}
	if f.TimeStart != nil && entry.Timestamp.Before(*f.TimeStart) {
		return false
	}
	if f.TimeEnd != nil && !entry.Timestamp.Before(*f.TimeEnd) {
		return false
	}
	return true
}

// Reader reads log entries from a CBOR-encoded file.
// It provides an iterator interface for streaming large files.
type Reader struct {
	file    *os.File
	decoder *cbor.Decoder
	filter  Filter
}

// NewReader creates a Reader that reads all entries from the specified log file.
func NewReader(path string) (*Reader, error) {
	return NewFilteredReader(path, Filter{})
}

// NewFilteredReader creates a Reader that reads entries matching the filter.
func NewFilteredReader(path string, filter Filter) (*Reader, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	return &Reader{
		file:    f,
		decoder: NewDecoder(f),
		filter:  filter,
	}, nil
}

// Next returns the next entry that matches the filter.
// Returns io.EOF when no more entries are available.
func (r *Reader) Next() (Entry, error) {
	for {
		var entry Entry
		if err := r.decoder.Decode(&entry); err != nil {
			if errors.Is(err, io.EOF) {
				return Entry{}, io.EOF
			}
			return Entry{}, err
		}

		if r.filter.matches(entry) {
			return entry, nil
		}
	}
}

// Close closes the underlying file.
func (r *Reader) Close() error {
	return r.file.Close()
}
