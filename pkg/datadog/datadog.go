package datadog

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/compute-logger/compute-logger-go/pkg/log"
)

// TimestampLayout renders the line timestamp: RFC 3339 in UTC with
// millisecond precision and a Z designator.
const TimestampLayout = "2006-01-02T15:04:05.000Z07:00"

// Log decorates a log.Logger. It prints each accepted record to standard
// output and forwards a Datadog envelope of it to the wrapped logger.
//
// Log holds no mutable state and is safe for concurrent use as long as the
// wrapped logger and the output writer are.
type Log struct {
	source   string
	tags     string
	hostname string
	service  string
	nested   log.Logger

	out io.Writer
	now func() time.Time
}

// Option configures a Log.
type Option func(*Log)

// WithOutput sets where the human-readable lines are written.
// Defaults to os.Stdout.
func WithOutput(w io.Writer) Option {
	return func(l *Log) {
		l.out = w
	}
}

// WithClock sets the time source for line timestamps.
// Defaults to time.Now.
func WithClock(now func() time.Time) Option {
	return func(l *Log) {
		l.now = now
	}
}

// New creates a Log that tags every envelope with source, tags, hostname
// and service, and forwards to nested. Tag values are used verbatim;
// empty strings are allowed.
func New(source, tags, hostname, service string, nested log.Logger, opts ...Option) *Log {
	l := &Log{
		source:   source,
		tags:     tags,
		hostname: hostname,
		service:  service,
		nested:   nested,
		out:      os.Stdout,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Enabled defers to the wrapped logger.
func (l *Log) Enabled(metadata log.Metadata) bool {
	return l.nested.Enabled(metadata)
}

// Log prints the record and forwards its envelope. Records the wrapped
// logger does not accept produce no output at all.
func (l *Log) Log(record log.Record) {
	if !l.Enabled(record.Metadata()) {
		return
	}

	line := l.now().UTC().Format(TimestampLayout) + " " + record.Level.String() + " " + record.Message()

	// Best effort; a broken stdout must not stop shipping.
	_, _ = fmt.Fprintln(l.out, line)

	payload, err := l.envelope(line).Marshal()
	if err != nil {
		// Only strings are encoded, so this cannot happen.
		panic(fmt.Sprintf("datadog: encode envelope: %v", err))
	}

	l.nested.Log(log.Record{
		Level:      record.Level,
		Target:     record.Target,
		Format:     string(payload),
		File:       record.File,
		Line:       record.Line,
		ModulePath: record.ModulePath,
	})
}

// Flush flushes the wrapped logger.
func (l *Log) Flush() {
	l.nested.Flush()
}

func (l *Log) envelope(message string) Envelope {
	return Envelope{
		Source:   l.source,
		Tags:     l.tags,
		Hostname: l.hostname,
		Message:  message,
		Service:  l.service,
	}
}

// Compile-time interface satisfaction check.
var _ log.Logger = (*Log)(nil)
