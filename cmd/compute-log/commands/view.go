package commands

import (
	"fmt"
	"io"

	"github.com/compute-logger/compute-logger-go/pkg/datadog"
	"github.com/compute-logger/compute-logger-go/pkg/log"
)

// RunView writes a human-readable listing of the log file to w.
func RunView(path string, filter log.Filter, w io.Writer) error {
	reader, err := log.NewFilteredReader(path, filter)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer reader.Close()

	for {
		entry, err := reader.Next()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to read entry: %w", err)
		}
		formatEntry(w, entry)
	}
}

// formatEntry writes a human-readable representation of the entry to w.
func formatEntry(w io.Writer, entry log.Entry) {
	// Header line: timestamp LEVEL [target] file:line
	ts := entry.Timestamp.UTC().Format("2006-01-02T15:04:05.000000Z")
	fmt.Fprintf(w, "%s %-5s", ts, entry.Level.String())
	if entry.Target != "" {
		fmt.Fprintf(w, " [%s]", entry.Target)
	}
	if loc := location(entry); loc != "" {
		fmt.Fprintf(w, " %s", loc)
	}
	fmt.Fprintln(w)

	// Shipped envelopes get their tags broken out
	if env, err := datadog.ParseEnvelope([]byte(entry.Message)); err == nil && env.Message != "" {
		fmt.Fprintf(w, "  Message: %s\n", env.Message)
		fmt.Fprintf(w, "  Source: %s  Service: %s  Host: %s\n", env.Source, env.Service, env.Hostname)
		if env.Tags != "" {
			fmt.Fprintf(w, "  Tags: %s\n", env.Tags)
		}
	} else {
		fmt.Fprintf(w, "  Message: %s\n", entry.Message)
	}

	fmt.Fprintln(w) // Blank line between entries
}

// location renders file:line, module, or both.
func location(entry log.Entry) string {
	loc := entry.File
	if loc != "" && entry.Line != 0 {
		loc = fmt.Sprintf("%s:%d", loc, entry.Line)
	}
	if entry.ModulePath != "" {
		if loc == "" {
			return entry.ModulePath
		}
		return fmt.Sprintf("%s (%s)", loc, entry.ModulePath)
	}
	return loc
}
