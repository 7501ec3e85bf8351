package commands

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/compute-logger/compute-logger-go/pkg/log"
)

// FilterOptions specifies filtering criteria for the filter command.
type FilterOptions struct {
	Output    string
	Level     string
	Target    string
	TimeStart string
	TimeEnd   string
}

// RunFilter copies the entries of the log file that match opts into a new
// file. Entries keep their original timestamps.
func RunFilter(path string, opts FilterOptions) error {
	if opts.Output == "" {
		return fmt.Errorf("output file required")
	}

	filter := log.Filter{TargetPrefix: opts.Target}

	if opts.Level != "" {
		l, err := log.ParseLevel(opts.Level)
		if err != nil {
			return err
		}
		filter.MaxLevel = l
	}

	if opts.TimeStart != "" {
		t, err := time.Parse(time.RFC3339, opts.TimeStart)
		if err != nil {
			return fmt.Errorf("invalid time-start format: %w", err)
		}
		filter.TimeStart = &t
	}

	if opts.TimeEnd != "" {
		t, err := time.Parse(time.RFC3339, opts.TimeEnd)
		if err != nil {
			return fmt.Errorf("invalid time-end format: %w", err)
		}
		filter.TimeEnd = &t
	}

	// Open input
	reader, err := log.NewFilteredReader(path, filter)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer reader.Close()

	out, err := os.Create(opts.Output)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer out.Close()

	enc := log.NewEncoder(out)
	count := 0
	for {
		entry, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("failed to read entry: %w", err)
		}

		if err := enc.Encode(entry); err != nil {
			return fmt.Errorf("failed to write entry: %w", err)
		}
		count++
	}

	if err := out.Sync(); err != nil {
		return fmt.Errorf("failed to sync output file: %w", err)
	}

	fmt.Printf("Filtered %d entries to %s\n", count, opts.Output)
	return nil
}
