package commands

import (
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/compute-logger/compute-logger-go/pkg/log"
)

// Stats holds aggregate statistics about a log file.
type Stats struct {
	TotalEntries    int
	EntriesByLevel  map[log.Level]int
	EntriesByTarget map[string]int
	TimeRange       struct {
		Start time.Time
		End   time.Time
	}
}

// CollectStats reads the whole log file and aggregates it.
func CollectStats(path string) (*Stats, error) {
	reader, err := log.NewReader(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	defer reader.Close()

	stats := &Stats{
		EntriesByLevel:  make(map[log.Level]int),
		EntriesByTarget: make(map[string]int),
	}

	for {
		entry, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read entry: %w", err)
		}

		stats.TotalEntries++
		stats.EntriesByLevel[entry.Level]++
		stats.EntriesByTarget[entry.Target]++

		// Track time range
		if stats.TimeRange.Start.IsZero() || entry.Timestamp.Before(stats.TimeRange.Start) {
			stats.TimeRange.Start = entry.Timestamp
		}
		if entry.Timestamp.After(stats.TimeRange.End) {
			stats.TimeRange.End = entry.Timestamp
		}
	}

	return stats, nil
}

// RunStats analyzes the log file and prints statistics.
func RunStats(path string, w io.Writer) error {
	stats, err := CollectStats(path)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "Entries: %d\n", stats.TotalEntries)
	if stats.TotalEntries == 0 {
		return nil
	}

	fmt.Fprintf(w, "Time range: %s - %s (%s)\n",
		stats.TimeRange.Start.UTC().Format(time.RFC3339),
		stats.TimeRange.End.UTC().Format(time.RFC3339),
		stats.TimeRange.End.Sub(stats.TimeRange.Start).Round(time.Millisecond))

	fmt.Fprintln(w, "\nBy level:")
	for _, l := range []log.Level{log.LevelError, log.LevelWarn, log.LevelInfo, log.LevelDebug, log.LevelTrace} {
		if n := stats.EntriesByLevel[l]; n > 0 {
			fmt.Fprintf(w, "  %-5s %d\n", l.String(), n)
		}
	}

	fmt.Fprintln(w, "\nBy target:")
	targets := make([]string, 0, len(stats.EntriesByTarget))
	for t := range stats.EntriesByTarget {
		targets = append(targets, t)
	}
	sort.Strings(targets)
	for _, t := range targets {
		name := t
		if name == "" {
			name = "(none)"
		}
		fmt.Fprintf(w, "  %s %d\n", name, stats.EntriesByTarget[t])
	}

	return nil
}
