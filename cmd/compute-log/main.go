// Command compute-log emits records through the Datadog decorator and
// inspects the binary log files written by the file sink.
//
// Usage:
//
//	compute-log <command> [flags] [file.clog]
//
// Commands:
//
//	emit     Log stdin lines (or -message) through the Datadog decorator
//	view     View log file in human-readable format
//	filter   Filter log file and write to new file
//	export   Export log file to JSONL or CSV format
//	stats    Show statistics about the log file
//
// Examples:
//
//	# Print lines and ship envelopes as slog JSON on stderr
//	tail -f app.out | compute-log emit -service api -tags env:prod
//
//	# Ship envelopes to a file, configured from YAML
//	compute-log emit -config datadog.yaml -sink file -o app.clog -message "deployed"
//
//	# View only warnings and errors
//	compute-log view -level warn app.clog
//
//	# Keep one target's entries from a point in time onward
//	compute-log filter -target db -time-start 2026-01-28T10:00:00Z -o db.clog app.clog
//
//	# Export to JSONL
//	compute-log export -format jsonl app.clog
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/compute-logger/compute-logger-go/cmd/compute-log/commands"
	"github.com/compute-logger/compute-logger-go/pkg/datadog"
	"github.com/compute-logger/compute-logger-go/pkg/log"
)

const usage = `compute-log - Datadog log decorator and log file tool

Usage:
  compute-log <command> [flags] [file.clog]

Commands:
  emit     Log stdin lines (or -message) through the Datadog decorator
  view     View log file in human-readable format
  filter   Filter log file and write to new file
  export   Export log file to JSONL or CSV format
  stats    Show statistics about the log file

Use "compute-log <command> -help" for more information about a command.
`

func main() {
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(1)
	}

	cmd := os.Args[1]
	args := os.Args[2:]

	switch cmd {
	case "emit":
		runEmit(args)
	case "view":
		runView(args)
	case "filter":
		runFilter(args)
	case "export":
		runExport(args)
	case "stats":
		runStats(args)
	case "-h", "-help", "--help", "help":
		fmt.Print(usage)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", cmd)
		fmt.Fprint(os.Stderr, usage)
		os.Exit(1)
	}
}

func runEmit(args []string) {
	fs := flag.NewFlagSet("emit", flag.ExitOnError)
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `compute-log emit - Log lines through the Datadog decorator

Usage:
  compute-log emit [flags]

Flags:
`)
		fs.PrintDefaults()
	}

	configPath := fs.String("config", "", "YAML file with source, tags, hostname, service")
	source := fs.String("source", "", "ddsource value (overrides config)")
	tags := fs.String("tags", "", "ddtags value (overrides config)")
	hostname := fs.String("hostname", "", "hostname value (overrides config; default: this host)")
	service := fs.String("service", "", "service value (overrides config)")
	sink := fs.String("sink", commands.SinkSlog, "Inner sink (file, slog, zap, zerolog)")
	output := fs.String("o", "", "Output file for the file sink")
	level := fs.String("level", "info", "Level of emitted records")
	maxLevel := fs.String("max-level", "", "Drop records more verbose than this level")
	target := fs.String("target", "compute-log", "Target of emitted records")
	message := fs.String("message", "", "Log this message once instead of reading stdin")
	verbose := fs.Bool("verbose", false, "Report progress on stderr")

	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
	if *verbose {
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}

	cfg := &datadog.Config{}
	if *configPath != "" {
		var err error
		cfg, err = datadog.LoadConfig(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		logger.Debug("loaded config", "path", *configPath)
	}
	if *source != "" {
		cfg.Source = *source
	}
	if *tags != "" {
		cfg.Tags = datadog.Tags(*tags)
	}
	if *hostname != "" {
		cfg.Hostname = *hostname
	}
	if *service != "" {
		cfg.Service = *service
	}
	cfg.ApplyDefaults()

	opts := commands.EmitOptions{
		Datadog: *cfg,
		Sink:    *sink,
		Output:  *output,
		Target:  *target,
		Message: *message,
	}

	var err error
	if opts.Level, err = log.ParseLevel(*level); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if *maxLevel != "" {
		if opts.MaxLevel, err = log.ParseLevel(*maxLevel); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}

	logger.Debug("emitting", "sink", opts.Sink, "service", cfg.Service, "hostname", cfg.Hostname)

	start := time.Now()
	n, err := commands.RunEmit(opts, os.Stdin, os.Stdout, os.Stderr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	logger.Info("emitted records", "count", n, "elapsed", time.Since(start))
}

func runView(args []string) {
	fs := flag.NewFlagSet("view", flag.ExitOnError)
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `compute-log view - View log file in human-readable format

Usage:
  compute-log view [flags] <file.clog>

Flags:
`)
		fs.PrintDefaults()
	}

	level := fs.String("level", "", "Show entries at or above this severity (error, warn, info, debug, trace)")
	target := fs.String("target", "", "Show entries whose target starts with this prefix")
	timeStart := fs.String("time-start", "", "Show entries at or after this time (RFC3339)")
	timeEnd := fs.String("time-end", "", "Show entries before this time (RFC3339)")

	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}

	if fs.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Error: log file path required")
		fs.Usage()
		os.Exit(1)
	}

	path := fs.Arg(0)

	// Build filter
	filter := log.Filter{TargetPrefix: *target}

	if *level != "" {
		l, err := log.ParseLevel(*level)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		filter.MaxLevel = l
	}

	if *timeStart != "" {
		ts, err := time.Parse(time.RFC3339, *timeStart)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: invalid time-start: %v\n", err)
			os.Exit(1)
		}
		filter.TimeStart = &ts
	}

	if *timeEnd != "" {
		ts, err := time.Parse(time.RFC3339, *timeEnd)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: invalid time-end: %v\n", err)
			os.Exit(1)
		}
		filter.TimeEnd = &ts
	}

	if err := commands.RunView(path, filter, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runFilter(args []string) {
	fs := flag.NewFlagSet("filter", flag.ExitOnError)
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `compute-log filter - Filter log file and write to new file

Usage:
  compute-log filter [flags] <file.clog>

Flags:
`)
		fs.PrintDefaults()
	}

	output := fs.String("o", "", "Output file (required)")
	level := fs.String("level", "", "Keep entries at or above this severity (error, warn, info, debug, trace)")
	target := fs.String("target", "", "Keep entries whose target starts with this prefix")
	timeStart := fs.String("time-start", "", "Keep entries at or after this time (RFC3339)")
	timeEnd := fs.String("time-end", "", "Keep entries before this time (RFC3339)")

	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}

	if fs.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Error: log file path required")
		fs.Usage()
		os.Exit(1)
	}

	if *output == "" {
		fmt.Fprintln(os.Stderr, "Error: output file (-o) required")
		fs.Usage()
		os.Exit(1)
	}

	opts := commands.FilterOptions{
		Output:    *output,
		Level:     *level,
		Target:    *target,
		TimeStart: *timeStart,
		TimeEnd:   *timeEnd,
	}

	if err := commands.RunFilter(fs.Arg(0), opts); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runExport(args []string) {
	fs := flag.NewFlagSet("export", flag.ExitOnError)
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `compute-log export - Export log file to JSONL or CSV format

Usage:
  compute-log export [flags] <file.clog>

Flags:
`)
		fs.PrintDefaults()
	}

	format := fs.String("format", "jsonl", "Output format (jsonl, csv)")
	output := fs.String("o", "", "Output file (default: stdout)")

	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}

	if fs.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Error: log file path required")
		fs.Usage()
		os.Exit(1)
	}

	if err := commands.RunExport(fs.Arg(0), *format, *output); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runStats(args []string) {
	fs := flag.NewFlagSet("stats", flag.ExitOnError)
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `compute-log stats - Show statistics about the log file

Usage:
  compute-log stats <file.clog>

`)
	}

	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}

	if fs.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Error: log file path required")
		fs.Usage()
		os.Exit(1)
	}

	if err := commands.RunStats(fs.Arg(0), os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
