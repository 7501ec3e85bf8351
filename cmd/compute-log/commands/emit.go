// Package commands implements the compute-log CLI commands.
package commands

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"

	"github.com/rs/zerolog"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/compute-logger/compute-logger-go/pkg/datadog"
	"github.com/compute-logger/compute-logger-go/pkg/log"
)

// Sink names accepted by the emit command.
const (
	SinkFile    = "file"
	SinkSlog    = "slog"
	SinkZap     = "zap"
	SinkZerolog = "zerolog"
)

// EmitOptions configures the emit command.
type EmitOptions struct {
	// Datadog holds the envelope tags.
	Datadog datadog.Config

	// Sink selects the inner logger the envelopes are shipped to.
	Sink string

	// Output is the file path for the file sink.
	Output string

	// Level is the level every emitted record is logged at.
	Level log.Level

	// MaxLevel drops records more verbose than this (0 = no limit).
	MaxLevel log.Level

	// Target is the record target.
	Target string

	// Message, when set, is logged once instead of reading input lines.
	Message string
}

// RunEmit logs each input line through the Datadog decorator. Human lines
// go to stdout; shipped envelopes go to the selected sink, which writes to
// stderr unless it is the file sink. It returns the number of records the
// sink accepted.
func RunEmit(opts EmitOptions, in io.Reader, stdout, stderr io.Writer) (int, error) {
	inner, closeInner, err := newSink(opts, stderr)
	if err != nil {
		return 0, err
	}
	defer closeInner()

	if opts.MaxLevel != 0 {
		inner = log.NewLevelFilter(opts.MaxLevel, inner)
	}

	dd := opts.Datadog.New(inner, datadog.WithOutput(stdout))
	defer dd.Flush()

	count := 0
	emit := func(msg string) {
		record := log.Record{
			Level:      opts.Level,
			Target:     opts.Target,
			Format:     msg,
			ModulePath: "compute-log",
		}
		if !dd.Enabled(record.Metadata()) {
			return
		}
		dd.Log(record)
		count++
	}

	if opts.Message != "" {
		emit(opts.Message)
		return count, nil
	}

	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}
		emit(line)
	}
	if err := scanner.Err(); err != nil {
		return count, fmt.Errorf("failed to read input: %w", err)
	}
	return count, nil
}

func newSink(opts EmitOptions, stderr io.Writer) (log.Logger, func(), error) {
	noop := func() {}

	switch opts.Sink {
	case SinkFile:
		if opts.Output == "" {
			return nil, nil, fmt.Errorf("file sink requires an output path")
		}
		fl, err := log.NewFileLogger(opts.Output)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open output file: %w", err)
		}
		return fl, func() { _ = fl.Close() }, nil

	case SinkSlog, "":
		handler := slog.NewJSONHandler(stderr, &slog.HandlerOptions{Level: log.LevelTrace.SlogLevel()})
		return log.NewSlogAdapter(slog.New(handler)), noop, nil

	case SinkZap:
		core := zapcore.NewCore(
			zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()),
			zapcore.AddSync(stderr),
			zapcore.DebugLevel,
		)
		return log.NewZapAdapter(zap.New(core)), noop, nil

	case SinkZerolog:
		zl := zerolog.New(stderr).Level(zerolog.TraceLevel).With().Timestamp().Logger()
		return log.NewZerologAdapter(zl), noop, nil

	default:
		return nil, nil, fmt.Errorf("unknown sink: %s (supported: file, slog, zap, zerolog)", opts.Sink)
	}
}
