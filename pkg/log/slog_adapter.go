package log

import (
	"context"
	"log/slog"
)

// SlogAdapter ships records through an slog.Logger.
// Useful when the downstream pipeline already consumes slog output.
type SlogAdapter struct {
	logger *slog.Logger
}

// NewSlogAdapter creates a new SlogAdapter that writes to the given slog.Logger.
func NewSlogAdapter(logger *slog.Logger) *SlogAdapter {
	return &SlogAdapter{logger: logger}
}

// Enabled asks the slog handler whether it accepts the level.
func (a *SlogAdapter) Enabled(metadata Metadata) bool {
	return a.logger.Enabled(context.Background(), metadata.Level.SlogLevel())
}

// Log writes the record at the matching slog level.
func (a *SlogAdapter) Log(record Record) {
	attrs := make([]slog.Attr, 0, 4)
	if record.Target != "" {
		attrs = append(attrs, slog.String("target", record.Target))
	}

	// Add optional source location
	if record.File != "" {
		attrs = append(attrs, slog.String("file", record.File))
	}
	if record.Line != 0 {
		attrs = append(attrs, slog.Uint64("line", uint64(record.Line)))
	}
	if record.ModulePath != "" {
		attrs = append(attrs, slog.String("module_path", record.ModulePath))
	}

	a.logger.LogAttrs(context.Background(), record.Level.SlogLevel(), record.Message(), attrs...)
}

// Flush does nothing; slog handlers write synchronously.
func (a *SlogAdapter) Flush() {}

// Compile-time interface satisfaction check.
var _ Logger = (*SlogAdapter)(nil)
