package log

import (
	"go.uber.org/zap"
)

// ZapAdapter ships records through a zap.Logger.
type ZapAdapter struct {
	logger *zap.Logger
}

// NewZapAdapter creates a ZapAdapter writing to logger.
func NewZapAdapter(logger *zap.Logger) *ZapAdapter {
	return &ZapAdapter{logger: logger}
}

// Enabled asks the zap core whether the level is enabled.
func (a *ZapAdapter) Enabled(metadata Metadata) bool {
	return a.logger.Core().Enabled(metadata.Level.ZapLevel())
}

// Log writes the record with its location as structured fields.
func (a *ZapAdapter) Log(record Record) {
	ce := a.logger.Check(record.Level.ZapLevel(), record.Message())
	if ce == nil {
		return
	}

	fields := make([]zap.Field, 0, 4)
	if record.Target != "" {
		fields = append(fields, zap.String("target", record.Target))
	}
	if record.File != "" {
		fields = append(fields, zap.String("file", record.File))
	}
	if record.Line != 0 {
		fields = append(fields, zap.Uint32("line", record.Line))
	}
	if record.ModulePath != "" {
		fields = append(fields, zap.String("module_path", record.ModulePath))
	}
	ce.Write(fields...)
}

// Flush syncs the zap logger. Sync errors on terminals (EINVAL on stderr)
// are common and ignored.
func (a *ZapAdapter) Flush() {
	_ = a.logger.Sync()
}

var _ Logger = (*ZapAdapter)(nil)
