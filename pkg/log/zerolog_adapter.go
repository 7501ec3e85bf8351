package log

import (
	"github.com/rs/zerolog"
)

// ZerologAdapter ships records through a zerolog.Logger.
type ZerologAdapter struct {
	logger zerolog.Logger
}

// NewZerologAdapter creates a ZerologAdapter writing to logger.
func NewZerologAdapter(logger zerolog.Logger) *ZerologAdapter {
	return &ZerologAdapter{logger: logger}
}

// Enabled honours both the logger's level and the zerolog global level.
func (a *ZerologAdapter) Enabled(metadata Metadata) bool {
	lvl := metadata.Level.ZerologLevel()
	return lvl >= a.logger.GetLevel() && lvl >= zerolog.GlobalLevel()
}

// Log writes the record with its location as structured fields.
func (a *ZerologAdapter) Log(record Record) {
	e := a.logger.WithLevel(record.Level.ZerologLevel())
	if e == nil {
		return
	}
	if record.Target != "" {
		e = e.Str("target", record.Target)
	}
	if record.File != "" {
		e = e.Str("file", record.File)
	}
	if record.Line != 0 {
		e = e.Uint32("line", record.Line)
	}
	if record.ModulePath != "" {
		e = e.Str("module_path", record.ModulePath)
	}
	e.Msg(record.Message())
}

// Flush does nothing; zerolog writes each event as it is sent.
func (a *ZerologAdapter) Flush() {}

var _ Logger = (*ZerologAdapter)(nil)
