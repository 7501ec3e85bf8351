package log

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/rs/zerolog"
	"go.uber.org/zap/zapcore"
)

// Level is the severity of a record. Larger values are more verbose.
type Level uint8

const (
	// LevelError designates serious errors.
	LevelError Level = iota + 1
	// LevelWarn designates hazardous situations.
	LevelWarn
	// LevelInfo designates useful information.
	LevelInfo
	// LevelDebug designates lower priority information.
	LevelDebug
	// LevelTrace designates very low priority, often extremely verbose, information.
	LevelTrace
)

// String returns the canonical upper-case level name.
func (l Level) String() string {
	switch l {
	case LevelError:
		return "ERROR"
	case LevelWarn:
		return "WARN"
	case LevelInfo:
		return "INFO"
	case LevelDebug:
		return "DEBUG"
	case LevelTrace:
		return "TRACE"
	default:
		return "UNKNOWN"
	}
}

// Enabled reports whether l is no more verbose than max.
func (l Level) Enabled(max Level) bool {
	return l <= max
}

// MarshalText encodes the level by name.
func (l Level) MarshalText() ([]byte, error) {
	return []byte(l.String()), nil
}

// UnmarshalText decodes a level name as accepted by ParseLevel.
func (l *Level) UnmarshalText(text []byte) error {
	parsed, err := ParseLevel(string(text))
	if err != nil {
		return err
	}
	*l = parsed
	return nil
}

// ParseLevel parses a level name, ignoring case.
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "error":
		return LevelError, nil
	case "warn", "warning":
		return LevelWarn, nil
	case "info":
		return LevelInfo, nil
	case "debug":
		return LevelDebug, nil
	case "trace":
		return LevelTrace, nil
	default:
		return 0, fmt.Errorf("unknown level %q (use error, warn, info, debug, trace)", s)
	}
}

// SlogLevel maps l onto the slog scale. Trace sits four steps below Debug.
func (l Level) SlogLevel() slog.Level {
	switch l {
	case LevelError:
		return slog.LevelError
	case LevelWarn:
		return slog.LevelWarn
	case LevelInfo:
		return slog.LevelInfo
	case LevelDebug:
		return slog.LevelDebug
	default:
		return slog.LevelDebug - 4
	}
}

// LevelFromSlog maps an slog level onto the nearest Level at or below it
// in severity.
func LevelFromSlog(l slog.Level) Level {
	switch {
	case l >= slog.LevelError:
		return LevelError
	case l >= slog.LevelWarn:
		return LevelWarn
	case l >= slog.LevelInfo:
		return LevelInfo
	case l >= slog.LevelDebug:
		return LevelDebug
	default:
		return LevelTrace
	}
}

// ZapLevel maps l onto zap. zap has no trace level, so Trace becomes Debug.
func (l Level) ZapLevel() zapcore.Level {
	switch l {
	case LevelError:
		return zapcore.ErrorLevel
	case LevelWarn:
		return zapcore.WarnLevel
	case LevelInfo:
		return zapcore.InfoLevel
	default:
		return zapcore.DebugLevel
	}
}

// ZerologLevel maps l onto zerolog.
func (l Level) ZerologLevel() zerolog.Level {
	switch l {
	case LevelError:
		return zerolog.ErrorLevel
	case LevelWarn:
		return zerolog.WarnLevel
	case LevelInfo:
		return zerolog.InfoLevel
	case LevelDebug:
		return zerolog.DebugLevel
	default:
		return zerolog.TraceLevel
	}
}
