package log

import (
	"context"
	"log/slog"
	"path/filepath"
	"runtime"
	"strings"
)

// Handler is an slog.Handler that feeds a Logger. It lets code written
// against slog log through any sink, including decorators.
//
// Attributes are rendered into the message as key=value pairs, since a
// Record carries text only.
type Handler struct {
	logger Logger
	target string
	prefix string // group prefix, "a.b." form
	attrs  string // pre-rendered attrs from WithAttrs
}

// NewHandler returns a Handler that sends records for target to logger.
func NewHandler(logger Logger, target string) *Handler {
	return &Handler{logger: logger, target: target}
}

// Enabled asks the sink with the handler's target.
func (h *Handler) Enabled(_ context.Context, level slog.Level) bool {
	return h.logger.Enabled(Metadata{Level: LevelFromSlog(level), Target: h.target})
}

// Handle converts r into a Record and logs it.
func (h *Handler) Handle(_ context.Context, r slog.Record) error {
	var sb strings.Builder
	sb.WriteString(r.Message)
	sb.WriteString(h.attrs)
	r.Attrs(func(a slog.Attr) bool {
		appendAttr(&sb, h.prefix, a)
		return true
	})

	record := Record{
		Level:  LevelFromSlog(r.Level),
		Target: h.target,
		Format: sb.String(),
	}
	if r.PC != 0 {
		frames := runtime.CallersFrames([]uintptr{r.PC})
		frame, _ := frames.Next()
		record.File = filepath.Base(frame.File)
		record.Line = uint32(frame.Line)
		record.ModulePath = packagePath(frame.Function)
	}

	h.logger.Log(record)
	return nil
}

// WithAttrs returns a handler that renders attrs on every record.
func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	if len(attrs) == 0 {
		return h
	}
	var sb strings.Builder
	sb.WriteString(h.attrs)
	for _, a := range attrs {
		appendAttr(&sb, h.prefix, a)
	}
	h2 := *h
	h2.attrs = sb.String()
	return &h2
}

// WithGroup returns a handler that qualifies later attribute keys with name.
func (h *Handler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	h2 := *h
	h2.prefix = h.prefix + name + "."
	return &h2
}

func appendAttr(sb *strings.Builder, prefix string, a slog.Attr) {
	a.Value = a.Value.Resolve()
	if a.Equal(slog.Attr{}) {
		return
	}
	if a.Value.Kind() == slog.KindGroup {
		groupPrefix := prefix
		if a.Key != "" {
			groupPrefix += a.Key + "."
		}
		for _, ga := range a.Value.Group() {
			appendAttr(sb, groupPrefix, ga)
		}
		return
	}
	sb.WriteByte(' ')
	sb.WriteString(prefix)
	sb.WriteString(a.Key)
	sb.WriteByte('=')
	sb.WriteString(a.Value.String())
}

// packagePath strips the function name from a fully qualified runtime
// function such as "github.com/x/y/pkg.(*T).Method". The linker escapes
// dots in the last path element as %2e; unescaped "name.vN." elements are
// also kept whole.
func packagePath(function string) string {
	slash := strings.LastIndexByte(function, '/')
	rest := function[slash+1:]

	end := 0
	for {
		dot := strings.IndexByte(rest[end:], '.')
		if dot < 0 {
			return strings.ReplaceAll(function, "%2e", ".")
		}
		end += dot
		if !isMajorVersion(rest[end+1:]) {
			break
		}
		end++
	}
	return strings.ReplaceAll(function[:slash+1+end], "%2e", ".")
}

// isMajorVersion reports whether s starts with a "vN." path element.
func isMajorVersion(s string) bool {
	if len(s) < 3 || s[0] != 'v' {
		return false
	}
	i := 1
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	return i > 1 && i < len(s) && s[i] == '.'
}

var _ slog.Handler = (*Handler)(nil)
