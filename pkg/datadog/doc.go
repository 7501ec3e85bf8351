// Package datadog provides a log.Logger decorator that prepares records
// for Datadog log intake.
//
// Every record the wrapped sink accepts is emitted twice: as a
// human-readable line on standard output, and as a JSON envelope carrying
// the Datadog reserved attributes (ddsource, ddtags, hostname, service)
// forwarded to the wrapped sink for shipping:
//
//	2024-03-01T12:00:00.123Z DEBUG Some args
//
//	{"ddsource":"go","ddtags":"env:prod","hostname":"web-1","message":"2024-03-01T12:00:00.123Z DEBUG Some args","service":"api"}
//
// The decorator applies no filtering of its own. Enablement and flushing
// pass straight through to the wrapped sink, and nothing is buffered.
//
//	dd := datadog.New("go", "env:prod", hostname, "api", inner)
//	slog.SetDefault(slog.New(log.NewHandler(dd, "api")))
package datadog
