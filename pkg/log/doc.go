// Package log defines the logging sink capability shared by compute-logger.
//
// A sink is anything implementing Logger: it reports whether it would
// accept a record for a given Metadata, accepts Records, and flushes.
// Sinks compose by wrapping, so a decorator can sit in front of any other
// sink without the caller knowing.
//
// # Basic Usage
//
// Applications pick an inner sink for shipping and install a decorator in
// front of it:
//
//	// Ship through slog as JSON on stderr
//	inner := log.NewSlogAdapter(slog.New(slog.NewJSONHandler(os.Stderr, nil)))
//
//	// Or append to a binary file
//	inner, _ := log.NewFileLogger("/var/log/compute/app.clog")
//
//	// Both: use MultiLogger
//	inner := log.NewMultiLogger(
//	    log.NewSlogAdapter(slog.Default()),
//	    fileLogger,
//	)
//
// The standard library front end can feed any sink through Handler:
//
//	slog.SetDefault(slog.New(log.NewHandler(sink, "app")))
//
// # File Format
//
// FileLogger writes CBOR-encoded Entry values, one after another. Reader
// streams them back; the compute-log CLI views, exports and summarizes them.
package log
