// Package log provides a concurrency-safe structured logging facade over
// log/slog for the citet tool and its packages.
//
// A [Logger] wraps a slog.Logger with a mutable configuration: minimum
// [Level] (including Trace, below slog's Debug), output [Format] (json
// or text), timestamp layout, caller info, and colorized pretty
// printing. Configuration is applied through functional options:
//
//	logger := log.Make(os.Stderr,
//		log.WithLevel(log.LevelDebug),
//		log.WithFormat(log.FormatText),
//	)
//
// The package also maintains a process-wide default logger used by the
// package-level functions. The CLI configures it from --log-* flags via
// [Config] before commands run.
package log
