// Package log provides a concurrency-safe structured logger based on
// [log/slog] for tracing parsers.
//
// The package offers configurable time formatting, caller information,
// and output formats that are applied at logger creation time using
// functional options. A [Logger] never changes after it is made; options
// produce new Loggers.
//
// # Basic Usage
//
//	logger := log.Make(os.Stderr,
//		log.WithLevel(log.LevelTrace),
//		log.WithFormat(log.FormatText),
//		log.WithTimeLayout("none"))
//
//	number := parsec.Trace(parsec.Number[int](), "number", logger)
//
// # Supported Levels
//
// Five levels are defined: [LevelTrace], [LevelDebug], [LevelInfo],
// [LevelWarn], and [LevelError]. Trace sits below Debug and is what
// parsec.Trace writes at; it renders as "TRACE".
//
// # Default Logger
//
// [Default] writes JSON to standard error at [DefaultLevel], so it drops
// trace records until reconfigured with [Config]. parsec.Trace uses it
// when given the zero Logger.
package log
