// Package logger builds *slog.Logger instances for fieldcheck services and
// provides the attribute helpers used across the module.
//
// New applies functional options (format, level, output, static attributes,
// context extractors) and wraps the resulting handler with a decorator that
// pulls request-scoped values out of context.Context on every record.
//
//	log := logger.New(
//	    logger.WithEnvironment("development", "fieldcheck"),
//	    logger.WithContextValue("request_id", middleware.RequestIDKey),
//	)
//	log.WarnContext(ctx, "unknown pattern", logger.Rule("match"), logger.Pattern("zip"))
//
// Library code that accepts an optional logger falls back to Nop, which
// discards everything.
package logger
