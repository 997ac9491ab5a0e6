// Package logger builds *slog.Logger values for fieldcheck from functional
// options and provides attribute helpers so keys stay consistent.
//
//	log := logger.New(
//	    logger.WithFormat(logger.FormatJSON),
//	    logger.WithLevel(slog.LevelDebug),
//	    logger.WithContextValue("run_id", runIDKey),
//	)
//	log.DebugContext(ctx, "rule skipped", logger.Field("email"), logger.Rule("uuid"))
//
// ParseFormat and ParseLevel turn configuration strings into option values.
package logger
