// Package logger builds slog loggers and provides attribute helpers with
// consistent key names.
//
// New creates a *slog.Logger configured by Option functions: output format
// (json or text), minimum level, destination writer and static attributes.
//
//	log := logger.New(
//	    logger.WithLevel(slog.LevelDebug),
//	    logger.WithTextFormatter(),
//	    logger.WithOutput(os.Stderr),
//	)
//	log.Debug("rule failed", logger.Field("email"), logger.Rule("email"))
//
// Helpers Error and Errors return an empty attribute for nil errors, so they
// can be passed unconditionally.
package logger
