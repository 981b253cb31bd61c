// Package logging provides structured logging for searchbox.
//
// This package wraps Go's log/slog to provide JSON-formatted logs with
// persistent context attributes. The terminal UI owns stdout and stderr while
// it runs, so the CLI normally points the logger at a file.
//
// # Thread Safety
//
// All types in this package are safe for concurrent use. Child loggers
// created via With* methods share the underlying writer safely.
//
// # Basic Usage
//
//	logger, err := logging.NewLogger("/path/to/logs", "INFO")
//	if err != nil {
//	    return err
//	}
//	defer logger.Close()
//
//	logger.Info("fetch applied", "results", 3)
//
// # Context Propagation
//
//	ctrlLogger := logger.WithComponent("controller")
//	ctrlLogger.WithTerm("an").Debug("stale response discarded", "generation", 4)
//
// Output:
//
//	{"time":"...","level":"DEBUG","msg":"stale response discarded","component":"controller","term":"an","generation":4}
//
// # Errors
//
// [Logger.Report] logs an error at the level its severity calls for, so a
// canceled lookup lands at DEBUG while a recovered panic lands at ERROR:
//
//	ctrlLogger.WithTerm("an").Report(fetchErr, "lookup failed", "generation", 4)
//
// # Testing
//
// Use [NopLogger] to discard output, or [NewWriterLogger] with a buffer to
// assert on entries.
//
// # Configuration
//
//	logging:
//	  enabled: true
//	  level: info
//	  dir: ~/.config/searchbox/logs
package logging
