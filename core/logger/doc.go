// Package logger provides the slog constructor used at process startup and
// typed attribute helpers for consistent log keys across the service.
//
// Attribute helpers use the empty Attr pattern for nil safety, so calls like
// log.Error("msg", logger.Error(err)) need no explicit nil checks.
//
//	log := logger.New(logger.WithDevelopment("library-events-producer"))
//	log.Info("starting", logger.Component("server"))
package logger
