package logger

import (
	"log/slog"
	"os"
)

type options struct {
	level   slog.Level
	json    bool
	appName string
}

// Option configures the logger constructor.
type Option func(*options)

// WithDevelopment enables human-readable text output at debug level,
// tagged with the application name.
func WithDevelopment(appName string) Option {
	return func(o *options) {
		o.level = slog.LevelDebug
		o.json = false
		o.appName = appName
	}
}

// WithProduction enables JSON output at info level, tagged with the
// application name.
func WithProduction(appName string) Option {
	return func(o *options) {
		o.level = slog.LevelInfo
		o.json = true
		o.appName = appName
	}
}

// WithLevel overrides the minimum log level.
func WithLevel(level slog.Level) Option {
	return func(o *options) {
		o.level = level
	}
}

// New creates a slog.Logger writing to stdout.
// Defaults to JSON output at info level.
func New(opts ...Option) *slog.Logger {
	o := options{level: slog.LevelInfo, json: true}
	for _, opt := range opts {
		opt(&o)
	}

	handlerOpts := &slog.HandlerOptions{Level: o.level}

	var h slog.Handler
	if o.json {
		h = slog.NewJSONHandler(os.Stdout, handlerOpts)
	} else {
		h = slog.NewTextHandler(os.Stdout, handlerOpts)
	}

	log := slog.New(h)
	if o.appName != "" {
		log = log.With(slog.String("app", o.appName))
	}
	return log
}
