package producer

import "log/slog"

// Option configures a Producer.
type Option func(*Producer)

// WithLogger sets the logger used by the completion handlers.
// If not set, slog.Default() is used.
func WithLogger(log *slog.Logger) Option {
	return func(p *Producer) {
		if log != nil {
			p.log = log
		}
	}
}

// WithMarshaler overrides the event serialization function.
// The default is event.Marshal.
func WithMarshaler(m Marshaler) Option {
	return func(p *Producer) {
		if m != nil {
			p.marshal = m
		}
	}
}
