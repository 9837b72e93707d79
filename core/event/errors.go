package event

import "errors"

var (
	// ErrMissingEventID is returned when an update submission carries no identity.
	ErrMissingEventID = errors.New("library event id is required")

	// ErrUnsupportedEventType is returned when an update submission carries a
	// type tag other than UPDATE.
	ErrUnsupportedEventType = errors.New("only UPDATE event type is supported")

	// ErrInvalidEvent is returned when the event payload fails field validation.
	// The wrapped message lists the offending fields.
	ErrInvalidEvent = errors.New("invalid library event")
)
