package producer

import "errors"

var (
	// ErrSerialize is returned when the event cannot be serialized.
	// The attempt is aborted before reaching the broker client.
	ErrSerialize = errors.New("event serialization failed")

	// ErrPublish wraps a broker-reported failure on the synchronous path.
	ErrPublish = errors.New("event publish failed")

	// ErrNilClient is returned by New when no broker client is provided.
	ErrNilClient = errors.New("broker client is required")

	// ErrMissingTopic is returned by New when the topic name is empty.
	ErrMissingTopic = errors.New("topic name is required")
)
