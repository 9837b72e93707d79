// Package event defines the library event domain model: the event value type
// with its type tag and nested book data, precondition validation for the
// update path, and canonical JSON (de)serialization used by the producer.
//
// Events are immutable value types. They are constructed by the ingress layer
// from the request payload, read by validation and dispatch, and discarded
// once the publish attempt completes.
//
// Basic usage:
//
//	ev := event.LibraryEvent{
//		Type: event.TypeNew,
//		Book: event.Book{ID: 456, Name: "Kafka Using Spring Boot", Author: "Dilip"},
//	}
//
//	data, err := event.Marshal(ev)
//	if err != nil {
//		// handle serialization failure
//	}
//
// Update submissions must carry an identity and the UPDATE type tag:
//
//	if err := ev.ValidateForUpdate(); err != nil {
//		// ErrMissingEventID or ErrUnsupportedEventType
//	}
package event
