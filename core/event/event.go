package event

import (
	jsoniter "github.com/json-iterator/go"
)

// json is configured for byte-for-byte compatibility with encoding/json so
// payloads round-trip losslessly between producer and consumers.
var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Type tags a library event as a creation or a mutation of an existing record.
type Type string

const (
	// TypeNew marks a newly created library event.
	TypeNew Type = "NEW"

	// TypeUpdate marks an update to an existing library event.
	TypeUpdate Type = "UPDATE"
)

// Valid reports whether the type tag is one of the known values.
func (t Type) Valid() bool {
	return t == TypeNew || t == TypeUpdate
}

// Book carries the book attributes of a library event.
// The attributes are opaque to the dispatch layer.
type Book struct {
	ID     int    `json:"bookId"`
	Name   string `json:"bookName"`
	Author string `json:"bookAuthor"`
}

// LibraryEvent is a single library event submission.
// ID is nil on create and required on update.
type LibraryEvent struct {
	ID   *int `json:"eventId"`
	Type Type `json:"eventType"`
	Book Book `json:"book"`
}

// Marshal serializes the event to its canonical JSON form.
func Marshal(e LibraryEvent) ([]byte, error) {
	return json.Marshal(e)
}

// Unmarshal parses the canonical JSON form back into an event.
func Unmarshal(data []byte) (LibraryEvent, error) {
	var e LibraryEvent
	if err := json.Unmarshal(data, &e); err != nil {
		return LibraryEvent{}, err
	}
	return e, nil
}
