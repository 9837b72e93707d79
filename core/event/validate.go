package event

import (
	"fmt"
	"strings"
)

// ValidateForUpdate checks the preconditions for accepting an update
// submission. It is pure and performs no I/O; it must pass before any
// dispatch attempt on the update path.
func (e LibraryEvent) ValidateForUpdate() error {
	if e.ID == nil {
		return ErrMissingEventID
	}
	if e.Type != TypeUpdate {
		return ErrUnsupportedEventType
	}
	return nil
}

// Validate checks field-level constraints on the event payload.
// Failures are reported as a single error wrapping ErrInvalidEvent with a
// comma-joined "field - message" summary, suitable for a plain-text 400 body.
func (e LibraryEvent) Validate() error {
	var fields []string

	if !e.Type.Valid() {
		fields = append(fields, "eventType - must be NEW or UPDATE")
	}
	if e.Book.ID <= 0 {
		fields = append(fields, "book.bookId - must not be null")
	}
	if strings.TrimSpace(e.Book.Name) == "" {
		fields = append(fields, "book.bookName - must not be blank")
	}
	if strings.TrimSpace(e.Book.Author) == "" {
		fields = append(fields, "book.bookAuthor - must not be blank")
	}

	if len(fields) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidEvent, strings.Join(fields, ","))
	}
	return nil
}
