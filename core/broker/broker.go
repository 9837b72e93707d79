package broker

import (
	"context"
	"errors"
)

// ErrClientClosed is returned when publishing through a closed client.
var ErrClientClosed = errors.New("broker client is closed")

// Header is a single key/value byte pair attached to a record.
type Header struct {
	Key   string
	Value []byte
}

// Record is one message to publish. A record is derived from exactly one
// event per dispatch attempt and is never reused across calls.
// Key may be nil, in which case the broker assigns the partition.
type Record struct {
	Topic   string
	Key     []byte
	Value   []byte
	Headers []Header
}

// Metadata describes the broker's acknowledgment of a published record.
type Metadata struct {
	Topic     string
	Partition int32
	Offset    int64
}

// Client is the publish primitive consumed by the producer.
//
// Publish blocks the calling goroutine until the broker acknowledges the
// record or the attempt fails. PublishAsync submits the record and returns
// immediately; the promise is invoked exactly once, on a goroutine owned by
// the client, when the attempt completes. Callers must not assume same-
// goroutine completion.
type Client interface {
	Publish(ctx context.Context, rec Record) (Metadata, error)
	PublishAsync(ctx context.Context, rec Record, promise func(Metadata, error))
	Close() error
}
