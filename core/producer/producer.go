package producer

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/dmitrymomot/libraryevents/core/broker"
	"github.com/dmitrymomot/libraryevents/core/event"
	"github.com/dmitrymomot/libraryevents/pkg/async"
)

// eventSourceHeader tags header-enriched records with the provenance of the
// submission. The value is fixed regardless of event content.
var eventSourceHeader = broker.Header{Key: "Event-Source", Value: []byte("scanner")}

// Marshaler serializes an event to its wire form.
type Marshaler func(event.LibraryEvent) ([]byte, error)

// Producer publishes serialized library events to a single topic.
// The topic is injected at construction and read-only thereafter.
// Safe for concurrent use; each dispatch builds its own record and shares
// nothing with other in-flight calls except the broker client itself.
type Producer struct {
	client  broker.Client
	topic   string
	log     *slog.Logger
	marshal Marshaler
}

// New creates a Producer publishing to the given topic.
func New(client broker.Client, topic string, opts ...Option) (*Producer, error) {
	if client == nil {
		return nil, ErrNilClient
	}
	if topic == "" {
		return nil, ErrMissingTopic
	}

	p := &Producer{
		client:  client,
		topic:   topic,
		log:     slog.Default(),
		marshal: event.Marshal,
	}

	for _, opt := range opts {
		opt(p)
	}

	return p, nil
}

// Send publishes the event asynchronously and returns a future for the
// broker's acknowledgment. The returned error covers serialization only;
// delivery failures reach the completion handler and the future, not the
// caller. The completion handler runs on the broker client's goroutines.
func (p *Producer) Send(ctx context.Context, ev event.LibraryEvent) (*async.Future[broker.Metadata], error) {
	rec, err := p.record(ev, nil)
	if err != nil {
		return nil, err
	}
	return p.submit(ctx, rec), nil
}

// SendSync publishes the event and blocks until the broker acknowledges it
// or the attempt fails. The completion handler is invoked inline and a
// failure is returned to the caller wrapped with ErrPublish.
func (p *Producer) SendSync(ctx context.Context, ev event.LibraryEvent) (broker.Metadata, error) {
	rec, err := p.record(ev, nil)
	if err != nil {
		return broker.Metadata{}, err
	}

	meta, err := p.client.Publish(ctx, rec)
	if err != nil {
		p.handleFailure(rec, err)
		return broker.Metadata{}, fmt.Errorf("%w: %v", ErrPublish, err)
	}

	p.handleSuccess(rec, meta)
	return meta, nil
}

// SendWithHeaders behaves like Send but attaches the fixed Event-Source
// provenance header to the published record.
func (p *Producer) SendWithHeaders(ctx context.Context, ev event.LibraryEvent) (*async.Future[broker.Metadata], error) {
	rec, err := p.record(ev, []broker.Header{eventSourceHeader})
	if err != nil {
		return nil, err
	}
	return p.submit(ctx, rec), nil
}

// submit hands the record to the client's async path and bridges the
// delivery promise to the shared completion contract and a future.
func (p *Producer) submit(ctx context.Context, rec broker.Record) *async.Future[broker.Metadata] {
	fut := async.NewFuture[broker.Metadata]()

	p.client.PublishAsync(ctx, rec, func(meta broker.Metadata, err error) {
		if err != nil {
			p.handleFailure(rec, err)
		} else {
			p.handleSuccess(rec, meta)
		}
		fut.Complete(meta, err)
	})

	return fut
}

// record derives the single dispatch record for one attempt: canonical JSON
// value, identity-derived key, and optional headers.
func (p *Producer) record(ev event.LibraryEvent, headers []broker.Header) (broker.Record, error) {
	value, err := p.marshal(ev)
	if err != nil {
		return broker.Record{}, fmt.Errorf("%w: %v", ErrSerialize, err)
	}

	return broker.Record{
		Topic:   p.topic,
		Key:     recordKey(ev),
		Value:   value,
		Headers: headers,
	}, nil
}

// recordKey encodes the event identity as a decimal key.
// A nil identity yields a nil key; partition assignment is then the
// broker's concern.
func recordKey(ev event.LibraryEvent) []byte {
	if ev.ID == nil {
		return nil
	}
	return []byte(strconv.Itoa(*ev.ID))
}

func (p *Producer) handleSuccess(rec broker.Record, meta broker.Metadata) {
	p.log.Info("message sent",
		"key", string(rec.Key),
		"value", string(rec.Value),
		"partition", meta.Partition,
	)
}

func (p *Producer) handleFailure(rec broker.Record, err error) {
	p.log.Error("message send failed",
		"key", string(rec.Key),
		"value", string(rec.Value),
		"error", err,
	)
}
