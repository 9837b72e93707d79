package broker

import (
	"context"
	"sync"
)

// Memory is an in-memory Client for tests and local development.
// Records are appended to a per-topic log with monotonically increasing
// offsets. Safe for concurrent use.
type Memory struct {
	mu       sync.Mutex
	topics   map[string][]Record
	failWith error
	closed   bool
}

// NewMemory creates an empty in-memory broker client.
func NewMemory() *Memory {
	return &Memory{topics: make(map[string][]Record)}
}

// Publish appends the record to the topic log and acknowledges immediately.
func (m *Memory) Publish(ctx context.Context, rec Record) (Metadata, error) {
	if err := ctx.Err(); err != nil {
		return Metadata{}, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return Metadata{}, ErrClientClosed
	}
	if m.failWith != nil {
		return Metadata{}, m.failWith
	}

	m.topics[rec.Topic] = append(m.topics[rec.Topic], rec)

	return Metadata{
		Topic:     rec.Topic,
		Partition: 0,
		Offset:    int64(len(m.topics[rec.Topic]) - 1),
	}, nil
}

// PublishAsync publishes on a separate goroutine and resolves the promise
// there, mimicking a real client's own delivery goroutines.
func (m *Memory) PublishAsync(ctx context.Context, rec Record, promise func(Metadata, error)) {
	go func() {
		promise(m.Publish(ctx, rec))
	}()
}

// Close marks the client closed; later publishes fail with ErrClientClosed.
func (m *Memory) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed = true
	return nil
}

// FailWith forces all subsequent publishes to fail with err.
// Passing nil restores normal operation.
func (m *Memory) FailWith(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.failWith = err
}

// Records returns a copy of the log for the given topic.
func (m *Memory) Records(topic string) []Record {
	m.mu.Lock()
	defer m.mu.Unlock()

	recs := make([]Record, len(m.topics[topic]))
	copy(recs, m.topics[topic])
	return recs
}
