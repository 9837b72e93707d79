package broker_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/libraryevents/core/broker"
)

func TestMemoryPublish(t *testing.T) {
	t.Parallel()

	t.Run("appends records with increasing offsets", func(t *testing.T) {
		t.Parallel()

		m := broker.NewMemory()
		ctx := context.Background()

		for i := 0; i < 3; i++ {
			meta, err := m.Publish(ctx, broker.Record{Topic: "library-events", Value: []byte("v")})
			require.NoError(t, err)
			assert.Equal(t, "library-events", meta.Topic)
			assert.Equal(t, int64(i), meta.Offset)
		}

		assert.Len(t, m.Records("library-events"), 3)
		assert.Empty(t, m.Records("other-topic"))
	})

	t.Run("preserves key, value and headers", func(t *testing.T) {
		t.Parallel()

		m := broker.NewMemory()
		rec := broker.Record{
			Topic:   "library-events",
			Key:     []byte("123"),
			Value:   []byte(`{"eventId":123}`),
			Headers: []broker.Header{{Key: "Event-Source", Value: []byte("scanner")}},
		}

		_, err := m.Publish(context.Background(), rec)
		require.NoError(t, err)

		recs := m.Records("library-events")
		require.Len(t, recs, 1)
		assert.Equal(t, rec, recs[0])
	})

	t.Run("fails with injected error", func(t *testing.T) {
		t.Parallel()

		m := broker.NewMemory()
		wantErr := errors.New("partition leader unavailable")
		m.FailWith(wantErr)

		_, err := m.Publish(context.Background(), broker.Record{Topic: "t"})
		require.ErrorIs(t, err, wantErr)
		assert.Empty(t, m.Records("t"))

		m.FailWith(nil)
		_, err = m.Publish(context.Background(), broker.Record{Topic: "t"})
		require.NoError(t, err)
	})

	t.Run("fails after close", func(t *testing.T) {
		t.Parallel()

		m := broker.NewMemory()
		require.NoError(t, m.Close())

		_, err := m.Publish(context.Background(), broker.Record{Topic: "t"})
		require.ErrorIs(t, err, broker.ErrClientClosed)
	})

	t.Run("respects canceled context", func(t *testing.T) {
		t.Parallel()

		m := broker.NewMemory()
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := m.Publish(ctx, broker.Record{Topic: "t"})
		require.ErrorIs(t, err, context.Canceled)
	})
}

func TestMemoryPublishAsync(t *testing.T) {
	t.Parallel()

	t.Run("resolves promise off the calling goroutine", func(t *testing.T) {
		t.Parallel()

		m := broker.NewMemory()
		done := make(chan struct{})

		var meta broker.Metadata
		var err error
		m.PublishAsync(context.Background(), broker.Record{Topic: "t", Value: []byte("v")}, func(md broker.Metadata, e error) {
			meta, err = md, e
			close(done)
		})

		select {
		case <-done:
		case <-time.After(time.Second):
			t.Fatal("timeout waiting for promise")
		}

		require.NoError(t, err)
		assert.Equal(t, int64(0), meta.Offset)
		assert.Len(t, m.Records("t"), 1)
	})

	t.Run("safe for concurrent publishers", func(t *testing.T) {
		t.Parallel()

		m := broker.NewMemory()
		const n = 50

		var wg sync.WaitGroup
		wg.Add(n)
		for i := 0; i < n; i++ {
			m.PublishAsync(context.Background(), broker.Record{Topic: "t"}, func(broker.Metadata, error) {
				wg.Done()
			})
		}
		wg.Wait()

		assert.Len(t, m.Records("t"), n)
	})
}

func TestConfigValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		cfg     broker.Config
		wantErr error
	}{
		{
			name: "valid",
			cfg:  broker.Config{Brokers: []string{"localhost:9092"}, Topic: "library-events"},
		},
		{
			name:    "missing brokers",
			cfg:     broker.Config{Topic: "library-events"},
			wantErr: broker.ErrMissingBrokers,
		},
		{
			name:    "missing topic",
			cfg:     broker.Config{Brokers: []string{"localhost:9092"}},
			wantErr: broker.ErrMissingTopic,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.cfg.Validate()
			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}
