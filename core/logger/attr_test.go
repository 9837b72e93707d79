package logger_test

import (
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/libraryevents/core/logger"
)

func TestErrorAttr(t *testing.T) {
	t.Parallel()

	t.Run("nil error yields empty attr", func(t *testing.T) {
		t.Parallel()

		attr := logger.Error(nil)
		assert.Equal(t, slog.Attr{}, attr)
	})

	t.Run("non-nil error uses error key", func(t *testing.T) {
		t.Parallel()

		err := errors.New("boom")
		attr := logger.Error(err)
		assert.Equal(t, "error", attr.Key)
		assert.Equal(t, err, attr.Value.Any())
	})
}

func TestRequestIDAttr(t *testing.T) {
	t.Parallel()

	assert.Equal(t, slog.Attr{}, logger.RequestID(""))
	assert.Equal(t, "abc-123", logger.RequestID("abc-123").Value.String())
}

func TestHTTPAttrs(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "PUT", logger.Method("PUT").Value.String())
	assert.Equal(t, "/v1/libraryevent", logger.Path("/v1/libraryevent").Value.String())
	assert.Equal(t, int64(201), logger.StatusCode(201).Value.Int64())
	assert.Equal(t, time.Second, logger.Latency(time.Second).Value.Duration())
}

func TestBrokerAttrs(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "library-events", logger.Topic("library-events").Value.String())
	assert.Equal(t, int64(3), logger.Partition(3).Value.Int64())
}
