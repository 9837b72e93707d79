package async_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/libraryevents/pkg/async"
)

func TestFutureComplete(t *testing.T) {
	t.Parallel()

	t.Run("await returns completed value", func(t *testing.T) {
		t.Parallel()

		fut := async.NewFuture[int]()
		go fut.Complete(42, nil)

		val, err := fut.Await()
		require.NoError(t, err)
		assert.Equal(t, 42, val)
	})

	t.Run("await returns completed error", func(t *testing.T) {
		t.Parallel()

		wantErr := errors.New("broker unavailable")
		fut := async.NewFuture[string]()
		fut.Complete("", wantErr)

		_, err := fut.Await()
		require.ErrorIs(t, err, wantErr)
	})

	t.Run("only first completion wins", func(t *testing.T) {
		t.Parallel()

		fut := async.NewFuture[int]()
		fut.Complete(1, nil)
		fut.Complete(2, errors.New("late"))

		val, err := fut.Await()
		require.NoError(t, err)
		assert.Equal(t, 1, val)
	})
}

func TestFutureAwaitWithTimeout(t *testing.T) {
	t.Parallel()

	t.Run("returns ErrTimeout when pending", func(t *testing.T) {
		t.Parallel()

		fut := async.NewFuture[int]()
		_, err := fut.AwaitWithTimeout(10 * time.Millisecond)
		require.ErrorIs(t, err, async.ErrTimeout)
	})

	t.Run("returns result when completed in time", func(t *testing.T) {
		t.Parallel()

		fut := async.NewFuture[int]()
		fut.Complete(7, nil)

		val, err := fut.AwaitWithTimeout(time.Second)
		require.NoError(t, err)
		assert.Equal(t, 7, val)
	})
}

func TestFutureIsComplete(t *testing.T) {
	t.Parallel()

	fut := async.NewFuture[int]()
	assert.False(t, fut.IsComplete())

	fut.Complete(1, nil)
	assert.True(t, fut.IsComplete())
}

func TestExec(t *testing.T) {
	t.Parallel()

	t.Run("runs function and completes future", func(t *testing.T) {
		t.Parallel()

		fut := async.Exec(context.Background(), 21, func(ctx context.Context, n int) (int, error) {
			return n * 2, nil
		})

		val, err := fut.Await()
		require.NoError(t, err)
		assert.Equal(t, 42, val)
	})

	t.Run("pre-canceled context skips function", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		called := false
		fut := async.Exec(ctx, 0, func(ctx context.Context, _ int) (int, error) {
			called = true
			return 0, nil
		})

		_, err := fut.Await()
		require.ErrorIs(t, err, context.Canceled)
		assert.False(t, called)
	})
}
