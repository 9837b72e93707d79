package async

import (
	"context"
	"errors"
	"sync"
	"time"
)

// ErrTimeout is returned by AwaitWithTimeout when the future does not
// complete before the deadline. The underlying attempt keeps running.
var ErrTimeout = errors.New("async: await timed out")

// Future represents the eventual result of an asynchronous operation.
// It is completed exactly once; later completions are ignored.
type Future[T any] struct {
	val  T
	err  error
	once sync.Once
	done chan struct{}
}

// NewFuture creates a pending future to be resolved by Complete.
func NewFuture[T any]() *Future[T] {
	return &Future[T]{done: make(chan struct{})}
}

// Complete resolves the future with a value and an error.
// Only the first call has any effect; Complete is safe to call from any
// goroutine, including a broker client's callback goroutine.
func (f *Future[T]) Complete(val T, err error) {
	f.once.Do(func() {
		f.val = val
		f.err = err
		close(f.done)
	})
}

// Await blocks until the future is completed and returns its result.
func (f *Future[T]) Await() (T, error) {
	<-f.done
	return f.val, f.err
}

// AwaitWithTimeout blocks until the future is completed or the timeout
// elapses, in which case it returns ErrTimeout.
func (f *Future[T]) AwaitWithTimeout(timeout time.Duration) (T, error) {
	select {
	case <-f.done:
		return f.val, f.err
	case <-time.After(timeout):
		var zero T
		return zero, ErrTimeout
	}
}

// IsComplete reports whether the future has been completed without blocking.
func (f *Future[T]) IsComplete() bool {
	select {
	case <-f.done:
		return true
	default:
		return false
	}
}

// Exec runs fn on a new goroutine and returns a future for its result.
// A pre-canceled context short-circuits without invoking fn.
func Exec[P, T any](ctx context.Context, param P, fn func(context.Context, P) (T, error)) *Future[T] {
	f := NewFuture[T]()

	go func() {
		select {
		case <-ctx.Done():
			var zero T
			f.Complete(zero, ctx.Err())
			return
		default:
		}

		val, err := fn(ctx, param)
		f.Complete(val, err)
	}()

	return f
}
