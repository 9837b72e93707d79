// Package async provides a minimal future type for publish attempts whose
// completion is signaled by an external callback, such as a broker client's
// delivery promise.
//
// A Future is created pending and completed exactly once:
//
//	fut := async.NewFuture[broker.Metadata]()
//	client.PublishAsync(ctx, rec, func(meta broker.Metadata, err error) {
//		fut.Complete(meta, err)
//	})
//
//	meta, err := fut.Await()
//
// Await blocks until completion; AwaitWithTimeout bounds the wait and returns
// ErrTimeout if the result is not available in time. IsComplete never blocks.
package async
