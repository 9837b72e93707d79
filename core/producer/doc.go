// Package producer dispatches library events to a broker topic through three
// delivery strategies sharing one completion-handling contract.
//
// The strategies differ only in concurrency and error-reporting shape:
//
//   - Send: fire-and-forget async. Returns a future immediately; delivery
//     failures reach the completion handler (and the future), never the
//     calling goroutine's error return.
//   - SendSync: blocks until the broker acknowledges or the attempt fails;
//     failures are returned to the caller.
//   - SendWithHeaders: like Send, but the record carries a fixed provenance
//     header identifying the submission source.
//
// Every dispatch attempt serializes the event to canonical JSON first; a
// serialization failure aborts the attempt before the broker client is
// touched. The publish key is the event identity, absent on create, in which
// case the broker assigns the partition.
//
// Completion handlers log the destination partition on success and the error
// detail on failure. They never block, never panic, and never retry; retry
// policy belongs to the broker client.
//
// Example:
//
//	p, err := producer.New(client, "library-events")
//	if err != nil {
//		// handle
//	}
//
//	fut, err := p.Send(ctx, ev)
//	if err != nil {
//		// serialization failed, nothing was submitted
//	}
//	meta, err := fut.Await() // optional; fire-and-forget callers skip this
package producer
