// Package api exposes the HTTP ingress for library event submissions.
//
// Two routes are served:
//
//	POST /v1/libraryevent  create a library event (no identity required)
//	PUT  /v1/libraryevent  update a library event (identity + UPDATE type required)
//
// An accepted event is fanned out through all three producer strategies as
// independent calls. Only the synchronous strategy can fail the request;
// async delivery failures surface through the producer's completion handlers
// alone. Validation failures render as 400 with a plain-text field summary,
// everything else on the synchronous path as 500.
package api
