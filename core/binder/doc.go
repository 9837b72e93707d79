// Package binder parses HTTP request bodies into typed values.
// Only strict JSON binding is provided: the content type must be
// application/json, unknown fields are rejected, and trailing data after the
// JSON document is an error.
package binder
