package binder

import "errors"

var (
	// ErrMissingContentType indicates the request lacks a Content-Type header.
	ErrMissingContentType = errors.New("missing content type")

	// ErrUnsupportedMediaType indicates a Content-Type other than application/json.
	ErrUnsupportedMediaType = errors.New("unsupported media type")

	// ErrFailedToParseJSON indicates the body is not valid JSON or does not
	// match the target struct schema.
	ErrFailedToParseJSON = errors.New("failed to parse JSON request body")
)
