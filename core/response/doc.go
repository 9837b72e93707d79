// Package response provides constructors for the response shapes the service
// produces: JSON bodies with explicit status codes, plain-text messages, and
// error passthrough for the framework error handler.
package response
