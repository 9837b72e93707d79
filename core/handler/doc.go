// Package handler defines the request-handling contract shared by the HTTP
// surface: handlers return a Response render function instead of writing to
// the ResponseWriter directly, which keeps status mapping and error handling
// in one place.
package handler
