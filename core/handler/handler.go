package handler

import "net/http"

// Response is a function that renders an HTTP response.
// It sets headers, status code, and writes the response body.
type Response func(w http.ResponseWriter, r *http.Request) error

// Func is a request handler producing a Response.
type Func func(r *http.Request) Response

// ErrorHandler maps a rendering error to a terminal response.
type ErrorHandler func(w http.ResponseWriter, r *http.Request, err error)

// Middleware wraps an http.Handler to add cross-cutting functionality.
type Middleware func(next http.Handler) http.Handler

// Wrap adapts a Func to http.HandlerFunc, routing render errors to onError.
// A nil onError falls back to a bare 500.
func Wrap(fn Func, onError ErrorHandler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := fn(r)(w, r); err != nil {
			if onError != nil {
				onError(w, r, err)
				return
			}
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		}
	}
}

// Chain applies middlewares to next in declaration order: the first
// middleware is the outermost.
func Chain(next http.Handler, mws ...Middleware) http.Handler {
	for i := len(mws) - 1; i >= 0; i-- {
		next = mws[i](next)
	}
	return next
}
