package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/libraryevents/core/binder"
	"github.com/dmitrymomot/libraryevents/core/event"
	"github.com/dmitrymomot/libraryevents/core/handler"
	"github.com/dmitrymomot/libraryevents/core/logger"
	"github.com/dmitrymomot/libraryevents/core/response"
)

// badRequest lists the errors that are the client's fault. Everything else
// on the synchronous path is an opaque 500.
var badRequest = []error{
	event.ErrMissingEventID,
	event.ErrUnsupportedEventType,
	event.ErrInvalidEvent,
	binder.ErrFailedToParseJSON,
	binder.ErrMissingContentType,
	binder.ErrUnsupportedMediaType,
}

func errorHandler(log *slog.Logger) handler.ErrorHandler {
	return func(w http.ResponseWriter, r *http.Request, err error) {
		status := http.StatusInternalServerError
		msg := http.StatusText(http.StatusInternalServerError)

		for _, target := range badRequest {
			if errors.Is(err, target) {
				status = http.StatusBadRequest
				msg = err.Error()
				break
			}
		}

		if status >= http.StatusInternalServerError {
			log.Error("request failed",
				logger.Method(r.Method),
				logger.Path(r.URL.Path),
				logger.Error(err),
			)
		}

		_ = response.Text(msg, status)(w, r)
	}
}
