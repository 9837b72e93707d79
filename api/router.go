package api

import (
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/libraryevents/core/handler"
	"github.com/dmitrymomot/libraryevents/core/producer"
)

// NewRouter builds the HTTP surface for library event submissions.
func NewRouter(p *producer.Producer, log *slog.Logger) http.Handler {
	onError := errorHandler(log)

	create := handler.Wrap(createLibraryEvent(p), onError)
	update := handler.Wrap(updateLibraryEvent(p), onError)

	mux := http.NewServeMux()
	mux.HandleFunc("/v1/libraryevent", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodPost:
			create(w, r)
		case http.MethodPut:
			update(w, r)
		default:
			w.Header().Set("Allow", "POST, PUT")
			http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		}
	})

	return handler.Chain(mux,
		RequestID(),
		Logging(log),
	)
}
