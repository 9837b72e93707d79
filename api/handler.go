package api

import (
	"context"
	"net/http"

	"github.com/dmitrymomot/libraryevents/core/binder"
	"github.com/dmitrymomot/libraryevents/core/event"
	"github.com/dmitrymomot/libraryevents/core/handler"
	"github.com/dmitrymomot/libraryevents/core/producer"
	"github.com/dmitrymomot/libraryevents/core/response"
)

func createLibraryEvent(p *producer.Producer) handler.Func {
	return func(r *http.Request) handler.Response {
		var ev event.LibraryEvent
		if err := binder.JSON(r, &ev); err != nil {
			return response.Error(err)
		}
		if err := ev.Validate(); err != nil {
			return response.Error(err)
		}

		if err := dispatch(r.Context(), p, ev); err != nil {
			return response.Error(err)
		}

		return response.JSONWithStatus(ev, http.StatusCreated)
	}
}

func updateLibraryEvent(p *producer.Producer) handler.Func {
	return func(r *http.Request) handler.Response {
		var ev event.LibraryEvent
		if err := binder.JSON(r, &ev); err != nil {
			return response.Error(err)
		}
		if err := ev.ValidateForUpdate(); err != nil {
			return response.Error(err)
		}
		if err := ev.Validate(); err != nil {
			return response.Error(err)
		}

		if err := dispatch(r.Context(), p, ev); err != nil {
			return response.Error(err)
		}

		return response.JSONWithStatus(ev, http.StatusCreated)
	}
}

// dispatch fans the event out through all three strategies as independent
// calls. Only serialization failures and the synchronous strategy can fail
// the request; async delivery outcomes stay with the completion handlers.
// Submitted dispatches are not retracted, so the detached context keeps them
// alive after the response is written.
func dispatch(ctx context.Context, p *producer.Producer, ev event.LibraryEvent) error {
	ctx = context.WithoutCancel(ctx)

	if _, err := p.Send(ctx, ev); err != nil {
		return err
	}
	if _, err := p.SendSync(ctx, ev); err != nil {
		return err
	}
	if _, err := p.SendWithHeaders(ctx, ev); err != nil {
		return err
	}
	return nil
}
