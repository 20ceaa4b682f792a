package postharvest

import (
	"fmt"
	"net/http"

	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/tracing"
	"github.com/go-chi/chi/v5"

	"github.com/diwise/postharvest/internal/pkg/application/postharvest"
	phErrors "github.com/diwise/postharvest/pkg/postharvest/errors"
)

// registerHandlingRoutes mounts the routes of one kind of handling data. Every
// response wraps its payload in envelope.
func registerHandlingRoutes[T any](r chi.Router, path, envelope string, store postharvest.HandlingStore[T]) {
	r.Route(path, func(r chi.Router) {
		r.Post("/", NewCreateHandlingHandler(envelope, store))
		r.Get("/commodity/{commodityId}", NewRetrieveHandlingOfCommodityHandler(envelope, store))
		r.Get("/{id}", NewRetrieveHandlingHandler(envelope, store))
		r.Patch("/{id}", NewUpdateHandlingHandler(envelope, store))
		r.Delete("/{id}", NewDeleteHandlingHandler(envelope, store))
	})
}

func NewCreateHandlingHandler[T any](envelope string, store postharvest.HandlingStore[T]) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var err error

		ctx, span, traceID, log := startSpan(r, "create-"+envelope)
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

		req, err := decodeRequest[createHandlingRequest](r)
		if err != nil {
			reportError(w, log, err, traceID, "invalid "+envelope)
			return
		}

		data, err := decodeData[T](req.Data)
		if err != nil {
			reportError(w, log, err, traceID, "invalid "+envelope)
			return
		}

		created, err := store.Create(ctx, req.CommodityID, data)
		if err != nil {
			reportError(w, log, err, traceID, "failed to create "+envelope)
			return
		}

		writeJSON(w, http.StatusCreated, map[string]any{envelope: created})
	})
}

func NewRetrieveHandlingHandler[T any](envelope string, store postharvest.HandlingStore[T]) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var err error

		ctx, span, traceID, log := startSpan(r, "retrieve-"+envelope)
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

		id, err := intParam(r, "id")
		if err != nil {
			reportError(w, log, err, traceID, "bad "+envelope+" id")
			return
		}

		data, err := store.GetByID(ctx, id)
		if err != nil {
			reportError(w, log, err, traceID, "failed to retrieve "+envelope)
			return
		}

		writeJSON(w, http.StatusOK, map[string]any{envelope: data})
	})
}

// NewRetrieveHandlingOfCommodityHandler reports not found when the commodity has no entries
func NewRetrieveHandlingOfCommodityHandler[T any](envelope string, store postharvest.HandlingStore[T]) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var err error

		ctx, span, traceID, log := startSpan(r, "retrieve-"+envelope+"-of-commodity")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

		commodityID := chi.URLParam(r, "commodityId")

		data, err := store.GetByCommodity(ctx, commodityID)
		if err == nil && len(data) == 0 {
			err = phErrors.NewNotFoundError(fmt.Sprintf("no %s found for commodity %s", envelope, commodityID))
		}
		if err != nil {
			reportError(w, log, err, traceID, "failed to retrieve "+envelope+" of commodity")
			return
		}

		writeJSON(w, http.StatusOK, map[string]any{envelope: data})
	})
}

func NewUpdateHandlingHandler[T any](envelope string, store postharvest.HandlingStore[T]) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var err error

		ctx, span, traceID, log := startSpan(r, "update-"+envelope)
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

		id, err := intParam(r, "id")
		if err != nil {
			reportError(w, log, err, traceID, "bad "+envelope+" id")
			return
		}

		changes, err := decodeChanges(r)
		if err != nil {
			reportError(w, log, err, traceID, "invalid "+envelope+" changes")
			return
		}

		data, err := store.Update(ctx, id, changes)
		if err != nil {
			reportError(w, log, err, traceID, "failed to update "+envelope)
			return
		}

		writeJSON(w, http.StatusOK, map[string]any{envelope: data})
	})
}

func NewDeleteHandlingHandler[T any](envelope string, store postharvest.HandlingStore[T]) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var err error

		ctx, span, traceID, log := startSpan(r, "delete-"+envelope)
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

		id, err := intParam(r, "id")
		if err != nil {
			reportError(w, log, err, traceID, "bad "+envelope+" id")
			return
		}

		err = store.Remove(ctx, id)
		if err != nil {
			reportError(w, log, err, traceID, "failed to delete "+envelope)
			return
		}

		writeJSON(w, http.StatusOK, map[string]any{"deleted": id})
	})
}
