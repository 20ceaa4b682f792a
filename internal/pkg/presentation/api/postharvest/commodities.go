package postharvest

import (
	"net/http"

	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/tracing"
	"github.com/go-chi/chi/v5"

	"github.com/diwise/postharvest/internal/pkg/application/postharvest"
)

func NewListCommoditiesHandler(store postharvest.CommodityStore) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var err error

		ctx, span, traceID, log := startSpan(r, "list-commodities")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

		commodities, err := store.FindAll(ctx)
		if err != nil {
			reportError(w, log, err, traceID, "failed to list commodities")
			return
		}

		writeJSON(w, http.StatusOK, map[string]any{"commodities": commodities})
	})
}

func NewCreateCommodityHandler(store postharvest.CommodityStore) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var err error

		ctx, span, traceID, log := startSpan(r, "create-commodity")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

		req, err := decodeRequest[createCommodityRequest](r)
		if err != nil {
			reportError(w, log, err, traceID, "invalid commodity")
			return
		}

		commodity, err := store.Create(ctx, req.Commodity)
		if err != nil {
			reportError(w, log, err, traceID, "failed to create commodity")
			return
		}

		log.Info("commodity created", "id", commodity.ID)

		writeJSON(w, http.StatusCreated, map[string]any{"commodity": commodity})
	})
}

// NewRetrieveCommodityHandler returns a commodity together with all of its handling data
func NewRetrieveCommodityHandler(store postharvest.CommodityStore) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var err error

		ctx, span, traceID, log := startSpan(r, "retrieve-commodity")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

		commodity, err := store.Get(ctx, chi.URLParam(r, "id"))
		if err != nil {
			reportError(w, log, err, traceID, "failed to retrieve commodity")
			return
		}

		writeJSON(w, http.StatusOK, map[string]any{"commodity": commodity})
	})
}

func NewUpdateCommodityHandler(store postharvest.CommodityStore) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var err error

		ctx, span, traceID, log := startSpan(r, "update-commodity")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

		changes, err := decodeChanges(r)
		if err != nil {
			reportError(w, log, err, traceID, "invalid commodity changes")
			return
		}

		commodity, err := store.Update(ctx, chi.URLParam(r, "id"), changes)
		if err != nil {
			reportError(w, log, err, traceID, "failed to update commodity")
			return
		}

		writeJSON(w, http.StatusOK, map[string]any{"commodity": commodity})
	})
}

func NewDeleteCommodityHandler(store postharvest.CommodityStore) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var err error

		ctx, span, traceID, log := startSpan(r, "delete-commodity")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

		id := chi.URLParam(r, "id")

		err = store.Remove(ctx, id)
		if err != nil {
			reportError(w, log, err, traceID, "failed to delete commodity")
			return
		}

		log.Info("commodity deleted", "id", id)

		writeJSON(w, http.StatusOK, map[string]any{"deleted": id})
	})
}

// NewListStudiesOfCommodityHandler returns the ids of the studies that cover a commodity
func NewListStudiesOfCommodityHandler(store postharvest.StudyCommodityStore) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var err error

		ctx, span, traceID, log := startSpan(r, "list-studies-of-commodity")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

		studies, err := store.GetByCommodity(ctx, chi.URLParam(r, "id"))
		if err != nil {
			reportError(w, log, err, traceID, "failed to list studies of commodity")
			return
		}

		writeJSON(w, http.StatusOK, map[string]any{"studies": studies})
	})
}
