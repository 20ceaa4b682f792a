package postharvest

import (
	"fmt"
	"net/http"

	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/tracing"
	"github.com/go-chi/chi/v5"

	"github.com/diwise/postharvest/internal/pkg/application/postharvest"
	phErrors "github.com/diwise/postharvest/pkg/postharvest/errors"
)

func NewCreateReferenceHandler(store postharvest.ReferenceStore) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var err error

		ctx, span, traceID, log := startSpan(r, "create-reference")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

		req, err := decodeRequest[createHandlingRequest](r)
		if err != nil {
			reportError(w, log, err, traceID, "invalid reference")
			return
		}

		source, ok := req.Data["source"].(string)
		if !ok || source == "" {
			err = phErrors.NewInvalidArgumentError("source is required")
			reportError(w, log, err, traceID, "invalid reference")
			return
		}

		ref, err := store.Create(ctx, req.CommodityID, source)
		if err != nil {
			reportError(w, log, err, traceID, "failed to create reference")
			return
		}

		writeJSON(w, http.StatusCreated, map[string]any{"reference": ref})
	})
}

func NewRetrieveReferencesHandler(store postharvest.ReferenceStore) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var err error

		ctx, span, traceID, log := startSpan(r, "retrieve-references")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

		commodityID := chi.URLParam(r, "commodityId")

		refs, err := store.GetByCommodity(ctx, commodityID)
		if err == nil && len(refs) == 0 {
			err = phErrors.NewNotFoundError(fmt.Sprintf("no references found for commodity %s", commodityID))
		}
		if err != nil {
			reportError(w, log, err, traceID, "failed to retrieve references")
			return
		}

		writeJSON(w, http.StatusOK, map[string]any{"reference": refs})
	})
}

func NewDeleteReferenceHandler(store postharvest.ReferenceStore) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var err error

		ctx, span, traceID, log := startSpan(r, "delete-reference")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

		id, err := intParam(r, "id")
		if err != nil {
			reportError(w, log, err, traceID, "bad reference id")
			return
		}

		err = store.Remove(ctx, id)
		if err != nil {
			reportError(w, log, err, traceID, "failed to delete reference")
			return
		}

		writeJSON(w, http.StatusOK, map[string]any{"deleted": id})
	})
}

// NewDeleteReferencesOfCommodityHandler removes every reference of a commodity
func NewDeleteReferencesOfCommodityHandler(store postharvest.ReferenceStore) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var err error

		ctx, span, traceID, log := startSpan(r, "delete-references-of-commodity")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

		commodityID := chi.URLParam(r, "commodityId")

		count, err := store.RemoveByCommodity(ctx, commodityID)
		if err != nil {
			reportError(w, log, err, traceID, "failed to delete references of commodity")
			return
		}

		log.Info("references deleted", "commodityId", commodityID, "count", count)

		writeJSON(w, http.StatusOK, map[string]any{"deleted": count})
	})
}
