package postharvest

import (
	"net/http"

	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/tracing"
	"github.com/go-chi/chi/v5"

	"github.com/diwise/postharvest/internal/pkg/application/postharvest"
)

func NewListStudiesHandler(store postharvest.StudyStore) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var err error

		ctx, span, traceID, log := startSpan(r, "list-studies")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

		studies, err := store.FindAll(ctx)
		if err != nil {
			reportError(w, log, err, traceID, "failed to list studies")
			return
		}

		writeJSON(w, http.StatusOK, map[string]any{"studies": studies})
	})
}

func NewCreateStudyHandler(store postharvest.StudyStore) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var err error

		ctx, span, traceID, log := startSpan(r, "create-study")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

		req, err := decodeRequest[createStudyRequest](r)
		if err != nil {
			reportError(w, log, err, traceID, "invalid study")
			return
		}

		study, err := store.Create(ctx, req.Study)
		if err != nil {
			reportError(w, log, err, traceID, "failed to create study")
			return
		}

		writeJSON(w, http.StatusCreated, map[string]any{"study": study})
	})
}

func NewRetrieveStudyHandler(store postharvest.StudyStore) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var err error

		ctx, span, traceID, log := startSpan(r, "retrieve-study")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

		id, err := intParam(r, "id")
		if err != nil {
			reportError(w, log, err, traceID, "bad study id")
			return
		}

		study, err := store.GetByID(ctx, id)
		if err != nil {
			reportError(w, log, err, traceID, "failed to retrieve study")
			return
		}

		writeJSON(w, http.StatusOK, map[string]any{"study": study})
	})
}

func NewUpdateStudyHandler(store postharvest.StudyStore) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var err error

		ctx, span, traceID, log := startSpan(r, "update-study")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

		id, err := intParam(r, "id")
		if err != nil {
			reportError(w, log, err, traceID, "bad study id")
			return
		}

		changes, err := decodeChanges(r)
		if err != nil {
			reportError(w, log, err, traceID, "invalid study changes")
			return
		}

		study, err := store.Update(ctx, id, changes)
		if err != nil {
			reportError(w, log, err, traceID, "failed to update study")
			return
		}

		writeJSON(w, http.StatusOK, map[string]any{"study": study})
	})
}

func NewDeleteStudyHandler(store postharvest.StudyStore) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var err error

		ctx, span, traceID, log := startSpan(r, "delete-study")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

		id, err := intParam(r, "id")
		if err != nil {
			reportError(w, log, err, traceID, "bad study id")
			return
		}

		err = store.Remove(ctx, id)
		if err != nil {
			reportError(w, log, err, traceID, "failed to delete study")
			return
		}

		writeJSON(w, http.StatusOK, map[string]any{"deleted": id})
	})
}

// NewListCommoditiesOfStudyHandler returns the ids of the commodities linked to a study
func NewListCommoditiesOfStudyHandler(store postharvest.StudyCommodityStore) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var err error

		ctx, span, traceID, log := startSpan(r, "list-commodities-of-study")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

		id, err := intParam(r, "id")
		if err != nil {
			reportError(w, log, err, traceID, "bad study id")
			return
		}

		commodities, err := store.GetByStudy(ctx, id)
		if err != nil {
			reportError(w, log, err, traceID, "failed to list commodities of study")
			return
		}

		writeJSON(w, http.StatusOK, map[string]any{"commodities": commodities})
	})
}

func NewLinkStudyHandler(store postharvest.StudyCommodityStore) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var err error

		ctx, span, traceID, log := startSpan(r, "link-study")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

		id, err := intParam(r, "id")
		if err != nil {
			reportError(w, log, err, traceID, "bad study id")
			return
		}

		req, err := decodeRequest[linkStudyRequest](r)
		if err != nil {
			reportError(w, log, err, traceID, "invalid study link")
			return
		}

		link, err := store.Create(ctx, id, req.CommodityID)
		if err != nil {
			reportError(w, log, err, traceID, "failed to link study")
			return
		}

		writeJSON(w, http.StatusCreated, map[string]any{"link": link})
	})
}

func NewUnlinkStudyHandler(store postharvest.StudyCommodityStore) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var err error

		ctx, span, traceID, log := startSpan(r, "unlink-study")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

		id, err := intParam(r, "id")
		if err != nil {
			reportError(w, log, err, traceID, "bad study id")
			return
		}

		commodityID := chi.URLParam(r, "commodityId")

		err = store.Remove(ctx, id, commodityID)
		if err != nil {
			reportError(w, log, err, traceID, "failed to unlink study")
			return
		}

		writeJSON(w, http.StatusOK, map[string]any{"deleted": commodityID})
	})
}
