package postharvest

import (
	"net/http"

	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/tracing"
	"github.com/go-chi/chi/v5"

	"github.com/diwise/postharvest/internal/pkg/application/postharvest"
	"github.com/diwise/postharvest/internal/pkg/presentation/api/postharvest/auth"
	phErrors "github.com/diwise/postharvest/pkg/postharvest/errors"
)

func NewListUsersHandler(store postharvest.UserStore) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var err error

		ctx, span, traceID, log := startSpan(r, "list-users")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

		users, err := store.FindAll(ctx)
		if err != nil {
			reportError(w, log, err, traceID, "failed to list users")
			return
		}

		writeJSON(w, http.StatusOK, map[string]any{"users": users})
	})
}

// NewCreateUserHandler lets an administrator add users, including other administrators
func NewCreateUserHandler(store postharvest.UserStore, tokens *auth.Tokens) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var err error

		ctx, span, traceID, log := startSpan(r, "create-user")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

		req, err := decodeRequest[registerRequest](r)
		if err != nil {
			reportError(w, log, err, traceID, "invalid user")
			return
		}

		user, err := store.Register(ctx, req.NewUser)
		if err != nil {
			reportError(w, log, err, traceID, "failed to create user")
			return
		}

		token, err := tokens.Create(user)
		if err != nil {
			reportError(w, log, err, traceID, "failed to create token")
			return
		}

		log.Info("user created", "username", user.Username, "isAdmin", user.IsAdmin)

		writeJSON(w, http.StatusCreated, map[string]any{"user": user, "token": token})
	})
}

func NewRetrieveUserHandler(store postharvest.UserStore) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var err error

		ctx, span, traceID, log := startSpan(r, "retrieve-user")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

		user, err := store.Get(ctx, chi.URLParam(r, "username"))
		if err != nil {
			reportError(w, log, err, traceID, "failed to retrieve user")
			return
		}

		writeJSON(w, http.StatusOK, map[string]any{"user": user})
	})
}

func NewUpdateUserHandler(store postharvest.UserStore) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var err error

		ctx, span, traceID, log := startSpan(r, "update-user")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

		changes, err := decodeChanges(r)
		if err != nil {
			reportError(w, log, err, traceID, "invalid user changes")
			return
		}

		if _, ok := changes.Get("isAdmin"); ok && !UserFromContext(ctx).IsAdmin {
			err = phErrors.NewUnauthorizedError("only administrators may change isAdmin")
			reportError(w, log, err, traceID, "user update denied")
			return
		}

		user, err := store.Update(ctx, chi.URLParam(r, "username"), changes)
		if err != nil {
			reportError(w, log, err, traceID, "failed to update user")
			return
		}

		writeJSON(w, http.StatusOK, map[string]any{"user": user})
	})
}

func NewDeleteUserHandler(store postharvest.UserStore) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var err error

		ctx, span, traceID, log := startSpan(r, "delete-user")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

		username := chi.URLParam(r, "username")

		err = store.Remove(ctx, username)
		if err != nil {
			reportError(w, log, err, traceID, "failed to delete user")
			return
		}

		log.Info("user deleted", "username", username)

		writeJSON(w, http.StatusOK, map[string]any{"deleted": username})
	})
}
