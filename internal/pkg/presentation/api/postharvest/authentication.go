package postharvest

import (
	"context"
	"net/http"

	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/tracing"

	"github.com/diwise/postharvest/internal/pkg/application/postharvest"
	"github.com/diwise/postharvest/internal/pkg/presentation/api/postharvest/auth"
	phErrors "github.com/diwise/postharvest/pkg/postharvest/errors"
)

func NewTokenHandler(store postharvest.UserStore, tokens *auth.Tokens) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var err error

		ctx, span, traceID, log := startSpan(r, "create-token")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

		req, err := decodeRequest[tokenRequest](r)
		if err != nil {
			reportError(w, log, err, traceID, "invalid token request")
			return
		}

		user, err := store.Authenticate(ctx, req.Username, req.Password)
		if err != nil {
			reportError(w, log, err, traceID, "authentication failed")
			return
		}

		token, err := tokens.Create(user)
		if err != nil {
			reportError(w, log, err, traceID, "failed to create token")
			return
		}

		writeJSON(w, http.StatusOK, map[string]any{"token": token})
	})
}

// NewRegisterHandler registers a regular user and logs it in. Registration
// never grants admin rights.
func NewRegisterHandler(store postharvest.UserStore, tokens *auth.Tokens) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var err error

		ctx, span, traceID, log := startSpan(r, "register-user")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

		req, err := decodeRequest[registerRequest](r)
		if err != nil {
			reportError(w, log, err, traceID, "invalid registration")
			return
		}

		req.IsAdmin = false

		user, err := store.Register(ctx, req.NewUser)
		if err != nil {
			reportError(w, log, err, traceID, "failed to register user")
			return
		}

		token, err := tokens.Create(user)
		if err != nil {
			reportError(w, log, err, traceID, "failed to create token")
			return
		}

		log.Info("user registered", "username", user.Username)

		writeJSON(w, http.StatusCreated, map[string]any{"token": token})
	})
}

// NewLoginHandler verifies the token passed in the query and echoes its claims
func NewLoginHandler(tokens *auth.Tokens) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var err error

		_, span, traceID, log := startSpan(r, "verify-token")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

		token := r.URL.Query().Get("token")
		if token == "" {
			err = phErrors.NewUnauthorizedError("no token provided")
			reportError(w, log, err, traceID, "token verification failed")
			return
		}

		claims, err := tokens.Parse(token)
		if err != nil {
			reportError(w, log, err, traceID, "token verification failed")
			return
		}

		writeJSON(w, http.StatusOK, map[string]any{
			"message":        "successfully logged in",
			"authorizedData": claims,
		})
	})
}

func NewHealthHandler(ping func(context.Context) error) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var err error

		ctx, span, _, log := startSpan(r, "health")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

		err = ping(ctx)
		if err != nil {
			log.Error("database ping failed", "err", err.Error())
			writeJSON(w, http.StatusServiceUnavailable, map[string]any{"status": "unavailable"})
			return
		}

		writeJSON(w, http.StatusOK, map[string]any{"status": "ok"})
	})
}
