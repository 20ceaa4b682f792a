package postharvest

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/diwise/service-chassis/pkg/infrastructure/o11y"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"github.com/diwise/postharvest/internal/pkg/application/postharvest"
	"github.com/diwise/postharvest/internal/pkg/presentation/api/postharvest/auth"
	"github.com/diwise/postharvest/internal/pkg/presentation/api/postharvest/problems"
	phErrors "github.com/diwise/postharvest/pkg/postharvest/errors"
)

var tracer = otel.Tracer("postharvest/api")

const maxBodySize int64 = 1 << 20

func RegisterHandlers(ctx context.Context, r chi.Router, policies io.Reader, app *postharvest.App, tokens *auth.Tokens) error {
	authorizer, err := auth.NewAuthorizer(ctx, policies)
	if err != nil {
		return fmt.Errorf("failed to create api authorizer: %w", err)
	}

	r.Group(func(r chi.Router) {
		r.Use(
			Logger(logging.GetFromContext(ctx)),
			RequiredContentTypes([]string{"application/json"}),
			Authenticate(tokens),
			Authorize(authorizer),
		)

		r.Get("/health", NewHealthHandler(app.Ping))

		r.Route("/auth", func(r chi.Router) {
			r.Post("/token", NewTokenHandler(app.Users, tokens))
			r.Post("/register", NewRegisterHandler(app.Users, tokens))
			r.Get("/login", NewLoginHandler(tokens))
		})

		r.Route("/commodities", func(r chi.Router) {
			r.Get("/", NewListCommoditiesHandler(app.Commodities))
			r.Post("/", NewCreateCommodityHandler(app.Commodities))

			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", NewRetrieveCommodityHandler(app.Commodities))
				r.Patch("/", NewUpdateCommodityHandler(app.Commodities))
				r.Delete("/", NewDeleteCommodityHandler(app.Commodities))

				r.Get("/studies", NewListStudiesOfCommodityHandler(app.StudyCommodities))
			})
		})

		registerHandlingRoutes(r, "/ethylene", "ethylene", app.Ethylene)
		registerHandlingRoutes(r, "/respiration", "respiration", app.Respiration)
		registerHandlingRoutes(r, "/shelf-life", "shelfLife", app.ShelfLife)
		registerHandlingRoutes(r, "/temperature", "temperature", app.Temperature)

		r.Route("/ref", func(r chi.Router) {
			r.Post("/", NewCreateReferenceHandler(app.References))
			r.Get("/commodity/{commodityId}", NewRetrieveReferencesHandler(app.References))
			r.Delete("/commodity/{commodityId}", NewDeleteReferencesOfCommodityHandler(app.References))
			r.Delete("/{id}", NewDeleteReferenceHandler(app.References))
		})

		r.Route("/studies", func(r chi.Router) {
			r.Get("/", NewListStudiesHandler(app.Studies))
			r.Post("/", NewCreateStudyHandler(app.Studies))

			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", NewRetrieveStudyHandler(app.Studies))
				r.Patch("/", NewUpdateStudyHandler(app.Studies))
				r.Delete("/", NewDeleteStudyHandler(app.Studies))

				r.Get("/commodities", NewListCommoditiesOfStudyHandler(app.StudyCommodities))
				r.Post("/commodities", NewLinkStudyHandler(app.StudyCommodities))
				r.Delete("/commodities/{commodityId}", NewUnlinkStudyHandler(app.StudyCommodities))
			})
		})

		r.Route("/users", func(r chi.Router) {
			r.Get("/", NewListUsersHandler(app.Users))
			r.Post("/", NewCreateUserHandler(app.Users, tokens))

			r.Route("/{username}", func(r chi.Router) {
				r.Get("/", NewRetrieveUserHandler(app.Users))
				r.Patch("/", NewUpdateUserHandler(app.Users))
				r.Delete("/", NewDeleteUserHandler(app.Users))
			})
		})
	})

	return nil
}

func Logger(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			_, ctx, _ = o11y.AddTraceIDToLoggerAndStoreInContext(
				trace.SpanFromContext(ctx),
				logger,
				ctx)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func RequiredContentTypes(validTypes []string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			contentType := r.Header.Get("Content-Type")
			isValidContentType := true

			if len(contentType) > 0 {
				isValidContentType = false

				for _, t := range validTypes {
					if strings.HasPrefix(contentType, t) {
						isValidContentType = true
						break
					}
				}
			}

			if isValidContentType {
				next.ServeHTTP(w, r)
			} else {
				problems.NewUnsupportedMediaType(
					fmt.Sprintf("content type %s is not supported", contentType),
					traceIDFromContext(r.Context()),
				).WriteResponse(w)
			}
		})
	}
}

type userContextKey struct {
	name string
}

var userCtxKey = &userContextKey{"postharvest-user"}

// Authenticate packs the user of a valid bearer token into the context.
// Requests without a valid token continue as anonymous.
func Authenticate(tokens *auth.Tokens) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, found := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")

			if found && tokens != nil {
				claims, err := tokens.Parse(strings.TrimSpace(token))
				if err != nil {
					logging.GetFromContext(r.Context()).Debug("ignoring invalid bearer token", "err", err.Error())
				} else {
					user := auth.User{Username: claims.Username, IsAdmin: claims.IsAdmin}
					r = r.WithContext(context.WithValue(r.Context(), userCtxKey, user))
				}
			}

			next.ServeHTTP(w, r)
		})
	}
}

// UserFromContext returns the authenticated user, or an anonymous one
func UserFromContext(ctx context.Context) auth.User {
	user, ok := ctx.Value(userCtxKey).(auth.User)
	if !ok {
		return auth.User{}
	}
	return user
}

func Authorize(authorizer auth.Authorizer) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			err := authorizer.CheckAccess(ctx, r, UserFromContext(ctx))
			if err != nil {
				traceID := traceIDFromContext(ctx)
				log := logging.GetFromContext(ctx)

				if errors.Is(err, phErrors.ErrUnauthorized) {
					log.Warn("access not granted", "method", r.Method, "path", r.URL.Path, "err", err.Error())
					problems.NewUnauthorized("unauthorized", traceID).WriteResponse(w)
					return
				}

				log.Error("failed to check access", "err", err.Error())
				problems.NewInternalError("failed to check access", traceID).WriteResponse(w)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func traceIDFromContext(ctx context.Context) string {
	sc := trace.SpanFromContext(ctx).SpanContext()
	if sc.HasTraceID() {
		return sc.TraceID().String()
	}
	return ""
}

func startSpan(r *http.Request, name string) (context.Context, trace.Span, string, *slog.Logger) {
	ctx, span := tracer.Start(r.Context(), name)
	traceID, ctx, log := o11y.AddTraceIDToLoggerAndStoreInContext(span, logging.GetFromContext(ctx), ctx)
	return ctx, span, traceID, log
}

func writeJSON(w http.ResponseWriter, code int, body any) {
	b, err := json.Marshal(body)
	if err != nil {
		problems.NewInternalError("failed to encode response", "").WriteResponse(w)
		return
	}

	w.Header().Add("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(b)
}

func reportError(w http.ResponseWriter, log *slog.Logger, err error, traceID, msg string) {
	if phErrors.Kind(err) == nil || errors.Is(err, phErrors.ErrInternal) {
		log.Error(msg, "err", err.Error())
	} else {
		log.Info(msg, "err", err.Error())
	}

	problems.ReportError(w, err, traceID)
}

func decodeBody(r *http.Request, v any) error {
	defer r.Body.Close()

	err := json.NewDecoder(io.LimitReader(r.Body, maxBodySize)).Decode(v)
	if err != nil {
		return phErrors.NewInvalidArgumentError(fmt.Sprintf("unable to decode request payload: %s", err.Error()))
	}

	return nil
}

// intParam reads a numeric url parameter that fits a serial column.
// Anything else can not match a row and is reported as not found.
func intParam(r *http.Request, name string) (int, error) {
	value := chi.URLParam(r, name)

	i, err := strconv.ParseInt(value, 10, 32)
	if err != nil || i <= 0 {
		return 0, phErrors.NewNotFoundError(fmt.Sprintf("no id found: %s", value))
	}

	return int(i), nil
}
