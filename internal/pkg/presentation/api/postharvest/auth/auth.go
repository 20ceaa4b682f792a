package auth

import (
	"bytes"
	"context"
	_ "embed"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/tracing"
	"github.com/open-policy-agent/opa/rego"
	"go.opentelemetry.io/otel"

	phErrors "github.com/diwise/postharvest/pkg/postharvest/errors"
)

var tracer = otel.Tracer("postharvest/api/authz")

//go:embed policies/authz.rego
var defaultPolicies []byte

// DefaultPolicies returns the policies that are built into the service
func DefaultPolicies() io.Reader {
	return bytes.NewReader(defaultPolicies)
}

type User struct {
	Username string `json:"username"`
	IsAdmin  bool   `json:"isAdmin"`
}

type Authorizer interface {
	CheckAccess(ctx context.Context, r *http.Request, user User) error
}

type authorizerImpl struct {
	preparedQuery rego.PreparedEvalQuery
}

func NewAuthorizer(ctx context.Context, policies io.Reader) (Authorizer, error) {
	module, err := io.ReadAll(policies)
	if err != nil {
		return nil, fmt.Errorf("unable to read authz policies: %s", err.Error())
	}

	impl := &authorizerImpl{}

	impl.preparedQuery, err = rego.New(
		rego.Query("x = data.postharvest.authz.allow"),
		rego.Module("authz.rego", string(module)),
	).PrepareForEval(ctx)

	if err != nil {
		return nil, err
	}

	return impl, nil
}

func (a *authorizerImpl) CheckAccess(ctx context.Context, r *http.Request, user User) error {
	var err error

	_, span := tracer.Start(ctx, "check-auth")
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	path := strings.Split(strings.Trim(r.URL.Path, "/"), "/")

	input := map[string]any{
		"method": r.Method,
		"path":   path,
		"user": map[string]any{
			"username": user.Username,
			"isAdmin":  user.IsAdmin,
		},
	}

	results, err := a.preparedQuery.Eval(ctx, rego.EvalInput(input))
	if err != nil {
		err = fmt.Errorf("opa eval failed: %w", err)
		return err
	}

	if len(results) == 0 {
		err = phErrors.NewUnauthorizedError("unauthorized: opa query could not be satisfied")
		return err
	}

	allowed, ok := results[0].Bindings["x"].(bool)
	if !ok {
		err = fmt.Errorf("opa error: unexpected result type")
		return err
	}

	if !allowed {
		err = phErrors.NewUnauthorizedError("unauthorized")
		return err
	}

	return nil
}
