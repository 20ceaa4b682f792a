package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/tracing"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	phErrors "github.com/diwise/postharvest/pkg/postharvest/errors"
)

// call sends body as json and unpacks the field named envelope from the
// response. Responses other than expectedStatus are turned into errors.
func call[T any](ctx context.Context, c *phClient, method, path string, body any, envelope string, expectedStatus int) (T, error) {
	var result T
	var reqBody io.Reader

	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return result, fmt.Errorf("failed to marshal request body: %w", err)
		}
		reqBody = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return result, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Add("Accept", "application/json")
	if body != nil {
		req.Header.Add("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Add("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return result, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return result, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode != expectedStatus {
		err = errorFromResponse(resp.StatusCode, respBody)
		logging.GetFromContext(ctx).Debug("request failed", "method", method, "path", path, "status", resp.StatusCode, "err", err.Error())
		return result, err
	}

	envelopes := map[string]json.RawMessage{}
	if err = json.Unmarshal(respBody, &envelopes); err != nil {
		return result, fmt.Errorf("failed to unmarshal response: %w", err)
	}

	raw, ok := envelopes[envelope]
	if !ok {
		return result, fmt.Errorf("response did not contain %q", envelope)
	}

	if err = json.Unmarshal(raw, &result); err != nil {
		return result, fmt.Errorf("failed to unmarshal %s: %w", envelope, err)
	}

	return result, nil
}

// createHandling posts data on behalf of a commodity. Identity fields of the
// data are left for the server to assign.
func createHandling[T any](ctx context.Context, c *phClient, path, envelope, commodityID string, data any) (T, error) {
	var err error
	var result T

	ctx, span := tracer.Start(ctx, "create-"+envelope,
		trace.WithAttributes(attribute.String(TraceAttributeCommodityID, commodityID)),
	)
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	fields, err := withoutIdentity(data)
	if err != nil {
		return result, err
	}

	body := map[string]any{
		"commodityId": commodityID,
		"data":        fields,
	}

	result, err = call[T](ctx, c, http.MethodPost, path, body, envelope, http.StatusCreated)

	return result, err
}

func withoutIdentity(data any) (map[string]any, error) {
	b, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal data: %w", err)
	}

	fields := map[string]any{}
	if err := json.Unmarshal(b, &fields); err != nil {
		return nil, fmt.Errorf("failed to unmarshal data: %w", err)
	}

	delete(fields, "id")
	delete(fields, "commodityId")

	return fields, nil
}

func errorFromResponse(code int, body []byte) error {
	report := struct {
		Type   string `json:"type"`
		Detail string `json:"detail"`
	}{}

	detail := http.StatusText(code)
	if err := json.Unmarshal(body, &report); err == nil && report.Detail != "" {
		detail = report.Detail
	}

	switch code {
	case http.StatusBadRequest:
		return phErrors.NewInvalidArgumentError(detail)
	case http.StatusUnauthorized:
		return phErrors.NewUnauthorizedError(detail)
	case http.StatusForbidden:
		return phErrors.NewForbiddenError(detail)
	case http.StatusNotFound:
		return phErrors.NewNotFoundError(detail)
	case http.StatusConflict:
		return phErrors.NewAlreadyExistsError(detail)
	}

	return phErrors.NewInternalError(fmt.Sprintf("unexpected response code %d: %s", code, detail), nil)
}
