package problems

import (
	"encoding/json"
	"errors"
	"net/http"

	phErrors "github.com/diwise/postharvest/pkg/postharvest/errors"
)

// ProblemDetails stores details about a certain problem according to RFC7807
// See https://tools.ietf.org/html/rfc7807
type ProblemDetails interface {
	ContentType() string
	Type() string
	Title() string
	Detail() string
	ResponseCode() int
	MarshalJSON() ([]byte, error)
	WriteResponse(w http.ResponseWriter)
}

// ProblemDetailsImpl is an implementation of the ProblemDetails interface
type ProblemDetailsImpl struct {
	typ     string
	title   string
	detail  string
	code    int
	traceID string
}

const (
	// ProblemReportContentType as required by https://tools.ietf.org/html/rfc7807
	ProblemReportContentType string = "application/problem+json"

	typePrefix string = "urn:postharvest:errors:"
)

func newProblem(name, title, detail string, code int, traceID string) *ProblemDetailsImpl {
	return &ProblemDetailsImpl{
		typ:     typePrefix + name,
		title:   title,
		detail:  detail,
		code:    code,
		traceID: traceID,
	}
}

func NewBadRequestData(detail, traceID string) ProblemDetails {
	return newProblem("BadRequestData", "Bad Request Data", detail, http.StatusBadRequest, traceID)
}

func NewUnauthorized(detail, traceID string) ProblemDetails {
	return newProblem("Unauthorized", "Unauthorized", detail, http.StatusUnauthorized, traceID)
}

func NewForbidden(detail, traceID string) ProblemDetails {
	return newProblem("Forbidden", "Forbidden", detail, http.StatusForbidden, traceID)
}

func NewNotFound(detail, traceID string) ProblemDetails {
	return newProblem("ResourceNotFound", "Not Found", detail, http.StatusNotFound, traceID)
}

func NewAlreadyExists(detail, traceID string) ProblemDetails {
	return newProblem("AlreadyExists", "Already Exists", detail, http.StatusConflict, traceID)
}

func NewUnsupportedMediaType(detail, traceID string) ProblemDetails {
	return newProblem("UnsupportedMediaType", "Unsupported Media Type", detail, http.StatusUnsupportedMediaType, traceID)
}

func NewInternalError(detail, traceID string) ProblemDetails {
	return newProblem("InternalError", "Internal Error", detail, http.StatusInternalServerError, traceID)
}

// FromError picks the problem that matches the kind of err. Details of
// internal errors are not disclosed.
func FromError(err error, traceID string) ProblemDetails {
	switch {
	case errors.Is(err, phErrors.ErrInvalidArgument):
		return NewBadRequestData(err.Error(), traceID)
	case errors.Is(err, phErrors.ErrUnauthorized):
		return NewUnauthorized(err.Error(), traceID)
	case errors.Is(err, phErrors.ErrForbidden):
		return NewForbidden(err.Error(), traceID)
	case errors.Is(err, phErrors.ErrNotFound):
		return NewNotFound(err.Error(), traceID)
	case errors.Is(err, phErrors.ErrAlreadyExists):
		return NewAlreadyExists(err.Error(), traceID)
	}

	return NewInternalError("an internal error occurred", traceID)
}

// ReportError writes the problem matching err to w
func ReportError(w http.ResponseWriter, err error, traceID string) {
	FromError(err, traceID).WriteResponse(w)
}

func (p *ProblemDetailsImpl) ContentType() string {
	return ProblemReportContentType
}

func (p *ProblemDetailsImpl) Type() string   { return p.typ }
func (p *ProblemDetailsImpl) Title() string  { return p.title }
func (p *ProblemDetailsImpl) Detail() string { return p.detail }

// MarshalJSON is called when a ProblemDetailsImpl instance should be serialized to JSON
func (p *ProblemDetailsImpl) MarshalJSON() ([]byte, error) {
	var traceID *string

	if p.traceID != "" {
		traceID = &p.traceID
	}

	return json.Marshal(struct {
		Type    string  `json:"type"`
		Title   string  `json:"title"`
		Status  int     `json:"status"`
		Detail  string  `json:"detail"`
		TraceID *string `json:"traceID,omitempty"`
	}{
		Type:    p.typ,
		Title:   p.title,
		Status:  p.ResponseCode(),
		Detail:  p.detail,
		TraceID: traceID,
	})
}

// ResponseCode returns the HTTP response code to be used when returning a specific problem
func (p *ProblemDetailsImpl) ResponseCode() int {
	if p.code != 0 {
		return p.code
	}

	return http.StatusBadRequest
}

// WriteResponse writes the contents of this instance to a http.ResponseWriter
func (p *ProblemDetailsImpl) WriteResponse(w http.ResponseWriter) {
	w.Header().Add("Content-Type", p.ContentType())
	w.Header().Add("Content-Language", "en")
	w.WriteHeader(p.ResponseCode())

	pdbytes, err := json.MarshalIndent(p, "", "  ")
	if err == nil {
		w.Write(pdbytes)
	}
}
