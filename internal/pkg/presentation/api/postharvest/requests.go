package postharvest

import (
	"net/http"
	"strings"

	phErrors "github.com/diwise/postharvest/pkg/postharvest/errors"
	"github.com/diwise/postharvest/pkg/postharvest/types"
)

type createCommodityRequest struct {
	types.Commodity
}

func (r createCommodityRequest) Validate() error {
	if strings.TrimSpace(r.CommodityName) == "" {
		return phErrors.NewInvalidArgumentError("commodityName is required")
	}
	return nil
}

// createHandlingRequest is shared by every kind of handling data and references
type createHandlingRequest struct {
	CommodityID string         `json:"commodityId"`
	Data        map[string]any `json:"data"`
}

func (r createHandlingRequest) Validate() error {
	if r.CommodityID == "" {
		return phErrors.NewInvalidArgumentError("commodityId is required")
	}
	if len(r.Data) == 0 {
		return phErrors.NewInvalidArgumentError("no data")
	}
	return nil
}

type createStudyRequest struct {
	types.Study
}

func (r createStudyRequest) Validate() error {
	if strings.TrimSpace(r.Title) == "" {
		return phErrors.NewInvalidArgumentError("title is required")
	}
	return nil
}

type linkStudyRequest struct {
	CommodityID string `json:"commodityId"`
}

func (r linkStudyRequest) Validate() error {
	if r.CommodityID == "" {
		return phErrors.NewInvalidArgumentError("commodityId is required")
	}
	return nil
}

type tokenRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (r tokenRequest) Validate() error {
	if r.Username == "" || r.Password == "" {
		return phErrors.NewInvalidArgumentError("username and password are required")
	}
	return nil
}

type registerRequest struct {
	types.NewUser
}

func (r registerRequest) Validate() error {
	missing := []string{}

	for _, f := range []struct{ name, value string }{
		{"username", r.Username},
		{"password", r.Password},
		{"firstName", r.FirstName},
		{"lastName", r.LastName},
		{"email", r.Email},
	} {
		if strings.TrimSpace(f.value) == "" {
			missing = append(missing, f.name)
		}
	}

	if len(missing) > 0 {
		return phErrors.NewInvalidArgumentError("missing required fields: " + strings.Join(missing, ", "))
	}

	return nil
}

type validator interface {
	Validate() error
}

func decodeRequest[T validator](r *http.Request) (T, error) {
	var req T
	if err := decodeBody(r, &req); err != nil {
		return req, err
	}
	return req, req.Validate()
}
