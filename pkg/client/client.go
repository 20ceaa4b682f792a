package client

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/tracing"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/diwise/postharvest/pkg/postharvest/types"
)

type PostharvestClient interface {
	Login(ctx context.Context, username, password string) (string, error)

	Commodities(ctx context.Context) ([]types.Commodity, error)
	Commodity(ctx context.Context, id string) (types.CommodityDetails, error)
	CreateCommodity(ctx context.Context, c types.Commodity) (types.Commodity, error)
	DeleteCommodity(ctx context.Context, id string) error

	CreateEthyleneSensitivity(ctx context.Context, commodityID string, e types.EthyleneSensitivity) (types.EthyleneSensitivity, error)
	CreateRespirationRate(ctx context.Context, commodityID string, rr types.RespirationRate) (types.RespirationRate, error)
	CreateShelfLife(ctx context.Context, commodityID string, sl types.ShelfLife) (types.ShelfLife, error)
	CreateTemperatureRecommendation(ctx context.Context, commodityID string, tr types.TemperatureRecommendation) (types.TemperatureRecommendation, error)
	CreateReference(ctx context.Context, commodityID, source string) (types.Reference, error)

	CreateStudy(ctx context.Context, s types.Study) (types.Study, error)
	LinkStudy(ctx context.Context, studyID int, commodityID string) (types.StudyCommodity, error)
}

// Token makes the client send an already issued bearer token
func Token(token string) func(*phClient) {
	return func(c *phClient) {
		c.token = token
	}
}

func Timeout(timeout time.Duration) func(*phClient) {
	return func(c *phClient) {
		c.httpClient.Timeout = timeout
	}
}

// NewPostharvestClient creates a client for the api at baseURL. A client is
// not meant to be shared across goroutines while Login is in progress.
func NewPostharvestClient(baseURL string, options ...func(*phClient)) PostharvestClient {
	c := &phClient{
		baseURL: baseURL,
		httpClient: http.Client{
			Transport: otelhttp.NewTransport(http.DefaultTransport),
			Timeout:   30 * time.Second,
		},
	}

	for _, option := range options {
		option(c)
	}

	return c
}

const TraceAttributeCommodityID string = "commodity-id"

var tracer = otel.Tracer("postharvest-client")

type phClient struct {
	baseURL    string
	token      string
	httpClient http.Client
}

func (c *phClient) Login(ctx context.Context, username, password string) (string, error) {
	var err error

	ctx, span := tracer.Start(ctx, "login")
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	credentials := map[string]string{"username": username, "password": password}

	token, err := call[string](ctx, c, http.MethodPost, "/auth/token", credentials, "token", http.StatusOK)
	if err != nil {
		return "", err
	}

	c.token = token

	return token, nil
}

func (c *phClient) Commodities(ctx context.Context) ([]types.Commodity, error) {
	var err error

	ctx, span := tracer.Start(ctx, "list-commodities")
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	commodities, err := call[[]types.Commodity](ctx, c, http.MethodGet, "/commodities", nil, "commodities", http.StatusOK)

	return commodities, err
}

func (c *phClient) Commodity(ctx context.Context, id string) (types.CommodityDetails, error) {
	var err error

	ctx, span := tracer.Start(ctx, "retrieve-commodity",
		trace.WithAttributes(attribute.String(TraceAttributeCommodityID, id)),
	)
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	commodity, err := call[types.CommodityDetails](ctx, c, http.MethodGet, "/commodities/"+url.PathEscape(id), nil, "commodity", http.StatusOK)

	return commodity, err
}

func (c *phClient) CreateCommodity(ctx context.Context, commodity types.Commodity) (types.Commodity, error) {
	var err error

	ctx, span := tracer.Start(ctx, "create-commodity")
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	created, err := call[types.Commodity](ctx, c, http.MethodPost, "/commodities", commodity, "commodity", http.StatusCreated)

	return created, err
}

func (c *phClient) DeleteCommodity(ctx context.Context, id string) error {
	var err error

	ctx, span := tracer.Start(ctx, "delete-commodity",
		trace.WithAttributes(attribute.String(TraceAttributeCommodityID, id)),
	)
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	_, err = call[string](ctx, c, http.MethodDelete, "/commodities/"+url.PathEscape(id), nil, "deleted", http.StatusOK)

	return err
}

func (c *phClient) CreateEthyleneSensitivity(ctx context.Context, commodityID string, e types.EthyleneSensitivity) (types.EthyleneSensitivity, error) {
	return createHandling[types.EthyleneSensitivity](ctx, c, "/ethylene", "ethylene", commodityID, e)
}

func (c *phClient) CreateRespirationRate(ctx context.Context, commodityID string, rr types.RespirationRate) (types.RespirationRate, error) {
	return createHandling[types.RespirationRate](ctx, c, "/respiration", "respiration", commodityID, rr)
}

func (c *phClient) CreateShelfLife(ctx context.Context, commodityID string, sl types.ShelfLife) (types.ShelfLife, error) {
	return createHandling[types.ShelfLife](ctx, c, "/shelf-life", "shelfLife", commodityID, sl)
}

func (c *phClient) CreateTemperatureRecommendation(ctx context.Context, commodityID string, tr types.TemperatureRecommendation) (types.TemperatureRecommendation, error) {
	return createHandling[types.TemperatureRecommendation](ctx, c, "/temperature", "temperature", commodityID, tr)
}

func (c *phClient) CreateReference(ctx context.Context, commodityID, source string) (types.Reference, error) {
	return createHandling[types.Reference](ctx, c, "/ref", "reference", commodityID, map[string]any{"source": source})
}

func (c *phClient) CreateStudy(ctx context.Context, s types.Study) (types.Study, error) {
	var err error

	ctx, span := tracer.Start(ctx, "create-study")
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	created, err := call[types.Study](ctx, c, http.MethodPost, "/studies", s, "study", http.StatusCreated)

	return created, err
}

func (c *phClient) LinkStudy(ctx context.Context, studyID int, commodityID string) (types.StudyCommodity, error) {
	var err error

	ctx, span := tracer.Start(ctx, "link-study",
		trace.WithAttributes(attribute.String(TraceAttributeCommodityID, commodityID)),
	)
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	path := "/studies/" + strconv.Itoa(studyID) + "/commodities"
	body := map[string]string{"commodityId": commodityID}

	link, err := call[types.StudyCommodity](ctx, c, http.MethodPost, path, body, "link", http.StatusCreated)

	return link, err
}
