package client

import (
	"context"
	"errors"
	"net/http"
	"testing"

	testutils "github.com/diwise/service-chassis/pkg/test/http"
	"github.com/diwise/service-chassis/pkg/test/http/expects"
	"github.com/diwise/service-chassis/pkg/test/http/response"
	"github.com/matryer/is"

	phErrors "github.com/diwise/postharvest/pkg/postharvest/errors"
	"github.com/diwise/postharvest/pkg/postharvest/types"
)

var Expects = testutils.Expects
var Returns = testutils.Returns
var method = expects.RequestMethod
var path = expects.RequestPath
var body = expects.RequestBody
var bodyContaining = expects.RequestBodyContaining

func TestLoginStoresTheToken(t *testing.T) {
	is := is.New(t)

	s := testutils.NewMockServiceThat(
		Expects(
			is,
			method(http.MethodPost),
			path("/auth/token"),
			body(`{"password":"secret","username":"bob"}`),
		),
		Returns(
			response.ContentType("application/json"),
			response.Code(http.StatusOK),
			response.Body([]byte(`{"token":"abc.def.ghi"}`)),
		),
	)
	defer s.Close()

	c := NewPostharvestClient(s.URL())

	token, err := c.Login(context.Background(), "bob", "secret")
	is.NoErr(err)
	is.Equal(token, "abc.def.ghi")
	is.Equal(c.(*phClient).token, "abc.def.ghi")
}

func TestLoginWithBadCredentials(t *testing.T) {
	is := is.New(t)

	s := testutils.NewMockServiceThat(
		Expects(is, expects.AnyInput()),
		Returns(
			response.ContentType("application/problem+json"),
			response.Code(http.StatusUnauthorized),
			response.Body([]byte(`{"type":"urn:postharvest:errors:Unauthorized","title":"Unauthorized","status":401,"detail":"invalid username/password"}`)),
		),
	)
	defer s.Close()

	c := NewPostharvestClient(s.URL())

	_, err := c.Login(context.Background(), "bob", "guess")
	is.True(errors.Is(err, phErrors.ErrUnauthorized))
	is.Equal(err.Error(), "invalid username/password")
}

func TestCreateCommodity(t *testing.T) {
	is := is.New(t)

	s := testutils.NewMockServiceThat(
		Expects(
			is,
			method(http.MethodPost),
			path("/commodities"),
			bodyContaining(`"commodityName":"Lettuce"`),
		),
		Returns(
			response.ContentType("application/json"),
			response.Code(http.StatusCreated),
			response.Body([]byte(`{"commodity":{"id":"LET-ROM","commodityName":"Lettuce","variety":"Romaine","climacteric":false}}`)),
		),
	)
	defer s.Close()

	c := NewPostharvestClient(s.URL(), Token("abc"))

	created, err := c.CreateCommodity(context.Background(), types.Commodity{CommodityName: "Lettuce", Variety: "Romaine"})
	is.NoErr(err)
	is.Equal(created.ID, "LET-ROM")
}

func TestCommodityNotFound(t *testing.T) {
	is := is.New(t)

	s := testutils.NewMockServiceThat(
		Expects(is, method(http.MethodGet), path("/commodities/NOPE")),
		Returns(
			response.ContentType("application/problem+json"),
			response.Code(http.StatusNotFound),
			response.Body([]byte(`{"type":"urn:postharvest:errors:ResourceNotFound","detail":"no commodity found: NOPE"}`)),
		),
	)
	defer s.Close()

	c := NewPostharvestClient(s.URL())

	_, err := c.Commodity(context.Background(), "NOPE")
	is.True(errors.Is(err, phErrors.ErrNotFound))
}

func TestCommodities(t *testing.T) {
	is := is.New(t)

	s := testutils.NewMockServiceThat(
		Expects(is, method(http.MethodGet), path("/commodities")),
		Returns(
			response.ContentType("application/json"),
			response.Code(http.StatusOK),
			response.Body([]byte(`{"commodities":[{"id":"FIG","commodityName":"Fig"},{"id":"LET-ROM","commodityName":"Lettuce"}]}`)),
		),
	)
	defer s.Close()

	c := NewPostharvestClient(s.URL())

	commodities, err := c.Commodities(context.Background())
	is.NoErr(err)
	is.Equal(len(commodities), 2)
	is.Equal(commodities[1].CommodityName, "Lettuce")
}

func TestCreateHandlingDataLeavesIdentityToTheServer(t *testing.T) {
	is := is.New(t)

	s := testutils.NewMockServiceThat(
		Expects(
			is,
			method(http.MethodPost),
			path("/shelf-life"),
			body(`{"commodityId":"LET-ROM","data":{"description":"","packaging":"MAP","shelfLife":"21 days","temperature":"0"}}`),
		),
		Returns(
			response.ContentType("application/json"),
			response.Code(http.StatusCreated),
			response.Body([]byte(`{"shelfLife":{"id":3,"commodityId":"LET-ROM","temperature":"0","shelfLife":"21 days","packaging":"MAP"}}`)),
		),
	)
	defer s.Close()

	c := NewPostharvestClient(s.URL(), Token("abc"))

	created, err := c.CreateShelfLife(context.Background(), "LET-ROM", types.ShelfLife{ID: 99, Temperature: "0", ShelfLife: "21 days", Packaging: "MAP"})
	is.NoErr(err)
	is.Equal(created.ID, 3)
	is.Equal(created.CommodityID, "LET-ROM")
}

func TestCreateReference(t *testing.T) {
	is := is.New(t)

	s := testutils.NewMockServiceThat(
		Expects(
			is,
			method(http.MethodPost),
			path("/ref"),
			body(`{"commodityId":"FIG","data":{"source":"USDA Handbook 66"}}`),
		),
		Returns(
			response.ContentType("application/json"),
			response.Code(http.StatusCreated),
			response.Body([]byte(`{"reference":{"id":1,"commodityId":"FIG","source":"USDA Handbook 66"}}`)),
		),
	)
	defer s.Close()

	c := NewPostharvestClient(s.URL(), Token("abc"))

	ref, err := c.CreateReference(context.Background(), "FIG", "USDA Handbook 66")
	is.NoErr(err)
	is.Equal(ref.Source, "USDA Handbook 66")
}

func TestLinkStudy(t *testing.T) {
	is := is.New(t)

	s := testutils.NewMockServiceThat(
		Expects(
			is,
			method(http.MethodPost),
			path("/studies/4/commodities"),
			body(`{"commodityId":"FIG"}`),
		),
		Returns(
			response.ContentType("application/json"),
			response.Code(http.StatusCreated),
			response.Body([]byte(`{"link":{"studyId":4,"commodityId":"FIG"}}`)),
		),
	)
	defer s.Close()

	c := NewPostharvestClient(s.URL(), Token("abc"))

	link, err := c.LinkStudy(context.Background(), 4, "FIG")
	is.NoErr(err)
	is.Equal(link, types.StudyCommodity{StudyID: 4, CommodityID: "FIG"})
}

func TestUnexpectedStatusIsAnInternalError(t *testing.T) {
	is := is.New(t)

	s := testutils.NewMockServiceThat(
		Expects(is, expects.AnyInput()),
		Returns(response.Code(http.StatusBadGateway)),
	)
	defer s.Close()

	c := NewPostharvestClient(s.URL())

	err := c.DeleteCommodity(context.Background(), "FIG")
	is.True(errors.Is(err, phErrors.ErrInternal))
}
