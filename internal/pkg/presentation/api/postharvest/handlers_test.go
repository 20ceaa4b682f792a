package postharvest

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/matryer/is"

	"github.com/diwise/postharvest/internal/pkg/application/postharvest"
	"github.com/diwise/postharvest/internal/pkg/infrastructure/database"
	"github.com/diwise/postharvest/internal/pkg/presentation/api/postharvest/auth"
	phErrors "github.com/diwise/postharvest/pkg/postharvest/errors"
	"github.com/diwise/postharvest/pkg/postharvest/types"
)

func TestListCommoditiesIsPublic(t *testing.T) {
	is, ts, mocks := setupTest(t)
	defer ts.Close()

	resp, body := newTestRequest(is, ts, http.MethodGet, "/commodities", "", nil)

	is.Equal(resp.StatusCode, http.StatusOK) // Check status code
	is.True(strings.Contains(body, `"commodities":[{"id":"LET-ROM"`))
	is.Equal(len(mocks.commodities.FindAllCalls()), 1)
}

func TestCreateCommodityRequiresAnAdministrator(t *testing.T) {
	is, ts, mocks := setupTest(t)
	defer ts.Close()

	resp, _ := newTestRequest(is, ts, http.MethodPost, "/commodities", "", strings.NewReader(commodityJSON))
	is.Equal(resp.StatusCode, http.StatusUnauthorized) // anonymous callers should be denied

	resp, _ = newTestRequest(is, ts, http.MethodPost, "/commodities", mocks.userToken, strings.NewReader(commodityJSON))
	is.Equal(resp.StatusCode, http.StatusUnauthorized) // regular users should be denied

	is.Equal(len(mocks.commodities.CreateCalls()), 0)
}

func TestCreateCommodity(t *testing.T) {
	is, ts, mocks := setupTest(t)
	defer ts.Close()

	resp, body := newTestRequest(is, ts, http.MethodPost, "/commodities", mocks.adminToken, strings.NewReader(commodityJSON))

	is.Equal(resp.StatusCode, http.StatusCreated) // Check status code
	is.True(strings.Contains(body, `"commodity":{"id":"LET-ROM"`))
	is.Equal(mocks.commodities.CreateCalls()[0].C.CommodityName, "Lettuce")
	is.True(mocks.commodities.CreateCalls()[0].C.Climacteric)
}

func TestCreateCommodityWithoutNameIsBadRequest(t *testing.T) {
	is, ts, mocks := setupTest(t)
	defer ts.Close()

	resp, body := newTestRequest(is, ts, http.MethodPost, "/commodities", mocks.adminToken, strings.NewReader(`{"variety":"Romaine"}`))

	is.Equal(resp.StatusCode, http.StatusBadRequest) // Check status code
	is.True(strings.Contains(body, "commodityName is required"))
	is.Equal(len(mocks.commodities.CreateCalls()), 0)
}

func TestCreateCommodityWithBadDataIsBadRequest(t *testing.T) {
	is, ts, mocks := setupTest(t)
	defer ts.Close()

	resp, _ := newTestRequest(is, ts, http.MethodPost, "/commodities", mocks.adminToken, strings.NewReader("this is not my json"))

	is.Equal(resp.StatusCode, http.StatusBadRequest) // Check status code
}

func TestWrongContentTypeIsUnsupportedMediaType(t *testing.T) {
	is, ts, mocks := setupTest(t)
	defer ts.Close()

	req, _ := http.NewRequest(http.MethodPost, ts.URL+"/commodities", strings.NewReader(commodityJSON))
	req.Header.Add("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Add("Authorization", "Bearer "+mocks.adminToken)
	resp, err := http.DefaultClient.Do(req)
	is.NoErr(err) // http request failed
	defer resp.Body.Close()

	is.Equal(resp.StatusCode, http.StatusUnsupportedMediaType) // Check status code
}

func TestRetrieveCommodity(t *testing.T) {
	is, ts, _ := setupTest(t)
	defer ts.Close()

	resp, body := newTestRequest(is, ts, http.MethodGet, "/commodities/LET-ROM", "", nil)

	is.Equal(resp.StatusCode, http.StatusOK) // Check status code

	var result struct {
		Commodity types.CommodityDetails `json:"commodity"`
	}
	is.NoErr(json.Unmarshal([]byte(body), &result))
	is.Equal(result.Commodity.ID, "LET-ROM")
	is.Equal(len(result.Commodity.ShelfLife), 1)
	is.Equal(result.Commodity.References, []types.Reference{})
}

func TestRetrieveUnknownCommodityIsNotFound(t *testing.T) {
	is, ts, _ := setupTest(t)
	defer ts.Close()

	resp, body := newTestRequest(is, ts, http.MethodGet, "/commodities/NOPE", "", nil)

	is.Equal(resp.StatusCode, http.StatusNotFound) // Check status code
	is.Equal(resp.Header.Get("Content-Type"), "application/problem+json")
	is.True(strings.Contains(body, "urn:postharvest:errors:ResourceNotFound"))
}

func TestUpdateCommodityKeepsTheOrderOfFields(t *testing.T) {
	is, ts, mocks := setupTest(t)
	defer ts.Close()

	body := `{"variety":"Iceberg","commodityName":"Lettuce","variety":"Romaine"}`
	resp, _ := newTestRequest(is, ts, http.MethodPatch, "/commodities/LET-ROM", mocks.adminToken, strings.NewReader(body))

	is.Equal(resp.StatusCode, http.StatusOK) // Check status code

	changes := mocks.commodities.UpdateCalls()[0].Changes
	is.Equal(changes, database.Changes{
		{Field: "variety", Value: "Romaine"},
		{Field: "commodityName", Value: "Lettuce"},
	})
}

func TestUpdateCommodityWithArrayIsBadRequest(t *testing.T) {
	is, ts, mocks := setupTest(t)
	defer ts.Close()

	resp, _ := newTestRequest(is, ts, http.MethodPatch, "/commodities/LET-ROM", mocks.adminToken, strings.NewReader(`["variety"]`))

	is.Equal(resp.StatusCode, http.StatusBadRequest) // Check status code
	is.Equal(len(mocks.commodities.UpdateCalls()), 0)
}

func TestDeleteCommodity(t *testing.T) {
	is, ts, mocks := setupTest(t)
	defer ts.Close()

	resp, body := newTestRequest(is, ts, http.MethodDelete, "/commodities/LET-ROM", mocks.adminToken, nil)

	is.Equal(resp.StatusCode, http.StatusOK) // Check status code
	is.Equal(body, `{"deleted":"LET-ROM"}`)
}

func TestInternalErrorsAreNotDisclosed(t *testing.T) {
	is, ts, mocks := setupTest(t)
	defer ts.Close()

	mocks.commodities.FindAllFunc = func(ctx context.Context) ([]types.Commodity, error) {
		return nil, errors.New("connection refused by 10.0.0.1")
	}

	resp, body := newTestRequest(is, ts, http.MethodGet, "/commodities", "", nil)

	is.Equal(resp.StatusCode, http.StatusInternalServerError) // Check status code
	is.True(!strings.Contains(body, "10.0.0.1"))
}

func TestCreateHandlingDataAcceptsNumbersForTextFields(t *testing.T) {
	is, ts, mocks := setupTest(t)
	defer ts.Close()

	body := `{"commodityId":"LET-ROM","data":{"minTemp":0,"optimumTemp":"1","rh":"98-100"}}`
	resp, respBody := newTestRequest(is, ts, http.MethodPost, "/temperature", mocks.adminToken, strings.NewReader(body))

	is.Equal(resp.StatusCode, http.StatusCreated) // Check status code
	is.True(strings.Contains(respBody, `"temperature":{"id":7`))

	call := mocks.temperature.CreateCalls()[0]
	is.Equal(call.CommodityID, "LET-ROM")
	is.Equal(call.Data.MinTemp, "0")
	is.Equal(call.Data.RH, "98-100")
}

func TestCreateHandlingDataWithoutCommodityIsBadRequest(t *testing.T) {
	is, ts, mocks := setupTest(t)
	defer ts.Close()

	resp, _ := newTestRequest(is, ts, http.MethodPost, "/temperature", mocks.adminToken, strings.NewReader(`{"data":{"rh":"95"}}`))

	is.Equal(resp.StatusCode, http.StatusBadRequest) // Check status code
	is.Equal(len(mocks.temperature.CreateCalls()), 0)
}

func TestRetrieveHandlingDataOfCommodityWithoutEntriesIsNotFound(t *testing.T) {
	is, ts, mocks := setupTest(t)
	defer ts.Close()

	mocks.temperature.GetByCommodityFunc = func(ctx context.Context, commodityID string) ([]types.TemperatureRecommendation, error) {
		return []types.TemperatureRecommendation{}, nil
	}

	resp, _ := newTestRequest(is, ts, http.MethodGet, "/temperature/commodity/FIG", "", nil)

	is.Equal(resp.StatusCode, http.StatusNotFound) // Check status code
}

func TestRetrieveHandlingDataOfCommodity(t *testing.T) {
	is, ts, _ := setupTest(t)
	defer ts.Close()

	resp, body := newTestRequest(is, ts, http.MethodGet, "/temperature/commodity/LET-ROM", "", nil)

	is.Equal(resp.StatusCode, http.StatusOK) // Check status code
	is.True(strings.HasPrefix(body, `{"temperature":[{"id":7`))
}

func TestNonNumericHandlingIDIsNotFound(t *testing.T) {
	is, ts, mocks := setupTest(t)
	defer ts.Close()

	resp, _ := newTestRequest(is, ts, http.MethodGet, "/temperature/seven", "", nil)

	is.Equal(resp.StatusCode, http.StatusNotFound) // Check status code
	is.Equal(len(mocks.temperature.GetByIDCalls()), 0)
}

func TestHandlingIDOutsideTheSerialRangeIsNotFound(t *testing.T) {
	is, ts, mocks := setupTest(t)
	defer ts.Close()

	for _, id := range []string{"2147483648", "3000000000", "0", "-1"} {
		resp, _ := newTestRequest(is, ts, http.MethodGet, "/temperature/"+id, "", nil)
		is.Equal(resp.StatusCode, http.StatusNotFound) // Check status code
	}

	resp, _ := newTestRequest(is, ts, http.MethodGet, "/temperature/2147483647", "", nil)
	is.Equal(resp.StatusCode, http.StatusOK) // largest serial id is looked up

	is.Equal(len(mocks.temperature.GetByIDCalls()), 1)
	is.Equal(mocks.temperature.GetByIDCalls()[0].ID, 2147483647)
}

func TestUpdateHandlingDataPassesIDAndChanges(t *testing.T) {
	is, ts, mocks := setupTest(t)
	defer ts.Close()

	resp, _ := newTestRequest(is, ts, http.MethodPatch, "/temperature/7", mocks.adminToken, strings.NewReader(`{"rh":95}`))

	is.Equal(resp.StatusCode, http.StatusOK) // Check status code

	call := mocks.temperature.UpdateCalls()[0]
	is.Equal(call.ID, 7)
	is.Equal(call.Changes, database.Changes{{Field: "rh", Value: json.Number("95")}})
}

func TestDeleteHandlingData(t *testing.T) {
	is, ts, mocks := setupTest(t)
	defer ts.Close()

	resp, body := newTestRequest(is, ts, http.MethodDelete, "/temperature/7", mocks.adminToken, nil)

	is.Equal(resp.StatusCode, http.StatusOK) // Check status code
	is.Equal(body, `{"deleted":7}`)
}

func TestTokenIsIssuedForValidCredentials(t *testing.T) {
	is, ts, mocks := setupTest(t)
	defer ts.Close()

	resp, body := newTestRequest(is, ts, http.MethodPost, "/auth/token", "", strings.NewReader(`{"username":"bob","password":"secret"}`))
	is.Equal(resp.StatusCode, http.StatusOK) // Check status code

	var result struct {
		Token string `json:"token"`
	}
	is.NoErr(json.Unmarshal([]byte(body), &result))

	claims, err := mocks.tokens.Parse(result.Token)
	is.NoErr(err)
	is.Equal(claims.Username, "bob")
}

func TestTokenIsDeniedForInvalidCredentials(t *testing.T) {
	is, ts, _ := setupTest(t)
	defer ts.Close()

	resp, body := newTestRequest(is, ts, http.MethodPost, "/auth/token", "", strings.NewReader(`{"username":"bob","password":"guess"}`))

	is.Equal(resp.StatusCode, http.StatusUnauthorized) // Check status code
	is.True(strings.Contains(body, "invalid username/password"))
}

func TestRegisterNeverGrantsAdminRights(t *testing.T) {
	is, ts, mocks := setupTest(t)
	defer ts.Close()

	resp, _ := newTestRequest(is, ts, http.MethodPost, "/auth/register", "", strings.NewReader(registrationJSON))

	is.Equal(resp.StatusCode, http.StatusCreated) // Check status code
	is.Equal(mocks.users.RegisterCalls()[0].U.Username, "carol")
	is.True(!mocks.users.RegisterCalls()[0].U.IsAdmin) // isAdmin should be ignored
}

func TestRegisterWithMissingFieldsIsBadRequest(t *testing.T) {
	is, ts, mocks := setupTest(t)
	defer ts.Close()

	resp, body := newTestRequest(is, ts, http.MethodPost, "/auth/register", "", strings.NewReader(`{"username":"carol","password":"pw"}`))

	is.Equal(resp.StatusCode, http.StatusBadRequest) // Check status code
	is.True(strings.Contains(body, "firstName, lastName, email"))
	is.Equal(len(mocks.users.RegisterCalls()), 0)
}

func TestLoginEchoesTheClaimsOfAValidToken(t *testing.T) {
	is, ts, mocks := setupTest(t)
	defer ts.Close()

	resp, body := newTestRequest(is, ts, http.MethodGet, "/auth/login?token="+mocks.userToken, "", nil)
	is.Equal(resp.StatusCode, http.StatusOK) // Check status code
	is.True(strings.Contains(body, `"username":"bob"`))

	resp, _ = newTestRequest(is, ts, http.MethodGet, "/auth/login?token=garbage", "", nil)
	is.Equal(resp.StatusCode, http.StatusUnauthorized) // Check status code
}

func TestUsersCanOnlyReadTheirOwnAccount(t *testing.T) {
	is, ts, mocks := setupTest(t)
	defer ts.Close()

	resp, _ := newTestRequest(is, ts, http.MethodGet, "/users/bob", mocks.userToken, nil)
	is.Equal(resp.StatusCode, http.StatusOK) // own account

	resp, _ = newTestRequest(is, ts, http.MethodGet, "/users/alice", mocks.userToken, nil)
	is.Equal(resp.StatusCode, http.StatusUnauthorized) // someone else's account

	resp, _ = newTestRequest(is, ts, http.MethodGet, "/users", mocks.userToken, nil)
	is.Equal(resp.StatusCode, http.StatusUnauthorized) // listing requires an administrator

	resp, _ = newTestRequest(is, ts, http.MethodGet, "/users/alice", mocks.adminToken, nil)
	is.Equal(resp.StatusCode, http.StatusOK) // administrators may read any account
}

func TestOnlyAdministratorsMayChangeIsAdmin(t *testing.T) {
	is, ts, mocks := setupTest(t)
	defer ts.Close()

	resp, _ := newTestRequest(is, ts, http.MethodPatch, "/users/bob", mocks.userToken, strings.NewReader(`{"isAdmin":true}`))
	is.Equal(resp.StatusCode, http.StatusUnauthorized) // Check status code
	is.Equal(len(mocks.users.UpdateCalls()), 0)

	resp, _ = newTestRequest(is, ts, http.MethodPatch, "/users/bob", mocks.userToken, strings.NewReader(`{"jobTitle":"buyer"}`))
	is.Equal(resp.StatusCode, http.StatusOK) // other fields may be changed

	resp, _ = newTestRequest(is, ts, http.MethodPatch, "/users/bob", mocks.adminToken, strings.NewReader(`{"isAdmin":true}`))
	is.Equal(resp.StatusCode, http.StatusOK) // Check status code
	is.Equal(len(mocks.users.UpdateCalls()), 2)
}

func TestExpiredTokensAreTreatedAsAnonymous(t *testing.T) {
	is, ts, mocks := setupTest(t)
	defer ts.Close()

	expired, err := auth.NewTokens(testSecret, time.Nanosecond)
	is.NoErr(err)
	token, err := expired.Create(types.User{Username: "admin", IsAdmin: true})
	is.NoErr(err)
	time.Sleep(2 * time.Millisecond)

	resp, _ := newTestRequest(is, ts, http.MethodDelete, "/commodities/LET-ROM", token, nil)

	is.Equal(resp.StatusCode, http.StatusUnauthorized) // Check status code
	is.Equal(len(mocks.commodities.RemoveCalls()), 0)
}

func TestHealth(t *testing.T) {
	is, ts, mocks := setupTest(t)
	defer ts.Close()

	resp, _ := newTestRequest(is, ts, http.MethodGet, "/health", "", nil)
	is.Equal(resp.StatusCode, http.StatusOK) // Check status code

	*mocks.pingErr = errors.New("database is down")

	resp, _ = newTestRequest(is, ts, http.MethodGet, "/health", "", nil)
	is.Equal(resp.StatusCode, http.StatusServiceUnavailable) // Check status code
}

func TestReadChangesRejectsNonObjects(t *testing.T) {
	is := is.New(t)

	for _, body := range []string{`[]`, `"text"`, `42`, `{"a":1`, ``} {
		_, err := readChanges(strings.NewReader(body))
		is.True(errors.Is(err, phErrors.ErrInvalidArgument)) // body should be rejected
	}
}

func TestReadChangesKeepsTheFirstPositionOfRepeatedKeys(t *testing.T) {
	is := is.New(t)

	changes, err := readChanges(strings.NewReader(`{"b":1,"a":{"x":1},"b":null}`))
	is.NoErr(err)

	is.Equal(len(changes), 2)
	is.Equal(changes[0], database.Change{Field: "b", Value: nil})
	is.Equal(changes[1].Field, "a")
}

type testMocks struct {
	commodities *postharvest.CommodityStoreMock
	temperature *postharvest.HandlingStoreMock[types.TemperatureRecommendation]
	users       *postharvest.UserStoreMock
	tokens      *auth.Tokens
	adminToken  string
	userToken   string
	pingErr     *error
}

const testSecret string = "a-secret-used-for-testing"

func newTestRequest(is *is.I, ts *httptest.Server, method, path, token string, body io.Reader) (*http.Response, string) {
	req, _ := http.NewRequest(method, ts.URL+path, body)
	req.Header.Add("Content-Type", "application/json")
	if token != "" {
		req.Header.Add("Authorization", "Bearer "+token)
	}

	resp, err := http.DefaultClient.Do(req)
	is.NoErr(err) // http request failed
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	is.NoErr(err) // failed to read response body

	return resp, string(respBody)
}

func setupTest(t *testing.T) (*is.I, *httptest.Server, *testMocks) {
	is := is.New(t)
	r := chi.NewRouter()
	ts := httptest.NewServer(r)

	lettuce := types.Commodity{ID: "LET-ROM", CommodityName: "Lettuce", Variety: "Romaine"}
	recommendation := types.TemperatureRecommendation{ID: 7, CommodityID: "LET-ROM", MinTemp: "0", RH: "98-100"}

	var pingErr error

	mocks := &testMocks{
		commodities: &postharvest.CommodityStoreMock{
			FindAllFunc: func(ctx context.Context) ([]types.Commodity, error) {
				return []types.Commodity{lettuce}, nil
			},
			CreateFunc: func(ctx context.Context, c types.Commodity) (types.Commodity, error) {
				c.ID = "LET-ROM"
				return c, nil
			},
			GetFunc: func(ctx context.Context, id string) (types.CommodityDetails, error) {
				if id != lettuce.ID {
					return types.CommodityDetails{}, phErrors.NewNotFoundError("commodity not found")
				}
				return types.CommodityDetails{
					Commodity:                  lettuce,
					EthyleneSensitivity:        []types.EthyleneSensitivity{},
					RespirationRate:            []types.RespirationRate{},
					ShelfLife:                  []types.ShelfLife{{ID: 1, CommodityID: id, ShelfLife: "14-21 days"}},
					TemperatureRecommendations: []types.TemperatureRecommendation{recommendation},
					References:                 []types.Reference{},
				}, nil
			},
			UpdateFunc: func(ctx context.Context, id string, changes database.Changes) (types.Commodity, error) {
				return lettuce, nil
			},
			RemoveFunc: func(ctx context.Context, id string) error {
				return nil
			},
		},
		temperature: &postharvest.HandlingStoreMock[types.TemperatureRecommendation]{
			CreateFunc: func(ctx context.Context, commodityID string, data types.TemperatureRecommendation) (types.TemperatureRecommendation, error) {
				data.ID = 7
				data.CommodityID = commodityID
				return data, nil
			},
			GetByCommodityFunc: func(ctx context.Context, commodityID string) ([]types.TemperatureRecommendation, error) {
				return []types.TemperatureRecommendation{recommendation}, nil
			},
			GetByIDFunc: func(ctx context.Context, id int) (types.TemperatureRecommendation, error) {
				return recommendation, nil
			},
			UpdateFunc: func(ctx context.Context, id int, changes database.Changes) (types.TemperatureRecommendation, error) {
				return recommendation, nil
			},
			RemoveFunc: func(ctx context.Context, id int) error {
				return nil
			},
		},
		users: &postharvest.UserStoreMock{
			AuthenticateFunc: func(ctx context.Context, username, password string) (types.User, error) {
				if username != "bob" || password != "secret" {
					return types.User{}, phErrors.NewUnauthorizedError("invalid username/password")
				}
				return types.User{Username: "bob"}, nil
			},
			RegisterFunc: func(ctx context.Context, u types.NewUser) (types.User, error) {
				return u.User, nil
			},
			GetFunc: func(ctx context.Context, username string) (types.User, error) {
				return types.User{Username: username}, nil
			},
			FindAllFunc: func(ctx context.Context) ([]types.User, error) {
				return []types.User{}, nil
			},
			UpdateFunc: func(ctx context.Context, username string, changes database.Changes) (types.User, error) {
				return types.User{Username: username}, nil
			},
		},
		pingErr: &pingErr,
	}

	tokens, err := auth.NewTokens(testSecret, time.Hour)
	is.NoErr(err)
	mocks.tokens = tokens

	mocks.adminToken, err = tokens.Create(types.User{Username: "admin", IsAdmin: true})
	is.NoErr(err)
	mocks.userToken, err = tokens.Create(types.User{Username: "bob"})
	is.NoErr(err)

	app := &postharvest.App{
		Commodities: mocks.commodities,
		Temperature: mocks.temperature,
		Users:       mocks.users,
		Ping: func(ctx context.Context) error {
			return pingErr
		},
	}

	err = RegisterHandlers(context.Background(), r, auth.DefaultPolicies(), app, tokens)
	is.NoErr(err)

	return is, ts, mocks
}

const commodityJSON string = `{
	"commodityName": "Lettuce",
	"variety": "Romaine",
	"coolingMethod": "vacuum",
	"climacteric": true
}`

const registrationJSON string = `{
	"username": "carol",
	"password": "pw",
	"firstName": "Carol",
	"lastName": "Smith",
	"email": "carol@example.com",
	"isAdmin": true
}`
