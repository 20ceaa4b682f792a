package repositories

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/matryer/is"
	"golang.org/x/crypto/bcrypt"

	"github.com/diwise/postharvest/internal/pkg/infrastructure/database"
	phErrors "github.com/diwise/postharvest/pkg/postharvest/errors"
	"github.com/diwise/postharvest/pkg/postharvest/types"
)

func TestCreateShelfLife(t *testing.T) {
	is, ctx := is.New(t), context.Background()

	exec := &database.ExecutorMock{
		QueryFunc: func(ctx context.Context, sql string, args ...any) ([]database.Row, error) {
			return []database.Row{{
				"id": int32(7), "commodityId": "DRAGON", "temperature": "20",
				"shelfLife": "2 days", "packaging": nil, "description": "ripe",
			}}, nil
		},
	}

	created, err := NewShelfLife(exec).Create(ctx, "DRAGON", types.ShelfLife{Temperature: "20", ShelfLife: "2 days", Description: "ripe"})
	is.NoErr(err)
	is.Equal(created, types.ShelfLife{ID: 7, CommodityID: "DRAGON", Temperature: "20", ShelfLife: "2 days", Description: "ripe"})

	call := exec.QueryCalls()[0]
	is.True(strings.HasPrefix(call.SQL, "INSERT INTO shelf_life (commodity_id, temperature_celsius, shelf_life, packaging, description) VALUES ($1, $2, $3, $4, $5)"))
	is.True(strings.Contains(call.SQL, `shelf_life AS "shelfLife"`))
	is.Equal(call.Args, []any{"DRAGON", "20", "2 days", nil, "ripe"})
}

func TestCreateForMissingCommodityIsNotFound(t *testing.T) {
	is, ctx := is.New(t), context.Background()

	fkViolation := &pgconn.PgError{Code: "23503"}

	exec := &database.ExecutorMock{
		QueryFunc: func(ctx context.Context, sql string, args ...any) ([]database.Row, error) {
			return nil, fkViolation
		},
	}

	_, err := NewEthyleneSensitivity(exec).Create(ctx, "NOPE", types.EthyleneSensitivity{Temperature: "0"})
	is.True(errors.Is(err, phErrors.ErrNotFound))

	var pgErr *pgconn.PgError
	is.True(errors.As(err, &pgErr)) // the storage error should be kept
	is.Equal(pgErr.Code, "23503")
}

func TestGetByCommodityReturnsEmptySlice(t *testing.T) {
	is, ctx := is.New(t), context.Background()

	exec := &database.ExecutorMock{
		QueryFunc: func(ctx context.Context, sql string, args ...any) ([]database.Row, error) {
			return []database.Row{}, nil
		},
	}

	items, err := NewTemperatureRecommendations(exec).GetByCommodity(ctx, "DRAGON")
	is.NoErr(err)
	is.True(items != nil)
	is.Equal(len(items), 0)
	is.True(strings.HasSuffix(exec.QueryCalls()[0].SQL, "ORDER BY min_temp_celsius, id"))
}

func TestGetByIDWithoutRowIsNotFound(t *testing.T) {
	is, ctx := is.New(t), context.Background()

	exec := &database.ExecutorMock{
		QueryFunc: func(ctx context.Context, sql string, args ...any) ([]database.Row, error) {
			return nil, nil
		},
	}

	_, err := NewRespirationRates(exec).GetByID(ctx, 42)
	is.True(errors.Is(err, phErrors.ErrNotFound))
}

func TestUpdateRespirationRate(t *testing.T) {
	is, ctx := is.New(t), context.Background()

	exec := &database.ExecutorMock{
		QueryFunc: func(ctx context.Context, sql string, args ...any) ([]database.Row, error) {
			return []database.Row{{"id": int32(3), "commodityId": "LET-ROM", "temperature": "5", "rrRate": "12", "rrClass": "low"}}, nil
		},
	}

	updated, err := NewRespirationRates(exec).Update(ctx, 3, database.Changes{
		{Field: "rrRate", Value: "12"},
		{Field: "temperature", Value: 5.0},
	})
	is.NoErr(err)
	is.Equal(updated.RRRate, "12")

	call := exec.QueryCalls()[0]
	is.True(strings.HasPrefix(call.SQL, `UPDATE respiration_rates SET "rr_mg_kg_hr"=$1, "temperature_celsius"=$2 WHERE id = $3 RETURNING`))
	is.Equal(call.Args, []any{"12", "5", 3})
}

func TestUpdateRejectsUnknownFieldBeforeQuerying(t *testing.T) {
	is, ctx := is.New(t), context.Background()

	exec := &database.ExecutorMock{}

	_, err := NewShelfLife(exec).Update(ctx, 1, database.Changes{{Field: "id; DROP TABLE shelf_life", Value: "x"}})
	is.True(errors.Is(err, phErrors.ErrInvalidArgument))

	_, err = NewShelfLife(exec).Update(ctx, 1, database.Changes{})
	is.True(errors.Is(err, phErrors.ErrInvalidArgument))

	is.Equal(len(exec.QueryCalls()), 0)
}

func TestUpdateMissingRowIsNotFound(t *testing.T) {
	is, ctx := is.New(t), context.Background()

	exec := &database.ExecutorMock{
		QueryFunc: func(ctx context.Context, sql string, args ...any) ([]database.Row, error) {
			return []database.Row{}, nil
		},
	}

	_, err := NewEthyleneSensitivity(exec).Update(ctx, 99, database.Changes{{Field: "c2h4Class", Value: "high"}})
	is.True(errors.Is(err, phErrors.ErrNotFound))
}

func TestRemoveMissingIsNotFound(t *testing.T) {
	is, ctx := is.New(t), context.Background()

	exec := &database.ExecutorMock{
		QueryFunc: func(ctx context.Context, sql string, args ...any) ([]database.Row, error) {
			return []database.Row{}, nil
		},
	}

	err := NewShelfLife(exec).Remove(ctx, 1000)
	is.True(errors.Is(err, phErrors.ErrNotFound))

	_, err = NewReferences(exec).RemoveByCommodity(ctx, "DRAGON")
	is.True(errors.Is(err, phErrors.ErrNotFound))
}

func TestUnclassifiedStorageErrorIsInternal(t *testing.T) {
	is, ctx := is.New(t), context.Background()

	exec := &database.ExecutorMock{
		QueryFunc: func(ctx context.Context, sql string, args ...any) ([]database.Row, error) {
			return nil, context.DeadlineExceeded
		},
	}

	_, err := NewStudies(exec).FindAll(ctx)
	is.True(errors.Is(err, phErrors.ErrInternal))
	is.True(errors.Is(err, context.DeadlineExceeded))
}

func TestCreateCommodityDerivesID(t *testing.T) {
	is, ctx := is.New(t), context.Background()

	db := &database.DatabaseMock{
		QueryFunc: func(ctx context.Context, sql string, args ...any) ([]database.Row, error) {
			return []database.Row{{
				"id": args[0], "commodityName": args[1], "variety": args[2],
				"scientificName": nil, "coolingMethod": nil, "climacteric": args[5],
			}}, nil
		},
	}

	c, err := NewCommodities(db).Create(ctx, types.Commodity{CommodityName: "lettuce", Variety: "romaine"})
	is.NoErr(err)
	is.Equal(c.ID, "LET-ROM")
	is.Equal(c.Variety, "romaine")
	is.Equal(c.Climacteric, false)
}

func TestUpdateCommodityRequiresBooleanClimacteric(t *testing.T) {
	is, ctx := is.New(t), context.Background()

	db := &database.DatabaseMock{}

	_, err := NewCommodities(db).Update(ctx, "DRAGON", database.Changes{{Field: "climacteric", Value: "yes"}})
	is.True(errors.Is(err, phErrors.ErrInvalidArgument))

	_, err = NewCommodities(db).Update(ctx, "DRAGON", database.Changes{{Field: "commodityName", Value: nil}})
	is.True(errors.Is(err, phErrors.ErrInvalidArgument))
}

func aggregateDatabase(exec database.Executor) *database.DatabaseMock {
	return &database.DatabaseMock{
		ReadOnlyFunc: func(ctx context.Context, fn func(ctx context.Context, exec database.Executor) error) error {
			return fn(ctx, exec)
		},
	}
}

func TestGetCommodityWithDependents(t *testing.T) {
	is, ctx := is.New(t), context.Background()

	exec := &database.ExecutorMock{
		QueryFunc: func(ctx context.Context, sql string, args ...any) ([]database.Row, error) {
			switch {
			case strings.Contains(sql, "FROM commodities"):
				return []database.Row{{"id": "DRAGON", "commodityName": "dragonfruit", "climacteric": false}}, nil
			case strings.Contains(sql, "FROM shelf_life"):
				return []database.Row{{"id": int32(1), "commodityId": "DRAGON", "shelfLife": "2 days"}}, nil
			case strings.Contains(sql, "FROM refs"):
				return []database.Row{{"id": int32(4), "commodityId": "DRAGON", "source": "handbook"}}, nil
			}
			return []database.Row{}, nil
		},
	}

	db := aggregateDatabase(exec)

	details, err := NewCommodities(db).Get(ctx, "DRAGON")
	is.NoErr(err)
	is.Equal(details.CommodityName, "dragonfruit")
	is.Equal(len(details.ShelfLife), 1)
	is.Equal(details.References[0].Source, "handbook")
	is.True(details.EthyleneSensitivity != nil)
	is.Equal(len(details.RespirationRate), 0)
	is.Equal(len(db.ReadOnlyCalls()), 1)
	is.Equal(len(exec.QueryCalls()), 6)
}

func TestGetCommodityReplacesFailedDependentsWithEmptyLists(t *testing.T) {
	is, ctx := is.New(t), context.Background()

	exec := &database.ExecutorMock{
		QueryFunc: func(ctx context.Context, sql string, args ...any) ([]database.Row, error) {
			if strings.Contains(sql, "FROM commodities") {
				return []database.Row{{"id": "DRAGON", "commodityName": "dragonfruit", "climacteric": true}}, nil
			}
			return nil, errors.New("relation does not exist")
		},
	}

	details, err := NewCommodities(aggregateDatabase(exec)).Get(ctx, "DRAGON")
	is.NoErr(err)
	is.Equal(details.ID, "DRAGON")
	is.True(details.Climacteric)
	is.Equal(details.EthyleneSensitivity, []types.EthyleneSensitivity{})
	is.Equal(details.RespirationRate, []types.RespirationRate{})
	is.Equal(details.ShelfLife, []types.ShelfLife{})
	is.Equal(details.TemperatureRecommendations, []types.TemperatureRecommendation{})
	is.Equal(details.References, []types.Reference{})
}

func TestGetMissingCommodityIsNotFound(t *testing.T) {
	is, ctx := is.New(t), context.Background()

	exec := &database.ExecutorMock{
		QueryFunc: func(ctx context.Context, sql string, args ...any) ([]database.Row, error) {
			return []database.Row{}, nil
		},
	}

	_, err := NewCommodities(aggregateDatabase(exec)).Get(ctx, "NOPE")
	is.True(errors.Is(err, phErrors.ErrNotFound))
	is.Equal(len(exec.QueryCalls()), 1) // dependents are not read
}

func TestCreateStudyRequiresTitle(t *testing.T) {
	is, ctx := is.New(t), context.Background()

	_, err := NewStudies(&database.ExecutorMock{}).Create(ctx, types.Study{Source: "somewhere"})
	is.True(errors.Is(err, phErrors.ErrInvalidArgument))
}

func TestStudyLinks(t *testing.T) {
	is, ctx := is.New(t), context.Background()

	exec := &database.ExecutorMock{
		QueryFunc: func(ctx context.Context, sql string, args ...any) ([]database.Row, error) {
			if strings.Contains(sql, "WHERE study_id") {
				return []database.Row{{"commodity_id": "DRAGON"}, {"commodity_id": "LET-ROM"}}, nil
			}
			return []database.Row{{"studyId": int32(1), "commodityId": "DRAGON"}, {"studyId": int32(5), "commodityId": "DRAGON"}}, nil
		},
	}

	links := NewStudyCommodities(exec)

	commodities, err := links.GetByStudy(ctx, 1)
	is.NoErr(err)
	is.Equal(commodities, []string{"DRAGON", "LET-ROM"})

	studies, err := links.GetByCommodity(ctx, "DRAGON")
	is.NoErr(err)
	is.Equal(studies, []int{1, 5})

	_, err = links.Create(ctx, 0, "DRAGON")
	is.True(errors.Is(err, phErrors.ErrInvalidArgument))
}

func TestRegisterHashesPassword(t *testing.T) {
	is, ctx := is.New(t), context.Background()

	exec := &database.ExecutorMock{
		QueryFunc: func(ctx context.Context, sql string, args ...any) ([]database.Row, error) {
			return []database.Row{{"username": args[0], "firstName": args[2], "lastName": args[3], "email": args[4], "isAdmin": args[6]}}, nil
		},
	}

	u, err := NewUsers(exec, bcrypt.MinCost).Register(ctx, types.NewUser{
		User:     types.User{Username: "u1", FirstName: "U", LastName: "One", Email: "u1@example.com"},
		Password: "password1",
	})
	is.NoErr(err)
	is.Equal(u.Username, "u1")

	stored := exec.QueryCalls()[0].Args[1].(string)
	is.True(stored != "password1")
	is.NoErr(bcrypt.CompareHashAndPassword([]byte(stored), []byte("password1")))
}

func TestRegisterDuplicateUsernameAlreadyExists(t *testing.T) {
	is, ctx := is.New(t), context.Background()

	exec := &database.ExecutorMock{
		QueryFunc: func(ctx context.Context, sql string, args ...any) ([]database.Row, error) {
			return nil, &pgconn.PgError{Code: "23505"}
		},
	}

	_, err := NewUsers(exec, bcrypt.MinCost).Register(ctx, types.NewUser{
		User:     types.User{Username: "u1", FirstName: "U", LastName: "One", Email: "u1@example.com"},
		Password: "password1",
	})
	is.True(errors.Is(err, phErrors.ErrAlreadyExists))
}

func TestAuthenticate(t *testing.T) {
	is, ctx := is.New(t), context.Background()

	hash, _ := bcrypt.GenerateFromPassword([]byte("password1"), bcrypt.MinCost)

	exec := &database.ExecutorMock{
		QueryFunc: func(ctx context.Context, sql string, args ...any) ([]database.Row, error) {
			if args[0] != "u1" {
				return []database.Row{}, nil
			}
			return []database.Row{{"password": string(hash), "username": "u1", "isAdmin": true}}, nil
		},
	}

	users := NewUsers(exec, bcrypt.MinCost)

	u, err := users.Authenticate(ctx, "u1", "password1")
	is.NoErr(err)
	is.True(u.IsAdmin)

	_, err = users.Authenticate(ctx, "u1", "wrong")
	is.True(errors.Is(err, phErrors.ErrUnauthorized))

	_, err = users.Authenticate(ctx, "nobody", "password1")
	is.True(errors.Is(err, phErrors.ErrUnauthorized))
}

func TestUpdateUserRehashesPassword(t *testing.T) {
	is, ctx := is.New(t), context.Background()

	exec := &database.ExecutorMock{
		QueryFunc: func(ctx context.Context, sql string, args ...any) ([]database.Row, error) {
			return []database.Row{{"username": "u1", "firstName": "New"}}, nil
		},
	}

	_, err := NewUsers(exec, bcrypt.MinCost).Update(ctx, "u1", database.Changes{
		{Field: "firstName", Value: "New"},
		{Field: "password", Value: "secret"},
	})
	is.NoErr(err)

	call := exec.QueryCalls()[0]
	is.True(strings.HasPrefix(call.SQL, `UPDATE users SET "first_name"=$1, "password"=$2 WHERE username = $3`))
	is.NoErr(bcrypt.CompareHashAndPassword([]byte(call.Args[1].(string)), []byte("secret")))
	is.Equal(call.Args[2], "u1")
}
