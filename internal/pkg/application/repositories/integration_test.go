//go:build container
// +build container

package repositories

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/matryer/is"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"golang.org/x/crypto/bcrypt"

	"github.com/diwise/postharvest/internal/pkg/infrastructure/database"
	phErrors "github.com/diwise/postharvest/pkg/postharvest/errors"
	"github.com/diwise/postharvest/pkg/postharvest/types"
)

func setupDatabase(t *testing.T) database.Database {
	t.Helper()

	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        "postgres:16-alpine",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_USER":     "postharvest",
			"POSTGRES_PASSWORD": "postharvest",
			"POSTGRES_DB":       "postharvest",
		},
		WaitingFor: wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2).
			WithStartupTimeout(60 * time.Second),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		t.Fatalf("failed to start postgres container: %v", err)
	}

	t.Cleanup(func() {
		if err := container.Terminate(context.Background()); err != nil {
			t.Logf("failed to terminate postgres container: %v", err)
		}
	})

	host, err := container.Host(ctx)
	if err != nil {
		t.Fatalf("failed to get container host: %v", err)
	}

	port, err := container.MappedPort(ctx, "5432")
	if err != nil {
		t.Fatalf("failed to get mapped port: %v", err)
	}

	db, err := database.Connect(ctx, database.Config{
		Host:         host,
		Port:         port.Port(),
		User:         "postharvest",
		Password:     "postharvest",
		DBName:       "postharvest",
		SSLMode:      "disable",
		QueryTimeout: 5 * time.Second,
	})
	if err != nil {
		t.Fatalf("failed to connect: %v", err)
	}
	t.Cleanup(db.Close)

	if err := database.Bootstrap(ctx, db); err != nil {
		t.Fatalf("failed to bootstrap schema: %v", err)
	}

	// a second run must be a no-op
	if err := database.Bootstrap(ctx, db); err != nil {
		t.Fatalf("failed to rerun bootstrap: %v", err)
	}

	return db
}

func TestRoundTripAgainstPostgres(t *testing.T) {
	is, ctx := is.New(t), context.Background()

	db := setupDatabase(t)

	commodities := NewCommodities(db)

	c, err := commodities.Create(ctx, types.Commodity{CommodityName: "dragonfruit", Climacteric: false})
	is.NoErr(err)
	is.Equal(c.ID, "DRAGON")

	_, err = commodities.Create(ctx, types.Commodity{CommodityName: "dragonfruit"})
	is.True(errors.Is(err, phErrors.ErrNotFound)) // duplicate id is reported as not found

	shelfLife := NewShelfLife(db)
	sl, err := shelfLife.Create(ctx, c.ID, types.ShelfLife{Temperature: "20", ShelfLife: "2 days", Packaging: "box"})
	is.NoErr(err)
	is.True(sl.ID > 0)

	_, err = shelfLife.Create(ctx, "NOPE", types.ShelfLife{ShelfLife: "1 day"})
	is.True(errors.Is(err, phErrors.ErrNotFound))

	updated, err := shelfLife.Update(ctx, sl.ID, database.Changes{{Field: "shelfLife", Value: "3 days"}})
	is.NoErr(err)
	is.Equal(updated.ShelfLife, "3 days")
	is.Equal(updated.Packaging, "box")

	temps := NewTemperatureRecommendations(db)
	_, err = temps.Create(ctx, c.ID, types.TemperatureRecommendation{MinTemp: "5", OptimumTemp: "7"})
	is.NoErr(err)
	_, err = temps.Create(ctx, c.ID, types.TemperatureRecommendation{MinTemp: "2", OptimumTemp: "4"})
	is.NoErr(err)

	refs := NewReferences(db)
	_, err = refs.Create(ctx, c.ID, "Postharvest handbook")
	is.NoErr(err)

	details, err := commodities.Get(ctx, c.ID)
	is.NoErr(err)
	is.Equal(len(details.ShelfLife), 1)
	is.Equal(details.TemperatureRecommendations[0].MinTemp, "2")
	is.Equal(details.References[0].Source, "Postharvest handbook")
	is.Equal(len(details.EthyleneSensitivity), 0)

	studies := NewStudies(db)
	s, err := studies.Create(ctx, types.Study{Title: "Storage of dragonfruit", Date: "2021"})
	is.NoErr(err)

	links := NewStudyCommodities(db)
	_, err = links.Create(ctx, s.ID, c.ID)
	is.NoErr(err)

	ids, err := links.GetByCommodity(ctx, c.ID)
	is.NoErr(err)
	is.Equal(ids, []int{s.ID})

	is.NoErr(commodities.Remove(ctx, c.ID))

	_, err = shelfLife.GetByID(ctx, sl.ID)
	is.True(errors.Is(err, phErrors.ErrNotFound)) // removed along with the commodity

	err = commodities.Remove(ctx, c.ID)
	is.True(errors.Is(err, phErrors.ErrNotFound))
}

func TestFailedDependentDoesNotHideTheOthersAgainstPostgres(t *testing.T) {
	is, ctx := is.New(t), context.Background()

	db := setupDatabase(t)

	commodities := NewCommodities(db)

	c, err := commodities.Create(ctx, types.Commodity{CommodityName: "fig"})
	is.NoErr(err)

	_, err = NewRespirationRates(db).Create(ctx, c.ID, types.RespirationRate{Temperature: "5", RRRate: "10"})
	is.NoErr(err)
	_, err = NewShelfLife(db).Create(ctx, c.ID, types.ShelfLife{ShelfLife: "7 days"})
	is.NoErr(err)
	_, err = NewReferences(db).Create(ctx, c.ID, "Postharvest handbook")
	is.NoErr(err)

	// the first dependent query now fails inside the read transaction
	_, err = db.Exec(ctx, "ALTER TABLE ethylene_sensitivity RENAME TO ethylene_sensitivity_hidden")
	is.NoErr(err)
	t.Cleanup(func() {
		db.Exec(context.Background(), "ALTER TABLE ethylene_sensitivity_hidden RENAME TO ethylene_sensitivity")
	})

	details, err := commodities.Get(ctx, c.ID)
	is.NoErr(err)
	is.Equal(details.ID, "FIG")
	is.Equal(len(details.EthyleneSensitivity), 0)
	is.Equal(len(details.RespirationRate), 1)
	is.Equal(len(details.ShelfLife), 1)
	is.Equal(details.References[0].Source, "Postharvest handbook")
}

func TestSlowStatementDoesNotEndTheReadAgainstPostgres(t *testing.T) {
	is, ctx := is.New(t), context.Background()

	db := setupDatabase(t)

	err := db.ReadOnly(ctx, func(ctx context.Context, exec database.Executor) error {
		_, err := exec.Query(ctx, "SELECT pg_sleep(30)")
		is.True(err != nil) // cancelled by the statement timeout

		rows, err := exec.Query(ctx, "SELECT 1 AS one")
		is.NoErr(err)
		is.Equal(len(rows), 1)

		return nil
	})
	is.NoErr(err)
}

func TestUsersAgainstPostgres(t *testing.T) {
	is, ctx := is.New(t), context.Background()

	users := NewUsers(setupDatabase(t), bcrypt.MinCost)

	nu := types.NewUser{
		User:     types.User{Username: "admin", FirstName: "A", LastName: "Dmin", Email: "admin@example.com", IsAdmin: true},
		Password: "password1",
	}

	_, err := users.Register(ctx, nu)
	is.NoErr(err)

	_, err = users.Register(ctx, nu)
	is.True(errors.Is(err, phErrors.ErrAlreadyExists))

	u, err := users.Authenticate(ctx, "admin", "password1")
	is.NoErr(err)
	is.True(u.IsAdmin)

	_, err = users.Update(ctx, "admin", database.Changes{{Field: "password", Value: "password2"}})
	is.NoErr(err)

	_, err = users.Authenticate(ctx, "admin", "password1")
	is.True(errors.Is(err, phErrors.ErrUnauthorized))
}
