package repositories

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"

	"github.com/diwise/postharvest/internal/pkg/application/commodityid"
	"github.com/diwise/postharvest/internal/pkg/infrastructure/database"
	phErrors "github.com/diwise/postharvest/pkg/postharvest/errors"
	"github.com/diwise/postharvest/pkg/postharvest/types"
)

var commodityColumns = columns{
	{field: "commodityName", name: "commodity_name", required: true},
	{field: "variety", name: "variety"},
	{field: "scientificName", name: "scientific_name"},
	{field: "coolingMethod", name: "cooling_method"},
	{field: "climacteric", name: "climacteric", kind: boolean},
}

var commodityReturning = "id, " + commodityColumns.selectList()

type Commodities struct {
	db database.Database
}

func NewCommodities(db database.Database) *Commodities {
	return &Commodities{db: db}
}

// Create stores a commodity under an id derived from its name and variety
func (r *Commodities) Create(ctx context.Context, c types.Commodity) (types.Commodity, error) {
	id, err := commodityid.DeriveID(c.CommodityName, c.Variety)
	if err != nil {
		return types.Commodity{}, err
	}

	sql := fmt.Sprintf(
		"INSERT INTO commodities (id, %s) VALUES (%s) RETURNING %s",
		strings.Join(commodityColumns.names(), ", "), placeholders(1, len(commodityColumns)+1), commodityReturning,
	)

	created, err := queryOne[types.Commodity](ctx, r.db, sql,
		id, c.CommodityName, nullable(c.Variety), nullable(c.ScientificName), nullable(c.CoolingMethod), c.Climacteric,
	)
	if err != nil {
		return types.Commodity{}, writeError(err, fmt.Sprintf("failed to create commodity %s", id))
	}

	return created, nil
}

func (r *Commodities) FindAll(ctx context.Context) ([]types.Commodity, error) {
	sql := fmt.Sprintf("SELECT %s FROM commodities ORDER BY commodity_name, id", commodityReturning)

	items, err := queryAll[types.Commodity](ctx, r.db, sql)
	if err != nil {
		return nil, readError(err, "failed to list commodities")
	}

	return items, nil
}

func (r *Commodities) GetByID(ctx context.Context, id string) (types.Commodity, error) {
	return getCommodity(ctx, r.db, id)
}

func getCommodity(ctx context.Context, exec database.Executor, id string) (types.Commodity, error) {
	sql := fmt.Sprintf("SELECT %s FROM commodities WHERE id = $1", commodityReturning)

	c, err := queryOne[types.Commodity](ctx, exec, sql, id)
	if err != nil {
		return c, readError(err, fmt.Sprintf("no commodity: %s", id))
	}

	return c, nil
}

// Get returns a commodity with all of its handling data read from one
// consistent snapshot. Failing to read a dependent kind yields an empty list.
func (r *Commodities) Get(ctx context.Context, id string) (types.CommodityDetails, error) {
	var details types.CommodityDetails

	log := logging.GetFromContext(ctx)

	err := r.db.ReadOnly(ctx, func(ctx context.Context, tx database.Executor) error {
		c, err := getCommodity(ctx, tx, id)
		if err != nil {
			return err
		}

		details = types.CommodityDetails{
			Commodity:                  c,
			EthyleneSensitivity:        dependents(ctx, log, "ethylene sensitivity", id, NewEthyleneSensitivity(tx).GetByCommodity),
			RespirationRate:            dependents(ctx, log, "respiration rate", id, NewRespirationRates(tx).GetByCommodity),
			ShelfLife:                  dependents(ctx, log, "shelf life", id, NewShelfLife(tx).GetByCommodity),
			TemperatureRecommendations: dependents(ctx, log, "temperature recommendations", id, NewTemperatureRecommendations(tx).GetByCommodity),
			References:                 dependents(ctx, log, "references", id, NewReferences(tx).GetByCommodity),
		}

		return nil
	})
	if err != nil {
		return types.CommodityDetails{}, readError(err, fmt.Sprintf("no commodity: %s", id))
	}

	return details, nil
}

func dependents[T any](ctx context.Context, log *slog.Logger, kind, commodityID string, fetch func(context.Context, string) ([]T, error)) []T {
	items, err := fetch(ctx, commodityID)
	if err != nil {
		log.Warn("failed to get dependent data, returning empty list", "kind", kind, "commodity_id", commodityID, "err", err.Error())
		return []T{}
	}
	return items
}

func (r *Commodities) Update(ctx context.Context, id string, changes database.Changes) (types.Commodity, error) {
	changes, err := commodityColumns.coerce(changes)
	if err != nil {
		return types.Commodity{}, err
	}

	update, err := database.CompilePartialUpdate(changes, commodityColumns.columnMap())
	if err != nil {
		return types.Commodity{}, err
	}

	sql := fmt.Sprintf(
		"UPDATE commodities SET %s WHERE id = %s RETURNING %s",
		update.SetClause, update.NextPlaceholder(), commodityReturning,
	)

	updated, err := queryOne[types.Commodity](ctx, r.db, sql, append(update.Values, id)...)
	if err != nil {
		return types.Commodity{}, writeError(err, fmt.Sprintf("no commodity: %s", id))
	}

	return updated, nil
}

// Remove deletes a commodity. Handling data, references and study links
// are removed with it.
func (r *Commodities) Remove(ctx context.Context, id string) error {
	rows, err := r.db.Query(ctx, "DELETE FROM commodities WHERE id = $1 RETURNING id", id)
	if err != nil {
		return writeError(err, fmt.Sprintf("no commodity: %s", id))
	}

	if len(rows) == 0 {
		return phErrors.NewNotFoundError(fmt.Sprintf("no commodity: %s", id))
	}

	return nil
}
