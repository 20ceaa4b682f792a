package repositories

import (
	"context"
	"fmt"
	"strings"

	"github.com/diwise/postharvest/internal/pkg/infrastructure/database"
	phErrors "github.com/diwise/postharvest/pkg/postharvest/errors"
	"github.com/diwise/postharvest/pkg/postharvest/types"
)

// handlingTable describes a table of per commodity handling data keyed by a
// serial id.
type handlingTable[T any] struct {
	name    string
	table   string
	data    columns
	values  func(T) []any
	orderBy string
}

var commodityIDColumn = column{field: "commodityId", name: "commodity_id", required: true}

func (h handlingTable[T]) returning() string {
	return "id, " + columns{commodityIDColumn}.selectList() + ", " + h.data.selectList()
}

func (h handlingTable[T]) updatable() columns {
	return append(columns{commodityIDColumn}, h.data...)
}

// Handling stores one kind of handling data
type Handling[T any] struct {
	exec database.Executor
	def  handlingTable[T]
}

func (r *Handling[T]) Create(ctx context.Context, commodityID string, data T) (T, error) {
	var zero T

	if commodityID == "" {
		return zero, phErrors.NewInvalidArgumentError("commodityId is required")
	}

	sql := fmt.Sprintf(
		"INSERT INTO %s (commodity_id, %s) VALUES (%s) RETURNING %s",
		r.def.table, strings.Join(r.def.data.names(), ", "), placeholders(1, len(r.def.data)+1), r.def.returning(),
	)

	args := append([]any{commodityID}, r.def.values(data)...)

	created, err := queryOne[T](ctx, r.exec, sql, args...)
	if err != nil {
		return zero, writeError(err, fmt.Sprintf("commodity id %s not found", commodityID))
	}

	return created, nil
}

func (r *Handling[T]) GetByID(ctx context.Context, id int) (T, error) {
	sql := fmt.Sprintf("SELECT %s FROM %s WHERE id = $1", r.def.returning(), r.def.table)

	item, err := queryOne[T](ctx, r.exec, sql, id)
	if err != nil {
		return item, readError(err, fmt.Sprintf("no %s found with id %d", r.def.name, id))
	}

	return item, nil
}

// GetByCommodity returns an empty slice when the commodity has no rows
func (r *Handling[T]) GetByCommodity(ctx context.Context, commodityID string) ([]T, error) {
	sql := fmt.Sprintf(
		"SELECT %s FROM %s WHERE commodity_id = $1 ORDER BY %s",
		r.def.returning(), r.def.table, r.def.orderBy,
	)

	items, err := queryAll[T](ctx, r.exec, sql, commodityID)
	if err != nil {
		return nil, readError(err, fmt.Sprintf("failed to get %s for commodity %s", r.def.name, commodityID))
	}

	return items, nil
}

func (r *Handling[T]) Update(ctx context.Context, id int, changes database.Changes) (T, error) {
	var zero T

	changes, err := r.def.updatable().coerce(changes)
	if err != nil {
		return zero, err
	}

	update, err := database.CompilePartialUpdate(changes, r.def.updatable().columnMap())
	if err != nil {
		return zero, err
	}

	sql := fmt.Sprintf(
		"UPDATE %s SET %s WHERE id = %s RETURNING %s",
		r.def.table, update.SetClause, update.NextPlaceholder(), r.def.returning(),
	)

	updated, err := queryOne[T](ctx, r.exec, sql, append(update.Values, id)...)
	if err != nil {
		return zero, writeError(err, fmt.Sprintf("no id found: %d", id))
	}

	return updated, nil
}

func (r *Handling[T]) Remove(ctx context.Context, id int) error {
	sql := fmt.Sprintf("DELETE FROM %s WHERE id = $1 RETURNING id", r.def.table)

	rows, err := r.exec.Query(ctx, sql, id)
	if err != nil {
		return writeError(err, fmt.Sprintf("could not find id to delete: %d", id))
	}

	if len(rows) == 0 {
		return phErrors.NewNotFoundError(fmt.Sprintf("could not find id to delete: %d", id))
	}

	return nil
}

var ethyleneSensitivityTable = handlingTable[types.EthyleneSensitivity]{
	name:  "ethylene sensitivity",
	table: "ethylene_sensitivity",
	data: columns{
		{field: "temperature", name: "temperature"},
		{field: "c2h4Production", name: "c2h4_production"},
		{field: "c2h4Class", name: "c2h4_class"},
	},
	values: func(e types.EthyleneSensitivity) []any {
		return []any{nullable(e.Temperature), nullable(e.C2H4Production), nullable(e.C2H4Class)}
	},
	orderBy: "id",
}

var respirationRateTable = handlingTable[types.RespirationRate]{
	name:  "respiration rate",
	table: "respiration_rates",
	data: columns{
		{field: "temperature", name: "temperature_celsius"},
		{field: "rrRate", name: "rr_mg_kg_hr"},
		{field: "rrClass", name: "rr_class"},
	},
	values: func(r types.RespirationRate) []any {
		return []any{nullable(r.Temperature), nullable(r.RRRate), nullable(r.RRClass)}
	},
	orderBy: "id",
}

var shelfLifeTable = handlingTable[types.ShelfLife]{
	name:  "shelf life",
	table: "shelf_life",
	data: columns{
		{field: "temperature", name: "temperature_celsius"},
		{field: "shelfLife", name: "shelf_life"},
		{field: "packaging", name: "packaging"},
		{field: "description", name: "description"},
	},
	values: func(s types.ShelfLife) []any {
		return []any{nullable(s.Temperature), nullable(s.ShelfLife), nullable(s.Packaging), nullable(s.Description)}
	},
	orderBy: "id",
}

var temperatureRecommendationTable = handlingTable[types.TemperatureRecommendation]{
	name:  "temperature recommendation",
	table: "temperature_recommendations",
	data: columns{
		{field: "minTemp", name: "min_temp_celsius"},
		{field: "optimumTemp", name: "optimum_temp_celsius"},
		{field: "description", name: "description"},
		{field: "rh", name: "rh"},
	},
	values: func(t types.TemperatureRecommendation) []any {
		return []any{nullable(t.MinTemp), nullable(t.OptimumTemp), nullable(t.Description), nullable(t.RH)}
	},
	orderBy: "min_temp_celsius, id",
}

var referenceTable = handlingTable[types.Reference]{
	name:  "reference",
	table: "refs",
	data: columns{
		{field: "source", name: "source", required: true},
	},
	values: func(r types.Reference) []any {
		return []any{r.Source}
	},
	orderBy: "id",
}

func NewEthyleneSensitivity(exec database.Executor) *Handling[types.EthyleneSensitivity] {
	return &Handling[types.EthyleneSensitivity]{exec: exec, def: ethyleneSensitivityTable}
}

func NewRespirationRates(exec database.Executor) *Handling[types.RespirationRate] {
	return &Handling[types.RespirationRate]{exec: exec, def: respirationRateTable}
}

func NewShelfLife(exec database.Executor) *Handling[types.ShelfLife] {
	return &Handling[types.ShelfLife]{exec: exec, def: shelfLifeTable}
}

func NewTemperatureRecommendations(exec database.Executor) *Handling[types.TemperatureRecommendation] {
	return &Handling[types.TemperatureRecommendation]{exec: exec, def: temperatureRecommendationTable}
}
