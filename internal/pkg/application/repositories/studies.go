package repositories

import (
	"context"
	"fmt"

	"github.com/diwise/postharvest/internal/pkg/infrastructure/database"
	phErrors "github.com/diwise/postharvest/pkg/postharvest/errors"
	"github.com/diwise/postharvest/pkg/postharvest/types"
)

var studyColumns = columns{
	{field: "title", name: "title", required: true},
	{field: "date", name: "date"},
	{field: "source", name: "source"},
	{field: "objective", name: "objective"},
}

var studyReturning = "id, " + studyColumns.selectList()

type Studies struct {
	exec database.Executor
}

func NewStudies(exec database.Executor) *Studies {
	return &Studies{exec: exec}
}

func (r *Studies) Create(ctx context.Context, s types.Study) (types.Study, error) {
	if s.Title == "" {
		return types.Study{}, phErrors.NewInvalidArgumentError("title is required")
	}

	sql := fmt.Sprintf(
		"INSERT INTO studies (title, date, source, objective) VALUES ($1, $2, $3, $4) RETURNING %s",
		studyReturning,
	)

	created, err := queryOne[types.Study](ctx, r.exec, sql, s.Title, nullable(s.Date), nullable(s.Source), nullable(s.Objective))
	if err != nil {
		return types.Study{}, writeError(err, "failed to create study")
	}

	return created, nil
}

func (r *Studies) FindAll(ctx context.Context) ([]types.Study, error) {
	studies, err := queryAll[types.Study](ctx, r.exec, fmt.Sprintf("SELECT %s FROM studies ORDER BY id", studyReturning))
	if err != nil {
		return nil, readError(err, "failed to list studies")
	}

	return studies, nil
}

func (r *Studies) GetByID(ctx context.Context, id int) (types.Study, error) {
	s, err := queryOne[types.Study](ctx, r.exec, fmt.Sprintf("SELECT %s FROM studies WHERE id = $1", studyReturning), id)
	if err != nil {
		return s, readError(err, fmt.Sprintf("no study: %d", id))
	}

	return s, nil
}

func (r *Studies) Update(ctx context.Context, id int, changes database.Changes) (types.Study, error) {
	changes, err := studyColumns.coerce(changes)
	if err != nil {
		return types.Study{}, err
	}

	update, err := database.CompilePartialUpdate(changes, studyColumns.columnMap())
	if err != nil {
		return types.Study{}, err
	}

	sql := fmt.Sprintf(
		"UPDATE studies SET %s WHERE id = %s RETURNING %s",
		update.SetClause, update.NextPlaceholder(), studyReturning,
	)

	updated, err := queryOne[types.Study](ctx, r.exec, sql, append(update.Values, id)...)
	if err != nil {
		return types.Study{}, writeError(err, fmt.Sprintf("no study: %d", id))
	}

	return updated, nil
}

func (r *Studies) Remove(ctx context.Context, id int) error {
	rows, err := r.exec.Query(ctx, "DELETE FROM studies WHERE id = $1 RETURNING id", id)
	if err != nil {
		return writeError(err, fmt.Sprintf("no study: %d", id))
	}

	if len(rows) == 0 {
		return phErrors.NewNotFoundError(fmt.Sprintf("no study: %d", id))
	}

	return nil
}

// StudyCommodities links studies to the commodities they cover
type StudyCommodities struct {
	exec database.Executor
}

func NewStudyCommodities(exec database.Executor) *StudyCommodities {
	return &StudyCommodities{exec: exec}
}

func (r *StudyCommodities) Create(ctx context.Context, studyID int, commodityID string) (types.StudyCommodity, error) {
	if studyID == 0 || commodityID == "" {
		return types.StudyCommodity{}, phErrors.NewInvalidArgumentError("both a study id and a commodity id are required")
	}

	link, err := queryOne[types.StudyCommodity](ctx, r.exec,
		`INSERT INTO studies_commodities (study_id, commodity_id) VALUES ($1, $2)
		 RETURNING study_id AS "studyId", commodity_id AS "commodityId"`,
		studyID, commodityID,
	)
	if err != nil {
		return types.StudyCommodity{}, writeError(err, fmt.Sprintf("study %d or commodity %s not found", studyID, commodityID))
	}

	return link, nil
}

// GetByStudy returns the ids of all commodities linked to a study
func (r *StudyCommodities) GetByStudy(ctx context.Context, studyID int) ([]string, error) {
	rows, err := r.exec.Query(ctx,
		"SELECT commodity_id FROM studies_commodities WHERE study_id = $1 ORDER BY commodity_id", studyID,
	)
	if err != nil {
		return nil, readError(err, fmt.Sprintf("failed to get commodities for study %d", studyID))
	}

	ids := make([]string, 0, len(rows))
	for _, row := range rows {
		if id, ok := row["commodity_id"].(string); ok {
			ids = append(ids, id)
		}
	}

	return ids, nil
}

// GetByCommodity returns the ids of all studies linked to a commodity
func (r *StudyCommodities) GetByCommodity(ctx context.Context, commodityID string) ([]int, error) {
	links, err := queryAll[types.StudyCommodity](ctx, r.exec,
		`SELECT study_id AS "studyId", commodity_id AS "commodityId" FROM studies_commodities
		 WHERE commodity_id = $1 ORDER BY study_id`, commodityID,
	)
	if err != nil {
		return nil, readError(err, fmt.Sprintf("failed to get studies for commodity %s", commodityID))
	}

	ids := make([]int, 0, len(links))
	for _, l := range links {
		ids = append(ids, l.StudyID)
	}

	return ids, nil
}

func (r *StudyCommodities) Remove(ctx context.Context, studyID int, commodityID string) error {
	rows, err := r.exec.Query(ctx,
		"DELETE FROM studies_commodities WHERE study_id = $1 AND commodity_id = $2 RETURNING study_id",
		studyID, commodityID,
	)
	if err != nil {
		return writeError(err, fmt.Sprintf("no link between study %d and commodity %s", studyID, commodityID))
	}

	if len(rows) == 0 {
		return phErrors.NewNotFoundError(fmt.Sprintf("no link between study %d and commodity %s", studyID, commodityID))
	}

	return nil
}
