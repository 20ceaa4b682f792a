package database

import (
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	phErrors "github.com/diwise/postharvest/pkg/postharvest/errors"
)

// Change is a single field assignment in a partial update
type Change struct {
	Field string
	Value any
}

// Changes keeps the order in which fields were supplied
type Changes []Change

func (c Changes) Get(field string) (any, bool) {
	for _, change := range c {
		if change.Field == field {
			return change.Value, true
		}
	}
	return nil, false
}

func (c Changes) Without(field string) Changes {
	result := make(Changes, 0, len(c))
	for _, change := range c {
		if change.Field != field {
			result = append(result, change)
		}
	}
	return result
}

// ColumnMap translates logical field names to column names. Fields without
// an entry are used as column names as is.
type ColumnMap map[string]string

type PartialUpdate struct {
	SetClause string
	Values    []any
}

// NextPlaceholder is the placeholder to use for the first parameter that
// follows the SET values, typically the row id.
func (p PartialUpdate) NextPlaceholder() string {
	return fmt.Sprintf("$%d", len(p.Values)+1)
}

func CompilePartialUpdate(changes Changes, columns ColumnMap) (PartialUpdate, error) {
	if len(changes) == 0 {
		return PartialUpdate{}, phErrors.NewInvalidArgumentError("no data")
	}

	fragments := make([]string, 0, len(changes))
	values := make([]any, 0, len(changes))
	seen := map[string]struct{}{}

	for i, change := range changes {
		column, ok := columns[change.Field]
		if !ok {
			column = change.Field
		}

		if _, dup := seen[column]; dup {
			return PartialUpdate{}, phErrors.NewInvalidArgumentError(fmt.Sprintf("column %s is assigned more than once", column))
		}
		seen[column] = struct{}{}

		fragments = append(fragments, fmt.Sprintf("%s=$%d", pgx.Identifier{column}.Sanitize(), i+1))
		values = append(values, change.Value)
	}

	return PartialUpdate{
		SetClause: strings.Join(fragments, ", "),
		Values:    values,
	}, nil
}
