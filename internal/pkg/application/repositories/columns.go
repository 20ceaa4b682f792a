package repositories

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/go-viper/mapstructure/v2"

	"github.com/diwise/postharvest/internal/pkg/infrastructure/database"
	phErrors "github.com/diwise/postharvest/pkg/postharvest/errors"
)

type columnKind int

const (
	text columnKind = iota
	boolean
)

// column binds a json field name to a storage column
type column struct {
	field    string
	name     string
	kind     columnKind
	required bool
}

type columns []column

func (c columns) selectList() string {
	list := make([]string, 0, len(c))
	for _, col := range c {
		if col.field == col.name {
			list = append(list, col.name)
		} else {
			list = append(list, fmt.Sprintf(`%s AS "%s"`, col.name, col.field))
		}
	}
	return strings.Join(list, ", ")
}

func (c columns) names() []string {
	n := make([]string, 0, len(c))
	for _, col := range c {
		n = append(n, col.name)
	}
	return n
}

func (c columns) columnMap() database.ColumnMap {
	m := database.ColumnMap{}
	for _, col := range c {
		m[col.field] = col.name
	}
	return m
}

func (c columns) find(field string) (column, bool) {
	for _, col := range c {
		if col.field == field {
			return col, true
		}
	}
	return column{}, false
}

// coerce checks every change against the columns that may be updated and
// converts values into what the column expects.
func (c columns) coerce(changes database.Changes) (database.Changes, error) {
	result := make(database.Changes, 0, len(changes))

	for _, change := range changes {
		col, ok := c.find(change.Field)
		if !ok {
			return nil, phErrors.NewInvalidArgumentError(fmt.Sprintf("%s can not be updated", change.Field))
		}

		value, err := col.coerce(change.Value)
		if err != nil {
			return nil, err
		}

		result = append(result, database.Change{Field: change.Field, Value: value})
	}

	return result, nil
}

func (col column) coerce(value any) (any, error) {
	if value == nil {
		if col.required || col.kind == boolean {
			return nil, phErrors.NewInvalidArgumentError(fmt.Sprintf("%s can not be null", col.field))
		}
		return nil, nil
	}

	if col.kind == boolean {
		b, ok := value.(bool)
		if !ok {
			return nil, phErrors.NewInvalidArgumentError(fmt.Sprintf("%s must be a boolean", col.field))
		}
		return b, nil
	}

	switch v := value.(type) {
	case string:
		if col.required && v == "" {
			return nil, phErrors.NewInvalidArgumentError(fmt.Sprintf("%s can not be empty", col.field))
		}
		return v, nil
	case json.Number:
		return v.String(), nil
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), nil
	case int:
		return strconv.Itoa(v), nil
	}

	return nil, phErrors.NewInvalidArgumentError(fmt.Sprintf("%s must be a string or a number", col.field))
}

// nullable stores empty optional text as NULL
func nullable(s string) any {
	if s == "" {
		return nil
	}
	return s
}

func placeholders(from, count int) string {
	p := make([]string, 0, count)
	for i := from; i < from+count; i++ {
		p = append(p, fmt.Sprintf("$%d", i))
	}
	return strings.Join(p, ", ")
}

func decode[T any](row database.Row) (T, error) {
	var result T

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName: "json",
		Result:  &result,
	})
	if err != nil {
		return result, err
	}

	err = decoder.Decode(map[string]any(row))
	return result, err
}

func queryAll[T any](ctx context.Context, exec database.Executor, sql string, args ...any) ([]T, error) {
	rows, err := exec.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}

	result := make([]T, 0, len(rows))

	for _, row := range rows {
		item, err := decode[T](row)
		if err != nil {
			return nil, fmt.Errorf("failed to decode row: %w", err)
		}
		result = append(result, item)
	}

	return result, nil
}

func queryOne[T any](ctx context.Context, exec database.Executor, sql string, args ...any) (T, error) {
	var zero T

	items, err := queryAll[T](ctx, exec, sql, args...)
	if err != nil {
		return zero, err
	}

	if len(items) == 0 {
		return zero, database.ErrNoRows
	}

	return items[0], nil
}

// writeError reports failed inserts, updates and deletes as not found.
// Errors that already carry a kind pass through untouched.
func writeError(err error, msg string) error {
	if phErrors.Kind(err) != nil {
		return err
	}

	switch database.Classify(err) {
	case database.MissingRow, database.Constraint, database.InvalidData:
		return phErrors.Wrap(phErrors.ErrNotFound, msg, err)
	}

	return phErrors.NewInternalError(msg, err)
}

func readError(err error, msg string) error {
	if phErrors.Kind(err) != nil {
		return err
	}

	switch database.Classify(err) {
	case database.MissingRow, database.InvalidData:
		return phErrors.Wrap(phErrors.ErrNotFound, msg, err)
	}

	return phErrors.NewInternalError(msg, err)
}
