package database

import (
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type Kind int

const (
	Unclassified Kind = iota
	MissingRow
	Constraint
	InvalidData
)

func (k Kind) String() string {
	switch k {
	case MissingRow:
		return "missing row"
	case Constraint:
		return "constraint violation"
	case InvalidData:
		return "invalid data"
	default:
		return "unclassified"
	}
}

// ErrNoRows is returned when a statement that must produce a row did not
var ErrNoRows = pgx.ErrNoRows

const uniqueViolation = "23505"

// Classify maps a storage error onto the few kinds callers care about,
// using the SQLSTATE class for server side errors.
func Classify(err error) Kind {
	if err == nil {
		return Unclassified
	}

	if errors.Is(err, pgx.ErrNoRows) {
		return MissingRow
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && len(pgErr.Code) >= 2 {
		switch pgErr.Code[:2] {
		case "23":
			return Constraint
		case "22":
			return InvalidData
		}
	}

	return Unclassified
}

func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}
