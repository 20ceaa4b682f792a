// Package database wraps a postgres connection pool behind a small row
// oriented interface that repositories can be tested against.
package database

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Row is a single result row keyed by column name or alias
type Row map[string]any

//go:generate moq -rm -out executor_mock.go . Executor

type Executor interface {
	Query(ctx context.Context, sql string, args ...any) ([]Row, error)
	Exec(ctx context.Context, sql string, args ...any) (int64, error)
}

//go:generate moq -rm -out database_mock.go . Database

type Database interface {
	Executor
	// ReadOnly runs fn inside a read only, repeatable read transaction.
	// A failed statement does not affect the statements that follow it.
	ReadOnly(ctx context.Context, fn func(ctx context.Context, exec Executor) error) error
	Ping(ctx context.Context) error
	Close()
}

type querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

type executor struct {
	q       querier
	timeout time.Duration
}

func (e executor) Query(ctx context.Context, sql string, args ...any) ([]Row, error) {
	ctx, cancel := e.withTimeout(ctx)
	defer cancel()

	rows, err := e.q.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}

	maps, err := pgx.CollectRows(rows, pgx.RowToMap)
	if err != nil {
		return nil, err
	}

	result := make([]Row, 0, len(maps))
	for _, m := range maps {
		result = append(result, Row(m))
	}

	return result, nil
}

func (e executor) Exec(ctx context.Context, sql string, args ...any) (int64, error) {
	ctx, cancel := e.withTimeout(ctx)
	defer cancel()

	tag, err := e.q.Exec(ctx, sql, args...)
	if err != nil {
		return 0, err
	}

	return tag.RowsAffected(), nil
}

func (e executor) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if e.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, e.timeout)
}

type pgDatabase struct {
	executor
	pool *pgxpool.Pool
}

// Connect creates a connection pool and makes sure the database answers
func Connect(ctx context.Context, cfg Config) (Database, error) {
	pool, err := pgxpool.New(ctx, cfg.ConnStr())
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}

	err = pool.Ping(ctx)
	if err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to connect to database %s on %s: %w", cfg.DBName, cfg.Host, err)
	}

	return &pgDatabase{
		executor: executor{q: pool, timeout: cfg.QueryTimeout},
		pool:     pool,
	}, nil
}

// ReadOnly never commits
func (db *pgDatabase) ReadOnly(ctx context.Context, fn func(ctx context.Context, exec Executor) error) error {
	opts := pgx.TxOptions{IsoLevel: pgx.RepeatableRead, AccessMode: pgx.ReadOnly}

	tx, err := db.pool.BeginTx(ctx, opts)
	if err != nil {
		return fmt.Errorf("failed to begin read only transaction: %w", err)
	}
	defer tx.Rollback(context.WithoutCancel(ctx))

	timeout := db.timeout
	if timeout > 0 {
		// a cancelled context closes the connection and with it the
		// transaction, so postgres cancels slow statements first
		_, err = tx.Exec(ctx, "SELECT set_config('statement_timeout', $1, true)", strconv.FormatInt(timeout.Milliseconds(), 10))
		if err != nil {
			return fmt.Errorf("failed to set statement timeout: %w", err)
		}
		timeout += serverTimeoutGrace
	}

	return fn(ctx, savepointExecutor{executor{q: tx, timeout: timeout}})
}

const serverTimeoutGrace = time.Second

// savepointExecutor runs every statement in its own savepoint. Postgres
// rejects everything after a failed statement in a transaction until it is
// rolled back, so only the savepoint of the failed statement is undone.
type savepointExecutor struct {
	executor
}

func (e savepointExecutor) Query(ctx context.Context, sql string, args ...any) ([]Row, error) {
	var rows []Row

	err := e.savepoint(ctx, func() error {
		var err error
		rows, err = e.executor.Query(ctx, sql, args...)
		return err
	})

	return rows, err
}

func (e savepointExecutor) Exec(ctx context.Context, sql string, args ...any) (int64, error) {
	var affected int64

	err := e.savepoint(ctx, func() error {
		var err error
		affected, err = e.executor.Exec(ctx, sql, args...)
		return err
	})

	return affected, err
}

func (e savepointExecutor) savepoint(ctx context.Context, fn func() error) error {
	if _, err := e.q.Exec(ctx, "SAVEPOINT statement"); err != nil {
		return fmt.Errorf("failed to create savepoint: %w", err)
	}

	if err := fn(); err != nil {
		if _, rbErr := e.q.Exec(context.WithoutCancel(ctx), "ROLLBACK TO SAVEPOINT statement"); rbErr != nil {
			return errors.Join(err, fmt.Errorf("failed to roll back to savepoint: %w", rbErr))
		}
		return err
	}

	if _, err := e.q.Exec(ctx, "RELEASE SAVEPOINT statement"); err != nil {
		return fmt.Errorf("failed to release savepoint: %w", err)
	}

	return nil
}

func (db *pgDatabase) Ping(ctx context.Context) error {
	return db.pool.Ping(ctx)
}

func (db *pgDatabase) Close() {
	db.pool.Close()
}
