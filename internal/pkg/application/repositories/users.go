package repositories

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/diwise/postharvest/internal/pkg/infrastructure/database"
	phErrors "github.com/diwise/postharvest/pkg/postharvest/errors"
	"github.com/diwise/postharvest/pkg/postharvest/types"
)

var userColumns = columns{
	{field: "firstName", name: "first_name", required: true},
	{field: "lastName", name: "last_name", required: true},
	{field: "email", name: "email", required: true},
	{field: "jobTitle", name: "job_title"},
	{field: "isAdmin", name: "is_admin", kind: boolean},
	{field: "password", name: "password", required: true},
}

var userReturning = "username, " + userColumns[:5].selectList()

type Users struct {
	exec       database.Executor
	workFactor int
}

func NewUsers(exec database.Executor, workFactor int) *Users {
	if workFactor < bcrypt.MinCost {
		workFactor = bcrypt.DefaultCost
	}
	return &Users{exec: exec, workFactor: workFactor}
}

// Register stores a new user with a hashed password
func (r *Users) Register(ctx context.Context, u types.NewUser) (types.User, error) {
	if u.Username == "" || u.Password == "" || u.FirstName == "" || u.LastName == "" || u.Email == "" {
		return types.User{}, phErrors.NewInvalidArgumentError("username, password, firstName, lastName and email are required")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(u.Password), r.workFactor)
	if err != nil {
		return types.User{}, phErrors.NewInvalidArgumentError(fmt.Sprintf("unusable password: %s", err.Error()))
	}

	sql := fmt.Sprintf(
		`INSERT INTO users (username, password, first_name, last_name, email, job_title, is_admin)
		 VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING %s`, userReturning,
	)

	created, err := queryOne[types.User](ctx, r.exec, sql,
		u.Username, string(hash), u.FirstName, u.LastName, u.Email, nullable(u.JobTitle), u.IsAdmin,
	)
	if err != nil {
		return types.User{}, userWriteError(err, u.Username)
	}

	return created, nil
}

// Authenticate returns the user if the password matches
func (r *Users) Authenticate(ctx context.Context, username, password string) (types.User, error) {
	rows, err := r.exec.Query(ctx, fmt.Sprintf("SELECT password, %s FROM users WHERE username = $1", userReturning), username)
	if err != nil {
		return types.User{}, readError(err, "failed to authenticate user")
	}

	if len(rows) == 1 {
		hash, _ := rows[0]["password"].(string)

		if bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil {
			return decode[types.User](rows[0])
		}
	}

	return types.User{}, phErrors.NewUnauthorizedError("invalid username/password")
}

func (r *Users) Get(ctx context.Context, username string) (types.User, error) {
	u, err := queryOne[types.User](ctx, r.exec, fmt.Sprintf("SELECT %s FROM users WHERE username = $1", userReturning), username)
	if err != nil {
		return u, readError(err, fmt.Sprintf("no user: %s", username))
	}

	return u, nil
}

func (r *Users) FindAll(ctx context.Context) ([]types.User, error) {
	users, err := queryAll[types.User](ctx, r.exec, fmt.Sprintf("SELECT %s FROM users ORDER BY username", userReturning))
	if err != nil {
		return nil, readError(err, "failed to list users")
	}

	return users, nil
}

// Update applies a partial update. A supplied password is hashed before it is stored.
func (r *Users) Update(ctx context.Context, username string, changes database.Changes) (types.User, error) {
	changes, err := userColumns.coerce(changes)
	if err != nil {
		return types.User{}, err
	}

	for i, change := range changes {
		if change.Field != "password" {
			continue
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(change.Value.(string)), r.workFactor)
		if err != nil {
			return types.User{}, phErrors.NewInvalidArgumentError(fmt.Sprintf("unusable password: %s", err.Error()))
		}

		changes[i].Value = string(hash)
	}

	update, err := database.CompilePartialUpdate(changes, userColumns.columnMap())
	if err != nil {
		return types.User{}, err
	}

	sql := fmt.Sprintf(
		"UPDATE users SET %s WHERE username = %s RETURNING %s",
		update.SetClause, update.NextPlaceholder(), userReturning,
	)

	updated, err := queryOne[types.User](ctx, r.exec, sql, append(update.Values, username)...)
	if err != nil {
		return types.User{}, userWriteError(err, username)
	}

	return updated, nil
}

func (r *Users) Remove(ctx context.Context, username string) error {
	rows, err := r.exec.Query(ctx, "DELETE FROM users WHERE username = $1 RETURNING username", username)
	if err != nil {
		return readError(err, fmt.Sprintf("no user: %s", username))
	}

	if len(rows) == 0 {
		return phErrors.NewNotFoundError(fmt.Sprintf("no user: %s", username))
	}

	return nil
}

func userWriteError(err error, username string) error {
	if phErrors.Kind(err) != nil {
		return err
	}

	if database.IsUniqueViolation(err) {
		return phErrors.Wrap(phErrors.ErrAlreadyExists, fmt.Sprintf("duplicate username: %s", username), err)
	}

	if errors.Is(err, database.ErrNoRows) {
		return phErrors.Wrap(phErrors.ErrNotFound, fmt.Sprintf("no user: %s", username), err)
	}

	switch database.Classify(err) {
	case database.Constraint, database.InvalidData:
		return phErrors.Wrap(phErrors.ErrInvalidArgument, "invalid user data", err)
	}

	return phErrors.NewInternalError("failed to store user", err)
}
