// Copyright (c) 2026 RaynerdTech. All rights reserved.
// Author: RaynerdTech

package auth

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/RaynerdTech/ToDo/internal/platform/database/schema"
	"github.com/RaynerdTech/ToDo/internal/platform/dberr"
	"github.com/RaynerdTech/ToDo/internal/platform/sec"
)

// # Identity Repository

// UserColumns is the select list understood by [ScanUser].
var UserColumns = strings.Join(schema.Identity.Columns(), ", ")

// PostgresUserRepository implements the UserRepository interface using pgx.
type PostgresUserRepository struct {
	pool *pgxpool.Pool
}

// NewUserRepository creates a new PostgreSQL implementation of the UserRepository.
func NewUserRepository(pool *pgxpool.Pool) *PostgresUserRepository {
	return &PostgresUserRepository{pool: pool}
}

// Pool exposes the connection pool to stores that extend this repository.
func (repository *PostgresUserRepository) Pool() *pgxpool.Pool {
	return repository.pool
}

/*
ScanUser hydrates a User from a row selected with [UserColumns].

Nullable columns (password hash, gender, age) map to their zero values.
*/
func ScanUser(row pgx.Row) (*User, error) {
	var (
		user         User
		passwordHash *string
		gender       *string
		role         string
	)

	err := row.Scan(
		&user.ID,
		&user.UserName,
		&user.Email,
		&passwordHash,
		&user.CredentialAccount,
		&gender,
		&user.Age,
		&role,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if passwordHash != nil {
		user.PasswordHash = *passwordHash
	}
	if gender != nil {
		user.Gender = Gender(*gender)
	}
	user.Role = sec.Role(role)

	return &user, nil
}

// nullable maps the zero value of a string to SQL NULL.
func nullable(value string) *string {
	if value == "" {
		return nil
	}
	return &value
}

/*
Create persists a new identity into the identities table.

Parameters:
  - context: context.Context
  - user: *User (Entity to persist)

Returns:
  - error: apperr.Conflict on a duplicate handle or email, or connectivity errors
*/
func (repository *PostgresUserRepository) Create(context context.Context, user *User) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		schema.Identity.Table, UserColumns)

	now := time.Now()
	if user.CreatedAt.IsZero() {
		user.CreatedAt = now
	}
	user.UpdatedAt = now

	_, err := repository.pool.Exec(context, query,
		user.ID,
		user.UserName,
		user.Email,
		nullable(user.PasswordHash),
		user.CredentialAccount,
		nullable(string(user.Gender)),
		user.Age,
		string(user.Role),
		user.CreatedAt,
		user.UpdatedAt,
	)

	if err != nil {
		return fmt.Errorf("postgres_user_repo_create_failed: %w", dberr.Wrap(err, "User"))
	}

	return nil
}

/*
FindByEmail retrieves an identity by its unique email address.

Parameters:
  - context: context.Context
  - email: string

Returns:
  - *User: Hydrated identity
  - error: apperr.NotFound or database errors
*/
func (repository *PostgresUserRepository) FindByEmail(context context.Context, email string) (*User, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`,
		UserColumns, schema.Identity.Table, schema.Identity.Email)

	user, err := ScanUser(repository.pool.QueryRow(context, query, email))
	if err != nil {
		return nil, fmt.Errorf("postgres_user_repo_find_by_email_failed: %w", dberr.Wrap(err, "User"))
	}

	return user, nil
}

/*
FindByID retrieves an identity by its primary key.

Parameters:
  - context: context.Context
  - id: string (UUIDv7)

Returns:
  - *User: Hydrated identity
  - error: apperr.NotFound (including malformed ids) or execution errors
*/
func (repository *PostgresUserRepository) FindByID(context context.Context, id string) (*User, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`,
		UserColumns, schema.Identity.Table, schema.Identity.ID)

	user, err := ScanUser(repository.pool.QueryRow(context, query, id))
	if err != nil {
		return nil, fmt.Errorf("postgres_user_repo_find_by_id_failed: %w", dberr.Wrap(err, "User"))
	}

	return user, nil
}
