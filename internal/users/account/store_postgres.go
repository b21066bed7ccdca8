// Copyright (c) 2026 RaynerdTech. All rights reserved.
// Author: RaynerdTech

package account

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/RaynerdTech/ToDo/internal/platform/apperr"
	"github.com/RaynerdTech/ToDo/internal/platform/database/schema"
	"github.com/RaynerdTech/ToDo/internal/platform/dberr"
	"github.com/RaynerdTech/ToDo/internal/platform/sec"
	"github.com/RaynerdTech/ToDo/internal/users/auth"
)

// # Repository Implementations

// PostgresAccountRepository implements [AccountRepository] using pgx.
//
// Lookups are inherited from [auth.PostgresUserRepository]; every write is a
// single statement returning the affected row.
type PostgresAccountRepository struct {
	*auth.PostgresUserRepository
}

// NewAccountRepository creates a new Postgres implementation for identity self-service.
func NewAccountRepository(pool *pgxpool.Pool) *PostgresAccountRepository {
	return &PostgresAccountRepository{PostgresUserRepository: auth.NewUserRepository(pool)}
}

/*
Update modifies the profile columns of an identity.

Parameters:
  - context: context.Context
  - user: *auth.User

Returns:
  - *auth.User: Row as stored
  - error: apperr.NotFound, apperr.Conflict or execution errors
*/
func (repository *PostgresAccountRepository) Update(context context.Context, user *auth.User) (*auth.User, error) {
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $2, %s = $3, %s = $4, %s = $5, %s = $6
		WHERE %s = $1
		RETURNING %s`,
		schema.Identity.Table,
		schema.Identity.UserName, schema.Identity.Email, schema.Identity.Age,
		schema.Identity.Gender, schema.Identity.UpdatedAt,
		schema.Identity.ID,
		auth.UserColumns,
	)

	var gender *string
	if user.Gender != "" {
		value := string(user.Gender)
		gender = &value
	}

	updated, err := auth.ScanUser(repository.Pool().QueryRow(context, query,
		user.ID,
		user.UserName,
		user.Email,
		user.Age,
		gender,
		time.Now(),
	))
	if err != nil {
		return nil, fmt.Errorf("postgres_account_repo_update_failed: %w", dberr.Wrap(err, "User"))
	}

	return updated, nil
}

/*
UpdatePassword replaces the bcrypt hash of an identity.

Parameters:
  - context: context.Context
  - id: string
  - passwordHash: string

Returns:
  - error: apperr.NotFound when no row matched, or execution errors
*/
func (repository *PostgresAccountRepository) UpdatePassword(context context.Context, id, passwordHash string) error {
	query := fmt.Sprintf(`UPDATE %s SET %s = $2, %s = $3 WHERE %s = $1`,
		schema.Identity.Table, schema.Identity.Password, schema.Identity.UpdatedAt, schema.Identity.ID)

	tag, err := repository.Pool().Exec(context, query, id, passwordHash, time.Now())
	if err != nil {
		return fmt.Errorf("postgres_account_repo_update_password_failed: %w", dberr.Wrap(err, "User"))
	}

	if tag.RowsAffected() == 0 {
		return apperr.NotFound("User")
	}

	return nil
}

/*
UpdateRole sets the role column of an identity.

Parameters:
  - context: context.Context
  - id: string
  - role: sec.Role

Returns:
  - *auth.User: Row as stored
  - error: apperr.NotFound or execution errors
*/
func (repository *PostgresAccountRepository) UpdateRole(context context.Context, id string, role sec.Role) (*auth.User, error) {
	query := fmt.Sprintf(`UPDATE %s SET %s = $2, %s = $3 WHERE %s = $1 RETURNING %s`,
		schema.Identity.Table, schema.Identity.Role, schema.Identity.UpdatedAt,
		schema.Identity.ID, auth.UserColumns)

	updated, err := auth.ScanUser(repository.Pool().QueryRow(context, query, id, string(role), time.Now()))
	if err != nil {
		return nil, fmt.Errorf("postgres_account_repo_update_role_failed: %w", dberr.Wrap(err, "User"))
	}

	return updated, nil
}

/*
Delete hard-deletes an identity; its tasks go with it via ON DELETE CASCADE.

Parameters:
  - context: context.Context
  - id: string

Returns:
  - *auth.User: The removed row
  - error: apperr.NotFound or execution errors
*/
func (repository *PostgresAccountRepository) Delete(context context.Context, id string) (*auth.User, error) {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1 RETURNING %s`,
		schema.Identity.Table, schema.Identity.ID, auth.UserColumns)

	removed, err := auth.ScanUser(repository.Pool().QueryRow(context, query, id))
	if err != nil {
		return nil, fmt.Errorf("postgres_account_repo_delete_failed: %w", dberr.Wrap(err, "User"))
	}

	return removed, nil
}
