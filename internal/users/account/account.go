// Copyright (c) 2026 RaynerdTech. All rights reserved.
// Author: RaynerdTech

/*
Package account handles self-service management of an existing identity.

It lets an authenticated identity read, update and delete its own record,
change its password, and lets privileged identities change the role of
others.

# Architecture

  - Domain: This package depends on the auth package for the User entity,
    its Postgres row mapping and the session revocation list.
  - Security: Every mutating endpoint sits behind the session gate; role
    changes are additionally re-checked against the stored role.
*/
package account

import (
	"context"

	"github.com/RaynerdTech/ToDo/internal/platform/sec"
	"github.com/RaynerdTech/ToDo/internal/users/auth"
)

// # Client Messages

const (
	MsgDeleted         = "User successfully deleted"
	MsgUpdated         = "User information updated successfully"
	MsgPasswordUpdated = "Password successfully updated"
	MsgRoleUpdated     = "User role updated successfully"
	MsgNoFields        = "No fields to update"
	MsgInvalidGender   = "Invalid gender value"
	MsgInvalidPassword = "Invalid password"
	MsgOldMismatch     = "Old password does not match"
	MsgSamePassword    = "New password cannot be the same as the old one"
	MsgInvalidRole     = "Invalid role provided"
	MsgRoleForbidden   = "You don't have permission to update user roles"
)

// # Repository Contracts

// AccountRepository defines the persistence contract for identity self-service.
type AccountRepository interface {
	/*
		FindByID retrieves an identity by its unique ID.

		Parameters:
		  - context: context.Context
		  - id: string (UUID)

		Returns:
		  - *auth.User: Loaded identity
		  - error: apperr.NotFound or storage failures
	*/
	FindByID(context context.Context, id string) (*auth.User, error)

	/*
		Update writes the mutable profile fields (handle, email, age, gender).

		Parameters:
		  - context: context.Context
		  - user: *auth.User (Hydrated entity with changes)

		Returns:
		  - *auth.User: The stored record after the update
		  - error: apperr.NotFound, apperr.Conflict on a taken handle or email
	*/
	Update(context context.Context, user *auth.User) (*auth.User, error)

	/*
		UpdatePassword replaces the stored password hash.

		Parameters:
		  - context: context.Context
		  - id: string
		  - passwordHash: string (bcrypt)

		Returns:
		  - error: apperr.NotFound or storage failures
	*/
	UpdatePassword(context context.Context, id, passwordHash string) error

	/*
		UpdateRole sets the role of an identity.

		Parameters:
		  - context: context.Context
		  - id: string
		  - role: sec.Role

		Returns:
		  - *auth.User: The stored record after the update
		  - error: apperr.NotFound or storage failures
	*/
	UpdateRole(context context.Context, id string, role sec.Role) (*auth.User, error)

	/*
		Delete removes an identity and, through the foreign key, its tasks.

		Parameters:
		  - context: context.Context
		  - id: string

		Returns:
		  - *auth.User: The removed record
		  - error: apperr.NotFound or storage failures
	*/
	Delete(context context.Context, id string) (*auth.User, error)
}
