// Copyright (c) 2026 RaynerdTech. All rights reserved.
// Author: RaynerdTech

package auth

import (
	"context"
	"time"
)

// # Identity Data Access

// UserRepository defines the data access contract used by authentication.
type UserRepository interface {

	/*
		FindByID returns the identity with the given ID.

		Parameters:
		  - context: context.Context
		  - id: string

		Returns:
		  - *User: Hydrated entity
		  - error: apperr.NotFound or database failures
	*/
	FindByID(context context.Context, id string) (*User, error)

	/*
		FindByEmail returns the identity with the given (normalised) email.

		Parameters:
		  - context: context.Context
		  - email: string

		Returns:
		  - *User: Hydrated entity
		  - error: apperr.NotFound or database failures
	*/
	FindByEmail(context context.Context, email string) (*User, error)

	/*
		Create persists a brand-new identity.

		Parameters:
		  - context: context.Context
		  - user: *User

		Returns:
		  - error: apperr.Conflict on a duplicate handle or email, or persistence failures
	*/
	Create(context context.Context, user *User) error
}

// # Volatile Data Access

// RevocationRepository stores the ids of session tokens revoked before expiry.
type RevocationRepository interface {

	/*
		Revoke records tokenID as revoked for ttl.

		Parameters:
		  - context: context.Context
		  - tokenID: string (JWT "jti")
		  - ttl: time.Duration (remaining token lifetime)

		Returns:
		  - error: Persistence failures
	*/
	Revoke(context context.Context, tokenID string, ttl time.Duration) error

	/*
		IsRevoked reports whether tokenID has been revoked.

		Parameters:
		  - context: context.Context
		  - tokenID: string

		Returns:
		  - bool: true when revoked
		  - error: Retrieval failures
	*/
	IsRevoked(context context.Context, tokenID string) (bool, error)
}
