// Copyright (c) 2026 RaynerdTech. All rights reserved.
// Author: RaynerdTech

package account

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/RaynerdTech/ToDo/internal/platform/apperr"
	"github.com/RaynerdTech/ToDo/internal/platform/sec"
	"github.com/RaynerdTech/ToDo/internal/platform/validate"
	"github.com/RaynerdTech/ToDo/internal/users/auth"
	"github.com/RaynerdTech/ToDo/pkg/pointer"
)

// # Service Layer

// Service orchestrates identity self-service and role administration.
type Service struct {
	accountRepository AccountRepository
	revocations       auth.RevocationRepository
	logger            *slog.Logger
	now               func() time.Time
}

// NewService constructs a new [Service] with its repository dependencies.
func NewService(accountRepo AccountRepository, revocations auth.RevocationRepository, logger *slog.Logger) *Service {
	return &Service{
		accountRepository: accountRepo,
		revocations:       revocations,
		logger:            logger,
		now:               time.Now,
	}
}

// # Profile Management

/*
GetUser retrieves the public view of an identity.

Parameters:
  - context: context.Context
  - userID: string

Returns:
  - *auth.User: The identity (the password hash never serialises)
  - error: apperr.NotFound or execution failures
*/
func (service *Service) GetUser(context context.Context, userID string) (*auth.User, error) {
	user, err := service.accountRepository.FindByID(context, userID)
	if err != nil {
		return nil, fmt.Errorf("account_service_get_user_failed: %w", err)
	}
	return user, nil
}

// UpdateProfileInput is the allow-listed subset of profile fields. Nil
// pointers leave the stored value untouched.
type UpdateProfileInput struct {
	UserName *string
	Email    *string
	Age      *int
	Gender   *string
}

func (input UpdateProfileInput) empty() bool {
	return input.UserName == nil && input.Email == nil && input.Age == nil && input.Gender == nil
}

/*
UpdateProfile applies a partial set of changes to the caller's profile.

Description: Fetches the existing record, overrides the provided fields after
normalisation and validation, and writes the result back.

Parameters:
  - context: context.Context
  - userID: string
  - input: UpdateProfileInput

Returns:
  - *auth.User: The updated identity
  - error: ValidationError, Conflict (taken handle or email), NotFound
*/
func (service *Service) UpdateProfile(context context.Context, userID string, input UpdateProfileInput) (*auth.User, error) {
	if input.Gender != nil && !auth.Gender(*input.Gender).IsValid() {
		return nil, apperr.ValidationError(MsgInvalidGender)
	}

	if input.empty() {
		return nil, apperr.ValidationError(MsgNoFields)
	}

	validator := &validate.Validator{}

	if input.UserName != nil {
		normalized := auth.NormalizeUserName(*input.UserName)
		input.UserName = &normalized
		validator.Required(auth.FieldUserName, normalized).
			MaxLen(auth.FieldUserName, normalized, auth.MaxUserNameLength)
	}

	if input.Email != nil {
		normalized := auth.NormalizeEmail(*input.Email)
		input.Email = &normalized
		validator.Required(auth.FieldEmail, normalized).Email(auth.FieldEmail, normalized)
	}

	if input.Age != nil {
		validator.Range(auth.FieldAge, *input.Age, 0, auth.MaxAge)
	}

	if err := validator.Err(); err != nil {
		return nil, err
	}

	user, err := service.accountRepository.FindByID(context, userID)
	if err != nil {
		return nil, fmt.Errorf("account_service_update_lookup_failed: %w", err)
	}

	// Apply delta updates
	user.UserName = pointer.Fallback(input.UserName, user.UserName)
	user.Email = pointer.Fallback(input.Email, user.Email)
	if input.Age != nil {
		user.Age = input.Age
	}
	if input.Gender != nil {
		user.Gender = auth.Gender(*input.Gender)
	}

	updated, err := service.accountRepository.Update(context, user)
	if err != nil {
		return nil, fmt.Errorf("account_service_update_failed: %w", err)
	}

	service.logger.InfoContext(context, "identity_profile_updated", slog.String("user_id", userID))

	return updated, nil
}

// # Credentials

// UpdatePasswordInput carries the current and the desired password.
type UpdatePasswordInput struct {
	OldPassword string
	NewPassword string
}

/*
UpdatePassword replaces the caller's password after verifying the old one.

Description: Federated identities have no stored hash, so the old password
never matches for them.

Parameters:
  - context: context.Context
  - userID: string
  - input: UpdatePasswordInput

Returns:
  - error: NotFound, ValidationError (mismatch, reuse, missing field)
*/
func (service *Service) UpdatePassword(context context.Context, userID string, input UpdatePasswordInput) error {
	validator := &validate.Validator{}
	validator.Required(auth.FieldOldPassword, input.OldPassword).
		Required(auth.FieldNewPassword, input.NewPassword)

	if err := validator.Err(); err != nil {
		return err
	}

	user, err := service.accountRepository.FindByID(context, userID)
	if err != nil {
		return fmt.Errorf("account_service_password_lookup_failed: %w", err)
	}

	if !sec.CheckPasswordHash(input.OldPassword, user.PasswordHash) {
		service.logger.WarnContext(context, "password_change_mismatch", slog.String("user_id", userID))
		return apperr.ValidationError(MsgOldMismatch)
	}

	if input.OldPassword == input.NewPassword {
		return apperr.ValidationError(MsgSamePassword)
	}

	hashedPassword, err := sec.HashPassword(input.NewPassword)
	if err != nil {
		return fmt.Errorf("account_service_hash_failed: %w", err)
	}

	if err := service.accountRepository.UpdatePassword(context, userID, hashedPassword); err != nil {
		return fmt.Errorf("account_service_password_update_failed: %w", err)
	}

	service.logger.InfoContext(context, "identity_password_changed", slog.String("user_id", userID))

	return nil
}

/*
DeleteSelf removes the caller's identity and ends the current session.

Description: Password identities must confirm with their password;
federated identities skip the check. The session token is revoked after
the row is gone.

Parameters:
  - context: context.Context
  - claims: *sec.AuthClaims (from the session gate)
  - password: string

Returns:
  - *auth.User: The removed record
  - error: NotFound, Unauthorized ("Invalid password")
*/
func (service *Service) DeleteSelf(context context.Context, claims *sec.AuthClaims, password string) (*auth.User, error) {
	user, err := service.accountRepository.FindByID(context, claims.UserID)
	if err != nil {
		return nil, fmt.Errorf("account_service_delete_lookup_failed: %w", err)
	}

	if !user.IsFederated() && !sec.CheckPasswordHash(password, user.PasswordHash) {
		service.logger.WarnContext(context, "identity_delete_password_mismatch", slog.String("user_id", user.ID))
		return nil, apperr.Unauthorized(MsgInvalidPassword)
	}

	removed, err := service.accountRepository.Delete(context, user.ID)
	if err != nil {
		return nil, fmt.Errorf("account_service_delete_failed: %w", err)
	}

	// Revocation failures are logged, not returned: the row is already gone.
	if err := auth.RevokeClaims(context, service.revocations, claims, service.now()); err != nil {
		service.logger.ErrorContext(context, "identity_delete_revoke_failed",
			slog.String("user_id", user.ID),
			slog.String("error", err.Error()),
		)
	}

	service.logger.WarnContext(context, "identity_deleted", slog.String("user_id", user.ID))

	return removed, nil
}

// # Role Administration

/*
UpdateRole changes the role of the target identity.

Description: The session role is checked first, so an ordinary User is
always refused before any other validation. The actor's stored role is then
re-read because the session role is only a snapshot from login.

Parameters:
  - context: context.Context
  - claims: *sec.AuthClaims (actor)
  - targetID: string
  - newRole: string

Returns:
  - *auth.User: The updated target
  - error: Forbidden, ValidationError ("Invalid role provided"), NotFound
*/
func (service *Service) UpdateRole(context context.Context, claims *sec.AuthClaims, targetID, newRole string) (*auth.User, error) {
	if !sec.Role(claims.Role).CanManageRoles() {
		return nil, apperr.Forbidden(MsgRoleForbidden)
	}

	actor, err := service.accountRepository.FindByID(context, claims.UserID)
	switch {
	case apperr.IsNotFound(err):
		return nil, apperr.Forbidden(MsgRoleForbidden)
	case err != nil:
		return nil, fmt.Errorf("account_service_role_actor_lookup_failed: %w", err)
	case !actor.Role.CanManageRoles():
		service.logger.WarnContext(context, "role_change_stale_privilege",
			slog.String("user_id", actor.ID),
			slog.String("session_role", claims.Role),
			slog.String("stored_role", string(actor.Role)),
		)
		return nil, apperr.Forbidden(MsgRoleForbidden)
	}

	role := sec.Role(newRole)
	if !role.IsValid() {
		return nil, apperr.ValidationError(MsgInvalidRole)
	}

	updated, err := service.accountRepository.UpdateRole(context, targetID, role)
	if err != nil {
		return nil, fmt.Errorf("account_service_role_update_failed: %w", err)
	}

	service.logger.InfoContext(context, "identity_role_changed",
		slog.String("actor_id", actor.ID),
		slog.String("target_id", updated.ID),
		slog.String("role", string(role)),
	)

	return updated, nil
}
