// Copyright (c) 2026 RaynerdTech. All rights reserved.
// Author: RaynerdTech

package auth

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/RaynerdTech/ToDo/internal/platform/apperr"
	"github.com/RaynerdTech/ToDo/internal/platform/metrics"
	"github.com/RaynerdTech/ToDo/internal/platform/sec"
	"github.com/RaynerdTech/ToDo/internal/platform/validate"
	"github.com/RaynerdTech/ToDo/pkg/uuid"
)

// # Contracts & Types

// TokenIssuer mints session tokens.
type TokenIssuer interface {
	// IssueToken creates a signed token bound to one identity and its current role.
	IssueToken(userID string, role sec.Role) (string, error)

	// TimeToLive reports how long issued tokens stay valid.
	TimeToLive() time.Duration
}

// Service implements the credential and session use cases.
type Service struct {
	userRepository UserRepository
	revocations    RevocationRepository
	tokens         TokenIssuer
	recorder       metrics.Recorder
	logger         *slog.Logger
	now            func() time.Time
}

// NewService constructs a new auth [Service] with necessary dependencies.
func NewService(
	userRepo UserRepository,
	revocations RevocationRepository,
	tokens TokenIssuer,
	recorder metrics.Recorder,
	logger *slog.Logger,
) *Service {
	return &Service{
		userRepository: userRepo,
		revocations:    revocations,
		tokens:         tokens,
		recorder:       recorder,
		logger:         logger,
		now:            time.Now,
	}
}

// Session is a freshly minted session token and the identity it belongs to.
type Session struct {
	Token     string
	ExpiresAt time.Time
	User      *User
}

// # Registration Flow

// RegisterInput holds the data required to enroll a password identity.
type RegisterInput struct {
	UserName string
	Email    string
	Password string
	Age      *int
	Gender   string
	Role     string
}

/*
Register validates, hashes, and persists a new password identity.

Description: Only the User role may be requested; elevated roles are granted
later through the role-change operation.

Parameters:
  - context: context.Context
  - input: RegisterInput

Returns:
  - *User: Created entity
  - error: ValidationError, Conflict ("User already exists") or storage errors
*/
func (service *Service) Register(context context.Context, input RegisterInput) (*User, error) {
	input.UserName = NormalizeUserName(input.UserName)
	input.Email = NormalizeEmail(input.Email)

	validator := &validate.Validator{}
	validator.Required(FieldUserName, input.UserName).
		MaxLen(FieldUserName, input.UserName, MaxUserNameLength).
		Required(FieldEmail, input.Email).
		Email(FieldEmail, input.Email).
		Required(FieldPassword, input.Password).
		Custom(FieldAge, input.Age == nil, "This field is required").
		Required(FieldGender, input.Gender).
		Custom(FieldRole, input.Role != "" && sec.Role(input.Role) != sec.RoleUser, MsgElevatedRole)

	if input.Age != nil {
		validator.Range(FieldAge, *input.Age, 0, MaxAge)
	}
	if input.Gender != "" {
		validator.OneOf(FieldGender, input.Gender, GenderNames()...)
	}

	if err := validator.Err(); err != nil {
		service.recorder.RecordAuthEvent(metrics.EventRegister, metrics.OutcomeFailure)
		return nil, err
	}

	// Duplicate emails are reported before paying for the hash
	if _, err := service.userRepository.FindByEmail(context, input.Email); err == nil {
		service.recorder.RecordAuthEvent(metrics.EventRegister, metrics.OutcomeFailure)
		return nil, apperr.Conflict(MsgUserExists)
	} else if !apperr.IsNotFound(err) {
		return nil, fmt.Errorf("auth_service_register_lookup_failed: %w", err)
	}

	hashedPassword, err := sec.HashPassword(input.Password)
	if err != nil {
		return nil, fmt.Errorf("auth_service_hash_failed: %w", err)
	}

	user := &User{
		ID:           uuid.New(),
		UserName:     input.UserName,
		Email:        input.Email,
		PasswordHash: hashedPassword,
		Gender:       Gender(input.Gender),
		Age:          input.Age,
		Role:         sec.RoleUser,
	}

	if err := service.userRepository.Create(context, user); err != nil {
		service.recorder.RecordAuthEvent(metrics.EventRegister, metrics.OutcomeFailure)
		return nil, fmt.Errorf("auth_service_register_failed: %w", err)
	}

	service.recorder.RecordAuthEvent(metrics.EventRegister, metrics.OutcomeSuccess)
	service.logger.InfoContext(context, "identity_registered", slog.String("user_id", user.ID))

	return user, nil
}

// # Authentication Flow

// LoginInput defines credentials for an authentication attempt.
type LoginInput struct {
	Email    string
	Password string
}

/*
Login verifies credentials and mints a session token.

Description: Federated identities skip password verification entirely.

Parameters:
  - context: context.Context
  - input: LoginInput

Returns:
  - *Session: Token and identity
  - error: NotFound (unknown email), ValidationError (missing password),
    Unauthorized (wrong password) or internal failures
*/
func (service *Service) Login(context context.Context, input LoginInput) (*Session, error) {
	input.Email = NormalizeEmail(input.Email)

	if input.Email == "" {
		return nil, validate.RequiredError(FieldEmail, "This field is required")
	}

	user, err := service.userRepository.FindByEmail(context, input.Email)
	if err != nil {
		service.recorder.RecordAuthEvent(metrics.EventLogin, metrics.OutcomeFailure)
		return nil, fmt.Errorf("auth_service_login_lookup_failed: %w", err)
	}

	if !user.IsFederated() {
		if input.Password == "" {
			service.recorder.RecordAuthEvent(metrics.EventLogin, metrics.OutcomeFailure)
			return nil, validate.RequiredError(FieldPassword, MsgPasswordRequired)
		}

		if !sec.CheckPasswordHash(input.Password, user.PasswordHash) {
			service.recorder.RecordAuthEvent(metrics.EventLogin, metrics.OutcomeFailure)
			service.logger.WarnContext(context, "login_password_mismatch", slog.String("user_id", user.ID))
			return nil, apperr.Unauthorized(MsgPasswordMismatch)
		}
	}

	session, err := service.issueSession(user)
	if err != nil {
		return nil, err
	}

	service.recorder.RecordAuthEvent(metrics.EventLogin, metrics.OutcomeSuccess)
	service.logger.InfoContext(context, "identity_logged_in",
		slog.String("user_id", user.ID),
		slog.Bool("federated", user.IsFederated()),
	)

	return session, nil
}

// FederatedInput carries the identity asserted by a trusted third party.
type FederatedInput struct {
	UserName string
	Email    string
	Gender   string
}

/*
FederatedAuth logs in or creates a federated identity.

Description: An existing federated identity is logged in; an unknown email
creates a new federated identity; an email that belongs to a password
identity is rejected.

Parameters:
  - context: context.Context
  - input: FederatedInput

Returns:
  - *Session: Token and identity
  - bool: true when the identity was created by this call
  - error: ValidationError or storage failures
*/
func (service *Service) FederatedAuth(context context.Context, input FederatedInput) (*Session, bool, error) {
	input.UserName = NormalizeUserName(input.UserName)
	input.Email = NormalizeEmail(input.Email)

	validator := &validate.Validator{}
	validator.Required(FieldUserName, input.UserName).
		MaxLen(FieldUserName, input.UserName, MaxUserNameLength).
		Required(FieldEmail, input.Email).
		Email(FieldEmail, input.Email).
		Required(FieldGender, input.Gender)

	if input.Gender != "" {
		validator.OneOf(FieldGender, input.Gender, GenderNames()...)
	}

	if err := validator.Err(); err != nil {
		service.recorder.RecordAuthEvent(metrics.EventFederated, metrics.OutcomeFailure)
		return nil, false, err
	}

	existing, err := service.userRepository.FindByEmail(context, input.Email)
	switch {
	case err == nil && !existing.IsFederated():
		service.recorder.RecordAuthEvent(metrics.EventFederated, metrics.OutcomeFailure)
		return nil, false, apperr.ValidationError(MsgPasswordAccount)

	case err == nil:
		session, err := service.issueSession(existing)
		if err != nil {
			return nil, false, err
		}
		service.recorder.RecordAuthEvent(metrics.EventFederated, metrics.OutcomeSuccess)
		return session, false, nil

	case !apperr.IsNotFound(err):
		return nil, false, fmt.Errorf("auth_service_federated_lookup_failed: %w", err)
	}

	user := &User{
		ID:                uuid.New(),
		UserName:          input.UserName,
		Email:             input.Email,
		CredentialAccount: true,
		Gender:            Gender(input.Gender),
		Role:              sec.RoleUser,
	}

	if err := service.userRepository.Create(context, user); err != nil {
		service.recorder.RecordAuthEvent(metrics.EventFederated, metrics.OutcomeFailure)
		return nil, false, fmt.Errorf("auth_service_federated_create_failed: %w", err)
	}

	session, err := service.issueSession(user)
	if err != nil {
		return nil, false, err
	}

	service.recorder.RecordAuthEvent(metrics.EventFederated, metrics.OutcomeSuccess)
	service.logger.InfoContext(context, "federated_identity_created", slog.String("user_id", user.ID))

	return session, true, nil
}

/*
Logout revokes the session token described by claims.

Description: The token id stays on the revocation list until the token
would have expired. Revoking twice is harmless.

Parameters:
  - context: context.Context
  - claims: *sec.AuthClaims (from the session gate)

Returns:
  - error: Revocation store failures
*/
func (service *Service) Logout(context context.Context, claims *sec.AuthClaims) error {
	if err := RevokeClaims(context, service.revocations, claims, service.now()); err != nil {
		return fmt.Errorf("auth_service_logout_failed: %w", err)
	}

	service.recorder.RecordAuthEvent(metrics.EventLogout, metrics.OutcomeSuccess)
	service.logger.InfoContext(context, "identity_logged_out", slog.String("user_id", claims.UserID))

	return nil
}

// RevokeClaims puts the token id of claims on the revocation list for the
// rest of its lifetime.
func RevokeClaims(context context.Context, revocations RevocationRepository, claims *sec.AuthClaims, now time.Time) error {
	if claims == nil || claims.ID == "" || claims.ExpiresAt == nil {
		return nil
	}
	return revocations.Revoke(context, claims.ID, claims.ExpiresAt.Sub(now))
}

// issueSession mints a token carrying the identity's current role.
func (service *Service) issueSession(user *User) (*Session, error) {
	token, err := service.tokens.IssueToken(user.ID, user.Role)
	if err != nil {
		return nil, fmt.Errorf("auth_service_token_generation_failed: %w", err)
	}

	return &Session{
		Token:     token,
		ExpiresAt: service.now().Add(service.tokens.TimeToLive()),
		User:      user,
	}, nil
}
