// Copyright (c) 2026 RaynerdTech. All rights reserved.
// Author: RaynerdTech

package account_test

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/RaynerdTech/ToDo/internal/platform/apperr"
	"github.com/RaynerdTech/ToDo/internal/platform/constants"
	"github.com/RaynerdTech/ToDo/internal/platform/sec"
	"github.com/RaynerdTech/ToDo/internal/users/account"
	"github.com/RaynerdTech/ToDo/internal/users/auth"
)

const testSecret = "0123456789abcdef0123456789abcdef"

// memoryAccounts is an in-memory AccountRepository enforcing unique handle and email.
type memoryAccounts struct {
	mu    sync.Mutex
	users map[string]*auth.User
}

func newMemoryAccounts(seed ...*auth.User) *memoryAccounts {
	store := &memoryAccounts{users: map[string]*auth.User{}}
	for _, user := range seed {
		store.users[user.ID] = user
	}
	return store
}

func (m *memoryAccounts) get(id string) *auth.User {
	m.mu.Lock()
	defer m.mu.Unlock()
	if user, ok := m.users[id]; ok {
		clone := *user
		return &clone
	}
	return nil
}

func (m *memoryAccounts) FindByID(_ context.Context, id string) (*auth.User, error) {
	if user := m.get(id); user != nil {
		return user, nil
	}
	return nil, apperr.NotFound("User")
}

func (m *memoryAccounts) Update(_ context.Context, user *auth.User) (*auth.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.users[user.ID]; !ok {
		return nil, apperr.NotFound("User")
	}
	for id, existing := range m.users {
		if id != user.ID && (existing.Email == user.Email || existing.UserName == user.UserName) {
			return nil, apperr.Conflict("User already exists")
		}
	}
	clone := *user
	clone.UpdatedAt = time.Now()
	m.users[user.ID] = &clone
	result := clone
	return &result, nil
}

func (m *memoryAccounts) UpdatePassword(_ context.Context, id, passwordHash string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	user, ok := m.users[id]
	if !ok {
		return apperr.NotFound("User")
	}
	user.PasswordHash = passwordHash
	return nil
}

func (m *memoryAccounts) UpdateRole(_ context.Context, id string, role sec.Role) (*auth.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	user, ok := m.users[id]
	if !ok {
		return nil, apperr.NotFound("User")
	}
	user.Role = role
	clone := *user
	return &clone, nil
}

func (m *memoryAccounts) Delete(_ context.Context, id string) (*auth.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	user, ok := m.users[id]
	if !ok {
		return nil, apperr.NotFound("User")
	}
	delete(m.users, id)
	return user, nil
}

// memoryRevocations is an in-memory auth.RevocationRepository.
type memoryRevocations struct {
	mu      sync.Mutex
	revoked map[string]time.Duration
}

func (m *memoryRevocations) Revoke(_ context.Context, tokenID string, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.revoked[tokenID] = ttl
	return nil
}

func (m *memoryRevocations) IsRevoked(_ context.Context, tokenID string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.revoked[tokenID]
	return ok, nil
}

// fixture bundles a service with its collaborators.
type fixture struct {
	accounts    *memoryAccounts
	revocations *memoryRevocations
	tokens      *sec.TokenService
	service     *account.Service
}

func newFixture(t *testing.T, seed ...*auth.User) *fixture {
	t.Helper()

	tokens, err := sec.NewTokenService(testSecret, constants.AuthIssuer, constants.SessionTTL)
	require.NoError(t, err)

	accounts := newMemoryAccounts(seed...)
	revocations := &memoryRevocations{revoked: map[string]time.Duration{}}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return &fixture{
		accounts:    accounts,
		revocations: revocations,
		tokens:      tokens,
		service:     account.NewService(accounts, revocations, logger),
	}
}

// claimsFor issues and verifies a real token so claims carry jti and expiry.
func (f *fixture) claimsFor(t *testing.T, user *auth.User) *sec.AuthClaims {
	t.Helper()
	token, err := f.tokens.IssueToken(user.ID, user.Role)
	require.NoError(t, err)
	claims, err := f.tokens.VerifyToken(token)
	require.NoError(t, err)
	return claims
}

// passwordUser builds a stored password identity.
func passwordUser(t *testing.T, id, password string, role sec.Role) *auth.User {
	t.Helper()
	hash, err := sec.HashPassword(password)
	require.NoError(t, err)
	age := 30
	return &auth.User{
		ID:           id,
		UserName:     id,
		Email:        id + "@x.com",
		PasswordHash: hash,
		Gender:       auth.GenderOther,
		Age:          &age,
		Role:         role,
	}
}

// federatedUser builds a stored federated identity.
func federatedUser(id string) *auth.User {
	return &auth.User{
		ID:                id,
		UserName:          id,
		Email:             id + "@x.com",
		CredentialAccount: true,
		Role:              sec.RoleUser,
	}
}
