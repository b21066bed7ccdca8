// Copyright (c) 2026 RaynerdTech. All rights reserved.
// Author: RaynerdTech

package auth_test

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
	"github.com/RaynerdTech/ToDo/internal/platform/metrics"
	"github.com/RaynerdTech/ToDo/internal/platform/sec"
	"github.com/RaynerdTech/ToDo/internal/users/auth"
)

const testSecret = "0123456789abcdef0123456789abcdef"

// memoryUsers is an in-memory UserRepository enforcing unique handle and email.
type memoryUsers struct {
	mu    sync.Mutex
	users map[string]*auth.User
}

func newMemoryUsers(seed ...*auth.User) *memoryUsers {
	store := &memoryUsers{users: map[string]*auth.User{}}
	for _, user := range seed {
		store.users[user.ID] = user
	}
	return store
}

func (m *memoryUsers) FindByID(_ context.Context, id string) (*auth.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if user, ok := m.users[id]; ok {
		clone := *user
		return &clone, nil
	}
	return nil, apperr.NotFound("User")
}

func (m *memoryUsers) FindByEmail(_ context.Context, email string) (*auth.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, user := range m.users {
		if user.Email == email {
			clone := *user
			return &clone, nil
		}
	}
	return nil, apperr.NotFound("User")
}

func (m *memoryUsers) Create(_ context.Context, user *auth.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, existing := range m.users {
		if existing.Email == user.Email || existing.UserName == user.UserName {
			return apperr.Conflict("User already exists")
		}
	}
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt
	clone := *user
	m.users[user.ID] = &clone
	return nil
}

// memoryRevocations is an in-memory RevocationRepository.
type memoryRevocations struct {
	mu      sync.Mutex
	revoked map[string]time.Duration
}

func newMemoryRevocations() *memoryRevocations {
	return &memoryRevocations{revoked: map[string]time.Duration{}}
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
	users       *memoryUsers
	revocations *memoryRevocations
	tokens      *sec.TokenService
	service     *auth.Service
}

func newFixture(t *testing.T, seed ...*auth.User) *fixture {
	t.Helper()

	tokens, err := sec.NewTokenService(testSecret, constants.AuthIssuer, constants.SessionTTL)
	require.NoError(t, err)

	users := newMemoryUsers(seed...)
	revocations := newMemoryRevocations()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return &fixture{
		users:       users,
		revocations: revocations,
		tokens:      tokens,
		service:     auth.NewService(users, revocations, tokens, metrics.Nop{}, logger),
	}
}

// passwordUser builds a stored password identity with the given plaintext password.
func passwordUser(t *testing.T, id, email, password string) *auth.User {
	t.Helper()
	hash, err := sec.HashPassword(password)
	require.NoError(t, err)
	age := 30
	return &auth.User{
		ID:           id,
		UserName:     id,
		Email:        email,
		PasswordHash: hash,
		Gender:       auth.GenderOther,
		Age:          &age,
		Role:         sec.RoleUser,
	}
}

// federatedUser builds a stored federated identity.
func federatedUser(id, email string) *auth.User {
	return &auth.User{
		ID:                id,
		UserName:          id,
		Email:             email,
		CredentialAccount: true,
		Gender:            auth.GenderFemale,
		Role:              sec.RoleUser,
	}
}
