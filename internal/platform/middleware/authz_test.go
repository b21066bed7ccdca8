// Copyright (c) 2026 RaynerdTech. All rights reserved.
// Author: RaynerdTech

package middleware_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RaynerdTech/ToDo/internal/platform/constants"
	"github.com/RaynerdTech/ToDo/internal/platform/ctxutil"
	"github.com/RaynerdTech/ToDo/internal/platform/metrics"
	"github.com/RaynerdTech/ToDo/internal/platform/middleware"
	"github.com/RaynerdTech/ToDo/internal/platform/sec"
)

const testSecret = "0123456789abcdef0123456789abcdef"

type fakeRevocations struct {
	revoked map[string]bool
	err     error
}

func (f *fakeRevocations) IsRevoked(_ context.Context, tokenID string) (bool, error) {
	return f.revoked[tokenID], f.err
}

// gateFixture builds a token service and a gated handler that records whether it ran.
func gateFixture(t *testing.T, revocations *fakeRevocations) (*sec.TokenService, http.Handler, *bool) {
	t.Helper()

	tokens, err := sec.NewTokenService(testSecret, constants.AuthIssuer, time.Hour)
	require.NoError(t, err)

	reached := false
	handler := middleware.Authenticate(tokens, revocations, metrics.Nop{})(
		http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			reached = true
			claims := ctxutil.GetAuthUser(request.Context())
			_, _ = writer.Write([]byte(claims.UserID))
		}),
	)
	return tokens, handler, &reached
}

func errorCode(t *testing.T, recorder *httptest.ResponseRecorder) string {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	code, _ := body["code"].(string)
	return code
}

/*
TestAuthenticate_MissingCookie pins the hard 401 for requests without a session.
*/
func TestAuthenticate_MissingCookie(t *testing.T) {
	_, handler, reached := gateFixture(t, &fakeRevocations{})

	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/tasks", nil))

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	assert.Equal(t, "UNAUTHENTICATED", errorCode(t, recorder))
	assert.False(t, *reached)
}

/*
TestAuthenticate_TokenFailures maps verification failures to their error codes.
*/
func TestAuthenticate_TokenFailures(t *testing.T) {
	tokens, handler, reached := gateFixture(t, &fakeRevocations{})

	issuedAt := time.Now().Add(-2 * time.Hour)
	expired, err := tokens.WithClock(func() time.Time { return issuedAt }).IssueToken("user-1", sec.RoleUser)
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
		code  string
	}{
		{"garbage", "not-a-jwt", "INVALID_TOKEN"},
		{"expired", expired, "TOKEN_EXPIRED"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			request := httptest.NewRequest(http.MethodGet, "/tasks", nil)
			request.AddCookie(&http.Cookie{Name: constants.SessionCookieName, Value: tt.token})

			recorder := httptest.NewRecorder()
			handler.ServeHTTP(recorder, request)

			assert.Equal(t, http.StatusUnauthorized, recorder.Code)
			assert.Equal(t, tt.code, errorCode(t, recorder))
			assert.False(t, *reached)
		})
	}
}

/*
TestAuthenticate_ValidToken attaches claims and reaches the handler.
*/
func TestAuthenticate_ValidToken(t *testing.T) {
	tokens, handler, reached := gateFixture(t, &fakeRevocations{})

	token, err := tokens.IssueToken("user-42", sec.RoleUser)
	require.NoError(t, err)

	request := httptest.NewRequest(http.MethodGet, "/tasks", nil)
	request.AddCookie(&http.Cookie{Name: constants.SessionCookieName, Value: token})

	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "user-42", recorder.Body.String())
	assert.True(t, *reached)
}

/*
TestAuthenticate_RevokedToken rejects a token whose id was revoked at logout.
*/
func TestAuthenticate_RevokedToken(t *testing.T) {
	revocations := &fakeRevocations{revoked: map[string]bool{}}
	tokens, handler, reached := gateFixture(t, revocations)

	token, err := tokens.IssueToken("user-42", sec.RoleUser)
	require.NoError(t, err)
	claims, err := tokens.VerifyToken(token)
	require.NoError(t, err)
	revocations.revoked[claims.ID] = true

	request := httptest.NewRequest(http.MethodGet, "/tasks", nil)
	request.AddCookie(&http.Cookie{Name: constants.SessionCookieName, Value: token})

	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	assert.Equal(t, "INVALID_TOKEN", errorCode(t, recorder))
	assert.False(t, *reached)
}

/*
TestAuthenticate_RevocationStoreDown fails closed with a 500.
*/
func TestAuthenticate_RevocationStoreDown(t *testing.T) {
	tokens, handler, reached := gateFixture(t, &fakeRevocations{err: errors.New("redis down")})

	token, err := tokens.IssueToken("user-42", sec.RoleUser)
	require.NoError(t, err)

	request := httptest.NewRequest(http.MethodGet, "/tasks", nil)
	request.AddCookie(&http.Cookie{Name: constants.SessionCookieName, Value: token})

	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusInternalServerError, recorder.Code)
	assert.False(t, *reached)
}

/*
TestRequireRole checks the privilege threshold against the session role.
*/
func TestRequireRole(t *testing.T) {
	tests := []struct {
		name   string
		claims *sec.AuthClaims
		status int
	}{
		{"anonymous", nil, http.StatusUnauthorized},
		{"user", &sec.AuthClaims{UserID: "u", Role: "User"}, http.StatusForbidden},
		{"admin", &sec.AuthClaims{UserID: "a", Role: "Admin"}, http.StatusOK},
		{"super_admin", &sec.AuthClaims{UserID: "s", Role: "SuperAdmin"}, http.StatusOK},
	}

	handler := middleware.RequireRole(sec.RoleAdmin, "no")(http.HandlerFunc(func(writer http.ResponseWriter, _ *http.Request) {
		writer.WriteHeader(http.StatusOK)
	}))

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			request := httptest.NewRequest(http.MethodPut, "/change-role/x", nil)
			if tt.claims != nil {
				request = request.WithContext(ctxutil.WithAuthUser(request.Context(), tt.claims))
			}

			recorder := httptest.NewRecorder()
			handler.ServeHTTP(recorder, request)
			assert.Equal(t, tt.status, recorder.Code)
			if tt.status == http.StatusForbidden {
				assert.Contains(t, recorder.Body.String(), `"error":"no"`)
			}
		})
	}
}
