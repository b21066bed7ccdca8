// Copyright (c) 2026 RaynerdTech. All rights reserved.
// Author: RaynerdTech

package auth_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RaynerdTech/ToDo/internal/platform/constants"
	"github.com/RaynerdTech/ToDo/internal/platform/metrics"
	"github.com/RaynerdTech/ToDo/internal/platform/middleware"
	"github.com/RaynerdTech/ToDo/internal/users/auth"
)

// newRouter mounts the auth handler behind the real session gate.
func newRouter(f *fixture) http.Handler {
	router := chi.NewRouter()
	gate := middleware.Authenticate(f.tokens, f.revocations, metrics.Nop{})
	auth.NewHandler(f.service, true).Mount(router, gate)
	return router
}

func doJSON(handler http.Handler, method, path, body string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	request := httptest.NewRequest(method, path, strings.NewReader(body))
	request.Header.Set("Content-Type", "application/json")
	for _, cookie := range cookies {
		request.AddCookie(cookie)
	}
	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, request)
	return recorder
}

func sessionCookie(recorder *httptest.ResponseRecorder) *http.Cookie {
	for _, cookie := range recorder.Result().Cookies() {
		if cookie.Name == constants.SessionCookieName {
			return cookie
		}
	}
	return nil
}

/*
TestRegisterEndpoint_Scenario registers alice, then rejects the same email.
*/
func TestRegisterEndpoint_Scenario(t *testing.T) {
	router := newRouter(newFixture(t))
	body := `{"userName":"alice","email":"a@x.com","password":"pw","age":30,"gender":"Other"}`

	// 1. First registration succeeds without leaking the password
	recorder := doJSON(router, http.MethodPost, "/register", body)
	require.Equal(t, http.StatusCreated, recorder.Code)

	var payload struct {
		Message string                 `json:"message"`
		User    map[string]interface{} `json:"user"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &payload))
	assert.Equal(t, "User registered successfully", payload.Message)
	assert.Equal(t, "alice", payload.User["userName"])
	assert.NotContains(t, payload.User, "password")
	assert.NotContains(t, recorder.Body.String(), "$2a$")

	// 2. Same email again
	recorder = doJSON(router, http.MethodPost, "/register", body)
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "User already exists")
}

/*
TestRegisterEndpoint_RoleField accepts an explicit User role and refuses
self-assigned privileged roles before anything is stored.
*/
func TestRegisterEndpoint_RoleField(t *testing.T) {
	tests := []struct {
		name   string
		role   string
		status int
	}{
		{"user", "User", http.StatusCreated},
		{"admin", "Admin", http.StatusBadRequest},
		{"super_admin", "SuperAdmin", http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newRouter(newFixture(t))
			body := `{"userName":"carol","email":"c@x.com","password":"pw","age":25,"gender":"Female","role":"` + tt.role + `"}`

			recorder := doJSON(router, http.MethodPost, "/register", body)
			require.Equal(t, tt.status, recorder.Code)
			if tt.status == http.StatusBadRequest {
				assert.Contains(t, recorder.Body.String(), auth.MsgElevatedRole)

				// Nothing was stored, so the email is still free
				retry := `{"userName":"carol","email":"c@x.com","password":"pw","age":25,"gender":"Female"}`
				assert.Equal(t, http.StatusCreated, doJSON(router, http.MethodPost, "/register", retry).Code)
			}
		})
	}
}

/*
TestLoginEndpoint_SetsSessionCookie checks the cookie attributes.
*/
func TestLoginEndpoint_SetsSessionCookie(t *testing.T) {
	f := newFixture(t, passwordUser(t, "u-1", "p@x.com", "secret"))
	router := newRouter(f)

	recorder := doJSON(router, http.MethodPost, "/login", `{"email":"p@x.com","password":"secret"}`)
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "Successfully logged in")

	cookie := sessionCookie(recorder)
	require.NotNil(t, cookie)
	assert.True(t, cookie.HttpOnly)
	assert.True(t, cookie.Secure)
	assert.Equal(t, http.SameSiteStrictMode, cookie.SameSite)
	assert.Equal(t, "/", cookie.Path)

	claims, err := f.tokens.VerifyToken(cookie.Value)
	require.NoError(t, err)
	assert.Equal(t, "u-1", claims.UserID)
}

/*
TestLoginEndpoint_Failures maps service errors to status codes.
*/
func TestLoginEndpoint_Failures(t *testing.T) {
	router := newRouter(newFixture(t, passwordUser(t, "u-1", "p@x.com", "secret")))

	tests := []struct {
		name   string
		body   string
		status int
	}{
		{"malformed", `{"email":`, http.StatusBadRequest},
		{"unknown", `{"email":"x@x.com","password":"a"}`, http.StatusNotFound},
		{"no_password", `{"email":"p@x.com"}`, http.StatusBadRequest},
		{"bad_password", `{"email":"p@x.com","password":"nope"}`, http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := doJSON(router, http.MethodPost, "/login", tt.body)
			assert.Equal(t, tt.status, recorder.Code)
			assert.Nil(t, sessionCookie(recorder))
		})
	}
}

/*
TestFederatedEndpoint_Statuses returns 201 on creation and 200 on re-login.
*/
func TestFederatedEndpoint_Statuses(t *testing.T) {
	router := newRouter(newFixture(t))
	body := `{"userName":"fed","email":"fed@x.com","gender":"Female"}`

	recorder := doJSON(router, http.MethodPost, "/auth", body)
	assert.Equal(t, http.StatusCreated, recorder.Code)
	assert.NotNil(t, sessionCookie(recorder))

	recorder = doJSON(router, http.MethodPost, "/auth", body)
	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.NotNil(t, sessionCookie(recorder))
}

/*
TestLogoutEndpoint clears the cookie and revokes the token.
*/
func TestLogoutEndpoint(t *testing.T) {
	f := newFixture(t, passwordUser(t, "u-1", "p@x.com", "secret"))
	router := newRouter(f)

	// 1. Without a session the gate rejects
	recorder := doJSON(router, http.MethodPost, "/logout", "")
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)

	// 2. Log in, then out
	login := doJSON(router, http.MethodPost, "/login", `{"email":"p@x.com","password":"secret"}`)
	cookie := sessionCookie(login)
	require.NotNil(t, cookie)

	recorder = doJSON(router, http.MethodPost, "/logout", "", cookie)
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "Successfully logged out")

	cleared := sessionCookie(recorder)
	require.NotNil(t, cleared)
	assert.Empty(t, cleared.Value)
	assert.Less(t, cleared.MaxAge, 0)

	// 3. The old token no longer passes the gate
	recorder = doJSON(router, http.MethodPost, "/logout", "", cookie)
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "INVALID_TOKEN")
}
