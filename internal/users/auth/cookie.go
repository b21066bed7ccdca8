// Copyright (c) 2026 RaynerdTech. All rights reserved.
// Author: RaynerdTech

package auth

import (
	"net/http"
	"time"

	"github.com/RaynerdTech/ToDo/internal/platform/constants"
)

// SetSessionCookie writes the session token cookie.
//
// The cookie is HttpOnly and SameSite=Strict; secure controls the Secure
// attribute so that plain-HTTP development setups can still log in.
func SetSessionCookie(writer http.ResponseWriter, session *Session, secure bool) {
	http.SetCookie(writer, &http.Cookie{
		Name:     constants.SessionCookieName,
		Value:    session.Token,
		Path:     constants.SessionCookiePath,
		Expires:  session.ExpiresAt,
		MaxAge:   int(time.Until(session.ExpiresAt).Seconds()),
		Secure:   secure,
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
	})
}

// ClearSessionCookie expires the session cookie on the client.
// Clearing an already-cleared cookie is harmless.
func ClearSessionCookie(writer http.ResponseWriter, secure bool) {
	http.SetCookie(writer, &http.Cookie{
		Name:     constants.SessionCookieName,
		Value:    "",
		Path:     constants.SessionCookiePath,
		MaxAge:   -1,
		Secure:   secure,
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
	})
}
