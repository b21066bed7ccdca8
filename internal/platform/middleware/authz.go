// Copyright (c) 2026 RaynerdTech. All rights reserved.
// Author: RaynerdTech

package middleware

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/RaynerdTech/ToDo/internal/platform/apperr"
	"github.com/RaynerdTech/ToDo/internal/platform/constants"
	"github.com/RaynerdTech/ToDo/internal/platform/ctxutil"
	"github.com/RaynerdTech/ToDo/internal/platform/metrics"
	"github.com/RaynerdTech/ToDo/internal/platform/respond"
	"github.com/RaynerdTech/ToDo/internal/platform/sec"
)

// TokenVerifier defines the interface needed to verify tokens in middleware.
type TokenVerifier interface {
	VerifyToken(tokenString string) (*sec.AuthClaims, error)
}

// RevocationChecker reports whether a token id was revoked before expiry.
type RevocationChecker interface {
	IsRevoked(context context.Context, tokenID string) (bool, error)
}

// Authenticate is the session gate for protected routes.
//
// # Flow
//  1. Read the session cookie. If absent, reject with 401 UNAUTHENTICATED.
//  2. Verify the token via [TokenVerifier]. Expired tokens get TOKEN_EXPIRED,
//     every other failure INVALID_TOKEN.
//  3. Reject tokens whose id is on the revocation list.
//  4. Inject [*sec.AuthClaims] into the request context for downstream use.
//
// Nothing downstream runs when the gate rejects.
func Authenticate(verifier TokenVerifier, revocations RevocationChecker, recorder metrics.Recorder) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {

			// 1. Cookie extraction
			cookie, err := request.Cookie(constants.SessionCookieName)
			if err != nil || cookie.Value == "" {
				recorder.RecordAuthEvent(metrics.EventSession, metrics.OutcomeFailure)
				respond.Error(writer, request, apperr.Unauthenticated("Please log in to continue"))
				return
			}

			// 2. Token verification
			claims, err := verifier.VerifyToken(cookie.Value)
			if err != nil {
				recorder.RecordAuthEvent(metrics.EventSession, metrics.OutcomeFailure)
				if errors.Is(err, sec.ErrExpiredToken) {
					respond.Error(writer, request, apperr.ExpiredToken("Session expired, please log in again"))
					return
				}
				respond.Error(writer, request, apperr.InvalidToken("Invalid session token"))
				return
			}

			// 3. Revocation check
			revoked, err := revocations.IsRevoked(request.Context(), claims.ID)
			if err != nil {
				respond.Error(writer, request, apperr.Internal(fmt.Errorf("revocation_check_failed: %w", err)))
				return
			}
			if revoked {
				recorder.RecordAuthEvent(metrics.EventSession, metrics.OutcomeFailure)
				respond.Error(writer, request, apperr.InvalidToken("Session has been revoked"))
				return
			}

			// 4. Context injection
			recorder.RecordAuthEvent(metrics.EventSession, metrics.OutcomeSuccess)
			ctx := ctxutil.WithAuthUser(request.Context(), claims)
			next.ServeHTTP(writer, request.WithContext(ctx))
		})
	}
}

// RequireRole blocks requests if the session role is below the required role,
// answering 403 with message.
//
// Must be registered in the router AFTER [Authenticate].
func RequireRole(role sec.Role, message string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			claims := ctxutil.GetAuthUser(request.Context())

			// 1. Authentication check
			if claims == nil {
				respond.Error(writer, request, apperr.Unauthenticated("Please log in to continue"))
				return
			}

			// 2. Authorization check
			if !sec.Role(claims.Role).AtLeast(role) {
				respond.Error(writer, request, apperr.Forbidden(message))
				return
			}

			next.ServeHTTP(writer, request)
		})
	}
}
