// Copyright (c) 2026 RaynerdTech. All rights reserved.
// Author: RaynerdTech

package ctxutil_test

import (
	"context"
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/RaynerdTech/ToDo/internal/platform/ctxutil"
	"github.com/RaynerdTech/ToDo/internal/platform/sec"
)

/*
TestContext_RequestID verifies that Request IDs can be injected and retrieved.
*/
func TestContext_RequestID(t *testing.T) {
	ctx := context.Background()
	requestID := "test-request-id"

	// 1. Initially should be empty
	assert.Empty(t, ctxutil.GetRequestID(ctx))

	// 2. Inject and retrieve
	ctx = ctxutil.WithRequestID(ctx, requestID)
	assert.Equal(t, requestID, ctxutil.GetRequestID(ctx))
}

/*
TestContext_Logger verifies that a custom logger can be stored in context.
*/
func TestContext_Logger(t *testing.T) {
	ctx := context.Background()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	// 1. Initially should return the default logger
	assert.Equal(t, slog.Default(), ctxutil.GetLogger(ctx))

	// 2. Inject and retrieve
	ctx = ctxutil.WithLogger(ctx, logger)
	assert.Equal(t, logger, ctxutil.GetLogger(ctx))
}

/*
TestContext_AuthUser verifies that session claims can be stored in context.
*/
func TestContext_AuthUser(t *testing.T) {
	ctx := context.Background()
	claims := &sec.AuthClaims{
		UserID: "user-123",
		Role:   string(sec.RoleAdmin),
	}

	// 1. Initially should be nil
	assert.Nil(t, ctxutil.GetAuthUser(ctx))

	// 2. Inject and retrieve
	ctx = ctxutil.WithAuthUser(ctx, claims)
	retrieved := ctxutil.GetAuthUser(ctx)

	assert.NotNil(t, retrieved)
	assert.Equal(t, "user-123", retrieved.UserID)
	assert.Equal(t, "Admin", retrieved.Role)
}

/*
TestContext_TraceUserID verifies that claims attached downstream are visible
to an outer context through the trace holder.
*/
func TestContext_TraceUserID(t *testing.T) {
	outer := ctxutil.WithTrace(context.Background())
	assert.Empty(t, ctxutil.GetTraceUserID(outer))

	// 1. Attach claims on a derived context
	_ = ctxutil.WithAuthUser(outer, &sec.AuthClaims{UserID: "user-7"})

	// 2. The outer context sees the id
	assert.Equal(t, "user-7", ctxutil.GetTraceUserID(outer))

	// 3. Without a holder nothing is recorded
	assert.Empty(t, ctxutil.GetTraceUserID(context.Background()))
}
