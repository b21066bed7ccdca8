// Copyright (c) 2026 RaynerdTech. All rights reserved.
// Author: RaynerdTech

// Package ctxutil provides helpers for interacting with values stored in [context.Context].
package ctxutil

import (
	"context"
	"log/slog"

	"github.com/RaynerdTech/ToDo/internal/platform/ctxkey"
	"github.com/RaynerdTech/ToDo/internal/platform/sec"
)

// # Request Tracing

// WithRequestID returns a new context with the provided request ID attached.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, ctxkey.KeyRequestID, id)
}

// GetRequestID retrieves the request ID from the context.
// Returns an empty string if not found.
func GetRequestID(ctx context.Context) string {
	id, _ := ctx.Value(ctxkey.KeyRequestID).(string)
	return id
}

// # Structured Logging

// WithLogger returns a new context with the provided logger attached.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, ctxkey.KeyLogger, logger)
}

// GetLogger retrieves the logger from the context.
// If no logger is found, it returns the global default logger.
func GetLogger(ctx context.Context) *slog.Logger {
	logger, ok := ctx.Value(ctxkey.KeyLogger).(*slog.Logger)
	if !ok || logger == nil {
		return slog.Default()
	}
	return logger
}

// # Trace Holder

// trace carries values that inner middleware discovers and outer middleware
// reports after the request has finished.
type trace struct {
	userID string
}

// WithTrace returns a new context carrying an empty trace holder.
func WithTrace(ctx context.Context) context.Context {
	return context.WithValue(ctx, ctxkey.KeyTrace, &trace{})
}

// GetTraceUserID returns the user id recorded on the trace holder, if any.
func GetTraceUserID(ctx context.Context) string {
	holder, ok := ctx.Value(ctxkey.KeyTrace).(*trace)
	if !ok {
		return ""
	}
	return holder.userID
}

// # Identity & Access

// WithAuthUser returns a new context with the provided session claims attached.
//
// The user id is also recorded on the trace holder when one is present.
func WithAuthUser(ctx context.Context, user *sec.AuthClaims) context.Context {
	if holder, ok := ctx.Value(ctxkey.KeyTrace).(*trace); ok && user != nil {
		holder.userID = user.UserID
	}
	return context.WithValue(ctx, ctxkey.KeyUser, user)
}

// GetAuthUser retrieves the [*sec.AuthClaims] from the [context.Context].
func GetAuthUser(ctx context.Context) *sec.AuthClaims {
	claims, ok := ctx.Value(ctxkey.KeyUser).(*sec.AuthClaims)
	if !ok {
		return nil
	}
	return claims
}
