// Copyright (c) 2026 CineVault. All rights reserved.

package ctxutil_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danghoanh/cinevault/internal/platform/ctxutil"
	"github.com/danghoanh/cinevault/internal/platform/sec"
)

/*
TestRequestID_Roundtrip stores and retrieves a request ID.
*/
func TestRequestID_Roundtrip(t *testing.T) {
	ctx := ctxutil.WithRequestID(context.Background(), "req-123")
	assert.Equal(t, "req-123", ctxutil.GetRequestID(ctx))
}

/*
TestRequestID_Missing returns empty when no ID is attached.
*/
func TestRequestID_Missing(t *testing.T) {
	assert.Equal(t, "", ctxutil.GetRequestID(context.Background()))
}

/*
TestLogger_Roundtrip stores and retrieves a scoped logger.
*/
func TestLogger_Roundtrip(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	ctx := ctxutil.WithLogger(context.Background(), logger)

	assert.Same(t, logger, ctxutil.GetLogger(ctx))
}

/*
TestLogger_FallsBackToDefault returns the default logger when unset.
*/
func TestLogger_FallsBackToDefault(t *testing.T) {
	assert.NotNil(t, ctxutil.GetLogger(context.Background()))
}

/*
TestAuthUser_Roundtrip stores and retrieves auth claims.
*/
func TestAuthUser_Roundtrip(t *testing.T) {
	claims := &sec.AuthClaims{Username: "linh", Role: string(sec.RoleManager)}
	ctx := ctxutil.WithAuthUser(context.Background(), claims)

	got := ctxutil.GetAuthUser(ctx)
	require.NotNil(t, got)
	assert.Equal(t, "linh", got.Username)
}

/*
TestAuthUser_Anonymous returns nil when no claims are attached.
*/
func TestAuthUser_Anonymous(t *testing.T) {
	assert.Nil(t, ctxutil.GetAuthUser(context.Background()))
}
