// Copyright (c) 2026 CineVault. All rights reserved.

package dberr_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danghoanh/cinevault/internal/platform/apperr"
	"github.com/danghoanh/cinevault/internal/platform/dberr"
)

/*
TestWrap_Classification checks the SQLSTATE-to-taxonomy mapping.
*/
func TestWrap_Classification(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code string
	}{
		{"no_rows", pgx.ErrNoRows, "NOT_FOUND"},
		{"wrapped_no_rows", fmt.Errorf("query: %w", pgx.ErrNoRows), "NOT_FOUND"},
		{"unique_violation", &pgconn.PgError{Code: pgerrcode.UniqueViolation}, "CONFLICT"},
		{"foreign_key_violation", &pgconn.PgError{Code: pgerrcode.ForeignKeyViolation}, "VALIDATION_ERROR"},
		{"check_violation", &pgconn.PgError{Code: pgerrcode.CheckViolation}, "VALIDATION_ERROR"},
		{"unknown_error", errors.New("connection reset"), "INTERNAL_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wrapped := dberr.Wrap(tt.err, "test_action")
			require.Error(t, wrapped)

			ae := apperr.As(wrapped)
			require.NotNil(t, ae)
			assert.Equal(t, tt.code, ae.Code)
		})
	}
}

/*
TestWrap_Nil verifies nil passes through untouched.
*/
func TestWrap_Nil(t *testing.T) {
	assert.NoError(t, dberr.Wrap(nil, "noop"))
}

/*
TestWrapConflict_CustomMessage verifies only unique violations get the custom message.
*/
func TestWrapConflict_CustomMessage(t *testing.T) {
	unique := &pgconn.PgError{Code: pgerrcode.UniqueViolation}
	err := dberr.WrapConflict(unique, "create_account", "Username is already taken")
	assert.Equal(t, "Username is already taken", err.Error())

	notFound := dberr.WrapConflict(pgx.ErrNoRows, "create_account", "Username is already taken")
	assert.True(t, apperr.IsCode(notFound, "NOT_FOUND"))
}
