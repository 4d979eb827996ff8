// Copyright (c) 2026 CineVault. All rights reserved.

package apperr_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danghoanh/cinevault/internal/platform/apperr"
)

/*
TestTaxonomy verifies each constructor maps to the right code and HTTP status.
*/
func TestTaxonomy(t *testing.T) {
	tests := []struct {
		name       string
		err        *apperr.AppError
		code       string
		httpStatus int
	}{
		{"not_found", apperr.NotFound("Film"), "NOT_FOUND", http.StatusNotFound},
		{"unauthorized", apperr.Unauthorized("nope"), "UNAUTHORIZED", http.StatusUnauthorized},
		{"forbidden", apperr.Forbidden("nope"), "FORBIDDEN", http.StatusForbidden},
		{"conflict", apperr.Conflict("duplicate"), "CONFLICT", http.StatusConflict},
		{"invariant", apperr.Invariant("last admin"), "INVARIANT_VIOLATION", http.StatusConflict},
		{"validation", apperr.ValidationError("bad input"), "VALIDATION_ERROR", http.StatusBadRequest},
		{"internal", apperr.Internal(errors.New("boom")), "INTERNAL_ERROR", http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, tt.err.Code)
			assert.Equal(t, tt.httpStatus, tt.err.HTTPStatus)
		})
	}
}

/*
TestNotFound_Message checks the resource name lands in the client message.
*/
func TestNotFound_Message(t *testing.T) {
	err := apperr.NotFound("Actor")
	assert.Equal(t, "Actor not found", err.Error())
}

/*
TestAs_Unwrapping verifies extraction through a wrapped chain.
*/
func TestAs_Unwrapping(t *testing.T) {
	inner := apperr.Conflict("duplicate casting")
	wrapped := fmt.Errorf("while assigning role: %w", inner)

	ae := apperr.As(wrapped)
	require.NotNil(t, ae)
	assert.Equal(t, "CONFLICT", ae.Code)

	assert.True(t, apperr.IsAppError(wrapped))
	assert.True(t, apperr.IsCode(wrapped, "CONFLICT"))
	assert.False(t, apperr.IsCode(wrapped, "NOT_FOUND"))
}

/*
TestAs_NotAppError verifies plain errors yield nil.
*/
func TestAs_NotAppError(t *testing.T) {
	err := errors.New("plain failure")
	assert.Nil(t, apperr.As(err))
	assert.False(t, apperr.IsAppError(err))
}

/*
TestInternal_HidesCause verifies the cause never reaches the client message.
*/
func TestInternal_HidesCause(t *testing.T) {
	cause := errors.New("pq: syntax error at line 3")
	err := apperr.Internal(cause)

	assert.NotContains(t, err.Error(), "syntax error")
	assert.ErrorIs(t, err, cause)
}
