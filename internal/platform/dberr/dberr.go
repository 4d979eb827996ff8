// Copyright (c) 2026 CineVault. All rights reserved.

// Package dberr provides a bridge between low-level database errors and
// higher-level application errors.
//
// # Classification
//
// PostgreSQL SQLSTATE codes are mapped onto the CineVault error taxonomy so
// that stores never leak driver errors into the service layer:
//
//   - no rows            → NOT_FOUND
//   - 23505 unique       → CONFLICT (duplicate username, duplicate casting triple, ...)
//   - 23503 foreign key  → VALIDATION_ERROR (referenced entity does not exist)
//   - 23514 check        → VALIDATION_ERROR (schema-level guard tripped)
package dberr

import (
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/danghoanh/cinevault/internal/platform/apperr"
)

var (
	// ErrNotFound is a standard error returned when a queried row doesn't exist.
	ErrNotFound = apperr.NotFound("Resource")
)

// Wrap inspects a database error and wraps it into a meaningful [apperr.AppError].
// It hides internal database details from the client while classifying the error type.
//
// The action string names the failed operation for server-side diagnostics only.
func Wrap(err error, action string) error {
	if err == nil {
		return nil
	}

	// 1. Not Found mapping
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}

	// 2. SQLSTATE classification
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgerrcode.UniqueViolation:
			return apperr.Conflict("Record already exists")
		case pgerrcode.ForeignKeyViolation:
			return apperr.ValidationError("Referenced record does not exist")
		case pgerrcode.CheckViolation:
			return apperr.ValidationError("Value rejected by a storage constraint")
		}
	}

	// 3. Unknown query errors become Internal Server Errors
	return apperr.Internal(err)
}

// WrapConflict behaves like [Wrap] but replaces the generic unique-violation
// message with a caller-supplied one (e.g. "Username is already taken").
func WrapConflict(err error, action, conflictMsg string) error {
	wrapped := Wrap(err, action)
	if apperr.IsCode(wrapped, "CONFLICT") {
		return apperr.Conflict(conflictMsg)
	}
	return wrapped
}
