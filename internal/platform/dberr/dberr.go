// Copyright (c) 2026 Meeple. All rights reserved.

// Package dberr provides a bridge between low-level database errors and
// higher-level application errors.
//
// # Ordering
//
// Structured [apperr.AppError] values always pass through untouched. Only
// errors the domain layer never classified fall through to the SQLSTATE
// mapping, and anything still unrecognized becomes a 500.
package dberr

import (
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/boardhaus/meeple/internal/platform/apperr"
)

var (
	// ErrNotFound is a standard error returned when a queried row doesn't exist.
	ErrNotFound = apperr.NotFound("Resource not found")
)

// Wrap inspects a database error and wraps it into a meaningful [apperr.AppError].
// It hides internal database details from the client while classifying the error type.
//
// The action label is attached to the cause for server-side logs only.
func Wrap(err error, action string) error {
	if err == nil {
		return nil
	}

	// 1. Domain errors are already classified; never reinterpret them.
	if apperr.IsAppError(err) {
		return err
	}

	// 2. Not Found mapping
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}

	// 3. SQLSTATE mapping for errors the domain layer does not inspect.
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgerrcode.InvalidTextRepresentation:
			// A value could not be cast to the column type (e.g. non-numeric id).
			return apperr.BadRequest("Invalid Input")
		case pgerrcode.ForeignKeyViolation:
			return apperr.BadRequest("Invalid user or review id does not exist")
		}
	}

	// 4. Unknown query errors become Internal Server Errors.
	return apperr.Internal(fmt.Errorf("%s: %w", action, err))
}
