// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package apierr defines the stable error taxonomy returned by the catalog
// services and the translation from raw store errors into it. Callers see
// one tagged error kind per failure regardless of whether it was detected
// by a proactive service check or by a database constraint after a race.
package apierr

import (
	"errors"
	"net/http"

	"github.com/jackc/pgx/v5/pgconn"
)

// Kind tags an Error with its taxonomy member.
type Kind int

const (
	KindValidation Kind = iota + 1
	KindNotFound
	KindConflict
	KindUnauthorized
	KindInternal
)

// String returns the wire name of the kind.
func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation_error"
	case KindNotFound:
		return "not_found"
	case KindConflict:
		return "conflict"
	case KindUnauthorized:
		return "unauthorized"
	default:
		return "internal"
	}
}

// Error is a typed API failure with a caller-visible message. The wrapped
// cause, if any, is for logs only and never reaches the caller.
type Error struct {
	Kind    Kind
	Message string
	cause   error
}

func (e *Error) Error() string { return e.Message }

// Unwrap exposes the underlying store error for logging and errors.Is/As.
func (e *Error) Unwrap() error { return e.cause }

// HTTPStatus maps the taxonomy member to its response status code.
func (e *Error) HTTPStatus() int {
	switch e.Kind {
	case KindValidation:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	case KindConflict:
		return http.StatusConflict
	case KindUnauthorized:
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

// Validation reports input that fails shape, length, or format constraints.
func Validation(msg string) *Error {
	return &Error{Kind: KindValidation, Message: msg}
}

// NotFound reports a lookup, update, or delete of an entity that does not exist.
func NotFound(msg string) *Error {
	return &Error{Kind: KindNotFound, Message: msg}
}

// Conflict reports a uniqueness constraint that would be violated.
func Conflict(msg string) *Error {
	return &Error{Kind: KindConflict, Message: msg}
}

// Unauthorized reports a mutation attempt without an authenticated caller.
func Unauthorized(msg string) *Error {
	return &Error{Kind: KindUnauthorized, Message: msg}
}

// Internal wraps an unexpected store failure behind a generic message so
// storage details are never leaked to callers.
func Internal(cause error) *Error {
	return &Error{Kind: KindInternal, Message: "Something went wrong", cause: cause}
}

// PostgreSQL error codes (class 23 — integrity constraint violation).
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// Caller-visible messages for the known unique constraints. Keyed by
// constraint name so each entity gets its own wording.
var uniqueMessages = map[string]string{
	"categories_slug_key":        "A category with this slug already exists",
	"tools_category_id_slug_key": "please enter a unique slug",
}

// FromStore translates a raw store error into a taxonomy member. Unique
// violations become Conflict with the constraint's message; foreign key
// violations on tool writes become Validation ("Category not found");
// anything unrecognized becomes Internal. A *Error passes through unchanged
// so services can pre-check and fall through to the same translation.
func FromStore(err error) *Error {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			if msg, ok := uniqueMessages[pgErr.ConstraintName]; ok {
				return Conflict(msg)
			}
			return Conflict("a record with these details already exists")
		case pgForeignKeyViolation:
			return Validation("Category not found")
		}
	}

	return Internal(err)
}

// IsForeignKeyViolation reports whether err is a Postgres foreign key
// violation. The category delete path uses this to turn a lost race with a
// concurrent tool insert into the same Conflict its pre-check produces.
func IsForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgForeignKeyViolation
}
