// Package repository implements persistence over a pgx connection pool.
// Uniqueness and referential-integrity violations raised by PostgreSQL are
// translated here into the sentinel errors of pkg/app_errors so that
// services and handlers never see driver error codes.
package repository

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

func isUniqueViolation(err error, constraint string) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != pgUniqueViolation {
		return false
	}
	return constraint == "" || pgErr.ConstraintName == constraint
}

func isForeignKeyViolation(err error, constraint string) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != pgForeignKeyViolation {
		return false
	}
	return constraint == "" || pgErr.ConstraintName == constraint
}
