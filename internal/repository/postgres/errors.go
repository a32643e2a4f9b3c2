package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

const uniqueViolation = "23505"

// isUniqueViolation matches a postgres duplicate-key error, optionally
// narrowed to one constraint. The unique constraints are the storage-level
// guard against concurrent duplicate submissions, so repositories translate
// this error instead of pre-checking existence.
func isUniqueViolation(err error, constraint string) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}
	if pgErr.Code != uniqueViolation {
		return false
	}
	return constraint == "" || pgErr.ConstraintName == constraint
}
