package database

import (
	"context"
	"database/sql"
)

// Executor is the query surface shared by the pool and an open transaction,
// so repositories can run the same statements inside or outside a Tx.
type Executor interface {
	Exec(ctx context.Context, query string, args ...any) (int64, error)
	Query(ctx context.Context, query string, args ...any) (Rows, error)
	QueryRow(ctx context.Context, query string, args ...any) Row
}

type DB interface {
	Executor

	Ping(ctx context.Context) error
	Close() error

	Begin(ctx context.Context) (Tx, error)

	// SQLDB exposes the stdlib handle for tooling that needs *sql.DB.
	SQLDB() *sql.DB
}

type Tx interface {
	Executor

	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

type Rows interface {
	Close()
	Next() bool
	Scan(dest ...any) error
	Err() error
}

type Row interface {
	Scan(dest ...any) error
}
