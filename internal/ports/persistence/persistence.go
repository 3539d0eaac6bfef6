package persistence

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
)

// Persistence abstracts the SQL storage used by repositories. Implemented
// by the pg adapter for both plain connections and transactions.
type Persistence interface {
	Get(ctx context.Context, dest any, query string, args ...any) error
	Select(ctx context.Context, dest any, query string, args ...any) error
	Exec(ctx context.Context, query string, args ...any) error
	ExecWithResult(ctx context.Context, query string, args ...any) (sql.Result, error)
	NamedExec(ctx context.Context, query string, arg any) error
	QueryRow(ctx context.Context, query string, args ...any) *sql.Row
	NamedQuery(ctx context.Context, query string, arg any) (*sqlx.Rows, error)
}

// Transactional is implemented by the root persistence layer that can open
// transactions.
type Transactional interface {
	Persistence
	BeginTx(ctx context.Context) (Tx, error)
	WithTransaction(ctx context.Context, fn func(tx Persistence) error) error
}

// Tx is an in-flight transaction.
type Tx interface {
	Persistence
	Commit() error
	Rollback() error
}
