package pg

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"

	"github.com/vbautistacode/etheria/internal/ports/persistence"
)

// DB wraps sqlx.DB and implements persistence.Transactional.
type DB struct {
	Db *sqlx.DB
}

func NewDB(db *sqlx.DB) *DB {
	return &DB{Db: db}
}

// Get runs a query and scans a single row into dest.
func (d *DB) Get(ctx context.Context, dest any, query string, args ...any) error {
	return d.Db.GetContext(ctx, dest, query, args...)
}

// Select runs a query and scans all rows into the dest slice.
func (d *DB) Select(ctx context.Context, dest any, query string, args ...any) error {
	return d.Db.SelectContext(ctx, dest, query, args...)
}

// Exec runs a statement without returning data.
func (d *DB) Exec(ctx context.Context, query string, args ...any) error {
	_, err := d.Db.ExecContext(ctx, query, args...)
	return err
}

// ExecWithResult runs a statement and returns the sql.Result.
func (d *DB) ExecWithResult(ctx context.Context, query string, args ...any) (sql.Result, error) {
	return d.Db.ExecContext(ctx, query, args...)
}

// NamedExec runs a named statement using struct tags.
func (d *DB) NamedExec(ctx context.Context, query string, arg any) error {
	_, err := d.Db.NamedExecContext(ctx, query, arg)
	return err
}

// QueryRow runs a query returning a single row, used with RETURNING.
func (d *DB) QueryRow(ctx context.Context, query string, args ...any) *sql.Row {
	return d.Db.QueryRowContext(ctx, query, args...)
}

// NamedQuery runs a named query and returns the rows.
func (d *DB) NamedQuery(ctx context.Context, query string, arg any) (*sqlx.Rows, error) {
	return d.Db.NamedQuery(query, arg)
}

// BeginTx opens a new transaction.
func (d *DB) BeginTx(ctx context.Context) (persistence.Tx, error) {
	tx, err := d.Db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, err
	}
	return &Tx{tx: tx}, nil
}

// WithTransaction runs fn inside a transaction with automatic
// commit/rollback.
func (d *DB) WithTransaction(ctx context.Context, fn func(tx persistence.Persistence) error) error {
	tx, err := d.BeginTx(ctx)
	if err != nil {
		return err
	}

	if err := fn(tx); err != nil {
		if rollbackErr := tx.Rollback(); rollbackErr != nil {
			return rollbackErr
		}
		return err
	}

	return tx.Commit()
}

// Ping checks database liveness.
func (d *DB) Ping(ctx context.Context) error {
	return d.Db.PingContext(ctx)
}

// Close closes the connection pool.
func (d *DB) Close() error {
	return d.Db.Close()
}
