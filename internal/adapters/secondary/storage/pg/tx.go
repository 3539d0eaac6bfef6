package pg

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
)

// Tx wraps sqlx.Tx and implements persistence.Tx.
type Tx struct {
	tx *sqlx.Tx
}

func (t *Tx) Get(ctx context.Context, dest any, query string, args ...any) error {
	return t.tx.GetContext(ctx, dest, query, args...)
}

func (t *Tx) Select(ctx context.Context, dest any, query string, args ...any) error {
	return t.tx.SelectContext(ctx, dest, query, args...)
}

func (t *Tx) Exec(ctx context.Context, query string, args ...any) error {
	_, err := t.tx.ExecContext(ctx, query, args...)
	return err
}

func (t *Tx) ExecWithResult(ctx context.Context, query string, args ...any) (sql.Result, error) {
	return t.tx.ExecContext(ctx, query, args...)
}

func (t *Tx) NamedExec(ctx context.Context, query string, arg any) error {
	_, err := t.tx.NamedExecContext(ctx, query, arg)
	return err
}

func (t *Tx) QueryRow(ctx context.Context, query string, args ...any) *sql.Row {
	return t.tx.QueryRowContext(ctx, query, args...)
}

// NamedQuery has no context variant on sqlx.Tx; the context is accepted for
// interface symmetry only.
func (t *Tx) NamedQuery(ctx context.Context, query string, arg any) (*sqlx.Rows, error) {
	return t.tx.NamedQuery(query, arg)
}

func (t *Tx) Commit() error {
	return t.tx.Commit()
}

func (t *Tx) Rollback() error {
	return t.tx.Rollback()
}
