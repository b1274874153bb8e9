package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// TxManager groups repository calls into one PostgreSQL transaction. The
// batch service uses it so saving settings and recording a run land together.
type TxManager struct {
	pool *pgxpool.Pool
	opts pgx.TxOptions
}

// NewTxManager creates a TxManager running at the server's default isolation
// level (Read Committed). One-active-run is enforced by a unique index, not
// by isolation.
func NewTxManager(pool *pgxpool.Pool) *TxManager {
	return &TxManager{pool: pool}
}

// RunInTx runs fn inside a transaction. It commits when fn returns nil and
// rolls back on error or panic; the panic is re-raised. A call made while ctx
// already carries a transaction joins it instead of opening a second one.
func (m *TxManager) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if InTx(ctx) {
		return fn(ctx)
	}

	var fnErr error
	err := pgx.BeginTxFunc(ctx, m.pool, m.opts, func(tx pgx.Tx) error {
		fnErr = fn(withTx(ctx, tx))
		return fnErr
	})
	if err != nil && fnErr == nil {
		return fmt.Errorf("postgres tx: %w", err)
	}
	return err
}
