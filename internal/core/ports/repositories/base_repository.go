package repositories

import (
	"context"

	"github.com/jackc/pgx/v5"
)

// TransactionManager opens the transactions that span several repository calls,
// such as an unlock (balance lock, lead lock, debit, flag, ledger entry) or a
// saved list rewrite. Methods taking a pgx.Tx run on the pool when it is nil.
type TransactionManager interface {
	Begin(ctx context.Context) (pgx.Tx, error)
	Commit(ctx context.Context, tx pgx.Tx) error
	// Rollback is a no-op on a committed transaction, so it is safe to defer.
	Rollback(ctx context.Context, tx pgx.Tx) error
}
