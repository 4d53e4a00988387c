package repositories

import (
	"context"

	"github.com/SscSPs/leadvault_backend/internal/core/domain"
	"github.com/jackc/pgx/v5"
)

// CreditRepositoryFacade is the append-only credit ledger plus the
// transaction boundary shared by every balance mutation.
type CreditRepositoryFacade interface {
	TransactionManager

	// AppendTransaction writes one ledger entry within tx.
	AppendTransaction(ctx context.Context, tx pgx.Tx, entry domain.CreditTransaction) error

	// ListTransactions retrieves a page of the user's ledger entries, newest first.
	ListTransactions(ctx context.Context, userID string, limit int, nextToken *string) ([]domain.CreditTransaction, *string, error)
}
