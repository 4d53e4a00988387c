package pgsql

import (
	"context"
	"fmt"

	"github.com/SscSPs/leadvault_backend/internal/apperrors"
	"github.com/SscSPs/leadvault_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/leadvault_backend/internal/core/ports/repositories"
	"github.com/SscSPs/leadvault_backend/internal/models"
	"github.com/SscSPs/leadvault_backend/internal/utils/mapping"
	"github.com/SscSPs/leadvault_backend/internal/utils/pagination"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxCreditRepository stores the append-only credit ledger.
type PgxCreditRepository struct {
	BaseRepository
}

func newPgxCreditRepository(db *pgxpool.Pool) portsrepo.CreditRepositoryFacade {
	return &PgxCreditRepository{BaseRepository: BaseRepository{Pool: db}}
}

var _ portsrepo.CreditRepositoryFacade = (*PgxCreditRepository)(nil)

func (r *PgxCreditRepository) AppendTransaction(ctx context.Context, tx pgx.Tx, entry domain.CreditTransaction) error {
	m := mapping.ToModelCreditTransaction(entry)
	query := `
		INSERT INTO credit_transactions (transaction_id, user_id, amount, description, created_at)
		VALUES ($1, $2, $3, $4, $5);
	`
	if _, err := r.db(tx).Exec(ctx, query, m.TransactionID, m.UserID, m.Amount, m.Description, m.CreatedAt); err != nil {
		return fmt.Errorf("failed to append credit transaction for user %s: %w", entry.UserID, err)
	}
	return nil
}

// ListTransactions retrieves a page of ledger entries, newest first.
func (r *PgxCreditRepository) ListTransactions(ctx context.Context, userID string, limit int, nextToken *string) ([]domain.CreditTransaction, *string, error) {
	if limit <= 0 {
		limit = 20
	}
	fetchLimit := limit + 1

	var rows pgx.Rows
	var err error
	if nextToken != nil && *nextToken != "" {
		lastCreatedAt, lastID, decodeErr := pagination.DecodeCursor(*nextToken)
		if decodeErr == nil {
			_, decodeErr = uuid.Parse(lastID)
		}
		if decodeErr != nil {
			return nil, nil, apperrors.NewAppError(400, "invalid nextToken", fmt.Errorf("%v: %w", decodeErr, apperrors.ErrValidation))
		}
		query := `
			SELECT transaction_id, user_id, amount, description, created_at
			FROM credit_transactions
			WHERE user_id = $1 AND (created_at, transaction_id) < ($2, $3::uuid)
			ORDER BY created_at DESC, transaction_id DESC
			LIMIT $4;
		`
		rows, err = r.Pool.Query(ctx, query, userID, lastCreatedAt, lastID, fetchLimit)
	} else {
		query := `
			SELECT transaction_id, user_id, amount, description, created_at
			FROM credit_transactions
			WHERE user_id = $1
			ORDER BY created_at DESC, transaction_id DESC
			LIMIT $2;
		`
		rows, err = r.Pool.Query(ctx, query, userID, fetchLimit)
	}
	if err != nil {
		return nil, nil, fmt.Errorf("failed to query credit transactions for user %s: %w", userID, err)
	}
	defer rows.Close()

	entries := make([]models.CreditTransaction, 0, fetchLimit)
	for rows.Next() {
		var m models.CreditTransaction
		if err := rows.Scan(&m.TransactionID, &m.UserID, &m.Amount, &m.Description, &m.CreatedAt); err != nil {
			return nil, nil, fmt.Errorf("failed to scan credit transaction row: %w", err)
		}
		entries = append(entries, m)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, fmt.Errorf("error iterating credit transaction rows: %w", err)
	}

	var nextTokenVal *string
	if len(entries) > limit {
		entries = entries[:limit]
		last := entries[limit-1]
		token := pagination.EncodeCursor(last.CreatedAt, last.TransactionID)
		nextTokenVal = &token
	}
	return mapping.ToDomainCreditTransactionSlice(entries), nextTokenVal, nil
}
