package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/SscSPs/leadvault_backend/internal/apperrors"
	"github.com/SscSPs/leadvault_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/leadvault_backend/internal/core/ports/repositories"
	"github.com/SscSPs/leadvault_backend/internal/models"
	"github.com/SscSPs/leadvault_backend/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxAPITokenRepository struct {
	BaseRepository
}

func newPgxAPITokenRepository(db *pgxpool.Pool) portsrepo.APITokenRepository {
	return &PgxAPITokenRepository{BaseRepository: BaseRepository{Pool: db}}
}

var _ portsrepo.APITokenRepository = (*PgxAPITokenRepository)(nil)

// Revoked rows are kept for auditing and filtered out of every read.
const selectAPITokenFields = `api_token_id, user_id, name, token_hint, token_hash, last_used_at, expires_at, created_at`

func scanAPIToken(row pgx.Row) (domain.APIToken, error) {
	var m models.APIToken
	err := row.Scan(&m.TokenID, &m.UserID, &m.Name, &m.TokenHint, &m.TokenHash, &m.LastUsedAt, &m.ExpiresAt, &m.CreatedAt)
	if err != nil {
		return domain.APIToken{}, err
	}
	return mapping.ToDomainAPIToken(m), nil
}

func (r *PgxAPITokenRepository) SaveAPIToken(ctx context.Context, token domain.APIToken) error {
	m := mapping.ToModelAPIToken(token)
	query := `INSERT INTO api_tokens (api_token_id, user_id, name, token_hint, token_hash, expires_at, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7);`
	_, err := r.Pool.Exec(ctx, query, m.TokenID, m.UserID, m.Name, m.TokenHint, m.TokenHash, m.ExpiresAt, m.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("api token: %w", apperrors.ErrDuplicate)
		}
		return fmt.Errorf("failed to save api token: %w", err)
	}
	return nil
}

func (r *PgxAPITokenRepository) FindAPITokenByID(ctx context.Context, tokenID string) (*domain.APIToken, error) {
	query := `SELECT ` + selectAPITokenFields + ` FROM api_tokens WHERE api_token_id = $1 AND revoked_at IS NULL;`
	return r.findOne(ctx, query, tokenID)
}

func (r *PgxAPITokenRepository) FindAPITokenByHash(ctx context.Context, tokenHash string) (*domain.APIToken, error) {
	if tokenHash == "" {
		return nil, apperrors.ErrNotFound
	}
	query := `SELECT ` + selectAPITokenFields + ` FROM api_tokens WHERE token_hash = $1 AND revoked_at IS NULL;`
	return r.findOne(ctx, query, tokenHash)
}

func (r *PgxAPITokenRepository) findOne(ctx context.Context, query, arg string) (*domain.APIToken, error) {
	token, err := scanAPIToken(r.Pool.QueryRow(ctx, query, arg))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("api token: %w", apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to find api token: %w", err)
	}
	return &token, nil
}

func (r *PgxAPITokenRepository) ListAPITokensByUser(ctx context.Context, userID string) ([]domain.APIToken, error) {
	query := `SELECT ` + selectAPITokenFields + ` FROM api_tokens
		WHERE user_id = $1 AND revoked_at IS NULL ORDER BY created_at DESC;`
	rows, err := r.Pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query api tokens for user %s: %w", userID, err)
	}
	defer rows.Close()

	tokens := []domain.APIToken{}
	for rows.Next() {
		token, err := scanAPIToken(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan api token row: %w", err)
		}
		tokens = append(tokens, token)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating api token rows: %w", err)
	}
	return tokens, nil
}

func (r *PgxAPITokenRepository) TouchAPITokenLastUsed(ctx context.Context, tokenID string, usedAt time.Time) error {
	query := `UPDATE api_tokens SET last_used_at = $2 WHERE api_token_id = $1 AND revoked_at IS NULL;`
	if _, err := r.Pool.Exec(ctx, query, tokenID, usedAt); err != nil {
		return fmt.Errorf("failed to record use of api token %s: %w", tokenID, err)
	}
	return nil
}

func (r *PgxAPITokenRepository) RevokeAPIToken(ctx context.Context, tokenID string) error {
	query := `UPDATE api_tokens SET revoked_at = NOW() WHERE api_token_id = $1 AND revoked_at IS NULL;`
	tag, err := r.Pool.Exec(ctx, query, tokenID)
	if err != nil {
		return fmt.Errorf("failed to revoke api token %s: %w", tokenID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("api token %s: %w", tokenID, apperrors.ErrNotFound)
	}
	return nil
}

func (r *PgxAPITokenRepository) RevokeAPITokensByUser(ctx context.Context, userID string) error {
	query := `UPDATE api_tokens SET revoked_at = NOW() WHERE user_id = $1 AND revoked_at IS NULL;`
	if _, err := r.Pool.Exec(ctx, query, userID); err != nil {
		return fmt.Errorf("failed to revoke api tokens for user %s: %w", userID, err)
	}
	return nil
}
