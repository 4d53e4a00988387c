package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/leadvault_backend/internal/core/domain"
)

// APITokenRepository stores API token metadata. Revoked tokens are invisible to every finder.
type APITokenRepository interface {
	SaveAPIToken(ctx context.Context, token domain.APIToken) error

	FindAPITokenByID(ctx context.Context, tokenID string) (*domain.APIToken, error)

	// FindAPITokenByHash looks a presented token up by the SHA-256 hash of its plaintext.
	FindAPITokenByHash(ctx context.Context, tokenHash string) (*domain.APIToken, error)

	// ListAPITokensByUser returns the user's live tokens, newest first.
	ListAPITokensByUser(ctx context.Context, userID string) ([]domain.APIToken, error)

	TouchAPITokenLastUsed(ctx context.Context, tokenID string, usedAt time.Time) error

	// RevokeAPIToken revokes one token. ErrNotFound if it was already gone.
	RevokeAPIToken(ctx context.Context, tokenID string) error

	RevokeAPITokensByUser(ctx context.Context, userID string) error
}
