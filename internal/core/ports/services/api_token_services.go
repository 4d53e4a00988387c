package services

import (
	"context"
	"time"

	"github.com/SscSPs/leadvault_backend/internal/core/domain"
)

// APITokenSvc manages the x-api-key credentials of a user.
type APITokenSvc interface {
	// CreateToken returns the plaintext token, which is never retrievable again, with its stored metadata.
	// A nil expiresIn creates a token that does not expire.
	CreateToken(ctx context.Context, userID, name string, expiresIn *time.Duration) (string, *domain.APIToken, error)

	ListTokens(ctx context.Context, userID string) ([]domain.APIToken, error)

	// RevokeToken revokes one of the user's tokens. Tokens of other users are reported as not found.
	RevokeToken(ctx context.Context, userID, tokenID string) error

	RevokeAllTokens(ctx context.Context, userID string) error

	// ValidateToken resolves a presented token to its active owner and records the use.
	ValidateToken(ctx context.Context, tokenString string) (*domain.User, error)
}
