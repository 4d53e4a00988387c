package services

import (
	"context"

	"github.com/SscSPs/leadvault_backend/internal/core/domain"
	"golang.org/x/oauth2"
	"google.golang.org/api/idtoken"
)

// TokenPair is a freshly issued access/refresh token pair.
type TokenPair struct {
	Access  string
	Refresh string
}

// TokenSvcFacade defines the interface for token management services.
type TokenSvcFacade interface {
	// IssueTokens creates an access token and a rotating refresh token for user
	// and stores the hash of the refresh token.
	IssueTokens(ctx context.Context, user *domain.User) (*TokenPair, error)

	// Refresh validates a refresh token against the stored hash and rotates both tokens.
	Refresh(ctx context.Context, refreshToken string) (*TokenPair, error)

	// ValidateAccessToken returns the user id an access token was issued to.
	ValidateAccessToken(ctx context.Context, accessToken string) (string, error)
}

// GoogleOAuthHandlerSvcFacade defines the interface for Google OAuth operations.
type GoogleOAuthHandlerSvcFacade interface {
	// GenerateStateString creates a secure random string to be used as a CSRF token for OAuth flow.
	GenerateStateString(ctx context.Context) (string, error)
	// GetGoogleLoginURL returns the URL to redirect the user to for Google login.
	GetGoogleLoginURL(ctx context.Context, state string) string
	// ExchangeCodeForToken exchanges an OAuth authorization code for a token.
	ExchangeCodeForToken(ctx context.Context, code string) (*oauth2.Token, error)
	// ValidateGoogleIDToken validates an ID token string from Google and returns its payload.
	ValidateGoogleIDToken(ctx context.Context, idTokenString string) (*idtoken.Payload, error)
}
