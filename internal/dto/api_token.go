package dto

import (
	"time"

	"github.com/SscSPs/leadvault_backend/internal/core/domain"
)

// CreateAPITokenRequest is the body of POST /api-tokens.
type CreateAPITokenRequest struct {
	Name string `json:"name" binding:"required,min=3,max=100"`
	// ExpiresIn is a lifetime in seconds; omitted means the token never expires.
	ExpiresIn *int64 `json:"expiresIn,omitempty" binding:"omitempty,min=60"`
}

// Duration returns ExpiresIn as a time.Duration, or nil.
func (r CreateAPITokenRequest) Duration() *time.Duration {
	if r.ExpiresIn == nil {
		return nil
	}
	d := time.Duration(*r.ExpiresIn) * time.Second
	return &d
}

// APITokenResponse describes a token without its secret.
type APITokenResponse struct {
	ID         string     `json:"id"`
	Name       string     `json:"name"`
	Hint       string     `json:"hint"`
	LastUsedAt *time.Time `json:"lastUsedAt,omitempty"`
	ExpiresAt  *time.Time `json:"expiresAt,omitempty"`
	CreatedAt  time.Time  `json:"createdAt"`
}

// CreateAPITokenResponse is the only response that ever carries the plaintext token.
type CreateAPITokenResponse struct {
	Token   string           `json:"token"`
	Details APITokenResponse `json:"details"`
}

func ToAPITokenResponse(t domain.APIToken) APITokenResponse {
	return APITokenResponse{
		ID:         t.TokenID,
		Name:       t.Name,
		Hint:       t.Hint,
		LastUsedAt: t.LastUsedAt,
		ExpiresAt:  t.ExpiresAt,
		CreatedAt:  t.CreatedAt,
	}
}

func ToAPITokenResponseList(tokens []domain.APIToken) []APITokenResponse {
	out := make([]APITokenResponse, len(tokens))
	for i, t := range tokens {
		out[i] = ToAPITokenResponse(t)
	}
	return out
}

func ToCreateAPITokenResponse(plaintext string, t domain.APIToken) CreateAPITokenResponse {
	return CreateAPITokenResponse{Token: plaintext, Details: ToAPITokenResponse(t)}
}
