package mapping

import (
	"github.com/SscSPs/leadvault_backend/internal/core/domain"
	"github.com/SscSPs/leadvault_backend/internal/models"
)

func ToModelAPIToken(d domain.APIToken) models.APIToken {
	return models.APIToken{
		TokenID:    d.TokenID,
		UserID:     d.UserID,
		Name:       d.Name,
		TokenHint:  d.Hint,
		TokenHash:  d.TokenHash,
		LastUsedAt: d.LastUsedAt,
		ExpiresAt:  d.ExpiresAt,
		CreatedAt:  d.CreatedAt,
	}
}

func ToDomainAPIToken(m models.APIToken) domain.APIToken {
	return domain.APIToken{
		TokenID:    m.TokenID,
		UserID:     m.UserID,
		Name:       m.Name,
		Hint:       m.TokenHint,
		TokenHash:  m.TokenHash,
		LastUsedAt: m.LastUsedAt,
		ExpiresAt:  m.ExpiresAt,
		CreatedAt:  m.CreatedAt,
	}
}
