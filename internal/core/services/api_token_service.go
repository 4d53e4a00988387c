package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/leadvault_backend/internal/apperrors"
	"github.com/SscSPs/leadvault_backend/internal/core/domain"
	"github.com/SscSPs/leadvault_backend/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/leadvault_backend/internal/core/ports/services"
	"github.com/SscSPs/leadvault_backend/internal/utils"
	"github.com/google/uuid"
)

type apiTokenService struct {
	BaseService
	tokenRepo repositories.APITokenRepository
	userSvc   portssvc.UserSvcFacade
}

func NewAPITokenService(tokenRepo repositories.APITokenRepository, userSvc portssvc.UserSvcFacade) portssvc.APITokenSvc {
	return &apiTokenService{
		tokenRepo: tokenRepo,
		userSvc:   userSvc,
	}
}

func (s *apiTokenService) CreateToken(ctx context.Context, userID, name string, expiresIn *time.Duration) (string, *domain.APIToken, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", nil, apperrors.NewBadRequestError("Token name is required")
	}

	plaintext, err := utils.GenerateAPIToken()
	if err != nil {
		return "", nil, fmt.Errorf("failed to generate token: %w", err)
	}

	now := time.Now().UTC()
	token := domain.APIToken{
		TokenID:   uuid.NewString(),
		UserID:    userID,
		Name:      name,
		Hint:      utils.APITokenHint(plaintext),
		TokenHash: utils.HashToken(plaintext),
		CreatedAt: now,
	}
	if expiresIn != nil {
		expiry := now.Add(*expiresIn)
		token.ExpiresAt = &expiry
	}

	if err := s.tokenRepo.SaveAPIToken(ctx, token); err != nil {
		return "", nil, fmt.Errorf("failed to save token: %w", err)
	}

	s.LogInfo(ctx, "API token created", slog.String("user_id", userID), slog.String("token_id", token.TokenID))
	return plaintext, &token, nil
}

func (s *apiTokenService) ListTokens(ctx context.Context, userID string) ([]domain.APIToken, error) {
	tokens, err := s.tokenRepo.ListAPITokensByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list tokens: %w", err)
	}
	return tokens, nil
}

func (s *apiTokenService) RevokeToken(ctx context.Context, userID, tokenID string) error {
	if !isValidID(tokenID) {
		return fmt.Errorf("token %s: %w", tokenID, apperrors.ErrNotFound)
	}
	found, err := s.tokenRepo.FindAPITokenByID(ctx, tokenID)
	if _, err := requireOwnership(found, err, userID); err != nil {
		return err
	}
	if err := s.tokenRepo.RevokeAPIToken(ctx, tokenID); err != nil {
		return err
	}
	s.LogInfo(ctx, "API token revoked", slog.String("user_id", userID), slog.String("token_id", tokenID))
	return nil
}

func (s *apiTokenService) RevokeAllTokens(ctx context.Context, userID string) error {
	if err := s.tokenRepo.RevokeAPITokensByUser(ctx, userID); err != nil {
		return fmt.Errorf("failed to revoke all tokens: %w", err)
	}
	return nil
}

// ValidateToken never tells the caller why a token was rejected. Expired tokens are revoked on sight.
func (s *apiTokenService) ValidateToken(ctx context.Context, tokenString string) (*domain.User, error) {
	if !strings.HasPrefix(tokenString, utils.APITokenPrefix) {
		return nil, apperrors.ErrUnauthorized
	}

	token, err := s.tokenRepo.FindAPITokenByHash(ctx, utils.HashToken(tokenString))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrUnauthorized
		}
		return nil, err
	}

	now := time.Now().UTC()
	if token.ExpiredAt(now) {
		if err := s.tokenRepo.RevokeAPIToken(ctx, token.TokenID); err != nil {
			s.LogError(ctx, err, "Failed to revoke expired API token", slog.String("token_id", token.TokenID))
		}
		return nil, apperrors.ErrUnauthorized
	}

	if err := s.tokenRepo.TouchAPITokenLastUsed(ctx, token.TokenID, now); err != nil {
		s.LogError(ctx, err, "Failed to record API token use", slog.String("token_id", token.TokenID))
	}

	user, err := s.userSvc.GetUserByID(ctx, token.UserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrUnauthorized
		}
		return nil, err
	}
	if !user.IsActive {
		return nil, apperrors.ErrUnauthorized
	}
	return user, nil
}
