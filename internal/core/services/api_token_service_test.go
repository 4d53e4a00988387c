package services_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/SscSPs/leadvault_backend/internal/apperrors"
	"github.com/SscSPs/leadvault_backend/internal/core/domain"
	"github.com/SscSPs/leadvault_backend/internal/core/services"
	"github.com/SscSPs/leadvault_backend/internal/utils"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAPITokenService_CreateStoresHashOnly(t *testing.T) {
	tokenRepo := new(MockAPITokenRepository)
	svc := services.NewAPITokenService(tokenRepo, services.NewUserService(new(MockUserRepository), 25))

	var stored domain.APIToken
	tokenRepo.On("SaveAPIToken", mock.Anything, mock.AnythingOfType("domain.APIToken")).
		Run(func(args mock.Arguments) {
			stored = args.Get(1).(domain.APIToken)
		}).Return(nil).Once()

	expiry := time.Hour
	plain, token, err := svc.CreateToken(context.Background(), "user-1", "  ci  ", &expiry)

	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(plain, utils.APITokenPrefix))
	assert.Equal(t, utils.HashToken(plain), stored.TokenHash)
	assert.NotContains(t, stored.TokenHash, plain)
	assert.Equal(t, "ci", stored.Name)
	assert.Equal(t, utils.APITokenHint(plain), stored.Hint)
	assert.Equal(t, stored.TokenID, token.TokenID)
	_, err = uuid.Parse(token.TokenID)
	assert.NoError(t, err)
	require.NotNil(t, token.ExpiresAt)
	assert.WithinDuration(t, time.Now().Add(time.Hour), *token.ExpiresAt, time.Minute)
}

func TestAPITokenService_CreateRequiresName(t *testing.T) {
	tokenRepo := new(MockAPITokenRepository)
	svc := services.NewAPITokenService(tokenRepo, services.NewUserService(new(MockUserRepository), 25))

	_, _, err := svc.CreateToken(context.Background(), "user-1", "   ", nil)

	assert.ErrorIs(t, err, apperrors.ErrValidation)
	tokenRepo.AssertNotCalled(t, "SaveAPIToken", mock.Anything, mock.Anything)
}

func TestAPITokenService_ValidateToken(t *testing.T) {
	tokenRepo := new(MockAPITokenRepository)
	userRepo := new(MockUserRepository)
	svc := services.NewAPITokenService(tokenRepo, services.NewUserService(userRepo, 25))
	ctx := context.Background()

	userID := uuid.NewString()
	plain := utils.APITokenPrefix + "abc123"
	tokenRepo.On("FindAPITokenByHash", mock.Anything, utils.HashToken(plain)).
		Return(&domain.APIToken{TokenID: "tok-1", UserID: userID}, nil).Once()
	tokenRepo.On("TouchAPITokenLastUsed", mock.Anything, "tok-1", mock.AnythingOfType("time.Time")).Return(nil).Once()
	userRepo.On("FindUserByID", mock.Anything, userID).Return(&domain.User{UserID: userID, IsActive: true}, nil).Once()

	user, err := svc.ValidateToken(ctx, plain)

	require.NoError(t, err)
	assert.Equal(t, userID, user.UserID)
	tokenRepo.AssertExpectations(t)

	_, err = svc.ValidateToken(ctx, "no-prefix")
	assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
}

func TestAPITokenService_InactiveOwnerIsRejected(t *testing.T) {
	tokenRepo := new(MockAPITokenRepository)
	userRepo := new(MockUserRepository)
	svc := services.NewAPITokenService(tokenRepo, services.NewUserService(userRepo, 25))

	userID := uuid.NewString()
	plain := utils.APITokenPrefix + "dormant"
	tokenRepo.On("FindAPITokenByHash", mock.Anything, utils.HashToken(plain)).
		Return(&domain.APIToken{TokenID: "tok-3", UserID: userID}, nil).Once()
	tokenRepo.On("TouchAPITokenLastUsed", mock.Anything, "tok-3", mock.Anything).Return(nil).Once()
	userRepo.On("FindUserByID", mock.Anything, userID).Return(&domain.User{UserID: userID, IsActive: false}, nil).Once()

	_, err := svc.ValidateToken(context.Background(), plain)

	assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
}

func TestAPITokenService_ExpiredTokenIsRevoked(t *testing.T) {
	tokenRepo := new(MockAPITokenRepository)
	svc := services.NewAPITokenService(tokenRepo, services.NewUserService(new(MockUserRepository), 25))

	past := time.Now().Add(-time.Minute)
	plain := utils.APITokenPrefix + "old"
	tokenRepo.On("FindAPITokenByHash", mock.Anything, utils.HashToken(plain)).
		Return(&domain.APIToken{TokenID: "tok-2", UserID: "u", ExpiresAt: &past}, nil).Once()
	tokenRepo.On("RevokeAPIToken", mock.Anything, "tok-2").Return(nil).Once()

	_, err := svc.ValidateToken(context.Background(), plain)

	assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
	tokenRepo.AssertExpectations(t)
	tokenRepo.AssertNotCalled(t, "TouchAPITokenLastUsed", mock.Anything, mock.Anything, mock.Anything)
}

func TestAPITokenService_RevokeForeignToken(t *testing.T) {
	tokenRepo := new(MockAPITokenRepository)
	svc := services.NewAPITokenService(tokenRepo, services.NewUserService(new(MockUserRepository), 25))

	tokenID := uuid.NewString()
	tokenRepo.On("FindAPITokenByID", mock.Anything, tokenID).
		Return(&domain.APIToken{TokenID: tokenID, UserID: "someone-else"}, nil).Once()

	err := svc.RevokeToken(context.Background(), "me", tokenID)

	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	tokenRepo.AssertNotCalled(t, "RevokeAPIToken", mock.Anything, mock.Anything)
}

func TestAPITokenService_RevokeOwnToken(t *testing.T) {
	tokenRepo := new(MockAPITokenRepository)
	svc := services.NewAPITokenService(tokenRepo, services.NewUserService(new(MockUserRepository), 25))

	tokenID := uuid.NewString()
	tokenRepo.On("FindAPITokenByID", mock.Anything, tokenID).
		Return(&domain.APIToken{TokenID: tokenID, UserID: "me"}, nil).Once()
	tokenRepo.On("RevokeAPIToken", mock.Anything, tokenID).Return(nil).Once()

	require.NoError(t, svc.RevokeToken(context.Background(), "me", tokenID))
	tokenRepo.AssertExpectations(t)

	assert.ErrorIs(t, svc.RevokeToken(context.Background(), "me", "not-a-uuid"), apperrors.ErrNotFound)
}

func TestAPITokenExpiredAt(t *testing.T) {
	now := time.Now()
	later := now.Add(time.Second)
	assert.False(t, domain.APIToken{}.ExpiredAt(now))
	assert.False(t, domain.APIToken{ExpiresAt: &later}.ExpiredAt(now))
	assert.True(t, domain.APIToken{ExpiresAt: &now}.ExpiredAt(now))
}
