package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/SscSPs/leadvault_backend/internal/apperrors"
	"github.com/SscSPs/leadvault_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/leadvault_backend/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/leadvault_backend/internal/core/ports/services"
	"github.com/SscSPs/leadvault_backend/internal/dto"
	"github.com/SscSPs/leadvault_backend/internal/platform/metrics"
	"github.com/SscSPs/leadvault_backend/internal/utils"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

type userService struct {
	BaseService
	userRepo       portsrepo.UserRepositoryFacade
	initialCredits int
	validate       *validator.Validate
}

// NewUserService creates a new UserService. Every account it creates starts with initialCredits.
func NewUserService(repo portsrepo.UserRepositoryFacade, initialCredits int) portssvc.UserSvcFacade {
	return &userService{
		userRepo:       repo,
		initialCredits: initialCredits,
		validate:       validator.New(),
	}
}

var _ portssvc.UserSvcFacade = (*userService)(nil)

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (s *userService) Register(ctx context.Context, req dto.RegisterRequest) (*domain.User, error) {
	email := normalizeEmail(req.Email)
	if err := s.validate.Var(email, "required,email"); err != nil {
		return nil, apperrors.NewBadRequestError("A valid email is required")
	}
	if req.Password == "" {
		return nil, apperrors.NewBadRequestError("Password is required")
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		s.LogError(ctx, err, "Failed to hash password")
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		name = email
	}

	now := time.Now().UTC()
	user := domain.User{
		UserID:       uuid.NewString(),
		Email:        email,
		Name:         name,
		PasswordHash: hash,
		Credits:      s.initialCredits,
		IsActive:     true,
		AuthProvider: domain.ProviderLocal,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}

	if err := s.userRepo.SaveUser(ctx, user); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, apperrors.NewAppError(http.StatusConflict, "Email already registered", apperrors.ErrDuplicate)
		}
		s.LogError(ctx, err, "Failed to save user", slog.String("email", email))
		return nil, fmt.Errorf("failed to save user: %w", err)
	}

	metrics.CreditsGrantedTotal.WithLabelValues("signup").Add(float64(user.Credits))
	s.LogInfo(ctx, "User registered", slog.String("user_id", user.UserID), slog.Int("credits", user.Credits))
	return &user, nil
}

func (s *userService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	if !isValidID(userID) {
		return nil, fmt.Errorf("user %s: %w", userID, apperrors.ErrNotFound)
	}
	return s.userRepo.FindUserByID(ctx, userID)
}

func (s *userService) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	return s.userRepo.FindUserByEmail(ctx, normalizeEmail(email))
}

// AuthenticateUser verifies email and password. Every failure mode is reported as ErrUnauthorized.
func (s *userService) AuthenticateUser(ctx context.Context, email, password string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewUnauthorizedError("Invalid credentials")
		}
		return nil, err
	}
	if !user.IsActive || !utils.CheckPasswordHash(password, user.PasswordHash) {
		s.LogDebug(ctx, "Rejected login", slog.String("user_id", user.UserID))
		return nil, apperrors.NewUnauthorizedError("Invalid credentials")
	}
	return user, nil
}

// FindOrCreateGoogleUser resolves a verified Google identity to an account,
// matching first on the Google subject and then on email.
func (s *userService) FindOrCreateGoogleUser(ctx context.Context, info domain.GoogleUserInfo) (*domain.User, error) {
	if info.ID == "" || !info.VerifiedEmail {
		return nil, apperrors.NewUnauthorizedError("Google account email is not verified")
	}

	user, err := s.userRepo.FindUserByProviderDetails(ctx, domain.ProviderGoogle, info.ID)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, err
	}

	email := normalizeEmail(info.Email)
	user, err = s.userRepo.FindUserByEmail(ctx, email)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, err
	}

	name := strings.TrimSpace(info.Name)
	if name == "" {
		name = email
	}
	subject := info.ID
	now := time.Now().UTC()
	newUser := domain.User{
		UserID:         uuid.NewString(),
		Email:          email,
		Name:           name,
		Credits:        s.initialCredits,
		IsActive:       true,
		AuthProvider:   domain.ProviderGoogle,
		ProviderUserID: &subject,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}
	if err := s.userRepo.SaveUser(ctx, newUser); err != nil {
		return nil, fmt.Errorf("failed to save google user: %w", err)
	}

	metrics.CreditsGrantedTotal.WithLabelValues("signup").Add(float64(newUser.Credits))
	s.LogInfo(ctx, "User registered via Google", slog.String("user_id", newUser.UserID))
	return &newUser, nil
}
