package services

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/SscSPs/leadvault_backend/internal/apperrors"
	"github.com/SscSPs/leadvault_backend/internal/core/domain"
	portssvc "github.com/SscSPs/leadvault_backend/internal/core/ports/services"
	"github.com/SscSPs/leadvault_backend/internal/platform/payments"
	"github.com/SscSPs/leadvault_backend/internal/utils"
)

type checkoutService struct {
	BaseService
	provider portssvc.PaymentProvider
}

// NewCheckoutService creates a checkout service backed by provider.
func NewCheckoutService(provider portssvc.PaymentProvider) portssvc.CheckoutSvc {
	return &checkoutService{provider: provider}
}

// CreateCheckout starts a hosted payment for credits. amount is in minor currency units.
func (s *checkoutService) CreateCheckout(ctx context.Context, userID string, amount int64, credits int) (*domain.CheckoutSession, error) {
	if amount <= 0 || credits <= 0 {
		return nil, apperrors.NewBadRequestError("Amount and credits must be positive")
	}
	if credits > domain.MaxCreditsPerOperation {
		return nil, apperrors.NewBadRequestError("Credits out of range")
	}

	session, err := s.provider.CreateCheckoutSession(ctx, payments.CheckoutRequest{
		UserID:      userID,
		AmountMinor: amount,
		Credits:     credits,
	})
	if err != nil {
		if errors.Is(err, apperrors.ErrProviderNotConfigured) {
			return nil, apperrors.NewAppError(http.StatusBadRequest, "Stripe secret key missing", err)
		}
		s.LogError(ctx, err, "Checkout session creation failed",
			slog.String("user_id", userID),
			slog.String("amount", utils.FormatMinorUnits(amount)))
		return nil, apperrors.NewAppError(http.StatusBadGateway, "Payment provider error", err)
	}

	s.LogInfo(ctx, "Checkout session created",
		slog.String("user_id", userID),
		slog.String("session_id", session.ID),
		slog.String("amount", utils.FormatMinorUnits(amount)),
		slog.Int("credits", credits))
	return session, nil
}
