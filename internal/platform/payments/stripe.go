// Package payments creates hosted checkout sessions with Stripe.
package payments

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/SscSPs/leadvault_backend/internal/apperrors"
	"github.com/SscSPs/leadvault_backend/internal/core/domain"
	"github.com/SscSPs/leadvault_backend/internal/platform/config"
	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/checkout/session"
)

// CheckoutRequest describes a credit top-up purchase.
type CheckoutRequest struct {
	UserID      string
	AmountMinor int64
	Credits     int
}

// StripeProvider creates Stripe Checkout sessions.
type StripeProvider struct {
	secretKey  string
	successURL string
	cancelURL  string
	currency   string
	backend    stripe.Backend
}

// NewStripeProvider builds a provider from the payment settings in cfg.
// An empty secret key yields a provider that rejects every request with ErrProviderNotConfigured.
func NewStripeProvider(cfg *config.Config) *StripeProvider {
	currency := cfg.PaymentCurrency
	if currency == "" {
		currency = string(stripe.CurrencyUSD)
	}
	return &StripeProvider{
		secretKey:  cfg.StripeSecretKey,
		successURL: cfg.PaymentSuccessURL,
		cancelURL:  cfg.PaymentCancelURL,
		currency:   currency,
		backend:    stripe.GetBackend(stripe.APIBackend),
	}
}

// Configured reports whether a secret key is present.
func (p *StripeProvider) Configured() bool {
	return p.secretKey != ""
}

// CreateCheckoutSession creates a one-off payment session for req.
func (p *StripeProvider) CreateCheckoutSession(ctx context.Context, req CheckoutRequest) (*domain.CheckoutSession, error) {
	if !p.Configured() {
		return nil, fmt.Errorf("stripe secret key missing: %w", apperrors.ErrProviderNotConfigured)
	}

	params := &stripe.CheckoutSessionParams{
		Mode: stripe.String(string(stripe.CheckoutSessionModePayment)),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency:   stripe.String(p.currency),
					UnitAmount: stripe.Int64(req.AmountMinor),
					ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
						Name: stripe.String(ProductName(req.Credits)),
					},
				},
				Quantity: stripe.Int64(1),
			},
		},
		SuccessURL:        stripe.String(SuccessURL(p.successURL, req.Credits)),
		CancelURL:         stripe.String(p.cancelURL),
		ClientReferenceID: stripe.String(req.UserID),
		AutomaticTax: &stripe.CheckoutSessionAutomaticTaxParams{
			Enabled: stripe.Bool(false),
		},
	}
	params.Context = ctx
	params.AddMetadata("credits", strconv.Itoa(req.Credits))
	params.AddMetadata("user_id", req.UserID)

	sc := &session.Client{B: p.backend, Key: p.secretKey}
	s, err := sc.New(params)
	if err != nil {
		return nil, fmt.Errorf("stripe checkout session: %v: %w", err, apperrors.ErrProvider)
	}
	return &domain.CheckoutSession{ID: s.ID, URL: s.URL}, nil
}

// ProductName is the line item label shown on the hosted checkout page.
func ProductName(credits int) string {
	return fmt.Sprintf("Credit top-up (%d credits)", credits)
}

// SuccessURL appends the session id placeholder and the credit count to base.
// Stripe substitutes {CHECKOUT_SESSION_ID} itself, so the braces must stay unescaped.
func SuccessURL(base string, credits int) string {
	sep := "?"
	if u, err := url.Parse(base); err == nil && u.RawQuery != "" {
		sep = "&"
	}
	return base + sep + "session_id={CHECKOUT_SESSION_ID}&credits=" + strconv.Itoa(credits)
}
