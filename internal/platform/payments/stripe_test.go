package payments

import (
	"context"
	"testing"

	"github.com/SscSPs/leadvault_backend/internal/apperrors"
	"github.com/SscSPs/leadvault_backend/internal/platform/config"
	"github.com/stretchr/testify/assert"
)

func TestSuccessURL(t *testing.T) {
	assert.Equal(t,
		"http://localhost:5173/payment/success?session_id={CHECKOUT_SESSION_ID}&credits=50",
		SuccessURL("http://localhost:5173/payment/success", 50))
	assert.Equal(t,
		"https://app.example.com/done?ref=x&session_id={CHECKOUT_SESSION_ID}&credits=5",
		SuccessURL("https://app.example.com/done?ref=x", 5))
}

func TestProductName(t *testing.T) {
	assert.Equal(t, "Credit top-up (100 credits)", ProductName(100))
}

func TestCreateCheckoutSessionWithoutKey(t *testing.T) {
	p := NewStripeProvider(&config.Config{})
	assert.False(t, p.Configured())

	_, err := p.CreateCheckoutSession(context.Background(), CheckoutRequest{AmountMinor: 500, Credits: 10})
	assert.ErrorIs(t, err, apperrors.ErrProviderNotConfigured)
}
