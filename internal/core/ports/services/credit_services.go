package services

import (
	"context"

	"github.com/SscSPs/leadvault_backend/internal/core/domain"
	"github.com/SscSPs/leadvault_backend/internal/platform/payments"
)

// CreditLedgerSvc defines every balance mutation. Each one runs in a single
// transaction that locks the account row and appends exactly one ledger entry.
type CreditLedgerSvc interface {
	// Unlock reveals one contact field of a lead owned by userID.
	Unlock(ctx context.Context, userID, leadID, unlockType string) (*domain.UnlockResult, error)

	// ConfirmTopUp credits a completed checkout session and returns the new balance.
	ConfirmTopUp(ctx context.Context, userID string, credits int, sessionID string) (int, error)

	// GrantCredits adds credits outside of checkout and returns the new balance.
	GrantCredits(ctx context.Context, userID string, credits int, reason string) (int, error)
}

// CreditReaderSvc defines read operations on balances and history
type CreditReaderSvc interface {
	GetBalance(ctx context.Context, userID string) (int, error)
	ListTransactions(ctx context.Context, userID string, limit int, nextToken *string) ([]domain.CreditTransaction, *string, error)
}

// CreditSvcFacade combines all credit-related service interfaces
type CreditSvcFacade interface {
	CreditLedgerSvc
	CreditReaderSvc
}

// PaymentProvider creates hosted checkout sessions.
type PaymentProvider interface {
	CreateCheckoutSession(ctx context.Context, req payments.CheckoutRequest) (*domain.CheckoutSession, error)
}

// CheckoutSvc starts credit purchases.
type CheckoutSvc interface {
	// CreateCheckout starts a purchase of credits for amount minor units.
	CreateCheckout(ctx context.Context, userID string, amount int64, credits int) (*domain.CheckoutSession, error)
}
