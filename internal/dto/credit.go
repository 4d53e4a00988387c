package dto

import (
	"time"

	"github.com/SscSPs/leadvault_backend/internal/core/domain"
)

// CheckoutRequest is the body of POST /credits/checkout. Amount is in minor units (cents).
type CheckoutRequest struct {
	Amount  int64 `json:"amount"`
	Credits int   `json:"credits"`
}

// CheckoutResponse points the client at the hosted payment page.
type CheckoutResponse struct {
	ID  string `json:"id"`
	URL string `json:"url"`
}

// ConfirmTopUpRequest is the body of POST /credits/confirm.
type ConfirmTopUpRequest struct {
	SessionID string `json:"session_id"`
	Credits   int    `json:"credits"`
}

// BalanceResponse carries the current credit balance.
type BalanceResponse struct {
	Credits int `json:"credits"`
}

// ListTransactionsParams defines query parameters for the ledger history.
type ListTransactionsParams struct {
	Limit     int     `form:"limit,default=20" binding:"min=1,max=100"`
	NextToken *string `form:"nextToken"`
}

// CreditTransactionResponse is one ledger entry.
type CreditTransactionResponse struct {
	ID          string    `json:"id"`
	Amount      int       `json:"amount"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

// ListTransactionsResponse wraps a page of ledger entries.
type ListTransactionsResponse struct {
	Transactions []CreditTransactionResponse `json:"transactions"`
	NextToken    *string                     `json:"nextToken,omitempty"`
}

// ToListTransactionsResponse converts a page of domain entries
func ToListTransactionsResponse(entries []domain.CreditTransaction, nextToken *string) ListTransactionsResponse {
	out := make([]CreditTransactionResponse, len(entries))
	for i, e := range entries {
		out[i] = CreditTransactionResponse{ID: e.TransactionID, Amount: e.Amount, Description: e.Description, CreatedAt: e.CreatedAt}
	}
	return ListTransactionsResponse{Transactions: out, NextToken: nextToken}
}
