package domain

import (
	"fmt"
	"math"
	"time"
)

// UnlockKind names the contact field an unlock reveals.
type UnlockKind string

const (
	UnlockEmail UnlockKind = "email"
	UnlockPhone UnlockKind = "phone"
)

var unlockCosts = map[UnlockKind]int{
	UnlockEmail: 1,
	UnlockPhone: 2,
}

// ParseUnlockKind validates a raw unlock type.
func ParseUnlockKind(raw string) (UnlockKind, error) {
	kind := UnlockKind(raw)
	if _, ok := unlockCosts[kind]; !ok {
		return "", fmt.Errorf("invalid unlock type %q", raw)
	}
	return kind, nil
}

// UnlockCost returns the credit price of revealing a field of the given kind.
func UnlockCost(kind UnlockKind) int {
	return unlockCosts[kind]
}

// MaxCreditsPerOperation bounds a single top-up, grant or checkout.
// Balances are stored as a Postgres INTEGER.
const MaxCreditsPerOperation = math.MaxInt32

// CreditTransaction is an append-only ledger entry. Amount is signed:
// debits are negative, top-ups and grants positive.
type CreditTransaction struct {
	TransactionID string    `json:"id"`
	UserID        string    `json:"-"`
	Amount        int       `json:"amount"`
	Description   string    `json:"description"`
	CreatedAt     time.Time `json:"created_at"`
}

// UnlockDescription is the ledger description written for an unlock of kind.
func UnlockDescription(kind UnlockKind) string {
	return fmt.Sprintf("Unlock %s", kind)
}

// TopUpDescription is the ledger description written for a confirmed checkout session.
func TopUpDescription(sessionID string) string {
	return fmt.Sprintf("Top-up via session %s", sessionID)
}

// GrantDescription is the ledger description written for an operator grant.
func GrantDescription(reason string) string {
	return fmt.Sprintf("Manual grant: %s", reason)
}

// UnlockResult is the outcome of an unlock.
// Charged is false when the field was already unlocked and nothing was debited.
type UnlockResult struct {
	Lead    Lead
	Credits int
	Charged bool
}

// CheckoutSession is an external payment session the client is redirected to.
type CheckoutSession struct {
	ID  string `json:"id"`
	URL string `json:"url"`
}
