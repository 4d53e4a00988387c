package models

import "time"

// CreditTransaction is the credit_transactions row.
type CreditTransaction struct {
	TransactionID string    `db:"transaction_id"`
	UserID        string    `db:"user_id"`
	Amount        int       `db:"amount"`
	Description   string    `db:"description"`
	CreatedAt     time.Time `db:"created_at"`
}
