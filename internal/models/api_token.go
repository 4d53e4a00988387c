package models

import "time"

// APIToken mirrors a live row of api_tokens.
type APIToken struct {
	TokenID    string     `db:"api_token_id"`
	UserID     string     `db:"user_id"`
	Name       string     `db:"name"`
	TokenHint  string     `db:"token_hint"`
	TokenHash  string     `db:"token_hash"`
	LastUsedAt *time.Time `db:"last_used_at"`
	ExpiresAt  *time.Time `db:"expires_at"`
	CreatedAt  time.Time  `db:"created_at"`
}
