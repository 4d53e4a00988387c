package domain

import "time"

// APIToken is a long-lived credential for scripted access to a user's leads.
// Only the SHA-256 hash of the plaintext is kept; Hint lets the owner tell tokens apart.
type APIToken struct {
	TokenID    string
	UserID     string
	Name       string
	Hint       string
	TokenHash  string
	LastUsedAt *time.Time
	ExpiresAt  *time.Time
	CreatedAt  time.Time
}

func (t APIToken) OwnerUserID() string { return t.UserID }

// ExpiredAt reports whether the token is past its expiry at now. Tokens without one never expire.
func (t APIToken) ExpiredAt(now time.Time) bool {
	return t.ExpiresAt != nil && !now.Before(*t.ExpiresAt)
}
