package models

import (
	"database/sql"
)

// User is the users row.
type User struct {
	UserID         string         `db:"user_id"`
	Email          string         `db:"email"`
	Name           string         `db:"name"`
	PasswordHash   sql.NullString `db:"password_hash"`
	Credits        int            `db:"credits"`
	IsStaff        bool           `db:"is_staff"`
	IsActive       bool           `db:"is_active"`
	AuthProvider   string         `db:"auth_provider"`
	ProviderUserID sql.NullString `db:"provider_user_id"`
	AuditFields

	// Refresh Token Fields
	RefreshTokenHash       sql.NullString `db:"refresh_token_hash"`
	RefreshTokenExpiryTime sql.NullTime   `db:"refresh_token_expiry_time"`
}
