package models

import "time"

// AuditFields mirrors the created_at/last_updated_at columns.
type AuditFields struct {
	CreatedAt     time.Time `db:"created_at"`
	LastUpdatedAt time.Time `db:"last_updated_at"`
}
