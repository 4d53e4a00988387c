package domain

import "time"

// AuditFields holds standard audit information for domain entities.
type AuditFields struct {
	CreatedAt     time.Time `json:"createdAt"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
}

// OwnedEntity is implemented by every entity that belongs to exactly one user.
type OwnedEntity interface {
	OwnerUserID() string
}
