package repositories

import (
	"context"

	"github.com/SscSPs/leadvault_backend/internal/core/domain"
	"github.com/jackc/pgx/v5"
)

// LeadReader defines read operations for lead data
type LeadReader interface {
	// FindLeadByID retrieves a lead regardless of its owner; callers apply the ownership check.
	FindLeadByID(ctx context.Context, leadID string) (*domain.Lead, error)

	// ListLeads retrieves a page of the user's leads, newest first, using token-based pagination.
	// A limit <= 0 returns every matching lead and never a next token.
	ListLeads(ctx context.Context, userID string, filter domain.LeadFilter, limit int, nextToken *string) ([]domain.Lead, *string, error)

	// CountOwnedLeads returns how many of leadIDs exist and belong to userID.
	CountOwnedLeads(ctx context.Context, tx pgx.Tx, userID string, leadIDs []string) (int, error)
}

// LeadWriter defines write operations for lead data
type LeadWriter interface {
	// SaveLeads inserts all leads atomically.
	SaveLeads(ctx context.Context, leads []domain.Lead) error

	// UpdateLead updates the descriptive fields of a lead. Unlock flags are never changed here.
	UpdateLead(ctx context.Context, lead domain.Lead) error

	// DeleteLead removes a lead owned by userID.
	DeleteLead(ctx context.Context, userID string, leadID string) error
}

// LeadUnlockStore defines the lead operations used inside the unlock transaction.
type LeadUnlockStore interface {
	// FindLeadByIDForUpdate selects and row-locks a lead within tx.
	FindLeadByIDForUpdate(ctx context.Context, tx pgx.Tx, leadID string) (*domain.Lead, error)

	// MarkUnlocked sets the flag for kind within tx.
	MarkUnlocked(ctx context.Context, tx pgx.Tx, leadID string, kind domain.UnlockKind) error
}

// LeadRepositoryFacade combines all lead-related repository interfaces
type LeadRepositoryFacade interface {
	LeadReader
	LeadWriter
	LeadUnlockStore
}
