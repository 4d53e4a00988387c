package repositories

import (
	"context"

	"github.com/SscSPs/leadvault_backend/internal/core/domain"
	"github.com/jackc/pgx/v5"
)

// SavedListReader defines read operations for saved lists
type SavedListReader interface {
	// FindSavedListByID retrieves a list together with its lead ids.
	FindSavedListByID(ctx context.Context, listID string) (*domain.SavedList, error)

	// ListSavedLists retrieves every list owned by userID, newest first.
	ListSavedLists(ctx context.Context, userID string) ([]domain.SavedList, error)
}

// SavedListWriter defines write operations for saved lists. Membership changes
// happen in the same transaction as the ownership check of the member leads.
type SavedListWriter interface {
	SaveSavedList(ctx context.Context, tx pgx.Tx, list domain.SavedList) error
	// RenameSavedList renames a list of userID; ErrNotFound when no such list is theirs.
	RenameSavedList(ctx context.Context, tx pgx.Tx, userID string, listID string, name string) error
	ReplaceSavedListLeads(ctx context.Context, tx pgx.Tx, listID string, leadIDs []string) error
	DeleteSavedList(ctx context.Context, userID string, listID string) error
}

// SavedListRepositoryFacade combines all saved-list repository interfaces
type SavedListRepositoryFacade interface {
	TransactionManager
	SavedListReader
	SavedListWriter
}
