package repositories

import (
	"context"

	"github.com/SscSPs/leadvault_backend/internal/core/domain"
)

// SavedFilterRepositoryFacade defines data access for saved filters.
type SavedFilterRepositoryFacade interface {
	FindSavedFilterByID(ctx context.Context, filterID string) (*domain.SavedFilter, error)
	ListSavedFilters(ctx context.Context, userID string) ([]domain.SavedFilter, error)
	SaveSavedFilter(ctx context.Context, filter domain.SavedFilter) error
	UpdateSavedFilter(ctx context.Context, filter domain.SavedFilter) error
	DeleteSavedFilter(ctx context.Context, userID string, filterID string) error
}
