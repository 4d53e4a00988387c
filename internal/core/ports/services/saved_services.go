package services

import (
	"context"

	"github.com/SscSPs/leadvault_backend/internal/core/domain"
	"github.com/SscSPs/leadvault_backend/internal/dto"
)

// SavedListSvcFacade defines operations on saved lists. Every lead id must belong to the caller.
type SavedListSvcFacade interface {
	CreateSavedList(ctx context.Context, userID string, req dto.SavedListRequest) (*domain.SavedList, error)
	GetSavedList(ctx context.Context, userID, listID string) (*domain.SavedList, error)
	ListSavedLists(ctx context.Context, userID string) ([]domain.SavedList, error)
	UpdateSavedList(ctx context.Context, userID, listID string, req dto.SavedListRequest) (*domain.SavedList, error)
	DeleteSavedList(ctx context.Context, userID, listID string) error
}

// SavedFilterSvcFacade defines operations on saved filters.
type SavedFilterSvcFacade interface {
	CreateSavedFilter(ctx context.Context, userID string, req dto.SavedFilterRequest) (*domain.SavedFilter, error)
	GetSavedFilter(ctx context.Context, userID, filterID string) (*domain.SavedFilter, error)
	ListSavedFilters(ctx context.Context, userID string) ([]domain.SavedFilter, error)
	UpdateSavedFilter(ctx context.Context, userID, filterID string, req dto.SavedFilterRequest) (*domain.SavedFilter, error)
	DeleteSavedFilter(ctx context.Context, userID, filterID string) error
}
