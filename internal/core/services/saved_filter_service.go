package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/SscSPs/leadvault_backend/internal/apperrors"
	"github.com/SscSPs/leadvault_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/leadvault_backend/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/leadvault_backend/internal/core/ports/services"
	"github.com/SscSPs/leadvault_backend/internal/dto"
	"github.com/google/uuid"
)

type savedFilterService struct {
	BaseService
	filterRepo portsrepo.SavedFilterRepositoryFacade
}

// NewSavedFilterService creates a new saved filter service.
func NewSavedFilterService(filterRepo portsrepo.SavedFilterRepositoryFacade) portssvc.SavedFilterSvcFacade {
	return &savedFilterService{filterRepo: filterRepo}
}

var _ portssvc.SavedFilterSvcFacade = (*savedFilterService)(nil)

func (s *savedFilterService) CreateSavedFilter(ctx context.Context, userID string, req dto.SavedFilterRequest) (*domain.SavedFilter, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, apperrors.NewBadRequestError("Name is required")
	}
	filter := domain.SavedFilter{
		FilterID:  uuid.NewString(),
		UserID:    userID,
		Name:      name,
		Criteria:  criteriaOrEmpty(req.Criteria),
		CreatedAt: time.Now().UTC(),
	}
	if err := s.filterRepo.SaveSavedFilter(ctx, filter); err != nil {
		return nil, err
	}
	return &filter, nil
}

func (s *savedFilterService) GetSavedFilter(ctx context.Context, userID, filterID string) (*domain.SavedFilter, error) {
	if !isValidID(filterID) {
		return nil, fmt.Errorf("filter %s: %w", filterID, apperrors.ErrNotFound)
	}
	filter, err := s.filterRepo.FindSavedFilterByID(ctx, filterID)
	return requireOwnership(filter, err, userID)
}

func (s *savedFilterService) ListSavedFilters(ctx context.Context, userID string) ([]domain.SavedFilter, error) {
	return s.filterRepo.ListSavedFilters(ctx, userID)
}

func (s *savedFilterService) UpdateSavedFilter(ctx context.Context, userID, filterID string, req dto.SavedFilterRequest) (*domain.SavedFilter, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, apperrors.NewBadRequestError("Name is required")
	}
	filter, err := s.GetSavedFilter(ctx, userID, filterID)
	if err != nil {
		return nil, err
	}
	filter.Name = name
	filter.Criteria = criteriaOrEmpty(req.Criteria)
	if err := s.filterRepo.UpdateSavedFilter(ctx, *filter); err != nil {
		return nil, err
	}
	return filter, nil
}

func (s *savedFilterService) DeleteSavedFilter(ctx context.Context, userID, filterID string) error {
	if !isValidID(filterID) {
		return fmt.Errorf("filter %s: %w", filterID, apperrors.ErrNotFound)
	}
	return s.filterRepo.DeleteSavedFilter(ctx, userID, filterID)
}

// Criteria are stored opaquely.
func criteriaOrEmpty(c map[string]any) map[string]any {
	if c == nil {
		return map[string]any{}
	}
	return c
}
