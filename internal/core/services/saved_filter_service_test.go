package services_test

import (
	"context"
	"testing"

	"github.com/SscSPs/leadvault_backend/internal/apperrors"
	"github.com/SscSPs/leadvault_backend/internal/core/domain"
	"github.com/SscSPs/leadvault_backend/internal/core/services"
	"github.com/SscSPs/leadvault_backend/internal/dto"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestSavedFilterService_CreateDefaultsCriteria(t *testing.T) {
	repo := new(MockSavedFilterRepository)
	svc := services.NewSavedFilterService(repo)

	repo.On("SaveSavedFilter", mock.Anything, mock.MatchedBy(func(f domain.SavedFilter) bool {
		return f.UserID == "user-1" && f.Name == "Berlin SaaS" && f.Criteria != nil && len(f.Criteria) == 0
	})).Return(nil).Once()

	filter, err := svc.CreateSavedFilter(context.Background(), "user-1", dto.SavedFilterRequest{Name: " Berlin SaaS "})

	require.NoError(t, err)
	assert.Equal(t, "Berlin SaaS", filter.Name)
	assert.NotEmpty(t, filter.FilterID)
	repo.AssertExpectations(t)
}

func TestSavedFilterService_CreateRequiresName(t *testing.T) {
	repo := new(MockSavedFilterRepository)
	svc := services.NewSavedFilterService(repo)

	_, err := svc.CreateSavedFilter(context.Background(), "user-1", dto.SavedFilterRequest{Name: "   "})

	assert.ErrorIs(t, err, apperrors.ErrValidation)
	repo.AssertNotCalled(t, "SaveSavedFilter", mock.Anything, mock.Anything)
}

func TestSavedFilterService_ForeignFilterIsNotFound(t *testing.T) {
	repo := new(MockSavedFilterRepository)
	svc := services.NewSavedFilterService(repo)
	filterID := uuid.NewString()

	repo.On("FindSavedFilterByID", mock.Anything, filterID).
		Return(&domain.SavedFilter{FilterID: filterID, UserID: "other"}, nil)

	_, err := svc.GetSavedFilter(context.Background(), "user-1", filterID)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	_, err = svc.UpdateSavedFilter(context.Background(), "user-1", filterID, dto.SavedFilterRequest{Name: "x"})
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	repo.AssertNotCalled(t, "UpdateSavedFilter", mock.Anything, mock.Anything)
}

func TestSavedFilterService_UpdateReplacesCriteria(t *testing.T) {
	repo := new(MockSavedFilterRepository)
	svc := services.NewSavedFilterService(repo)
	filterID := uuid.NewString()

	repo.On("FindSavedFilterByID", mock.Anything, filterID).
		Return(&domain.SavedFilter{FilterID: filterID, UserID: "user-1", Name: "old", Criteria: map[string]any{"industry": "SaaS"}}, nil)
	repo.On("UpdateSavedFilter", mock.Anything, mock.MatchedBy(func(f domain.SavedFilter) bool {
		return f.Name == "new" && f.Criteria["location"] == "Berlin" && f.Criteria["industry"] == nil
	})).Return(nil).Once()

	filter, err := svc.UpdateSavedFilter(context.Background(), "user-1", filterID,
		dto.SavedFilterRequest{Name: "new", Criteria: map[string]any{"location": "Berlin"}})

	require.NoError(t, err)
	assert.Equal(t, "new", filter.Name)
	repo.AssertExpectations(t)
}

func TestSavedFilterService_DeleteInvalidID(t *testing.T) {
	repo := new(MockSavedFilterRepository)
	svc := services.NewSavedFilterService(repo)

	err := svc.DeleteSavedFilter(context.Background(), "user-1", "nope")

	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	repo.AssertNotCalled(t, "DeleteSavedFilter", mock.Anything, mock.Anything, mock.Anything)
}
