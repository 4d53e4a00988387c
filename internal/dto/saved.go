package dto

import (
	"time"

	"github.com/SscSPs/leadvault_backend/internal/core/domain"
)

// SavedListRequest is the body of list create and update.
type SavedListRequest struct {
	Name  string   `json:"name" binding:"required,max=255"`
	Leads []string `json:"leads"`
}

// SavedListResponse defines the data returned for a saved list.
type SavedListResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Leads     []string  `json:"leads"`
	CreatedAt time.Time `json:"created_at"`
}

// ToSavedListResponse converts a domain.SavedList to SavedListResponse DTO
func ToSavedListResponse(list domain.SavedList) SavedListResponse {
	leads := list.LeadIDs
	if leads == nil {
		leads = []string{}
	}
	return SavedListResponse{ID: list.ListID, Name: list.Name, Leads: leads, CreatedAt: list.CreatedAt}
}

// ToSavedListResponseList converts a slice of domain.SavedList
func ToSavedListResponseList(lists []domain.SavedList) []SavedListResponse {
	out := make([]SavedListResponse, len(lists))
	for i, l := range lists {
		out[i] = ToSavedListResponse(l)
	}
	return out
}

// SavedFilterRequest is the body of filter create and update.
type SavedFilterRequest struct {
	Name     string         `json:"name" binding:"required,max=255"`
	Criteria map[string]any `json:"criteria"`
}

// SavedFilterResponse defines the data returned for a saved filter.
type SavedFilterResponse struct {
	ID        string         `json:"id"`
	Name      string         `json:"name"`
	Criteria  map[string]any `json:"criteria"`
	CreatedAt time.Time      `json:"created_at"`
}

// ToSavedFilterResponse converts a domain.SavedFilter to SavedFilterResponse DTO
func ToSavedFilterResponse(f domain.SavedFilter) SavedFilterResponse {
	criteria := f.Criteria
	if criteria == nil {
		criteria = map[string]any{}
	}
	return SavedFilterResponse{ID: f.FilterID, Name: f.Name, Criteria: criteria, CreatedAt: f.CreatedAt}
}

// ToSavedFilterResponseList converts a slice of domain.SavedFilter
func ToSavedFilterResponseList(filters []domain.SavedFilter) []SavedFilterResponse {
	out := make([]SavedFilterResponse, len(filters))
	for i, f := range filters {
		out[i] = ToSavedFilterResponse(f)
	}
	return out
}
