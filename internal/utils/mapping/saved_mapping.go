package mapping

import (
	"encoding/json"
	"fmt"

	"github.com/SscSPs/leadvault_backend/internal/core/domain"
	"github.com/SscSPs/leadvault_backend/internal/models"
)

// ToDomainSavedList converts a model SavedList to a domain SavedList
func ToDomainSavedList(m models.SavedList) domain.SavedList {
	leadIDs := m.LeadIDs
	if leadIDs == nil {
		leadIDs = []string{}
	}
	return domain.SavedList{
		ListID:    m.ListID,
		UserID:    m.UserID,
		Name:      m.Name,
		LeadIDs:   leadIDs,
		CreatedAt: m.CreatedAt,
	}
}

// ToModelSavedFilter converts a domain SavedFilter to a model SavedFilter
func ToModelSavedFilter(d domain.SavedFilter) (models.SavedFilter, error) {
	criteria := d.Criteria
	if criteria == nil {
		criteria = map[string]any{}
	}
	raw, err := json.Marshal(criteria)
	if err != nil {
		return models.SavedFilter{}, fmt.Errorf("failed to encode filter criteria: %w", err)
	}
	return models.SavedFilter{
		FilterID:  d.FilterID,
		UserID:    d.UserID,
		Name:      d.Name,
		Criteria:  raw,
		CreatedAt: d.CreatedAt,
	}, nil
}

// ToDomainSavedFilter converts a model SavedFilter to a domain SavedFilter
func ToDomainSavedFilter(m models.SavedFilter) (domain.SavedFilter, error) {
	criteria := map[string]any{}
	if len(m.Criteria) > 0 {
		if err := json.Unmarshal(m.Criteria, &criteria); err != nil {
			return domain.SavedFilter{}, fmt.Errorf("failed to decode filter criteria: %w", err)
		}
	}
	return domain.SavedFilter{
		FilterID:  m.FilterID,
		UserID:    m.UserID,
		Name:      m.Name,
		Criteria:  criteria,
		CreatedAt: m.CreatedAt,
	}, nil
}
