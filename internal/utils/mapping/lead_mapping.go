package mapping

import (
	"github.com/SscSPs/leadvault_backend/internal/core/domain"
	"github.com/SscSPs/leadvault_backend/internal/models"
)

// ToModelLead converts a domain Lead to a model Lead
func ToModelLead(d domain.Lead) models.Lead {
	return models.Lead{
		LeadID:        d.LeadID,
		UserID:        d.UserID,
		Name:          d.Name,
		Industry:      d.Industry,
		Location:      d.Location,
		Email:         d.Email,
		Phone:         d.Phone,
		Website:       d.Website,
		Source:        d.Source,
		EmailUnlocked: d.EmailUnlocked,
		PhoneUnlocked: d.PhoneUnlocked,
		CreatedAt:     d.CreatedAt,
	}
}

// ToDomainLead converts a model Lead to a domain Lead
func ToDomainLead(m models.Lead) domain.Lead {
	return domain.Lead{
		LeadID:        m.LeadID,
		UserID:        m.UserID,
		Name:          m.Name,
		Industry:      m.Industry,
		Location:      m.Location,
		Email:         m.Email,
		Phone:         m.Phone,
		Website:       m.Website,
		Source:        m.Source,
		EmailUnlocked: m.EmailUnlocked,
		PhoneUnlocked: m.PhoneUnlocked,
		CreatedAt:     m.CreatedAt,
	}
}

// ToDomainLeadSlice converts a slice of model Leads to a slice of domain Leads
func ToDomainLeadSlice(ms []models.Lead) []domain.Lead {
	ds := make([]domain.Lead, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainLead(m)
	}
	return ds
}
