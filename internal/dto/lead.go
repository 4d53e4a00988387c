package dto

import (
	"time"

	"github.com/SscSPs/leadvault_backend/internal/core/domain"
)

// CreateLeadRequest defines the data needed to create a lead. It is also the
// row shape of bulk and seed imports, validated with the same tags.
type CreateLeadRequest struct {
	Name     string `json:"name" binding:"required,max=255"`
	Industry string `json:"industry" binding:"required,max=255"`
	Location string `json:"location" binding:"required,max=255"`
	Email    string `json:"email" binding:"required,email"`
	Phone    string `json:"phone" binding:"required,max=64"`
	Website  string `json:"website" binding:"max=2048"`
	Source   string `json:"source" binding:"max=64"`
}

// UpdateLeadRequest defines the data allowed for updating a lead.
// Use pointers to distinguish between zero-value updates and fields not provided.
type UpdateLeadRequest struct {
	Name     *string `json:"name" binding:"omitempty,min=1,max=255"`
	Industry *string `json:"industry" binding:"omitempty,min=1,max=255"`
	Location *string `json:"location" binding:"omitempty,min=1,max=255"`
	Email    *string `json:"email" binding:"omitempty,email"`
	Phone    *string `json:"phone" binding:"omitempty,min=1,max=64"`
	Website  *string `json:"website" binding:"omitempty,max=2048"`
	Source   *string `json:"source" binding:"omitempty,max=64"`
}

// ToUpdateLeadRequest turns a full replacement (PUT) into an update touching every field.
func (r CreateLeadRequest) ToUpdateLeadRequest() UpdateLeadRequest {
	return UpdateLeadRequest{
		Name:     &r.Name,
		Industry: &r.Industry,
		Location: &r.Location,
		Email:    &r.Email,
		Phone:    &r.Phone,
		Website:  &r.Website,
		Source:   &r.Source,
	}
}

// ListLeadsParams defines query parameters for listing leads.
type ListLeadsParams struct {
	Industry  string  `form:"industry"`
	Location  string  `form:"location"`
	Search    string  `form:"search"`
	Limit     int     `form:"limit"`
	NextToken *string `form:"nextToken"`
}

// ImportLeadsRequest is the body of POST /leads/import.
type ImportLeadsRequest struct {
	Leads []CreateLeadRequest `json:"leads" binding:"required"`
}

// ImportLeadsResponse lists the leads that were created.
type ImportLeadsResponse struct {
	Created []LeadResponse `json:"created"`
}

// ExportLeadsParams defines query parameters for exporting leads.
type ExportLeadsParams struct {
	Format string `form:"format,default=json"`
}

// UnlockRequest is the body of POST /leads/unlock.
type UnlockRequest struct {
	LeadID string `json:"lead_id" binding:"required"`
	Type   string `json:"type" binding:"required"`
}

// UnlockResponse returns the updated lead and balance.
type UnlockResponse struct {
	Lead    LeadResponse `json:"lead"`
	Credits int          `json:"credits"`
	Charged bool         `json:"charged"`
}

// LeadResponse defines the data returned for a lead.
type LeadResponse struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Industry      string    `json:"industry"`
	Location      string    `json:"location"`
	Email         string    `json:"email"`
	Phone         string    `json:"phone"`
	Website       string    `json:"website"`
	Source        string    `json:"source"`
	EmailUnlocked bool      `json:"email_unlocked"`
	PhoneUnlocked bool      `json:"phone_unlocked"`
	CreatedAt     time.Time `json:"created_at"`
}

// ToLeadResponse converts a domain.Lead to LeadResponse DTO
func ToLeadResponse(lead domain.Lead) LeadResponse {
	return LeadResponse{
		ID:            lead.LeadID,
		Name:          lead.Name,
		Industry:      lead.Industry,
		Location:      lead.Location,
		Email:         lead.Email,
		Phone:         lead.Phone,
		Website:       lead.Website,
		Source:        lead.Source,
		EmailUnlocked: lead.EmailUnlocked,
		PhoneUnlocked: lead.PhoneUnlocked,
		CreatedAt:     lead.CreatedAt,
	}
}

// ToLeadResponseList converts a slice of domain.Lead, never returning nil
func ToLeadResponseList(leads []domain.Lead) []LeadResponse {
	out := make([]LeadResponse, len(leads))
	for i, l := range leads {
		out[i] = ToLeadResponse(l)
	}
	return out
}
