package services

import (
	"context"

	"github.com/SscSPs/leadvault_backend/internal/core/domain"
	"github.com/SscSPs/leadvault_backend/internal/dto"
)

// LeadReaderSvc defines read operations for leads
type LeadReaderSvc interface {
	// GetLead returns a lead owned by userID, or ErrNotFound.
	GetLead(ctx context.Context, userID, leadID string) (*domain.Lead, error)

	// ListLeads returns a page of the user's leads, newest first.
	ListLeads(ctx context.Context, userID string, params dto.ListLeadsParams) ([]domain.Lead, *string, error)

	// ExportLeads returns every lead of the user.
	ExportLeads(ctx context.Context, userID string) ([]domain.Lead, error)
}

// LeadWriterSvc defines write operations for leads
type LeadWriterSvc interface {
	CreateLead(ctx context.Context, userID string, req dto.CreateLeadRequest) (*domain.Lead, error)
	UpdateLead(ctx context.Context, userID, leadID string, req dto.UpdateLeadRequest) (*domain.Lead, error)
	DeleteLead(ctx context.Context, userID, leadID string) error
}

// LeadImportSvc defines bulk creation of leads
type LeadImportSvc interface {
	// ImportLeads validates every row and inserts all of them, or none.
	ImportLeads(ctx context.Context, userID string, rows []dto.CreateLeadRequest) ([]domain.Lead, error)

	// ImportSeedLeads imports the server-side seed CSV for userID.
	ImportSeedLeads(ctx context.Context, userID string) ([]domain.Lead, error)
}

// LeadSvcFacade combines all lead-related service interfaces
type LeadSvcFacade interface {
	LeadReaderSvc
	LeadWriterSvc
	LeadImportSvc
}
