package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/leadvault_backend/internal/apperrors"
	"github.com/SscSPs/leadvault_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/leadvault_backend/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/leadvault_backend/internal/core/ports/services"
	"github.com/SscSPs/leadvault_backend/internal/dto"
	"github.com/SscSPs/leadvault_backend/internal/platform/metrics"
	"github.com/SscSPs/leadvault_backend/internal/platform/storage"
	"github.com/SscSPs/leadvault_backend/internal/utils/leadcsv"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

const (
	defaultLeadsLimit = 50
	maxLeadsLimit     = 500

	seedLeadSource = "seed"
)

type leadService struct {
	BaseService
	leadRepo  portsrepo.LeadRepositoryFacade
	seedStore storage.Storage
	seedKey   string
	validate  *validator.Validate
}

// NewLeadService creates a new LeadService. seedStore and seedKey locate the seed CSV.
func NewLeadService(leadRepo portsrepo.LeadRepositoryFacade, seedStore storage.Storage, seedKey string) portssvc.LeadSvcFacade {
	return &leadService{
		leadRepo:  leadRepo,
		seedStore: seedStore,
		seedKey:   seedKey,
		validate:  newDTOValidator(),
	}
}

var _ portssvc.LeadSvcFacade = (*leadService)(nil)

func (s *leadService) GetLead(ctx context.Context, userID, leadID string) (*domain.Lead, error) {
	if !isValidID(leadID) {
		return nil, fmt.Errorf("lead %s: %w", leadID, apperrors.ErrNotFound)
	}
	lead, err := s.leadRepo.FindLeadByID(ctx, leadID)
	return requireOwnership(lead, err, userID)
}

// ListLeads returns one page of the caller's leads, newest first.
func (s *leadService) ListLeads(ctx context.Context, userID string, params dto.ListLeadsParams) ([]domain.Lead, *string, error) {
	limit := params.Limit
	if limit <= 0 {
		limit = defaultLeadsLimit
	}
	if limit > maxLeadsLimit {
		limit = maxLeadsLimit
	}
	filter := domain.LeadFilter{
		Industry: strings.TrimSpace(params.Industry),
		Location: strings.TrimSpace(params.Location),
		Search:   strings.TrimSpace(params.Search),
	}
	return s.leadRepo.ListLeads(ctx, userID, filter, limit, params.NextToken)
}

// ExportLeads returns every lead of the caller, newest first.
func (s *leadService) ExportLeads(ctx context.Context, userID string) ([]domain.Lead, error) {
	leads, _, err := s.leadRepo.ListLeads(ctx, userID, domain.LeadFilter{}, 0, nil)
	if err != nil {
		return nil, err
	}
	return leads, nil
}

func (s *leadService) CreateLead(ctx context.Context, userID string, req dto.CreateLeadRequest) (*domain.Lead, error) {
	created, err := s.importRows(ctx, userID, []dto.CreateLeadRequest{req}, domain.DefaultLeadSource, "api")
	if err != nil {
		return nil, err
	}
	return &created[0], nil
}

// UpdateLead applies the provided fields. Unlock flags are never touched here.
func (s *leadService) UpdateLead(ctx context.Context, userID, leadID string, req dto.UpdateLeadRequest) (*domain.Lead, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, apperrors.NewBadRequestError(validationMessage(err))
	}

	lead, err := s.GetLead(ctx, userID, leadID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		lead.Name = strings.TrimSpace(*req.Name)
	}
	if req.Industry != nil {
		lead.Industry = strings.TrimSpace(*req.Industry)
	}
	if req.Location != nil {
		lead.Location = strings.TrimSpace(*req.Location)
	}
	if req.Email != nil {
		lead.Email = strings.TrimSpace(*req.Email)
	}
	if req.Phone != nil {
		lead.Phone = strings.TrimSpace(*req.Phone)
	}
	if req.Website != nil {
		lead.Website = strings.TrimSpace(*req.Website)
	}
	if req.Source != nil {
		lead.Source = strings.TrimSpace(*req.Source)
		if lead.Source == "" {
			lead.Source = domain.DefaultLeadSource
		}
	}

	if err := s.leadRepo.UpdateLead(ctx, *lead); err != nil {
		return nil, err
	}
	return lead, nil
}

func (s *leadService) DeleteLead(ctx context.Context, userID, leadID string) error {
	if !isValidID(leadID) {
		return fmt.Errorf("lead %s: %w", leadID, apperrors.ErrNotFound)
	}
	return s.leadRepo.DeleteLead(ctx, userID, leadID)
}

// ImportLeads creates every row or none: all rows are validated before any is stored.
func (s *leadService) ImportLeads(ctx context.Context, userID string, rows []dto.CreateLeadRequest) ([]domain.Lead, error) {
	return s.importRows(ctx, userID, rows, domain.DefaultLeadSource, "import")
}

// ImportSeedLeads imports the configured seed CSV into the caller's account.
func (s *leadService) ImportSeedLeads(ctx context.Context, userID string) ([]domain.Lead, error) {
	if s.seedStore == nil {
		return nil, apperrors.NewNotFoundError("Seed CSV not found")
	}
	rc, err := s.seedStore.Open(ctx, s.seedKey)
	if err != nil {
		if errors.Is(err, storage.ErrObjectNotFound) {
			return nil, apperrors.NewNotFoundError("Seed CSV not found")
		}
		s.LogError(ctx, err, "Failed to open seed CSV", slog.String("key", s.seedKey))
		return nil, fmt.Errorf("failed to open seed CSV: %w", err)
	}
	defer rc.Close()

	rows, err := leadcsv.Read(rc, seedLeadSource)
	if err != nil {
		return nil, apperrors.NewBadRequestError(fmt.Sprintf("Invalid seed CSV: %v", err))
	}
	return s.importRows(ctx, userID, rows, seedLeadSource, seedLeadSource)
}

func (s *leadService) importRows(ctx context.Context, userID string, rows []dto.CreateLeadRequest, defaultSource, metricSource string) ([]domain.Lead, error) {
	if len(rows) == 0 {
		return []domain.Lead{}, nil
	}

	for i := range rows {
		if err := s.validate.Struct(rows[i]); err != nil {
			if len(rows) == 1 {
				return nil, apperrors.NewBadRequestError(validationMessage(err))
			}
			return nil, apperrors.NewBadRequestError(fmt.Sprintf("Row %d: %s", i+1, validationMessage(err)))
		}
	}

	now := time.Now().UTC()
	leads := make([]domain.Lead, len(rows))
	for i, row := range rows {
		source := strings.TrimSpace(row.Source)
		if source == "" {
			source = defaultSource
		}
		leads[i] = domain.Lead{
			LeadID:    uuid.NewString(),
			UserID:    userID,
			Name:      strings.TrimSpace(row.Name),
			Industry:  strings.TrimSpace(row.Industry),
			Location:  strings.TrimSpace(row.Location),
			Email:     strings.TrimSpace(row.Email),
			Phone:     strings.TrimSpace(row.Phone),
			Website:   strings.TrimSpace(row.Website),
			Source:    source,
			CreatedAt: now,
		}
	}

	if err := s.leadRepo.SaveLeads(ctx, leads); err != nil {
		s.LogError(ctx, err, "Failed to save leads", slog.Int("count", len(leads)))
		return nil, err
	}

	metrics.LeadsImportedTotal.WithLabelValues(metricSource).Add(float64(len(leads)))
	s.LogInfo(ctx, "Leads created", slog.String("user_id", userID), slog.Int("count", len(leads)), slog.String("source", metricSource))
	return leads, nil
}
