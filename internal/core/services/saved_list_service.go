package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/leadvault_backend/internal/apperrors"
	"github.com/SscSPs/leadvault_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/leadvault_backend/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/leadvault_backend/internal/core/ports/services"
	"github.com/SscSPs/leadvault_backend/internal/dto"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const msgForeignLeads = "Leads must exist and belong to you"

type savedListService struct {
	BaseService
	listRepo portsrepo.SavedListRepositoryFacade
	leadRepo portsrepo.LeadRepositoryFacade
}

// NewSavedListService creates a new saved list service.
func NewSavedListService(listRepo portsrepo.SavedListRepositoryFacade, leadRepo portsrepo.LeadRepositoryFacade) portssvc.SavedListSvcFacade {
	return &savedListService{listRepo: listRepo, leadRepo: leadRepo}
}

var _ portssvc.SavedListSvcFacade = (*savedListService)(nil)

// normalizeLeadIDs removes duplicates keeping first-seen order.
func normalizeLeadIDs(ids []string) ([]string, error) {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		parsed, err := uuid.Parse(strings.TrimSpace(id))
		if err != nil {
			return nil, apperrors.NewBadRequestError(msgForeignLeads)
		}
		canonical := parsed.String()
		if _, dup := seen[canonical]; dup {
			continue
		}
		seen[canonical] = struct{}{}
		out = append(out, canonical)
	}
	return out, nil
}

// checkMembers verifies within tx that every id is a lead of userID.
func (s *savedListService) checkMembers(ctx context.Context, tx pgx.Tx, userID string, ids []string) error {
	if len(ids) == 0 {
		return nil
	}
	owned, err := s.leadRepo.CountOwnedLeads(ctx, tx, userID, ids)
	if err != nil {
		return err
	}
	if owned != len(ids) {
		return apperrors.NewBadRequestError(msgForeignLeads)
	}
	return nil
}

func (s *savedListService) CreateSavedList(ctx context.Context, userID string, req dto.SavedListRequest) (*domain.SavedList, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, apperrors.NewBadRequestError("Name is required")
	}
	ids, err := normalizeLeadIDs(req.Leads)
	if err != nil {
		return nil, err
	}

	tx, err := s.listRepo.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer s.listRepo.Rollback(ctx, tx) //nolint:errcheck

	if err := s.checkMembers(ctx, tx, userID, ids); err != nil {
		return nil, err
	}

	list := domain.SavedList{
		ListID:    uuid.NewString(),
		UserID:    userID,
		Name:      name,
		LeadIDs:   ids,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.listRepo.SaveSavedList(ctx, tx, list); err != nil {
		return nil, err
	}
	if err := s.listRepo.Commit(ctx, tx); err != nil {
		return nil, err
	}

	s.LogInfo(ctx, "Saved list created", slog.String("list_id", list.ListID), slog.Int("leads", len(ids)))
	return &list, nil
}

func (s *savedListService) GetSavedList(ctx context.Context, userID, listID string) (*domain.SavedList, error) {
	if !isValidID(listID) {
		return nil, fmt.Errorf("list %s: %w", listID, apperrors.ErrNotFound)
	}
	list, err := s.listRepo.FindSavedListByID(ctx, listID)
	return requireOwnership(list, err, userID)
}

func (s *savedListService) ListSavedLists(ctx context.Context, userID string) ([]domain.SavedList, error) {
	return s.listRepo.ListSavedLists(ctx, userID)
}

// UpdateSavedList renames the list and replaces its members.
func (s *savedListService) UpdateSavedList(ctx context.Context, userID, listID string, req dto.SavedListRequest) (*domain.SavedList, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, apperrors.NewBadRequestError("Name is required")
	}
	ids, err := normalizeLeadIDs(req.Leads)
	if err != nil {
		return nil, err
	}

	list, err := s.GetSavedList(ctx, userID, listID)
	if err != nil {
		return nil, err
	}

	tx, err := s.listRepo.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer s.listRepo.Rollback(ctx, tx) //nolint:errcheck

	if err := s.checkMembers(ctx, tx, userID, ids); err != nil {
		return nil, err
	}
	if err := s.listRepo.RenameSavedList(ctx, tx, userID, list.ListID, name); err != nil {
		return nil, err
	}
	if err := s.listRepo.ReplaceSavedListLeads(ctx, tx, list.ListID, ids); err != nil {
		return nil, err
	}
	if err := s.listRepo.Commit(ctx, tx); err != nil {
		return nil, err
	}

	list.Name = name
	list.LeadIDs = ids
	return list, nil
}

func (s *savedListService) DeleteSavedList(ctx context.Context, userID, listID string) error {
	if !isValidID(listID) {
		return fmt.Errorf("list %s: %w", listID, apperrors.ErrNotFound)
	}
	return s.listRepo.DeleteSavedList(ctx, userID, listID)
}
