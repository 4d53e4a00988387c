package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/SscSPs/leadvault_backend/internal/apperrors"
	"github.com/SscSPs/leadvault_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/leadvault_backend/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/leadvault_backend/internal/core/ports/services"
	"github.com/SscSPs/leadvault_backend/internal/platform/metrics"
	"github.com/google/uuid"
)

const (
	defaultTransactionsLimit = 20
	maxTransactionsLimit     = 100
)

// creditService owns every balance mutation. Each mutation locks the account
// row first, so concurrent mutations of one account are serialized and the
// balance check always sees the committed value.
type creditService struct {
	BaseService
	creditRepo portsrepo.CreditRepositoryFacade
	userRepo   portsrepo.UserRepositoryFacade
	leadRepo   portsrepo.LeadRepositoryFacade
}

// NewCreditService creates a new credit ledger service.
func NewCreditService(creditRepo portsrepo.CreditRepositoryFacade, userRepo portsrepo.UserRepositoryFacade, leadRepo portsrepo.LeadRepositoryFacade) portssvc.CreditSvcFacade {
	return &creditService{
		creditRepo: creditRepo,
		userRepo:   userRepo,
		leadRepo:   leadRepo,
	}
}

var _ portssvc.CreditSvcFacade = (*creditService)(nil)

// Unlock reveals one contact field of a lead, debiting its cost.
// Unlocking a field that is already revealed is a no-op and charges nothing.
func (s *creditService) Unlock(ctx context.Context, userID, leadID, unlockType string) (*domain.UnlockResult, error) {
	kind, err := domain.ParseUnlockKind(unlockType)
	if err != nil {
		return nil, apperrors.NewAppError(http.StatusBadRequest, "Invalid unlock type", apperrors.ErrValidation)
	}
	if !isValidID(leadID) {
		metrics.UnlocksTotal.WithLabelValues(string(kind), metrics.OutcomeNotFound).Inc()
		return nil, fmt.Errorf("lead %s: %w", leadID, apperrors.ErrNotFound)
	}

	tx, err := s.creditRepo.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer s.creditRepo.Rollback(ctx, tx) //nolint:errcheck

	// Lock order: account row, then lead row.
	balance, err := s.userRepo.LockCredits(ctx, tx, userID)
	if err != nil {
		metrics.UnlocksTotal.WithLabelValues(string(kind), metrics.OutcomeError).Inc()
		return nil, fmt.Errorf("failed to lock account %s: %w", userID, err)
	}

	found, err := s.leadRepo.FindLeadByIDForUpdate(ctx, tx, leadID)
	lead, err := requireOwnership(found, err, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			metrics.UnlocksTotal.WithLabelValues(string(kind), metrics.OutcomeNotFound).Inc()
			return nil, fmt.Errorf("lead %s: %w", leadID, apperrors.ErrNotFound)
		}
		metrics.UnlocksTotal.WithLabelValues(string(kind), metrics.OutcomeError).Inc()
		return nil, err
	}

	if lead.IsUnlocked(kind) {
		metrics.UnlocksTotal.WithLabelValues(string(kind), metrics.OutcomeAlready).Inc()
		s.LogDebug(ctx, "Field already unlocked, nothing charged",
			slog.String("lead_id", leadID), slog.String("type", string(kind)))
		return &domain.UnlockResult{Lead: *lead, Credits: balance, Charged: false}, nil
	}

	cost := domain.UnlockCost(kind)
	if balance < cost {
		metrics.UnlocksTotal.WithLabelValues(string(kind), metrics.OutcomeInsufficient).Inc()
		return nil, apperrors.NewAppError(http.StatusBadRequest, "Insufficient credits", apperrors.ErrInsufficientCredits)
	}

	newBalance, err := s.userRepo.AdjustCredits(ctx, tx, userID, -cost)
	if err != nil {
		metrics.UnlocksTotal.WithLabelValues(string(kind), metrics.OutcomeError).Inc()
		return nil, fmt.Errorf("failed to debit account %s: %w", userID, err)
	}
	if err := s.leadRepo.MarkUnlocked(ctx, tx, lead.LeadID, kind); err != nil {
		metrics.UnlocksTotal.WithLabelValues(string(kind), metrics.OutcomeError).Inc()
		return nil, err
	}
	if err := s.creditRepo.AppendTransaction(ctx, tx, newLedgerEntry(userID, -cost, domain.UnlockDescription(kind))); err != nil {
		metrics.UnlocksTotal.WithLabelValues(string(kind), metrics.OutcomeError).Inc()
		return nil, err
	}
	if err := s.creditRepo.Commit(ctx, tx); err != nil {
		metrics.UnlocksTotal.WithLabelValues(string(kind), metrics.OutcomeError).Inc()
		return nil, err
	}

	switch kind {
	case domain.UnlockEmail:
		lead.EmailUnlocked = true
	case domain.UnlockPhone:
		lead.PhoneUnlocked = true
	}

	metrics.UnlocksTotal.WithLabelValues(string(kind), metrics.OutcomeCharged).Inc()
	metrics.CreditsDebitedTotal.Add(float64(cost))
	s.LogInfo(ctx, "Lead field unlocked",
		slog.String("lead_id", leadID),
		slog.String("type", string(kind)),
		slog.Int("cost", cost),
		slog.Int("balance", newBalance))

	return &domain.UnlockResult{Lead: *lead, Credits: newBalance, Charged: true}, nil
}

// ConfirmTopUp credits the account for a checkout session. The client is trusted.
func (s *creditService) ConfirmTopUp(ctx context.Context, userID string, credits int, sessionID string) (int, error) {
	sessionID = strings.TrimSpace(sessionID)
	if credits <= 0 || sessionID == "" {
		return 0, apperrors.NewAppError(http.StatusBadRequest, "Missing session or credits", apperrors.ErrValidation)
	}
	if credits > domain.MaxCreditsPerOperation {
		return 0, apperrors.NewAppError(http.StatusBadRequest, "Credits out of range", apperrors.ErrValidation)
	}
	return s.addCredits(ctx, userID, credits, domain.TopUpDescription(sessionID), "topup")
}

// GrantCredits adds credits on behalf of an operator.
func (s *creditService) GrantCredits(ctx context.Context, userID string, credits int, reason string) (int, error) {
	if credits <= 0 {
		return 0, apperrors.NewAppError(http.StatusBadRequest, "Credits must be positive", apperrors.ErrValidation)
	}
	if credits > domain.MaxCreditsPerOperation {
		return 0, apperrors.NewAppError(http.StatusBadRequest, "Credits out of range", apperrors.ErrValidation)
	}
	reason = strings.TrimSpace(reason)
	if reason == "" {
		reason = "unspecified"
	}
	return s.addCredits(ctx, userID, credits, domain.GrantDescription(reason), "grant")
}

func (s *creditService) addCredits(ctx context.Context, userID string, credits int, description, source string) (int, error) {
	tx, err := s.creditRepo.Begin(ctx)
	if err != nil {
		return 0, err
	}
	defer s.creditRepo.Rollback(ctx, tx) //nolint:errcheck

	if _, err := s.userRepo.LockCredits(ctx, tx, userID); err != nil {
		return 0, fmt.Errorf("failed to lock account %s: %w", userID, err)
	}
	newBalance, err := s.userRepo.AdjustCredits(ctx, tx, userID, credits)
	if err != nil {
		return 0, fmt.Errorf("failed to credit account %s: %w", userID, err)
	}
	if err := s.creditRepo.AppendTransaction(ctx, tx, newLedgerEntry(userID, credits, description)); err != nil {
		return 0, err
	}
	if err := s.creditRepo.Commit(ctx, tx); err != nil {
		return 0, err
	}

	metrics.CreditsGrantedTotal.WithLabelValues(source).Add(float64(credits))
	s.LogInfo(ctx, "Credits added",
		slog.String("user_id", userID),
		slog.String("source", source),
		slog.Int("credits", credits),
		slog.Int("balance", newBalance))
	return newBalance, nil
}

func (s *creditService) GetBalance(ctx context.Context, userID string) (int, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return 0, err
	}
	return user.Credits, nil
}

func (s *creditService) ListTransactions(ctx context.Context, userID string, limit int, nextToken *string) ([]domain.CreditTransaction, *string, error) {
	if limit <= 0 {
		limit = defaultTransactionsLimit
	}
	if limit > maxTransactionsLimit {
		limit = maxTransactionsLimit
	}
	return s.creditRepo.ListTransactions(ctx, userID, limit, nextToken)
}

func newLedgerEntry(userID string, amount int, description string) domain.CreditTransaction {
	return domain.CreditTransaction{
		TransactionID: uuid.NewString(),
		UserID:        userID,
		Amount:        amount,
		Description:   description,
		CreatedAt:     time.Now().UTC(),
	}
}
