package services_test

import (
	"bytes"
	"context"
	"io"
	"time"

	"github.com/SscSPs/leadvault_backend/internal/core/domain"
	"github.com/SscSPs/leadvault_backend/internal/platform/payments"
	"github.com/SscSPs/leadvault_backend/internal/platform/storage"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/mock"
)

// --- Mock transaction manager (mocks run without a database, so tx is always nil) ---
type mockTxManager struct {
	mock.Mock
}

func (m *mockTxManager) Begin(ctx context.Context) (pgx.Tx, error) {
	args := m.Called(ctx)
	var tx pgx.Tx
	if args.Get(0) != nil {
		tx = args.Get(0).(pgx.Tx)
	}
	return tx, args.Error(1)
}

func (m *mockTxManager) Commit(ctx context.Context, tx pgx.Tx) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

func (m *mockTxManager) Rollback(ctx context.Context, tx pgx.Tx) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

// --- Mock UserRepository ---
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserRepository) FindUserByProviderDetails(ctx context.Context, provider domain.AuthProvider, providerUserID string) (*domain.User, error) {
	args := m.Called(ctx, provider, providerUserID)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateRefreshToken(ctx context.Context, userID string, refreshTokenHash string, expiry time.Time) error {
	args := m.Called(ctx, userID, refreshTokenHash, expiry)
	return args.Error(0)
}

func (m *MockUserRepository) ClearRefreshToken(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func (m *MockUserRepository) LockCredits(ctx context.Context, tx pgx.Tx, userID string) (int, error) {
	args := m.Called(ctx, tx, userID)
	return args.Int(0), args.Error(1)
}

func (m *MockUserRepository) AdjustCredits(ctx context.Context, tx pgx.Tx, userID string, delta int) (int, error) {
	args := m.Called(ctx, tx, userID, delta)
	return args.Int(0), args.Error(1)
}

// --- Mock LeadRepository ---
type MockLeadRepository struct {
	mock.Mock
}

func (m *MockLeadRepository) FindLeadByID(ctx context.Context, leadID string) (*domain.Lead, error) {
	args := m.Called(ctx, leadID)
	var lead *domain.Lead
	if args.Get(0) != nil {
		lead = args.Get(0).(*domain.Lead)
	}
	return lead, args.Error(1)
}

func (m *MockLeadRepository) ListLeads(ctx context.Context, userID string, filter domain.LeadFilter, limit int, nextToken *string) ([]domain.Lead, *string, error) {
	args := m.Called(ctx, userID, filter, limit, nextToken)
	var leads []domain.Lead
	if args.Get(0) != nil {
		leads = args.Get(0).([]domain.Lead)
	}
	var next *string
	if args.Get(1) != nil {
		next = args.Get(1).(*string)
	}
	return leads, next, args.Error(2)
}

func (m *MockLeadRepository) CountOwnedLeads(ctx context.Context, tx pgx.Tx, userID string, leadIDs []string) (int, error) {
	args := m.Called(ctx, tx, userID, leadIDs)
	return args.Int(0), args.Error(1)
}

func (m *MockLeadRepository) SaveLeads(ctx context.Context, leads []domain.Lead) error {
	args := m.Called(ctx, leads)
	return args.Error(0)
}

func (m *MockLeadRepository) UpdateLead(ctx context.Context, lead domain.Lead) error {
	args := m.Called(ctx, lead)
	return args.Error(0)
}

func (m *MockLeadRepository) DeleteLead(ctx context.Context, userID string, leadID string) error {
	args := m.Called(ctx, userID, leadID)
	return args.Error(0)
}

func (m *MockLeadRepository) FindLeadByIDForUpdate(ctx context.Context, tx pgx.Tx, leadID string) (*domain.Lead, error) {
	args := m.Called(ctx, tx, leadID)
	var lead *domain.Lead
	if args.Get(0) != nil {
		lead = args.Get(0).(*domain.Lead)
	}
	return lead, args.Error(1)
}

func (m *MockLeadRepository) MarkUnlocked(ctx context.Context, tx pgx.Tx, leadID string, kind domain.UnlockKind) error {
	args := m.Called(ctx, tx, leadID, kind)
	return args.Error(0)
}

// --- Mock CreditRepository ---
type MockCreditRepository struct {
	mockTxManager
}

func (m *MockCreditRepository) AppendTransaction(ctx context.Context, tx pgx.Tx, entry domain.CreditTransaction) error {
	args := m.Called(ctx, tx, entry)
	return args.Error(0)
}

func (m *MockCreditRepository) ListTransactions(ctx context.Context, userID string, limit int, nextToken *string) ([]domain.CreditTransaction, *string, error) {
	args := m.Called(ctx, userID, limit, nextToken)
	var entries []domain.CreditTransaction
	if args.Get(0) != nil {
		entries = args.Get(0).([]domain.CreditTransaction)
	}
	var next *string
	if args.Get(1) != nil {
		next = args.Get(1).(*string)
	}
	return entries, next, args.Error(2)
}

// --- Mock SavedListRepository ---
type MockSavedListRepository struct {
	mockTxManager
}

func (m *MockSavedListRepository) FindSavedListByID(ctx context.Context, listID string) (*domain.SavedList, error) {
	args := m.Called(ctx, listID)
	var list *domain.SavedList
	if args.Get(0) != nil {
		list = args.Get(0).(*domain.SavedList)
	}
	return list, args.Error(1)
}

func (m *MockSavedListRepository) ListSavedLists(ctx context.Context, userID string) ([]domain.SavedList, error) {
	args := m.Called(ctx, userID)
	var lists []domain.SavedList
	if args.Get(0) != nil {
		lists = args.Get(0).([]domain.SavedList)
	}
	return lists, args.Error(1)
}

func (m *MockSavedListRepository) SaveSavedList(ctx context.Context, tx pgx.Tx, list domain.SavedList) error {
	args := m.Called(ctx, tx, list)
	return args.Error(0)
}

func (m *MockSavedListRepository) RenameSavedList(ctx context.Context, tx pgx.Tx, userID string, listID string, name string) error {
	args := m.Called(ctx, tx, userID, listID, name)
	return args.Error(0)
}

func (m *MockSavedListRepository) ReplaceSavedListLeads(ctx context.Context, tx pgx.Tx, listID string, leadIDs []string) error {
	args := m.Called(ctx, tx, listID, leadIDs)
	return args.Error(0)
}

func (m *MockSavedListRepository) DeleteSavedList(ctx context.Context, userID string, listID string) error {
	args := m.Called(ctx, userID, listID)
	return args.Error(0)
}

// --- Mock APITokenRepository ---
type MockAPITokenRepository struct {
	mock.Mock
}

func (m *MockAPITokenRepository) SaveAPIToken(ctx context.Context, token domain.APIToken) error {
	args := m.Called(ctx, token)
	return args.Error(0)
}

func (m *MockAPITokenRepository) FindAPITokenByID(ctx context.Context, tokenID string) (*domain.APIToken, error) {
	args := m.Called(ctx, tokenID)
	var token *domain.APIToken
	if args.Get(0) != nil {
		token = args.Get(0).(*domain.APIToken)
	}
	return token, args.Error(1)
}

func (m *MockAPITokenRepository) FindAPITokenByHash(ctx context.Context, tokenHash string) (*domain.APIToken, error) {
	args := m.Called(ctx, tokenHash)
	var token *domain.APIToken
	if args.Get(0) != nil {
		token = args.Get(0).(*domain.APIToken)
	}
	return token, args.Error(1)
}

func (m *MockAPITokenRepository) ListAPITokensByUser(ctx context.Context, userID string) ([]domain.APIToken, error) {
	args := m.Called(ctx, userID)
	var tokens []domain.APIToken
	if args.Get(0) != nil {
		tokens = args.Get(0).([]domain.APIToken)
	}
	return tokens, args.Error(1)
}

func (m *MockAPITokenRepository) TouchAPITokenLastUsed(ctx context.Context, tokenID string, usedAt time.Time) error {
	args := m.Called(ctx, tokenID, usedAt)
	return args.Error(0)
}

func (m *MockAPITokenRepository) RevokeAPIToken(ctx context.Context, tokenID string) error {
	args := m.Called(ctx, tokenID)
	return args.Error(0)
}

func (m *MockAPITokenRepository) RevokeAPITokensByUser(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

// --- Mock SavedFilterRepository ---
type MockSavedFilterRepository struct {
	mock.Mock
}

func (m *MockSavedFilterRepository) FindSavedFilterByID(ctx context.Context, filterID string) (*domain.SavedFilter, error) {
	args := m.Called(ctx, filterID)
	var filter *domain.SavedFilter
	if args.Get(0) != nil {
		filter = args.Get(0).(*domain.SavedFilter)
	}
	return filter, args.Error(1)
}

func (m *MockSavedFilterRepository) ListSavedFilters(ctx context.Context, userID string) ([]domain.SavedFilter, error) {
	args := m.Called(ctx, userID)
	var filters []domain.SavedFilter
	if args.Get(0) != nil {
		filters = args.Get(0).([]domain.SavedFilter)
	}
	return filters, args.Error(1)
}

func (m *MockSavedFilterRepository) SaveSavedFilter(ctx context.Context, filter domain.SavedFilter) error {
	args := m.Called(ctx, filter)
	return args.Error(0)
}

func (m *MockSavedFilterRepository) UpdateSavedFilter(ctx context.Context, filter domain.SavedFilter) error {
	args := m.Called(ctx, filter)
	return args.Error(0)
}

func (m *MockSavedFilterRepository) DeleteSavedFilter(ctx context.Context, userID string, filterID string) error {
	args := m.Called(ctx, userID, filterID)
	return args.Error(0)
}

// --- Mock PaymentProvider ---
type MockPaymentProvider struct {
	mock.Mock
}

func (m *MockPaymentProvider) CreateCheckoutSession(ctx context.Context, req payments.CheckoutRequest) (*domain.CheckoutSession, error) {
	args := m.Called(ctx, req)
	var session *domain.CheckoutSession
	if args.Get(0) != nil {
		session = args.Get(0).(*domain.CheckoutSession)
	}
	return session, args.Error(1)
}

// memStorage is an in-memory storage.Storage.
type memStorage struct {
	objects map[string][]byte
}

func (s *memStorage) Open(ctx context.Context, key string) (io.ReadCloser, error) {
	data, ok := s.objects[key]
	if !ok {
		return nil, storage.ErrObjectNotFound
	}
	return io.NopCloser(bytes.NewReader(data)), nil
}

func (s *memStorage) Put(ctx context.Context, key string, data io.Reader) error {
	b, err := io.ReadAll(data)
	if err != nil {
		return err
	}
	if s.objects == nil {
		s.objects = map[string][]byte{}
	}
	s.objects[key] = b
	return nil
}
