package handlers_test

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/SscSPs/leadvault_backend/internal/apperrors"
	"github.com/SscSPs/leadvault_backend/internal/core/domain"
	portssvc "github.com/SscSPs/leadvault_backend/internal/core/ports/services"
	"github.com/SscSPs/leadvault_backend/internal/dto"
	"github.com/SscSPs/leadvault_backend/internal/handlers"
	"github.com/SscSPs/leadvault_backend/internal/platform/config"
	"github.com/SscSPs/leadvault_backend/internal/utils/leadcsv"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const (
	testUserID = "user-1"
	testToken  = "valid-access-token"
)

type stubTokenSvc struct {
	portssvc.TokenSvcFacade
}

func (stubTokenSvc) ValidateAccessToken(ctx context.Context, token string) (string, error) {
	if token == testToken {
		return testUserID, nil
	}
	return "", apperrors.ErrUnauthorized
}

type stubAPITokenSvc struct {
	portssvc.APITokenSvc
}

func (stubAPITokenSvc) ValidateToken(ctx context.Context, token string) (*domain.User, error) {
	return nil, apperrors.NewUnauthorizedError("Invalid API token")
}

type mockCreditSvc struct {
	portssvc.CreditSvcFacade
	mock.Mock
}

func (m *mockCreditSvc) Unlock(ctx context.Context, userID, leadID, unlockType string) (*domain.UnlockResult, error) {
	args := m.Called(ctx, userID, leadID, unlockType)
	var res *domain.UnlockResult
	if args.Get(0) != nil {
		res = args.Get(0).(*domain.UnlockResult)
	}
	return res, args.Error(1)
}

func (m *mockCreditSvc) ListTransactions(ctx context.Context, userID string, limit int, nextToken *string) ([]domain.CreditTransaction, *string, error) {
	args := m.Called(ctx, userID, limit, nextToken)
	var next *string
	if args.Get(1) != nil {
		next = args.Get(1).(*string)
	}
	return args.Get(0).([]domain.CreditTransaction), next, args.Error(2)
}

type mockLeadSvc struct {
	portssvc.LeadSvcFacade
	mock.Mock
}

func (m *mockLeadSvc) ListLeads(ctx context.Context, userID string, params dto.ListLeadsParams) ([]domain.Lead, *string, error) {
	args := m.Called(ctx, userID, params)
	var next *string
	if args.Get(1) != nil {
		next = args.Get(1).(*string)
	}
	return args.Get(0).([]domain.Lead), next, args.Error(2)
}

func (m *mockLeadSvc) ExportLeads(ctx context.Context, userID string) ([]domain.Lead, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]domain.Lead), args.Error(1)
}

func (m *mockLeadSvc) GetLead(ctx context.Context, userID, leadID string) (*domain.Lead, error) {
	args := m.Called(ctx, userID, leadID)
	var lead *domain.Lead
	if args.Get(0) != nil {
		lead = args.Get(0).(*domain.Lead)
	}
	return lead, args.Error(1)
}

type mockCheckoutSvc struct {
	mock.Mock
}

func (m *mockCheckoutSvc) CreateCheckout(ctx context.Context, userID string, amount int64, credits int) (*domain.CheckoutSession, error) {
	args := m.Called(ctx, userID, amount, credits)
	var s *domain.CheckoutSession
	if args.Get(0) != nil {
		s = args.Get(0).(*domain.CheckoutSession)
	}
	return s, args.Error(1)
}

type mockSavedListSvc struct {
	portssvc.SavedListSvcFacade
	mock.Mock
}

func (m *mockSavedListSvc) CreateSavedList(ctx context.Context, userID string, req dto.SavedListRequest) (*domain.SavedList, error) {
	args := m.Called(ctx, userID, req)
	var l *domain.SavedList
	if args.Get(0) != nil {
		l = args.Get(0).(*domain.SavedList)
	}
	return l, args.Error(1)
}

type testServer struct {
	router   *gin.Engine
	credit   *mockCreditSvc
	lead     *mockLeadSvc
	checkout *mockCheckoutSvc
	lists    *mockSavedListSvc
}

func newTestServer() *testServer {
	gin.SetMode(gin.TestMode)
	ts := &testServer{
		router:   gin.New(),
		credit:   new(mockCreditSvc),
		lead:     new(mockLeadSvc),
		checkout: new(mockCheckoutSvc),
		lists:    new(mockSavedListSvc),
	}
	container := &portssvc.ServiceContainer{
		TokenService: stubTokenSvc{},
		APIToken:     stubAPITokenSvc{},
		Credit:       ts.credit,
		Lead:         ts.lead,
		Checkout:     ts.checkout,
		SavedList:    ts.lists,
	}
	handlers.RegisterRoutes(ts.router, &config.Config{IsProduction: true}, container, handlers.RouteDeps{})
	return ts
}

func (ts *testServer) do(method, path, body string, authed bool) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if authed {
		req.Header.Set("Authorization", "Bearer "+testToken)
	}
	w := httptest.NewRecorder()
	ts.router.ServeHTTP(w, req)
	return w
}

func errorMessage(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var body handlers.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body.Error
}

func TestHealth(t *testing.T) {
	ts := newTestServer()
	w := ts.do(http.MethodGet, "/health", "", false)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "OK", w.Body.String())
}

func TestProtectedRoutesRequireAuth(t *testing.T) {
	ts := newTestServer()

	for _, path := range []string{"/api/leads", "/api/credits/balance", "/api/lists", "/api/auth/me"} {
		w := ts.do(http.MethodGet, path, "", false)
		assert.Equal(t, http.StatusUnauthorized, w.Code, path)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/leads", nil)
	req.Header.Set("x-api-key", "lv_bogus")
	w := httptest.NewRecorder()
	ts.router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Invalid API token", errorMessage(t, w))
}

func TestUnlock(t *testing.T) {
	lead := domain.Lead{LeadID: "lead-1", UserID: testUserID, Name: "Acme", EmailUnlocked: true}

	tests := []struct {
		name       string
		body       string
		setup      func(m *mockCreditSvc)
		wantStatus int
		wantError  string
	}{
		{
			name: "charged",
			body: `{"lead_id":"lead-1","type":"email"}`,
			setup: func(m *mockCreditSvc) {
				m.On("Unlock", mock.Anything, testUserID, "lead-1", "email").
					Return(&domain.UnlockResult{Lead: lead, Credits: 24, Charged: true}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "invalid type",
			body: `{"lead_id":"lead-1","type":"fax"}`,
			setup: func(m *mockCreditSvc) {
				m.On("Unlock", mock.Anything, testUserID, "lead-1", "fax").
					Return(nil, apperrors.NewBadRequestError("Invalid unlock type"))
			},
			wantStatus: http.StatusBadRequest,
			wantError:  "Invalid unlock type",
		},
		{
			name: "insufficient credits",
			body: `{"lead_id":"lead-1","type":"phone"}`,
			setup: func(m *mockCreditSvc) {
				m.On("Unlock", mock.Anything, testUserID, "lead-1", "phone").
					Return(nil, apperrors.NewAppError(http.StatusBadRequest, "Insufficient credits", apperrors.ErrInsufficientCredits))
			},
			wantStatus: http.StatusBadRequest,
			wantError:  "Insufficient credits",
		},
		{
			name: "foreign lead",
			body: `{"lead_id":"lead-2","type":"email"}`,
			setup: func(m *mockCreditSvc) {
				m.On("Unlock", mock.Anything, testUserID, "lead-2", "email").
					Return(nil, apperrors.ErrNotFound)
			},
			wantStatus: http.StatusNotFound,
			wantError:  "Lead not found",
		},
		{
			name:       "missing fields",
			body:       `{"type":"email"}`,
			setup:      func(m *mockCreditSvc) {},
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := newTestServer()
			tt.setup(ts.credit)

			w := ts.do(http.MethodPost, "/api/leads/unlock", tt.body, true)

			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantError != "" {
				assert.Equal(t, tt.wantError, errorMessage(t, w))
			}
			if tt.wantStatus == http.StatusOK {
				var resp dto.UnlockResponse
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
				assert.Equal(t, 24, resp.Credits)
				assert.True(t, resp.Charged)
				assert.True(t, resp.Lead.EmailUnlocked)
			}
			ts.credit.AssertExpectations(t)
		})
	}
}

func TestListLeadsSetsNextTokenHeader(t *testing.T) {
	ts := newTestServer()
	next := "cursor-2"
	params := dto.ListLeadsParams{Industry: "SaaS", Limit: 10}
	ts.lead.On("ListLeads", mock.Anything, testUserID, params).
		Return([]domain.Lead{{LeadID: "lead-1", Name: "Acme"}}, &next, nil)

	w := ts.do(http.MethodGet, "/api/leads?industry=SaaS&limit=10", "", true)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, next, w.Header().Get(handlers.NextTokenHeader))
	var leads []dto.LeadResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &leads))
	require.Len(t, leads, 1)
	assert.Equal(t, "lead-1", leads[0].ID)
}

func TestListLeadsEmptyIsArray(t *testing.T) {
	ts := newTestServer()
	ts.lead.On("ListLeads", mock.Anything, testUserID, dto.ListLeadsParams{}).
		Return([]domain.Lead(nil), nil, nil)

	w := ts.do(http.MethodGet, "/api/leads", "", true)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "[]", w.Body.String())
	assert.Empty(t, w.Header().Get(handlers.NextTokenHeader))
}

func TestGetLeadNotFound(t *testing.T) {
	ts := newTestServer()
	ts.lead.On("GetLead", mock.Anything, testUserID, "other").Return(nil, apperrors.ErrNotFound)

	w := ts.do(http.MethodGet, "/api/leads/other", "", true)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Lead not found", errorMessage(t, w))
}

func TestExportLeads(t *testing.T) {
	leads := []domain.Lead{
		{LeadID: "l1", Name: "Acme", Industry: "SaaS", Location: "Berlin", Email: "a@acme.io", Phone: "+49 1", Website: "acme.io", Source: "import", EmailUnlocked: true},
	}

	t.Run("csv", func(t *testing.T) {
		ts := newTestServer()
		ts.lead.On("ExportLeads", mock.Anything, testUserID).Return(leads, nil)

		w := ts.do(http.MethodGet, "/api/leads/export?format=csv", "", true)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "text/csv", w.Header().Get("Content-Type"))
		assert.Equal(t, "attachment; filename=leads.csv", w.Header().Get("Content-Disposition"))

		records, err := csv.NewReader(strings.NewReader(w.Body.String())).ReadAll()
		require.NoError(t, err)
		require.Len(t, records, 2)
		assert.Equal(t, leadcsv.ExportColumns, records[0])
		assert.Equal(t, []string{"Acme", "SaaS", "Berlin", "a@acme.io", "+49 1", "acme.io", "import", "true", "false"}, records[1])
	})

	t.Run("json by default", func(t *testing.T) {
		ts := newTestServer()
		ts.lead.On("ExportLeads", mock.Anything, testUserID).Return(leads, nil)

		w := ts.do(http.MethodGet, "/api/leads/export", "", true)

		require.Equal(t, http.StatusOK, w.Code)
		var out []dto.LeadResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
		assert.Len(t, out, 1)
	})

	t.Run("unsupported format", func(t *testing.T) {
		ts := newTestServer()

		w := ts.do(http.MethodGet, "/api/leads/export?format=xml", "", true)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Unsupported format", errorMessage(t, w))
		ts.lead.AssertNotCalled(t, "ExportLeads", mock.Anything, mock.Anything)
	})
}

func TestCheckout(t *testing.T) {
	t.Run("stripe not configured", func(t *testing.T) {
		ts := newTestServer()
		ts.checkout.On("CreateCheckout", mock.Anything, testUserID, int64(500), 50).
			Return(nil, apperrors.NewAppError(http.StatusBadRequest, "Stripe secret key missing", apperrors.ErrProviderNotConfigured))

		w := ts.do(http.MethodPost, "/api/credits/checkout", `{"amount":500,"credits":50}`, true)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Stripe secret key missing", errorMessage(t, w))
	})

	t.Run("session created", func(t *testing.T) {
		ts := newTestServer()
		ts.checkout.On("CreateCheckout", mock.Anything, testUserID, int64(500), 50).
			Return(&domain.CheckoutSession{ID: "cs_1", URL: "https://checkout.stripe.com/c/cs_1"}, nil)

		w := ts.do(http.MethodPost, "/api/credits/checkout", `{"amount":500,"credits":50}`, true)

		require.Equal(t, http.StatusOK, w.Code)
		var resp dto.CheckoutResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "cs_1", resp.ID)
		assert.Equal(t, "https://checkout.stripe.com/c/cs_1", resp.URL)
	})
}

func TestListTransactions(t *testing.T) {
	ts := newTestServer()
	created := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	ts.credit.On("ListTransactions", mock.Anything, testUserID, 20, (*string)(nil)).
		Return([]domain.CreditTransaction{{TransactionID: "t1", Amount: -1, Description: "Unlock email", CreatedAt: created}}, nil, nil)

	w := ts.do(http.MethodGet, "/api/credits/transactions", "", true)

	require.Equal(t, http.StatusOK, w.Code)
	var resp dto.ListTransactionsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Transactions, 1)
	assert.Equal(t, -1, resp.Transactions[0].Amount)
	assert.Nil(t, resp.NextToken)

	w = ts.do(http.MethodGet, "/api/credits/transactions?limit=500", "", true)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateSavedList(t *testing.T) {
	t.Run("foreign lead ids", func(t *testing.T) {
		ts := newTestServer()
		req := dto.SavedListRequest{Name: "Hot", Leads: []string{"l1", "l9"}}
		ts.lists.On("CreateSavedList", mock.Anything, testUserID, req).
			Return(nil, apperrors.NewBadRequestError("Leads must exist and belong to you"))

		w := ts.do(http.MethodPost, "/api/lists", `{"name":"Hot","leads":["l1","l9"]}`, true)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Leads must exist and belong to you", errorMessage(t, w))
	})

	t.Run("created", func(t *testing.T) {
		ts := newTestServer()
		req := dto.SavedListRequest{Name: "Hot"}
		ts.lists.On("CreateSavedList", mock.Anything, testUserID, req).
			Return(&domain.SavedList{ListID: "list-1", UserID: testUserID, Name: "Hot"}, nil)

		w := ts.do(http.MethodPost, "/api/lists", `{"name":"Hot"}`, true)

		require.Equal(t, http.StatusCreated, w.Code)
		var resp dto.SavedListResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "list-1", resp.ID)
		assert.Equal(t, []string{}, resp.Leads)
	})

	t.Run("missing name", func(t *testing.T) {
		ts := newTestServer()
		w := ts.do(http.MethodPost, "/api/lists", `{"leads":[]}`, true)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.True(t, strings.HasPrefix(errorMessage(t, w), "Invalid request body"), fmt.Sprint(w.Body.String()))
	})
}
