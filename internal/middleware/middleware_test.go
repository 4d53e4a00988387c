package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/SscSPs/leadvault_backend/internal/apperrors"
	"github.com/SscSPs/leadvault_backend/internal/core/domain"
	"github.com/SscSPs/leadvault_backend/internal/core/ports/services"
	"github.com/SscSPs/leadvault_backend/internal/platform/metrics"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubTokenSvc struct {
	valid map[string]string
}

func (s stubTokenSvc) IssueTokens(ctx context.Context, user *domain.User) (*services.TokenPair, error) {
	return nil, nil
}

func (s stubTokenSvc) Refresh(ctx context.Context, refreshToken string) (*services.TokenPair, error) {
	return nil, apperrors.ErrUnauthorized
}

func (s stubTokenSvc) ValidateAccessToken(ctx context.Context, token string) (string, error) {
	if userID, ok := s.valid[token]; ok {
		return userID, nil
	}
	return "", apperrors.ErrUnauthorized
}

type stubAPITokenSvc struct {
	services.APITokenSvc
	valid map[string]string
}

func (s stubAPITokenSvc) ValidateToken(ctx context.Context, token string) (*domain.User, error) {
	if userID, ok := s.valid[token]; ok {
		return &domain.User{UserID: userID, IsActive: true}, nil
	}
	return nil, apperrors.ErrUnauthorized
}

func newAuthRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(StructuredLoggingMiddleware(slog.Default()))
	protected := r.Group("/")
	protected.Use(
		APITokenAuth(stubAPITokenSvc{valid: map[string]string{"lv_good": "api-user"}}),
		AuthMiddleware(stubTokenSvc{valid: map[string]string{"good": "jwt-user"}}),
	)
	protected.GET("/me", func(c *gin.Context) {
		userID, ok := GetUserIDFromContext(c)
		ctxUserID, _ := UserIDFromCtx(c.Request.Context())
		c.JSON(http.StatusOK, gin.H{"user": userID, "ok": ok, "ctx_user": ctxUserID})
	})
	return r
}

func TestAuthMiddleware(t *testing.T) {
	r := newAuthRouter()

	tests := []struct {
		name       string
		headers    map[string]string
		wantStatus int
		wantBody   string
	}{
		{"missing header", nil, http.StatusUnauthorized, "Authorization header required"},
		{"wrong scheme", map[string]string{"Authorization": "Basic abc"}, http.StatusUnauthorized, "Bearer"},
		{"invalid token", map[string]string{"Authorization": "Bearer nope"}, http.StatusUnauthorized, "Invalid or expired token"},
		{"valid token", map[string]string{"Authorization": "Bearer good"}, http.StatusOK, `"user":"jwt-user"`},
		{"lowercase scheme", map[string]string{"Authorization": "bearer good"}, http.StatusOK, `"ctx_user":"jwt-user"`},
		{"api token", map[string]string{"x-api-key": "lv_good"}, http.StatusOK, `"user":"api-user"`},
		{"bad api token", map[string]string{"x-api-key": "lv_bad", "Authorization": "Bearer good"}, http.StatusUnauthorized, "Invalid API token"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.wantBody)
			assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
		})
	}
}

func TestGetLoggerFromCtx(t *testing.T) {
	assert.Same(t, slog.Default(), GetLoggerFromCtx(context.Background()))

	logger := slog.New(slog.NewTextHandler(nil, nil))
	assert.Same(t, logger, GetLoggerFromCtx(WithLogger(context.Background(), logger)))
}

func TestRateLimit(t *testing.T) {
	gin.SetMode(gin.TestMode)
	lim, err := NewLimiter("2-M", "")
	require.NoError(t, err)

	r := gin.New()
	r.POST("/login", RateLimit(lim), func(c *gin.Context) { c.Status(http.StatusNoContent) })

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodPost, "/login", nil)
		req.RemoteAddr = "203.0.113.9:1234"
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		codes = append(codes, w.Code)
	}
	assert.Equal(t, []int{http.StatusNoContent, http.StatusNoContent, http.StatusTooManyRequests}, codes)

	_, err = NewLimiter("five-per-minute", "")
	assert.Error(t, err)
}

func TestMetricsMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(MetricsMiddleware())
	r.GET("/metrics-probe/:id", func(c *gin.Context) {
		time.Sleep(time.Millisecond)
		c.Status(http.StatusOK)
	})

	before := testutil.ToFloat64(metrics.HTTPRequestsTotal.WithLabelValues(http.MethodGet, "/metrics-probe/:id", "200"))
	for _, id := range []string{"a", "b"} {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics-probe/"+id, nil))
		require.Equal(t, http.StatusOK, w.Code)
	}
	after := testutil.ToFloat64(metrics.HTTPRequestsTotal.WithLabelValues(http.MethodGet, "/metrics-probe/:id", "200"))
	assert.Equal(t, 2.0, after-before)
}
