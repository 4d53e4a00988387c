package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/leadvault_backend/internal/core/ports/services"
	"github.com/SscSPs/leadvault_backend/internal/dto"
	"github.com/SscSPs/leadvault_backend/internal/middleware"
	"github.com/SscSPs/leadvault_backend/internal/platform/analytics"
	"github.com/gin-gonic/gin"
)

// CreditHandler handles balance, history and top-up requests.
type CreditHandler struct {
	creditService   portssvc.CreditSvcFacade
	checkoutService portssvc.CheckoutSvc
	analytics       *analytics.Client
}

// NewCreditHandler creates a new CreditHandler.
func NewCreditHandler(creditService portssvc.CreditSvcFacade, checkoutService portssvc.CheckoutSvc, analyticsClient *analytics.Client) *CreditHandler {
	return &CreditHandler{
		creditService:   creditService,
		checkoutService: checkoutService,
		analytics:       analyticsClient,
	}
}

func registerCreditRoutes(rg *gin.RouterGroup, creditService portssvc.CreditSvcFacade, checkoutService portssvc.CheckoutSvc, analyticsClient *analytics.Client) {
	h := NewCreditHandler(creditService, checkoutService, analyticsClient)

	credits := rg.Group("/credits")
	{
		credits.GET("/balance", h.GetBalance)
		credits.GET("/transactions", h.ListTransactions)
		credits.POST("/checkout", h.CreateCheckout)
		credits.POST("/confirm", h.ConfirmTopUp)
	}
}

// GetBalance godoc
// @Summary Credit balance
// @Tags credits
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.BalanceResponse
// @Router /credits/balance [get]
func (h *CreditHandler) GetBalance(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	balance, err := h.creditService.GetBalance(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err, "User not found")
		return
	}
	c.JSON(http.StatusOK, dto.BalanceResponse{Credits: balance})
}

// ListTransactions godoc
// @Summary Credit history
// @Description Lists ledger entries newest first.
// @Tags credits
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Page size (default 20, max 100)"
// @Param nextToken query string false "Cursor from a previous page"
// @Success 200 {object} dto.ListTransactionsResponse
// @Failure 400 {object} ErrorResponse
// @Router /credits/transactions [get]
func (h *CreditHandler) ListTransactions(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	var params dto.ListTransactionsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}
	entries, nextToken, err := h.creditService.ListTransactions(c.Request.Context(), userID, params.Limit, params.NextToken)
	if err != nil {
		respondError(c, err, "User not found")
		return
	}
	c.JSON(http.StatusOK, dto.ToListTransactionsResponse(entries, nextToken))
}

// CreateCheckout godoc
// @Summary Start a credit purchase
// @Description Creates a Stripe Checkout session. amount is in cents.
// @Tags credits
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param checkout body dto.CheckoutRequest true "Amount and credits"
// @Success 200 {object} dto.CheckoutResponse
// @Failure 400 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Router /credits/checkout [post]
func (h *CreditHandler) CreateCheckout(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	var req dto.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	session, err := h.checkoutService.CreateCheckout(c.Request.Context(), userID, req.Amount, req.Credits)
	if err != nil {
		respondError(c, err, "User not found")
		return
	}
	middleware.PosthogEvent(c, h.analytics, "checkout_started", map[string]any{
		"credits": req.Credits,
		"amount":  req.Amount,
	})
	c.JSON(http.StatusOK, dto.CheckoutResponse{ID: session.ID, URL: session.URL})
}

// ConfirmTopUp godoc
// @Summary Confirm a credit purchase
// @Description Adds the purchased credits after the browser returns from checkout.
// @Tags credits
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param confirm body dto.ConfirmTopUpRequest true "Session and credits"
// @Success 200 {object} dto.BalanceResponse
// @Failure 400 {object} ErrorResponse
// @Router /credits/confirm [post]
func (h *CreditHandler) ConfirmTopUp(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	var req dto.ConfirmTopUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	balance, err := h.creditService.ConfirmTopUp(c.Request.Context(), userID, req.Credits, req.SessionID)
	if err != nil {
		respondError(c, err, "User not found")
		return
	}
	middleware.PosthogEvent(c, h.analytics, "credits_topped_up", map[string]any{"credits": req.Credits})
	c.JSON(http.StatusOK, dto.BalanceResponse{Credits: balance})
}
