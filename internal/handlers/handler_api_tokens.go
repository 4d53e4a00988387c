package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/leadvault_backend/internal/core/ports/services"
	"github.com/SscSPs/leadvault_backend/internal/dto"
	"github.com/gin-gonic/gin"
)

const msgTokenNotFound = "Token not found"

// APITokenHandler manages the caller's x-api-key credentials.
type APITokenHandler struct {
	tokenSvc portssvc.APITokenSvc
}

func NewAPITokenHandler(tokenSvc portssvc.APITokenSvc) *APITokenHandler {
	return &APITokenHandler{tokenSvc: tokenSvc}
}

// RegisterAPITokenRoutes mounts /api-tokens on rg.
func RegisterAPITokenRoutes(rg *gin.RouterGroup, tokenSvc portssvc.APITokenSvc) {
	h := NewAPITokenHandler(tokenSvc)

	tokens := rg.Group("/api-tokens")
	{
		tokens.GET("", h.ListTokens)
		tokens.POST("", h.CreateToken)
		tokens.DELETE("", h.RevokeAllTokens)
		tokens.DELETE("/:id", h.RevokeToken)
	}
}

// CreateToken godoc
// @Summary Create an API token
// @Description Issues a token for scripted access. The plaintext is in the response only; afterwards just its hint is shown.
// @Tags tokens
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateAPITokenRequest true "Name and optional lifetime in seconds"
// @Success 201 {object} dto.CreateAPITokenResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Router /api-tokens [post]
func (h *APITokenHandler) CreateToken(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	var req dto.CreateAPITokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	plaintext, token, err := h.tokenSvc.CreateToken(c.Request.Context(), userID, req.Name, req.Duration())
	if err != nil {
		respondError(c, err, msgTokenNotFound)
		return
	}
	c.JSON(http.StatusCreated, dto.ToCreateAPITokenResponse(plaintext, *token))
}

// ListTokens godoc
// @Summary List API tokens
// @Tags tokens
// @Produce json
// @Security BearerAuth
// @Success 200 {array} dto.APITokenResponse
// @Failure 401 {object} ErrorResponse
// @Router /api-tokens [get]
func (h *APITokenHandler) ListTokens(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	tokens, err := h.tokenSvc.ListTokens(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err, msgTokenNotFound)
		return
	}
	c.JSON(http.StatusOK, dto.ToAPITokenResponseList(tokens))
}

// RevokeToken godoc
// @Summary Revoke an API token
// @Tags tokens
// @Security BearerAuth
// @Param id path string true "Token ID" format(uuid)
// @Success 204 "Revoked"
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api-tokens/{id} [delete]
func (h *APITokenHandler) RevokeToken(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	if err := h.tokenSvc.RevokeToken(c.Request.Context(), userID, c.Param("id")); err != nil {
		respondError(c, err, msgTokenNotFound)
		return
	}
	c.Status(http.StatusNoContent)
}

// RevokeAllTokens godoc
// @Summary Revoke every API token of the caller
// @Tags tokens
// @Security BearerAuth
// @Success 204 "Revoked"
// @Failure 401 {object} ErrorResponse
// @Router /api-tokens [delete]
func (h *APITokenHandler) RevokeAllTokens(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	if err := h.tokenSvc.RevokeAllTokens(c.Request.Context(), userID); err != nil {
		respondError(c, err, msgTokenNotFound)
		return
	}
	c.Status(http.StatusNoContent)
}
