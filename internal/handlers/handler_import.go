package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/leadvault_backend/internal/core/ports/services"
	"github.com/SscSPs/leadvault_backend/internal/dto"
	"github.com/gin-gonic/gin"
)

// ImportHandler loads the bundled seed dataset.
type ImportHandler struct {
	leadService portssvc.LeadImportSvc
}

// NewImportHandler creates a new ImportHandler.
func NewImportHandler(leadService portssvc.LeadImportSvc) *ImportHandler {
	return &ImportHandler{leadService: leadService}
}

func registerImportRoutes(rg *gin.RouterGroup, leadService portssvc.LeadImportSvc) {
	h := NewImportHandler(leadService)
	rg.POST("/import/seed", h.ImportSeed)
}

// ImportSeed godoc
// @Summary Import seed leads
// @Description Imports the configured seed CSV into the caller's account. Every call imports another copy.
// @Tags leads
// @Produce json
// @Security BearerAuth
// @Success 201 {object} dto.ImportLeadsResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "Seed CSV not found"
// @Router /import/seed [post]
func (h *ImportHandler) ImportSeed(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	created, err := h.leadService.ImportSeedLeads(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err, "Seed CSV not found")
		return
	}
	c.JSON(http.StatusCreated, dto.ImportLeadsResponse{Created: dto.ToLeadResponseList(created)})
}
