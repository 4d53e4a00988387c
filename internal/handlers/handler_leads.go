package handlers

import (
	"bytes"
	"log/slog"
	"net/http"
	"strings"

	portssvc "github.com/SscSPs/leadvault_backend/internal/core/ports/services"
	"github.com/SscSPs/leadvault_backend/internal/dto"
	"github.com/SscSPs/leadvault_backend/internal/middleware"
	"github.com/SscSPs/leadvault_backend/internal/utils/leadcsv"
	"github.com/gin-gonic/gin"
)

// NextTokenHeader carries the cursor of the next page of GET /leads.
const NextTokenHeader = "X-Next-Token"

const msgLeadNotFound = "Lead not found"

// LeadHandler handles HTTP requests for leads.
type LeadHandler struct {
	leadService   portssvc.LeadSvcFacade
	creditService portssvc.CreditSvcFacade
}

// NewLeadHandler creates a new LeadHandler.
func NewLeadHandler(leadService portssvc.LeadSvcFacade, creditService portssvc.CreditSvcFacade) *LeadHandler {
	return &LeadHandler{
		leadService:   leadService,
		creditService: creditService,
	}
}

func registerLeadRoutes(rg *gin.RouterGroup, leadService portssvc.LeadSvcFacade, creditService portssvc.CreditSvcFacade) {
	h := NewLeadHandler(leadService, creditService)

	leads := rg.Group("/leads")
	{
		leads.GET("", h.ListLeads)
		leads.POST("", h.CreateLead)
		// static segments are registered before /:id
		leads.POST("/unlock", h.Unlock)
		leads.POST("/import", h.ImportLeads)
		leads.GET("/export", h.ExportLeads)
		leads.GET("/:id", h.GetLead)
		leads.PUT("/:id", h.ReplaceLead)
		leads.PATCH("/:id", h.PatchLead)
		leads.DELETE("/:id", h.DeleteLead)
	}
}

// ListLeads godoc
// @Summary List leads
// @Description Lists the caller's leads, newest first. The cursor for the next page is returned in the X-Next-Token header.
// @Tags leads
// @Produce json
// @Security BearerAuth
// @Param industry query string false "Exact industry"
// @Param location query string false "Exact location"
// @Param search query string false "Case-insensitive substring of name, email, industry or location"
// @Param limit query int false "Page size (default 50, max 500)"
// @Param nextToken query string false "Cursor from a previous page"
// @Success 200 {array} dto.LeadResponse
// @Header 200 {string} X-Next-Token "Cursor of the next page"
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Router /leads [get]
func (h *LeadHandler) ListLeads(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var params dto.ListLeadsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	leads, nextToken, err := h.leadService.ListLeads(c.Request.Context(), userID, params)
	if err != nil {
		respondError(c, err, msgLeadNotFound)
		return
	}
	if nextToken != nil {
		c.Header(NextTokenHeader, *nextToken)
	}
	c.JSON(http.StatusOK, dto.ToLeadResponseList(leads))
}

// CreateLead godoc
// @Summary Create a lead
// @Tags leads
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param lead body dto.CreateLeadRequest true "Lead"
// @Success 201 {object} dto.LeadResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Router /leads [post]
func (h *LeadHandler) CreateLead(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req dto.CreateLeadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	lead, err := h.leadService.CreateLead(c.Request.Context(), userID, req)
	if err != nil {
		respondError(c, err, msgLeadNotFound)
		return
	}
	c.JSON(http.StatusCreated, dto.ToLeadResponse(*lead))
}

// GetLead godoc
// @Summary Get a lead
// @Tags leads
// @Produce json
// @Security BearerAuth
// @Param id path string true "Lead ID" format(uuid)
// @Success 200 {object} dto.LeadResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /leads/{id} [get]
func (h *LeadHandler) GetLead(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	lead, err := h.leadService.GetLead(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		respondError(c, err, msgLeadNotFound)
		return
	}
	c.JSON(http.StatusOK, dto.ToLeadResponse(*lead))
}

// ReplaceLead godoc
// @Summary Replace a lead
// @Description Overwrites every editable field. Unlock flags are unchanged.
// @Tags leads
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Lead ID" format(uuid)
// @Param lead body dto.CreateLeadRequest true "Lead"
// @Success 200 {object} dto.LeadResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /leads/{id} [put]
func (h *LeadHandler) ReplaceLead(c *gin.Context) {
	var req dto.CreateLeadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	h.updateLead(c, req.ToUpdateLeadRequest())
}

// PatchLead godoc
// @Summary Update a lead
// @Description Updates only the provided fields. Unlock flags are unchanged.
// @Tags leads
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Lead ID" format(uuid)
// @Param lead body dto.UpdateLeadRequest true "Fields to change"
// @Success 200 {object} dto.LeadResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /leads/{id} [patch]
func (h *LeadHandler) PatchLead(c *gin.Context) {
	var req dto.UpdateLeadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	h.updateLead(c, req)
}

func (h *LeadHandler) updateLead(c *gin.Context, req dto.UpdateLeadRequest) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	lead, err := h.leadService.UpdateLead(c.Request.Context(), userID, c.Param("id"), req)
	if err != nil {
		respondError(c, err, msgLeadNotFound)
		return
	}
	c.JSON(http.StatusOK, dto.ToLeadResponse(*lead))
}

// DeleteLead godoc
// @Summary Delete a lead
// @Tags leads
// @Security BearerAuth
// @Param id path string true "Lead ID" format(uuid)
// @Success 204 "Deleted"
// @Failure 404 {object} ErrorResponse
// @Router /leads/{id} [delete]
func (h *LeadHandler) DeleteLead(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	if err := h.leadService.DeleteLead(c.Request.Context(), userID, c.Param("id")); err != nil {
		respondError(c, err, msgLeadNotFound)
		return
	}
	c.Status(http.StatusNoContent)
}

// Unlock godoc
// @Summary Unlock a contact field
// @Description Reveals the email (1 credit) or phone (2 credits) of a lead. Unlocking an already revealed field is free.
// @Tags leads
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param unlock body dto.UnlockRequest true "Lead and field"
// @Success 200 {object} dto.UnlockResponse
// @Failure 400 {object} ErrorResponse "Invalid unlock type or insufficient credits"
// @Failure 404 {object} ErrorResponse
// @Router /leads/unlock [post]
func (h *LeadHandler) Unlock(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req dto.UnlockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	result, err := h.creditService.Unlock(c.Request.Context(), userID, req.LeadID, req.Type)
	if err != nil {
		respondError(c, err, msgLeadNotFound)
		return
	}
	c.JSON(http.StatusOK, dto.UnlockResponse{
		Lead:    dto.ToLeadResponse(result.Lead),
		Credits: result.Credits,
		Charged: result.Charged,
	})
}

// ImportLeads godoc
// @Summary Bulk import leads
// @Description Creates every lead or none: a single invalid row rejects the whole batch.
// @Tags leads
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param leads body dto.ImportLeadsRequest true "Leads"
// @Success 201 {object} dto.ImportLeadsResponse
// @Failure 400 {object} ErrorResponse
// @Router /leads/import [post]
func (h *LeadHandler) ImportLeads(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req dto.ImportLeadsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	created, err := h.leadService.ImportLeads(c.Request.Context(), userID, req.Leads)
	if err != nil {
		respondError(c, err, msgLeadNotFound)
		return
	}
	c.JSON(http.StatusCreated, dto.ImportLeadsResponse{Created: dto.ToLeadResponseList(created)})
}

// ExportLeads godoc
// @Summary Export leads
// @Description Exports every lead of the caller as JSON (default) or CSV.
// @Tags leads
// @Produce json
// @Produce text/csv
// @Security BearerAuth
// @Param format query string false "json or csv" Enums(json, csv)
// @Success 200 {array} dto.LeadResponse
// @Failure 400 {object} ErrorResponse
// @Router /leads/export [get]
func (h *LeadHandler) ExportLeads(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var params dto.ExportLeadsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}
	format := strings.ToLower(strings.TrimSpace(params.Format))
	if format != "json" && format != "csv" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Unsupported format"})
		return
	}

	leads, err := h.leadService.ExportLeads(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err, msgLeadNotFound)
		return
	}

	if format == "json" {
		c.JSON(http.StatusOK, dto.ToLeadResponseList(leads))
		return
	}

	var buf bytes.Buffer
	if err := leadcsv.Write(&buf, leads); err != nil {
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("Failed to encode CSV export", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to export leads"})
		return
	}
	c.Header("Content-Disposition", "attachment; filename=leads.csv")
	c.Data(http.StatusOK, "text/csv", buf.Bytes())
}
