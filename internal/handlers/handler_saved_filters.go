package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/leadvault_backend/internal/core/ports/services"
	"github.com/SscSPs/leadvault_backend/internal/dto"
	"github.com/gin-gonic/gin"
)

const msgFilterNotFound = "Filter not found"

// SavedFilterHandler handles HTTP requests for saved search filters.
type SavedFilterHandler struct {
	filterService portssvc.SavedFilterSvcFacade
}

// NewSavedFilterHandler creates a new SavedFilterHandler.
func NewSavedFilterHandler(filterService portssvc.SavedFilterSvcFacade) *SavedFilterHandler {
	return &SavedFilterHandler{filterService: filterService}
}

func registerSavedFilterRoutes(rg *gin.RouterGroup, filterService portssvc.SavedFilterSvcFacade) {
	h := NewSavedFilterHandler(filterService)

	filters := rg.Group("/filters")
	{
		filters.GET("", h.ListSavedFilters)
		filters.POST("", h.CreateSavedFilter)
		filters.GET("/:id", h.GetSavedFilter)
		filters.PUT("/:id", h.UpdateSavedFilter)
		filters.PATCH("/:id", h.UpdateSavedFilter)
		filters.DELETE("/:id", h.DeleteSavedFilter)
	}
}

// ListSavedFilters godoc
// @Summary List saved filters
// @Tags filters
// @Produce json
// @Security BearerAuth
// @Success 200 {array} dto.SavedFilterResponse
// @Router /filters [get]
func (h *SavedFilterHandler) ListSavedFilters(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	filters, err := h.filterService.ListSavedFilters(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err, msgFilterNotFound)
		return
	}
	c.JSON(http.StatusOK, dto.ToSavedFilterResponseList(filters))
}

// CreateSavedFilter godoc
// @Summary Create a saved filter
// @Tags filters
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param filter body dto.SavedFilterRequest true "Filter"
// @Success 201 {object} dto.SavedFilterResponse
// @Failure 400 {object} ErrorResponse
// @Router /filters [post]
func (h *SavedFilterHandler) CreateSavedFilter(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	var req dto.SavedFilterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	filter, err := h.filterService.CreateSavedFilter(c.Request.Context(), userID, req)
	if err != nil {
		respondError(c, err, msgFilterNotFound)
		return
	}
	c.JSON(http.StatusCreated, dto.ToSavedFilterResponse(*filter))
}

// GetSavedFilter godoc
// @Summary Get a saved filter
// @Tags filters
// @Produce json
// @Security BearerAuth
// @Param id path string true "Filter ID" format(uuid)
// @Success 200 {object} dto.SavedFilterResponse
// @Failure 404 {object} ErrorResponse
// @Router /filters/{id} [get]
func (h *SavedFilterHandler) GetSavedFilter(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	filter, err := h.filterService.GetSavedFilter(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		respondError(c, err, msgFilterNotFound)
		return
	}
	c.JSON(http.StatusOK, dto.ToSavedFilterResponse(*filter))
}

// UpdateSavedFilter godoc
// @Summary Update a saved filter
// @Tags filters
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Filter ID" format(uuid)
// @Param filter body dto.SavedFilterRequest true "Filter"
// @Success 200 {object} dto.SavedFilterResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /filters/{id} [put]
func (h *SavedFilterHandler) UpdateSavedFilter(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	var req dto.SavedFilterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	filter, err := h.filterService.UpdateSavedFilter(c.Request.Context(), userID, c.Param("id"), req)
	if err != nil {
		respondError(c, err, msgFilterNotFound)
		return
	}
	c.JSON(http.StatusOK, dto.ToSavedFilterResponse(*filter))
}

// DeleteSavedFilter godoc
// @Summary Delete a saved filter
// @Tags filters
// @Security BearerAuth
// @Param id path string true "Filter ID" format(uuid)
// @Success 204 "Deleted"
// @Failure 404 {object} ErrorResponse
// @Router /filters/{id} [delete]
func (h *SavedFilterHandler) DeleteSavedFilter(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	if err := h.filterService.DeleteSavedFilter(c.Request.Context(), userID, c.Param("id")); err != nil {
		respondError(c, err, msgFilterNotFound)
		return
	}
	c.Status(http.StatusNoContent)
}
