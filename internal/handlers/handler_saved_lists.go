package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/leadvault_backend/internal/core/ports/services"
	"github.com/SscSPs/leadvault_backend/internal/dto"
	"github.com/gin-gonic/gin"
)

const msgListNotFound = "List not found"

// SavedListHandler handles HTTP requests for saved lead lists.
type SavedListHandler struct {
	listService portssvc.SavedListSvcFacade
}

// NewSavedListHandler creates a new SavedListHandler.
func NewSavedListHandler(listService portssvc.SavedListSvcFacade) *SavedListHandler {
	return &SavedListHandler{listService: listService}
}

func registerSavedListRoutes(rg *gin.RouterGroup, listService portssvc.SavedListSvcFacade) {
	h := NewSavedListHandler(listService)

	lists := rg.Group("/lists")
	{
		lists.GET("", h.ListSavedLists)
		lists.POST("", h.CreateSavedList)
		lists.GET("/:id", h.GetSavedList)
		lists.PUT("/:id", h.UpdateSavedList)
		lists.PATCH("/:id", h.UpdateSavedList)
		lists.DELETE("/:id", h.DeleteSavedList)
	}
}

// ListSavedLists godoc
// @Summary List saved lists
// @Tags lists
// @Produce json
// @Security BearerAuth
// @Success 200 {array} dto.SavedListResponse
// @Router /lists [get]
func (h *SavedListHandler) ListSavedLists(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	lists, err := h.listService.ListSavedLists(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err, msgListNotFound)
		return
	}
	c.JSON(http.StatusOK, dto.ToSavedListResponseList(lists))
}

// CreateSavedList godoc
// @Summary Create a saved list
// @Description Every lead id must belong to the caller.
// @Tags lists
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param list body dto.SavedListRequest true "List"
// @Success 201 {object} dto.SavedListResponse
// @Failure 400 {object} ErrorResponse
// @Router /lists [post]
func (h *SavedListHandler) CreateSavedList(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	var req dto.SavedListRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	list, err := h.listService.CreateSavedList(c.Request.Context(), userID, req)
	if err != nil {
		respondError(c, err, msgListNotFound)
		return
	}
	c.JSON(http.StatusCreated, dto.ToSavedListResponse(*list))
}

// GetSavedList godoc
// @Summary Get a saved list
// @Tags lists
// @Produce json
// @Security BearerAuth
// @Param id path string true "List ID" format(uuid)
// @Success 200 {object} dto.SavedListResponse
// @Failure 404 {object} ErrorResponse
// @Router /lists/{id} [get]
func (h *SavedListHandler) GetSavedList(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	list, err := h.listService.GetSavedList(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		respondError(c, err, msgListNotFound)
		return
	}
	c.JSON(http.StatusOK, dto.ToSavedListResponse(*list))
}

// UpdateSavedList godoc
// @Summary Update a saved list
// @Description Renames the list and replaces its members.
// @Tags lists
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "List ID" format(uuid)
// @Param list body dto.SavedListRequest true "List"
// @Success 200 {object} dto.SavedListResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /lists/{id} [put]
func (h *SavedListHandler) UpdateSavedList(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	var req dto.SavedListRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	list, err := h.listService.UpdateSavedList(c.Request.Context(), userID, c.Param("id"), req)
	if err != nil {
		respondError(c, err, msgListNotFound)
		return
	}
	c.JSON(http.StatusOK, dto.ToSavedListResponse(*list))
}

// DeleteSavedList godoc
// @Summary Delete a saved list
// @Tags lists
// @Security BearerAuth
// @Param id path string true "List ID" format(uuid)
// @Success 204 "Deleted"
// @Failure 404 {object} ErrorResponse
// @Router /lists/{id} [delete]
func (h *SavedListHandler) DeleteSavedList(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	if err := h.listService.DeleteSavedList(c.Request.Context(), userID, c.Param("id")); err != nil {
		respondError(c, err, msgListNotFound)
		return
	}
	c.Status(http.StatusNoContent)
}
