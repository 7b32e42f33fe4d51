package handlers

import (
	"net/http"

	"one-on-one-backend/internal/database/models"
	"one-on-one-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// ActionItemHandler handles HTTP requests for action items
type ActionItemHandler struct {
	actionItemService service.ActionItemServiceInterface
}

// NewActionItemHandler creates a new action item handler
func NewActionItemHandler(actionItemService service.ActionItemServiceInterface) *ActionItemHandler {
	return &ActionItemHandler{actionItemService: actionItemService}
}

// ListMyActionItems handles GET /api/action-items
// @Summary List my action items
// @Description Action items assigned to me across my sessions
// @Tags action-items
// @Produce json
// @Param status query string false "Status" Enums(pending, in_progress, completed)
// @Success 200 {array} models.ActionItem
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /api/action-items [get]
func (h *ActionItemHandler) ListMyActionItems(c *gin.Context) {
	user, ok := actor(c)
	if !ok {
		return
	}

	items, err := h.actionItemService.ListMine(user, models.ActionItemStatus(c.Query("status")))
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

// CreateActionItem handles POST /api/one-on-ones/{id}/action-items
// @Summary Add an action item
// @Tags action-items
// @Accept json
// @Produce json
// @Param id path string true "One-on-one ID (UUID)"
// @Param item body service.CreateActionItemRequest true "Action item"
// @Success 201 {object} models.ActionItem
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /api/one-on-ones/{id}/action-items [post]
func (h *ActionItemHandler) CreateActionItem(c *gin.Context) {
	user, ok := actor(c)
	if !ok {
		return
	}
	sessionID, ok := uuidParam(c, "id", "one-on-one")
	if !ok {
		return
	}

	var req service.CreateActionItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	item, err := h.actionItemService.Create(user, sessionID, &req)
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, item)
}

// UpdateActionItem handles PATCH /api/action-items/{id}
// @Summary Update an action item
// @Description Partial update; completing an item records its completion time
// @Tags action-items
// @Accept json
// @Produce json
// @Param id path string true "Action item ID (UUID)"
// @Param item body service.UpdateActionItemRequest true "Fields to change"
// @Success 200 {object} models.ActionItem
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /api/action-items/{id} [patch]
func (h *ActionItemHandler) UpdateActionItem(c *gin.Context) {
	user, ok := actor(c)
	if !ok {
		return
	}
	id, ok := uuidParam(c, "id", "action item")
	if !ok {
		return
	}

	var req service.UpdateActionItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	item, err := h.actionItemService.Update(user, id, &req)
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

// DeleteActionItem handles DELETE /api/action-items/{id}
// @Summary Delete an action item
// @Description The item's creator, the session manager or an admin may delete it
// @Tags action-items
// @Param id path string true "Action item ID (UUID)"
// @Success 204 "Deleted"
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /api/action-items/{id} [delete]
func (h *ActionItemHandler) DeleteActionItem(c *gin.Context) {
	user, ok := actor(c)
	if !ok {
		return
	}
	id, ok := uuidParam(c, "id", "action item")
	if !ok {
		return
	}

	if err := h.actionItemService.Delete(user, id); err != nil {
		handleError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
