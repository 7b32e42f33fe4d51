package handlers

import (
	"net/http"

	"one-on-one-backend/internal/database/models"
	"one-on-one-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// OneOnOneHandler handles HTTP requests for one-on-one sessions
type OneOnOneHandler struct {
	oneOnOneService service.OneOnOneServiceInterface
}

// NewOneOnOneHandler creates a new one-on-one handler
func NewOneOnOneHandler(oneOnOneService service.OneOnOneServiceInterface) *OneOnOneHandler {
	return &OneOnOneHandler{oneOnOneService: oneOnOneService}
}

// ListOneOnOnes handles GET /api/one-on-ones
// @Summary List my one-on-ones
// @Description Developers see their own sessions, managers the sessions they run, admins all sessions
// @Tags one-on-ones
// @Produce json
// @Param month query string false "Month (YYYY-MM)"
// @Param status query string false "Status" Enums(draft, submitted, reviewed, completed)
// @Param as query string false "Which side of my sessions to list" Enums(developer, manager)
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Items per page" default(20)
// @Success 200 {object} service.OneOnOneListResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /api/one-on-ones [get]
func (h *OneOnOneHandler) ListOneOnOnes(c *gin.Context) {
	user, ok := actor(c)
	if !ok {
		return
	}

	page, pageSize := pagination(c)
	sessions, err := h.oneOnOneService.List(user, &service.ListOneOnOnesRequest{
		Month:    c.Query("month"),
		Status:   models.OneOnOneStatus(c.Query("status")),
		As:       c.Query("as"),
		Page:     page,
		PageSize: pageSize,
	})
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, sessions)
}

// GetOneOnOne handles GET /api/one-on-ones/{id}
// @Summary Get a one-on-one
// @Description Session detail with answers, notes, action items and metrics
// @Tags one-on-ones
// @Produce json
// @Param id path string true "One-on-one ID (UUID)"
// @Success 200 {object} models.OneOnOne
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /api/one-on-ones/{id} [get]
func (h *OneOnOneHandler) GetOneOnOne(c *gin.Context) {
	user, ok := actor(c)
	if !ok {
		return
	}
	id, ok := uuidParam(c, "id", "one-on-one")
	if !ok {
		return
	}

	session, err := h.oneOnOneService.Get(user, id)
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

// CreateOneOnOne handles POST /api/manager/one-on-ones
// @Summary Create a one-on-one
// @Description Create a draft session for a developer of one of my teams
// @Tags manager
// @Accept json
// @Produce json
// @Param session body service.CreateOneOnOneRequest true "Session data"
// @Success 201 {object} SuccessResponse{data=models.OneOnOne}
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /api/manager/one-on-ones [post]
func (h *OneOnOneHandler) CreateOneOnOne(c *gin.Context) {
	user, ok := actor(c)
	if !ok {
		return
	}

	var req service.CreateOneOnOneRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	session, err := h.oneOnOneService.Create(c.Request.Context(), user, &req)
	if err != nil {
		handleError(c, err)
		return
	}
	respondSuccess(c, http.StatusCreated, session)
}

// BulkCreateOneOnOnes handles POST /api/manager/one-on-ones/bulk
// @Summary Create one-on-ones in bulk
// @Description Create a session for each developer of a team or an explicit list; developers that already have one for the month are skipped
// @Tags manager
// @Accept json
// @Produce json
// @Param request body service.BulkCreateRequest true "Bulk request"
// @Success 200 {object} SuccessResponse{data=service.BulkCreateResult}
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /api/manager/one-on-ones/bulk [post]
func (h *OneOnOneHandler) BulkCreateOneOnOnes(c *gin.Context) {
	user, ok := actor(c)
	if !ok {
		return
	}

	var req service.BulkCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	result, err := h.oneOnOneService.BulkCreate(c.Request.Context(), user, &req)
	if err != nil {
		handleError(c, err)
		return
	}
	respondSuccess(c, http.StatusOK, result)
}

// SendReminders handles POST /api/manager/one-on-ones/reminders
// @Summary Remind developers
// @Description Notify the developers of my unfinished sessions of the month
// @Tags manager
// @Accept json
// @Produce json
// @Param request body service.ReminderRequest true "Month"
// @Success 200 {object} SuccessResponse{data=service.FanOutSummary}
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /api/manager/one-on-ones/reminders [post]
func (h *OneOnOneHandler) SendReminders(c *gin.Context) {
	user, ok := actor(c)
	if !ok {
		return
	}

	var req service.ReminderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	summary, err := h.oneOnOneService.SendReminders(c.Request.Context(), user, &req)
	if err != nil {
		handleError(c, err)
		return
	}
	respondSuccess(c, http.StatusOK, summary)
}

// DeleteOneOnOne handles DELETE /api/manager/one-on-ones/{id}
// @Summary Delete a draft one-on-one
// @Tags manager
// @Produce json
// @Param id path string true "One-on-one ID (UUID)"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse "Only drafts can be deleted"
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /api/manager/one-on-ones/{id} [delete]
func (h *OneOnOneHandler) DeleteOneOnOne(c *gin.Context) {
	user, ok := actor(c)
	if !ok {
		return
	}
	id, ok := uuidParam(c, "id", "one-on-one")
	if !ok {
		return
	}

	if err := h.oneOnOneService.Delete(user, id); err != nil {
		handleError(c, err)
		return
	}
	respondSuccess(c, http.StatusOK, gin.H{"id": id})
}

// UpdateStatus handles PATCH /api/one-on-ones/{id}/status
// @Summary Change a session's status
// @Description Moves the session along draft, submitted, reviewed, completed. Completing a session queues its metrics.
// @Tags one-on-ones
// @Accept json
// @Produce json
// @Param id path string true "One-on-one ID (UUID)"
// @Param request body service.UpdateStatusRequest true "Target status"
// @Success 200 {object} models.OneOnOne
// @Failure 400 {object} ErrorResponse "Transition not allowed"
// @Failure 403 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Status changed concurrently"
// @Security BearerAuth
// @Router /api/one-on-ones/{id}/status [patch]
func (h *OneOnOneHandler) UpdateStatus(c *gin.Context) {
	user, ok := actor(c)
	if !ok {
		return
	}
	id, ok := uuidParam(c, "id", "one-on-one")
	if !ok {
		return
	}

	var req service.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	session, err := h.oneOnOneService.TransitionStatus(c.Request.Context(), user, id, &req)
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}
