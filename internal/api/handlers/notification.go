package handlers

import (
	"net/http"
	"strconv"

	"one-on-one-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// NotificationHandler handles the in-app notification inbox and the admin triggers
type NotificationHandler struct {
	notificationService service.NotificationServiceInterface
}

// NewNotificationHandler creates a new notification handler
func NewNotificationHandler(notificationService service.NotificationServiceInterface) *NotificationHandler {
	return &NotificationHandler{notificationService: notificationService}
}

// ListNotifications handles GET /api/notifications
// @Summary List my notifications
// @Tags notifications
// @Produce json
// @Param unread query bool false "Only unread notifications"
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Items per page" default(20)
// @Success 200 {object} service.NotificationListResponse
// @Security BearerAuth
// @Router /api/notifications [get]
func (h *NotificationHandler) ListNotifications(c *gin.Context) {
	user, ok := actor(c)
	if !ok {
		return
	}

	unreadOnly, _ := strconv.ParseBool(c.Query("unread"))
	page, pageSize := pagination(c)
	notifications, err := h.notificationService.List(user, unreadOnly, page, pageSize)
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, notifications)
}

// UnreadCount handles GET /api/notifications/unread-count
// @Summary Count my unread notifications
// @Tags notifications
// @Produce json
// @Success 200 {object} map[string]interface{} "Unread count"
// @Security BearerAuth
// @Router /api/notifications/unread-count [get]
func (h *NotificationHandler) UnreadCount(c *gin.Context) {
	user, ok := actor(c)
	if !ok {
		return
	}

	count, err := h.notificationService.UnreadCount(user)
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"unread": count})
}

// MarkRead handles PATCH /api/notifications/{id}/read
// @Summary Mark a notification read
// @Tags notifications
// @Param id path string true "Notification ID (UUID)"
// @Success 204 "Marked read"
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /api/notifications/{id}/read [patch]
func (h *NotificationHandler) MarkRead(c *gin.Context) {
	user, ok := actor(c)
	if !ok {
		return
	}
	id, ok := uuidParam(c, "id", "notification")
	if !ok {
		return
	}

	if err := h.notificationService.MarkRead(user, id); err != nil {
		handleError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// MarkAllRead handles POST /api/notifications/read-all
// @Summary Mark all my notifications read
// @Tags notifications
// @Produce json
// @Success 200 {object} map[string]interface{} "Number of notifications marked"
// @Security BearerAuth
// @Router /api/notifications/read-all [post]
func (h *NotificationHandler) MarkAllRead(c *gin.Context) {
	user, ok := actor(c)
	if !ok {
		return
	}

	updated, err := h.notificationService.MarkAllRead(user)
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"updated": updated})
}

// CreateNotification handles POST /api/admin/notifications
// @Summary Notify a user
// @Tags admin
// @Accept json
// @Produce json
// @Param notification body service.CreateNotificationRequest true "Notification"
// @Success 201 {object} SuccessResponse{data=models.Notification}
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /api/admin/notifications [post]
func (h *NotificationHandler) CreateNotification(c *gin.Context) {
	user, ok := actor(c)
	if !ok {
		return
	}

	var req service.CreateNotificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	notification, err := h.notificationService.Create(c.Request.Context(), user, &req)
	if err != nil {
		handleError(c, err)
		return
	}
	respondSuccess(c, http.StatusCreated, notification)
}

// RunScans handles POST /api/admin/notifications/scan
// @Summary Run the action item scans now
// @Description Notifies assignees of overdue and soon due action items; each item is notified once per kind
// @Tags admin
// @Produce json
// @Success 200 {object} SuccessResponse{data=service.ScanResult}
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /api/admin/notifications/scan [post]
func (h *NotificationHandler) RunScans(c *gin.Context) {
	user, ok := actor(c)
	if !ok {
		return
	}

	result, err := h.notificationService.RunScans(c.Request.Context(), user)
	if err != nil {
		handleError(c, err)
		return
	}
	respondSuccess(c, http.StatusOK, result)
}
