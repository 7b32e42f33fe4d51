package handlers

import (
	"net/http"

	"one-on-one-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// AnalyticsHandler serves metrics trends, team summaries and the dashboard
type AnalyticsHandler struct {
	analyticsService service.AnalyticsServiceInterface
	metricsService   service.MetricsServiceInterface
}

// NewAnalyticsHandler creates a new analytics handler
func NewAnalyticsHandler(analyticsService service.AnalyticsServiceInterface, metricsService service.MetricsServiceInterface) *AnalyticsHandler {
	return &AnalyticsHandler{
		analyticsService: analyticsService,
		metricsService:   metricsService,
	}
}

// DeveloperTrend handles GET /api/analytics/developers/{id}/metrics
// @Summary Developer metrics trend
// @Description Month-ordered snapshots of a developer's completed sessions
// @Tags analytics
// @Produce json
// @Param id path string true "Developer ID (UUID)"
// @Param from query string false "First month (YYYY-MM)"
// @Param to query string false "Last month (YYYY-MM)"
// @Success 200 {object} service.DeveloperTrendResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /api/analytics/developers/{id}/metrics [get]
func (h *AnalyticsHandler) DeveloperTrend(c *gin.Context) {
	user, ok := actor(c)
	if !ok {
		return
	}
	id, ok := uuidParam(c, "id", "developer")
	if !ok {
		return
	}

	trend, err := h.analyticsService.DeveloperTrend(user, id, c.Query("from"), c.Query("to"))
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, trend)
}

// TeamSummary handles GET /api/analytics/teams/{id}/summary
// @Summary Team monthly summary
// @Description Averages over the completed sessions of a team's developers in one month
// @Tags analytics
// @Produce json
// @Param id path string true "Team ID (UUID)"
// @Param month query string true "Month (YYYY-MM)"
// @Success 200 {object} service.TeamSummaryResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /api/analytics/teams/{id}/summary [get]
func (h *AnalyticsHandler) TeamSummary(c *gin.Context) {
	user, ok := actor(c)
	if !ok {
		return
	}
	id, ok := uuidParam(c, "id", "team")
	if !ok {
		return
	}

	summary, err := h.analyticsService.TeamSummary(user, id, c.Query("month"))
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

// Dashboard handles GET /api/dashboard
// @Summary Dashboard counters
// @Description Counters for the signed-in user; managers and admins get extra sections
// @Tags analytics
// @Produce json
// @Success 200 {object} service.DashboardResponse
// @Security BearerAuth
// @Router /api/dashboard [get]
func (h *AnalyticsHandler) Dashboard(c *gin.Context) {
	user, ok := actor(c)
	if !ok {
		return
	}

	dashboard, err := h.analyticsService.Dashboard(c.Request.Context(), user)
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, dashboard)
}

// SessionMetrics handles GET /api/one-on-ones/{id}/metrics
// @Summary Metrics of a session
// @Tags one-on-ones
// @Produce json
// @Param id path string true "One-on-one ID (UUID)"
// @Success 200 {object} models.MetricsSnapshot
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "Session or snapshot not found"
// @Security BearerAuth
// @Router /api/one-on-ones/{id}/metrics [get]
func (h *AnalyticsHandler) SessionMetrics(c *gin.Context) {
	user, ok := actor(c)
	if !ok {
		return
	}
	id, ok := uuidParam(c, "id", "one-on-one")
	if !ok {
		return
	}

	snapshot, err := h.metricsService.GetForSession(user, id)
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, snapshot)
}

// RetryMetricsJobs handles POST /api/admin/metrics/retry
// @Summary Retry metrics jobs
// @Description Re-runs pending and failed metrics computations
// @Tags admin
// @Produce json
// @Success 200 {object} SuccessResponse{data=service.JobRunSummary}
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /api/admin/metrics/retry [post]
func (h *AnalyticsHandler) RetryMetricsJobs(c *gin.Context) {
	user, ok := actor(c)
	if !ok {
		return
	}

	summary, err := h.metricsService.RetryPendingAsAdmin(c.Request.Context(), user)
	if err != nil {
		handleError(c, err)
		return
	}
	respondSuccess(c, http.StatusOK, summary)
}
