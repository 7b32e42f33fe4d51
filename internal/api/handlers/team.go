package handlers

import (
	"net/http"

	"one-on-one-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// TeamHandler handles HTTP requests for team operations
type TeamHandler struct {
	teamService service.TeamServiceInterface
}

// NewTeamHandler creates a new team handler
func NewTeamHandler(teamService service.TeamServiceInterface) *TeamHandler {
	return &TeamHandler{
		teamService: teamService,
	}
}

// CreateTeam handles POST /api/admin/teams
// @Summary Create a new team
// @Description Create a team, optionally assigning a manager
// @Tags admin
// @Accept json
// @Produce json
// @Param team body service.CreateTeamRequest true "Team data"
// @Success 201 {object} SuccessResponse{data=service.TeamResponse} "Successfully created team"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 403 {object} ErrorResponse "Admin role required"
// @Failure 404 {object} ErrorResponse "Manager not found"
// @Failure 409 {object} ErrorResponse "Team name taken"
// @Security BearerAuth
// @Router /api/admin/teams [post]
func (h *TeamHandler) CreateTeam(c *gin.Context) {
	user, ok := actor(c)
	if !ok {
		return
	}

	var req service.CreateTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	team, err := h.teamService.Create(user, &req)
	if err != nil {
		handleError(c, err)
		return
	}

	respondSuccess(c, http.StatusCreated, team)
}

// GetTeam handles GET /api/admin/teams/{teamId}
// @Summary Get team by ID
// @Description Get a team with its members
// @Tags admin
// @Produce json
// @Param teamId path string true "Team ID (UUID)"
// @Success 200 {object} service.TeamResponse "Successfully retrieved team"
// @Failure 400 {object} ErrorResponse "Invalid team ID"
// @Failure 404 {object} ErrorResponse "Team not found"
// @Security BearerAuth
// @Router /api/admin/teams/{teamId} [get]
func (h *TeamHandler) GetTeam(c *gin.Context) {
	user, ok := actor(c)
	if !ok {
		return
	}
	id, ok := uuidParam(c, "teamId", "team")
	if !ok {
		return
	}

	team, err := h.teamService.GetWithMembers(user, id)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, team)
}

// ListTeams handles GET /api/admin/teams
// @Summary List all teams
// @Tags admin
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Number of items per page" default(20)
// @Success 200 {object} service.TeamListResponse "Successfully retrieved teams"
// @Failure 403 {object} ErrorResponse "Admin role required"
// @Security BearerAuth
// @Router /api/admin/teams [get]
func (h *TeamHandler) ListTeams(c *gin.Context) {
	user, ok := actor(c)
	if !ok {
		return
	}

	page, pageSize := pagination(c)
	teams, err := h.teamService.GetAll(user, page, pageSize)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, teams)
}

// ListManagedTeams handles GET /api/manager/teams
// @Summary List the teams I manage
// @Tags manager
// @Produce json
// @Success 200 {array} service.TeamResponse
// @Security BearerAuth
// @Router /api/manager/teams [get]
func (h *TeamHandler) ListManagedTeams(c *gin.Context) {
	user, ok := actor(c)
	if !ok {
		return
	}

	teams, err := h.teamService.GetManagedTeams(user)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, teams)
}

// UpdateTeam handles PATCH /api/admin/teams/{teamId}
// @Summary Update a team
// @Description Rename a team, change its description or replace its manager
// @Tags admin
// @Accept json
// @Produce json
// @Param teamId path string true "Team ID (UUID)"
// @Param team body service.UpdateTeamRequest true "Fields to change"
// @Success 200 {object} SuccessResponse{data=service.TeamResponse} "Successfully updated team"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "Team not found"
// @Security BearerAuth
// @Router /api/admin/teams/{teamId} [patch]
func (h *TeamHandler) UpdateTeam(c *gin.Context) {
	user, ok := actor(c)
	if !ok {
		return
	}
	id, ok := uuidParam(c, "teamId", "team")
	if !ok {
		return
	}

	var req service.UpdateTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	team, err := h.teamService.Update(user, id, &req)
	if err != nil {
		handleError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, team)
}

// DeleteTeam handles DELETE /api/admin/teams/{teamId}
// @Summary Delete a team
// @Description Delete a team; fails while it still has members
// @Tags admin
// @Produce json
// @Param teamId path string true "Team ID (UUID)"
// @Success 200 {object} SuccessResponse "Team deleted"
// @Failure 400 {object} ErrorResponse "Team still has members"
// @Failure 404 {object} ErrorResponse "Team not found"
// @Security BearerAuth
// @Router /api/admin/teams/{teamId} [delete]
func (h *TeamHandler) DeleteTeam(c *gin.Context) {
	user, ok := actor(c)
	if !ok {
		return
	}
	id, ok := uuidParam(c, "teamId", "team")
	if !ok {
		return
	}

	if err := h.teamService.Delete(user, id); err != nil {
		handleError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, gin.H{"id": id})
}
