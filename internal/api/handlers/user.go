package handlers

import (
	"net/http"

	"one-on-one-backend/internal/database/models"
	"one-on-one-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// UserHandler handles HTTP requests for users
type UserHandler struct {
	userService service.UserServiceInterface
}

// NewUserHandler creates a new user handler
func NewUserHandler(userService service.UserServiceInterface) *UserHandler {
	return &UserHandler{userService: userService}
}

// GetCurrentUser handles GET /api/me
// @Summary Get current user
// @Description Returns the signed-in user with their teams
// @Tags users
// @Produce json
// @Success 200 {object} service.UserResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /api/me [get]
func (h *UserHandler) GetCurrentUser(c *gin.Context) {
	user, ok := actor(c)
	if !ok {
		return
	}

	me, err := h.userService.GetMe(user)
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, me)
}

// ListUsers handles GET /api/admin/users
// @Summary List users
// @Description Search users by name or email, optionally filtered by role
// @Tags admin
// @Produce json
// @Param q query string false "Name or email fragment"
// @Param role query string false "Role filter" Enums(admin, manager, developer)
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Items per page" default(20)
// @Success 200 {object} service.UserListResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /api/admin/users [get]
func (h *UserHandler) ListUsers(c *gin.Context) {
	user, ok := actor(c)
	if !ok {
		return
	}

	page, pageSize := pagination(c)
	users, err := h.userService.List(user, &service.ListUsersRequest{
		Query:    c.Query("q"),
		Role:     models.UserRole(c.Query("role")),
		Page:     page,
		PageSize: pageSize,
	})
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

// UpdateUser handles PATCH /api/admin/users/{userId}
// @Summary Update a user
// @Description Change a user's role, name or team memberships. team_ids replaces the whole membership set.
// @Tags admin
// @Accept json
// @Produce json
// @Param userId path string true "User ID (UUID)"
// @Param user body service.UpdateUserRequest true "Fields to change"
// @Success 200 {object} SuccessResponse{data=service.UserResponse}
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /api/admin/users/{userId} [patch]
func (h *UserHandler) UpdateUser(c *gin.Context) {
	user, ok := actor(c)
	if !ok {
		return
	}
	id, ok := uuidParam(c, "userId", "user")
	if !ok {
		return
	}

	var req service.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	updated, err := h.userService.Update(user, id, &req)
	if err != nil {
		handleError(c, err)
		return
	}
	respondSuccess(c, http.StatusOK, updated)
}

// ProvisionUser handles POST /api/admin/users
// @Summary Provision a user
// @Description Create a user ahead of their first sign-in; they are matched by email
// @Tags admin
// @Accept json
// @Produce json
// @Param user body service.ProvisionUserRequest true "User data"
// @Success 201 {object} SuccessResponse{data=service.UserResponse}
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "User already exists"
// @Security BearerAuth
// @Router /api/admin/users [post]
func (h *UserHandler) ProvisionUser(c *gin.Context) {
	user, ok := actor(c)
	if !ok {
		return
	}

	var req service.ProvisionUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	created, err := h.userService.Provision(user, &req)
	if err != nil {
		handleError(c, err)
		return
	}
	respondSuccess(c, http.StatusCreated, created)
}

// SearchDirectory handles GET /api/admin/directory/search
// @Summary Search the company directory
// @Description Looks people up in LDAP and flags those without an account as new
// @Tags admin
// @Produce json
// @Param q query string true "Name, uid or email fragment"
// @Success 200 {object} map[string]interface{} "Directory results"
// @Failure 400 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse "Directory not configured"
// @Security BearerAuth
// @Router /api/admin/directory/search [get]
func (h *UserHandler) SearchDirectory(c *gin.Context) {
	user, ok := actor(c)
	if !ok {
		return
	}

	query := c.Query("q")
	if query == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "q parameter is required"})
		return
	}

	results, err := h.userService.SearchDirectory(user, query)
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"results": results})
}
