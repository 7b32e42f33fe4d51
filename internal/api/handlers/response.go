package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"one-on-one-backend/internal/auth"
	"one-on-one-backend/internal/database/models"
	apperrors "one-on-one-backend/internal/errors"
	"one-on-one-backend/internal/logger"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// SuccessResponse wraps the result of admin and manager write endpoints
type SuccessResponse struct {
	Success bool        `json:"success" example:"true"`
	Data    interface{} `json:"data"`
}

func respondSuccess(c *gin.Context, status int, data interface{}) {
	c.JSON(status, SuccessResponse{Success: true, Data: data})
}

// statusFor maps service errors onto HTTP status codes
func statusFor(err error) int {
	var validationErrs validator.ValidationErrors
	switch {
	case apperrors.IsNotFound(err):
		return http.StatusNotFound
	case apperrors.IsAuthorization(err):
		return http.StatusForbidden
	case apperrors.IsAuthentication(err):
		return http.StatusUnauthorized
	case apperrors.IsValidation(err), errors.As(err, &validationErrs):
		return http.StatusBadRequest
	case apperrors.IsAlreadyExists(err), apperrors.IsConflict(err):
		return http.StatusConflict
	case apperrors.IsConfiguration(err):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// handleError writes err as {error: message}; unexpected errors are logged
func handleError(c *gin.Context, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		logger.WithContext(c.Request.Context()).WithError(err).
			WithField("path", c.FullPath()).
			Error("Request failed")
	}
	c.JSON(status, ErrorResponse{Error: err.Error()})
}

// actor returns the signed-in user or writes a 401
func actor(c *gin.Context) (*models.User, bool) {
	user, ok := auth.ActorFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: apperrors.ErrUserIDNotFound.Error()})
		return nil, false
	}
	return user, true
}

// uuidParam parses a path parameter or writes a 400 naming it
func uuidParam(c *gin.Context, name, label string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid " + label + " ID"})
		return uuid.Nil, false
	}
	return id, true
}

// pagination reads page and page_size; out-of-range values fall back to defaults
func pagination(c *gin.Context) (int, int) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}
	pageSize, err := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	if err != nil || pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}
	return page, pageSize
}
