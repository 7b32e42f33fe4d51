package handlers

import (
	"net/http"

	"one-on-one-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// QuestionHandler serves the question catalogue
type QuestionHandler struct {
	questionService service.QuestionServiceInterface
}

// NewQuestionHandler creates a new question handler
func NewQuestionHandler(questionService service.QuestionServiceInterface) *QuestionHandler {
	return &QuestionHandler{questionService: questionService}
}

// ListQuestions handles GET /api/questions
// @Summary List questions
// @Description Active company questions, plus the given team's questions, in display order
// @Tags questions
// @Produce json
// @Param team_id query string false "Team ID (UUID)"
// @Success 200 {array} models.Question
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /api/questions [get]
func (h *QuestionHandler) ListQuestions(c *gin.Context) {
	var teamID *uuid.UUID
	if raw := c.Query("team_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid team ID"})
			return
		}
		teamID = &id
	}

	questions, err := h.questionService.ListForTeam(teamID)
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, questions)
}

// ListSessionQuestions handles GET /api/one-on-ones/{id}/questions
// @Summary Questions of a session
// @Description Company questions plus the questions of every team of the session's developer
// @Tags one-on-ones
// @Produce json
// @Param id path string true "One-on-one ID (UUID)"
// @Success 200 {array} models.Question
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /api/one-on-ones/{id}/questions [get]
func (h *QuestionHandler) ListSessionQuestions(c *gin.Context) {
	user, ok := actor(c)
	if !ok {
		return
	}
	id, ok := uuidParam(c, "id", "one-on-one")
	if !ok {
		return
	}

	questions, err := h.questionService.ListForSession(user, id)
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, questions)
}
