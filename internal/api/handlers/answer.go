package handlers

import (
	"net/http"

	"one-on-one-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// AnswerHandler handles answer and note writes
type AnswerHandler struct {
	answerService service.AnswerServiceInterface
}

// NewAnswerHandler creates a new answer handler
func NewAnswerHandler(answerService service.AnswerServiceInterface) *AnswerHandler {
	return &AnswerHandler{answerService: answerService}
}

// SubmitAnswer handles POST /api/one-on-ones/answers
// @Summary Save an answer
// @Description Insert or replace my answer to one question of a session
// @Tags one-on-ones
// @Accept json
// @Produce json
// @Param answer body service.SubmitAnswerRequest true "Answer"
// @Success 200 {object} models.Answer
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Session is completed"
// @Security BearerAuth
// @Router /api/one-on-ones/answers [post]
func (h *AnswerHandler) SubmitAnswer(c *gin.Context) {
	user, ok := actor(c)
	if !ok {
		return
	}

	var req service.SubmitAnswerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	answer, err := h.answerService.SubmitAnswer(user, &req)
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, answer)
}

// SubmitAnswers handles POST /api/one-on-ones/answers/batch
// @Summary Save several answers
// @Description Insert or replace several of my answers; either all are stored or none
// @Tags one-on-ones
// @Accept json
// @Produce json
// @Param answers body service.SubmitAnswersRequest true "Answers"
// @Success 200 {object} map[string]interface{} "Stored answers"
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /api/one-on-ones/answers/batch [post]
func (h *AnswerHandler) SubmitAnswers(c *gin.Context) {
	user, ok := actor(c)
	if !ok {
		return
	}

	var req service.SubmitAnswersRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	answers, err := h.answerService.SubmitAnswers(user, &req)
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"answers": answers})
}

// SaveNote handles POST /api/one-on-ones/notes
// @Summary Save a note
// @Description Insert or replace the developer notes or the manager feedback of a session
// @Tags one-on-ones
// @Accept json
// @Produce json
// @Param note body service.SaveNoteRequest true "Note"
// @Success 200 {object} models.Note
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /api/one-on-ones/notes [post]
func (h *AnswerHandler) SaveNote(c *gin.Context) {
	user, ok := actor(c)
	if !ok {
		return
	}

	var req service.SaveNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	note, err := h.answerService.SaveNote(user, &req)
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, note)
}
