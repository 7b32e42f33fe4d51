package handlers_test

import (
	"net/http"
	"testing"

	"one-on-one-backend/internal/api/handlers"
	"one-on-one-backend/internal/database/models"
	apperrors "one-on-one-backend/internal/errors"
	"one-on-one-backend/internal/mocks"
	"one-on-one-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestQuestionHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockService := mocks.NewMockQuestionServiceInterface(ctrl)
	handler := handlers.NewQuestionHandler(mockService)
	developer := newUser(models.UserRoleDeveloper)

	httpSuite := setupHTTPAs(developer)
	httpSuite.Router.GET("/api/questions", handler.ListQuestions)
	httpSuite.Router.GET("/api/one-on-ones/:id/questions", handler.ListSessionQuestions)

	t.Run("Company questions", func(t *testing.T) {
		mockService.EXPECT().ListForTeam(gomock.Nil()).Return([]models.Question{{Text: "How was your month?", SortOrder: 1}}, nil)

		recorder := httpSuite.MakeRequest(http.MethodGet, "/api/questions", nil)

		var questions []models.Question
		testutils.AssertJSONResponse(t, recorder, http.StatusOK, &questions)
		assert.Len(t, questions, 1)
	})

	t.Run("Team questions", func(t *testing.T) {
		teamID := uuid.New()
		mockService.EXPECT().ListForTeam(&teamID).Return([]models.Question{{}, {TeamID: &teamID}}, nil)

		recorder := httpSuite.MakeRequest(http.MethodGet, "/api/questions?team_id="+teamID.String(), nil)

		var questions []models.Question
		testutils.AssertJSONResponse(t, recorder, http.StatusOK, &questions)
		assert.Len(t, questions, 2)
	})

	t.Run("Invalid team", func(t *testing.T) {
		recorder := httpSuite.MakeRequest(http.MethodGet, "/api/questions?team_id=core", nil)
		testutils.AssertErrorResponse(t, recorder, http.StatusBadRequest, "invalid team ID")
	})

	t.Run("Session questions", func(t *testing.T) {
		sessionID := uuid.New()
		mockService.EXPECT().ListForSession(developer, sessionID).Return([]models.Question{{Text: "q"}}, nil)

		recorder := httpSuite.MakeRequest(http.MethodGet, "/api/one-on-ones/"+sessionID.String()+"/questions", nil)
		assert.Equal(t, http.StatusOK, recorder.Code)
	})

	t.Run("Session of someone else", func(t *testing.T) {
		mockService.EXPECT().ListForSession(developer, gomock.Any()).Return(nil, apperrors.ErrNotParticipant)

		recorder := httpSuite.MakeRequest(http.MethodGet, "/api/one-on-ones/"+uuid.NewString()+"/questions", nil)
		testutils.AssertErrorResponse(t, recorder, http.StatusForbidden, "not a participant")
	})
}
