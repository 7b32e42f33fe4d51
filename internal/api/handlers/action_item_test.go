package handlers_test

import (
	"net/http"
	"testing"

	"one-on-one-backend/internal/api/handlers"
	"one-on-one-backend/internal/database/models"
	apperrors "one-on-one-backend/internal/errors"
	"one-on-one-backend/internal/mocks"
	"one-on-one-backend/internal/service"
	"one-on-one-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// ActionItemHandlerTestSuite defines the test suite for ActionItemHandler
type ActionItemHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockActionItemServiceInterface
	developer   *models.User
	httpSuite   *testutils.HTTPTestSuite
}

// SetupTest sets up the test suite
func (suite *ActionItemHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockActionItemServiceInterface(suite.ctrl)
	handler := handlers.NewActionItemHandler(suite.mockService)

	suite.developer = newUser(models.UserRoleDeveloper)
	suite.httpSuite = setupHTTPAs(suite.developer)
	suite.httpSuite.Router.GET("/api/action-items", handler.ListMyActionItems)
	suite.httpSuite.Router.PATCH("/api/action-items/:id", handler.UpdateActionItem)
	suite.httpSuite.Router.DELETE("/api/action-items/:id", handler.DeleteActionItem)
	suite.httpSuite.Router.POST("/api/one-on-ones/:id/action-items", handler.CreateActionItem)
}

// TearDownTest cleans up after each test
func (suite *ActionItemHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *ActionItemHandlerTestSuite) TestListMyActionItems() {
	suite.mockService.EXPECT().
		ListMine(suite.developer, models.ActionItemStatusPending).
		Return([]models.ActionItem{{Description: "Write the ADR", Status: models.ActionItemStatusPending}}, nil)

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/action-items?status=pending", nil)

	var items []models.ActionItem
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &items)
	assert.Len(suite.T(), items, 1)
}

func (suite *ActionItemHandlerTestSuite) TestCreateActionItem() {
	suite.T().Run("Created", func(t *testing.T) {
		sessionID := uuid.New()
		suite.mockService.EXPECT().
			Create(suite.developer, sessionID, &service.CreateActionItemRequest{Description: "Pair on the rollout", AssignedTo: models.ParticipantDeveloper, DueDate: "2024-07-01"}).
			Return(&models.ActionItem{OneOnOneID: sessionID, Description: "Pair on the rollout", AssignedTo: models.ParticipantDeveloper, Status: models.ActionItemStatusPending}, nil)

		recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/one-on-ones/"+sessionID.String()+"/action-items", map[string]interface{}{
			"description": "Pair on the rollout",
			"assigned_to": "developer",
			"due_date":    "2024-07-01",
		})

		var item models.ActionItem
		testutils.AssertJSONResponse(t, recorder, http.StatusCreated, &item)
		assert.Equal(t, models.ActionItemStatusPending, item.Status)
	})

	suite.T().Run("Bad due date", func(t *testing.T) {
		suite.mockService.EXPECT().Create(suite.developer, gomock.Any(), gomock.Any()).Return(nil, apperrors.ErrInvalidDueDate)

		recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/one-on-ones/"+uuid.NewString()+"/action-items", map[string]interface{}{"due_date": "07/01"})
		testutils.AssertErrorResponse(t, recorder, http.StatusBadRequest, "YYYY-MM-DD")
	})
}

func (suite *ActionItemHandlerTestSuite) TestUpdateActionItem() {
	suite.T().Run("Completed", func(t *testing.T) {
		id := uuid.New()
		status := models.ActionItemStatusCompleted
		suite.mockService.EXPECT().
			Update(suite.developer, id, &service.UpdateActionItemRequest{Status: &status}).
			Return(&models.ActionItem{BaseModel: models.BaseModel{ID: id}, Status: status}, nil)

		recorder := suite.httpSuite.MakeRequest(http.MethodPatch, "/api/action-items/"+id.String(), map[string]interface{}{"status": "completed"})
		assert.Equal(t, http.StatusOK, recorder.Code)
	})

	suite.T().Run("Missing", func(t *testing.T) {
		suite.mockService.EXPECT().Update(suite.developer, gomock.Any(), gomock.Any()).Return(nil, apperrors.ErrActionItemNotFound)

		recorder := suite.httpSuite.MakeRequest(http.MethodPatch, "/api/action-items/"+uuid.NewString(), map[string]interface{}{})
		testutils.AssertErrorResponse(t, recorder, http.StatusNotFound, "action item not found")
	})
}

func (suite *ActionItemHandlerTestSuite) TestDeleteActionItem() {
	suite.T().Run("Deleted", func(t *testing.T) {
		id := uuid.New()
		suite.mockService.EXPECT().Delete(suite.developer, id).Return(nil)

		recorder := suite.httpSuite.MakeRequest(http.MethodDelete, "/api/action-items/"+id.String(), nil)
		assert.Equal(t, http.StatusNoContent, recorder.Code)
	})

	suite.T().Run("Not allowed", func(t *testing.T) {
		suite.mockService.EXPECT().Delete(suite.developer, gomock.Any()).Return(apperrors.NewAuthorizationError("only the creator or the session manager can delete this action item"))

		recorder := suite.httpSuite.MakeRequest(http.MethodDelete, "/api/action-items/"+uuid.NewString(), nil)
		testutils.AssertErrorResponse(t, recorder, http.StatusForbidden, "creator")
	})

	suite.T().Run("Invalid ID", func(t *testing.T) {
		recorder := suite.httpSuite.MakeRequest(http.MethodDelete, "/api/action-items/abc", nil)
		testutils.AssertErrorResponse(t, recorder, http.StatusBadRequest, "invalid action item ID")
	})
}

// TestActionItemHandlerTestSuite runs the test suite
func TestActionItemHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(ActionItemHandlerTestSuite))
}
