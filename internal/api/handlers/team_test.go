package handlers_test

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
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

// TeamHandlerTestSuite defines the test suite for TeamHandler
type TeamHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockTeamServiceInterface
	handler     *handlers.TeamHandler
	admin       *models.User
	httpSuite   *testutils.HTTPTestSuite
}

// SetupTest sets up the test suite
func (suite *TeamHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockTeamServiceInterface(suite.ctrl)
	suite.handler = handlers.NewTeamHandler(suite.mockService)
	suite.admin = newUser(models.UserRoleAdmin)
	suite.httpSuite = setupHTTPAs(suite.admin)
	registerTeamRoutes(suite.httpSuite, suite.handler)
}

func registerTeamRoutes(httpSuite *testutils.HTTPTestSuite, handler *handlers.TeamHandler) {
	teams := httpSuite.Router.Group("/api/admin/teams")
	{
		teams.POST("", handler.CreateTeam)
		teams.GET("", handler.ListTeams)
		teams.GET("/:teamId", handler.GetTeam)
		teams.PATCH("/:teamId", handler.UpdateTeam)
		teams.DELETE("/:teamId", handler.DeleteTeam)
	}
	httpSuite.Router.GET("/api/manager/teams", handler.ListManagedTeams)
}

// TearDownTest cleans up after each test
func (suite *TeamHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestCreateTeam tests the CreateTeam handler
func (suite *TeamHandlerTestSuite) TestCreateTeam() {
	suite.T().Run("Success", func(t *testing.T) {
		managerID := uuid.New()
		expected := &service.TeamResponse{ID: uuid.New(), Name: "Platform Core", Slug: "platform-core", ManagerID: &managerID}

		suite.mockService.EXPECT().
			Create(suite.admin, &service.CreateTeamRequest{Name: "Platform Core", ManagerID: &managerID}).
			Return(expected, nil)

		recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/admin/teams", map[string]interface{}{
			"name":       "Platform Core",
			"manager_id": managerID.String(),
		})

		var team service.TeamResponse
		testutils.AssertSuccessEnvelope(t, recorder, http.StatusCreated, &team)
		assert.Equal(t, "platform-core", team.Slug)
	})

	suite.T().Run("Missing name", func(t *testing.T) {
		suite.mockService.EXPECT().
			Create(suite.admin, gomock.Any()).
			Return(nil, validationFailure(&service.CreateTeamRequest{}))

		recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/admin/teams", map[string]interface{}{})

		testutils.AssertErrorResponse(t, recorder, http.StatusBadRequest, "Name")
	})

	suite.T().Run("Name taken", func(t *testing.T) {
		suite.mockService.EXPECT().
			Create(suite.admin, gomock.Any()).
			Return(nil, apperrors.ErrTeamExists)

		recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/admin/teams", map[string]interface{}{"name": "dup"})

		testutils.AssertErrorResponse(t, recorder, http.StatusConflict, "team already exists")
	})

	suite.T().Run("Manager without manager role", func(t *testing.T) {
		suite.mockService.EXPECT().
			Create(suite.admin, gomock.Any()).
			Return(nil, apperrors.ErrManagerRoleRequired)

		recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/admin/teams", map[string]interface{}{"name": "x", "manager_id": uuid.New()})

		testutils.AssertErrorResponse(t, recorder, http.StatusBadRequest, "manager_id")
	})

	suite.T().Run("Invalid JSON", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/admin/teams", bytes.NewBufferString("invalid json"))
		req.Header.Set("Content-Type", "application/json")
		recorder := httptest.NewRecorder()
		suite.httpSuite.Router.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})
}

// TestForbiddenForNonAdmins checks that service authorization errors map to 403
func (suite *TeamHandlerTestSuite) TestForbiddenForNonAdmins() {
	manager := newUser(models.UserRoleManager)
	httpSuite := setupHTTPAs(manager)
	registerTeamRoutes(httpSuite, suite.handler)

	suite.mockService.EXPECT().
		Create(manager, gomock.Any()).
		Return(nil, apperrors.ErrAdminRequired)

	recorder := httpSuite.MakeRequest(http.MethodPost, "/api/admin/teams", map[string]interface{}{"name": "x"})

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusForbidden, "admin role required")
}

// TestUnauthenticated checks that a request without an actor never reaches the service
func (suite *TeamHandlerTestSuite) TestUnauthenticated() {
	httpSuite := setupHTTPAs(nil)
	registerTeamRoutes(httpSuite, suite.handler)

	recorder := httpSuite.MakeRequest(http.MethodGet, "/api/admin/teams", nil)

	assert.Equal(suite.T(), http.StatusUnauthorized, recorder.Code)
}

// TestGetTeam tests the GetTeam handler
func (suite *TeamHandlerTestSuite) TestGetTeam() {
	suite.T().Run("Success", func(t *testing.T) {
		id := uuid.New()
		suite.mockService.EXPECT().
			GetWithMembers(suite.admin, id).
			Return(&service.TeamResponse{ID: id, Name: "Core", Members: []service.UserSummary{{ID: uuid.New()}}}, nil)

		recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/admin/teams/"+id.String(), nil)

		var team service.TeamResponse
		testutils.AssertJSONResponse(t, recorder, http.StatusOK, &team)
		assert.Len(t, team.Members, 1)
	})

	suite.T().Run("Invalid ID", func(t *testing.T) {
		recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/admin/teams/not-a-uuid", nil)
		testutils.AssertErrorResponse(t, recorder, http.StatusBadRequest, "invalid team ID")
	})

	suite.T().Run("Not found", func(t *testing.T) {
		suite.mockService.EXPECT().
			GetWithMembers(suite.admin, gomock.Any()).
			Return(nil, apperrors.ErrTeamNotFound)

		recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/admin/teams/"+uuid.NewString(), nil)
		testutils.AssertErrorResponse(t, recorder, http.StatusNotFound, "team not found")
	})
}

// TestListTeams tests pagination parsing
func (suite *TeamHandlerTestSuite) TestListTeams() {
	suite.mockService.EXPECT().
		GetAll(suite.admin, 2, 20).
		Return(&service.TeamListResponse{Teams: []service.TeamResponse{}, Total: 21, Page: 2, PageSize: 20}, nil)

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/admin/teams?page=2&page_size=500", nil)

	var list service.TeamListResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &list)
	assert.Equal(suite.T(), int64(21), list.Total)
}

// TestListManagedTeams tests the manager team listing
func (suite *TeamHandlerTestSuite) TestListManagedTeams() {
	suite.mockService.EXPECT().
		GetManagedTeams(suite.admin).
		Return([]service.TeamResponse{{Name: "Core"}}, nil)

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/manager/teams", nil)

	var teams []service.TeamResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &teams)
	assert.Len(suite.T(), teams, 1)
}

// TestUpdateTeam tests the UpdateTeam handler
func (suite *TeamHandlerTestSuite) TestUpdateTeam() {
	id := uuid.New()
	name := "Renamed"
	suite.mockService.EXPECT().
		Update(suite.admin, id, &service.UpdateTeamRequest{Name: &name, RemoveManager: true}).
		Return(&service.TeamResponse{ID: id, Name: name, Slug: "renamed"}, nil)

	recorder := suite.httpSuite.MakeRequest(http.MethodPatch, "/api/admin/teams/"+id.String(), map[string]interface{}{
		"name":           name,
		"remove_manager": true,
	})

	var team service.TeamResponse
	testutils.AssertSuccessEnvelope(suite.T(), recorder, http.StatusOK, &team)
	assert.Equal(suite.T(), "renamed", team.Slug)
}

// TestDeleteTeam tests the DeleteTeam handler
func (suite *TeamHandlerTestSuite) TestDeleteTeam() {
	suite.T().Run("Success", func(t *testing.T) {
		id := uuid.New()
		suite.mockService.EXPECT().Delete(suite.admin, id).Return(nil)

		recorder := suite.httpSuite.MakeRequest(http.MethodDelete, "/api/admin/teams/"+id.String(), nil)
		testutils.AssertSuccessEnvelope(t, recorder, http.StatusOK, nil)
	})

	suite.T().Run("Team has members", func(t *testing.T) {
		suite.mockService.EXPECT().Delete(suite.admin, gomock.Any()).Return(apperrors.ErrTeamHasMembers)

		recorder := suite.httpSuite.MakeRequest(http.MethodDelete, "/api/admin/teams/"+uuid.NewString(), nil)
		testutils.AssertErrorResponse(t, recorder, http.StatusBadRequest, "team still has members")
	})

	suite.T().Run("Unexpected failure", func(t *testing.T) {
		suite.mockService.EXPECT().Delete(suite.admin, gomock.Any()).Return(errors.New("failed to delete team: connection reset"))

		recorder := suite.httpSuite.MakeRequest(http.MethodDelete, "/api/admin/teams/"+uuid.NewString(), nil)
		testutils.AssertErrorResponse(t, recorder, http.StatusInternalServerError, "connection reset")
	})
}

// TestTeamHandlerTestSuite runs the test suite
func TestTeamHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(TeamHandlerTestSuite))
}
