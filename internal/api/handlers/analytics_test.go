package handlers_test

import (
	"errors"
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

// AnalyticsHandlerTestSuite defines the test suite for AnalyticsHandler
type AnalyticsHandlerTestSuite struct {
	suite.Suite
	ctrl          *gomock.Controller
	mockAnalytics *mocks.MockAnalyticsServiceInterface
	mockMetrics   *mocks.MockMetricsServiceInterface
	manager       *models.User
	httpSuite     *testutils.HTTPTestSuite
}

// SetupTest sets up the test suite
func (suite *AnalyticsHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockAnalytics = mocks.NewMockAnalyticsServiceInterface(suite.ctrl)
	suite.mockMetrics = mocks.NewMockMetricsServiceInterface(suite.ctrl)
	handler := handlers.NewAnalyticsHandler(suite.mockAnalytics, suite.mockMetrics)

	suite.manager = newUser(models.UserRoleManager)
	suite.httpSuite = setupHTTPAs(suite.manager)
	suite.httpSuite.Router.GET("/api/analytics/developers/:id/metrics", handler.DeveloperTrend)
	suite.httpSuite.Router.GET("/api/analytics/teams/:id/summary", handler.TeamSummary)
	suite.httpSuite.Router.GET("/api/dashboard", handler.Dashboard)
	suite.httpSuite.Router.GET("/api/one-on-ones/:id/metrics", handler.SessionMetrics)
	suite.httpSuite.Router.POST("/api/admin/metrics/retry", handler.RetryMetricsJobs)
}

// TearDownTest cleans up after each test
func (suite *AnalyticsHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func floatPtr(f float64) *float64 { return &f }

func (suite *AnalyticsHandlerTestSuite) TestDeveloperTrend() {
	suite.T().Run("Range", func(t *testing.T) {
		developerID := uuid.New()
		suite.mockAnalytics.EXPECT().
			DeveloperTrend(suite.manager, developerID, "2024-01", "2024-06").
			Return(&service.DeveloperTrendResponse{DeveloperID: developerID, Points: []service.TrendPoint{{Month: "2024-03", RatingAlignment: floatPtr(1.5)}}}, nil)

		recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/analytics/developers/"+developerID.String()+"/metrics?from=2024-01&to=2024-06", nil)

		var trend service.DeveloperTrendResponse
		testutils.AssertJSONResponse(t, recorder, http.StatusOK, &trend)
		assert.Equal(t, 1.5, *trend.Points[0].RatingAlignment)
	})

	suite.T().Run("Not my developer", func(t *testing.T) {
		suite.mockAnalytics.EXPECT().
			DeveloperTrend(suite.manager, gomock.Any(), "", "").
			Return(nil, apperrors.NewAuthorizationError("you cannot view this developer's metrics"))

		recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/analytics/developers/"+uuid.NewString()+"/metrics", nil)
		testutils.AssertErrorResponse(t, recorder, http.StatusForbidden, "cannot view")
	})
}

func (suite *AnalyticsHandlerTestSuite) TestTeamSummary() {
	suite.T().Run("Summary", func(t *testing.T) {
		teamID := uuid.New()
		suite.mockAnalytics.EXPECT().
			TeamSummary(suite.manager, teamID, "2024-05").
			Return(&service.TeamSummaryResponse{TeamID: teamID, Month: "2024-05", DeveloperCount: 3, CompletedSessions: 2, AvgScore: floatPtr(3.5)}, nil)

		recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/analytics/teams/"+teamID.String()+"/summary?month=2024-05", nil)

		var summary service.TeamSummaryResponse
		testutils.AssertJSONResponse(t, recorder, http.StatusOK, &summary)
		assert.Equal(t, 2, summary.CompletedSessions)
	})

	suite.T().Run("Bad month", func(t *testing.T) {
		suite.mockAnalytics.EXPECT().
			TeamSummary(suite.manager, gomock.Any(), "May").
			Return(nil, apperrors.ErrInvalidMonth)

		recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/analytics/teams/"+uuid.NewString()+"/summary?month=May", nil)
		testutils.AssertErrorResponse(t, recorder, http.StatusBadRequest, "YYYY-MM")
	})
}

func (suite *AnalyticsHandlerTestSuite) TestDashboard() {
	suite.T().Run("Manager sections", func(t *testing.T) {
		teams := 2
		suite.mockAnalytics.EXPECT().
			Dashboard(gomock.Any(), suite.manager).
			Return(&service.DashboardResponse{Role: models.UserRoleManager, Month: "2024-05", ManagedTeams: &teams}, nil)

		recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/dashboard", nil)

		var dashboard service.DashboardResponse
		testutils.AssertJSONResponse(t, recorder, http.StatusOK, &dashboard)
		assert.Equal(t, 2, *dashboard.ManagedTeams)
	})

	suite.T().Run("Counter failure", func(t *testing.T) {
		suite.mockAnalytics.EXPECT().
			Dashboard(gomock.Any(), suite.manager).
			Return(nil, errors.New("failed to count sessions: timeout"))

		recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/dashboard", nil)
		testutils.AssertErrorResponse(t, recorder, http.StatusInternalServerError, "failed to count sessions")
	})
}

func (suite *AnalyticsHandlerTestSuite) TestSessionMetrics() {
	suite.T().Run("Snapshot", func(t *testing.T) {
		sessionID := uuid.New()
		suite.mockMetrics.EXPECT().
			GetForSession(suite.manager, sessionID).
			Return(&models.MetricsSnapshot{OneOnOneID: sessionID, Month: "2024-05", AverageScore: floatPtr(4)}, nil)

		recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/one-on-ones/"+sessionID.String()+"/metrics", nil)
		assert.Equal(t, http.StatusOK, recorder.Code)
	})

	suite.T().Run("Not computed yet", func(t *testing.T) {
		suite.mockMetrics.EXPECT().GetForSession(suite.manager, gomock.Any()).Return(nil, apperrors.ErrMetricsNotFound)

		recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/one-on-ones/"+uuid.NewString()+"/metrics", nil)
		testutils.AssertErrorResponse(t, recorder, http.StatusNotFound, "metrics snapshot not found")
	})
}

func (suite *AnalyticsHandlerTestSuite) TestRetryMetricsJobs() {
	suite.T().Run("Admin", func(t *testing.T) {
		suite.mockMetrics.EXPECT().
			RetryPendingAsAdmin(gomock.Any(), suite.manager).
			Return(&service.JobRunSummary{Processed: 3, Succeeded: 2, Failed: 1, Errors: []string{"boom"}}, nil)

		recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/admin/metrics/retry", nil)

		var summary service.JobRunSummary
		testutils.AssertSuccessEnvelope(t, recorder, http.StatusOK, &summary)
		assert.Equal(t, 1, summary.Failed)
	})

	suite.T().Run("Forbidden", func(t *testing.T) {
		suite.mockMetrics.EXPECT().
			RetryPendingAsAdmin(gomock.Any(), suite.manager).
			Return(nil, apperrors.ErrAdminRequired)

		recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/admin/metrics/retry", nil)
		testutils.AssertErrorResponse(t, recorder, http.StatusForbidden, "admin role required")
	})
}

// TestAnalyticsHandlerTestSuite runs the test suite
func TestAnalyticsHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(AnalyticsHandlerTestSuite))
}
