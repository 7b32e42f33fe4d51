package service_test

import (
	"context"
	"errors"
	"testing"

	"one-on-one-backend/internal/database/models"
	apperrors "one-on-one-backend/internal/errors"
	"one-on-one-backend/internal/mocks"
	"one-on-one-backend/internal/repository"
	"one-on-one-backend/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/datatypes"
)

type AnalyticsServiceTestSuite struct {
	suite.Suite
	ctrl                 *gomock.Controller
	mockMetricsRepo      *mocks.MockMetricsRepositoryInterface
	mockSessionRepo      *mocks.MockOneOnOneRepositoryInterface
	mockTeamRepo         *mocks.MockTeamRepositoryInterface
	mockUserRepo         *mocks.MockUserRepositoryInterface
	mockActionItemRepo   *mocks.MockActionItemRepositoryInterface
	mockNotificationRepo *mocks.MockNotificationRepositoryInterface
	analyticsService     *service.AnalyticsService
}

func (suite *AnalyticsServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockMetricsRepo = mocks.NewMockMetricsRepositoryInterface(suite.ctrl)
	suite.mockSessionRepo = mocks.NewMockOneOnOneRepositoryInterface(suite.ctrl)
	suite.mockTeamRepo = mocks.NewMockTeamRepositoryInterface(suite.ctrl)
	suite.mockUserRepo = mocks.NewMockUserRepositoryInterface(suite.ctrl)
	suite.mockActionItemRepo = mocks.NewMockActionItemRepositoryInterface(suite.ctrl)
	suite.mockNotificationRepo = mocks.NewMockNotificationRepositoryInterface(suite.ctrl)
	suite.analyticsService = service.NewAnalyticsService(
		suite.mockMetricsRepo,
		suite.mockSessionRepo,
		suite.mockTeamRepo,
		suite.mockUserRepo,
		suite.mockActionItemRepo,
		suite.mockNotificationRepo,
	)
}

func (suite *AnalyticsServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func snapshot(developerID uuid.UUID, month string, score *float64, b models.MetricsBreakdown) models.MetricsSnapshot {
	return models.MetricsSnapshot{
		OneOnOneID:   uuid.New(),
		DeveloperID:  developerID,
		Month:        month,
		AverageScore: score,
		Breakdown:    datatypes.NewJSONType(b),
	}
}

func (suite *AnalyticsServiceTestSuite) TestDeveloperTrend_InvalidRange() {
	dev := newUser(models.UserRoleDeveloper)

	_, err := suite.analyticsService.DeveloperTrend(dev, dev.ID, "2024-13", "")
	suite.ErrorIs(err, apperrors.ErrInvalidMonth)

	_, err = suite.analyticsService.DeveloperTrend(dev, dev.ID, "2024-06", "2024-01")
	suite.True(apperrors.IsValidation(err))
}

func (suite *AnalyticsServiceTestSuite) TestDeveloperTrend_Self() {
	dev := newUser(models.UserRoleDeveloper)
	suite.mockUserRepo.EXPECT().GetByID(dev.ID).Return(dev, nil)
	suite.mockMetricsRepo.EXPECT().ListForDeveloper(dev.ID, "2024-01", "2024-03").Return([]models.MetricsSnapshot{
		snapshot(dev.ID, "2024-01", floatPtr(3.5), models.MetricsBreakdown{RatingAlignment: floatPtr(0.5)}),
		snapshot(dev.ID, "2024-03", floatPtr(4), models.MetricsBreakdown{DeveloperAvgRating: floatPtr(4)}),
	}, nil)

	resp, err := suite.analyticsService.DeveloperTrend(dev, dev.ID, "2024-01", "2024-03")

	suite.NoError(err)
	suite.Require().Len(resp.Points, 2)
	suite.Equal("2024-01", resp.Points[0].Month)
	suite.InDelta(0.5, *resp.Points[0].RatingAlignment, 1e-9)
	suite.InDelta(4.0, *resp.Points[1].DeveloperAvgRating, 1e-9)
}

func (suite *AnalyticsServiceTestSuite) TestDeveloperTrend_Access() {
	dev := newUser(models.UserRoleDeveloper)

	suite.Run("other developer", func() {
		suite.mockUserRepo.EXPECT().GetByID(dev.ID).Return(dev, nil)
		_, err := suite.analyticsService.DeveloperTrend(newUser(models.UserRoleDeveloper), dev.ID, "", "")
		suite.True(apperrors.IsAuthorization(err))
	})

	suite.Run("manager of another team", func() {
		mgr := newUser(models.UserRoleManager)
		suite.mockUserRepo.EXPECT().GetByID(dev.ID).Return(dev, nil)
		suite.mockTeamRepo.EXPECT().IsManagerOf(mgr.ID, dev.ID).Return(false, nil)
		_, err := suite.analyticsService.DeveloperTrend(mgr, dev.ID, "", "")
		suite.True(apperrors.IsAuthorization(err))
	})

	suite.Run("team manager", func() {
		mgr := newUser(models.UserRoleManager)
		suite.mockUserRepo.EXPECT().GetByID(dev.ID).Return(dev, nil)
		suite.mockTeamRepo.EXPECT().IsManagerOf(mgr.ID, dev.ID).Return(true, nil)
		suite.mockMetricsRepo.EXPECT().ListForDeveloper(dev.ID, "", "").Return(nil, nil)
		resp, err := suite.analyticsService.DeveloperTrend(mgr, dev.ID, "", "")
		suite.NoError(err)
		suite.Empty(resp.Points)
	})
}

func (suite *AnalyticsServiceTestSuite) TestTeamSummary_Averages() {
	mgr := newUser(models.UserRoleManager)
	team := &models.Team{BaseModel: models.BaseModel{ID: uuid.New()}, ManagerID: &mgr.ID}
	devA, devB := uuid.New(), uuid.New()

	suite.mockTeamRepo.EXPECT().GetByID(team.ID).Return(team, nil)
	suite.mockTeamRepo.EXPECT().GetDeveloperIDs(team.ID).Return([]uuid.UUID{devA, devB}, nil)
	suite.mockMetricsRepo.EXPECT().ListForDevelopersInMonth([]uuid.UUID{devA, devB}, &mgr.ID, "2024-03").Return([]models.MetricsSnapshot{
		snapshot(devA, "2024-03", floatPtr(4), models.MetricsBreakdown{DeveloperAvgRating: floatPtr(4), RatingAlignment: floatPtr(1)}),
		snapshot(devB, "2024-03", floatPtr(3), models.MetricsBreakdown{DeveloperAvgRating: floatPtr(2)}),
	}, nil)

	summary, err := suite.analyticsService.TeamSummary(mgr, team.ID, "2024-03")

	suite.NoError(err)
	suite.Equal(2, summary.DeveloperCount)
	suite.Equal(2, summary.CompletedSessions)
	suite.InDelta(3.5, *summary.AvgScore, 1e-9)
	suite.InDelta(3.0, *summary.AvgDeveloperRating, 1e-9)
	suite.InDelta(1.0, *summary.AvgRatingAlignment, 1e-9)
	suite.Nil(summary.AvgManagerRating)
}

func (suite *AnalyticsServiceTestSuite) TestTeamSummary_AdminSeesTeamManagerSessionsOnly() {
	admin := newUser(models.UserRoleAdmin)
	lead := uuid.New()
	team := &models.Team{BaseModel: models.BaseModel{ID: uuid.New()}, ManagerID: &lead}
	dev := uuid.New()

	suite.mockTeamRepo.EXPECT().GetByID(team.ID).Return(team, nil)
	suite.mockTeamRepo.EXPECT().GetDeveloperIDs(team.ID).Return([]uuid.UUID{dev}, nil)
	suite.mockMetricsRepo.EXPECT().ListForDevelopersInMonth([]uuid.UUID{dev}, &lead, "2024-03").Return([]models.MetricsSnapshot{
		snapshot(dev, "2024-03", floatPtr(5), models.MetricsBreakdown{}),
	}, nil)

	summary, err := suite.analyticsService.TeamSummary(admin, team.ID, "2024-03")

	suite.NoError(err)
	suite.Equal(1, summary.CompletedSessions)
	suite.InDelta(5.0, *summary.AvgScore, 1e-9)
}

func (suite *AnalyticsServiceTestSuite) TestTeamSummary_NotTeamManager() {
	team := &models.Team{BaseModel: models.BaseModel{ID: uuid.New()}}
	suite.mockTeamRepo.EXPECT().GetByID(team.ID).Return(team, nil)

	_, err := suite.analyticsService.TeamSummary(newUser(models.UserRoleManager), team.ID, "2024-03")

	suite.ErrorIs(err, apperrors.ErrNotTeamManager)
}

func (suite *AnalyticsServiceTestSuite) TestTeamSummary_EmptyTeam() {
	admin := newUser(models.UserRoleAdmin)
	team := &models.Team{BaseModel: models.BaseModel{ID: uuid.New()}}
	suite.mockTeamRepo.EXPECT().GetByID(team.ID).Return(team, nil)
	suite.mockTeamRepo.EXPECT().GetDeveloperIDs(team.ID).Return(nil, nil)

	summary, err := suite.analyticsService.TeamSummary(admin, team.ID, "2024-03")

	suite.NoError(err)
	suite.Zero(summary.CompletedSessions)
	suite.Nil(summary.AvgScore)
}

func (suite *AnalyticsServiceTestSuite) TestDashboard_Developer() {
	dev := newUser(models.UserRoleDeveloper)
	suite.mockSessionRepo.EXPECT().CountByStatus(repository.OneOnOneFilter{DeveloperID: &dev.ID}).
		Return(map[models.OneOnOneStatus]int64{models.OneOnOneStatusDraft: 1}, nil)
	suite.mockActionItemRepo.EXPECT().CountOpenAssignedTo(dev.ID).Return(int64(2), nil)
	suite.mockNotificationRepo.EXPECT().CountUnread(dev.ID).Return(int64(5), nil)

	resp, err := suite.analyticsService.Dashboard(context.Background(), dev)

	suite.NoError(err)
	suite.Equal(int64(1), resp.MySessions[models.OneOnOneStatusDraft])
	suite.Equal(int64(2), resp.OpenActionItems)
	suite.Equal(int64(5), resp.UnreadNotifications)
	suite.Nil(resp.ManagedSessions)
	suite.Nil(resp.UsersByRole)
}

func (suite *AnalyticsServiceTestSuite) TestDashboard_AdminSections() {
	admin := newUser(models.UserRoleAdmin)
	suite.mockSessionRepo.EXPECT().CountByStatus(gomock.Any()).Return(map[models.OneOnOneStatus]int64{}, nil).Times(3)
	suite.mockActionItemRepo.EXPECT().CountOpenAssignedTo(admin.ID).Return(int64(0), nil)
	suite.mockNotificationRepo.EXPECT().CountUnread(admin.ID).Return(int64(0), nil)
	suite.mockTeamRepo.EXPECT().GetByManagerID(admin.ID).Return([]models.Team{{}, {}}, nil)
	suite.mockActionItemRepo.EXPECT().CountOverdueForManager(admin.ID, gomock.Any()).Return(int64(4), nil)
	suite.mockUserRepo.EXPECT().CountByRole().Return(map[models.UserRole]int64{models.UserRoleDeveloper: 10}, nil)

	resp, err := suite.analyticsService.Dashboard(context.Background(), admin)

	suite.NoError(err)
	suite.Equal(2, *resp.ManagedTeams)
	suite.Equal(int64(4), *resp.OverdueActionItems)
	suite.Equal(int64(10), resp.UsersByRole[models.UserRoleDeveloper])
	suite.NotNil(resp.AllSessions)
}

func (suite *AnalyticsServiceTestSuite) TestDashboard_PropagatesErrors() {
	dev := newUser(models.UserRoleDeveloper)
	suite.mockSessionRepo.EXPECT().CountByStatus(gomock.Any()).Return(nil, errors.New("db down"))
	suite.mockActionItemRepo.EXPECT().CountOpenAssignedTo(dev.ID).Return(int64(0), nil).AnyTimes()
	suite.mockNotificationRepo.EXPECT().CountUnread(dev.ID).Return(int64(0), nil).AnyTimes()

	_, err := suite.analyticsService.Dashboard(context.Background(), dev)

	suite.Error(err)
	suite.Contains(err.Error(), "db down")
}

func TestAnalyticsServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AnalyticsServiceTestSuite))
}
