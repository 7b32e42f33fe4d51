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
)

// OneOnOneServiceTestSuite defines the test suite for OneOnOneService
type OneOnOneServiceTestSuite struct {
	suite.Suite
	ctrl              *gomock.Controller
	ctx               context.Context
	mockRepo          *mocks.MockOneOnOneRepositoryInterface
	mockTeamRepo      *mocks.MockTeamRepositoryInterface
	mockUserRepo      *mocks.MockUserRepositoryInterface
	mockNotifications *mocks.MockNotificationServiceInterface
	mockMetrics       *mocks.MockMetricsServiceInterface
	oneOnOneService   *service.OneOnOneService

	developer *models.User
	manager   *models.User
	admin     *models.User
}

func (suite *OneOnOneServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.ctx = context.Background()
	suite.mockRepo = mocks.NewMockOneOnOneRepositoryInterface(suite.ctrl)
	suite.mockTeamRepo = mocks.NewMockTeamRepositoryInterface(suite.ctrl)
	suite.mockUserRepo = mocks.NewMockUserRepositoryInterface(suite.ctrl)
	suite.mockNotifications = mocks.NewMockNotificationServiceInterface(suite.ctrl)
	suite.mockMetrics = mocks.NewMockMetricsServiceInterface(suite.ctrl)
	suite.oneOnOneService = service.NewOneOnOneService(
		suite.mockRepo, suite.mockTeamRepo, suite.mockUserRepo,
		suite.mockNotifications, suite.mockMetrics, service.NewValidator(),
	)

	suite.developer = newUser(models.UserRoleDeveloper)
	suite.manager = newUser(models.UserRoleManager)
	suite.admin = newUser(models.UserRoleAdmin)
}

func (suite *OneOnOneServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *OneOnOneServiceTestSuite) expectCreate(number int) {
	suite.mockRepo.EXPECT().CreateWithNextNumber(gomock.Any()).DoAndReturn(func(s *models.OneOnOne) error {
		s.ID = uuid.New()
		s.SessionNumber = number
		return nil
	})
}

func (suite *OneOnOneServiceTestSuite) TestCreate_DeveloperForbidden() {
	req := &service.CreateOneOnOneRequest{DeveloperID: uuid.New(), Month: "2024-03"}

	// no repository expectations: any write would fail the test
	session, err := suite.oneOnOneService.Create(suite.ctx, suite.developer, req)

	suite.Nil(session)
	suite.ErrorIs(err, apperrors.ErrManagerRequired)
	suite.True(apperrors.IsAuthorization(err))
}

func (suite *OneOnOneServiceTestSuite) TestCreate_InvalidMonth() {
	req := &service.CreateOneOnOneRequest{DeveloperID: suite.developer.ID, Month: "2024-13"}

	_, err := suite.oneOnOneService.Create(suite.ctx, suite.manager, req)

	suite.Error(err)
	suite.Contains(err.Error(), "validation failed")
}

func (suite *OneOnOneServiceTestSuite) TestCreate_DeveloperNotInManagedTeam() {
	req := &service.CreateOneOnOneRequest{DeveloperID: suite.developer.ID, Month: "2024-03"}
	suite.mockUserRepo.EXPECT().GetByID(suite.developer.ID).Return(suite.developer, nil)
	suite.mockTeamRepo.EXPECT().IsManagerOf(suite.manager.ID, suite.developer.ID).Return(false, nil)

	_, err := suite.oneOnOneService.Create(suite.ctx, suite.manager, req)

	suite.ErrorIs(err, apperrors.ErrDeveloperNotInTeam)
}

func (suite *OneOnOneServiceTestSuite) TestCreate_Success_NotifiesDeveloper() {
	req := &service.CreateOneOnOneRequest{DeveloperID: suite.developer.ID, Month: "2024-03", Title: "March"}
	suite.mockUserRepo.EXPECT().GetByID(suite.developer.ID).Return(suite.developer, nil)
	suite.mockTeamRepo.EXPECT().IsManagerOf(suite.manager.ID, suite.developer.ID).Return(true, nil)
	suite.expectCreate(2)
	suite.mockNotifications.EXPECT().Notify(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, n *models.Notification) error {
		suite.Equal(suite.developer.ID, n.UserID)
		suite.Equal(models.NotificationTypeOneOnOneCreated, n.Type)
		suite.NotNil(n.RelatedID)
		return nil
	})

	session, err := suite.oneOnOneService.Create(suite.ctx, suite.manager, req)

	suite.NoError(err)
	suite.Equal(2, session.SessionNumber)
	suite.Equal(models.OneOnOneStatusDraft, session.Status)
	suite.Equal(suite.manager.ID, session.ManagerID)
}

func (suite *OneOnOneServiceTestSuite) TestCreate_NotificationFailureIsNotReturned() {
	req := &service.CreateOneOnOneRequest{DeveloperID: suite.developer.ID, Month: "2024-03"}
	suite.mockUserRepo.EXPECT().GetByID(suite.developer.ID).Return(suite.developer, nil)
	suite.mockTeamRepo.EXPECT().IsManagerOf(suite.manager.ID, suite.developer.ID).Return(true, nil)
	suite.expectCreate(1)
	suite.mockNotifications.EXPECT().Notify(gomock.Any(), gomock.Any()).Return(errors.New("db down"))

	session, err := suite.oneOnOneService.Create(suite.ctx, suite.manager, req)

	suite.NoError(err)
	suite.NotNil(session)
}

func (suite *OneOnOneServiceTestSuite) TestCreate_SessionNumberExhausted() {
	req := &service.CreateOneOnOneRequest{DeveloperID: suite.developer.ID, Month: "2024-03"}
	suite.mockUserRepo.EXPECT().GetByID(suite.developer.ID).Return(suite.developer, nil)
	suite.mockTeamRepo.EXPECT().IsManagerOf(suite.manager.ID, suite.developer.ID).Return(true, nil)
	suite.mockRepo.EXPECT().CreateWithNextNumber(gomock.Any()).Return(repository.ErrSessionNumberExhausted)

	_, err := suite.oneOnOneService.Create(suite.ctx, suite.manager, req)

	suite.ErrorIs(err, apperrors.ErrSessionNumberRace)
	suite.True(apperrors.IsConflict(err))
}

func (suite *OneOnOneServiceTestSuite) TestCreate_AdminOnBehalfRequiresManagerRole() {
	other := newUser(models.UserRoleDeveloper)
	req := &service.CreateOneOnOneRequest{DeveloperID: suite.developer.ID, ManagerID: &other.ID, Month: "2024-03"}
	suite.mockUserRepo.EXPECT().GetByID(other.ID).Return(other, nil)

	_, err := suite.oneOnOneService.Create(suite.ctx, suite.admin, req)

	suite.ErrorIs(err, apperrors.ErrManagerRoleRequired)
}

func (suite *OneOnOneServiceTestSuite) TestCreate_ManagerCannotActForAnotherManager() {
	other := newUser(models.UserRoleManager)
	req := &service.CreateOneOnOneRequest{DeveloperID: suite.developer.ID, ManagerID: &other.ID, Month: "2024-03"}

	_, err := suite.oneOnOneService.Create(suite.ctx, suite.manager, req)

	suite.ErrorIs(err, apperrors.ErrAdminRequired)
}

func (suite *OneOnOneServiceTestSuite) TestBulkCreate_RequiresTargets() {
	_, err := suite.oneOnOneService.BulkCreate(suite.ctx, suite.manager, &service.BulkCreateRequest{Month: "2024-03"})

	suite.ErrorIs(err, apperrors.ErrDeveloperIDsRequired)
	suite.True(apperrors.IsValidation(err))
}

func (suite *OneOnOneServiceTestSuite) TestBulkCreate_SecondRunSkipsEveryone() {
	devA := newUser(models.UserRoleDeveloper)
	devB := newUser(models.UserRoleDeveloper)
	req := &service.BulkCreateRequest{Month: "2024-03", DeveloperIDs: []uuid.UUID{devA.ID, devB.ID, devA.ID}}

	created := map[uuid.UUID]bool{}
	suite.mockRepo.EXPECT().ExistsFor(gomock.Any(), suite.manager.ID, "2024-03").DoAndReturn(func(dev, _ uuid.UUID, _ string) (bool, error) {
		return created[dev], nil
	}).Times(4)
	suite.mockTeamRepo.EXPECT().IsManagerOf(suite.manager.ID, gomock.Any()).Return(true, nil).Times(2)
	suite.mockRepo.EXPECT().CreateWithNextNumber(gomock.Any()).DoAndReturn(func(s *models.OneOnOne) error {
		s.ID = uuid.New()
		s.SessionNumber = 1
		created[s.DeveloperID] = true
		return nil
	}).Times(2)
	suite.mockNotifications.EXPECT().Notify(gomock.Any(), gomock.Any()).Return(nil).Times(2)

	first, err := suite.oneOnOneService.BulkCreate(suite.ctx, suite.manager, req)
	suite.NoError(err)
	suite.Equal(2, first.Created)
	suite.Equal(0, first.Skipped)
	suite.Len(first.Sessions, 2)

	second, err := suite.oneOnOneService.BulkCreate(suite.ctx, suite.manager, req)
	suite.NoError(err)
	suite.Equal(0, second.Created)
	suite.Equal(2, second.Skipped)
	suite.Equal(0, second.Failed)
	suite.Empty(second.Sessions)
}

func (suite *OneOnOneServiceTestSuite) TestBulkCreate_PerDeveloperFailuresDoNotAbort() {
	inTeam := newUser(models.UserRoleDeveloper)
	stranger := newUser(models.UserRoleDeveloper)
	broken := newUser(models.UserRoleDeveloper)
	req := &service.BulkCreateRequest{Month: "2024-03", DeveloperIDs: []uuid.UUID{stranger.ID, broken.ID, inTeam.ID}}

	suite.mockRepo.EXPECT().ExistsFor(stranger.ID, suite.manager.ID, "2024-03").Return(false, nil)
	suite.mockRepo.EXPECT().ExistsFor(broken.ID, suite.manager.ID, "2024-03").Return(false, errors.New("timeout"))
	suite.mockRepo.EXPECT().ExistsFor(inTeam.ID, suite.manager.ID, "2024-03").Return(false, nil)
	suite.mockTeamRepo.EXPECT().IsManagerOf(suite.manager.ID, stranger.ID).Return(false, nil)
	suite.mockTeamRepo.EXPECT().IsManagerOf(suite.manager.ID, inTeam.ID).Return(true, nil)
	suite.expectCreate(1)
	suite.mockNotifications.EXPECT().Notify(gomock.Any(), gomock.Any()).Return(nil)

	result, err := suite.oneOnOneService.BulkCreate(suite.ctx, suite.manager, req)

	suite.NoError(err)
	suite.Equal(1, result.Created)
	suite.Equal(2, result.Failed)
	suite.Len(result.Errors, 2)
}

func (suite *OneOnOneServiceTestSuite) TestBulkCreate_TeamOfAnotherManager() {
	otherManager := uuid.New()
	team := &models.Team{BaseModel: models.BaseModel{ID: uuid.New()}, Name: "Platform", ManagerID: &otherManager}
	suite.mockTeamRepo.EXPECT().GetByID(team.ID).Return(team, nil)

	_, err := suite.oneOnOneService.BulkCreate(suite.ctx, suite.manager, &service.BulkCreateRequest{Month: "2024-03", TeamID: &team.ID})

	suite.ErrorIs(err, apperrors.ErrNotTeamManager)
}

func (suite *OneOnOneServiceTestSuite) TestBulkCreate_AdminUsesTeamManager() {
	managerID := suite.manager.ID
	team := &models.Team{BaseModel: models.BaseModel{ID: uuid.New()}, Name: "Platform", ManagerID: &managerID}
	suite.mockTeamRepo.EXPECT().GetByID(team.ID).Return(team, nil)
	suite.mockTeamRepo.EXPECT().GetDeveloperIDs(team.ID).Return([]uuid.UUID{suite.developer.ID}, nil)
	suite.mockRepo.EXPECT().ExistsFor(suite.developer.ID, managerID, "2024-03").Return(false, nil)
	suite.mockRepo.EXPECT().CreateWithNextNumber(gomock.Any()).DoAndReturn(func(s *models.OneOnOne) error {
		suite.Equal(managerID, s.ManagerID)
		return nil
	})
	suite.mockNotifications.EXPECT().Notify(gomock.Any(), gomock.Any()).Return(nil)

	result, err := suite.oneOnOneService.BulkCreate(suite.ctx, suite.admin, &service.BulkCreateRequest{Month: "2024-03", TeamID: &team.ID})

	suite.NoError(err)
	suite.Equal(1, result.Created)
}

func (suite *OneOnOneServiceTestSuite) TestList_ScopedByRole() {
	suite.mockRepo.EXPECT().List(gomock.Any(), service.DefaultPageSize, 0).DoAndReturn(
		func(f repository.OneOnOneFilter, _, _ int) ([]models.OneOnOne, int64, error) {
			suite.Require().NotNil(f.DeveloperID)
			suite.Equal(suite.developer.ID, *f.DeveloperID)
			suite.Nil(f.ManagerID)
			return nil, 0, nil
		})
	_, err := suite.oneOnOneService.List(suite.developer, &service.ListOneOnOnesRequest{})
	suite.NoError(err)

	suite.mockRepo.EXPECT().List(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(f repository.OneOnOneFilter, _, _ int) ([]models.OneOnOne, int64, error) {
			suite.Require().NotNil(f.ManagerID)
			suite.Equal(suite.manager.ID, *f.ManagerID)
			return nil, 0, nil
		})
	_, err = suite.oneOnOneService.List(suite.manager, &service.ListOneOnOnesRequest{})
	suite.NoError(err)

	suite.mockRepo.EXPECT().List(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(f repository.OneOnOneFilter, _, _ int) ([]models.OneOnOne, int64, error) {
			suite.Nil(f.ManagerID)
			suite.Nil(f.DeveloperID)
			return nil, 0, nil
		})
	_, err = suite.oneOnOneService.List(suite.admin, &service.ListOneOnOnesRequest{})
	suite.NoError(err)
}

func (suite *OneOnOneServiceTestSuite) TestList_InvalidFilters() {
	_, err := suite.oneOnOneService.List(suite.manager, &service.ListOneOnOnesRequest{Month: "March"})
	suite.ErrorIs(err, apperrors.ErrInvalidMonth)

	_, err = suite.oneOnOneService.List(suite.manager, &service.ListOneOnOnesRequest{Status: "archived"})
	suite.ErrorIs(err, apperrors.ErrInvalidStatus)
}

func (suite *OneOnOneServiceTestSuite) TestGet_Outsider() {
	session := newSession(suite.developer, suite.manager, models.OneOnOneStatusDraft)
	suite.mockRepo.EXPECT().GetDetail(session.ID).Return(session, nil)

	_, err := suite.oneOnOneService.Get(newUser(models.UserRoleManager), session.ID)
	suite.ErrorIs(err, apperrors.ErrNotParticipant)
}

func (suite *OneOnOneServiceTestSuite) TestDelete_OnlyDraft() {
	session := newSession(suite.developer, suite.manager, models.OneOnOneStatusSubmitted)
	suite.mockRepo.EXPECT().GetByID(session.ID).Return(session, nil)

	err := suite.oneOnOneService.Delete(suite.manager, session.ID)
	suite.ErrorIs(err, apperrors.ErrOnlyDraftDeletable)
}

func (suite *OneOnOneServiceTestSuite) TestDelete_Draft() {
	session := newSession(suite.developer, suite.manager, models.OneOnOneStatusDraft)
	suite.mockRepo.EXPECT().GetByID(session.ID).Return(session, nil)
	suite.mockRepo.EXPECT().Delete(session.ID).Return(nil)

	suite.NoError(suite.oneOnOneService.Delete(suite.manager, session.ID))
}

func (suite *OneOnOneServiceTestSuite) TestTransition_DeveloperSubmits() {
	session := newSession(suite.developer, suite.manager, models.OneOnOneStatusDraft)
	submitted := *session
	submitted.Status = models.OneOnOneStatusSubmitted

	gomock.InOrder(
		suite.mockRepo.EXPECT().GetByID(session.ID).Return(session, nil),
		suite.mockRepo.EXPECT().TransitionStatus(session.ID, models.OneOnOneStatusDraft, models.OneOnOneStatusSubmitted, gomock.Any()).Return(nil),
		suite.mockRepo.EXPECT().GetByID(session.ID).Return(&submitted, nil),
	)
	suite.mockNotifications.EXPECT().Notify(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, n *models.Notification) error {
		suite.Equal(suite.manager.ID, n.UserID)
		suite.Equal(models.NotificationTypeOneOnOneSubmitted, n.Type)
		return nil
	})

	updated, err := suite.oneOnOneService.TransitionStatus(suite.ctx, suite.developer, session.ID,
		&service.UpdateStatusRequest{Status: models.OneOnOneStatusSubmitted})

	suite.NoError(err)
	suite.Equal(models.OneOnOneStatusSubmitted, updated.Status)
}

func (suite *OneOnOneServiceTestSuite) TestTransition_ManagerReviewsAgain() {
	session := newSession(suite.developer, suite.manager, models.OneOnOneStatusReviewed)

	gomock.InOrder(
		suite.mockRepo.EXPECT().GetByID(session.ID).Return(session, nil),
		suite.mockRepo.EXPECT().TransitionStatus(session.ID, models.OneOnOneStatusReviewed, models.OneOnOneStatusReviewed, gomock.Any()).Return(nil),
		suite.mockRepo.EXPECT().GetByID(session.ID).Return(session, nil),
	)
	suite.mockNotifications.EXPECT().Notify(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, n *models.Notification) error {
		suite.Equal(suite.developer.ID, n.UserID)
		suite.Equal(models.NotificationTypeOneOnOneReviewed, n.Type)
		return nil
	})

	updated, err := suite.oneOnOneService.TransitionStatus(suite.ctx, suite.manager, session.ID,
		&service.UpdateStatusRequest{Status: models.OneOnOneStatusReviewed})

	suite.NoError(err)
	suite.Equal(models.OneOnOneStatusReviewed, updated.Status)
}

func (suite *OneOnOneServiceTestSuite) TestTransition_ForbiddenMakesNoWrite() {
	session := newSession(suite.developer, suite.manager, models.OneOnOneStatusSubmitted)
	suite.mockRepo.EXPECT().GetByID(session.ID).Return(session, nil)

	_, err := suite.oneOnOneService.TransitionStatus(suite.ctx, suite.developer, session.ID,
		&service.UpdateStatusRequest{Status: models.OneOnOneStatusCompleted})

	suite.ErrorIs(err, apperrors.ErrTransitionForbidden)
}

func (suite *OneOnOneServiceTestSuite) TestTransition_CompletedIsTerminal() {
	session := newSession(suite.developer, suite.manager, models.OneOnOneStatusCompleted)
	suite.mockRepo.EXPECT().GetByID(session.ID).Return(session, nil)

	_, err := suite.oneOnOneService.TransitionStatus(suite.ctx, suite.manager, session.ID,
		&service.UpdateStatusRequest{Status: models.OneOnOneStatusReviewed})

	suite.ErrorIs(err, apperrors.ErrInvalidTransition)
}

func (suite *OneOnOneServiceTestSuite) TestTransition_StaleWriteIsConflict() {
	session := newSession(suite.developer, suite.manager, models.OneOnOneStatusSubmitted)
	suite.mockRepo.EXPECT().GetByID(session.ID).Return(session, nil)
	suite.mockRepo.EXPECT().TransitionStatus(session.ID, models.OneOnOneStatusSubmitted, models.OneOnOneStatusReviewed, gomock.Any()).
		Return(repository.ErrStaleWrite)

	_, err := suite.oneOnOneService.TransitionStatus(suite.ctx, suite.manager, session.ID,
		&service.UpdateStatusRequest{Status: models.OneOnOneStatusReviewed})

	suite.ErrorIs(err, apperrors.ErrStaleStatus)
	suite.True(apperrors.IsConflict(err))
}

func (suite *OneOnOneServiceTestSuite) TestTransition_CompleteRunsMetricsBestEffort() {
	session := newSession(suite.developer, suite.manager, models.OneOnOneStatusReviewed)
	completed := *session
	completed.Status = models.OneOnOneStatusCompleted

	gomock.InOrder(
		suite.mockRepo.EXPECT().GetByID(session.ID).Return(session, nil),
		suite.mockRepo.EXPECT().TransitionStatus(session.ID, models.OneOnOneStatusReviewed, models.OneOnOneStatusCompleted, gomock.Any()).Return(nil),
		suite.mockRepo.EXPECT().GetByID(session.ID).Return(&completed, nil),
	)
	suite.mockMetrics.EXPECT().RunJob(session.ID).Return(errors.New("metrics exploded"))
	suite.mockNotifications.EXPECT().Notify(gomock.Any(), gomock.Any()).Return(nil)

	updated, err := suite.oneOnOneService.TransitionStatus(suite.ctx, suite.manager, session.ID,
		&service.UpdateStatusRequest{Status: models.OneOnOneStatusCompleted})

	suite.NoError(err)
	suite.Equal(models.OneOnOneStatusCompleted, updated.Status)
}

func (suite *OneOnOneServiceTestSuite) TestSendReminders() {
	drafts := []models.OneOnOne{
		*newSession(newUser(models.UserRoleDeveloper), suite.manager, models.OneOnOneStatusDraft),
		*newSession(newUser(models.UserRoleDeveloper), suite.manager, models.OneOnOneStatusDraft),
	}
	suite.mockRepo.EXPECT().List(gomock.Any(), -1, 0).DoAndReturn(
		func(f repository.OneOnOneFilter, _, _ int) ([]models.OneOnOne, int64, error) {
			suite.Equal(models.OneOnOneStatusDraft, f.Status)
			suite.Equal("2024-03", f.Month)
			return drafts, int64(len(drafts)), nil
		})
	gomock.InOrder(
		suite.mockNotifications.EXPECT().Notify(gomock.Any(), gomock.Any()).Return(nil),
		suite.mockNotifications.EXPECT().Notify(gomock.Any(), gomock.Any()).Return(errors.New("boom")),
	)

	summary, err := suite.oneOnOneService.SendReminders(suite.ctx, suite.manager, &service.ReminderRequest{Month: "2024-03"})

	suite.NoError(err)
	suite.Equal(1, summary.Created)
	suite.Equal(1, summary.Failed)
}

func (suite *OneOnOneServiceTestSuite) TestSendReminders_DeveloperForbidden() {
	_, err := suite.oneOnOneService.SendReminders(suite.ctx, suite.developer, &service.ReminderRequest{Month: "2024-03"})
	suite.ErrorIs(err, apperrors.ErrManagerRequired)
}

func TestOneOnOneServiceTestSuite(t *testing.T) {
	suite.Run(t, new(OneOnOneServiceTestSuite))
}
