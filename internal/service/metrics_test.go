package service_test

import (
	"context"
	"errors"
	"testing"

	"one-on-one-backend/internal/database/models"
	apperrors "one-on-one-backend/internal/errors"
	"one-on-one-backend/internal/mocks"
	"one-on-one-backend/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

func rated(questionID uuid.UUID, side models.Participant, rating int) models.Answer {
	return models.Answer{QuestionID: questionID, AnswerType: side, Rating: intPtr(rating)}
}

func TestComputeSessionMetrics_Alignment(t *testing.T) {
	q1, q2 := uuid.New(), uuid.New()
	answers := []models.Answer{
		rated(q1, models.ParticipantDeveloper, 4),
		rated(q2, models.ParticipantDeveloper, 5),
		rated(q1, models.ParticipantManager, 3),
		rated(q2, models.ParticipantManager, 3),
	}

	m := service.ComputeSessionMetrics(answers)
	b := m.Breakdown

	require.NotNil(t, b.DeveloperAvgRating)
	require.NotNil(t, b.ManagerAvgRating)
	require.NotNil(t, b.RatingAlignment)
	require.NotNil(t, m.AverageScore)
	assert.InDelta(t, 4.5, *b.DeveloperAvgRating, 1e-9)
	assert.InDelta(t, 3.0, *b.ManagerAvgRating, 1e-9)
	assert.InDelta(t, 1.5, *b.RatingAlignment, 1e-9)
	assert.InDelta(t, 3.75, *m.AverageScore, 1e-9)
	assert.Equal(t, 2, b.TotalQuestions)
	assert.Equal(t, 2, b.RatingQuestions)
	assert.Equal(t, 2, b.DeveloperRatingCount)
	assert.Equal(t, 2, b.ManagerRatingCount)
}

func TestComputeSessionMetrics_OneSideMissing(t *testing.T) {
	q1, q2 := uuid.New(), uuid.New()
	answers := []models.Answer{
		rated(q1, models.ParticipantDeveloper, 4),
		{QuestionID: q2, AnswerType: models.ParticipantManager, TextAnswer: strPtr("great quarter")},
	}

	m := service.ComputeSessionMetrics(answers)

	assert.Nil(t, m.Breakdown.ManagerAvgRating)
	assert.Nil(t, m.Breakdown.RatingAlignment)
	require.NotNil(t, m.AverageScore)
	assert.InDelta(t, 4.0, *m.AverageScore, 1e-9)
	assert.Equal(t, 2, m.Breakdown.TotalQuestions)
	assert.Equal(t, 1, m.Breakdown.RatingQuestions)
}

func TestComputeSessionMetrics_NoRatings(t *testing.T) {
	m := service.ComputeSessionMetrics(nil)
	assert.Nil(t, m.AverageScore)
	assert.Nil(t, m.Breakdown.DeveloperAvgRating)
	assert.Nil(t, m.Breakdown.RatingAlignment)
	assert.Zero(t, m.Breakdown.TotalQuestions)
}

// MetricsServiceTestSuite defines the test suite for MetricsService
type MetricsServiceTestSuite struct {
	suite.Suite
	ctrl            *gomock.Controller
	mockSessionRepo *mocks.MockOneOnOneRepositoryInterface
	mockAnswerRepo  *mocks.MockAnswerRepositoryInterface
	mockMetricsRepo *mocks.MockMetricsRepositoryInterface
	metricsService  *service.MetricsService
}

func (suite *MetricsServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockSessionRepo = mocks.NewMockOneOnOneRepositoryInterface(suite.ctrl)
	suite.mockAnswerRepo = mocks.NewMockAnswerRepositoryInterface(suite.ctrl)
	suite.mockMetricsRepo = mocks.NewMockMetricsRepositoryInterface(suite.ctrl)
	suite.metricsService = service.NewMetricsService(suite.mockSessionRepo, suite.mockAnswerRepo, suite.mockMetricsRepo)
}

func (suite *MetricsServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *MetricsServiceTestSuite) TestCalculate_TwiceUpsertsSameSession() {
	dev := newUser(models.UserRoleDeveloper)
	mgr := newUser(models.UserRoleManager)
	session := newSession(dev, mgr, models.OneOnOneStatusCompleted)
	q := uuid.New()
	answers := []models.Answer{rated(q, models.ParticipantDeveloper, 4), rated(q, models.ParticipantManager, 2)}

	suite.mockSessionRepo.EXPECT().GetByID(session.ID).Return(session, nil).Times(2)
	suite.mockAnswerRepo.EXPECT().GetByOneOnOneID(session.ID).Return(answers, nil).Times(2)

	var seen []*models.MetricsSnapshot
	suite.mockMetricsRepo.EXPECT().UpsertSnapshot(gomock.Any()).DoAndReturn(func(s *models.MetricsSnapshot) error {
		seen = append(seen, s)
		return nil
	}).Times(2)

	first, err := suite.metricsService.Calculate(session.ID)
	suite.NoError(err)
	second, err := suite.metricsService.Calculate(session.ID)
	suite.NoError(err)

	suite.Len(seen, 2)
	suite.Equal(first.OneOnOneID, second.OneOnOneID)
	suite.Equal(first.Breakdown.Data(), second.Breakdown.Data())
	suite.Equal(session.Month, first.Month)
	suite.InDelta(2.0, *first.Breakdown.Data().RatingAlignment, 1e-9)
}

func (suite *MetricsServiceTestSuite) TestCalculate_SessionNotFound() {
	id := uuid.New()
	suite.mockSessionRepo.EXPECT().GetByID(id).Return(nil, gorm.ErrRecordNotFound)

	_, err := suite.metricsService.Calculate(id)
	suite.ErrorIs(err, apperrors.ErrOneOnOneNotFound)
}

func (suite *MetricsServiceTestSuite) TestRunJob_RecordsFailure() {
	id := uuid.New()
	job := &models.MetricsJob{OneOnOneID: id, Status: models.MetricsJobStatusPending}

	suite.mockMetricsRepo.EXPECT().GetJob(id).Return(job, nil)
	suite.mockSessionRepo.EXPECT().GetByID(id).Return(nil, errors.New("connection reset"))
	suite.mockMetricsRepo.EXPECT().SaveJob(gomock.Any()).DoAndReturn(func(j *models.MetricsJob) error {
		suite.Equal(models.MetricsJobStatusFailed, j.Status)
		suite.Equal(1, j.Attempts)
		suite.Contains(j.LastError, "connection reset")
		suite.NotNil(j.LastAttemptAt)
		return nil
	})

	err := suite.metricsService.RunJob(id)
	suite.Error(err)
}

func (suite *MetricsServiceTestSuite) TestRunJob_EnqueuesMissingJobAndSucceeds() {
	dev := newUser(models.UserRoleDeveloper)
	mgr := newUser(models.UserRoleManager)
	session := newSession(dev, mgr, models.OneOnOneStatusCompleted)
	job := &models.MetricsJob{OneOnOneID: session.ID, Status: models.MetricsJobStatusPending}

	gomock.InOrder(
		suite.mockMetricsRepo.EXPECT().GetJob(session.ID).Return(nil, gorm.ErrRecordNotFound),
		suite.mockMetricsRepo.EXPECT().EnqueueJob(session.ID).Return(nil),
		suite.mockMetricsRepo.EXPECT().GetJob(session.ID).Return(job, nil),
	)
	suite.mockSessionRepo.EXPECT().GetByID(session.ID).Return(session, nil)
	suite.mockAnswerRepo.EXPECT().GetByOneOnOneID(session.ID).Return(nil, nil)
	suite.mockMetricsRepo.EXPECT().UpsertSnapshot(gomock.Any()).Return(nil)
	suite.mockMetricsRepo.EXPECT().SaveJob(gomock.Any()).DoAndReturn(func(j *models.MetricsJob) error {
		suite.Equal(models.MetricsJobStatusSucceeded, j.Status)
		suite.Empty(j.LastError)
		suite.NotNil(j.SucceededAt)
		return nil
	})

	suite.NoError(suite.metricsService.RunJob(session.ID))
}

func (suite *MetricsServiceTestSuite) TestRetryPending_CountsOutcomes() {
	ok := uuid.New()
	bad := uuid.New()
	dev := newUser(models.UserRoleDeveloper)
	mgr := newUser(models.UserRoleManager)
	session := newSession(dev, mgr, models.OneOnOneStatusCompleted)
	session.ID = ok

	suite.mockMetricsRepo.EXPECT().ListRetryableJobs(service.MaxMetricsAttempts, gomock.Any()).Return([]models.MetricsJob{
		{OneOnOneID: ok}, {OneOnOneID: bad},
	}, nil)
	suite.mockMetricsRepo.EXPECT().GetJob(ok).Return(&models.MetricsJob{OneOnOneID: ok}, nil)
	suite.mockMetricsRepo.EXPECT().GetJob(bad).Return(&models.MetricsJob{OneOnOneID: bad}, nil)
	suite.mockSessionRepo.EXPECT().GetByID(ok).Return(session, nil)
	suite.mockSessionRepo.EXPECT().GetByID(bad).Return(nil, gorm.ErrRecordNotFound)
	suite.mockAnswerRepo.EXPECT().GetByOneOnOneID(ok).Return(nil, nil)
	suite.mockMetricsRepo.EXPECT().UpsertSnapshot(gomock.Any()).Return(nil)
	suite.mockMetricsRepo.EXPECT().SaveJob(gomock.Any()).Return(nil).Times(2)

	summary, err := suite.metricsService.RetryPending(context.Background())
	suite.NoError(err)
	suite.Equal(2, summary.Processed)
	suite.Equal(1, summary.Succeeded)
	suite.Equal(1, summary.Failed)
	suite.Len(summary.Errors, 1)
}

func (suite *MetricsServiceTestSuite) TestRetryPendingAsAdmin_RequiresAdmin() {
	_, err := suite.metricsService.RetryPendingAsAdmin(context.Background(), newUser(models.UserRoleManager))
	suite.ErrorIs(err, apperrors.ErrAdminRequired)
}

func (suite *MetricsServiceTestSuite) TestGetForSession_OutsiderForbidden() {
	dev := newUser(models.UserRoleDeveloper)
	mgr := newUser(models.UserRoleManager)
	session := newSession(dev, mgr, models.OneOnOneStatusCompleted)
	suite.mockSessionRepo.EXPECT().GetByID(session.ID).Return(session, nil)

	_, err := suite.metricsService.GetForSession(newUser(models.UserRoleDeveloper), session.ID)
	suite.ErrorIs(err, apperrors.ErrNotParticipant)
}

func (suite *MetricsServiceTestSuite) TestGetForSession_NoSnapshot() {
	dev := newUser(models.UserRoleDeveloper)
	mgr := newUser(models.UserRoleManager)
	session := newSession(dev, mgr, models.OneOnOneStatusSubmitted)
	suite.mockSessionRepo.EXPECT().GetByID(session.ID).Return(session, nil)
	suite.mockMetricsRepo.EXPECT().GetByOneOnOneID(session.ID).Return(nil, gorm.ErrRecordNotFound)

	_, err := suite.metricsService.GetForSession(dev, session.ID)
	suite.ErrorIs(err, apperrors.ErrMetricsNotFound)
}

func TestMetricsServiceTestSuite(t *testing.T) {
	suite.Run(t, new(MetricsServiceTestSuite))
}
