package service_test

import (
	"testing"

	"one-on-one-backend/internal/database/models"
	apperrors "one-on-one-backend/internal/errors"
	"one-on-one-backend/internal/mocks"
	"one-on-one-backend/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type ActionItemServiceTestSuite struct {
	suite.Suite
	ctrl            *gomock.Controller
	mockRepo        *mocks.MockActionItemRepositoryInterface
	mockSessionRepo *mocks.MockOneOnOneRepositoryInterface
	itemService     *service.ActionItemService
	developer       *models.User
	manager         *models.User
	session         *models.OneOnOne
}

func (suite *ActionItemServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockRepo = mocks.NewMockActionItemRepositoryInterface(suite.ctrl)
	suite.mockSessionRepo = mocks.NewMockOneOnOneRepositoryInterface(suite.ctrl)
	suite.itemService = service.NewActionItemService(suite.mockRepo, suite.mockSessionRepo, service.NewValidator())
	suite.developer = newUser(models.UserRoleDeveloper)
	suite.manager = newUser(models.UserRoleManager)
	suite.session = newSession(suite.developer, suite.manager, models.OneOnOneStatusSubmitted)
}

func (suite *ActionItemServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *ActionItemServiceTestSuite) item(createdBy uuid.UUID, status models.ActionItemStatus) *models.ActionItem {
	return &models.ActionItem{
		BaseModel:   models.BaseModel{ID: uuid.New()},
		OneOnOneID:  suite.session.ID,
		OneOnOne:    suite.session,
		Description: "Write the design doc",
		AssignedTo:  models.ParticipantDeveloper,
		Status:      status,
		CreatedBy:   createdBy,
	}
}

func (suite *ActionItemServiceTestSuite) TestCreate() {
	suite.mockSessionRepo.EXPECT().GetByID(suite.session.ID).Return(suite.session, nil)
	suite.mockRepo.EXPECT().Create(gomock.Any()).Return(nil)

	item, err := suite.itemService.Create(suite.developer, suite.session.ID, &service.CreateActionItemRequest{
		Description: "Write the design doc",
		AssignedTo:  models.ParticipantManager,
		DueDate:     "2024-04-15",
	})

	suite.NoError(err)
	suite.Equal(models.ActionItemStatusPending, item.Status)
	suite.Equal(suite.developer.ID, item.CreatedBy)
	suite.Require().NotNil(item.DueDate)
	suite.Equal(15, item.DueDate.Day())
}

func (suite *ActionItemServiceTestSuite) TestCreate_InvalidDueDate() {
	_, err := suite.itemService.Create(suite.developer, suite.session.ID, &service.CreateActionItemRequest{
		Description: "x",
		AssignedTo:  models.ParticipantManager,
		DueDate:     "15/04/2024",
	})
	suite.ErrorIs(err, apperrors.ErrInvalidDueDate)
}

func (suite *ActionItemServiceTestSuite) TestCreate_Outsider() {
	suite.mockSessionRepo.EXPECT().GetByID(suite.session.ID).Return(suite.session, nil)

	_, err := suite.itemService.Create(newUser(models.UserRoleManager), suite.session.ID, &service.CreateActionItemRequest{
		Description: "x",
		AssignedTo:  models.ParticipantManager,
	})

	suite.True(apperrors.IsAuthorization(err))
}

func (suite *ActionItemServiceTestSuite) TestCreate_SessionNotFound() {
	id := uuid.New()
	suite.mockSessionRepo.EXPECT().GetByID(id).Return(nil, gorm.ErrRecordNotFound)

	_, err := suite.itemService.Create(suite.developer, id, &service.CreateActionItemRequest{
		Description: "x",
		AssignedTo:  models.ParticipantManager,
	})

	suite.ErrorIs(err, apperrors.ErrOneOnOneNotFound)
}

func (suite *ActionItemServiceTestSuite) TestUpdate_CompleteAndReopen() {
	item := suite.item(suite.manager.ID, models.ActionItemStatusInProgress)
	completed := models.ActionItemStatusCompleted
	pending := models.ActionItemStatusPending

	suite.mockRepo.EXPECT().GetByID(item.ID).Return(item, nil).Times(2)
	suite.mockRepo.EXPECT().Update(item).Return(nil).Times(2)

	updated, err := suite.itemService.Update(suite.developer, item.ID, &service.UpdateActionItemRequest{Status: &completed})
	suite.NoError(err)
	suite.NotNil(updated.CompletedAt)

	updated, err = suite.itemService.Update(suite.developer, item.ID, &service.UpdateActionItemRequest{Status: &pending})
	suite.NoError(err)
	suite.Nil(updated.CompletedAt)
}

func (suite *ActionItemServiceTestSuite) TestUpdate_EmptyDueDateClears() {
	item := suite.item(suite.manager.ID, models.ActionItemStatusPending)
	item.DueDate = &item.CreatedAt
	empty := ""

	suite.mockRepo.EXPECT().GetByID(item.ID).Return(item, nil)
	suite.mockRepo.EXPECT().Update(item).Return(nil)

	updated, err := suite.itemService.Update(suite.manager, item.ID, &service.UpdateActionItemRequest{DueDate: &empty})

	suite.NoError(err)
	suite.Nil(updated.DueDate)
}

func (suite *ActionItemServiceTestSuite) TestUpdate_InvalidStatus() {
	status := models.ActionItemStatus("done")
	_, err := suite.itemService.Update(suite.developer, uuid.New(), &service.UpdateActionItemRequest{Status: &status})
	suite.Error(err)
	suite.Contains(err.Error(), "validation failed")
}

func (suite *ActionItemServiceTestSuite) TestDelete() {
	suite.Run("developer cannot delete the manager's item", func() {
		item := suite.item(suite.manager.ID, models.ActionItemStatusPending)
		suite.mockRepo.EXPECT().GetByID(item.ID).Return(item, nil)

		err := suite.itemService.Delete(suite.developer, item.ID)
		suite.True(apperrors.IsAuthorization(err))
	})

	suite.Run("creator can delete", func() {
		item := suite.item(suite.developer.ID, models.ActionItemStatusPending)
		suite.mockRepo.EXPECT().GetByID(item.ID).Return(item, nil)
		suite.mockRepo.EXPECT().Delete(item.ID).Return(nil)

		suite.NoError(suite.itemService.Delete(suite.developer, item.ID))
	})

	suite.Run("session manager can delete", func() {
		item := suite.item(suite.developer.ID, models.ActionItemStatusPending)
		suite.mockRepo.EXPECT().GetByID(item.ID).Return(item, nil)
		suite.mockRepo.EXPECT().Delete(item.ID).Return(nil)

		suite.NoError(suite.itemService.Delete(suite.manager, item.ID))
	})

	suite.Run("missing item", func() {
		id := uuid.New()
		suite.mockRepo.EXPECT().GetByID(id).Return(nil, gorm.ErrRecordNotFound)

		suite.ErrorIs(suite.itemService.Delete(suite.manager, id), apperrors.ErrActionItemNotFound)
	})
}

func (suite *ActionItemServiceTestSuite) TestListMine() {
	suite.mockRepo.EXPECT().ListAssignedTo(suite.developer.ID, models.ActionItemStatusPending).Return([]models.ActionItem{{}}, nil)

	items, err := suite.itemService.ListMine(suite.developer, models.ActionItemStatusPending)
	suite.NoError(err)
	suite.Len(items, 1)

	_, err = suite.itemService.ListMine(suite.developer, "archived")
	suite.True(apperrors.IsValidation(err))
}

func TestActionItemServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ActionItemServiceTestSuite))
}
