//go:build integration
// +build integration

package repository

import (
	"testing"

	"one-on-one-backend/internal/database/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// TeamRepositoryTestSuite tests the TeamRepository
type TeamRepositoryTestSuite struct {
	integrationSuite
	repo *TeamRepository
}

// SetupSuite runs before all tests in the suite
func (suite *TeamRepositoryTestSuite) SetupSuite() {
	suite.integrationSuite.SetupSuite()
	suite.repo = NewTeamRepository(suite.db)
}

// TestCreateAndGetByName tests creating a team and looking it up by name
func (suite *TeamRepositoryTestSuite) TestCreateAndGetByName() {
	team := suite.factories.Team.WithName("Platform")

	suite.NoError(suite.repo.Create(team))

	found, err := suite.repo.GetByName("Platform")
	suite.NoError(err)
	suite.Equal(team.ID, found.ID)
}

// TestCreateDuplicateName tests the unique team name
func (suite *TeamRepositoryTestSuite) TestCreateDuplicateName() {
	suite.NoError(suite.repo.Create(suite.factories.Team.WithName("Payments")))

	err := suite.repo.Create(suite.factories.Team.WithName("Payments"))

	suite.ErrorIs(err, gorm.ErrDuplicatedKey)
}

// TestGetWithMembers tests that members and the manager are preloaded
func (suite *TeamRepositoryTestSuite) TestGetWithMembers() {
	manager := suite.createUser(models.UserRoleManager)
	dev := suite.createUser(models.UserRoleDeveloper)
	team := suite.createTeam(manager, dev)

	found, err := suite.repo.GetWithMembers(team.ID)

	suite.NoError(err)
	suite.Require().NotNil(found.Manager)
	suite.Equal(manager.ID, found.Manager.ID)
	suite.Require().Len(found.Members, 1)
	suite.Equal(dev.Email, found.Members[0].User.Email)
}

// TestMemberCountAndDelete tests the counts used by the deletion guard
func (suite *TeamRepositoryTestSuite) TestMemberCountAndDelete() {
	dev := suite.createUser(models.UserRoleDeveloper)
	team := suite.createTeam(nil, dev)
	empty := suite.createTeam(nil)

	count, err := suite.repo.GetMemberCount(team.ID)
	suite.NoError(err)
	suite.Equal(int64(1), count)

	suite.NoError(suite.repo.Delete(empty.ID))
	_, err = suite.repo.GetByID(empty.ID)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

// TestDeveloperAndManagerLookups tests the membership joins
func (suite *TeamRepositoryTestSuite) TestDeveloperAndManagerLookups() {
	manager := suite.createUser(models.UserRoleManager)
	otherManager := suite.createUser(models.UserRoleManager)
	dev := suite.createUser(models.UserRoleDeveloper)
	stranger := suite.createUser(models.UserRoleDeveloper)
	team := suite.createTeam(manager, dev, otherManager)

	ids, err := suite.repo.GetDeveloperIDs(team.ID)
	suite.NoError(err)
	suite.Equal([]uuid.UUID{dev.ID}, ids)

	ok, err := suite.repo.IsManagerOf(manager.ID, dev.ID)
	suite.NoError(err)
	suite.True(ok)

	ok, err = suite.repo.IsManagerOf(manager.ID, stranger.ID)
	suite.NoError(err)
	suite.False(ok)

	managers, err := suite.repo.GetManagerIDsOf(dev.ID)
	suite.NoError(err)
	suite.Equal([]uuid.UUID{manager.ID}, managers)

	teams, err := suite.repo.GetByManagerID(manager.ID)
	suite.NoError(err)
	suite.Len(teams, 1)
	suite.Len(teams[0].Members, 2)
}

// Run the test suite
func TestTeamRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(TeamRepositoryTestSuite))
}
