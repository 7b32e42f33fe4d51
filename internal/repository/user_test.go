//go:build integration
// +build integration

package repository

import (
	"testing"
	"time"

	"one-on-one-backend/internal/database/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// UserRepositoryTestSuite tests the UserRepository
type UserRepositoryTestSuite struct {
	integrationSuite
	repo *UserRepository
}

// SetupSuite runs before all tests in the suite
func (suite *UserRepositoryTestSuite) SetupSuite() {
	suite.integrationSuite.SetupSuite()
	suite.repo = NewUserRepository(suite.db)
}

// TestCreate tests creating a new user
func (suite *UserRepositoryTestSuite) TestCreate() {
	user := suite.factories.User.Create()

	err := suite.repo.Create(user)

	suite.NoError(err)
	suite.NotEqual(uuid.Nil, user.ID)
	suite.NotZero(user.CreatedAt)
}

// TestCreateDuplicateEmail tests creating a user with duplicate email
func (suite *UserRepositoryTestSuite) TestCreateDuplicateEmail() {
	suite.NoError(suite.repo.Create(suite.factories.User.WithEmail("dup@example.com")))

	err := suite.repo.Create(suite.factories.User.WithEmail("dup@example.com"))

	suite.ErrorIs(err, gorm.ErrDuplicatedKey)
}

// TestGetByIDNotFound tests retrieving a non-existent user
func (suite *UserRepositoryTestSuite) TestGetByIDNotFound() {
	user, err := suite.repo.GetByID(uuid.New())

	suite.Equal(gorm.ErrRecordNotFound, err)
	suite.Nil(user)
}

// TestGetByEmailIgnoresCase tests that email lookup is case-insensitive
func (suite *UserRepositoryTestSuite) TestGetByEmailIgnoresCase() {
	user := suite.factories.User.WithEmail("Casey@Example.com")
	suite.NoError(suite.repo.Create(user))

	found, err := suite.repo.GetByEmail("casey@example.COM")

	suite.NoError(err)
	suite.Equal(user.ID, found.ID)
}

// TestListFiltersByRoleAndQuery tests search and role filtering
func (suite *UserRepositoryTestSuite) TestListFiltersByRoleAndQuery() {
	suite.createUser(models.UserRoleDeveloper)
	suite.createUser(models.UserRoleDeveloper)
	manager := suite.createUser(models.UserRoleManager)

	users, total, err := suite.repo.List(UserFilter{Role: models.UserRoleManager}, 10, 0)
	suite.NoError(err)
	suite.Equal(int64(1), total)
	suite.Equal(manager.ID, users[0].ID)

	users, total, err = suite.repo.List(UserFilter{Query: "dana"}, 1, 0)
	suite.NoError(err)
	suite.Equal(int64(2), total)
	suite.Len(users, 1)
}

// TestUpdateRole tests role changes and the missing-user case
func (suite *UserRepositoryTestSuite) TestUpdateRole() {
	user := suite.createUser(models.UserRoleDeveloper)

	suite.NoError(suite.repo.UpdateRole(user.ID, models.UserRoleManager))
	found, err := suite.repo.GetByID(user.ID)
	suite.NoError(err)
	suite.Equal(models.UserRoleManager, found.Role)

	suite.ErrorIs(suite.repo.UpdateRole(uuid.New(), models.UserRoleAdmin), gorm.ErrRecordNotFound)
}

// TestReplaceTeams tests that membership replacement swaps the whole set
func (suite *UserRepositoryTestSuite) TestReplaceTeams() {
	user := suite.createUser(models.UserRoleDeveloper)
	oldTeam := suite.createTeam(nil, user)
	teamA := suite.createTeam(nil)
	teamB := suite.createTeam(nil)

	err := suite.repo.ReplaceTeams(user.ID, []uuid.UUID{teamA.ID, teamB.ID, teamA.ID})
	suite.NoError(err)

	ids, err := suite.repo.GetTeamIDs(user.ID)
	suite.NoError(err)
	suite.ElementsMatch([]uuid.UUID{teamA.ID, teamB.ID}, ids)
	suite.NotContains(ids, oldTeam.ID)

	suite.NoError(suite.repo.ReplaceTeams(user.ID, nil))
	ids, err = suite.repo.GetTeamIDs(user.ID)
	suite.NoError(err)
	suite.Empty(ids)
}

// TestReplaceTeamsRollsBack tests that a failing insert keeps the previous memberships
func (suite *UserRepositoryTestSuite) TestReplaceTeamsRollsBack() {
	user := suite.createUser(models.UserRoleDeveloper)
	team := suite.createTeam(nil, user)

	err := suite.repo.ReplaceTeams(user.ID, []uuid.UUID{uuid.New()})
	suite.Error(err)

	ids, err := suite.repo.GetTeamIDs(user.ID)
	suite.NoError(err)
	suite.Equal([]uuid.UUID{team.ID}, ids)
}

// TestGetExistingEmails tests the directory "new" flag lookup
func (suite *UserRepositoryTestSuite) TestGetExistingEmails() {
	suite.NoError(suite.repo.Create(suite.factories.User.WithEmail("Known@Example.com")))

	existing, err := suite.repo.GetExistingEmails([]string{"known@example.com", "fresh@example.com"})

	suite.NoError(err)
	suite.Equal([]string{"known@example.com"}, existing)
}

// TestCountByRoleAndLastLogin tests aggregate counts and last-login stamping
func (suite *UserRepositoryTestSuite) TestCountByRoleAndLastLogin() {
	dev := suite.createUser(models.UserRoleDeveloper)
	suite.createUser(models.UserRoleDeveloper)
	suite.createUser(models.UserRoleAdmin)

	counts, err := suite.repo.CountByRole()
	suite.NoError(err)
	suite.Equal(int64(2), counts[models.UserRoleDeveloper])
	suite.Equal(int64(1), counts[models.UserRoleAdmin])
	suite.Zero(counts[models.UserRoleManager])

	at := time.Now().UTC().Truncate(time.Second)
	suite.NoError(suite.repo.TouchLastLogin(dev.ID, at))
	found, err := suite.repo.GetByID(dev.ID)
	suite.NoError(err)
	suite.Require().NotNil(found.LastLoginAt)
	suite.True(found.LastLoginAt.Equal(at))
}

// Run the test suite
func TestUserRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(UserRepositoryTestSuite))
}
