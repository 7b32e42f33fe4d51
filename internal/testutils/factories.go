package testutils

import (
	"fmt"
	"time"

	"one-on-one-backend/internal/database/models"

	"github.com/google/uuid"
)

// UserFactory provides methods to create test User data
type UserFactory struct{}

// NewUserFactory creates a new UserFactory
func NewUserFactory() *UserFactory {
	return &UserFactory{}
}

// Create creates a test developer with a unique email
func (f *UserFactory) Create() *models.User {
	id := uuid.New()
	return &models.User{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Email:    fmt.Sprintf("dev-%s@test.com", id.String()[:8]),
		FullName: "Dana Developer",
		Role:     models.UserRoleDeveloper,
	}
}

// WithRole creates a test user with the given role
func (f *UserFactory) WithRole(role models.UserRole) *models.User {
	user := f.Create()
	user.Role = role
	switch role {
	case models.UserRoleManager:
		user.FullName = "Morgan Manager"
		user.Email = fmt.Sprintf("mgr-%s@test.com", user.ID.String()[:8])
	case models.UserRoleAdmin:
		user.FullName = "Ari Admin"
		user.Email = fmt.Sprintf("admin-%s@test.com", user.ID.String()[:8])
	}
	return user
}

// WithEmail creates a test developer with a custom email
func (f *UserFactory) WithEmail(email string) *models.User {
	user := f.Create()
	user.Email = email
	return user
}

// TeamFactory provides methods to create test Team data
type TeamFactory struct{}

// NewTeamFactory creates a new TeamFactory
func NewTeamFactory() *TeamFactory {
	return &TeamFactory{}
}

// Create creates a test team without a manager
func (f *TeamFactory) Create() *models.Team {
	id := uuid.New()
	suffix := id.String()[:8]
	return &models.Team{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Name:        "Team " + suffix,
		Slug:        "team-" + suffix,
		Description: "A test team",
	}
}

// WithManager creates a test team managed by managerID
func (f *TeamFactory) WithManager(managerID uuid.UUID) *models.Team {
	team := f.Create()
	team.ManagerID = &managerID
	return team
}

// WithName creates a test team with a custom name
func (f *TeamFactory) WithName(name string) *models.Team {
	team := f.Create()
	team.Name = name
	return team
}

// OneOnOneFactory provides methods to create test OneOnOne data
type OneOnOneFactory struct{}

// NewOneOnOneFactory creates a new OneOnOneFactory
func NewOneOnOneFactory() *OneOnOneFactory {
	return &OneOnOneFactory{}
}

// Create creates a draft session for the given participants in the current month
func (f *OneOnOneFactory) Create(developerID, managerID uuid.UUID) *models.OneOnOne {
	return &models.OneOnOne{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		DeveloperID:   developerID,
		ManagerID:     managerID,
		Month:         models.MonthOf(time.Now()),
		SessionNumber: 1,
		Title:         "Monthly 1:1",
		Status:        models.OneOnOneStatusDraft,
	}
}

// WithStatus creates a session in the given status
func (f *OneOnOneFactory) WithStatus(developerID, managerID uuid.UUID, status models.OneOnOneStatus) *models.OneOnOne {
	session := f.Create(developerID, managerID)
	session.Status = status
	return session
}

// QuestionFactory provides methods to create test Question data
type QuestionFactory struct{}

// NewQuestionFactory creates a new QuestionFactory
func NewQuestionFactory() *QuestionFactory {
	return &QuestionFactory{}
}

// Create creates an active company-wide 1-5 rating question
func (f *QuestionFactory) Create() *models.Question {
	return &models.Question{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Text:         "How satisfied are you with your work this month?",
		QuestionType: models.QuestionTypeRating5,
		Scope:        models.QuestionScopeCompany,
		Category:     "wellbeing",
		IsActive:     true,
		SortOrder:    1,
	}
}

// WithType creates an active company question of the given type
func (f *QuestionFactory) WithType(questionType models.QuestionType) *models.Question {
	question := f.Create()
	question.QuestionType = questionType
	return question
}

// ForTeam creates an active question scoped to a team
func (f *QuestionFactory) ForTeam(teamID uuid.UUID) *models.Question {
	question := f.Create()
	question.Scope = models.QuestionScopeTeam
	question.TeamID = &teamID
	return question
}

// ActionItemFactory provides methods to create test ActionItem data
type ActionItemFactory struct{}

// NewActionItemFactory creates a new ActionItemFactory
func NewActionItemFactory() *ActionItemFactory {
	return &ActionItemFactory{}
}

// Create creates a pending item assigned to the session's developer
func (f *ActionItemFactory) Create(session *models.OneOnOne) *models.ActionItem {
	return &models.ActionItem{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		OneOnOneID:  session.ID,
		Description: "Write the design doc",
		AssignedTo:  models.ParticipantDeveloper,
		Status:      models.ActionItemStatusPending,
		CreatedBy:   session.ManagerID,
		OneOnOne:    session,
	}
}

// DueOn creates a pending developer item due on the given day
func (f *ActionItemFactory) DueOn(session *models.OneOnOne, due time.Time) *models.ActionItem {
	item := f.Create(session)
	item.DueDate = &due
	return item
}

// FactorySet provides all factories in one place
type FactorySet struct {
	User       *UserFactory
	Team       *TeamFactory
	OneOnOne   *OneOnOneFactory
	Question   *QuestionFactory
	ActionItem *ActionItemFactory
}

// NewFactorySet creates a new set of all factories
func NewFactorySet() *FactorySet {
	return &FactorySet{
		User:       NewUserFactory(),
		Team:       NewTeamFactory(),
		OneOnOne:   NewOneOnOneFactory(),
		Question:   NewQuestionFactory(),
		ActionItem: NewActionItemFactory(),
	}
}

// CreateSessionFixture creates a manager, a developer, a team linking them and a draft session.
// Nothing is persisted.
func (fs *FactorySet) CreateSessionFixture() (*models.User, *models.User, *models.Team, *models.OneOnOne) {
	manager := fs.User.WithRole(models.UserRoleManager)
	developer := fs.User.Create()
	team := fs.Team.WithManager(manager.ID)
	team.Members = []models.TeamMember{{TeamID: team.ID, UserID: developer.ID}}
	session := fs.OneOnOne.Create(developer.ID, manager.ID)
	return manager, developer, team, session
}
