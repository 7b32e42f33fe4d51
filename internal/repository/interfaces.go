package repository

import (
	"errors"
	"time"

	"one-on-one-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// ErrStaleWrite is returned by compare-and-set updates that matched no row
var ErrStaleWrite = errors.New("stale write: row changed concurrently")

// ErrSessionNumberExhausted is returned when a free session number could not be claimed
var ErrSessionNumberExhausted = errors.New("could not claim a session number")

// UserFilter narrows user listings
type UserFilter struct {
	Query string
	Role  models.UserRole
}

// OneOnOneFilter narrows one-on-one listings; zero values are ignored
type OneOnOneFilter struct {
	DeveloperID *uuid.UUID
	ManagerID   *uuid.UUID
	Month       string
	Status      models.OneOnOneStatus
}

// UserRepositoryInterface defines the interface for user repository operations
type UserRepositoryInterface interface {
	Create(user *models.User) error
	GetByID(id uuid.UUID) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	GetByIDs(ids []uuid.UUID) ([]models.User, error)
	GetWithTeams(id uuid.UUID) (*models.User, error)
	List(filter UserFilter, limit, offset int) ([]models.User, int64, error)
	Update(user *models.User) error
	UpdateRole(id uuid.UUID, role models.UserRole) error
	TouchLastLogin(id uuid.UUID, at time.Time) error
	ReplaceTeams(userID uuid.UUID, teamIDs []uuid.UUID) error
	GetTeamIDs(userID uuid.UUID) ([]uuid.UUID, error)
	GetExistingEmails(emails []string) ([]string, error)
	CountByRole() (map[models.UserRole]int64, error)
}

// TeamRepositoryInterface defines the interface for team repository operations
type TeamRepositoryInterface interface {
	Create(team *models.Team) error
	GetByID(id uuid.UUID) (*models.Team, error)
	GetByName(name string) (*models.Team, error)
	GetByIDs(ids []uuid.UUID) ([]models.Team, error)
	GetAll(limit, offset int) ([]models.Team, int64, error)
	GetWithMembers(id uuid.UUID) (*models.Team, error)
	GetByManagerID(managerID uuid.UUID) ([]models.Team, error)
	Update(team *models.Team) error
	Delete(id uuid.UUID) error
	GetMemberCount(teamID uuid.UUID) (int64, error)
	GetDeveloperIDs(teamID uuid.UUID) ([]uuid.UUID, error)
	IsManagerOf(managerID, developerID uuid.UUID) (bool, error)
	GetManagerIDsOf(developerID uuid.UUID) ([]uuid.UUID, error)
}

// OneOnOneRepositoryInterface defines the interface for one-on-one repository operations
type OneOnOneRepositoryInterface interface {
	CreateWithNextNumber(session *models.OneOnOne) error
	GetByID(id uuid.UUID) (*models.OneOnOne, error)
	GetDetail(id uuid.UUID) (*models.OneOnOne, error)
	List(filter OneOnOneFilter, limit, offset int) ([]models.OneOnOne, int64, error)
	ExistsFor(developerID, managerID uuid.UUID, month string) (bool, error)
	TransitionStatus(id uuid.UUID, from, to models.OneOnOneStatus, at time.Time) error
	Delete(id uuid.UUID) error
	CountByStatus(filter OneOnOneFilter) (map[models.OneOnOneStatus]int64, error)
}

// QuestionRepositoryInterface defines the interface for question repository operations
type QuestionRepositoryInterface interface {
	Create(question *models.Question) error
	GetByID(id uuid.UUID) (*models.Question, error)
	GetByIDs(ids []uuid.UUID) ([]models.Question, error)
	ListActive(teamIDs []uuid.UUID) ([]models.Question, error)
}

// AnswerRepositoryInterface defines the interface for answer and note repository operations
type AnswerRepositoryInterface interface {
	Upsert(answer *models.Answer) error
	UpsertBatch(answers []models.Answer) ([]models.Answer, error)
	GetByOneOnOneID(oneOnOneID uuid.UUID) ([]models.Answer, error)
	UpsertNote(note *models.Note) error
	GetNotesByOneOnOneID(oneOnOneID uuid.UUID) ([]models.Note, error)
}

// ActionItemRepositoryInterface defines the interface for action item repository operations
type ActionItemRepositoryInterface interface {
	Create(item *models.ActionItem) error
	GetByID(id uuid.UUID) (*models.ActionItem, error)
	Update(item *models.ActionItem) error
	Delete(id uuid.UUID) error
	ListAssignedTo(userID uuid.UUID, status models.ActionItemStatus) ([]models.ActionItem, error)
	GetOverdue(today time.Time) ([]models.ActionItem, error)
	GetDueBetween(from, to time.Time) ([]models.ActionItem, error)
	CountOpenAssignedTo(userID uuid.UUID) (int64, error)
	CountOverdueForManager(managerID uuid.UUID, today time.Time) (int64, error)
}

// MetricsRepositoryInterface defines the interface for metrics snapshot and job operations
type MetricsRepositoryInterface interface {
	UpsertSnapshot(snapshot *models.MetricsSnapshot) error
	GetByOneOnOneID(oneOnOneID uuid.UUID) (*models.MetricsSnapshot, error)
	ListForDeveloper(developerID uuid.UUID, fromMonth, toMonth string) ([]models.MetricsSnapshot, error)
	ListForDevelopersInMonth(developerIDs []uuid.UUID, managerID *uuid.UUID, month string) ([]models.MetricsSnapshot, error)
	EnqueueJob(oneOnOneID uuid.UUID) error
	GetJob(oneOnOneID uuid.UUID) (*models.MetricsJob, error)
	SaveJob(job *models.MetricsJob) error
	ListRetryableJobs(maxAttempts, limit int) ([]models.MetricsJob, error)
}

// NotificationRepositoryInterface defines the interface for notification repository operations
type NotificationRepositoryInterface interface {
	Create(notification *models.Notification) error
	GetByID(id uuid.UUID) (*models.Notification, error)
	ListForUser(userID uuid.UUID, unreadOnly bool, limit, offset int) ([]models.Notification, int64, error)
	CountUnread(userID uuid.UUID) (int64, error)
	MarkRead(id uuid.UUID, at time.Time) error
	MarkAllRead(userID uuid.UUID, at time.Time) (int64, error)
	ExistsForRelated(notificationType models.NotificationType, relatedID uuid.UUID) (bool, error)
	ExistsForRelatedSince(notificationType models.NotificationType, relatedID uuid.UUID, since time.Time) (bool, error)
}
