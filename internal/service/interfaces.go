package service

import (
	"context"

	"one-on-one-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// UserServiceInterface defines the interface for user service
type UserServiceInterface interface {
	List(actor *models.User, req *ListUsersRequest) (*UserListResponse, error)
	GetMe(actor *models.User) (*UserResponse, error)
	Update(actor *models.User, id uuid.UUID, req *UpdateUserRequest) (*UserResponse, error)
	Provision(actor *models.User, req *ProvisionUserRequest) (*UserResponse, error)
	SearchDirectory(actor *models.User, query string) ([]DirectoryResult, error)
}

// TeamServiceInterface defines the interface for team service
type TeamServiceInterface interface {
	Create(actor *models.User, req *CreateTeamRequest) (*TeamResponse, error)
	GetByID(actor *models.User, id uuid.UUID) (*TeamResponse, error)
	GetWithMembers(actor *models.User, id uuid.UUID) (*TeamResponse, error)
	GetAll(actor *models.User, page, pageSize int) (*TeamListResponse, error)
	GetManagedTeams(actor *models.User) ([]TeamResponse, error)
	Update(actor *models.User, id uuid.UUID, req *UpdateTeamRequest) (*TeamResponse, error)
	Delete(actor *models.User, id uuid.UUID) error
}

// DirectoryServiceInterface defines the interface for directory lookups
type DirectoryServiceInterface interface {
	Search(query string) ([]DirectoryPerson, error)
}

// OneOnOneServiceInterface defines the interface for one-on-one service
type OneOnOneServiceInterface interface {
	Create(ctx context.Context, actor *models.User, req *CreateOneOnOneRequest) (*models.OneOnOne, error)
	BulkCreate(ctx context.Context, actor *models.User, req *BulkCreateRequest) (*BulkCreateResult, error)
	List(actor *models.User, req *ListOneOnOnesRequest) (*OneOnOneListResponse, error)
	Get(actor *models.User, id uuid.UUID) (*models.OneOnOne, error)
	Delete(actor *models.User, id uuid.UUID) error
	TransitionStatus(ctx context.Context, actor *models.User, id uuid.UUID, req *UpdateStatusRequest) (*models.OneOnOne, error)
	SendReminders(ctx context.Context, actor *models.User, req *ReminderRequest) (*FanOutSummary, error)
}

// AnswerServiceInterface defines the interface for answer and note writes
type AnswerServiceInterface interface {
	SubmitAnswer(actor *models.User, req *SubmitAnswerRequest) (*models.Answer, error)
	SubmitAnswers(actor *models.User, req *SubmitAnswersRequest) ([]models.Answer, error)
	SaveNote(actor *models.User, req *SaveNoteRequest) (*models.Note, error)
}

// QuestionServiceInterface defines the interface for question service
type QuestionServiceInterface interface {
	ListForTeam(teamID *uuid.UUID) ([]models.Question, error)
	ListForSession(actor *models.User, sessionID uuid.UUID) ([]models.Question, error)
}

// ActionItemServiceInterface defines the interface for action item service
type ActionItemServiceInterface interface {
	Create(actor *models.User, sessionID uuid.UUID, req *CreateActionItemRequest) (*models.ActionItem, error)
	Update(actor *models.User, id uuid.UUID, req *UpdateActionItemRequest) (*models.ActionItem, error)
	Delete(actor *models.User, id uuid.UUID) error
	ListMine(actor *models.User, status models.ActionItemStatus) ([]models.ActionItem, error)
}

// MetricsServiceInterface defines the interface for metrics service
type MetricsServiceInterface interface {
	Calculate(sessionID uuid.UUID) (*models.MetricsSnapshot, error)
	RunJob(sessionID uuid.UUID) error
	RetryPending(ctx context.Context) (*JobRunSummary, error)
	RetryPendingAsAdmin(ctx context.Context, actor *models.User) (*JobRunSummary, error)
	GetForSession(actor *models.User, sessionID uuid.UUID) (*models.MetricsSnapshot, error)
}

// NotificationServiceInterface defines the interface for notification service
type NotificationServiceInterface interface {
	Notify(ctx context.Context, notification *models.Notification) error
	ScanOverdue(ctx context.Context) (*FanOutSummary, error)
	ScanDueSoon(ctx context.Context) (*FanOutSummary, error)
	RunScans(ctx context.Context, actor *models.User) (*ScanResult, error)
	Create(ctx context.Context, actor *models.User, req *CreateNotificationRequest) (*models.Notification, error)
	List(actor *models.User, unreadOnly bool, page, pageSize int) (*NotificationListResponse, error)
	UnreadCount(actor *models.User) (int64, error)
	MarkRead(actor *models.User, id uuid.UUID) error
	MarkAllRead(actor *models.User) (int64, error)
}

// AnalyticsServiceInterface defines the interface for analytics service
type AnalyticsServiceInterface interface {
	DeveloperTrend(actor *models.User, developerID uuid.UUID, from, to string) (*DeveloperTrendResponse, error)
	TeamSummary(actor *models.User, teamID uuid.UUID, month string) (*TeamSummaryResponse, error)
	Dashboard(ctx context.Context, actor *models.User) (*DashboardResponse, error)
}
