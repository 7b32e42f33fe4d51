package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"one-on-one-backend/internal/database/models"
	apperrors "one-on-one-backend/internal/errors"
	"one-on-one-backend/internal/logger"
	"one-on-one-backend/internal/notify"
	"one-on-one-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Action items due within this many days get a due-soon notification
const dueSoonWindowDays = 3

const relatedTypeActionItem = "action_item"

// NotificationService writes in-app notifications, hands them to the deliverer and runs the action item scans
type NotificationService struct {
	repo           repository.NotificationRepositoryInterface
	actionItemRepo repository.ActionItemRepositoryInterface
	userRepo       repository.UserRepositoryInterface
	deliverer      notify.Deliverer
	validator      *validator.Validate
	now            func() time.Time
}

// NewNotificationService creates a new notification service; a nil deliverer disables delivery
func NewNotificationService(repo repository.NotificationRepositoryInterface, actionItemRepo repository.ActionItemRepositoryInterface, userRepo repository.UserRepositoryInterface, deliverer notify.Deliverer, validator *validator.Validate) *NotificationService {
	return &NotificationService{
		repo:           repo,
		actionItemRepo: actionItemRepo,
		userRepo:       userRepo,
		deliverer:      deliverer,
		validator:      validator,
		now:            time.Now,
	}
}

// CreateNotificationRequest represents an admin request to notify a user
type CreateNotificationRequest struct {
	UserID  uuid.UUID               `json:"user_id" validate:"required"`
	Type    models.NotificationType `json:"type"`
	Title   string                  `json:"title" validate:"required,max=200"`
	Message string                  `json:"message" validate:"max=2000"`
}

// NotificationListResponse represents a paginated list of notifications
type NotificationListResponse struct {
	Notifications []models.Notification `json:"notifications"`
	Total         int64                 `json:"total"`
	Page          int                   `json:"page"`
	PageSize      int                   `json:"page_size"`
}

// ScanResult holds the outcome of both action item scans
type ScanResult struct {
	Overdue *FanOutSummary `json:"overdue"`
	DueSoon *FanOutSummary `json:"due_soon"`
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// daysBetween counts calendar days from a to b, ignoring time of day and zone
func daysBetween(a, b time.Time) int {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	from := time.Date(ay, am, ad, 0, 0, 0, 0, time.UTC)
	to := time.Date(by, bm, bd, 0, 0, 0, 0, time.UTC)
	return int(to.Sub(from).Hours() / 24)
}

// Notify stores the notification, then delivers it best-effort; delivery errors are only logged
func (s *NotificationService) Notify(ctx context.Context, notification *models.Notification) error {
	if err := s.repo.Create(notification); err != nil {
		return fmt.Errorf("failed to create notification: %w", err)
	}
	s.deliver(ctx, notification)
	return nil
}

func (s *NotificationService) deliver(ctx context.Context, n *models.Notification) {
	if s.deliverer == nil {
		return
	}
	log := logger.WithContext(ctx).WithField("notification_id", n.ID.String())

	user, err := s.userRepo.GetByID(n.UserID)
	if err != nil {
		log.WithError(err).Warn("Skipping delivery, recipient not loaded")
		return
	}
	to := notify.Recipient{UserID: user.ID, Email: user.Email, Name: user.FullName}
	msg := notify.Message{Type: string(n.Type), Subject: n.Title, Body: n.Message}
	if err := s.deliverer.Send(ctx, to, msg); err != nil {
		log.WithError(err).Warn("Notification delivery failed")
	}
}

// ScanOverdue notifies assignees of open items past their due date, once per item
func (s *NotificationService) ScanOverdue(ctx context.Context) (*FanOutSummary, error) {
	today := startOfDay(s.now())
	items, err := s.actionItemRepo.GetOverdue(today)
	if err != nil {
		return nil, fmt.Errorf("failed to get overdue action items: %w", err)
	}

	summary := newFanOutSummary()
	for i := range items {
		item := &items[i]
		assignee, ok := item.Assignee()
		if !ok {
			summary.fail(item.ID.String(), errors.New("one-on-one not loaded"))
			continue
		}

		exists, err := s.repo.ExistsForRelated(models.NotificationTypeActionItemOverdue, item.ID)
		if err != nil {
			summary.fail(item.ID.String(), err)
			continue
		}
		if exists {
			summary.Skipped++
			continue
		}

		n := &models.Notification{
			UserID:      assignee,
			Type:        models.NotificationTypeActionItemOverdue,
			Title:       "Action item overdue",
			Message:     fmt.Sprintf("%q was due on %s.", item.Description, item.DueDate.Format(time.DateOnly)),
			RelatedType: relatedTypeActionItem,
			RelatedID:   &item.ID,
		}
		if err := s.Notify(ctx, n); err != nil {
			summary.fail(item.ID.String(), err)
			continue
		}
		summary.Created++
	}

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"created": summary.Created, "skipped": summary.Skipped, "failed": summary.Failed,
	}).Info("Overdue action item scan finished")
	return summary, nil
}

// ScanDueSoon notifies assignees of open items due within the next days, at most once per item per day
func (s *NotificationService) ScanDueSoon(ctx context.Context) (*FanOutSummary, error) {
	today := startOfDay(s.now())
	items, err := s.actionItemRepo.GetDueBetween(today, today.AddDate(0, 0, dueSoonWindowDays))
	if err != nil {
		return nil, fmt.Errorf("failed to get action items due soon: %w", err)
	}

	summary := newFanOutSummary()
	for i := range items {
		item := &items[i]
		assignee, ok := item.Assignee()
		if !ok {
			summary.fail(item.ID.String(), errors.New("one-on-one not loaded"))
			continue
		}

		exists, err := s.repo.ExistsForRelatedSince(models.NotificationTypeActionItemDueSoon, item.ID, today)
		if err != nil {
			summary.fail(item.ID.String(), err)
			continue
		}
		if exists {
			summary.Skipped++
			continue
		}

		days := daysBetween(today, *item.DueDate)
		var when string
		switch days {
		case 0:
			when = "today"
		case 1:
			when = "in 1 day"
		default:
			when = fmt.Sprintf("in %d days", days)
		}
		n := &models.Notification{
			UserID:      assignee,
			Type:        models.NotificationTypeActionItemDueSoon,
			Title:       "Action item due soon",
			Message:     fmt.Sprintf("%q is due %s.", item.Description, when),
			RelatedType: relatedTypeActionItem,
			RelatedID:   &item.ID,
		}
		if err := s.Notify(ctx, n); err != nil {
			summary.fail(item.ID.String(), err)
			continue
		}
		summary.Created++
	}

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"created": summary.Created, "skipped": summary.Skipped, "failed": summary.Failed,
	}).Info("Due-soon action item scan finished")
	return summary, nil
}

// RunScans runs both scans on behalf of an admin
func (s *NotificationService) RunScans(ctx context.Context, actor *models.User) (*ScanResult, error) {
	if err := RequireAdmin(actor); err != nil {
		return nil, err
	}
	overdue, err := s.ScanOverdue(ctx)
	if err != nil {
		return nil, err
	}
	dueSoon, err := s.ScanDueSoon(ctx)
	if err != nil {
		return nil, err
	}
	return &ScanResult{Overdue: overdue, DueSoon: dueSoon}, nil
}

// Create lets an admin send an arbitrary notification to a user
func (s *NotificationService) Create(ctx context.Context, actor *models.User, req *CreateNotificationRequest) (*models.Notification, error) {
	if err := RequireAdmin(actor); err != nil {
		return nil, err
	}
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if _, err := s.userRepo.GetByID(req.UserID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	notificationType := req.Type
	if notificationType == "" {
		notificationType = models.NotificationTypeGeneral
	}
	n := &models.Notification{
		UserID:  req.UserID,
		Type:    notificationType,
		Title:   req.Title,
		Message: req.Message,
	}
	if err := s.Notify(ctx, n); err != nil {
		return nil, err
	}
	return n, nil
}

// List returns the actor's notifications, newest first
func (s *NotificationService) List(actor *models.User, unreadOnly bool, page, pageSize int) (*NotificationListResponse, error) {
	page, pageSize, limit, offset := normalizePage(page, pageSize)
	notifications, total, err := s.repo.ListForUser(actor.ID, unreadOnly, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}
	return &NotificationListResponse{
		Notifications: notifications,
		Total:         total,
		Page:          page,
		PageSize:      pageSize,
	}, nil
}

// UnreadCount returns the number of unread notifications of the actor
func (s *NotificationService) UnreadCount(actor *models.User) (int64, error) {
	count, err := s.repo.CountUnread(actor.ID)
	if err != nil {
		return 0, fmt.Errorf("failed to count unread notifications: %w", err)
	}
	return count, nil
}

// MarkRead marks one of the actor's notifications as read
func (s *NotificationService) MarkRead(actor *models.User, id uuid.UUID) error {
	n, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrNotificationNotFound
		}
		return fmt.Errorf("failed to get notification: %w", err)
	}
	if n.UserID != actor.ID {
		return apperrors.ErrNotificationOwner
	}
	if n.IsRead {
		return nil
	}
	if err := s.repo.MarkRead(id, s.now()); err != nil {
		return fmt.Errorf("failed to mark notification read: %w", err)
	}
	return nil
}

// MarkAllRead marks every unread notification of the actor as read
func (s *NotificationService) MarkAllRead(actor *models.User) (int64, error) {
	count, err := s.repo.MarkAllRead(actor.ID, s.now())
	if err != nil {
		return 0, fmt.Errorf("failed to mark notifications read: %w", err)
	}
	return count, nil
}
