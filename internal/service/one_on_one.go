package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"one-on-one-backend/internal/database/models"
	apperrors "one-on-one-backend/internal/errors"
	"one-on-one-backend/internal/logger"
	"one-on-one-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const relatedTypeOneOnOne = "one_on_one"

// OneOnOneService handles the one-on-one lifecycle
type OneOnOneService struct {
	repo          repository.OneOnOneRepositoryInterface
	teamRepo      repository.TeamRepositoryInterface
	userRepo      repository.UserRepositoryInterface
	notifications NotificationServiceInterface
	metrics       MetricsServiceInterface
	validator     *validator.Validate
	now           func() time.Time
}

// NewOneOnOneService creates a new one-on-one service
func NewOneOnOneService(repo repository.OneOnOneRepositoryInterface, teamRepo repository.TeamRepositoryInterface, userRepo repository.UserRepositoryInterface, notifications NotificationServiceInterface, metrics MetricsServiceInterface, validator *validator.Validate) *OneOnOneService {
	return &OneOnOneService{
		repo:          repo,
		teamRepo:      teamRepo,
		userRepo:      userRepo,
		notifications: notifications,
		metrics:       metrics,
		validator:     validator,
		now:           time.Now,
	}
}

// CreateOneOnOneRequest represents the request to create a one-on-one.
// ManagerID lets an admin create a session on behalf of a manager.
type CreateOneOnOneRequest struct {
	DeveloperID uuid.UUID  `json:"developer_id" validate:"required"`
	ManagerID   *uuid.UUID `json:"manager_id,omitempty"`
	Month       string     `json:"month" validate:"required,month"`
	Title       string     `json:"title" validate:"max=200"`
}

// BulkCreateRequest represents the request to create sessions for many developers at once
type BulkCreateRequest struct {
	Month        string      `json:"month" validate:"required,month"`
	TeamID       *uuid.UUID  `json:"team_id,omitempty"`
	DeveloperIDs []uuid.UUID `json:"developer_ids,omitempty"`
	Title        string      `json:"title" validate:"max=200"`
}

// BulkCreateResult reports a bulk creation; per-developer failures do not abort the batch
type BulkCreateResult struct {
	FanOutSummary
	Sessions []models.OneOnOne `json:"sessions"`
}

// UpdateStatusRequest represents a status change
type UpdateStatusRequest struct {
	Status models.OneOnOneStatus `json:"status" validate:"required"`
}

// ReminderRequest represents a reminder run for one month
type ReminderRequest struct {
	Month string `json:"month" validate:"required,month"`
}

// ListOneOnOnesRequest filters the caller's sessions. As selects which side of the caller's
// sessions to show ("developer" or "manager"); empty means the natural view for the role.
type ListOneOnOnesRequest struct {
	Month    string
	Status   models.OneOnOneStatus
	As       string
	Page     int
	PageSize int
}

// OneOnOneListResponse represents a paginated list of one-on-ones
type OneOnOneListResponse struct {
	OneOnOnes []models.OneOnOne `json:"one_on_ones"`
	Total     int64             `json:"total"`
	Page      int               `json:"page"`
	PageSize  int               `json:"page_size"`
}

func (s *OneOnOneService) getSession(id uuid.UUID) (*models.OneOnOne, error) {
	session, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrOneOnOneNotFound
		}
		return nil, fmt.Errorf("failed to get one-on-one: %w", err)
	}
	return session, nil
}

func (s *OneOnOneService) getUser(id uuid.UUID) (*models.User, error) {
	user, err := s.userRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return user, nil
}

// notify sends a session notification; failures are logged and never returned
func (s *OneOnOneService) notify(ctx context.Context, userID uuid.UUID, t models.NotificationType, title, message string, sessionID uuid.UUID) {
	n := &models.Notification{
		UserID:      userID,
		Type:        t,
		Title:       title,
		Message:     message,
		RelatedType: relatedTypeOneOnOne,
		RelatedID:   &sessionID,
	}
	if err := s.notifications.Notify(ctx, n); err != nil {
		logger.WithContext(ctx).WithError(err).WithField("one_on_one_id", sessionID.String()).Warn("Failed to notify participant")
	}
}

func (s *OneOnOneService) notifyCreated(ctx context.Context, session *models.OneOnOne) {
	s.notify(ctx, session.DeveloperID, models.NotificationTypeOneOnOneCreated,
		"New one-on-one",
		fmt.Sprintf("Your one-on-one for %s (session %d) is ready for your answers.", session.Month, session.SessionNumber),
		session.ID)
}

// createFor inserts a draft session with the next free session number
func (s *OneOnOneService) createFor(developerID, managerID uuid.UUID, month, title string) (*models.OneOnOne, error) {
	session := &models.OneOnOne{
		DeveloperID: developerID,
		ManagerID:   managerID,
		Month:       month,
		Title:       title,
		Status:      models.OneOnOneStatusDraft,
	}
	if err := s.repo.CreateWithNextNumber(session); err != nil {
		if errors.Is(err, repository.ErrSessionNumberExhausted) {
			return nil, apperrors.ErrSessionNumberRace
		}
		return nil, fmt.Errorf("failed to create one-on-one: %w", err)
	}
	return session, nil
}

// resolveManager returns the manager a new session belongs to: the actor, or for admins
// optionally another manager.
func (s *OneOnOneService) resolveManager(actor *models.User, managerID *uuid.UUID) (uuid.UUID, error) {
	if managerID == nil || *managerID == actor.ID {
		return actor.ID, nil
	}
	if !actor.IsAdmin() {
		return uuid.Nil, apperrors.ErrAdminRequired
	}
	manager, err := s.getUser(*managerID)
	if err != nil {
		return uuid.Nil, err
	}
	if !manager.CanManage() {
		return uuid.Nil, apperrors.ErrManagerRoleRequired
	}
	return manager.ID, nil
}

// Create creates a draft one-on-one for a developer of one of the manager's teams
func (s *OneOnOneService) Create(ctx context.Context, actor *models.User, req *CreateOneOnOneRequest) (*models.OneOnOne, error) {
	if err := RequireManagerOrAdmin(actor); err != nil {
		return nil, err
	}
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	managerID, err := s.resolveManager(actor, req.ManagerID)
	if err != nil {
		return nil, err
	}
	if _, err := s.getUser(req.DeveloperID); err != nil {
		return nil, err
	}
	if !actor.IsAdmin() {
		ok, err := s.teamRepo.IsManagerOf(managerID, req.DeveloperID)
		if err != nil {
			return nil, fmt.Errorf("failed to check team membership: %w", err)
		}
		if !ok {
			return nil, apperrors.ErrDeveloperNotInTeam
		}
	}

	session, err := s.createFor(req.DeveloperID, managerID, req.Month, req.Title)
	if err != nil {
		return nil, err
	}
	s.notifyCreated(ctx, session)
	return session, nil
}

// bulkTargets resolves the manager and the developers a bulk request applies to
func (s *OneOnOneService) bulkTargets(actor *models.User, req *BulkCreateRequest) (uuid.UUID, []uuid.UUID, error) {
	managerID := actor.ID
	var ids []uuid.UUID

	if req.TeamID != nil {
		team, err := s.teamRepo.GetByID(*req.TeamID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return uuid.Nil, nil, apperrors.ErrTeamNotFound
			}
			return uuid.Nil, nil, fmt.Errorf("failed to get team: %w", err)
		}
		switch {
		case team.ManagerID != nil && *team.ManagerID == actor.ID:
		case actor.IsAdmin() && team.ManagerID != nil:
			managerID = *team.ManagerID
		case actor.IsAdmin():
		default:
			return uuid.Nil, nil, apperrors.ErrNotTeamManager
		}
		teamDevs, err := s.teamRepo.GetDeveloperIDs(team.ID)
		if err != nil {
			return uuid.Nil, nil, fmt.Errorf("failed to get team developers: %w", err)
		}
		ids = append(ids, teamDevs...)
	}
	ids = append(ids, req.DeveloperIDs...)

	seen := make(map[uuid.UUID]bool, len(ids))
	unique := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if id == uuid.Nil || seen[id] || id == managerID {
			continue
		}
		seen[id] = true
		unique = append(unique, id)
	}
	return managerID, unique, nil
}

// BulkCreate creates one session per developer that has none with this manager for the month.
// Re-running the same request skips everyone it already covered.
func (s *OneOnOneService) BulkCreate(ctx context.Context, actor *models.User, req *BulkCreateRequest) (*BulkCreateResult, error) {
	if err := RequireManagerOrAdmin(actor); err != nil {
		return nil, err
	}
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if req.TeamID == nil && len(req.DeveloperIDs) == 0 {
		return nil, apperrors.ErrDeveloperIDsRequired
	}

	managerID, developerIDs, err := s.bulkTargets(actor, req)
	if err != nil {
		return nil, err
	}

	result := &BulkCreateResult{FanOutSummary: *newFanOutSummary(), Sessions: []models.OneOnOne{}}
	for _, developerID := range developerIDs {
		key := developerID.String()

		exists, err := s.repo.ExistsFor(developerID, managerID, req.Month)
		if err != nil {
			result.fail(key, err)
			continue
		}
		if exists {
			result.Skipped++
			continue
		}

		if !actor.IsAdmin() {
			ok, err := s.teamRepo.IsManagerOf(managerID, developerID)
			if err != nil {
				result.fail(key, err)
				continue
			}
			if !ok {
				result.fail(key, apperrors.ErrDeveloperNotInTeam)
				continue
			}
		}

		session, err := s.createFor(developerID, managerID, req.Month, req.Title)
		if err != nil {
			result.fail(key, err)
			continue
		}
		result.Created++
		result.Sessions = append(result.Sessions, *session)
		s.notifyCreated(ctx, session)
	}

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"month": req.Month, "created": result.Created, "skipped": result.Skipped, "failed": result.Failed,
	}).Info("Bulk one-on-one creation finished")
	return result, nil
}

// List returns the sessions visible to the actor: their own as developer, the ones they
// manage, or everything for admins.
func (s *OneOnOneService) List(actor *models.User, req *ListOneOnOnesRequest) (*OneOnOneListResponse, error) {
	if req.Month != "" && !models.IsValidMonth(req.Month) {
		return nil, apperrors.ErrInvalidMonth
	}
	if req.Status != "" && !req.Status.IsValid() {
		return nil, apperrors.ErrInvalidStatus
	}

	filter := repository.OneOnOneFilter{Month: req.Month, Status: req.Status}
	switch {
	case req.As == string(models.ParticipantDeveloper):
		filter.DeveloperID = &actor.ID
	case req.As == string(models.ParticipantManager):
		filter.ManagerID = &actor.ID
	case actor.IsAdmin():
	case actor.Role == models.UserRoleManager:
		filter.ManagerID = &actor.ID
	default:
		filter.DeveloperID = &actor.ID
	}

	page, pageSize, limit, offset := normalizePage(req.Page, req.PageSize)
	sessions, total, err := s.repo.List(filter, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list one-on-ones: %w", err)
	}
	return &OneOnOneListResponse{OneOnOnes: sessions, Total: total, Page: page, PageSize: pageSize}, nil
}

// Get returns a session with answers, notes, action items and metrics
func (s *OneOnOneService) Get(actor *models.User, id uuid.UUID) (*models.OneOnOne, error) {
	session, err := s.repo.GetDetail(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrOneOnOneNotFound
		}
		return nil, fmt.Errorf("failed to get one-on-one: %w", err)
	}
	if err := RequireSessionParticipant(actor, session); err != nil {
		return nil, err
	}
	return session, nil
}

// Delete deletes a draft session; only its manager or an admin may do so
func (s *OneOnOneService) Delete(actor *models.User, id uuid.UUID) error {
	if err := RequireManagerOrAdmin(actor); err != nil {
		return err
	}
	session, err := s.getSession(id)
	if err != nil {
		return err
	}
	if !actor.IsAdmin() && session.ManagerID != actor.ID {
		return apperrors.ErrNotParticipant
	}
	if session.Status != models.OneOnOneStatusDraft {
		return apperrors.ErrOnlyDraftDeletable
	}
	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete one-on-one: %w", err)
	}
	return nil
}

// TransitionStatus moves a session to a new status. The write is compare-and-set against the
// status read here, so two concurrent transitions cannot both succeed. Completing a session
// runs its metrics job; a failing job is logged and retried later, the status change stands.
func (s *OneOnOneService) TransitionStatus(ctx context.Context, actor *models.User, id uuid.UUID, req *UpdateStatusRequest) (*models.OneOnOne, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	session, err := s.getSession(id)
	if err != nil {
		return nil, err
	}
	if err := CheckTransition(actor, session, req.Status); err != nil {
		return nil, err
	}

	if err := s.repo.TransitionStatus(id, session.Status, req.Status, s.now()); err != nil {
		if errors.Is(err, repository.ErrStaleWrite) {
			return nil, apperrors.ErrStaleStatus
		}
		return nil, fmt.Errorf("failed to update status: %w", err)
	}

	log := logger.WithContext(ctx).WithFields(map[string]interface{}{
		"one_on_one_id": id.String(), "from": session.Status, "to": req.Status,
	})
	log.Info("One-on-one status changed")

	if req.Status == models.OneOnOneStatusCompleted {
		if err := s.metrics.RunJob(id); err != nil {
			log.WithError(err).Warn("Metrics computation failed; job left for retry")
		}
	}

	switch req.Status {
	case models.OneOnOneStatusSubmitted:
		s.notify(ctx, session.ManagerID, models.NotificationTypeOneOnOneSubmitted,
			"One-on-one submitted", fmt.Sprintf("Your developer submitted the %s one-on-one.", session.Month), id)
	case models.OneOnOneStatusReviewed:
		s.notify(ctx, session.DeveloperID, models.NotificationTypeOneOnOneReviewed,
			"One-on-one reviewed", fmt.Sprintf("Your manager reviewed the %s one-on-one.", session.Month), id)
	case models.OneOnOneStatusCompleted:
		s.notify(ctx, session.DeveloperID, models.NotificationTypeOneOnOneCompleted,
			"One-on-one completed", fmt.Sprintf("The %s one-on-one is completed.", session.Month), id)
	}

	return s.getSession(id)
}

// SendReminders notifies the developers whose sessions with the actor are still draft for the month
func (s *OneOnOneService) SendReminders(ctx context.Context, actor *models.User, req *ReminderRequest) (*FanOutSummary, error) {
	if err := RequireManagerOrAdmin(actor); err != nil {
		return nil, err
	}
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	filter := repository.OneOnOneFilter{ManagerID: &actor.ID, Month: req.Month, Status: models.OneOnOneStatusDraft}
	sessions, _, err := s.repo.List(filter, -1, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to list draft one-on-ones: %w", err)
	}

	summary := newFanOutSummary()
	for _, session := range sessions {
		n := &models.Notification{
			UserID:      session.DeveloperID,
			Type:        models.NotificationTypeOneOnOneReminder,
			Title:       "One-on-one reminder",
			Message:     fmt.Sprintf("Please complete and submit your %s one-on-one.", session.Month),
			RelatedType: relatedTypeOneOnOne,
			RelatedID:   &session.ID,
		}
		if err := s.notifications.Notify(ctx, n); err != nil {
			summary.fail(session.ID.String(), err)
			continue
		}
		summary.Created++
	}
	return summary, nil
}
