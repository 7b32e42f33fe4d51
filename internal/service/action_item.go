package service

import (
	"errors"
	"fmt"
	"time"

	"one-on-one-backend/internal/database/models"
	apperrors "one-on-one-backend/internal/errors"
	"one-on-one-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ActionItemService manages the action items agreed on in a one-on-one
type ActionItemService struct {
	repo        repository.ActionItemRepositoryInterface
	sessionRepo repository.OneOnOneRepositoryInterface
	validator   *validator.Validate
	now         func() time.Time
}

// NewActionItemService creates a new action item service
func NewActionItemService(repo repository.ActionItemRepositoryInterface, sessionRepo repository.OneOnOneRepositoryInterface, validator *validator.Validate) *ActionItemService {
	return &ActionItemService{
		repo:        repo,
		sessionRepo: sessionRepo,
		validator:   validator,
		now:         time.Now,
	}
}

// CreateActionItemRequest represents a new action item; DueDate is YYYY-MM-DD
type CreateActionItemRequest struct {
	Description string             `json:"description" validate:"required,max=2000"`
	AssignedTo  models.Participant `json:"assigned_to" validate:"required,oneof=developer manager"`
	DueDate     string             `json:"due_date,omitempty"`
}

// UpdateActionItemRequest represents a partial update. An empty DueDate clears the due date.
type UpdateActionItemRequest struct {
	Description *string                  `json:"description,omitempty" validate:"omitempty,min=1,max=2000"`
	AssignedTo  *models.Participant      `json:"assigned_to,omitempty" validate:"omitempty,oneof=developer manager"`
	Status      *models.ActionItemStatus `json:"status,omitempty" validate:"omitempty,oneof=pending in_progress completed"`
	DueDate     *string                  `json:"due_date,omitempty"`
}

func parseDueDate(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	d, err := time.Parse(time.DateOnly, s)
	if err != nil {
		return nil, apperrors.ErrInvalidDueDate
	}
	return &d, nil
}

func (s *ActionItemService) getItem(id uuid.UUID) (*models.ActionItem, error) {
	item, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrActionItemNotFound
		}
		return nil, fmt.Errorf("failed to get action item: %w", err)
	}
	if item.OneOnOne == nil {
		return nil, apperrors.ErrOneOnOneNotFound
	}
	return item, nil
}

// Create adds an action item to a session the actor takes part in
func (s *ActionItemService) Create(actor *models.User, sessionID uuid.UUID, req *CreateActionItemRequest) (*models.ActionItem, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	dueDate, err := parseDueDate(req.DueDate)
	if err != nil {
		return nil, err
	}

	session, err := s.sessionRepo.GetByID(sessionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrOneOnOneNotFound
		}
		return nil, fmt.Errorf("failed to get one-on-one: %w", err)
	}
	if err := RequireSessionParticipant(actor, session); err != nil {
		return nil, err
	}

	item := &models.ActionItem{
		OneOnOneID:  session.ID,
		Description: req.Description,
		AssignedTo:  req.AssignedTo,
		Status:      models.ActionItemStatusPending,
		DueDate:     dueDate,
		CreatedBy:   actor.ID,
	}
	if err := s.repo.Create(item); err != nil {
		return nil, fmt.Errorf("failed to create action item: %w", err)
	}
	return item, nil
}

// Update changes an action item; completing it stamps completed_at, reopening clears it
func (s *ActionItemService) Update(actor *models.User, id uuid.UUID, req *UpdateActionItemRequest) (*models.ActionItem, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	item, err := s.getItem(id)
	if err != nil {
		return nil, err
	}
	if err := RequireSessionParticipant(actor, item.OneOnOne); err != nil {
		return nil, err
	}

	if req.Description != nil {
		item.Description = *req.Description
	}
	if req.AssignedTo != nil {
		item.AssignedTo = *req.AssignedTo
	}
	if req.DueDate != nil {
		dueDate, err := parseDueDate(*req.DueDate)
		if err != nil {
			return nil, err
		}
		item.DueDate = dueDate
	}
	if req.Status != nil && *req.Status != item.Status {
		item.Status = *req.Status
		if item.Status == models.ActionItemStatusCompleted {
			now := s.now()
			item.CompletedAt = &now
		} else {
			item.CompletedAt = nil
		}
	}

	if err := s.repo.Update(item); err != nil {
		return nil, fmt.Errorf("failed to update action item: %w", err)
	}
	return item, nil
}

// Delete removes an action item; allowed for its creator, the session manager and admins
func (s *ActionItemService) Delete(actor *models.User, id uuid.UUID) error {
	item, err := s.getItem(id)
	if err != nil {
		return err
	}
	if err := RequireSessionParticipant(actor, item.OneOnOne); err != nil {
		return err
	}
	if !actor.IsAdmin() && actor.ID != item.CreatedBy && actor.ID != item.OneOnOne.ManagerID {
		return apperrors.NewAuthorizationError("only the creator or the session manager can delete this action item")
	}
	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete action item: %w", err)
	}
	return nil
}

// ListMine returns the action items assigned to the actor
func (s *ActionItemService) ListMine(actor *models.User, status models.ActionItemStatus) ([]models.ActionItem, error) {
	if status != "" && !status.IsValid() {
		return nil, apperrors.NewValidationError("status", "invalid action item status")
	}
	items, err := s.repo.ListAssignedTo(actor.ID, status)
	if err != nil {
		return nil, fmt.Errorf("failed to list action items: %w", err)
	}
	return items, nil
}
