package repository

import (
	"time"

	"one-on-one-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Matches action items whose assignee, resolved through the parent session, is the given user
const assignedToUserClause = "(action_items.assigned_to = 'developer' AND one_on_ones.developer_id = ?) OR (action_items.assigned_to = 'manager' AND one_on_ones.manager_id = ?)"

// ActionItemRepository handles database operations for action items
type ActionItemRepository struct {
	db *gorm.DB
}

// NewActionItemRepository creates a new action item repository
func NewActionItemRepository(db *gorm.DB) *ActionItemRepository {
	return &ActionItemRepository{db: db}
}

// Create creates a new action item
func (r *ActionItemRepository) Create(item *models.ActionItem) error {
	return r.db.Omit("OneOnOne").Create(item).Error
}

// GetByID retrieves an action item with its session
func (r *ActionItemRepository) GetByID(id uuid.UUID) (*models.ActionItem, error) {
	var item models.ActionItem
	err := r.db.Preload("OneOnOne").First(&item, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// Update updates an action item
func (r *ActionItemRepository) Update(item *models.ActionItem) error {
	return r.db.Omit("OneOnOne").Save(item).Error
}

// Delete deletes an action item
func (r *ActionItemRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.ActionItem{}, "id = ?", id).Error
}

func (r *ActionItemRepository) openItems() *gorm.DB {
	return r.db.Model(&models.ActionItem{}).
		Joins("JOIN one_on_ones ON one_on_ones.id = action_items.one_on_one_id").
		Where("action_items.status <> ?", models.ActionItemStatusCompleted)
}

// ListAssignedTo retrieves the action items assigned to a user, optionally filtered by status
func (r *ActionItemRepository) ListAssignedTo(userID uuid.UUID, status models.ActionItemStatus) ([]models.ActionItem, error) {
	var items []models.ActionItem
	query := r.db.Preload("OneOnOne").
		Joins("JOIN one_on_ones ON one_on_ones.id = action_items.one_on_one_id").
		Where(assignedToUserClause, userID, userID)
	if status != "" {
		query = query.Where("action_items.status = ?", status)
	}
	err := query.Order("action_items.due_date ASC NULLS LAST").Order("action_items.created_at ASC").Find(&items).Error
	return items, err
}

// GetOverdue retrieves open items whose due date is before today
func (r *ActionItemRepository) GetOverdue(today time.Time) ([]models.ActionItem, error) {
	var items []models.ActionItem
	err := r.openItems().Preload("OneOnOne").
		Where("action_items.due_date < ?", today.Format(time.DateOnly)).
		Order("action_items.due_date ASC").Find(&items).Error
	return items, err
}

// GetDueBetween retrieves open items due on a day in [from, to]
func (r *ActionItemRepository) GetDueBetween(from, to time.Time) ([]models.ActionItem, error) {
	var items []models.ActionItem
	err := r.openItems().Preload("OneOnOne").
		Where("action_items.due_date >= ? AND action_items.due_date <= ?", from.Format(time.DateOnly), to.Format(time.DateOnly)).
		Order("action_items.due_date ASC").Find(&items).Error
	return items, err
}

// CountOpenAssignedTo returns how many open items are assigned to a user
func (r *ActionItemRepository) CountOpenAssignedTo(userID uuid.UUID) (int64, error) {
	var count int64
	err := r.openItems().Where(assignedToUserClause, userID, userID).Count(&count).Error
	return count, err
}

// CountOverdueForManager returns how many overdue items exist across a manager's sessions
func (r *ActionItemRepository) CountOverdueForManager(managerID uuid.UUID, today time.Time) (int64, error) {
	var count int64
	err := r.openItems().
		Where("one_on_ones.manager_id = ? AND action_items.due_date < ?", managerID, today.Format(time.DateOnly)).
		Count(&count).Error
	return count, err
}
