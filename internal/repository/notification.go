package repository

import (
	"time"

	"one-on-one-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// NotificationRepository handles database operations for notifications
type NotificationRepository struct {
	db *gorm.DB
}

// NewNotificationRepository creates a new notification repository
func NewNotificationRepository(db *gorm.DB) *NotificationRepository {
	return &NotificationRepository{db: db}
}

// Create creates a new notification
func (r *NotificationRepository) Create(notification *models.Notification) error {
	return r.db.Create(notification).Error
}

// GetByID retrieves a notification by ID
func (r *NotificationRepository) GetByID(id uuid.UUID) (*models.Notification, error) {
	var notification models.Notification
	err := r.db.First(&notification, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &notification, nil
}

// ListForUser retrieves a user's notifications, newest first, with pagination
func (r *NotificationRepository) ListForUser(userID uuid.UUID, unreadOnly bool, limit, offset int) ([]models.Notification, int64, error) {
	var notifications []models.Notification
	var total int64

	query := r.db.Model(&models.Notification{}).Where("user_id = ?", userID)
	if unreadOnly {
		query = query.Where("is_read = ?", false)
	}

	// Get total count
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	// Get paginated results
	err := query.Order("created_at DESC").Limit(limit).Offset(offset).Find(&notifications).Error
	if err != nil {
		return nil, 0, err
	}

	return notifications, total, nil
}

// CountUnread returns the number of unread notifications of a user
func (r *NotificationRepository) CountUnread(userID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.Model(&models.Notification{}).Where("user_id = ? AND is_read = ?", userID, false).Count(&count).Error
	return count, err
}

// MarkRead marks one notification as read
func (r *NotificationRepository) MarkRead(id uuid.UUID, at time.Time) error {
	return r.db.Model(&models.Notification{}).
		Where("id = ? AND is_read = ?", id, false).
		Updates(map[string]interface{}{"is_read": true, "read_at": at}).Error
}

// MarkAllRead marks every unread notification of a user as read and returns how many changed
func (r *NotificationRepository) MarkAllRead(userID uuid.UUID, at time.Time) (int64, error) {
	result := r.db.Model(&models.Notification{}).
		Where("user_id = ? AND is_read = ?", userID, false).
		Updates(map[string]interface{}{"is_read": true, "read_at": at})
	return result.RowsAffected, result.Error
}

// ExistsForRelated reports whether a notification of this type already references the entity
func (r *NotificationRepository) ExistsForRelated(notificationType models.NotificationType, relatedID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.Model(&models.Notification{}).
		Where("type = ? AND related_id = ?", notificationType, relatedID).
		Count(&count).Error
	return count > 0, err
}

// ExistsForRelatedSince is ExistsForRelated restricted to notifications created at or after since
func (r *NotificationRepository) ExistsForRelatedSince(notificationType models.NotificationType, relatedID uuid.UUID, since time.Time) (bool, error) {
	var count int64
	err := r.db.Model(&models.Notification{}).
		Where("type = ? AND related_id = ? AND created_at >= ?", notificationType, relatedID, since).
		Count(&count).Error
	return count > 0, err
}
