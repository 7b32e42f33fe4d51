package models

import (
	"time"

	"github.com/google/uuid"
)

// Notification is an in-app message addressed to one user
type Notification struct {
	BaseModel
	UserID      uuid.UUID        `json:"user_id" gorm:"type:uuid;not null;index:idx_notifications_user_read,priority:1"`
	Type        NotificationType `json:"type" gorm:"type:varchar(40);not null;index:idx_notifications_related,priority:2"`
	Title       string           `json:"title" gorm:"size:200;not null"`
	Message     string           `json:"message" gorm:"type:text"`
	RelatedType string           `json:"related_type,omitempty" gorm:"size:40"`
	RelatedID   *uuid.UUID       `json:"related_id,omitempty" gorm:"type:uuid;index:idx_notifications_related,priority:1"`
	IsRead      bool             `json:"is_read" gorm:"not null;default:false;index:idx_notifications_user_read,priority:2"`
	ReadAt      *time.Time       `json:"read_at,omitempty"`
}

// TableName returns the table name for Notification
func (Notification) TableName() string {
	return "notifications"
}
