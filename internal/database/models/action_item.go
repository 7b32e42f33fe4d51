package models

import (
	"time"

	"github.com/google/uuid"
)

// ActionItem is a follow-up task agreed during a one-on-one
type ActionItem struct {
	BaseModel
	OneOnOneID  uuid.UUID        `json:"one_on_one_id" gorm:"type:uuid;not null;index"`
	Description string           `json:"description" gorm:"type:text;not null"`
	AssignedTo  Participant      `json:"assigned_to" gorm:"type:varchar(20);not null"`
	Status      ActionItemStatus `json:"status" gorm:"type:varchar(20);not null;default:'pending';index"`
	DueDate     *time.Time       `json:"due_date,omitempty" gorm:"type:date;index"`
	CompletedAt *time.Time       `json:"completed_at,omitempty"`
	CreatedBy   uuid.UUID        `json:"created_by" gorm:"type:uuid;not null"`
	OneOnOne    *OneOnOne        `json:"one_on_one,omitempty" gorm:"foreignKey:OneOnOneID"`
}

// TableName returns the table name for ActionItem
func (ActionItem) TableName() string {
	return "action_items"
}

// Assignee returns the user id the item is assigned to; the one-on-one must be loaded
func (a *ActionItem) Assignee() (uuid.UUID, bool) {
	if a.OneOnOne == nil {
		return uuid.Nil, false
	}
	return a.OneOnOne.UserFor(a.AssignedTo), true
}
