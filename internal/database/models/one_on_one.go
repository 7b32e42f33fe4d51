package models

import (
	"time"

	"github.com/google/uuid"
)

// OneOnOne is a monthly review between a developer and their manager.
// (developer, manager, month, session_number) is unique; extra sessions in a month get the next number.
type OneOnOne struct {
	BaseModel
	DeveloperID   uuid.UUID      `json:"developer_id" gorm:"type:uuid;not null;uniqueIndex:idx_one_on_ones_slot,priority:1"`
	ManagerID     uuid.UUID      `json:"manager_id" gorm:"type:uuid;not null;uniqueIndex:idx_one_on_ones_slot,priority:2;index"`
	Month         string         `json:"month" gorm:"size:7;not null;uniqueIndex:idx_one_on_ones_slot,priority:3;index"`
	SessionNumber int            `json:"session_number" gorm:"not null;uniqueIndex:idx_one_on_ones_slot,priority:4"`
	Title         string         `json:"title" gorm:"size:200"`
	Status        OneOnOneStatus `json:"status" gorm:"type:varchar(20);not null;default:'draft';index"`
	SubmittedAt   *time.Time     `json:"submitted_at,omitempty"`
	ReviewedAt    *time.Time     `json:"reviewed_at,omitempty"`
	CompletedAt   *time.Time     `json:"completed_at,omitempty"`

	Developer   *User            `json:"developer,omitempty" gorm:"foreignKey:DeveloperID"`
	Manager     *User            `json:"manager,omitempty" gorm:"foreignKey:ManagerID"`
	Answers     []Answer         `json:"answers,omitempty" gorm:"foreignKey:OneOnOneID;constraint:OnDelete:CASCADE"`
	Notes       []Note           `json:"notes,omitempty" gorm:"foreignKey:OneOnOneID;constraint:OnDelete:CASCADE"`
	ActionItems []ActionItem     `json:"action_items,omitempty" gorm:"foreignKey:OneOnOneID;constraint:OnDelete:CASCADE"`
	Metrics     *MetricsSnapshot `json:"metrics,omitempty" gorm:"foreignKey:OneOnOneID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for OneOnOne
func (OneOnOne) TableName() string {
	return "one_on_ones"
}

// ParticipantOf returns which side of the one-on-one userID is on
func (o *OneOnOne) ParticipantOf(userID uuid.UUID) (Participant, bool) {
	switch userID {
	case o.DeveloperID:
		return ParticipantDeveloper, true
	case o.ManagerID:
		return ParticipantManager, true
	}
	return "", false
}

// UserFor returns the user id standing on the given side
func (o *OneOnOne) UserFor(p Participant) uuid.UUID {
	if p == ParticipantManager {
		return o.ManagerID
	}
	return o.DeveloperID
}
