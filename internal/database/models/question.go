package models

import (
	"github.com/google/uuid"
)

// Question is a recurring prompt answered in every applicable one-on-one
type Question struct {
	BaseModel
	Text         string        `json:"text" gorm:"type:text;not null"`
	QuestionType QuestionType  `json:"question_type" gorm:"type:varchar(20);not null"`
	Scope        QuestionScope `json:"scope" gorm:"type:varchar(20);not null;default:'company'"`
	TeamID       *uuid.UUID    `json:"team_id,omitempty" gorm:"type:uuid;index"`
	Category     string        `json:"category" gorm:"size:100"`
	IsActive     bool          `json:"is_active" gorm:"not null;index"`
	SortOrder    int           `json:"sort_order" gorm:"not null;default:0"`
}

// TableName returns the table name for Question
func (Question) TableName() string {
	return "questions"
}
