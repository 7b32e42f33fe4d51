package models

import (
	"github.com/google/uuid"
)

// Answer holds one participant's response to one question in a one-on-one
type Answer struct {
	BaseModel
	OneOnOneID uuid.UUID   `json:"one_on_one_id" gorm:"type:uuid;not null;uniqueIndex:idx_answers_slot,priority:1"`
	QuestionID uuid.UUID   `json:"question_id" gorm:"type:uuid;not null;uniqueIndex:idx_answers_slot,priority:2"`
	AnswerType Participant `json:"answer_type" gorm:"type:varchar(20);not null;uniqueIndex:idx_answers_slot,priority:3"`
	Rating     *int        `json:"rating,omitempty"`
	TextAnswer *string     `json:"text_answer,omitempty" gorm:"type:text"`
	Question   *Question   `json:"question,omitempty" gorm:"foreignKey:QuestionID"`
}

// TableName returns the table name for Answer
func (Answer) TableName() string {
	return "answers"
}

// Note is free text attached to a one-on-one, one per note type
type Note struct {
	BaseModel
	OneOnOneID uuid.UUID `json:"one_on_one_id" gorm:"type:uuid;not null;uniqueIndex:idx_notes_slot,priority:1"`
	NoteType   NoteType  `json:"note_type" gorm:"type:varchar(30);not null;uniqueIndex:idx_notes_slot,priority:2"`
	Content    string    `json:"content" gorm:"type:text;not null"`
	CreatedBy  uuid.UUID `json:"created_by" gorm:"type:uuid;not null"`
}

// TableName returns the table name for Note
func (Note) TableName() string {
	return "notes"
}
