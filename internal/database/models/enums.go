package models

import (
	"regexp"
	"time"
)

// UserRole is the application-wide role of a user
type UserRole string

const (
	UserRoleAdmin     UserRole = "admin"
	UserRoleManager   UserRole = "manager"
	UserRoleDeveloper UserRole = "developer"
)

// OneOnOneStatus is the lifecycle state of a one-on-one
type OneOnOneStatus string

const (
	OneOnOneStatusDraft     OneOnOneStatus = "draft"
	OneOnOneStatusSubmitted OneOnOneStatus = "submitted"
	OneOnOneStatusReviewed  OneOnOneStatus = "reviewed"
	OneOnOneStatusCompleted OneOnOneStatus = "completed"
)

// QuestionType defines how a question is answered
type QuestionType string

const (
	QuestionTypeRating5  QuestionType = "rating_1_5"
	QuestionTypeRating10 QuestionType = "rating_1_10"
	QuestionTypeText     QuestionType = "text"
	QuestionTypeYesNo    QuestionType = "yes_no"
)

// QuestionScope defines who a question applies to
type QuestionScope string

const (
	QuestionScopeCompany QuestionScope = "company"
	QuestionScopeTeam    QuestionScope = "team"
)

// Participant identifies one side of a one-on-one; used for answer authorship and action item assignment
type Participant string

const (
	ParticipantDeveloper Participant = "developer"
	ParticipantManager   Participant = "manager"
)

// NoteType distinguishes the developer's notes from the manager's feedback
type NoteType string

const (
	NoteTypeDeveloperNotes  NoteType = "developer_notes"
	NoteTypeManagerFeedback NoteType = "manager_feedback"
)

// ActionItemStatus is the progress of an action item
type ActionItemStatus string

const (
	ActionItemStatusPending    ActionItemStatus = "pending"
	ActionItemStatusInProgress ActionItemStatus = "in_progress"
	ActionItemStatusCompleted  ActionItemStatus = "completed"
)

// NotificationType categorizes notifications
type NotificationType string

const (
	NotificationTypeOneOnOneCreated   NotificationType = "one_on_one_created"
	NotificationTypeOneOnOneSubmitted NotificationType = "one_on_one_submitted"
	NotificationTypeOneOnOneReviewed  NotificationType = "one_on_one_reviewed"
	NotificationTypeOneOnOneCompleted NotificationType = "one_on_one_completed"
	NotificationTypeOneOnOneReminder  NotificationType = "one_on_one_reminder"
	NotificationTypeActionItemOverdue NotificationType = "action_item_overdue"
	NotificationTypeActionItemDueSoon NotificationType = "action_item_due_soon"
	NotificationTypeGeneral           NotificationType = "general"
)

// MetricsJobStatus tracks the follow-up metrics computation of a completed one-on-one
type MetricsJobStatus string

const (
	MetricsJobStatusPending   MetricsJobStatus = "pending"
	MetricsJobStatusSucceeded MetricsJobStatus = "succeeded"
	MetricsJobStatusFailed    MetricsJobStatus = "failed"
)

// IsValid checks if the UserRole is valid
func (r UserRole) IsValid() bool {
	switch r {
	case UserRoleAdmin, UserRoleManager, UserRoleDeveloper:
		return true
	}
	return false
}

// IsValid checks if the OneOnOneStatus is valid
func (s OneOnOneStatus) IsValid() bool {
	switch s {
	case OneOnOneStatusDraft, OneOnOneStatusSubmitted, OneOnOneStatusReviewed, OneOnOneStatusCompleted:
		return true
	}
	return false
}

// IsValid checks if the QuestionType is valid
func (t QuestionType) IsValid() bool {
	switch t {
	case QuestionTypeRating5, QuestionTypeRating10, QuestionTypeText, QuestionTypeYesNo:
		return true
	}
	return false
}

// IsRating reports whether answers to this question type carry a numeric rating
func (t QuestionType) IsRating() bool {
	return t == QuestionTypeRating5 || t == QuestionTypeRating10
}

// MaxRating returns the upper bound of the rating scale, or 0 for non-rating types
func (t QuestionType) MaxRating() int {
	switch t {
	case QuestionTypeRating5:
		return 5
	case QuestionTypeRating10:
		return 10
	}
	return 0
}

// IsValid checks if the QuestionScope is valid
func (s QuestionScope) IsValid() bool {
	return s == QuestionScopeCompany || s == QuestionScopeTeam
}

// IsValid checks if the Participant is valid
func (p Participant) IsValid() bool {
	return p == ParticipantDeveloper || p == ParticipantManager
}

// IsValid checks if the NoteType is valid
func (t NoteType) IsValid() bool {
	return t == NoteTypeDeveloperNotes || t == NoteTypeManagerFeedback
}

// Author returns the participant allowed to write this note type
func (t NoteType) Author() Participant {
	if t == NoteTypeManagerFeedback {
		return ParticipantManager
	}
	return ParticipantDeveloper
}

// IsValid checks if the ActionItemStatus is valid
func (s ActionItemStatus) IsValid() bool {
	switch s {
	case ActionItemStatusPending, ActionItemStatusInProgress, ActionItemStatusCompleted:
		return true
	}
	return false
}

var monthPattern = regexp.MustCompile(`^\d{4}-(0[1-9]|1[0-2])$`)

// IsValidMonth reports whether s is a calendar month formatted YYYY-MM
func IsValidMonth(s string) bool {
	return monthPattern.MatchString(s)
}

// MonthOf formats t as YYYY-MM
func MonthOf(t time.Time) string {
	return t.Format("2006-01")
}
