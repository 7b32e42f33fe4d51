package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// MetricsBreakdown is the per-session rating summary stored with a snapshot
type MetricsBreakdown struct {
	TotalQuestions       int      `json:"total_questions"`
	RatingQuestions      int      `json:"rating_questions"`
	DeveloperRatingCount int      `json:"developer_rating_count"`
	ManagerRatingCount   int      `json:"manager_rating_count"`
	DeveloperAvgRating   *float64 `json:"developer_avg_rating"`
	ManagerAvgRating     *float64 `json:"manager_avg_rating"`
	RatingAlignment      *float64 `json:"rating_alignment"`
}

// MetricsSnapshot is the derived summary of one one-on-one; at most one per session
type MetricsSnapshot struct {
	BaseModel
	OneOnOneID   uuid.UUID                            `json:"one_on_one_id" gorm:"type:uuid;not null;uniqueIndex"`
	DeveloperID  uuid.UUID                            `json:"developer_id" gorm:"type:uuid;not null;index"`
	ManagerID    uuid.UUID                            `json:"manager_id" gorm:"type:uuid;not null;index"`
	Month        string                               `json:"month" gorm:"size:7;not null;index"`
	AverageScore *float64                             `json:"average_score"`
	Breakdown    datatypes.JSONType[MetricsBreakdown] `json:"breakdown" gorm:"type:jsonb;not null"`
}

// TableName returns the table name for MetricsSnapshot
func (MetricsSnapshot) TableName() string {
	return "metrics_snapshots"
}

// MetricsJob records the follow-up computation owed to a completed one-on-one
type MetricsJob struct {
	BaseModel
	OneOnOneID    uuid.UUID        `json:"one_on_one_id" gorm:"type:uuid;not null;uniqueIndex"`
	Status        MetricsJobStatus `json:"status" gorm:"type:varchar(20);not null;default:'pending';index"`
	Attempts      int              `json:"attempts" gorm:"not null;default:0"`
	LastError     string           `json:"last_error,omitempty" gorm:"type:text"`
	LastAttemptAt *time.Time       `json:"last_attempt_at,omitempty"`
	SucceededAt   *time.Time       `json:"succeeded_at,omitempty"`
}

// TableName returns the table name for MetricsJob
func (MetricsJob) TableName() string {
	return "metrics_jobs"
}
