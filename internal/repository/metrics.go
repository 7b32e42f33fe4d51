package repository

import (
	"time"

	"one-on-one-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// MetricsRepository handles database operations for metrics snapshots and jobs
type MetricsRepository struct {
	db *gorm.DB
}

// NewMetricsRepository creates a new metrics repository
func NewMetricsRepository(db *gorm.DB) *MetricsRepository {
	return &MetricsRepository{db: db}
}

// UpsertSnapshot writes the snapshot of a session, replacing any previous one
func (r *MetricsRepository) UpsertSnapshot(snapshot *models.MetricsSnapshot) error {
	err := r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "one_on_one_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"developer_id", "manager_id", "month", "average_score", "breakdown", "updated_at"}),
	}).Create(snapshot).Error
	if err != nil {
		return err
	}

	var stored models.MetricsSnapshot
	if err := r.db.First(&stored, "one_on_one_id = ?", snapshot.OneOnOneID).Error; err != nil {
		return err
	}
	*snapshot = stored
	return nil
}

// GetByOneOnOneID retrieves the snapshot of a session
func (r *MetricsRepository) GetByOneOnOneID(oneOnOneID uuid.UUID) (*models.MetricsSnapshot, error) {
	var snapshot models.MetricsSnapshot
	err := r.db.First(&snapshot, "one_on_one_id = ?", oneOnOneID).Error
	if err != nil {
		return nil, err
	}
	return &snapshot, nil
}

// ListForDeveloper retrieves a developer's snapshots between two months inclusive; empty bounds are open
func (r *MetricsRepository) ListForDeveloper(developerID uuid.UUID, fromMonth, toMonth string) ([]models.MetricsSnapshot, error) {
	var snapshots []models.MetricsSnapshot
	query := r.db.Where("developer_id = ?", developerID)
	if fromMonth != "" {
		query = query.Where("month >= ?", fromMonth)
	}
	if toMonth != "" {
		query = query.Where("month <= ?", toMonth)
	}
	err := query.Order("month ASC").Order("created_at ASC").Find(&snapshots).Error
	return snapshots, err
}

// ListForDevelopersInMonth retrieves the snapshots of the given developers for one month,
// limited to sessions held with managerID when it is set
func (r *MetricsRepository) ListForDevelopersInMonth(developerIDs []uuid.UUID, managerID *uuid.UUID, month string) ([]models.MetricsSnapshot, error) {
	var snapshots []models.MetricsSnapshot
	if len(developerIDs) == 0 {
		return snapshots, nil
	}
	query := r.db.Where("developer_id IN ? AND month = ?", developerIDs, month)
	if managerID != nil {
		query = query.Where("manager_id = ?", *managerID)
	}
	err := query.Find(&snapshots).Error
	return snapshots, err
}

// enqueueMetricsJob creates the job of a session, or resets an existing one to pending
func enqueueMetricsJob(tx *gorm.DB, oneOnOneID uuid.UUID) error {
	job := models.MetricsJob{OneOnOneID: oneOnOneID, Status: models.MetricsJobStatusPending}
	return tx.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "one_on_one_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"status":     models.MetricsJobStatusPending,
			"attempts":   0,
			"last_error": "",
			"updated_at": time.Now(),
		}),
	}).Create(&job).Error
}

// EnqueueJob schedules a (re)computation of a session's metrics
func (r *MetricsRepository) EnqueueJob(oneOnOneID uuid.UUID) error {
	return enqueueMetricsJob(r.db, oneOnOneID)
}

// GetJob retrieves the metrics job of a session
func (r *MetricsRepository) GetJob(oneOnOneID uuid.UUID) (*models.MetricsJob, error) {
	var job models.MetricsJob
	err := r.db.First(&job, "one_on_one_id = ?", oneOnOneID).Error
	if err != nil {
		return nil, err
	}
	return &job, nil
}

// SaveJob persists the outcome of a job attempt
func (r *MetricsRepository) SaveJob(job *models.MetricsJob) error {
	return r.db.Save(job).Error
}

// ListRetryableJobs retrieves pending or failed jobs that have not used up their attempts, oldest first
func (r *MetricsRepository) ListRetryableJobs(maxAttempts, limit int) ([]models.MetricsJob, error) {
	var jobs []models.MetricsJob
	err := r.db.
		Where("status IN ? AND attempts < ?", []models.MetricsJobStatus{models.MetricsJobStatusPending, models.MetricsJobStatusFailed}, maxAttempts).
		Order("updated_at ASC").Limit(limit).Find(&jobs).Error
	return jobs, err
}
