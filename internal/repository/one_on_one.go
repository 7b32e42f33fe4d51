package repository

import (
	"errors"
	"time"

	"one-on-one-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Number of times a session insert is retried after losing the session number race
const maxSessionNumberAttempts = 5

// OneOnOneRepository handles database operations for one-on-ones
type OneOnOneRepository struct {
	db *gorm.DB
}

// NewOneOnOneRepository creates a new one-on-one repository
func NewOneOnOneRepository(db *gorm.DB) *OneOnOneRepository {
	return &OneOnOneRepository{db: db}
}

// CreateWithNextNumber inserts the session with the next free session number for its
// (developer, manager, month) slot. The unique index on the slot decides concurrent inserts;
// the loser reads the new maximum and tries again.
func (r *OneOnOneRepository) CreateWithNextNumber(session *models.OneOnOne) error {
	for attempt := 0; attempt < maxSessionNumberAttempts; attempt++ {
		var maxNumber int
		err := r.db.Model(&models.OneOnOne{}).
			Where("developer_id = ? AND manager_id = ? AND month = ?", session.DeveloperID, session.ManagerID, session.Month).
			Select("COALESCE(MAX(session_number), 0)").
			Scan(&maxNumber).Error
		if err != nil {
			return err
		}

		session.SessionNumber = maxNumber + 1
		err = r.db.Omit(clause.Associations).Create(session).Error
		if err == nil {
			return nil
		}
		if !errors.Is(err, gorm.ErrDuplicatedKey) {
			return err
		}
		session.ID = uuid.Nil
	}
	return ErrSessionNumberExhausted
}

// GetByID retrieves a one-on-one by ID
func (r *OneOnOneRepository) GetByID(id uuid.UUID) (*models.OneOnOne, error) {
	var session models.OneOnOne
	err := r.db.First(&session, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &session, nil
}

// GetDetail retrieves a one-on-one with participants, answers, notes, action items and metrics
func (r *OneOnOneRepository) GetDetail(id uuid.UUID) (*models.OneOnOne, error) {
	var session models.OneOnOne
	err := r.db.
		Preload("Developer").
		Preload("Manager").
		Preload("Answers", func(db *gorm.DB) *gorm.DB { return db.Order("answers.created_at ASC") }).
		Preload("Answers.Question").
		Preload("Notes").
		Preload("ActionItems", func(db *gorm.DB) *gorm.DB { return db.Order("action_items.created_at ASC") }).
		Preload("Metrics").
		First(&session, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &session, nil
}

func applyOneOnOneFilter(query *gorm.DB, filter OneOnOneFilter) *gorm.DB {
	if filter.DeveloperID != nil {
		query = query.Where("developer_id = ?", *filter.DeveloperID)
	}
	if filter.ManagerID != nil {
		query = query.Where("manager_id = ?", *filter.ManagerID)
	}
	if filter.Month != "" {
		query = query.Where("month = ?", filter.Month)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	return query
}

// List retrieves one-on-ones matching the filter with pagination, newest month first
func (r *OneOnOneRepository) List(filter OneOnOneFilter, limit, offset int) ([]models.OneOnOne, int64, error) {
	var sessions []models.OneOnOne
	var total int64

	query := applyOneOnOneFilter(r.db.Model(&models.OneOnOne{}), filter)

	// Get total count
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	// Get paginated results
	err := query.Preload("Developer").Preload("Manager").
		Order("month DESC").Order("session_number DESC").
		Limit(limit).Offset(offset).Find(&sessions).Error
	if err != nil {
		return nil, 0, err
	}

	return sessions, total, nil
}

// ExistsFor reports whether any session exists for the developer and manager in the month
func (r *OneOnOneRepository) ExistsFor(developerID, managerID uuid.UUID, month string) (bool, error) {
	var count int64
	err := r.db.Model(&models.OneOnOne{}).
		Where("developer_id = ? AND manager_id = ? AND month = ?", developerID, managerID, month).
		Count(&count).Error
	return count > 0, err
}

// TransitionStatus moves a session from one status to another, stamping the matching
// timestamp. A repeated review keeps the first reviewed_at. The update only applies while the
// stored status still equals from; otherwise ErrStaleWrite is returned. Completing a session enqueues its metrics job in the same
// transaction.
func (r *OneOnOneRepository) TransitionStatus(id uuid.UUID, from, to models.OneOnOneStatus, at time.Time) error {
	updates := map[string]interface{}{"status": to}
	stamp := to
	if from == to {
		stamp = ""
	}
	switch stamp {
	case models.OneOnOneStatusSubmitted:
		updates["submitted_at"] = at
	case models.OneOnOneStatusReviewed:
		updates["reviewed_at"] = at
	case models.OneOnOneStatusCompleted:
		updates["completed_at"] = at
	}

	return r.db.Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&models.OneOnOne{}).Where("id = ? AND status = ?", id, from).Updates(updates)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrStaleWrite
		}
		if to == models.OneOnOneStatusCompleted {
			return enqueueMetricsJob(tx, id)
		}
		return nil
	})
}

// Delete deletes a one-on-one; answers, notes, action items and metrics cascade
func (r *OneOnOneRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.OneOnOne{}, "id = ?", id).Error
}

// CountByStatus returns the number of sessions per status matching the filter
func (r *OneOnOneRepository) CountByStatus(filter OneOnOneFilter) (map[models.OneOnOneStatus]int64, error) {
	var rows []struct {
		Status models.OneOnOneStatus
		Count  int64
	}
	filter.Status = ""
	err := applyOneOnOneFilter(r.db.Model(&models.OneOnOne{}), filter).
		Select("status, COUNT(*) AS count").Group("status").Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	counts := make(map[models.OneOnOneStatus]int64, len(rows))
	for _, row := range rows {
		counts[row.Status] = row.Count
	}
	return counts, nil
}
