package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"one-on-one-backend/internal/database/models"
	apperrors "one-on-one-backend/internal/errors"
	"one-on-one-backend/internal/logger"
	"one-on-one-backend/internal/repository"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// MaxMetricsAttempts bounds how often a failing metrics job is retried automatically
const MaxMetricsAttempts = 5

const metricsRetryBatch = 50

// SessionMetrics is the derived summary of a session's answers
type SessionMetrics struct {
	AverageScore *float64
	Breakdown    models.MetricsBreakdown
}

// JobRunSummary reports a batch of metrics job runs
type JobRunSummary struct {
	Processed int      `json:"processed"`
	Succeeded int      `json:"succeeded"`
	Failed    int      `json:"failed"`
	Errors    []string `json:"errors"`
}

func mean(values []float64) *float64 {
	if len(values) == 0 {
		return nil
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	m := sum / float64(len(values))
	return &m
}

// ComputeSessionMetrics averages rated answers per participant. Alignment is the absolute
// difference of the two averages and is nil when either side has no rated answer; the overall
// average covers every rated answer regardless of who gave it.
func ComputeSessionMetrics(answers []models.Answer) SessionMetrics {
	var all, dev, mgr []float64
	questions := make(map[uuid.UUID]bool)
	ratedQuestions := make(map[uuid.UUID]bool)

	for _, a := range answers {
		questions[a.QuestionID] = true
		if a.Rating == nil {
			continue
		}
		ratedQuestions[a.QuestionID] = true
		r := float64(*a.Rating)
		all = append(all, r)
		switch a.AnswerType {
		case models.ParticipantDeveloper:
			dev = append(dev, r)
		case models.ParticipantManager:
			mgr = append(mgr, r)
		}
	}

	breakdown := models.MetricsBreakdown{
		TotalQuestions:       len(questions),
		RatingQuestions:      len(ratedQuestions),
		DeveloperRatingCount: len(dev),
		ManagerRatingCount:   len(mgr),
		DeveloperAvgRating:   mean(dev),
		ManagerAvgRating:     mean(mgr),
	}
	if breakdown.DeveloperAvgRating != nil && breakdown.ManagerAvgRating != nil {
		alignment := math.Abs(*breakdown.DeveloperAvgRating - *breakdown.ManagerAvgRating)
		breakdown.RatingAlignment = &alignment
	}

	return SessionMetrics{AverageScore: mean(all), Breakdown: breakdown}
}

// MetricsService computes and stores per-session metrics snapshots
type MetricsService struct {
	sessionRepo repository.OneOnOneRepositoryInterface
	answerRepo  repository.AnswerRepositoryInterface
	metricsRepo repository.MetricsRepositoryInterface
	now         func() time.Time
}

// NewMetricsService creates a new metrics service
func NewMetricsService(sessionRepo repository.OneOnOneRepositoryInterface, answerRepo repository.AnswerRepositoryInterface, metricsRepo repository.MetricsRepositoryInterface) *MetricsService {
	return &MetricsService{
		sessionRepo: sessionRepo,
		answerRepo:  answerRepo,
		metricsRepo: metricsRepo,
		now:         time.Now,
	}
}

// Calculate recomputes the snapshot of a session from its current answers. The snapshot is
// upserted on the session id, so repeated calls leave exactly one row.
func (s *MetricsService) Calculate(sessionID uuid.UUID) (*models.MetricsSnapshot, error) {
	session, err := s.sessionRepo.GetByID(sessionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrOneOnOneNotFound
		}
		return nil, fmt.Errorf("failed to get one-on-one: %w", err)
	}

	answers, err := s.answerRepo.GetByOneOnOneID(sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to get answers: %w", err)
	}

	m := ComputeSessionMetrics(answers)
	snapshot := &models.MetricsSnapshot{
		OneOnOneID:   session.ID,
		DeveloperID:  session.DeveloperID,
		ManagerID:    session.ManagerID,
		Month:        session.Month,
		AverageScore: m.AverageScore,
		Breakdown:    datatypes.NewJSONType(m.Breakdown),
	}
	if err := s.metricsRepo.UpsertSnapshot(snapshot); err != nil {
		return nil, fmt.Errorf("failed to save metrics snapshot: %w", err)
	}
	return snapshot, nil
}

// RunJob runs the metrics job of a session and records the attempt on the job row
func (s *MetricsService) RunJob(sessionID uuid.UUID) error {
	job, err := s.metricsRepo.GetJob(sessionID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		if err = s.metricsRepo.EnqueueJob(sessionID); err == nil {
			job, err = s.metricsRepo.GetJob(sessionID)
		}
	}
	if err != nil {
		return fmt.Errorf("failed to load metrics job: %w", err)
	}

	now := s.now()
	job.Attempts++
	job.LastAttemptAt = &now

	_, calcErr := s.Calculate(sessionID)
	if calcErr != nil {
		job.Status = models.MetricsJobStatusFailed
		job.LastError = calcErr.Error()
	} else {
		job.Status = models.MetricsJobStatusSucceeded
		job.LastError = ""
		job.SucceededAt = &now
	}

	if err := s.metricsRepo.SaveJob(job); err != nil {
		return fmt.Errorf("failed to record metrics job: %w", err)
	}
	return calcErr
}

// RetryPending re-runs pending and failed jobs that still have attempts left
func (s *MetricsService) RetryPending(ctx context.Context) (*JobRunSummary, error) {
	jobs, err := s.metricsRepo.ListRetryableJobs(MaxMetricsAttempts, metricsRetryBatch)
	if err != nil {
		return nil, fmt.Errorf("failed to list metrics jobs: %w", err)
	}

	log := logger.WithContext(ctx)
	summary := &JobRunSummary{Errors: []string{}}
	for _, job := range jobs {
		if ctx.Err() != nil {
			break
		}
		summary.Processed++
		if err := s.RunJob(job.OneOnOneID); err != nil {
			summary.Failed++
			summary.Errors = append(summary.Errors, job.OneOnOneID.String()+": "+err.Error())
			log.WithError(err).WithField("one_on_one_id", job.OneOnOneID.String()).Warn("Metrics job failed")
			continue
		}
		summary.Succeeded++
	}
	return summary, nil
}

// RetryPendingAsAdmin is RetryPending behind the admin check
func (s *MetricsService) RetryPendingAsAdmin(ctx context.Context, actor *models.User) (*JobRunSummary, error) {
	if err := RequireAdmin(actor); err != nil {
		return nil, err
	}
	return s.RetryPending(ctx)
}

// GetForSession returns the snapshot of a session the actor may access
func (s *MetricsService) GetForSession(actor *models.User, sessionID uuid.UUID) (*models.MetricsSnapshot, error) {
	session, err := s.sessionRepo.GetByID(sessionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrOneOnOneNotFound
		}
		return nil, fmt.Errorf("failed to get one-on-one: %w", err)
	}
	if err := RequireSessionParticipant(actor, session); err != nil {
		return nil, err
	}

	snapshot, err := s.metricsRepo.GetByOneOnOneID(sessionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrMetricsNotFound
		}
		return nil, fmt.Errorf("failed to get metrics snapshot: %w", err)
	}
	return snapshot, nil
}
