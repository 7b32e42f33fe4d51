package scheduler

import (
	"context"
	"fmt"
	"time"

	"one-on-one-backend/internal/config"
	"one-on-one-backend/internal/logger"
	"one-on-one-backend/internal/service"

	"github.com/go-co-op/gocron/v2"
)

const (
	scanJobName         = "action-item-scans"
	metricsRetryJobName = "metrics-retry"
	jobTimeout          = 5 * time.Minute
)

// Scheduler runs the periodic action item scans and metrics job retries
type Scheduler struct {
	cron          gocron.Scheduler
	notifications service.NotificationServiceInterface
	metrics       service.MetricsServiceInterface
}

// New registers the jobs. locker may be nil when a single instance is deployed.
func New(cfg *config.Config, notifications service.NotificationServiceInterface, metrics service.MetricsServiceInterface, locker gocron.Locker) (*Scheduler, error) {
	opts := []gocron.SchedulerOption{}
	if locker != nil {
		opts = append(opts, gocron.WithDistributedLocker(locker))
	}
	cron, err := gocron.NewScheduler(opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create scheduler: %w", err)
	}

	s := &Scheduler{cron: cron, notifications: notifications, metrics: metrics}

	if _, err := cron.NewJob(
		gocron.CronJob(cfg.ScanCron, false),
		gocron.NewTask(s.runScans),
		gocron.WithName(scanJobName),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	); err != nil {
		_ = cron.Shutdown()
		return nil, fmt.Errorf("failed to schedule %s: %w", scanJobName, err)
	}

	if cfg.MetricsRetryInterval > 0 {
		if _, err := cron.NewJob(
			gocron.DurationJob(cfg.MetricsRetryInterval),
			gocron.NewTask(s.runMetricsRetry),
			gocron.WithName(metricsRetryJobName),
			gocron.WithSingletonMode(gocron.LimitModeReschedule),
		); err != nil {
			_ = cron.Shutdown()
			return nil, fmt.Errorf("failed to schedule %s: %w", metricsRetryJobName, err)
		}
	}

	return s, nil
}

// Start starts running jobs in the background
func (s *Scheduler) Start() {
	logger.New().WithField("jobs", len(s.cron.Jobs())).Info("Starting scheduler")
	s.cron.Start()
}

// Shutdown stops the scheduler and waits for running jobs
func (s *Scheduler) Shutdown() error {
	return s.cron.Shutdown()
}

func (s *Scheduler) runScans() {
	ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
	defer cancel()
	log := logger.New().WithField("job", scanJobName)

	if _, err := s.notifications.ScanOverdue(ctx); err != nil {
		log.WithError(err).Error("Overdue scan failed")
	}
	if _, err := s.notifications.ScanDueSoon(ctx); err != nil {
		log.WithError(err).Error("Due-soon scan failed")
	}
}

func (s *Scheduler) runMetricsRetry() {
	ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
	defer cancel()
	log := logger.New().WithField("job", metricsRetryJobName)

	summary, err := s.metrics.RetryPending(ctx)
	if err != nil {
		log.WithError(err).Error("Metrics retry failed")
		return
	}
	if summary.Processed > 0 {
		log.WithFields(map[string]interface{}{
			"processed": summary.Processed, "succeeded": summary.Succeeded, "failed": summary.Failed,
		}).Info("Metrics jobs retried")
	}
}
