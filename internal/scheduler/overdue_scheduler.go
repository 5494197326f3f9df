package scheduler

import (
	"context"
	"fmt"
	"time"

	"jimpitan-be-svc/internal/metrics"
	"jimpitan-be-svc/internal/models"
	"jimpitan-be-svc/internal/repository"
	"jimpitan-be-svc/pkg/logger"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
)

// OverdueSchedulerCode identifies overdue refresh runs in log_schedullers
const OverdueSchedulerCode = "PERIOD_OVERDUE_REFRESH"

// OverdueScheduler periodically marks open periods past their due date as overdue
type OverdueScheduler struct {
	periodRepo       repository.PeriodRepository
	logSchedulerRepo repository.LogSchedulerRepository
	logger           *logger.Logger
	cron             *cron.Cron
	cronExpression   string
	now              func() time.Time
}

// NewOverdueScheduler creates a new overdue scheduler
func NewOverdueScheduler(periodRepo repository.PeriodRepository, logSchedulerRepo repository.LogSchedulerRepository, logger *logger.Logger, cronExpression string) *OverdueScheduler {
	// Create cron with seconds precision
	c := cron.New(cron.WithSeconds())

	return &OverdueScheduler{
		periodRepo:       periodRepo,
		logSchedulerRepo: logSchedulerRepo,
		logger:           logger,
		cron:             c,
		cronExpression:   cronExpression,
		now:              time.Now,
	}
}

// Start schedules the refresh job and starts the cron
func (s *OverdueScheduler) Start() error {
	s.logger.Info("Starting overdue scheduler...")

	// Cron format: "seconds minutes hours day-of-month month day-of-week"
	_, err := s.cron.AddFunc(s.cronExpression, func() {
		if _, err := s.RunOnce(context.Background()); err != nil {
			s.logger.WithError(err).Error("Scheduled overdue refresh failed")
		}
	})
	if err != nil {
		return fmt.Errorf("failed to schedule overdue refresh job: %w", err)
	}

	s.logger.WithField("cron_expression", s.cronExpression).Info("Overdue refresh job scheduled successfully")

	s.cron.Start()
	s.logger.Info("Overdue scheduler started successfully")

	return nil
}

// Stop waits for a running job and stops the cron
func (s *OverdueScheduler) Stop() {
	s.logger.Info("Stopping overdue scheduler...")
	ctx := s.cron.Stop()
	<-ctx.Done()
	s.logger.Info("Overdue scheduler stopped successfully")
}

// RunOnce marks every open period due before now as overdue and records the run in log_schedullers
func (s *OverdueScheduler) RunOnce(ctx context.Context) (int64, error) {
	runID := uuid.New().String()
	now := s.now().UTC()

	s.logScheduler(ctx, runID, "Starting overdue refresh", models.SchedulerStatusStart, 0)
	s.logScheduler(ctx, runID, fmt.Sprintf("Marking periods due before %s as overdue", now.Format(time.RFC3339)), models.SchedulerStatusRunning, 0)

	affected, err := s.periodRepo.RefreshOverdue(ctx, now)
	if err != nil {
		s.logScheduler(ctx, runID, fmt.Sprintf("Failed to refresh overdue periods: %v", err), models.SchedulerStatusFailed, 0)
		s.logger.WithError(err).WithField("run_id", runID).Error("Failed to refresh overdue periods")
		return 0, err
	}

	metrics.OverdueMarked.Add(float64(affected))
	s.logScheduler(ctx, runID, fmt.Sprintf("Marked %d periods as overdue", affected), models.SchedulerStatusSuccess, affected)

	s.logger.WithFields(map[string]interface{}{
		"run_id":   runID,
		"affected": affected,
	}).Info("Overdue refresh completed")

	return affected, nil
}

// logScheduler creates a new log entry in the database
func (s *OverdueScheduler) logScheduler(ctx context.Context, runID, message, status string, affected int64) {
	logEntry := &models.LogSchedullers{
		RunID:            runID,
		SchedullerCode:   OverdueSchedulerCode,
		Message:          message,
		StatusScheduller: status,
		AffectedRows:     affected,
		CreatedAt:        s.now().UTC(),
	}

	if err := s.logSchedulerRepo.CreateLogScheduler(ctx, logEntry); err != nil {
		s.logger.WithError(err).WithField("status", status).Error("Failed to create scheduler log entry")
	}
}
