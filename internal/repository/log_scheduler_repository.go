package repository

import (
	"context"

	"jimpitan-be-svc/internal/models"

	"gorm.io/gorm"
)

// LogSchedulerRepository defines the interface for log scheduler data operations
type LogSchedulerRepository interface {
	CreateLogScheduler(ctx context.Context, log *models.LogSchedullers) error
	ListByRun(ctx context.Context, runID string) ([]models.LogSchedullers, error)
}

// logSchedulerRepository implements LogSchedulerRepository
type logSchedulerRepository struct {
	db *gorm.DB
}

// NewLogSchedulerRepository creates a new instance of LogSchedulerRepository
func NewLogSchedulerRepository(db *gorm.DB) LogSchedulerRepository {
	return &logSchedulerRepository{
		db: db,
	}
}

// CreateLogScheduler creates a new log scheduler record
func (r *logSchedulerRepository) CreateLogScheduler(ctx context.Context, log *models.LogSchedullers) error {
	return r.db.WithContext(ctx).Create(log).Error
}

// ListByRun returns the status rows of one scheduler run in insertion order
func (r *logSchedulerRepository) ListByRun(ctx context.Context, runID string) ([]models.LogSchedullers, error) {
	var logs []models.LogSchedullers
	err := r.db.WithContext(ctx).Where("run_id = ?", runID).Order("id ASC").Find(&logs).Error
	return logs, err
}
