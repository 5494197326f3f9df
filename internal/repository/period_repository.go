package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"jimpitan-be-svc/internal/allocation"
	"jimpitan-be-svc/internal/models"

	"gorm.io/gorm"
)

// AnyVersion passed as expectedVersion to ApplyPayment skips the optimistic version check
const AnyVersion int64 = 0

// PeriodRepository defines the interface for billing period data operations
type PeriodRepository interface {
	ListUnpaid(ctx context.Context, residentID string) ([]models.BillingPeriod, error)
	ListByResident(ctx context.Context, residentID string) ([]models.BillingPeriod, error)
	GetByKey(ctx context.Context, residentID, periodKey string) (*models.BillingPeriod, error)
	LatestPeriod(ctx context.Context, residentID string) (*models.BillingPeriod, error)
	// ApplyPayment fails with a ConflictError unless the period is still at expectedVersion.
	// Pass AnyVersion to apply against whatever version is stored.
	ApplyPayment(ctx context.Context, residentID, periodKey string, amount, expectedVersion int64) (*models.BillingPeriod, error)
	CreatePeriods(ctx context.Context, periods []*models.BillingPeriod) error
	RefreshOverdue(ctx context.Context, now time.Time) (int64, error)
}

// periodRepository implements PeriodRepository
type periodRepository struct {
	db *gorm.DB
}

// NewPeriodRepository creates a new instance of PeriodRepository
func NewPeriodRepository(db *gorm.DB) PeriodRepository {
	return &periodRepository{
		db: db,
	}
}

// ListUnpaid returns the resident's periods that still have an outstanding amount, oldest first
func (r *periodRepository) ListUnpaid(ctx context.Context, residentID string) ([]models.BillingPeriod, error) {
	var periods []models.BillingPeriod

	err := r.db.WithContext(ctx).
		Where("resident_id = ? AND status IN ?", residentID, models.OpenPeriodStatuses).
		Order("ordinal ASC, period_key ASC").
		Find(&periods).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list unpaid periods: %w", err)
	}

	return periods, nil
}

// ListByResident returns every period of the resident, oldest first
func (r *periodRepository) ListByResident(ctx context.Context, residentID string) ([]models.BillingPeriod, error) {
	var periods []models.BillingPeriod

	err := r.db.WithContext(ctx).
		Where("resident_id = ?", residentID).
		Order("ordinal ASC, period_key ASC").
		Find(&periods).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list periods: %w", err)
	}

	return periods, nil
}

// GetByKey retrieves one period of the resident
func (r *periodRepository) GetByKey(ctx context.Context, residentID, periodKey string) (*models.BillingPeriod, error) {
	var period models.BillingPeriod

	err := r.db.WithContext(ctx).
		Where("resident_id = ? AND period_key = ?", residentID, periodKey).
		First(&period).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: %s", allocation.ErrPeriodNotFound, periodKey)
		}
		return nil, fmt.Errorf("failed to get period: %w", err)
	}

	return &period, nil
}

// LatestPeriod returns the period with the highest ordinal, or nil when the resident has none
func (r *periodRepository) LatestPeriod(ctx context.Context, residentID string) (*models.BillingPeriod, error) {
	var periods []models.BillingPeriod

	err := r.db.WithContext(ctx).
		Where("resident_id = ?", residentID).
		Order("ordinal DESC, period_key DESC").
		Limit(1).
		Find(&periods).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get latest period: %w", err)
	}
	if len(periods) == 0 {
		return nil, nil
	}

	return &periods[0], nil
}

// ApplyPayment adds amount to the period's paid amount and recomputes its status.
// The update is guarded by the version read here, so a concurrent writer always yields a ConflictError.
func (r *periodRepository) ApplyPayment(ctx context.Context, residentID, periodKey string, amount, expectedVersion int64) (*models.BillingPeriod, error) {
	if amount <= 0 {
		return nil, &allocation.AmountError{PeriodKey: periodKey, Amount: amount, Reason: "amount must be positive"}
	}
	if expectedVersion < 0 {
		return nil, fmt.Errorf("%w: negative expected version %d", allocation.ErrInvalidRequest, expectedVersion)
	}

	period, err := r.GetByKey(ctx, residentID, periodKey)
	if err != nil {
		return nil, err
	}

	if expectedVersion != AnyVersion && period.Version != expectedVersion {
		return nil, &allocation.ConflictError{ResidentID: residentID, Resource: "billing period", Key: periodKey}
	}

	if amount > period.Outstanding() {
		return nil, &allocation.AmountError{
			PeriodKey: periodKey,
			Amount:    amount,
			Reason:    fmt.Sprintf("exceeds outstanding %d", period.Outstanding()),
		}
	}
	newPaid := period.AmountPaid + amount

	status := models.StatusAfterPayment(period.AmountDue, newPaid)
	now := time.Now().UTC()

	result := r.db.WithContext(ctx).
		Model(&models.BillingPeriod{}).
		Where("id = ? AND version = ?", period.ID, period.Version).
		Updates(map[string]interface{}{
			"amount_paid": newPaid,
			"status":      string(status),
			"version":     period.Version + 1,
			"updated_at":  now,
		})
	if result.Error != nil {
		return nil, fmt.Errorf("failed to apply payment to period: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, &allocation.ConflictError{ResidentID: residentID, Resource: "billing period", Key: periodKey}
	}

	period.AmountPaid = newPaid
	period.Status = status
	period.Version++
	period.UpdatedAt = now

	return period, nil
}

// CreatePeriods inserts a resident timeline. Ordinals are parsed from the keys and must be
// unique per resident within the batch; the unique index covers clashes with stored rows.
func (r *periodRepository) CreatePeriods(ctx context.Context, periods []*models.BillingPeriod) error {
	if len(periods) == 0 {
		return nil
	}

	type residentOrdinal struct {
		residentID string
		ordinal    int
	}
	seen := make(map[residentOrdinal]struct{}, len(periods))

	for _, p := range periods {
		ordinal, err := models.ParsePeriodOrdinal(p.PeriodKey)
		if err != nil {
			return err
		}
		if p.Ordinal != 0 && p.Ordinal != ordinal {
			return fmt.Errorf("%w: period %s carries ordinal %d", allocation.ErrInvalidRequest, p.PeriodKey, p.Ordinal)
		}
		p.Ordinal = ordinal

		key := residentOrdinal{residentID: p.ResidentID, ordinal: ordinal}
		if _, dup := seen[key]; dup {
			return fmt.Errorf("%w: period %s is defined twice for resident %s", allocation.ErrInvalidRequest, p.PeriodKey, p.ResidentID)
		}
		seen[key] = struct{}{}

		if p.DueDate.IsZero() {
			return fmt.Errorf("%w: period %s has no due date", allocation.ErrInvalidRequest, p.PeriodKey)
		}
		if p.AmountDue <= 0 {
			return &allocation.AmountError{PeriodKey: p.PeriodKey, Amount: p.AmountDue, Reason: "amount due must be positive"}
		}
		if p.AmountDue > models.MaxAmount {
			return &allocation.AmountError{PeriodKey: p.PeriodKey, Amount: p.AmountDue, Reason: "amount due exceeds the ledger maximum"}
		}
		if p.AmountPaid < 0 || p.AmountPaid > p.AmountDue {
			return &allocation.AmountError{PeriodKey: p.PeriodKey, Amount: p.AmountPaid, Reason: "amount paid outside [0, amount due]"}
		}
		if p.Status == "" {
			p.Status = models.StatusAfterPayment(p.AmountDue, p.AmountPaid)
		}
		if p.Version == 0 {
			p.Version = 1
		}
	}

	if err := r.db.WithContext(ctx).CreateInBatches(periods, 100).Error; err != nil {
		return fmt.Errorf("failed to create periods: %w", err)
	}
	return nil
}

// RefreshOverdue marks unpaid and partially paid periods past their due date as overdue
func (r *periodRepository) RefreshOverdue(ctx context.Context, now time.Time) (int64, error) {
	result := r.db.WithContext(ctx).
		Model(&models.BillingPeriod{}).
		Where("status IN ? AND due_date < ?", []string{
			string(models.PeriodStatusUnpaid),
			string(models.PeriodStatusPartiallyPaid),
		}, now).
		Updates(map[string]interface{}{
			"status":     string(models.PeriodStatusOverdue),
			"version":    gorm.Expr("version + 1"),
			"updated_at": now,
		})
	if result.Error != nil {
		return 0, fmt.Errorf("failed to refresh overdue periods: %w", result.Error)
	}

	return result.RowsAffected, nil
}
