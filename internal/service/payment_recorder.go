package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"jimpitan-be-svc/internal/allocation"
	"jimpitan-be-svc/internal/models"
	"jimpitan-be-svc/internal/repository"
	"jimpitan-be-svc/pkg/logger"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Snapshot is the ledger state an allocation was computed from
type Snapshot struct {
	ResidentID string
	// Periods are the unpaid periods as read, with their versions
	Periods []models.BillingPeriod
	// Credit has Version 0 when the resident had no account yet
	Credit models.CreditAccount
	// Latest is the resident's most recent period, nil when there is none
	Latest *models.BillingPeriod
}

// ReceiptMeta describes where a payment came from
type ReceiptMeta struct {
	Channel   string
	Reference string
}

// PaymentRecorder persists an allocation atomically
type PaymentRecorder interface {
	Commit(ctx context.Context, snapshot *Snapshot, result *allocation.Result, meta ReceiptMeta) (*models.Receipt, error)
}

// paymentRecorder implements PaymentRecorder
type paymentRecorder struct {
	db     *gorm.DB
	logger *logger.Logger
	now    func() time.Time
}

// NewPaymentRecorder creates a new payment recorder
func NewPaymentRecorder(db *gorm.DB, logger *logger.Logger) PaymentRecorder {
	return &paymentRecorder{
		db:     db,
		logger: logger,
		now:    time.Now,
	}
}

// Commit applies every line of result to its period, moves the credit balance and stores the
// receipt in one transaction. If any row no longer matches the snapshot nothing is written and
// the error unwraps to allocation.ErrConcurrentModification.
func (r *paymentRecorder) Commit(ctx context.Context, snapshot *Snapshot, result *allocation.Result, meta ReceiptMeta) (*models.Receipt, error) {
	if result.UnallocatedRemainder > 0 {
		return nil, &allocation.ExcessPaymentError{
			ResidentID: result.ResidentID,
			Remainder:  result.UnallocatedRemainder,
			CreditCap:  result.CreditCap,
		}
	}
	if !result.Balanced() {
		return nil, fmt.Errorf("%w: allocation for resident %s does not balance", allocation.ErrInvalidRequest, result.ResidentID)
	}

	versions := make(map[string]int64, len(snapshot.Periods))
	for _, p := range snapshot.Periods {
		versions[p.PeriodKey] = p.Version
	}

	receipt := &models.Receipt{
		ID:                   uuid.New().String(),
		ResidentID:           result.ResidentID,
		PaymentSource:        result.Source,
		Channel:              meta.Channel,
		Reference:            meta.Reference,
		GrossAmount:          result.GrossAmount,
		CreditConsumed:       result.CreditConsumed,
		CreditAdded:          result.CreditAdded,
		NewCreditBalance:     result.NewCreditBalance,
		UnallocatedRemainder: result.UnallocatedRemainder,
		RecordedAt:           r.now().UTC(),
		Lines:                make([]models.ReceiptLine, 0, len(result.Lines)),
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		periodRepo := repository.NewPeriodRepository(tx)
		creditRepo := repository.NewCreditRepository(tx)
		receiptRepo := repository.NewReceiptRepository(tx)

		for _, line := range result.Lines {
			version, ok := versions[line.PeriodKey]
			if !ok {
				return fmt.Errorf("%w: period %s is not part of the snapshot", allocation.ErrInvalidRequest, line.PeriodKey)
			}

			updated, err := periodRepo.ApplyPayment(ctx, result.ResidentID, line.PeriodKey, line.AmountApplied, version)
			if err != nil {
				return asConflict(err, result.ResidentID, "billing period", line.PeriodKey)
			}
			if updated.Status != line.ResultingStatus {
				return &allocation.ConflictError{ResidentID: result.ResidentID, Resource: "billing period", Key: line.PeriodKey}
			}

			receipt.Lines = append(receipt.Lines, models.ReceiptLine{
				PeriodKey:       line.PeriodKey,
				Label:           line.Label,
				AmountApplied:   line.AmountApplied,
				ResultingStatus: line.ResultingStatus,
			})
		}

		opts := repository.CreditOptions{
			CheckVersion:    true,
			ExpectedVersion: snapshot.Credit.Version,
			ReceiptID:       receipt.ID,
		}

		if result.CreditConsumed > 0 {
			account, err := creditRepo.Debit(ctx, result.ResidentID, result.CreditConsumed, opts)
			if err != nil {
				return asConflict(err, result.ResidentID, "credit account", result.ResidentID)
			}
			opts.ExpectedVersion = account.Version
		}

		if result.CreditAdded > 0 {
			ceiling := result.CreditCap
			account, discarded, err := creditRepo.Credit(ctx, result.ResidentID, result.CreditAdded, &ceiling, opts)
			if err != nil {
				return asConflict(err, result.ResidentID, "credit account", result.ResidentID)
			}
			if discarded > 0 || account.Balance != result.NewCreditBalance {
				return &allocation.ConflictError{ResidentID: result.ResidentID, Resource: "credit account", Key: result.ResidentID}
			}
		}

		if err := receiptRepo.Create(ctx, receipt); err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, allocation.ErrConcurrentModification) {
			r.logger.WithError(err).WithField("resident_id", result.ResidentID).Warn("Payment commit rolled back after concurrent modification")
		} else {
			r.logger.WithError(err).WithField("resident_id", result.ResidentID).Error("Failed to commit payment")
		}
		return nil, err
	}

	r.logger.WithFields(map[string]interface{}{
		"receipt_id":         receipt.ID,
		"resident_id":        receipt.ResidentID,
		"gross_amount":       receipt.GrossAmount,
		"credit_consumed":    receipt.CreditConsumed,
		"credit_added":       receipt.CreditAdded,
		"new_credit_balance": receipt.NewCreditBalance,
		"lines":              len(receipt.Lines),
	}).Info("Payment committed")

	return receipt, nil
}

// asConflict reports ledger rejections during commit as conflicts: the allocation was valid
// against the snapshot, so a rejection now means the rows moved underneath it.
func asConflict(err error, residentID, resource, key string) error {
	if errors.Is(err, allocation.ErrConcurrentModification) {
		return err
	}
	if errors.Is(err, allocation.ErrInvalidAmount) ||
		errors.Is(err, allocation.ErrInsufficientCredit) ||
		errors.Is(err, allocation.ErrPeriodNotFound) {
		return &allocation.ConflictError{ResidentID: residentID, Resource: resource, Key: key, Cause: err}
	}
	return err
}
