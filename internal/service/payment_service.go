package service

import (
	"context"
	"fmt"
	"time"

	"jimpitan-be-svc/internal/allocation"
	"jimpitan-be-svc/internal/cache"
	"jimpitan-be-svc/internal/config"
	"jimpitan-be-svc/internal/metrics"
	"jimpitan-be-svc/internal/models"
	"jimpitan-be-svc/internal/repository"
	"jimpitan-be-svc/pkg/logger"
)

// PaymentRequest is a payment entered by an operator or derived from an RFID tap
type PaymentRequest struct {
	ResidentID string
	Amount     int64
	Source     models.PaymentSource
	Channel    string
	Reference  string
}

// RFIDPaymentRequest is a tap event from a card reader
type RFIDPaymentRequest struct {
	CardCode string
	Amount   int64
	EventID  string
}

// PaymentService defines the interface for payment business operations
type PaymentService interface {
	Preview(ctx context.Context, req PaymentRequest) (*allocation.Result, error)
	RecordPayment(ctx context.Context, req PaymentRequest) (*models.Receipt, error)
	RecordRFIDPayment(ctx context.Context, req RFIDPaymentRequest) (*models.Receipt, error)
}

// paymentService implements PaymentService
type paymentService struct {
	periodRepo repository.PeriodRepository
	creditRepo repository.CreditRepository
	cardRepo   repository.RFIDCardRepository
	recorder   PaymentRecorder
	events     cache.EventStore
	cfg        config.PaymentConfig
	eventTTL   time.Duration
	logger     *logger.Logger
}

// NewPaymentService creates a new payment service
func NewPaymentService(
	periodRepo repository.PeriodRepository,
	creditRepo repository.CreditRepository,
	cardRepo repository.RFIDCardRepository,
	recorder PaymentRecorder,
	events cache.EventStore,
	cfg config.PaymentConfig,
	eventTTL time.Duration,
	logger *logger.Logger,
) PaymentService {
	if cfg.MaxCommitAttempts < 1 {
		cfg.MaxCommitAttempts = 1
	}
	return &paymentService{
		periodRepo: periodRepo,
		creditRepo: creditRepo,
		cardRepo:   cardRepo,
		recorder:   recorder,
		events:     events,
		cfg:        cfg,
		eventTTL:   eventTTL,
		logger:     logger,
	}
}

// Preview allocates the payment against current state without writing anything.
// Unlike RecordPayment it reports an unallocated remainder instead of failing on it.
func (s *paymentService) Preview(ctx context.Context, req PaymentRequest) (*allocation.Result, error) {
	req = withDefaults(req)

	snapshot, err := s.loadSnapshot(ctx, req.ResidentID)
	if err != nil {
		return nil, err
	}

	result, err := s.allocate(snapshot, req)
	if err != nil {
		s.logger.WithError(err).WithField("resident_id", req.ResidentID).Info("Payment preview rejected")
		return nil, err
	}

	return result, nil
}

// RecordPayment allocates and commits the payment. When the commit loses a race the ledger
// is read again and the payment re-allocated, up to the configured number of attempts.
func (s *paymentService) RecordPayment(ctx context.Context, req PaymentRequest) (*models.Receipt, error) {
	req = withDefaults(req)

	var lastErr error
	for attempt := 1; attempt <= s.cfg.MaxCommitAttempts; attempt++ {
		snapshot, err := s.loadSnapshot(ctx, req.ResidentID)
		if err != nil {
			return nil, err
		}

		result, err := s.allocate(snapshot, req)
		if err != nil {
			s.reject(err, req)
			return nil, err
		}

		if result.UnallocatedRemainder > 0 {
			err := &allocation.ExcessPaymentError{
				ResidentID: req.ResidentID,
				Remainder:  result.UnallocatedRemainder,
				CreditCap:  result.CreditCap,
			}
			s.reject(err, req)
			return nil, err
		}

		receipt, err := s.recorder.Commit(ctx, snapshot, result, ReceiptMeta{Channel: req.Channel, Reference: req.Reference})
		if err == nil {
			metrics.ObservePayment(string(receipt.PaymentSource), receipt.Channel, receipt.TotalApplied(), receipt.CreditAdded, receipt.CreditConsumed)
			return receipt, nil
		}
		if !allocation.IsRetryable(err) {
			s.reject(err, req)
			return nil, err
		}

		metrics.CommitConflicts.Inc()
		lastErr = err
		s.logger.WithError(err).WithFields(map[string]interface{}{
			"resident_id": req.ResidentID,
			"attempt":     attempt,
		}).Warn("Ledger changed during commit, re-reading state")
	}

	s.reject(lastErr, req)
	return nil, fmt.Errorf("failed to record payment after %d attempts: %w", s.cfg.MaxCommitAttempts, lastErr)
}

// RecordRFIDPayment resolves the tapped card to its resident and records the payment once per event id
func (s *paymentService) RecordRFIDPayment(ctx context.Context, req RFIDPaymentRequest) (*models.Receipt, error) {
	if req.Amount <= 0 {
		return nil, &allocation.AmountError{Amount: req.Amount, Reason: "amount must be positive"}
	}

	req.CardCode = models.NormalizeCardCode(req.CardCode)
	card, err := s.cardRepo.FindByCode(ctx, req.CardCode)
	if err != nil {
		return nil, err
	}
	if !card.Active {
		return nil, fmt.Errorf("%w: %s is deactivated", allocation.ErrCardNotFound, req.CardCode)
	}

	if req.EventID != "" {
		fresh, err := s.events.MarkProcessed(ctx, req.EventID, s.eventTTL)
		if err != nil {
			return nil, fmt.Errorf("failed to check rfid event: %w", err)
		}
		if !fresh {
			s.logger.WithFields(map[string]interface{}{
				"event_id":  req.EventID,
				"card_code": req.CardCode,
			}).Info("Duplicate RFID event ignored")
			metrics.PaymentsRejected.WithLabelValues("duplicate_event").Inc()
			return nil, fmt.Errorf("%w: %s", allocation.ErrDuplicateEvent, req.EventID)
		}
	}

	receipt, err := s.RecordPayment(ctx, PaymentRequest{
		ResidentID: card.ResidentID,
		Amount:     req.Amount,
		Source:     models.PaymentSourceMixed,
		Channel:    models.ChannelRFID,
		Reference:  req.EventID,
	})
	if err != nil {
		if req.EventID != "" {
			if forgetErr := s.events.Forget(ctx, req.EventID); forgetErr != nil {
				s.logger.WithError(forgetErr).WithField("event_id", req.EventID).Error("Failed to release RFID event after failed payment")
			}
		}
		return nil, err
	}

	return receipt, nil
}

func (s *paymentService) loadSnapshot(ctx context.Context, residentID string) (*Snapshot, error) {
	if residentID == "" {
		return nil, fmt.Errorf("%w: resident id is required", allocation.ErrInvalidRequest)
	}

	periods, err := s.periodRepo.ListUnpaid(ctx, residentID)
	if err != nil {
		return nil, err
	}
	account, err := s.creditRepo.GetAccount(ctx, residentID)
	if err != nil {
		return nil, err
	}
	latest, err := s.periodRepo.LatestPeriod(ctx, residentID)
	if err != nil {
		return nil, err
	}

	return &Snapshot{
		ResidentID: residentID,
		Periods:    periods,
		Credit:     *account,
		Latest:     latest,
	}, nil
}

func (s *paymentService) allocate(snapshot *Snapshot, req PaymentRequest) (*allocation.Result, error) {
	policy := allocation.Policy{CapMultiplier: s.cfg.CreditCapMultiplier}
	if snapshot.Latest != nil {
		policy.ReferenceAmount = snapshot.Latest.AmountDue
	}

	return allocation.Allocate(allocation.Request{
		ResidentID:  req.ResidentID,
		GrossAmount: req.Amount,
		Source:      req.Source,
	}, snapshot.Periods, snapshot.Credit.Balance, policy)
}

func (s *paymentService) reject(err error, req PaymentRequest) {
	metrics.PaymentsRejected.WithLabelValues(allocation.Code(err)).Inc()

	entry := s.logger.WithError(err).WithFields(map[string]interface{}{
		"resident_id":    req.ResidentID,
		"amount":         req.Amount,
		"payment_source": req.Source,
		"channel":        req.Channel,
	})
	if allocation.IsClientError(err) {
		entry.Info("Payment rejected")
		return
	}
	entry.Error("Failed to record payment")
}

func withDefaults(req PaymentRequest) PaymentRequest {
	if req.Source == "" {
		req.Source = models.PaymentSourceCash
	}
	if req.Channel == "" {
		req.Channel = models.ChannelManual
	}
	return req
}
