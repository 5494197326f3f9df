package service

import (
	"context"
	"math"
	"time"

	"jimpitan-be-svc/internal/models"
	"jimpitan-be-svc/internal/models/response"
	"jimpitan-be-svc/internal/repository"
	"jimpitan-be-svc/pkg/logger"
)

const (
	maxCreditRows      = 200
	maxReceiptsPerPage = 100
)

// ResidentService interface defines read-side resident operations
type ResidentService interface {
	GetPeriods(ctx context.Context, residentID string) ([]response.PeriodResponse, error)
	GetPeriod(ctx context.Context, residentID, periodKey string) (*response.PeriodResponse, error)
	GetSummary(ctx context.Context, residentID string) (*response.ResidentSummaryResponse, error)
	GetCredit(ctx context.Context, residentID string, limit int) (*response.CreditHistoryResponse, error)
	GetReceipts(ctx context.Context, residentID string, page, limit int) ([]models.Receipt, int64, error)
}

// residentService implements ResidentService interface
type residentService struct {
	periodRepo  repository.PeriodRepository
	creditRepo  repository.CreditRepository
	receiptRepo repository.ReceiptRepository
	logger      *logger.Logger
	now         func() time.Time
}

// NewResidentService creates a new resident service
func NewResidentService(periodRepo repository.PeriodRepository, creditRepo repository.CreditRepository, receiptRepo repository.ReceiptRepository, logger *logger.Logger) ResidentService {
	return &residentService{
		periodRepo:  periodRepo,
		creditRepo:  creditRepo,
		receiptRepo: receiptRepo,
		logger:      logger,
		now:         time.Now,
	}
}

// GetPeriods lists every period of the resident with its current status
func (s *residentService) GetPeriods(ctx context.Context, residentID string) ([]response.PeriodResponse, error) {
	periods, err := s.periodRepo.ListByResident(ctx, residentID)
	if err != nil {
		s.logger.WithError(err).WithField("resident_id", residentID).Error("Failed to list periods")
		return nil, err
	}

	now := s.now()
	responses := make([]response.PeriodResponse, 0, len(periods))
	for _, p := range periods {
		responses = append(responses, response.NewPeriodResponse(p, now))
	}
	return responses, nil
}

// GetPeriod returns one period of the resident
func (s *residentService) GetPeriod(ctx context.Context, residentID, periodKey string) (*response.PeriodResponse, error) {
	period, err := s.periodRepo.GetByKey(ctx, residentID, periodKey)
	if err != nil {
		return nil, err
	}

	resp := response.NewPeriodResponse(*period, s.now())
	return &resp, nil
}

// GetSummary counts periods per status and totals the amounts, deriving overdue as of now
func (s *residentService) GetSummary(ctx context.Context, residentID string) (*response.ResidentSummaryResponse, error) {
	periods, err := s.periodRepo.ListByResident(ctx, residentID)
	if err != nil {
		s.logger.WithError(err).WithField("resident_id", residentID).Error("Failed to list periods for summary")
		return nil, err
	}

	balance, err := s.creditRepo.GetBalance(ctx, residentID)
	if err != nil {
		s.logger.WithError(err).WithField("resident_id", residentID).Error("Failed to get credit balance for summary")
		return nil, err
	}

	now := s.now()
	summary := &response.ResidentSummaryResponse{
		ResidentID:    residentID,
		TotalPeriods:  len(periods),
		CreditBalance: balance,
	}

	for _, p := range periods {
		summary.TotalAmount += p.AmountDue
		summary.PaidAmount += p.AmountPaid

		status := p.EffectiveStatus(now)
		switch status {
		case models.PeriodStatusPaid:
			summary.Paid++
		case models.PeriodStatusPartiallyPaid:
			summary.PartiallyPaid++
		case models.PeriodStatusOverdue:
			summary.Overdue++
		default:
			summary.Unpaid++
		}

		if summary.NextDue == nil && status != models.PeriodStatusPaid {
			summary.NextDue = &response.NextDuePeriod{
				PeriodKey:   p.PeriodKey,
				Label:       p.Label,
				Outstanding: p.Outstanding(),
				DueDate:     p.DueDate,
				Status:      status,
			}
		}
	}

	summary.OutstandingAmount = summary.TotalAmount - summary.PaidAmount
	if summary.TotalPeriods > 0 {
		summary.ProgressPercentage = int(math.Round(float64(summary.Paid) / float64(summary.TotalPeriods) * 100))
	}

	s.logger.WithFields(map[string]interface{}{
		"resident_id": residentID,
		"paid":        summary.Paid,
		"total":       summary.TotalPeriods,
	}).Debug("Resident summary computed")

	return summary, nil
}

// GetCredit returns the balance and the latest journal rows
func (s *residentService) GetCredit(ctx context.Context, residentID string, limit int) (*response.CreditHistoryResponse, error) {
	if limit <= 0 || limit > maxCreditRows {
		limit = maxCreditRows
	}

	balance, err := s.creditRepo.GetBalance(ctx, residentID)
	if err != nil {
		return nil, err
	}

	transactions, err := s.creditRepo.ListTransactions(ctx, residentID, limit)
	if err != nil {
		s.logger.WithError(err).WithField("resident_id", residentID).Error("Failed to list credit transactions")
		return nil, err
	}

	return &response.CreditHistoryResponse{
		ResidentID:   residentID,
		Balance:      balance,
		Transactions: transactions,
	}, nil
}

// GetReceipts returns one page of the resident's receipts
func (s *residentService) GetReceipts(ctx context.Context, residentID string, page, limit int) ([]models.Receipt, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit <= 0 {
		limit = 20
	}
	if limit > maxReceiptsPerPage {
		limit = maxReceiptsPerPage
	}

	receipts, total, err := s.receiptRepo.ListByResident(ctx, residentID, page, limit)
	if err != nil {
		s.logger.WithError(err).WithField("resident_id", residentID).Error("Failed to list receipts")
		return nil, 0, err
	}
	return receipts, total, nil
}
