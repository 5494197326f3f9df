package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"jimpitan-be-svc/internal/allocation"
	"jimpitan-be-svc/internal/models"
	"jimpitan-be-svc/internal/repository"
	"jimpitan-be-svc/pkg/logger"
)

// PeriodDefinition is one period of a billing timeline as defined by the timeline owner
type PeriodDefinition struct {
	Key     string    `json:"key" binding:"required,periodkey" example:"period_1"`
	Label   string    `json:"label" example:"Minggu 1"`
	Amount  int64     `json:"amount" binding:"gte=0,lte=1000000000000" example:"40000"` // 0 marks a holiday, which is skipped
	DueDate time.Time `json:"due_date" example:"2026-01-12T00:00:00Z"`
}

// TimelineImportRequest loads a timeline's periods into the ledger of the listed residents
type TimelineImportRequest struct {
	TimelineID  string             `json:"timeline_id" binding:"required" example:"timeline_2026"`
	ResidentIDs []string           `json:"resident_ids" binding:"required" example:"warga_001,warga_002"`
	Periods     []PeriodDefinition `json:"periods" binding:"required,dive"`
}

// TimelineImportResponse represents the response for a timeline import
type TimelineImportResponse struct {
	TotalResidents int      `json:"total_residents"`
	TotalPeriods   int      `json:"total_periods"`
	SuccessCount   int      `json:"success_count"`
	FailedCount    int      `json:"failed_count"`
	Errors         []string `json:"errors,omitempty"`
}

// TimelineService defines the interface for loading billing timelines into the ledger
type TimelineService interface {
	ImportTimeline(ctx context.Context, req TimelineImportRequest) (*TimelineImportResponse, error)
}

// timelineService implements TimelineService
type timelineService struct {
	periodRepo repository.PeriodRepository
	logger     *logger.Logger
}

// NewTimelineService creates a new timeline service
func NewTimelineService(periodRepo repository.PeriodRepository, logger *logger.Logger) TimelineService {
	return &timelineService{
		periodRepo: periodRepo,
		logger:     logger,
	}
}

// ImportTimeline creates the timeline's periods for every resident. Residents are imported
// independently: one resident that already has the timeline does not stop the others.
func (s *timelineService) ImportTimeline(ctx context.Context, req TimelineImportRequest) (*TimelineImportResponse, error) {
	definitions, err := activePeriods(req.Periods)
	if err != nil {
		return nil, err
	}
	if len(req.ResidentIDs) == 0 {
		return nil, fmt.Errorf("%w: at least one resident is required", allocation.ErrInvalidRequest)
	}

	resp := &TimelineImportResponse{TotalResidents: len(req.ResidentIDs)}

	for _, residentID := range req.ResidentIDs {
		residentID = strings.TrimSpace(residentID)
		if residentID == "" {
			resp.FailedCount++
			resp.Errors = append(resp.Errors, "empty resident id")
			continue
		}

		periods := make([]*models.BillingPeriod, 0, len(definitions))
		for _, d := range definitions {
			label := d.Label
			if label == "" {
				label = d.Key
			}
			periods = append(periods, &models.BillingPeriod{
				ResidentID: residentID,
				TimelineID: req.TimelineID,
				PeriodKey:  d.Key,
				Label:      label,
				AmountDue:  d.Amount,
				Status:     models.PeriodStatusUnpaid,
				DueDate:    d.DueDate.UTC(),
			})
		}

		if err := s.periodRepo.CreatePeriods(ctx, periods); err != nil {
			s.logger.WithError(err).WithFields(map[string]interface{}{
				"resident_id": residentID,
				"timeline_id": req.TimelineID,
			}).Error("Failed to import timeline for resident")
			resp.FailedCount++
			resp.Errors = append(resp.Errors, fmt.Sprintf("resident %s: %v", residentID, err))
			continue
		}

		resp.SuccessCount++
		resp.TotalPeriods += len(periods)
	}

	s.logger.WithFields(map[string]interface{}{
		"timeline_id":   req.TimelineID,
		"residents":     resp.TotalResidents,
		"periods":       resp.TotalPeriods,
		"success_count": resp.SuccessCount,
		"failed_count":  resp.FailedCount,
	}).Info("Timeline imported")

	return resp, nil
}

// activePeriods drops holidays and rejects definitions the ledger cannot hold
func activePeriods(definitions []PeriodDefinition) ([]PeriodDefinition, error) {
	active := make([]PeriodDefinition, 0, len(definitions))
	seen := make(map[int]string, len(definitions))

	for _, d := range definitions {
		ordinal, err := models.ParsePeriodOrdinal(d.Key)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", allocation.ErrInvalidRequest, err)
		}
		if first, dup := seen[ordinal]; dup {
			return nil, fmt.Errorf("%w: period %s is defined twice (as %s)", allocation.ErrInvalidRequest, d.Key, first)
		}
		seen[ordinal] = d.Key

		if d.Amount < 0 {
			return nil, &allocation.AmountError{PeriodKey: d.Key, Amount: d.Amount, Reason: "amount must not be negative"}
		}
		if d.Amount > models.MaxAmount {
			return nil, &allocation.AmountError{PeriodKey: d.Key, Amount: d.Amount, Reason: "amount exceeds the ledger maximum"}
		}
		if d.Amount == 0 {
			continue
		}
		if d.DueDate.IsZero() {
			return nil, fmt.Errorf("%w: period %s has no due date", allocation.ErrInvalidRequest, d.Key)
		}
		active = append(active, d)
	}

	if len(active) == 0 {
		return nil, fmt.Errorf("%w: timeline has no payable periods", allocation.ErrInvalidRequest)
	}
	return active, nil
}
