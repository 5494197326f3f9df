package response

import (
	"time"

	"jimpitan-be-svc/internal/models"
)

// ResidentSummaryResponse represents a resident's payment progress across the timeline
type ResidentSummaryResponse struct {
	ResidentID         string         `json:"resident_id" example:"warga_001"`
	TotalPeriods       int            `json:"total_periods" example:"12"`
	Paid               int            `json:"paid" example:"8"`
	PartiallyPaid      int            `json:"partially_paid" example:"1"`
	Unpaid             int            `json:"unpaid" example:"2"`
	Overdue            int            `json:"overdue" example:"1"`
	TotalAmount        int64          `json:"total_amount" example:"480000"`
	PaidAmount         int64          `json:"paid_amount" example:"340000"`
	OutstandingAmount  int64          `json:"outstanding_amount" example:"140000"`
	ProgressPercentage int            `json:"progress_percentage" example:"67"`
	CreditBalance      int64          `json:"credit_balance" example:"20000"`
	NextDue            *NextDuePeriod `json:"next_due,omitempty"`
}

// NextDuePeriod is the oldest period that still has an outstanding amount
type NextDuePeriod struct {
	PeriodKey   string              `json:"period_key" example:"period_9"`
	Label       string              `json:"label" example:"Minggu 9"`
	Outstanding int64               `json:"outstanding" example:"40000"`
	DueDate     time.Time           `json:"due_date"`
	Status      models.PeriodStatus `json:"status" example:"overdue"`
}

// CreditHistoryResponse represents a resident's credit balance and its journal
type CreditHistoryResponse struct {
	ResidentID   string                     `json:"resident_id" example:"warga_001"`
	Balance      int64                      `json:"balance" example:"20000"`
	Transactions []models.CreditTransaction `json:"transactions"`
}

// PeriodResponse is a billing period as shown to API clients, with overdue derived at read time
type PeriodResponse struct {
	PeriodKey   string              `json:"period_key" example:"period_1"`
	Label       string              `json:"label" example:"Minggu 1"`
	AmountDue   int64               `json:"amount_due" example:"40000"`
	AmountPaid  int64               `json:"amount_paid" example:"20000"`
	Outstanding int64               `json:"outstanding" example:"20000"`
	Status      models.PeriodStatus `json:"status" example:"partially_paid"`
	DueDate     time.Time           `json:"due_date"`
}

// NewPeriodResponse builds a PeriodResponse as of now
func NewPeriodResponse(p models.BillingPeriod, now time.Time) PeriodResponse {
	return PeriodResponse{
		PeriodKey:   p.PeriodKey,
		Label:       p.Label,
		AmountDue:   p.AmountDue,
		AmountPaid:  p.AmountPaid,
		Outstanding: p.Outstanding(),
		Status:      p.EffectiveStatus(now),
		DueDate:     p.DueDate,
	}
}
