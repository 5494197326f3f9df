package models

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// PeriodStatus is the payment state of a billing period
type PeriodStatus string

const (
	PeriodStatusUnpaid        PeriodStatus = "unpaid"
	PeriodStatusPartiallyPaid PeriodStatus = "partially_paid"
	PeriodStatusPaid          PeriodStatus = "paid"
	PeriodStatusOverdue       PeriodStatus = "overdue"
)

// ErrInvalidPeriodKey is returned when a period key is not of the form period_<n>
var ErrInvalidPeriodKey = errors.New("invalid period key")

// MaxAmount is the largest amount, in rupiah, a single payment, period or balance may hold
const MaxAmount int64 = 1_000_000_000_000

// PeriodKeyPrefix starts every period key
const PeriodKeyPrefix = "period_"

// OpenPeriodStatuses are the statuses that still accept payments
var OpenPeriodStatuses = []string{
	string(PeriodStatusUnpaid),
	string(PeriodStatusPartiallyPaid),
	string(PeriodStatusOverdue),
}

// IsValid reports whether s is a known status
func (s PeriodStatus) IsValid() bool {
	switch s {
	case PeriodStatusUnpaid, PeriodStatusPartiallyPaid, PeriodStatusPaid, PeriodStatusOverdue:
		return true
	}
	return false
}

// IsOpen reports whether a period with this status still has an outstanding amount
func (s PeriodStatus) IsOpen() bool {
	return s.IsValid() && s != PeriodStatusPaid
}

// BillingPeriod represents the billing_periods table.
// AmountDue and AmountPaid are in the smallest currency unit (rupiah).
type BillingPeriod struct {
	ID         uint         `json:"id" gorm:"primarykey"`
	ResidentID string       `json:"resident_id" gorm:"column:resident_id;size:64;not null;uniqueIndex:idx_billing_periods_resident_key,priority:1;uniqueIndex:idx_billing_periods_resident_ordinal,priority:1"`
	TimelineID string       `json:"timeline_id" gorm:"column:timeline_id;size:64"`
	PeriodKey  string       `json:"period_key" gorm:"column:period_key;size:64;not null;uniqueIndex:idx_billing_periods_resident_key,priority:2"`
	Ordinal    int          `json:"ordinal" gorm:"column:ordinal;not null;uniqueIndex:idx_billing_periods_resident_ordinal,priority:2"`
	Label      string       `json:"label" gorm:"column:label;size:128"`
	AmountDue  int64        `json:"amount_due" gorm:"column:amount_due;not null"`
	AmountPaid int64        `json:"amount_paid" gorm:"column:amount_paid;not null;default:0"`
	Status     PeriodStatus `json:"status" gorm:"column:status;size:20;not null;default:unpaid;index"`
	DueDate    time.Time    `json:"due_date" gorm:"column:due_date"`
	Version    int64        `json:"version" gorm:"column:version;not null;default:1"`
	CreatedAt  time.Time    `json:"created_at"`
	UpdatedAt  time.Time    `json:"updated_at"`
}

// TableName sets the insert table name for BillingPeriod
func (BillingPeriod) TableName() string {
	return "billing_periods"
}

// Outstanding returns the amount still owed on the period
func (p BillingPeriod) Outstanding() int64 {
	if p.AmountPaid >= p.AmountDue {
		return 0
	}
	return p.AmountDue - p.AmountPaid
}

// EffectiveStatus returns the status as of now, deriving overdue for open periods past their due date
func (p BillingPeriod) EffectiveStatus(now time.Time) PeriodStatus {
	if p.AmountPaid >= p.AmountDue {
		return PeriodStatusPaid
	}
	if !p.DueDate.IsZero() && now.After(p.DueDate) {
		return PeriodStatusOverdue
	}
	if p.AmountPaid > 0 {
		return PeriodStatusPartiallyPaid
	}
	return PeriodStatusUnpaid
}

// StatusAfterPayment returns the status a period takes once amountPaid has been applied
func StatusAfterPayment(amountDue, amountPaid int64) PeriodStatus {
	if amountPaid >= amountDue {
		return PeriodStatusPaid
	}
	if amountPaid > 0 {
		return PeriodStatusPartiallyPaid
	}
	return PeriodStatusUnpaid
}

// PeriodKeyFor builds the key of the n-th period of a timeline
func PeriodKeyFor(ordinal int) string {
	return fmt.Sprintf("%s%d", PeriodKeyPrefix, ordinal)
}

// ParsePeriodOrdinal extracts the ordinal of a period key ("period_12" -> 12).
// Only the canonical form is accepted, so every ordinal has exactly one key.
func ParsePeriodOrdinal(key string) (int, error) {
	digits, ok := strings.CutPrefix(key, PeriodKeyPrefix)
	if !ok || digits == "" || digits[0] == '0' {
		return 0, fmt.Errorf("%w: %q", ErrInvalidPeriodKey, key)
	}
	for i := 0; i < len(digits); i++ {
		if digits[i] < '0' || digits[i] > '9' {
			return 0, fmt.Errorf("%w: %q", ErrInvalidPeriodKey, key)
		}
	}
	ordinal, err := strconv.Atoi(digits)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidPeriodKey, key)
	}
	return ordinal, nil
}
