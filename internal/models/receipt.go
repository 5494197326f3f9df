package models

import (
	"time"
)

// PaymentSource says where the money of a payment comes from
type PaymentSource string

const (
	PaymentSourceCash   PaymentSource = "cash"
	PaymentSourceCredit PaymentSource = "credit"
	PaymentSourceMixed  PaymentSource = "mixed"
)

// IsValid reports whether s is a known payment source
func (s PaymentSource) IsValid() bool {
	switch s {
	case PaymentSourceCash, PaymentSourceCredit, PaymentSourceMixed:
		return true
	}
	return false
}

// DrawsCredit reports whether the existing credit balance is applied before cash
func (s PaymentSource) DrawsCredit() bool {
	return s == PaymentSourceCredit || s == PaymentSourceMixed
}

// Payment channels
const (
	ChannelManual = "manual"
	ChannelRFID   = "rfid"
)

// Receipt represents the receipts table, the persisted record of one committed payment
type Receipt struct {
	ID                   string        `json:"id" gorm:"primaryKey;size:36"`
	ResidentID           string        `json:"resident_id" gorm:"column:resident_id;size:64;not null;index"`
	PaymentSource        PaymentSource `json:"payment_source" gorm:"column:payment_source;size:10;not null"`
	Channel              string        `json:"channel" gorm:"column:channel;size:20;not null"`
	Reference            string        `json:"reference,omitempty" gorm:"column:reference;size:128"`
	GrossAmount          int64         `json:"gross_amount" gorm:"column:gross_amount;not null"`
	CreditConsumed       int64         `json:"credit_consumed" gorm:"column:credit_consumed;not null;default:0"`
	CreditAdded          int64         `json:"credit_added" gorm:"column:credit_added;not null;default:0"`
	NewCreditBalance     int64         `json:"new_credit_balance" gorm:"column:new_credit_balance;not null"`
	UnallocatedRemainder int64         `json:"unallocated_remainder" gorm:"column:unallocated_remainder;not null;default:0"`
	RecordedAt           time.Time     `json:"recorded_at" gorm:"column:recorded_at;not null;index"`
	Lines                []ReceiptLine `json:"lines" gorm:"foreignKey:ReceiptID;references:ID"`
}

// TableName sets the insert table name for Receipt
func (Receipt) TableName() string {
	return "receipts"
}

// TotalApplied sums the amounts applied to periods
func (r Receipt) TotalApplied() int64 {
	var total int64
	for _, line := range r.Lines {
		total += line.AmountApplied
	}
	return total
}

// ReceiptLine represents the receipt_lines table, one per period touched by a payment
type ReceiptLine struct {
	ID              uint         `json:"-" gorm:"primarykey"`
	ReceiptID       string       `json:"-" gorm:"column:receipt_id;size:36;not null;index"`
	Position        int          `json:"-" gorm:"column:position;not null"`
	PeriodKey       string       `json:"period_key" gorm:"column:period_key;size:64;not null"`
	Label           string       `json:"label" gorm:"column:label;size:128"`
	AmountApplied   int64        `json:"amount_applied" gorm:"column:amount_applied;not null"`
	ResultingStatus PeriodStatus `json:"resulting_status" gorm:"column:resulting_status;size:20;not null"`
}

// TableName sets the insert table name for ReceiptLine
func (ReceiptLine) TableName() string {
	return "receipt_lines"
}
