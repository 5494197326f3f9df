package models

import (
	"time"
)

// CreditEntryType tells whether a journal row added to or drew from the balance
type CreditEntryType string

const (
	CreditEntryDebit  CreditEntryType = "debit"
	CreditEntryCredit CreditEntryType = "credit"
)

// CreditTransaction represents the credit_transactions journal
type CreditTransaction struct {
	ID            uint            `json:"id" gorm:"primarykey"`
	ResidentID    string          `json:"resident_id" gorm:"column:resident_id;size:64;not null;index"`
	EntryType     CreditEntryType `json:"entry_type" gorm:"column:entry_type;size:10;not null"`
	Amount        int64           `json:"amount" gorm:"column:amount;not null"`
	Discarded     int64           `json:"discarded" gorm:"column:discarded;not null;default:0"`
	BalanceBefore int64           `json:"balance_before" gorm:"column:balance_before;not null"`
	BalanceAfter  int64           `json:"balance_after" gorm:"column:balance_after;not null"`
	ReceiptID     *string         `json:"receipt_id,omitempty" gorm:"column:receipt_id;size:36;index"`
	CreatedAt     time.Time       `json:"created_at"`
}

// TableName sets the insert table name for CreditTransaction
func (CreditTransaction) TableName() string {
	return "credit_transactions"
}
