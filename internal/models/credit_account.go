package models

import (
	"time"
)

// CreditAccount represents the credit_accounts table.
// Balance never goes below zero and only changes through payment allocation.
type CreditAccount struct {
	ID         uint      `json:"id" gorm:"primarykey"`
	ResidentID string    `json:"resident_id" gorm:"column:resident_id;size:64;not null;uniqueIndex"`
	Balance    int64     `json:"balance" gorm:"column:balance;not null;default:0"`
	Version    int64     `json:"version" gorm:"column:version;not null;default:1"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// TableName sets the insert table name for CreditAccount
func (CreditAccount) TableName() string {
	return "credit_accounts"
}
