package models

import (
	"strings"
	"time"
)

// RFIDCard represents the rfid_cards table, binding a card code to a resident
type RFIDCard struct {
	ID         uint      `json:"id" gorm:"primarykey"`
	CardCode   string    `json:"card_code" gorm:"column:card_code;size:64;not null;uniqueIndex"`
	ResidentID string    `json:"resident_id" gorm:"column:resident_id;size:64;not null;index"`
	Active     bool      `json:"active" gorm:"column:active;not null"`
	PairedAt   time.Time `json:"paired_at" gorm:"column:paired_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// TableName sets the insert table name for RFIDCard
func (RFIDCard) TableName() string {
	return "rfid_cards"
}

// NormalizeCardCode trims and upper-cases a card code as readers report it in either case
func NormalizeCardCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}
