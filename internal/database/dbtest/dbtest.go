// Package dbtest provides throwaway databases for tests.
package dbtest

import (
	"testing"
	"time"

	"jimpitan-be-svc/internal/database"
	"jimpitan-be-svc/internal/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// New opens a migrated in-memory SQLite database that lives for the duration of t.
// The pool is pinned to one connection so every query sees the same in-memory schema.
func New(t testing.TB) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open sqlite: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get sqlite handle: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := database.Migrate(db); err != nil {
		t.Fatalf("failed to migrate sqlite: %v", err)
	}

	t.Cleanup(func() {
		_ = sqlDB.Close()
	})

	return db
}

// SeedPeriods inserts n weekly unpaid periods of amount for the resident, the first one due at firstDue
func SeedPeriods(t testing.TB, db *gorm.DB, residentID string, n int, amount int64, firstDue time.Time) []models.BillingPeriod {
	t.Helper()

	periods := make([]models.BillingPeriod, 0, n)
	for i := 1; i <= n; i++ {
		periods = append(periods, models.BillingPeriod{
			ResidentID: residentID,
			TimelineID: "timeline_test",
			PeriodKey:  models.PeriodKeyFor(i),
			Ordinal:    i,
			Label:      models.PeriodKeyFor(i),
			AmountDue:  amount,
			Status:     models.PeriodStatusUnpaid,
			DueDate:    firstDue.AddDate(0, 0, 7*(i-1)),
			Version:    1,
		})
	}

	if err := db.Create(&periods).Error; err != nil {
		t.Fatalf("failed to seed periods: %v", err)
	}
	return periods
}

// SeedCredit stores a credit account with the given balance
func SeedCredit(t testing.TB, db *gorm.DB, residentID string, balance int64) models.CreditAccount {
	t.Helper()

	account := models.CreditAccount{ResidentID: residentID, Balance: balance, Version: 1}
	if err := db.Create(&account).Error; err != nil {
		t.Fatalf("failed to seed credit account: %v", err)
	}
	return account
}
