package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jimpitan-be-svc/internal/allocation"
	"jimpitan-be-svc/internal/database/dbtest"
	"jimpitan-be-svc/internal/models"
	"jimpitan-be-svc/internal/repository"
	"jimpitan-be-svc/pkg/logger"
)

func TestResidentService_GetSummary(t *testing.T) {
	db := dbtest.New(t)
	dbtest.SeedPeriods(t, db, "warga_001", 4, 40000, firstDue)
	dbtest.SeedCredit(t, db, "warga_001", 15000)
	ctx := context.Background()

	periods := repository.NewPeriodRepository(db)
	_, err := periods.ApplyPayment(ctx, "warga_001", "period_1", 40000, repository.AnyVersion)
	require.NoError(t, err)
	_, err = periods.ApplyPayment(ctx, "warga_001", "period_2", 10000, repository.AnyVersion)
	require.NoError(t, err)

	svc := NewResidentService(periods, repository.NewCreditRepository(db), repository.NewReceiptRepository(db), logger.NewNopLogger())
	// period_2 (due Jan 12) is past due and only partly paid
	svc.(*residentService).now = func() time.Time { return time.Date(2026, 1, 13, 0, 0, 0, 0, time.UTC) }

	summary, err := svc.GetSummary(ctx, "warga_001")
	require.NoError(t, err)

	assert.Equal(t, 4, summary.TotalPeriods)
	assert.Equal(t, 1, summary.Paid)
	assert.Equal(t, 1, summary.Overdue)
	assert.Equal(t, 2, summary.Unpaid)
	assert.Zero(t, summary.PartiallyPaid)
	assert.Equal(t, int64(160000), summary.TotalAmount)
	assert.Equal(t, int64(50000), summary.PaidAmount)
	assert.Equal(t, int64(110000), summary.OutstandingAmount)
	assert.Equal(t, 25, summary.ProgressPercentage)
	assert.Equal(t, int64(15000), summary.CreditBalance)

	require.NotNil(t, summary.NextDue)
	assert.Equal(t, "period_2", summary.NextDue.PeriodKey)
	assert.Equal(t, int64(30000), summary.NextDue.Outstanding)
	assert.Equal(t, models.PeriodStatusOverdue, summary.NextDue.Status)
}

func TestResidentService_GetSummary_Empty(t *testing.T) {
	db := dbtest.New(t)
	svc := NewResidentService(repository.NewPeriodRepository(db), repository.NewCreditRepository(db), repository.NewReceiptRepository(db), logger.NewNopLogger())

	summary, err := svc.GetSummary(context.Background(), "warga_404")
	require.NoError(t, err)
	assert.Zero(t, summary.TotalPeriods)
	assert.Zero(t, summary.ProgressPercentage)
	assert.Nil(t, summary.NextDue)
}

func TestResidentService_GetPeriod(t *testing.T) {
	db := dbtest.New(t)
	dbtest.SeedPeriods(t, db, "warga_001", 2, 40000, firstDue)
	svc := NewResidentService(repository.NewPeriodRepository(db), repository.NewCreditRepository(db), repository.NewReceiptRepository(db), logger.NewNopLogger())
	svc.(*residentService).now = func() time.Time { return firstDue.AddDate(0, 0, 1) }

	period, err := svc.GetPeriod(context.Background(), "warga_001", "period_1")
	require.NoError(t, err)
	assert.Equal(t, models.PeriodStatusOverdue, period.Status)
	assert.Equal(t, int64(40000), period.Outstanding)

	_, err = svc.GetPeriod(context.Background(), "warga_001", "period_9")
	assert.True(t, errors.Is(err, allocation.ErrPeriodNotFound))

	all, err := svc.GetPeriods(context.Background(), "warga_001")
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, models.PeriodStatusUnpaid, all[1].Status)
}

func TestResidentService_CreditAndReceipts(t *testing.T) {
	f := newPaymentFixture(t, nil)
	dbtest.SeedPeriods(t, f.db, "warga_001", 1, 40000, firstDue)
	ctx := context.Background()

	_, err := f.service.RecordPayment(ctx, PaymentRequest{ResidentID: "warga_001", Amount: 50000})
	require.NoError(t, err)
	_, err = f.service.RecordPayment(ctx, PaymentRequest{ResidentID: "warga_001", Amount: 5000})
	require.NoError(t, err)

	svc := NewResidentService(f.periods, f.credits, f.receipts, logger.NewNopLogger())

	credit, err := svc.GetCredit(ctx, "warga_001", 10)
	require.NoError(t, err)
	assert.Equal(t, int64(15000), credit.Balance)
	assert.Len(t, credit.Transactions, 2)

	receipts, total, err := svc.GetReceipts(ctx, "warga_001", 0, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	assert.Len(t, receipts, 2)

	receipts, total, err = svc.GetReceipts(ctx, "warga_001", 2, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	assert.Len(t, receipts, 1)

	credit, err = svc.GetCredit(ctx, "warga_001", 1<<30)
	require.NoError(t, err)
	assert.Len(t, credit.Transactions, 2)

	receipts, _, err = svc.GetReceipts(ctx, "warga_001", 1, 1<<30)
	require.NoError(t, err)
	assert.Len(t, receipts, 2)
}
