package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jimpitan-be-svc/internal/allocation"
	"jimpitan-be-svc/internal/database/dbtest"
	"jimpitan-be-svc/internal/models"
)

func newReceipt(residentID string, recordedAt time.Time) *models.Receipt {
	return &models.Receipt{
		ID:               uuid.New().String(),
		ResidentID:       residentID,
		PaymentSource:    models.PaymentSourceCash,
		Channel:          models.ChannelManual,
		GrossAmount:      60000,
		CreditAdded:      20000,
		NewCreditBalance: 20000,
		RecordedAt:       recordedAt,
		Lines: []models.ReceiptLine{
			{PeriodKey: "period_1", Label: "Minggu 1", AmountApplied: 30000, ResultingStatus: models.PeriodStatusPaid},
			{PeriodKey: "period_2", Label: "Minggu 2", AmountApplied: 10000, ResultingStatus: models.PeriodStatusPartiallyPaid},
		},
	}
}

func TestReceiptRepository_CreateAndGet(t *testing.T) {
	repo := NewReceiptRepository(dbtest.New(t))
	ctx := context.Background()

	receipt := newReceipt("warga_001", time.Date(2026, 2, 1, 9, 0, 0, 0, time.UTC))
	require.NoError(t, repo.Create(ctx, receipt))

	stored, err := repo.GetByID(ctx, receipt.ID)
	require.NoError(t, err)
	assert.Equal(t, "warga_001", stored.ResidentID)
	require.Len(t, stored.Lines, 2)
	assert.Equal(t, "period_1", stored.Lines[0].PeriodKey)
	assert.Equal(t, "period_2", stored.Lines[1].PeriodKey)
	assert.Equal(t, int64(40000), stored.TotalApplied())
}

func TestReceiptRepository_GetMissing(t *testing.T) {
	repo := NewReceiptRepository(dbtest.New(t))

	_, err := repo.GetByID(context.Background(), uuid.New().String())
	assert.True(t, errors.Is(err, allocation.ErrReceiptNotFound))
}

func TestReceiptRepository_ListByResidentPaginates(t *testing.T) {
	repo := NewReceiptRepository(dbtest.New(t))
	ctx := context.Background()

	base := time.Date(2026, 2, 1, 9, 0, 0, 0, time.UTC)
	for i := 0; i < 3; i++ {
		require.NoError(t, repo.Create(ctx, newReceipt("warga_001", base.Add(time.Duration(i)*time.Hour))))
	}
	require.NoError(t, repo.Create(ctx, newReceipt("warga_002", base)))

	page, total, err := repo.ListByResident(ctx, "warga_001", 1, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	require.Len(t, page, 2)
	assert.True(t, page[0].RecordedAt.After(page[1].RecordedAt))
	assert.Len(t, page[0].Lines, 2)

	page, _, err = repo.ListByResident(ctx, "warga_001", 2, 2)
	require.NoError(t, err)
	assert.Len(t, page, 1)
}

func TestReceiptRepository_ListForExportFilters(t *testing.T) {
	repo := NewReceiptRepository(dbtest.New(t))
	ctx := context.Background()

	jan := time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC)
	feb := time.Date(2026, 2, 15, 0, 0, 0, 0, time.UTC)
	require.NoError(t, repo.Create(ctx, newReceipt("warga_001", jan)))
	require.NoError(t, repo.Create(ctx, newReceipt("warga_001", feb)))
	require.NoError(t, repo.Create(ctx, newReceipt("warga_002", feb)))

	from := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	receipts, err := repo.ListForExport(ctx, ReceiptFilter{From: &from})
	require.NoError(t, err)
	assert.Len(t, receipts, 2)

	receipts, err = repo.ListForExport(ctx, ReceiptFilter{ResidentID: "warga_001"})
	require.NoError(t, err)
	require.Len(t, receipts, 2)
	assert.True(t, receipts[0].RecordedAt.Before(receipts[1].RecordedAt))
}

func TestRFIDCardRepository_BindRebinds(t *testing.T) {
	repo := NewRFIDCardRepository(dbtest.New(t))
	ctx := context.Background()

	now := time.Now().UTC()
	require.NoError(t, repo.Bind(ctx, &models.RFIDCard{CardCode: "04A2B9C1", ResidentID: "warga_001", Active: true, PairedAt: now}))
	require.NoError(t, repo.Bind(ctx, &models.RFIDCard{CardCode: "04A2B9C1", ResidentID: "warga_002", Active: true, PairedAt: now}))

	card, err := repo.FindByCode(ctx, "04A2B9C1")
	require.NoError(t, err)
	assert.Equal(t, "warga_002", card.ResidentID)
}
