package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jimpitan-be-svc/internal/allocation"
	"jimpitan-be-svc/internal/database/dbtest"
	"jimpitan-be-svc/internal/models"
	"jimpitan-be-svc/internal/repository"
	"jimpitan-be-svc/pkg/logger"
)

func weeklyDefinitions(n int, amount int64) []PeriodDefinition {
	defs := make([]PeriodDefinition, 0, n)
	for i := 1; i <= n; i++ {
		defs = append(defs, PeriodDefinition{
			Key:     models.PeriodKeyFor(i),
			Label:   fmt.Sprintf("Minggu %d", i),
			Amount:  amount,
			DueDate: firstDue.AddDate(0, 0, 7*(i-1)),
		})
	}
	return defs
}

func TestTimelineService_ImportTimeline(t *testing.T) {
	db := dbtest.New(t)
	periods := repository.NewPeriodRepository(db)
	svc := NewTimelineService(periods, logger.NewNopLogger())
	ctx := context.Background()

	defs := weeklyDefinitions(4, 40000)
	defs[2].Amount = 0 // holiday

	resp, err := svc.ImportTimeline(ctx, TimelineImportRequest{
		TimelineID:  "timeline_2026",
		ResidentIDs: []string{"warga_001", "warga_002"},
		Periods:     defs,
	})
	require.NoError(t, err)
	assert.Equal(t, 2, resp.SuccessCount)
	assert.Equal(t, 6, resp.TotalPeriods)

	stored, err := periods.ListByResident(ctx, "warga_002")
	require.NoError(t, err)
	require.Len(t, stored, 3)
	assert.Equal(t, "period_4", stored[2].PeriodKey)
	assert.Equal(t, 4, stored[2].Ordinal)
	assert.Equal(t, "timeline_2026", stored[2].TimelineID)

	// importing again fails per resident on the unique key, new residents still succeed
	resp, err = svc.ImportTimeline(ctx, TimelineImportRequest{
		TimelineID:  "timeline_2026",
		ResidentIDs: []string{"warga_001", "warga_003"},
		Periods:     defs,
	})
	require.NoError(t, err)
	assert.Equal(t, 1, resp.SuccessCount)
	assert.Equal(t, 1, resp.FailedCount)
	require.Len(t, resp.Errors, 1)
	assert.Contains(t, resp.Errors[0], "warga_001")
}

func TestTimelineService_RejectsBadDefinitions(t *testing.T) {
	db := dbtest.New(t)
	svc := NewTimelineService(repository.NewPeriodRepository(db), logger.NewNopLogger())
	ctx := context.Background()

	dup := weeklyDefinitions(2, 40000)
	dup[1].Key = dup[0].Key

	negative := weeklyDefinitions(1, -1)

	holidays := weeklyDefinitions(2, 0)

	badKey := weeklyDefinitions(1, 40000)
	badKey[0].Key = "minggu"

	padded := weeklyDefinitions(2, 40000)
	padded[1].Key = "period_01"

	tooLarge := weeklyDefinitions(2, 40000)
	tooLarge[0].Amount = math.MaxInt64

	tests := []struct {
		name    string
		periods []PeriodDefinition
		target  error
	}{
		{name: "duplicate key", periods: dup, target: allocation.ErrInvalidRequest},
		{name: "negative amount", periods: negative, target: allocation.ErrInvalidAmount},
		{name: "only holidays", periods: holidays, target: allocation.ErrInvalidRequest},
		{name: "bad key", periods: badKey, target: allocation.ErrInvalidRequest},
		{name: "padded key", periods: padded, target: allocation.ErrInvalidRequest},
		{name: "amount above ledger maximum", periods: tooLarge, target: allocation.ErrInvalidAmount},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.ImportTimeline(ctx, TimelineImportRequest{
				TimelineID:  "timeline_2026",
				ResidentIDs: []string{"warga_001"},
				Periods:     tt.periods,
			})
			assert.True(t, errors.Is(err, tt.target), "got %v", err)
		})
	}

	_, err := svc.ImportTimeline(ctx, TimelineImportRequest{TimelineID: "t", Periods: weeklyDefinitions(1, 40000)})
	assert.True(t, errors.Is(err, allocation.ErrInvalidRequest))

	stored, err := repository.NewPeriodRepository(db).ListByResident(ctx, "warga_001")
	require.NoError(t, err)
	assert.Empty(t, stored)
}
