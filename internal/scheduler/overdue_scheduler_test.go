package scheduler

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jimpitan-be-svc/internal/database/dbtest"
	"jimpitan-be-svc/internal/models"
	"jimpitan-be-svc/internal/repository"
	"jimpitan-be-svc/pkg/logger"
)

func TestOverdueScheduler_RunOnce(t *testing.T) {
	db := dbtest.New(t)
	firstDue := time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC)
	dbtest.SeedPeriods(t, db, "warga_001", 4, 40000, firstDue)
	ctx := context.Background()

	periods := repository.NewPeriodRepository(db)
	_, err := periods.ApplyPayment(ctx, "warga_001", "period_1", 40000, repository.AnyVersion)
	require.NoError(t, err)
	_, err = periods.ApplyPayment(ctx, "warga_001", "period_2", 10000, repository.AnyVersion)
	require.NoError(t, err)

	logs := repository.NewLogSchedulerRepository(db)
	s := NewOverdueScheduler(periods, logs, logger.NewNopLogger(), "0 0 1 * * *")
	s.now = func() time.Time { return time.Date(2026, 1, 20, 0, 0, 0, 0, time.UTC) }

	affected, err := s.RunOnce(ctx)
	require.NoError(t, err)
	// period_2 (partial) and period_3 are past due, period_1 is paid and period_4 is not due yet
	assert.Equal(t, int64(2), affected)

	all, err := periods.ListByResident(ctx, "warga_001")
	require.NoError(t, err)
	assert.Equal(t, models.PeriodStatusPaid, all[0].Status)
	assert.Equal(t, models.PeriodStatusOverdue, all[1].Status)
	assert.Equal(t, models.PeriodStatusOverdue, all[2].Status)
	assert.Equal(t, models.PeriodStatusUnpaid, all[3].Status)

	var runs []models.LogSchedullers
	require.NoError(t, db.Order("id ASC").Find(&runs).Error)
	require.Len(t, runs, 3)

	entries, err := logs.ListByRun(ctx, runs[0].RunID)
	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Equal(t, models.SchedulerStatusStart, entries[0].StatusScheduller)
	assert.Equal(t, models.SchedulerStatusRunning, entries[1].StatusScheduller)
	assert.Equal(t, models.SchedulerStatusSuccess, entries[2].StatusScheduller)
	assert.Equal(t, int64(2), entries[2].AffectedRows)
	assert.Equal(t, OverdueSchedulerCode, entries[2].SchedullerCode)

	// a second run finds nothing new
	affected, err = s.RunOnce(ctx)
	require.NoError(t, err)
	assert.Zero(t, affected)
}

func TestOverdueScheduler_StartRejectsBadExpression(t *testing.T) {
	db := dbtest.New(t)
	s := NewOverdueScheduler(repository.NewPeriodRepository(db), repository.NewLogSchedulerRepository(db), logger.NewNopLogger(), "not a cron")

	assert.Error(t, s.Start())
}

func TestOverdueScheduler_StartStop(t *testing.T) {
	db := dbtest.New(t)
	s := NewOverdueScheduler(repository.NewPeriodRepository(db), repository.NewLogSchedulerRepository(db), logger.NewNopLogger(), "0 0 1 * * *")

	require.NoError(t, s.Start())
	s.Stop()
}
