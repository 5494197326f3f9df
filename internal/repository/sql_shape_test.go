package repository

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"jimpitan-be-svc/internal/allocation"
)

// newMockDB opens gorm on the postgres dialector over a sqlmock connection
func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock, *sql.DB) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	dialector := postgres.New(postgres.Config{
		Conn:       mockDB,
		DriverName: "postgres",
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)

	return gormDB, mock, mockDB
}

func TestRFIDCardRepository_FindByCode(t *testing.T) {
	t.Run("resolves bound card", func(t *testing.T) {
		db, mock, mockDB := newMockDB(t)
		defer mockDB.Close()

		rows := sqlmock.NewRows([]string{"id", "card_code", "resident_id", "active", "paired_at", "updated_at"}).
			AddRow(1, "04A2B9C1", "warga_001", true, time.Now(), time.Now())

		mock.ExpectQuery(`SELECT \* FROM "rfid_cards" WHERE card_code = \$1 ORDER BY .* LIMIT .*`).
			WithArgs("04A2B9C1", 1).
			WillReturnRows(rows)

		card, err := NewRFIDCardRepository(db).FindByCode(context.Background(), "04A2B9C1")

		require.NoError(t, err)
		assert.Equal(t, "warga_001", card.ResidentID)
		assert.True(t, card.Active)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("unknown card", func(t *testing.T) {
		db, mock, mockDB := newMockDB(t)
		defer mockDB.Close()

		mock.ExpectQuery(`SELECT \* FROM "rfid_cards" WHERE card_code = \$1 ORDER BY .* LIMIT .*`).
			WithArgs("FFFF", 1).
			WillReturnError(gorm.ErrRecordNotFound)

		card, err := NewRFIDCardRepository(db).FindByCode(context.Background(), "FFFF")

		assert.Nil(t, card)
		assert.True(t, errors.Is(err, allocation.ErrCardNotFound))
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestPeriodRepository_ApplyPaymentUsesVersionGuard(t *testing.T) {
	db, mock, mockDB := newMockDB(t)
	defer mockDB.Close()

	rows := sqlmock.NewRows([]string{"id", "resident_id", "period_key", "ordinal", "amount_due", "amount_paid", "status", "version"}).
		AddRow(7, "warga_001", "period_1", 1, 40000, 0, "unpaid", 3)

	mock.ExpectQuery(`SELECT \* FROM "billing_periods" WHERE resident_id = \$1 AND period_key = \$2 ORDER BY .* LIMIT .*`).
		WithArgs("warga_001", "period_1", 1).
		WillReturnRows(rows)
	mock.ExpectExec(`UPDATE "billing_periods" SET .* WHERE id = \$\d+ AND version = \$\d+`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	_, err := NewPeriodRepository(db).ApplyPayment(context.Background(), "warga_001", "period_1", 10000, 3)

	assert.True(t, errors.Is(err, allocation.ErrConcurrentModification))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPeriodRepository_RefreshOverdueStatement(t *testing.T) {
	t.Run("reports affected rows", func(t *testing.T) {
		db, mock, mockDB := newMockDB(t)
		defer mockDB.Close()

		mock.ExpectExec(`UPDATE "billing_periods" SET .* WHERE status IN \(\$\d+,\$\d+\) AND due_date < \$\d+`).
			WillReturnResult(sqlmock.NewResult(0, 4))

		affected, err := NewPeriodRepository(db).RefreshOverdue(context.Background(), time.Now())

		require.NoError(t, err)
		assert.Equal(t, int64(4), affected)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("wraps database errors", func(t *testing.T) {
		db, mock, mockDB := newMockDB(t)
		defer mockDB.Close()

		mock.ExpectExec(`UPDATE "billing_periods"`).
			WillReturnError(errors.New("connection reset"))

		_, err := NewPeriodRepository(db).RefreshOverdue(context.Background(), time.Now())

		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to refresh overdue periods")
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
