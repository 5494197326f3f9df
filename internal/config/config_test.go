package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("PAYMENT_CREDIT_CAP_MULTIPLIER", "")
	t.Setenv("PAYMENT_MAX_COMMIT_ATTEMPTS", "")
	t.Setenv("RFID_EVENT_TTL", "")
	t.Setenv("REDIS_ADDR", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, int64(3), cfg.Payment.CreditCapMultiplier)
	assert.Equal(t, 3, cfg.Payment.MaxCommitAttempts)
	assert.Equal(t, 24*time.Hour, cfg.Redis.EventTTL)
	assert.Empty(t, cfg.Redis.Addr)
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("DB_PORT", "6543")
	t.Setenv("PAYMENT_CREDIT_CAP_MULTIPLIER", "5")
	t.Setenv("PAYMENT_MAX_COMMIT_ATTEMPTS", "7")
	t.Setenv("RFID_EVENT_TTL", "90m")
	t.Setenv("REDIS_ADDR", "localhost:6379")
	t.Setenv("REDIS_DB", "2")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, 6543, cfg.Database.Port)
	assert.Equal(t, int64(5), cfg.Payment.CreditCapMultiplier)
	assert.Equal(t, 7, cfg.Payment.MaxCommitAttempts)
	assert.Equal(t, 90*time.Minute, cfg.Redis.EventTTL)
	assert.Equal(t, "localhost:6379", cfg.Redis.Addr)
	assert.Equal(t, 2, cfg.Redis.DB)
}

func TestLoad_InvalidNumbersFallBack(t *testing.T) {
	t.Setenv("DB_PORT", "not-a-port")
	t.Setenv("RFID_EVENT_TTL", "forever")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, 24*time.Hour, cfg.Redis.EventTTL)
}

func TestLoad_RejectsZeroCommitAttempts(t *testing.T) {
	t.Setenv("PAYMENT_MAX_COMMIT_ATTEMPTS", "0")

	_, err := Load()
	assert.Error(t, err)
}

func TestDatabaseConfig_GetDSN(t *testing.T) {
	d := DatabaseConfig{Host: "db", Port: 5432, User: "u", Password: "p", DBName: "jimpitan", SSLMode: "disable"}
	assert.Equal(t, "host=db port=5432 user=u password=p dbname=jimpitan sslmode=disable", d.GetDSN())
}
