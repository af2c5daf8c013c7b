package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "channelsync", cfg.App.Name)
	assert.Equal(t, "8080", cfg.App.Port)
	assert.Equal(t, "localhost", cfg.Database.Host)
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, 6379, cfg.Redis.Port)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)

	assert.Equal(t, 50, cfg.Validation.MaxBatchSize)
	assert.Equal(t, 500*time.Millisecond, cfg.Validation.PerOrderEstimate)
	assert.Equal(t, 30*time.Second, cfg.Validation.MaxEstimatedDuration)
	assert.Equal(t, 30*time.Second, cfg.Validation.MaxSyncDuration)
	assert.Equal(t, 5*time.Second, cfg.Validation.MaxOrderProcessingTime)

	assert.Equal(t, "ID", cfg.Calendar.Region)
	assert.Equal(t, "Asia/Jakarta", cfg.Calendar.Timezone)
	assert.Equal(t, 24*time.Hour, cfg.Calendar.CacheTTL)
	assert.Equal(t, 5*time.Minute, cfg.Health.Interval)
}

func TestLoad_EnvironmentOverride(t *testing.T) {
	t.Setenv("CHANNELSYNC_APP_PORT", "9090")
	t.Setenv("CHANNELSYNC_DATABASE_HOST", "db.internal")
	t.Setenv("CHANNELSYNC_VALIDATION_MAXBATCHSIZE", "100")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.App.Port)
	assert.Equal(t, "db.internal", cfg.Database.Host)
	assert.Equal(t, 100, cfg.Validation.MaxBatchSize)
}

func TestConfig_Validate(t *testing.T) {
	valid := Config{
		Validation: ValidationConfig{MaxBatchSize: 50, MaxSyncDuration: 30 * time.Second},
		Calendar:   CalendarConfig{Region: "ID", Timezone: "Asia/Jakarta"},
	}
	assert.NoError(t, valid.Validate())

	noBatch := valid
	noBatch.Validation.MaxBatchSize = 0
	assert.Error(t, noBatch.Validate())

	noDuration := valid
	noDuration.Validation.MaxSyncDuration = 0
	assert.Error(t, noDuration.Validate())

	noRegion := valid
	noRegion.Calendar.Region = ""
	assert.Error(t, noRegion.Validate())

	noTimezone := valid
	noTimezone.Calendar.Timezone = ""
	assert.Error(t, noTimezone.Validate())
}

func TestDatabaseConfig_DSN(t *testing.T) {
	cfg := DatabaseConfig{
		Host:     "localhost",
		Port:     5432,
		User:     "postgres",
		Password: "secret",
		DBName:   "channelsync",
		SSLMode:  "disable",
	}

	assert.Equal(t,
		"host=localhost port=5432 user=postgres password=secret dbname=channelsync sslmode=disable",
		cfg.DSN())
}

func TestRedisConfig_Addr(t *testing.T) {
	cfg := RedisConfig{Host: "localhost", Port: 6379}
	assert.Equal(t, "localhost:6379", cfg.Addr())
}
