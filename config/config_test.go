package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg := LoadConfig()

	assert.Equal(t, "5432", cfg.Database.Port)
	assert.Equal(t, 3*time.Second, cfg.Database.LockTimeout)
	assert.Equal(t, 100, cfg.Queue.MaxActive)
	assert.Equal(t, 10, cfg.Queue.BatchSize)
	assert.Equal(t, 10*time.Minute, cfg.Queue.ActiveTTL)
	assert.Equal(t, 5*time.Minute, cfg.Booking.HoldWindow)
	assert.Equal(t, 3*time.Second, cfg.Booking.PaymentLockWait)
	assert.Equal(t, 5*time.Second, cfg.Booking.PaymentLockLease)
	assert.Equal(t, 10*time.Second, cfg.Reconciler.ActivationInterval)
	assert.Same(t, AppConfig, cfg)
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("QUEUE_MAX_ACTIVE", "500")
	t.Setenv("BOOKING_HOLD_WINDOW", "90s")
	t.Setenv("NOTIFIER_KAFKA_BROKERS", "k1:9092, k2:9092,")

	cfg := LoadConfig()

	assert.Equal(t, 500, cfg.Queue.MaxActive)
	assert.Equal(t, 90*time.Second, cfg.Booking.HoldWindow)
	assert.Equal(t, []string{"k1:9092", "k2:9092"}, cfg.Notifier.KafkaBrokers)
}

func TestLoadConfigPanicsOnInvalidValue(t *testing.T) {
	t.Setenv("REDIS_DB", "one")
	assert.Panics(t, func() { LoadConfig() })
}

func TestLoadTestConfig(t *testing.T) {
	cfg := LoadTestConfig()

	assert.Equal(t, "5433", cfg.Database.Port)
	assert.Equal(t, "6380", cfg.Redis.Port)
	assert.Equal(t, 1, cfg.Redis.DB)
	assert.Equal(t, "memory", cfg.Events.Bus)
}
