package cache

import (
	"context"
	"time"

	"jimpitan-be-svc/internal/config"
	"jimpitan-be-svc/pkg/logger"
)

// EventStore remembers which payment events were already processed
type EventStore interface {
	// MarkProcessed returns true when eventID was not seen within its TTL, false for a duplicate
	MarkProcessed(ctx context.Context, eventID string, ttl time.Duration) (bool, error)
	// Forget drops the mark so a failed event can be delivered again
	Forget(ctx context.Context, eventID string) error
	Close() error
}

// NewEventStore returns a Redis backed store when REDIS_ADDR is set and reachable,
// otherwise an in-memory store local to this instance
func NewEventStore(cfg config.RedisConfig, log *logger.Logger) EventStore {
	if cfg.Addr == "" {
		log.Info("REDIS_ADDR not set, using in-memory RFID event store")
		return NewMemoryEventStore()
	}

	store, err := NewRedisEventStore(cfg)
	if err != nil {
		log.WithError(err).WithField("addr", cfg.Addr).Warn("Redis unavailable, falling back to in-memory RFID event store")
		return NewMemoryEventStore()
	}

	log.WithField("addr", cfg.Addr).Info("Using Redis RFID event store")
	return store
}
