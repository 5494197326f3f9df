package cache

import (
	"context"
	"fmt"
	"time"

	"jimpitan-be-svc/internal/config"

	"github.com/redis/go-redis/v9"
)

const eventKeyPrefix = "jimpitan:payment-event:"

// redisEventStore implements EventStore on Redis so every instance shares the same marks
type redisEventStore struct {
	client    *redis.Client
	keyPrefix string
}

// NewRedisEventStore connects to Redis and verifies the connection
func NewRedisEventStore(cfg config.RedisConfig) (EventStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	return NewRedisEventStoreWithClient(client), nil
}

// NewRedisEventStoreWithClient wraps an existing client
func NewRedisEventStoreWithClient(client *redis.Client) EventStore {
	return &redisEventStore{
		client:    client,
		keyPrefix: eventKeyPrefix,
	}
}

// MarkProcessed uses SETNX so two instances racing on the same event cannot both win
func (s *redisEventStore) MarkProcessed(ctx context.Context, eventID string, ttl time.Duration) (bool, error) {
	ok, err := s.client.SetNX(ctx, s.keyPrefix+eventID, "1", ttl).Result()
	if err != nil {
		return false, fmt.Errorf("failed to mark event as processed: %w", err)
	}
	return ok, nil
}

func (s *redisEventStore) Forget(ctx context.Context, eventID string) error {
	if err := s.client.Del(ctx, s.keyPrefix+eventID).Err(); err != nil {
		return fmt.Errorf("failed to forget event: %w", err)
	}
	return nil
}

func (s *redisEventStore) Close() error {
	return s.client.Close()
}
