package cache

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jimpitan-be-svc/internal/config"
	"jimpitan-be-svc/pkg/logger"
)

func TestMemoryEventStore_MarksOnce(t *testing.T) {
	store := NewMemoryEventStore()
	defer store.Close()
	ctx := context.Background()

	fresh, err := store.MarkProcessed(ctx, "evt-1", time.Hour)
	require.NoError(t, err)
	assert.True(t, fresh)

	fresh, err = store.MarkProcessed(ctx, "evt-1", time.Hour)
	require.NoError(t, err)
	assert.False(t, fresh)

	fresh, err = store.MarkProcessed(ctx, "evt-2", time.Hour)
	require.NoError(t, err)
	assert.True(t, fresh)
}

func TestMemoryEventStore_ExpiredMarkIsReusable(t *testing.T) {
	store := newMemoryEventStore(time.Hour)
	defer store.Close()

	current := time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return current }
	ctx := context.Background()

	fresh, _ := store.MarkProcessed(ctx, "evt-1", time.Minute)
	assert.True(t, fresh)

	current = current.Add(2 * time.Minute)
	fresh, _ = store.MarkProcessed(ctx, "evt-1", time.Minute)
	assert.True(t, fresh)
}

func TestMemoryEventStore_ForgetAllowsRetry(t *testing.T) {
	store := NewMemoryEventStore()
	defer store.Close()
	ctx := context.Background()

	_, _ = store.MarkProcessed(ctx, "evt-1", time.Hour)
	require.NoError(t, store.Forget(ctx, "evt-1"))

	fresh, err := store.MarkProcessed(ctx, "evt-1", time.Hour)
	require.NoError(t, err)
	assert.True(t, fresh)
}

func TestMemoryEventStore_SweepDropsExpired(t *testing.T) {
	store := newMemoryEventStore(time.Hour)
	defer store.Close()

	current := time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return current }
	ctx := context.Background()

	_, _ = store.MarkProcessed(ctx, "short", time.Minute)
	_, _ = store.MarkProcessed(ctx, "long", time.Hour)

	current = current.Add(10 * time.Minute)
	store.sweep()

	assert.Equal(t, 1, store.size())
}

func TestMemoryEventStore_ConcurrentMarksHaveOneWinner(t *testing.T) {
	store := NewMemoryEventStore()
	defer store.Close()

	var winners int32
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if fresh, _ := store.MarkProcessed(context.Background(), "evt-race", time.Hour); fresh {
				atomic.AddInt32(&winners, 1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), winners)
}

func TestMemoryEventStore_CloseIsIdempotent(t *testing.T) {
	store := NewMemoryEventStore()
	assert.NoError(t, store.Close())
	assert.NoError(t, store.Close())
}

func TestNewEventStore_FallsBackToMemory(t *testing.T) {
	store := NewEventStore(config.RedisConfig{}, logger.NewNopLogger())
	defer store.Close()

	_, ok := store.(*memoryEventStore)
	assert.True(t, ok)
}
