package cache

import (
	"context"
	"sync"
	"time"
)

// memoryEventStore implements EventStore with a map swept by a background goroutine
type memoryEventStore struct {
	mu        sync.Mutex
	expiries  map[string]time.Time
	stop      chan struct{}
	wg        sync.WaitGroup
	closeOnce sync.Once
	now       func() time.Time
}

// NewMemoryEventStore creates an in-memory EventStore
func NewMemoryEventStore() EventStore {
	return newMemoryEventStore(time.Minute)
}

func newMemoryEventStore(sweepEvery time.Duration) *memoryEventStore {
	s := &memoryEventStore{
		expiries: make(map[string]time.Time),
		stop:     make(chan struct{}),
		now:      time.Now,
	}

	s.wg.Add(1)
	go s.sweepLoop(sweepEvery)

	return s
}

func (s *memoryEventStore) MarkProcessed(ctx context.Context, eventID string, ttl time.Duration) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	if expiresAt, ok := s.expiries[eventID]; ok && now.Before(expiresAt) {
		return false, nil
	}

	s.expiries[eventID] = now.Add(ttl)
	return true, nil
}

func (s *memoryEventStore) Forget(ctx context.Context, eventID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.expiries, eventID)
	return nil
}

func (s *memoryEventStore) Close() error {
	s.closeOnce.Do(func() {
		close(s.stop)
		s.wg.Wait()
	})
	return nil
}

func (s *memoryEventStore) sweepLoop(every time.Duration) {
	defer s.wg.Done()

	ticker := time.NewTicker(every)
	defer ticker.Stop()

	for {
		select {
		case <-s.stop:
			return
		case <-ticker.C:
			s.sweep()
		}
	}
}

func (s *memoryEventStore) sweep() {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	for eventID, expiresAt := range s.expiries {
		if !now.Before(expiresAt) {
			delete(s.expiries, eventID)
		}
	}
}

func (s *memoryEventStore) size() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.expiries)
}
