package receipts

import (
	"context"
	"sync"
)

type memoryRepository struct {
	mu     sync.RWMutex
	events map[string][]Event // keyed by user id, newest last
}

// NewMemoryRepository builds an in-memory activity log for development and tests.
func NewMemoryRepository() Repository {
	return &memoryRepository{events: make(map[string][]Event)}
}

func (r *memoryRepository) Record(_ context.Context, event Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events[event.UserID] = append(r.events[event.UserID], event)
	return nil
}

func (r *memoryRepository) ListRecent(_ context.Context, userID string, limit int) ([]Event, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	stored := r.events[userID]
	if limit <= 0 || limit > len(stored) {
		limit = len(stored)
	}
	events := make([]Event, 0, limit)
	for i := len(stored) - 1; i >= 0 && len(events) < limit; i-- {
		events = append(events, stored[i])
	}
	return events, nil
}
