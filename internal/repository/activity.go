package repository

import (
	"context"
	"sync"

	"github.com/shenikar/rescuenet_portal/internal/models"
	"github.com/shenikar/rescuenet_portal/internal/service"
)

// DefaultActivityCapacity - сколько записей хранит лента активности
const DefaultActivityCapacity = 5

// ActivityLog - ограниченная лента активности, самая старая запись вытесняется
type ActivityLog struct {
	mu       sync.Mutex
	capacity int
	entries  []models.ActivityEntry
}

// NewActivityLog создает ленту с начальными записями (новые первыми)
func NewActivityLog(capacity int, seed []models.ActivityEntry) service.ActivityRepository {
	if capacity < 1 {
		capacity = DefaultActivityCapacity
	}
	l := &ActivityLog{capacity: capacity}
	l.entries = append(l.entries, seed[:min(len(seed), capacity)]...)
	return l
}

func (l *ActivityLog) Prepend(_ context.Context, entry models.ActivityEntry) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	keep := min(len(l.entries), l.capacity-1)
	entries := make([]models.ActivityEntry, 0, keep+1)
	entries = append(entries, entry)
	l.entries = append(entries, l.entries[:keep]...)
	return nil
}

func (l *ActivityLog) List(_ context.Context) ([]models.ActivityEntry, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make([]models.ActivityEntry, len(l.entries))
	copy(out, l.entries)
	return out, nil
}
