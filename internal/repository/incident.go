package repository

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/shenikar/rescuenet_portal/internal/models"
	"github.com/shenikar/rescuenet_portal/internal/service"
)

// IncidentRepository хранит инциденты админ-консоли в памяти процесса, новые первыми
type IncidentRepository struct {
	mu        sync.RWMutex
	incidents []*models.Incident
}

// NewIncidentRepository создает хранилище, заполненное начальными инцидентами
func NewIncidentRepository(seed []*models.Incident) service.IncidentRepository {
	r := &IncidentRepository{}
	for _, incident := range seed {
		c := *incident
		r.incidents = append(r.incidents, &c)
	}
	return r
}

// Create добавляет инцидент в начало списка
func (r *IncidentRepository) Create(_ context.Context, incident *models.Incident) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.indexOf(incident.ID) >= 0 {
		return fmt.Errorf("incident with id %s already exists", incident.ID)
	}
	c := *incident
	r.incidents = append([]*models.Incident{&c}, r.incidents...)
	return nil
}

// GetByID возвращает копию инцидента по его UUID
func (r *IncidentRepository) GetByID(_ context.Context, id uuid.UUID) (*models.Incident, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i := r.indexOf(id)
	if i < 0 {
		return nil, fmt.Errorf("incident with id %s: %w", id, service.ErrIncidentNotFound)
	}
	c := *r.incidents[i]
	return &c, nil
}

func (r *IncidentRepository) Update(_ context.Context, incident *models.Incident) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(incident.ID)
	if i < 0 {
		return fmt.Errorf("incident with id %s not found for update: %w", incident.ID, service.ErrIncidentNotFound)
	}
	c := *incident
	r.incidents[i] = &c
	return nil
}

// Delete удаляет инцидент из списка
func (r *IncidentRepository) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return fmt.Errorf("incident with id %s not found for delete: %w", id, service.ErrIncidentNotFound)
	}
	r.incidents = append(r.incidents[:i], r.incidents[i+1:]...)
	return nil
}

// ListIncidents возвращает страницу инцидентов
func (r *IncidentRepository) ListIncidents(_ context.Context, page, pageSize int) ([]*models.Incident, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	// рассчитываем смещение
	offset := (page - 1) * pageSize
	if offset < 0 || offset >= len(r.incidents) {
		return []*models.Incident{}, nil
	}
	end := min(offset+pageSize, len(r.incidents))
	return cloneIncidents(r.incidents[offset:end]), nil
}

func (r *IncidentRepository) ListAll(_ context.Context) ([]*models.Incident, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return cloneIncidents(r.incidents), nil
}

func (r *IncidentRepository) indexOf(id uuid.UUID) int {
	for i, incident := range r.incidents {
		if incident.ID == id {
			return i
		}
	}
	return -1
}

func cloneIncidents(src []*models.Incident) []*models.Incident {
	out := make([]*models.Incident, 0, len(src))
	for _, incident := range src {
		c := *incident
		out = append(out, &c)
	}
	return out
}
