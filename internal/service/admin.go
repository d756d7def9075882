package service

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/rescuenet_portal/internal/broadcast"
	"github.com/shenikar/rescuenet_portal/internal/models"
	"github.com/sirupsen/logrus"
)

//go:generate mockgen -source=admin.go -destination=mocks/incident_mock.go -package=mocks

// IncidentRepository определяет контракт для хранилища инцидентов админ-консоли
type IncidentRepository interface {
	Create(ctx context.Context, incident *models.Incident) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Incident, error)
	Update(ctx context.Context, incident *models.Incident) error
	Delete(ctx context.Context, id uuid.UUID) error
	ListIncidents(ctx context.Context, page, pageSize int) ([]*models.Incident, error)
	ListAll(ctx context.Context) ([]*models.Incident, error)
}

// AdminConsole определяет контракт для бизнес-логики админ-консоли
type AdminConsole interface {
	CreateIncident(ctx context.Context, incident *models.Incident) error
	ListIncidents(ctx context.Context, page, pageSize int) ([]*models.Incident, error)
	DeleteIncident(ctx context.Context, id uuid.UUID) error
	UpdateStatus(ctx context.Context, id uuid.UUID, status models.IncidentStatus) (*models.Incident, error)
	Stats(ctx context.Context) (*models.IncidentStats, error)
	SetBroadcastDraft(text string) string
	BroadcastDraft() string
	SendBroadcast(ctx context.Context) (*broadcast.Message, error)
}

const (
	defaultIncidentName     = "Unnamed Incident"
	defaultIncidentLocation = "Unknown"
)

type adminConsole struct {
	repo      IncidentRepository
	publisher broadcast.Publisher
	logger    *logrus.Logger
	now       func() time.Time

	mu    sync.Mutex
	draft string
}

func NewAdminConsole(repo IncidentRepository, publisher broadcast.Publisher, logger *logrus.Logger) AdminConsole {
	return &adminConsole{
		repo:      repo,
		publisher: publisher,
		logger:    logger,
		now:       time.Now,
	}
}

// CreateIncident заводит инцидент. Пустые поля заполняются значениями по умолчанию.
func (s *adminConsole) CreateIncident(ctx context.Context, incident *models.Incident) error {
	incident.Name = strings.TrimSpace(incident.Name)
	if incident.Name == "" {
		incident.Name = defaultIncidentName
	}
	incident.Location = strings.TrimSpace(incident.Location)
	if incident.Location == "" {
		incident.Location = defaultIncidentLocation
	}
	if incident.Severity == "" {
		incident.Severity = models.IncidentSeverityMedium
	}

	log := s.logger.WithFields(logrus.Fields{
		"service":  "admin",
		"method":   "CreateIncident",
		"name":     incident.Name,
		"severity": incident.Severity,
	})
	log.Info("Attempting to create a new incident")

	if !validSeverity(incident.Severity) {
		log.Warn("Rejected incident with unknown severity")
		return fmt.Errorf("service: severity %q: %w", incident.Severity, ErrValidation)
	}

	now := s.now()
	incident.ID = uuid.New()
	incident.Status = models.IncidentStatusReported
	incident.CreatedAt = now
	incident.LastUpdated = now

	if err := s.repo.Create(ctx, incident); err != nil {
		log.WithError(err).Error("Failed to create incident in repository")
		return fmt.Errorf("service: could not create incident: %w", err)
	}

	log.WithField("incident_id", incident.ID).Info("Incident created successfully")
	return nil
}

// ListIncidents возвращает список инцидентов с пагинацией, новые первыми
func (s *adminConsole) ListIncidents(ctx context.Context, page, pageSize int) ([]*models.Incident, error) {
	if page < 1 {
		page = 1
	}

	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	log := s.logger.WithFields(logrus.Fields{
		"service":   "admin",
		"method":    "ListIncidents",
		"page":      page,
		"page_size": pageSize,
	})

	incidents, err := s.repo.ListIncidents(ctx, page, pageSize)
	if err != nil {
		log.WithError(err).Error("Failed to list incidents from repository")
		return nil, fmt.Errorf("service: could not list incidents: %w", err)
	}

	log.WithField("count", len(incidents)).Debug("Incidents listed successfully")
	return incidents, nil
}

// DeleteIncident удаляет инцидент из списка
func (s *adminConsole) DeleteIncident(ctx context.Context, id uuid.UUID) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "admin",
		"method":      "DeleteIncident",
		"incident_id": id,
	})
	log.Info("Attempting to delete incident")

	if _, err := s.repo.GetByID(ctx, id); err != nil {
		log.WithError(err).Warn("Attempted to delete a non-existent incident")
		return fmt.Errorf("service: incident with id %s not found for delete: %w", id, err)
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		log.WithError(err).Error("Failed to delete incident in repository")
		return fmt.Errorf("service: could not delete incident: %w", err)
	}

	log.Info("Incident deleted successfully")
	return nil
}

// UpdateStatus переводит инцидент на следующий этап реагирования
func (s *adminConsole) UpdateStatus(ctx context.Context, id uuid.UUID, status models.IncidentStatus) (*models.Incident, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "admin",
		"method":      "UpdateStatus",
		"incident_id": id,
		"status":      status,
	})

	if !validStatus(status) {
		return nil, fmt.Errorf("service: status %q: %w", status, ErrValidation)
	}

	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		log.WithError(err).Warn("Attempted to update a non-existent incident")
		return nil, fmt.Errorf("service: incident with id %s not found for update: %w", id, err)
	}

	existing.Status = status
	existing.LastUpdated = s.now()
	if err := s.repo.Update(ctx, existing); err != nil {
		log.WithError(err).Error("Failed to update incident in repository")
		return nil, fmt.Errorf("service: could not update incident: %w", err)
	}

	log.Info("Incident status updated successfully")
	return existing, nil
}

// Stats считает инциденты по степени опасности и статусу
func (s *adminConsole) Stats(ctx context.Context) (*models.IncidentStats, error) {
	incidents, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: could not load incidents for stats: %w", err)
	}

	stats := &models.IncidentStats{
		Total:      len(incidents),
		BySeverity: map[models.IncidentSeverity]int{},
		ByStatus:   map[models.IncidentStatus]int{},
	}
	for _, incident := range incidents {
		stats.BySeverity[incident.Severity]++
		stats.ByStatus[incident.Status]++
	}
	return stats, nil
}

// SetBroadcastDraft сохраняет черновик рассылки
func (s *adminConsole) SetBroadcastDraft(text string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.draft = text
	return s.draft
}

func (s *adminConsole) BroadcastDraft() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.draft
}

// SendBroadcast публикует черновик и очищает его.
// При ошибке публикации черновик остается.
func (s *adminConsole) SendBroadcast(ctx context.Context) (*broadcast.Message, error) {
	s.mu.Lock()
	text := strings.TrimSpace(s.draft)
	s.mu.Unlock()

	log := s.logger.WithFields(logrus.Fields{
		"service": "admin",
		"method":  "SendBroadcast",
	})

	if text == "" {
		return nil, fmt.Errorf("service: broadcast message is empty: %w", ErrValidation)
	}

	msg := broadcast.Message{
		ID:        uuid.NewString(),
		Text:      text,
		CreatedAt: s.now(),
	}
	if err := s.publisher.Publish(ctx, msg); err != nil {
		log.WithError(err).Error("Failed to publish broadcast")
		return nil, fmt.Errorf("service: could not publish broadcast: %w", err)
	}

	s.mu.Lock()
	if strings.TrimSpace(s.draft) == text {
		s.draft = ""
	}
	s.mu.Unlock()

	log.WithField("broadcast_id", msg.ID).Info("Broadcast published")
	return &msg, nil
}

func validSeverity(severity models.IncidentSeverity) bool {
	switch severity {
	case models.IncidentSeverityCritical, models.IncidentSeverityHigh,
		models.IncidentSeverityMedium, models.IncidentSeverityLow:
		return true
	}
	return false
}

func validStatus(status models.IncidentStatus) bool {
	switch status {
	case models.IncidentStatusReported, models.IncidentStatusInProgress,
		models.IncidentStatusContainment, models.IncidentStatusResolved:
		return true
	}
	return false
}
