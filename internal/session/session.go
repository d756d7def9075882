package session

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/rescuenet_portal/internal/service"
	"github.com/shenikar/rescuenet_portal/internal/staticdata"
	"github.com/sirupsen/logrus"
)

// maxIDLength ограничивает идентификатор, присланный клиентом
const maxIDLength = 64

// Session - набор контроллеров экрана, принадлежащий одному браузеру
type Session struct {
	ID         string
	Shell      *service.Shell
	Map        *service.ZoneInspector
	Places     *service.PlaceSearch
	Facilities *service.FacilityFinder
	Explorer   *service.RegionalExplorer
	Reporting  *service.ReportingController
	Support    *service.SupportDesk

	lastSeen time.Time
}

// Close останавливает таймеры сессии
func (s *Session) Close() {
	s.Shell.Close()
}

// Dependencies - общие для всех сессий зависимости
type Dependencies struct {
	Client   service.IntelligenceClient
	Store    *staticdata.Store
	Activity service.ActivityRepository
	Logger   *logrus.Logger
}

// NewSession собирает контроллеры новой сессии
func NewSession(id string, deps Dependencies) *Session {
	return &Session{
		ID:         id,
		Shell:      service.NewShell(deps.Store, deps.Logger),
		Map:        service.NewZoneInspector(deps.Store, deps.Logger),
		Places:     service.NewPlaceSearch(deps.Client, deps.Store, deps.Logger),
		Facilities: service.NewFacilityFinder(deps.Client, deps.Store, deps.Logger),
		Explorer:   service.NewRegionalExplorer(deps.Client, deps.Logger),
		Reporting:  service.NewReportingController(deps.Client, deps.Logger),
		Support:    service.NewSupportDesk(deps.Activity, deps.Logger),
	}
}

// Registry хранит сессии и удаляет те, что простаивают дольше ttl
type Registry struct {
	deps   Dependencies
	ttl    time.Duration
	logger *logrus.Logger
	now    func() time.Time

	mu       sync.Mutex
	sessions map[string]*Session
}

func NewRegistry(deps Dependencies, ttl time.Duration) *Registry {
	return &Registry{
		deps:     deps,
		ttl:      ttl,
		logger:   deps.Logger,
		now:      time.Now,
		sessions: make(map[string]*Session),
	}
}

// Resolve возвращает сессию по идентификатору, создавая ее при необходимости.
// Пустой или слишком длинный идентификатор заменяется новым UUID.
func (r *Registry) Resolve(id string) *Session {
	if id == "" || len(id) > maxIDLength {
		id = uuid.NewString()
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	sess, ok := r.sessions[id]
	if !ok {
		sess = NewSession(id, r.deps)
		r.sessions[id] = sess
		r.logger.WithField("session_id", id).Debug("Session created")
	}
	sess.lastSeen = r.now()
	return sess
}

// Sweep закрывает сессии, простаивающие дольше ttl, и возвращает их число
func (r *Registry) Sweep() int {
	cutoff := r.now().Add(-r.ttl)

	r.mu.Lock()
	var expired []*Session
	for id, sess := range r.sessions {
		if sess.lastSeen.Before(cutoff) {
			expired = append(expired, sess)
			delete(r.sessions, id)
		}
	}
	r.mu.Unlock()

	for _, sess := range expired {
		sess.Close()
	}
	if len(expired) > 0 {
		r.logger.WithField("expired", len(expired)).Info("Idle sessions expired")
	}
	return len(expired)
}

// Run периодически чистит сессии до отмены контекста, затем закрывает все оставшиеся
func (r *Registry) Run(ctx context.Context, interval time.Duration) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			r.Close()
			return nil
		case <-ticker.C:
			r.Sweep()
		}
	}
}

// Close закрывает все сессии
func (r *Registry) Close() {
	r.mu.Lock()
	sessions := r.sessions
	r.sessions = make(map[string]*Session)
	r.mu.Unlock()

	for _, sess := range sessions {
		sess.Close()
	}
}

func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions)
}
