package service

import (
	"context"
	"sync"
	"time"

	"github.com/shenikar/rescuenet_portal/internal/models"
	"github.com/sirupsen/logrus"
)

// NewsFeed - общая для процесса лента оповещений.
// Обновляется по таймеру и вручную, запоздавший ответ старого поколения отбрасывается.
type NewsFeed struct {
	client   IntelligenceClient
	logger   *logrus.Logger
	location string
	interval time.Duration
	now      func() time.Time

	mu        sync.Mutex
	items     []models.NewsUpdate
	fetchedAt time.Time
	issued    uint64
	applied   uint64
	inFlight  int

	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func NewNewsFeed(client IntelligenceClient, logger *logrus.Logger, location string, interval time.Duration) *NewsFeed {
	return &NewsFeed{
		client:   client,
		logger:   logger,
		location: location,
		interval: interval,
		now:      time.Now,
		items:    []models.NewsUpdate{},
	}
}

// Start сразу запрашивает ленту и дальше обновляет ее каждые interval.
// Повторный вызов без Stop ничего не делает.
func (n *NewsFeed) Start(ctx context.Context) {
	n.mu.Lock()
	if n.cancel != nil {
		n.mu.Unlock()
		return
	}
	ctx, cancel := context.WithCancel(ctx)
	n.cancel = cancel
	n.mu.Unlock()

	n.logger.WithFields(logrus.Fields{
		"service":  "news",
		"location": n.location,
		"interval": n.interval.String(),
	}).Info("Starting news poller")

	n.wg.Add(1)
	go func() {
		defer n.wg.Done()

		ticker := time.NewTicker(n.interval)
		defer ticker.Stop()

		n.Refresh(ctx)
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				n.Refresh(ctx)
			}
		}
	}()
}

// Stop останавливает опрос и дожидается завершения горутины
func (n *NewsFeed) Stop() {
	n.mu.Lock()
	cancel := n.cancel
	n.cancel = nil
	n.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	n.wg.Wait()
}

// Refresh запрашивает ленту вне расписания
func (n *NewsFeed) Refresh(ctx context.Context) models.NewsFeedSnapshot {
	n.mu.Lock()
	n.issued++
	gen := n.issued
	n.inFlight++
	n.mu.Unlock()

	items := n.client.FetchAlerts(ctx, n.location)

	n.mu.Lock()
	defer n.mu.Unlock()
	n.inFlight--

	log := n.logger.WithFields(logrus.Fields{
		"service":    "news",
		"method":     "Refresh",
		"generation": gen,
	})
	if gen <= n.applied {
		log.WithField("applied", n.applied).Debug("Discarding stale news result")
		return n.snapshotLocked()
	}

	n.applied = gen
	n.items = items
	n.fetchedAt = n.now()
	log.WithField("count", len(items)).Debug("News feed updated")

	return n.snapshotLocked()
}

func (n *NewsFeed) Snapshot() models.NewsFeedSnapshot {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.snapshotLocked()
}

func (n *NewsFeed) snapshotLocked() models.NewsFeedSnapshot {
	items := make([]models.NewsUpdate, len(n.items))
	copy(items, n.items)
	return models.NewsFeedSnapshot{
		Items:      items,
		Loading:    n.inFlight > 0,
		FetchedAt:  n.fetchedAt,
		Generation: n.applied,
	}
}
