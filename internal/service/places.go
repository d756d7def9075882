package service

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/shenikar/rescuenet_portal/internal/models"
	"github.com/sirupsen/logrus"
)

// PlaceSearch - поиск мест рядом с пользователем
type PlaceSearch struct {
	client  IntelligenceClient
	catalog ZoneCatalog
	logger  *logrus.Logger

	mu     sync.Mutex
	gen    generation
	query  string
	origin *models.Coordinates
	result *models.GroundingResult
}

func NewPlaceSearch(client IntelligenceClient, catalog ZoneCatalog, logger *logrus.Logger) *PlaceSearch {
	return &PlaceSearch{
		client:  client,
		catalog: catalog,
		logger:  logger,
	}
}

// Search ищет места поблизости. Без координат (геолокация недоступна)
// используется центр карты по умолчанию.
func (p *PlaceSearch) Search(ctx context.Context, query string, origin *models.Coordinates) (models.GroundingResult, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return models.GroundingResult{}, fmt.Errorf("service: empty place query: %w", ErrValidation)
	}

	log := p.logger.WithFields(logrus.Fields{
		"service": "places",
		"method":  "Search",
	})

	point := p.catalog.DefaultCenter()
	if origin != nil && validCoordinates(*origin) {
		point = *origin
	} else {
		log.Debug("No usable coordinates, falling back to default center")
	}

	p.mu.Lock()
	gen := p.gen.next()
	p.query = query
	p.origin = &point
	p.result = nil
	p.mu.Unlock()

	result := p.client.SearchNearbyPlaces(ctx, query, point.Lat, point.Lng)

	p.mu.Lock()
	if p.gen.isCurrent(gen) {
		p.result = &result
	} else {
		log.WithField("generation", gen).Debug("Discarding superseded place search result")
	}
	p.mu.Unlock()

	return result, nil
}

func (p *PlaceSearch) Snapshot() models.PlaceSearchSnapshot {
	p.mu.Lock()
	defer p.mu.Unlock()

	snapshot := models.PlaceSearchSnapshot{Query: p.query}
	if p.origin != nil {
		origin := *p.origin
		snapshot.Origin = &origin
	}
	if p.result != nil {
		result := *p.result
		snapshot.Result = &result
	}
	return snapshot
}

func validCoordinates(c models.Coordinates) bool {
	return c.Lat >= -90 && c.Lat <= 90 && c.Lng >= -180 && c.Lng <= 180
}
