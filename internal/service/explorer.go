package service

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/shenikar/rescuenet_portal/internal/models"
	"github.com/sirupsen/logrus"
)

// LookupFailedMessage показывается вместо профиля, если справка не получена
const LookupFailedMessage = "Location query failed. Use specific Indian administrative names."

// RegionalExplorer - справка по населенному пункту или району
type RegionalExplorer struct {
	client IntelligenceClient
	logger *logrus.Logger

	mu      sync.Mutex
	gen     generation
	query   string
	profile *models.LocationProfile
	errMsg  string
}

func NewRegionalExplorer(client IntelligenceClient, logger *logrus.Logger) *RegionalExplorer {
	return &RegionalExplorer{
		client: client,
		logger: logger,
	}
}

// Lookup запрашивает профиль местности. При ошибке профиль очищается,
// а в состоянии остается сообщение для пользователя.
func (e *RegionalExplorer) Lookup(ctx context.Context, query string) (*models.LocationProfile, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, fmt.Errorf("service: empty location query: %w", ErrValidation)
	}

	log := e.logger.WithFields(logrus.Fields{
		"service": "explorer",
		"method":  "Lookup",
		"query":   query,
	})
	log.Info("Looking up location profile")

	e.mu.Lock()
	gen := e.gen.next()
	e.query = query
	e.errMsg = ""
	e.mu.Unlock()

	profile, err := e.client.FetchLocationProfile(ctx, query)

	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.gen.isCurrent(gen) {
		log.WithField("generation", gen).Debug("Discarding superseded location profile")
		if err != nil {
			return nil, fmt.Errorf("service: %w", err)
		}
		return profile, nil
	}

	if err != nil {
		log.WithError(err).Warn("Location lookup failed")
		e.profile = nil
		e.errMsg = LookupFailedMessage
		return nil, fmt.Errorf("service: %w", err)
	}

	e.profile = profile
	log.WithField("sources", len(profile.Sources)).Info("Location profile fetched successfully")
	return profile, nil
}

func (e *RegionalExplorer) Snapshot() models.ExplorerSnapshot {
	e.mu.Lock()
	defer e.mu.Unlock()

	return models.ExplorerSnapshot{
		Query:   e.query,
		Profile: e.profile,
		Error:   e.errMsg,
	}
}
