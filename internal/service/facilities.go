package service

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/shenikar/rescuenet_portal/internal/models"
	"github.com/sirupsen/logrus"
)

// MissingLocationMessage показывается, когда поиск служб запущен без локации
const MissingLocationMessage = "Please specify a location in India."

// FacilityDirectory - статический справочник служб
type FacilityDirectory interface {
	Facilities(facilityType models.FacilityType) []models.EmergencyFacility
}

// FacilityFinder ищет экстренные службы выбранного типа в указанной местности
type FacilityFinder struct {
	client    IntelligenceClient
	directory FacilityDirectory
	logger    *logrus.Logger

	mu       sync.Mutex
	gen      generation
	location string
	category models.FacilityType
	result   *models.GroundingResult
	errMsg   string
}

func NewFacilityFinder(client IntelligenceClient, directory FacilityDirectory, logger *logrus.Logger) *FacilityFinder {
	return &FacilityFinder{
		client:    client,
		directory: directory,
		logger:    logger,
		category:  models.FacilityTypeHospital,
	}
}

// Search ищет службы. Пустой тип означает текущую выбранную категорию.
func (f *FacilityFinder) Search(ctx context.Context, location string, facilityType models.FacilityType) (models.GroundingResult, error) {
	f.mu.Lock()
	if facilityType == "" {
		facilityType = f.category
	}
	f.mu.Unlock()

	if !facilityType.Valid() {
		return models.GroundingResult{}, fmt.Errorf("service: facility type %q: %w", facilityType, ErrValidation)
	}

	location = strings.TrimSpace(location)
	if location == "" {
		f.mu.Lock()
		f.category = facilityType
		f.errMsg = MissingLocationMessage
		f.mu.Unlock()
		return models.GroundingResult{}, fmt.Errorf("%s: %w", MissingLocationMessage, ErrValidation)
	}

	log := f.logger.WithFields(logrus.Fields{
		"service":  "facilities",
		"method":   "Search",
		"location": location,
		"type":     facilityType,
	})

	f.mu.Lock()
	gen := f.gen.next()
	f.location = location
	f.category = facilityType
	f.errMsg = ""
	f.result = nil
	f.mu.Unlock()

	result := f.client.SearchEmergencyFacilities(ctx, location, facilityType)

	f.mu.Lock()
	if f.gen.isCurrent(gen) {
		f.result = &result
	} else {
		log.WithField("generation", gen).Debug("Discarding superseded facility search result")
	}
	f.mu.Unlock()

	log.WithField("links", len(result.Links)).Info("Facility search completed")
	return result, nil
}

// SelectCategory меняет категорию и, если локация уже введена, повторяет поиск
func (f *FacilityFinder) SelectCategory(ctx context.Context, facilityType models.FacilityType) (models.FacilitySearchSnapshot, error) {
	if !facilityType.Valid() {
		return f.Snapshot(), fmt.Errorf("service: facility type %q: %w", facilityType, ErrValidation)
	}

	f.mu.Lock()
	f.category = facilityType
	location := f.location
	f.mu.Unlock()

	if location != "" {
		if _, err := f.Search(ctx, location, facilityType); err != nil {
			return f.Snapshot(), err
		}
	}
	return f.Snapshot(), nil
}

// Directory возвращает статический справочник, пустой тип - все службы
func (f *FacilityFinder) Directory(facilityType models.FacilityType) []models.EmergencyFacility {
	return f.directory.Facilities(facilityType)
}

func (f *FacilityFinder) Snapshot() models.FacilitySearchSnapshot {
	f.mu.Lock()
	defer f.mu.Unlock()

	snapshot := models.FacilitySearchSnapshot{
		Location: f.location,
		Category: f.category,
		Error:    f.errMsg,
	}
	if f.result != nil {
		result := *f.result
		snapshot.Result = &result
	}
	return snapshot
}
