package service

import (
	"context"

	"github.com/shenikar/rescuenet_portal/internal/models"
)

//go:generate mockgen -source=intelligence.go -destination=mocks/intelligence_mock.go -package=mocks

// IntelligenceClient определяет контракт с внешним AI-шлюзом.
// Ленты (алерты, поиск мест и служб) не возвращают ошибок, справочные запросы - возвращают.
type IntelligenceClient interface {
	FetchAlerts(ctx context.Context, locationLabel string) []models.NewsUpdate
	FetchLocationProfile(ctx context.Context, query string) (*models.LocationProfile, error)
	SearchNearbyPlaces(ctx context.Context, query string, lat, lng float64) models.GroundingResult
	SearchEmergencyFacilities(ctx context.Context, locationLabel string, facilityType models.FacilityType) models.GroundingResult
	AnalyzeIncidentImage(ctx context.Context, image []byte, mimeType string) (*models.IncidentAnalysis, error)
}

// generation - счетчик поколений запросов одного контроллера.
// Результат применяется, только если его поколение все еще текущее.
// Доступ только под мьютексом владельца.
type generation struct {
	current uint64
}

func (g *generation) next() uint64 {
	g.current++
	return g.current
}

func (g *generation) isCurrent(n uint64) bool {
	return g.current == n
}
