package service

import (
	"fmt"
	"sync"

	"github.com/shenikar/rescuenet_portal/internal/models"
	"github.com/sirupsen/logrus"
)

// ZoneCatalog - источник опасных зон и центра карты по умолчанию
type ZoneCatalog interface {
	Zones() []models.HazardZone
	Zone(id string) (models.HazardZone, bool)
	DefaultCenter() models.Coordinates
}

const (
	zoneColorRed     = "#ef4444"
	zoneColorYellow  = "#eab308"
	zoneColorGreen   = "#22c55e"
	zoneColorUnknown = "#6b7280"
)

// ZoneColor возвращает цвет заливки круга зоны по уровню риска
func ZoneColor(level models.RiskLevel) string {
	switch level {
	case models.RiskLevelRed:
		return zoneColorRed
	case models.RiskLevelYellow:
		return zoneColorYellow
	case models.RiskLevelGreen:
		return zoneColorGreen
	default:
		return zoneColorUnknown
	}
}

// ZoneInspector хранит выбранную зону и центр карты одной сессии
type ZoneInspector struct {
	catalog ZoneCatalog
	logger  *logrus.Logger

	mu             sync.Mutex
	selected       *models.HazardZone
	center         models.Coordinates
	centerRevision uint64
}

func NewZoneInspector(catalog ZoneCatalog, logger *logrus.Logger) *ZoneInspector {
	return &ZoneInspector{
		catalog: catalog,
		logger:  logger,
		center:  catalog.DefaultCenter(),
	}
}

// Select выбирает зону по идентификатору
func (z *ZoneInspector) Select(id string) (models.MapSnapshot, error) {
	zone, ok := z.catalog.Zone(id)
	if !ok {
		z.logger.WithFields(logrus.Fields{
			"service": "zone",
			"method":  "Select",
			"zone_id": id,
		}).Warn("Attempted to select a non-existent zone")
		return z.Snapshot(), fmt.Errorf("service: zone %q: %w", id, ErrZoneNotFound)
	}

	z.mu.Lock()
	z.selected = &zone
	z.mu.Unlock()

	return z.Snapshot(), nil
}

// Clear снимает выделение
func (z *ZoneInspector) Clear() models.MapSnapshot {
	z.mu.Lock()
	z.selected = nil
	z.mu.Unlock()

	return z.Snapshot()
}

// SetCenter переводит карту в новую точку. Ревизия растет только при реальном смещении,
// по ней отрисовщик понимает, что карту нужно перецентрировать.
func (z *ZoneInspector) SetCenter(center models.Coordinates) (models.MapSnapshot, error) {
	if center.Lat < -90 || center.Lat > 90 || center.Lng < -180 || center.Lng > 180 {
		return z.Snapshot(), fmt.Errorf("service: coordinates out of range: %w", ErrValidation)
	}

	z.mu.Lock()
	if z.center != center {
		z.center = center
		z.centerRevision++
	}
	z.mu.Unlock()

	return z.Snapshot(), nil
}

// Snapshot возвращает состояние карты вместе с маркерами всех зон
func (z *ZoneInspector) Snapshot() models.MapSnapshot {
	zones := z.catalog.Zones()

	z.mu.Lock()
	defer z.mu.Unlock()

	snapshot := models.MapSnapshot{
		Center:         z.center,
		CenterRevision: z.centerRevision,
		Markers:        make([]models.ZoneMarker, 0, len(zones)),
	}
	if z.selected != nil {
		selected := *z.selected
		snapshot.Selected = &selected
	}
	for _, zone := range zones {
		snapshot.Markers = append(snapshot.Markers, models.ZoneMarker{
			Zone:        zone,
			Color:       ZoneColor(zone.RiskLevel),
			Highlighted: z.selected != nil && z.selected.ID == zone.ID,
		})
	}
	return snapshot
}
