package staticdata

import (
	_ "embed"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/rescuenet_portal/internal/models"
	"gopkg.in/yaml.v3"
)

//go:embed static.yaml
var embedded []byte

type defaults struct {
	Center       models.Coordinates `yaml:"center"`
	NewsLocation string             `yaml:"news_location"`
	Language     string             `yaml:"language"`
}

type seedIncident struct {
	Name       string                  `yaml:"name"`
	Severity   models.IncidentSeverity `yaml:"severity"`
	Status     models.IncidentStatus   `yaml:"status"`
	Location   string                  `yaml:"location"`
	MinutesAgo int                     `yaml:"minutes_ago"`
}

type seedActivity struct {
	Type        models.ActivityType `yaml:"type"`
	Name        string              `yaml:"name"`
	Description string              `yaml:"description"`
	MinutesAgo  int                 `yaml:"minutes_ago"`
}

type seed struct {
	Incidents []seedIncident `yaml:"incidents"`
	Activity  []seedActivity `yaml:"activity"`
}

type document struct {
	Defaults   defaults                   `yaml:"defaults"`
	Seed       seed                       `yaml:"seed"`
	Zones      []models.HazardZone        `yaml:"zones"`
	Facilities []models.EmergencyFacility `yaml:"facilities"`
	Languages  []models.Language          `yaml:"languages"`
	Contacts   []models.EmergencyContact  `yaml:"contacts"`
}

// Store - неизменяемый справочник: зоны, службы, языки, телефоны.
// Загружается один раз при старте, дальше только читается.
type Store struct {
	doc       document
	zonesByID map[string]models.HazardZone
}

// Load читает справочник из файла, а если путь пустой - из встроенного static.yaml
func Load(path string) (*Store, error) {
	raw := embedded
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read static data file: %w", err)
		}
		raw = data
	}
	return Parse(raw)
}

// Parse разбирает YAML и проверяет базовую целостность данных
func Parse(raw []byte) (*Store, error) {
	var doc document
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse static data: %w", err)
	}

	zonesByID := make(map[string]models.HazardZone, len(doc.Zones))
	for _, zone := range doc.Zones {
		if zone.ID == "" {
			return nil, fmt.Errorf("hazard zone %q has no id", zone.Name)
		}
		if _, dup := zonesByID[zone.ID]; dup {
			return nil, fmt.Errorf("duplicate hazard zone id %q", zone.ID)
		}
		zonesByID[zone.ID] = zone
	}

	if doc.Defaults.Language == "" && len(doc.Languages) > 0 {
		doc.Defaults.Language = doc.Languages[0].Code
	}

	return &Store{doc: doc, zonesByID: zonesByID}, nil
}

// MustLoadEmbedded используется в тестах и там, где справочник обязан быть
func MustLoadEmbedded() *Store {
	store, err := Parse(embedded)
	if err != nil {
		panic(err)
	}
	return store
}

func (s *Store) Zones() []models.HazardZone {
	return cloneZones(s.doc.Zones)
}

// Zone возвращает зону по id
func (s *Store) Zone(id string) (models.HazardZone, bool) {
	zone, ok := s.zonesByID[id]
	if !ok {
		return models.HazardZone{}, false
	}
	zone.Instructions = append([]string(nil), zone.Instructions...)
	return zone, true
}

// Facilities возвращает справочник служб; пустой тип означает "все"
func (s *Store) Facilities(facilityType models.FacilityType) []models.EmergencyFacility {
	result := make([]models.EmergencyFacility, 0, len(s.doc.Facilities))
	for _, f := range s.doc.Facilities {
		if facilityType == "" || f.Type == facilityType {
			result = append(result, f)
		}
	}
	return result
}

func (s *Store) Languages() []models.Language {
	return append([]models.Language(nil), s.doc.Languages...)
}

// HasLanguage проверяет, поддерживается ли код языка
func (s *Store) HasLanguage(code string) bool {
	for _, l := range s.doc.Languages {
		if l.Code == code {
			return true
		}
	}
	return false
}

func (s *Store) Contacts() []models.EmergencyContact {
	return append([]models.EmergencyContact(nil), s.doc.Contacts...)
}

// DefaultCenter - координаты, которые используются, если геолокация недоступна
func (s *Store) DefaultCenter() models.Coordinates {
	return s.doc.Defaults.Center
}

func (s *Store) DefaultNewsLocation() string {
	return s.doc.Defaults.NewsLocation
}

func (s *Store) DefaultLanguage() string {
	return s.doc.Defaults.Language
}

// SeedIncidents - стартовый список инцидентов админ-консоли, от новых к старым
func (s *Store) SeedIncidents(now time.Time) []*models.Incident {
	incidents := make([]*models.Incident, 0, len(s.doc.Seed.Incidents))
	for _, si := range s.doc.Seed.Incidents {
		at := now.Add(-time.Duration(si.MinutesAgo) * time.Minute)
		incidents = append(incidents, &models.Incident{
			ID:          uuid.New(),
			Name:        si.Name,
			Severity:    si.Severity,
			Status:      si.Status,
			Location:    si.Location,
			CreatedAt:   at,
			LastUpdated: at,
		})
	}
	return incidents
}

// SeedActivity - стартовая лента активности сообщества, от новых к старым
func (s *Store) SeedActivity(now time.Time) []models.ActivityEntry {
	entries := make([]models.ActivityEntry, 0, len(s.doc.Seed.Activity))
	for _, sa := range s.doc.Seed.Activity {
		entries = append(entries, models.ActivityEntry{
			ID:          uuid.NewString(),
			Type:        sa.Type,
			Name:        sa.Name,
			Description: sa.Description,
			CreatedAt:   now.Add(-time.Duration(sa.MinutesAgo) * time.Minute),
		})
	}
	return entries
}

func cloneZones(zones []models.HazardZone) []models.HazardZone {
	out := make([]models.HazardZone, len(zones))
	for i, z := range zones {
		z.Instructions = append([]string(nil), z.Instructions...)
		out[i] = z
	}
	return out
}
