package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shenikar/rescuenet_portal/internal/models"
	"github.com/sirupsen/logrus"
)

const (
	DefaultModel     = "gemini-3-flash-preview"
	DefaultMapsModel = "gemini-2.5-flash"

	alertsCount = 3

	fallbackWebTitle      = "Source"
	fallbackPlaceTitle    = "View on Maps"
	fallbackFacilityTitle = "View Service"

	noPlacesText       = "No results found."
	placesFailedText   = "Failed to search nearby places."
	noFacilitiesText   = "No essential services found in this area."
	facilityFailedText = "An error occurred while searching for services in India."
)

// Options - модели, которыми пользуется клиент
type Options struct {
	Model     string
	MapsModel string
}

// Client переводит намерение предметной области в один вызов модели
// и нормализует ответ. Один экземпляр на процесс, передается явно.
type Client struct {
	generator Generator
	logger    *logrus.Logger
	validate  *validator.Validate
	model     string
	mapsModel string
}

func NewClient(generator Generator, logger *logrus.Logger, opts Options) *Client {
	if opts.Model == "" {
		opts.Model = DefaultModel
	}
	if opts.MapsModel == "" {
		opts.MapsModel = DefaultMapsModel
	}
	return &Client{
		generator: generator,
		logger:    logger,
		validate:  validator.New(),
		model:     opts.Model,
		mapsModel: opts.MapsModel,
	}
}

type alertPayload struct {
	ID        string `json:"id" validate:"required"`
	Title     string `json:"title" validate:"required"`
	Timestamp string `json:"timestamp" validate:"required"`
	Category  string `json:"category" validate:"required,oneof=URGENT UPDATE ADVISORY"`
	Content   string `json:"content" validate:"required"`
}

// FetchAlerts запрашивает три сводки (по одной на категорию).
// Любая ошибка превращается в пустой список: лента просто остается пустой.
func (c *Client) FetchAlerts(ctx context.Context, locationLabel string) []models.NewsUpdate {
	log := c.logger.WithFields(logrus.Fields{
		"service":  "gateway",
		"method":   "FetchAlerts",
		"location": locationLabel,
	})

	gen, err := c.call(ctx, &PromptSpec{
		Model: c.model,
		Text: fmt.Sprintf("Generate 3 realistic disaster management news updates for %s. "+
			"Include one URGENT, one UPDATE, and one ADVISORY. Return as a JSON array of objects with fields: "+
			"id, title, timestamp, category (URGENT, UPDATE, or ADVISORY), and content.", locationLabel),
		Schema: alertsSchema(),
	})
	if err != nil {
		log.WithError(err).Error("Failed to fetch alerts")
		return []models.NewsUpdate{}
	}

	var payload []alertPayload
	if err := c.decode(gen.Text, &payload); err != nil {
		log.WithError(err).Error("Failed to parse alerts")
		return []models.NewsUpdate{}
	}
	for i := range payload {
		if err := c.validate.Struct(payload[i]); err != nil {
			log.WithError(err).Error("Alert item does not match schema")
			return []models.NewsUpdate{}
		}
	}

	if len(payload) > alertsCount {
		payload = payload[:alertsCount]
	}
	updates := make([]models.NewsUpdate, len(payload))
	for i, p := range payload {
		updates[i] = models.NewsUpdate{
			ID:        p.ID,
			Title:     p.Title,
			Timestamp: p.Timestamp,
			Category:  models.NewsCategory(p.Category),
			Content:   p.Content,
		}
	}
	log.WithField("count", len(updates)).Info("Alerts fetched")
	return updates
}

type locationPayload struct {
	Name                 string   `json:"name" validate:"required"`
	State                string   `json:"state"`
	District             string   `json:"district"`
	PinCode              string   `json:"pinCode"`
	Lat                  string   `json:"lat"`
	Lng                  string   `json:"lng"`
	FamousPlaces         []string `json:"famousPlaces"`
	Population           string   `json:"population"`
	Languages            []string `json:"languages"`
	TimeZone             string   `json:"timeZone"`
	WeatherOverview      string   `json:"weatherOverview"`
	NearbyHospitals      []string `json:"nearbyHospitals"`
	NearbyPoliceStations []string `json:"nearbyPoliceStations"`
}

// FetchLocationProfile ищет сведения о месте в Индии с web-grounding.
// Ошибка не проглатывается: экрану больше нечего показать.
func (c *Client) FetchLocationProfile(ctx context.Context, query string) (*models.LocationProfile, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, fmt.Errorf("%w: %w: location query is empty", ErrLookupFailed, ErrValidation)
	}

	log := c.logger.WithFields(logrus.Fields{
		"service": "gateway",
		"method":  "FetchLocationProfile",
		"query":   query,
	})

	gen, err := c.call(ctx, &PromptSpec{
		Model: c.model,
		Text: fmt.Sprintf("Search for and provide complete details for the location %q in India. "+
			"Include state, district, pin code, coordinates, famous places, population, official languages, "+
			"time zone, current weather overview, and names of nearby hospitals and police stations. "+
			"Return as a JSON object.", query),
		Schema:    locationProfileSchema(),
		Grounding: GroundingWebSearch,
	})
	if err != nil {
		log.WithError(err).Error("Location lookup failed")
		return nil, fmt.Errorf("%w: %w", ErrLookupFailed, err)
	}

	var payload locationPayload
	if err := c.decode(gen.Text, &payload); err != nil {
		log.WithError(err).Error("Failed to parse location profile")
		return nil, fmt.Errorf("%w: %w", ErrLookupFailed, err)
	}
	if err := c.validate.Struct(payload); err != nil {
		log.WithError(err).Error("Location profile does not match schema")
		return nil, fmt.Errorf("%w: %w: %v", ErrLookupFailed, ErrMalformedResponse, err)
	}

	profile := &models.LocationProfile{
		Name:                 payload.Name,
		State:                payload.State,
		District:             payload.District,
		PinCode:              payload.PinCode,
		Coordinates:          models.ProfileCoordinates{Lat: payload.Lat, Lng: payload.Lng},
		FamousPlaces:         nonNil(payload.FamousPlaces),
		Population:           payload.Population,
		Languages:            nonNil(payload.Languages),
		TimeZone:             payload.TimeZone,
		WeatherOverview:      payload.WeatherOverview,
		NearbyHospitals:      nonNil(payload.NearbyHospitals),
		NearbyPoliceStations: nonNil(payload.NearbyPoliceStations),
		Sources:              NormalizeCitations(gen.Citations, CitationWeb, fallbackWebTitle),
	}
	log.WithField("sources", len(profile.Sources)).Info("Location profile fetched")
	return profile, nil
}

// SearchNearbyPlaces ищет места рядом с точкой через grounding по картам.
// Никогда не возвращает ошибку, при сбое отдает поясняющий текст без ссылок.
func (c *Client) SearchNearbyPlaces(ctx context.Context, query string, lat, lng float64) models.GroundingResult {
	log := c.logger.WithFields(logrus.Fields{
		"service": "gateway",
		"method":  "SearchNearbyPlaces",
		"query":   query,
	})

	gen, err := c.call(ctx, &PromptSpec{
		Model:     c.mapsModel,
		Text:      query,
		Grounding: GroundingMaps,
		Bias:      &LatLng{Latitude: lat, Longitude: lng},
	})
	if err != nil {
		log.WithError(err).Error("Maps grounding failed")
		return models.GroundingResult{Text: placesFailedText, Links: []models.Link{}}
	}

	return models.GroundingResult{
		Text:  textOr(gen.Text, noPlacesText),
		Links: NormalizeCitations(gen.Citations, CitationMaps, fallbackPlaceTitle),
	}
}

// SearchEmergencyFacilities ищет ближайшие службы заданного типа.
// Политика та же, что у SearchNearbyPlaces: деградация до сообщения.
func (c *Client) SearchEmergencyFacilities(ctx context.Context, locationLabel string, facilityType models.FacilityType) models.GroundingResult {
	log := c.logger.WithFields(logrus.Fields{
		"service":       "gateway",
		"method":        "SearchEmergencyFacilities",
		"location":      locationLabel,
		"facility_type": facilityType,
	})

	gen, err := c.call(ctx, &PromptSpec{
		Model: c.mapsModel,
		Text: fmt.Sprintf("Find the nearest %s in or around %s, India. For each place, list its name, full address, "+
			"approximate distance from the search point, and contact number. "+
			"Ensure the results are specifically for the Indian region.", facilityType, locationLabel),
		Grounding: GroundingMaps,
	})
	if err != nil {
		log.WithError(err).Error("Emergency service lookup failed")
		return models.GroundingResult{Text: facilityFailedText, Links: []models.Link{}}
	}

	return models.GroundingResult{
		Text:  textOr(gen.Text, noFacilitiesText),
		Links: NormalizeCitations(gen.Citations, CitationMaps, fallbackFacilityTitle),
	}
}

type analysisPayload struct {
	Severity        string   `json:"severity" validate:"required,oneof=Low Medium High Critical"`
	Summary         string   `json:"summary" validate:"required"`
	SafetySteps     []string `json:"safetySteps"`
	EstimatedImpact string   `json:"estimatedImpact" validate:"required"`
}

// AnalyzeIncidentImage оценивает фотографию происшествия.
// Ошибка пробрасывается: показывать устаревший анализ нельзя.
func (c *Client) AnalyzeIncidentImage(ctx context.Context, image []byte, mimeType string) (*models.IncidentAnalysis, error) {
	data, uriMIME, err := StripDataURI(image)
	if err != nil {
		return nil, err
	}
	if mimeType == "" {
		mimeType = uriMIME
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: image is empty", ErrValidation)
	}
	if !strings.HasPrefix(mimeType, "image/") {
		return nil, fmt.Errorf("%w: unsupported mime type %q", ErrValidation, mimeType)
	}

	log := c.logger.WithFields(logrus.Fields{
		"service":   "gateway",
		"method":    "AnalyzeIncidentImage",
		"mime_type": mimeType,
		"size":      len(data),
	})

	gen, err := c.call(ctx, &PromptSpec{
		Model:  c.model,
		Text:   "Analyze this disaster-related image. Determine severity, summary, safety steps, and impact estimate.",
		Image:  &InlineImage{Data: data, MIMEType: mimeType},
		Schema: incidentAnalysisSchema(),
	})
	if err != nil {
		log.WithError(err).Error("Image analysis failed")
		return nil, err
	}

	var payload analysisPayload
	if err := c.decode(gen.Text, &payload); err != nil {
		log.WithError(err).Error("Failed to parse image analysis")
		return nil, err
	}
	if err := c.validate.Struct(payload); err != nil {
		log.WithError(err).Error("Image analysis does not match schema")
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}

	log.WithField("severity", payload.Severity).Info("Image analyzed")
	return &models.IncidentAnalysis{
		Severity:        models.AnalysisSeverity(payload.Severity),
		Summary:         payload.Summary,
		SafetySteps:     nonNil(payload.SafetySteps),
		EstimatedImpact: payload.EstimatedImpact,
	}, nil
}

// call выполняет запрос и приводит ошибки транспорта к ErrServiceFailure
func (c *Client) call(ctx context.Context, spec *PromptSpec) (*Generation, error) {
	gen, err := c.generator.Generate(ctx, spec)
	if err != nil {
		if errors.Is(err, ErrServiceFailure) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %w", ErrServiceFailure, err)
	}
	if gen == nil {
		return nil, fmt.Errorf("%w: empty generation", ErrServiceFailure)
	}
	return gen, nil
}

// decode строго разбирает JSON ответа модели
func (c *Client) decode(text string, target any) error {
	text = strings.TrimSpace(text)
	if text == "" {
		return fmt.Errorf("%w: empty payload", ErrMalformedResponse)
	}
	if err := json.Unmarshal([]byte(text), target); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	return nil
}

// NormalizeCitations оставляет цитаты только нужного вида, сохраняя порядок,
// и подставляет заголовок по умолчанию, если провайдер его не прислал.
func NormalizeCitations(citations []Citation, kind CitationKind, fallbackTitle string) []models.Link {
	links := make([]models.Link, 0, len(citations))
	for _, citation := range citations {
		if citation.Kind != kind || citation.URI == "" {
			continue
		}
		title := strings.TrimSpace(citation.Title)
		if title == "" {
			title = fallbackTitle
		}
		links = append(links, models.Link{Title: title, URI: citation.URI})
	}
	return links
}

func textOr(text, fallback string) string {
	if strings.TrimSpace(text) == "" {
		return fallback
	}
	return text
}

func nonNil(items []string) []string {
	if items == nil {
		return []string{}
	}
	return items
}
