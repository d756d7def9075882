package v1

import (
	"time"

	"github.com/google/uuid"
)

// SetCenterRequest DTO для перемещения центра карты
// @Description DTO для перемещения центра карты
type SetCenterRequest struct {
	Lat *float64 `json:"lat" validate:"required,latitude"`
	Lng *float64 `json:"lng" validate:"required,longitude"`
}

// PlaceSearchRequest DTO для поиска мест поблизости.
// Без координат используется центр карты по умолчанию.
// @Description DTO для поиска мест поблизости
type PlaceSearchRequest struct {
	Query string   `json:"query" validate:"required,max=500"`
	Lat   *float64 `json:"lat,omitempty" validate:"required_with=Lng,omitempty,latitude"`
	Lng   *float64 `json:"lng,omitempty" validate:"required_with=Lat,omitempty,longitude"`
}

// FacilitySearchRequest DTO для поиска экстренных служб
// @Description DTO для поиска экстренных служб
type FacilitySearchRequest struct {
	Location string `json:"location" validate:"max=200"`
	Type     string `json:"type,omitempty" validate:"omitempty,oneof=Hospital Police Shelter"`
}

// FacilityCategoryRequest DTO для смены категории служб
// @Description DTO для смены категории служб
type FacilityCategoryRequest struct {
	Type string `json:"type" validate:"required,oneof=Hospital Police Shelter"`
}

// ExplorerLookupRequest DTO для справки по местности
// @Description DTO для справки по местности
type ExplorerLookupRequest struct {
	Query string `json:"query" validate:"required,max=200"`
}

// UploadImageRequest DTO для загрузки фото в JSON: base64 или data URI
// @Description DTO для загрузки фото инцидента
type UploadImageRequest struct {
	Image    string `json:"image" validate:"required"`
	MIMEType string `json:"mimeType,omitempty" validate:"omitempty,max=100"`
}

// SupportModeRequest DTO для переключения режима анкеты
// @Description DTO для переключения режима анкеты
type SupportModeRequest struct {
	Mode string `json:"mode" validate:"required,oneof=volunteer donate"`
}

// SupportFormRequest DTO анкеты волонтера или жертвователя.
// Бизнес-проверки полей выполняет сервис в зависимости от режима.
// @Description DTO анкеты волонтера или жертвователя
type SupportFormRequest struct {
	Name            string   `json:"name" validate:"max=100"`
	Phone           string   `json:"phone" validate:"max=32"`
	Email           string   `json:"email" validate:"max=254"`
	Skills          []string `json:"skills,omitempty" validate:"max=16"`
	Availability    string   `json:"availability,omitempty" validate:"max=64"`
	DonationType    string   `json:"donation_type,omitempty" validate:"omitempty,oneof=funds items other"`
	DonationDetails string   `json:"donation_details,omitempty" validate:"max=2000"`
	Amount          string   `json:"amount,omitempty" validate:"max=32"`
}

// TrackRequest DTO для проверки кода отслеживания
// @Description DTO для проверки кода отслеживания
type TrackRequest struct {
	Code string `json:"code" validate:"required,max=32"`
}

// CreateIncidentRequest DTO для создания инцидента в админ-консоли
// @Description DTO для создания инцидента
type CreateIncidentRequest struct {
	Name     string `json:"name" validate:"max=255"`
	Severity string `json:"severity,omitempty" validate:"omitempty,oneof=Critical High Medium Low"`
	Location string `json:"location" validate:"max=255"`
}

// UpdateStatusRequest DTO для смены статуса инцидента
// @Description DTO для смены статуса инцидента
type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=Reported In-Progress Containment Resolved"`
}

// IncidentResponse DTO для ответа с информацией об инциденте
// @Description DTO для ответа с информацией об инциденте
type IncidentResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Severity    string    `json:"severity"`
	Status      string    `json:"status"`
	Location    string    `json:"location"`
	CreatedAt   time.Time `json:"created_at"`
	LastUpdated time.Time `json:"last_updated"`
}

// BroadcastDraftRequest DTO для черновика рассылки
// @Description DTO для черновика рассылки
type BroadcastDraftRequest struct {
	Message string `json:"message" validate:"max=2000"`
}

// BroadcastResponse DTO для черновика и отправленной рассылки
// @Description DTO для черновика и отправленной рассылки
type BroadcastResponse struct {
	ID      string     `json:"id,omitempty"`
	Message string     `json:"message"`
	SentAt  *time.Time `json:"sent_at,omitempty"`
}

// TabRequest DTO для выбора вкладки
// @Description DTO для выбора вкладки
type TabRequest struct {
	Tab string `json:"tab" validate:"required,oneof=map report explorer services support admin"`
}

// LanguageRequest DTO для выбора языка
// @Description DTO для выбора языка
type LanguageRequest struct {
	Code string `json:"code" validate:"required,max=8"`
}
