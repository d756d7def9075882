package models

import "time"

// SupportMode - режим формы волонтера/пожертвования
type SupportMode string

const (
	SupportModeVolunteer SupportMode = "volunteer"
	SupportModeDonate    SupportMode = "donate"
)

// DonationType - вид пожертвования
type DonationType string

const (
	DonationTypeFunds DonationType = "funds"
	DonationTypeItems DonationType = "items"
	DonationTypeOther DonationType = "other"
)

// SupportForm - общий контейнер полей для обоих режимов.
// Поля, не относящиеся к активному режиму, при отправке игнорируются.
type SupportForm struct {
	Name            string       `json:"name"`
	Phone           string       `json:"phone"`
	Email           string       `json:"email"`
	Skills          []string     `json:"skills"`
	Availability    string       `json:"availability"`
	DonationType    DonationType `json:"donation_type"`
	DonationDetails string       `json:"donation_details"`
	Amount          string       `json:"amount"`
}

// ActivityType - тип записи в ленте активности сообщества
type ActivityType string

const (
	ActivityTypeVolunteer ActivityType = "volunteer"
	ActivityTypeDonation  ActivityType = "donation"
)

type ActivityEntry struct {
	ID          string       `json:"id"`
	Type        ActivityType `json:"type"`
	Name        string       `json:"name"`
	Description string       `json:"description"`
	CreatedAt   time.Time    `json:"created_at"`
}

// TrackingStatus - результат проверки кода отслеживания
type TrackingStatus string

const (
	TrackingStatusUnderReview TrackingStatus = "Under Review"
	TrackingStatusNotFound    TrackingStatus = "Not Found"
)

type TrackingResult struct {
	Status  TrackingStatus `json:"status"`
	Message string         `json:"message"`
}

// SupportSnapshot - состояние формы для отрисовки
type SupportSnapshot struct {
	Mode         SupportMode `json:"mode"`
	Submitted    bool        `json:"submitted"`
	TrackingCode string      `json:"tracking_code,omitempty"`
	Form         SupportForm `json:"form"`
}
