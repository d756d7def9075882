package models

import (
	"time"

	"github.com/google/uuid"
)

// IncidentSeverity - степень опасности инцидента в админ-консоли
type IncidentSeverity string

const (
	IncidentSeverityCritical IncidentSeverity = "Critical"
	IncidentSeverityHigh     IncidentSeverity = "High"
	IncidentSeverityMedium   IncidentSeverity = "Medium"
	IncidentSeverityLow      IncidentSeverity = "Low"
)

// IncidentStatus - этап реагирования на инцидент
type IncidentStatus string

const (
	IncidentStatusReported    IncidentStatus = "Reported"
	IncidentStatusInProgress  IncidentStatus = "In-Progress"
	IncidentStatusContainment IncidentStatus = "Containment"
	IncidentStatusResolved    IncidentStatus = "Resolved"
)

// Incident - инцидент, заведенный оператором через админ-консоль.
// Хранится только в памяти процесса.
type Incident struct {
	ID          uuid.UUID        `json:"id"`
	Name        string           `json:"name"`
	Severity    IncidentSeverity `json:"severity"`
	Status      IncidentStatus   `json:"status"`
	Location    string           `json:"location"`
	CreatedAt   time.Time        `json:"created_at"`
	LastUpdated time.Time        `json:"last_updated"`
}

// IncidentStats - сводка по инцидентам для верхней панели консоли
type IncidentStats struct {
	Total      int                      `json:"total"`
	BySeverity map[IncidentSeverity]int `json:"by_severity"`
	ByStatus   map[IncidentStatus]int   `json:"by_status"`
}
