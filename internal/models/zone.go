package models

// RiskLevel - уровень риска опасной зоны
type RiskLevel string

const (
	RiskLevelRed    RiskLevel = "RED"
	RiskLevelYellow RiskLevel = "YELLOW"
	RiskLevelGreen  RiskLevel = "GREEN"
)

// Coordinates - точка на карте
type Coordinates struct {
	Lat float64 `json:"lat" yaml:"lat"`
	Lng float64 `json:"lng" yaml:"lng"`
}

// HazardZone - именованная круглая зона с классификацией риска и инструкциями
type HazardZone struct {
	ID           string      `json:"id" yaml:"id"`
	Name         string      `json:"name" yaml:"name"`
	RiskLevel    RiskLevel   `json:"risk_level" yaml:"risk_level"`
	Center       Coordinates `json:"center" yaml:"center"`
	RadiusMeters int         `json:"radius_meters" yaml:"radius_meters"`
	Description  string      `json:"description" yaml:"description"`
	Instructions []string    `json:"instructions" yaml:"instructions"`
}

// ZoneMarker - зона в том виде, в котором ее рисует слой карты
type ZoneMarker struct {
	Zone        HazardZone `json:"zone"`
	Color       string     `json:"color"`
	Highlighted bool       `json:"highlighted"`
}
