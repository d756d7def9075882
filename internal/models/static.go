package models

// FacilityType - тип экстренной службы
type FacilityType string

const (
	FacilityTypeHospital FacilityType = "Hospital"
	FacilityTypePolice   FacilityType = "Police"
	FacilityTypeShelter  FacilityType = "Shelter"
)

// Valid сообщает, входит ли тип в поддерживаемый набор
func (t FacilityType) Valid() bool {
	switch t {
	case FacilityTypeHospital, FacilityTypePolice, FacilityTypeShelter:
		return true
	}
	return false
}

// EmergencyFacility - запись справочника экстренных служб
type EmergencyFacility struct {
	ID       string       `json:"id" yaml:"id"`
	Name     string       `json:"name" yaml:"name"`
	Type     FacilityType `json:"type" yaml:"type"`
	Distance string       `json:"distance" yaml:"distance"`
	Contact  string       `json:"contact" yaml:"contact"`
	Address  string       `json:"address" yaml:"address"`
	Lat      float64      `json:"lat" yaml:"lat"`
	Lng      float64      `json:"lng" yaml:"lng"`
}

type EmergencyContact struct {
	Label  string `json:"label" yaml:"label"`
	Number string `json:"number" yaml:"number"`
}

type Language struct {
	Code string `json:"code" yaml:"code"`
	Name string `json:"name" yaml:"name"`
}

// FacilitySearchSnapshot - состояние экрана поиска экстренных служб
type FacilitySearchSnapshot struct {
	Location string           `json:"location"`
	Category FacilityType     `json:"category"`
	Result   *GroundingResult `json:"result,omitempty"`
	Error    string           `json:"error,omitempty"`
}

// PlaceSearchSnapshot - состояние экрана поиска мест поблизости
type PlaceSearchSnapshot struct {
	Query  string           `json:"query"`
	Origin *Coordinates     `json:"origin,omitempty"`
	Result *GroundingResult `json:"result,omitempty"`
}

// ExplorerSnapshot - состояние экрана регионального справочника
type ExplorerSnapshot struct {
	Query   string           `json:"query"`
	Profile *LocationProfile `json:"profile,omitempty"`
	Error   string           `json:"error,omitempty"`
}
