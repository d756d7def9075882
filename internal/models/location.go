package models

// ProfileCoordinates - координаты в том виде, в котором их возвращает модель
type ProfileCoordinates struct {
	Lat string `json:"lat"`
	Lng string `json:"lng"`
}

// LocationProfile - справка о населенном пункте.
// Sources заполняется только из web-цитат, пришедших вместе с ответом.
type LocationProfile struct {
	Name                 string             `json:"name"`
	State                string             `json:"state"`
	District             string             `json:"district"`
	PinCode              string             `json:"pin_code"`
	Coordinates          ProfileCoordinates `json:"coordinates"`
	FamousPlaces         []string           `json:"famous_places"`
	Population           string             `json:"population"`
	Languages            []string           `json:"languages"`
	TimeZone             string             `json:"time_zone"`
	WeatherOverview      string             `json:"weather_overview"`
	NearbyHospitals      []string           `json:"nearby_hospitals"`
	NearbyPoliceStations []string           `json:"nearby_police_stations"`
	Sources              []Link             `json:"sources"`
}
