package models

// Tab - вкладка портала
type Tab string

const (
	TabMap      Tab = "map"
	TabReport   Tab = "report"
	TabExplorer Tab = "explorer"
	TabServices Tab = "services"
	TabSupport  Tab = "support"
	TabAdmin    Tab = "admin"
)

// Tabs - порядок вкладок в навигации
var Tabs = []Tab{TabMap, TabReport, TabExplorer, TabServices, TabSupport, TabAdmin}

// SOSState - состояние модального окна SOS
type SOSState struct {
	Active     bool `json:"active"`
	Remaining  int  `json:"remaining"`
	Dispatched bool `json:"dispatched"`
}

type ShellState struct {
	ActiveTab Tab      `json:"active_tab"`
	Language  string   `json:"language"`
	SOS       SOSState `json:"sos"`
}

// MapSnapshot - состояние инспектора зон
type MapSnapshot struct {
	Selected       *HazardZone  `json:"selected,omitempty"`
	Center         Coordinates  `json:"center"`
	CenterRevision uint64       `json:"center_revision"`
	Markers        []ZoneMarker `json:"markers"`
}
