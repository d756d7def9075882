package models

// AnalysisSeverity - оценка тяжести по фотографии
type AnalysisSeverity string

const (
	AnalysisSeverityLow      AnalysisSeverity = "Low"
	AnalysisSeverityMedium   AnalysisSeverity = "Medium"
	AnalysisSeverityHigh     AnalysisSeverity = "High"
	AnalysisSeverityCritical AnalysisSeverity = "Critical"
)

type IncidentAnalysis struct {
	Severity        AnalysisSeverity `json:"severity"`
	Summary         string           `json:"summary"`
	SafetySteps     []string         `json:"safety_steps"`
	EstimatedImpact string           `json:"estimated_impact"`
}

// ReportState - состояние экрана отправки отчета об инциденте
type ReportState string

const (
	ReportStateEmpty       ReportState = "Empty"
	ReportStateImageLoaded ReportState = "ImageLoaded"
	ReportStateAnalyzing   ReportState = "Analyzing"
	ReportStateAnalyzed    ReportState = "Analyzed"
)

// ReportSnapshot - то, что видит пользователь на экране отчета
type ReportSnapshot struct {
	State     ReportState       `json:"state"`
	HasImage  bool              `json:"has_image"`
	MIMEType  string            `json:"mime_type,omitempty"`
	ImageSize int               `json:"image_size,omitempty"`
	Analysis  *IncidentAnalysis `json:"analysis,omitempty"`
}
