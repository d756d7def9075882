package service

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/gabriel-vasile/mimetype"
	"github.com/shenikar/rescuenet_portal/internal/models"
	"github.com/sirupsen/logrus"
)

// ReportingController ведет экран отчета об инциденте:
// Empty -> ImageLoaded -> Analyzing -> Analyzed, RemoveImage из любого состояния ведет в Empty.
type ReportingController struct {
	client IntelligenceClient
	logger *logrus.Logger

	mu       sync.Mutex
	gen      generation
	state    models.ReportState
	image    []byte
	mimeType string
	analysis *models.IncidentAnalysis
}

func NewReportingController(client IntelligenceClient, logger *logrus.Logger) *ReportingController {
	return &ReportingController{
		client: client,
		logger: logger,
		state:  models.ReportStateEmpty,
	}
}

// LoadImage принимает фото. Тип определяется по содержимому,
// заявленный клиентом тип используется только для лога.
// Новое фото сбрасывает прошлый анализ и делает незавершенный запрос устаревшим.
func (r *ReportingController) LoadImage(data []byte, declaredMIME string) (models.ReportSnapshot, error) {
	if len(data) == 0 {
		return r.Snapshot(), fmt.Errorf("service: empty upload: %w", ErrNoImage)
	}

	detected := mimetype.Detect(data)
	log := r.logger.WithFields(logrus.Fields{
		"service":       "reporting",
		"method":        "LoadImage",
		"declared_mime": declaredMIME,
		"detected_mime": detected.String(),
		"size":          len(data),
	})
	if !strings.HasPrefix(detected.String(), "image/") {
		log.Warn("Rejected non-image upload")
		return r.Snapshot(), fmt.Errorf("service: %s: %w", detected.String(), ErrUnsupportedImage)
	}

	image := make([]byte, len(data))
	copy(image, data)

	r.mu.Lock()
	r.gen.next()
	r.image = image
	r.mimeType = detected.String()
	r.analysis = nil
	r.state = models.ReportStateImageLoaded
	r.mu.Unlock()

	log.Info("Incident image loaded")
	return r.Snapshot(), nil
}

// RemoveImage убирает фото и результат анализа
func (r *ReportingController) RemoveImage() models.ReportSnapshot {
	r.mu.Lock()
	r.gen.next()
	r.image = nil
	r.mimeType = ""
	r.analysis = nil
	r.state = models.ReportStateEmpty
	r.mu.Unlock()

	return r.Snapshot()
}

// Analyze отправляет фото на анализ. При ошибке фото остается,
// анализ очищается, ошибка возвращается вызывающему.
func (r *ReportingController) Analyze(ctx context.Context) (models.ReportSnapshot, error) {
	log := r.logger.WithFields(logrus.Fields{
		"service": "reporting",
		"method":  "Analyze",
	})

	r.mu.Lock()
	switch r.state {
	case models.ReportStateEmpty:
		r.mu.Unlock()
		return r.Snapshot(), fmt.Errorf("service: %w", ErrNoImage)
	case models.ReportStateAnalyzing:
		r.mu.Unlock()
		return r.Snapshot(), fmt.Errorf("service: %w", ErrAnalysisInProgress)
	}
	gen := r.gen.next()
	r.state = models.ReportStateAnalyzing
	r.analysis = nil
	image, mimeType := r.image, r.mimeType
	r.mu.Unlock()

	log.WithField("generation", gen).Info("Analyzing incident image")
	analysis, err := r.client.AnalyzeIncidentImage(ctx, image, mimeType)

	r.mu.Lock()
	if !r.gen.isCurrent(gen) {
		r.mu.Unlock()
		log.WithField("generation", gen).Info("Image changed during analysis, discarding result")
		return r.Snapshot(), fmt.Errorf("service: %w", ErrSuperseded)
	}
	if err != nil {
		r.state = models.ReportStateImageLoaded
		r.analysis = nil
		r.mu.Unlock()
		log.WithError(err).Error("Incident image analysis failed")
		return r.Snapshot(), fmt.Errorf("service: could not analyze image: %w", err)
	}
	r.state = models.ReportStateAnalyzed
	r.analysis = analysis
	r.mu.Unlock()

	log.WithField("severity", analysis.Severity).Info("Incident image analyzed successfully")
	return r.Snapshot(), nil
}

// Image возвращает копию загруженного фото и его тип.
// Фото переживает неудачный анализ и пропадает только после RemoveImage.
func (r *ReportingController) Image() ([]byte, string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if len(r.image) == 0 {
		return nil, "", fmt.Errorf("service: %w", ErrNoImage)
	}
	return slices.Clone(r.image), r.mimeType, nil
}

func (r *ReportingController) Snapshot() models.ReportSnapshot {
	r.mu.Lock()
	defer r.mu.Unlock()

	snapshot := models.ReportSnapshot{
		State:     r.state,
		HasImage:  len(r.image) > 0,
		MIMEType:  r.mimeType,
		ImageSize: len(r.image),
	}
	if r.analysis != nil {
		analysis := *r.analysis
		analysis.SafetySteps = slices.Clone(r.analysis.SafetySteps)
		snapshot.Analysis = &analysis
	}
	return snapshot
}
