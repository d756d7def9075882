package v1

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/shenikar/rescuenet_portal/internal/config"
	"github.com/shenikar/rescuenet_portal/internal/gateway"
	"github.com/shenikar/rescuenet_portal/internal/models"
	"github.com/shenikar/rescuenet_portal/internal/service"
	"github.com/sirupsen/logrus"
)

// NewsService - общая лента оповещений
type NewsService interface {
	Snapshot() models.NewsFeedSnapshot
	Refresh(ctx context.Context) models.NewsFeedSnapshot
}

// Catalog - справочные данные, одинаковые для всех сессий
type Catalog interface {
	Contacts() []models.EmergencyContact
	Languages() []models.Language
}

type Handler struct {
	sessions SessionResolver
	news     NewsService
	admin    service.AdminConsole
	catalog  Catalog
	limiter  *IPRateLimiter
	logger   *logrus.Logger
	validate *validator.Validate
	cfg      *config.Config
}

func NewHandler(
	sessions SessionResolver,
	news NewsService,
	admin service.AdminConsole,
	catalog Catalog,
	logger *logrus.Logger,
	cfg *config.Config,
) *Handler {
	return &Handler{
		sessions: sessions,
		news:     news,
		admin:    admin,
		catalog:  catalog,
		limiter: NewIPRateLimiter(RateLimiterConfig{
			Rate:  cfg.AIRateLimit,
			Burst: cfg.AIRateBurst,
		}),
		logger:   logger,
		validate: validator.New(),
		cfg:      cfg,
	}
}

// bindJSON разбирает и проверяет тело запроса, при ошибке сам отвечает 400
func (h *Handler) bindJSON(c *gin.Context, log *logrus.Entry, input any) bool {
	if err := c.ShouldBindJSON(input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return false
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return false
	}
	return true
}

// respondError переводит ошибку сервиса в HTTP-статус.
// Для ошибок внешнего сервиса клиент получает fallback вместо внутренних деталей.
func (h *Handler) respondError(c *gin.Context, log *logrus.Entry, err error, fallback string) {
	switch {
	case errors.Is(err, service.ErrValidation),
		errors.Is(err, gateway.ErrValidation),
		errors.Is(err, service.ErrInvalidTab),
		errors.Is(err, service.ErrUnknownLanguage),
		errors.Is(err, service.ErrUnsupportedImage),
		errors.Is(err, service.ErrNoImage):
		log.WithError(err).Warn("Rejected request")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrZoneNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "zone not found"})
	case errors.Is(err, service.ErrIncidentNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "incident not found"})
	case errors.Is(err, service.ErrAnalysisInProgress),
		errors.Is(err, service.ErrSuperseded):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, gateway.ErrLookupFailed),
		errors.Is(err, gateway.ErrServiceFailure),
		errors.Is(err, gateway.ErrMalformedResponse):
		log.WithError(err).Error("Intelligence service request failed")
		c.JSON(http.StatusBadGateway, gin.H{"error": fallback})
	default:
		log.WithError(err).Error("Unexpected error")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

// @Summary Get application health status
// @Description Get health status of the application
// @Tags System
// @Accept json
// @Produce json
// @Success 200 {object} map[string]string "Status OK"
// @Router /system/health [get]
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// @Summary Get emergency contacts
// @Description Get the static list of emergency hotline numbers
// @Tags Shell
// @Produce json
// @Success 200 {array} models.EmergencyContact
// @Router /contacts [get]
func (h *Handler) listContacts(c *gin.Context) {
	c.JSON(http.StatusOK, h.catalog.Contacts())
}

// @Summary Get supported languages
// @Tags Shell
// @Produce json
// @Success 200 {array} models.Language
// @Router /languages [get]
func (h *Handler) listLanguages(c *gin.Context) {
	c.JSON(http.StatusOK, h.catalog.Languages())
}

// @Summary Get shell state
// @Description Get the active tab, language and SOS countdown of the session
// @Tags Shell
// @Produce json
// @Param X-Session-ID header string false "Session ID"
// @Success 200 {object} models.ShellState
// @Router /shell [get]
func (h *Handler) getShell(c *gin.Context) {
	c.JSON(http.StatusOK, currentSession(c).Shell.State())
}

// @Summary Select a tab
// @Tags Shell
// @Accept json
// @Produce json
// @Param X-Session-ID header string false "Session ID"
// @Param tab body TabRequest true "Tab"
// @Success 200 {object} models.ShellState
// @Failure 400 {object} map[string]string "Invalid tab"
// @Router /shell/tab [put]
func (h *Handler) selectTab(c *gin.Context) {
	var input TabRequest
	log := h.logger.WithField("method", "selectTab")
	if !h.bindJSON(c, log, &input) {
		return
	}

	state, err := currentSession(c).Shell.SelectTab(models.Tab(input.Tab))
	if err != nil {
		h.respondError(c, log, err, "")
		return
	}
	c.JSON(http.StatusOK, state)
}

// @Summary Select interface language
// @Tags Shell
// @Accept json
// @Produce json
// @Param X-Session-ID header string false "Session ID"
// @Param language body LanguageRequest true "Language code"
// @Success 200 {object} models.ShellState
// @Failure 400 {object} map[string]string "Unsupported language"
// @Router /shell/language [put]
func (h *Handler) selectLanguage(c *gin.Context) {
	var input LanguageRequest
	log := h.logger.WithField("method", "selectLanguage")
	if !h.bindJSON(c, log, &input) {
		return
	}

	state, err := currentSession(c).Shell.SelectLanguage(input.Code)
	if err != nil {
		h.respondError(c, log, err, "")
		return
	}
	c.JSON(http.StatusOK, state)
}

// @Summary Trigger SOS
// @Description Start the five second SOS countdown. Triggering again restarts it.
// @Tags Shell
// @Produce json
// @Param X-Session-ID header string false "Session ID"
// @Success 200 {object} models.ShellState
// @Router /shell/sos [post]
func (h *Handler) triggerSOS(c *gin.Context) {
	h.logger.WithField("method", "triggerSOS").Info("SOS requested")
	c.JSON(http.StatusOK, currentSession(c).Shell.TriggerSOS())
}

// @Summary Cancel SOS
// @Tags Shell
// @Produce json
// @Param X-Session-ID header string false "Session ID"
// @Success 200 {object} models.ShellState
// @Router /shell/sos [delete]
func (h *Handler) cancelSOS(c *gin.Context) {
	c.JSON(http.StatusOK, currentSession(c).Shell.CancelSOS())
}

// @Summary Get live alerts
// @Description Get the process-wide news feed snapshot
// @Tags News
// @Produce json
// @Success 200 {object} models.NewsFeedSnapshot
// @Router /news [get]
func (h *Handler) getNews(c *gin.Context) {
	c.JSON(http.StatusOK, h.news.Snapshot())
}

// @Summary Refresh live alerts
// @Description Fetch the news feed out of schedule. Results of older requests never overwrite newer ones.
// @Tags News
// @Produce json
// @Success 200 {object} models.NewsFeedSnapshot
// @Failure 429 {object} map[string]string "Too many requests"
// @Router /news/refresh [post]
func (h *Handler) refreshNews(c *gin.Context) {
	c.JSON(http.StatusOK, h.news.Refresh(c.Request.Context()))
}
