package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shenikar/rescuenet_portal/internal/models"
	"github.com/shenikar/rescuenet_portal/internal/service"
)

// @Summary Get support form state
// @Tags Support
// @Produce json
// @Param X-Session-ID header string false "Session ID"
// @Success 200 {object} models.SupportSnapshot
// @Router /support [get]
func (h *Handler) getSupport(c *gin.Context) {
	c.JSON(http.StatusOK, currentSession(c).Support.Snapshot())
}

// @Summary Switch support mode
// @Tags Support
// @Accept json
// @Produce json
// @Param X-Session-ID header string false "Session ID"
// @Param mode body SupportModeRequest true "Mode"
// @Success 200 {object} models.SupportSnapshot
// @Failure 400 {object} map[string]string "Invalid mode"
// @Router /support/mode [put]
func (h *Handler) setSupportMode(c *gin.Context) {
	var input SupportModeRequest
	log := h.logger.WithField("method", "setSupportMode")
	if !h.bindJSON(c, log, &input) {
		return
	}

	snapshot, err := currentSession(c).Support.SetMode(models.SupportMode(input.Mode))
	if err != nil {
		h.respondError(c, log, err, "")
		return
	}
	c.JSON(http.StatusOK, snapshot)
}

// @Summary Toggle a volunteer skill
// @Tags Support
// @Produce json
// @Param X-Session-ID header string false "Session ID"
// @Param skill path string true "Skill"
// @Success 200 {object} models.SupportSnapshot
// @Failure 400 {object} map[string]string "Unknown skill"
// @Router /support/skills/{skill} [post]
func (h *Handler) toggleSkill(c *gin.Context) {
	log := h.logger.WithField("method", "toggleSkill")

	snapshot, err := currentSession(c).Support.ToggleSkill(c.Param("skill"))
	if err != nil {
		h.respondError(c, log, err, "")
		return
	}
	c.JSON(http.StatusOK, snapshot)
}

// @Summary Submit volunteer or donation form
// @Description Validates the fields of the active mode, issues an RN-#### tracking code and records community activity
// @Tags Support
// @Accept json
// @Produce json
// @Param X-Session-ID header string false "Session ID"
// @Param form body SupportFormRequest true "Form"
// @Success 201 {object} models.SupportSnapshot
// @Failure 400 {object} map[string]string "Validation error"
// @Router /support/submit [post]
func (h *Handler) submitSupport(c *gin.Context) {
	var input SupportFormRequest
	log := h.logger.WithField("method", "submitSupport")
	if !h.bindJSON(c, log, &input) {
		return
	}

	snapshot, err := currentSession(c).Support.Submit(c.Request.Context(), DTOToSupportForm(input))
	if err != nil {
		h.respondError(c, log, err, "")
		return
	}
	c.JSON(http.StatusCreated, snapshot)
}

// @Summary Reset support form
// @Tags Support
// @Produce json
// @Param X-Session-ID header string false "Session ID"
// @Success 200 {object} models.SupportSnapshot
// @Router /support/reset [post]
func (h *Handler) resetSupport(c *gin.Context) {
	c.JSON(http.StatusOK, currentSession(c).Support.Reset())
}

// @Summary Track an application
// @Description Checks the tracking code format only; there is no application registry
// @Tags Support
// @Accept json
// @Produce json
// @Param track body TrackRequest true "Tracking code"
// @Success 200 {object} models.TrackingResult
// @Failure 400 {object} map[string]string "Invalid request body"
// @Router /support/track [post]
func (h *Handler) trackApplication(c *gin.Context) {
	var input TrackRequest
	log := h.logger.WithField("method", "trackApplication")
	if !h.bindJSON(c, log, &input) {
		return
	}
	c.JSON(http.StatusOK, service.Track(input.Code))
}

// @Summary Get community activity
// @Description Latest five volunteer and donation entries, newest first
// @Tags Support
// @Produce json
// @Success 200 {array} models.ActivityEntry
// @Router /support/activity [get]
func (h *Handler) listActivity(c *gin.Context) {
	log := h.logger.WithField("method", "listActivity")

	entries, err := currentSession(c).Support.Activity(c.Request.Context())
	if err != nil {
		h.respondError(c, log, err, "")
		return
	}
	c.JSON(http.StatusOK, entries)
}
