package v1

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shenikar/rescuenet_portal/internal/models"
)

// @Summary Create a new incident
// @Description Create an incident in the admin console. Empty fields get defaults, status starts as Reported.
// @Tags Admin
// @Accept json
// @Produce json
// @Param incident body CreateIncidentRequest true "Incident creation request"
// @Success 201 {object} IncidentResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /admin/incidents [post]
func (h *Handler) createIncident(c *gin.Context) {
	var input CreateIncidentRequest
	log := h.logger.WithField("method", "createIncident")
	if !h.bindJSON(c, log, &input) {
		return
	}

	model := DTOToIncidentModel(input)
	if err := h.admin.CreateIncident(c.Request.Context(), model); err != nil {
		h.respondError(c, log, err, "")
		return
	}
	c.JSON(http.StatusCreated, ModelToIncidentResponse(model))
}

// @Summary Get a list of incidents
// @Description Get a paginated list of incidents, newest first
// @Tags Admin
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Number of items per page" default(20)
// @Success 200 {array} IncidentResponse
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /admin/incidents [get]
func (h *Handler) listIncidents(c *gin.Context) {
	log := h.logger.WithField("method", "listIncidents")
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("pageSize", "20"))

	incidents, err := h.admin.ListIncidents(c.Request.Context(), page, pageSize)
	if err != nil {
		h.respondError(c, log, err, "")
		return
	}

	c.JSON(http.StatusOK, ModelsToIncidentResponses(incidents))
}

// @Summary Delete an incident
// @Description Remove an incident from the admin console
// @Tags Admin
// @Produce json
// @Param id path string true "Incident ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string "Invalid incident ID"
// @Failure 404 {object} map[string]string "Incident not found"
// @Router /admin/incidents/{id} [delete]
func (h *Handler) deleteIncident(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid incident ID"})
		return
	}
	log := h.logger.WithField("method", "deleteIncident").WithField("id", id)

	if err := h.admin.DeleteIncident(c.Request.Context(), id); err != nil {
		h.respondError(c, log, err, "")
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Update incident status
// @Tags Admin
// @Accept json
// @Produce json
// @Param id path string true "Incident ID"
// @Param status body UpdateStatusRequest true "New status"
// @Success 200 {object} IncidentResponse
// @Failure 400 {object} map[string]string "Invalid incident ID or status"
// @Failure 404 {object} map[string]string "Incident not found"
// @Router /admin/incidents/{id}/status [patch]
func (h *Handler) updateIncidentStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid incident ID"})
		return
	}
	log := h.logger.WithField("method", "updateIncidentStatus").WithField("id", id)

	var input UpdateStatusRequest
	if !h.bindJSON(c, log, &input) {
		return
	}

	incident, err := h.admin.UpdateStatus(c.Request.Context(), id, models.IncidentStatus(input.Status))
	if err != nil {
		h.respondError(c, log, err, "")
		return
	}
	c.JSON(http.StatusOK, ModelToIncidentResponse(incident))
}

// @Summary Get incident statistics
// @Description Counts of incidents by severity and status
// @Tags Admin
// @Produce json
// @Success 200 {object} models.IncidentStats
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /admin/stats [get]
func (h *Handler) getStats(c *gin.Context) {
	log := h.logger.WithField("method", "getStats")

	stats, err := h.admin.Stats(c.Request.Context())
	if err != nil {
		h.respondError(c, log, err, "")
		return
	}

	c.JSON(http.StatusOK, stats)
}

// @Summary Save broadcast draft
// @Tags Admin
// @Accept json
// @Produce json
// @Param draft body BroadcastDraftRequest true "Draft"
// @Success 200 {object} BroadcastResponse
// @Failure 400 {object} map[string]string "Invalid request body"
// @Router /admin/broadcast [put]
func (h *Handler) setBroadcastDraft(c *gin.Context) {
	var input BroadcastDraftRequest
	log := h.logger.WithField("method", "setBroadcastDraft")
	if !h.bindJSON(c, log, &input) {
		return
	}
	c.JSON(http.StatusOK, BroadcastResponse{Message: h.admin.SetBroadcastDraft(input.Message)})
}

// @Summary Send broadcast
// @Description Publishes the current draft to all channels and clears it
// @Tags Admin
// @Produce json
// @Success 202 {object} BroadcastResponse
// @Failure 400 {object} map[string]string "Empty draft"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /admin/broadcast/send [post]
func (h *Handler) sendBroadcast(c *gin.Context) {
	log := h.logger.WithField("method", "sendBroadcast")

	msg, err := h.admin.SendBroadcast(c.Request.Context())
	if err != nil {
		h.respondError(c, log, err, "")
		return
	}
	c.JSON(http.StatusAccepted, MessageToBroadcastResponse(msg))
}
