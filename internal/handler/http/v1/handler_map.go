package v1

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shenikar/rescuenet_portal/internal/models"
	"github.com/shenikar/rescuenet_portal/internal/service"
)

// @Summary Get map markers
// @Description Get all hazard zones with their colors and highlight flags for the session
// @Tags Map
// @Produce json
// @Param X-Session-ID header string false "Session ID"
// @Success 200 {array} models.ZoneMarker
// @Router /zones [get]
func (h *Handler) listZones(c *gin.Context) {
	c.JSON(http.StatusOK, currentSession(c).Map.Snapshot().Markers)
}

// @Summary Get zone inspector state
// @Tags Map
// @Produce json
// @Param X-Session-ID header string false "Session ID"
// @Success 200 {object} models.MapSnapshot
// @Router /zones/selection [get]
func (h *Handler) getSelection(c *gin.Context) {
	c.JSON(http.StatusOK, currentSession(c).Map.Snapshot())
}

// @Summary Select a hazard zone
// @Tags Map
// @Produce json
// @Param X-Session-ID header string false "Session ID"
// @Param id path string true "Zone ID"
// @Success 200 {object} models.MapSnapshot
// @Failure 404 {object} map[string]string "Zone not found"
// @Router /zones/selection/{id} [put]
func (h *Handler) selectZone(c *gin.Context) {
	log := h.logger.WithField("method", "selectZone").WithField("zone_id", c.Param("id"))

	snapshot, err := currentSession(c).Map.Select(c.Param("id"))
	if err != nil {
		h.respondError(c, log, err, "")
		return
	}
	c.JSON(http.StatusOK, snapshot)
}

// @Summary Clear zone selection
// @Tags Map
// @Produce json
// @Param X-Session-ID header string false "Session ID"
// @Success 200 {object} models.MapSnapshot
// @Router /zones/selection [delete]
func (h *Handler) clearSelection(c *gin.Context) {
	c.JSON(http.StatusOK, currentSession(c).Map.Clear())
}

// @Summary Move map center
// @Tags Map
// @Accept json
// @Produce json
// @Param X-Session-ID header string false "Session ID"
// @Param center body SetCenterRequest true "New center"
// @Success 200 {object} models.MapSnapshot
// @Failure 400 {object} map[string]string "Invalid coordinates"
// @Router /map/center [put]
func (h *Handler) setCenter(c *gin.Context) {
	var input SetCenterRequest
	log := h.logger.WithField("method", "setCenter")
	if !h.bindJSON(c, log, &input) {
		return
	}

	snapshot, err := currentSession(c).Map.SetCenter(models.Coordinates{Lat: *input.Lat, Lng: *input.Lng})
	if err != nil {
		h.respondError(c, log, err, "")
		return
	}
	c.JSON(http.StatusOK, snapshot)
}

// @Summary Search nearby places
// @Description Maps-grounded search around the given coordinates or the default center
// @Tags Places
// @Accept json
// @Produce json
// @Param X-Session-ID header string false "Session ID"
// @Param search body PlaceSearchRequest true "Search request"
// @Success 200 {object} models.GroundingResult
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 429 {object} map[string]string "Too many requests"
// @Router /places/search [post]
func (h *Handler) searchPlaces(c *gin.Context) {
	var input PlaceSearchRequest
	log := h.logger.WithField("method", "searchPlaces")
	if !h.bindJSON(c, log, &input) {
		return
	}

	var origin *models.Coordinates
	if input.Lat != nil && input.Lng != nil {
		origin = &models.Coordinates{Lat: *input.Lat, Lng: *input.Lng}
	}

	result, err := currentSession(c).Places.Search(c.Request.Context(), input.Query, origin)
	if err != nil {
		h.respondError(c, log, err, "")
		return
	}
	c.JSON(http.StatusOK, result)
}

// @Summary Get facility search state
// @Tags Facilities
// @Produce json
// @Param X-Session-ID header string false "Session ID"
// @Success 200 {object} models.FacilitySearchSnapshot
// @Router /facilities [get]
func (h *Handler) getFacilities(c *gin.Context) {
	c.JSON(http.StatusOK, currentSession(c).Facilities.Snapshot())
}

// @Summary Search emergency facilities
// @Description Maps-grounded search for hospitals, police stations or shelters in a location
// @Tags Facilities
// @Accept json
// @Produce json
// @Param X-Session-ID header string false "Session ID"
// @Param search body FacilitySearchRequest true "Search request"
// @Success 200 {object} models.GroundingResult
// @Failure 400 {object} map[string]string "Missing location or invalid type"
// @Failure 429 {object} map[string]string "Too many requests"
// @Router /facilities/search [post]
func (h *Handler) searchFacilities(c *gin.Context) {
	var input FacilitySearchRequest
	log := h.logger.WithField("method", "searchFacilities")
	if !h.bindJSON(c, log, &input) {
		return
	}

	finder := currentSession(c).Facilities
	result, err := finder.Search(c.Request.Context(), input.Location, models.FacilityType(input.Type))
	if err != nil {
		if msg := finder.Snapshot().Error; msg != "" && errors.Is(err, service.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": msg})
			return
		}
		h.respondError(c, log, err, "")
		return
	}
	c.JSON(http.StatusOK, result)
}

// @Summary Select facility category
// @Description Change the facility category. Repeats the search if a location was entered.
// @Tags Facilities
// @Accept json
// @Produce json
// @Param X-Session-ID header string false "Session ID"
// @Param category body FacilityCategoryRequest true "Category"
// @Success 200 {object} models.FacilitySearchSnapshot
// @Failure 400 {object} map[string]string "Invalid type"
// @Router /facilities/category [put]
func (h *Handler) selectFacilityCategory(c *gin.Context) {
	var input FacilityCategoryRequest
	log := h.logger.WithField("method", "selectFacilityCategory")
	if !h.bindJSON(c, log, &input) {
		return
	}

	snapshot, err := currentSession(c).Facilities.SelectCategory(c.Request.Context(), models.FacilityType(input.Type))
	if err != nil {
		h.respondError(c, log, err, "")
		return
	}
	c.JSON(http.StatusOK, snapshot)
}

// @Summary Get facility directory
// @Description Get the static facility directory, optionally filtered by type
// @Tags Facilities
// @Produce json
// @Param type query string false "Facility type" Enums(Hospital, Police, Shelter)
// @Success 200 {array} models.EmergencyFacility
// @Failure 400 {object} map[string]string "Invalid type"
// @Router /facilities/directory [get]
func (h *Handler) facilityDirectory(c *gin.Context) {
	facilityType := models.FacilityType(c.Query("type"))
	if facilityType != "" && !facilityType.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid facility type"})
		return
	}
	c.JSON(http.StatusOK, currentSession(c).Facilities.Directory(facilityType))
}

// @Summary Get regional explorer state
// @Tags Explorer
// @Produce json
// @Param X-Session-ID header string false "Session ID"
// @Success 200 {object} models.ExplorerSnapshot
// @Router /explorer [get]
func (h *Handler) getExplorer(c *gin.Context) {
	c.JSON(http.StatusOK, currentSession(c).Explorer.Snapshot())
}

// @Summary Look up a location profile
// @Description Web-grounded profile of an Indian city, district or PIN code
// @Tags Explorer
// @Accept json
// @Produce json
// @Param X-Session-ID header string false "Session ID"
// @Param lookup body ExplorerLookupRequest true "Lookup request"
// @Success 200 {object} models.LocationProfile
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 429 {object} map[string]string "Too many requests"
// @Failure 502 {object} map[string]string "Lookup failed"
// @Router /explorer/lookup [post]
func (h *Handler) lookupLocation(c *gin.Context) {
	var input ExplorerLookupRequest
	log := h.logger.WithField("method", "lookupLocation")
	if !h.bindJSON(c, log, &input) {
		return
	}

	profile, err := currentSession(c).Explorer.Lookup(c.Request.Context(), input.Query)
	if err != nil {
		h.respondError(c, log, err, service.LookupFailedMessage)
		return
	}
	c.JSON(http.StatusOK, profile)
}
