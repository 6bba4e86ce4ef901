package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// @Summary Trigger an SOS alert
// @Description Routes the alert to the nearest police station and stores the first track point. Requires API key.
// @Tags SOS
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param sos body CreateSOSRequest true "Initial coordinates"
// @Success 201 {object} CreateSOSResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "No police station found"
// @Failure 409 {object} map[string]string "Citizen already has an active alert"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /sos [post]
func (h *Handler) createSOS(c *gin.Context) {
	var input CreateSOSRequest
	log := h.logger.WithField("method", "createSOS")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	email := c.GetHeader(headerUserEmail)
	if email == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user email not found in request"})
		return
	}

	alert, err := h.sosService.TriggerSOS(c.Request.Context(), email, c.GetHeader(headerUserName), input.Latitude, input.Longitude)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusCreated, CreateSOSResponse{
		SOSID:       alert.ID,
		Subdivision: alert.PoliceSubdivision,
	})
}

// @Summary Append an SOS track point
// @Description Appends a location sample to the caller's active alert. The alert keeps its original jurisdiction. Requires API key.
// @Tags SOS
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param location body AppendSOSLocationRequest true "Coordinates"
// @Success 200 {object} map[string]string "Location appended"
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "No active alert"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /sos/location [put]
func (h *Handler) appendSOSLocation(c *gin.Context) {
	var input AppendSOSLocationRequest
	log := h.logger.WithField("method", "appendSOSLocation")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	email := c.GetHeader(headerUserEmail)
	if email == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user email not found in request"})
		return
	}

	if err := h.sosService.AppendLocation(c.Request.Context(), email, input.Latitude, input.Longitude); err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "sos location updated"})
}

// @Summary Stop an SOS alert
// @Description Deactivates the alert. Stopping an already inactive alert reports 404 and changes nothing. Requires API key.
// @Tags SOS
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "SOS alert ID"
// @Success 200 {object} map[string]string "Alert stopped"
// @Failure 400 {object} map[string]string "Invalid alert ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "No active alert with this id"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /sos/{id}/stop [put]
func (h *Handler) stopSOS(c *gin.Context) {
	alertID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid sos alert ID"})
		return
	}
	log := h.logger.WithField("method", "stopSOS").WithField("sos_id", alertID)

	if err := h.sosService.StopSOS(c.Request.Context(), alertID); err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "sos stopped"})
}

// @Summary List SOS alerts for a subdivision
// @Description Returns all alerts routed to the subdivision, newest first, each with its full ordered track. Requires API key.
// @Tags SOS
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param subdivision query string true "Subdivision"
// @Success 200 {array} SOSAlertResponse
// @Failure 400 {object} map[string]string "Missing subdivision"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /sos [get]
func (h *Handler) listSOS(c *gin.Context) {
	log := h.logger.WithField("method", "listSOS")

	alerts, err := h.sosService.ListForJurisdiction(c.Request.Context(), c.Query("subdivision"))
	if err != nil {
		h.respondError(c, log, err)
		return
	}

	responses := make([]*SOSAlertResponse, len(alerts))
	for i, a := range alerts {
		responses[i] = ModelToSOSAlertResponse(a)
	}
	c.JSON(http.StatusOK, responses)
}
