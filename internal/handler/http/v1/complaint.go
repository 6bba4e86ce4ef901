package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// @Summary Generate the next complaint id
// @Description Draws the next CMP identifier from the database sequence. Requires API key.
// @Tags Complaints
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} GenerateIDResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /complaints/generate_id [get]
func (h *Handler) generateComplaintID(c *gin.Context) {
	log := h.logger.WithField("method", "generateComplaintID")

	id, err := h.complaintService.GenerateComplaintID(c.Request.Context())
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, GenerateIDResponse{ComplaintID: id})
}

// @Summary Submit a crime complaint
// @Description Submit a new crime complaint. The complainant email is taken from the X-User-Email header. Requires API key.
// @Tags Complaints
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param complaint body SubmitComplaintRequest true "Complaint draft"
// @Success 201 {object} SubmitComplaintResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 409 {object} map[string]string "Complaint id already taken"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /complaints [post]
func (h *Handler) submitComplaint(c *gin.Context) {
	var input SubmitComplaintRequest
	log := h.logger.WithField("method", "submitComplaint")

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

	model := DTOToComplaintModel(input, email)
	if err := h.complaintService.SubmitComplaint(c.Request.Context(), model); err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusCreated, SubmitComplaintResponse{
		ComplaintID: model.ComplaintID,
		CreatedAt:   model.CreatedAt,
		Status:      model.Status.String(),
	})
}

// @Summary Track own complaint
// @Description Returns the full complaint when both the id and the submitter email match. Requires API key.
// @Tags Complaints
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param complaint_id query string true "Complaint ID"
// @Success 200 {object} ComplaintResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Complaint not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /complaints/track [get]
func (h *Handler) trackComplaint(c *gin.Context) {
	complaintID := c.Query("complaint_id")
	log := h.logger.WithField("method", "trackComplaint").WithField("complaint_id", complaintID)

	email := c.GetHeader(headerUserEmail)
	if email == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user email not found in request"})
		return
	}

	complaint, err := h.complaintService.TrackComplaint(c.Request.Context(), complaintID, email)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelToComplaintResponse(complaint))
}

// @Summary List complaints for a jurisdiction
// @Description Lists complaints of a (district, subdivision). Victim, suspect and witness details of Pending complaints are replaced by a confidentiality marker. Requires API key.
// @Tags Complaints
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param district query string true "District"
// @Param subdivision query string true "Subdivision"
// @Success 200 {array} ComplaintResponse
// @Failure 400 {object} map[string]string "Missing district or subdivision"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /complaints [get]
func (h *Handler) listComplaints(c *gin.Context) {
	log := h.logger.WithField("method", "listComplaints")

	complaints, err := h.complaintService.ListForJurisdiction(
		c.Request.Context(),
		c.Query("district"),
		c.Query("subdivision"),
		viewerFromContext(c),
	)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelsToComplaintResponses(complaints))
}

// @Summary Get complaint by id
// @Description Returns a single complaint with the redaction policy applied for the caller. Requires API key.
// @Tags Complaints
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Complaint ID"
// @Success 200 {object} ComplaintResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Complaint not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /complaints/{id} [get]
func (h *Handler) getComplaint(c *gin.Context) {
	complaintID := c.Param("id")
	log := h.logger.WithField("method", "getComplaint").WithField("complaint_id", complaintID)

	complaint, err := h.complaintService.ViewComplaint(c.Request.Context(), complaintID, viewerFromContext(c))
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelToComplaintResponse(complaint))
}

// @Summary Update complaint status
// @Description Performs a state machine transition. The Accepted -> Under Investigation edge also increments the crime statistics counter. Requires API key.
// @Tags Complaints
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Complaint ID"
// @Param status body UpdateStatusRequest true "Target status"
// @Success 200 {object} map[string]string "Status updated"
// @Failure 400 {object} map[string]string "Invalid transition or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Complaint not found"
// @Failure 409 {object} map[string]string "Concurrent modification"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /complaints/{id}/status [put]
func (h *Handler) updateComplaintStatus(c *gin.Context) {
	complaintID := c.Param("id")
	log := h.logger.WithField("method", "updateComplaintStatus").WithField("complaint_id", complaintID)

	var input UpdateStatusRequest
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

	target, err := DTOToTargetStatus(input)
	if err != nil {
		h.respondError(c, log, err)
		return
	}

	if err := h.complaintService.UpdateStatus(c.Request.Context(), complaintID, target); err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "complaint status updated successfully"})
}

// @Summary Append evidence references
// @Description Appends opaque evidence file references to a complaint. Requires API key.
// @Tags Complaints
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Complaint ID"
// @Param evidence body AppendEvidenceRequest true "Evidence references"
// @Success 200 {object} map[string]string "Evidence appended"
// @Failure 400 {object} map[string]string "Validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Complaint not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /complaints/{id}/evidence [post]
func (h *Handler) appendEvidence(c *gin.Context) {
	complaintID := c.Param("id")
	log := h.logger.WithField("method", "appendEvidence").WithField("complaint_id", complaintID)

	var input AppendEvidenceRequest
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

	if err := h.complaintService.AppendEvidence(c.Request.Context(), complaintID, input.EvidenceRefs); err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "evidence appended"})
}

// @Summary Get crime statistics
// @Description Returns per-(district, subdivision) incident type counters. Empty filters do not restrict the selection. Requires API key.
// @Tags Statistics
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param district query string false "District filter"
// @Param subdivision query string false "Subdivision filter"
// @Success 200 {array} CrimeStatisticsResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /statistics [get]
func (h *Handler) getStatistics(c *gin.Context) {
	log := h.logger.WithField("method", "getStatistics")

	stats, err := h.complaintService.GetStatistics(c.Request.Context(), c.Query("district"), c.Query("subdivision"))
	if err != nil {
		h.respondError(c, log, err)
		return
	}

	responses := make([]*CrimeStatisticsResponse, len(stats))
	for i, s := range stats {
		responses[i] = ModelToStatisticsResponse(s)
	}
	c.JSON(http.StatusOK, responses)
}
