package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shenikar/crime_report_system/internal/models"
)

// @Summary Submit a final report
// @Description Persists the final investigation report and closes the complaint in the same transaction. Requires API key.
// @Tags Reports
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Complaint ID"
// @Param report body SubmitFinalReportRequest true "Final report"
// @Success 201 {object} FinalReportResponse
// @Failure 400 {object} map[string]string "Validation error or complaint not under investigation"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Complaint not found"
// @Failure 409 {object} map[string]string "Complaint already closed"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /complaints/{id}/final_report [post]
func (h *Handler) submitFinalReport(c *gin.Context) {
	complaintID := c.Param("id")
	log := h.logger.WithField("method", "submitFinalReport").WithField("complaint_id", complaintID)

	var input SubmitFinalReportRequest
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

	report := &models.FinalReport{
		ComplaintID:   complaintID,
		OfficerID:     input.OfficerID,
		FinalStatus:   models.CloseReason(input.FinalStatus),
		ReportText:    input.ReportText,
		Remarks:       input.Remarks,
		EvidenceFiles: input.EvidenceFiles,
	}
	if err := h.reportService.SubmitFinalReport(c.Request.Context(), report); err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusCreated, ModelToFinalReportResponse(report))
}

// @Summary Get the latest final report of a complaint
// @Description Returns the most recent final report for the complaint. Requires API key.
// @Tags Reports
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Complaint ID"
// @Success 200 {object} FinalReportResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Report not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /complaints/{id}/final_report [get]
func (h *Handler) getFinalReport(c *gin.Context) {
	complaintID := c.Param("id")
	log := h.logger.WithField("method", "getFinalReport").WithField("complaint_id", complaintID)

	report, err := h.reportService.GetLatestReport(c.Request.Context(), complaintID)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelToFinalReportResponse(report))
}

// @Summary List own final reports
// @Description Returns the final reports of the caller's complaints, newest first. Requires API key.
// @Tags Reports
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {array} FinalReportResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /reports/my [get]
func (h *Handler) listMyReports(c *gin.Context) {
	log := h.logger.WithField("method", "listMyReports")

	email := c.GetHeader(headerUserEmail)
	if email == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user email not found in request"})
		return
	}

	reports, err := h.reportService.ListReportsForComplainant(c.Request.Context(), email)
	if err != nil {
		h.respondError(c, log, err)
		return
	}

	responses := make([]*FinalReportResponse, len(reports))
	for i, r := range reports {
		responses[i] = ModelToFinalReportResponse(r)
	}
	c.JSON(http.StatusOK, responses)
}
