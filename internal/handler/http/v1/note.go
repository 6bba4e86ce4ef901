package v1

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shenikar/crime_report_system/internal/models"
)

// @Summary Add an investigation note
// @Description Attaches a free-form note of an officer to a complaint. Requires API key.
// @Tags Notes
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Complaint ID"
// @Param note body AddNoteRequest true "Note"
// @Success 201 {object} NoteResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Complaint not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /complaints/{id}/notes [post]
func (h *Handler) addNote(c *gin.Context) {
	complaintID := c.Param("id")
	log := h.logger.WithField("method", "addNote").WithField("complaint_id", complaintID)

	var input AddNoteRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	input.ComplaintID = complaintID

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	note := &models.InvestigationNote{
		ComplaintID: complaintID,
		OfficerID:   input.OfficerID,
		NoteText:    input.NoteText,
	}
	if err := h.noteService.AddNote(c.Request.Context(), note); err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusCreated, ModelToNoteResponse(note))
}

// @Summary List investigation notes of a complaint
// @Description Returns all notes of the complaint in chronological order. Requires API key.
// @Tags Notes
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Complaint ID"
// @Success 200 {array} NoteResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /complaints/{id}/notes [get]
func (h *Handler) listNotes(c *gin.Context) {
	complaintID := c.Param("id")
	log := h.logger.WithField("method", "listNotes").WithField("complaint_id", complaintID)

	notes, err := h.noteService.ListNotes(c.Request.Context(), complaintID)
	if err != nil {
		h.respondError(c, log, err)
		return
	}

	responses := make([]*NoteResponse, len(notes))
	for i, n := range notes {
		responses[i] = ModelToNoteResponse(n)
	}
	c.JSON(http.StatusOK, responses)
}

// @Summary Update an investigation note
// @Description Replaces the note text. Requires API key.
// @Tags Notes
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param note_id path int true "Note ID"
// @Param note body UpdateNoteRequest true "New text"
// @Success 200 {object} NoteResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Note not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /notes/{note_id} [put]
func (h *Handler) updateNote(c *gin.Context) {
	noteID, err := strconv.ParseInt(c.Param("note_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid note ID"})
		return
	}
	log := h.logger.WithField("method", "updateNote").WithField("note_id", noteID)

	var input UpdateNoteRequest
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

	note, err := h.noteService.UpdateNote(c.Request.Context(), noteID, input.NoteText)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelToNoteResponse(note))
}

// @Summary Delete an investigation note
// @Description Removes the note. Requires API key.
// @Tags Notes
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param note_id path int true "Note ID"
// @Success 200 {object} map[string]string "Note deleted"
// @Failure 400 {object} map[string]string "Invalid note ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Note not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /notes/{note_id} [delete]
func (h *Handler) deleteNote(c *gin.Context) {
	noteID, err := strconv.ParseInt(c.Param("note_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid note ID"})
		return
	}
	log := h.logger.WithField("method", "deleteNote").WithField("note_id", noteID)

	if err := h.noteService.DeleteNote(c.Request.Context(), noteID); err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "note deleted"})
}
