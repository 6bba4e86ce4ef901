package v1

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes регистрирует все маршруты API v1
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	// Маршруты жизненного цикла жалоб
	complaints := api.Group("/complaints")
	{
		complaints.POST("", h.submitComplaint)
		complaints.GET("", h.listComplaints)
		complaints.GET("/generate_id", h.generateComplaintID)
		complaints.GET("/track", h.trackComplaint)
		complaints.GET("/:id", h.getComplaint)
		complaints.PUT("/:id/status", h.updateComplaintStatus)
		complaints.POST("/:id/evidence", h.appendEvidence)

		// Итоговый отчет закрывает жалобу
		complaints.POST("/:id/final_report", h.submitFinalReport)
		complaints.GET("/:id/final_report", h.getFinalReport)

		// Заметки следствия
		complaints.POST("/:id/notes", h.addNote)
		complaints.GET("/:id/notes", h.listNotes)
	}

	notes := api.Group("/notes")
	{
		notes.PUT("/:note_id", h.updateNote)
		notes.DELETE("/:note_id", h.deleteNote)
	}

	// Отчеты по жалобам заявителя
	api.GET("/reports/my", h.listMyReports)

	// Сигналы бедствия
	sos := api.Group("/sos")
	{
		sos.POST("", h.createSOS)
		sos.GET("", h.listSOS)
		sos.PUT("/location", h.appendSOSLocation)
		sos.PUT("/:id/stop", h.stopSOS)
	}

	// Счетчики преступлений по участкам
	api.GET("/statistics", h.getStatistics)

	// Маршрут Health-check
	api.GET("/system/health", h.healthCheck)
}
