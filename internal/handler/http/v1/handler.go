package v1

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/shenikar/crime_report_system/internal/apperrors"
	"github.com/shenikar/crime_report_system/internal/config"
	"github.com/shenikar/crime_report_system/internal/service"
	"github.com/sirupsen/logrus"
)

// Заголовки идентичности, проставляются вышестоящим шлюзом аутентификации
const (
	headerUserEmail = "X-User-Email"
	headerUserName  = "X-User-Name"
	headerUserRole  = "X-User-Role"
)

type Handler struct {
	complaintService service.ComplaintService
	reportService    service.FinalReportService
	sosService       service.SOSService
	noteService      service.NoteService
	logger           *logrus.Logger
	validate         *validator.Validate
	cfg              *config.Config
}

func NewHandler(
	complaintService service.ComplaintService,
	reportService service.FinalReportService,
	sosService service.SOSService,
	noteService service.NoteService,
	logger *logrus.Logger,
	cfg *config.Config,
) *Handler {
	return &Handler{
		complaintService: complaintService,
		reportService:    reportService,
		sosService:       sosService,
		noteService:      noteService,
		logger:           logger,
		validate:         validator.New(),
		cfg:              cfg,
	}
}

// viewerFromContext собирает идентичность читателя из заголовков шлюза
func viewerFromContext(c *gin.Context) service.Viewer {
	return service.Viewer{
		Role:  c.GetHeader(headerUserRole),
		Email: c.GetHeader(headerUserEmail),
	}
}

// respondError переводит ошибку сервиса в HTTP-код. Ошибки валидации и
// переходов возвращаются с деталями, ошибки хранилища логируются и наружу
// уходят обезличенными.
func (h *Handler) respondError(c *gin.Context, log *logrus.Entry, err error) {
	var vErr *apperrors.ValidationError
	switch {
	case errors.As(err, &vErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": vErr.Error()})
	case errors.Is(err, apperrors.ErrInvalidTransition):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	case errors.Is(err, apperrors.ErrNoActiveAlert):
		c.JSON(http.StatusNotFound, gin.H{"error": "no active sos alert"})
	case errors.Is(err, apperrors.ErrNoStationFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "no police station found"})
	case errors.Is(err, apperrors.ErrConflict):
		log.WithError(err).Warn("Conflicting concurrent modification")
		c.JSON(http.StatusConflict, gin.H{"error": "conflict, please retry"})
	default:
		log.WithError(err).Error("Internal error")
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
