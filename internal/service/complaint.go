package service

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/shenikar/crime_report_system/internal/apperrors"
	"github.com/shenikar/crime_report_system/internal/models"
	"github.com/sirupsen/logrus"
)

// Роли зрителей, проставляются вышестоящим шлюзом аутентификации
const (
	RoleCitizen = "citizen"
	RoleOfficer = "police"
	RoleAdmin   = "admin"
)

// Viewer - идентичность читателя, от нее зависит политика сокрытия данных
type Viewer struct {
	Role  string
	Email string
}

// ComplaintRepository определяет контракт для работы с бд жалоб
type ComplaintRepository interface {
	// NextComplaintID выдает следующий идентификатор из последовательности бд
	NextComplaintID(ctx context.Context) (string, error)
	Create(ctx context.Context, complaint *models.Complaint) error
	GetByID(ctx context.Context, complaintID string) (*models.Complaint, error)
	// GetByIDAndComplainant возвращает жалобу только при совпадении обоих ключей
	GetByIDAndComplainant(ctx context.Context, complaintID, email string) (*models.Complaint, error)
	ListByJurisdiction(ctx context.Context, district, subdivision string) ([]*models.Complaint, error)
	// UpdateStatus атомарно меняет статус и, если incrementStats, инкрементирует
	// счетчик статистики в той же транзакции
	UpdateStatus(ctx context.Context, complaintID string, from models.State, to models.Status, incrementStats bool) error
	AppendEvidence(ctx context.Context, complaintID string, refs []string) error
	GetStatistics(ctx context.Context, district, subdivision string) ([]*models.CrimeStatistics, error)

	GetComplaintFromCache(ctx context.Context, complaintID string) (*models.Complaint, error)
	SetComplaintCache(ctx context.Context, complaint *models.Complaint) error
	InvalidateComplaintCache(ctx context.Context, complaintID string) error
}

// ComplaintService определяет контракт бизнес-логики жизненного цикла жалобы
type ComplaintService interface {
	GenerateComplaintID(ctx context.Context) (string, error)
	SubmitComplaint(ctx context.Context, complaint *models.Complaint) error
	TrackComplaint(ctx context.Context, complaintID, email string) (*models.Complaint, error)
	ViewComplaint(ctx context.Context, complaintID string, viewer Viewer) (*models.Complaint, error)
	ListForJurisdiction(ctx context.Context, district, subdivision string, viewer Viewer) ([]*models.Complaint, error)
	UpdateStatus(ctx context.Context, complaintID string, target models.Status) error
	AppendEvidence(ctx context.Context, complaintID string, refs []string) error
	GetStatistics(ctx context.Context, district, subdivision string) ([]*models.CrimeStatistics, error)
}

// allowedTransitions - конечный автомат статусов. Отсутствие статуса в таблице
// означает терминальное состояние.
var allowedTransitions = map[models.State][]models.State{
	models.StatePending:            {models.StateAccepted, models.StateRejected},
	models.StateAccepted:           {models.StateUnderInvestigation},
	models.StateUnderInvestigation: {models.StateClosed},
}

var complaintIDPattern = regexp.MustCompile(`^CMP\d{10}$`)

type complaintService struct {
	repo   ComplaintRepository
	logger *logrus.Logger
}

func NewComplaintService(repo ComplaintRepository, logger *logrus.Logger) ComplaintService {
	return &complaintService{
		repo:   repo,
		logger: logger,
	}
}

// GenerateComplaintID выдает следующий свободный идентификатор жалобы
func (s *complaintService) GenerateComplaintID(ctx context.Context) (string, error) {
	id, err := s.repo.NextComplaintID(ctx)
	if err != nil {
		s.logger.WithError(err).Error("Failed to generate complaint id")
		return "", fmt.Errorf("service: could not generate complaint id: %w", err)
	}
	return id, nil
}

// SubmitComplaint валидирует черновик и сохраняет жалобу в статусе Pending
func (s *complaintService) SubmitComplaint(ctx context.Context, complaint *models.Complaint) error {
	log := s.logger.WithFields(logrus.Fields{
		"service": "complaint",
		"method":  "SubmitComplaint",
	})

	if err := validateDraft(complaint); err != nil {
		log.WithError(err).Warn("Complaint draft validation failed")
		return err
	}

	if complaint.ComplaintID == "" {
		id, err := s.repo.NextComplaintID(ctx)
		if err != nil {
			log.WithError(err).Error("Failed to assign complaint id")
			return fmt.Errorf("service: could not assign complaint id: %w", err)
		}
		complaint.ComplaintID = id
	} else if !complaintIDPattern.MatchString(complaint.ComplaintID) {
		return apperrors.Invalid("complaint_id", "must match CMP followed by 10 digits")
	}

	complaint.Status = models.NewStatus(models.StatePending)
	if err := s.repo.Create(ctx, complaint); err != nil {
		log.WithError(err).Error("Failed to create complaint in repository")
		return fmt.Errorf("service: could not create complaint: %w", err)
	}

	log.WithField("complaint_id", complaint.ComplaintID).Info("Complaint submitted")
	return nil
}

// TrackComplaint возвращает жалобу заявителю; требуется совпадение и номера, и
// контакта, чтобы чужие жалобы нельзя было перебрать по номеру
func (s *complaintService) TrackComplaint(ctx context.Context, complaintID, email string) (*models.Complaint, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":      "complaint",
		"method":       "TrackComplaint",
		"complaint_id": complaintID,
	})

	complaint, err := s.repo.GetByIDAndComplainant(ctx, complaintID, email)
	if err != nil {
		log.WithError(err).Warn("Failed to track complaint")
		return nil, fmt.Errorf("service: could not track complaint: %w", err)
	}
	// Заявитель всегда видит собственную жалобу целиком
	return complaint, nil
}

// ViewComplaint возвращает жалобу с учетом политики сокрытия: пока статус
// Pending, данные потерпевшего, подозреваемого и свидетеля скрыты от всех,
// кроме самого заявителя
func (s *complaintService) ViewComplaint(ctx context.Context, complaintID string, viewer Viewer) (*models.Complaint, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":      "complaint",
		"method":       "ViewComplaint",
		"complaint_id": complaintID,
	})

	complaint, err := s.getCached(ctx, complaintID)
	if err != nil {
		log.WithError(err).Warn("Failed to get complaint")
		return nil, fmt.Errorf("service: could not get complaint: %w", err)
	}

	applyRedaction(complaint, viewer)
	return complaint, nil
}

// ListForJurisdiction возвращает жалобы по участку с той же политикой сокрытия
func (s *complaintService) ListForJurisdiction(ctx context.Context, district, subdivision string, viewer Viewer) ([]*models.Complaint, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "complaint",
		"method":      "ListForJurisdiction",
		"district":    district,
		"subdivision": subdivision,
	})

	if district == "" {
		return nil, apperrors.MissingField("district")
	}
	if subdivision == "" {
		return nil, apperrors.MissingField("subdivision")
	}

	complaints, err := s.repo.ListByJurisdiction(ctx, district, subdivision)
	if err != nil {
		log.WithError(err).Error("Failed to list complaints from repository")
		return nil, fmt.Errorf("service: could not list complaints: %w", err)
	}

	for _, c := range complaints {
		applyRedaction(c, viewer)
	}
	log.WithField("count", len(complaints)).Info("Complaints listed")
	return complaints, nil
}

// UpdateStatus выполняет переход конечного автомата. Для ребра
// Accepted -> Under Investigation репозиторий инкрементирует счетчик статистики
// в той же транзакции, что и смену статуса.
func (s *complaintService) UpdateStatus(ctx context.Context, complaintID string, target models.Status) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":      "complaint",
		"method":       "UpdateStatus",
		"complaint_id": complaintID,
		"target":       target.String(),
	})

	if target.State == models.StateClosed && target.Reason == "" {
		return apperrors.MissingField("reason")
	}
	if target.State != models.StateClosed && target.Reason != "" {
		return apperrors.Invalid("reason", "only allowed for Closed status")
	}

	complaint, err := s.repo.GetByID(ctx, complaintID)
	if err != nil {
		log.WithError(err).Warn("Failed to load complaint for transition")
		return fmt.Errorf("service: could not load complaint: %w", err)
	}

	if !transitionAllowed(complaint.Status.State, target.State) {
		log.WithField("current", complaint.Status.String()).Warn("Transition rejected")
		return fmt.Errorf("service: %s -> %s: %w", complaint.Status.State, target.State, apperrors.ErrInvalidTransition)
	}

	incrementStats := complaint.Status.State == models.StateAccepted &&
		target.State == models.StateUnderInvestigation

	if err := s.repo.UpdateStatus(ctx, complaintID, complaint.Status.State, target, incrementStats); err != nil {
		log.WithError(err).Error("Failed to update complaint status")
		return fmt.Errorf("service: could not update status: %w", err)
	}

	if err := s.repo.InvalidateComplaintCache(ctx, complaintID); err != nil {
		// Кэш истечет сам по TTL, ошибку не пробрасываем
		log.WithError(err).Warn("Failed to invalidate complaint cache")
	}

	log.Info("Complaint status updated")
	return nil
}

// AppendEvidence дописывает ссылки на вложения; сами файлы живут во внешнем хранилище
func (s *complaintService) AppendEvidence(ctx context.Context, complaintID string, refs []string) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":      "complaint",
		"method":       "AppendEvidence",
		"complaint_id": complaintID,
	})

	if len(refs) == 0 {
		return apperrors.MissingField("evidence_refs")
	}

	if err := s.repo.AppendEvidence(ctx, complaintID, refs); err != nil {
		log.WithError(err).Error("Failed to append evidence refs")
		return fmt.Errorf("service: could not append evidence: %w", err)
	}

	if err := s.repo.InvalidateComplaintCache(ctx, complaintID); err != nil {
		log.WithError(err).Warn("Failed to invalidate complaint cache")
	}
	return nil
}

// GetStatistics возвращает счетчики преступлений по участкам
func (s *complaintService) GetStatistics(ctx context.Context, district, subdivision string) ([]*models.CrimeStatistics, error) {
	stats, err := s.repo.GetStatistics(ctx, district, subdivision)
	if err != nil {
		s.logger.WithError(err).Error("Failed to get crime statistics")
		return nil, fmt.Errorf("service: could not get statistics: %w", err)
	}
	return stats, nil
}

func (s *complaintService) getCached(ctx context.Context, complaintID string) (*models.Complaint, error) {
	cached, err := s.repo.GetComplaintFromCache(ctx, complaintID)
	if err == nil && cached != nil {
		return cached, nil
	}

	complaint, err := s.repo.GetByID(ctx, complaintID)
	if err != nil {
		return nil, err
	}

	if err := s.repo.SetComplaintCache(ctx, complaint); err != nil {
		s.logger.WithError(err).Warn("Failed to cache complaint")
	}
	return complaint, nil
}

// applyRedaction реализует политику видимости: в кэше и бд жалоба хранится
// целиком, сокрытие применяется на чтении для конкретного зрителя
func applyRedaction(c *models.Complaint, viewer Viewer) {
	if c.Status.State != models.StatePending {
		return
	}
	if viewer.Email != "" && strings.EqualFold(viewer.Email, c.ComplainantEmail) {
		return
	}
	c.Redact()
}

func transitionAllowed(from, to models.State) bool {
	for _, next := range allowedTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// validateDraft проверяет обязательные поля заявления
func validateDraft(c *models.Complaint) error {
	required := []struct {
		field string
		value string
	}{
		{"complainant_name", c.ComplainantName},
		{"complainant_phone", c.ComplainantPhone},
		{"incident_type", c.IncidentType},
		{"date", c.IncidentDate},
		{"time", c.IncidentTime},
		{"district", c.District},
		{"subdivision", c.Subdivision},
		{"description", c.Description},
		{"exact_address", c.ExactAddress},
	}
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			return apperrors.MissingField(r.field)
		}
	}
	return nil
}
