package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/shenikar/crime_report_system/internal/apperrors"
	"github.com/shenikar/crime_report_system/internal/models"
	"github.com/sirupsen/logrus"
)

// FinalReportRepository определяет контракт хранилища итоговых отчетов
type FinalReportRepository interface {
	// CreateAndClose сохраняет отчет и переводит жалобу в Closed(reason) одной
	// транзакцией: отчет не может существовать без закрытия и наоборот
	CreateAndClose(ctx context.Context, report *models.FinalReport) error
	GetLatestByComplaint(ctx context.Context, complaintID string) (*models.FinalReport, error)
	ListByComplainant(ctx context.Context, email string) ([]*models.FinalReport, error)
}

// FinalReportService определяет контракт завершения расследования
type FinalReportService interface {
	SubmitFinalReport(ctx context.Context, report *models.FinalReport) error
	GetLatestReport(ctx context.Context, complaintID string) (*models.FinalReport, error)
	ListReportsForComplainant(ctx context.Context, email string) ([]*models.FinalReport, error)
}

type finalReportService struct {
	reports    FinalReportRepository
	complaints ComplaintRepository
	logger     *logrus.Logger
}

func NewFinalReportService(reports FinalReportRepository, complaints ComplaintRepository, logger *logrus.Logger) FinalReportService {
	return &finalReportService{
		reports:    reports,
		complaints: complaints,
		logger:     logger,
	}
}

// SubmitFinalReport сохраняет итоговый отчет и закрывает жалобу. Повторный
// отчет по уже закрытой жалобе отклоняется: закрывающий UPDATE внутри
// транзакции репозитория требует статус Under Investigation.
func (s *finalReportService) SubmitFinalReport(ctx context.Context, report *models.FinalReport) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":      "final_report",
		"method":       "SubmitFinalReport",
		"complaint_id": report.ComplaintID,
		"officer_id":   report.OfficerID,
	})

	if report.ComplaintID == "" {
		return apperrors.MissingField("complaint_id")
	}
	if report.OfficerID == 0 {
		return apperrors.MissingField("officer_id")
	}
	if strings.TrimSpace(report.ReportText) == "" {
		return apperrors.MissingField("report_text")
	}
	if report.FinalStatus == "" {
		return apperrors.MissingField("final_status")
	}
	if _, err := models.ParseCloseReason(string(report.FinalStatus)); err != nil {
		return apperrors.Invalid("final_status", err.Error())
	}

	complaint, err := s.complaints.GetByID(ctx, report.ComplaintID)
	if err != nil {
		log.WithError(err).Warn("Failed to load complaint for final report")
		return fmt.Errorf("service: could not load complaint: %w", err)
	}
	if complaint.Status.State != models.StateUnderInvestigation {
		log.WithField("current", complaint.Status.String()).Warn("Final report rejected: complaint is not under investigation")
		return apperrors.Invalid("complaint_id", "complaint is not under investigation")
	}

	if err := s.reports.CreateAndClose(ctx, report); err != nil {
		log.WithError(err).Error("Failed to persist final report")
		return fmt.Errorf("service: could not submit final report: %w", err)
	}

	if err := s.complaints.InvalidateComplaintCache(ctx, report.ComplaintID); err != nil {
		log.WithError(err).Warn("Failed to invalidate complaint cache")
	}

	log.WithField("report_id", report.ReportID).Info("Final report submitted, complaint closed")
	return nil
}

// GetLatestReport возвращает последний отчет по жалобе
func (s *finalReportService) GetLatestReport(ctx context.Context, complaintID string) (*models.FinalReport, error) {
	report, err := s.reports.GetLatestByComplaint(ctx, complaintID)
	if err != nil {
		s.logger.WithError(err).WithField("complaint_id", complaintID).Warn("Failed to get final report")
		return nil, fmt.Errorf("service: could not get final report: %w", err)
	}
	return report, nil
}

// ListReportsForComplainant возвращает отчеты по жалобам заявителя
func (s *finalReportService) ListReportsForComplainant(ctx context.Context, email string) ([]*models.FinalReport, error) {
	if email == "" {
		return nil, apperrors.MissingField("email")
	}
	reports, err := s.reports.ListByComplainant(ctx, email)
	if err != nil {
		s.logger.WithError(err).Error("Failed to list final reports")
		return nil, fmt.Errorf("service: could not list final reports: %w", err)
	}
	return reports, nil
}
