package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shenikar/crime_report_system/internal/apperrors"
	"github.com/shenikar/crime_report_system/internal/models"
	"github.com/shenikar/crime_report_system/internal/service"
)

type FinalReportRepository struct {
	db *pgxpool.Pool
}

func NewFinalReportRepository(db *pgxpool.Pool) service.FinalReportRepository {
	return &FinalReportRepository{db: db}
}

// CreateAndClose сохраняет отчет и закрывает жалобу одной транзакцией.
// Закрывающий UPDATE требует статус Under Investigation: если жалоба уже
// закрыта или отклонена, вставка отчета откатывается вместе с ним - отчет не
// может существовать без закрытия, а закрытие без извлекаемого отчета.
func (r *FinalReportRepository) CreateAndClose(ctx context.Context, report *models.FinalReport) error {
	evidence, err := json.Marshal(emptyIfNil(report.EvidenceFiles))
	if err != nil {
		return fmt.Errorf("failed to marshal report evidence refs: %w", err)
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin report transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	err = tx.QueryRow(ctx, `
		INSERT INTO final_reports (complaint_id, officer_id, report_text, final_status, remarks, evidence_files)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING report_id, created_at;`,
		report.ComplaintID, report.OfficerID, report.ReportText,
		string(report.FinalStatus), report.Remarks, evidence,
	).Scan(&report.ReportID, &report.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert final report: %w", err)
	}

	cmdTag, err := tx.Exec(ctx, `
		UPDATE complaints
		SET status = $1, close_reason = $2
		WHERE complaint_id = $3 AND status = $4;`,
		string(models.StateClosed), string(report.FinalStatus),
		report.ComplaintID, string(models.StateUnderInvestigation),
	)
	if err != nil {
		return fmt.Errorf("failed to close complaint: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("complaint %s is not under investigation: %w", report.ComplaintID, apperrors.ErrConflict)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit report transaction: %w", err)
	}
	return nil
}

// GetLatestByComplaint возвращает последний отчет по жалобе
func (r *FinalReportRepository) GetLatestByComplaint(ctx context.Context, complaintID string) (*models.FinalReport, error) {
	query := `
		SELECT fr.report_id, fr.complaint_id, fr.officer_id, COALESCE(p.name, ''),
		       fr.final_status, fr.report_text, fr.remarks, fr.evidence_files, fr.created_at
		FROM final_reports fr
		LEFT JOIN police_officers p ON p.id = fr.officer_id
		WHERE fr.complaint_id = $1
		ORDER BY fr.created_at DESC
		LIMIT 1;`
	report, err := scanFinalReport(r.db.QueryRow(ctx, query, complaintID), false)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("final report for %s: %w", complaintID, apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get final report: %w", err)
	}
	return report, nil
}

// ListByComplainant возвращает отчеты по всем жалобам заявителя, новые раньше старых
func (r *FinalReportRepository) ListByComplainant(ctx context.Context, email string) ([]*models.FinalReport, error) {
	query := `
		SELECT fr.report_id, fr.complaint_id, fr.officer_id, COALESCE(p.name, ''),
		       fr.final_status, fr.report_text, fr.remarks, fr.evidence_files, fr.created_at,
		       c.title
		FROM final_reports fr
		INNER JOIN complaints c ON c.complaint_id = fr.complaint_id
		LEFT JOIN police_officers p ON p.id = fr.officer_id
		WHERE lower(c.complainant_email) = lower($1)
		ORDER BY fr.created_at DESC;`
	rows, err := r.db.Query(ctx, query, email)
	if err != nil {
		return nil, fmt.Errorf("failed to list final reports: %w", err)
	}
	defer rows.Close()

	reports := make([]*models.FinalReport, 0)
	for rows.Next() {
		report, err := scanFinalReport(rows, true)
		if err != nil {
			return nil, fmt.Errorf("failed to scan final report row: %w", err)
		}
		reports = append(reports, report)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error final report iteration: %w", err)
	}
	return reports, nil
}

func scanFinalReport(row pgx.Row, withTitle bool) (*models.FinalReport, error) {
	report := &models.FinalReport{}
	var (
		finalStatus string
		evidence    []byte
	)
	dest := []any{
		&report.ReportID, &report.ComplaintID, &report.OfficerID, &report.OfficerName,
		&finalStatus, &report.ReportText, &report.Remarks, &evidence, &report.CreatedAt,
	}
	if withTitle {
		dest = append(dest, &report.ComplaintTitle)
	}
	if err := row.Scan(dest...); err != nil {
		return nil, err
	}
	report.FinalStatus = models.CloseReason(finalStatus)
	if len(evidence) > 0 {
		if err := json.Unmarshal(evidence, &report.EvidenceFiles); err != nil {
			return nil, fmt.Errorf("failed to unmarshal report evidence refs: %w", err)
		}
	}
	return report, nil
}
