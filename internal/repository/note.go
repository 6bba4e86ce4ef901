package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shenikar/crime_report_system/internal/apperrors"
	"github.com/shenikar/crime_report_system/internal/models"
	"github.com/shenikar/crime_report_system/internal/service"
)

type NoteRepository struct {
	db *pgxpool.Pool
}

func NewNoteRepository(db *pgxpool.Pool) service.NoteRepository {
	return &NoteRepository{db: db}
}

// Create сохраняет новую заметку следствия
func (r *NoteRepository) Create(ctx context.Context, note *models.InvestigationNote) error {
	err := r.db.QueryRow(ctx, `
		INSERT INTO investigation_notes (complaint_id, officer_id, note_text)
		VALUES ($1, $2, $3)
		RETURNING note_id, created_at, updated_at;`,
		note.ComplaintID, note.OfficerID, note.NoteText,
	).Scan(&note.NoteID, &note.CreatedAt, &note.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create investigation note: %w", err)
	}
	return nil
}

// ListByComplaint возвращает заметки по жалобе, новые раньше старых
func (r *NoteRepository) ListByComplaint(ctx context.Context, complaintID string) ([]*models.InvestigationNote, error) {
	query := `
		SELECT n.note_id, n.complaint_id, n.officer_id, COALESCE(p.name, ''),
		       n.note_text, n.created_at, n.updated_at
		FROM investigation_notes n
		LEFT JOIN police_officers p ON p.id = n.officer_id
		WHERE n.complaint_id = $1
		ORDER BY n.created_at DESC;`
	rows, err := r.db.Query(ctx, query, complaintID)
	if err != nil {
		return nil, fmt.Errorf("failed to list investigation notes: %w", err)
	}
	defer rows.Close()

	notes := make([]*models.InvestigationNote, 0)
	for rows.Next() {
		note := &models.InvestigationNote{}
		if err := rows.Scan(
			&note.NoteID, &note.ComplaintID, &note.OfficerID, &note.OfficerName,
			&note.NoteText, &note.CreatedAt, &note.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan note row: %w", err)
		}
		notes = append(notes, note)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error note iteration: %w", err)
	}
	return notes, nil
}

// Update меняет текст заметки
func (r *NoteRepository) Update(ctx context.Context, noteID int64, noteText string) (*models.InvestigationNote, error) {
	note := &models.InvestigationNote{}
	err := r.db.QueryRow(ctx, `
		UPDATE investigation_notes
		SET note_text = $1, updated_at = NOW()
		WHERE note_id = $2
		RETURNING note_id, complaint_id, officer_id, note_text, created_at, updated_at;`,
		noteText, noteID,
	).Scan(&note.NoteID, &note.ComplaintID, &note.OfficerID, &note.NoteText, &note.CreatedAt, &note.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("note %d: %w", noteID, apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to update investigation note: %w", err)
	}
	return note, nil
}

// Delete удаляет заметку
func (r *NoteRepository) Delete(ctx context.Context, noteID int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM investigation_notes WHERE note_id = $1;`, noteID)
	if err != nil {
		return fmt.Errorf("failed to delete investigation note: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("note %d: %w", noteID, apperrors.ErrNotFound)
	}
	return nil
}
