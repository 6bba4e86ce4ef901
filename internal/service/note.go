package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/shenikar/crime_report_system/internal/apperrors"
	"github.com/shenikar/crime_report_system/internal/models"
	"github.com/sirupsen/logrus"
)

// NoteRepository определяет контракт хранилища заметок следствия
type NoteRepository interface {
	Create(ctx context.Context, note *models.InvestigationNote) error
	ListByComplaint(ctx context.Context, complaintID string) ([]*models.InvestigationNote, error)
	Update(ctx context.Context, noteID int64, noteText string) (*models.InvestigationNote, error)
	Delete(ctx context.Context, noteID int64) error
}

// NoteService - плоский CRUD заметок, без конечного автомата
type NoteService interface {
	AddNote(ctx context.Context, note *models.InvestigationNote) error
	ListNotes(ctx context.Context, complaintID string) ([]*models.InvestigationNote, error)
	UpdateNote(ctx context.Context, noteID int64, noteText string) (*models.InvestigationNote, error)
	DeleteNote(ctx context.Context, noteID int64) error
}

type noteService struct {
	repo   NoteRepository
	logger *logrus.Logger
}

func NewNoteService(repo NoteRepository, logger *logrus.Logger) NoteService {
	return &noteService{repo: repo, logger: logger}
}

func (s *noteService) AddNote(ctx context.Context, note *models.InvestigationNote) error {
	if note.ComplaintID == "" {
		return apperrors.MissingField("complaint_id")
	}
	if note.OfficerID == 0 {
		return apperrors.MissingField("officer_id")
	}
	if strings.TrimSpace(note.NoteText) == "" {
		return apperrors.MissingField("note_text")
	}

	if err := s.repo.Create(ctx, note); err != nil {
		s.logger.WithError(err).WithField("complaint_id", note.ComplaintID).Error("Failed to add investigation note")
		return fmt.Errorf("service: could not add note: %w", err)
	}
	return nil
}

func (s *noteService) ListNotes(ctx context.Context, complaintID string) ([]*models.InvestigationNote, error) {
	notes, err := s.repo.ListByComplaint(ctx, complaintID)
	if err != nil {
		s.logger.WithError(err).WithField("complaint_id", complaintID).Error("Failed to list investigation notes")
		return nil, fmt.Errorf("service: could not list notes: %w", err)
	}
	return notes, nil
}

func (s *noteService) UpdateNote(ctx context.Context, noteID int64, noteText string) (*models.InvestigationNote, error) {
	if strings.TrimSpace(noteText) == "" {
		return nil, apperrors.MissingField("note_text")
	}
	note, err := s.repo.Update(ctx, noteID, noteText)
	if err != nil {
		s.logger.WithError(err).WithField("note_id", noteID).Warn("Failed to update investigation note")
		return nil, fmt.Errorf("service: could not update note: %w", err)
	}
	return note, nil
}

func (s *noteService) DeleteNote(ctx context.Context, noteID int64) error {
	if err := s.repo.Delete(ctx, noteID); err != nil {
		s.logger.WithError(err).WithField("note_id", noteID).Warn("Failed to delete investigation note")
		return fmt.Errorf("service: could not delete note: %w", err)
	}
	return nil
}
