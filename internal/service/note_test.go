package service_test

import (
	"bytes"
	"context"
	"fmt"
	"testing"

	"github.com/shenikar/crime_report_system/internal/apperrors"
	"github.com/shenikar/crime_report_system/internal/models"
	svc "github.com/shenikar/crime_report_system/internal/service"
	"github.com/shenikar/crime_report_system/internal/service/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestNoteService(t *testing.T) (svc.NoteService, *mocks.MockNoteRepository) {
	ctrl := gomock.NewController(t)
	repoMock := mocks.NewMockNoteRepository(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})

	service := svc.NewNoteService(repoMock, logger)
	return service, repoMock
}

func TestAddNote_Success(t *testing.T) {
	// Подготовка
	service, repoMock := newTestNoteService(t)
	ctx := context.Background()
	note := &models.InvestigationNote{
		ComplaintID: "CMP0000000031",
		OfficerID:   5,
		NoteText:    "Опрошены соседи, камера во дворе неисправна",
	}

	// Ожидания
	repoMock.EXPECT().Create(ctx, note).Return(nil).Times(1)

	// Действие
	err := service.AddNote(ctx, note)

	// Проверки
	require.NoError(t, err)
}

func TestAddNote_BlankText(t *testing.T) {
	// Подготовка
	service, repoMock := newTestNoteService(t)
	ctx := context.Background()
	note := &models.InvestigationNote{
		ComplaintID: "CMP0000000031",
		OfficerID:   5,
		NoteText:    "   ",
	}

	// Ожидания
	repoMock.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)

	// Действие
	err := service.AddNote(ctx, note)

	// Проверки
	require.Error(t, err)
	var vErr *apperrors.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "note_text", vErr.Field)
}

func TestListNotes_Success(t *testing.T) {
	// Подготовка
	service, repoMock := newTestNoteService(t)
	ctx := context.Background()
	expected := []*models.InvestigationNote{
		{NoteID: 1, ComplaintID: "CMP0000000031", NoteText: "Первая заметка"},
		{NoteID: 2, ComplaintID: "CMP0000000031", NoteText: "Вторая заметка"},
	}

	// Ожидания
	repoMock.EXPECT().ListByComplaint(ctx, "CMP0000000031").Return(expected, nil).Times(1)

	// Действие
	notes, err := service.ListNotes(ctx, "CMP0000000031")

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, expected, notes)
}

func TestUpdateNote_NotFound(t *testing.T) {
	// Подготовка
	service, repoMock := newTestNoteService(t)
	ctx := context.Background()

	// Ожидания
	repoMock.EXPECT().
		Update(ctx, int64(99), "новый текст").
		Return(nil, fmt.Errorf("repository: %w", apperrors.ErrNotFound)).
		Times(1)

	// Действие
	note, err := service.UpdateNote(ctx, 99, "новый текст")

	// Проверки
	require.Error(t, err)
	assert.Nil(t, note)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestDeleteNote_Success(t *testing.T) {
	// Подготовка
	service, repoMock := newTestNoteService(t)
	ctx := context.Background()

	// Ожидания
	repoMock.EXPECT().Delete(ctx, int64(7)).Return(nil).Times(1)

	// Действие
	err := service.DeleteNote(ctx, 7)

	// Проверки
	require.NoError(t, err)
}
