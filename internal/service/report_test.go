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

// newTestFinalReportService — вспомогательная функция для создания инстанса сервиса с моками.
func newTestFinalReportService(t *testing.T) (svc.FinalReportService, *mocks.MockFinalReportRepository, *mocks.MockComplaintRepository) {
	ctrl := gomock.NewController(t)
	reportsMock := mocks.NewMockFinalReportRepository(ctrl)
	complaintsMock := mocks.NewMockComplaintRepository(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	service := svc.NewFinalReportService(reportsMock, complaintsMock, logger)
	return service, reportsMock, complaintsMock
}

func validReport() *models.FinalReport {
	return &models.FinalReport{
		ComplaintID: "CMP0000000021",
		OfficerID:   7,
		FinalStatus: models.ReasonSolved,
		ReportText:  "Подозреваемый задержан, похищенное возвращено",
	}
}

func TestSubmitFinalReport_Success(t *testing.T) {
	// Подготовка
	service, reportsMock, complaintsMock := newTestFinalReportService(t)
	ctx := context.Background()
	report := validReport()
	underInvestigation := &models.Complaint{
		ComplaintID: report.ComplaintID,
		Status:      models.NewStatus(models.StateUnderInvestigation),
	}

	// Ожидания
	complaintsMock.EXPECT().GetByID(ctx, report.ComplaintID).Return(underInvestigation, nil).Times(1)
	reportsMock.EXPECT().
		CreateAndClose(ctx, report).
		DoAndReturn(func(ctx context.Context, r *models.FinalReport) error {
			// Симулируем, что БД присвоила идентификатор отчета
			r.ReportID = 101
			return nil
		}).Times(1)
	complaintsMock.EXPECT().InvalidateComplaintCache(ctx, report.ComplaintID).Return(nil).Times(1)

	// Действие
	err := service.SubmitFinalReport(ctx, report)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, int64(101), report.ReportID)
}

func TestSubmitFinalReport_NotUnderInvestigation(t *testing.T) {
	// Подготовка
	service, reportsMock, complaintsMock := newTestFinalReportService(t)
	ctx := context.Background()
	report := validReport()
	accepted := &models.Complaint{
		ComplaintID: report.ComplaintID,
		Status:      models.NewStatus(models.StateAccepted),
	}

	// Ожидания: отчет по жалобе вне расследования не сохраняется
	complaintsMock.EXPECT().GetByID(ctx, report.ComplaintID).Return(accepted, nil).Times(1)
	reportsMock.EXPECT().CreateAndClose(gomock.Any(), gomock.Any()).Times(0)

	// Действие
	err := service.SubmitFinalReport(ctx, report)

	// Проверки
	require.Error(t, err)
	var vErr *apperrors.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "complaint_id", vErr.Field)
}

func TestSubmitFinalReport_AlreadyClosed(t *testing.T) {
	// Подготовка
	service, reportsMock, complaintsMock := newTestFinalReportService(t)
	ctx := context.Background()
	report := validReport()
	closed := &models.Complaint{
		ComplaintID: report.ComplaintID,
		Status:      models.Closed(models.ReasonSolved),
	}

	// Ожидания: повторный отчет по закрытой жалобе отклоняется
	complaintsMock.EXPECT().GetByID(ctx, report.ComplaintID).Return(closed, nil).Times(1)
	reportsMock.EXPECT().CreateAndClose(gomock.Any(), gomock.Any()).Times(0)

	// Действие
	err := service.SubmitFinalReport(ctx, report)

	// Проверки
	require.Error(t, err)
	var vErr *apperrors.ValidationError
	require.ErrorAs(t, err, &vErr)
}

func TestSubmitFinalReport_MissingNarrative(t *testing.T) {
	// Подготовка
	service, reportsMock, complaintsMock := newTestFinalReportService(t)
	ctx := context.Background()
	report := validReport()
	report.ReportText = "   "

	// Ожидания: до чтения жалобы не доходит
	complaintsMock.EXPECT().GetByID(gomock.Any(), gomock.Any()).Times(0)
	reportsMock.EXPECT().CreateAndClose(gomock.Any(), gomock.Any()).Times(0)

	// Действие
	err := service.SubmitFinalReport(ctx, report)

	// Проверки
	require.Error(t, err)
	var vErr *apperrors.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "report_text", vErr.Field)
}

func TestSubmitFinalReport_UnknownFinalStatus(t *testing.T) {
	// Подготовка
	service, _, complaintsMock := newTestFinalReportService(t)
	ctx := context.Background()
	report := validReport()
	report.FinalStatus = "Resolved" // Нет в перечне причин закрытия

	// Ожидания
	complaintsMock.EXPECT().GetByID(gomock.Any(), gomock.Any()).Times(0)

	// Действие
	err := service.SubmitFinalReport(ctx, report)

	// Проверки
	require.Error(t, err)
	var vErr *apperrors.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "final_status", vErr.Field)
}

func TestGetLatestReport_Success(t *testing.T) {
	// Подготовка
	service, reportsMock, _ := newTestFinalReportService(t)
	ctx := context.Background()
	expected := validReport()
	expected.ReportID = 55

	// Ожидания
	reportsMock.EXPECT().GetLatestByComplaint(ctx, "CMP0000000021").Return(expected, nil).Times(1)

	// Действие
	report, err := service.GetLatestReport(ctx, "CMP0000000021")

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, expected, report)
}

func TestGetLatestReport_NotFound(t *testing.T) {
	// Подготовка
	service, reportsMock, _ := newTestFinalReportService(t)
	ctx := context.Background()

	// Ожидания
	reportsMock.EXPECT().
		GetLatestByComplaint(ctx, "CMP0000000099").
		Return(nil, fmt.Errorf("repository: %w", apperrors.ErrNotFound)).
		Times(1)

	// Действие
	report, err := service.GetLatestReport(ctx, "CMP0000000099")

	// Проверки
	require.Error(t, err)
	assert.Nil(t, report)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestListReportsForComplainant_MissingEmail(t *testing.T) {
	// Подготовка
	service, reportsMock, _ := newTestFinalReportService(t)
	ctx := context.Background()

	// Ожидания
	reportsMock.EXPECT().ListByComplainant(gomock.Any(), gomock.Any()).Times(0)

	// Действие
	reports, err := service.ListReportsForComplainant(ctx, "")

	// Проверки
	require.Error(t, err)
	assert.Nil(t, reports)
}

func TestListReportsForComplainant_Success(t *testing.T) {
	// Подготовка
	service, reportsMock, _ := newTestFinalReportService(t)
	ctx := context.Background()
	expected := []*models.FinalReport{validReport()}

	// Ожидания
	reportsMock.EXPECT().ListByComplainant(ctx, "anna@example.com").Return(expected, nil).Times(1)

	// Действие
	reports, err := service.ListReportsForComplainant(ctx, "anna@example.com")

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, expected, reports)
}
