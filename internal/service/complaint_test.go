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

// newTestComplaintService — вспомогательная функция для создания инстанса сервиса с моками.
func newTestComplaintService(t *testing.T) (svc.ComplaintService, *mocks.MockComplaintRepository) {
	ctrl := gomock.NewController(t)
	repoMock := mocks.NewMockComplaintRepository(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	service := svc.NewComplaintService(repoMock, logger)
	return service, repoMock
}

func validDraft() *models.Complaint {
	return &models.Complaint{
		ComplainantName:  "Анна Петрова",
		ComplainantPhone: "+79001234567",
		ComplainantEmail: "anna@example.com",
		IncidentType:     "Theft",
		IncidentDate:     "2025-11-02",
		IncidentTime:     "21:30",
		District:         "Central",
		Subdivision:      "North",
		ExactAddress:     "ул. Ленина, 10",
		Description:      "Украден велосипед у подъезда",
	}
}

func TestSubmitComplaint_Success(t *testing.T) {
	// Подготовка
	service, repoMock := newTestComplaintService(t)
	ctx := context.Background()
	draft := validDraft()

	// Ожидания
	repoMock.EXPECT().
		NextComplaintID(ctx).
		Return("CMP0000000042", nil).
		Times(1)

	repoMock.EXPECT().
		Create(ctx, gomock.Any()).
		Do(func(ctx context.Context, c *models.Complaint) {
			// Сервис сам проставляет идентификатор и статус Pending
			assert.Equal(t, "CMP0000000042", c.ComplaintID)
			assert.Equal(t, models.StatePending, c.Status.State)
		}).Return(nil).Times(1)

	// Действие
	err := service.SubmitComplaint(ctx, draft)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, "CMP0000000042", draft.ComplaintID)
}

func TestSubmitComplaint_MissingField(t *testing.T) {
	// Подготовка
	service, repoMock := newTestComplaintService(t)
	ctx := context.Background()
	draft := validDraft()
	draft.District = "  " // Пробельное значение считается пустым

	// Ожидания: до репозитория дело не доходит
	repoMock.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)

	// Действие
	err := service.SubmitComplaint(ctx, draft)

	// Проверки
	require.Error(t, err)
	var vErr *apperrors.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "district", vErr.Field)
}

func TestSubmitComplaint_BadProvidedID(t *testing.T) {
	// Подготовка
	service, repoMock := newTestComplaintService(t)
	ctx := context.Background()
	draft := validDraft()
	draft.ComplaintID = "CMP42" // Не хватает нулей

	// Ожидания
	repoMock.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)

	// Действие
	err := service.SubmitComplaint(ctx, draft)

	// Проверки
	require.Error(t, err)
	var vErr *apperrors.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "complaint_id", vErr.Field)
}

func TestTrackComplaint_Success(t *testing.T) {
	// Подготовка
	service, repoMock := newTestComplaintService(t)
	ctx := context.Background()
	expected := validDraft()
	expected.ComplaintID = "CMP0000000007"
	expected.Status = models.NewStatus(models.StatePending)
	expected.Victim = &models.VictimDetails{Name: "Иван"}

	// Ожидания
	repoMock.EXPECT().
		GetByIDAndComplainant(ctx, "CMP0000000007", "anna@example.com").
		Return(expected, nil).
		Times(1)

	// Действие
	complaint, err := service.TrackComplaint(ctx, "CMP0000000007", "anna@example.com")

	// Проверки: заявитель видит собственную жалобу без сокрытия
	require.NoError(t, err)
	assert.False(t, complaint.Redacted)
	assert.NotNil(t, complaint.Victim)
}

func TestViewComplaint_RedactsPendingForStranger(t *testing.T) {
	// Подготовка
	service, repoMock := newTestComplaintService(t)
	ctx := context.Background()
	stored := validDraft()
	stored.ComplaintID = "CMP0000000008"
	stored.Status = models.NewStatus(models.StatePending)
	stored.Victim = &models.VictimDetails{Name: "Иван"}
	stored.Suspect = &models.SuspectDetails{Name: "Неизвестный"}

	// Ожидания: попадание в кеш
	repoMock.EXPECT().
		GetComplaintFromCache(ctx, "CMP0000000008").
		Return(stored, nil).
		Times(1)

	// Действие: смотрит офицер, не заявитель
	complaint, err := service.ViewComplaint(ctx, "CMP0000000008", svc.Viewer{Role: svc.RoleOfficer, Email: "officer@police.gov"})

	// Проверки
	require.NoError(t, err)
	assert.True(t, complaint.Redacted)
	assert.Nil(t, complaint.Victim)
	assert.Nil(t, complaint.Suspect)
}

func TestViewComplaint_NoRedactionForSubmitter(t *testing.T) {
	// Подготовка
	service, repoMock := newTestComplaintService(t)
	ctx := context.Background()
	stored := validDraft()
	stored.ComplaintID = "CMP0000000009"
	stored.Status = models.NewStatus(models.StatePending)
	stored.Victim = &models.VictimDetails{Name: "Иван"}

	// Ожидания
	repoMock.EXPECT().
		GetComplaintFromCache(ctx, "CMP0000000009").
		Return(stored, nil).
		Times(1)

	// Действие: регистр email не должен влиять на сравнение
	complaint, err := service.ViewComplaint(ctx, "CMP0000000009", svc.Viewer{Role: svc.RoleCitizen, Email: "ANNA@example.com"})

	// Проверки
	require.NoError(t, err)
	assert.False(t, complaint.Redacted)
	assert.NotNil(t, complaint.Victim)
}

func TestViewComplaint_NoRedactionAfterAccept(t *testing.T) {
	// Подготовка
	service, repoMock := newTestComplaintService(t)
	ctx := context.Background()
	stored := validDraft()
	stored.ComplaintID = "CMP0000000010"
	stored.Status = models.NewStatus(models.StateAccepted)
	stored.Witness = &models.WitnessDetails{Name: "Сосед"}

	// Ожидания: промах кеша, чтение из БД, запись в кеш
	repoMock.EXPECT().
		GetComplaintFromCache(ctx, "CMP0000000010").
		Return(nil, nil).
		Times(1)
	repoMock.EXPECT().
		GetByID(ctx, "CMP0000000010").
		Return(stored, nil).
		Times(1)
	repoMock.EXPECT().
		SetComplaintCache(ctx, stored).
		Return(nil).
		Times(1)

	// Действие
	complaint, err := service.ViewComplaint(ctx, "CMP0000000010", svc.Viewer{Role: svc.RoleOfficer, Email: "officer@police.gov"})

	// Проверки: после принятия жалоба видна целиком
	require.NoError(t, err)
	assert.False(t, complaint.Redacted)
	assert.NotNil(t, complaint.Witness)
}

func TestListForJurisdiction_MissingDistrict(t *testing.T) {
	// Подготовка
	service, repoMock := newTestComplaintService(t)
	ctx := context.Background()

	// Ожидания
	repoMock.EXPECT().ListByJurisdiction(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	// Действие
	complaints, err := service.ListForJurisdiction(ctx, "", "North", svc.Viewer{})

	// Проверки
	require.Error(t, err)
	assert.Nil(t, complaints)
	var vErr *apperrors.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "district", vErr.Field)
}

func TestUpdateStatus_AcceptPending(t *testing.T) {
	// Подготовка
	service, repoMock := newTestComplaintService(t)
	ctx := context.Background()
	stored := validDraft()
	stored.ComplaintID = "CMP0000000011"
	stored.Status = models.NewStatus(models.StatePending)

	// Ожидания: переход Pending -> Accepted не трогает статистику
	repoMock.EXPECT().GetByID(ctx, "CMP0000000011").Return(stored, nil).Times(1)
	repoMock.EXPECT().
		UpdateStatus(ctx, "CMP0000000011", models.StatePending, models.NewStatus(models.StateAccepted), false).
		Return(nil).
		Times(1)
	repoMock.EXPECT().InvalidateComplaintCache(ctx, "CMP0000000011").Return(nil).Times(1)

	// Действие
	err := service.UpdateStatus(ctx, "CMP0000000011", models.NewStatus(models.StateAccepted))

	// Проверки
	require.NoError(t, err)
}

func TestUpdateStatus_InvestigationIncrementsStats(t *testing.T) {
	// Подготовка
	service, repoMock := newTestComplaintService(t)
	ctx := context.Background()
	stored := validDraft()
	stored.ComplaintID = "CMP0000000012"
	stored.Status = models.NewStatus(models.StateAccepted)

	// Ожидания: ребро Accepted -> Under Investigation инкрементирует счетчик
	repoMock.EXPECT().GetByID(ctx, "CMP0000000012").Return(stored, nil).Times(1)
	repoMock.EXPECT().
		UpdateStatus(ctx, "CMP0000000012", models.StateAccepted, models.NewStatus(models.StateUnderInvestigation), true).
		Return(nil).
		Times(1)
	repoMock.EXPECT().InvalidateComplaintCache(ctx, "CMP0000000012").Return(nil).Times(1)

	// Действие
	err := service.UpdateStatus(ctx, "CMP0000000012", models.NewStatus(models.StateUnderInvestigation))

	// Проверки
	require.NoError(t, err)
}

func TestUpdateStatus_SkipTransitionRejected(t *testing.T) {
	// Подготовка
	service, repoMock := newTestComplaintService(t)
	ctx := context.Background()
	stored := validDraft()
	stored.ComplaintID = "CMP0000000013"
	stored.Status = models.NewStatus(models.StatePending)

	// Ожидания: перескочить через Accepted нельзя
	repoMock.EXPECT().GetByID(ctx, "CMP0000000013").Return(stored, nil).Times(1)
	repoMock.EXPECT().UpdateStatus(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	// Действие
	err := service.UpdateStatus(ctx, "CMP0000000013", models.NewStatus(models.StateUnderInvestigation))

	// Проверки
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrInvalidTransition)
}

func TestUpdateStatus_TerminalState(t *testing.T) {
	// Подготовка
	service, repoMock := newTestComplaintService(t)
	ctx := context.Background()
	stored := validDraft()
	stored.ComplaintID = "CMP0000000014"
	stored.Status = models.Closed(models.ReasonSolved)

	// Ожидания
	repoMock.EXPECT().GetByID(ctx, "CMP0000000014").Return(stored, nil).Times(1)

	// Действие: из Closed переходов нет
	err := service.UpdateStatus(ctx, "CMP0000000014", models.NewStatus(models.StateAccepted))

	// Проверки
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrInvalidTransition)
}

func TestUpdateStatus_ClosedRequiresReason(t *testing.T) {
	// Подготовка
	service, repoMock := newTestComplaintService(t)
	ctx := context.Background()

	// Ожидания: до чтения жалобы не доходит
	repoMock.EXPECT().GetByID(gomock.Any(), gomock.Any()).Times(0)

	// Действие
	err := service.UpdateStatus(ctx, "CMP0000000015", models.NewStatus(models.StateClosed))

	// Проверки
	require.Error(t, err)
	var vErr *apperrors.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "reason", vErr.Field)
}

func TestUpdateStatus_ReasonOnlyForClosed(t *testing.T) {
	// Подготовка
	service, repoMock := newTestComplaintService(t)
	ctx := context.Background()

	// Ожидания
	repoMock.EXPECT().GetByID(gomock.Any(), gomock.Any()).Times(0)

	// Действие: причина закрытия при нетерминальном статусе запрещена
	target := models.Status{State: models.StateAccepted, Reason: models.ReasonSolved}
	err := service.UpdateStatus(ctx, "CMP0000000016", target)

	// Проверки
	require.Error(t, err)
	var vErr *apperrors.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "reason", vErr.Field)
}

func TestAppendEvidence_Success(t *testing.T) {
	// Подготовка
	service, repoMock := newTestComplaintService(t)
	ctx := context.Background()
	refs := []string{"s3://evidence/1.jpg", "s3://evidence/2.mp4"}

	// Ожидания
	repoMock.EXPECT().AppendEvidence(ctx, "CMP0000000017", refs).Return(nil).Times(1)
	repoMock.EXPECT().InvalidateComplaintCache(ctx, "CMP0000000017").Return(nil).Times(1)

	// Действие
	err := service.AppendEvidence(ctx, "CMP0000000017", refs)

	// Проверки
	require.NoError(t, err)
}

func TestAppendEvidence_Empty(t *testing.T) {
	// Подготовка
	service, repoMock := newTestComplaintService(t)
	ctx := context.Background()

	// Ожидания
	repoMock.EXPECT().AppendEvidence(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	// Действие
	err := service.AppendEvidence(ctx, "CMP0000000018", nil)

	// Проверки
	require.Error(t, err)
	var vErr *apperrors.ValidationError
	require.ErrorAs(t, err, &vErr)
}

func TestGetStatistics_Success(t *testing.T) {
	// Подготовка
	service, repoMock := newTestComplaintService(t)
	ctx := context.Background()
	expected := []*models.CrimeStatistics{
		{District: "Central", Subdivision: "North", Counts: map[string]int{"theft": 3}, Total: 3},
	}

	// Ожидания
	repoMock.EXPECT().GetStatistics(ctx, "Central", "").Return(expected, nil).Times(1)

	// Действие
	stats, err := service.GetStatistics(ctx, "Central", "")

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, expected, stats)
}

func TestGenerateComplaintID_RepoError(t *testing.T) {
	// Подготовка
	service, repoMock := newTestComplaintService(t)
	ctx := context.Background()

	// Ожидания
	repoMock.EXPECT().NextComplaintID(ctx).Return("", fmt.Errorf("последовательность недоступна")).Times(1)

	// Действие
	id, err := service.GenerateComplaintID(ctx)

	// Проверки
	require.Error(t, err)
	assert.Empty(t, id)
	assert.ErrorContains(t, err, "could not generate complaint id")
}
