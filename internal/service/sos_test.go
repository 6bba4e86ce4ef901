package service_test

import (
	"bytes"
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/shenikar/crime_report_system/internal/apperrors"
	"github.com/shenikar/crime_report_system/internal/models"
	svc "github.com/shenikar/crime_report_system/internal/service"
	"github.com/shenikar/crime_report_system/internal/service/mocks"
	"github.com/shenikar/crime_report_system/internal/webhook"
	webhook_mocks "github.com/shenikar/crime_report_system/internal/webhook/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// newTestSOSService — вспомогательная функция для создания инстанса сервиса с моками.
func newTestSOSService(t *testing.T) (svc.SOSService, *mocks.MockSOSRepository, *mocks.MockStationRepository, *webhook_mocks.MockDispatchPublisher) {
	ctrl := gomock.NewController(t)
	repoMock := mocks.NewMockSOSRepository(ctrl)
	stationsMock := mocks.NewMockStationRepository(ctrl)
	publisherMock := webhook_mocks.NewMockDispatchPublisher(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	service := svc.NewSOSService(repoMock, stationsMock, publisherMock, logger)
	return service, repoMock, stationsMock, publisherMock
}

func TestTriggerSOS_RoutesToNearestStation(t *testing.T) {
	// Подготовка
	service, repoMock, stationsMock, publisherMock := newTestSOSService(t)
	ctx := context.Background()
	lat, lon := 55.75, 37.61
	station := &models.PoliceStation{
		ID:          3,
		Name:        "Central Station",
		District:    "Central",
		Subdivision: "North",
	}

	// Ожидания
	// 1. Поиск ближайшего участка
	stationsMock.EXPECT().
		Nearest(ctx, lat, lon).
		Return(station, nil).
		Times(1)

	// 2. Сохранение сигнала с первой точкой трека
	repoMock.EXPECT().
		CreateAlert(ctx, gomock.Any()).
		DoAndReturn(func(ctx context.Context, alert *models.SOSAlert) error {
			assert.Equal(t, "North", alert.PoliceSubdivision)
			assert.Equal(t, models.SOSActive, alert.Status)
			require.Len(t, alert.Locations, 1)
			assert.Equal(t, lat, alert.Locations[0].Latitude)
			assert.Equal(t, lon, alert.Locations[0].Longitude)
			// Симулируем, что БД присвоила идентификатор
			alert.ID = uuid.New()
			return nil
		}).Times(1)

	// 3. Публикация события для дежурной части
	publisherMock.EXPECT().
		Publish(ctx, gomock.Any()).
		Do(func(ctx context.Context, event webhook.DispatchEvent) {
			assert.Equal(t, webhook.EventSOSCreated, event.Type)
			assert.Equal(t, "citizen@example.com", event.CitizenEmail)
			assert.Equal(t, "North", event.Subdivision)
		}).Return(nil).Times(1)

	// Действие
	alert, err := service.TriggerSOS(ctx, "citizen@example.com", "Олег", lat, lon)

	// Проверки
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, alert.ID)
	assert.Equal(t, "North", alert.PoliceSubdivision)
}

func TestTriggerSOS_NoStationFound(t *testing.T) {
	// Подготовка
	service, repoMock, stationsMock, publisherMock := newTestSOSService(t)
	ctx := context.Background()

	// Ожидания
	stationsMock.EXPECT().
		Nearest(ctx, gomock.Any(), gomock.Any()).
		Return(nil, fmt.Errorf("repository: %w", apperrors.ErrNoStationFound)).
		Times(1)
	repoMock.EXPECT().CreateAlert(gomock.Any(), gomock.Any()).Times(0)
	publisherMock.EXPECT().Publish(gomock.Any(), gomock.Any()).Times(0)

	// Действие
	alert, err := service.TriggerSOS(ctx, "citizen@example.com", "", 0, 0)

	// Проверки
	require.Error(t, err)
	assert.Nil(t, alert)
	assert.ErrorIs(t, err, apperrors.ErrNoStationFound)
}

func TestTriggerSOS_PublisherFailureDoesNotFail(t *testing.T) {
	// Подготовка
	service, repoMock, stationsMock, publisherMock := newTestSOSService(t)
	ctx := context.Background()
	station := &models.PoliceStation{ID: 1, Subdivision: "South"}

	// Ожидания: недоступность очереди не ломает создание сигнала
	stationsMock.EXPECT().Nearest(ctx, gomock.Any(), gomock.Any()).Return(station, nil).Times(1)
	repoMock.EXPECT().CreateAlert(ctx, gomock.Any()).Return(nil).Times(1)
	publisherMock.EXPECT().
		Publish(ctx, gomock.Any()).
		Return(fmt.Errorf("redis unavailable")).
		Times(1)

	// Действие
	alert, err := service.TriggerSOS(ctx, "citizen@example.com", "", 48.85, 2.35)

	// Проверки
	require.NoError(t, err)
	assert.NotNil(t, alert)
}

func TestAppendLocation_Success(t *testing.T) {
	// Подготовка
	service, repoMock, _, _ := newTestSOSService(t)
	ctx := context.Background()

	// Ожидания
	repoMock.EXPECT().
		AppendLocation(ctx, "citizen@example.com", 55.76, 37.62).
		Return(uuid.New(), nil).
		Times(1)

	// Действие
	err := service.AppendLocation(ctx, "citizen@example.com", 55.76, 37.62)

	// Проверки
	require.NoError(t, err)
}

func TestAppendLocation_NoActiveAlert(t *testing.T) {
	// Подготовка
	service, repoMock, _, _ := newTestSOSService(t)
	ctx := context.Background()

	// Ожидания
	repoMock.EXPECT().
		AppendLocation(ctx, "citizen@example.com", gomock.Any(), gomock.Any()).
		Return(uuid.Nil, fmt.Errorf("repository: %w", apperrors.ErrNoActiveAlert)).
		Times(1)

	// Действие
	err := service.AppendLocation(ctx, "citizen@example.com", 55.76, 37.62)

	// Проверки
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrNoActiveAlert)
}

func TestStopSOS_Success(t *testing.T) {
	// Подготовка
	service, repoMock, _, publisherMock := newTestSOSService(t)
	ctx := context.Background()
	alertID := uuid.New()

	// Ожидания
	repoMock.EXPECT().StopAlert(ctx, alertID).Return(nil).Times(1)
	publisherMock.EXPECT().
		Publish(ctx, gomock.Any()).
		Do(func(ctx context.Context, event webhook.DispatchEvent) {
			assert.Equal(t, webhook.EventSOSStopped, event.Type)
			assert.Equal(t, alertID, event.SOSID)
		}).Return(nil).Times(1)

	// Действие
	err := service.StopSOS(ctx, alertID)

	// Проверки
	require.NoError(t, err)
}

func TestStopSOS_AlreadyStopped(t *testing.T) {
	// Подготовка
	service, repoMock, _, publisherMock := newTestSOSService(t)
	ctx := context.Background()
	alertID := uuid.New()

	// Ожидания: повторная остановка равна остановке неизвестного сигнала
	repoMock.EXPECT().
		StopAlert(ctx, alertID).
		Return(fmt.Errorf("repository: %w", apperrors.ErrNotFound)).
		Times(1)
	publisherMock.EXPECT().Publish(gomock.Any(), gomock.Any()).Times(0)

	// Действие
	err := service.StopSOS(ctx, alertID)

	// Проверки
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestListForJurisdiction_Success(t *testing.T) {
	// Подготовка
	service, repoMock, _, _ := newTestSOSService(t)
	ctx := context.Background()
	expected := []*models.SOSAlert{
		{ID: uuid.New(), PoliceSubdivision: "North", Status: models.SOSActive},
	}

	// Ожидания
	repoMock.EXPECT().ListByJurisdiction(ctx, "North").Return(expected, nil).Times(1)

	// Действие
	alerts, err := service.ListForJurisdiction(ctx, "North")

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, expected, alerts)
}

func TestListForJurisdiction_MissingSubdivision(t *testing.T) {
	// Подготовка
	service, repoMock, _, _ := newTestSOSService(t)
	ctx := context.Background()

	// Ожидания
	repoMock.EXPECT().ListByJurisdiction(gomock.Any(), gomock.Any()).Times(0)

	// Действие
	alerts, err := service.ListForJurisdiction(ctx, "")

	// Проверки
	require.Error(t, err)
	assert.Nil(t, alerts)
	var vErr *apperrors.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "subdivision", vErr.Field)
}
