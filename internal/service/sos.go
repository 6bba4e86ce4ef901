package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/crime_report_system/internal/apperrors"
	"github.com/shenikar/crime_report_system/internal/models"
	"github.com/shenikar/crime_report_system/internal/webhook"
	"github.com/sirupsen/logrus"
)

// StationRepository - поиск ближайшего участка по координатам.
// Справочник только читается.
type StationRepository interface {
	// Nearest возвращает участок с минимальной дистанцией до точки;
	// при равной дистанции побеждает меньший id, результат детерминирован
	Nearest(ctx context.Context, lat, lon float64) (*models.PoliceStation, error)
}

// SOSRepository определяет контракт хранилища сигналов бедствия
type SOSRepository interface {
	// CreateAlert сохраняет сигнал вместе с первой точкой трека
	CreateAlert(ctx context.Context, alert *models.SOSAlert) error
	// AppendLocation атомарно дописывает точку к активному сигналу гражданина
	// одним INSERT ... SELECT, без чтения-модификации-записи
	AppendLocation(ctx context.Context, citizenEmail string, lat, lon float64) (uuid.UUID, error)
	// StopAlert деактивирует сигнал; если активного сигнала с таким id нет,
	// возвращает apperrors.ErrNotFound
	StopAlert(ctx context.Context, alertID uuid.UUID) error
	ListByJurisdiction(ctx context.Context, subdivision string) ([]*models.SOSAlert, error)
}

// SOSService определяет контракт трекинга сигналов бедствия
type SOSService interface {
	TriggerSOS(ctx context.Context, citizenEmail, citizenName string, lat, lon float64) (*models.SOSAlert, error)
	AppendLocation(ctx context.Context, citizenEmail string, lat, lon float64) error
	StopSOS(ctx context.Context, alertID uuid.UUID) error
	ListForJurisdiction(ctx context.Context, subdivision string) ([]*models.SOSAlert, error)
}

type sosService struct {
	repo      SOSRepository
	stations  StationRepository
	publisher webhook.DispatchPublisher
	logger    *logrus.Logger
}

func NewSOSService(repo SOSRepository, stations StationRepository, publisher webhook.DispatchPublisher, logger *logrus.Logger) SOSService {
	return &sosService{
		repo:      repo,
		stations:  stations,
		publisher: publisher,
		logger:    logger,
	}
}

// TriggerSOS создает сигнал бедствия: маршрутизирует его в ближайший участок и
// сохраняет с первой точкой трека. Юрисдикция фиксируется здесь и при движении
// гражданина не пересчитывается.
func (s *sosService) TriggerSOS(ctx context.Context, citizenEmail, citizenName string, lat, lon float64) (*models.SOSAlert, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "sos",
		"method":  "TriggerSOS",
		"citizen": citizenEmail,
	})

	if citizenEmail == "" {
		return nil, apperrors.MissingField("citizen_email")
	}

	station, err := s.stations.Nearest(ctx, lat, lon)
	if err != nil {
		log.WithError(err).Error("Failed to resolve nearest police station")
		return nil, fmt.Errorf("service: could not resolve station: %w", err)
	}

	alert := &models.SOSAlert{
		CitizenEmail:      citizenEmail,
		CitizenName:       citizenName,
		PoliceSubdivision: station.Subdivision,
		Status:            models.SOSActive,
		Locations: []models.LocationSample{
			{Latitude: lat, Longitude: lon, RecordedAt: time.Now().UTC()},
		},
	}
	if err := s.repo.CreateAlert(ctx, alert); err != nil {
		log.WithError(err).Error("Failed to create sos alert in repository")
		return nil, fmt.Errorf("service: could not create sos alert: %w", err)
	}

	s.publish(ctx, webhook.EventSOSCreated, alert, lat, lon)

	log.WithFields(logrus.Fields{
		"sos_id":      alert.ID,
		"subdivision": alert.PoliceSubdivision,
	}).Info("SOS alert created")
	return alert, nil
}

// AppendLocation дописывает точку к активному сигналу гражданина
func (s *sosService) AppendLocation(ctx context.Context, citizenEmail string, lat, lon float64) error {
	log := s.logger.WithFields(logrus.Fields{
		"service": "sos",
		"method":  "AppendLocation",
		"citizen": citizenEmail,
	})

	if citizenEmail == "" {
		return apperrors.MissingField("citizen_email")
	}

	if _, err := s.repo.AppendLocation(ctx, citizenEmail, lat, lon); err != nil {
		log.WithError(err).Warn("Failed to append sos location")
		return fmt.Errorf("service: could not append sos location: %w", err)
	}
	return nil
}

// StopSOS деактивирует сигнал. Повторная остановка не ломает состояние:
// активного сигнала уже нет, поэтому клиент получает NotFound, как и в случае
// неизвестного id.
func (s *sosService) StopSOS(ctx context.Context, alertID uuid.UUID) error {
	log := s.logger.WithFields(logrus.Fields{
		"service": "sos",
		"method":  "StopSOS",
		"sos_id":  alertID,
	})

	if err := s.repo.StopAlert(ctx, alertID); err != nil {
		log.WithError(err).Warn("Failed to stop sos alert")
		return fmt.Errorf("service: could not stop sos alert: %w", err)
	}

	s.publish(ctx, webhook.EventSOSStopped, &models.SOSAlert{ID: alertID}, 0, 0)

	log.Info("SOS alert stopped")
	return nil
}

// ListForJurisdiction возвращает сигналы участка, новые раньше старых,
// каждый с полным упорядоченным треком
func (s *sosService) ListForJurisdiction(ctx context.Context, subdivision string) ([]*models.SOSAlert, error) {
	if subdivision == "" {
		return nil, apperrors.MissingField("subdivision")
	}

	alerts, err := s.repo.ListByJurisdiction(ctx, subdivision)
	if err != nil {
		s.logger.WithError(err).Error("Failed to list sos alerts")
		return nil, fmt.Errorf("service: could not list sos alerts: %w", err)
	}
	return alerts, nil
}

// publish отправляет событие в очередь вебхуков; доставка не участвует в
// основном пути и ошибку наружу не пробрасывает
func (s *sosService) publish(ctx context.Context, eventType string, alert *models.SOSAlert, lat, lon float64) {
	event := webhook.DispatchEvent{
		Type:         eventType,
		SOSID:        alert.ID,
		CitizenEmail: alert.CitizenEmail,
		Subdivision:  alert.PoliceSubdivision,
		Latitude:     lat,
		Longitude:    lon,
		Timestamp:    time.Now().UTC(),
	}
	if err := s.publisher.Publish(ctx, event); err != nil {
		s.logger.WithError(err).WithField("sos_id", alert.ID).Error("Failed to publish dispatch event")
	}
}
