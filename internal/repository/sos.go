package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shenikar/crime_report_system/internal/apperrors"
	"github.com/shenikar/crime_report_system/internal/models"
	"github.com/shenikar/crime_report_system/internal/service"
)

type SOSRepository struct {
	db *pgxpool.Pool
}

func NewSOSRepository(db *pgxpool.Pool) service.SOSRepository {
	return &SOSRepository{db: db}
}

// CreateAlert сохраняет сигнал и первую точку трека одной транзакцией
func (r *SOSRepository) CreateAlert(ctx context.Context, alert *models.SOSAlert) error {
	if len(alert.Locations) == 0 {
		return fmt.Errorf("sos alert requires an initial location sample")
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin sos transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	err = tx.QueryRow(ctx, `
		INSERT INTO sos_alerts (citizen_email, citizen_name, police_subdivision, status)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at;`,
		alert.CitizenEmail, alert.CitizenName, alert.PoliceSubdivision, string(alert.Status),
	).Scan(&alert.ID, &alert.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			// У гражданина уже есть активный сигнал
			return fmt.Errorf("citizen %s already has an active sos alert: %w", alert.CitizenEmail, apperrors.ErrConflict)
		}
		return fmt.Errorf("failed to insert sos alert: %w", err)
	}

	first := alert.Locations[0]
	err = tx.QueryRow(ctx, `
		INSERT INTO sos_locations (sos_id, latitude, longitude)
		VALUES ($1, $2, $3)
		RETURNING recorded_at;`,
		alert.ID, first.Latitude, first.Longitude,
	).Scan(&alert.Locations[0].RecordedAt)
	if err != nil {
		return fmt.Errorf("failed to insert initial sos location: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit sos transaction: %w", err)
	}
	return nil
}

// AppendLocation дописывает точку к активному сигналу гражданина одним
// INSERT ... SELECT: вставка в дочернюю таблицу атомарна, конкурентные опросы
// не теряют точки. Юрисдикция сигнала при этом не пересчитывается.
func (r *SOSRepository) AppendLocation(ctx context.Context, citizenEmail string, lat, lon float64) (uuid.UUID, error) {
	var sosID uuid.UUID
	err := r.db.QueryRow(ctx, `
		INSERT INTO sos_locations (sos_id, latitude, longitude)
		SELECT id, $2, $3
		FROM sos_alerts
		WHERE lower(citizen_email) = lower($1) AND status = 'active'
		RETURNING sos_id;`,
		citizenEmail, lat, lon,
	).Scan(&sosID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return uuid.Nil, fmt.Errorf("citizen %s: %w", citizenEmail, apperrors.ErrNoActiveAlert)
		}
		return uuid.Nil, fmt.Errorf("failed to append sos location: %w", err)
	}
	return sosID, nil
}

// StopAlert деактивирует сигнал. Сторож status='active' делает повторную
// остановку безопасной: второй вызов ничего не меняет и сообщает NotFound.
func (r *SOSRepository) StopAlert(ctx context.Context, alertID uuid.UUID) error {
	cmdTag, err := r.db.Exec(ctx, `
		UPDATE sos_alerts
		SET status = 'inactive'
		WHERE id = $1 AND status = 'active';`,
		alertID,
	)
	if err != nil {
		return fmt.Errorf("failed to stop sos alert: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("active sos alert %s: %w", alertID, apperrors.ErrNotFound)
	}
	return nil
}

// ListByJurisdiction возвращает сигналы участка с полными треками, новые
// раньше старых; внутри трека порядок вставки (serial id дочерней таблицы)
func (r *SOSRepository) ListByJurisdiction(ctx context.Context, subdivision string) ([]*models.SOSAlert, error) {
	query := `
		SELECT a.id, a.citizen_email, a.citizen_name, a.police_subdivision, a.status, a.created_at,
		       l.latitude, l.longitude, l.recorded_at
		FROM sos_alerts a
		LEFT JOIN sos_locations l ON l.sos_id = a.id
		WHERE a.police_subdivision = $1
		ORDER BY a.created_at DESC, a.id, l.id;`
	rows, err := r.db.Query(ctx, query, subdivision)
	if err != nil {
		return nil, fmt.Errorf("failed to list sos alerts: %w", err)
	}
	defer rows.Close()

	alerts := make([]*models.SOSAlert, 0)
	var current *models.SOSAlert
	for rows.Next() {
		var (
			id                       uuid.UUID
			email, name, sub, status string
			createdAt                time.Time
			lat, lon                 *float64
			recordedAt               *time.Time
		)
		if err := rows.Scan(&id, &email, &name, &sub, &status, &createdAt, &lat, &lon, &recordedAt); err != nil {
			return nil, fmt.Errorf("failed to scan sos alert row: %w", err)
		}
		if current == nil || current.ID != id {
			current = &models.SOSAlert{
				ID:                id,
				CitizenEmail:      email,
				CitizenName:       name,
				PoliceSubdivision: sub,
				Status:            models.SOSStatus(status),
				Locations:         make([]models.LocationSample, 0, 1),
				CreatedAt:         createdAt,
			}
			alerts = append(alerts, current)
		}
		if lat != nil && lon != nil && recordedAt != nil {
			current.Locations = append(current.Locations, models.LocationSample{
				Latitude:   *lat,
				Longitude:  *lon,
				RecordedAt: *recordedAt,
			})
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error sos list iteration: %w", err)
	}
	return alerts, nil
}
