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

type StationRepository struct {
	db *pgxpool.Pool
}

func NewStationRepository(db *pgxpool.Pool) service.StationRepository {
	return &StationRepository{db: db}
}

// Nearest возвращает участок, ближайший к точке по геодезической дистанции.
// Вторичная сортировка по id делает выбор детерминированным при равных
// дистанциях.
func (r *StationRepository) Nearest(ctx context.Context, lat, lon float64) (*models.PoliceStation, error) {
	station := &models.PoliceStation{}
	query := `
		SELECT
			id,
			name,
			district,
			subdivision,
			ST_Y(location::geometry) AS latitude,
			ST_X(location::geometry) AS longitude
		FROM police_stations
		ORDER BY ST_Distance(location, ST_SetSRID(ST_MakePoint($1, $2), 4326)::geography), id
		LIMIT 1;`
	err := r.db.QueryRow(ctx, query, lon, lat).Scan(
		&station.ID,
		&station.Name,
		&station.District,
		&station.Subdivision,
		&station.Latitude,
		&station.Longitude,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNoStationFound
		}
		return nil, fmt.Errorf("failed to find nearest police station: %w", err)
	}
	return station, nil
}
