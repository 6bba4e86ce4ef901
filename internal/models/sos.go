package models

import (
	"time"

	"github.com/google/uuid"
)

// SOSStatus - статус сигнала бедствия
type SOSStatus string

const (
	SOSActive   SOSStatus = "active"
	SOSInactive SOSStatus = "inactive"
)

// LocationSample - одна точка трека сигнала бедствия
type LocationSample struct {
	Latitude   float64   `json:"latitude"`
	Longitude  float64   `json:"longitude"`
	RecordedAt time.Time `json:"recorded_at"`
}

// SOSAlert - сигнал бедствия. Locations - упорядоченный append-only трек:
// порядок вставки совпадает с хронологией, точки не переупорядочиваются и не
// удаляются. PoliceSubdivision фиксируется при создании и больше не пересчитывается.
type SOSAlert struct {
	ID                uuid.UUID        `json:"id"`
	CitizenEmail      string           `json:"citizen_email"`
	CitizenName       string           `json:"citizen_name,omitempty"`
	PoliceSubdivision string           `json:"police_subdivision"`
	Status            SOSStatus        `json:"status"`
	Locations         []LocationSample `json:"locations"`
	CreatedAt         time.Time        `json:"created_at"`
}

// LastKnownLocation возвращает последнюю точку трека
func (a *SOSAlert) LastKnownLocation() *LocationSample {
	if len(a.Locations) == 0 {
		return nil
	}
	return &a.Locations[len(a.Locations)-1]
}
