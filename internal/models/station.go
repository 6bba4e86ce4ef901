package models

// PoliceStation - участок с фиксированной точкой и зоной ответственности.
// Справочные данные, в рамках сервиса только читаются.
type PoliceStation struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	District    string  `json:"district"`
	Subdivision string  `json:"subdivision"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
}
