package models

// CrimeStatistics - счетчики преступлений по участку: по одному счетчику на
// тип инцидента плюс производный итог. Единственная мутация - переход жалобы
// в статус Under Investigation.
type CrimeStatistics struct {
	District    string         `json:"district"`
	Subdivision string         `json:"subdivision"`
	Counts      map[string]int `json:"counts"`
	Total       int            `json:"total"`
}
