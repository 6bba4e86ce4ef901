package models

import "time"

// InvestigationNote - заметка следователя по жалобе, свободный текст без
// какого-либо конечного автомата
type InvestigationNote struct {
	NoteID      int64     `json:"note_id"`
	ComplaintID string    `json:"complaint_id"`
	OfficerID   int64     `json:"officer_id"`
	OfficerName string    `json:"officer_name,omitempty"`
	NoteText    string    `json:"note_text"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
