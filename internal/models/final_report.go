package models

import "time"

// FinalReport - итоговый отчет следствия. Для жалобы существует не более
// одного отчета: его запись и закрывающий переход выполняются в одной транзакции.
type FinalReport struct {
	ReportID      int64       `json:"report_id"`
	ComplaintID   string      `json:"complaint_id"`
	OfficerID     int64       `json:"officer_id"`
	OfficerName   string      `json:"officer_name,omitempty"`
	FinalStatus   CloseReason `json:"final_status"`
	ReportText    string      `json:"report_text"`
	Remarks       string      `json:"remarks,omitempty"`
	EvidenceFiles []string    `json:"evidence_files,omitempty"`
	CreatedAt     time.Time   `json:"created_at"`

	// ComplaintTitle заполняется только в выборках для заявителя
	ComplaintTitle string `json:"complaint_title,omitempty"`
}
