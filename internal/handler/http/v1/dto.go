package v1

import (
	"time"

	"github.com/google/uuid"
)

// PartyDTO - необязательные сведения об участнике (потерпевший/подозреваемый/свидетель)
// @Description Сведения об участнике дела
type PartyDTO struct {
	Name      string `json:"name,omitempty"`
	Phone     string `json:"phone,omitempty"`
	AgeGender string `json:"age_gender,omitempty"`
	Relation  string `json:"relation,omitempty"`
	// Поля подозреваемого
	Marks      string `json:"identifying_marks,omitempty"`
	Complexion string `json:"complexion,omitempty"`
	Address    string `json:"last_known_address,omitempty"`
	// Поля свидетеля
	Contact   string `json:"contact,omitempty"`
	Statement string `json:"statement,omitempty"`
}

// SubmitComplaintRequest DTO подачи заявления
// @Description DTO подачи заявления о преступлении
type SubmitComplaintRequest struct {
	ComplaintID      string `json:"complaint_id,omitempty"`
	ComplainantName  string `json:"complainant_name" validate:"required,min=2,max=255"`
	ComplainantPhone string `json:"complainant_phone" validate:"required"`
	RelationToVictim string `json:"relation_to_victim,omitempty"`

	Victim  *PartyDTO `json:"victim,omitempty"`
	Suspect *PartyDTO `json:"suspect,omitempty"`
	Witness *PartyDTO `json:"witness,omitempty"`

	IncidentType string `json:"incident_type" validate:"required"`
	Title        string `json:"title,omitempty"`
	Date         string `json:"date" validate:"required"`
	Time         string `json:"time" validate:"required"`
	District     string `json:"district" validate:"required"`
	Subdivision  string `json:"subdivision" validate:"required"`
	ExactAddress string `json:"exact_address" validate:"required"`
	Description  string `json:"description" validate:"required"`

	EvidenceFiles []string `json:"evidence_files,omitempty"`
}

// SubmitComplaintResponse DTO ответа на подачу заявления
// @Description DTO ответа на подачу заявления
type SubmitComplaintResponse struct {
	ComplaintID string    `json:"complaint_id"`
	CreatedAt   time.Time `json:"created_at"`
	Status      string    `json:"status"`
}

// GenerateIDResponse DTO выдачи идентификатора жалобы
// @Description DTO выдачи идентификатора жалобы
type GenerateIDResponse struct {
	ComplaintID string `json:"complaint_id"`
}

// ComplaintResponse DTO жалобы. Поля victim/suspect/witness содержат либо
// объект, либо строку-маркер конфиденциальности, пока жалоба в статусе Pending
// @Description DTO жалобы с учетом политики сокрытия
type ComplaintResponse struct {
	ComplaintID      string `json:"complaint_id"`
	ComplainantName  string `json:"complainant_name"`
	ComplainantPhone string `json:"complainant_phone"`
	ComplainantEmail string `json:"complainant_email"`
	RelationToVictim string `json:"relation_to_victim,omitempty"`

	Victim  any `json:"victim,omitempty"`
	Suspect any `json:"suspect,omitempty"`
	Witness any `json:"witness,omitempty"`

	IncidentType string `json:"incident_type"`
	Title        string `json:"title,omitempty"`
	Date         string `json:"date"`
	Time         string `json:"time"`
	District     string `json:"district"`
	Subdivision  string `json:"subdivision"`
	ExactAddress string `json:"exact_address"`
	Description  string `json:"description"`

	EvidenceFiles []string  `json:"evidence_files,omitempty"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
}

// UpdateStatusRequest DTO смены статуса жалобы
// @Description DTO смены статуса жалобы; reason обязателен для Closed
type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required"`
	Reason string `json:"reason,omitempty"`
}

// AppendEvidenceRequest DTO добавления ссылок на вложения
// @Description DTO добавления ссылок на вложения
type AppendEvidenceRequest struct {
	EvidenceRefs []string `json:"evidence_refs" validate:"required,min=1"`
}

// SubmitFinalReportRequest DTO итогового отчета
// @Description DTO итогового отчета следствия
type SubmitFinalReportRequest struct {
	OfficerID     int64    `json:"officer_id" validate:"required,gt=0"`
	ReportText    string   `json:"report_text" validate:"required"`
	FinalStatus   string   `json:"final_status" validate:"required"`
	Remarks       string   `json:"remarks,omitempty"`
	EvidenceFiles []string `json:"evidence_files,omitempty"`
}

// FinalReportResponse DTO итогового отчета
// @Description DTO итогового отчета следствия
type FinalReportResponse struct {
	ReportID       int64     `json:"report_id"`
	ComplaintID    string    `json:"complaint_id"`
	ComplaintTitle string    `json:"complaint_title,omitempty"`
	OfficerID      int64     `json:"officer_id"`
	OfficerName    string    `json:"officer_name,omitempty"`
	FinalStatus    string    `json:"final_status"`
	ReportText     string    `json:"report_text"`
	Remarks        string    `json:"remarks,omitempty"`
	EvidenceFiles  []string  `json:"evidence_files,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

// AddNoteRequest DTO заметки следствия
// @Description DTO заметки следствия
type AddNoteRequest struct {
	ComplaintID string `json:"complaint_id" validate:"required"`
	OfficerID   int64  `json:"officer_id" validate:"required,gt=0"`
	NoteText    string `json:"note_text" validate:"required"`
}

// UpdateNoteRequest DTO изменения заметки
// @Description DTO изменения заметки
type UpdateNoteRequest struct {
	NoteText string `json:"note_text" validate:"required"`
}

// NoteResponse DTO заметки следствия
// @Description DTO заметки следствия
type NoteResponse struct {
	NoteID      int64     `json:"note_id"`
	ComplaintID string    `json:"complaint_id"`
	OfficerID   int64     `json:"officer_id"`
	OfficerName string    `json:"officer_name,omitempty"`
	NoteText    string    `json:"note_text"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// CreateSOSRequest DTO создания сигнала бедствия
// @Description DTO создания сигнала бедствия
type CreateSOSRequest struct {
	Latitude  float64 `json:"latitude" validate:"required,latitude"`
	Longitude float64 `json:"longitude" validate:"required,longitude"`
}

// CreateSOSResponse DTO ответа на создание сигнала
// @Description DTO ответа на создание сигнала бедствия
type CreateSOSResponse struct {
	SOSID       uuid.UUID `json:"sos_id"`
	Subdivision string    `json:"subdivision"`
}

// AppendSOSLocationRequest DTO добавления точки трека
// @Description DTO добавления точки трека сигнала бедствия
type AppendSOSLocationRequest struct {
	Latitude  float64 `json:"latitude" validate:"required,latitude"`
	Longitude float64 `json:"longitude" validate:"required,longitude"`
}

// LocationSampleResponse - одна точка трека
// @Description Точка трека сигнала бедствия
type LocationSampleResponse struct {
	Latitude   float64   `json:"latitude"`
	Longitude  float64   `json:"longitude"`
	RecordedAt time.Time `json:"recorded_at"`
}

// SOSAlertResponse DTO сигнала бедствия с полным треком
// @Description DTO сигнала бедствия
type SOSAlertResponse struct {
	ID                uuid.UUID                `json:"id"`
	CitizenEmail      string                   `json:"citizen_email"`
	CitizenName       string                   `json:"citizen_name,omitempty"`
	PoliceSubdivision string                   `json:"police_subdivision"`
	Status            string                   `json:"status"`
	Locations         []LocationSampleResponse `json:"locations"`
	CreatedAt         time.Time                `json:"created_at"`
}

// CrimeStatisticsResponse DTO счетчиков преступлений по участку
// @Description DTO счетчиков преступлений по участку
type CrimeStatisticsResponse struct {
	District    string         `json:"district"`
	Subdivision string         `json:"subdivision"`
	Counts      map[string]int `json:"counts"`
	Total       int            `json:"total"`
}
