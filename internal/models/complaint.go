package models

import (
	"time"
)

// ConfidentialMarker подставляется вместо данных потерпевшего, подозреваемого
// и свидетеля, пока жалоба находится в статусе Pending
const ConfidentialMarker = "Confidential until accepted"

// VictimDetails - необязательные сведения о потерпевшем
type VictimDetails struct {
	Name      string `json:"name,omitempty"`
	Phone     string `json:"phone,omitempty"`
	AgeGender string `json:"age_gender,omitempty"`
	Relation  string `json:"relation,omitempty"`
}

// SuspectDetails - необязательные сведения о подозреваемом
type SuspectDetails struct {
	Name       string `json:"name,omitempty"`
	Marks      string `json:"identifying_marks,omitempty"`
	Complexion string `json:"complexion,omitempty"`
	Address    string `json:"last_known_address,omitempty"`
}

// WitnessDetails - необязательные сведения о свидетеле
type WitnessDetails struct {
	Name      string `json:"name,omitempty"`
	Contact   string `json:"contact,omitempty"`
	Statement string `json:"statement,omitempty"`
}

// Complaint - заявление о преступлении. Идентификатор вида CMP0000000001
// выдается один раз и не меняется; после создания мутируют только статус
// и список вложений.
type Complaint struct {
	ComplaintID      string `json:"complaint_id"`
	ComplainantName  string `json:"complainant_name"`
	ComplainantPhone string `json:"complainant_phone"`
	ComplainantEmail string `json:"complainant_email"`
	RelationToVictim string `json:"relation_to_victim,omitempty"`

	Victim  *VictimDetails  `json:"victim,omitempty"`
	Suspect *SuspectDetails `json:"suspect,omitempty"`
	Witness *WitnessDetails `json:"witness,omitempty"`

	IncidentType string `json:"incident_type"`
	Title        string `json:"title,omitempty"`
	IncidentDate string `json:"date"`
	IncidentTime string `json:"time"`
	District     string `json:"district"`
	Subdivision  string `json:"subdivision"`
	ExactAddress string `json:"exact_address"`
	Description  string `json:"description"`

	EvidenceFiles []string `json:"evidence_files,omitempty"`

	Status    Status    `json:"status"`
	CreatedAt time.Time `json:"created_at"`

	// Redacted выставляется политикой видимости при чтении и не хранится в бд:
	// true означает, что Victim/Suspect/Witness были скрыты для этого зрителя
	Redacted bool `json:"-"`
}

// Redact скрывает конфиденциальные под-записи для зрителя, не являющегося заявителем
func (c *Complaint) Redact() {
	c.Victim = nil
	c.Suspect = nil
	c.Witness = nil
	c.Redacted = true
}
