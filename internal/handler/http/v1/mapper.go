package v1

import (
	"github.com/shenikar/crime_report_system/internal/apperrors"
	"github.com/shenikar/crime_report_system/internal/models"
)

// DTOToComplaintModel преобразует DTO подачи заявления в доменную модель;
// email заявителя приходит из заголовка аутентификации, не из тела
func DTOToComplaintModel(dto SubmitComplaintRequest, complainantEmail string) *models.Complaint {
	c := &models.Complaint{
		ComplaintID:      dto.ComplaintID,
		ComplainantName:  dto.ComplainantName,
		ComplainantPhone: dto.ComplainantPhone,
		ComplainantEmail: complainantEmail,
		RelationToVictim: dto.RelationToVictim,
		IncidentType:     dto.IncidentType,
		Title:            dto.Title,
		IncidentDate:     dto.Date,
		IncidentTime:     dto.Time,
		District:         dto.District,
		Subdivision:      dto.Subdivision,
		ExactAddress:     dto.ExactAddress,
		Description:      dto.Description,
		EvidenceFiles:    dto.EvidenceFiles,
	}
	if dto.Victim != nil {
		c.Victim = &models.VictimDetails{
			Name:      dto.Victim.Name,
			Phone:     dto.Victim.Phone,
			AgeGender: dto.Victim.AgeGender,
			Relation:  dto.Victim.Relation,
		}
	}
	if dto.Suspect != nil {
		c.Suspect = &models.SuspectDetails{
			Name:       dto.Suspect.Name,
			Marks:      dto.Suspect.Marks,
			Complexion: dto.Suspect.Complexion,
			Address:    dto.Suspect.Address,
		}
	}
	if dto.Witness != nil {
		c.Witness = &models.WitnessDetails{
			Name:      dto.Witness.Name,
			Contact:   dto.Witness.Contact,
			Statement: dto.Witness.Statement,
		}
	}
	return c
}

// ModelToComplaintResponse преобразует модель в DTO. Для скрытой жалобы вместо
// под-записей подставляется строка-маркер.
func ModelToComplaintResponse(model *models.Complaint) *ComplaintResponse {
	resp := &ComplaintResponse{
		ComplaintID:      model.ComplaintID,
		ComplainantName:  model.ComplainantName,
		ComplainantPhone: model.ComplainantPhone,
		ComplainantEmail: model.ComplainantEmail,
		RelationToVictim: model.RelationToVictim,
		IncidentType:     model.IncidentType,
		Title:            model.Title,
		Date:             model.IncidentDate,
		Time:             model.IncidentTime,
		District:         model.District,
		Subdivision:      model.Subdivision,
		ExactAddress:     model.ExactAddress,
		Description:      model.Description,
		EvidenceFiles:    model.EvidenceFiles,
		Status:           model.Status.String(),
		CreatedAt:        model.CreatedAt,
	}

	if model.Redacted {
		resp.Victim = models.ConfidentialMarker
		resp.Suspect = models.ConfidentialMarker
		resp.Witness = models.ConfidentialMarker
		return resp
	}

	if model.Victim != nil {
		resp.Victim = model.Victim
	}
	if model.Suspect != nil {
		resp.Suspect = model.Suspect
	}
	if model.Witness != nil {
		resp.Witness = model.Witness
	}
	return resp
}

// ModelsToComplaintResponses преобразует слайс моделей в слайс DTO
func ModelsToComplaintResponses(complaints []*models.Complaint) []*ComplaintResponse {
	responses := make([]*ComplaintResponse, len(complaints))
	for i, c := range complaints {
		responses[i] = ModelToComplaintResponse(c)
	}
	return responses
}

// DTOToTargetStatus собирает типизированный статус из DTO смены статуса
func DTOToTargetStatus(dto UpdateStatusRequest) (models.Status, error) {
	if dto.Reason != "" {
		if models.State(dto.Status) != models.StateClosed {
			return models.Status{}, apperrors.Invalid("reason", "only allowed for Closed status")
		}
		reason, err := models.ParseCloseReason(dto.Reason)
		if err != nil {
			return models.Status{}, apperrors.Invalid("reason", err.Error())
		}
		return models.Closed(reason), nil
	}

	status, err := models.ParseStatus(dto.Status)
	if err != nil {
		return models.Status{}, apperrors.Invalid("status", err.Error())
	}
	return status, nil
}

// ModelToFinalReportResponse преобразует модель отчета в DTO
func ModelToFinalReportResponse(model *models.FinalReport) *FinalReportResponse {
	return &FinalReportResponse{
		ReportID:       model.ReportID,
		ComplaintID:    model.ComplaintID,
		ComplaintTitle: model.ComplaintTitle,
		OfficerID:      model.OfficerID,
		OfficerName:    model.OfficerName,
		FinalStatus:    string(model.FinalStatus),
		ReportText:     model.ReportText,
		Remarks:        model.Remarks,
		EvidenceFiles:  model.EvidenceFiles,
		CreatedAt:      model.CreatedAt,
	}
}

// ModelToSOSAlertResponse преобразует модель сигнала в DTO с полным треком
func ModelToSOSAlertResponse(model *models.SOSAlert) *SOSAlertResponse {
	locations := make([]LocationSampleResponse, len(model.Locations))
	for i, l := range model.Locations {
		locations[i] = LocationSampleResponse{
			Latitude:   l.Latitude,
			Longitude:  l.Longitude,
			RecordedAt: l.RecordedAt,
		}
	}
	return &SOSAlertResponse{
		ID:                model.ID,
		CitizenEmail:      model.CitizenEmail,
		CitizenName:       model.CitizenName,
		PoliceSubdivision: model.PoliceSubdivision,
		Status:            string(model.Status),
		Locations:         locations,
		CreatedAt:         model.CreatedAt,
	}
}

// ModelToNoteResponse преобразует заметку следствия в DTO
func ModelToNoteResponse(model *models.InvestigationNote) *NoteResponse {
	return &NoteResponse{
		NoteID:      model.NoteID,
		ComplaintID: model.ComplaintID,
		OfficerID:   model.OfficerID,
		OfficerName: model.OfficerName,
		NoteText:    model.NoteText,
		CreatedAt:   model.CreatedAt,
		UpdatedAt:   model.UpdatedAt,
	}
}

// ModelToStatisticsResponse преобразует счетчики участка в DTO
func ModelToStatisticsResponse(model *models.CrimeStatistics) *CrimeStatisticsResponse {
	return &CrimeStatisticsResponse{
		District:    model.District,
		Subdivision: model.Subdivision,
		Counts:      model.Counts,
		Total:       model.Total,
	}
}
