package v1

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shenikar/crime_report_system/internal/apperrors"
	"github.com/shenikar/crime_report_system/internal/config"
	"github.com/shenikar/crime_report_system/internal/models"
	"github.com/shenikar/crime_report_system/internal/service"
	"github.com/shenikar/crime_report_system/internal/service/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type testMocks struct {
	complaints *mocks.MockComplaintService
	reports    *mocks.MockFinalReportService
	sos        *mocks.MockSOSService
	notes      *mocks.MockNoteService
}

// newTestHandler создает новый экземпляр Handler с мокированными сервисами
func newTestHandler(t *testing.T) (*Handler, testMocks, *gin.Engine) {
	ctrl := gomock.NewController(t)
	m := testMocks{
		complaints: mocks.NewMockComplaintService(ctrl),
		reports:    mocks.NewMockFinalReportService(ctrl),
		sos:        mocks.NewMockSOSService(ctrl),
		notes:      mocks.NewMockNoteService(ctrl),
	}

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	cfg := &config.Config{
		APIKeys: []string{"test-api-key"},
	}

	handler := NewHandler(m.complaints, m.reports, m.sos, m.notes, logger, cfg)

	// Настройка Gin роутера для тестов
	gin.SetMode(gin.TestMode)
	router := gin.New()
	api := router.Group("/api/v1")
	handler.RegisterRoutes(api)

	return handler, m, router
}

// makeRequest - вспомогательная функция для выполнения HTTP-запросов
func makeRequest(router *gin.Engine, method, url string, body io.Reader, headers ...map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, url, body)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, h := range headers {
		for key, value := range h {
			req.Header.Set(key, value)
		}
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func citizenHeaders() map[string]string {
	return map[string]string{
		headerUserEmail: "anna@example.com",
		headerUserName:  "Anna Petrova",
		headerUserRole:  service.RoleCitizen,
	}
}

func validSubmitRequest() SubmitComplaintRequest {
	return SubmitComplaintRequest{
		ComplainantName:  "Anna Petrova",
		ComplainantPhone: "+79001234567",
		IncidentType:     "Theft",
		Date:             "2025-11-02",
		Time:             "21:30",
		District:         "Central",
		Subdivision:      "North",
		ExactAddress:     "Lenin st. 10",
		Description:      "Bicycle stolen near the entrance",
	}
}

func TestSubmitComplaint_Success(t *testing.T) {
	_, m, router := newTestHandler(t)
	reqBody := validSubmitRequest()

	m.complaints.EXPECT().
		SubmitComplaint(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, c *models.Complaint) error {
			// Email берется из заголовка, а не из тела
			assert.Equal(t, "anna@example.com", c.ComplainantEmail)
			c.ComplaintID = "CMP0000000042"
			c.Status = models.NewStatus(models.StatePending)
			return nil
		}).Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/complaints", bytes.NewBuffer(bodyBytes), citizenHeaders())

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp SubmitComplaintResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Equal(t, "CMP0000000042", resp.ComplaintID)
	assert.Equal(t, "Pending", resp.Status)
}

func TestSubmitComplaint_MissingEmailHeader(t *testing.T) {
	_, m, router := newTestHandler(t)
	reqBody := validSubmitRequest()

	m.complaints.EXPECT().SubmitComplaint(gomock.Any(), gomock.Any()).Times(0) // Сервис не должен вызываться

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/complaints", bytes.NewBuffer(bodyBytes))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "user email not found")
}

func TestSubmitComplaint_InvalidJSON(t *testing.T) {
	_, m, router := newTestHandler(t)

	m.complaints.EXPECT().SubmitComplaint(gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, "POST", "/api/v1/complaints", bytes.NewBufferString(`{"complainant_name": "Anna"`), citizenHeaders())

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid request body")
}

func TestSubmitComplaint_ValidationError(t *testing.T) {
	_, m, router := newTestHandler(t)
	reqBody := validSubmitRequest()
	reqBody.District = "" // Отсутствует обязательное поле

	m.complaints.EXPECT().SubmitComplaint(gomock.Any(), gomock.Any()).Times(0)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/complaints", bytes.NewBuffer(bodyBytes), citizenHeaders())

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Error:Field validation for 'District' failed on the 'required' tag")
}

func TestGenerateComplaintID_Success(t *testing.T) {
	_, m, router := newTestHandler(t)

	m.complaints.EXPECT().GenerateComplaintID(gomock.Any()).Return("CMP0000000043", nil).Times(1)

	w := makeRequest(router, "GET", "/api/v1/complaints/generate_id", nil, citizenHeaders())

	assert.Equal(t, http.StatusOK, w.Code)
	var resp GenerateIDResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Equal(t, "CMP0000000043", resp.ComplaintID)
}

func TestTrackComplaint_Success(t *testing.T) {
	_, m, router := newTestHandler(t)
	expected := &models.Complaint{
		ComplaintID:      "CMP0000000044",
		ComplainantName:  "Anna Petrova",
		ComplainantEmail: "anna@example.com",
		Status:           models.NewStatus(models.StatePending),
		Victim:           &models.VictimDetails{Name: "Ivan"},
	}

	m.complaints.EXPECT().
		TrackComplaint(gomock.Any(), "CMP0000000044", "anna@example.com").
		Return(expected, nil).
		Times(1)

	w := makeRequest(router, "GET", "/api/v1/complaints/track?complaint_id=CMP0000000044", nil, citizenHeaders())

	assert.Equal(t, http.StatusOK, w.Code)
	var resp ComplaintResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Equal(t, "CMP0000000044", resp.ComplaintID)
	// Заявитель видит под-записи как объекты, не маркеры
	victim, ok := resp.Victim.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Ivan", victim["name"])
}

func TestTrackComplaint_NotFound(t *testing.T) {
	_, m, router := newTestHandler(t)

	m.complaints.EXPECT().
		TrackComplaint(gomock.Any(), "CMP0000000099", "anna@example.com").
		Return(nil, fmt.Errorf("service: %w", apperrors.ErrNotFound)).
		Times(1)

	w := makeRequest(router, "GET", "/api/v1/complaints/track?complaint_id=CMP0000000099", nil, citizenHeaders())

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "not found")
}

func TestGetComplaint_RedactedMarker(t *testing.T) {
	_, m, router := newTestHandler(t)
	redacted := &models.Complaint{
		ComplaintID: "CMP0000000045",
		Status:      models.NewStatus(models.StatePending),
	}
	redacted.Redact()

	m.complaints.EXPECT().
		ViewComplaint(gomock.Any(), "CMP0000000045", gomock.Any()).
		Return(redacted, nil).
		Times(1)

	w := makeRequest(router, "GET", "/api/v1/complaints/CMP0000000045", nil, map[string]string{
		headerUserEmail: "officer@police.gov",
		headerUserRole:  service.RoleOfficer,
	})

	assert.Equal(t, http.StatusOK, w.Code)
	var resp ComplaintResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	// Вместо под-записей отдается строка-маркер
	assert.Equal(t, models.ConfidentialMarker, resp.Victim)
	assert.Equal(t, models.ConfidentialMarker, resp.Suspect)
	assert.Equal(t, models.ConfidentialMarker, resp.Witness)
}

func TestListComplaints_Success(t *testing.T) {
	_, m, router := newTestHandler(t)
	expected := []*models.Complaint{
		{ComplaintID: "CMP0000000046", Status: models.NewStatus(models.StateAccepted)},
		{ComplaintID: "CMP0000000047", Status: models.NewStatus(models.StatePending)},
	}

	m.complaints.EXPECT().
		ListForJurisdiction(gomock.Any(), "Central", "North", gomock.Any()).
		Return(expected, nil).
		Times(1)

	w := makeRequest(router, "GET", "/api/v1/complaints?district=Central&subdivision=North", nil, citizenHeaders())

	assert.Equal(t, http.StatusOK, w.Code)
	var resp []ComplaintResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Len(t, resp, 2)
	assert.Equal(t, "CMP0000000046", resp[0].ComplaintID)
}

func TestUpdateComplaintStatus_Success(t *testing.T) {
	_, m, router := newTestHandler(t)
	reqBody := UpdateStatusRequest{Status: "Accepted"}

	m.complaints.EXPECT().
		UpdateStatus(gomock.Any(), "CMP0000000048", models.NewStatus(models.StateAccepted)).
		Return(nil).
		Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "PUT", "/api/v1/complaints/CMP0000000048/status", bytes.NewBuffer(bodyBytes), citizenHeaders())

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestUpdateComplaintStatus_CloseWithReason(t *testing.T) {
	_, m, router := newTestHandler(t)
	reqBody := UpdateStatusRequest{Status: "Closed", Reason: "Case Solved"}

	m.complaints.EXPECT().
		UpdateStatus(gomock.Any(), "CMP0000000049", models.Closed(models.ReasonSolved)).
		Return(nil).
		Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "PUT", "/api/v1/complaints/CMP0000000049/status", bytes.NewBuffer(bodyBytes), citizenHeaders())

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestUpdateComplaintStatus_ReasonForNonClosed(t *testing.T) {
	_, m, router := newTestHandler(t)
	reqBody := UpdateStatusRequest{Status: "Accepted", Reason: "Case Solved"}

	m.complaints.EXPECT().UpdateStatus(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "PUT", "/api/v1/complaints/CMP0000000050/status", bytes.NewBuffer(bodyBytes), citizenHeaders())

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "only allowed for Closed status")
}

func TestUpdateComplaintStatus_InvalidTransition(t *testing.T) {
	_, m, router := newTestHandler(t)
	reqBody := UpdateStatusRequest{Status: "Under Investigation"}

	m.complaints.EXPECT().
		UpdateStatus(gomock.Any(), "CMP0000000051", models.NewStatus(models.StateUnderInvestigation)).
		Return(fmt.Errorf("service: Pending -> Under Investigation: %w", apperrors.ErrInvalidTransition)).
		Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "PUT", "/api/v1/complaints/CMP0000000051/status", bytes.NewBuffer(bodyBytes), citizenHeaders())

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid status transition")
}

func TestUpdateComplaintStatus_Conflict(t *testing.T) {
	_, m, router := newTestHandler(t)
	reqBody := UpdateStatusRequest{Status: "Accepted"}

	m.complaints.EXPECT().
		UpdateStatus(gomock.Any(), "CMP0000000052", gomock.Any()).
		Return(fmt.Errorf("service: %w", apperrors.ErrConflict)).
		Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "PUT", "/api/v1/complaints/CMP0000000052/status", bytes.NewBuffer(bodyBytes), citizenHeaders())

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestAppendEvidence_Success(t *testing.T) {
	_, m, router := newTestHandler(t)
	reqBody := AppendEvidenceRequest{EvidenceRefs: []string{"s3://evidence/1.jpg"}}

	m.complaints.EXPECT().
		AppendEvidence(gomock.Any(), "CMP0000000053", reqBody.EvidenceRefs).
		Return(nil).
		Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/complaints/CMP0000000053/evidence", bytes.NewBuffer(bodyBytes), citizenHeaders())

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestGetStatistics_Success(t *testing.T) {
	_, m, router := newTestHandler(t)
	expected := []*models.CrimeStatistics{
		{District: "Central", Subdivision: "North", Counts: map[string]int{"theft": 3}, Total: 3},
	}

	m.complaints.EXPECT().GetStatistics(gomock.Any(), "Central", "").Return(expected, nil).Times(1)

	w := makeRequest(router, "GET", "/api/v1/statistics?district=Central", nil, citizenHeaders())

	assert.Equal(t, http.StatusOK, w.Code)
	var resp []CrimeStatisticsResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	require.Len(t, resp, 1)
	assert.Equal(t, 3, resp[0].Total)
}

func TestSubmitFinalReport_Success(t *testing.T) {
	_, m, router := newTestHandler(t)
	reqBody := SubmitFinalReportRequest{
		OfficerID:   7,
		ReportText:  "Suspect apprehended",
		FinalStatus: "Case Solved",
	}

	m.reports.EXPECT().
		SubmitFinalReport(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, r *models.FinalReport) error {
			assert.Equal(t, "CMP0000000054", r.ComplaintID)
			r.ReportID = 12
			return nil
		}).Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/complaints/CMP0000000054/final_report", bytes.NewBuffer(bodyBytes), citizenHeaders())

	assert.Equal(t, http.StatusCreated, w.Code)
	var resp FinalReportResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Equal(t, int64(12), resp.ReportID)
	assert.Equal(t, "Case Solved", resp.FinalStatus)
}

func TestSubmitFinalReport_NotUnderInvestigation(t *testing.T) {
	_, m, router := newTestHandler(t)
	reqBody := SubmitFinalReportRequest{
		OfficerID:   7,
		ReportText:  "Suspect apprehended",
		FinalStatus: "Case Solved",
	}

	m.reports.EXPECT().
		SubmitFinalReport(gomock.Any(), gomock.Any()).
		Return(apperrors.Invalid("complaint_id", "complaint is not under investigation")).
		Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/complaints/CMP0000000055/final_report", bytes.NewBuffer(bodyBytes), citizenHeaders())

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "not under investigation")
}

func TestGetFinalReport_Success(t *testing.T) {
	_, m, router := newTestHandler(t)
	expected := &models.FinalReport{
		ReportID:    21,
		ComplaintID: "CMP0000000056",
		OfficerID:   7,
		FinalStatus: models.ReasonUnsolved,
		ReportText:  "No leads",
	}

	m.reports.EXPECT().GetLatestReport(gomock.Any(), "CMP0000000056").Return(expected, nil).Times(1)

	w := makeRequest(router, "GET", "/api/v1/complaints/CMP0000000056/final_report", nil, citizenHeaders())

	assert.Equal(t, http.StatusOK, w.Code)
	var resp FinalReportResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Equal(t, int64(21), resp.ReportID)
}

func TestListMyReports_Success(t *testing.T) {
	_, m, router := newTestHandler(t)
	expected := []*models.FinalReport{
		{ReportID: 31, ComplaintID: "CMP0000000057", ComplaintTitle: "Theft near metro", FinalStatus: models.ReasonSolved},
	}

	m.reports.EXPECT().ListReportsForComplainant(gomock.Any(), "anna@example.com").Return(expected, nil).Times(1)

	w := makeRequest(router, "GET", "/api/v1/reports/my", nil, citizenHeaders())

	assert.Equal(t, http.StatusOK, w.Code)
	var resp []FinalReportResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	require.Len(t, resp, 1)
	assert.Equal(t, "Theft near metro", resp[0].ComplaintTitle)
}

func TestListMyReports_MissingEmail(t *testing.T) {
	_, m, router := newTestHandler(t)

	m.reports.EXPECT().ListReportsForComplainant(gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, "GET", "/api/v1/reports/my", nil)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestCreateSOS_Success(t *testing.T) {
	_, m, router := newTestHandler(t)
	alertID := uuid.New()
	reqBody := CreateSOSRequest{Latitude: 55.75, Longitude: 37.61}

	m.sos.EXPECT().
		TriggerSOS(gomock.Any(), "anna@example.com", "Anna Petrova", 55.75, 37.61).
		Return(&models.SOSAlert{
			ID:                alertID,
			CitizenEmail:      "anna@example.com",
			PoliceSubdivision: "North",
			Status:            models.SOSActive,
		}, nil).Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/sos", bytes.NewBuffer(bodyBytes), citizenHeaders())

	assert.Equal(t, http.StatusCreated, w.Code)
	var resp CreateSOSResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Equal(t, alertID, resp.SOSID)
	assert.Equal(t, "North", resp.Subdivision)
}

func TestCreateSOS_NoStation(t *testing.T) {
	_, m, router := newTestHandler(t)
	reqBody := CreateSOSRequest{Latitude: 55.75, Longitude: 37.61}

	m.sos.EXPECT().
		TriggerSOS(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, fmt.Errorf("service: %w", apperrors.ErrNoStationFound)).
		Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/sos", bytes.NewBuffer(bodyBytes), citizenHeaders())

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "no police station found")
}

func TestCreateSOS_DuplicateActive(t *testing.T) {
	_, m, router := newTestHandler(t)
	reqBody := CreateSOSRequest{Latitude: 55.75, Longitude: 37.61}

	m.sos.EXPECT().
		TriggerSOS(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, fmt.Errorf("service: %w", apperrors.ErrConflict)).
		Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/sos", bytes.NewBuffer(bodyBytes), citizenHeaders())

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestAppendSOSLocation_Success(t *testing.T) {
	_, m, router := newTestHandler(t)
	reqBody := AppendSOSLocationRequest{Latitude: 55.76, Longitude: 37.62}

	m.sos.EXPECT().
		AppendLocation(gomock.Any(), "anna@example.com", 55.76, 37.62).
		Return(nil).
		Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "PUT", "/api/v1/sos/location", bytes.NewBuffer(bodyBytes), citizenHeaders())

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAppendSOSLocation_NoActiveAlert(t *testing.T) {
	_, m, router := newTestHandler(t)
	reqBody := AppendSOSLocationRequest{Latitude: 55.76, Longitude: 37.62}

	m.sos.EXPECT().
		AppendLocation(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(fmt.Errorf("service: %w", apperrors.ErrNoActiveAlert)).
		Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "PUT", "/api/v1/sos/location", bytes.NewBuffer(bodyBytes), citizenHeaders())

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "no active sos alert")
}

func TestStopSOS_Success(t *testing.T) {
	_, m, router := newTestHandler(t)
	alertID := uuid.New()

	m.sos.EXPECT().StopSOS(gomock.Any(), alertID).Return(nil).Times(1)

	w := makeRequest(router, "PUT", fmt.Sprintf("/api/v1/sos/%s/stop", alertID), nil, citizenHeaders())

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestStopSOS_InvalidID(t *testing.T) {
	_, m, router := newTestHandler(t)

	m.sos.EXPECT().StopSOS(gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, "PUT", "/api/v1/sos/not-a-uuid/stop", nil, citizenHeaders())

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid sos alert ID")
}

func TestListSOS_Success(t *testing.T) {
	_, m, router := newTestHandler(t)
	expected := []*models.SOSAlert{
		{
			ID:                uuid.New(),
			CitizenEmail:      "citizen@example.com",
			PoliceSubdivision: "North",
			Status:            models.SOSActive,
			Locations: []models.LocationSample{
				{Latitude: 55.75, Longitude: 37.61},
				{Latitude: 55.76, Longitude: 37.62},
			},
		},
	}

	m.sos.EXPECT().ListForJurisdiction(gomock.Any(), "North").Return(expected, nil).Times(1)

	w := makeRequest(router, "GET", "/api/v1/sos?subdivision=North", nil, citizenHeaders())

	assert.Equal(t, http.StatusOK, w.Code)
	var resp []SOSAlertResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	require.Len(t, resp, 1)
	assert.Len(t, resp[0].Locations, 2)
}

func TestAddNote_Success(t *testing.T) {
	_, m, router := newTestHandler(t)
	reqBody := AddNoteRequest{OfficerID: 5, NoteText: "Interviewed the neighbours"}

	m.notes.EXPECT().
		AddNote(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, n *models.InvestigationNote) error {
			assert.Equal(t, "CMP0000000058", n.ComplaintID)
			n.NoteID = 3
			return nil
		}).Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/complaints/CMP0000000058/notes", bytes.NewBuffer(bodyBytes), citizenHeaders())

	assert.Equal(t, http.StatusCreated, w.Code)
	var resp NoteResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Equal(t, int64(3), resp.NoteID)
}

func TestListNotes_Success(t *testing.T) {
	_, m, router := newTestHandler(t)
	expected := []*models.InvestigationNote{
		{NoteID: 1, ComplaintID: "CMP0000000058", NoteText: "First note"},
	}

	m.notes.EXPECT().ListNotes(gomock.Any(), "CMP0000000058").Return(expected, nil).Times(1)

	w := makeRequest(router, "GET", "/api/v1/complaints/CMP0000000058/notes", nil, citizenHeaders())

	assert.Equal(t, http.StatusOK, w.Code)
	var resp []NoteResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Len(t, resp, 1)
}

func TestUpdateNote_InvalidID(t *testing.T) {
	_, m, router := newTestHandler(t)
	reqBody := UpdateNoteRequest{NoteText: "edited"}

	m.notes.EXPECT().UpdateNote(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "PUT", "/api/v1/notes/abc", bytes.NewBuffer(bodyBytes), citizenHeaders())

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid note ID")
}

func TestDeleteNote_NotFound(t *testing.T) {
	_, m, router := newTestHandler(t)

	m.notes.EXPECT().
		DeleteNote(gomock.Any(), int64(77)).
		Return(fmt.Errorf("service: %w", apperrors.ErrNotFound)).
		Times(1)

	w := makeRequest(router, "DELETE", "/api/v1/notes/77", nil, citizenHeaders())

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHealthCheck_Success(t *testing.T) {
	_, _, router := newTestHandler(t)

	w := makeRequest(router, "GET", "/api/v1/system/health", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"ok"`)
}

func TestAPIKeyAuthMiddleware_Success(t *testing.T) {
	// Создаем Gin-роутер и добавляем middleware
	gin.SetMode(gin.TestMode)
	router := gin.New()
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})

	cfg := &config.Config{
		APIKeys: []string{"valid-key"},
	}

	router.Use(APIKeyAuthMiddleware(cfg, logger))
	router.GET("/test", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := makeRequest(router, "GET", "/test", nil, map[string]string{"X-API-Key": "valid-key"})
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAPIKeyAuthMiddleware_BearerToken(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})

	cfg := &config.Config{
		APIKeys: []string{"valid-key"},
	}

	router.Use(APIKeyAuthMiddleware(cfg, logger))
	router.GET("/test", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := makeRequest(router, "GET", "/test", nil, map[string]string{"Authorization": "Bearer valid-key"})
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAPIKeyAuthMiddleware_MissingKey(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})

	cfg := &config.Config{
		APIKeys: []string{"valid-key"},
	}

	router.Use(APIKeyAuthMiddleware(cfg, logger))
	router.GET("/test", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := makeRequest(router, "GET", "/test", nil) // Нет API ключа
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "API key required")
}

func TestAPIKeyAuthMiddleware_InvalidKey(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})

	cfg := &config.Config{
		APIKeys: []string{"valid-key"},
	}

	router.Use(APIKeyAuthMiddleware(cfg, logger))
	router.GET("/test", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := makeRequest(router, "GET", "/test", nil, map[string]string{"X-API-Key": "invalid-key"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid API key")
}
