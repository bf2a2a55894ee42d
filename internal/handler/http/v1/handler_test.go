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
	"time"

	"github.com/fieldops/visit_tracking_system/internal/config"
	"github.com/fieldops/visit_tracking_system/internal/handler/http/v1/mocks"
	"github.com/fieldops/visit_tracking_system/internal/models"
	"github.com/fieldops/visit_tracking_system/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// newTestHandler создает новый экземпляр Handler с мокированными сервисами
func newTestHandler(t *testing.T) (*Handler, *mocks.MockVisitService, *mocks.MockPropertyService, *gin.Engine) {
	ctrl := gomock.NewController(t)
	mockVisitService := mocks.NewMockVisitService(ctrl)
	mockPropertyService := mocks.NewMockPropertyService(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	cfg := &config.Config{
		APIKeys:                []string{"test-api-key"},
		StatsTimeWindowMinutes: 60,
	}

	handler := NewHandler(mockVisitService, mockPropertyService, logger, cfg)

	// Настройка Gin роутера для тестов
	gin.SetMode(gin.TestMode)
	router := gin.New()
	api := router.Group("/api/v1")
	handler.RegisterRoutes(api)

	return handler, mockVisitService, mockPropertyService, router
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

func sampleOpenVisit(visitID uuid.UUID) *models.Visit {
	return &models.Visit{
		ID:         visitID,
		WorkerID:   "worker-1",
		PropertyID: uuid.New(),
		Status:     models.VisitStatusOpen,
		CheckInAt:  time.Now(),
		CheckInVerdict: &models.GeofenceVerdict{
			Status:          models.VerdictOK,
			DistanceMeters:  12.5,
			ThresholdMeters: 100,
		},
	}
}

func TestCheckIn_Success(t *testing.T) {
	_, mockVisitService, _, router := newTestHandler(t)
	visitID := uuid.New()
	reqBody := CheckInRequest{
		WorkerID:     "worker-1",
		PropertyCode: "PROP-001",
		Location:     &GeoPointDTO{Latitude: 55.75, Longitude: 37.61},
	}

	mockVisitService.EXPECT().
		CheckIn(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input service.CheckInInput) (*models.Visit, error) {
			assert.Equal(t, reqBody.WorkerID, input.WorkerID)
			assert.Equal(t, reqBody.PropertyCode, input.PropertyCode)
			require.NotNil(t, input.Location)
			assert.Equal(t, reqBody.Location.Latitude, input.Location.Latitude)
			return sampleOpenVisit(visitID), nil
		}).Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/visits/check-in", bytes.NewBuffer(bodyBytes), map[string]string{"X-API-Key": "test-api-key"})

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp VisitResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Equal(t, visitID, resp.ID)
	assert.Equal(t, "open", resp.Status)
	require.NotNil(t, resp.CheckInVerdict)
	assert.Equal(t, "ok", resp.CheckInVerdict.Status)
}

func TestCheckIn_InvalidJSON(t *testing.T) {
	_, mockVisitService, _, router := newTestHandler(t)

	mockVisitService.EXPECT().CheckIn(gomock.Any(), gomock.Any()).Times(0) // Сервис не должен вызываться

	w := makeRequest(router, "POST", "/api/v1/visits/check-in", bytes.NewBufferString(`{"worker_id": "w1"`), map[string]string{"X-API-Key": "test-api-key"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid request body")
}

func TestCheckIn_ValidationError(t *testing.T) {
	_, mockVisitService, _, router := newTestHandler(t)
	reqBody := CheckInRequest{ // Отсутствует WorkerID
		PropertyCode: "PROP-001",
	}

	mockVisitService.EXPECT().CheckIn(gomock.Any(), gomock.Any()).Times(0) // Сервис не должен вызываться

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/visits/check-in", bytes.NewBuffer(bodyBytes), map[string]string{"X-API-Key": "test-api-key"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Error:Field validation for 'WorkerID' failed on the 'required' tag")
}

func TestCheckIn_SoftWarningRejection(t *testing.T) {
	_, mockVisitService, _, router := newTestHandler(t)
	reqBody := CheckInRequest{
		WorkerID:     "worker-1",
		PropertyCode: "PROP-001",
		Location:     &GeoPointDTO{Latitude: 55.75, Longitude: 37.61},
	}
	rejection := &service.RejectionError{
		Kind: models.VerdictSoftWarning,
		Verdict: &models.GeofenceVerdict{
			Status:          models.VerdictSoftWarning,
			DistanceMeters:  130,
			ThresholdMeters: 100,
		},
	}

	mockVisitService.EXPECT().CheckIn(gomock.Any(), gomock.Any()).Return(nil, rejection).Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/visits/check-in", bytes.NewBuffer(bodyBytes), map[string]string{"X-API-Key": "test-api-key"})

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	var resp RejectionResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Equal(t, "soft_warning", resp.RejectionKind)
	require.NotNil(t, resp.Verdict)
	assert.Equal(t, float64(130), resp.Verdict.DistanceMeters)
}

func TestCheckIn_AlreadyCheckedIn(t *testing.T) {
	_, mockVisitService, _, router := newTestHandler(t)
	existingVisitID := uuid.New()
	reqBody := CheckInRequest{
		WorkerID:     "worker-1",
		PropertyCode: "PROP-001",
		Location:     &GeoPointDTO{Latitude: 55.75, Longitude: 37.61},
	}

	mockVisitService.EXPECT().
		CheckIn(gomock.Any(), gomock.Any()).
		Return(nil, &service.AlreadyCheckedInError{ExistingVisitID: existingVisitID}).
		Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/visits/check-in", bytes.NewBuffer(bodyBytes), map[string]string{"X-API-Key": "test-api-key"})

	assert.Equal(t, http.StatusConflict, w.Code)

	var resp RejectionResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Equal(t, "already_checked_in", resp.RejectionKind)
	require.NotNil(t, resp.ExistingVisitID)
	assert.Equal(t, existingVisitID, *resp.ExistingVisitID)
}

func TestCheckIn_GeofenceBlocked(t *testing.T) {
	_, mockVisitService, _, router := newTestHandler(t)
	reqBody := CheckInRequest{
		WorkerID:     "worker-1",
		PropertyCode: "PROP-001",
		Location:     &GeoPointDTO{Latitude: 55.75, Longitude: 37.61},
	}
	blocked := &service.GeofenceBlockedError{
		Verdict: &models.GeofenceVerdict{
			Status:          models.VerdictHardBlock,
			DistanceMeters:  900,
			ThresholdMeters: 150,
		},
	}

	mockVisitService.EXPECT().CheckIn(gomock.Any(), gomock.Any()).Return(nil, blocked).Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/visits/check-in", bytes.NewBuffer(bodyBytes), map[string]string{"X-API-Key": "test-api-key"})

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "geofence_blocked")
}

func TestCheckIn_UnknownPropertyCode(t *testing.T) {
	_, mockVisitService, _, router := newTestHandler(t)
	reqBody := CheckInRequest{
		WorkerID:     "worker-1",
		PropertyCode: "NOPE",
	}

	mockVisitService.EXPECT().CheckIn(gomock.Any(), gomock.Any()).Return(nil, service.ErrUnknownPropertyCode).Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/visits/check-in", bytes.NewBuffer(bodyBytes), map[string]string{"X-API-Key": "test-api-key"})

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "unknown property code")
}

func TestCheckOut_Success(t *testing.T) {
	_, mockVisitService, _, router := newTestHandler(t)
	visitID := uuid.New()
	reqBody := CheckOutRequest{
		Location:     &GeoPointDTO{Latitude: 55.75, Longitude: 37.61},
		VisitSummary: "Work done",
		PhotoURLs:    []string{"https://cdn.example.com/p/1.jpg"},
	}
	closedAt := time.Now()
	closedVisit := sampleOpenVisit(visitID)
	closedVisit.Status = models.VisitStatusClosed
	closedVisit.CheckOutAt = &closedAt
	closedVisit.VisitSummary = reqBody.VisitSummary
	closedVisit.PhotoURLs = reqBody.PhotoURLs

	mockVisitService.EXPECT().
		CheckOut(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input service.CheckOutInput) (*models.Visit, error) {
			assert.Equal(t, visitID, input.VisitID)
			assert.Equal(t, reqBody.VisitSummary, input.VisitSummary)
			return closedVisit, nil
		}).Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "PATCH", fmt.Sprintf("/api/v1/visits/%s/check-out", visitID.String()), bytes.NewBuffer(bodyBytes), map[string]string{"X-API-Key": "test-api-key"})

	assert.Equal(t, http.StatusOK, w.Code)

	var resp VisitResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Equal(t, "closed", resp.Status)
	require.NotNil(t, resp.CheckOutAt)
}

func TestCheckOut_InvalidID(t *testing.T) {
	_, mockVisitService, _, router := newTestHandler(t)

	mockVisitService.EXPECT().CheckOut(gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, "PATCH", "/api/v1/visits/invalid-uuid/check-out", bytes.NewBufferString(`{}`), map[string]string{"X-API-Key": "test-api-key"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid visit ID")
}

func TestCheckOut_AlreadyClosed(t *testing.T) {
	_, mockVisitService, _, router := newTestHandler(t)
	visitID := uuid.New()

	mockVisitService.EXPECT().CheckOut(gomock.Any(), gomock.Any()).Return(nil, service.ErrVisitAlreadyClosed).Times(1)

	w := makeRequest(router, "PATCH", fmt.Sprintf("/api/v1/visits/%s/check-out", visitID.String()), bytes.NewBufferString(`{}`), map[string]string{"X-API-Key": "test-api-key"})

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "visit already closed")
}

func TestActiveVisit_Success(t *testing.T) {
	_, mockVisitService, _, router := newTestHandler(t)
	visitID := uuid.New()

	mockVisitService.EXPECT().ActiveVisit(gomock.Any(), "worker-1").Return(sampleOpenVisit(visitID), nil).Times(1)

	w := makeRequest(router, "GET", "/api/v1/visits/active?worker_id=worker-1", nil, map[string]string{"X-API-Key": "test-api-key"})

	assert.Equal(t, http.StatusOK, w.Code)
	var resp VisitResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Equal(t, visitID, resp.ID)
}

func TestActiveVisit_None(t *testing.T) {
	_, mockVisitService, _, router := newTestHandler(t)

	mockVisitService.EXPECT().ActiveVisit(gomock.Any(), "worker-1").Return(nil, nil).Times(1)

	w := makeRequest(router, "GET", "/api/v1/visits/active?worker_id=worker-1", nil, map[string]string{"X-API-Key": "test-api-key"})

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "no active visit")
}

func TestActiveVisit_MissingWorkerID(t *testing.T) {
	_, mockVisitService, _, router := newTestHandler(t)

	mockVisitService.EXPECT().ActiveVisit(gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, "GET", "/api/v1/visits/active", nil, map[string]string{"X-API-Key": "test-api-key"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "worker_id is required")
}

func TestGetVisit_NotFound(t *testing.T) {
	_, mockVisitService, _, router := newTestHandler(t)
	visitID := uuid.New()

	mockVisitService.EXPECT().GetVisit(gomock.Any(), visitID).Return(nil, service.ErrVisitNotFound).Times(1)

	w := makeRequest(router, "GET", fmt.Sprintf("/api/v1/visits/%s", visitID.String()), nil, map[string]string{"X-API-Key": "test-api-key"})

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "visit not found")
}

func TestListVisits_Success(t *testing.T) {
	_, mockVisitService, _, router := newTestHandler(t)
	expectedVisits := []*models.Visit{
		sampleOpenVisit(uuid.New()),
		sampleOpenVisit(uuid.New()),
	}

	mockVisitService.EXPECT().ListWorkerVisits(gomock.Any(), "worker-1", 1, 10).Return(expectedVisits, nil).Times(1)

	w := makeRequest(router, "GET", "/api/v1/visits?worker_id=worker-1&page=1&pageSize=10", nil, map[string]string{"X-API-Key": "test-api-key"})

	assert.Equal(t, http.StatusOK, w.Code)
	var resp []VisitResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Len(t, resp, 2)
}

func TestListVisitAudit_Success(t *testing.T) {
	_, mockVisitService, _, router := newTestHandler(t)
	visitID := uuid.New()
	expectedEntries := []*models.OverrideAuditEntry{
		{
			ID:      1,
			VisitID: visitID,
			Stage:   models.AuditStageCheckIn,
			Verdict: &models.GeofenceVerdict{Status: models.VerdictSoftWarning, DistanceMeters: 120, ThresholdMeters: 100},
			Reason:  "GPS drift near the gate",
		},
	}

	mockVisitService.EXPECT().ListOverrideAudit(gomock.Any(), visitID).Return(expectedEntries, nil).Times(1)

	w := makeRequest(router, "GET", fmt.Sprintf("/api/v1/visits/%s/audit", visitID.String()), nil, map[string]string{"X-API-Key": "test-api-key"})

	assert.Equal(t, http.StatusOK, w.Code)
	var resp []AuditEntryResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	require.Len(t, resp, 1)
	assert.Equal(t, "check_in", resp[0].Stage)
	assert.Equal(t, "GPS drift near the gate", resp[0].Reason)
}

func TestGetStats_Endpoint_Success(t *testing.T) {
	_, mockVisitService, _, router := newTestHandler(t)
	expectedCount := 42

	mockVisitService.EXPECT().GetStats(gomock.Any()).Return(expectedCount, nil).Times(1)

	w := makeRequest(router, "GET", "/api/v1/visits/stats", nil, map[string]string{"X-API-Key": "test-api-key"})

	assert.Equal(t, http.StatusOK, w.Code)
	var resp StatsResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Equal(t, expectedCount, resp.WorkerCount)
}

func TestCreateProperty_Success(t *testing.T) {
	_, _, mockPropertyService, router := newTestHandler(t)
	propertyID := uuid.New()
	reqBody := CreatePropertyRequest{
		Code:         "PROP-042",
		Name:         "Test Property",
		Center:       &GeoPointDTO{Latitude: 55.65, Longitude: 37.48},
		RadiusMeters: 150,
	}

	mockPropertyService.EXPECT().
		CreateProperty(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, p *models.Property) error {
			p.ID = propertyID
			p.Status = "active"
			return nil
		}).Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/properties", bytes.NewBuffer(bodyBytes), map[string]string{"X-API-Key": "test-api-key"})

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp PropertyResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Equal(t, propertyID, resp.ID)
	assert.Equal(t, reqBody.Code, resp.Code)
}

func TestCreateProperty_RadiusRequiredWithCenter(t *testing.T) {
	_, _, mockPropertyService, router := newTestHandler(t)
	reqBody := CreatePropertyRequest{
		Code:   "PROP-042",
		Name:   "Test Property",
		Center: &GeoPointDTO{Latitude: 55.65, Longitude: 37.48},
		// RadiusMeters не задан
	}

	mockPropertyService.EXPECT().CreateProperty(gomock.Any(), gomock.Any()).Times(0)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/properties", bytes.NewBuffer(bodyBytes), map[string]string{"X-API-Key": "test-api-key"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "radius_meters must be positive")
}

func TestDeleteProperty_Success(t *testing.T) {
	_, _, mockPropertyService, router := newTestHandler(t)
	propertyID := uuid.New()

	mockPropertyService.EXPECT().DeactivateProperty(gomock.Any(), propertyID).Return(nil).Times(1)

	w := makeRequest(router, "DELETE", fmt.Sprintf("/api/v1/properties/%s", propertyID.String()), nil, map[string]string{"X-API-Key": "test-api-key"})

	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestDeleteProperty_NotFound(t *testing.T) {
	_, _, mockPropertyService, router := newTestHandler(t)
	propertyID := uuid.New()

	mockPropertyService.EXPECT().DeactivateProperty(gomock.Any(), propertyID).Return(service.ErrPropertyNotFound).Times(1)

	w := makeRequest(router, "DELETE", fmt.Sprintf("/api/v1/properties/%s", propertyID.String()), nil, map[string]string{"X-API-Key": "test-api-key"})

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "property not found")
}

func TestHealthCheck_Success(t *testing.T) {
	_, _, _, router := newTestHandler(t)

	w := makeRequest(router, "GET", "/api/v1/system/health", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"ok"`)
}

func TestCheckIn_Unauthorized(t *testing.T) {
	_, mockVisitService, _, router := newTestHandler(t)

	mockVisitService.EXPECT().CheckIn(gomock.Any(), gomock.Any()).Times(0)

	reqBody := CheckInRequest{WorkerID: "worker-1", PropertyCode: "PROP-001"}
	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/visits/check-in", bytes.NewBuffer(bodyBytes)) // Нет API ключа

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "API key required")
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
