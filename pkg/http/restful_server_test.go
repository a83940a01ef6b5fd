package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"liyu1981.xyz/factory-monitor-service/pkg/factory/mocks"
	_ "liyu1981.xyz/factory-monitor-service/pkg/testing"

	"liyu1981.xyz/factory-monitor-service/pkg/common"
	"liyu1981.xyz/factory-monitor-service/pkg/db"
	"liyu1981.xyz/factory-monitor-service/pkg/factory"
	"liyu1981.xyz/factory-monitor-service/pkg/models"
	"liyu1981.xyz/factory-monitor-service/pkg/notify"
)

var testNow = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

type recordingPublisher struct {
	mu     sync.Mutex
	events []models.AlertCreatedEvent
}

func (p *recordingPublisher) Publish(event models.AlertCreatedEvent) int {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event)
	return 1
}

func setupTestServer(t *testing.T) (*RestfulServer, *recordingPublisher) {
	database, err := db.Open(db.UseNamedMemorySqliteDialector(uuid.NewString()))
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close() })

	publisher := &recordingPublisher{}
	f := factory.New(database, publisher)
	f.Now = func() time.Time { return testNow }

	rs := &RestfulServer{
		Server:  gin.Default(),
		Factory: f,
		Hub:     notify.NewHub(),
		// default we use no limiter, if need, later assign it rs.RateLimiterStore = notify.NewRateLimiterStore(...)
	}

	rs.Setup()

	return rs, publisher
}

func seedSensor(t *testing.T, rs *RestfulServer) *models.Sensor {
	ctx := context.Background()
	facility, err := rs.Factory.Facility.CreateFacility(ctx, &models.Facility{
		Name:   "line-" + uuid.NewString()[:8],
		Status: models.FacilityStatusRunning,
	})
	require.NoError(t, err)

	lo, hi := 60.0, 80.0
	sensor, err := rs.Factory.Sensor.CreateSensor(ctx, &models.Sensor{
		FacilityID:   facility.ID,
		Name:         "temp-" + uuid.NewString()[:8],
		Type:         models.SensorTypeTemperature,
		Unit:         "C",
		ThresholdMin: &lo,
		ThresholdMax: &hi,
	})
	require.NoError(t, err)
	return sensor
}

func doJSON(rs *RestfulServer, method, path string, body any) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		payload, _ := json.Marshal(body)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	rs.Server.ServeHTTP(w, req)
	return w
}

func postAlert(t *testing.T, rs *RestfulServer, sensorID uint, value float64) models.AlertView {
	w := doJSON(rs, http.MethodPost, "/alerts", ManualAlertRequest{
		SensorID: int(sensorID),
		Value:    value,
		Message:  "raised by hand",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var view models.AlertView
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &view))
	return view
}

func TestHealthCheck(t *testing.T) {
	rs, _ := setupTestServer(t)

	req := httptest.NewRequest("GET", "/healthz", nil)
	w := httptest.NewRecorder()

	rs.Server.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestMetricsEndpoint(t *testing.T) {
	rs, _ := setupTestServer(t)

	w := doJSON(rs, http.MethodGet, "/metrics", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "go_goroutines")
}

func TestPostAlertAndQuery(t *testing.T) {
	common.SetTestLoggerNop()

	rs, publisher := setupTestServer(t)
	sensor := seedSensor(t, rs)

	view := postAlert(t, rs, sensor.ID, 95)
	assert.Equal(t, models.SeverityHigh, view.Severity)
	assert.Equal(t, sensor.Name, view.SensorName)
	assert.Equal(t, "raised by hand", view.Message)
	require.Len(t, publisher.events, 1)
	assert.Equal(t, view.ID, publisher.events[0].Alert.ID)

	postAlert(t, rs, sensor.ID, 85)

	for path, want := range map[string]int{
		"/alerts":                 2,
		"/alerts?severity=high":   1,
		"/alerts?severity=MEDIUM": 1,
		"/alerts?recent=true":     2,
		"/alerts?limit=1":         1,
		"/alerts?from=2024-05-01T11:00:00Z&to=2024-05-01T13:00:00Z": 2,
		"/alerts?from=2024-04-01T00:00:00Z&to=2024-04-02T00:00:00Z": 0,
		fmt.Sprintf("/alerts?sensor_id=%d", sensor.ID):            2,
		fmt.Sprintf("/alerts?facility_id=%d", sensor.FacilityID):  2,
	} {
		w := doJSON(rs, http.MethodGet, path, nil)
		require.Equal(t, http.StatusOK, w.Code, path)

		var alerts []models.AlertView
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &alerts), path)
		assert.Len(t, alerts, want, path)
	}

	w := doJSON(rs, http.MethodGet, fmt.Sprintf("/alerts/%d", view.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)
	var one models.AlertView
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &one))
	assert.Equal(t, view.ID, one.ID)
	assert.Equal(t, models.SeverityHigh, one.Severity)

	w = doJSON(rs, http.MethodGet, "/alerts/summaries?limit=5", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var summaries struct {
		Summaries []string `json:"summaries"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &summaries))
	assert.Len(t, summaries.Summaries, 2)
}

func TestPostAlert_EdgeCases(t *testing.T) {
	common.SetTestLoggerNop()

	rs, publisher := setupTestServer(t)

	{
		// empty payload should be rejected
		req := httptest.NewRequest("POST", "/alerts", bytes.NewReader([]byte("{}")))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		rs.Server.ServeHTTP(w, req)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	}

	{
		// unknown sensor
		w := doJSON(rs, http.MethodPost, "/alerts", ManualAlertRequest{SensorID: 9999, Value: 1, Message: "x"})
		assert.Equal(t, http.StatusNotFound, w.Code)
	}

	assert.Empty(t, publisher.events)

	for path, want := range map[string]int{
		"/alerts/abc":                       http.StatusBadRequest,
		"/alerts/9999":                      http.StatusNotFound,
		"/alerts?severity=bogus":            http.StatusBadRequest,
		"/alerts?sensor_id=-1":              http.StatusBadRequest,
		"/alerts?from=2024-05-01T00:00:00Z": http.StatusBadRequest,
		"/alerts?limit=ten":                 http.StatusBadRequest,
	} {
		w := doJSON(rs, http.MethodGet, path, nil)
		assert.Equal(t, want, w.Code, path)
	}
}

func TestDeleteAlert(t *testing.T) {
	common.SetTestLoggerNop()

	rs, _ := setupTestServer(t)
	sensor := seedSensor(t, rs)
	view := postAlert(t, rs, sensor.ID, 95)

	path := fmt.Sprintf("/alerts/%d", view.ID)
	assert.Equal(t, http.StatusNoContent, doJSON(rs, http.MethodDelete, path, nil).Code)
	assert.Equal(t, http.StatusNotFound, doJSON(rs, http.MethodDelete, path, nil).Code)
	assert.Equal(t, http.StatusNotFound, doJSON(rs, http.MethodGet, path, nil).Code)
}

func TestPurgeAlerts(t *testing.T) {
	common.SetTestLoggerNop()

	rs, _ := setupTestServer(t)
	sensor := seedSensor(t, rs)

	old := models.Alert{SensorID: sensor.ID, Value: 99, Message: "old", CreatedAt: testNow.AddDate(0, 0, -40)}
	require.NoError(t, rs.Factory.Db.Conn.Create(&old).Error)
	postAlert(t, rs, sensor.ID, 95)

	w := doJSON(rs, http.MethodDelete, "/alerts?older_than_days=30", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"deleted":1}`, w.Body.String())

	count, err := rs.Factory.Alert.CountBySensor(context.Background(), sensor.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	assert.Equal(t, http.StatusBadRequest, doJSON(rs, http.MethodDelete, "/alerts", nil).Code)
	assert.Equal(t, http.StatusBadRequest, doJSON(rs, http.MethodDelete, "/alerts?older_than_days=-1", nil).Code)
}

func TestUpdateThresholds(t *testing.T) {
	common.SetTestLoggerNop()

	rs, _ := setupTestServer(t)
	sensor := seedSensor(t, rs)
	path := fmt.Sprintf("/sensors/%d/thresholds", sensor.ID)

	w := doJSON(rs, http.MethodPut, path, map[string]any{"thresholdMin": 10.0, "thresholdMax": 20.0})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	updated, err := rs.Factory.Sensor.GetSensor(context.Background(), sensor.ID)
	require.NoError(t, err)
	assert.Equal(t, 10.0, *updated.ThresholdMin)
	assert.Equal(t, 20.0, *updated.ThresholdMax)

	// clearing both takes the sensor out of monitoring
	w = doJSON(rs, http.MethodPut, path, map[string]any{"thresholdMin": nil, "thresholdMax": nil})
	require.Equal(t, http.StatusOK, w.Code)
	has, err := rs.Factory.Sensor.HasThresholds(context.Background(), sensor.ID)
	require.NoError(t, err)
	assert.False(t, has)
}

func TestUpdateThresholds_EdgeCases(t *testing.T) {
	common.SetTestLoggerNop()

	rs, _ := setupTestServer(t)
	sensor := seedSensor(t, rs)
	path := fmt.Sprintf("/sensors/%d/thresholds", sensor.ID)

	// only one side
	w := doJSON(rs, http.MethodPut, path, map[string]any{"thresholdMin": 10.0})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// inverted
	w = doJSON(rs, http.MethodPut, path, map[string]any{"thresholdMin": 30.0, "thresholdMax": 20.0})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(rs, http.MethodPut, "/sensors/9999/thresholds", map[string]any{"thresholdMin": 1.0, "thresholdMax": 2.0})
	assert.Equal(t, http.StatusNotFound, w.Code)

	req := httptest.NewRequest(http.MethodPut, path, strings.NewReader("not json"))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	rs.Server.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetRecentReadings(t *testing.T) {
	common.SetTestLoggerNop()

	rs, _ := setupTestServer(t)
	sensor := seedSensor(t, rs)

	for i := range 3 {
		_, err := rs.Factory.Reading.Append(context.Background(), sensor.ID, float64(70+i), testNow.Add(time.Duration(i)*time.Second))
		require.NoError(t, err)
	}

	w := doJSON(rs, http.MethodGet, fmt.Sprintf("/sensors/%d/readings?limit=2", sensor.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)

	var readings []models.Reading
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &readings))
	require.Len(t, readings, 2)
	assert.Equal(t, 72.0, readings[0].Value)
}

func TestAlertStats(t *testing.T) {
	common.SetTestLoggerNop()

	rs, _ := setupTestServer(t)

	w := doJSON(rs, http.MethodGet, "/alerts/stats", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{}`, w.Body.String())

	stats := notify.NewMemoryStatsStore()
	require.NoError(t, stats.Incr(context.Background(), "total", "severity:HIGH"))
	rs.Stats = stats

	w = doJSON(rs, http.MethodGet, "/alerts/stats", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"total":1,"severity:HIGH":1}`, w.Body.String())
}

func TestStoreErrorsAreInternal(t *testing.T) {
	common.SetTestLoggerNop()

	rs, _ := setupTestServer(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockIAlert := mocks.NewMockIAlert(ctrl)
	rs.Factory.Alert = mockIAlert
	mockIAlert.EXPECT().
		FindAll(gomock.Any()).
		Return(nil, fmt.Errorf("just causing error")).
		Times(1)
	mockIAlert.EXPECT().
		DeleteByID(gomock.Any(), gomock.Eq(uint(7))).
		Return(fmt.Errorf("alert 7: %w", factory.ErrNotFound)).
		Times(1)

	assert.Equal(t, http.StatusInternalServerError, doJSON(rs, http.MethodGet, "/alerts", nil).Code)
	assert.Equal(t, http.StatusNotFound, doJSON(rs, http.MethodDelete, "/alerts/7", nil).Code)
}

func TestLimiter(t *testing.T) {
	common.SetTestLoggerNop()

	rs, _ := setupTestServer(t)
	sensor := seedSensor(t, rs)
	rs.RateLimiterStore = notify.NewRateLimiterStore(0, 0) // nothing passes

	w := doJSON(rs, http.MethodPost, "/alerts", ManualAlertRequest{SensorID: int(sensor.ID), Value: 95, Message: "x"})
	assert.Equal(t, http.StatusTooManyRequests, w.Code)

	w = doJSON(rs, http.MethodPut, fmt.Sprintf("/sensors/%d/thresholds", sensor.ID), map[string]any{"thresholdMin": 1.0, "thresholdMax": 2.0})
	assert.Equal(t, http.StatusTooManyRequests, w.Code)

	assert.Equal(t, http.StatusTooManyRequests, doJSON(rs, http.MethodDelete, "/alerts?older_than_days=1", nil).Code)

	// reads are never limited
	assert.Equal(t, http.StatusOK, doJSON(rs, http.MethodGet, "/alerts", nil).Code)
}

func TestLimiterBurst(t *testing.T) {
	common.SetTestLoggerNop()

	rs, _ := setupTestServer(t)
	sensor := seedSensor(t, rs)
	rs.RateLimiterStore = notify.NewRateLimiterStore(0.001, 2)

	for i := range 3 {
		w := doJSON(rs, http.MethodPost, "/alerts", ManualAlertRequest{SensorID: int(sensor.ID), Value: 95, Message: "x"})
		if i < 2 {
			require.Equal(t, http.StatusCreated, w.Code, "request %d should be allowed", i+1)
		} else {
			require.Equal(t, http.StatusTooManyRequests, w.Code, "request %d should be rate limited", i+1)
		}
	}
}

func TestWebsocketRoute(t *testing.T) {
	common.SetTestLoggerNop()

	rs, _ := setupTestServer(t)
	srv := httptest.NewServer(rs.Server)
	defer srv.Close()

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws?user_id=5"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	defer conn.Close()

	require.Eventually(t, func() bool { return rs.Hub.Clients() == 1 }, time.Second, 5*time.Millisecond)

	require.NoError(t, rs.Hub.PushPersonal(context.Background(), "5", models.AlertView{ID: 3}))
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(time.Second)))
	var msg notify.Message
	require.NoError(t, conn.ReadJSON(&msg))
	assert.Equal(t, notify.MessagePersonal, msg.Type)
}
