package factory

import (
	"bufio"
	"context"
	"encoding/json"
	"io"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"liyu1981.xyz/factory-monitor-service/pkg/db"
	"liyu1981.xyz/factory-monitor-service/pkg/models"
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

func (p *recordingPublisher) Events() []models.AlertCreatedEvent {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]models.AlertCreatedEvent(nil), p.events...)
}

// GetFactoryWithMemorySqliteDialector opens an isolated in-memory database per
// test, with the clock pinned to testNow.
func GetFactoryWithMemorySqliteDialector(t *testing.T) (*Factory, *recordingPublisher) {
	t.Helper()

	database, err := db.Open(db.UseNamedMemorySqliteDialector(uuid.NewString()))
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close() })

	publisher := &recordingPublisher{}
	f := New(database, publisher)
	f.Now = func() time.Time { return testNow }

	return f, publisher
}

func ptr(v float64) *float64 { return &v }

func seedFacility(t *testing.T, f *Factory, status models.FacilityStatus) *models.Facility {
	t.Helper()
	facility, err := f.Facility.CreateFacility(context.Background(), &models.Facility{
		Name:   "facility-" + uuid.NewString()[:8],
		Status: status,
	})
	require.NoError(t, err)
	return facility
}

func seedSensor(t *testing.T, f *Factory, facilityID uint, min, max *float64) *models.Sensor {
	t.Helper()
	sensor, err := f.Sensor.CreateSensor(context.Background(), &models.Sensor{
		FacilityID:   facilityID,
		Name:         "sensor-" + uuid.NewString()[:8],
		Type:         models.SensorTypeTemperature,
		Unit:         "C",
		ThresholdMin: min,
		ThresholdMax: max,
	})
	require.NoError(t, err)
	return sensor
}

func seedAlertAt(t *testing.T, f *Factory, sensorID uint, createdAt time.Time) *models.Alert {
	t.Helper()
	alert := models.Alert{SensorID: sensorID, Value: 99, Message: "seeded", CreatedAt: createdAt}
	require.NoError(t, f.Db.Conn.Create(&alert).Error)
	return &alert
}

func ParseLogs(r io.Reader) []any {
	scanner := bufio.NewScanner(r)
	var logs []any

	for scanner.Scan() {
		line := scanner.Text()
		var j any
		if err := json.Unmarshal([]byte(line), &j); err == nil {
			logs = append(logs, j)
		}
	}
	return logs
}
