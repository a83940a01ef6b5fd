package notify

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
	"liyu1981.xyz/factory-monitor-service/pkg/common"
	"liyu1981.xyz/factory-monitor-service/pkg/events"
	"liyu1981.xyz/factory-monitor-service/pkg/models"
	_ "liyu1981.xyz/factory-monitor-service/pkg/testing"
)

var testNow = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

func ParseLogs(r io.Reader) []map[string]any {
	scanner := bufio.NewScanner(r)
	var logs []map[string]any
	for scanner.Scan() {
		var j map[string]any
		if err := json.Unmarshal(scanner.Bytes(), &j); err == nil {
			logs = append(logs, j)
		}
	}
	return logs
}

func ptr(v float64) *float64 { return &v }

// recorder implements every channel and remembers what it was asked to send.
type recorder struct {
	mu        sync.Mutex
	topics    []string
	dashboard []DashboardUpdate
	personal  []string
	emails    []string
	sms       []string

	available  bool
	failTopic  string
	failUser   string
	panicEmail bool
}

func (r *recorder) PublishTopic(ctx context.Context, topic string, payload any) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if topic == r.failTopic {
		return errors.New("broker unreachable")
	}
	r.topics = append(r.topics, topic)
	return nil
}

func (r *recorder) PushDashboard(ctx context.Context, update DashboardUpdate) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.dashboard = append(r.dashboard, update)
	return nil
}

func (r *recorder) PushPersonal(ctx context.Context, userID string, alert models.AlertView) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if userID == r.failUser {
		return errors.New("session gone")
	}
	r.personal = append(r.personal, userID)
	return nil
}

func (r *recorder) Available() bool { return r.available }

func (r *recorder) SendEmail(ctx context.Context, to, subject, body string) error {
	if r.panicEmail && to == "admin@example.com" {
		panic("smtp exploded")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.emails = append(r.emails, to)
	return nil
}

func (r *recorder) SendSMS(ctx context.Context, to, text string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sms = append(r.sms, to)
	return nil
}

type directory struct{}

func (directory) GetActiveUserIDsByRole(ctx context.Context, roles ...models.Role) ([]string, error) {
	ids := map[models.Role][]string{
		models.RoleAdmin:    {"1"},
		models.RoleManager:  {"2"},
		models.RoleOperator: {"3", "4"},
	}
	var out []string
	for _, r := range roles {
		out = append(out, ids[r]...)
	}
	return out, nil
}

func (directory) GetActiveEmailsByRole(ctx context.Context, roles ...models.Role) ([]string, error) {
	return []string{"manager@example.com", "admin@example.com"}, nil
}

func (directory) GetEmergencyPhoneNumbers(ctx context.Context) ([]string, error) {
	return []string{"010-0000"}, nil
}

func newDispatcher(rec *recorder) *Dispatcher {
	return &Dispatcher{
		Topics:    []TopicPublisher{rec},
		Dashboard: rec,
		Personal:  rec,
		Email:     rec,
		SMS:       rec,
		Users:     directory{},
		Now:       func() time.Time { return testNow },
	}
}

func alertEvent(value float64, createdAt time.Time, severity models.Severity) models.AlertCreatedEvent {
	view := models.AlertView{
		ID:           42,
		SensorID:     7,
		SensorName:   "temp-1",
		Unit:         "C",
		FacilityID:   3,
		FacilityName: "line-a",
		Value:        value,
		CreatedAt:    createdAt,
		ThresholdMin: ptr(60),
		ThresholdMax: ptr(80),
		Severity:     severity,
	}
	return models.NewAlertCreatedEvent(view, createdAt)
}

func TestHighSeverityReachesManagersAndEmail(t *testing.T) {
	common.SetTestLoggerNop()

	rec := &recorder{available: true}
	// 95 breaches by 15: HIGH but not an emergency
	require.NoError(t, newDispatcher(rec).Handle(context.Background(), alertEvent(95, testNow.Add(-time.Hour), models.SeverityHigh)))

	assert.Equal(t, []string{"factory/alerts", "factory/alerts/high", "factory/facilities/3/alerts"}, rec.topics)
	require.Len(t, rec.dashboard, 1)
	assert.Equal(t, DashboardUpdate{
		Type:       "NEW_ALERT",
		Alert:      alertEvent(95, testNow.Add(-time.Hour), models.SeverityHigh).Alert,
		Timestamp:  testNow,
		Severity:   models.SeverityHigh,
		FacilityID: 3,
	}, rec.dashboard[0])
	assert.ElementsMatch(t, []string{"1", "2"}, rec.personal)
	assert.ElementsMatch(t, []string{"manager@example.com", "admin@example.com"}, rec.emails)
	assert.Empty(t, rec.sms)
}

func TestEmergencySendsSMS(t *testing.T) {
	common.SetTestLoggerNop()

	rec := &recorder{available: true}
	// 105 breaches by 25, more than the 20 wide range
	require.NoError(t, newDispatcher(rec).Handle(context.Background(), alertEvent(105, testNow.Add(-time.Hour), models.SeverityHigh)))

	assert.Equal(t, []string{"010-0000"}, rec.sms)
}

func TestRecentMediumReachesOperatorsWithoutSMS(t *testing.T) {
	common.SetTestLoggerNop()

	rec := &recorder{available: true}
	require.NoError(t, newDispatcher(rec).Handle(context.Background(), alertEvent(85, testNow.Add(-29*time.Minute), models.SeverityMedium)))

	assert.Equal(t, []string{"factory/alerts", "factory/alerts/medium", "factory/facilities/3/alerts"}, rec.topics)
	assert.Len(t, rec.dashboard, 2)
	assert.ElementsMatch(t, []string{"3", "4"}, rec.personal)
	assert.Empty(t, rec.emails)
	assert.Empty(t, rec.sms)
}

func TestOldMediumAlertSkipsOperators(t *testing.T) {
	common.SetTestLoggerNop()

	rec := &recorder{available: true}
	require.NoError(t, newDispatcher(rec).Handle(context.Background(), alertEvent(85, testNow.Add(-31*time.Minute), models.SeverityMedium)))

	assert.Len(t, rec.dashboard, 1)
	assert.Empty(t, rec.personal)
}

func TestUnavailableChannelsAreSkipped(t *testing.T) {
	common.SetTestLoggerNop()

	rec := &recorder{available: false}
	require.NoError(t, newDispatcher(rec).Handle(context.Background(), alertEvent(105, testNow.Add(-time.Hour), models.SeverityHigh)))

	assert.Empty(t, rec.emails)
	assert.Empty(t, rec.sms)
	assert.ElementsMatch(t, []string{"1", "2"}, rec.personal)
}

func TestChannelFailuresAreIsolated(t *testing.T) {
	var buf = &bytes.Buffer{}
	common.SetTestCaptureLogger(buf, zapcore.InfoLevel)

	rec := &recorder{available: true, failTopic: "factory/alerts", failUser: "1", panicEmail: true}
	err := newDispatcher(rec).Handle(context.Background(), alertEvent(105, testNow, models.SeverityHigh))
	require.NoError(t, err)

	assert.Equal(t, []string{"factory/alerts/high", "factory/facilities/3/alerts"}, rec.topics)
	assert.ElementsMatch(t, []string{"2", "3", "4"}, rec.personal)
	assert.Equal(t, []string{"manager@example.com"}, rec.emails)
	assert.Equal(t, []string{"010-0000"}, rec.sms)
	assert.Len(t, rec.dashboard, 2)

	failures := map[string]string{}
	for _, l := range ParseLogs(buf) {
		if l["msg"] == "Notification failed" {
			failures[l["channel"].(string)+"/"+l["target"].(string)] = l["error"].(string)
		}
	}
	assert.Equal(t, map[string]string{
		"topic/factory/alerts":    "broker unreachable",
		"personal/1":              "session gone",
		"email/admin@example.com": "panic: smtp exploded",
	}, failures)
}

func TestDispatcherOnBus(t *testing.T) {
	common.SetTestLoggerNop()

	pool := events.NewPool(events.PoolConfig{Name: "t-notify", CoreWorkers: 2, MaxWorkers: 2, QueueSize: 10, ShutdownGrace: time.Second})
	bus := events.NewBus[models.AlertCreatedEvent]("alerts")

	rec := &recorder{available: true}
	newDispatcher(rec).Subscribe(bus, pool)
	stats := NewMemoryStatsStore()
	(&StatsRecorder{Store: stats}).Subscribe(bus, pool)

	assert.Equal(t, 2, bus.Publish(alertEvent(95, testNow, models.SeverityHigh)))
	require.NoError(t, pool.Shutdown(context.Background()))

	rec.mu.Lock()
	defer rec.mu.Unlock()
	assert.ElementsMatch(t, []string{"1", "2", "3", "4"}, rec.personal)
	assert.Len(t, rec.emails, 2)

	snap, err := stats.Snapshot(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(1), snap["severity:HIGH"])
}
