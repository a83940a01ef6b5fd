package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func f(v float64) *float64 { return &v }

func TestAlertViewIsRecent(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	window := 30 * time.Minute

	fresh := AlertView{CreatedAt: now.Add(-29 * time.Minute)}
	stale := AlertView{CreatedAt: now.Add(-31 * time.Minute)}
	edge := AlertView{CreatedAt: now.Add(-30 * time.Minute)}

	assert.True(t, fresh.IsRecent(now, window))
	assert.False(t, stale.IsRecent(now, window))
	assert.True(t, edge.IsRecent(now, window))
	assert.Equal(t, 31*time.Minute, stale.Age(now))
}

func TestAlertViewStrings(t *testing.T) {
	v := AlertView{
		SensorName:   "oven-1",
		FacilityName: "line-a",
		Value:        95,
		Unit:         "C",
		Severity:     SeverityHigh,
		ThresholdMin: f(60),
		ThresholdMax: f(80),
	}
	assert.Equal(t, "60.00 ~ 80.00 C", v.ThresholdInfo())
	assert.Equal(t, "[HIGH] line-a/oven-1: 95.00C", v.Summary())

	v.ThresholdMax = nil
	assert.Equal(t, "no threshold", v.ThresholdInfo())
}

func TestSensorThresholds(t *testing.T) {
	s := Sensor{}
	assert.False(t, s.HasThresholds())
	assert.True(t, s.IsValueWithinThreshold(1e9))

	s.ThresholdMin = f(60)
	assert.False(t, s.HasThresholds())

	s.ThresholdMax = f(80)
	assert.True(t, s.HasThresholds())
	assert.True(t, s.IsValueWithinThreshold(60))
	assert.True(t, s.IsValueWithinThreshold(80))
	assert.False(t, s.IsValueWithinThreshold(80.01))
}

func TestParseSeverity(t *testing.T) {
	s, err := ParseSeverity(" high ")
	assert.NoError(t, err)
	assert.Equal(t, SeverityHigh, s)
	assert.Equal(t, "high", s.Topic())

	_, err = ParseSeverity("critical")
	assert.Error(t, err)
}

func TestAlertCreatedEvent(t *testing.T) {
	now := time.Now()
	view := AlertView{ID: 7, SensorID: 3, FacilityID: 2, Severity: SeverityHigh, CreatedAt: now}
	e := NewAlertCreatedEvent(view, now)

	assert.NotEqual(t, e.ID.String(), NewAlertCreatedEvent(view, now).ID.String())
	assert.True(t, e.IsHighSeverity())
	assert.True(t, e.IsRecent(now.Add(time.Minute), 30*time.Minute))
	assert.Equal(t, uint(2), e.FacilityID)
	assert.Equal(t, "alert 7 on sensor 3 (facility 2): HIGH", e.Summary())
}
