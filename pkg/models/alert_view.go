package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

type Severity string

const (
	SeverityNormal  Severity = "NORMAL"
	SeverityMedium  Severity = "MEDIUM"
	SeverityHigh    Severity = "HIGH"
	SeverityUnknown Severity = "UNKNOWN"
)

func (s Severity) IsValid() bool {
	switch s {
	case SeverityNormal, SeverityMedium, SeverityHigh, SeverityUnknown:
		return true
	}
	return false
}

// Topic is the lower case form used in channel names.
func (s Severity) Topic() string {
	return strings.ToLower(string(s))
}

func ParseSeverity(raw string) (Severity, error) {
	s := Severity(strings.ToUpper(strings.TrimSpace(raw)))
	if !s.IsValid() {
		return "", fmt.Errorf("unknown severity %q", raw)
	}
	return s, nil
}

// AlertView is an alert enriched with its sensor and facility. Severity is
// computed when the view is built, never stored.
type AlertView struct {
	ID           uint       `json:"id"`
	SensorID     uint       `json:"sensorId"`
	SensorName   string     `json:"sensorName"`
	SensorType   SensorType `json:"sensorType"`
	Unit         string     `json:"unit"`
	FacilityID   uint       `json:"facilityId"`
	FacilityName string     `json:"facilityName"`
	Value        float64    `json:"value"`
	Message      string     `json:"message"`
	CreatedAt    time.Time  `json:"createdAt"`
	ThresholdMin *float64   `json:"thresholdMin,omitempty"`
	ThresholdMax *float64   `json:"thresholdMax,omitempty"`
	Severity     Severity   `json:"severity"`
}

func (v *AlertView) Age(now time.Time) time.Duration {
	return now.Sub(v.CreatedAt)
}

func (v *AlertView) IsRecent(now time.Time, window time.Duration) bool {
	return v.Age(now) <= window
}

func (v *AlertView) ThresholdInfo() string {
	if v.ThresholdMin == nil || v.ThresholdMax == nil {
		return "no threshold"
	}
	return fmt.Sprintf("%s ~ %s %s", FormatThreshold(v.ThresholdMin), FormatThreshold(v.ThresholdMax), v.Unit)
}

func (v *AlertView) Summary() string {
	return fmt.Sprintf("[%s] %s/%s: %.2f%s", v.Severity, v.FacilityName, v.SensorName, v.Value, v.Unit)
}

type AlertCreatedEvent struct {
	ID         uuid.UUID `json:"id"`
	Alert      AlertView `json:"alert"`
	Severity   Severity  `json:"severity"`
	FacilityID uint      `json:"facilityId"`
	SensorID   uint      `json:"sensorId"`
	OccurredAt time.Time `json:"occurredAt"`
}

func NewAlertCreatedEvent(view AlertView, occurredAt time.Time) AlertCreatedEvent {
	return AlertCreatedEvent{
		ID:         uuid.New(),
		Alert:      view,
		Severity:   view.Severity,
		FacilityID: view.FacilityID,
		SensorID:   view.SensorID,
		OccurredAt: occurredAt,
	}
}

func (e AlertCreatedEvent) IsHighSeverity() bool {
	return e.Severity == SeverityHigh
}

func (e AlertCreatedEvent) IsRecent(now time.Time, window time.Duration) bool {
	return e.Alert.IsRecent(now, window)
}

func (e AlertCreatedEvent) Summary() string {
	return fmt.Sprintf("alert %d on sensor %d (facility %d): %s", e.Alert.ID, e.SensorID, e.FacilityID, e.Severity)
}
