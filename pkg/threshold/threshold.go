// Package threshold classifies sensor values against a configured [min, max]
// range. Everything here is pure and safe for concurrent use.
package threshold

import (
	"math"

	"liyu1981.xyz/factory-monitor-service/pkg/models"
)

const (
	DefaultHighRatio      = 0.5
	DefaultEmergencyRatio = 1.0
)

type Policy struct {
	// deviation above Range*HighRatio is HIGH, otherwise MEDIUM
	HighRatio float64
	// deviation above Range*EmergencyRatio escalates to SMS
	EmergencyRatio float64
}

func DefaultPolicy() Policy {
	return Policy{HighRatio: DefaultHighRatio, EmergencyRatio: DefaultEmergencyRatio}
}

type Result struct {
	WithinRange bool
	Severity    models.Severity
	Deviation   float64
	Range       float64
}

// Evaluate uses the default policy.
func Evaluate(min, max *float64, value float64) Result {
	return DefaultPolicy().Evaluate(min, max, value)
}

// Evaluate treats a missing bound as "not configured": the value is within
// range with NORMAL severity.
func (p Policy) Evaluate(min, max *float64, value float64) Result {
	if min == nil || max == nil {
		return Result{WithinRange: true, Severity: models.SeverityNormal}
	}

	r := *max - *min
	if value >= *min && value <= *max {
		return Result{WithinRange: true, Severity: models.SeverityNormal, Range: r}
	}

	deviation := math.Min(math.Abs(value-*min), math.Abs(value-*max))
	severity := models.SeverityMedium
	if deviation > r*p.HighRatio {
		severity = models.SeverityHigh
	}

	return Result{WithinRange: false, Severity: severity, Deviation: deviation, Range: r}
}

// ViewSeverity is the read time severity shown on alerts: UNKNOWN when the
// threshold pair is missing.
func (p Policy) ViewSeverity(min, max *float64, value float64) models.Severity {
	if min == nil || max == nil {
		return models.SeverityUnknown
	}
	return p.Evaluate(min, max, value).Severity
}

func (p Policy) IsEmergency(min, max *float64, value float64) bool {
	res := p.Evaluate(min, max, value)
	return !res.WithinRange && res.Deviation > res.Range*p.EmergencyRatio
}
