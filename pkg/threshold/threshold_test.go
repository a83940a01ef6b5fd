package threshold

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"liyu1981.xyz/factory-monitor-service/pkg/models"
)

func f(v float64) *float64 { return &v }

func TestEvaluate(t *testing.T) {
	min, max := f(60), f(80)

	cases := []struct {
		name      string
		value     float64
		within    bool
		severity  models.Severity
		deviation float64
	}{
		{"inside", 75, true, models.SeverityNormal, 0},
		{"lower bound", 60, true, models.SeverityNormal, 0},
		{"upper bound", 80, true, models.SeverityNormal, 0},
		{"medium above", 85, false, models.SeverityMedium, 5},
		{"exactly half range", 90, false, models.SeverityMedium, 10},
		{"high above", 95, false, models.SeverityHigh, 15},
		{"medium below", 55, false, models.SeverityMedium, 5},
		{"high below", 45, false, models.SeverityHigh, 15},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res := Evaluate(min, max, tc.value)
			assert.Equal(t, tc.within, res.WithinRange)
			assert.Equal(t, tc.severity, res.Severity)
			assert.InDelta(t, tc.deviation, res.Deviation, 1e-9)
			assert.InDelta(t, 20, res.Range, 1e-9)
		})
	}
}

func TestEvaluateWithoutThresholds(t *testing.T) {
	for _, v := range []float64{-1e6, 0, 1e6} {
		res := Evaluate(nil, f(80), v)
		assert.True(t, res.WithinRange)
		assert.Equal(t, models.SeverityNormal, res.Severity)

		res = Evaluate(f(60), nil, v)
		assert.True(t, res.WithinRange)
	}

	p := DefaultPolicy()
	assert.Equal(t, models.SeverityUnknown, p.ViewSeverity(nil, nil, 10))
	assert.Equal(t, models.SeverityHigh, p.ViewSeverity(f(60), f(80), 95))
}

func TestIsEmergency(t *testing.T) {
	p := DefaultPolicy()
	assert.False(t, p.IsEmergency(f(60), f(80), 95))
	assert.False(t, p.IsEmergency(f(60), f(80), 100))
	assert.True(t, p.IsEmergency(f(60), f(80), 100.5))
	assert.True(t, p.IsEmergency(f(60), f(80), 30))
	assert.False(t, p.IsEmergency(nil, nil, 1e9))
}

func TestCustomRatio(t *testing.T) {
	p := Policy{HighRatio: 0.2, EmergencyRatio: 0.5}
	assert.Equal(t, models.SeverityHigh, p.Evaluate(f(60), f(80), 85).Severity)
	assert.True(t, p.IsEmergency(f(60), f(80), 91))
}

func TestEvaluateConcurrent(t *testing.T) {
	p := DefaultPolicy()
	var wg sync.WaitGroup
	for i := range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			res := p.Evaluate(f(60), f(80), float64(i+60))
			assert.Equal(t, i <= 20, res.WithinRange)
		}()
	}
	wg.Wait()
}
