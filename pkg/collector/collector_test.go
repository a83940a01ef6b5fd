package collector

import (
	"context"
	"errors"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"liyu1981.xyz/factory-monitor-service/pkg/models"
)

type fakeSensors map[uint]models.SensorType

func (f fakeSensors) GetSensor(ctx context.Context, sensorID uint) (*models.Sensor, error) {
	t, ok := f[sensorID]
	if !ok {
		return nil, errors.New("sensor missing")
	}
	return &models.Sensor{ID: sensorID, Type: t}, nil
}

func TestSimulatedStaysInBand(t *testing.T) {
	sensors := fakeSensors{
		1: models.SensorTypeTemperature,
		2: models.SensorTypePressure,
		3: models.SensorTypeVibration,
		4: models.SensorTypeHumidity,
		5: models.SensorTypeVoltage,
	}
	limits := map[uint][2]float64{
		1: {50, 120},
		2: {1, 15},
		3: {0, 8},
		4: {30, 95},
		5: {0, 100},
	}

	sim := NewSimulated(sensors, rand.New(rand.NewSource(42)))
	for id, lim := range limits {
		for range 500 {
			v, err := sim.Collect(context.Background(), id)
			require.NoError(t, err)
			assert.GreaterOrEqual(t, v, lim[0])
			assert.LessOrEqual(t, v, lim[1])
		}
	}
}

func TestSimulatedIsDeterministicWithSeed(t *testing.T) {
	sensors := fakeSensors{1: models.SensorTypeTemperature}
	a := NewSimulated(sensors, rand.New(rand.NewSource(7)))
	b := NewSimulated(sensors, rand.New(rand.NewSource(7)))

	for range 20 {
		va, _ := a.Collect(context.Background(), 1)
		vb, _ := b.Collect(context.Background(), 1)
		assert.Equal(t, va, vb)
	}
}

func TestSimulatedFailures(t *testing.T) {
	sim := NewSimulated(fakeSensors{}, nil)

	_, err := sim.Collect(context.Background(), 9)
	assert.ErrorIs(t, err, ErrCollectionFailed)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = sim.Collect(ctx, 9)
	assert.ErrorIs(t, err, ErrCollectionFailed)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestMQTTCollectorLatestValue(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	c := NewMQTTCollector(nil, time.Minute)
	c.Now = func() time.Time { return now }

	_, err := c.Collect(context.Background(), 3)
	assert.ErrorIs(t, err, ErrNoReading)
	assert.ErrorIs(t, err, ErrCollectionFailed)

	require.NoError(t, c.HandleMessage("factory/sensors/3/reading", []byte("71.5")))
	v, err := c.Collect(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, 71.5, v)

	require.NoError(t, c.HandleMessage("factory/sensors/3/reading", []byte(`{"value": 72.25}`)))
	v, err = c.Collect(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, 72.25, v)

	// an older sample never replaces a newer one
	old := now.Add(-10 * time.Second).Format(time.RFC3339)
	require.NoError(t, c.HandleMessage("factory/sensors/3/reading", []byte(`{"value": 1, "collectedAt": "`+old+`"}`)))
	_, err = c.Collect(context.Background(), 3)
	assert.ErrorIs(t, err, ErrNoFreshReading)

	now = now.Add(2 * time.Minute)
	_, err = c.Collect(context.Background(), 3)
	assert.ErrorIs(t, err, ErrStaleReading)
}

func TestMQTTCollectorServesEachSampleOnce(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	c := NewMQTTCollector(nil, 30*time.Second)
	c.Now = func() time.Time { return now }

	require.NoError(t, c.HandleMessage("factory/sensors/7/reading", []byte("95")))

	v, err := c.Collect(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, 95.0, v)

	for range 2 {
		now = now.Add(10 * time.Second)
		_, err = c.Collect(context.Background(), 7)
		assert.ErrorIs(t, err, ErrNoFreshReading)
		assert.ErrorIs(t, err, ErrCollectionFailed)
	}

	require.NoError(t, c.HandleMessage("factory/sensors/7/reading", []byte("96")))
	v, err = c.Collect(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, 96.0, v)
}

func TestMQTTCollectorRejectsBadMessages(t *testing.T) {
	c := NewMQTTCollector(nil, 0)

	assert.Error(t, c.HandleMessage("factory/sensors/abc/reading", []byte("1")))
	assert.Error(t, c.HandleMessage("factory/other/1/reading", []byte("1")))
	assert.Error(t, c.HandleMessage("factory/sensors/1/reading", []byte("not a number")))
	assert.Error(t, c.HandleMessage("factory/sensors/1/reading", []byte(`{"unit": "C"}`)))
	for _, payload := range []string{"NaN", "Inf", "+Inf", "-Inf"} {
		assert.Error(t, c.HandleMessage("factory/sensors/1/reading", []byte(payload)), payload)
	}

	_, err := c.Collect(context.Background(), 1)
	assert.ErrorIs(t, err, ErrNoReading)
}
