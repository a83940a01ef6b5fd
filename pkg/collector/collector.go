// Package collector acquires one fresh value per sensor per monitoring tick.
package collector

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"liyu1981.xyz/factory-monitor-service/pkg/models"
)

var (
	ErrCollectionFailed = errors.New("collection failed")
	ErrNoReading        = errors.New("no reading received")
	ErrStaleReading     = errors.New("latest reading is stale")
	ErrNoFreshReading   = errors.New("no reading since last collect")
)

type Collector interface {
	Collect(ctx context.Context, sensorID uint) (float64, error)
}

type SensorLookup interface {
	GetSensor(ctx context.Context, sensorID uint) (*models.Sensor, error)
}

func failed(sensorID uint, err error) error {
	return fmt.Errorf("%w: sensor %d: %w", ErrCollectionFailed, sensorID, err)
}

type band struct {
	base, span      float64
	excursion       float64
	excursionPerCnt int
}

var bands = map[models.SensorType]band{
	models.SensorTypeTemperature: {base: 50, span: 50, excursion: 20, excursionPerCnt: 5},
	models.SensorTypePressure:    {base: 1, span: 9, excursion: 5, excursionPerCnt: 3},
	models.SensorTypeVibration:   {base: 0, span: 5, excursion: 3, excursionPerCnt: 7},
	models.SensorTypeHumidity:    {base: 30, span: 50, excursion: 15, excursionPerCnt: 4},
}

var defaultBand = band{base: 0, span: 100}

// Simulated draws a plausible value for the sensor's type with rare upward
// excursions. It stands in for the hardware adapter.
type Simulated struct {
	Sensors SensorLookup

	mu  sync.Mutex
	rnd *rand.Rand
}

func NewSimulated(sensors SensorLookup, rnd *rand.Rand) *Simulated {
	if rnd == nil {
		rnd = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Simulated{Sensors: sensors, rnd: rnd}
}

func (s *Simulated) Collect(ctx context.Context, sensorID uint) (float64, error) {
	if err := ctx.Err(); err != nil {
		return 0, failed(sensorID, err)
	}

	sensor, err := s.Sensors.GetSensor(ctx, sensorID)
	if err != nil {
		return 0, failed(sensorID, err)
	}

	b, ok := bands[sensor.Type]
	if !ok {
		b = defaultBand
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	value := b.base + s.rnd.Float64()*b.span
	if b.excursionPerCnt > 0 && s.rnd.Intn(100) < b.excursionPerCnt {
		value += b.excursion
	}
	return value, nil
}

// Func adapts a plain function to Collector.
type Func func(ctx context.Context, sensorID uint) (float64, error)

func (fn Func) Collect(ctx context.Context, sensorID uint) (float64, error) {
	return fn(ctx, sensorID)
}
