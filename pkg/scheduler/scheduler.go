//go:generate mockgen -source=scheduler.go -destination=mocks/scheduler_mock.go -package=mocks

// Package scheduler drives the periodic monitoring loop: collect a value for
// every active sensor, append it, and hand it to threshold checking.
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
	"liyu1981.xyz/factory-monitor-service/pkg/collector"
	"liyu1981.xyz/factory-monitor-service/pkg/common"
	"liyu1981.xyz/factory-monitor-service/pkg/metrics"
	"liyu1981.xyz/factory-monitor-service/pkg/models"
)

type SensorSource interface {
	GetActiveSensorIDs(ctx context.Context) ([]uint, error)
}

type ReadingRecorder interface {
	Append(ctx context.Context, sensorID uint, value float64, collectedAt time.Time) (*models.Reading, error)
}

type AlertChecker interface {
	CheckAndCreateAlert(ctx context.Context, sensorID uint, value float64) (*models.AlertView, error)
	CountRecent(ctx context.Context) (int64, error)
	DeleteOlderThan(ctx context.Context, days int) (int64, error)
}

type Config struct {
	Interval       time.Duration
	StatsInterval  time.Duration
	PurgeInterval  time.Duration
	RetentionDays  int
	Concurrency    int
	CollectTimeout time.Duration
}

func DefaultConfig() Config {
	return Config{
		Interval:       10 * time.Second,
		StatsInterval:  5 * time.Minute,
		PurgeInterval:  24 * time.Hour,
		RetentionDays:  30,
		Concurrency:    8,
		CollectTimeout: 5 * time.Second,
	}
}

const (
	stageCollect  = "collect"
	stagePersist  = "persist"
	stageEvaluate = "evaluate"
	stagePanic    = "panic"
)

type TickResult struct {
	Sensors   int
	Succeeded int
	Failed    int
	Alerts    int
	Skipped   bool
}

type Scheduler struct {
	cfg       Config
	sensors   SensorSource
	collector collector.Collector
	readings  ReadingRecorder
	alerts    AlertChecker

	Now func() time.Time

	running atomic.Bool
	wg      sync.WaitGroup
}

func New(cfg Config, sensors SensorSource, col collector.Collector, readings ReadingRecorder, alerts AlertChecker) *Scheduler {
	def := DefaultConfig()
	if cfg.Interval <= 0 {
		cfg.Interval = def.Interval
	}
	if cfg.StatsInterval <= 0 {
		cfg.StatsInterval = def.StatsInterval
	}
	if cfg.Concurrency <= 0 {
		cfg.Concurrency = def.Concurrency
	}
	return &Scheduler{
		cfg:       cfg,
		sensors:   sensors,
		collector: col,
		readings:  readings,
		alerts:    alerts,
	}
}

func (s *Scheduler) now() time.Time {
	if s.Now != nil {
		return s.Now().UTC()
	}
	return time.Now().UTC()
}

func (s *Scheduler) spawn(fn func()) {
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		fn()
	}()
}

// Start blocks until ctx is cancelled, then waits for in-flight work. Ticks run
// on their own goroutine so that a slow tick makes the next one skip.
func (s *Scheduler) Start(ctx context.Context) {
	logger := common.GetCategoryLogger(common.LoggerNameScheduler, common.LoggerCategoryTick)

	ticker := time.NewTicker(s.cfg.Interval)
	defer ticker.Stop()

	statsTicker := time.NewTicker(s.cfg.StatsInterval)
	defer statsTicker.Stop()

	var purgeC <-chan time.Time
	if s.cfg.RetentionDays > 0 && s.cfg.PurgeInterval > 0 {
		purgeTicker := time.NewTicker(s.cfg.PurgeInterval)
		defer purgeTicker.Stop()
		purgeC = purgeTicker.C
	}

	logger.Info("Scheduler started",
		zap.Duration("interval", s.cfg.Interval),
		zap.Duration("stats_interval", s.cfg.StatsInterval),
		zap.Int("concurrency", s.cfg.Concurrency),
	)

	for {
		select {
		case <-ctx.Done():
			s.wg.Wait()
			logger.Info("Scheduler stopped")
			return
		case <-ticker.C:
			s.spawn(func() { s.Tick(ctx) })
		case <-statsTicker.C:
			s.spawn(func() { s.LogStatistics(ctx) })
		case <-purgeC:
			s.spawn(func() { _, _ = s.PurgeExpiredAlerts(ctx) })
		}
	}
}

// Tick runs one monitoring pass. A call made while another pass is still
// running returns immediately with Skipped set.
func (s *Scheduler) Tick(ctx context.Context) (result TickResult) {
	logger := common.GetCategoryLogger(common.LoggerNameScheduler, common.LoggerCategoryTick)

	if !s.running.CompareAndSwap(false, true) {
		metrics.TicksTotal.WithLabelValues("skipped").Inc()
		logger.Warn("Previous tick still running, skipping")
		return TickResult{Skipped: true}
	}
	defer s.running.Store(false)

	start := time.Now()
	defer func() {
		if r := recover(); r != nil {
			metrics.PanicsRecovered.WithLabelValues("scheduler").Inc()
			metrics.TicksTotal.WithLabelValues("failed").Inc()
			logger.Error("Tick panicked", zap.String("panic", fmt.Sprint(r)))
			return
		}
		metrics.TickDuration.Observe(time.Since(start).Seconds())
	}()

	ids, err := s.sensors.GetActiveSensorIDs(ctx)
	if err != nil {
		metrics.TicksTotal.WithLabelValues("failed").Inc()
		logger.Error("Failed to load active sensors, waiting for next tick", zap.Error(err))
		return result
	}

	metrics.ActiveSensors.Set(float64(len(ids)))
	result.Sensors = len(ids)

	if len(ids) == 0 {
		metrics.TicksTotal.WithLabelValues("completed").Inc()
		logger.Debug("No active sensors")
		return result
	}

	var (
		succeeded, failed, alerts atomic.Int64
		wg                        sync.WaitGroup
	)
	sem := make(chan struct{}, s.cfg.Concurrency)

launch:
	for i, id := range ids {
		select {
		case sem <- struct{}{}:
		case <-ctx.Done():
			// sensors never started count as failed
			failed.Add(int64(len(ids) - i))
			break launch
		}

		wg.Add(1)
		go func(sensorID uint) {
			defer wg.Done()
			defer func() { <-sem }()

			alerted, err := s.processSensor(ctx, sensorID)
			if err != nil {
				failed.Add(1)
				return
			}
			succeeded.Add(1)
			if alerted {
				alerts.Add(1)
			}
		}(id)
	}
	wg.Wait()

	result.Succeeded = int(succeeded.Load())
	result.Failed = int(failed.Load())
	result.Alerts = int(alerts.Load())

	metrics.TicksTotal.WithLabelValues("completed").Inc()
	logger.Debug("Tick completed",
		zap.Int("sensors", result.Sensors),
		zap.Int("succeeded", result.Succeeded),
		zap.Int("failed", result.Failed),
		zap.Int("alerts", result.Alerts),
	)

	return result
}

// processSensor is the isolation boundary for one sensor: every error and
// panic stops here.
func (s *Scheduler) processSensor(ctx context.Context, sensorID uint) (alerted bool, err error) {
	logger := common.GetCategoryLogger(common.LoggerNameScheduler, common.LoggerCategoryTick)

	stage := stageCollect
	defer func() {
		if r := recover(); r != nil {
			metrics.PanicsRecovered.WithLabelValues("scheduler_sensor").Inc()
			err = fmt.Errorf("panic during %s: %v", stage, r)
			stage = stagePanic
		}
		if err != nil {
			metrics.SensorFailuresTotal.WithLabelValues(stage).Inc()
			logger.Error("Sensor processing failed",
				zap.Uint("sensor_id", sensorID),
				zap.String("stage", stage),
				zap.Error(err),
			)
		}
	}()

	collectCtx := ctx
	if s.cfg.CollectTimeout > 0 {
		var cancel context.CancelFunc
		collectCtx, cancel = context.WithTimeout(ctx, s.cfg.CollectTimeout)
		defer cancel()
	}

	value, err := s.collector.Collect(collectCtx, sensorID)
	if err != nil {
		return false, err
	}

	stage = stagePersist
	if _, err := s.readings.Append(ctx, sensorID, value, s.now()); err != nil {
		return false, err
	}

	stage = stageEvaluate
	view, err := s.alerts.CheckAndCreateAlert(ctx, sensorID, value)
	if err != nil {
		return false, err
	}

	return view != nil, nil
}

// LogStatistics is informational only.
func (s *Scheduler) LogStatistics(ctx context.Context) {
	logger := common.GetCategoryLogger(common.LoggerNameScheduler, common.LoggerCategoryStats)

	ids, err := s.sensors.GetActiveSensorIDs(ctx)
	if err != nil {
		logger.Error("Failed to log monitoring statistics", zap.Error(err))
		return
	}

	recent, err := s.alerts.CountRecent(ctx)
	if err != nil {
		logger.Error("Failed to log monitoring statistics", zap.Error(err))
		return
	}

	logger.Info("Monitoring statistics",
		zap.Int("active_sensors", len(ids)),
		zap.Int64("recent_alerts", recent),
	)
}

func (s *Scheduler) PurgeExpiredAlerts(ctx context.Context) (int64, error) {
	logger := common.GetCategoryLogger(common.LoggerNameScheduler, common.LoggerCategoryRetention)

	if s.cfg.RetentionDays <= 0 {
		return 0, nil
	}

	deleted, err := s.alerts.DeleteOlderThan(ctx, s.cfg.RetentionDays)
	if err != nil {
		logger.Error("Alert retention purge failed", zap.Error(err))
		return 0, err
	}

	metrics.AlertsPurgedTotal.Add(float64(deleted))
	logger.Info("Alert retention purge done", zap.Int("retention_days", s.cfg.RetentionDays), zap.Int64("deleted", deleted))

	return deleted, nil
}
