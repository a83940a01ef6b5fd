package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Scheduler metrics
	TicksTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "factory_monitor_ticks_total",
			Help: "Total number of monitoring ticks",
		},
		[]string{"status"}, // status: completed, skipped, failed
	)

	TickDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "factory_monitor_tick_duration_seconds",
			Help:    "Time taken by one monitoring tick",
			Buckets: []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
		},
	)

	ActiveSensors = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "factory_monitor_active_sensors",
			Help: "Active sensors seen by the last tick",
		},
	)

	SensorFailuresTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "factory_monitor_sensor_failures_total",
			Help: "Per sensor failures inside a tick",
		},
		[]string{"stage"}, // stage: collect, persist, evaluate, panic
	)

	ReadingsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "factory_readings_total",
			Help: "Total number of readings appended",
		},
	)

	AlertsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "factory_alerts_total",
			Help: "Total number of alerts created",
		},
		[]string{"severity"},
	)

	AlertsPurgedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "factory_alerts_purged_total",
			Help: "Alerts removed by the retention job",
		},
	)

	// Notification metrics
	NotificationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "factory_notifications_total",
			Help: "Notification attempts per channel",
		},
		[]string{"channel", "status"}, // status: sent, failed, skipped
	)

	EventsPublishedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "factory_events_published_total",
			Help: "Events handed to subscribers",
		},
		[]string{"bus", "subscriber", "status"}, // status: accepted, rejected
	)

	// Worker pool metrics
	PoolQueueSize = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "factory_pool_queue_size",
			Help: "Current size of the pool queue",
		},
		[]string{"pool"},
	)

	PoolWorkers = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "factory_pool_workers",
			Help: "Current number of pool workers",
		},
		[]string{"pool"},
	)

	PoolTasksTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "factory_pool_tasks_total",
			Help: "Pool task outcomes",
		},
		[]string{"pool", "status"}, // status: completed, rejected, dropped
	)

	// Panic recovery
	PanicsRecovered = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "factory_panics_recovered_total",
			Help: "Total number of panics recovered",
		},
		[]string{"component"},
	)
)
