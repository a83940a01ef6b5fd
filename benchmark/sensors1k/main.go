package main

import (
	"context"
	"fmt"
	"log"
	"math"
	"math/rand"
	"time"

	"liyu1981.xyz/factory-monitor-service/pkg/collector"
	"liyu1981.xyz/factory-monitor-service/pkg/db"
	"liyu1981.xyz/factory-monitor-service/pkg/events"
	"liyu1981.xyz/factory-monitor-service/pkg/factory"
	"liyu1981.xyz/factory-monitor-service/pkg/models"
	"liyu1981.xyz/factory-monitor-service/pkg/notify"
	"liyu1981.xyz/factory-monitor-service/pkg/scheduler"
)

var maxSensors int = 1000
var maxFacilities int = 10
var ticks int = 5

var rnd *rand.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))

var sensorTypes = []models.SensorType{
	models.SensorTypeTemperature,
	models.SensorTypePressure,
	models.SensorTypeVibration,
	models.SensorTypeHumidity,
}

func rndFloat64(min, max float64, decimal int) float64 {
	val := min + rnd.Float64()*(max-min)
	multiplier := math.Pow10(decimal)
	return math.Round(val*multiplier) / multiplier
}

func main() {
	ctx := context.Background()

	database, err := db.Open(db.UseNamedMemorySqliteDialector("sensors1k"))
	if err != nil {
		log.Fatal("Failed to open memory database:", err)
	}
	defer database.Close()

	bus := events.NewBus[models.AlertCreatedEvent]("alert_created")
	notifyPool := events.NewPool(events.NotificationPoolConfig())
	generalPool := events.NewPool(events.GeneralPoolConfig())

	f := factory.New(database, bus)

	hub := notify.NewHub()
	(&notify.Dispatcher{
		Topics:    []notify.TopicPublisher{hub},
		Dashboard: hub,
		Personal:  hub,
		Users:     f.User,
	}).Subscribe(bus, notifyPool)
	stats := notify.NewMemoryStatsStore()
	(&notify.StatsRecorder{Store: stats}).Subscribe(bus, generalPool)

	startTime := time.Now()
	facilityIDs := make([]uint, maxFacilities)
	for i := range maxFacilities {
		facility, err := f.Facility.CreateFacility(ctx, &models.Facility{
			Name:   fmt.Sprintf("line-%02d", i),
			Status: models.FacilityStatusRunning,
		})
		if err != nil {
			log.Fatal("Failed to create facility:", err)
		}
		facilityIDs[i] = facility.ID
	}

	for i := range maxSensors {
		lo := rndFloat64(0, 50, 2)
		hi := lo + rndFloat64(20, 60, 2)
		_, err := f.Sensor.CreateSensor(ctx, &models.Sensor{
			FacilityID:   facilityIDs[i%maxFacilities],
			Name:         fmt.Sprintf("sensor-%04d", i),
			Type:         sensorTypes[rnd.Intn(len(sensorTypes))],
			Unit:         "u",
			ThresholdMin: &lo,
			ThresholdMax: &hi,
		})
		if err != nil {
			log.Fatal("Failed to create sensor:", err)
		}
		fmt.Printf("\rseeded sensor %v", i)
	}
	usedTime := time.Since(startTime)

	fmt.Printf(
		"\rseeded %v sensors in %v facilities: used time=%v seconds, throughput=%v sensor/second\n",
		maxSensors, maxFacilities, usedTime.Seconds(), float64(maxSensors)/usedTime.Seconds(),
	)

	sched := scheduler.New(scheduler.DefaultConfig(), f.Sensor, collector.NewSimulated(f.Sensor, rnd), f.Reading, f.Alert)

	var total scheduler.TickResult
	startTime = time.Now()
	for i := range ticks {
		tickStart := time.Now()
		res := sched.Tick(ctx)
		total.Sensors += res.Sensors
		total.Succeeded += res.Succeeded
		total.Failed += res.Failed
		total.Alerts += res.Alerts
		fmt.Printf(
			"tick %v: sensors=%v succeeded=%v failed=%v alerts=%v used time=%v seconds\n",
			i, res.Sensors, res.Succeeded, res.Failed, res.Alerts, time.Since(tickStart).Seconds(),
		)
	}
	usedTime = time.Since(startTime)

	fmt.Printf(
		"ran %v ticks: used time=%v seconds, throughput=%v sensor/second, alerts=%v\n",
		ticks, usedTime.Seconds(), float64(total.Sensors)/usedTime.Seconds(), total.Alerts,
	)

	startTime = time.Now()
	if err := notifyPool.Shutdown(ctx); err != nil {
		fmt.Printf("notification pool: %v\n", err)
	}
	if err := generalPool.Shutdown(ctx); err != nil {
		fmt.Printf("general pool: %v\n", err)
	}
	hub.Close()

	snapshot, _ := stats.Snapshot(ctx)
	fmt.Printf(
		"drained notifications: used time=%v seconds, recorded=%v high=%v medium=%v\n",
		time.Since(startTime).Seconds(), snapshot["total"], snapshot["severity:HIGH"], snapshot["severity:MEDIUM"],
	)
}
