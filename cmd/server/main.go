package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
	"liyu1981.xyz/factory-monitor-service/pkg/broker"
	"liyu1981.xyz/factory-monitor-service/pkg/collector"
	"liyu1981.xyz/factory-monitor-service/pkg/common"
	"liyu1981.xyz/factory-monitor-service/pkg/config"
	"liyu1981.xyz/factory-monitor-service/pkg/db"
	"liyu1981.xyz/factory-monitor-service/pkg/events"
	"liyu1981.xyz/factory-monitor-service/pkg/factory"
	factoryHttp "liyu1981.xyz/factory-monitor-service/pkg/http"
	"liyu1981.xyz/factory-monitor-service/pkg/models"
	"liyu1981.xyz/factory-monitor-service/pkg/notify"
	"liyu1981.xyz/factory-monitor-service/pkg/scheduler"
	"liyu1981.xyz/factory-monitor-service/pkg/threshold"
)

// write endpoints, per client ip
const (
	httpRate  rate.Limit = 5
	httpBurst            = 10
)

func poolConfig(name string, s config.PoolSettings) events.PoolConfig {
	return events.PoolConfig{
		Name:          name,
		CoreWorkers:   s.Core,
		MaxWorkers:    s.Max,
		QueueSize:     s.Queue,
		KeepAlive:     60 * time.Second,
		ShutdownGrace: s.Grace,
	}
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Invalid configuration, copy .env.example to .env first if in development: %v", err)
	}

	logger := common.GetLogger()

	dbInstance := db.GetInstance(db.UseDialector(cfg.DBType))

	bus := events.NewBus[models.AlertCreatedEvent]("alert_created")
	notifyPool := events.NewPool(poolConfig("notification", cfg.NotifyPool))
	generalPool := events.NewPool(poolConfig("general", cfg.GeneralPool))

	factoryCore := factory.New(dbInstance, bus)
	factoryCore.Policy = threshold.Policy{HighRatio: cfg.AlertHighRatio, EmergencyRatio: cfg.AlertEmergencyRatio}
	factoryCore.RecentWindow = cfg.AlertRecentWindow

	var mqttClient mqtt.Client
	mqttCfg := broker.MQTTConfig{
		Broker:   cfg.MQTTBroker,
		ClientID: cfg.MQTTClientID,
		Username: cfg.MQTTUsername,
		Password: cfg.MQTTPassword,
	}
	if mqttCfg.Enabled() {
		if mqttClient, err = broker.Connect(mqttCfg); err != nil {
			log.Fatalf("mqtt: %v", err)
		}
	}

	hub := notify.NewHub()
	topics := []notify.TopicPublisher{hub}
	if mqttClient != nil {
		topics = append(topics, notify.NewMQTTPublisher(mqttClient))
	}

	gateway := notify.NewGatewayClient(notify.GatewayConfig{
		BaseURL:      cfg.NotifyGatewayURL,
		EmailEnabled: cfg.NotifyEmailEnabled,
		SMSEnabled:   cfg.NotifySMSEnabled,
		Rate:         rate.Limit(cfg.NotifyRate),
		Burst:        cfg.NotifyBurst,
	})

	dispatcher := &notify.Dispatcher{
		Topics:       topics,
		Dashboard:    hub,
		Personal:     hub,
		Email:        gateway.EmailChannel(),
		SMS:          gateway.SMSChannel(),
		Users:        factoryCore.User,
		Policy:       factoryCore.Policy,
		RecentWindow: cfg.AlertRecentWindow,
	}
	dispatcher.Subscribe(bus, notifyPool)

	var redisClient *redis.Client
	var stats notify.StatsStore = notify.NewMemoryStatsStore()
	if cfg.RedisAddr != "" {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		if err := redisClient.Ping(context.Background()).Err(); err != nil {
			log.Fatalf("redis: %v", err)
		}
		stats = notify.NewRedisStatsStore(redisClient, notify.DefaultStatsKey)
	}
	(&notify.StatsRecorder{Store: stats}).Subscribe(bus, generalPool)

	var exporter *notify.KafkaExporter
	if len(cfg.KafkaBrokers) > 0 {
		if exporter, err = notify.NewKafkaExporter(cfg.KafkaBrokers, cfg.KafkaTopic); err != nil {
			log.Fatalf("kafka: %v", err)
		}
		exporter.Subscribe(bus, generalPool)
	}

	logger.Info("Notification pipeline created with:",
		zap.Int("topic_publishers", len(topics)),
		zap.Bool("email", gateway.EmailChannel().Available()),
		zap.Bool("sms", gateway.SMSChannel().Available()),
		zap.Bool("redis_stats", redisClient != nil),
		zap.Bool("kafka_export", exporter != nil),
		zap.Int("subscribers", bus.Subscribers()),
	)

	var col collector.Collector
	var mqttCollector *collector.MQTTCollector
	switch cfg.MonitorCollector {
	case config.CollectorMQTT:
		mqttCollector = collector.NewMQTTCollector(mqttClient, 3*cfg.MonitorInterval)
		if err := mqttCollector.Start(); err != nil {
			log.Fatalf("mqtt collector: %v", err)
		}
		col = mqttCollector
	default:
		col = collector.NewSimulated(factoryCore.Sensor, nil)
	}

	sched := scheduler.New(scheduler.Config{
		Interval:       cfg.MonitorInterval,
		StatsInterval:  cfg.MonitorStatsInterval,
		PurgeInterval:  cfg.AlertPurgeInterval,
		RetentionDays:  cfg.AlertRetentionDays,
		Concurrency:    cfg.MonitorConcurrency,
		CollectTimeout: cfg.MonitorCollectTimeout,
	}, factoryCore.Sensor, col, factoryCore.Reading, factoryCore.Alert)

	schedCtx, cancelSched := context.WithCancel(context.Background())
	schedDone := make(chan struct{})
	go func() {
		defer close(schedDone)
		sched.Start(schedCtx)
	}()

	rs := &factoryHttp.RestfulServer{
		Server:           gin.Default(),
		Factory:          factoryCore,
		Hub:              hub,
		Stats:            stats,
		RateLimiterStore: notify.NewRateLimiterStore(httpRate, httpBurst),
	}
	rs.Setup()

	srv := &http.Server{Addr: cfg.HTTPHostPort, Handler: rs.Server}
	go func() {
		logger.Info("Starting HTTP server on: " + cfg.HTTPHostPort)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("http server failed to serve: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down")

	httpCtx, cancelHttp := context.WithTimeout(context.Background(), 5*time.Second)
	if err := srv.Shutdown(httpCtx); err != nil {
		logger.Error("HTTP shutdown failed", zap.Error(err))
	}
	cancelHttp()

	cancelSched()
	<-schedDone

	for _, p := range []struct {
		pool  *events.Pool
		grace time.Duration
	}{{notifyPool, cfg.NotifyPool.Grace}, {generalPool, cfg.GeneralPool.Grace}} {
		ctx, cancel := context.WithTimeout(context.Background(), p.grace+time.Second)
		if err := p.pool.Shutdown(ctx); err != nil {
			logger.Warn("Pool shutdown incomplete", zap.String("pool", p.pool.Name()), zap.Error(err))
		}
		cancel()
	}

	hub.Close()
	if mqttCollector != nil {
		mqttCollector.Stop()
	}
	if exporter != nil {
		if err := exporter.Close(); err != nil {
			logger.Warn("Kafka exporter close failed", zap.Error(err))
		}
	}
	if redisClient != nil {
		_ = redisClient.Close()
	}
	if mqttClient != nil {
		mqttClient.Disconnect(250)
	}
	if err := dbInstance.Close(); err != nil {
		logger.Warn("Database close failed", zap.Error(err))
	}

	_ = logger.Sync()
}
