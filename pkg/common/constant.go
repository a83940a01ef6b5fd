package common

const (
	EnvKeyGoEnv string = "GO_ENV"

	EnvKeyRunIntegrationTests string = "RUN_INTEGRATION_TESTS"

	EnvKeyFactoryDBType string = "FACTORY_DB_TYPE"
	EnvKeyFactoryDbPath string = "FACTORY_DB_PATH"

	EnvKeyFactoryHttpHostPort string = "FACTORY_HTTP_HOST_PORT"

	EnvKeyMonitorInterval       string = "MONITOR_INTERVAL"
	EnvKeyMonitorStatsInterval  string = "MONITOR_STATS_INTERVAL"
	EnvKeyMonitorConcurrency    string = "MONITOR_CONCURRENCY"
	EnvKeyMonitorCollectTimeout string = "MONITOR_COLLECT_TIMEOUT"
	EnvKeyMonitorCollector      string = "MONITOR_COLLECTOR"

	EnvKeyAlertHighRatio      string = "ALERT_HIGH_RATIO"
	EnvKeyAlertEmergencyRatio string = "ALERT_EMERGENCY_RATIO"
	EnvKeyAlertRecentWindow   string = "ALERT_RECENT_WINDOW"
	EnvKeyAlertRetentionDays  string = "ALERT_RETENTION_DAYS"
	EnvKeyAlertPurgeInterval  string = "ALERT_PURGE_INTERVAL"

	EnvKeyNotifyPoolCore     string = "NOTIFY_POOL_CORE"
	EnvKeyNotifyPoolMax      string = "NOTIFY_POOL_MAX"
	EnvKeyNotifyPoolQueue    string = "NOTIFY_POOL_QUEUE"
	EnvKeyNotifyPoolGrace    string = "NOTIFY_POOL_GRACE"
	EnvKeyGeneralPoolCore    string = "GENERAL_POOL_CORE"
	EnvKeyGeneralPoolMax     string = "GENERAL_POOL_MAX"
	EnvKeyGeneralPoolQueue   string = "GENERAL_POOL_QUEUE"
	EnvKeyGeneralPoolGrace   string = "GENERAL_POOL_GRACE"
	EnvKeyNotifyGatewayURL   string = "NOTIFY_GATEWAY_URL"
	EnvKeyNotifyEmailEnabled string = "NOTIFY_EMAIL_ENABLED"
	EnvKeyNotifySmsEnabled   string = "NOTIFY_SMS_ENABLED"
	EnvKeyNotifyRate         string = "NOTIFY_RATE"
	EnvKeyNotifyBurst        string = "NOTIFY_BURST"

	EnvKeyMqttBroker   string = "MQTT_BROKER"
	EnvKeyMqttClientID string = "MQTT_CLIENT_ID"
	EnvKeyMqttUsername string = "MQTT_USERNAME"
	EnvKeyMqttPassword string = "MQTT_PASSWORD"

	EnvKeyRedisAddr     string = "REDIS_ADDR"
	EnvKeyRedisPassword string = "REDIS_PASSWORD"
	EnvKeyRedisDB       string = "REDIS_DB"

	EnvKeyKafkaBrokers string = "KAFKA_BROKERS"
	EnvKeyKafkaTopic   string = "KAFKA_TOPIC"

	LoggerNameFactoryCore   string = "factory_core"
	LoggerNameScheduler     string = "scheduler"
	LoggerNameEventBus      string = "event_bus"
	LoggerNameNotifier      string = "notifier"
	LoggerNameCollector     string = "collector"
	LoggerNameRestfulServer string = "restful_server"

	LoggerFieldCategory      string = "category"
	LoggerCategorySensor     string = "sensor"
	LoggerCategoryFacility   string = "facility"
	LoggerCategoryReading    string = "reading"
	LoggerCategoryAlert      string = "alert"
	LoggerCategoryUser       string = "user"
	LoggerCategoryDispatch   string = "dispatch"
	LoggerCategoryStats      string = "stats"
	LoggerCategoryExport     string = "export"
	LoggerCategoryTick       string = "tick"
	LoggerCategoryRetention  string = "retention"
	LoggerCategoryWebsocket  string = "websocket"
	LoggerCategoryMqtt       string = "mqtt"
	LoggerCategorySimulation string = "simulation"
)
