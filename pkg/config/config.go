// Package config reads service settings from the environment, optionally
// seeded from .env files.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	z "github.com/Oudwins/zog"
	"github.com/joho/godotenv"
	"liyu1981.xyz/factory-monitor-service/pkg/common"
)

type PoolSettings struct {
	Core  int
	Max   int
	Queue int
	Grace time.Duration
}

type Config struct {
	Env string

	DBType string
	DBPath string

	HTTPHostPort string

	MonitorInterval       time.Duration
	MonitorStatsInterval  time.Duration
	MonitorConcurrency    int
	MonitorCollectTimeout time.Duration
	MonitorCollector      string

	AlertHighRatio      float64
	AlertEmergencyRatio float64
	AlertRecentWindow   time.Duration
	AlertRetentionDays  int
	AlertPurgeInterval  time.Duration

	NotifyPool  PoolSettings
	GeneralPool PoolSettings

	NotifyGatewayURL   string
	NotifyEmailEnabled bool
	NotifySMSEnabled   bool
	NotifyRate         float64
	NotifyBurst        int

	MQTTBroker   string
	MQTTClientID string
	MQTTUsername string
	MQTTPassword string

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	KafkaBrokers []string
	KafkaTopic   string
}

const (
	CollectorSimulated = "simulated"
	CollectorMQTT      = "mqtt"
)

var knobsSchema = z.Struct(z.Shape{
	"MonitorConcurrency":  z.Int().GT(0),
	"AlertHighRatio":      z.Float64().GT(0),
	"AlertEmergencyRatio": z.Float64().GT(0),
	"AlertRetentionDays":  z.Int().GTE(0),
	"NotifyPoolCore":      z.Int().GT(0),
	"NotifyPoolQueue":     z.Int().GT(0),
	"GeneralPoolCore":     z.Int().GT(0),
	"GeneralPoolQueue":    z.Int().GT(0),
	"NotifyRate":          z.Float64().GT(0),
	"NotifyBurst":         z.Int().GT(0),
	"RedisDB":             z.Int().GTE(0),
})

type knobs struct {
	MonitorConcurrency  int
	AlertHighRatio      float64
	AlertEmergencyRatio float64
	AlertRetentionDays  int
	NotifyPoolCore      int
	NotifyPoolQueue     int
	GeneralPoolCore     int
	GeneralPoolQueue    int
	NotifyRate          float64
	NotifyBurst         int
	RedisDB             int
}

// reader collects parse errors so Load can report every bad key at once.
type reader struct {
	errs []error
}

func (r *reader) getString(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func (r *reader) getInt(key string, def int) int {
	v := r.getString(key, "")
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		r.errs = append(r.errs, fmt.Errorf("invalid %s %q, should be an int value", key, v))
		return def
	}
	return n
}

func (r *reader) getFloat(key string, def float64) float64 {
	v := r.getString(key, "")
	if v == "" {
		return def
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		r.errs = append(r.errs, fmt.Errorf("invalid %s %q, should be a float64 value", key, v))
		return def
	}
	return f
}

func (r *reader) getDuration(key string, def time.Duration) time.Duration {
	v := r.getString(key, "")
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil || d < 0 {
		r.errs = append(r.errs, fmt.Errorf("invalid %s %q, should be a duration like 10s", key, v))
		return def
	}
	return d
}

func (r *reader) getBool(key string, def bool) bool {
	v := r.getString(key, "")
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		r.errs = append(r.errs, fmt.Errorf("invalid %s %q, should be true or false", key, v))
		return def
	}
	return b
}

func (r *reader) getList(key string) []string {
	var out []string
	for _, s := range strings.Split(r.getString(key, ""), ",") {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// Load reads envFiles (or ./.env when none are given, if present) and then the
// process environment. Variables already set in the environment win.
func Load(envFiles ...string) (*Config, error) {
	if len(envFiles) == 0 {
		if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to load .env: %w", err)
		}
	} else if err := godotenv.Load(envFiles...); err != nil {
		return nil, fmt.Errorf("failed to load %v: %w", envFiles, err)
	}

	r := &reader{}
	cfg := &Config{
		Env: r.getString(common.EnvKeyGoEnv, "development"),

		DBType: r.getString(common.EnvKeyFactoryDBType, "file"),
		DBPath: r.getString(common.EnvKeyFactoryDbPath, "factory.db"),

		HTTPHostPort: r.getString(common.EnvKeyFactoryHttpHostPort, ":1080"),

		MonitorInterval:       r.getDuration(common.EnvKeyMonitorInterval, 10*time.Second),
		MonitorStatsInterval:  r.getDuration(common.EnvKeyMonitorStatsInterval, 5*time.Minute),
		MonitorConcurrency:    r.getInt(common.EnvKeyMonitorConcurrency, 8),
		MonitorCollectTimeout: r.getDuration(common.EnvKeyMonitorCollectTimeout, 5*time.Second),
		MonitorCollector:      r.getString(common.EnvKeyMonitorCollector, CollectorSimulated),

		AlertHighRatio:      r.getFloat(common.EnvKeyAlertHighRatio, 0.5),
		AlertEmergencyRatio: r.getFloat(common.EnvKeyAlertEmergencyRatio, 1.0),
		AlertRecentWindow:   r.getDuration(common.EnvKeyAlertRecentWindow, 30*time.Minute),
		AlertRetentionDays:  r.getInt(common.EnvKeyAlertRetentionDays, 30),
		AlertPurgeInterval:  r.getDuration(common.EnvKeyAlertPurgeInterval, 24*time.Hour),

		NotifyPool: PoolSettings{
			Core:  r.getInt(common.EnvKeyNotifyPoolCore, 2),
			Max:   r.getInt(common.EnvKeyNotifyPoolMax, 5),
			Queue: r.getInt(common.EnvKeyNotifyPoolQueue, 100),
			Grace: r.getDuration(common.EnvKeyNotifyPoolGrace, 10*time.Second),
		},
		GeneralPool: PoolSettings{
			Core:  r.getInt(common.EnvKeyGeneralPoolCore, 3),
			Max:   r.getInt(common.EnvKeyGeneralPoolMax, 10),
			Queue: r.getInt(common.EnvKeyGeneralPoolQueue, 50),
			Grace: r.getDuration(common.EnvKeyGeneralPoolGrace, 5*time.Second),
		},

		NotifyGatewayURL:   r.getString(common.EnvKeyNotifyGatewayURL, ""),
		NotifyEmailEnabled: r.getBool(common.EnvKeyNotifyEmailEnabled, false),
		NotifySMSEnabled:   r.getBool(common.EnvKeyNotifySmsEnabled, false),
		NotifyRate:         r.getFloat(common.EnvKeyNotifyRate, 1.0/60),
		NotifyBurst:        r.getInt(common.EnvKeyNotifyBurst, 3),

		MQTTBroker:   r.getString(common.EnvKeyMqttBroker, ""),
		MQTTClientID: r.getString(common.EnvKeyMqttClientID, "factory-monitor"),
		MQTTUsername: r.getString(common.EnvKeyMqttUsername, ""),
		MQTTPassword: r.getString(common.EnvKeyMqttPassword, ""),

		RedisAddr:     r.getString(common.EnvKeyRedisAddr, ""),
		RedisPassword: r.getString(common.EnvKeyRedisPassword, ""),
		RedisDB:       r.getInt(common.EnvKeyRedisDB, 0),

		KafkaBrokers: r.getList(common.EnvKeyKafkaBrokers),
		KafkaTopic:   r.getString(common.EnvKeyKafkaTopic, "factory.alerts"),
	}

	if len(r.errs) > 0 {
		return nil, errors.Join(r.errs...)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	k := knobs{
		MonitorConcurrency:  c.MonitorConcurrency,
		AlertHighRatio:      c.AlertHighRatio,
		AlertEmergencyRatio: c.AlertEmergencyRatio,
		AlertRetentionDays:  c.AlertRetentionDays,
		NotifyPoolCore:      c.NotifyPool.Core,
		NotifyPoolQueue:     c.NotifyPool.Queue,
		GeneralPoolCore:     c.GeneralPool.Core,
		GeneralPoolQueue:    c.GeneralPool.Queue,
		NotifyRate:          c.NotifyRate,
		NotifyBurst:         c.NotifyBurst,
		RedisDB:             c.RedisDB,
	}
	if issues := knobsSchema.Validate(&k); issues != nil {
		return fmt.Errorf("invalid configuration: %v", issues)
	}

	switch c.DBType {
	case "file", "memory":
	default:
		return fmt.Errorf("unknown %s %q", common.EnvKeyFactoryDBType, c.DBType)
	}

	switch c.MonitorCollector {
	case CollectorSimulated:
	case CollectorMQTT:
		if c.MQTTBroker == "" {
			return fmt.Errorf("%s=mqtt needs %s", common.EnvKeyMonitorCollector, common.EnvKeyMqttBroker)
		}
	default:
		return fmt.Errorf("unknown %s %q", common.EnvKeyMonitorCollector, c.MonitorCollector)
	}

	if c.NotifyPool.Max < c.NotifyPool.Core {
		return fmt.Errorf("%s must not be below %s", common.EnvKeyNotifyPoolMax, common.EnvKeyNotifyPoolCore)
	}
	if c.GeneralPool.Max < c.GeneralPool.Core {
		return fmt.Errorf("%s must not be below %s", common.EnvKeyGeneralPoolMax, common.EnvKeyGeneralPoolCore)
	}
	return nil
}
