package collector

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
	"sync"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"go.uber.org/zap"
	"liyu1981.xyz/factory-monitor-service/pkg/common"
)

const ReadingTopic = "factory/sensors/+/reading"

type readingPayload struct {
	Value       *float64  `json:"value"`
	CollectedAt time.Time `json:"collectedAt"`
}

type sample struct {
	value  float64
	at     time.Time
	served bool
}

// MQTTCollector keeps the latest value each sensor published on
// factory/sensors/<id>/reading. Collect serves each sample at most once and
// only while it is younger than MaxAge.
type MQTTCollector struct {
	client mqtt.Client
	MaxAge time.Duration
	Now    func() time.Time

	mu     sync.Mutex
	latest map[uint]sample
}

func NewMQTTCollector(client mqtt.Client, maxAge time.Duration) *MQTTCollector {
	return &MQTTCollector{
		client: client,
		MaxAge: maxAge,
		latest: make(map[uint]sample),
	}
}

func (c *MQTTCollector) now() time.Time {
	if c.Now != nil {
		return c.Now()
	}
	return time.Now()
}

func (c *MQTTCollector) Start() error {
	token := c.client.Subscribe(ReadingTopic, 1, func(_ mqtt.Client, msg mqtt.Message) {
		if err := c.HandleMessage(msg.Topic(), msg.Payload()); err != nil {
			logger := common.GetCategoryLogger(common.LoggerNameCollector, common.LoggerCategoryMqtt)
			logger.Warn("Dropped sensor message", zap.String("topic", msg.Topic()), zap.Error(err))
		}
	})
	if token.Wait() && token.Error() != nil {
		return fmt.Errorf("failed to subscribe to topic %s: %w", ReadingTopic, token.Error())
	}
	return nil
}

func (c *MQTTCollector) Stop() {
	token := c.client.Unsubscribe(ReadingTopic)
	token.Wait()
}

func sensorIDFromTopic(topic string) (uint, error) {
	parts := strings.Split(topic, "/")
	if len(parts) != 4 || parts[0] != "factory" || parts[1] != "sensors" || parts[3] != "reading" {
		return 0, fmt.Errorf("unexpected topic %q", topic)
	}
	id, err := strconv.ParseUint(parts[2], 10, 64)
	if err != nil {
		return 0, fmt.Errorf("bad sensor id in topic %q: %w", topic, err)
	}
	return uint(id), nil
}

// HandleMessage accepts either a bare number or {"value": n, "collectedAt": t}.
func (c *MQTTCollector) HandleMessage(topic string, payload []byte) error {
	sensorID, err := sensorIDFromTopic(topic)
	if err != nil {
		return err
	}

	s := sample{at: c.now()}
	if v, err := strconv.ParseFloat(strings.TrimSpace(string(payload)), 64); err == nil {
		s.value = v
	} else {
		var p readingPayload
		if err := json.Unmarshal(payload, &p); err != nil {
			return fmt.Errorf("decode payload: %w", err)
		}
		if p.Value == nil {
			return fmt.Errorf("payload has no value")
		}
		s.value = *p.Value
		if !p.CollectedAt.IsZero() {
			s.at = p.CollectedAt
		}
	}

	if math.IsNaN(s.value) || math.IsInf(s.value, 0) {
		return fmt.Errorf("decode payload: value %v is not a finite number", s.value)
	}

	c.mu.Lock()
	if prev, ok := c.latest[sensorID]; !ok || !s.at.Before(prev.at) {
		c.latest[sensorID] = s
	}
	c.mu.Unlock()

	return nil
}

func (c *MQTTCollector) Collect(ctx context.Context, sensorID uint) (float64, error) {
	if err := ctx.Err(); err != nil {
		return 0, failed(sensorID, err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	s, ok := c.latest[sensorID]
	if !ok {
		return 0, failed(sensorID, ErrNoReading)
	}
	if c.MaxAge > 0 && c.now().Sub(s.at) > c.MaxAge {
		return 0, failed(sensorID, ErrStaleReading)
	}
	if s.served {
		return 0, failed(sensorID, ErrNoFreshReading)
	}

	s.served = true
	c.latest[sensorID] = s
	return s.value, nil
}
