// Package broker connects to the plant MQTT broker shared by the reading
// collector and the alert topic publisher.
package broker

import (
	"fmt"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"go.uber.org/zap"
	"liyu1981.xyz/factory-monitor-service/pkg/common"
)

type MQTTConfig struct {
	Broker   string
	ClientID string
	Username string
	Password string
}

func (c MQTTConfig) Enabled() bool {
	return c.Broker != ""
}

func clientOptions(cfg MQTTConfig) *mqtt.ClientOptions {
	opts := mqtt.NewClientOptions()
	opts.AddBroker(cfg.Broker)
	opts.SetClientID(cfg.ClientID)

	if cfg.Username != "" {
		opts.SetUsername(cfg.Username)
	}
	if cfg.Password != "" {
		opts.SetPassword(cfg.Password)
	}

	opts.SetAutoReconnect(true)
	opts.SetCleanSession(true)
	opts.SetConnectTimeout(10 * time.Second)

	opts.SetConnectionLostHandler(func(_ mqtt.Client, err error) {
		logger := common.GetCategoryLogger(common.LoggerNameCollector, common.LoggerCategoryMqtt)
		logger.Warn("MQTT connection lost", zap.Error(err))
	})

	return opts
}

// Connect dials the broker and waits for the connection to be established.
func Connect(cfg MQTTConfig) (mqtt.Client, error) {
	client := mqtt.NewClient(clientOptions(cfg))

	if token := client.Connect(); token.Wait() && token.Error() != nil {
		return nil, fmt.Errorf("failed to connect to MQTT broker: %w", token.Error())
	}

	logger := common.GetCategoryLogger(common.LoggerNameCollector, common.LoggerCategoryMqtt)
	logger.Info("Connected to MQTT broker", zap.String("broker", cfg.Broker), zap.String("client_id", cfg.ClientID))

	return client, nil
}
