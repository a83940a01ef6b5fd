package notify

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
	"liyu1981.xyz/factory-monitor-service/pkg/common"
	"liyu1981.xyz/factory-monitor-service/pkg/events"
	"liyu1981.xyz/factory-monitor-service/pkg/models"
)

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// KafkaExporter forwards every alert event to a Kafka topic, keyed by
// facility so one facility's alerts stay ordered.
type KafkaExporter struct {
	writer messageWriter
	topic  string
}

func NewKafkaExporter(brokers []string, topic string) (*KafkaExporter, error) {
	if len(brokers) == 0 {
		return nil, errors.New("at least one broker is required")
	}
	if topic == "" {
		return nil, errors.New("topic is required")
	}

	writer := &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.Hash{},
		BatchTimeout: 50 * time.Millisecond,
		WriteTimeout: 10 * time.Second,
		RequiredAcks: kafka.RequireOne,
	}
	return &KafkaExporter{writer: writer, topic: topic}, nil
}

func (e *KafkaExporter) Subscribe(bus *events.Bus[models.AlertCreatedEvent], pool events.Submitter) {
	bus.Subscribe("kafka_exporter", pool, e.Handle)
}

func (e *KafkaExporter) Handle(ctx context.Context, event models.AlertCreatedEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to serialize alert event: %w", err)
	}

	msg := kafka.Message{
		Key:   []byte(strconv.FormatUint(uint64(event.FacilityID), 10)),
		Value: data,
		Headers: []kafka.Header{
			{Key: "event_id", Value: []byte(event.ID.String())},
			{Key: "severity", Value: []byte(event.Severity)},
		},
		Time: event.OccurredAt,
	}

	if err := e.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("failed to export alert event to %s: %w", e.topic, err)
	}

	logger := common.GetCategoryLogger(common.LoggerNameNotifier, common.LoggerCategoryExport)
	logger.Debug("Alert event exported", zap.String("event_id", event.ID.String()), zap.String("topic", e.topic))
	return nil
}

func (e *KafkaExporter) Close() error {
	return e.writer.Close()
}
