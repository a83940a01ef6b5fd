package notify

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"liyu1981.xyz/factory-monitor-service/pkg/common"
	"liyu1981.xyz/factory-monitor-service/pkg/models"
)

type fakeWriter struct {
	msgs   []kafka.Message
	err    error
	closed bool
}

func (w *fakeWriter) WriteMessages(ctx context.Context, msgs ...kafka.Message) error {
	if w.err != nil {
		return w.err
	}
	w.msgs = append(w.msgs, msgs...)
	return nil
}

func (w *fakeWriter) Close() error {
	w.closed = true
	return nil
}

func TestKafkaExporterWritesEvent(t *testing.T) {
	common.SetTestLoggerNop()

	w := &fakeWriter{}
	exp := &KafkaExporter{writer: w, topic: "factory.alerts"}

	at := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	event := models.NewAlertCreatedEvent(models.AlertView{ID: 5, FacilityID: 12, SensorID: 3, Severity: models.SeverityHigh, Value: 95}, at)

	require.NoError(t, exp.Handle(context.Background(), event))
	require.Len(t, w.msgs, 1)

	msg := w.msgs[0]
	assert.Equal(t, "12", string(msg.Key))
	assert.Equal(t, at, msg.Time)
	assert.Equal(t, []kafka.Header{
		{Key: "event_id", Value: []byte(event.ID.String())},
		{Key: "severity", Value: []byte("HIGH")},
	}, msg.Headers)

	var got models.AlertCreatedEvent
	require.NoError(t, json.Unmarshal(msg.Value, &got))
	assert.Equal(t, event.ID, got.ID)
	assert.Equal(t, uint(5), got.Alert.ID)
	assert.Equal(t, models.SeverityHigh, got.Severity)

	require.NoError(t, exp.Close())
	assert.True(t, w.closed)
}

func TestKafkaExporterErrors(t *testing.T) {
	common.SetTestLoggerNop()

	exp := &KafkaExporter{writer: &fakeWriter{err: errors.New("leader not available")}, topic: "t"}
	err := exp.Handle(context.Background(), models.NewAlertCreatedEvent(models.AlertView{}, time.Now()))
	assert.ErrorContains(t, err, "leader not available")

	_, err = NewKafkaExporter(nil, "t")
	assert.Error(t, err)
	_, err = NewKafkaExporter([]string{"localhost:9092"}, "")
	assert.Error(t, err)
}
