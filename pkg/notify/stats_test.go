package notify

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
	"liyu1981.xyz/factory-monitor-service/pkg/common"
	"liyu1981.xyz/factory-monitor-service/pkg/models"
)

func statsEvent(sev models.Severity, facilityID uint) models.AlertCreatedEvent {
	return models.NewAlertCreatedEvent(models.AlertView{Severity: sev, FacilityID: facilityID}, time.Now())
}

func TestRedisStatsRecorder(t *testing.T) {
	var buf = &bytes.Buffer{}
	common.SetTestCaptureLogger(buf, zapcore.InfoLevel)

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	recorder := &StatsRecorder{Store: NewRedisStatsStore(client, "")}
	ctx := context.Background()

	require.NoError(t, recorder.Handle(ctx, statsEvent(models.SeverityHigh, 1)))
	require.NoError(t, recorder.Handle(ctx, statsEvent(models.SeverityMedium, 1)))
	require.NoError(t, recorder.Handle(ctx, statsEvent(models.SeverityHigh, 2)))

	assert.Equal(t, "3", mr.HGet(DefaultStatsKey, "total"))
	assert.Equal(t, "2", mr.HGet(DefaultStatsKey, "severity:HIGH"))
	assert.Equal(t, "2", mr.HGet(DefaultStatsKey, "facility:1"))

	logs := ParseLogs(buf)
	require.Len(t, logs, 3)
	last := logs[2]
	assert.Equal(t, "Notification stats", last["msg"])
	assert.Equal(t, "stats", last["category"])
	assert.Equal(t, float64(3), last["total"])
	assert.Equal(t, float64(2), last["high"])
	assert.Equal(t, float64(1), last["medium"])
	assert.Equal(t, float64(1), last["facility"])
}

func TestRedisStatsStoreFailure(t *testing.T) {
	common.SetTestLoggerNop()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr(), MaxRetries: -1})
	t.Cleanup(func() { client.Close() })
	mr.Close()

	recorder := &StatsRecorder{Store: NewRedisStatsStore(client, "k")}
	assert.Error(t, recorder.Handle(context.Background(), statsEvent(models.SeverityHigh, 1)))
}

func TestMemoryStatsStore(t *testing.T) {
	common.SetTestLoggerNop()

	store := NewMemoryStatsStore()
	recorder := &StatsRecorder{Store: store}

	for range 4 {
		require.NoError(t, recorder.Handle(context.Background(), statsEvent(models.SeverityMedium, 9)))
	}

	snap, err := store.Snapshot(context.Background())
	require.NoError(t, err)
	assert.Equal(t, map[string]int64{"total": 4, "severity:MEDIUM": 4, "facility:9": 4}, snap)
}
