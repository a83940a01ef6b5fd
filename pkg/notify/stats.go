package notify

import (
	"context"
	"fmt"
	"strconv"
	"sync"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"liyu1981.xyz/factory-monitor-service/pkg/common"
	"liyu1981.xyz/factory-monitor-service/pkg/events"
	"liyu1981.xyz/factory-monitor-service/pkg/models"
)

const DefaultStatsKey = "factory:alert-stats"

const statsTotal = "total"

type StatsStore interface {
	Incr(ctx context.Context, fields ...string) error
	Snapshot(ctx context.Context) (map[string]int64, error)
}

// RedisStatsStore keeps the counters in one hash so every instance shares them.
type RedisStatsStore struct {
	client *redis.Client
	key    string
}

func NewRedisStatsStore(client *redis.Client, key string) *RedisStatsStore {
	if key == "" {
		key = DefaultStatsKey
	}
	return &RedisStatsStore{client: client, key: key}
}

func (s *RedisStatsStore) Incr(ctx context.Context, fields ...string) error {
	_, err := s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		for _, f := range fields {
			pipe.HIncrBy(ctx, s.key, f, 1)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to increment alert stats: %w", err)
	}
	return nil
}

func (s *RedisStatsStore) Snapshot(ctx context.Context) (map[string]int64, error) {
	raw, err := s.client.HGetAll(ctx, s.key).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read alert stats: %w", err)
	}

	out := make(map[string]int64, len(raw))
	for k, v := range raw {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("bad counter %s=%q: %w", k, v, err)
		}
		out[k] = n
	}
	return out, nil
}

type MemoryStatsStore struct {
	mu     sync.Mutex
	counts map[string]int64
}

func NewMemoryStatsStore() *MemoryStatsStore {
	return &MemoryStatsStore{counts: make(map[string]int64)}
}

func (s *MemoryStatsStore) Incr(ctx context.Context, fields ...string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, f := range fields {
		s.counts[f]++
	}
	return nil
}

func (s *MemoryStatsStore) Snapshot(ctx context.Context) (map[string]int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make(map[string]int64, len(s.counts))
	for k, v := range s.counts {
		out[k] = v
	}
	return out, nil
}

// StatsRecorder counts alerts in total, per severity and per facility.
type StatsRecorder struct {
	Store StatsStore
}

func (r *StatsRecorder) Subscribe(bus *events.Bus[models.AlertCreatedEvent], pool events.Submitter) {
	bus.Subscribe("notification_stats", pool, r.Handle)
}

func (r *StatsRecorder) Handle(ctx context.Context, event models.AlertCreatedEvent) error {
	logger := common.GetCategoryLogger(common.LoggerNameNotifier, common.LoggerCategoryStats)

	fields := []string{
		statsTotal,
		"severity:" + string(event.Severity),
		fmt.Sprintf("facility:%d", event.FacilityID),
	}
	if err := r.Store.Incr(ctx, fields...); err != nil {
		return err
	}

	snapshot, err := r.Store.Snapshot(ctx)
	if err != nil {
		return err
	}

	logger.Info("Notification stats",
		zap.Int64("total", snapshot[statsTotal]),
		zap.Int64("high", snapshot["severity:"+string(models.SeverityHigh)]),
		zap.Int64("medium", snapshot["severity:"+string(models.SeverityMedium)]),
		zap.Int64("facility", snapshot[fields[2]]),
	)
	return nil
}
