package events

import (
	"context"
	"sync"

	"go.uber.org/zap"
	"liyu1981.xyz/factory-monitor-service/pkg/common"
	"liyu1981.xyz/factory-monitor-service/pkg/metrics"
)

type Handler[E any] func(ctx context.Context, event E) error

// Submitter is satisfied by *Pool.
type Submitter interface {
	Submit(task Task) error
}

type subscription[E any] struct {
	name    string
	pool    Submitter
	handler Handler[E]
}

// Bus is an in-process publish/subscribe point. Each subscriber runs on its
// own pool; Publish only enqueues and never waits for a handler.
type Bus[E any] struct {
	name string
	mu   sync.RWMutex
	subs []subscription[E]
}

func NewBus[E any](name string) *Bus[E] {
	return &Bus[E]{name: name}
}

func (b *Bus[E]) Subscribe(name string, pool Submitter, handler Handler[E]) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.subs = append(b.subs, subscription[E]{name: name, pool: pool, handler: handler})

	logger := common.GetLoggerWith(common.LoggerNameEventBus, zap.String("bus", b.name))
	logger.Info("Subscriber registered", zap.String("subscriber", name))
}

func (b *Bus[E]) Subscribers() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subs)
}

// Publish hands event to every subscriber and returns how many accepted it.
// A rejected hand-off is logged and otherwise ignored.
func (b *Bus[E]) Publish(event E) int {
	b.mu.RLock()
	subs := make([]subscription[E], len(b.subs))
	copy(subs, b.subs)
	b.mu.RUnlock()

	logger := common.GetLoggerWith(common.LoggerNameEventBus, zap.String("bus", b.name))

	accepted := 0
	for _, sub := range subs {
		err := sub.pool.Submit(func(ctx context.Context) {
			if err := sub.handler(ctx, event); err != nil {
				logger.Error("Subscriber failed", zap.String("subscriber", sub.name), zap.Error(err))
			}
		})
		if err != nil {
			metrics.EventsPublishedTotal.WithLabelValues(b.name, sub.name, "rejected").Inc()
			logger.Warn("Event rejected", zap.String("subscriber", sub.name), zap.Error(err))
			continue
		}
		metrics.EventsPublishedTotal.WithLabelValues(b.name, sub.name, "accepted").Inc()
		accepted++
	}

	return accepted
}
