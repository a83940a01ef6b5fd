package events

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
	"liyu1981.xyz/factory-monitor-service/pkg/common"
	"liyu1981.xyz/factory-monitor-service/pkg/metrics"
)

var (
	ErrQueueFull     = errors.New("pool queue is full")
	ErrPoolClosed    = errors.New("pool is closed")
	ErrGraceExceeded = errors.New("pool shutdown grace period exceeded")
)

type Task func(ctx context.Context)

type PoolConfig struct {
	Name          string
	CoreWorkers   int
	MaxWorkers    int
	QueueSize     int
	KeepAlive     time.Duration
	ShutdownGrace time.Duration
}

func NotificationPoolConfig() PoolConfig {
	return PoolConfig{
		Name:          "notification",
		CoreWorkers:   2,
		MaxWorkers:    5,
		QueueSize:     100,
		KeepAlive:     60 * time.Second,
		ShutdownGrace: 10 * time.Second,
	}
}

func GeneralPoolConfig() PoolConfig {
	return PoolConfig{
		Name:          "general",
		CoreWorkers:   3,
		MaxWorkers:    10,
		QueueSize:     50,
		KeepAlive:     60 * time.Second,
		ShutdownGrace: 5 * time.Second,
	}
}

type PoolStats struct {
	Workers   int
	QueueLen  int
	Submitted int64
	Completed int64
	Rejected  int64
	Dropped   int64
	Panics    int64
}

// Pool runs tasks on CoreWorkers long lived goroutines, adding workers up to
// MaxWorkers once the queued tasks outnumber the idle workers. Extra workers exit after KeepAlive idle.
// Submit never blocks: a full queue rejects the task.
type Pool struct {
	cfg   PoolConfig
	queue chan Task

	mu     sync.RWMutex
	closed bool

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup

	workers   atomic.Int32
	idle      atomic.Int32
	submitted atomic.Int64
	completed atomic.Int64
	rejected  atomic.Int64
	dropped   atomic.Int64
	panics    atomic.Int64
}

func NewPool(cfg PoolConfig) *Pool {
	if cfg.CoreWorkers <= 0 {
		cfg.CoreWorkers = 1
	}
	if cfg.MaxWorkers < cfg.CoreWorkers {
		cfg.MaxWorkers = cfg.CoreWorkers
	}
	if cfg.QueueSize < 0 {
		cfg.QueueSize = 0
	}
	if cfg.KeepAlive <= 0 {
		cfg.KeepAlive = 60 * time.Second
	}

	ctx, cancel := context.WithCancel(context.Background())
	p := &Pool{
		cfg:    cfg,
		queue:  make(chan Task, cfg.QueueSize),
		ctx:    ctx,
		cancel: cancel,
	}

	for range cfg.CoreWorkers {
		p.spawn(true)
	}

	return p
}

func (p *Pool) Name() string {
	return p.cfg.Name
}

func (p *Pool) Submit(task Task) error {
	p.mu.RLock()
	defer p.mu.RUnlock()

	if p.closed {
		p.reject(ErrPoolClosed)
		return ErrPoolClosed
	}

	select {
	case p.queue <- task:
		p.submitted.Add(1)
		metrics.PoolQueueSize.WithLabelValues(p.cfg.Name).Set(float64(len(p.queue)))
		if len(p.queue) > int(p.idle.Load()) {
			p.grow()
		}
		return nil
	default:
		p.reject(ErrQueueFull)
		return ErrQueueFull
	}
}

func (p *Pool) reject(err error) {
	p.rejected.Add(1)
	metrics.PoolTasksTotal.WithLabelValues(p.cfg.Name, "rejected").Inc()

	logger := common.GetLoggerWith(common.LoggerNameEventBus, zap.String("pool", p.cfg.Name))
	logger.Warn("Task rejected", zap.Error(err), zap.Int("queue_size", p.cfg.QueueSize))
}

// grow must be called with p.mu read locked so that it never races Shutdown.
func (p *Pool) grow() {
	for {
		n := p.workers.Load()
		if int(n) >= p.cfg.MaxWorkers {
			return
		}
		if p.workers.CompareAndSwap(n, n+1) {
			p.wg.Add(1)
			go p.work(false)
			return
		}
	}
}

func (p *Pool) spawn(core bool) {
	p.workers.Add(1)
	p.wg.Add(1)
	go p.work(core)
}

func (p *Pool) work(core bool) {
	defer p.wg.Done()
	defer func() {
		n := p.workers.Add(-1)
		metrics.PoolWorkers.WithLabelValues(p.cfg.Name).Set(float64(n))
	}()
	metrics.PoolWorkers.WithLabelValues(p.cfg.Name).Set(float64(p.workers.Load()))

	var idle *time.Timer
	var idleC <-chan time.Time
	if !core {
		idle = time.NewTimer(p.cfg.KeepAlive)
		defer idle.Stop()
		idleC = idle.C
	}

	for {
		p.idle.Add(1)
		select {
		case task, ok := <-p.queue:
			p.idle.Add(-1)
			if !ok {
				return
			}
			metrics.PoolQueueSize.WithLabelValues(p.cfg.Name).Set(float64(len(p.queue)))
			if p.ctx.Err() != nil {
				p.drop(1)
				continue
			}
			p.run(task)
			if idle != nil {
				idle.Reset(p.cfg.KeepAlive)
			}
		case <-idleC:
			p.idle.Add(-1)
			return
		}
	}
}

func (p *Pool) run(task Task) {
	defer func() {
		if r := recover(); r != nil {
			p.panics.Add(1)
			metrics.PanicsRecovered.WithLabelValues("pool_" + p.cfg.Name).Inc()

			logger := common.GetLoggerWith(common.LoggerNameEventBus, zap.String("pool", p.cfg.Name))
			logger.Error("Task panicked", zap.String("panic", fmt.Sprint(r)))
		}
	}()

	task(p.ctx)

	p.completed.Add(1)
	metrics.PoolTasksTotal.WithLabelValues(p.cfg.Name, "completed").Inc()
}

func (p *Pool) drop(n int) {
	if n == 0 {
		return
	}
	p.dropped.Add(int64(n))
	metrics.PoolTasksTotal.WithLabelValues(p.cfg.Name, "dropped").Add(float64(n))
}

// Shutdown stops intake and lets workers drain the queue until the grace
// period or ctx ends. Then the task context is cancelled and whatever is still
// queued is dropped. ErrGraceExceeded reports that tasks were cut short.
func (p *Pool) Shutdown(ctx context.Context) error {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return nil
	}
	p.closed = true
	close(p.queue)
	p.mu.Unlock()

	logger := common.GetLoggerWith(common.LoggerNameEventBus, zap.String("pool", p.cfg.Name))

	done := make(chan struct{})
	go func() {
		p.wg.Wait()
		close(done)
	}()

	var grace <-chan time.Time
	if p.cfg.ShutdownGrace > 0 {
		timer := time.NewTimer(p.cfg.ShutdownGrace)
		defer timer.Stop()
		grace = timer.C
	}

	select {
	case <-done:
		p.cancel()
		logger.Info("Pool drained", zap.Int64("completed", p.completed.Load()))
		return nil
	case <-grace:
	case <-ctx.Done():
	}

	p.cancel()

	dropped := 0
	for range p.queue {
		dropped++
	}
	p.drop(dropped)

	logger.Warn("Pool grace period exceeded, dropping queued tasks",
		zap.Int64("dropped", p.dropped.Load()),
	)

	select {
	case <-done:
	case <-ctx.Done():
	}

	return ErrGraceExceeded
}

func (p *Pool) Stats() PoolStats {
	return PoolStats{
		Workers:   int(p.workers.Load()),
		QueueLen:  len(p.queue),
		Submitted: p.submitted.Load(),
		Completed: p.completed.Load(),
		Rejected:  p.rejected.Load(),
		Dropped:   p.dropped.Load(),
		Panics:    p.panics.Load(),
	}
}
