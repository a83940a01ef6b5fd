package notify

import (
	"sync"

	"golang.org/x/time/rate"
)

// RateLimiterStore manages per-recipient rate limiters: recipient -> rate limiter
type RateLimiterStore struct {
	limiters     map[string]*rate.Limiter
	mu           sync.Mutex
	defaultRate  rate.Limit
	defaultBurst int
}

func NewRateLimiterStore(defaultRate rate.Limit, defaultBurst int) *RateLimiterStore {
	return &RateLimiterStore{
		limiters:     make(map[string]*rate.Limiter),
		defaultRate:  defaultRate,
		defaultBurst: defaultBurst,
	}
}

func (s *RateLimiterStore) GetLimiter(recipient string) *rate.Limiter {
	s.mu.Lock()
	defer s.mu.Unlock()

	limiter, exists := s.limiters[recipient]
	if !exists {
		limiter = rate.NewLimiter(s.defaultRate, s.defaultBurst)
		s.limiters[recipient] = limiter
	}
	return limiter
}

// Allow consumes one token for recipient on channel. Email and SMS to the same
// person are limited independently.
func (s *RateLimiterStore) Allow(channel, recipient string) bool {
	return s.GetLimiter(channel + ":" + recipient).Allow()
}
