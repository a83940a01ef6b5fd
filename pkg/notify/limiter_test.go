package notify

import (
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestRateLimiterStore_Basic(t *testing.T) {
	store := NewRateLimiterStore(1, 2)

	limiter := store.GetLimiter("ops@example.com")
	if limiter == nil {
		t.Fatal("expected limiter, got nil")
	}
	if limiter.Limit() != 1 {
		t.Errorf("expected limit 1, got %v", limiter.Limit())
	}
}

func TestRateLimiterStore_Concurrency(t *testing.T) {
	store := NewRateLimiterStore(10, 5)
	recipient := uuid.NewString()

	var wg sync.WaitGroup

	for range 100 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			limiter := store.GetLimiter(recipient)
			if limiter == nil {
				t.Error("expected limiter, got nil")
			}
		}()
	}

	wg.Wait()

	limiter := store.GetLimiter(recipient)
	if limiter == nil {
		t.Error("expected limiter to exist after concurrent access")
	}
}

func TestRateLimiter_Enforcement(t *testing.T) {
	store := NewRateLimiterStore(2, 2) // 2 events/sec

	recipient := uuid.NewString()

	if !store.Allow(channelEmail, recipient) || !store.Allow(channelEmail, recipient) {
		t.Fatal("expected first two calls to be allowed")
	}

	if store.Allow(channelEmail, recipient) {
		t.Error("expected third call to be rate limited")
	}

	// other channel has its own bucket
	if !store.Allow(channelSMS, recipient) {
		t.Error("expected sms to be allowed")
	}

	// Wait for refill
	time.Sleep(600 * time.Millisecond)
	if !store.Allow(channelEmail, recipient) {
		t.Error("expected one token to be available after refill")
	}
}
