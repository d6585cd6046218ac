package utility

import (
	"fmt"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/time/rate"
)

// KeyedLimiter hands out one token bucket per key. Buckets of keys that have
// not been seen for a while are evicted once capacity is reached.
type KeyedLimiter struct {
	limiters *lru.Cache[string, *rate.Limiter]
	limit    rate.Limit
	burst    int
}

// NewKeyedLimiter allows perMinute events per key with a burst of the same size,
// tracking at most capacity keys.
func NewKeyedLimiter(perMinute, capacity int) (*KeyedLimiter, error) {
	if perMinute <= 0 {
		return nil, fmt.Errorf("rate limit must be positive, got %d", perMinute)
	}
	cache, err := lru.New[string, *rate.Limiter](capacity)
	if err != nil {
		return nil, err
	}
	return &KeyedLimiter{
		limiters: cache,
		limit:    rate.Every(time.Minute / time.Duration(perMinute)),
		burst:    perMinute,
	}, nil
}

// Allow reports whether key may perform one more event now.
func (k *KeyedLimiter) Allow(key string) bool {
	l, ok := k.limiters.Get(key)
	if !ok {
		l = rate.NewLimiter(k.limit, k.burst)
		// Another request for the same key may have raced us here.
		if prev, found, _ := k.limiters.PeekOrAdd(key, l); found {
			l = prev
		}
	}
	return l.Allow()
}
