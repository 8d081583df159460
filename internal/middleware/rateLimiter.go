package middleware

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/akolanti/PdfSummaryAPI/internal/config"
	"github.com/akolanti/PdfSummaryAPI/internal/data/redisStore"
	"golang.org/x/time/rate"
)

// Limiter decides whether one more request from key fits the budget.
type Limiter interface {
	Allow(ctx context.Context, key string) (bool, error)
	Name() string
}

type IPRateLimiter struct {
	ips       map[string]*rate.Limiter
	mu        sync.Mutex
	rateLimit rate.Limit
	burstRate int
}

func NewIPRateLimiter(r rate.Limit, b int) *IPRateLimiter {
	return &IPRateLimiter{ips: make(map[string]*rate.Limiter), rateLimit: r, burstRate: b}
}

// NewDefaultIPRateLimiter uses the per second rate and burst from config.
func NewDefaultIPRateLimiter() *IPRateLimiter {
	return NewIPRateLimiter(rate.Limit(config.RATE_LIMIT_PER_SECOND), config.BURST_RATE_LIMIT_PER_SECOND)
}

func (i *IPRateLimiter) GetLimiter(ip string) *rate.Limiter {
	i.mu.Lock()
	defer i.mu.Unlock()
	limiter, exists := i.ips[ip]
	if !exists {
		limiter = rate.NewLimiter(i.rateLimit, i.burstRate)
		i.ips[ip] = limiter
	}
	return limiter
}

func (i *IPRateLimiter) Allow(_ context.Context, key string) (bool, error) {
	return i.GetLimiter(key).Allow(), nil
}

func (i *IPRateLimiter) Name() string { return "ip" }

// windowCounter is the part of the redis store the shared limiter needs.
type windowCounter interface {
	IncrementWindow(ctx context.Context, key string, window time.Duration) (int64, error)
}

// RedisRateLimiter is a fixed window counter kept in redis so every replica shares one budget per IP.
type RedisRateLimiter struct {
	store  windowCounter
	limit  int64
	window time.Duration
	prefix string
}

func NewRedisRateLimiter(store *redisStore.Store, limit int, window time.Duration) *RedisRateLimiter {
	return newRedisRateLimiter(store, limit, window)
}

func newRedisRateLimiter(store windowCounter, limit int, window time.Duration) *RedisRateLimiter {
	return &RedisRateLimiter{
		store:  store,
		limit:  int64(limit),
		window: window,
		prefix: config.RedisRateLimitPrefix,
	}
}

func (l *RedisRateLimiter) Allow(ctx context.Context, key string) (bool, error) {
	count, err := l.store.IncrementWindow(ctx, l.prefix+key, l.window)
	if err != nil {
		return false, fmt.Errorf("redis rate limit: %w", err)
	}
	return count <= l.limit, nil
}

func (l *RedisRateLimiter) Name() string { return "redis" }
