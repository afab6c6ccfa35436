package middleware

import (
	"log/slog"
	"math"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

type RateLimiterConfig struct {
	Rate            rate.Limit // tokens per second
	Burst           int
	CleanupInterval time.Duration
}

// PerMinute builds a config allowing n requests per minute with a burst of n.
func PerMinute(n int) RateLimiterConfig {
	if n <= 0 {
		n = 1
	}
	return RateLimiterConfig{
		Rate:            rate.Limit(float64(n) / 60.0),
		Burst:           n,
		CleanupInterval: 5 * time.Minute,
	}
}

type clientLimiter struct {
	limiter    *rate.Limiter
	lastAccess time.Time
}

// RateLimiter keeps one token bucket per client IP.
type RateLimiter struct {
	config RateLimiterConfig
	logger *slog.Logger

	mu       sync.Mutex
	limiters map[string]*clientLimiter

	stopCh   chan struct{}
	stopOnce sync.Once
}

// NewRateLimiter starts a background sweep of idle entries; call Stop to end it.
func NewRateLimiter(config RateLimiterConfig) *RateLimiter {
	if config.CleanupInterval <= 0 {
		config.CleanupInterval = 5 * time.Minute
	}
	rl := &RateLimiter{
		config:   config,
		logger:   slog.Default(),
		limiters: make(map[string]*clientLimiter),
		stopCh:   make(chan struct{}),
	}
	go rl.cleanupLoop()
	return rl
}

// WithLogger sets where rejected requests are logged.
func (rl *RateLimiter) WithLogger(logger *slog.Logger) *RateLimiter {
	if logger != nil {
		rl.logger = logger
	}
	return rl
}

func (rl *RateLimiter) Stop() {
	rl.stopOnce.Do(func() { close(rl.stopCh) })
}

// Middleware answers 429 with Retry-After once a client exhausts its bucket.
func (rl *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		ip := c.ClientIP()
		if !rl.limiter(ip).Allow() {
			rl.logger.Warn("rate limit exceeded",
				slog.String("client_ip", ip),
				slog.String("path", c.Request.URL.Path),
			)
			c.Header("Retry-After", strconv.Itoa(retryAfter(rl.config.Rate)))
			AbortJSON(c, http.StatusTooManyRequests, "Too many requests. Please try again later.")
			return
		}
		c.Next()
	}
}

// Len reports how many clients are tracked.
func (rl *RateLimiter) Len() int {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	return len(rl.limiters)
}

func (rl *RateLimiter) limiter(key string) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	if cl, ok := rl.limiters[key]; ok {
		cl.lastAccess = time.Now()
		return cl.limiter
	}
	l := rate.NewLimiter(rl.config.Rate, rl.config.Burst)
	rl.limiters[key] = &clientLimiter{limiter: l, lastAccess: time.Now()}
	return l
}

func (rl *RateLimiter) cleanupLoop() {
	ticker := time.NewTicker(rl.config.CleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			rl.cleanup(time.Now())
		case <-rl.stopCh:
			return
		}
	}
}

// cleanup drops clients idle for more than twice the cleanup interval.
func (rl *RateLimiter) cleanup(now time.Time) {
	ttl := rl.config.CleanupInterval * 2

	rl.mu.Lock()
	defer rl.mu.Unlock()
	for key, cl := range rl.limiters {
		if now.Sub(cl.lastAccess) > ttl {
			delete(rl.limiters, key)
		}
	}
}

// retryAfter estimates seconds until one token is refilled.
func retryAfter(r rate.Limit) int {
	if r <= 0 {
		return 60
	}
	sec := int(math.Ceil(1.0 / float64(r)))
	if sec < 1 {
		sec = 1
	}
	return sec
}
