package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

func newLimitedRouter(rl *RateLimiter) *gin.Engine {
	r := gin.New()
	r.Use(rl.Middleware())
	r.POST("/api/auth/login", func(c *gin.Context) { c.Status(http.StatusOK) })
	return r
}

func loginFrom(r *gin.Engine, ip string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", nil)
	req.RemoteAddr = ip + ":12345"
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRateLimiter_AllowsBurstThen429(t *testing.T) {
	rl := NewRateLimiter(RateLimiterConfig{Rate: 1, Burst: 2, CleanupInterval: time.Minute})
	defer rl.Stop()
	r := newLimitedRouter(rl)

	for i := 0; i < 2; i++ {
		if w := loginFrom(r, "10.0.0.1"); w.Code != http.StatusOK {
			t.Errorf("request %d: status = %d, want 200", i, w.Code)
		}
	}

	w := loginFrom(r, "10.0.0.1")
	if w.Code != http.StatusTooManyRequests {
		t.Fatalf("status = %d, want 429", w.Code)
	}
	if got := w.Header().Get("Retry-After"); got != "1" {
		t.Errorf("Retry-After = %q, want 1", got)
	}
	if got := decodeError(t, w); got == "" {
		t.Error("empty error message")
	}
}

func TestRateLimiter_PerClient(t *testing.T) {
	rl := NewRateLimiter(RateLimiterConfig{Rate: 1, Burst: 1, CleanupInterval: time.Minute})
	defer rl.Stop()
	r := newLimitedRouter(rl)

	loginFrom(r, "10.0.0.1")
	if w := loginFrom(r, "10.0.0.2"); w.Code != http.StatusOK {
		t.Errorf("second client limited: %d", w.Code)
	}
	if rl.Len() != 2 {
		t.Errorf("Len = %d, want 2", rl.Len())
	}
}

func TestRateLimiter_CleanupDropsIdle(t *testing.T) {
	rl := NewRateLimiter(RateLimiterConfig{Rate: 1, Burst: 1, CleanupInterval: time.Minute})
	defer rl.Stop()

	rl.limiter("10.0.0.1")
	rl.cleanup(time.Now().Add(3 * time.Minute))
	if rl.Len() != 0 {
		t.Errorf("Len = %d after cleanup, want 0", rl.Len())
	}
}

func TestPerMinute(t *testing.T) {
	cfg := PerMinute(30)
	if cfg.Burst != 30 {
		t.Errorf("Burst = %d", cfg.Burst)
	}
	if got := retryAfter(cfg.Rate); got != 2 {
		t.Errorf("retryAfter = %d, want 2", got)
	}
}

func TestRateLimiter_StopTwice(t *testing.T) {
	rl := NewRateLimiter(PerMinute(10))
	rl.Stop()
	rl.Stop()
}

func TestRateLimiter_LogsToInjectedLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))
	rl := NewRateLimiter(RateLimiterConfig{Rate: 1, Burst: 1, CleanupInterval: time.Minute}).WithLogger(logger)
	defer rl.Stop()
	r := newLimitedRouter(rl)

	loginFrom(r, "10.0.0.7")
	if w := loginFrom(r, "10.0.0.7"); w.Code != http.StatusTooManyRequests {
		t.Fatalf("status = %d, want 429", w.Code)
	}
	out := buf.String()
	if !strings.Contains(out, "rate limit exceeded") || !strings.Contains(out, `"client_ip":"10.0.0.7"`) {
		t.Errorf("log output = %q", out)
	}
}
