package middleware

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

func TestLoggingMiddleware_LogsRequestFields(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelInfo}))

	r := gin.New()
	r.Use(NewLoggingMiddleware(logger))
	r.GET("/api/campaigns", func(c *gin.Context) {
		c.Set(ContextUserIDKey, "user-123")
		c.Status(http.StatusNotFound)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/campaigns", nil))

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("failed to parse JSON log: %v\nraw: %s", err, buf.String())
	}
	if entry["msg"] != "http_request" {
		t.Errorf("msg = %v", entry["msg"])
	}
	if entry["method"] != "GET" || entry["path"] != "/api/campaigns" {
		t.Errorf("method/path = %v %v", entry["method"], entry["path"])
	}
	if entry["status"] != 404.0 {
		t.Errorf("status = %v, want 404", entry["status"])
	}
	if entry["level"] != "WARN" {
		t.Errorf("level = %v, want WARN", entry["level"])
	}
	if entry["user_id"] != "user-123" {
		t.Errorf("user_id = %v", entry["user_id"])
	}
	if _, ok := entry["duration_ms"]; !ok {
		t.Error("missing duration_ms")
	}
}

func TestRecoveryMiddleware(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	r := gin.New()
	r.Use(NewRecoveryMiddleware(logger))
	r.GET("/boom", func(c *gin.Context) { panic("kaboom") })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", nil))

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", w.Code)
	}
	if got := decodeError(t, w); got != "Something went wrong!" {
		t.Errorf("error = %q", got)
	}
	if !bytes.Contains(buf.Bytes(), []byte("panic recovered")) {
		t.Errorf("panic not logged: %s", buf.String())
	}
}

func TestCORSMiddleware(t *testing.T) {
	r := gin.New()
	r.Use(NewCORSMiddleware("*"))
	r.GET("/api/health", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/health", nil))
	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Errorf("Allow-Origin = %q", got)
	}
	if got := w.Header().Get("Access-Control-Allow-Credentials"); got != "" {
		t.Errorf("credentials allowed with wildcard origin: %q", got)
	}

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodOptions, "/api/anything", nil))
	if w.Code != http.StatusNoContent {
		t.Errorf("preflight status = %d, want 204", w.Code)
	}
}

func TestCORSMiddleware_ConcreteOrigin(t *testing.T) {
	r := gin.New()
	r.Use(NewCORSMiddleware("https://app.example.com"))
	r.GET("/x", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))
	if got := w.Header().Get("Access-Control-Allow-Credentials"); got != "true" {
		t.Errorf("Allow-Credentials = %q, want true", got)
	}
}

type recordedRequest struct {
	method, route string
	status        int
}

type mockRequestRecorder struct {
	mu   sync.Mutex
	seen []recordedRequest
}

func (m *mockRequestRecorder) RecordHTTPRequest(method, route string, status int, _ time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.seen = append(m.seen, recordedRequest{method, route, status})
}

func TestMetricsMiddleware_UsesRouteTemplate(t *testing.T) {
	rec := &mockRequestRecorder{}
	r := gin.New()
	r.Use(NewMetricsMiddleware(rec))
	r.GET("/api/campaigns/:id", func(c *gin.Context) { c.Status(http.StatusOK) })

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/campaigns/17", nil))
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/nope", nil))

	if len(rec.seen) != 2 {
		t.Fatalf("recorded %d requests, want 2", len(rec.seen))
	}
	if rec.seen[0] != (recordedRequest{"GET", "/api/campaigns/:id", 200}) {
		t.Errorf("first = %+v", rec.seen[0])
	}
	if rec.seen[1].route != "unmatched" || rec.seen[1].status != 404 {
		t.Errorf("second = %+v", rec.seen[1])
	}
}
