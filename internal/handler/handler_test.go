package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"NGO_Platform/internal/middleware"
	"NGO_Platform/internal/model"
	"NGO_Platform/internal/pkg"

	"github.com/gin-gonic/gin"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// withClaims stands in for AuthMiddleware.
func withClaims(claims *pkg.Claims) gin.HandlerFunc {
	return func(c *gin.Context) {
		if claims != nil {
			c.Set(middleware.ContextClaimsKey, claims)
		}
		c.Next()
	}
}

func do(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body %q: %v", w.Body.String(), err)
	}
	return body
}

func expectError(t *testing.T, w *httptest.ResponseRecorder, status int, msg string) {
	t.Helper()
	if w.Code != status {
		t.Fatalf("status = %d, want %d (body %s)", w.Code, status, w.Body.String())
	}
	body := decode(t, w)
	if body["success"] != false {
		t.Errorf("success = %v, want false", body["success"])
	}
	if msg != "" && body["error"] != msg {
		t.Errorf("error = %v, want %q", body["error"], msg)
	}
}

type mockCampaignStore struct {
	addFn    func(ctx context.Context, data model.Record) (string, error)
	listFn   func(ctx context.Context, f model.Filter) ([]model.Record, error)
	getFn    func(ctx context.Context, id string) (model.Record, error)
	updateFn func(ctx context.Context, id string, updates model.Record) error
}

func (m *mockCampaignStore) AddCampaign(ctx context.Context, data model.Record) (string, error) {
	return m.addFn(ctx, data)
}

func (m *mockCampaignStore) GetCampaigns(ctx context.Context, f model.Filter) ([]model.Record, error) {
	return m.listFn(ctx, f)
}

func (m *mockCampaignStore) GetCampaignByID(ctx context.Context, id string) (model.Record, error) {
	return m.getFn(ctx, id)
}

func (m *mockCampaignStore) UpdateCampaign(ctx context.Context, id string, updates model.Record) error {
	return m.updateFn(ctx, id, updates)
}

type mockDonationStore struct {
	addFn  func(ctx context.Context, data model.Record) (string, string, error)
	listFn func(ctx context.Context, f model.Filter) ([]model.Record, error)
	txnFn  func(ctx context.Context, txn string) (model.Record, error)
}

func (m *mockDonationStore) AddDonation(ctx context.Context, data model.Record) (string, string, error) {
	return m.addFn(ctx, data)
}

func (m *mockDonationStore) GetDonations(ctx context.Context, f model.Filter) ([]model.Record, error) {
	return m.listFn(ctx, f)
}

func (m *mockDonationStore) GetDonationByTransactionID(ctx context.Context, txn string) (model.Record, error) {
	return m.txnFn(ctx, txn)
}

type mockUserStore struct {
	getFn    func(ctx context.Context, id string) (model.Record, error)
	updateFn func(ctx context.Context, id string, updates model.Record) error
}

func (m *mockUserStore) GetUserByID(ctx context.Context, id string) (model.Record, error) {
	return m.getFn(ctx, id)
}

func (m *mockUserStore) UpdateUser(ctx context.Context, id string, updates model.Record) error {
	return m.updateFn(ctx, id, updates)
}

type mockApplicationStore struct {
	addFn    func(ctx context.Context, data model.Record) (model.Record, error)
	listFn   func(ctx context.Context, f model.Filter) ([]model.Record, error)
	updateFn func(ctx context.Context, id string, updates model.Record) (model.Record, error)
}

func (m *mockApplicationStore) AddVolunteerApplication(ctx context.Context, data model.Record) (model.Record, error) {
	return m.addFn(ctx, data)
}

func (m *mockApplicationStore) GetVolunteerApplications(ctx context.Context, f model.Filter) ([]model.Record, error) {
	return m.listFn(ctx, f)
}

func (m *mockApplicationStore) UpdateVolunteerApplication(ctx context.Context, id string, updates model.Record) (model.Record, error) {
	return m.updateFn(ctx, id, updates)
}

type recordedEvent struct {
	typ     string
	id      string
	payload map[string]any
}

type mockEmitter struct {
	events []recordedEvent
}

func (m *mockEmitter) Emit(_ context.Context, typ, id string, payload map[string]any) {
	m.events = append(m.events, recordedEvent{typ: typ, id: id, payload: payload})
}

type mockDonationRecorder struct {
	amounts []float64
}

func (m *mockDonationRecorder) RecordDonation(amount float64) {
	m.amounts = append(m.amounts, amount)
}
