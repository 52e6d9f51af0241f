package routes

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	sessionsvc "github.com/taazafoods/chatbot-backend/internal/session"
	"github.com/taazafoods/chatbot-backend/pkg/billing"
	"github.com/taazafoods/chatbot-backend/pkg/config"
	"github.com/taazafoods/chatbot-backend/pkg/logger"
	"github.com/taazafoods/chatbot-backend/pkg/metrics"
)

type fakeCatalog struct{}

func (fakeCatalog) Categories(ctx context.Context) (json.RawMessage, error) {
	return json.RawMessage(`["Meat","Fish"]`), nil
}

func (fakeCatalog) Items(ctx context.Context, category string) (json.RawMessage, error) {
	return json.RawMessage(`[{"name":"Chicken","price":500}]`), nil
}

type fakeBilling struct{}

func (fakeBilling) Submit(ctx context.Context, payload any) (billing.Result, error) {
	return billing.Result{Status: http.StatusCreated, Body: []byte(`{"booking_id":"bk-1"}`)}, nil
}

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	staticDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(staticDir, "index.html"), []byte("<!doctype html><title>Taaza</title>"), 0o644))

	cfg := &config.Config{}
	cfg.App.Env = "test"
	cfg.CORS.Origins = []string{"*"}
	cfg.Static.Dir = staticDir

	logg := logger.New(logger.Options{ServiceName: "test", Level: zerolog.Disabled, Output: io.Discard})

	registry := prometheus.NewRegistry()
	httpMetrics := metrics.NewHTTPMetrics(registry)

	store := sessionsvc.NewStore(time.Hour, time.Second, httpMetrics)
	svc, err := sessionsvc.NewService(store, fakeBilling{}, logg, httpMetrics)
	require.NoError(t, err)

	return NewRouter(cfg, logg, registry, httpMetrics, fakeCatalog{}, svc)
}

func do(t *testing.T, router http.Handler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = bytes.NewBufferString(body)
	}
	r := httptest.NewRequest(method, target, reader)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, r)
	return w
}

func dataOf(t *testing.T, body []byte, dest any) {
	t.Helper()
	var envelope struct {
		Data json.RawMessage `json:"data"`
	}
	require.NoError(t, json.Unmarshal(body, &envelope), "body: %s", body)
	require.NoError(t, json.Unmarshal(envelope.Data, dest), "data: %s", envelope.Data)
}

func TestHealthEndpoints(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t)

	for _, target := range []string{"/health/live", "/health/ready"} {
		w := do(t, router, http.MethodGet, target, "")
		assert.Equal(t, http.StatusOK, w.Code, target)
		assert.Equal(t, "test", w.Header().Get("X-Taaza-Env"), target)
	}
}

func TestUnknownRouteReturns404(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t)
	w := do(t, router, http.MethodGet, "/nope", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestFullOrderFlow(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t)

	w := do(t, router, http.MethodPost, "/session/create",
		`{"name":"Ali","mobile":"3001234567","address":"House 1 St 2"}`)
	require.Equal(t, http.StatusCreated, w.Code, "create: %s", w.Body.Bytes())

	var created struct {
		SessionID string `json:"session_id"`
	}
	dataOf(t, w.Body.Bytes(), &created)
	require.NotEmpty(t, created.SessionID)

	w = do(t, router, http.MethodGet, "/categories?session_id="+created.SessionID, "")
	require.Equal(t, http.StatusOK, w.Code)

	w = do(t, router, http.MethodGet, "/items/Meat?session_id="+created.SessionID, "")
	require.Equal(t, http.StatusOK, w.Code)

	w = do(t, router, http.MethodPost, "/cart/add",
		`{"session_id":"`+created.SessionID+`","itemName":"Chicken","price":500,"qty":2}`)
	require.Equal(t, http.StatusOK, w.Code, "add: %s", w.Body.Bytes())

	w = do(t, router, http.MethodGet, "/cart/view?session_id="+created.SessionID, "")
	require.Equal(t, http.StatusOK, w.Code)

	var view struct {
		Summary struct {
			Total float64 `json:"total"`
		} `json:"summary"`
	}
	dataOf(t, w.Body.Bytes(), &view)
	assert.Equal(t, float64(1000), view.Summary.Total)

	w = do(t, router, http.MethodPost, "/checkout",
		`{"session_id":"`+created.SessionID+`","paymentMethod":"Cash on Delivery"}`)
	require.Equal(t, http.StatusOK, w.Code, "checkout: %s", w.Body.Bytes())

	var placed struct {
		Message       string `json:"message"`
		BillingStatus int    `json:"billing_status"`
	}
	dataOf(t, w.Body.Bytes(), &placed)
	assert.Equal(t, "Order placed", placed.Message)
	assert.Equal(t, http.StatusCreated, placed.BillingStatus)
}

func TestMetricsEndpointExposesCounters(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t)

	do(t, router, http.MethodPost, "/session/create",
		`{"name":"Ali","mobile":"3001234567","address":"House 1 St 2"}`)

	w := do(t, router, http.MethodGet, "/metrics", "")
	require.Equal(t, http.StatusOK, w.Code)

	body := w.Body.String()
	assert.True(t, strings.Contains(body, "http_requests_total"), "missing request counter:\n%s", body)
	assert.True(t, strings.Contains(body, "active_sessions 1"), "missing session gauge:\n%s", body)
}

func TestRootServesFrontend(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t)
	w := do(t, router, http.MethodGet, "/", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Taaza")
}

func TestSessionResetOverHTTP(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t)

	w := do(t, router, http.MethodPost, "/session/create",
		`{"name":"Ali","mobile":"3001234567","address":"House 1 St 2"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	var created struct {
		SessionID string `json:"session_id"`
	}
	dataOf(t, w.Body.Bytes(), &created)

	w = do(t, router, http.MethodPost, "/session/reset", `{"session_id":"`+created.SessionID+`"}`)
	require.Equal(t, http.StatusOK, w.Code)

	w = do(t, router, http.MethodGet, "/cart/view?session_id="+created.SessionID, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}
