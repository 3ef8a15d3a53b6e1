package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"maildigest-backend/pkg/config"
)

func newTestEngine(t *testing.T, cfg *config.Config) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	h, err := NewHandler(context.Background(), cfg, zap.NewNop())
	if err != nil {
		t.Fatalf("NewHandler: %v", err)
	}
	return h.Engine()
}

func baseConfig() *config.Config {
	return &config.Config{
		Port:        "0",
		GinMode:     gin.TestMode,
		AIProvider:  "auto",
		AIMaxTokens: 1024,
		AITimeout:   time.Second,
	}
}

func TestHealth(t *testing.T) {
	r := newTestEngine(t, baseConfig())

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/health", nil))
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), `"ok"`) {
		t.Errorf("health = %d %s", w.Code, w.Body.String())
	}
	if w.Header().Get("X-Request-ID") == "" {
		t.Error("missing generated X-Request-ID")
	}
}

func TestRequestIDPropagated(t *testing.T) {
	r := newTestEngine(t, baseConfig())

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	req.Header.Set("X-Request-ID", "abc-123")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if got := w.Header().Get("X-Request-ID"); got != "abc-123" {
		t.Errorf("X-Request-ID = %q, want abc-123", got)
	}
}

func TestSettings_HidesCredential(t *testing.T) {
	cfg := baseConfig()
	cfg.AnthropicAPIKey = "sk-secret-value"
	r := newTestEngine(t, cfg)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/settings", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if strings.Contains(w.Body.String(), "sk-secret-value") {
		t.Fatal("settings response leaks the API key")
	}

	var view SettingsView
	if err := json.Unmarshal(w.Body.Bytes(), &view); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !view.AIEnabled || view.Provider != "anthropic" || view.Model == "" {
		t.Errorf("view = %+v", view)
	}
}

func TestSettings_FallbackMode(t *testing.T) {
	r := newTestEngine(t, baseConfig())

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/settings", nil))

	var view SettingsView
	if err := json.Unmarshal(w.Body.Bytes(), &view); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if view.AIEnabled {
		t.Errorf("AIEnabled = true without credentials")
	}
}

func TestSummarizeRoute(t *testing.T) {
	r := newTestEngine(t, baseConfig())

	body := `{"emails":[{"from":"marketing@service.com","subject":"50% Off Sale","body":"deals","date":"2025-10-24"}]}`
	req := httptest.NewRequest(http.MethodPost, "/api/summarize", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), "1 promotional email(s)") {
		t.Errorf("body = %s", w.Body.String())
	}
}

func TestCORSPreflight(t *testing.T) {
	r := newTestEngine(t, baseConfig())

	req := httptest.NewRequest(http.MethodOptions, "/api/summarize", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNoContent {
		t.Errorf("status = %d, want 204", w.Code)
	}
	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "http://localhost:3000" {
		t.Errorf("Allow-Origin = %q", got)
	}
}

func TestMetricsEndpoint(t *testing.T) {
	r := newTestEngine(t, baseConfig())

	// produce at least one sample
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/health", nil))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "http_request_duration_seconds") {
		t.Error("metrics output missing http_request_duration_seconds")
	}
}
