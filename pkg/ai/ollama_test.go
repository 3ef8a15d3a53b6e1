package ai

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func newOllamaServer(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/generate" {
			t.Errorf("path = %s, want /api/generate", r.URL.Path)
		}
		var req struct {
			Model   string         `json:"model"`
			Stream  *bool          `json:"stream"`
			Options map[string]any `json:"options"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decode request: %v", err)
		}
		if req.Stream == nil || *req.Stream {
			t.Error("expected non-streamed request")
		}
		if req.Options["num_predict"] != float64(300) {
			t.Errorf("num_predict = %v, want 300", req.Options["num_predict"])
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
}

func TestOllamaProvider_Complete(t *testing.T) {
	srv := newOllamaServer(t, http.StatusOK, `{"model":"llama3","response":"three emails, one urgent","done":true}`)
	defer srv.Close()

	p, err := NewOllamaProvider(srv.URL, "llama3", 300)
	if err != nil {
		t.Fatalf("NewOllamaProvider: %v", err)
	}
	got, err := p.Complete(context.Background(), "summarize")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "three emails, one urgent" {
		t.Errorf("text = %q", got)
	}
}

func TestOllamaProvider_EmptyResponse(t *testing.T) {
	srv := newOllamaServer(t, http.StatusOK, `{"model":"llama3","response":"","done":true}`)
	defer srv.Close()

	p, _ := NewOllamaProvider(srv.URL, "llama3", 300)
	_, err := p.Complete(context.Background(), "summarize")

	var pe *ProviderError
	if !errors.As(err, &pe) || pe.Kind != KindEmptyResponse {
		t.Fatalf("err = %v, want empty_response ProviderError", err)
	}
}

func TestOllamaProvider_ServerError(t *testing.T) {
	srv := newOllamaServer(t, http.StatusServiceUnavailable, `{"error":"model is loading"}`)
	defer srv.Close()

	p, _ := NewOllamaProvider(srv.URL, "llama3", 300)
	_, err := p.Complete(context.Background(), "summarize")

	var pe *ProviderError
	if !errors.As(err, &pe) {
		t.Fatalf("err = %v, want *ProviderError", err)
	}
	if pe.Provider != "ollama" {
		t.Errorf("Provider = %q, want ollama", pe.Provider)
	}
}

func TestOllamaProvider_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	p, _ := NewOllamaProvider(url, "llama3", 300)
	_, err := p.Complete(context.Background(), "summarize")

	var pe *ProviderError
	if !errors.As(err, &pe) || pe.Kind != KindConnection {
		t.Fatalf("err = %v, want connection ProviderError", err)
	}
}
