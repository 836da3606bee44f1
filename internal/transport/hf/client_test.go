package hf

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/threadress/stylerank/internal/domain"
)

func newTestClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return NewClient(&Config{
		BaseURL:    srv.URL,
		Token:      "test-token",
		TextModel:  "sentence-transformers/all-MiniLM-L6-v2",
		ImageModel: "openai/clip-vit-base-patch32",
		Logger:     zap.NewNop(),
	})
}

func TestEmbedText_FlatResponse(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.Contains(r.URL.Path, "feature-extraction") {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer test-token" {
			t.Errorf("unexpected auth header %q", got)
		}
		w.Write([]byte(`[0.1, 0.2, 0.3]`))
	}))

	vec, err := c.EmbedText(context.Background(), "red dress")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(vec) != 3 {
		t.Fatalf("expected 3 components, got %d", len(vec))
	}
}

func TestEmbedText_NestedResponse(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`[[0.5, 0.6]]`))
	}))

	vec, err := c.EmbedText(context.Background(), "red dress")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(vec) != 2 || vec[0] != 0.5 {
		t.Fatalf("unexpected vector: %v", vec)
	}
}

func TestEmbedText_MalformedResponse(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{"error": "loading"}`))
	}))

	_, err := c.EmbedText(context.Background(), "red dress")
	if !errors.Is(err, domain.ErrMalformedProviderResponse) {
		t.Fatalf("expected ErrMalformedProviderResponse, got %v", err)
	}
}

func TestEmbedText_ServerError(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))

	_, err := c.EmbedText(context.Background(), "red dress")
	if !errors.Is(err, domain.ErrProviderUnavailable) {
		t.Fatalf("expected ErrProviderUnavailable, got %v", err)
	}
}

func TestEmbedImage_NoModelConfigured(t *testing.T) {
	c := NewClient(&Config{BaseURL: "http://unused", Logger: zap.NewNop()})

	_, err := c.EmbedImage(context.Background(), "http://img/1.jpg")
	if !errors.Is(err, domain.ErrProviderUnavailable) {
		t.Fatalf("expected ErrProviderUnavailable, got %v", err)
	}
}
