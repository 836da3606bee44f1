package clip

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/threadress/stylerank/internal/domain"
)

func newTestClient(t *testing.T, handler http.Handler) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return NewClient(&Config{
		BaseURL:        srv.URL,
		HealthTimeout:  500 * time.Millisecond,
		RequestTimeout: 2 * time.Second,
		Logger:         zap.NewNop(),
	}), srv
}

func TestEmbedText(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/embed/text" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		var body struct {
			Text string `json:"text"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Fatal(err)
		}
		if body.Text != "red dress" {
			t.Errorf("unexpected text %q", body.Text)
		}
		json.NewEncoder(w).Encode(map[string]any{
			"ok":        true,
			"embedding": []float32{0.1, 0.2, 0.3},
		})
	}))

	vec, err := c.EmbedText(context.Background(), "red dress")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(vec) != 3 {
		t.Fatalf("expected 3 components, got %d", len(vec))
	}
}

func TestEmbedText_NotOK(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"ok": false})
	}))

	_, err := c.EmbedText(context.Background(), "red dress")
	if !errors.Is(err, domain.ErrMalformedProviderResponse) {
		t.Fatalf("expected ErrMalformedProviderResponse, got %v", err)
	}
}

func TestEmbedText_ServerError(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))

	_, err := c.EmbedText(context.Background(), "red dress")
	if !errors.Is(err, domain.ErrProviderUnavailable) {
		t.Fatalf("expected ErrProviderUnavailable, got %v", err)
	}
}

func TestEmbedImageBatch(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/embed/image/batch" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		json.NewEncoder(w).Encode(map[string]any{
			"ok":         true,
			"embeddings": [][]float32{{1}, {2}},
		})
	}))

	vecs, err := c.EmbedImageBatch(context.Background(), []string{"http://a/1.jpg", "http://a/2.jpg"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(vecs) != 2 {
		t.Fatalf("expected 2 vectors, got %d", len(vecs))
	}
}

func TestEmbedBatch_CountMismatch(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"ok":         true,
			"embeddings": [][]float32{{1}},
		})
	}))

	_, err := c.EmbedTextBatch(context.Background(), []string{"a", "b"})
	if !errors.Is(err, domain.ErrMalformedProviderResponse) {
		t.Fatalf("expected ErrMalformedProviderResponse, got %v", err)
	}
}

func TestAvailable_CachesVerdict(t *testing.T) {
	var probes int
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/health" {
			probes++
			w.WriteHeader(http.StatusOK)
		}
	}))

	ctx := context.Background()
	for i := 0; i < 5; i++ {
		if !c.Available(ctx) {
			t.Fatal("expected service available")
		}
	}
	if probes != 1 {
		t.Errorf("expected 1 health probe, got %d", probes)
	}
}

func TestAvailable_DownService(t *testing.T) {
	c, srv := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	srv.Close()

	if c.Available(context.Background()) {
		t.Fatal("expected service unavailable")
	}
}
