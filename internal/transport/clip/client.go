// Package clip talks to the self-hosted CLIP embedding service used as
// the low-latency fast path for text and image embeddings.
package clip

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	gocache "github.com/patrickmn/go-cache"
	"go.uber.org/zap"

	"github.com/threadress/stylerank/internal/domain"
	"github.com/threadress/stylerank/internal/metrics"
)

const (
	providerName = "clip"

	healthCacheKey = "health"
	healthCacheTTL = 30 * time.Second
)

// Client is an HTTP client for the CLIP embedding service.
type Client struct {
	baseURL       string
	httpClient    *http.Client
	healthTimeout time.Duration
	healthCache   *gocache.Cache
	logger        *zap.Logger
}

// Config holds CLIP service connection settings.
type Config struct {
	BaseURL        string
	HealthTimeout  time.Duration
	RequestTimeout time.Duration
	Logger         *zap.Logger
}

// NewClient creates a CLIP service client.
func NewClient(cfg *Config) *Client {
	return &Client{
		baseURL:       strings.TrimRight(cfg.BaseURL, "/"),
		httpClient:    &http.Client{Timeout: cfg.RequestTimeout},
		healthTimeout: cfg.HealthTimeout,
		healthCache:   gocache.New(healthCacheTTL, time.Minute),
		logger:        cfg.Logger,
	}
}

// Available reports whether the service answered a recent health probe.
// The probe uses a short timeout and the verdict is cached, so a down
// service costs at most one probe per cache window.
func (c *Client) Available(ctx context.Context) bool {
	if v, ok := c.healthCache.Get(healthCacheKey); ok {
		return v.(bool)
	}

	probeCtx, cancel := context.WithTimeout(ctx, c.healthTimeout)
	defer cancel()

	up := c.HealthCheck(probeCtx) == nil
	c.healthCache.Set(healthCacheKey, up, healthCacheTTL)
	if !up {
		c.logger.Debug("CLIP service unavailable, fast path disabled for this window")
	}
	return up
}

// HealthCheck probes GET /health.
func (c *Client) HealthCheck(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/health", nil)
	if err != nil {
		return fmt.Errorf("build health request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %w", domain.ErrProviderUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: health returned %d", domain.ErrProviderUnavailable, resp.StatusCode)
	}
	return nil
}

type embedResponse struct {
	OK        bool      `json:"ok"`
	Embedding []float32 `json:"embedding"`
}

type embedBatchResponse struct {
	OK         bool        `json:"ok"`
	Embeddings [][]float32 `json:"embeddings"`
}

// EmbedText embeds a single text.
func (c *Client) EmbedText(ctx context.Context, text string) (domain.Vector, error) {
	return c.embedOne(ctx, "/embed/text", "text", map[string]string{"text": text})
}

// EmbedImage embeds a single image by URL.
func (c *Client) EmbedImage(ctx context.Context, imageURL string) (domain.Vector, error) {
	return c.embedOne(ctx, "/embed/image", "image", map[string]string{"image_url": imageURL})
}

// EmbedTextBatch embeds several texts in one call.
func (c *Client) EmbedTextBatch(ctx context.Context, texts []string) ([]domain.Vector, error) {
	return c.embedBatch(ctx, "/embed/text/batch", "text", map[string]any{"texts": texts}, len(texts))
}

// EmbedImageBatch embeds several images in one call.
func (c *Client) EmbedImageBatch(ctx context.Context, imageURLs []string) ([]domain.Vector, error) {
	return c.embedBatch(ctx, "/embed/image/batch", "image", map[string]any{"image_urls": imageURLs}, len(imageURLs))
}

func (c *Client) embedOne(ctx context.Context, path, modality string, body any) (domain.Vector, error) {
	start := time.Now()

	var parsed embedResponse
	if err := c.post(ctx, path, body, &parsed); err != nil {
		metrics.EmbeddingRequestsTotal.WithLabelValues(providerName, modality, "error").Inc()
		return nil, err
	}

	if !parsed.OK || len(parsed.Embedding) == 0 {
		metrics.EmbeddingRequestsTotal.WithLabelValues(providerName, modality, "error").Inc()
		return nil, fmt.Errorf("%w: embed response not ok", domain.ErrMalformedProviderResponse)
	}

	metrics.EmbeddingRequestsTotal.WithLabelValues(providerName, modality, "success").Inc()
	metrics.EmbeddingRequestDuration.WithLabelValues(providerName, modality).Observe(time.Since(start).Seconds())

	return domain.Vector(parsed.Embedding), nil
}

func (c *Client) embedBatch(
	ctx context.Context, path, modality string, body any, want int,
) ([]domain.Vector, error) {
	start := time.Now()

	var parsed embedBatchResponse
	if err := c.post(ctx, path, body, &parsed); err != nil {
		metrics.EmbeddingRequestsTotal.WithLabelValues(providerName, modality, "error").Inc()
		return nil, err
	}

	if !parsed.OK || len(parsed.Embeddings) != want {
		metrics.EmbeddingRequestsTotal.WithLabelValues(providerName, modality, "error").Inc()
		return nil, fmt.Errorf("%w: batch returned %d embeddings for %d inputs",
			domain.ErrMalformedProviderResponse, len(parsed.Embeddings), want)
	}

	metrics.EmbeddingRequestsTotal.WithLabelValues(providerName, modality, "success").Inc()
	metrics.EmbeddingRequestDuration.WithLabelValues(providerName, modality).Observe(time.Since(start).Seconds())

	out := make([]domain.Vector, len(parsed.Embeddings))
	for i, e := range parsed.Embeddings {
		out[i] = domain.Vector(e)
	}
	return out, nil
}

func (c *Client) post(ctx context.Context, path string, body, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %w", domain.ErrProviderUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		io.Copy(io.Discard, io.LimitReader(resp.Body, 4096)) //nolint:errcheck // draining for connection reuse
		return fmt.Errorf("%w: %s returned %d", domain.ErrProviderUnavailable, path, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: %w", domain.ErrMalformedProviderResponse, err)
	}
	return nil
}
