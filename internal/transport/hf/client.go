// Package hf calls a hosted feature-extraction API (Hugging Face
// inference style) as the last networked embedding fallback.
package hf

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/threadress/stylerank/internal/domain"
	"github.com/threadress/stylerank/internal/metrics"
)

const providerName = "hf"

// Client calls feature-extraction models over HTTP.
type Client struct {
	baseURL    string
	token      string
	textModel  string
	imageModel string
	httpClient *http.Client
	logger     *zap.Logger
}

// Config holds feature-extraction provider settings.
type Config struct {
	BaseURL    string
	Token      string
	TextModel  string
	ImageModel string
	Timeout    time.Duration
	Logger     *zap.Logger
}

// NewClient creates a feature-extraction client.
func NewClient(cfg *Config) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		token:      cfg.Token,
		textModel:  cfg.TextModel,
		imageModel: cfg.ImageModel,
		httpClient: &http.Client{Timeout: timeout},
		logger:     cfg.Logger,
	}
}

// EmbedText extracts features for a text input.
func (c *Client) EmbedText(ctx context.Context, text string) (domain.Vector, error) {
	return c.extract(ctx, c.textModel, "text", text)
}

// EmbedImage extracts features for an image referenced by URL.
func (c *Client) EmbedImage(ctx context.Context, imageURL string) (domain.Vector, error) {
	return c.extract(ctx, c.imageModel, "image", imageURL)
}

func (c *Client) extract(ctx context.Context, model, modality, input string) (domain.Vector, error) {
	if model == "" {
		return nil, fmt.Errorf("%w: no %s model configured", domain.ErrProviderUnavailable, modality)
	}

	payload, err := json.Marshal(map[string]string{"inputs": input})
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/pipeline/feature-extraction/%s", c.baseURL, model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	start := time.Now()

	resp, err := c.httpClient.Do(req)
	if err != nil {
		metrics.EmbeddingRequestsTotal.WithLabelValues(providerName, modality, "error").Inc()
		return nil, fmt.Errorf("%w: %w", domain.ErrProviderUnavailable, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 8<<20))
	if err != nil {
		metrics.EmbeddingRequestsTotal.WithLabelValues(providerName, modality, "error").Inc()
		return nil, fmt.Errorf("%w: read body: %w", domain.ErrProviderUnavailable, err)
	}

	if resp.StatusCode != http.StatusOK {
		metrics.EmbeddingRequestsTotal.WithLabelValues(providerName, modality, "error").Inc()
		return nil, fmt.Errorf("%w: %s returned %d", domain.ErrProviderUnavailable, model, resp.StatusCode)
	}

	vec, err := decodeVector(body)
	if err != nil {
		metrics.EmbeddingRequestsTotal.WithLabelValues(providerName, modality, "error").Inc()
		return nil, err
	}

	metrics.EmbeddingRequestsTotal.WithLabelValues(providerName, modality, "success").Inc()
	metrics.EmbeddingRequestDuration.WithLabelValues(providerName, modality).Observe(time.Since(start).Seconds())

	return vec, nil
}

// decodeVector accepts the two shapes feature-extraction endpoints
// produce: a flat array of floats or a nested single-row matrix.
func decodeVector(body []byte) (domain.Vector, error) {
	var flat []float32
	if err := json.Unmarshal(body, &flat); err == nil && len(flat) > 0 {
		return domain.Vector(flat), nil
	}

	var nested [][]float32
	if err := json.Unmarshal(body, &nested); err == nil && len(nested) > 0 && len(nested[0]) > 0 {
		return domain.Vector(nested[0]), nil
	}

	return nil, fmt.Errorf("%w: unrecognized feature-extraction payload", domain.ErrMalformedProviderResponse)
}
