// Package embedding acquires per-modality vectors through a provider
// fallback chain and fuses them into one query vector.
package embedding

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/threadress/stylerank/internal/domain"
	"github.com/threadress/stylerank/internal/metrics"
)

// Provider acquires embeddings with graceful degradation. No call ever
// returns an error: every provider failure advances the chain and the
// final fallback is a zero vector of the declared dimension.
type Provider struct {
	fast        fastPath // nil when the fast path is disabled for this environment
	hostedText  hostedText
	hostedExtra hostedText // secondary text fallback, may be nil
	hostedImage hostedImage

	batchConcurrency int
	imageBatchDelay  time.Duration
	logger           *zap.Logger
}

// Config wires the provider chain.
type Config struct {
	Fast             fastPath
	HostedText       hostedText
	HostedExtra      hostedText
	HostedImage      hostedImage
	BatchConcurrency int
	ImageBatchDelay  time.Duration
	Logger           *zap.Logger
}

// NewProvider builds the embedding provider.
func NewProvider(cfg *Config) *Provider {
	concurrency := cfg.BatchConcurrency
	if concurrency <= 0 {
		concurrency = 4
	}
	return &Provider{
		fast:             cfg.Fast,
		hostedText:       cfg.HostedText,
		hostedExtra:      cfg.HostedExtra,
		hostedImage:      cfg.HostedImage,
		batchConcurrency: concurrency,
		imageBatchDelay:  cfg.ImageBatchDelay,
		logger:           cfg.Logger,
	}
}

// EmbedText returns a text vector of exactly domain.TextDim.
func (p *Provider) EmbedText(ctx context.Context, text string) domain.Vector {
	if p.fast != nil && p.fast.Available(ctx) {
		if vec, err := p.fast.EmbedText(ctx, text); err == nil {
			return vec.Fit(domain.TextDim)
		} else {
			p.fallback("text", "clip", err)
		}
	}

	if p.hostedText != nil {
		if vec, err := p.hostedText.EmbedText(ctx, text); err == nil {
			return vec.Fit(domain.TextDim)
		} else {
			p.fallback("text", "openai", err)
		}
	}

	if p.hostedExtra != nil {
		if vec, err := p.hostedExtra.EmbedText(ctx, text); err == nil {
			return vec.Fit(domain.TextDim)
		} else {
			p.fallback("text", "hf", err)
		}
	}

	return domain.ZeroVector(domain.TextDim)
}

// EmbedVibe embeds the style-context text as the vibe modality.
func (p *Provider) EmbedVibe(ctx context.Context, vibeText string) domain.Vector {
	if vibeText == "" {
		return domain.ZeroVector(domain.VibeDim)
	}
	return p.EmbedText(ctx, vibeText).Fit(domain.VibeDim)
}

// EmbedImage returns an image vector of exactly domain.ImageDim.
// An empty URL yields the zero vector immediately.
func (p *Provider) EmbedImage(ctx context.Context, imageURL string) domain.Vector {
	if imageURL == "" {
		return domain.ZeroVector(domain.ImageDim)
	}

	if p.fast != nil && p.fast.Available(ctx) {
		if vec, err := p.fast.EmbedImage(ctx, imageURL); err == nil {
			return vec.Fit(domain.ImageDim)
		} else {
			p.fallback("image", "clip", err)
		}
	}

	if p.hostedImage != nil {
		if vec, err := p.hostedImage.EmbedImage(ctx, imageURL); err == nil {
			return vec.Fit(domain.ImageDim)
		} else {
			p.fallback("image", "hf", err)
		}
	}

	// Degenerate fallback: describe the image from its URL and embed
	// the description as text, padded to the image dimension.
	if desc := DescribeImageURL(imageURL); desc != "" {
		vec := p.EmbedText(ctx, desc)
		if !vec.IsZero() {
			p.logger.Debug("embedded URL-derived image description",
				zap.String("description", desc))
			return vec.Fit(domain.ImageDim)
		}
	}

	return domain.ZeroVector(domain.ImageDim)
}

// EmbedTextBatch embeds texts concurrently with bounded fan-out.
// Output order matches input order; failed items become zero vectors.
func (p *Provider) EmbedTextBatch(ctx context.Context, texts []string) []domain.Vector {
	if len(texts) == 0 {
		return nil
	}

	// The fast path has a native batch endpoint, try it first.
	if p.fast != nil && p.fast.Available(ctx) {
		if vecs, err := p.fast.EmbedTextBatch(ctx, texts); err == nil {
			out := make([]domain.Vector, len(vecs))
			for i, v := range vecs {
				out[i] = v.Fit(domain.TextDim)
			}
			return out
		} else {
			p.fallback("text", "clip", err)
		}
	}

	out := make([]domain.Vector, len(texts))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(p.batchConcurrency)
	for i, text := range texts {
		i, text := i, text
		g.Go(func() error {
			out[i] = p.EmbedText(gctx, text)
			return nil
		})
	}
	g.Wait() //nolint:errcheck // workers never return errors
	return out
}

// EmbedImageBatch embeds images one at a time with an inter-item
// delay. Sequential on purpose: hosted image endpoints rate-limit
// aggressively and the delay is the backpressure policy.
func (p *Provider) EmbedImageBatch(ctx context.Context, imageURLs []string) []domain.Vector {
	out := make([]domain.Vector, len(imageURLs))
	for i, url := range imageURLs {
		if i > 0 && p.imageBatchDelay > 0 {
			select {
			case <-ctx.Done():
				for ; i < len(imageURLs); i++ {
					out[i] = domain.ZeroVector(domain.ImageDim)
				}
				return out
			case <-time.After(p.imageBatchDelay):
			}
		}
		out[i] = p.EmbedImage(ctx, url)
	}
	return out
}

// HealthCheck reports whether at least one networked provider answers.
func (p *Provider) HealthCheck(ctx context.Context) error {
	var lastErr error

	if p.fast != nil {
		if err := p.fast.HealthCheck(ctx); err == nil {
			return nil
		} else {
			lastErr = err
		}
	}

	if hc, ok := p.hostedText.(domain.HealthChecker); ok && hc != nil {
		if err := hc.HealthCheck(ctx); err == nil {
			return nil
		} else {
			lastErr = err
		}
	}

	if lastErr == nil {
		return fmt.Errorf("%w: no embedding provider configured", domain.ErrNotReady)
	}
	return fmt.Errorf("%w: %w", domain.ErrNotReady, lastErr)
}

func (p *Provider) fallback(modality, provider string, err error) {
	metrics.EmbeddingFallbackTotal.WithLabelValues(modality, provider).Inc()
	p.logger.Warn("embedding provider failed, advancing fallback chain",
		zap.String("modality", modality),
		zap.String("provider", provider),
		zap.Error(err))
}
