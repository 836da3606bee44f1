// Package search orchestrates the query pipeline: understanding,
// embedding, fusion, retrieval and reranking.
package search

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/threadress/stylerank/internal/domain"
	"github.com/threadress/stylerank/internal/metrics"
	"github.com/threadress/stylerank/internal/usecase/embedding"
	"github.com/threadress/stylerank/internal/usecase/understand"
)

// Service runs searches end to end.
type Service struct {
	embedder  embedder
	retriever retriever
	reranker  reranker

	defaultK int
	maxK     int
	weights  domain.Weights
	logger   *zap.Logger
}

// Config wires the search service.
type Config struct {
	Embedder  embedder
	Retriever retriever
	Reranker  reranker
	DefaultK  int
	MaxK      int
	Weights   domain.Weights
	Logger    *zap.Logger
}

// NewService creates the search service.
func NewService(cfg *Config) *Service {
	return &Service{
		embedder:  cfg.Embedder,
		retriever: cfg.Retriever,
		reranker:  cfg.Reranker,
		defaultK:  cfg.DefaultK,
		maxK:      cfg.MaxK,
		weights:   cfg.Weights,
		logger:    cfg.Logger,
	}
}

// Response is the outcome of one search, including the understanding
// artifacts so callers can see how the query was interpreted.
type Response struct {
	Results    []domain.EnhancedResult `json:"results"`
	Normalized string                  `json:"normalized_query"`
	Enhanced   string                  `json:"enhanced_query"`
	Context    domain.StyleContext     `json:"context"`
	Variants   []string                `json:"variants,omitempty"`
}

// Search runs the single-query pipeline. Candidates are reranked
// against the raw query text, not the enhanced one, so keyword signals
// reflect what the user actually typed.
func (s *Service) Search(ctx context.Context, q domain.Query) (*Response, error) {
	if err := validate(q); err != nil {
		return nil, err
	}
	k := s.clampK(q.K)
	weights := s.pickWeights(q.Weights)

	normalized := understand.Normalize(q.Text)
	styleCtx := understand.ExtractContext(normalized)
	enhanced := understand.EnhancedQuery(normalized, styleCtx)

	textVec := s.embedder.EmbedText(ctx, enhanced)
	imageVec := s.embedder.EmbedImage(ctx, q.ImageURL)
	vibeVec := s.embedder.EmbedVibe(ctx, understand.VibeText(styleCtx))
	fused := embedding.Fuse(textVec, imageVec, vibeVec, weights)

	candidates, err := s.retriever.Search(ctx, fused, k, q.Filters)
	if err != nil {
		metrics.SearchRequestsTotal.WithLabelValues("single", "error").Inc()
		return nil, err
	}

	results := s.reranker.Rerank(ctx, q.Text, styleCtx, candidates)
	metrics.SearchRequestsTotal.WithLabelValues("single", "ok").Inc()

	s.logger.Debug("search pipeline complete",
		zap.String("normalized_query", normalized),
		zap.Int("k", k),
		zap.Int("results", len(results)))

	return &Response{
		Results:    results,
		Normalized: normalized,
		Enhanced:   enhanced,
		Context:    styleCtx,
	}, nil
}

func validate(q domain.Query) error {
	if strings.TrimSpace(q.Text) == "" && q.ImageURL == "" {
		return fmt.Errorf("%w: query text or image URL required", domain.ErrInvalidRequest)
	}
	return nil
}

func (s *Service) clampK(k int) int {
	if k <= 0 {
		return s.defaultK
	}
	if k > s.maxK {
		return s.maxK
	}
	return k
}

func (s *Service) pickWeights(w domain.Weights) domain.Weights {
	if w.Sum() <= 0 {
		return s.weights
	}
	return w
}
