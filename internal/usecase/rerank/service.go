// Package rerank reorders retrieval candidates using enhancement
// signals that vector similarity alone cannot capture.
package rerank

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/panjf2000/ants/v2"
	"go.uber.org/zap"

	"github.com/threadress/stylerank/internal/domain"
	"github.com/threadress/stylerank/internal/metrics"
)

// maxAdjustmentRatio bounds the total signal adjustment to a fraction
// of the base similarity score. Retrieval is trusted as primarily
// correct; signals only nudge the order.
const maxAdjustmentRatio = 0.05

// Weights are the per-signal blend weights.
type Weights struct {
	Keyword    float64
	Attribute  float64
	Price      float64
	Season     float64
	Brand      float64
	Popularity float64
}

// DefaultWeights returns the standard signal blend.
func DefaultWeights() Weights {
	return Weights{
		Keyword:    0.5,
		Attribute:  0.15,
		Price:      0.1,
		Season:     0.1,
		Brand:      0.1,
		Popularity: 0.05,
	}
}

// Service scores candidates on a shared worker pool.
type Service struct {
	pool            *ants.Pool
	weights         Weights
	preferredBrands []string
	logger          *zap.Logger
	now             func() time.Time
}

// NewService creates a reranker. The pool is shared and owned by the
// caller; pass nil to score candidates inline.
func NewService(pool *ants.Pool, weights Weights, preferredBrands []string, logger *zap.Logger) *Service {
	return &Service{
		pool:            pool,
		weights:         weights,
		preferredBrands: preferredBrands,
		logger:          logger,
		now:             time.Now,
	}
}

// Rerank scores every candidate independently and returns them sorted
// by final score descending. The output always has exactly one entry
// per input candidate; a candidate whose scoring panics keeps its base
// score with neutral signals.
func (s *Service) Rerank(
	_ context.Context,
	query string,
	styleCtx domain.StyleContext,
	candidates []domain.Candidate,
) []domain.EnhancedResult {
	if len(candidates) == 0 {
		return []domain.EnhancedResult{}
	}

	start := time.Now()
	results := make([]domain.EnhancedResult, len(candidates))

	var wg sync.WaitGroup
	for i, c := range candidates {
		wg.Add(1)
		task := func() {
			defer wg.Done()
			results[i] = s.scoreCandidate(query, styleCtx, c)
		}
		if s.pool == nil || s.pool.Submit(task) != nil {
			task()
		}
	}
	wg.Wait()

	sort.SliceStable(results, func(a, b int) bool {
		return results[a].Score > results[b].Score
	})

	metrics.RerankDuration.Observe(time.Since(start).Seconds())
	return results
}

func (s *Service) scoreCandidate(
	query string, styleCtx domain.StyleContext, c domain.Candidate,
) (result domain.EnhancedResult) {
	defer func() {
		if r := recover(); r != nil {
			metrics.RerankCandidateFailures.Inc()
			s.logger.Warn("candidate scoring failed, falling back to base score",
				zap.String("candidate_id", c.ID),
				zap.Any("panic", r))
			result = neutralResult(c)
		}
	}()

	signals := domain.Signals{
		Keyword:    keywordMatch(c.Payload, query),
		Attribute:  attributeMatch(c.Payload, styleCtx, query),
		Price:      priceRelevance(c.Payload.Price, query),
		Season:     seasonRelevance(c.Payload, styleCtx, s.now()),
		Brand:      brandAffinity(c.Payload, query, s.preferredBrands),
		Popularity: popularity(c.Payload),
	}

	adjustment := (signals.Keyword-1.0)*s.weights.Keyword +
		(signals.Attribute-1.0)*s.weights.Attribute +
		(signals.Price-1.0)*s.weights.Price +
		(signals.Season-1.0)*s.weights.Season +
		(signals.Brand-1.0)*s.weights.Brand +
		(signals.Popularity-1.0)*s.weights.Popularity

	maxAdjustment := c.Score * maxAdjustmentRatio
	if adjustment > maxAdjustment {
		adjustment = maxAdjustment
	} else if adjustment < -maxAdjustment {
		adjustment = -maxAdjustment
	}

	return domain.EnhancedResult{
		Candidate: domain.Candidate{
			ID:      c.ID,
			Score:   c.Score + adjustment,
			Payload: c.Payload,
		},
		BaseScore: c.Score,
		Signals:   &signals,
	}
}

func neutralResult(c domain.Candidate) domain.EnhancedResult {
	return domain.EnhancedResult{
		Candidate: c,
		BaseScore: c.Score,
		Signals:   domain.NeutralSignals(),
	}
}
