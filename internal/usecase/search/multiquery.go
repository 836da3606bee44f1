package search

import (
	"context"
	"sort"

	"go.uber.org/zap"

	"github.com/threadress/stylerank/internal/domain"
	"github.com/threadress/stylerank/internal/metrics"
	"github.com/threadress/stylerank/internal/usecase/embedding"
	"github.com/threadress/stylerank/internal/usecase/understand"
)

// MultiSearch retrieves each lexical variant of the query
// independently and merges the candidate sets, keeping a candidate's
// best score across variants. Image and vibe vectors are shared: only
// the text modality changes per variant.
func (s *Service) MultiSearch(ctx context.Context, q domain.Query) (*Response, error) {
	if err := validate(q); err != nil {
		return nil, err
	}
	k := s.clampK(q.K)
	weights := s.pickWeights(q.Weights)

	normalized := understand.Normalize(q.Text)
	styleCtx := understand.ExtractContext(normalized)
	variants := understand.Expand(normalized)

	imageVec := s.embedder.EmbedImage(ctx, q.ImageURL)
	vibeVec := s.embedder.EmbedVibe(ctx, understand.VibeText(styleCtx))

	best := make(map[string]domain.Candidate)
	for _, variant := range variants {
		enhanced := understand.EnhancedQuery(variant, styleCtx)
		textVec := s.embedder.EmbedText(ctx, enhanced)
		fused := embedding.Fuse(textVec, imageVec, vibeVec, weights)

		candidates, err := s.retriever.Search(ctx, fused, k, q.Filters)
		if err != nil {
			metrics.SearchRequestsTotal.WithLabelValues("multi", "error").Inc()
			return nil, err
		}
		for _, c := range candidates {
			if prev, ok := best[c.ID]; !ok || c.Score > prev.Score {
				best[c.ID] = c
			}
		}
	}

	merged := make([]domain.Candidate, 0, len(best))
	for _, c := range best {
		merged = append(merged, c)
	}
	sort.Slice(merged, func(i, j int) bool {
		if merged[i].Score != merged[j].Score {
			return merged[i].Score > merged[j].Score
		}
		return merged[i].ID < merged[j].ID
	})
	if len(merged) > k {
		merged = merged[:k]
	}

	results := s.reranker.Rerank(ctx, q.Text, styleCtx, merged)
	metrics.SearchRequestsTotal.WithLabelValues("multi", "ok").Inc()

	s.logger.Debug("multi-query pipeline complete",
		zap.String("normalized_query", normalized),
		zap.Strings("variants", variants),
		zap.Int("merged", len(merged)))

	return &Response{
		Results:    results,
		Normalized: normalized,
		Enhanced:   understand.EnhancedQuery(normalized, styleCtx),
		Context:    styleCtx,
		Variants:   variants,
	}, nil
}
