package search

import (
	"context"

	"github.com/threadress/stylerank/internal/domain"
)

// embedder acquires modality vectors. Implementations never fail; a
// provider outage degrades to zero vectors.
type embedder interface {
	EmbedText(ctx context.Context, text string) domain.Vector
	EmbedImage(ctx context.Context, imageURL string) domain.Vector
	EmbedVibe(ctx context.Context, vibeText string) domain.Vector
}

// retriever runs a KNN query against the catalog index.
type retriever interface {
	Search(ctx context.Context, vector domain.Vector, k int, filters domain.Filters) ([]domain.Candidate, error)
}

// reranker reorders retrieval candidates.
type reranker interface {
	Rerank(ctx context.Context, query string, styleCtx domain.StyleContext, candidates []domain.Candidate) []domain.EnhancedResult
}
