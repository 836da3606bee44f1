package embedding

import (
	"context"

	"github.com/threadress/stylerank/internal/domain"
)

// fastPath is the consumer interface for the CLIP service client (ISP).
type fastPath interface {
	Available(ctx context.Context) bool
	EmbedText(ctx context.Context, text string) (domain.Vector, error)
	EmbedImage(ctx context.Context, imageURL string) (domain.Vector, error)
	EmbedTextBatch(ctx context.Context, texts []string) ([]domain.Vector, error)
	EmbedImageBatch(ctx context.Context, imageURLs []string) ([]domain.Vector, error)
	HealthCheck(ctx context.Context) error
}

// hostedText is a hosted text-embedding provider in the fallback chain.
type hostedText interface {
	EmbedText(ctx context.Context, text string) (domain.Vector, error)
}

// hostedImage is a hosted image-embedding provider in the fallback chain.
type hostedImage interface {
	EmbedImage(ctx context.Context, imageURL string) (domain.Vector, error)
}
