package domain

import "context"

// TextEmbedder produces text embeddings.
type TextEmbedder interface {
	EmbedText(ctx context.Context, text string) (Vector, error)
	EmbedTextBatch(ctx context.Context, texts []string) ([]Vector, error)
	Dimensions() int
}

// ImageEmbedder produces image embeddings from URLs.
type ImageEmbedder interface {
	EmbedImage(ctx context.Context, imageURL string) (Vector, error)
	EmbedImageBatch(ctx context.Context, imageURLs []string) ([]Vector, error)
}

// HealthChecker reports provider availability.
type HealthChecker interface {
	HealthCheck(ctx context.Context) error
}
