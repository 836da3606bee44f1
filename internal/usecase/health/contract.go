package health

import "context"

// CatalogPinger checks that the catalog index store answers.
type CatalogPinger interface {
	Ping(ctx context.Context) error
}

// EmbeddingChecker checks that at least one embedding provider answers.
type EmbeddingChecker interface {
	HealthCheck(ctx context.Context) error
}
