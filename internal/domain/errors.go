package domain

import "errors"

// Sentinel errors shared across layers. Wrap them with context via
// fmt.Errorf("...: %w", err) and test with errors.Is.
var (
	// ErrProviderUnavailable means an embedding provider could not be
	// reached or refused the request.
	ErrProviderUnavailable = errors.New("embedding provider unavailable")

	// ErrMalformedProviderResponse means a provider answered with a
	// payload that does not match its contract.
	ErrMalformedProviderResponse = errors.New("malformed provider response")

	// ErrRetrievalFailed means the catalog index could not serve the
	// KNN query.
	ErrRetrievalFailed = errors.New("catalog retrieval failed")

	// ErrInvalidRequest means the caller supplied an unusable request.
	ErrInvalidRequest = errors.New("invalid request")

	// ErrNotReady means a dependency has not finished starting up.
	ErrNotReady = errors.New("service not ready")
)
