package domain

// Weights controls how much each modality contributes to the fused
// query vector. Weights are renormalized before fusion, so they need
// not sum to 1.
type Weights struct {
	Text  float64 `json:"text"`
	Image float64 `json:"image"`
	Vibe  float64 `json:"vibe"`
}

// DefaultWeights returns the standard modality split.
func DefaultWeights() Weights {
	return Weights{Text: 0.5, Image: 0.3, Vibe: 0.2}
}

// Sum returns the total of all three weights.
func (w Weights) Sum() float64 {
	return w.Text + w.Image + w.Vibe
}

// Query is a single search request after request-level validation.
type Query struct {
	Text     string
	ImageURL string
	Weights  Weights
	K        int
	Filters  Filters
}
