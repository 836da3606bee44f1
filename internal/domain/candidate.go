package domain

import "strings"

// Payload holds the catalog fields stored alongside a product vector.
type Payload struct {
	Title       string   `json:"title"`
	Category    string   `json:"category"`
	Description string   `json:"description,omitempty"`
	Color       string   `json:"color,omitempty"`
	Material    string   `json:"material,omitempty"`
	Style       string   `json:"style,omitempty"`
	Occasion    string   `json:"occasion,omitempty"`
	Season      string   `json:"season,omitempty"`
	Tags        []string `json:"tags,omitempty"`
	Brand       string   `json:"brand,omitempty"`
	Price       float64  `json:"price"`
	InStock     bool     `json:"in_stock"`
}

// SearchableText joins the textual payload fields into one lowercase
// blob used by keyword and attribute matching.
func (p Payload) SearchableText() string {
	parts := []string{
		p.Title, p.Category, p.Description,
		p.Color, p.Material, p.Style, p.Occasion, p.Season, p.Brand,
	}
	parts = append(parts, p.Tags...)
	return strings.ToLower(strings.Join(parts, " "))
}

// Candidate is a retrieval result before reranking.
type Candidate struct {
	ID      string  `json:"id"`
	Score   float64 `json:"score"`
	Payload Payload `json:"payload"`
}

// Signals holds the per-signal multipliers computed by the reranker.
type Signals struct {
	Keyword    float64 `json:"keyword"`
	Attribute  float64 `json:"attribute"`
	Price      float64 `json:"price"`
	Season     float64 `json:"season"`
	Brand      float64 `json:"brand"`
	Popularity float64 `json:"popularity"`
}

// NeutralSignals returns signals that leave the base score unchanged.
func NeutralSignals() *Signals {
	return &Signals{Keyword: 1, Attribute: 1, Price: 1, Season: 1, Brand: 1, Popularity: 1}
}

// EnhancedResult is a candidate with its reranked score and the
// signal breakdown that produced it. Signals is nil when the caller
// did not ask for the breakdown.
type EnhancedResult struct {
	Candidate
	BaseScore float64  `json:"base_score"`
	Signals   *Signals `json:"signals,omitempty"`
}
