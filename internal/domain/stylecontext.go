package domain

// StyleContext holds the style attributes extracted from a query.
// Empty fields mean the query did not mention that aspect.
type StyleContext struct {
	Occasion string `json:"occasion,omitempty"`
	Mood     string `json:"mood,omitempty"`
	Fit      string `json:"fit,omitempty"`
	Color    string `json:"color,omitempty"`
	Material string `json:"material,omitempty"`
	Style    string `json:"style,omitempty"`
	Season   string `json:"season,omitempty"`
	Vibe     string `json:"vibe"`
}

// Terms returns the non-empty context values in a fixed order,
// suitable for joining into an embedding prompt.
func (s StyleContext) Terms() []string {
	var terms []string
	for _, t := range []string{s.Occasion, s.Mood, s.Fit, s.Color, s.Material, s.Style, s.Season} {
		if t != "" {
			terms = append(terms, t)
		}
	}
	return terms
}

// IsEmpty reports whether no style attribute was extracted.
func (s StyleContext) IsEmpty() bool {
	return len(s.Terms()) == 0
}
