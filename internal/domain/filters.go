package domain

// Filters are scalar pre-filters applied during retrieval.
// Nil pointer fields mean "no constraint".
type Filters struct {
	Category string   `json:"category,omitempty"`
	Brand    string   `json:"brand,omitempty"`
	PriceMin *float64 `json:"price_min,omitempty"`
	PriceMax *float64 `json:"price_max,omitempty"`
	InStock  *bool    `json:"in_stock,omitempty"`
}

// IsEmpty reports whether no filter is set.
func (f Filters) IsEmpty() bool {
	return f.Category == "" && f.Brand == "" &&
		f.PriceMin == nil && f.PriceMax == nil && f.InStock == nil
}
