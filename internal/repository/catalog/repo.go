// Package catalog reads product candidates from the externally
// maintained vector index.
package catalog

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/threadress/stylerank/internal/db"
	"github.com/threadress/stylerank/internal/domain"
)

// returnFields are the payload fields requested from the index on
// every KNN search, plus the score field injected by the engine.
var returnFields = []string{
	"title", "category", "description", "color", "material",
	"style", "occasion", "season", "tags", "brand", "price", "in_stock",
	"__vector_score",
}

// Repository retrieves candidates via KNN search.
type Repository struct {
	store     db.Searcher
	indexName string
	keyPrefix string
}

// NewRepository creates a catalog repository over the given index.
func NewRepository(store db.Searcher, indexName, keyPrefix string) *Repository {
	return &Repository{store: store, indexName: indexName, keyPrefix: keyPrefix}
}

// Search runs a KNN query against the catalog and returns candidates
// ordered by similarity.
func (r *Repository) Search(
	ctx context.Context, vector domain.Vector, k int, filters domain.Filters,
) ([]domain.Candidate, error) {
	res, err := r.store.SearchKNN(ctx, &db.KNNQuery{
		IndexName:    r.indexName,
		Filter:       buildFilter(filters),
		Vector:       vector,
		K:            k,
		ReturnFields: returnFields,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrRetrievalFailed, err)
	}

	candidates := make([]domain.Candidate, 0, len(res.Entries))
	for _, e := range res.Entries {
		candidates = append(candidates, domain.Candidate{
			ID:      strings.TrimPrefix(e.Key, r.keyPrefix),
			Score:   e.Score,
			Payload: parsePayload(e.Fields),
		})
	}
	return candidates, nil
}

// buildFilter translates scalar filters into an FT.SEARCH pre-filter.
func buildFilter(f domain.Filters) string {
	if f.IsEmpty() {
		return ""
	}

	var parts []string
	if f.Category != "" {
		parts = append(parts, tagFilter("category", f.Category))
	}
	if f.Brand != "" {
		parts = append(parts, tagFilter("brand", f.Brand))
	}
	if f.InStock != nil {
		if *f.InStock {
			parts = append(parts, tagFilter("in_stock", "1"))
		} else {
			parts = append(parts, tagFilter("in_stock", "0"))
		}
	}
	if f.PriceMin != nil || f.PriceMax != nil {
		minBound := "-inf"
		maxBound := "+inf"
		if f.PriceMin != nil {
			minBound = fmt.Sprintf("%g", *f.PriceMin)
		}
		if f.PriceMax != nil {
			maxBound = fmt.Sprintf("%g", *f.PriceMax)
		}
		parts = append(parts, fmt.Sprintf("@price:[%s %s]", minBound, maxBound))
	}
	return strings.Join(parts, " ")
}

func tagFilter(key, value string) string {
	return fmt.Sprintf("@%s:{%s}", key, tagEscaper.Replace(value))
}

var tagEscaper = strings.NewReplacer(
	",", "\\,",
	".", "\\.",
	"<", "\\<",
	">", "\\>",
	"{", "\\{",
	"}", "\\}",
	"\"", "\\\"",
	"'", "\\'",
	":", "\\:",
	";", "\\;",
	"!", "\\!",
	"@", "\\@",
	"#", "\\#",
	"$", "\\$",
	"%", "\\%",
	"^", "\\^",
	"&", "\\&",
	"*", "\\*",
	"(", "\\(",
	")", "\\)",
	"-", "\\-",
	"+", "\\+",
	"=", "\\=",
	"~", "\\~",
	" ", "\\ ",
)

func parsePayload(fields map[string]string) domain.Payload {
	p := domain.Payload{
		Title:       fields["title"],
		Category:    fields["category"],
		Description: fields["description"],
		Color:       fields["color"],
		Material:    fields["material"],
		Style:       fields["style"],
		Occasion:    fields["occasion"],
		Season:      fields["season"],
		Brand:       fields["brand"],
	}
	if tags := fields["tags"]; tags != "" {
		for _, t := range strings.Split(tags, ",") {
			if t = strings.TrimSpace(t); t != "" {
				p.Tags = append(p.Tags, t)
			}
		}
	}
	if v, err := strconv.ParseFloat(fields["price"], 64); err == nil {
		p.Price = v
	}
	p.InStock = fields["in_stock"] == "1" || strings.EqualFold(fields["in_stock"], "true")
	return p
}
