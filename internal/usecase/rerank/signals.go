package rerank

import (
	"math"
	"strings"
	"time"

	"github.com/threadress/stylerank/internal/domain"
)

// priceBand maps price language in the query to an expected range.
type priceBand struct {
	terms    []string
	min, max float64
}

// Bands are checked in order, first hit wins.
var priceBands = []priceBand{
	{[]string{"budget", "affordable", "cheap"}, 0, 50},
	{[]string{"mid-range", "moderate"}, 50, 150},
	{[]string{"luxury", "designer", "premium"}, 150, 1000},
	{[]string{"expensive", "high-end"}, 200, 1000},
}

// priceRelevance boosts candidates inside the price band the query
// implies, with a mild penalty far outside and linear interpolation
// near the boundary. Neutral when the query has no price language.
func priceRelevance(price float64, query string) float64 {
	lower := strings.ToLower(query)

	var band *priceBand
	for i := range priceBands {
		for _, term := range priceBands[i].terms {
			if strings.Contains(lower, term) {
				band = &priceBands[i]
				break
			}
		}
		if band != nil {
			break
		}
	}
	if band == nil {
		return 1.0
	}

	if price >= band.min && price <= band.max {
		return 1.2
	}
	if price < band.min*0.5 || price > band.max*1.5 {
		return 0.8
	}

	distance := math.Min(math.Abs(price-band.min), math.Abs(price-band.max))
	return 1.0 - (distance/(band.max-band.min))*0.2
}

// monthSeasons maps calendar months to season terms.
var monthSeasons = map[time.Month][]string{
	time.December:  {"winter", "holiday"},
	time.January:   {"winter"},
	time.February:  {"winter"},
	time.March:     {"spring"},
	time.April:     {"spring"},
	time.May:       {"spring"},
	time.June:      {"summer"},
	time.July:      {"summer"},
	time.August:    {"summer"},
	time.September: {"fall", "autumn"},
	time.October:   {"fall", "autumn"},
	time.November:  {"fall", "autumn"},
}

// seasonRelevance boosts candidates matching the current calendar
// season (1.15) or a season the query states explicitly (1.2). The
// calendar check runs first.
func seasonRelevance(p domain.Payload, ctx domain.StyleContext, now time.Time) float64 {
	productSeason := strings.ToLower(p.Season)
	productTags := strings.ToLower(strings.Join(p.Tags, " "))

	for _, s := range monthSeasons[now.Month()] {
		if strings.Contains(productSeason, s) || strings.Contains(productTags, s) {
			return 1.15
		}
	}

	if querySeason := strings.ToLower(ctx.Season); querySeason != "" {
		if strings.Contains(productSeason, querySeason) || strings.Contains(productTags, querySeason) {
			return 1.2
		}
	}

	return 1.0
}

// brandAffinity boosts a brand named in the query (1.3) above one from
// the caller's preferred list (1.15).
func brandAffinity(p domain.Payload, query string, preferredBrands []string) float64 {
	brand := strings.ToLower(p.Brand)
	if brand == "" {
		return 1.0
	}

	if strings.Contains(strings.ToLower(query), brand) {
		return 1.3
	}

	for _, preferred := range preferredBrands {
		if strings.Contains(brand, strings.ToLower(preferred)) {
			return 1.15
		}
	}

	return 1.0
}

var popularityTags = []string{"trending", "popular", "bestseller", "new", "featured"}

// popularity gives a small boost to candidates tagged as in demand.
func popularity(p domain.Payload) float64 {
	tags := strings.ToLower(strings.Join(p.Tags, " "))
	for _, kw := range popularityTags {
		if strings.Contains(tags, kw) {
			return 1.1
		}
	}
	return 1.0
}

// attribute lexicons consulted when the style context left a field
// empty but the raw query still names the attribute.
var (
	colorTerms = []string{
		"red", "blue", "green", "yellow", "black", "white", "pink", "purple",
		"orange", "brown", "gray", "grey", "navy", "beige", "tan", "cream",
		"ivory", "maroon", "burgundy", "teal", "turquoise", "coral", "salmon",
		"mint", "lavender", "rose", "gold", "silver", "bronze",
	}
	materialTerms = []string{
		"cotton", "linen", "silk", "wool", "cashmere", "polyester", "nylon",
		"spandex", "leather", "suede", "denim", "jersey", "satin", "velvet",
		"chiffon", "organza", "tulle", "mesh", "lace", "knit", "woven",
	}
	styleTerms = []string{
		"casual", "formal", "elegant", "sporty", "bohemian", "vintage",
		"modern", "classic", "minimalist", "edgy", "romantic", "chic",
		"sophisticated", "relaxed", "fitted", "loose", "oversized",
		"tailored", "flowy", "draped", "structured",
	}
	occasionTerms = []string{
		"wedding", "party", "work", "office", "formal", "casual", "date",
		"night", "day", "evening", "beach", "vacation", "travel", "gym",
		"sport", "exercise", "outdoor", "indoor", "dinner", "brunch",
		"lunch", "meeting", "presentation", "interview",
	}
	vibeTerms = []string{
		"sexy", "elegant", "comfortable", "cozy", "chic", "sophisticated",
		"edgy", "romantic", "playful", "minimal", "bold", "subtle",
		"feminine", "masculine", "vibrant", "muted", "bright", "dark",
		"light", "airy", "structured", "relaxed", "polished", "refined",
	}
	categoryTerms = []string{
		"dress", "top", "shirt", "blouse", "pants", "trousers", "jeans",
		"skirt", "jacket", "coat", "blazer", "cardigan", "sweater",
		"jumper", "shorts", "jumpsuit", "romper", "suit", "bag", "shoes",
		"heels", "sneakers", "boots", "sandals", "jewelry", "earrings",
		"necklace", "bracelet", "ring",
	}
)

func firstTermInQuery(lowerQuery string, terms []string) string {
	for _, t := range terms {
		if wordBoundaryMatch(lowerQuery, t) {
			return t
		}
	}
	return ""
}

// attributeMatch counts how many query attributes (color, material,
// style, occasion, vibe, category) the candidate satisfies and boosts
// proportionally, up to 1.5 for full coverage. Neutral when the query
// carries no recognizable attribute.
func attributeMatch(p domain.Payload, ctx domain.StyleContext, query string) float64 {
	lower := strings.ToLower(query)
	searchable := p.SearchableText()

	var total, matched int

	check := func(wanted, field string) {
		if wanted == "" {
			return
		}
		total++
		wanted = strings.ToLower(wanted)
		if strings.Contains(strings.ToLower(field), wanted) || strings.Contains(searchable, wanted) {
			matched++
		}
	}

	color := ctx.Color
	if color == "" {
		color = firstTermInQuery(lower, colorTerms)
	}
	check(color, p.Color)

	material := ctx.Material
	if material == "" {
		material = firstTermInQuery(lower, materialTerms)
	}
	check(material, p.Material)

	style := ctx.Style
	if style == "" {
		style = firstTermInQuery(lower, styleTerms)
	}
	check(style, p.Style)

	occasion := ctx.Occasion
	if occasion == "" {
		occasion = firstTermInQuery(lower, occasionTerms)
	}
	check(occasion, p.Occasion)

	vibe := ctx.Vibe
	if vibe == "" {
		vibe = firstTermInQuery(lower, vibeTerms)
	}
	if vibe != "" {
		total++
		if strings.Contains(searchable, strings.ToLower(vibe)) {
			matched++
		}
	}

	if category := firstTermInQuery(lower, categoryTerms); category != "" {
		total++
		if strings.Contains(strings.ToLower(p.Category), category) ||
			strings.Contains(strings.ToLower(p.Title), category) {
			matched++
		}
	}

	if total == 0 {
		return 1.0
	}
	return 1.0 + float64(matched)/float64(total)*0.5
}
