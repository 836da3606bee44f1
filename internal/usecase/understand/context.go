package understand

import (
	"strings"

	"github.com/threadress/stylerank/internal/domain"
)

// contextEntry is one term → canonical label row. Tables are slices so
// lookup order is fixed and the first query hit always wins.
type contextEntry struct {
	term  string
	label string
}

var occasionTable = []contextEntry{
	{"halloween", "Halloween"},
	{"party", "Party"},
	{"night out", "Night Out"},
	{"date night", "Date Night"},
	{"work", "Work"},
	{"office", "Office"},
	{"casual", "Casual"},
	{"formal", "Formal"},
	{"wedding", "Wedding"},
	{"cocktail", "Cocktail"},
	{"dinner", "Dinner"},
	{"vacation", "Vacation"},
	{"resort", "Resort"},
	{"gym", "Gym"},
	{"workout", "Workout"},
	{"beach", "Beach"},
	{"summer", "Summer"},
	{"winter", "Winter"},
	{"fall", "Fall"},
	{"spring", "Spring"},
}

var moodTable = []contextEntry{
	{"sexy", "Sexy"},
	{"elegant", "Elegant"},
	{"edgy", "Edgy"},
	{"romantic", "Romantic"},
	{"playful", "Playful"},
	{"sophisticated", "Sophisticated"},
	{"minimalist", "Minimalist"},
	{"bohemian", "Bohemian"},
	{"vintage", "Vintage"},
	{"modern", "Modern"},
	{"classic", "Classic"},
	{"trendy", "Trendy"},
	{"chic", "Chic"},
	{"glamorous", "Glamorous"},
	{"casual", "Casual"},
	{"comfortable", "Comfortable"},
}

var fitTable = []contextEntry{
	{"tight", "Tight"},
	{"fitted", "Fitted"},
	{"loose", "Loose"},
	{"oversized", "Oversized"},
	{"cropped", "Cropped"},
	{"long", "Long"},
	{"short", "Short"},
	{"high-waisted", "High-Waisted"},
	{"low-waisted", "Low-Waisted"},
	{"cinched", "Cinched"},
	{"belted", "Belted"},
	{"flowy", "Flowy"},
	{"structured", "Structured"},
	{"relaxed", "Relaxed"},
	{"bodycon", "Bodycon"},
	{"a-line", "A-Line"},
	{"wrap", "Wrap"},
	{"asymmetric", "Asymmetric"},
}

var colorTable = []contextEntry{
	{"black", "Black"},
	{"white", "White"},
	{"red", "Red"},
	{"blue", "Blue"},
	{"green", "Green"},
	{"yellow", "Yellow"},
	{"pink", "Pink"},
	{"purple", "Purple"},
	{"orange", "Orange"},
	{"brown", "Brown"},
	{"beige", "Beige"},
	{"navy", "Navy"},
	{"burgundy", "Burgundy"},
	{"maroon", "Maroon"},
	{"cream", "Cream"},
	{"ivory", "Ivory"},
	{"gray", "Gray"},
	{"grey", "Grey"},
	{"silver", "Silver"},
	{"gold", "Gold"},
	{"metallic", "Metallic"},
	{"neutral", "Neutral"},
	{"dark", "Dark"},
	{"light", "Light"},
	{"bright", "Bright"},
	{"pastel", "Pastel"},
}

var materialTable = []contextEntry{
	{"silk", "Silk"},
	{"satin", "Satin"},
	{"velvet", "Velvet"},
	{"leather", "Leather"},
	{"denim", "Denim"},
	{"cotton", "Cotton"},
	{"linen", "Linen"},
	{"wool", "Wool"},
	{"cashmere", "Cashmere"},
	{"jersey", "Jersey"},
	{"knit", "Knit"},
	{"lace", "Lace"},
	{"sequin", "Sequin"},
	{"metallic", "Metallic"},
	{"sheer", "Sheer"},
	{"mesh", "Mesh"},
	{"organza", "Organza"},
	{"chiffon", "Chiffon"},
	{"tulle", "Tulle"},
	{"faux fur", "Faux Fur"},
	{"suede", "Suede"},
	{"polyester", "Polyester"},
	{"viscose", "Viscose"},
	{"rayon", "Rayon"},
}

var styleTable = []contextEntry{
	{"minimalist", "Minimalist"},
	{"bohemian", "Bohemian"},
	{"vintage", "Vintage"},
	{"retro", "Retro"},
	{"modern", "Modern"},
	{"classic", "Classic"},
	{"contemporary", "Contemporary"},
	{"edgy", "Edgy"},
	{"romantic", "Romantic"},
	{"preppy", "Preppy"},
	{"streetwear", "Streetwear"},
	{"athleisure", "Athleisure"},
	{"gothic", "Gothic"},
	{"punk", "Punk"},
	{"grunge", "Grunge"},
}

// ExtractContext scans the lowercased query against the fixed term
// tables, first match wins per category. Deterministic and pure: two
// calls with the same input always agree.
func ExtractContext(query string) domain.StyleContext {
	lower := strings.ToLower(query)

	ctx := domain.StyleContext{
		Occasion: firstMatch(lower, occasionTable),
		Mood:     firstMatch(lower, moodTable),
		Fit:      firstMatch(lower, fitTable),
		Color:    firstMatch(lower, colorTable),
		Material: firstMatch(lower, materialTable),
		Style:    firstMatch(lower, styleTable),
		Season:   detectSeason(lower),
	}
	ctx.Vibe = deriveVibe(ctx)
	return ctx
}

func firstMatch(lowerQuery string, table []contextEntry) string {
	for _, e := range table {
		if strings.Contains(lowerQuery, e.term) {
			return e.label
		}
	}
	return ""
}

func detectSeason(lowerQuery string) string {
	switch {
	case strings.Contains(lowerQuery, "summer"):
		return "Summer"
	case strings.Contains(lowerQuery, "winter"):
		return "Winter"
	case strings.Contains(lowerQuery, "fall"), strings.Contains(lowerQuery, "autumn"):
		return "Fall"
	case strings.Contains(lowerQuery, "spring"):
		return "Spring"
	default:
		return ""
	}
}

func deriveVibe(ctx domain.StyleContext) string {
	if ctx.Mood != "" {
		return ctx.Mood
	}
	if ctx.Style != "" {
		return ctx.Style
	}
	if ctx.Occasion != "" {
		return ctx.Occasion
	}
	return "Elegant"
}

// EnhancedQuery builds the text actually sent to the text embedder:
// the query plus labeled context parts, pipe-separated.
func EnhancedQuery(query string, ctx domain.StyleContext) string {
	parts := []string{query}
	for _, p := range []struct{ label, value string }{
		{"vibe", ctx.Vibe},
		{"occasion", ctx.Occasion},
		{"mood", ctx.Mood},
		{"fit", ctx.Fit},
		{"color", ctx.Color},
		{"material", ctx.Material},
		{"style", ctx.Style},
		{"season", ctx.Season},
	} {
		if p.value != "" {
			parts = append(parts, p.label+": "+p.value)
		}
	}
	return strings.Join(parts, " | ")
}

// VibeText is the standalone text embedded as the vibe modality.
func VibeText(ctx domain.StyleContext) string {
	parts := []string{}
	if ctx.Vibe != "" {
		parts = append(parts, ctx.Vibe)
	}
	parts = append(parts, ctx.Terms()...)
	return strings.Join(parts, " ")
}
