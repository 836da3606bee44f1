package embedding

import "strings"

// urlKeywords are garment, color, and material terms worth picking out
// of an image URL when no provider can embed the actual pixels.
var urlKeywords = []string{
	// garments
	"dress", "skirt", "jacket", "coat", "blazer", "cardigan", "sweater",
	"shirt", "blouse", "top", "pants", "trousers", "jeans", "shorts",
	"jumpsuit", "romper", "suit", "shoes", "heels", "sneakers", "boots",
	"sandals", "bag", "purse", "handbag", "tote", "scarf", "hat", "belt",
	// colors
	"black", "white", "red", "blue", "green", "yellow", "pink", "purple",
	"orange", "brown", "beige", "navy", "burgundy", "cream", "ivory",
	"gray", "grey", "silver", "gold",
	// materials
	"silk", "satin", "velvet", "leather", "denim", "cotton", "linen",
	"wool", "cashmere", "lace", "suede", "knit",
}

// DescribeImageURL derives a short textual description from an image
// URL by scanning it for known fashion terms. Returns a generic
// fallback phrase when nothing matches, so the caller always has
// something to embed.
func DescribeImageURL(imageURL string) string {
	lower := strings.ToLower(imageURL)

	var found []string
	for _, kw := range urlKeywords {
		if strings.Contains(lower, kw) {
			found = append(found, kw)
		}
	}

	if len(found) == 0 {
		return "fashion item clothing"
	}
	return strings.Join(found, " ")
}
