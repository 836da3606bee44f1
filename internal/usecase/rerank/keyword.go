package rerank

import (
	"regexp"
	"strings"

	"github.com/threadress/stylerank/internal/domain"
)

var nonWordChars = regexp.MustCompile(`[^\w]`)

// extractQueryWords tokenizes the query into meaningful words:
// lowercased, punctuation stripped, stop words and words of length
// two or less dropped.
func extractQueryWords(query string) []string {
	var words []string
	for _, raw := range strings.Fields(strings.ToLower(query)) {
		word := nonWordChars.ReplaceAllString(raw, "")
		if len(word) <= 2 {
			continue
		}
		if _, stop := stopWords[word]; stop {
			continue
		}
		words = append(words, word)
	}
	return words
}

func isCategoryWord(word string) bool {
	_, ok := categoryWords[word]
	return ok
}

func wordBoundaryMatch(text, word string) bool {
	re, err := regexp.Compile(`\b` + regexp.QuoteMeta(word) + `\b`)
	if err != nil {
		return false
	}
	return re.MatchString(text)
}

// keywordMatch scores word-by-word query coverage of a candidate.
// Category words require near-exact presence: a candidate missing
// every category word scores 0.1, a hard soft-filter on item type.
// Returns 1.0 (neutral) when the query has no meaningful words.
func keywordMatch(p domain.Payload, query string) float64 {
	queryWords := extractQueryWords(query)
	if len(queryWords) == 0 {
		return 1.0
	}

	var catWords, otherWords []string
	for _, w := range queryWords {
		if isCategoryWord(w) {
			catWords = append(catWords, w)
		} else {
			otherWords = append(otherWords, w)
		}
	}

	title := strings.ToLower(p.Title)
	category := strings.ToLower(p.Category)
	searchable := p.SearchableText()

	var matchCount, catMatchCount, otherMatchCount, catPenalty float64

	// Category words: exact word boundaries, title/category first.
	for _, w := range catWords {
		switch {
		case wordBoundaryMatch(title, w) || wordBoundaryMatch(category, w):
			catMatchCount++
			matchCount++
		case wordBoundaryMatch(searchable, w):
			// Present only in description or tags, partial credit.
			catMatchCount += 0.8
			matchCount += 0.8
		default:
			catPenalty += 0.5
		}
	}

	// Other words: boundary match full credit, substring half credit.
	for _, w := range otherWords {
		switch {
		case wordBoundaryMatch(searchable, w):
			otherMatchCount++
			matchCount++
		case strings.Contains(searchable, w):
			otherMatchCount += 0.5
			matchCount += 0.5
		}
	}

	matchRatio := matchCount / float64(len(queryWords))

	var catPenaltyRatio float64
	if len(catWords) > 0 {
		catPenaltyRatio = catPenalty / float64(len(catWords))
	}
	adjustedRatio := matchRatio - catPenaltyRatio*0.3

	// Perfect category coverage: the largest boost tier, topped up by
	// other-word coverage.
	if len(catWords) > 0 && catMatchCount == float64(len(catWords)) {
		otherDen := float64(len(otherWords))
		if otherDen == 0 {
			otherDen = 1
		}
		return 1.6 + (otherMatchCount/otherDen)*0.2
	}

	// No category word matched at all: almost certainly the wrong item
	// type, drive the signal to near zero.
	if len(catWords) > 0 && catMatchCount == 0 {
		return 0.1
	}

	// Partial category coverage still gets penalized hard.
	if len(catWords) > 0 && catMatchCount < float64(len(catWords)) {
		catRatio := catMatchCount / float64(len(catWords))
		return max(0.2, catRatio*0.5+adjustedRatio*0.3)
	}

	base := max(0.5, 1.0+adjustedRatio*0.4)

	// Every word matched exactly: extra boost tier.
	if matchRatio == 1.0 {
		return base * 1.5
	}

	return base
}
