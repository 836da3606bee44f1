package understand

import (
	"regexp"
	"strings"
)

const maxExpansions = 3

// synonymEntry pairs a query term with its substitution candidates.
// Slice order fixes which substitutions are tried first.
type synonymEntry struct {
	term     string
	synonyms []string
}

var synonymTable = []synonymEntry{
	{"dress", []string{"gown", "frock", "outfit"}},
	{"top", []string{"shirt", "blouse", "tee"}},
	{"pants", []string{"trousers", "slacks"}},
	{"jacket", []string{"blazer", "coat"}},
	{"shoes", []string{"footwear", "sneakers", "heels"}},
	{"bag", []string{"purse", "handbag", "tote"}},
	{"elegant", []string{"sophisticated", "refined", "classy"}},
	{"casual", []string{"relaxed", "comfortable", "everyday"}},
	{"sexy", []string{"alluring", "seductive"}},
	{"comfortable", []string{"cozy", "soft", "relaxed"}},
}

// Expand produces lexical variants of the query for multi-query
// retrieval: one substitution per synonym hit, deduplicated, capped at
// three variants including the original.
func Expand(query string) []string {
	expansions := []string{query}
	lower := strings.ToLower(query)

	for _, entry := range synonymTable {
		if !strings.Contains(lower, entry.term) {
			continue
		}
		re, err := regexp.Compile("(?i)" + regexp.QuoteMeta(entry.term))
		if err != nil {
			continue
		}
		for _, syn := range entry.synonyms {
			variant := re.ReplaceAllString(query, syn)
			if variant != query && !containsString(expansions, variant) {
				expansions = append(expansions, variant)
			}
		}
	}

	if len(expansions) > maxExpansions {
		expansions = expansions[:maxExpansions]
	}
	return expansions
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
