// Package understand turns raw shopper queries into normalized text,
// style context, and lexical variants for retrieval.
package understand

import "strings"

const similarityThreshold = 0.7

// Normalize appends canonical lexicon terms for tokens that look like
// typos of known fashion vocabulary. The original query is always
// preserved as the prefix so downstream keyword matching still sees
// the shopper's exact phrasing. Pure function.
func Normalize(query string) string {
	trimmed := strings.TrimSpace(query)
	if trimmed == "" {
		return query
	}

	tokens := strings.Fields(strings.ToLower(trimmed))

	// Seed with the query's own tokens so a canonical term the shopper
	// already typed is never appended again.
	seen := make(map[string]struct{}, len(tokens))
	for _, token := range tokens {
		seen[token] = struct{}{}
	}

	var appended []string
	for _, token := range tokens {
		if _, stop := normalizeStopWords[token]; stop {
			continue
		}
		for _, entry := range fashionLexicon {
			if _, dup := seen[entry.canonical]; dup {
				continue
			}
			if matchesEntry(token, entry) {
				seen[entry.canonical] = struct{}{}
				appended = append(appended, entry.canonical)
			}
		}
	}

	if len(appended) == 0 {
		return query
	}
	return query + " " + strings.Join(appended, " ")
}

func matchesEntry(token string, entry lexiconEntry) bool {
	if Similarity(token, entry.canonical) >= similarityThreshold {
		return true
	}
	for _, v := range entry.variants {
		if Similarity(token, v) >= similarityThreshold {
			return true
		}
	}
	return false
}

// Similarity is the normalized Levenshtein ratio in [0,1]: identical
// strings score 1, completely different strings score 0.
func Similarity(a, b string) float64 {
	maxLen := max(len(a), len(b))
	if maxLen == 0 {
		return 1.0
	}
	return 1.0 - float64(levenshtein(a, b))/float64(maxLen)
}

// levenshtein computes edit distance with a two-row DP table.
func levenshtein(a, b string) int {
	if a == b {
		return 0
	}
	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for j := range prev {
		prev[j] = j
	}

	for i := 1; i <= len(a); i++ {
		curr[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			curr[j] = min(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}
	return prev[len(b)]
}
