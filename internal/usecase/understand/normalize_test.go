package understand

import (
	"strings"
	"testing"
)

func TestNormalize_AppendsCanonicalTerms(t *testing.T) {
	got := Normalize("drss for pary")

	if !strings.HasPrefix(got, "drss for pary") {
		t.Errorf("original query must be preserved as prefix, got %q", got)
	}
	if !strings.Contains(got, "dress") {
		t.Errorf("expected canonical 'dress' appended, got %q", got)
	}
	if !strings.Contains(got, "party") {
		t.Errorf("expected canonical 'party' appended, got %q", got)
	}
}

func TestNormalize_NoTyposUnchanged(t *testing.T) {
	q := "red dress for a wedding"
	if got := Normalize(q); got != q {
		t.Errorf("clean query must pass through unchanged, got %q", got)
	}
}

func TestNormalize_Deduplicates(t *testing.T) {
	got := Normalize("drss dres")
	if strings.Count(got, "dress") != 1 {
		t.Errorf("canonical term must be appended once, got %q", got)
	}
}

func TestNormalize_CanonicalAlreadyInQuery(t *testing.T) {
	// The typo matches "dress", but the shopper already typed the
	// canonical term; nothing should be appended.
	q := "dress drss"
	if got := Normalize(q); got != q {
		t.Errorf("expected %q unchanged, got %q", q, got)
	}
}

func TestNormalize_EmptyQuery(t *testing.T) {
	if got := Normalize(""); got != "" {
		t.Errorf("expected empty output, got %q", got)
	}
	if got := Normalize("   "); got != "   " {
		t.Errorf("whitespace query must pass through, got %q", got)
	}
}

func TestNormalize_KnownMisspellings(t *testing.T) {
	tests := []struct {
		query string
		want  string
	}{
		{"blak cardgn", "black"},
		{"blak cardign", "cardigan"},
		{"elegnt silk drss", "elegant"},
		{"casul sweter", "sweater"},
		{"lether jaket", "leather"},
	}
	for _, tt := range tests {
		got := Normalize(tt.query)
		if !strings.Contains(got, tt.want) {
			t.Errorf("Normalize(%q) = %q, expected %q appended", tt.query, got, tt.want)
		}
	}
}

func TestSimilarity(t *testing.T) {
	tests := []struct {
		a, b string
		want float64
	}{
		{"dress", "dress", 1.0},
		{"", "", 1.0},
		{"drss", "dress", 0.8},
		{"abc", "xyz", 0.0},
	}
	for _, tt := range tests {
		got := Similarity(tt.a, tt.b)
		if diff := got - tt.want; diff > 1e-9 || diff < -1e-9 {
			t.Errorf("Similarity(%q, %q) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestLevenshtein(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"kitten", "sitting", 3},
		{"dress", "drss", 1},
		{"", "abc", 3},
		{"same", "same", 0},
	}
	for _, tt := range tests {
		if got := levenshtein(tt.a, tt.b); got != tt.want {
			t.Errorf("levenshtein(%q, %q) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}
