package understand

import (
	"strings"
	"testing"
)

func TestExtractContext_FullQuery(t *testing.T) {
	ctx := ExtractContext("tight black silk dress for a wedding")

	if ctx.Fit != "Tight" {
		t.Errorf("expected fit=Tight, got %q", ctx.Fit)
	}
	if ctx.Color != "Black" {
		t.Errorf("expected color=Black, got %q", ctx.Color)
	}
	if ctx.Material != "Silk" {
		t.Errorf("expected material=Silk, got %q", ctx.Material)
	}
	if ctx.Occasion != "Wedding" {
		t.Errorf("expected occasion=Wedding, got %q", ctx.Occasion)
	}
	if ctx.Vibe == "" {
		t.Error("vibe must never be empty")
	}
}

func TestExtractContext_Deterministic(t *testing.T) {
	q := "cozy oversized knit sweater for fall"
	first := ExtractContext(q)
	second := ExtractContext(q)
	if first != second {
		t.Errorf("identical inputs produced different contexts:\n%+v\n%+v", first, second)
	}
}

func TestExtractContext_VibeFallbacks(t *testing.T) {
	tests := []struct {
		query string
		want  string
	}{
		{"sexy vintage party dress", "Sexy"},   // mood wins
		{"retro party dress", "Retro"},         // no mood, style wins
		{"wedding guest dress", "Wedding"},     // no mood or style, occasion wins
		{"plain blue jeans", "Elegant"},        // default
	}
	for _, tt := range tests {
		ctx := ExtractContext(tt.query)
		if ctx.Vibe != tt.want {
			t.Errorf("ExtractContext(%q).Vibe = %q, want %q", tt.query, ctx.Vibe, tt.want)
		}
	}
}

func TestExtractContext_FirstMatchWins(t *testing.T) {
	// "party" precedes "work" in the occasion table.
	ctx := ExtractContext("party outfit that works at work")
	if ctx.Occasion != "Party" {
		t.Errorf("expected first table hit Party, got %q", ctx.Occasion)
	}
}

func TestExtractContext_Season(t *testing.T) {
	tests := []struct {
		query string
		want  string
	}{
		{"summer linen dress", "Summer"},
		{"warm winter coat", "Winter"},
		{"autumn layers", "Fall"},
		{"spring florals", "Spring"},
		{"black jeans", ""},
	}
	for _, tt := range tests {
		if got := ExtractContext(tt.query).Season; got != tt.want {
			t.Errorf("season for %q = %q, want %q", tt.query, got, tt.want)
		}
	}
}

func TestEnhancedQuery(t *testing.T) {
	ctx := ExtractContext("tight black silk dress for a wedding")
	got := EnhancedQuery("tight black silk dress for a wedding", ctx)

	for _, want := range []string{"occasion: Wedding", "fit: Tight", "color: Black", "material: Silk"} {
		if !strings.Contains(got, want) {
			t.Errorf("enhanced query missing %q: %s", want, got)
		}
	}
	if got[:4] != "tigh" {
		t.Errorf("enhanced query must start with original text, got %q", got)
	}
}

func TestVibeText_NonEmpty(t *testing.T) {
	ctx := ExtractContext("anything at all")
	if VibeText(ctx) == "" {
		t.Error("vibe text must never be empty, the vibe default guarantees a term")
	}
}

