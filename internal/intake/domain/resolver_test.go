package domain

import (
	"testing"

	"insurance_leads_backend/platform/apperr"
)

func TestResolveType_KnownAliases(t *testing.T) {
	cases := map[string]InsuranceType{
		"car":        TypeAuto,
		"auto":       TypeAuto,
		"term":       TypeTermLife,
		"term_life":  TypeTermLife,
		"health":     TypeHealth,
		"savings":    TypeSavings,
		"investment": TypeSavings,
		"home":       TypeHome,
		"CAR":        TypeAuto,
		"  Term  ":   TypeTermLife,
	}

	for input, want := range cases {
		got, err := ResolveType(input)
		if err != nil {
			t.Fatalf("ResolveType(%q) returned error: %v", input, err)
		}
		if got != want {
			t.Fatalf("ResolveType(%q) = %q, want %q", input, got, want)
		}
	}
}

func TestResolveType_Idempotent(t *testing.T) {
	for _, alias := range KnownTypeAliases() {
		canonical, err := ResolveType(alias)
		if err != nil {
			t.Fatalf("ResolveType(%q) returned error: %v", alias, err)
		}
		again, err := ResolveType(string(canonical))
		if err != nil {
			t.Fatalf("ResolveType(%q) not closed under resolution: %v", canonical, err)
		}
		if again != canonical {
			t.Fatalf("ResolveType(%q) = %q, expected fixed point %q", canonical, again, canonical)
		}
	}
}

func TestResolveType_UnknownTokenFailsFast(t *testing.T) {
	_, err := ResolveType("pet")
	if err == nil {
		t.Fatal("expected error for unknown token")
	}
	if !apperr.Is(err, apperr.KindValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestResolveType_EmptyToken(t *testing.T) {
	if _, err := ResolveType("  "); err == nil {
		t.Fatal("expected error for blank token")
	}
}
