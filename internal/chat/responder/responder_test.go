package responder

import (
	"strings"
	"testing"
)

func autoProfile() Profile {
	return Profile{InsuranceType: "auto", Name: "Jane", VehicleModel: "Civic"}
}

func TestRespond_QuoteKeywordUsesVehicleContext(t *testing.T) {
	got := Respond("How much would a quote cost for me?", autoProfile())
	if !strings.Contains(got, "Civic") {
		t.Fatalf("auto quote reply should mention the vehicle, got %q", got)
	}
}

func TestRespond_QuoteOutranksCoverage(t *testing.T) {
	// Both keyword sets match; the quote rule must win.
	got := Respond("what does a quote for full coverage cost", autoProfile())
	if !strings.Contains(got, "quote") {
		t.Fatalf("expected quote reply, got %q", got)
	}
}

func TestRespond_TermLifeQuoteUsesAge(t *testing.T) {
	p := Profile{InsuranceType: "term_life", Name: "Raj", Age: "35"}
	got := Respond("what are your rates", p)
	if !strings.Contains(got, "age 35") {
		t.Fatalf("term life quote reply should mention the age, got %q", got)
	}
}

func TestRespond_ClaimsKeyword(t *testing.T) {
	got := Respond("I had an accident yesterday", autoProfile())
	if !strings.Contains(got, "claims process") {
		t.Fatalf("expected claims reply, got %q", got)
	}
}

func TestRespond_CompareKeyword(t *testing.T) {
	got := Respond("how do you compare to others", Profile{InsuranceType: "health"})
	if !strings.Contains(got, "compare") {
		t.Fatalf("expected comparison reply, got %q", got)
	}
}

func TestRespond_HelpKeyword(t *testing.T) {
	got := Respond("please explain my options", Profile{InsuranceType: "health"})
	if !strings.Contains(got, "health insurance options") {
		t.Fatalf("expected help reply for health, got %q", got)
	}
}

func TestRespond_NoKeywordFallsBackToTypeDefault(t *testing.T) {
	got := Respond("hmm okay", autoProfile())
	if !strings.Contains(got, "auto insurance information") {
		t.Fatalf("expected auto default reply, got %q", got)
	}
}

func TestRespond_NoKeywordNoTypeUsesGenericFallback(t *testing.T) {
	got := Respond("hmm okay", Profile{Name: "Jane"})
	if !strings.Contains(got, "Thank you for your message, Jane") {
		t.Fatalf("expected generic fallback, got %q", got)
	}
}

func TestRespond_MatchingIsCaseInsensitive(t *testing.T) {
	got := Respond("GIVE ME A QUOTE", autoProfile())
	if !strings.Contains(got, "Civic") {
		t.Fatalf("uppercase message should still match, got %q", got)
	}
}

func TestWelcome_PerType(t *testing.T) {
	cases := []struct {
		typ  string
		want string
	}{
		{"auto", "perfect auto insurance"},
		{"term_life", "term life insurance advisor"},
		{"home", "home insurance options"},
		{"health", "health insurance guide"},
		{"savings", "savings plans"},
		{"", "insurance needs"},
	}
	for _, tc := range cases {
		got := Welcome(Profile{InsuranceType: tc.typ, Name: "Jane"})
		if !strings.Contains(got, tc.want) {
			t.Fatalf("welcome for %q missing %q: %q", tc.typ, tc.want, got)
		}
		if !strings.Contains(got, "Jane") {
			t.Fatalf("welcome for %q should greet by name: %q", tc.typ, got)
		}
	}
}

func TestProfileFromContext(t *testing.T) {
	p := ProfileFromContext(map[string]interface{}{
		"name":          "Jane",
		"insuranceType": "car",
		"vehicleModel":  "Civic",
		"age":           float64(30),
	})
	if p.InsuranceType != "auto" {
		t.Fatalf("alias not resolved: %q", p.InsuranceType)
	}
	if p.Name != "Jane" || p.VehicleModel != "Civic" || p.Age != "30" {
		t.Fatalf("profile fields wrong: %+v", p)
	}
}

func TestProfileFromContext_UnknownTypeDegrades(t *testing.T) {
	p := ProfileFromContext(map[string]interface{}{"insuranceType": "pet", "name": "Jane"})
	if p.InsuranceType != "" {
		t.Fatalf("unknown type should degrade to empty, got %q", p.InsuranceType)
	}
	got := Respond("hello", p)
	if !strings.Contains(got, "Thank you for your message") {
		t.Fatalf("expected generic fallback, got %q", got)
	}
}
