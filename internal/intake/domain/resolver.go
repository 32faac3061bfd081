package domain

import (
	"strings"

	"insurance_leads_backend/platform/apperr"
)

// typeAliases is the closed alias table collected from all three form
// versions. "investment" is the legacy vocabulary for savings products.
var typeAliases = map[string]InsuranceType{
	"car":        TypeAuto,
	"auto":       TypeAuto,
	"term":       TypeTermLife,
	"term_life":  TypeTermLife,
	"health":     TypeHealth,
	"savings":    TypeSavings,
	"investment": TypeSavings,
	"home":       TypeHome,
}

// ResolveType maps a free-form insurance-type token onto a canonical
// category. Tokens outside the alias table fail fast rather than passing
// through, keeping the canonical set closed.
func ResolveType(raw string) (InsuranceType, error) {
	token := strings.ToLower(strings.TrimSpace(raw))
	if token == "" {
		return "", apperr.Validation("insuranceType", "insurance type is required")
	}

	canonical, ok := typeAliases[token]
	if !ok {
		return "", apperr.Validation("insuranceType", "unsupported insurance type: "+token)
	}
	return canonical, nil
}

// KnownTypeAliases returns every accepted alias token. Used by tests and
// by the catalog request validation.
func KnownTypeAliases() []string {
	aliases := make([]string, 0, len(typeAliases))
	for alias := range typeAliases {
		aliases = append(aliases, alias)
	}
	return aliases
}
