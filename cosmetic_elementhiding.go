package agtree

import (
	"github.com/scripthunter7/agtree-temp-sub000/internal/cssast"
)

// ElementHidingRule is the plain cosmetic body: a bare CSS selector list
// with no special pseudo-classes (§4.8.1).
type ElementHidingRule struct {
	cosmeticBase
	Body *cssast.SelectorList
}

// GenerateElementHidingRule serializes an ElementHidingRule back to
// "domains SEPARATOR selectorList".
func GenerateElementHidingRule(r *ElementHidingRule) string {
	return GenerateCosmeticPattern(r.Modifiers, r.Domains) + r.Separator + cssast.GenerateSelectorList(r.Body)
}
