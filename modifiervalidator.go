package agtree

import "github.com/scripthunter7/agtree-temp-sub000/internal/modifiers"

// ModifierValidator is the public §6 "ModifierValidator.exists(modifier)"
// API: a read-only lookup over the §4.12 modifier compatibility corpus.
// Exists is intentionally not consulted anywhere on the core parse path
// (§9: "validation is explicitly out of scope for this core") - it is a
// standalone utility for callers such as cmd/agtreefmt that want to flag
// unknown or deprecated modifiers after parsing.
type ModifierValidator struct {
	v *modifiers.Validator
}

// DefaultModifierValidator returns the package-wide ModifierValidator built
// from the embedded modifier metadata corpus.
func DefaultModifierValidator() *ModifierValidator {
	return &ModifierValidator{v: modifiers.Default()}
}

// Exists reports whether modifier (optionally "~"-negated and/or
// "name=value") names a currently supported, non-deprecated modifier.
func (m *ModifierValidator) Exists(modifier string) bool {
	return m.v.Exists(modifier)
}
