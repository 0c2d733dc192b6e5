package agtree

import (
	"github.com/scripthunter7/agtree-temp-sub000/internal/location"
	"github.com/scripthunter7/agtree-temp-sub000/internal/scanner"
)

// NetworkRule is a blocking/allowing rule: an optional exception marker, a
// pattern, and an optional modifier list (§4.9).
type NetworkRule struct {
	base
	Exception bool
	Pattern   *Value
	Modifiers *ModifierList
}

// ParseNetworkRule implements §4.9. Unlike TryParseCosmeticRule it has no
// "not recognized" result - any text that isn't recognized by the comment or
// cosmetic dispatchers is, by construction, attempted as a network rule - but
// it does enforce the "pattern or modifiers non-empty" invariant.
func ParseNetworkRule(text string, base location.Location) (Rule, error) {
	t := scanner.Trim(text)
	offset := 0
	exception := false
	if len(t) >= 2 && t[0] == '@' && t[1] == '@' {
		exception = true
		offset = 2
	}
	rest := t[offset:]

	dollar := findPatternModifierSplit(rest)
	var patternText, modifiersText string
	modifiersOffset := -1
	if dollar == -1 {
		patternText = rest
	} else {
		patternText = rest[:dollar]
		modifiersText = rest[dollar+1:]
		modifiersOffset = offset + dollar + 1
	}

	var pattern *Value
	if patternText != "" {
		rng := location.NewRange(base, offset, offset+len(patternText))
		pattern = &Value{Value: patternText, Loc: &rng}
	}

	var modifiers *ModifierList
	if modifiersText != "" {
		var err error
		modifiers, err = ParseModifierList(modifiersText, location.Shift(base, modifiersOffset))
		if err != nil {
			return nil, err
		}
	}

	if pattern == nil && (modifiers == nil || len(modifiers.Children) == 0) {
		return nil, rangedError("NetworkRuleParseError", "network rule must have a non-empty pattern or a non-empty modifier list", base, 0, len(t))
	}

	return &NetworkRule{
		base:      newBase(CategoryNetwork, SyntaxCommon, rngPtr(base, 0, len(t))),
		Exception: exception,
		Pattern:   pattern,
		Modifiers: modifiers,
	}, nil
}

// findPatternModifierSplit locates the last unescaped '$' in s that is not
// immediately followed by '/' (which would mean it closes a /regex$/
// pattern rather than introducing the modifier list), or -1.
func findPatternModifierSplit(s string) int {
	for i := len(s) - 1; i >= 0; i-- {
		if s[i] != '$' {
			continue
		}
		if i > 0 && s[i-1] == '\\' {
			// count preceding backslashes to see if '$' itself is escaped
			n := 0
			for j := i - 1; j >= 0 && s[j] == '\\'; j-- {
				n++
			}
			if n%2 == 1 {
				continue
			}
		}
		if i+1 < len(s) && s[i+1] == '/' {
			continue
		}
		return i
	}
	return -1
}

// GenerateNetworkRule serializes a NetworkRule back to
// "[@@]pattern[$modifiers]".
func GenerateNetworkRule(r *NetworkRule) string {
	out := ""
	if r.Exception {
		out += "@@"
	}
	if r.Pattern != nil {
		out += r.Pattern.Value
	}
	if r.Modifiers != nil && len(r.Modifiers.Children) > 0 {
		out += "$" + GenerateModifierList(r.Modifiers)
	}
	return out
}
