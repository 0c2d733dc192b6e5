package agtree

import (
	"github.com/scripthunter7/agtree-temp-sub000/internal/location"
	"github.com/scripthunter7/agtree-temp-sub000/internal/scanner"
)

// cosmeticBase is embedded by every concrete cosmetic-rule node, carrying
// the fields common to all five body dialects (§3, "Cosmetic family").
type cosmeticBase struct {
	base
	Modifiers *ModifierList
	Domains   *DomainList
	Separator string
	Exception bool
}

// withSyntax returns a copy of cb with its dialect tag replaced, used when
// a body parser determines the concrete dialect only after inspecting the
// body (e.g. "##" resolving to UblockOrigin once a uBO-style CSS-injection
// pseudo-class is found).
func (cb cosmeticBase) withSyntax(s Syntax) cosmeticBase {
	cb.base = newBase(cb.base.category, s, cb.base.loc)
	return cb
}

// TryParseCosmeticRule implements the §4.8 cosmetic-rule dispatcher. It
// returns ok=false (no error) when text carries no cosmetic separator at
// all, so the top-level dispatcher can fall through to the network parser.
func TryParseCosmeticRule(text string, base location.Location) (Rule, bool, error) {
	t := scanner.Trim(text)
	sep := findCosmeticSeparator(t)
	if sep == nil {
		return nil, false, nil
	}

	patternText := scanner.Trim(t[:sep.Start])
	bodyText := scanner.Trim(t[sep.End:])

	modifiers, domains, patternSyntax, err := parseCosmeticPattern(patternText, base)
	if err != nil {
		return nil, true, err
	}

	cb := cosmeticBase{
		base:      newBase(CategoryCosmetic, patternSyntax, rngPtr(base, 0, len(t))),
		Modifiers: modifiers,
		Domains:   domains,
		Separator: sep.Token,
		Exception: sep.Exception,
	}
	bodyBase := location.Shift(base, sep.End)

	switch sep.Token {
	case "##", "#@#", "#?#", "#@?#":
		rule, err := parseElementHidingOrCssInjection(cb, bodyText, bodyBase, base, t)
		return rule, true, err
	case "#$#", "#@$#", "#$?#", "#@$?#":
		rule, err := parseAdgCssInjectionOrAbpSnippet(cb, bodyText, bodyBase)
		return rule, true, err
	case "##+", "#@#+":
		if modifiers != nil {
			return nil, true, rangedError("CosmeticRuleParseError", "AdGuard modifier list is not allowed with uBO scriptlet-injection separators", base, 0, len(t))
		}
		rule, err := parseUboScriptletInjectionBody(cb, bodyText, bodyBase)
		return rule, true, err
	case "#%#", "#@%#":
		rule, err := parseAdgScriptletOrJsInjectionBody(cb, bodyText, bodyBase)
		return rule, true, err
	case "##^", "#@#^":
		if modifiers != nil {
			return nil, true, rangedError("CosmeticRuleParseError", "AdGuard modifier list is not allowed with uBO HTML-filtering separators", base, 0, len(t))
		}
		rule, err := parseUboHtmlFilteringBody(cb, bodyText, bodyBase)
		return rule, true, err
	case "$$", "$@$":
		rule, err := parseAdgHtmlFilteringBody(cb, bodyText, bodyBase)
		return rule, true, err
	}
	return nil, true, rangedError("CosmeticRuleParseError", "unrecognized cosmetic separator", base, sep.Start, sep.End)
}

// parseCosmeticPattern implements §4.8 step 3: an AdGuard modifier-prefixed
// pattern ("[$mods]domains") or a plain domain list.
func parseCosmeticPattern(pattern string, base location.Location) (*ModifierList, *DomainList, Syntax, error) {
	if pattern == "" {
		return nil, nil, SyntaxCommon, nil
	}
	if pattern[0] != '[' {
		domains, err := ParseDomainList(pattern, ',', base)
		if err != nil {
			return nil, nil, SyntaxCommon, err
		}
		return nil, domains, SyntaxCommon, nil
	}

	if len(pattern) < 2 || pattern[1] != '$' {
		return nil, nil, SyntaxAdGuard, rangedError("CosmeticRuleParseError", "expected '$' after '[' in AdGuard modifier list prefix", base, 0, len(pattern))
	}
	closeIdx := findMatchingBracket(pattern, 0)
	if closeIdx == -1 {
		return nil, nil, SyntaxAdGuard, rangedError("CosmeticRuleParseError", "missing closing ']' in AdGuard modifier list prefix", base, 0, len(pattern))
	}
	modifiersText := pattern[2:closeIdx]
	modifiers, err := ParseModifierList(modifiersText, location.Shift(base, 2))
	if err != nil {
		return nil, nil, SyntaxAdGuard, err
	}
	remainder := scanner.Trim(pattern[closeIdx+1:])
	var domains *DomainList
	if remainder != "" {
		domains, err = ParseDomainList(remainder, ',', location.Shift(base, closeIdx+1))
		if err != nil {
			return nil, nil, SyntaxAdGuard, err
		}
	}
	return modifiers, domains, SyntaxAdGuard, nil
}

// findMatchingBracket returns the index of the ']' matching the '[' at
// s[openIdx], honoring escapes, or -1 if unbalanced.
func findMatchingBracket(s string, openIdx int) int {
	depth := 0
	for i := openIdx; i < len(s); i++ {
		switch s[i] {
		case '\\':
			i++
		case '[':
			depth++
		case ']':
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}

// GenerateCosmeticPattern re-joins the modifier list (if any) and domain
// list of a cosmetic rule back into its "[$mods]domains" or "domains" form.
func GenerateCosmeticPattern(modifiers *ModifierList, domains *DomainList) string {
	var out string
	if modifiers != nil {
		out += "[$" + GenerateModifierList(modifiers) + "]"
	}
	if domains != nil {
		out += GenerateDomainList(domains)
	}
	return out
}
