package agtree

import (
	"github.com/scripthunter7/agtree-temp-sub000/internal/cssast"
	"github.com/scripthunter7/agtree-temp-sub000/internal/location"
)

// CssInjectionRule is the `{ mediaQueryList?, selectorList, declarationList?,
// remove }` cosmetic body (§4.8.2), reachable from both the uBO `:style()`/
// `:remove()` surface (via "##") and the AdGuard `selector { decls }`
// surface (via "#$#").
type CssInjectionRule struct {
	cosmeticBase
	MediaQueryList  *cssast.MediaQueryList
	SelectorList    *cssast.SelectorList
	DeclarationList *cssast.DeclarationList
	Remove          bool
}

var cssInjectionSpecialPseudos = map[string]bool{
	"matches-media": true,
	"style":         true,
	"remove":        true,
}

func isSpecialCssInjectionPseudo(name string) bool {
	return cssInjectionSpecialPseudos[name]
}

// parseElementHidingOrCssInjection implements the "##"-family dispatch row:
// try the uBO CSS-injection surface first, falling back to plain
// element-hiding when no special pseudo-class is present anywhere in the
// selector list.
func parseElementHidingOrCssInjection(cb cosmeticBase, bodyText string, bodyBase, origBase location.Location, fullText string) (Rule, error) {
	if bodyText == "" {
		return nil, rangedError("CosmeticRuleParseError", "cosmetic rule body cannot be empty", origBase, 0, len(fullText))
	}

	list, err := cssast.ParseSelectorList(bodyText, true)
	if err != nil {
		return nil, wrapCSSError(err, bodyBase)
	}

	hasSpecial := false
	for i, sel := range list.Children {
		for _, part := range sel.Parts {
			if part.Kind != cssast.PartPseudoClass || !isSpecialCssInjectionPseudo(part.PseudoName) {
				continue
			}
			if i != len(list.Children)-1 {
				return nil, rangedError("CosmeticRuleParseError", "special pseudo-class must appear only in the last selector of the list", bodyBase, 0, len(bodyText))
			}
			hasSpecial = true
		}
	}

	if !hasSpecial {
		return &ElementHidingRule{cosmeticBase: cb, Body: list}, nil
	}
	if cb.Modifiers != nil {
		return nil, rangedError("CosmeticRuleParseError", "AdGuard modifier list is not allowed with uBO-style CSS injection", origBase, 0, len(fullText))
	}

	last := list.Children[len(list.Children)-1]
	var mediaPart, stylePart, removePart *cssast.SelectorPart
	var regularParts []cssast.SelectorPart
	seenSpecial := false
	for idx := range last.Parts {
		p := &last.Parts[idx]
		if p.Kind == cssast.PartPseudoClass && isSpecialCssInjectionPseudo(p.PseudoName) {
			seenSpecial = true
			switch p.PseudoName {
			case "matches-media":
				if mediaPart != nil {
					return nil, rangedError("CosmeticRuleParseError", "duplicate :matches-media()", bodyBase, 0, len(bodyText))
				}
				mediaPart = p
			case "style":
				if stylePart != nil || removePart != nil {
					return nil, rangedError("CosmeticRuleParseError", ":style() and :remove() are mutually exclusive", bodyBase, 0, len(bodyText))
				}
				stylePart = p
			case "remove":
				if stylePart != nil || removePart != nil {
					return nil, rangedError("CosmeticRuleParseError", ":style() and :remove() are mutually exclusive", bodyBase, 0, len(bodyText))
				}
				removePart = p
			}
			continue
		}
		if seenSpecial {
			return nil, rangedError("CosmeticRuleParseError", "regular selector elements are not permitted after a special pseudo-class", bodyBase, 0, len(bodyText))
		}
		regularParts = append(regularParts, *p)
	}
	if stylePart == nil && removePart == nil {
		return nil, rangedError("CosmeticRuleParseError", "at least one of a declaration list or :remove() is required", bodyBase, 0, len(bodyText))
	}

	headList := &cssast.SelectorList{}
	headList.Children = append(headList.Children, list.Children[:len(list.Children)-1]...)
	headSelector := cssast.Selector{Parts: regularParts}
	headList.Children = append(headList.Children, headSelector)

	var mql *cssast.MediaQueryList
	if mediaPart != nil {
		mql, err = cssast.ParseMediaQueryList(mediaPart.PseudoArgs)
		if err != nil {
			return nil, wrapCSSError(err, bodyBase)
		}
	}

	var decls *cssast.DeclarationList
	remove := false
	if stylePart != nil {
		decls, err = cssast.ParseDeclarationList(stylePart.PseudoArgs, true)
		if err != nil {
			return nil, wrapCSSError(err, bodyBase)
		}
	} else {
		remove = true
	}

	cb = cb.withSyntax(SyntaxUblockOrigin)
	return &CssInjectionRule{
		cosmeticBase:    cb,
		MediaQueryList:  mql,
		SelectorList:    headList,
		DeclarationList: decls,
		Remove:          remove,
	}, nil
}

// parseAdgCssInjectionOrAbpSnippet implements the "#$#"-family dispatch row:
// try the AdGuard `selector { decls }` / `@media (...) { selector { decls }
// }` stylesheet surface first; for the plain (non-ExtCSS) separators, fall
// back to an ABP snippet-injection body when the stylesheet parse fails.
func parseAdgCssInjectionOrAbpSnippet(cb cosmeticBase, bodyText string, bodyBase location.Location) (Rule, error) {
	if bodyText == "" {
		return nil, rangedError("CosmeticRuleParseError", "cosmetic rule body cannot be empty", bodyBase, 0, 0)
	}

	rule, cssErr := tryParseAdgCssInjection(cb, bodyText, bodyBase)
	if cssErr == nil {
		return rule, nil
	}

	allowSnippet := cb.Separator == "#$#" || cb.Separator == "#@$#"
	if !allowSnippet {
		return nil, cssErr
	}
	return parseAbpScriptletInjectionBody(cb, bodyText, bodyBase)
}

func tryParseAdgCssInjection(cb cosmeticBase, bodyText string, bodyBase location.Location) (Rule, error) {
	sheet, err := cssast.ParseStylesheet(bodyText, true)
	if err != nil {
		return nil, wrapCSSError(err, bodyBase)
	}
	if len(sheet.Children) != 1 {
		return nil, rangedError("CosmeticRuleParseError", "AdGuard CSS-injection body must contain exactly one rule or @media at-rule", bodyBase, 0, len(bodyText))
	}

	var selList *cssast.SelectorList
	var declList *cssast.DeclarationList
	var mql *cssast.MediaQueryList

	switch n := sheet.Children[0].(type) {
	case *cssast.Rule:
		selList = n.Prelude
		declList = n.Block
	case *cssast.AtRule:
		if n.Name != "media" {
			return nil, rangedError("CosmeticRuleParseError", "only @media is allowed in an AdGuard CSS-injection body", bodyBase, 0, len(bodyText))
		}
		if n.Block == nil || len(n.Block.Children) != 1 {
			return nil, rangedError("CosmeticRuleParseError", "@media block must contain exactly one rule", bodyBase, 0, len(bodyText))
		}
		inner, ok := n.Block.Children[0].(*cssast.Rule)
		if !ok {
			return nil, rangedError("CosmeticRuleParseError", "@media block must contain a plain rule", bodyBase, 0, len(bodyText))
		}
		selList = inner.Prelude
		declList = inner.Block
		mql, err = cssast.ParseMediaQueryList(n.Prelude)
		if err != nil {
			return nil, wrapCSSError(err, bodyBase)
		}
	default:
		return nil, rangedError("CosmeticRuleParseError", "unrecognized AdGuard CSS-injection body", bodyBase, 0, len(bodyText))
	}

	remove := declList.HasRemove()
	if remove && len(declList.Children) != 1 {
		return nil, rangedError("CosmeticRuleParseError", "a 'remove' declaration cannot coexist with other declarations", bodyBase, 0, len(bodyText))
	}
	if remove {
		declList = nil
	}

	cb = cb.withSyntax(SyntaxAdGuard)
	return &CssInjectionRule{
		cosmeticBase:    cb,
		MediaQueryList:  mql,
		SelectorList:    selList,
		DeclarationList: declList,
		Remove:          remove,
	}, nil
}

// GenerateCssInjectionRule serializes a CssInjectionRule back to its uBO or
// AdGuard surface syntax depending on the rule's dialect tag.
func GenerateCssInjectionRule(r *CssInjectionRule) string {
	prefix := GenerateCosmeticPattern(r.Modifiers, r.Domains) + r.Separator
	if r.SyntaxDialect() == SyntaxAdGuard {
		body := cssast.GenerateSelectorList(r.SelectorList) + " { "
		if r.Remove {
			body += "remove: true;"
		} else {
			body += cssast.GenerateDeclarationList(r.DeclarationList)
		}
		body += " }"
		if r.MediaQueryList != nil {
			body = "@media " + cssast.GenerateMediaQueryList(r.MediaQueryList) + " { " + body + " }"
		}
		return prefix + body
	}

	body := cssast.GenerateSelectorList(r.SelectorList)
	if r.MediaQueryList != nil {
		body += ":matches-media(" + cssast.GenerateMediaQueryList(r.MediaQueryList) + ")"
	}
	if r.Remove {
		body += ":remove()"
	} else {
		body += ":style(" + cssast.GenerateDeclarationList(r.DeclarationList) + ")"
	}
	return prefix + body
}

// wrapCSSError translates a cssast.ParseError's offset into the enclosing
// rule's base location (§7, "Delegated errors").
func wrapCSSError(err error, base location.Location) error {
	if pe, ok := err.(*cssast.ParseError); ok {
		rng := location.NewRange(base, pe.Offset, pe.Offset)
		return &CSSError{Err: pe, Loc: &rng}
	}
	return &CSSError{Err: err}
}
