package agtree

import (
	"strings"

	"github.com/scripthunter7/agtree-temp-sub000/internal/cssast"
	"github.com/scripthunter7/agtree-temp-sub000/internal/location"
)

// HtmlFilteringRule is the `$$`/`##^` body: either a CSS selector list or, on
// the uBO surface only, a single CSS function node (§4.8.4).
type HtmlFilteringRule struct {
	cosmeticBase
	SelectorList *cssast.SelectorList
	Function     *cssast.Function
}

// parseUboHtmlFilteringBody implements the "##^"/"#@#^" dispatch row: a
// selector list, falling back to a single function node (e.g.
// `responseheader(name)`) when the body doesn't parse as a selector list.
func parseUboHtmlFilteringBody(cb cosmeticBase, bodyText string, bodyBase location.Location) (Rule, error) {
	rule, err := parseHtmlFilteringBody(cb, bodyText, bodyBase, true)
	if err != nil {
		return nil, err
	}
	rule.(*HtmlFilteringRule).cosmeticBase = rule.(*HtmlFilteringRule).cosmeticBase.withSyntax(SyntaxUblockOrigin)
	return rule, nil
}

// parseAdgHtmlFilteringBody implements the "$$"/"$@$" dispatch row: a
// selector list only; a function-node body is rejected.
func parseAdgHtmlFilteringBody(cb cosmeticBase, bodyText string, bodyBase location.Location) (Rule, error) {
	cb = cb.withSyntax(SyntaxAdGuard)
	adgBody := unescapeAdgDoubleQuotes(bodyText)
	list, err := cssast.ParseSelectorList(adgBody, true)
	if err != nil {
		return nil, wrapCSSError(err, bodyBase)
	}
	return &HtmlFilteringRule{cosmeticBase: cb, SelectorList: list}, nil
}

// parseHtmlFilteringBody is the shared "selector list, else function node"
// fallback algorithm (§4.8.4).
func parseHtmlFilteringBody(cb cosmeticBase, bodyText string, bodyBase location.Location, allowFunction bool) (Rule, error) {
	list, err := cssast.ParseSelectorList(bodyText, true)
	if err == nil {
		return &HtmlFilteringRule{cosmeticBase: cb, SelectorList: list}, nil
	}
	pe, ok := err.(*cssast.ParseError)
	if !ok || !allowFunction || !strings.Contains(pe.Message, "selector expected") {
		return nil, wrapCSSError(err, bodyBase)
	}
	fn, ferr := cssast.ParseValueAsFunction(bodyText)
	if ferr != nil {
		return nil, wrapCSSError(ferr, bodyBase)
	}
	return &HtmlFilteringRule{cosmeticBase: cb, Function: fn}, nil
}

// unescapeAdgDoubleQuotes converts AdGuard's `""`-escaped string literals to
// ordinary `\"` escapes before the shared CSS-subset parser sees them.
func unescapeAdgDoubleQuotes(s string) string {
	return strings.ReplaceAll(s, `""`, `\"`)
}

// escapeAdgDoubleQuotes is the generate-side inverse of
// unescapeAdgDoubleQuotes.
func escapeAdgDoubleQuotes(s string) string {
	return strings.ReplaceAll(s, `\"`, `""`)
}

// GenerateHtmlFilteringRule serializes an HtmlFilteringRule back to its
// selector-list or function-node form.
func GenerateHtmlFilteringRule(r *HtmlFilteringRule) string {
	prefix := GenerateCosmeticPattern(r.Modifiers, r.Domains) + r.Separator
	if r.Function != nil {
		return prefix + cssast.GenerateFunction(r.Function)
	}
	body := cssast.GenerateSelectorList(r.SelectorList)
	if r.SyntaxDialect() == SyntaxAdGuard {
		body = escapeAdgDoubleQuotes(body)
	}
	return prefix + body
}
