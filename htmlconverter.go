package agtree

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/scripthunter7/agtree-temp-sub000/internal/cssast"
)

// defaultMaxLength is the ADG max-length bound emitted when a uBO rule
// doesn't specify one: 32 * 8192 (§4.13).
const defaultMaxLength = 32 * 8192

// ConvertUboHtmlFilteringToAdg implements §4.13: given a uBO HTML-filtering
// rule, it produces one equivalent ADG HtmlFilteringRule per selector in the
// uBO rule's selector list.
func ConvertUboHtmlFilteringToAdg(r *HtmlFilteringRule) ([]*HtmlFilteringRule, error) {
	if r.SelectorList == nil {
		return nil, newSyntaxError("HtmlConverterError", "cannot convert a function-node HTML-filtering rule")
	}

	out := make([]*HtmlFilteringRule, 0, len(r.SelectorList.Children))
	for _, sel := range r.SelectorList.Children {
		converted, err := convertSelector(sel)
		if err != nil {
			return nil, err
		}
		cb := r.cosmeticBase.withSyntax(SyntaxAdGuard)
		cb.Separator = adgHtmlSeparator(r.Exception)
		out = append(out, &HtmlFilteringRule{
			cosmeticBase: cb,
			SelectorList: &cssast.SelectorList{Children: []cssast.Selector{converted}},
		})
	}
	return out, nil
}

func adgHtmlSeparator(exception bool) string {
	if exception {
		return "$@$"
	}
	return "$$"
}

// convertSelector rewrites one uBO selector's parts into ADG form: a
// possibly-present leading type selector, followed by attribute selectors
// (copied or rewritten) and converted pseudo-classes, then the mandatory
// max-length bound.
func convertSelector(sel cssast.Selector) (cssast.Selector, error) {
	var out []cssast.SelectorPart
	var minLength *int
	maxLength := defaultMaxLength

	for i, part := range sel.Parts {
		switch part.Kind {
		case cssast.PartPlain:
			if strings.TrimSpace(part.Text) == "" {
				continue
			}
			if i != 0 {
				return cssast.Selector{}, newSyntaxError("HtmlConverterError", fmt.Sprintf("type selector %q must be the first part of the selector", part.Text))
			}
			out = append(out, part)

		case cssast.PartAttribute:
			switch part.AttrName {
			case "min-length":
				n, err := strconv.Atoi(part.AttrValue)
				if err != nil {
					return cssast.Selector{}, newSyntaxError("HtmlConverterError", fmt.Sprintf("min-length value %q is not an integer", part.AttrValue))
				}
				minLength = &n
			case "max-length":
				n, err := strconv.Atoi(part.AttrValue)
				if err != nil {
					return cssast.Selector{}, newSyntaxError("HtmlConverterError", fmt.Sprintf("max-length value %q is not an integer", part.AttrValue))
				}
				maxLength = n
			default:
				out = append(out, part)
			}

		case cssast.PartPseudoClass:
			switch part.PseudoName {
			case "has-text", "contains":
				arg, err := unquoteHtmlConverterArg(part.PseudoArgs)
				if err != nil {
					return cssast.Selector{}, err
				}
				out = append(out, cssast.SelectorPart{Kind: cssast.PartAttribute, AttrName: "tag-content", AttrOperator: "=", AttrValue: arg, AttrQuote: '"'})
			case "min-text-length":
				n, err := strconv.Atoi(strings.TrimSpace(part.PseudoArgs))
				if err != nil {
					return cssast.Selector{}, newSyntaxError("HtmlConverterError", fmt.Sprintf("min-text-length argument %q is not an integer", part.PseudoArgs))
				}
				minLength = &n
			default:
				return cssast.Selector{}, newSyntaxError("HtmlConverterError", fmt.Sprintf("unsupported pseudo-class %q in HTML-filtering selector", part.PseudoName))
			}
		}
	}

	if minLength != nil {
		out = append(out, cssast.SelectorPart{Kind: cssast.PartAttribute, AttrName: "min-length", AttrOperator: "=", AttrValue: strconv.Itoa(*minLength), AttrQuote: '"'})
	}
	out = append(out, cssast.SelectorPart{Kind: cssast.PartAttribute, AttrName: "max-length", AttrOperator: "=", AttrValue: strconv.Itoa(maxLength), AttrQuote: '"'})

	return cssast.Selector{Parts: out, Raw: cssast.GenerateSelector(&cssast.Selector{Parts: out})}, nil
}

// unquoteHtmlConverterArg strips the quotes from a pseudo-class string
// argument and rejects regex-style arguments (a leading '/').
func unquoteHtmlConverterArg(raw string) (string, error) {
	s := strings.TrimSpace(raw)
	if len(s) >= 2 && (s[0] == '\'' || s[0] == '"') && s[len(s)-1] == s[0] {
		s = s[1 : len(s)-1]
	} else if strings.HasPrefix(s, "/") {
		return "", newSyntaxError("HtmlConverterError", fmt.Sprintf("regex arguments are not supported by the HTML-rule converter: %s", raw))
	}
	return s, nil
}
