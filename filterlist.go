package agtree

import (
	"strings"

	"github.com/scripthunter7/agtree-temp-sub000/internal/location"
	"github.com/scripthunter7/agtree-temp-sub000/internal/scanner"
)

// FilterList is a sequence of per-line rules, produced by splitting a
// filter-list source at CR/LF/CRLF boundaries (§4.11).
type FilterList struct {
	Rules []Rule
}

// Parse implements the filter-list driver: it splits text into lines,
// parses each in tolerant mode (or strict if tolerant=false, propagating
// the first error), and attaches raws.text/raws.nl to each resulting node.
func Parse(text string, tolerant bool) (*FilterList, error) {
	lines := scanner.SplitLines(text)
	list := &FilterList{Rules: make([]Rule, 0, len(lines))}
	lineNo := 1
	for _, ln := range lines {
		base := location.NewLocation(ln.Start, lineNo, 1)
		rule, err := ParseRule(ln.Text, base, tolerant)
		if err != nil {
			return nil, err
		}
		attachRaws(rule, Raws{Text: ln.Text, NL: ln.Kind})
		list.Rules = append(list.Rules, rule)
		lineNo++
	}
	return list, nil
}

// ParseRuleText is the public single-rule entry point (§6, "parseRule").
func ParseRuleText(text string, tolerant bool, base location.Location) (Rule, error) {
	return ParseRule(text, base, tolerant)
}

func attachRaws(r Rule, raws Raws) {
	switch v := r.(type) {
	case *EmptyRule:
		v.setRaws(raws)
	case *InvalidRule:
		v.setRaws(raws)
	case *CommentRule:
		v.setRaws(raws)
	case *MetadataCommentRule:
		v.setRaws(raws)
	case *ConfigCommentRule:
		v.setRaws(raws)
	case *HintCommentRule:
		v.setRaws(raws)
	case *PreProcessorCommentRule:
		v.setRaws(raws)
	case *AgentCommentRule:
		v.setRaws(raws)
	case *ElementHidingRule:
		v.setRaws(raws)
	case *CssInjectionRule:
		v.setRaws(raws)
	case *ScriptletInjectionRule:
		v.setRaws(raws)
	case *HtmlFilteringRule:
		v.setRaws(raws)
	case *JsInjectionRule:
		v.setRaws(raws)
	case *NetworkRule:
		v.setRaws(raws)
	}
}

// Generate re-emits a FilterList's rules, one per line, preferring each
// rule's verbatim raws.text when preferRaw is set, and always re-emitting
// the recorded newline kind.
func Generate(list *FilterList, preferRaw bool) string {
	var sb strings.Builder
	for _, r := range list.Rules {
		raws := r.RawText()
		if preferRaw {
			sb.WriteString(raws.Text)
		} else {
			sb.WriteString(GenerateRule(r))
		}
		sb.WriteString(raws.NL.String())
	}
	return sb.String()
}

// GenerateRule dispatches to the correct family generator for r's concrete
// type (the symmetric counterpart of ParseRule's type switch).
func GenerateRule(r Rule) string {
	switch v := r.(type) {
	case *EmptyRule:
		return ""
	case *InvalidRule:
		return v.RawText().Text
	case *CommentRule:
		return string(v.Marker) + v.Text
	case *MetadataCommentRule:
		return GenerateMetadataCommentRule(v)
	case *ConfigCommentRule:
		return GenerateConfigCommentRule(v)
	case *HintCommentRule:
		return GenerateHintCommentRule(v)
	case *PreProcessorCommentRule:
		return GeneratePreProcessorCommentRule(v)
	case *AgentCommentRule:
		return GenerateAgentCommentRule(v)
	case *ElementHidingRule:
		return GenerateElementHidingRule(v)
	case *CssInjectionRule:
		return GenerateCssInjectionRule(v)
	case *ScriptletInjectionRule:
		return GenerateScriptletInjectionRule(v)
	case *HtmlFilteringRule:
		return GenerateHtmlFilteringRule(v)
	case *JsInjectionRule:
		return GenerateJsInjectionRule(v)
	case *NetworkRule:
		return GenerateNetworkRule(v)
	default:
		return ""
	}
}
