package agtree

import (
	"strings"

	"github.com/scripthunter7/agtree-temp-sub000/internal/location"
	"github.com/scripthunter7/agtree-temp-sub000/internal/scanner"
)

// Parameter is a single entry of a ParameterList, holding its verbatim value
// (internal whitespace preserved - only the whitespace surrounding the
// separator is trimmed).
type Parameter struct {
	Value string
	Loc   *location.Range
}

// ParameterList is a separator-delimited, quote/regex-aware list of
// parameters, used by scriptlet calls, hints and config comments.
type ParameterList struct {
	Children  []Parameter
	Separator byte
	Loc       *location.Range
}

// ParseParameterList splits text at unescaped, non-string, non-regex
// occurrences of sep (',' by default), trimming whitespace around each
// segment. An empty input yields an empty list; a trailing separator yields
// a trailing empty Parameter (not an error at this layer - callers such as
// the scriptlet-injection parser reject blank entries themselves when that
// is invalid in context).
func ParseParameterList(text string, sep byte, base location.Location) *ParameterList {
	if sep == 0 {
		sep = ','
	}
	list := &ParameterList{Separator: sep}
	if text == "" {
		return list
	}
	parts := scanner.SplitByNonStringNonRegex(text, sep)
	offset := 0
	for _, raw := range parts {
		start := offset
		trimmed := scanner.Trim(raw)
		// locate trimmed within raw to keep an accurate range
		lead := strings.Index(raw, trimmed)
		if lead < 0 {
			lead = 0
		}
		pStart := start + lead
		pEnd := pStart + len(trimmed)
		rng := location.NewRange(base, pStart, pEnd)
		list.Children = append(list.Children, Parameter{Value: trimmed, Loc: &rng})
		offset += len(raw) + 1 // +1 for the consumed separator
	}
	return list
}

// GenerateParameterList joins params with sep, followed by a space unless
// sep itself is a space (in which case a single space already separates).
func GenerateParameterList(list *ParameterList) string {
	if list == nil || len(list.Children) == 0 {
		return ""
	}
	joiner := string(list.Separator) + " "
	if list.Separator == ' ' {
		joiner = " "
	}
	parts := make([]string, len(list.Children))
	for i, p := range list.Children {
		parts[i] = p.Value
	}
	return strings.Join(parts, joiner)
}
