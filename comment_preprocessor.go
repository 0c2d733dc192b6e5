package agtree

import (
	"strings"

	"github.com/scripthunter7/agtree-temp-sub000/internal/location"
	"github.com/scripthunter7/agtree-temp-sub000/internal/scanner"
)

// PreProcessorCommentRule is the `!#directive(...)` preprocessor annotation
// (e.g. `!#if`, `!#include`, `!#safari_cb_affinity`).
type PreProcessorCommentRule struct {
	base
	Name   string
	Params Expression      // set only for "if"
	Value  *Value          // set only for "include" and unknown directives with params (kept verbatim)
	List   *ParameterList  // set only for "safari_cb_affinity"
}

func isPreProcessorCommentCandidate(t string) bool {
	return len(t) >= 2 && t[0] == '!' && t[1] == '#' && (len(t) < 3 || t[2] != '#')
}

func parsePreProcessorCommentRule(t string, base location.Location) (Rule, error) {
	rest := t[2:]
	i := 0
	for i < len(rest) && scanner.IsWhitespace(rest[i]) {
		i++
	}
	nameStart := i
	for i < len(rest) && !scanner.IsWhitespace(rest[i]) && rest[i] != '(' {
		i++
	}
	name := rest[nameStart:i]
	if name == "" {
		return nil, rangedError("PreProcessorCommentRuleParseError", "preprocessor directive name cannot be empty", base, 0, len(t))
	}

	rule := &PreProcessorCommentRule{
		base: newBase(CategoryComment, SyntaxCommon, rngPtr(base, 0, len(t))),
		Name: name,
	}

	switch name {
	case "if":
		body, ok := extractParenBody(rest, i, true)
		if !ok {
			return nil, rangedError("PreProcessorCommentRuleParseError", "\"if\" directive requires a parenthesized logical expression", base, 0, len(t))
		}
		expr, err := ParseLogicalExpression(body.inner, location.Shift(base, 2+body.innerStart))
		if err != nil {
			return nil, err
		}
		rule.Params = expr
		return rule, nil

	case "include":
		for i < len(rest) && scanner.IsWhitespace(rest[i]) {
			i++
		}
		if i >= len(rest) {
			return nil, rangedError("PreProcessorCommentRuleParseError", "\"include\" directive requires a value", base, 0, len(t))
		}
		value := rest[i:]
		trimmed := scanner.Trim(value)
		if trimmed == "" {
			return nil, rangedError("PreProcessorCommentRuleParseError", "\"include\" directive requires a value", base, 0, len(t))
		}
		lead := strings.Index(value, trimmed)
		if lead < 0 {
			lead = 0
		}
		rng := location.NewRange(base, 2+i+lead, 2+i+lead+len(trimmed))
		rule.Value = &Value{Value: trimmed, Loc: &rng}
		rule.base = newBase(CategoryComment, SyntaxCommon, rngPtr(base, 0, len(t)))
		return rule, nil

	case "safari_cb_affinity":
		rule.base = newBase(CategoryComment, SyntaxAdGuard, rngPtr(base, 0, len(t)))
		if i >= len(rest) {
			return rule, nil
		}
		if scanner.IsWhitespace(rest[i]) {
			return nil, rangedError("PreProcessorCommentRuleParseError", "whitespace is not allowed between \"safari_cb_affinity\" and '('", base, 2+i, 2+i+1)
		}
		if rest[i] != '(' {
			return nil, rangedError("PreProcessorCommentRuleParseError", "unexpected character after directive name", base, 2+i, 2+i+1)
		}
		body, ok := extractParenBody(rest, i, false)
		if !ok {
			return nil, rangedError("PreProcessorCommentRuleParseError", "missing closing ')'", base, 2+i, 2+len(rest))
		}
		rule.List = ParseParameterList(body.inner, ',', location.Shift(base, 2+body.innerStart))
		return rule, nil

	default:
		for i < len(rest) && scanner.IsWhitespace(rest[i]) {
			i++
		}
		if i >= len(rest) {
			return rule, nil
		}
		value := scanner.Trim(rest[i:])
		if value != "" {
			lead := strings.Index(rest[i:], value)
			if lead < 0 {
				lead = 0
			}
			rng := location.NewRange(base, 2+i+lead, 2+i+lead+len(value))
			rule.Value = &Value{Value: value, Loc: &rng}
		}
		return rule, nil
	}
}

type parenBody struct {
	inner      string
	innerStart int
}

// extractParenBody expects rest[from] == '(' (skipping any leading
// whitespace when skipWS is set) and returns the text between the matching
// outer parens (not respecting nesting beyond simple depth counting).
func extractParenBody(rest string, from int, skipWS bool) (parenBody, bool) {
	i := from
	if skipWS {
		for i < len(rest) && scanner.IsWhitespace(rest[i]) {
			i++
		}
	}
	if i >= len(rest) || rest[i] != '(' {
		return parenBody{}, false
	}
	depth := 1
	j := i + 1
	for j < len(rest) {
		switch rest[j] {
		case '\\':
			j += 2
			continue
		case '(':
			depth++
		case ')':
			depth--
			if depth == 0 {
				return parenBody{inner: rest[i+1 : j], innerStart: i + 1}, true
			}
		}
		j++
	}
	return parenBody{}, false
}

// GeneratePreProcessorCommentRule serializes a PreProcessorCommentRule back
// to "!#directive(...)" / "!#directive value".
func GeneratePreProcessorCommentRule(r *PreProcessorCommentRule) string {
	var sb strings.Builder
	sb.WriteString("!#")
	sb.WriteString(r.Name)
	switch {
	case r.Params != nil:
		sb.WriteString(" (")
		sb.WriteString(GenerateLogicalExpression(r.Params))
		sb.WriteByte(')')
	case r.Value != nil:
		sb.WriteByte(' ')
		sb.WriteString(r.Value.Value)
	case r.List != nil:
		sb.WriteByte('(')
		sb.WriteString(GenerateParameterList(r.List))
		sb.WriteByte(')')
	}
	return sb.String()
}
