package agtree

import (
	"strings"

	"github.com/scripthunter7/agtree-temp-sub000/internal/location"
	"github.com/scripthunter7/agtree-temp-sub000/internal/scanner"
)

// Hint is one `NAME` or `NAME(params)` atom of a HintCommentRule.
type Hint struct {
	Name   string
	Params *ParameterList
	Loc    *location.Range
}

// HintCommentRule is the AdGuard-only `!+ NAME NAME(params) ...` advisory
// annotation.
type HintCommentRule struct {
	base
	Children []Hint
}

func isHintCommentCandidate(t string) bool {
	return strings.HasPrefix(t, "!+")
}

func parseHintCommentRule(t string, base location.Location) (Rule, error) {
	rest := t[2:]
	i := 0
	var hints []Hint
	for {
		for i < len(rest) && scanner.IsWhitespace(rest[i]) {
			i++
		}
		if i >= len(rest) {
			break
		}
		sliceStart := i
		end, err := scanHintAtom(rest, i)
		if err != nil {
			return nil, wrapHintErr(err, base)
		}
		atom := rest[sliceStart:end]
		hint, err := parseHintAtom(atom, location.Shift(base, 2+sliceStart))
		if err != nil {
			return nil, err
		}
		hints = append(hints, *hint)
		i = end
	}
	if len(hints) == 0 {
		return nil, rangedError("HintCommentRuleParseError", "hint list cannot be empty", base, 0, len(t))
	}
	r := location.NewRange(base, 0, len(t))
	return &HintCommentRule{base: newBase(CategoryComment, SyntaxAdGuard, &r), Children: hints}, nil
}

type hintScanErr struct{ msg string; at int }

func (e *hintScanErr) Error() string { return e.msg }

func wrapHintErr(err error, base location.Location) error {
	if e, ok := err.(*hintScanErr); ok {
		return rangedError("HintCommentRuleParseError", e.msg, base, e.at, e.at+1)
	}
	return err
}

// scanHintAtom consumes one whitespace-delimited atom, respecting one level
// of (...) nesting (nested parens rejected, unbalanced paren rejected,
// escape with '\' allowed inside the parens).
func scanHintAtom(s string, from int) (int, error) {
	i := from
	for i < len(s) && !scanner.IsWhitespace(s[i]) && s[i] != '(' {
		i++
	}
	if i >= len(s) || scanner.IsWhitespace(s[i]) {
		return i, nil
	}
	// s[i] == '('
	depth := 1
	i++
	for i < len(s) {
		switch s[i] {
		case '\\':
			i += 2
			continue
		case '(':
			return i, &hintScanErr{msg: "nested parentheses are not allowed in a hint", at: i}
		case ')':
			depth--
			i++
			if depth == 0 {
				if i < len(s) && !scanner.IsWhitespace(s[i]) {
					return i, &hintScanErr{msg: "text after closing ')' is not allowed", at: i}
				}
				return i, nil
			}
		default:
			i++
		}
	}
	return i, &hintScanErr{msg: "unbalanced parenthesis in hint", at: from}
}

func parseHintAtom(atom string, base location.Location) (*Hint, error) {
	i := 0
	for i < len(atom) && isHintNameChar(atom[i]) {
		i++
	}
	if i == 0 {
		return nil, rangedError("HintCommentRuleParseError", "hint name must match [A-Za-z0-9_]+", base, 0, len(atom))
	}
	name := atom[:i]
	if i == len(atom) {
		rng := location.NewRange(base, 0, len(atom))
		return &Hint{Name: name, Loc: &rng}, nil
	}
	if atom[i] != '(' {
		return nil, rangedError("HintCommentRuleParseError", "unexpected character after hint name", base, i, i+1)
	}
	if atom[len(atom)-1] != ')' {
		return nil, rangedError("HintCommentRuleParseError", "missing closing ')'", base, len(atom)-1, len(atom))
	}
	paramsText := atom[i+1 : len(atom)-1]
	params := ParseParameterList(paramsText, ',', location.Shift(base, i+1))
	rng := location.NewRange(base, 0, len(atom))
	return &Hint{Name: name, Params: params, Loc: &rng}, nil
}

func isHintNameChar(c byte) bool {
	return scanner.IsAlphaNumeric(c) || c == '_'
}

// GenerateHintCommentRule serializes a HintCommentRule back to
// "!+ NAME NAME(params) ...".
func GenerateHintCommentRule(r *HintCommentRule) string {
	var sb strings.Builder
	sb.WriteString("!+ ")
	for i, h := range r.Children {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(h.Name)
		if h.Params != nil {
			sb.WriteByte('(')
			sb.WriteString(GenerateParameterList(h.Params))
			sb.WriteByte(')')
		}
	}
	return sb.String()
}
