package agtree

import (
	"github.com/scripthunter7/agtree-temp-sub000/internal/location"
	"github.com/scripthunter7/agtree-temp-sub000/internal/scanner"
)

// CommentRule is the fallback comment node: a marker ('!' or '#') plus the
// raw text tail, used whenever none of the more specific comment
// sub-parsers recognize the line.
type CommentRule struct {
	base
	Marker byte
	Text   string
}

// isRegularComment reports whether the trimmed text starts with '!'.
func isRegularComment(s string) bool {
	t := scanner.Trim(s)
	return len(t) > 0 && t[0] == '!'
}

// isCommentRule implements the §4.7 fast-path test: a regular comment, or an
// agent rule, or a '#'-led line whose cosmetic separator is absent or whose
// text after the separator is not a valid selector.
func isCommentRule(s string) bool {
	t := scanner.Trim(s)
	if t == "" {
		return false
	}
	if isRegularComment(t) {
		return true
	}
	if isAgentCommentCandidate(t) {
		return true
	}
	if t[0] != '#' {
		return false
	}
	sep := findCosmeticSeparator(t)
	if sep == nil {
		return true
	}
	after := t[sep.End:]
	if after == "" {
		return true
	}
	// fast check: next char is whitespace/end, or the rest starts with
	// another "##" (e.g. "###foo" is a hash-id selector, not a comment)
	if scanner.IsWhitespace(after[0]) {
		return true
	}
	if len(after) >= 2 && after[0] == '#' && after[1] == '#' {
		return true
	}
	return false
}

// parseCommentRule tries, in order, the agent / hint / preprocessor /
// metadata / config sub-parsers; the first match wins. A failed fallthrough
// produces a plain CommentRule.
func parseCommentRule(text string, base location.Location) (Rule, error) {
	t := scanner.Trim(text)

	if isAgentCommentCandidate(t) {
		return parseAgentCommentRule(t, base)
	}
	if isHintCommentCandidate(t) {
		return parseHintCommentRule(t, base)
	}
	if isPreProcessorCommentCandidate(t) {
		return parsePreProcessorCommentRule(t, base)
	}
	if node, ok, err := tryParseMetadataCommentRule(t, base); err != nil {
		return nil, err
	} else if ok {
		return node, nil
	}
	if isConfigCommentCandidate(t) {
		return parseConfigCommentRule(t, base)
	}

	marker := byte('!')
	if len(t) > 0 {
		marker = t[0]
	}
	rest := t
	if len(rest) > 0 {
		rest = rest[1:]
	}
	return &CommentRule{
		base:   newBase(CategoryComment, SyntaxCommon, rngPtr(base, 0, len(t))),
		Marker: marker,
		Text:   rest,
	}, nil
}

func rngPtr(base location.Location, start, end int) *location.Range {
	r := location.NewRange(base, start, end)
	return &r
}
