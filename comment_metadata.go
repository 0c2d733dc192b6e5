package agtree

import (
	"strings"

	"github.com/scripthunter7/agtree-temp-sub000/internal/location"
	"github.com/scripthunter7/agtree-temp-sub000/internal/scanner"
)

// metadataHeaders is the fixed recognized header set for MetadataCommentRule
// (§4.7.5). Matching against it is case-insensitive.
var metadataHeaders = []string{
	"Title",
	"Version",
	"Description",
	"Homepage",
	"Expires",
	"Checksum",
	"Last Modified",
	"Last modified",
	"TimeUpdated",
	"Licence",
	"License",
}

// MetadataCommentRule is a `! Header: value` filter-list header line.
type MetadataCommentRule struct {
	base
	Marker byte
	Header string
	Value  Value
}

// tryParseMetadataCommentRule attempts the §4.7.5 fast-reject-then-match
// algorithm. It returns ok=false (no error) whenever t simply isn't a
// metadata comment, so the caller can fall through to the next candidate
// parser; it returns a non-nil error only for a recognized header whose
// value is missing.
func tryParseMetadataCommentRule(t string, base location.Location) (Rule, bool, error) {
	if !strings.Contains(t, ":") {
		return nil, false, nil
	}
	if len(t) == 0 || (t[0] != '!' && t[0] != '#') {
		return nil, false, nil
	}
	marker := t[0]
	i := 1
	for i < len(t) && scanner.IsWhitespace(t[i]) {
		i++
	}
	rest := t[i:]
	lowerRest := strings.ToLower(rest)
	for _, h := range metadataHeaders {
		lh := strings.ToLower(h)
		if !strings.HasPrefix(lowerRest, lh) {
			continue
		}
		after := rest[len(h):]
		j := 0
		for j < len(after) && scanner.IsWhitespace(after[j]) {
			j++
		}
		if j >= len(after) || after[j] != ':' {
			continue
		}
		j++
		value := scanner.Trim(after[j:])
		if value == "" {
			return nil, true, rangedError("MetadataCommentRuleParseError", "metadata header value cannot be empty", base, 0, len(t))
		}
		lead := strings.Index(after[j:], value)
		if lead < 0 {
			lead = 0
		}
		valueStart := i + len(h) + j + lead
		rng := location.NewRange(base, valueStart, valueStart+len(value))
		r := &MetadataCommentRule{
			base:   newBase(CategoryComment, SyntaxCommon, rngPtr(base, 0, len(t))),
			Marker: marker,
			Header: h,
			Value:  Value{Value: value, Loc: &rng},
		}
		return r, true, nil
	}
	return nil, false, nil
}

// GenerateMetadataCommentRule serializes a MetadataCommentRule back to
// "MARKER Header: value".
func GenerateMetadataCommentRule(r *MetadataCommentRule) string {
	var sb strings.Builder
	sb.WriteByte(r.Marker)
	sb.WriteByte(' ')
	sb.WriteString(r.Header)
	sb.WriteString(": ")
	sb.WriteString(r.Value.Value)
	return sb.String()
}
