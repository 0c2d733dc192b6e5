package agtree

import (
	"github.com/scripthunter7/agtree-temp-sub000/internal/location"
	"github.com/scripthunter7/agtree-temp-sub000/internal/scanner"
)

// ParseRule implements the §4.10 top-level dispatcher: empty check, then
// comment / cosmetic / network in order. In tolerant mode any error raised
// by a family parser is caught and turned into an InvalidRule; in strict
// mode it is returned to the caller.
func ParseRule(text string, base location.Location, tolerant bool) (Rule, error) {
	if scanner.Trim(text) == "" {
		return &EmptyRule{base: newBase(CategoryEmpty, SyntaxCommon, rngPtr(base, 0, len(text)))}, nil
	}

	rule, err := parseRuleStrict(text, base)
	if err == nil {
		return rule, nil
	}
	if !tolerant {
		return nil, err
	}
	activeLogger.Warn(err)
	return wrapInvalidRule(text, base, err), nil
}

func parseRuleStrict(text string, base location.Location) (Rule, error) {
	t := scanner.Trim(text)

	if isCommentRule(t) {
		return parseCommentRule(t, base)
	}
	if rule, ok, err := TryParseCosmeticRule(t, base); ok {
		return rule, err
	}
	return ParseNetworkRule(t, base)
}

func wrapInvalidRule(text string, base location.Location, err error) Rule {
	var se *SyntaxError
	switch e := err.(type) {
	case *SyntaxError:
		se = e
	case *CSSError:
		se = &SyntaxError{Name: "CSSError", Message: e.Error(), Loc: e.Loc}
	default:
		se = &SyntaxError{Name: "UnknownError", Message: err.Error()}
	}
	return &InvalidRule{
		base: newBase(CategoryInvalid, SyntaxCommon, rngPtr(base, 0, len(text))),
		Err:  se,
	}
}
