package agtree

import (
	"strings"

	"github.com/weppos/publicsuffix-go/publicsuffix"
)

// IsValidDomainOrHostname implements §9's "DomainUtils.isValidDomainOrHostname"
// utility. It is not on the core parse path: domain lists accept any
// non-empty token syntactically (including the documented `*` wildcard, see
// §9 Open Questions), and this helper exists purely for callers that want a
// stricter, semantic check of one already-parsed domain token.
//
// A bare wildcard "*" is accepted, matching the source's documented
// acceptance of wildcard-only domains in rule domain lists.
func IsValidDomainOrHostname(s string) bool {
	if s == "*" {
		return true
	}
	if s == "" || strings.HasPrefix(s, ".") || strings.HasSuffix(s, ".") {
		return false
	}
	_, err := publicsuffix.Parse(strings.ToLower(s))
	return err == nil
}
