package agtree

// separatorPriority lists cosmetic separators in detection priority order
// (spec §6): longer/more specific tokens are tried before the shorter
// tokens they would otherwise shadow (e.g. "##+" before "##").
var separatorPriority = []string{
	"##+", "##^", "##", "#?#", "#%#", "#$#", "#$?#",
	"#@#+", "#@#^", "#@#", "#@?#", "#@%#", "#@$#", "#@$?#",
	"$$", "$@$",
}

type cosmeticSeparator struct {
	Token     string
	Start     int
	End       int
	Exception bool
}

// findCosmeticSeparator performs a single left-to-right scan of s, checking
// at each position whether any separator token starts there (tried in
// separatorPriority order), and returns the first (leftmost) match, or nil.
func findCosmeticSeparator(s string) *cosmeticSeparator {
	for i := 0; i < len(s); i++ {
		if s[i] != '#' && s[i] != '$' {
			continue
		}
		for _, tok := range separatorPriority {
			if i+len(tok) <= len(s) && s[i:i+len(tok)] == tok {
				return &cosmeticSeparator{
					Token:     tok,
					Start:     i,
					End:       i + len(tok),
					Exception: len(tok) > 1 && tok[1] == '@',
				}
			}
		}
	}
	return nil
}

// isAgentCommentCandidate reports whether the trimmed text looks like an
// agent declaration: starts with '[', ends with ']', and contains no
// cosmetic separator (which would mean it is actually an AdGuard
// modifier-prefixed cosmetic rule, e.g. "[$path=/x]example.com##.a").
func isAgentCommentCandidate(t string) bool {
	if len(t) < 2 || t[0] != '[' || t[len(t)-1] != ']' {
		return false
	}
	return findCosmeticSeparator(t) == nil
}
