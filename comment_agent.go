package agtree

import (
	"strings"

	"github.com/blang/semver/v4"
	"github.com/scripthunter7/agtree-temp-sub000/internal/location"
	"github.com/scripthunter7/agtree-temp-sub000/internal/scanner"
)

// Agent is one `name[ version]` entry of an AgentCommentRule.
type Agent struct {
	Adblock Value
	Version *Value
}

// AgentCommentRule is the bracketed, semicolon-separated agent declaration
// header, e.g. "[Adblock Plus 2.0; AdGuard]".
type AgentCommentRule struct {
	base
	Children []Agent
}

// isValidVersion reports whether s round-trips through the external SemVer
// coercer, the interface the spec asks for in place of rebuilding a SemVer
// library (§9).
func isValidVersion(s string) bool {
	_, err := semver.ParseTolerant(s)
	return err == nil
}

func parseAgentCommentRule(t string, base location.Location) (Rule, error) {
	inner := t[1 : len(t)-1]
	if scanner.Trim(inner) == "" {
		return nil, rangedError("AgentCommentRuleParseError", "agent list cannot be empty", base, 0, len(t))
	}
	segments := splitAgentList(inner)
	var agents []Agent
	offset := 1 // account for leading '['
	for _, seg := range segments {
		agent, err := parseSingleAgent(seg.text, location.Shift(base, offset+seg.start))
		if err != nil {
			return nil, err
		}
		agents = append(agents, *agent)
	}
	if len(agents) == 0 {
		return nil, rangedError("AgentCommentRuleParseError", "agent list cannot be empty", base, 0, len(t))
	}
	r := location.NewRange(base, 0, len(t))
	return &AgentCommentRule{base: newBase(CategoryComment, SyntaxCommon, &r), Children: agents}, nil
}

type agentSegment struct {
	text  string
	start int
}

func splitAgentList(inner string) []agentSegment {
	var out []agentSegment
	from := 0
	for {
		idx := scanner.FindNextUnescapedCharacter(inner, ';', from)
		if idx == -1 {
			out = append(out, agentSegment{text: inner[from:], start: from})
			return out
		}
		out = append(out, agentSegment{text: inner[from:idx], start: from})
		from = idx + 1
	}
}

func parseSingleAgent(text string, base location.Location) (*Agent, error) {
	trimmed := scanner.Trim(text)
	if trimmed == "" {
		return nil, rangedError("AgentCommentRuleParseError", "agent name cannot be empty", base, 0, len(text))
	}
	leadTrim := strings.Index(text, trimmed)
	if leadTrim < 0 {
		leadTrim = 0
	}

	fields := splitWhitespaceFields(trimmed)
	versionIdx := -1
	for i := len(fields) - 1; i >= 0; i-- {
		if isValidVersion(fields[i].text) {
			versionIdx = i
			break
		}
	}

	if versionIdx == -1 {
		rng := location.NewRange(base, leadTrim, leadTrim+len(trimmed))
		return &Agent{Adblock: Value{Value: trimmed, Loc: &rng}}, nil
	}

	// reject a second version-looking token before the chosen one
	for i := 0; i < versionIdx; i++ {
		if isValidVersion(fields[i].text) {
			return nil, rangedError("AgentCommentRuleParseError", "duplicate version token in agent declaration", base, leadTrim, leadTrim+len(trimmed))
		}
	}

	nameFields := fields[:versionIdx]
	if len(nameFields) == 0 {
		return nil, rangedError("AgentCommentRuleParseError", "agent name cannot be empty", base, leadTrim, leadTrim+len(trimmed))
	}
	nameStart := nameFields[0].start
	nameEnd := nameFields[len(nameFields)-1].start + len(nameFields[len(nameFields)-1].text)
	name := trimmed[nameStart:nameEnd]

	vf := fields[versionIdx]
	nameRng := location.NewRange(base, leadTrim+nameStart, leadTrim+nameEnd)
	verRng := location.NewRange(base, leadTrim+vf.start, leadTrim+vf.start+len(vf.text))
	return &Agent{
		Adblock: Value{Value: name, Loc: &nameRng},
		Version: &Value{Value: vf.text, Loc: &verRng},
	}, nil
}

type wsField struct {
	text  string
	start int
}

func splitWhitespaceFields(s string) []wsField {
	var out []wsField
	i := 0
	for i < len(s) {
		for i < len(s) && scanner.IsWhitespace(s[i]) {
			i++
		}
		if i >= len(s) {
			break
		}
		start := i
		for i < len(s) && !scanner.IsWhitespace(s[i]) {
			i++
		}
		out = append(out, wsField{text: s[start:i], start: start})
	}
	return out
}

// GenerateAgentCommentRule serializes an AgentCommentRule back to
// "[name version; name version; ...]".
func GenerateAgentCommentRule(r *AgentCommentRule) string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, a := range r.Children {
		if i > 0 {
			sb.WriteString("; ")
		}
		sb.WriteString(a.Adblock.Value)
		if a.Version != nil {
			sb.WriteByte(' ')
			sb.WriteString(a.Version.Value)
		}
	}
	sb.WriteByte(']')
	return sb.String()
}
