package cssast

import "strings"

// PartKind discriminates the three kinds of top-level chunk a Selector is
// decomposed into.
type PartKind int

const (
	PartPlain PartKind = iota
	PartAttribute
	PartPseudoClass
)

// SelectorPart is one direct child of a Selector (depth 2 from a
// SelectorList's point of view: SelectorList -> Selector -> SelectorPart).
// This is the granularity the cosmetic-rule body parsers need to detect
// `:matches-media(...)`, `:style(...)` and `:remove()` as direct children of
// the last selector in a list, and to rewrite individual attribute
// selectors for the uBO->ADG HTML-rule converter.
type SelectorPart struct {
	Kind PartKind
	Text string // verbatim text of this part, used to regenerate it unchanged

	// PartAttribute fields.
	AttrName     string
	AttrOperator string // "", "=", "~=", "|=", "^=", "$=", "*="
	AttrValue    string // unquoted value
	AttrQuote    byte   // quote byte used around the value, 0 if unquoted

	// PartPseudoClass fields.
	PseudoName string
	PseudoArgs string // raw text between '(' and ')'
	HasParens  bool
}

// Selector is one comma-separated entry of a SelectorList, decomposed into
// its top-level parts.
type Selector struct {
	Parts []SelectorPart
	Raw   string
}

// SelectorList is the result of ParseSelectorList.
type SelectorList struct {
	Children []Selector
}

// ParseSelectorList splits text at top-level commas and decomposes each
// resulting selector into SelectorParts. tolerant is accepted for interface
// symmetry with a real CSS library; this parser never backtracks so it has
// no recoverable/unrecoverable distinction of its own.
func ParseSelectorList(text string, tolerant bool) (*SelectorList, error) {
	trimmed := trim(text)
	if trimmed == "" {
		return nil, errAt(0, "selector expected")
	}
	segments := splitTopLevel(text, ',')
	list := &SelectorList{}
	for _, seg := range segments {
		s := trim(seg)
		if s == "" {
			return nil, errAt(0, "selector expected")
		}
		parts, err := parseSelectorParts(s)
		if err != nil {
			return nil, err
		}
		list.Children = append(list.Children, Selector{Parts: parts, Raw: s})
	}
	return list, nil
}

func parseSelectorParts(s string) ([]SelectorPart, error) {
	var parts []SelectorPart
	var plain strings.Builder
	flush := func() {
		if plain.Len() > 0 {
			parts = append(parts, SelectorPart{Kind: PartPlain, Text: plain.String()})
			plain.Reset()
		}
	}

	i := 0
	for i < len(s) {
		c := s[i]
		switch {
		case c == '[':
			end := findMatching(s, i, '[', ']')
			if end == -1 {
				return nil, errAt(i, "unterminated attribute selector")
			}
			flush()
			part, err := parseAttributeSelector(s[i : end+1])
			if err != nil {
				return nil, err
			}
			parts = append(parts, *part)
			i = end + 1
		case c == ':':
			// `::` pseudo-elements are treated as plain text; AGTree has no
			// use for them.
			if i+1 < len(s) && s[i+1] == ':' {
				plain.WriteString("::")
				i += 2
				continue
			}
			j := i + 1
			for j < len(s) && isIdentChar(s[j]) {
				j++
			}
			if j == i+1 {
				plain.WriteByte(c)
				i++
				continue
			}
			name := s[i+1 : j]
			if j < len(s) && s[j] == '(' {
				end := findMatching(s, j, '(', ')')
				if end == -1 {
					return nil, errAt(j, "unterminated pseudo-class %q", name)
				}
				flush()
				parts = append(parts, SelectorPart{
					Kind: PartPseudoClass, Text: s[i : end+1],
					PseudoName: name, PseudoArgs: s[j+1 : end], HasParens: true,
				})
				i = end + 1
			} else {
				flush()
				parts = append(parts, SelectorPart{Kind: PartPseudoClass, Text: s[i:j], PseudoName: name})
				i = j
			}
		case c == '\'' || c == '"':
			end := findMatching(s, i, c, c)
			if end == -1 {
				return nil, errAt(i, "unterminated string")
			}
			plain.WriteString(s[i : end+1])
			i = end + 1
		default:
			plain.WriteByte(c)
			i++
		}
	}
	flush()
	return parts, nil
}

func parseAttributeSelector(raw string) (*SelectorPart, error) {
	inner := raw[1 : len(raw)-1]
	ops := []string{"~=", "|=", "^=", "$=", "*=", "="}
	var opIdx = -1
	var op string
	for _, o := range ops {
		if idx := indexTopLevelString(inner, o); idx != -1 {
			if opIdx == -1 || idx < opIdx {
				opIdx = idx
				op = o
			}
		}
	}
	part := &SelectorPart{Kind: PartAttribute, Text: raw}
	if opIdx == -1 {
		part.AttrName = trim(inner)
		return part, nil
	}
	part.AttrName = trim(inner[:opIdx])
	part.AttrOperator = op
	valueRaw := trim(inner[opIdx+len(op):])
	// strip a trailing case-sensitivity flag (`i`/`s`) introduced by a space
	if sp := strings.LastIndexByte(valueRaw, ' '); sp != -1 {
		flag := trim(valueRaw[sp+1:])
		if flag == "i" || flag == "I" || flag == "s" || flag == "S" {
			valueRaw = trim(valueRaw[:sp])
		}
	}
	if len(valueRaw) >= 2 && (valueRaw[0] == '\'' || valueRaw[0] == '"') && valueRaw[len(valueRaw)-1] == valueRaw[0] {
		part.AttrQuote = valueRaw[0]
		part.AttrValue = valueRaw[1 : len(valueRaw)-1]
	} else {
		part.AttrValue = valueRaw
	}
	return part, nil
}

func indexTopLevelString(s, sub string) int {
	for i := 0; i+len(sub) <= len(s); i++ {
		if s[i:i+len(sub)] == sub {
			return i
		}
	}
	return -1
}

// GenerateSelectorList re-joins selectors with ", " and parts in sequence.
func GenerateSelectorList(list *SelectorList) string {
	parts := make([]string, len(list.Children))
	for i, sel := range list.Children {
		parts[i] = GenerateSelector(&sel)
	}
	return strings.Join(parts, ", ")
}

// GenerateSelector concatenates a selector's parts back into text.
func GenerateSelector(sel *Selector) string {
	var sb strings.Builder
	for _, p := range sel.Parts {
		sb.WriteString(GenerateSelectorPart(&p))
	}
	return sb.String()
}

// GenerateSelectorPart renders one part; attribute parts use their possibly
// rewritten fields rather than the original Text when Text has been cleared
// by a converter (e.g. the HTML-rule converter rewrites attribute
// selectors).
func GenerateSelectorPart(p *SelectorPart) string {
	if p.Kind == PartAttribute && p.Text == "" {
		var sb strings.Builder
		sb.WriteByte('[')
		sb.WriteString(p.AttrName)
		if p.AttrOperator != "" {
			sb.WriteString(p.AttrOperator)
			if p.AttrQuote != 0 {
				sb.WriteByte(p.AttrQuote)
				sb.WriteString(p.AttrValue)
				sb.WriteByte(p.AttrQuote)
			} else {
				sb.WriteString(p.AttrValue)
			}
		}
		sb.WriteByte(']')
		return sb.String()
	}
	if p.Kind == PartPseudoClass && p.Text == "" {
		if p.HasParens {
			return ":" + p.PseudoName + "(" + p.PseudoArgs + ")"
		}
		return ":" + p.PseudoName
	}
	return p.Text
}
