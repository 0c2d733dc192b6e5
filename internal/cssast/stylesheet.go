package cssast

// StylesheetNode is the tagged union of the two constructs a Stylesheet can
// contain at any nesting level: a plain style rule, or an at-rule (only
// `@media` containing exactly one nested Rule is meaningful to AGTree).
type StylesheetNode interface{ stylesheetNode() }

// Rule is `prelude { declarations }`.
type Rule struct {
	Prelude *SelectorList
	Block   *DeclarationList
}

func (*Rule) stylesheetNode() {}

// AtRule is `@name prelude { block }`.
type AtRule struct {
	Name    string
	Prelude string
	Block   *Stylesheet
}

func (*AtRule) stylesheetNode() {}

// Stylesheet is a sequence of top-level (or nested, for @media's block)
// StylesheetNodes.
type Stylesheet struct {
	Children []StylesheetNode
}

// ParseStylesheet parses a (possibly nested) sequence of rules/at-rules; an
// at-rule's block is parsed recursively with no depth limit. tolerant is
// accepted for interface symmetry.
func ParseStylesheet(text string, tolerant bool) (*Stylesheet, error) {
	sheet := &Stylesheet{}
	i := 0
	for {
		for i < len(text) && isSpace(text[i]) {
			i++
		}
		if i >= len(text) {
			break
		}
		open := scanDepth(text, i, '{')
		if open == -1 {
			return nil, errAt(i, "expected '{' after prelude")
		}
		close := findMatching(text, open, '{', '}')
		if close == -1 {
			return nil, errAt(open, "unterminated block")
		}
		prelude := trim(text[i:open])
		blockText := text[open+1 : close]

		if len(prelude) > 0 && prelude[0] == '@' {
			j := 1
			for j < len(prelude) && isIdentChar(prelude[j]) {
				j++
			}
			name := prelude[1:j]
			atPrelude := trim(prelude[j:])
			inner, err := ParseStylesheet(blockText, tolerant)
			if err != nil {
				return nil, err
			}
			sheet.Children = append(sheet.Children, &AtRule{Name: name, Prelude: atPrelude, Block: inner})
		} else {
			if prelude == "" {
				return nil, errAt(i, "selector expected")
			}
			selList, err := ParseSelectorList(prelude, tolerant)
			if err != nil {
				return nil, err
			}
			decls, err := ParseDeclarationList(blockText, tolerant)
			if err != nil {
				return nil, err
			}
			sheet.Children = append(sheet.Children, &Rule{Prelude: selList, Block: decls})
		}
		i = close + 1
	}
	return sheet, nil
}

// GenerateStylesheet renders a Stylesheet back to text on a single line,
// constructs separated by one space.
func GenerateStylesheet(sheet *Stylesheet) string {
	var out string
	for i, child := range sheet.Children {
		if i > 0 {
			out += " "
		}
		out += generateNode(child)
	}
	return out
}

func generateNode(n StylesheetNode) string {
	switch v := n.(type) {
	case *Rule:
		return GenerateSelectorList(v.Prelude) + " { " + GenerateDeclarationList(v.Block) + " }"
	case *AtRule:
		inner := GenerateStylesheet(v.Block)
		if v.Prelude != "" {
			return "@" + v.Name + " " + v.Prelude + " { " + inner + " }"
		}
		return "@" + v.Name + " { " + inner + " }"
	default:
		return ""
	}
}
