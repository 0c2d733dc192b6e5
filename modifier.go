package agtree

import (
	"strings"

	"github.com/scripthunter7/agtree-temp-sub000/internal/location"
	"github.com/scripthunter7/agtree-temp-sub000/internal/scanner"
)

// Modifier is a `[~]name[=value]` entry of a ModifierList.
type Modifier struct {
	Modifier  Value
	Value     *Value
	Exception bool
	Loc       *location.Range
}

// ModifierList is a ','-separated list of Modifier entries.
type ModifierList struct {
	Children []Modifier
	Loc      *location.Range
}

// ParseModifier parses a single `[~]name[=value]` entry. The assignment is
// the first unescaped '='; name must be non-empty, and a present '=' must be
// followed by a non-empty value.
func ParseModifier(text string, base location.Location) (*Modifier, error) {
	if text == "" {
		return nil, rangedError("ModifierParseError", "modifier cannot be empty", base, 0, 0)
	}
	exception := false
	rest := text
	nameStart := 0
	if rest[0] == '~' {
		exception = true
		rest = rest[1:]
		nameStart = 1
	}

	eq := scanner.FindNextUnescapedCharacter(rest, '=', 0)
	var name, value string
	var hasValue bool
	if eq == -1 {
		name = rest
	} else {
		name = rest[:eq]
		value = rest[eq+1:]
		hasValue = true
	}

	if name == "" {
		return nil, rangedError("ModifierParseError", "modifier name cannot be empty", base, 0, len(text))
	}
	if hasValue && value == "" {
		return nil, rangedError("ModifierParseError", "modifier value cannot be empty when '=' is present", base, 0, len(text))
	}

	nameRng := location.NewRange(base, nameStart, nameStart+len(name))
	m := &Modifier{
		Modifier:  Value{Value: name, Loc: &nameRng},
		Exception: exception,
	}
	if hasValue {
		valStart := nameStart + len(name) + 1
		valRng := location.NewRange(base, valStart, valStart+len(value))
		m.Value = &Value{Value: value, Loc: &valRng}
	}
	return m, nil
}

// GenerateModifier serializes a Modifier back to `[~]name[=value]`.
func GenerateModifier(m *Modifier) string {
	var sb strings.Builder
	if m.Exception {
		sb.WriteByte('~')
	}
	sb.WriteString(m.Modifier.Value)
	if m.Value != nil {
		sb.WriteByte('=')
		sb.WriteString(m.Value.Value)
	}
	return sb.String()
}

// ParseModifierList splits text at unescaped (non-string/regex-aware)
// commas and parses each segment as a Modifier. A trailing comma produces
// one trailing empty-named entry, which fails with a ModifierParseError
// (matching §4.6: "a trailing comma produces one trailing empty-named entry
// (error)").
func ParseModifierList(text string, base location.Location) (*ModifierList, error) {
	list := &ModifierList{}
	if text == "" {
		return list, nil
	}
	offset := 0
	for {
		idx := scanner.FindUnescapedNonStringNonRegexChar(text, ',', offset)
		var segment string
		segStart := offset
		if idx == -1 {
			segment = text[offset:]
		} else {
			segment = text[offset:idx]
		}
		m, err := ParseModifier(segment, location.Shift(base, segStart))
		if err != nil {
			return nil, err
		}
		list.Children = append(list.Children, *m)
		if idx == -1 {
			break
		}
		offset = idx + 1
	}
	return list, nil
}

// GenerateModifierList joins modifiers with ','.
func GenerateModifierList(list *ModifierList) string {
	if list == nil {
		return ""
	}
	parts := make([]string, len(list.Children))
	for i := range list.Children {
		parts[i] = GenerateModifier(&list.Children[i])
	}
	return strings.Join(parts, ",")
}
