package cssast

import "strings"

// Declaration is a single `property: value [!important];` pair.
type Declaration struct {
	Property  string
	Value     string
	Important bool
}

// DeclarationList is the result of ParseDeclarationList.
type DeclarationList struct {
	Children []Declaration
}

// ParseDeclarationList splits text at top-level semicolons and each segment
// at its first top-level colon.
func ParseDeclarationList(text string, tolerant bool) (*DeclarationList, error) {
	list := &DeclarationList{}
	for _, seg := range splitTopLevel(text, ';') {
		s := trim(seg)
		if s == "" {
			continue
		}
		colon := scanDepth(s, 0, ':')
		if colon == -1 {
			return nil, errAt(0, "property expected in declaration %q", s)
		}
		prop := trim(s[:colon])
		val := trim(s[colon+1:])
		if prop == "" {
			return nil, errAt(0, "empty property name")
		}
		important := false
		if idx := lastBang(val); idx != -1 {
			tail := trim(val[idx+1:])
			if strings.EqualFold(tail, "important") {
				important = true
				val = trim(val[:idx])
			}
		}
		list.Children = append(list.Children, Declaration{Property: prop, Value: val, Important: important})
	}
	if len(list.Children) == 0 {
		return nil, errAt(0, "declaration list cannot be empty")
	}
	return list, nil
}

func lastBang(s string) int {
	return strings.LastIndexByte(s, '!')
}

// GenerateDeclarationList renders declarations as `prop: value;` entries
// joined by a single space, matching the spec's worked example
// (`padding-top: 0 !important;`) and the `remove: true;` wire form.
func GenerateDeclarationList(list *DeclarationList) string {
	parts := make([]string, len(list.Children))
	for i, d := range list.Children {
		if d.Important {
			parts[i] = d.Property + ": " + d.Value + " !important;"
		} else {
			parts[i] = d.Property + ": " + d.Value + ";"
		}
	}
	return strings.Join(parts, " ")
}

// HasRemove reports whether the list contains a `remove` declaration (any
// value), which the CSS-injection body parser treats as remove=true,
// mutually exclusive with any other declaration.
func (d *DeclarationList) HasRemove() bool {
	for _, c := range d.Children {
		if strings.EqualFold(c.Property, "remove") {
			return true
		}
	}
	return false
}
