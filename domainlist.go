package agtree

import (
	"strings"

	"github.com/scripthunter7/agtree-temp-sub000/internal/location"
)

// Domain is a single domain-list entry, optionally negated with '~'.
type Domain struct {
	Value     string
	Exception bool
	Loc       *location.Range
}

// DomainList is a ','-separated (classic) or '|'-separated (modifier-style)
// list of Domain entries.
type DomainList struct {
	Separator byte
	Children  []Domain
	Loc       *location.Range
}

// ParseDomainList parses text into a DomainList. sep is ',' for a regular
// cosmetic/network domain list or '|' for the value of a modifier such as
// `domain=a.com|~b.com`. Rejects a trailing separator, an exception marker
// immediately followed by another '~', by the separator, or by whitespace,
// and empty items.
func ParseDomainList(text string, sep byte, base location.Location) (*DomainList, error) {
	list := &DomainList{Separator: sep}
	if text == "" {
		return nil, rangedError("DomainListParseError", "domain list cannot be empty", base, 0, 0)
	}
	if text[len(text)-1] == sep {
		return nil, rangedError("DomainListParseError", "domain list cannot end with its separator", base, len(text)-1, len(text))
	}

	offset := 0
	raw := text
	for {
		idx := strings.IndexByte(raw, sep)
		var segment string
		if idx == -1 {
			segment = raw
		} else {
			segment = raw[:idx]
		}
		segStart := offset
		d, err := parseDomainItem(segment, base, segStart)
		if err != nil {
			return nil, err
		}
		list.Children = append(list.Children, *d)

		if idx == -1 {
			break
		}
		offset += idx + 1
		raw = raw[idx+1:]
	}
	return list, nil
}

func parseDomainItem(segment string, base location.Location, segStart int) (*Domain, error) {
	if segment == "" {
		return nil, rangedError("DomainListParseError", "domain item cannot be empty", base, segStart, segStart)
	}
	exception := false
	valueStart := segStart
	value := segment
	if segment[0] == '~' {
		exception = true
		rest := segment[1:]
		if rest == "" {
			return nil, rangedError("DomainListParseError", "exception marker cannot be the entire domain item", base, segStart, segStart+1)
		}
		if rest[0] == '~' || rest[0] == ' ' || rest[0] == '\t' {
			return nil, rangedError("DomainListParseError", "exception marker cannot be followed by another '~' or by whitespace", base, segStart, segStart+2)
		}
		value = rest
		valueStart = segStart + 1
	}
	if value == "" {
		return nil, rangedError("DomainListParseError", "domain item cannot be empty", base, segStart, segStart)
	}
	rng := location.NewRange(base, valueStart, valueStart+len(value))
	return &Domain{Value: value, Exception: exception, Loc: &rng}, nil
}

// GenerateDomainList re-joins the list with its stored separator, prefixing
// '~' for exception entries and trimming each domain's internal whitespace.
func GenerateDomainList(list *DomainList) string {
	if list == nil {
		return ""
	}
	parts := make([]string, len(list.Children))
	for i, d := range list.Children {
		v := strings.TrimSpace(d.Value)
		if d.Exception {
			v = "~" + v
		}
		parts[i] = v
	}
	return strings.Join(parts, string(list.Separator))
}
