// Package scanner holds pure, total functions over (text, index) used by
// every AGTree parser to find separators, skip whitespace and classify
// characters. None of these functions mutate their input or raise; a miss is
// reported as -1 (or len(s), where noted), matching the style of the
// teacher's hand-rolled fast-match helpers (no regexp on the hot path) in
// less_go/parser_fast_match.go and the escape/quote tracking performed by
// go_parser/parser_input.go's Re/skipWhitespace.
package scanner

const defaultEscape = '\\'

// IsWhitespace reports whether c is a space or tab.
func IsWhitespace(c byte) bool {
	return c == ' ' || c == '\t'
}

// IsEOL reports whether c is a line-ending byte.
func IsEOL(c byte) bool {
	return c == '\r' || c == '\n' || c == '\f'
}

// IsDigit reports whether c is an ASCII digit.
func IsDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// IsSmallLetter reports whether c is an ASCII lowercase letter.
func IsSmallLetter(c byte) bool {
	return c >= 'a' && c <= 'z'
}

// IsCapitalLetter reports whether c is an ASCII uppercase letter.
func IsCapitalLetter(c byte) bool {
	return c >= 'A' && c <= 'Z'
}

// IsLetter reports whether c is an ASCII letter, upper or lower case.
func IsLetter(c byte) bool {
	return IsSmallLetter(c) || IsCapitalLetter(c)
}

// IsAlphaNumeric reports whether c is an ASCII letter or digit.
func IsAlphaNumeric(c byte) bool {
	return IsLetter(c) || IsDigit(c)
}

// SkipWS advances from 'from' over spaces and tabs, returning the index of
// the first non-whitespace byte (or len(s) if the rest of s is whitespace).
func SkipWS(s string, from int) int {
	i := from
	for i < len(s) && IsWhitespace(s[i]) {
		i++
	}
	return i
}

// SkipWSBack retreats from 'from' over spaces and tabs, returning the index
// of the last non-whitespace byte, or -1 if everything at or before 'from'
// is whitespace.
func SkipWSBack(s string, from int) int {
	i := from
	for i >= 0 && i < len(s) && IsWhitespace(s[i]) {
		i--
	}
	return i
}

// FindNextUnescapedCharacter returns the index of the next occurrence of c at
// or after 'from' that is not preceded by the escape byte, or -1.
func FindNextUnescapedCharacter(s string, c byte, from int, esc ...byte) int {
	e := escapeByte(esc)
	for i := from; i < len(s); i++ {
		if s[i] == c && !precededByEscape(s, i, e) {
			return i
		}
	}
	return -1
}

// FindLastUnescapedCharacter returns the index of the last occurrence of c in
// s that is not preceded by the escape byte, or -1.
func FindLastUnescapedCharacter(s string, c byte, esc ...byte) int {
	e := escapeByte(esc)
	for i := len(s) - 1; i >= 0; i-- {
		if s[i] == c && !precededByEscape(s, i, e) {
			return i
		}
	}
	return -1
}

func precededByEscape(s string, i int, esc byte) bool {
	if i == 0 {
		return false
	}
	// Count consecutive escape bytes immediately before i; an odd count
	// means the character at i is itself escaped.
	n := 0
	for j := i - 1; j >= 0 && s[j] == esc; j-- {
		n++
	}
	return n%2 == 1
}

func escapeByte(esc []byte) byte {
	if len(esc) > 0 {
		return esc[0]
	}
	return defaultEscape
}

// FindNextUnquotedUnescapedCharacter returns the index of the next occurrence
// of c at or after 'from' that is neither escaped nor inside a '...' or "..."
// region (regex /.../ regions are NOT skipped - use
// FindUnescapedNonStringNonRegexChar for that).
func FindNextUnquotedUnescapedCharacter(s string, c byte, from int, esc ...byte) int {
	return findSkippingDelimited(s, c, from, escapeByte(esc), "'\"")
}

// FindUnescapedNonStringNonRegexChar returns the index of the next occurrence
// of c at or after 'from' that is neither escaped, nor inside a '...', "..."
// or /.../ region. The three delimiters are interchangeable for the purpose
// of opening a region, but only the same character closes it.
func FindUnescapedNonStringNonRegexChar(s string, c byte, from int, esc ...byte) int {
	return findSkippingDelimited(s, c, from, escapeByte(esc), "'\"/")
}

func findSkippingDelimited(s string, c byte, from int, esc byte, delims string) int {
	var open byte
	for i := from; i < len(s); i++ {
		ch := s[i]
		if open != 0 {
			if ch == esc {
				i++ // escape inside the region is honored: skip the escaped byte too
				continue
			}
			if ch == open {
				open = 0
			}
			continue
		}
		if ch == esc {
			i++
			continue
		}
		if indexByte(delims, ch) {
			open = ch
			continue
		}
		if ch == c {
			return i
		}
	}
	return -1
}

func indexByte(set string, c byte) bool {
	for i := 0; i < len(set); i++ {
		if set[i] == c {
			return true
		}
	}
	return false
}

// FindNextNotBracketedUnescapedCharacter returns the index of the next
// unescaped occurrence of c at or after 'from' that is not nested inside an
// open/close bracket pair, tracking nesting depth. Panics if open == close,
// since depth tracking is then ill-defined.
func FindNextNotBracketedUnescapedCharacter(s string, c byte, from int, esc, open, close byte) int {
	if open == close {
		panic("scanner: open and close bracket bytes must differ")
	}
	depth := 0
	for i := from; i < len(s); i++ {
		ch := s[i]
		if ch == esc {
			i++
			continue
		}
		switch {
		case ch == open:
			depth++
		case ch == close:
			if depth > 0 {
				depth--
			}
		case ch == c && depth == 0:
			return i
		}
	}
	return -1
}

// IsRegexPattern reports whether the trimmed text looks like a /regex/
// literal: starts with '/', ends at the next unescaped '/', and is longer
// than two characters (i.e. not the empty pattern "//").
func IsRegexPattern(s string) bool {
	t := Trim(s)
	if len(t) <= 2 || t[0] != '/' {
		return false
	}
	end := FindNextUnescapedCharacter(t, '/', 1)
	return end == len(t)-1
}

// Trim removes leading/trailing spaces and tabs (the only whitespace class
// this scanner recognizes within a single rule line).
func Trim(s string) string {
	start := 0
	for start < len(s) && IsWhitespace(s[start]) {
		start++
	}
	end := len(s)
	for end > start && IsWhitespace(s[end-1]) {
		end--
	}
	return s[start:end]
}

// NewlineKind identifies which newline sequence terminated a line.
type NewlineKind int

const (
	NewlineNone NewlineKind = iota
	NewlineLF
	NewlineCRLF
	NewlineCR
)

// String renders the newline kind back to its literal bytes.
func (k NewlineKind) String() string {
	switch k {
	case NewlineLF:
		return "\n"
	case NewlineCRLF:
		return "\r\n"
	case NewlineCR:
		return "\r"
	default:
		return ""
	}
}

// Line is one segment produced by SplitLines, together with the newline kind
// that terminated it (NewlineNone for a trailing partial line).
type Line struct {
	Text  string
	Kind  NewlineKind
	Start int
}

// SplitLines splits s at CR, LF or CRLF boundaries, preserving the identity
// of each newline so the filter-list driver can re-emit it byte-for-byte.
func SplitLines(s string) []Line {
	var lines []Line
	start := 0
	i := 0
	for i < len(s) {
		c := s[i]
		if c == '\n' {
			lines = append(lines, Line{Text: s[start:i], Kind: NewlineLF, Start: start})
			i++
			start = i
			continue
		}
		if c == '\r' {
			if i+1 < len(s) && s[i+1] == '\n' {
				lines = append(lines, Line{Text: s[start:i], Kind: NewlineCRLF, Start: start})
				i += 2
			} else {
				lines = append(lines, Line{Text: s[start:i], Kind: NewlineCR, Start: start})
				i++
			}
			start = i
			continue
		}
		i++
	}
	if start < len(s) || len(lines) == 0 {
		lines = append(lines, Line{Text: s[start:], Kind: NewlineNone, Start: start})
	}
	return lines
}
