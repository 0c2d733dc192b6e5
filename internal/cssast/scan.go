package cssast

// scanDepth walks s starting at 'from', tracking paren/bracket/quote state,
// and returns the index of the next top-level occurrence of target (a byte
// that is not inside '...', "..." or (...) / [...] nesting), or -1.
func scanDepth(s string, from int, target byte) int {
	depthParen := 0
	depthBracket := 0
	var quote byte
	for i := from; i < len(s); i++ {
		c := s[i]
		if quote != 0 {
			if c == '\\' {
				i++
				continue
			}
			if c == quote {
				quote = 0
			}
			continue
		}
		switch c {
		case '\'', '"':
			quote = c
		case '(':
			depthParen++
		case ')':
			if depthParen > 0 {
				depthParen--
			}
		case '[':
			depthBracket++
		case ']':
			if depthBracket > 0 {
				depthBracket--
			}
		default:
			if c == target && depthParen == 0 && depthBracket == 0 {
				return i
			}
		}
	}
	return -1
}

// splitTopLevel splits s at every top-level (outside quotes/parens/brackets)
// occurrence of sep.
func splitTopLevel(s string, sep byte) []string {
	var out []string
	from := 0
	for {
		idx := scanDepth(s, from, sep)
		if idx == -1 {
			out = append(out, s[from:])
			return out
		}
		out = append(out, s[from:idx])
		from = idx + 1
	}
}

// findMatching returns the index of the byte that closes the bracket opened
// at openIdx (s[openIdx] == open), honoring nested pairs and quoted
// sections, or -1 if unbalanced.
func findMatching(s string, openIdx int, open, close byte) int {
	depth := 0
	var quote byte
	for i := openIdx; i < len(s); i++ {
		c := s[i]
		if quote != 0 {
			if c == '\\' {
				i++
				continue
			}
			if c == quote {
				quote = 0
			}
			continue
		}
		switch c {
		case '\'', '"':
			quote = c
		case open:
			depth++
		case close:
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}

func trim(s string) string {
	start, end := 0, len(s)
	for start < end && isSpace(s[start]) {
		start++
	}
	for end > start && isSpace(s[end-1]) {
		end--
	}
	return s[start:end]
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\f'
}

func isIdentStart(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || c == '_' || c == '-' || c >= 0x80
}

func isIdentChar(c byte) bool {
	return isIdentStart(c) || (c >= '0' && c <= '9')
}
