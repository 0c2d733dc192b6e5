package scanner

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFindNextUnescapedCharacter(t *testing.T) {
	require.Equal(t, 3, FindNextUnescapedCharacter("a,b,c,d", ',', 2))
	require.Equal(t, -1, FindNextUnescapedCharacter("abc", ',', 0))
	require.Equal(t, 4, FindNextUnescapedCharacter(`a\,b,c`, ',', 0))
}

func TestFindUnescapedNonStringNonRegexChar(t *testing.T) {
	// comma inside quotes is skipped
	require.Equal(t, 10, FindUnescapedNonStringNonRegexChar(`name="a,b",x`, ',', 0))
	// comma inside /regex,here/ is skipped
	require.Equal(t, len(`a/regex,x/`), FindUnescapedNonStringNonRegexChar(`a/regex,x/,b`, ',', 0))
}

func TestFindNextNotBracketedUnescapedCharacter(t *testing.T) {
	s := "[$path=/foo(bar)/]rest]"
	idx := FindNextNotBracketedUnescapedCharacter(s, ']', 1, '\\', '(', ')')
	require.Equal(t, len("[$path=/foo(bar)/"), idx)
}

func TestIsRegexPattern(t *testing.T) {
	require.True(t, IsRegexPattern("/ads.js/"))
	require.False(t, IsRegexPattern("//"))
	require.False(t, IsRegexPattern("not-a-regex"))
}

func TestSplitLinesPreservesKind(t *testing.T) {
	lines := SplitLines("a\r\nb\nc\rd")
	require.Len(t, lines, 4)
	require.Equal(t, NewlineCRLF, lines[0].Kind)
	require.Equal(t, NewlineLF, lines[1].Kind)
	require.Equal(t, NewlineCR, lines[2].Kind)
	require.Equal(t, NewlineNone, lines[3].Kind)
}

func TestSplitLinesTrailingNewlineNoExtraEmpty(t *testing.T) {
	lines := SplitLines("a\n")
	require.Len(t, lines, 1)
	require.Equal(t, "a", lines[0].Text)
	require.Equal(t, NewlineLF, lines[0].Kind)
}

func TestSplitLinesEmptyInput(t *testing.T) {
	lines := SplitLines("")
	require.Len(t, lines, 1)
	require.Equal(t, "", lines[0].Text)
}

func TestSplitByNonStringNonRegex(t *testing.T) {
	parts := SplitByNonStringNonRegex(`important,domain=example.com|~example.net`, ',')
	require.Equal(t, []string{"important", "domain=example.com|~example.net"}, parts)
}
