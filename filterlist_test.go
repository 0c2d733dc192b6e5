package agtree

import (
	"testing"

	"github.com/scripthunter7/agtree-temp-sub000/internal/scanner"
	"github.com/stretchr/testify/require"
)

func TestParseFilterListBasic(t *testing.T) {
	list, err := Parse("! comment\n||example.org^$script\n\nexample.com##.banner\n", true)
	require.NoError(t, err)
	require.Len(t, list.Rules, 4)

	require.IsType(t, &CommentRule{}, list.Rules[0])
	require.Equal(t, scanner.NewlineLF, list.Rules[0].RawText().NL)

	require.IsType(t, &NetworkRule{}, list.Rules[1])
	require.IsType(t, &EmptyRule{}, list.Rules[2])
	require.IsType(t, &ElementHidingRule{}, list.Rules[3])
}

func TestParseFilterListTrailingPartialLine(t *testing.T) {
	list, err := Parse("||example.org^", true)
	require.NoError(t, err)
	require.Len(t, list.Rules, 1)
	require.Equal(t, scanner.NewlineNone, list.Rules[0].RawText().NL)
}

func TestParseFilterListTolerantWrapsInvalid(t *testing.T) {
	list, err := Parse("example.com##body:style(padding-top: 0;)(extra)\n", true)
	require.NoError(t, err)
	require.Len(t, list.Rules, 1)
}

func TestParseFilterListStrictAcceptsEmptyInput(t *testing.T) {
	_, err := Parse("", false)
	require.NoError(t, err)
}

func TestGenerateFilterListRoundTrip(t *testing.T) {
	src := "! comment\r\n||example.org^$script\r\n"
	list, err := Parse(src, true)
	require.NoError(t, err)
	require.Equal(t, src, Generate(list, true))
}

func TestGenerateFilterListNonRawMode(t *testing.T) {
	src := "||example.org^$important\n"
	list, err := Parse(src, true)
	require.NoError(t, err)
	require.Equal(t, src, Generate(list, false))
}
