package agtree

import (
	"testing"

	"github.com/scripthunter7/agtree-temp-sub000/internal/location"
	"github.com/stretchr/testify/require"
)

func TestParseParameterList(t *testing.T) {
	list := ParseParameterList("a, b, c", ',', location.NewLocation(0, 1, 1))
	require.Len(t, list.Children, 3)
	require.Equal(t, "a", list.Children[0].Value)
	require.Equal(t, "b", list.Children[1].Value)
	require.Equal(t, "c", list.Children[2].Value)
	require.Equal(t, "a, b, c", GenerateParameterList(list))
}

func TestParseParameterListEmpty(t *testing.T) {
	list := ParseParameterList("", ',', location.NewLocation(0, 1, 1))
	require.Empty(t, list.Children)
	require.Equal(t, "", GenerateParameterList(list))
}

func TestParseParameterListDefaultSeparator(t *testing.T) {
	list := ParseParameterList("x,y", 0, location.NewLocation(0, 1, 1))
	require.Equal(t, byte(','), list.Separator)
	require.Len(t, list.Children, 2)
}

func TestParseParameterListRespectsQuotedSeparators(t *testing.T) {
	list := ParseParameterList(`"a,b", c`, ',', location.NewLocation(0, 1, 1))
	require.Len(t, list.Children, 2)
	require.Equal(t, `"a,b"`, list.Children[0].Value)
	require.Equal(t, "c", list.Children[1].Value)
}
