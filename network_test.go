package agtree

import (
	"testing"

	"github.com/scripthunter7/agtree-temp-sub000/internal/location"
	"github.com/stretchr/testify/require"
)

func TestParseNetworkRuleBasic(t *testing.T) {
	r, err := ParseNetworkRule("||example.org^$important,domain=example.com|~example.net", location.NewLocation(0, 1, 1))
	require.NoError(t, err)
	nr := r.(*NetworkRule)
	require.False(t, nr.Exception)
	require.Equal(t, "||example.org^", nr.Pattern.Value)
	require.Len(t, nr.Modifiers.Children, 2)
	require.Equal(t, "important", nr.Modifiers.Children[0].Modifier.Value)
	require.Equal(t, "domain", nr.Modifiers.Children[1].Modifier.Value)
}

func TestParseNetworkRuleException(t *testing.T) {
	r, err := ParseNetworkRule("@@/ads.js^$important,third-party,domain=example.org|~example.com", location.NewLocation(0, 1, 1))
	require.NoError(t, err)
	nr := r.(*NetworkRule)
	require.True(t, nr.Exception)
	require.Equal(t, "/ads.js^", nr.Pattern.Value)
	require.Len(t, nr.Modifiers.Children, 3)
}

func TestParseNetworkRuleNoModifiers(t *testing.T) {
	r, err := ParseNetworkRule("||example.org^", location.NewLocation(0, 1, 1))
	require.NoError(t, err)
	nr := r.(*NetworkRule)
	require.Equal(t, "||example.org^", nr.Pattern.Value)
	require.Nil(t, nr.Modifiers)
}

func TestParseNetworkRuleDollarInRegexNotSplit(t *testing.T) {
	r, err := ParseNetworkRule(`/ad\$/$script`, location.NewLocation(0, 1, 1))
	require.NoError(t, err)
	nr := r.(*NetworkRule)
	require.Equal(t, `/ad\$/`, nr.Pattern.Value)
	require.Len(t, nr.Modifiers.Children, 1)
}

func TestParseNetworkRuleRejectsEmpty(t *testing.T) {
	_, err := ParseNetworkRule("", location.NewLocation(0, 1, 1))
	require.Error(t, err)
}

func TestGenerateNetworkRule(t *testing.T) {
	r, err := ParseNetworkRule("||example.org^$important", location.NewLocation(0, 1, 1))
	require.NoError(t, err)
	require.Equal(t, "||example.org^$important", GenerateNetworkRule(r.(*NetworkRule)))
}
