package agtree

import (
	"testing"

	"github.com/scripthunter7/agtree-temp-sub000/internal/location"
	"github.com/stretchr/testify/require"
)

func TestParseDomainListBasic(t *testing.T) {
	list, err := ParseDomainList("example.org,~sub.example.org", ',', location.NewLocation(0, 1, 1))
	require.NoError(t, err)
	require.Len(t, list.Children, 2)
	require.Equal(t, "example.org", list.Children[0].Value)
	require.False(t, list.Children[0].Exception)
	require.Equal(t, "sub.example.org", list.Children[1].Value)
	require.True(t, list.Children[1].Exception)
	require.Equal(t, "example.org,~sub.example.org", GenerateDomainList(list))
}

func TestParseDomainListModifierSeparator(t *testing.T) {
	list, err := ParseDomainList("example.com|~example.net", '|', location.NewLocation(0, 1, 1))
	require.NoError(t, err)
	require.Equal(t, "example.com|~example.net", GenerateDomainList(list))
}

func TestParseDomainListRejectsTrailingSeparator(t *testing.T) {
	_, err := ParseDomainList("example.com,", ',', location.NewLocation(0, 1, 1))
	require.Error(t, err)
}

func TestParseDomainListRejectsDoubleTilde(t *testing.T) {
	_, err := ParseDomainList("~~example.com", ',', location.NewLocation(0, 1, 1))
	require.Error(t, err)
}

func TestParseDomainListAllowsWildcardOnly(t *testing.T) {
	list, err := ParseDomainList("*", ',', location.NewLocation(0, 1, 1))
	require.NoError(t, err)
	require.Equal(t, "*", list.Children[0].Value)
}

func TestParseDomainListRejectsEmptyItem(t *testing.T) {
	_, err := ParseDomainList("example.com,,example.net", ',', location.NewLocation(0, 1, 1))
	require.Error(t, err)
}
