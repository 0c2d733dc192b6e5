package agtree

import (
	"testing"

	"github.com/scripthunter7/agtree-temp-sub000/internal/location"
	"github.com/stretchr/testify/require"
)

func TestParseModifier(t *testing.T) {
	m, err := ParseModifier("~third-party", location.NewLocation(0, 1, 1))
	require.NoError(t, err)
	require.True(t, m.Exception)
	require.Equal(t, "third-party", m.Modifier.Value)
	require.Nil(t, m.Value)
	require.Equal(t, "~third-party", GenerateModifier(m))
}

func TestParseModifierWithValue(t *testing.T) {
	m, err := ParseModifier("domain=example.com|~example.net", location.NewLocation(0, 1, 1))
	require.NoError(t, err)
	require.Equal(t, "domain", m.Modifier.Value)
	require.Equal(t, "example.com|~example.net", m.Value.Value)
	require.Equal(t, "domain=example.com|~example.net", GenerateModifier(m))
}

func TestParseModifierRejectsEmptyValue(t *testing.T) {
	_, err := ParseModifier("path=", location.NewLocation(0, 1, 1))
	require.Error(t, err)
}

func TestParseModifierList(t *testing.T) {
	list, err := ParseModifierList("important,domain=example.com|~example.net", location.NewLocation(0, 1, 1))
	require.NoError(t, err)
	require.Len(t, list.Children, 2)
	require.Equal(t, "important,domain=example.com|~example.net", GenerateModifierList(list))
}

func TestParseModifierListRejectsTrailingComma(t *testing.T) {
	_, err := ParseModifierList("important,", location.NewLocation(0, 1, 1))
	require.Error(t, err)
}
