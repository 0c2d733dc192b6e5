package modifiers

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestExistsKnownModifier(t *testing.T) {
	v := Default()
	require.True(t, v.Exists("important"))
	require.True(t, v.Exists("domain=example.com"))
	require.True(t, v.Exists("~third-party"))
}

func TestExistsUnknownModifier(t *testing.T) {
	v := Default()
	require.False(t, v.Exists("not-a-real-modifier"))
}

func TestExistsAlias(t *testing.T) {
	v := Default()
	require.True(t, v.Exists("3p"))
	require.True(t, v.Exists("css"))
}

func TestExistsDeprecatedModifierIsNotSupported(t *testing.T) {
	v := Default()
	require.False(t, v.Exists("empty"))
	require.False(t, v.Exists("mp4"))
}

func TestLookupReturnsMetadata(t *testing.T) {
	v := Default()
	m, ok := v.Lookup("redirect")
	require.True(t, ok)
	require.True(t, m.Assignable)
	require.Contains(t, m.Conflicts, "redirect-rule")
}

func TestLookupByAlias(t *testing.T) {
	v := Default()
	m, ok := v.Lookup("from")
	require.True(t, ok)
	require.Equal(t, "domain", m.Name)
}

func TestLookupMissing(t *testing.T) {
	v := Default()
	_, ok := v.Lookup("nonexistent")
	require.False(t, ok)
}
