package agtree

import (
	"testing"

	"github.com/scripthunter7/agtree-temp-sub000/internal/location"
	"github.com/stretchr/testify/require"
)

func TestTryParseMetadataCommentRule(t *testing.T) {
	r, ok, err := tryParseMetadataCommentRule("! Title: AdGuard Base Filter", location.NewLocation(0, 1, 1))
	require.NoError(t, err)
	require.True(t, ok)
	m := r.(*MetadataCommentRule)
	require.Equal(t, "Title", m.Header)
	require.Equal(t, "AdGuard Base Filter", m.Value.Value)
	require.Equal(t, "! Title: AdGuard Base Filter", GenerateMetadataCommentRule(m))
}

func TestTryParseMetadataCommentRuleCaseInsensitive(t *testing.T) {
	r, ok, err := tryParseMetadataCommentRule("! title: lower case header", location.NewLocation(0, 1, 1))
	require.NoError(t, err)
	require.True(t, ok)
	m := r.(*MetadataCommentRule)
	require.Equal(t, "Title", m.Header)
}

func TestTryParseMetadataCommentRuleRejectsEmptyValue(t *testing.T) {
	_, ok, err := tryParseMetadataCommentRule("! Title:", location.NewLocation(0, 1, 1))
	require.True(t, ok)
	require.Error(t, err)
}

func TestTryParseMetadataCommentRuleNoMatch(t *testing.T) {
	_, ok, err := tryParseMetadataCommentRule("! just a regular comment: nothing special", location.NewLocation(0, 1, 1))
	require.NoError(t, err)
	require.False(t, ok)
}

func TestTryParseMetadataCommentRuleNoColon(t *testing.T) {
	_, ok, err := tryParseMetadataCommentRule("! a plain comment", location.NewLocation(0, 1, 1))
	require.NoError(t, err)
	require.False(t, ok)
}
