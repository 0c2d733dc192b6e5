package agtree

import (
	"testing"

	"github.com/scripthunter7/agtree-temp-sub000/internal/location"
	"github.com/stretchr/testify/require"
)

func TestParseHintCommentRuleNoParams(t *testing.T) {
	r, err := parseHintCommentRule("!+ NOT_OPTIMIZED", location.NewLocation(0, 1, 1))
	require.NoError(t, err)
	hint := r.(*HintCommentRule)
	require.Len(t, hint.Children, 1)
	require.Equal(t, "NOT_OPTIMIZED", hint.Children[0].Name)
	require.Nil(t, hint.Children[0].Params)
}

func TestParseHintCommentRuleWithParams(t *testing.T) {
	r, err := parseHintCommentRule("!+ PLATFORM(windows,mac) NOT_PLATFORM(android)", location.NewLocation(0, 1, 1))
	require.NoError(t, err)
	hint := r.(*HintCommentRule)
	require.Len(t, hint.Children, 2)
	require.Equal(t, "PLATFORM", hint.Children[0].Name)
	require.Len(t, hint.Children[0].Params.Children, 2)
	require.Equal(t, "mac", hint.Children[0].Params.Children[1].Value)
	require.Equal(t, "NOT_PLATFORM", hint.Children[1].Name)
	require.Equal(t, "!+ PLATFORM(windows, mac) NOT_PLATFORM(android)", GenerateHintCommentRule(hint))
}

func TestParseHintCommentRuleRejectsEmptyList(t *testing.T) {
	_, err := parseHintCommentRule("!+", location.NewLocation(0, 1, 1))
	require.Error(t, err)
}

func TestParseHintCommentRuleRejectsNestedParens(t *testing.T) {
	_, err := parseHintCommentRule("!+ NAME(a(b))", location.NewLocation(0, 1, 1))
	require.Error(t, err)
}

func TestParseHintCommentRuleRejectsUnbalancedParen(t *testing.T) {
	_, err := parseHintCommentRule("!+ NAME(a", location.NewLocation(0, 1, 1))
	require.Error(t, err)
}

func TestIsHintCommentCandidate(t *testing.T) {
	require.True(t, isHintCommentCandidate("!+ NOT_OPTIMIZED"))
	require.False(t, isHintCommentCandidate("!#if (a)"))
}
