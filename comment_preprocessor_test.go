package agtree

import (
	"testing"

	"github.com/scripthunter7/agtree-temp-sub000/internal/location"
	"github.com/stretchr/testify/require"
)

func TestParsePreProcessorCommentRuleIf(t *testing.T) {
	r, err := parsePreProcessorCommentRule("!#if (adguard_ext_android_cb || adguard_ext_safari)", location.NewLocation(0, 1, 1))
	require.NoError(t, err)
	pp := r.(*PreProcessorCommentRule)
	require.Equal(t, "if", pp.Name)
	require.NotNil(t, pp.Params)
	op, ok := pp.Params.(*Operator)
	require.True(t, ok)
	require.Equal(t, "||", op.Op)
}

func TestParsePreProcessorCommentRuleIfRequiresParens(t *testing.T) {
	_, err := parsePreProcessorCommentRule("!#if adguard", location.NewLocation(0, 1, 1))
	require.Error(t, err)
}

func TestParsePreProcessorCommentRuleInclude(t *testing.T) {
	r, err := parsePreProcessorCommentRule("!#include https://example.com/a.txt", location.NewLocation(0, 1, 1))
	require.NoError(t, err)
	pp := r.(*PreProcessorCommentRule)
	require.Equal(t, "include", pp.Name)
	require.Equal(t, "https://example.com/a.txt", pp.Value.Value)
}

func TestParsePreProcessorCommentRuleIncludeRequiresValue(t *testing.T) {
	_, err := parsePreProcessorCommentRule("!#include", location.NewLocation(0, 1, 1))
	require.Error(t, err)
}

func TestParsePreProcessorCommentRuleSafariCbAffinity(t *testing.T) {
	r, err := parsePreProcessorCommentRule("!#safari_cb_affinity(content_blocker)", location.NewLocation(0, 1, 1))
	require.NoError(t, err)
	pp := r.(*PreProcessorCommentRule)
	require.Equal(t, "safari_cb_affinity", pp.Name)
	require.Equal(t, SyntaxAdGuard, pp.SyntaxDialect())
	require.Len(t, pp.List.Children, 1)
	require.Equal(t, "content_blocker", pp.List.Children[0].Value)
}

func TestParsePreProcessorCommentRuleSafariCbAffinityNoParams(t *testing.T) {
	r, err := parsePreProcessorCommentRule("!#safari_cb_affinity", location.NewLocation(0, 1, 1))
	require.NoError(t, err)
	pp := r.(*PreProcessorCommentRule)
	require.Nil(t, pp.List)
}

func TestParsePreProcessorCommentRuleSafariCbAffinityRejectsSpaceBeforeParen(t *testing.T) {
	_, err := parsePreProcessorCommentRule("!#safari_cb_affinity (content_blocker)", location.NewLocation(0, 1, 1))
	require.Error(t, err)
}

func TestParsePreProcessorCommentRuleUnknownDirective(t *testing.T) {
	r, err := parsePreProcessorCommentRule("!#something foo bar", location.NewLocation(0, 1, 1))
	require.NoError(t, err)
	pp := r.(*PreProcessorCommentRule)
	require.Equal(t, "something", pp.Name)
	require.Equal(t, "foo bar", pp.Value.Value)
}

func TestIsPreProcessorCommentCandidate(t *testing.T) {
	require.True(t, isPreProcessorCommentCandidate("!#if (a)"))
	require.False(t, isPreProcessorCommentCandidate("!##"))
	require.False(t, isPreProcessorCommentCandidate("! regular"))
}
