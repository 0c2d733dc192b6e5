package agtree

import (
	"testing"

	"github.com/scripthunter7/agtree-temp-sub000/internal/location"
	"github.com/stretchr/testify/require"
)

func TestParseAgentCommentRule(t *testing.T) {
	r, err := parseAgentCommentRule("[Adblock Plus 2.0; AdGuard]", location.NewLocation(0, 1, 1))
	require.NoError(t, err)
	agent := r.(*AgentCommentRule)
	require.Len(t, agent.Children, 2)
	require.Equal(t, "Adblock Plus", agent.Children[0].Adblock.Value)
	require.Equal(t, "2.0", agent.Children[0].Version.Value)
	require.Equal(t, "AdGuard", agent.Children[1].Adblock.Value)
	require.Nil(t, agent.Children[1].Version)
	require.Equal(t, "[Adblock Plus 2.0; AdGuard]", GenerateAgentCommentRule(agent))
}

func TestParseAgentCommentRuleRejectsEmptyList(t *testing.T) {
	_, err := parseAgentCommentRule("[]", location.NewLocation(0, 1, 1))
	require.Error(t, err)
}

func TestParseAgentCommentRuleRejectsDuplicateVersion(t *testing.T) {
	_, err := parseAgentCommentRule("[1.0 Name 2.0]", location.NewLocation(0, 1, 1))
	require.Error(t, err)
}

func TestIsAgentCommentCandidate(t *testing.T) {
	require.True(t, isAgentCommentCandidate("[Adblock Plus 2.0]"))
	require.False(t, isAgentCommentCandidate("[$path=/x]example.com##.a"))
	require.False(t, isAgentCommentCandidate("not brackets"))
}

func TestIsValidVersion(t *testing.T) {
	require.True(t, isValidVersion("2.0"))
	require.True(t, isValidVersion("1.0.3"))
	require.False(t, isValidVersion("Name"))
}
