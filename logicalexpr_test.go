package agtree

import (
	"testing"

	"github.com/scripthunter7/agtree-temp-sub000/internal/location"
	"github.com/stretchr/testify/require"
)

func mustParseExpr(t *testing.T, text string) Expression {
	t.Helper()
	e, err := ParseLogicalExpression(text, location.NewLocation(0, 1, 1))
	require.NoError(t, err)
	return e
}

func TestParseLogicalExpressionPrecedence(t *testing.T) {
	e := mustParseExpr(t, "adguard_ext_android_cb || adguard_ext_safari")
	op, ok := e.(*Operator)
	require.True(t, ok)
	require.Equal(t, "||", op.Op)
	require.Equal(t, "adguard_ext_android_cb || adguard_ext_safari", GenerateLogicalExpression(e))
}

func TestParseLogicalExpressionUnaryAndGrouping(t *testing.T) {
	e := mustParseExpr(t, "!(a && b)")
	require.Equal(t, "!(a && b)", GenerateLogicalExpression(e))
}

func TestLogicalExpressionRejectsSingleAmpersand(t *testing.T) {
	_, err := ParseLogicalExpression("a & b", location.NewLocation(0, 1, 1))
	require.Error(t, err)
}

func TestLogicalExpressionRejectsBadChar(t *testing.T) {
	_, err := ParseLogicalExpression("a % b", location.NewLocation(0, 1, 1))
	require.Error(t, err)
}

func TestEvaluateLogicalExpression(t *testing.T) {
	cases := []struct {
		expr string
		vals map[string]bool
		want bool
	}{
		{"a && b", map[string]bool{"a": true, "b": true}, true},
		{"a && b", map[string]bool{"a": true, "b": false}, false},
		{"a || b", map[string]bool{"a": false, "b": true}, true},
		{"!a", map[string]bool{"a": true}, false},
		{"(a || b) && !c", map[string]bool{"a": false, "b": true, "c": false}, true},
	}
	for _, c := range cases {
		e := mustParseExpr(t, c.expr)
		got, err := EvaluateLogicalExpression(e, c.vals, false)
		require.NoError(t, err)
		require.Equal(t, c.want, got, c.expr)
	}
}

func TestEvaluateLogicalExpressionUndefinedDefaultsFalse(t *testing.T) {
	e := mustParseExpr(t, "unknown_var")
	got, err := EvaluateLogicalExpression(e, nil, false)
	require.NoError(t, err)
	require.False(t, got)

	_, err = EvaluateLogicalExpression(e, nil, true)
	require.Error(t, err)
}
