package agtree

import (
	"fmt"

	"github.com/scripthunter7/agtree-temp-sub000/internal/location"
	"github.com/scripthunter7/agtree-temp-sub000/internal/scanner"
)

// Expression is the tagged union of logical-expression nodes used inside
// preprocessor `!#if (...)` bodies.
type Expression interface {
	exprNode()
	Generate() string
}

// Variable is a bare identifier, e.g. `adguard`.
type Variable struct {
	Name string
	Loc  *location.Range
}

func (*Variable) exprNode()        {}
func (v *Variable) Generate() string { return v.Name }

// Operator is a unary (`!`) or binary (`&&`, `||`) logical operator node.
type Operator struct {
	Op    string // "!", "&&", "||"
	Left  Expression
	Right Expression // nil for unary "!"
	Loc   *location.Range
}

func (*Operator) exprNode() {}

func (o *Operator) Generate() string {
	if o.Op == "!" {
		return "!" + o.Left.Generate()
	}
	return fmt.Sprintf("%s %s %s", o.Left.Generate(), o.Op, o.Right.Generate())
}

// Parenthesis wraps a parenthesized sub-expression.
type Parenthesis struct {
	Expr Expression
	Loc  *location.Range
}

func (*Parenthesis) exprNode()        {}
func (p *Parenthesis) Generate() string { return "(" + p.Expr.Generate() + ")" }

// operatorPrecedence matches the spec's OPERATOR_PRECEDENCE table.
var operatorPrecedence = map[string]int{"!": 3, "&&": 2, "||": 1}

type logicalToken struct {
	kind   string // "ident", "!", "&&", "||", "(", ")"
	text   string
	offset int
}

// tokenizeLogicalExpression lexes a logical expression, skipping whitespace
// and rejecting any byte outside [A-Za-z0-9_()!&|], and requiring && / || to
// be doubled (a lone & or | is an error).
func tokenizeLogicalExpression(s string, base location.Location) ([]logicalToken, error) {
	var toks []logicalToken
	i := 0
	for i < len(s) {
		c := s[i]
		if c == ' ' || c == '\t' {
			i++
			continue
		}
		switch {
		case c == '(' || c == ')':
			toks = append(toks, logicalToken{kind: string(c), text: string(c), offset: i})
			i++
		case c == '!':
			toks = append(toks, logicalToken{kind: "!", text: "!", offset: i})
			i++
		case c == '&' || c == '|':
			if i+1 >= len(s) || s[i+1] != c {
				return nil, rangedError("LogicalExpressionError", fmt.Sprintf("expected doubled '%c%c'", c, c), base, i, i+1)
			}
			op := string(c) + string(c)
			toks = append(toks, logicalToken{kind: op, text: op, offset: i})
			i += 2
		case isIdentStart(c):
			j := i + 1
			for j < len(s) && isIdentChar(s[j]) {
				j++
			}
			toks = append(toks, logicalToken{kind: "ident", text: s[i:j], offset: i})
			i = j
		default:
			return nil, rangedError("LogicalExpressionError", fmt.Sprintf("unexpected character %q", c), base, i, i+1)
		}
	}
	return toks, nil
}

func isIdentStart(c byte) bool { return scanner.IsLetter(c) }
func isIdentChar(c byte) bool  { return scanner.IsAlphaNumeric(c) || c == '_' }

func rangedError(name, msg string, base location.Location, start, end int) *SyntaxError {
	r := location.NewRange(base, start, end)
	return newSyntaxErrorAt(name, msg, r)
}

// logicalExprParser is a small recursive-descent / precedence-climbing
// parser over the tokens produced by tokenizeLogicalExpression, implementing
// the grammar:
//
//	expr  := or
//	or    := and ('||' and)*
//	and   := unary ('&&' unary)*
//	unary := '!' unary | atom
//	atom  := Identifier | '(' expr ')'
type logicalExprParser struct {
	toks []logicalToken
	pos  int
	base location.Location
	src  string
}

// ParseLogicalExpression parses a preprocessor `!#if` body into an
// Expression tree.
func ParseLogicalExpression(text string, base location.Location) (Expression, error) {
	toks, err := tokenizeLogicalExpression(text, base)
	if err != nil {
		return nil, err
	}
	if len(toks) == 0 {
		return nil, rangedError("LogicalExpressionError", "empty logical expression", base, 0, len(text))
	}
	p := &logicalExprParser{toks: toks, base: base, src: text}
	expr, err := p.parseOr()
	if err != nil {
		return nil, err
	}
	if p.pos != len(p.toks) {
		t := p.toks[p.pos]
		return nil, rangedError("LogicalExpressionError", fmt.Sprintf("unexpected token %q", t.text), base, t.offset, t.offset+len(t.text))
	}
	return expr, nil
}

func (p *logicalExprParser) peek() (logicalToken, bool) {
	if p.pos >= len(p.toks) {
		return logicalToken{}, false
	}
	return p.toks[p.pos], true
}

// parseOr climbs binary operators by precedence (OPERATOR_PRECEDENCE),
// starting at the lowest binary precedence ('||'). Unary '!' binds tighter
// than either binary operator and is handled by parseUnary.
func (p *logicalExprParser) parseOr() (Expression, error) {
	return p.parseBinary(operatorPrecedence["||"])
}

func (p *logicalExprParser) parseBinary(minPrec int) (Expression, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	for {
		t, ok := p.peek()
		if !ok || (t.kind != "&&" && t.kind != "||") {
			return left, nil
		}
		prec := operatorPrecedence[t.kind]
		if prec < minPrec {
			return left, nil
		}
		p.pos++
		right, err := p.parseBinary(prec + 1)
		if err != nil {
			return nil, err
		}
		left = &Operator{Op: t.kind, Left: left, Right: right}
	}
}

func (p *logicalExprParser) parseUnary() (Expression, error) {
	t, ok := p.peek()
	if !ok {
		return nil, rangedError("LogicalExpressionError", "unexpected end of expression", p.base, len(p.src), len(p.src))
	}
	if t.kind == "!" {
		p.pos++
		operand, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return &Operator{Op: "!", Left: operand}, nil
	}
	return p.parseAtom()
}

func (p *logicalExprParser) parseAtom() (Expression, error) {
	t, ok := p.peek()
	if !ok {
		return nil, rangedError("LogicalExpressionError", "unexpected end of expression", p.base, len(p.src), len(p.src))
	}
	switch t.kind {
	case "ident":
		p.pos++
		return &Variable{Name: t.text}, nil
	case "(":
		p.pos++
		inner, err := p.parseOr()
		if err != nil {
			return nil, err
		}
		close, ok := p.peek()
		if !ok || close.kind != ")" {
			return nil, rangedError("LogicalExpressionError", "missing closing ')'", p.base, t.offset, t.offset+1)
		}
		p.pos++
		return &Parenthesis{Expr: inner}, nil
	default:
		return nil, rangedError("LogicalExpressionError", fmt.Sprintf("unexpected token %q", t.text), p.base, t.offset, t.offset+len(t.text))
	}
}

// GenerateLogicalExpression serializes an Expression tree back to text.
func GenerateLogicalExpression(e Expression) string { return e.Generate() }

// EvaluateLogicalExpression walks expr against a name -> bool assignment.
// An undefined variable evaluates to false by default; pass
// strictUndefined=true to instead return an error.
func EvaluateLogicalExpression(expr Expression, values map[string]bool, strictUndefined bool) (bool, error) {
	switch n := expr.(type) {
	case *Variable:
		v, ok := values[n.Name]
		if !ok {
			if strictUndefined {
				return false, fmt.Errorf("undefined variable %q", n.Name)
			}
			return false, nil
		}
		return v, nil
	case *Parenthesis:
		return EvaluateLogicalExpression(n.Expr, values, strictUndefined)
	case *Operator:
		switch n.Op {
		case "!":
			v, err := EvaluateLogicalExpression(n.Left, values, strictUndefined)
			if err != nil {
				return false, err
			}
			return !v, nil
		case "&&":
			l, err := EvaluateLogicalExpression(n.Left, values, strictUndefined)
			if err != nil {
				return false, err
			}
			r, err := EvaluateLogicalExpression(n.Right, values, strictUndefined)
			if err != nil {
				return false, err
			}
			return l && r, nil
		case "||":
			l, err := EvaluateLogicalExpression(n.Left, values, strictUndefined)
			if err != nil {
				return false, err
			}
			r, err := EvaluateLogicalExpression(n.Right, values, strictUndefined)
			if err != nil {
				return false, err
			}
			return l || r, nil
		}
	}
	return false, fmt.Errorf("unknown expression node %T", expr)
}
