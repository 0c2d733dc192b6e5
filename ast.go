// Package agtree is a parser, serializer and AST library for adblock
// filter-list syntax (AdGuard, uBlock Origin, Adblock Plus, and their common
// subset). It parses rule text into a strongly-typed AST and regenerates
// faithful textual form from that AST; it does not interpret or match rules
// against real traffic.
package agtree

import (
	"github.com/scripthunter7/agtree-temp-sub000/internal/location"
	"github.com/scripthunter7/agtree-temp-sub000/internal/scanner"
)

// RuleCategory is the closed set of top-level rule categories.
type RuleCategory int

const (
	CategoryEmpty RuleCategory = iota
	CategoryInvalid
	CategoryComment
	CategoryCosmetic
	CategoryNetwork
)

func (c RuleCategory) String() string {
	switch c {
	case CategoryEmpty:
		return "Empty"
	case CategoryInvalid:
		return "Invalid"
	case CategoryComment:
		return "Comment"
	case CategoryCosmetic:
		return "Cosmetic"
	case CategoryNetwork:
		return "Network"
	default:
		return "Unknown"
	}
}

// Syntax is the dialect tag carried by every rule.
type Syntax int

const (
	// SyntaxCommon means the text is grammatical in two or more dialects and
	// the parser could not disambiguate without semantic information.
	SyntaxCommon Syntax = iota
	SyntaxAdGuard
	SyntaxUblockOrigin
	SyntaxAdblockPlus
)

func (s Syntax) String() string {
	switch s {
	case SyntaxCommon:
		return "Common"
	case SyntaxAdGuard:
		return "AdGuard"
	case SyntaxUblockOrigin:
		return "UblockOrigin"
	case SyntaxAdblockPlus:
		return "AdblockPlus"
	default:
		return "Unknown"
	}
}

// Raws carries the small amount of verbatim source needed for lossless
// re-emission: the original text of the rule line, and the newline kind that
// followed it (attached by the filter-list driver, never by a per-rule
// parser).
type Raws struct {
	Text string
	NL   scanner.NewlineKind
}

// Value is a leaf string value with its own source range, used for header
// names, agent names/versions, preprocessor directive values and the like.
type Value struct {
	Value string
	Loc   *location.Range
}

// Rule is the tagged-union interface implemented by every concrete rule
// node. Go has no native sum type, so the "tag" is implicit in the dynamic
// type; callers dispatch with a type switch. The compiler does not check such
// a switch for exhaustiveness; GenerateRule in filterlist.go lists every
// concrete rule type.
type Rule interface {
	Category() RuleCategory
	SyntaxDialect() Syntax
	Range() *location.Range
	RawText() Raws
	isRule()
}

// base is embedded by every concrete Rule implementation to supply the
// common fields and the Rule plumbing methods.
type base struct {
	category RuleCategory
	syntax   Syntax
	loc      *location.Range
	raws     Raws
}

func (b *base) Category() RuleCategory      { return b.category }
func (b *base) SyntaxDialect() Syntax       { return b.syntax }
func (b *base) Range() *location.Range      { return b.loc }
func (b *base) RawText() Raws               { return b.raws }
func (b *base) isRule()                     {}
func (b *base) setRaws(r Raws)              { b.raws = r }

// EmptyRule is a line containing only whitespace.
type EmptyRule struct{ base }

// InvalidRule is produced only in tolerant mode; it carries the verbatim
// text of a rule the per-rule parsers rejected, plus the error that was
// swallowed.
type InvalidRule struct {
	base
	Err *SyntaxError
}

func newBase(category RuleCategory, syntax Syntax, loc *location.Range) base {
	return base{category: category, syntax: syntax, loc: loc}
}
