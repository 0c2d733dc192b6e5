package cssast

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseSelectorListBasic(t *testing.T) {
	list, err := ParseSelectorList(".banner, #ad", false)
	require.NoError(t, err)
	require.Len(t, list.Children, 2)
	require.Equal(t, ".banner, #ad", GenerateSelectorList(list))
}

func TestParseSelectorListPseudoClass(t *testing.T) {
	list, err := ParseSelectorList(`body:style(padding-top: 0 !important;)`, false)
	require.NoError(t, err)
	require.Len(t, list.Children, 1)
	sel := list.Children[0]
	require.Len(t, sel.Parts, 2)
	require.Equal(t, PartPlain, sel.Parts[0].Kind)
	require.Equal(t, "body", sel.Parts[0].Text)
	require.Equal(t, PartPseudoClass, sel.Parts[1].Kind)
	require.Equal(t, "style", sel.Parts[1].PseudoName)
}

func TestParseSelectorListAttribute(t *testing.T) {
	list, err := ParseSelectorList(`div[tag-content="ad"]`, false)
	require.NoError(t, err)
	part := list.Children[0].Parts[1]
	require.Equal(t, PartAttribute, part.Kind)
	require.Equal(t, "tag-content", part.AttrName)
	require.Equal(t, "ad", part.AttrValue)
}

func TestParseDeclarationListImportant(t *testing.T) {
	list, err := ParseDeclarationList("padding-top: 0 !important;", false)
	require.NoError(t, err)
	require.Len(t, list.Children, 1)
	require.True(t, list.Children[0].Important)
	require.Equal(t, "padding-top: 0 !important;", GenerateDeclarationList(list))
}

func TestParseDeclarationListRemove(t *testing.T) {
	list, err := ParseDeclarationList("remove: true;", false)
	require.NoError(t, err)
	require.True(t, list.HasRemove())
}

func TestParseStylesheetPlainRule(t *testing.T) {
	sheet, err := ParseStylesheet("body { padding-top: 0 !important; }", false)
	require.NoError(t, err)
	require.Len(t, sheet.Children, 1)
	rule, ok := sheet.Children[0].(*Rule)
	require.True(t, ok)
	require.Equal(t, "body", GenerateSelectorList(rule.Prelude))
}

func TestParseStylesheetMedia(t *testing.T) {
	sheet, err := ParseStylesheet(`@media (min-width: 100px) { .ad { remove: true; } }`, false)
	require.NoError(t, err)
	require.Len(t, sheet.Children, 1)
	at, ok := sheet.Children[0].(*AtRule)
	require.True(t, ok)
	require.Equal(t, "media", at.Name)
	require.Equal(t, "(min-width: 100px)", at.Prelude)
	require.Len(t, at.Block.Children, 1)
}

func TestParseValueAsFunction(t *testing.T) {
	f, err := ParseValueAsFunction(`responseheader(name)`)
	require.NoError(t, err)
	require.Equal(t, "responseheader", f.Name)
	require.Equal(t, "name", f.Args)
	require.Equal(t, "responseheader(name)", GenerateFunction(f))
}

func TestParseSelectorListEmptyErrors(t *testing.T) {
	_, err := ParseSelectorList("", false)
	require.Error(t, err)
}
