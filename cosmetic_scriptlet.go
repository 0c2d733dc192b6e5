package agtree

import (
	"strings"

	"github.com/scripthunter7/agtree-temp-sub000/internal/location"
	"github.com/scripthunter7/agtree-temp-sub000/internal/scanner"
)

// ScriptletInjectionRule is a list of scriptlet invocations (§4.8.3). AdGuard
// and uBO permit exactly one call; ABP permits several, separated by ';'.
type ScriptletInjectionRule struct {
	cosmeticBase
	Calls []*ParameterList
}

// parseUboScriptletInjectionBody implements the "##+"/"#@#+" dispatch row:
// a single `js(...)` call (no `//scriptlet` form on this separator).
func parseUboScriptletInjectionBody(cb cosmeticBase, bodyText string, bodyBase location.Location) (Rule, error) {
	if strings.HasPrefix(bodyText, "//scriptlet") {
		return nil, rangedError("CosmeticRuleParseError", "uBO scriptlet injection accepts only the js(...) call form", bodyBase, 0, len(bodyText))
	}
	call, err := parseSingleAdgOrUboScriptletCall(bodyText, bodyBase)
	if err != nil {
		return nil, err
	}
	cb = cb.withSyntax(SyntaxUblockOrigin)
	return &ScriptletInjectionRule{cosmeticBase: cb, Calls: []*ParameterList{call}}, nil
}

// parseAdgScriptletOrJsInjectionBody implements the "#%#"/"#@%#" dispatch
// row: an AdGuard scriptlet call if the body begins with "//scriptlet",
// otherwise a non-empty ADG JS-injection fragment.
func parseAdgScriptletOrJsInjectionBody(cb cosmeticBase, bodyText string, bodyBase location.Location) (Rule, error) {
	if strings.HasPrefix(bodyText, "//scriptlet") {
		call, err := parseSingleAdgOrUboScriptletCall(bodyText, bodyBase)
		if err != nil {
			return nil, err
		}
		cb = cb.withSyntax(SyntaxAdGuard)
		return &ScriptletInjectionRule{cosmeticBase: cb, Calls: []*ParameterList{call}}, nil
	}
	if bodyText == "" {
		return nil, rangedError("CosmeticRuleParseError", "ADG JS-injection body cannot be empty", bodyBase, 0, 0)
	}
	cb = cb.withSyntax(SyntaxAdGuard)
	return &JsInjectionRule{cosmeticBase: cb, Code: bodyText}, nil
}

// parseAbpScriptletInjectionBody implements the ABP snippet-call surface:
// one or more whitespace-separated invocations joined by unescaped ';'.
func parseAbpScriptletInjectionBody(cb cosmeticBase, bodyText string, bodyBase location.Location) (Rule, error) {
	if bodyText == "" {
		return nil, rangedError("CosmeticRuleParseError", "ABP snippet-injection body cannot be empty", bodyBase, 0, 0)
	}
	var calls []*ParameterList
	offset := 0
	for {
		idx := scanner.FindNextUnescapedCharacter(bodyText, ';', offset)
		var segment string
		segStart := offset
		if idx == -1 {
			segment = bodyText[offset:]
		} else {
			segment = bodyText[offset:idx]
		}
		trimmed := scanner.Trim(segment)
		if trimmed == "" {
			return nil, rangedError("CosmeticRuleParseError", "ABP snippet invocation cannot be empty", bodyBase, segStart, segStart+len(segment))
		}
		calls = append(calls, ParseParameterList(trimmed, ' ', location.Shift(bodyBase, segStart)))
		if idx == -1 {
			break
		}
		offset = idx + 1
	}
	cb = cb.withSyntax(SyntaxAdblockPlus)
	return &ScriptletInjectionRule{cosmeticBase: cb, Calls: calls}, nil
}

// parseSingleAdgOrUboScriptletCall implements §4.8.3's AdGuard/uBO call
// surface: body must start with "//scriptlet" or "js" (but not "json"),
// immediately followed by '(' with no whitespace, a parameter list, then
// the closing ')' with nothing after it.
func parseSingleAdgOrUboScriptletCall(bodyText string, base location.Location) (*ParameterList, error) {
	var nameLen int
	switch {
	case strings.HasPrefix(bodyText, "//scriptlet"):
		nameLen = len("//scriptlet")
	case strings.HasPrefix(bodyText, "js") && !strings.HasPrefix(bodyText, "json"):
		nameLen = len("js")
	default:
		return nil, rangedError("CosmeticRuleParseError", "scriptlet call must start with \"//scriptlet\" or \"js\"", base, 0, len(bodyText))
	}
	if nameLen >= len(bodyText) || bodyText[nameLen] != '(' {
		return nil, rangedError("CosmeticRuleParseError", "expected '(' immediately after the scriptlet call name", base, nameLen, nameLen+1)
	}
	closeIdx := scanner.FindUnescapedNonStringNonRegexChar(bodyText, ')', nameLen+1)
	if closeIdx == -1 {
		return nil, rangedError("CosmeticRuleParseError", "missing closing ')' in scriptlet call", base, nameLen, len(bodyText))
	}
	if closeIdx != len(bodyText)-1 {
		return nil, rangedError("CosmeticRuleParseError", "unexpected characters after the scriptlet call's closing ')'", base, closeIdx+1, len(bodyText))
	}
	paramsText := bodyText[nameLen+1 : closeIdx]
	params := ParseParameterList(paramsText, ',', location.Shift(base, nameLen+1))
	if len(params.Children) > 0 && params.Children[0].Value == "" {
		return nil, rangedError("CosmeticRuleParseError", "scriptlet call requires a non-empty scriptlet name", base, nameLen+1, closeIdx)
	}
	return params, nil
}

// GenerateScriptletInjectionRule serializes a ScriptletInjectionRule back to
// its dialect-appropriate surface syntax.
func GenerateScriptletInjectionRule(r *ScriptletInjectionRule) string {
	prefix := GenerateCosmeticPattern(r.Modifiers, r.Domains) + r.Separator
	if r.SyntaxDialect() == SyntaxAdblockPlus {
		calls := make([]string, len(r.Calls))
		for i, c := range r.Calls {
			calls[i] = GenerateParameterList(c)
		}
		return prefix + strings.Join(calls, "; ")
	}
	name := "js"
	if len(r.Calls) > 0 {
		if r.SyntaxDialect() == SyntaxAdGuard {
			name = "//scriptlet"
		}
	}
	return prefix + name + "(" + GenerateParameterList(r.Calls[0]) + ")"
}
