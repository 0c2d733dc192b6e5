package agtree

// JsInjectionRule is a verbatim ADG JS-injection body (§3, §4.8.3 fallback).
type JsInjectionRule struct {
	cosmeticBase
	Code string
}

// GenerateJsInjectionRule serializes a JsInjectionRule back to
// "domains SEPARATOR code".
func GenerateJsInjectionRule(r *JsInjectionRule) string {
	return GenerateCosmeticPattern(r.Modifiers, r.Domains) + r.Separator + r.Code
}
