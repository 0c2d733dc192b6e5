package agtree

import "testing"

func TestModifierValidatorExists(t *testing.T) {
	v := DefaultModifierValidator()
	if !v.Exists("important") {
		t.Fatal("expected important to be a known modifier")
	}
	if !v.Exists("~third-party") {
		t.Fatal("expected negated third-party to be a known modifier")
	}
	if !v.Exists("domain=example.com") {
		t.Fatal("expected assigned domain to be a known modifier")
	}
	if v.Exists("not-a-real-modifier") {
		t.Fatal("expected unknown modifier to be rejected")
	}
}

func TestModifierValidatorRejectsDeprecated(t *testing.T) {
	v := DefaultModifierValidator()
	if v.Exists("empty") {
		t.Fatal("expected deprecated modifier 'empty' to be reported as unsupported")
	}
}
