package agtree

import "testing"

func TestIsValidDomainOrHostnameWildcard(t *testing.T) {
	if !IsValidDomainOrHostname("*") {
		t.Fatal("expected wildcard domain to be valid")
	}
}

func TestIsValidDomainOrHostnameRejectsEmpty(t *testing.T) {
	if IsValidDomainOrHostname("") {
		t.Fatal("expected empty string to be invalid")
	}
}

func TestIsValidDomainOrHostnameRejectsLeadingDot(t *testing.T) {
	if IsValidDomainOrHostname(".example.com") {
		t.Fatal("expected leading-dot domain to be invalid")
	}
}

func TestIsValidDomainOrHostnameAcceptsRegular(t *testing.T) {
	if !IsValidDomainOrHostname("example.com") {
		t.Fatal("expected example.com to be valid")
	}
}
