// Package modifiers exposes the §4.12 modifier compatibility corpus: a
// statically-compiled lookup of metadata for every known network-rule
// modifier, keyed by canonical name, with per-dialect support flags.
package modifiers

import (
	_ "embed"
	"strings"

	"github.com/goccy/go-yaml"
)

//go:embed modifiers.yaml
var corpusYAML []byte

// Metadata describes one modifier's compatibility and behavior across
// dialects.
type Metadata struct {
	Name               string   `yaml:"name"`
	Aliases            []string `yaml:"aliases,omitempty"`
	Assignable         bool     `yaml:"assignable,omitempty"`
	Negatable          bool     `yaml:"negatable,omitempty"`
	ExceptionOnly      bool     `yaml:"exception_only,omitempty"`
	BlockOnly          bool     `yaml:"block_only,omitempty"`
	Deprecated         bool     `yaml:"deprecated,omitempty"`
	DeprecationMessage string   `yaml:"deprecation_message,omitempty"`
	ValueFormat        string   `yaml:"value_format,omitempty"`
	Conflicts          []string `yaml:"conflicts,omitempty"`
	InverseConflicts   []string `yaml:"inverse_conflicts,omitempty"`
	Docs               string   `yaml:"docs,omitempty"`
	Description        string   `yaml:"description,omitempty"`
	VersionAdded       string   `yaml:"version_added,omitempty"`

	AdgAny      bool `yaml:"adg_any,omitempty"`
	AdgOSAny    bool `yaml:"adg_os_any,omitempty"`
	AdgExtAny   bool `yaml:"adg_ext_any,omitempty"`
	AdgCBIOS    bool `yaml:"adg_cb_ios,omitempty"`
	AdgCBSafari bool `yaml:"adg_cb_safari,omitempty"`
	UboAny      bool `yaml:"ubo_any,omitempty"`
	UboExtAny   bool `yaml:"ubo_ext_any,omitempty"`
	AbpAny      bool `yaml:"abp_any,omitempty"`
	AbpExtAny   bool `yaml:"abp_ext_any,omitempty"`
}

// Validator is a read-only, statically-constructed lookup of Metadata by
// canonical modifier name, plus the derived set of currently supported
// (non-deprecated) names and aliases.
type Validator struct {
	byName    map[string]*Metadata
	supported map[string]bool
}

var shared *Validator

func init() {
	shared = mustBuild(corpusYAML)
}

// Default returns the package-wide Validator built from the embedded
// corpus.
func Default() *Validator { return shared }

func mustBuild(raw []byte) *Validator {
	var entries map[string]Metadata
	if err := yaml.Unmarshal(raw, &entries); err != nil {
		panic("modifiers: failed to decode embedded corpus: " + err.Error())
	}

	v := &Validator{
		byName:    make(map[string]*Metadata, len(entries)),
		supported: make(map[string]bool, len(entries)*2),
	}
	for name, m := range entries {
		m := m
		v.byName[name] = &m
		if m.Deprecated {
			continue
		}
		v.supported[name] = true
		for _, alias := range m.Aliases {
			v.supported[alias] = true
		}
	}
	return v
}

// Lookup returns the Metadata registered under name (a canonical name or
// an alias), and whether it was found.
func (v *Validator) Lookup(name string) (*Metadata, bool) {
	if m, ok := v.byName[name]; ok {
		return m, true
	}
	for _, m := range v.byName {
		for _, alias := range m.Aliases {
			if alias == name {
				return m, true
			}
		}
	}
	return nil, false
}

// Exists reports whether modifier (parsed as "name" or "name=value", with
// an optional leading '~' negation marker stripped) names a currently
// supported, non-deprecated modifier.
func (v *Validator) Exists(modifier string) bool {
	name := strings.TrimPrefix(modifier, "~")
	if eq := strings.IndexByte(name, '='); eq != -1 {
		name = name[:eq]
	}
	return v.supported[name]
}
