package policy

// File is the root of a YAML scope policy file.
type File struct {
	// Version of the policy format. Defaults to "1".
	Version string `yaml:"version"`
	// DefaultScope applies to every type without its own entry.
	DefaultScope string `yaml:"default_scope,omitempty"`
	// Types lists per-type policies.
	Types []TypeEntry `yaml:"types,omitempty"`
}

// TypeEntry is the policy for one composite or union type.
type TypeEntry struct {
	// Type is the package-qualified type name, e.g. "shop.Order".
	Type string `yaml:"type"`
	// Scope is the type-level default for all members and cases.
	Scope string `yaml:"scope,omitempty"`
	// Members lists member-level overrides.
	Members []MemberEntry `yaml:"members,omitempty"`
	// Cases lists case-level overrides for union types.
	Cases []CaseEntry `yaml:"cases,omitempty"`
}

// MemberEntry overrides the scope of a single member.
type MemberEntry struct {
	Member string `yaml:"member"`
	Scope  string `yaml:"scope"`
}

// CaseEntry overrides the scope of a single union case.
type CaseEntry struct {
	Case  string `yaml:"case"`
	Scope string `yaml:"scope"`
}
