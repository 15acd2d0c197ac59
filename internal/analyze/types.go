package analyze

import (
	"lens-generator/internal/classify"
	"lens-generator/internal/synth"
	"lens-generator/options"
)

// TypeID uniquely identifies a type by its package path and name.
type TypeID struct {
	PkgPath string // e.g., "lens-generator/examples/shop"
	Name    string // e.g., "Order"
}

// String returns a human-readable representation of the TypeID.
func (t TypeID) String() string {
	if t.PkgPath == "" {
		return t.Name
	}

	return t.PkgPath + "." + t.Name
}

// Composite is an analyzed struct type: accessor constructors are
// synthesized for each of its members.
type Composite struct {
	ID TypeID
	// PkgName is the short package name, for qualified policy lookups.
	PkgName string
	// Members lists the exported fields in declaration order.
	Members []Member
}

// Qualified returns "pkg.Type", the spelling policy files use.
func (c *Composite) Qualified() string {
	return c.PkgName + "." + c.ID.Name
}

// Member is one analyzed field of a composite.
type Member struct {
	// Name is the Go field name.
	Name string
	// Desc is the normalized descriptor of the declared field type.
	Desc classify.TypeDesc
	// TagScope is the scope annotation from the field's lens tag,
	// ScopeUnset when the tag is absent.
	TagScope options.ScopeEnum
}

// Union is an analyzed tagged union: an exported interface sealed by an
// unexported method, with struct variants whose pointers implement it.
type Union struct {
	ID TypeID
	// PkgName is the short package name, for qualified policy lookups.
	PkgName string
	// Marker is the name of the unexported method sealing the interface.
	Marker string
	// Cases lists the variants in sorted name order.
	Cases []UnionCase
}

// Qualified returns "pkg.Type", the spelling policy files use.
func (u *Union) Qualified() string {
	return u.PkgName + "." + u.ID.Name
}

// UnionCase is one variant of a union.
type UnionCase struct {
	// Name is the case name with the union prefix stripped, e.g. "Active"
	// for a statusActive variant of Status.
	Name string
	// Variant is the variant struct's type name as declared.
	Variant string
	// Style tells how the variant carries its payload.
	Style synth.CaseStyle
	// Fields holds the payload fields, empty for payload-less variants.
	Fields []synth.CaseField
}

// Graph holds all analyzed types from the loaded packages.
type Graph struct {
	// Composites maps TypeID to analyzed struct types.
	Composites map[TypeID]*Composite
	// Unions maps TypeID to analyzed tagged unions.
	Unions map[TypeID]*Union
	// Packages maps package paths to their package info.
	Packages map[string]*PackageInfo
	// Deps maps short package names seen in descriptors to import paths,
	// so generated files can qualify foreign types.
	Deps map[string]string
}

// NewGraph creates a new empty Graph.
func NewGraph() *Graph {
	return &Graph{
		Composites: make(map[TypeID]*Composite),
		Unions:     make(map[TypeID]*Union),
		Packages:   make(map[string]*PackageInfo),
		Deps:       make(map[string]string),
	}
}

// Known builds the qualified-name index policy validation consumes: each
// composite maps to its member names, each union to its case names.
func (g *Graph) Known() map[string][]string {
	out := make(map[string][]string, len(g.Composites)+len(g.Unions))

	for _, c := range g.Composites {
		names := make([]string, 0, len(c.Members))
		for _, m := range c.Members {
			names = append(names, m.Name)
		}

		out[c.Qualified()] = names
	}

	for _, u := range g.Unions {
		names := make([]string, 0, len(u.Cases))
		for _, uc := range u.Cases {
			names = append(names, uc.Name)
		}

		out[u.Qualified()] = names
	}

	return out
}

// PackageInfo holds information about a loaded package.
type PackageInfo struct {
	Path string // Import path
	Name string // Package name
	Dir  string // Directory holding the package's source files
	// Composites and Unions list the analyzed types declared here.
	Composites []TypeID
	Unions     []TypeID
}
