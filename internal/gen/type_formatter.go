package gen

import (
	"sort"
	"strings"

	"lens-generator/internal/analyze"
	"lens-generator/internal/classify"
)

// Import paths for packages generated code always knows about.
const (
	lensImportPath      = "lens-generator/lens"
	containerImportPath = "lens-generator/container"
)

// importSpec represents an import statement.
type importSpec struct {
	Alias string
	Path  string
}

// importSet accumulates the imports one generated file needs.
type importSet struct {
	specs map[string]importSpec
}

func newImportSet() *importSet {
	return &importSet{specs: make(map[string]importSpec)}
}

func (s *importSet) add(path string) {
	if path == "" {
		return
	}

	s.specs[path] = importSpec{Path: path}
}

// sorted returns the imports in deterministic order.
func (s *importSet) sorted() []importSpec {
	out := make([]importSpec, 0, len(s.specs))
	for _, spec := range s.specs {
		out = append(out, spec)
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].Path < out[j].Path
	})

	return out
}

// typeFormatter renders descriptors as Go source types from the point of
// view of one target package: same-package types lose their qualifier,
// foreign ones pull in an import.
type typeFormatter struct {
	graph   *analyze.Graph
	selfPkg string // short name of the package being generated into
	imports *importSet
}

// format renders a descriptor as Go source.
func (f *typeFormatter) format(d classify.TypeDesc) string {
	switch d.Name {
	case classify.NamePointer:
		return "*" + f.format(d.Args[0])

	case classify.NameSlice:
		return "[]" + f.format(d.Args[0])

	case classify.NameMap:
		return "map[" + f.format(d.Args[0]) + "]" + f.format(d.Args[1])
	}

	pkg, bare, qualified := splitQualified(d.Name)

	name := d.Name

	switch {
	case !qualified:
		// builtin or local unqualified name
	case pkg == f.selfPkg:
		name = bare
	case pkg == "container":
		f.imports.add(containerImportPath)
	case pkg == "lens":
		f.imports.add(lensImportPath)
	default:
		f.imports.add(f.graph.Deps[pkg])
	}

	if len(d.Args) == 0 {
		return name
	}

	parts := make([]string, len(d.Args))
	for i, a := range d.Args {
		parts[i] = f.format(a)
	}

	return name + "[" + strings.Join(parts, ", ") + "]"
}

func splitQualified(name string) (pkg, bare string, ok bool) {
	i := strings.LastIndex(name, ".")
	if i < 0 {
		return "", name, false
	}

	return name[:i], name[i+1:], true
}
