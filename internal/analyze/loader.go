package analyze

import (
	"fmt"
	"go/types"
	"path/filepath"
	"reflect"
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/tools/go/packages"

	"lens-generator/internal/classify"
	"lens-generator/internal/common"
	"lens-generator/internal/diagnostic"
	"lens-generator/internal/synth"
	"lens-generator/options"
)

// LoadMode specifies what information to load from packages.
const LoadMode = packages.NeedName |
	packages.NeedFiles |
	packages.NeedSyntax |
	packages.NeedTypes |
	packages.NeedTypesInfo |
	packages.NeedImports

// TagKey is the struct tag key carrying per-member annotations.
const TagKey = "lens"

// containerWrappers maps type names declared in the container package to
// their descriptor spellings. Anything else named in that package is
// treated as an opaque type.
var containerWrappers = map[string]string{
	"Option":        classify.NameOption,
	"Shared":        classify.NameShared,
	"SharedAtomic":  classify.NameSharedAtomic,
	"Weak":          classify.NameWeak,
	"Mutexed":       classify.NameMutexed,
	"RwMutexed":     classify.NameRwMutexed,
	"Deque":         classify.NameDeque,
	"LinkedSeq":     classify.NameLinkedSeq,
	"PriorityQueue": classify.NamePriorityQueue,
	"Result":        classify.NameResult,
	"OrderedMap":    classify.NameOrderedMap,
	"HashSet":       classify.NameHashSet,
	"OrderedSet":    classify.NameOrderedSet,
	"Tagged":        classify.NameTagged,
}

// Analyzer loads Go packages and builds the type graph generation runs on.
type Analyzer struct {
	graph *Graph
	diags *diagnostic.Diagnostics
}

// NewAnalyzer creates a new Analyzer. Tag and shape problems found while
// analyzing are accumulated on diags.
func NewAnalyzer(diags *diagnostic.Diagnostics) *Analyzer {
	return &Analyzer{
		graph: NewGraph(),
		diags: diags,
	}
}

// LoadPackages loads the specified packages and builds the type graph.
// Patterns are standard Go package patterns (e.g., "./shop").
func (a *Analyzer) LoadPackages(patterns ...string) (*Graph, error) {
	cfg := &packages.Config{
		Mode: LoadMode,
	}

	pkgs, err := packages.Load(cfg, patterns...)
	if err != nil {
		return nil, fmt.Errorf("failed to load packages: %w", err)
	}

	var errs []error
	for _, pkg := range pkgs {
		for _, e := range pkg.Errors {
			errs = append(errs, e)
		}
	}

	if len(errs) > 0 {
		return nil, fmt.Errorf("package errors: %v", errs)
	}

	for _, pkg := range pkgs {
		a.processPackage(pkg)
	}

	return a.graph, nil
}

// Graph returns the current type graph.
func (a *Analyzer) Graph() *Graph {
	return a.graph
}

// processPackage extracts composites and unions from a loaded package.
// Unions are collected first so their variant structs are not also
// reported as composites.
func (a *Analyzer) processPackage(pkg *packages.Package) {
	pkgInfo := &PackageInfo{
		Path: pkg.PkgPath,
		Name: pkg.Name,
	}
	if len(pkg.GoFiles) > 0 {
		pkgInfo.Dir = filepath.Dir(pkg.GoFiles[0])
	}

	scope := pkg.Types.Scope()

	variantNames := make(map[string]struct{})

	for _, name := range scope.Names() {
		typeName, ok := scope.Lookup(name).(*types.TypeName)
		if !ok || !typeName.Exported() {
			continue
		}

		named, ok := typeName.Type().(*types.Named)
		if !ok {
			continue
		}

		iface, ok := named.Underlying().(*types.Interface)
		if !ok || sealMarker(iface) == "" {
			continue
		}

		union := a.analyzeUnion(pkg, name, iface)
		if union == nil {
			continue
		}

		a.graph.Unions[union.ID] = union
		pkgInfo.Unions = append(pkgInfo.Unions, union.ID)

		for _, uc := range union.Cases {
			variantNames[uc.Variant] = struct{}{}
		}
	}

	for _, name := range scope.Names() {
		typeName, ok := scope.Lookup(name).(*types.TypeName)
		if !ok || !typeName.Exported() {
			continue
		}

		if _, isVariant := variantNames[name]; isVariant {
			continue
		}

		named, ok := typeName.Type().(*types.Named)
		if !ok {
			continue
		}

		st, ok := named.Underlying().(*types.Struct)
		if !ok {
			continue
		}

		comp := a.analyzeComposite(pkg, name, st)

		a.graph.Composites[comp.ID] = comp
		pkgInfo.Composites = append(pkgInfo.Composites, comp.ID)
	}

	a.graph.Packages[pkg.PkgPath] = pkgInfo
}

// analyzeComposite extracts the exported fields of a struct type.
func (a *Analyzer) analyzeComposite(pkg *packages.Package, name string, st *types.Struct) *Composite {
	comp := &Composite{
		ID:      TypeID{PkgPath: pkg.PkgPath, Name: name},
		PkgName: pkg.Name,
	}

	for i := range st.NumFields() {
		field := st.Field(i)
		if !field.Exported() || field.Embedded() {
			continue
		}

		tagScope, skip := a.parseTagScope(reflect.StructTag(st.Tag(i)), comp.Qualified(), field.Name())
		if skip {
			continue
		}

		comp.Members = append(comp.Members, Member{
			Name:     field.Name(),
			Desc:     a.describe(field.Type()),
			TagScope: tagScope,
		})
	}

	return comp
}

// sealMarker returns the name of the unexported method sealing an
// interface, or "" if the interface is open.
func sealMarker(iface *types.Interface) string {
	for i := range iface.NumExplicitMethods() {
		if m := iface.ExplicitMethod(i); !m.Exported() {
			return m.Name()
		}
	}

	return ""
}

// analyzeUnion finds the struct variants whose pointers implement a
// sealed interface and classifies each variant's payload style.
func (a *Analyzer) analyzeUnion(pkg *packages.Package, name string, iface *types.Interface) *Union {
	union := &Union{
		ID:      TypeID{PkgPath: pkg.PkgPath, Name: name},
		PkgName: pkg.Name,
		Marker:  sealMarker(iface),
	}

	scope := pkg.Types.Scope()
	for _, candidate := range scope.Names() {
		typeName, ok := scope.Lookup(candidate).(*types.TypeName)
		if !ok {
			continue
		}

		named, ok := typeName.Type().(*types.Named)
		if !ok {
			continue
		}

		st, ok := named.Underlying().(*types.Struct)
		if !ok {
			continue
		}

		if !types.Implements(types.NewPointer(named), iface) {
			continue
		}

		union.Cases = append(union.Cases, a.analyzeVariant(name, candidate, st))
	}

	if len(union.Cases) == 0 {
		a.diags.AddError(diagnostic.CodeEmptyUnion,
			"sealed interface has no struct variants", union.Qualified(), "")

		return nil
	}

	return union
}

var tupleField = regexp.MustCompile(`^F\d+$`)

// analyzeVariant builds the case description for one variant struct.
// Unexported payload fields are included: generated code lives in the
// variant's own package.
func (a *Analyzer) analyzeVariant(unionName, variantName string, st *types.Struct) UnionCase {
	uc := UnionCase{
		Name:    caseName(unionName, variantName),
		Variant: variantName,
	}

	for i := range st.NumFields() {
		field := st.Field(i)
		if field.Embedded() {
			continue
		}

		uc.Fields = append(uc.Fields, synth.CaseField{
			Name: field.Name(),
			Type: a.describe(field.Type()),
		})
	}

	uc.Style = caseStyle(uc.Fields)

	return uc
}

// caseName strips the union prefix from a variant type name and exports
// the remainder: Status + statusActive -> Active.
func caseName(unionName, variantName string) string {
	rest := variantName
	if len(variantName) > len(unionName) && strings.EqualFold(variantName[:len(unionName)], unionName) {
		rest = variantName[len(unionName):]
	}

	runes := []rune(rest)
	runes[0] = unicode.ToUpper(runes[0])

	return string(runes)
}

// caseStyle infers how a variant carries its payload from its field list.
func caseStyle(fields []synth.CaseField) synth.CaseStyle {
	switch {
	case common.IsEmpty(fields):
		return synth.CaseNone
	case allTupleFields(fields):
		return synth.CaseTuple
	case common.IsSingle(fields):
		return synth.CaseSingle
	default:
		return synth.CaseLabeled
	}
}

func allTupleFields(fields []synth.CaseField) bool {
	for _, f := range fields {
		if !tupleField.MatchString(f.Name) {
			return false
		}
	}

	return true
}

// parseTagScope reads the lens struct tag. "-" skips the member entirely;
// "scope=<v>" sets the member's generation scope. Two scope entries in
// one tag are two annotations at one site, which is an error.
func (a *Analyzer) parseTagScope(tag reflect.StructTag, typeID, member string) (options.ScopeEnum, bool) {
	raw, ok := tag.Lookup(TagKey)
	if !ok {
		return options.ScopeUnset, false
	}

	if raw == "-" {
		return options.ScopeUnset, true
	}

	result := options.ScopeUnset

	for _, part := range strings.Split(raw, ",") {
		value, found := strings.CutPrefix(part, "scope=")
		if !found {
			continue
		}

		scope, err := options.Parse(value)
		if err != nil {
			a.diags.AddError(diagnostic.CodeUnknownScope, err.Error(), typeID, member)
			continue
		}

		if result.IsSet() {
			a.diags.AddError(diagnostic.CodeConflictingScopes,
				"tag carries more than one scope entry", typeID, member)
			continue
		}

		result = scope
	}

	return result, false
}

// describe converts a go/types.Type into the normalized descriptor the
// classifier consumes. Wrapper types from the container package keep
// their generic structure; everything else collapses to an opaque name.
func (a *Analyzer) describe(t types.Type) classify.TypeDesc {
	switch tt := t.(type) {
	case *types.Pointer:
		return classify.Ptr(a.describe(tt.Elem()))

	case *types.Slice:
		return classify.Slice(a.describe(tt.Elem()))

	case *types.Map:
		return classify.Map(a.describe(tt.Key()), a.describe(tt.Elem()))

	case *types.Basic:
		return classify.Desc(tt.Name())

	case *types.Named:
		return a.describeNamed(tt)

	case *types.Alias:
		return a.describe(types.Unalias(tt))

	default:
		return classify.Desc(t.String())
	}
}

func (a *Analyzer) describeNamed(named *types.Named) classify.TypeDesc {
	obj := named.Obj()

	if obj.Pkg() == nil {
		return classify.Desc(obj.Name())
	}

	a.graph.Deps[obj.Pkg().Name()] = obj.Pkg().Path()

	if obj.Pkg().Name() == "container" {
		if wrapper, ok := containerWrappers[obj.Name()]; ok {
			args := named.TypeArgs()

			descs := make([]classify.TypeDesc, 0, args.Len())
			for i := range args.Len() {
				descs = append(descs, a.describe(args.At(i)))
			}

			return classify.Desc(wrapper, descs...)
		}
	}

	return classify.Desc(obj.Pkg().Name() + "." + obj.Name())
}
