package gen

import (
	"strings"
	"text/template"
	"unicode"

	"lens-generator/flavor"
	"lens-generator/internal/analyze"
	"lens-generator/internal/classify"
	"lens-generator/internal/synth"
)

// fileData holds all data needed for the accessor file template.
type fileData struct {
	PackageName string
	Filename    string
	Imports     []importSpec
	Funcs       []funcData
}

// funcData represents one generated constructor function.
type funcData struct {
	Name   string
	Doc    []string // comment lines, without the leading slashes
	Params string   // "" or "i int" or "k <K>"
	Root   string
	Value  string
	Expr   string // the full accessor expression returned by the body
}

var accessorFileTemplate = template.Must(template.New("accessors").Parse(`// Code generated by lens-generator. DO NOT EDIT.

package {{.PackageName}}

{{if .Imports}}
import (
{{range .Imports}}	{{if .Alias}}{{.Alias}} {{end}}"{{.Path}}"
{{end}})
{{end}}
{{range .Funcs}}
{{range .Doc}}// {{.}}
{{end}}func {{.Name}}({{.Params}}) lens.Accessor[{{.Root}}, {{.Value}}] {
	return {{.Expr}}
}
{{end}}`))

// buildCompositeData constructs the template data for one composite type.
func (g *Generator) buildCompositeData(c *analyze.Composite) *fileData {
	imports := newImportSet()
	imports.add(lensImportPath)

	formatter := &typeFormatter{graph: g.graph, selfPkg: c.PkgName, imports: imports}

	data := &fileData{
		PackageName: c.PkgName,
		Filename:    toSnake(c.ID.Name) + "_lens.go",
	}

	for _, m := range c.Members {
		scope := g.pol.ResolveMember(c.Qualified(), m.Name, m.TagScope, g.diags)

		spec := synth.MemberSpec{
			TypeName:   c.ID.Name,
			TypePkg:    c.PkgName,
			Member:     m.Name,
			Classified: classify.Classify(m.Desc),
			Scope:      scope,
		}

		for _, ctor := range synth.Member(spec, g.diags) {
			data.Funcs = append(data.Funcs, g.buildMemberFunc(c, ctor, formatter))
		}
	}

	data.Imports = imports.sorted()

	return data
}

// buildMemberFunc renders one member constructor.
func (g *Generator) buildMemberFunc(c *analyze.Composite, ctor synth.Constructor, formatter *typeFormatter) funcData {
	body := memberBody{
		root:   c.ID.Name,
		value:  formatter.format(ctor.Value),
		member: ctor.Member,
	}

	fn := funcData{
		Name:   ctor.Name,
		Params: g.paramList(ctor, formatter),
		Root:   body.root,
		Value:  body.value,
	}

	switch {
	case ctor.Flavor.IsOwned() && ctor.Flavor.IsFailable():
		fn.Expr = "lens.NewFailableOwned(" + body.tryOwnGetter(ctor.Strategy) + ")"
	case ctor.Flavor.IsOwned():
		fn.Expr = "lens.NewOwned(" + body.ownGetter() + ")"
	case ctor.Flavor.IsFailable():
		fn.Expr = failableCtor(ctor) + "(" + body.refGetter(ctor.Strategy, mutableFlavor(ctor)) + ")"
	default:
		fn.Expr = totalCtor(ctor) + "(" + body.refGetter(ctor.Strategy, mutableFlavor(ctor)) + ")"
	}

	if g.config.GenerateComments {
		fn.Doc = memberDoc(c.ID.Name, ctor)
	}

	return fn
}

// buildUnionData constructs the template data for one union type.
func (g *Generator) buildUnionData(u *analyze.Union) *fileData {
	imports := newImportSet()
	imports.add(lensImportPath)

	formatter := &typeFormatter{graph: g.graph, selfPkg: u.PkgName, imports: imports}

	data := &fileData{
		PackageName: u.PkgName,
		Filename:    toSnake(u.ID.Name) + "_case_lens.go",
	}

	for _, uc := range u.Cases {
		scope := g.pol.ResolveCase(u.Qualified(), uc.Name)

		spec := synth.CaseSpec{
			UnionName: u.ID.Name,
			UnionPkg:  u.PkgName,
			Case:      uc.Name,
			Style:     uc.Style,
			Fields:    uc.Fields,
			Scope:     scope,
		}

		for _, ctor := range synth.Case(spec, g.diags) {
			data.Funcs = append(data.Funcs, g.buildCaseFunc(u, uc, ctor, formatter, imports))
		}
	}

	data.Imports = imports.sorted()

	return data
}

// buildCaseFunc renders one case constructor.
func (g *Generator) buildCaseFunc(
	u *analyze.Union,
	uc analyze.UnionCase,
	ctor synth.Constructor,
	formatter *typeFormatter,
	imports *importSet,
) funcData {
	body := caseBody{
		union:   u.ID.Name,
		variant: uc.Variant,
		value:   formatter.format(ctor.Value),
		field:   ctor.CaseField,
	}

	if ctor.Key != nil {
		body.keyType = formatter.format(*ctor.Key)
	}

	if ctor.Strategy == synth.StrategyCaseOption {
		imports.add(containerImportPath)
	}

	fn := funcData{
		Name:   ctor.Name,
		Params: g.paramList(ctor, formatter),
		Root:   body.union,
		Value:  body.value,
	}

	mutable := mutableFlavor(ctor)

	extract := body.extract(ctor.Strategy, mutable)
	embed := body.embed(ctor.Strategy)

	if mutable {
		fn.Expr = "lens.NewCaseWritable(" + extract + ", " + embed + ")"
	} else {
		fn.Expr = "lens.NewCaseReadable(" + extract + ", " + embed + ")"
	}

	if g.config.GenerateComments {
		fn.Doc = caseDoc(u.ID.Name, ctor)
	}

	return fn
}

// paramList renders the constructor's parameter list.
func (g *Generator) paramList(ctor synth.Constructor, formatter *typeFormatter) string {
	switch ctor.Param {
	case synth.ParamIndex:
		return "i int"
	case synth.ParamKey:
		if ctor.Key == nil {
			return "k string"
		}

		return "k " + formatter.format(*ctor.Key)
	default:
		return ""
	}
}

// memberDoc builds the doc comment lines for a member constructor.
func memberDoc(root string, ctor synth.Constructor) []string {
	site := root + "." + ctor.Member

	var first string

	switch {
	case ctor.Flavor.IsOwned() && ctor.Flavor.IsFailable():
		first = ctor.Name + " consumes the root and yields " + site + " when present."
	case ctor.Flavor.IsOwned():
		first = ctor.Name + " consumes the root and yields " + site + "."
	case ctor.Flavor.IsFailable() && mutableFlavor(ctor):
		first = ctor.Name + " reads and writes " + elementPhrase(ctor, site) + " when present."
	case ctor.Flavor.IsFailable():
		first = ctor.Name + " reads " + elementPhrase(ctor, site) + ", reporting absence."
	case mutableFlavor(ctor):
		first = ctor.Name + " reads and writes " + site + "."
	default:
		first = ctor.Name + " reads " + site + "."
	}

	return withNote(first, ctor.Note)
}

// caseDoc builds the doc comment lines for a case constructor.
func caseDoc(union string, ctor synth.Constructor) []string {
	var first string

	switch {
	case ctor.Strategy == synth.StrategyCaseUnit:
		first = ctor.Name + " matches the " + ctor.Case + " case of " + union + "."
	case mutableFlavor(ctor):
		first = ctor.Name + " extracts and mutates the " + ctor.Case + " payload of " + union + "."
	default:
		first = ctor.Name + " extracts the " + ctor.Case + " payload of " + union + "."
	}

	return withNote(first, ctor.Note)
}

func elementPhrase(ctor synth.Constructor, site string) string {
	switch ctor.Param {
	case synth.ParamIndex:
		return "element i of " + site
	case synth.ParamKey:
		return "the element at k of " + site
	default:
		return site
	}
}

func withNote(first, note string) []string {
	lines := []string{first}

	if note != "" {
		runes := []rune(note)
		runes[0] = unicode.ToUpper(runes[0])
		lines = append(lines, string(runes)+".")
	}

	return lines
}

// mutableFlavor reports whether the constructor's flavor grants mutation.
func mutableFlavor(ctor synth.Constructor) bool {
	return ctor.Flavor.Family() == flavor.FamilyWrite
}

func failableCtor(ctor synth.Constructor) string {
	if mutableFlavor(ctor) {
		return "lens.NewFailableWritable"
	}

	return "lens.NewFailableReadable"
}

func totalCtor(ctor synth.Constructor) string {
	if mutableFlavor(ctor) {
		return "lens.NewWritable"
	}

	return "lens.NewReadable"
}

// toSnake converts a Go type name to its snake_case file stem. Runs of
// uppercase letters stay together, so "OrderID" becomes "order_id".
func toSnake(name string) string {
	var b strings.Builder

	runes := []rune(name)
	for i, r := range runes {
		if unicode.IsUpper(r) {
			if i > 0 && !unicode.IsUpper(runes[i-1]) {
				b.WriteByte('_')
			}

			b.WriteRune(unicode.ToLower(r))
			continue
		}

		b.WriteRune(r)
	}

	return b.String()
}
