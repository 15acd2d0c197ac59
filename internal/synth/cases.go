package synth

import (
	"lens-generator/flavor"
	"lens-generator/internal/classify"
	"lens-generator/internal/common"
	"lens-generator/internal/diagnostic"
	"lens-generator/options"
)

// CaseStyle tells how a union case carries its payload.
type CaseStyle int

const (
	// CaseNone - no payload; the accessor reads the shared unit sentinel.
	CaseNone CaseStyle = iota
	// CaseSingle - one payload value.
	CaseSingle
	// CaseTuple - positional fields (F0..Fn).
	CaseTuple
	// CaseLabeled - named fields.
	CaseLabeled
)

// String returns a human-readable case style.
func (s CaseStyle) String() string {
	switch s {
	case CaseNone:
		return "none"
	case CaseSingle:
		return "single"
	case CaseTuple:
		return "tuple"
	case CaseLabeled:
		return "labeled"
	default:
		return common.UnknownStr
	}
}

// CaseField is one payload field of a union case.
type CaseField struct {
	Name string
	Type classify.TypeDesc
}

// CaseSpec describes one case of a tagged union.
type CaseSpec struct {
	// UnionName is the sealed interface type, e.g. "Status".
	UnionName string
	// UnionPkg is the package path of the union, for diagnostics.
	UnionPkg string
	// Case is the case name, e.g. "Active".
	Case string
	// Style of the payload.
	Style CaseStyle
	// Fields holds the payload fields: empty for CaseNone, exactly one for
	// CaseSingle, positional or named otherwise.
	Fields []CaseField
	// Scope is the resolved effective generation scope for this case.
	Scope options.ScopeEnum
}

// Case synthesizes the accessor constructors for one union case. Extract
// matches the case tag and reports absent for every other case; embed
// rebuilds the full union value from a payload.
func Case(spec CaseSpec, diags *diagnostic.Diagnostics) []Constructor {
	e := caseEmitter{spec: spec, diags: diags}

	switch spec.Style {
	case CaseNone:
		e.add(flavor.CaseReadable, StrategyCaseUnit, ParamNone, classify.Desc("lens.Unit"), "", "")

	case CaseSingle:
		if len(spec.Fields) != 1 {
			e.errorf("single-payload case must carry exactly one field")
			return nil
		}

		payload := spec.Fields[0]
		e.add(flavor.CaseReadable, StrategyCasePayload, ParamNone, payload.Type, payload.Name, "")
		e.add(flavor.CaseWritable, StrategyCasePayload, ParamNone, payload.Type, payload.Name, "")
		e.payloadShapeFamily(payload)

	case CaseTuple, CaseLabeled:
		if len(spec.Fields) == 0 {
			e.errorf("multi-field case must carry at least one field")
			return nil
		}

		for _, f := range spec.Fields {
			e.addField(flavor.CaseReadable, f)
			e.addField(flavor.CaseWritable, f)
		}
	}

	return e.out
}

// payloadShapeFamily adds the parameterized accessors a wrapped
// single payload supports, mirroring member synthesis in spirit.
func (e *caseEmitter) payloadShapeFamily(payload CaseField) {
	c := classify.Classify(payload.Type)

	switch {
	case c.Shape == classify.ShapeOptional:
		// The unwrapping pair gets a distinct name alongside the bare
		// payload pair.
		e.add(flavor.CaseReadable, StrategyCaseOption, ParamNone, c.Inner, payload.Name, "Value")
		e.add(flavor.CaseWritable, StrategyCaseOption, ParamNone, c.Inner, payload.Name, "Value")

	case c.Shape == classify.ShapeSequence:
		e.addAt(flavor.CaseReadable, StrategyCaseIndexAt, ParamIndex, c, payload.Name)
		e.addAt(flavor.CaseWritable, StrategyCaseIndexAt, ParamIndex, c, payload.Name)

	case c.Shape.HasKeyParam():
		// Builtin map payloads give read-only detached element access, the
		// same limitation member synthesis has.
		e.addAt(flavor.CaseReadable, StrategyCaseKeyAt, ParamKey, c, payload.Name)
		e.info(diagnostic.CodeNoAddressableElem,
			"builtin map elements are not addressable; no writable element accessor is synthesized")
	}
}

type caseEmitter struct {
	spec  CaseSpec
	diags *diagnostic.Diagnostics
	out   []Constructor
}

func (e *caseEmitter) add(fl flavor.Enum, st Strategy, param ParamKind, value classify.TypeDesc, field, suffix string) {
	if !e.spec.Scope.Allows(fl) {
		return
	}

	name := e.spec.UnionName + e.spec.Case + suffix + fl.Suffix()
	if param != ParamNone {
		name += "At"
	}

	e.out = append(e.out, Constructor{
		Name:      name,
		Flavor:    fl,
		Strategy:  st,
		Param:     param,
		Value:     value,
		Case:      e.spec.Case,
		CaseField: field,
	})
}

// addField emits the per-field constructor of a tuple or labeled case. The
// field name joins the constructor name so each position gets its own pair.
func (e *caseEmitter) addField(fl flavor.Enum, f CaseField) {
	if !e.spec.Scope.Allows(fl) {
		return
	}

	e.out = append(e.out, Constructor{
		Name:      e.spec.UnionName + e.spec.Case + f.Name + fl.Suffix(),
		Flavor:    fl,
		Strategy:  StrategyCaseField,
		Param:     ParamNone,
		Value:     f.Type,
		Case:      e.spec.Case,
		CaseField: f.Name,
	})
}

func (e *caseEmitter) addAt(fl flavor.Enum, st Strategy, param ParamKind, c classify.Classified, field string) {
	if !e.spec.Scope.Allows(fl) {
		return
	}

	ctor := Constructor{
		Name:      e.spec.UnionName + e.spec.Case + fl.Suffix() + "At",
		Flavor:    fl,
		Strategy:  st,
		Param:     param,
		Value:     c.Inner,
		Case:      e.spec.Case,
		CaseField: field,
	}

	if param == ParamKey {
		ctor.Key = c.Key
	}

	e.out = append(e.out, ctor)
}

func (e *caseEmitter) errorf(message string) {
	if e.diags == nil {
		return
	}

	e.diags.AddError(diagnostic.CodeEmptyUnion, message, e.unionID(), e.spec.Case)
}

func (e *caseEmitter) info(code, message string) {
	if e.diags == nil {
		return
	}

	e.diags.AddInfo(code, message, e.unionID(), e.spec.Case)
}

func (e *caseEmitter) unionID() string {
	if e.spec.UnionPkg == "" {
		return e.spec.UnionName
	}

	return e.spec.UnionPkg + "." + e.spec.UnionName
}
