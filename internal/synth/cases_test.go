package synth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lens-generator/flavor"
	"lens-generator/internal/classify"
	"lens-generator/internal/diagnostic"
	"lens-generator/options"
)

func caseSpec(name string, style CaseStyle, scope options.ScopeEnum, fields ...CaseField) CaseSpec {
	return CaseSpec{
		UnionName: "Status",
		UnionPkg:  "examples/shop",
		Case:      name,
		Style:     style,
		Fields:    fields,
		Scope:     scope,
	}
}

func TestPayloadLessCase(t *testing.T) {
	ctors := Case(caseSpec("Inactive", CaseNone, options.ScopeAll), nil)

	require.Len(t, ctors, 1)
	assert.Equal(t, "StatusInactiveCaseR", ctors[0].Name)
	assert.Equal(t, flavor.CaseReadable, ctors[0].Flavor)
	assert.Equal(t, StrategyCaseUnit, ctors[0].Strategy)
	assert.Equal(t, "lens.Unit", ctors[0].Value.Name)
}

func TestSinglePayloadCase(t *testing.T) {
	user := classify.Desc("shop.User")

	ctors := Case(caseSpec("Active", CaseSingle, options.ScopeAll,
		CaseField{Name: "User", Type: user}), nil)

	r := findByName(t, ctors, "StatusActiveCaseR")
	assert.Equal(t, StrategyCasePayload, r.Strategy)
	assert.True(t, r.Value.Equal(user))

	w := findByName(t, ctors, "StatusActiveCaseW")
	assert.Equal(t, flavor.CaseWritable, w.Flavor)
}

func TestSinglePayloadCaseScopeFiltering(t *testing.T) {
	user := classify.Desc("shop.User")

	ctors := Case(caseSpec("Active", CaseSingle, options.ScopeReadable,
		CaseField{Name: "User", Type: user}), nil)

	assert.ElementsMatch(t, []string{"StatusActiveCaseR"}, names(ctors))
}

func TestOptionalPayloadGetsUnwrappingPair(t *testing.T) {
	payload := classify.Desc(classify.NameOption, classify.Desc("shop.Session"))

	ctors := Case(caseSpec("Active", CaseSingle, options.ScopeAll,
		CaseField{Name: "Session", Type: payload}), nil)

	bare := findByName(t, ctors, "StatusActiveCaseR")
	assert.True(t, bare.Value.Equal(payload))

	unwrap := findByName(t, ctors, "StatusActiveValueCaseR")
	assert.Equal(t, StrategyCaseOption, unwrap.Strategy)
	assert.Equal(t, "shop.Session", unwrap.Value.Name)

	findByName(t, ctors, "StatusActiveValueCaseW")
}

func TestSequencePayloadGetsAtFamily(t *testing.T) {
	payload := classify.Slice(classify.Desc("shop.Entry"))

	ctors := Case(caseSpec("Batch", CaseSingle, options.ScopeAll,
		CaseField{Name: "Entries", Type: payload}), nil)

	rAt := findByName(t, ctors, "StatusBatchCaseRAt")
	assert.Equal(t, StrategyCaseIndexAt, rAt.Strategy)
	assert.Equal(t, ParamIndex, rAt.Param)
	assert.Equal(t, "shop.Entry", rAt.Value.Name)

	findByName(t, ctors, "StatusBatchCaseWAt")
}

func TestMapPayloadReadOnlyAtFamily(t *testing.T) {
	var diags diagnostic.Diagnostics

	payload := classify.Map(classify.Desc("string"), classify.Desc("shop.Entry"))

	ctors := Case(caseSpec("Index", CaseSingle, options.ScopeAll,
		CaseField{Name: "ByName", Type: payload}), &diags)

	rAt := findByName(t, ctors, "StatusIndexCaseRAt")
	assert.Equal(t, StrategyCaseKeyAt, rAt.Strategy)
	assert.Equal(t, ParamKey, rAt.Param)
	require.NotNil(t, rAt.Key)

	assert.NotContains(t, names(ctors), "StatusIndexCaseWAt")
	require.Len(t, diags.Infos, 1)
	assert.Equal(t, diagnostic.CodeNoAddressableElem, diags.Infos[0].Code)
}

func TestTupleCasePerPosition(t *testing.T) {
	ctors := Case(caseSpec("Moved", CaseTuple, options.ScopeAll,
		CaseField{Name: "F0", Type: classify.Desc("float64")},
		CaseField{Name: "F1", Type: classify.Desc("float64")},
	), nil)

	assert.ElementsMatch(t, []string{
		"StatusMovedF0CaseR", "StatusMovedF0CaseW",
		"StatusMovedF1CaseR", "StatusMovedF1CaseW",
	}, names(ctors))

	f1 := findByName(t, ctors, "StatusMovedF1CaseW")
	assert.Equal(t, StrategyCaseField, f1.Strategy)
	assert.Equal(t, "F1", f1.CaseField)
}

func TestLabeledCasePerField(t *testing.T) {
	ctors := Case(caseSpec("Shipped", CaseLabeled, options.ScopeWritable,
		CaseField{Name: "Carrier", Type: classify.Desc("string")},
		CaseField{Name: "Eta", Type: classify.Desc("time.Time")},
	), nil)

	assert.ElementsMatch(t, []string{
		"StatusShippedCarrierCaseR", "StatusShippedCarrierCaseW",
		"StatusShippedEtaCaseR", "StatusShippedEtaCaseW",
	}, names(ctors))
}

func TestMalformedCases(t *testing.T) {
	var diags diagnostic.Diagnostics

	out := Case(caseSpec("Broken", CaseSingle, options.ScopeAll), &diags)
	assert.Nil(t, out)
	assert.True(t, diags.HasErrors())

	var diags2 diagnostic.Diagnostics

	out = Case(caseSpec("Empty", CaseLabeled, options.ScopeAll), &diags2)
	assert.Nil(t, out)
	assert.True(t, diags2.HasErrors())
}
