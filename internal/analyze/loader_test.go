package analyze

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lens-generator/internal/classify"
	"lens-generator/internal/diagnostic"
	"lens-generator/internal/synth"
	"lens-generator/options"
)

func TestCaseName(t *testing.T) {
	tests := []struct {
		union, variant, want string
	}{
		{"Status", "statusActive", "Active"},
		{"Status", "StatusCancelled", "Cancelled"},
		{"Status", "pending", "Pending"},
		{"Event", "eventOrderPlaced", "OrderPlaced"},
	}

	for _, tt := range tests {
		t.Run(tt.variant, func(t *testing.T) {
			assert.Equal(t, tt.want, caseName(tt.union, tt.variant))
		})
	}
}

func TestCaseStyle(t *testing.T) {
	field := func(name string) synth.CaseField {
		return synth.CaseField{Name: name, Type: classify.Desc("int")}
	}

	tests := []struct {
		name   string
		fields []synth.CaseField
		want   synth.CaseStyle
	}{
		{"empty", nil, synth.CaseNone},
		{"single", []synth.CaseField{field("amount")}, synth.CaseSingle},
		{"tuple", []synth.CaseField{field("F0"), field("F1")}, synth.CaseTuple},
		{"single tuple field", []synth.CaseField{field("F0")}, synth.CaseTuple},
		{"labeled", []synth.CaseField{field("code"), field("reason")}, synth.CaseLabeled},
		{"mixed falls back to labeled", []synth.CaseField{field("F0"), field("reason")}, synth.CaseLabeled},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, caseStyle(tt.fields))
		})
	}
}

func TestParseTagScope(t *testing.T) {
	tests := []struct {
		name     string
		tag      string
		want     options.ScopeEnum
		skip     bool
		wantCode string
	}{
		{name: "no tag", tag: `json:"x"`, want: options.ScopeUnset},
		{name: "scope entry", tag: `lens:"scope=readable"`, want: options.ScopeReadable},
		{name: "scope among others", tag: `lens:"foo,scope=owned"`, want: options.ScopeOwned},
		{name: "skip marker", tag: `lens:"-"`, skip: true},
		{name: "unknown scope", tag: `lens:"scope=rw"`, want: options.ScopeUnset, wantCode: diagnostic.CodeUnknownScope},
		{name: "double scope", tag: `lens:"scope=readable,scope=owned"`, want: options.ScopeReadable, wantCode: diagnostic.CodeConflictingScopes},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			diags := &diagnostic.Diagnostics{}
			a := NewAnalyzer(diags)

			got, skip := a.parseTagScope(reflect.StructTag(tt.tag), "shop.Order", "Total")

			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.skip, skip)

			if tt.wantCode == "" {
				assert.True(t, diags.IsValid())
			} else {
				require.True(t, diags.HasErrors())
				assert.Equal(t, tt.wantCode, diags.Errors[0].Code)
				assert.Equal(t, "shop.Order", diags.Errors[0].Type)
				assert.Equal(t, "Total", diags.Errors[0].Member)
			}
		})
	}
}

func TestGraphKnown(t *testing.T) {
	g := NewGraph()

	orderID := TypeID{PkgPath: "lens-generator/examples/shop", Name: "Order"}
	g.Composites[orderID] = &Composite{
		ID:      orderID,
		PkgName: "shop",
		Members: []Member{
			{Name: "Total", Desc: classify.Desc("int64")},
			{Name: "Items", Desc: classify.Slice(classify.Desc("shop.Item"))},
		},
	}

	statusID := TypeID{PkgPath: "lens-generator/examples/shop", Name: "Status"}
	g.Unions[statusID] = &Union{
		ID:      statusID,
		PkgName: "shop",
		Marker:  "isStatus",
		Cases: []UnionCase{
			{Name: "Active", Variant: "statusActive"},
			{Name: "Cancelled", Variant: "statusCancelled"},
		},
	}

	known := g.Known()

	require.Len(t, known, 2)
	assert.ElementsMatch(t, []string{"Total", "Items"}, known["shop.Order"])
	assert.ElementsMatch(t, []string{"Active", "Cancelled"}, known["shop.Status"])
}

func TestQualified(t *testing.T) {
	c := &Composite{ID: TypeID{PkgPath: "a/b/shop", Name: "Order"}, PkgName: "shop"}
	assert.Equal(t, "shop.Order", c.Qualified())

	u := &Union{ID: TypeID{PkgPath: "a/b/shop", Name: "Status"}, PkgName: "shop"}
	assert.Equal(t, "shop.Status", u.Qualified())
}

func TestTypeIDString(t *testing.T) {
	assert.Equal(t, "a/b.T", TypeID{PkgPath: "a/b", Name: "T"}.String())
	assert.Equal(t, "T", TypeID{Name: "T"}.String())
}
