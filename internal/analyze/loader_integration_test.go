package analyze

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lens-generator/internal/classify"
	"lens-generator/internal/diagnostic"
	"lens-generator/internal/synth"
	"lens-generator/options"
)

const shopPkg = "lens-generator/examples/shop"

// loadShop runs the full loader against the in-repo demo domain.
func loadShop(t *testing.T) (*Graph, *diagnostic.Diagnostics) {
	t.Helper()

	diags := &diagnostic.Diagnostics{}

	g, err := NewAnalyzer(diags).LoadPackages(shopPkg)
	require.NoError(t, err)
	require.False(t, diags.HasErrors(), "unexpected diagnostics: %v", diags.Error())

	return g, diags
}

func TestLoadShopComposites(t *testing.T) {
	g, _ := loadShop(t)

	order, ok := g.Composites[TypeID{PkgPath: shopPkg, Name: "Order"}]
	require.True(t, ok, "Order composite not found")
	assert.Equal(t, "shop", order.PkgName)

	names := make([]string, 0, len(order.Members))
	for _, m := range order.Members {
		names = append(names, m.Name)
	}

	// Declaration order, without the tag-skipped and unexported members.
	assert.Equal(t, []string{
		"ID", "TotalCents", "PlacedAt", "State", "Items",
		"Note", "Customer", "Meta", "Audit", "Visits",
	}, names)

	for _, m := range order.Members {
		if m.Name == "TotalCents" {
			assert.Equal(t, options.ScopeReadable, m.TagScope)
		} else {
			assert.Equal(t, options.ScopeUnset, m.TagScope)
		}
	}
}

func TestLoadShopShapes(t *testing.T) {
	g, _ := loadShop(t)

	order := g.Composites[TypeID{PkgPath: shopPkg, Name: "Order"}]
	require.NotNil(t, order)

	shapes := make(map[string]classify.Shape, len(order.Members))
	for _, m := range order.Members {
		shapes[m.Name] = classify.Classify(m.Desc).Shape
	}

	assert.Equal(t, classify.ShapePlain, shapes["ID"])
	assert.Equal(t, classify.ShapePlain, shapes["State"])
	assert.Equal(t, classify.ShapeSequence, shapes["Items"])
	assert.Equal(t, classify.ShapeOptional, shapes["Note"])
	assert.Equal(t, classify.ShapeIndirection, shapes["Customer"])
	assert.Equal(t, classify.ShapeHashMapping, shapes["Meta"])
	assert.Equal(t, classify.ShapeShared, shapes["Audit"])
	assert.Equal(t, classify.ShapeMutexGuarded, shapes["Visits"])
}

func TestLoadShopUnion(t *testing.T) {
	g, _ := loadShop(t)

	status, ok := g.Unions[TypeID{PkgPath: shopPkg, Name: "Status"}]
	require.True(t, ok, "Status union not found")
	assert.Equal(t, "isStatus", status.Marker)

	require.Len(t, status.Cases, 4)

	styles := make(map[string]synth.CaseStyle, len(status.Cases))
	for _, uc := range status.Cases {
		styles[uc.Name] = uc.Style
	}

	assert.Equal(t, synth.CaseSingle, styles["Active"])
	assert.Equal(t, synth.CaseNone, styles["Draft"])
	assert.Equal(t, synth.CaseSingle, styles["Held"])
	assert.Equal(t, synth.CaseTuple, styles["Split"])

	// Variant structs never double as composites.
	_, isComposite := g.Composites[TypeID{PkgPath: shopPkg, Name: "statusDraft"}]
	assert.False(t, isComposite)
}

func TestLoadShopPackageInfo(t *testing.T) {
	g, _ := loadShop(t)

	info, ok := g.Packages[shopPkg]
	require.True(t, ok)
	assert.Equal(t, "shop", info.Name)
	assert.NotEmpty(t, info.Dir)
	assert.Contains(t, info.Composites, TypeID{PkgPath: shopPkg, Name: "Order"})
	assert.Contains(t, info.Unions, TypeID{PkgPath: shopPkg, Name: "Status"})
}
