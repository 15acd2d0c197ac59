package analyze

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"lens-generator/internal/classify"
	"lens-generator/internal/synth"
)

func TestMemberPath(t *testing.T) {
	p := NewMemberPath("Order")
	assert.Equal(t, "Order", p.String())
	assert.Equal(t, "Order.Items", p.Member("Items").String())
	assert.Equal(t, "Order.Items[]", p.Member("Items").Indexed().String())
	assert.Equal(t, "Order.Meta[k]", p.Member("Meta").Keyed().String())

	// building a longer path does not mutate the shorter one
	items := p.Member("Items")
	_ = items.Indexed()
	assert.Equal(t, "Order.Items", items.String())
}

func TestShapeReport(t *testing.T) {
	g := NewGraph()

	orderID := TypeID{PkgPath: "lens-generator/examples/shop", Name: "Order"}
	g.Composites[orderID] = &Composite{
		ID:      orderID,
		PkgName: "shop",
		Members: []Member{
			{Name: "Total", Desc: classify.Desc("int64")},
			{Name: "Items", Desc: classify.Slice(classify.Desc("shop.Item"))},
			{Name: "Meta", Desc: classify.Map(classify.Desc("string"), classify.Desc("string"))},
		},
	}

	statusID := TypeID{PkgPath: "lens-generator/examples/shop", Name: "Status"}
	g.Unions[statusID] = &Union{
		ID:      statusID,
		PkgName: "shop",
		Cases: []UnionCase{
			{Name: "Active", Variant: "statusActive", Style: synth.CaseSingle},
		},
	}

	report := ShapeReport(g)

	assert.Contains(t, report, "shop.Order (composite)")
	assert.Contains(t, report, "Order.Total")
	assert.Contains(t, report, "Order.Items[]")
	assert.Contains(t, report, "Order.Meta[k]")
	assert.Contains(t, report, "shop.Status (union, 1 cases)")
	assert.Contains(t, report, "Status::Active")
}
