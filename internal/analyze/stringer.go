package analyze

import (
	"fmt"
	"sort"
	"strings"

	"lens-generator/internal/classify"
)

// MemberPath builds a readable path string for a member access.
// Examples:
//   - "Order" for the composite itself
//   - "Order.Items" for a member
//   - "Order.Items[]" for an element of a sequence member
//   - "Order.Meta[k]" for a keyed element of a mapping member
type MemberPath struct {
	parts []string
}

// NewMemberPath creates a new MemberPath from a root type name.
func NewMemberPath(root string) *MemberPath {
	return &MemberPath{
		parts: []string{root},
	}
}

// Member appends a member name to the path.
func (p *MemberPath) Member(name string) *MemberPath {
	return &MemberPath{
		parts: append(append([]string{}, p.parts...), name),
	}
}

// Indexed appends an element indicator "[]" to the last segment.
func (p *MemberPath) Indexed() *MemberPath {
	return p.suffix("[]")
}

// Keyed appends a key indicator "[k]" to the last segment.
func (p *MemberPath) Keyed() *MemberPath {
	return p.suffix("[k]")
}

func (p *MemberPath) suffix(s string) *MemberPath {
	if len(p.parts) == 0 {
		return &MemberPath{parts: []string{s}}
	}

	newParts := make([]string, len(p.parts))
	copy(newParts, p.parts)
	newParts[len(newParts)-1] += s

	return &MemberPath{parts: newParts}
}

// String returns the full path string.
func (p *MemberPath) String() string {
	return strings.Join(p.parts, ".")
}

// ShapeReport renders the classified shape of every member and case in a
// graph, one line per site, in deterministic order.
func ShapeReport(g *Graph) string {
	var b strings.Builder

	for _, c := range sortedComposites(g) {
		fmt.Fprintf(&b, "%s (composite)\n", c.Qualified())

		for _, m := range c.Members {
			cls := classify.Classify(m.Desc)
			path := NewMemberPath(c.ID.Name).Member(m.Name)

			switch {
			case cls.Shape.HasIndexParam():
				path = path.Indexed()
			case cls.Shape.HasKeyParam():
				path = path.Keyed()
			}

			fmt.Fprintf(&b, "  %-32s %-24s %s\n", path, cls.Shape, m.Desc)
		}
	}

	for _, u := range sortedUnions(g) {
		fmt.Fprintf(&b, "%s (union, %d cases)\n", u.Qualified(), len(u.Cases))

		for _, uc := range u.Cases {
			fmt.Fprintf(&b, "  %-32s %s\n", u.ID.Name+"::"+uc.Name, uc.Style)
		}
	}

	return b.String()
}

func sortedComposites(g *Graph) []*Composite {
	out := make([]*Composite, 0, len(g.Composites))
	for _, c := range g.Composites {
		out = append(out, c)
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].ID.String() < out[j].ID.String()
	})

	return out
}

func sortedUnions(g *Graph) []*Union {
	out := make([]*Union, 0, len(g.Unions))
	for _, u := range g.Unions {
		out = append(out, u)
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].ID.String() < out[j].ID.String()
	})

	return out
}
