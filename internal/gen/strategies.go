package gen

import (
	"fmt"

	"lens-generator/internal/synth"
)

// memberBody renders the function literals for one member constructor.
// All reference getters share the nil-for-absent convention the lens
// package expects.
type memberBody struct {
	root   string // rendered root type, e.g. "Order"
	value  string // rendered value type
	member string // field name
}

// refGetter builds the "func(root *T) *V { ... }" leg for reference
// flavors. mutable selects MutRef over Ref where the wrapper
// distinguishes them.
func (b memberBody) refGetter(st synth.Strategy, mutable bool) string {
	m := "root." + b.member
	ref := refMethod(mutable)

	var body string

	switch st {
	case synth.StrategyDirect, synth.StrategyPresent:
		body = fmt.Sprintf("return &%s", m)

	case synth.StrategyOptionUnwrap:
		body = fmt.Sprintf("return %s.%s()", m, ref)

	case synth.StrategyDeref:
		body = fmt.Sprintf("return %s", m)

	case synth.StrategySharedRef:
		body = fmt.Sprintf("return %s.Ref()", m)

	case synth.StrategySharedMut:
		body = fmt.Sprintf("return %s.MutRef()", m)

	case synth.StrategyFirstElem:
		body = fmt.Sprintf("if len(%s) == 0 {\nreturn nil\n}\nreturn &%s[0]", m, m)

	case synth.StrategyFrontMethod:
		if mutable {
			body = fmt.Sprintf("return %s.MutAt(0)", m)
		} else {
			body = fmt.Sprintf("return %s.Front()", m)
		}

	case synth.StrategyIndexAt:
		body = fmt.Sprintf("if i < 0 || i >= len(%s) {\nreturn nil\n}\nreturn &%s[i]", m, m)

	case synth.StrategyAtMethod:
		if mutable {
			body = fmt.Sprintf("return %s.MutAt(i)", m)
		} else {
			body = fmt.Sprintf("return %s.At(i)", m)
		}

	case synth.StrategyKeyAt:
		body = fmt.Sprintf("if v, ok := %s[k]; ok {\nreturn &v\n}\nreturn nil", m)

	case synth.StrategyKeyAtMethod:
		body = fmt.Sprintf("return %s.%s(k)", m, ref)

	case synth.StrategyAnyElem:
		body = fmt.Sprintf("if v, ok := %s.Any(); ok {\nreturn &v\n}\nreturn nil", m)

	case synth.StrategyPeek:
		body = fmt.Sprintf("return %s.Peek()", m)

	case synth.StrategyOkPayload:
		body = fmt.Sprintf("return %s.Ref()", m)

	case synth.StrategyTaggedValue:
		body = fmt.Sprintf("return %s.Ref()", m)

	case synth.StrategyOptionDeref:
		body = fmt.Sprintf("if p := %s.%s(); p != nil {\nreturn *p\n}\nreturn nil", m, ref)

	case synth.StrategyDerefOption:
		body = fmt.Sprintf("if %s == nil {\nreturn nil\n}\nreturn %s.%s()", m, m, ref)

	case synth.StrategyOptionShared:
		body = fmt.Sprintf("if s := %s.%s(); s != nil {\nreturn s.%s()\n}\nreturn nil", m, ref, ref)

	case synth.StrategySharedOption:
		body = fmt.Sprintf("if o := %s.%s(); o != nil {\nreturn o.%s()\n}\nreturn nil", m, ref, ref)

	case synth.StrategyOptionFirst:
		body = fmt.Sprintf("if s := %s.%s(); s != nil && len(*s) > 0 {\nreturn &(*s)[0]\n}\nreturn nil", m, ref)

	case synth.StrategyFirstOption:
		body = fmt.Sprintf("if len(%s) == 0 {\nreturn nil\n}\nreturn %s[0].%s()", m, m, ref)

	case synth.StrategyOptionIndexAt:
		body = fmt.Sprintf("if s := %s.%s(); s != nil && i >= 0 && i < len(*s) {\nreturn &(*s)[i]\n}\nreturn nil", m, ref)

	case synth.StrategyIndexAtOption:
		body = fmt.Sprintf("if i < 0 || i >= len(%s) {\nreturn nil\n}\nreturn %s[i].%s()", m, m, ref)

	case synth.StrategyOptionKeyAt:
		body = fmt.Sprintf("if m := %s.Ref(); m != nil {\nif v, ok := (*m)[k]; ok {\nreturn &v\n}\n}\nreturn nil", m)

	case synth.StrategyKeyAtOption:
		body = fmt.Sprintf("if o, ok := %s[k]; ok {\nreturn o.Ref()\n}\nreturn nil", m)

	case synth.StrategySharedCell:
		body = fmt.Sprintf("return %s.Ref()", m)

	default:
		body = "return nil"
	}

	return fmt.Sprintf("func(root *%s) *%s {\n%s\n}", b.root, b.value, body)
}

// ownGetter builds the consuming leg for the total owned flavor.
func (b memberBody) ownGetter() string {
	return fmt.Sprintf("func(root %s) %s {\nreturn root.%s\n}", b.root, b.value, b.member)
}

// tryOwnGetter builds the consuming leg for the failable owned flavor.
func (b memberBody) tryOwnGetter(st synth.Strategy) string {
	m := "root." + b.member

	var body string

	switch st {
	case synth.StrategyMovePresent:
		body = fmt.Sprintf("return %s, true", m)

	case synth.StrategyOptionMove:
		body = fmt.Sprintf("return %s.Take()", m)

	case synth.StrategyDerefMove:
		body = fmt.Sprintf("if %s == nil {\nvar zero %s\nreturn zero, false\n}\nreturn *%s, true", m, b.value, m)

	case synth.StrategySharedClone:
		body = fmt.Sprintf("if p := %s.Ref(); p != nil {\nreturn *p, true\n}\nvar zero %s\nreturn zero, false", m, b.value)

	default:
		body = fmt.Sprintf("var zero %s\nreturn zero, false", b.value)
	}

	return fmt.Sprintf("func(root %s) (%s, bool) {\n%s\n}", b.root, b.value, body)
}

func refMethod(mutable bool) string {
	if mutable {
		return "MutRef"
	}

	return "Ref"
}

// caseBody renders the extract and embed legs for one case constructor.
type caseBody struct {
	union   string // rendered union interface type
	variant string // variant struct type name
	value   string // rendered payload value type
	keyType string // rendered key type for keyed access, "" otherwise
	field   string // payload field name, "" for payload-less cases
}

// extract builds the "func(root *U) *V { ... }" leg. The getter matches
// the case tag and reports absent for every other case.
func (b caseBody) extract(st synth.Strategy, mutable bool) string {
	ref := refMethod(mutable)

	var body string

	switch st {
	case synth.StrategyCaseUnit:
		body = fmt.Sprintf("if _, ok := (*root).(*%s); ok {\nreturn lens.UnitRef()\n}\nreturn nil", b.variant)

	case synth.StrategyCasePayload, synth.StrategyCaseField:
		body = fmt.Sprintf("if v, ok := (*root).(*%s); ok {\nreturn &v.%s\n}\nreturn nil", b.variant, b.field)

	case synth.StrategyCaseOption:
		body = fmt.Sprintf("if v, ok := (*root).(*%s); ok {\nreturn v.%s.%s()\n}\nreturn nil", b.variant, b.field, ref)

	case synth.StrategyCaseIndexAt:
		body = fmt.Sprintf("if v, ok := (*root).(*%s); ok && i >= 0 && i < len(v.%s) {\nreturn &v.%s[i]\n}\nreturn nil",
			b.variant, b.field, b.field)

	case synth.StrategyCaseKeyAt:
		body = fmt.Sprintf("if v, ok := (*root).(*%s); ok {\nif e, ok := v.%s[k]; ok {\nreturn &e\n}\n}\nreturn nil",
			b.variant, b.field)

	default:
		body = "return nil"
	}

	return fmt.Sprintf("func(root *%s) *%s {\n%s\n}", b.union, b.value, body)
}

// embed builds the "func(p V) U { ... }" leg rebuilding the full union
// value from a payload. Parameterized constructors rebuild a singleton
// container holding the payload at the captured position.
func (b caseBody) embed(st synth.Strategy) string {
	var body string

	switch st {
	case synth.StrategyCaseUnit:
		return fmt.Sprintf("func(lens.Unit) %s {\nreturn &%s{}\n}", b.union, b.variant)

	case synth.StrategyCasePayload, synth.StrategyCaseField:
		body = fmt.Sprintf("return &%s{%s: p}", b.variant, b.field)

	case synth.StrategyCaseOption:
		body = fmt.Sprintf("return &%s{%s: container.Some(p)}", b.variant, b.field)

	case synth.StrategyCaseIndexAt:
		body = fmt.Sprintf("v := make([]%s, i+1)\nv[i] = p\nreturn &%s{%s: v}", b.value, b.variant, b.field)

	case synth.StrategyCaseKeyAt:
		body = fmt.Sprintf("return &%s{%s: map[%s]%s{k: p}}", b.variant, b.field, b.keyType, b.value)

	default:
		body = fmt.Sprintf("return &%s{}", b.variant)
	}

	return fmt.Sprintf("func(p %s) %s {\n%s\n}", b.value, b.union, body)
}
