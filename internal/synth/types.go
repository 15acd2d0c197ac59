package synth

import (
	"lens-generator/flavor"
	"lens-generator/internal/classify"
	"lens-generator/internal/common"
	"lens-generator/options"
)

// MemberSpec describes one classified member of a composite type.
type MemberSpec struct {
	// TypeName is the composite type owning the member, e.g. "Order".
	TypeName string
	// TypePkg is the package path of the composite, for diagnostics.
	TypePkg string
	// Member is the field name.
	Member string
	// Classified is the wrapper-shape classification of the declared type.
	Classified classify.Classified
	// Scope is the resolved effective generation scope for this member.
	Scope options.ScopeEnum
}

// Constructor is one synthesized accessor constructor.
type Constructor struct {
	// Name is the generated function name, e.g. "OrderItemsFrAt".
	Name string
	// Flavor of the accessor the constructor returns.
	Flavor flavor.Enum
	// Strategy selects the body template.
	Strategy Strategy
	// Param is the constructor's parameterization, if any.
	Param ParamKind
	// Value is the descriptor of the type the accessor reaches.
	Value classify.TypeDesc
	// Key is set when Param is ParamKey: the key parameter's type.
	Key *classify.TypeDesc
	// Member is the field the constructor routes through.
	Member string
	// Case is the union case name for case constructors, empty otherwise.
	Case string
	// CaseField is the payload field for tuple/labeled case constructors.
	CaseField string
	// Note carries a documented-limitation remark for the generated doc
	// comment, empty for ordinary constructors.
	Note string
}

// ParamKind tells whether a constructor takes an element parameter.
type ParamKind int

const (
	ParamNone ParamKind = iota
	ParamIndex
	ParamKey
)

// String returns a human-readable parameter kind.
func (p ParamKind) String() string {
	switch p {
	case ParamNone:
		return "none"
	case ParamIndex:
		return "index"
	case ParamKey:
		return "key"
	default:
		return common.UnknownStr
	}
}

// Strategy describes how a constructor's accessor body reaches the value.
type Strategy int

const (
	// StrategyDirect - address of the member itself (or the whole container).
	StrategyDirect Strategy = iota
	// StrategyPresent - address of the member, presented through a failable flavor.
	StrategyPresent
	// StrategyMove - move the member out of a consumed root.
	StrategyMove
	// StrategyMovePresent - StrategyMove behind a failable owned flavor.
	StrategyMovePresent
	// StrategyOptionUnwrap - unwrap one optional level.
	StrategyOptionUnwrap
	// StrategyOptionMove - move the optional's payload out of a consumed root.
	StrategyOptionMove
	// StrategyDeref - dereference a pointer with nil check.
	StrategyDeref
	// StrategyDerefMove - dereference and copy the pointee out of a consumed root.
	StrategyDerefMove
	// StrategySharedRef - read through a shared handle.
	StrategySharedRef
	// StrategySharedMut - mutate through a shared handle when exclusive.
	StrategySharedMut
	// StrategySharedClone - duplicate the shared payload out by value.
	StrategySharedClone
	// StrategyFirstElem - first element of a slice, length-checked.
	StrategyFirstElem
	// StrategyFrontMethod - Front() of a deque or linked sequence.
	StrategyFrontMethod
	// StrategyIndexAt - parameterized slice index, bounds-checked.
	StrategyIndexAt
	// StrategyAtMethod - parameterized At()/MutAt() of a deque or linked sequence.
	StrategyAtMethod
	// StrategyKeyAt - parameterized builtin-map lookup (detached copy).
	StrategyKeyAt
	// StrategyKeyAtMethod - parameterized Ref()/MutRef() of an ordered map.
	StrategyKeyAtMethod
	// StrategyAnyElem - arbitrary element of a set (detached copy / first inserted).
	StrategyAnyElem
	// StrategyPeek - read-only top of a priority queue.
	StrategyPeek
	// StrategyOkPayload - success payload of a result.
	StrategyOkPayload
	// StrategyTaggedValue - payload of a tagged wrapper.
	StrategyTaggedValue
	// StrategyOptionDeref - optional unwrap, then pointer deref.
	StrategyOptionDeref
	// StrategyDerefOption - pointer deref, then optional unwrap.
	StrategyDerefOption
	// StrategyOptionShared - optional unwrap, then shared read/mut.
	StrategyOptionShared
	// StrategySharedOption - shared read/mut, then optional unwrap.
	StrategySharedOption
	// StrategyOptionFirst - optional unwrap, then first element.
	StrategyOptionFirst
	// StrategyFirstOption - first element, then optional unwrap.
	StrategyFirstOption
	// StrategyOptionIndexAt - optional unwrap, then parameterized index.
	StrategyOptionIndexAt
	// StrategyIndexAtOption - parameterized index, then optional unwrap.
	StrategyIndexAtOption
	// StrategyOptionKeyAt - optional unwrap, then parameterized key lookup.
	StrategyOptionKeyAt
	// StrategyKeyAtOption - parameterized key lookup, then optional unwrap.
	StrategyKeyAtOption
	// StrategySharedCell - shared read stopping at a lock-guarded cell.
	StrategySharedCell
	// StrategyCaseUnit - payload-less case over the shared unit sentinel.
	StrategyCaseUnit
	// StrategyCasePayload - single-payload case extract/embed.
	StrategyCasePayload
	// StrategyCaseField - one field of a tuple or labeled case.
	StrategyCaseField
	// StrategyCaseIndexAt - case payload element by index.
	StrategyCaseIndexAt
	// StrategyCaseKeyAt - case payload element by key.
	StrategyCaseKeyAt
	// StrategyCaseOption - case payload optional unwrap.
	StrategyCaseOption
)

// String returns a human-readable strategy name.
func (s Strategy) String() string {
	switch s {
	case StrategyDirect:
		return "direct"
	case StrategyPresent:
		return "present"
	case StrategyMove:
		return "move"
	case StrategyMovePresent:
		return "move_present"
	case StrategyOptionUnwrap:
		return "option_unwrap"
	case StrategyOptionMove:
		return "option_move"
	case StrategyDeref:
		return "deref"
	case StrategyDerefMove:
		return "deref_move"
	case StrategySharedRef:
		return "shared_ref"
	case StrategySharedMut:
		return "shared_mut"
	case StrategySharedClone:
		return "shared_clone"
	case StrategyFirstElem:
		return "first_elem"
	case StrategyFrontMethod:
		return "front_method"
	case StrategyIndexAt:
		return "index_at"
	case StrategyAtMethod:
		return "at_method"
	case StrategyKeyAt:
		return "key_at"
	case StrategyKeyAtMethod:
		return "key_at_method"
	case StrategyAnyElem:
		return "any_elem"
	case StrategyPeek:
		return "peek"
	case StrategyOkPayload:
		return "ok_payload"
	case StrategyTaggedValue:
		return "tagged_value"
	case StrategyOptionDeref:
		return "option_deref"
	case StrategyDerefOption:
		return "deref_option"
	case StrategyOptionShared:
		return "option_shared"
	case StrategySharedOption:
		return "shared_option"
	case StrategyOptionFirst:
		return "option_first"
	case StrategyFirstOption:
		return "first_option"
	case StrategyOptionIndexAt:
		return "option_index_at"
	case StrategyIndexAtOption:
		return "index_at_option"
	case StrategyOptionKeyAt:
		return "option_key_at"
	case StrategyKeyAtOption:
		return "key_at_option"
	case StrategySharedCell:
		return "shared_cell"
	case StrategyCaseUnit:
		return "case_unit"
	case StrategyCasePayload:
		return "case_payload"
	case StrategyCaseField:
		return "case_field"
	case StrategyCaseIndexAt:
		return "case_index_at"
	case StrategyCaseKeyAt:
		return "case_key_at"
	case StrategyCaseOption:
		return "case_option"
	default:
		return common.UnknownStr
	}
}
